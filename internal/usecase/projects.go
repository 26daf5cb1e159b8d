package usecase

import (
	"context"
	"fmt"
	"time"

	"takecost/internal/domain"
)

// ProjectService owns project CRUD and the cost aggregation queries.
type ProjectService struct {
	Repo ProjectRepository
	Now  func() time.Time
}

func NewProjectService(repo ProjectRepository) *ProjectService {
	return &ProjectService{Repo: repo, Now: time.Now}
}

func (s *ProjectService) Create(ctx context.Context, p domain.Project) (*domain.Project, error) {
	exists, err := s.Repo.ExistsByName(ctx, p.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("project %q: %w", p.Name, domain.ErrDuplicateName)
	}
	return s.Repo.Create(ctx, p)
}

func (s *ProjectService) Get(ctx context.Context, id int64) (*domain.Project, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *ProjectService) Update(ctx context.Context, p domain.Project) (*domain.Project, error) {
	current, err := s.Repo.GetByID(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	if current.Name != p.Name {
		exists, err := s.Repo.ExistsByName(ctx, p.Name)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, fmt.Errorf("project %q: %w", p.Name, domain.ErrDuplicateName)
		}
	}
	return s.Repo.Update(ctx, p)
}

func (s *ProjectService) Delete(ctx context.Context, id int64) error {
	return s.Repo.Delete(ctx, id)
}

func (s *ProjectService) List(ctx context.Context, req domain.PageRequest) (domain.Page[domain.Project], error) {
	return s.Repo.List(ctx, req)
}

// Upcoming lists projects whose start date is after today.
func (s *ProjectService) Upcoming(ctx context.Context) ([]domain.Project, error) {
	return s.Repo.Upcoming(ctx, s.Now())
}

func (s *ProjectService) Estimate(ctx context.Context, id int64) (*domain.CostEstimate, error) {
	if _, err := s.Repo.GetByID(ctx, id); err != nil {
		return nil, err
	}
	return s.Repo.Estimate(ctx, id)
}

func (s *ProjectService) Breakdown(ctx context.Context, id int64) ([]domain.CostBreakdownLine, error) {
	if _, err := s.Repo.GetByID(ctx, id); err != nil {
		return nil, err
	}
	return s.Repo.Breakdown(ctx, id)
}

func (s *ProjectService) Summary(ctx context.Context) (*domain.ProjectsSummary, error) {
	return s.Repo.Summary(ctx)
}
