package usecase

import (
	"context"
	"fmt"

	"takecost/internal/domain"
)

// ProjectMaterialService assigns catalog materials to projects. A missing
// unit price defaults to the catalog price at assignment time.
type ProjectMaterialService struct {
	Repo      ProjectMaterialRepository
	Projects  ProjectRepository
	Materials MaterialCatalogRepository
}

func NewProjectMaterialService(repo ProjectMaterialRepository, projects ProjectRepository, materials MaterialCatalogRepository) *ProjectMaterialService {
	return &ProjectMaterialService{Repo: repo, Projects: projects, Materials: materials}
}

func (s *ProjectMaterialService) Create(ctx context.Context, pm domain.ProjectMaterial) (*domain.ProjectMaterial, error) {
	if _, err := s.Projects.GetByID(ctx, pm.ProjectID); err != nil {
		return nil, fmt.Errorf("project %d: %w", pm.ProjectID, err)
	}
	material, err := s.Materials.GetByID(ctx, pm.MaterialID)
	if err != nil {
		return nil, fmt.Errorf("material %d: %w", pm.MaterialID, err)
	}
	if pm.UnitPrice == 0 {
		pm.UnitPrice = material.UnitPrice
	}
	return s.Repo.Create(ctx, pm)
}

func (s *ProjectMaterialService) ListByProject(ctx context.Context, projectID int64) ([]domain.ProjectMaterial, error) {
	if _, err := s.Projects.GetByID(ctx, projectID); err != nil {
		return nil, err
	}
	return s.Repo.ListByProject(ctx, projectID)
}

func (s *ProjectMaterialService) Update(ctx context.Context, pm domain.ProjectMaterial) (*domain.ProjectMaterial, error) {
	if _, err := s.Materials.GetByID(ctx, pm.MaterialID); err != nil {
		return nil, fmt.Errorf("material %d: %w", pm.MaterialID, err)
	}
	return s.Repo.Update(ctx, pm)
}

func (s *ProjectMaterialService) Delete(ctx context.Context, projectID, id int64) error {
	return s.Repo.Delete(ctx, projectID, id)
}

// ProjectLaborService assigns labor categories to projects. A missing
// hourly rate defaults to the category rate at assignment time.
type ProjectLaborService struct {
	Repo       ProjectLaborRepository
	Projects   ProjectRepository
	Categories LaborCategoryRepository
}

func NewProjectLaborService(repo ProjectLaborRepository, projects ProjectRepository, categories LaborCategoryRepository) *ProjectLaborService {
	return &ProjectLaborService{Repo: repo, Projects: projects, Categories: categories}
}

func (s *ProjectLaborService) Create(ctx context.Context, pl domain.ProjectLabor) (*domain.ProjectLabor, error) {
	if _, err := s.Projects.GetByID(ctx, pl.ProjectID); err != nil {
		return nil, fmt.Errorf("project %d: %w", pl.ProjectID, err)
	}
	category, err := s.Categories.GetByID(ctx, pl.LaborCategoryID)
	if err != nil {
		return nil, fmt.Errorf("labor category %d: %w", pl.LaborCategoryID, err)
	}
	if pl.HourlyRate == 0 {
		pl.HourlyRate = category.HourlyRate
	}
	return s.Repo.Create(ctx, pl)
}

func (s *ProjectLaborService) ListByProject(ctx context.Context, projectID int64) ([]domain.ProjectLabor, error) {
	if _, err := s.Projects.GetByID(ctx, projectID); err != nil {
		return nil, err
	}
	return s.Repo.ListByProject(ctx, projectID)
}

func (s *ProjectLaborService) Update(ctx context.Context, pl domain.ProjectLabor) (*domain.ProjectLabor, error) {
	if _, err := s.Categories.GetByID(ctx, pl.LaborCategoryID); err != nil {
		return nil, fmt.Errorf("labor category %d: %w", pl.LaborCategoryID, err)
	}
	return s.Repo.Update(ctx, pl)
}

func (s *ProjectLaborService) Delete(ctx context.Context, projectID, id int64) error {
	return s.Repo.Delete(ctx, projectID, id)
}
