// Package usecase holds the application services between the HTTP layer
// and the repositories.
package usecase

import (
	"context"
	"time"

	"takecost/internal/domain"
)

type ProjectRepository interface {
	Create(ctx context.Context, p domain.Project) (*domain.Project, error)
	GetByID(ctx context.Context, id int64) (*domain.Project, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	Update(ctx context.Context, p domain.Project) (*domain.Project, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, req domain.PageRequest) (domain.Page[domain.Project], error)
	Upcoming(ctx context.Context, after time.Time) ([]domain.Project, error)
	Estimate(ctx context.Context, projectID int64) (*domain.CostEstimate, error)
	Breakdown(ctx context.Context, projectID int64) ([]domain.CostBreakdownLine, error)
	Summary(ctx context.Context) (*domain.ProjectsSummary, error)
}

type VendorRepository interface {
	Create(ctx context.Context, v domain.Vendor) (*domain.Vendor, error)
	GetByID(ctx context.Context, id int64) (*domain.Vendor, error)
	Update(ctx context.Context, v domain.Vendor) (*domain.Vendor, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, req domain.PageRequest) (domain.Page[domain.Vendor], error)
}

type MaterialCatalogRepository interface {
	Create(ctx context.Context, m domain.MaterialCatalog) (*domain.MaterialCatalog, error)
	GetByID(ctx context.Context, id int64) (*domain.MaterialCatalog, error)
	Update(ctx context.Context, m domain.MaterialCatalog) (*domain.MaterialCatalog, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, req domain.PageRequest) (domain.Page[domain.MaterialCatalog], error)
}

type LaborCategoryRepository interface {
	Create(ctx context.Context, c domain.LaborCategory) (*domain.LaborCategory, error)
	GetByID(ctx context.Context, id int64) (*domain.LaborCategory, error)
	Update(ctx context.Context, c domain.LaborCategory) (*domain.LaborCategory, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, req domain.PageRequest) (domain.Page[domain.LaborCategory], error)
}

type ProjectMaterialRepository interface {
	Create(ctx context.Context, pm domain.ProjectMaterial) (*domain.ProjectMaterial, error)
	GetByID(ctx context.Context, id int64) (*domain.ProjectMaterial, error)
	ListByProject(ctx context.Context, projectID int64) ([]domain.ProjectMaterial, error)
	Update(ctx context.Context, pm domain.ProjectMaterial) (*domain.ProjectMaterial, error)
	Delete(ctx context.Context, projectID, id int64) error
}

type ProjectLaborRepository interface {
	Create(ctx context.Context, pl domain.ProjectLabor) (*domain.ProjectLabor, error)
	GetByID(ctx context.Context, id int64) (*domain.ProjectLabor, error)
	ListByProject(ctx context.Context, projectID int64) ([]domain.ProjectLabor, error)
	Update(ctx context.Context, pl domain.ProjectLabor) (*domain.ProjectLabor, error)
	Delete(ctx context.Context, projectID, id int64) error
}
