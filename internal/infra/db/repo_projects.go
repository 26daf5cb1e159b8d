package db

import (
	"context"
	"errors"
	"time"

	"takecost/internal/domain"

	"gorm.io/gorm"
)

type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) Create(ctx context.Context, p domain.Project) (*domain.Project, error) {
	if r.db == nil {
		return nil, errDBUnavailable
	}
	model := projectModel(p)
	model.ID = 0
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrDuplicateName
		}
		return nil, err
	}
	out := model.toDomain()
	return &out, nil
}

func (r *ProjectRepository) GetByID(ctx context.Context, id int64) (*domain.Project, error) {
	if r.db == nil {
		return nil, errDBUnavailable
	}
	var model ProjectModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		return nil, mapNotFound(err)
	}
	out := model.toDomain()
	return &out, nil
}

func (r *ProjectRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	if r.db == nil {
		return false, errDBUnavailable
	}
	var count int64
	err := r.db.WithContext(ctx).Model(&ProjectModel{}).Where("name = ?", name).Count(&count).Error
	return count > 0, err
}

func (r *ProjectRepository) Update(ctx context.Context, p domain.Project) (*domain.Project, error) {
	if r.db == nil {
		return nil, errDBUnavailable
	}
	model := projectModel(p)
	result := r.db.WithContext(ctx).Model(&ProjectModel{}).Where("id = ?", p.ID).Updates(map[string]any{
		"name":        model.Name,
		"description": model.Description,
		"location":    model.Location,
		"start_date":  model.StartDate,
		"end_date":    model.EndDate,
		"status":      model.Status,
	})
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrDuplicateName
		}
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, domain.ErrNotFound
	}
	return r.GetByID(ctx, p.ID)
}

func (r *ProjectRepository) Delete(ctx context.Context, id int64) error {
	if r.db == nil {
		return errDBUnavailable
	}
	result := r.db.WithContext(ctx).Delete(&ProjectModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ProjectRepository) List(ctx context.Context, req domain.PageRequest) (domain.Page[domain.Project], error) {
	if r.db == nil {
		return domain.Page[domain.Project]{}, errDBUnavailable
	}
	return listPage(ctx, r.db, req, ProjectModel.toDomain)
}

func (r *ProjectRepository) Upcoming(ctx context.Context, after time.Time) ([]domain.Project, error) {
	if r.db == nil {
		return nil, errDBUnavailable
	}
	var models []ProjectModel
	err := r.db.WithContext(ctx).
		Where("start_date > ?", after).
		Order("start_date asc").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	out := make([]domain.Project, 0, len(models))
	for _, m := range models {
		out = append(out, m.toDomain())
	}
	return out, nil
}

type estimateRow struct {
	MaterialCost float64
	LaborCost    float64
}

// Estimate aggregates the project's material and labor lines in the
// database rather than loading them.
func (r *ProjectRepository) Estimate(ctx context.Context, projectID int64) (*domain.CostEstimate, error) {
	if r.db == nil {
		return nil, errDBUnavailable
	}
	var row estimateRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT
		  COALESCE((SELECT SUM(quantity * unit_price) FROM project_materials WHERE project_id = ?), 0) AS material_cost,
		  COALESCE((SELECT SUM(hourly_rate * estimated_hours) FROM project_labor WHERE project_id = ?), 0) AS labor_cost
	`, projectID, projectID).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	return &domain.CostEstimate{
		ProjectID:    projectID,
		MaterialCost: row.MaterialCost,
		LaborCost:    row.LaborCost,
		TotalCost:    row.MaterialCost + row.LaborCost,
	}, nil
}

type breakdownRow struct {
	Kind     string
	Name     string
	Quantity float64
	Rate     float64
	Cost     float64
}

func (r *ProjectRepository) Breakdown(ctx context.Context, projectID int64) ([]domain.CostBreakdownLine, error) {
	if r.db == nil {
		return nil, errDBUnavailable
	}
	var rows []breakdownRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT 'MATERIAL' AS kind, mc.name AS name, pm.quantity AS quantity, pm.unit_price AS rate,
		       pm.quantity * pm.unit_price AS cost
		  FROM project_materials pm
		  JOIN material_catalog mc ON mc.id = pm.material_id
		 WHERE pm.project_id = ?
		UNION ALL
		SELECT 'LABOR' AS kind, lc.name AS name, pl.estimated_hours AS quantity, pl.hourly_rate AS rate,
		       pl.hourly_rate * pl.estimated_hours AS cost
		  FROM project_labor pl
		  JOIN labor_categories lc ON lc.id = pl.labor_category_id
		 WHERE pl.project_id = ?
		ORDER BY kind, name
	`, projectID, projectID).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]domain.CostBreakdownLine, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.CostBreakdownLine{
			Kind:     row.Kind,
			Name:     row.Name,
			Quantity: row.Quantity,
			Rate:     row.Rate,
			Cost:     row.Cost,
		})
	}
	return out, nil
}

type summaryRow struct {
	ProjectCount      int64
	TotalMaterialCost float64
	TotalLaborCost    float64
}

func (r *ProjectRepository) Summary(ctx context.Context) (*domain.ProjectsSummary, error) {
	if r.db == nil {
		return nil, errDBUnavailable
	}
	var row summaryRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT
		  (SELECT COUNT(*) FROM projects) AS project_count,
		  COALESCE((SELECT SUM(quantity * unit_price) FROM project_materials), 0) AS total_material_cost,
		  COALESCE((SELECT SUM(hourly_rate * estimated_hours) FROM project_labor), 0) AS total_labor_cost
	`).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	total := row.TotalMaterialCost + row.TotalLaborCost
	avg := 0.0
	if row.ProjectCount > 0 {
		avg = total / float64(row.ProjectCount)
	}
	return &domain.ProjectsSummary{
		ProjectCount:      row.ProjectCount,
		TotalMaterialCost: row.TotalMaterialCost,
		TotalLaborCost:    row.TotalLaborCost,
		TotalCost:         total,
		AverageCost:       avg,
	}, nil
}
