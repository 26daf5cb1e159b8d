package db

import (
	"context"

	"takecost/internal/domain"

	"gorm.io/gorm"
)

type ProjectLaborRepository struct {
	db *gorm.DB
}

func NewProjectLaborRepository(db *gorm.DB) *ProjectLaborRepository {
	return &ProjectLaborRepository{db: db}
}

func (r *ProjectLaborRepository) Create(ctx context.Context, pl domain.ProjectLabor) (*domain.ProjectLabor, error) {
	if r.db == nil {
		return nil, errDBUnavailable
	}
	model := projectLaborModel(pl)
	model.ID = 0
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return nil, err
	}
	out := model.toDomain()
	return &out, nil
}

func (r *ProjectLaborRepository) GetByID(ctx context.Context, id int64) (*domain.ProjectLabor, error) {
	if r.db == nil {
		return nil, errDBUnavailable
	}
	var model ProjectLaborModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		return nil, mapNotFound(err)
	}
	out := model.toDomain()
	return &out, nil
}

func (r *ProjectLaborRepository) ListByProject(ctx context.Context, projectID int64) ([]domain.ProjectLabor, error) {
	if r.db == nil {
		return nil, errDBUnavailable
	}
	var models []ProjectLaborModel
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("id asc").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	out := make([]domain.ProjectLabor, 0, len(models))
	for _, m := range models {
		out = append(out, m.toDomain())
	}
	return out, nil
}

func (r *ProjectLaborRepository) Update(ctx context.Context, pl domain.ProjectLabor) (*domain.ProjectLabor, error) {
	if r.db == nil {
		return nil, errDBUnavailable
	}
	model := projectLaborModel(pl)
	result := r.db.WithContext(ctx).Model(&ProjectLaborModel{}).
		Where("id = ? AND project_id = ?", pl.ID, pl.ProjectID).
		Updates(map[string]any{
			"labor_category_id": model.LaborCategoryID,
			"hourly_rate":       model.HourlyRate,
			"estimated_hours":   model.EstimatedHours,
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, domain.ErrNotFound
	}
	return r.GetByID(ctx, pl.ID)
}

func (r *ProjectLaborRepository) Delete(ctx context.Context, projectID, id int64) error {
	if r.db == nil {
		return errDBUnavailable
	}
	result := r.db.WithContext(ctx).Delete(&ProjectLaborModel{}, "id = ? AND project_id = ?", id, projectID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
