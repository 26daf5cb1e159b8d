package db

import (
	"context"

	"takecost/internal/domain"

	"gorm.io/gorm"
)

type ProjectMaterialRepository struct {
	db *gorm.DB
}

func NewProjectMaterialRepository(db *gorm.DB) *ProjectMaterialRepository {
	return &ProjectMaterialRepository{db: db}
}

func (r *ProjectMaterialRepository) Create(ctx context.Context, pm domain.ProjectMaterial) (*domain.ProjectMaterial, error) {
	if r.db == nil {
		return nil, errDBUnavailable
	}
	model := projectMaterialModel(pm)
	model.ID = 0
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return nil, err
	}
	out := model.toDomain()
	return &out, nil
}

func (r *ProjectMaterialRepository) GetByID(ctx context.Context, id int64) (*domain.ProjectMaterial, error) {
	if r.db == nil {
		return nil, errDBUnavailable
	}
	var model ProjectMaterialModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		return nil, mapNotFound(err)
	}
	out := model.toDomain()
	return &out, nil
}

func (r *ProjectMaterialRepository) ListByProject(ctx context.Context, projectID int64) ([]domain.ProjectMaterial, error) {
	if r.db == nil {
		return nil, errDBUnavailable
	}
	var models []ProjectMaterialModel
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("id asc").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	out := make([]domain.ProjectMaterial, 0, len(models))
	for _, m := range models {
		out = append(out, m.toDomain())
	}
	return out, nil
}

func (r *ProjectMaterialRepository) Update(ctx context.Context, pm domain.ProjectMaterial) (*domain.ProjectMaterial, error) {
	if r.db == nil {
		return nil, errDBUnavailable
	}
	model := projectMaterialModel(pm)
	result := r.db.WithContext(ctx).Model(&ProjectMaterialModel{}).
		Where("id = ? AND project_id = ?", pm.ID, pm.ProjectID).
		Updates(map[string]any{
			"material_id": model.MaterialID,
			"quantity":    model.Quantity,
			"unit_price":  model.UnitPrice,
			"notes":       model.Notes,
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, domain.ErrNotFound
	}
	return r.GetByID(ctx, pm.ID)
}

func (r *ProjectMaterialRepository) Delete(ctx context.Context, projectID, id int64) error {
	if r.db == nil {
		return errDBUnavailable
	}
	result := r.db.WithContext(ctx).Delete(&ProjectMaterialModel{}, "id = ? AND project_id = ?", id, projectID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
