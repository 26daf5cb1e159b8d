package db

import (
	"context"

	"takecost/internal/domain"

	"gorm.io/gorm"
)

type LaborCategoryRepository struct {
	db *gorm.DB
}

func NewLaborCategoryRepository(db *gorm.DB) *LaborCategoryRepository {
	return &LaborCategoryRepository{db: db}
}

func (r *LaborCategoryRepository) Create(ctx context.Context, c domain.LaborCategory) (*domain.LaborCategory, error) {
	if r.db == nil {
		return nil, errDBUnavailable
	}
	model := laborCategoryModel(c)
	model.ID = 0
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return nil, err
	}
	out := model.toDomain()
	return &out, nil
}

func (r *LaborCategoryRepository) GetByID(ctx context.Context, id int64) (*domain.LaborCategory, error) {
	if r.db == nil {
		return nil, errDBUnavailable
	}
	var model LaborCategoryModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		return nil, mapNotFound(err)
	}
	out := model.toDomain()
	return &out, nil
}

func (r *LaborCategoryRepository) Update(ctx context.Context, c domain.LaborCategory) (*domain.LaborCategory, error) {
	if r.db == nil {
		return nil, errDBUnavailable
	}
	model := laborCategoryModel(c)
	result := r.db.WithContext(ctx).Model(&LaborCategoryModel{}).Where("id = ?", c.ID).Updates(map[string]any{
		"name":        model.Name,
		"description": model.Description,
		"hourly_rate": model.HourlyRate,
	})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, domain.ErrNotFound
	}
	return r.GetByID(ctx, c.ID)
}

func (r *LaborCategoryRepository) Delete(ctx context.Context, id int64) error {
	if r.db == nil {
		return errDBUnavailable
	}
	result := r.db.WithContext(ctx).Delete(&LaborCategoryModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *LaborCategoryRepository) List(ctx context.Context, req domain.PageRequest) (domain.Page[domain.LaborCategory], error) {
	if r.db == nil {
		return domain.Page[domain.LaborCategory]{}, errDBUnavailable
	}
	return listPage(ctx, r.db, req, LaborCategoryModel.toDomain)
}
