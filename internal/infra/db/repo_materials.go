package db

import (
	"context"

	"takecost/internal/domain"

	"gorm.io/gorm"
)

type MaterialCatalogRepository struct {
	db *gorm.DB
}

func NewMaterialCatalogRepository(db *gorm.DB) *MaterialCatalogRepository {
	return &MaterialCatalogRepository{db: db}
}

func (r *MaterialCatalogRepository) Create(ctx context.Context, m domain.MaterialCatalog) (*domain.MaterialCatalog, error) {
	if r.db == nil {
		return nil, errDBUnavailable
	}
	model := materialModel(m)
	model.ID = 0
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return nil, err
	}
	out := model.toDomain()
	return &out, nil
}

func (r *MaterialCatalogRepository) GetByID(ctx context.Context, id int64) (*domain.MaterialCatalog, error) {
	if r.db == nil {
		return nil, errDBUnavailable
	}
	var model MaterialCatalogModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		return nil, mapNotFound(err)
	}
	out := model.toDomain()
	return &out, nil
}

func (r *MaterialCatalogRepository) Update(ctx context.Context, m domain.MaterialCatalog) (*domain.MaterialCatalog, error) {
	if r.db == nil {
		return nil, errDBUnavailable
	}
	model := materialModel(m)
	result := r.db.WithContext(ctx).Model(&MaterialCatalogModel{}).Where("id = ?", m.ID).Updates(map[string]any{
		"name":           model.Name,
		"category":       model.Category,
		"subcategory":    model.Subcategory,
		"unit_type":      model.UnitType,
		"unit_price":     model.UnitPrice,
		"stock_qty":      model.StockQty,
		"lead_time_days": model.LeadTimeDays,
		"vendor_id":      model.VendorID,
	})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, domain.ErrNotFound
	}
	return r.GetByID(ctx, m.ID)
}

func (r *MaterialCatalogRepository) Delete(ctx context.Context, id int64) error {
	if r.db == nil {
		return errDBUnavailable
	}
	result := r.db.WithContext(ctx).Delete(&MaterialCatalogModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *MaterialCatalogRepository) List(ctx context.Context, req domain.PageRequest) (domain.Page[domain.MaterialCatalog], error) {
	if r.db == nil {
		return domain.Page[domain.MaterialCatalog]{}, errDBUnavailable
	}
	return listPage(ctx, r.db, req, MaterialCatalogModel.toDomain)
}
