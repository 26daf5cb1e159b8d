package db

import (
	"context"

	"takecost/internal/domain"

	"gorm.io/gorm"
)

type VendorRepository struct {
	db *gorm.DB
}

func NewVendorRepository(db *gorm.DB) *VendorRepository {
	return &VendorRepository{db: db}
}

func (r *VendorRepository) Create(ctx context.Context, v domain.Vendor) (*domain.Vendor, error) {
	if r.db == nil {
		return nil, errDBUnavailable
	}
	model := vendorModel(v)
	model.ID = 0
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return nil, err
	}
	out := model.toDomain()
	return &out, nil
}

func (r *VendorRepository) GetByID(ctx context.Context, id int64) (*domain.Vendor, error) {
	if r.db == nil {
		return nil, errDBUnavailable
	}
	var model VendorModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		return nil, mapNotFound(err)
	}
	out := model.toDomain()
	return &out, nil
}

func (r *VendorRepository) Update(ctx context.Context, v domain.Vendor) (*domain.Vendor, error) {
	if r.db == nil {
		return nil, errDBUnavailable
	}
	model := vendorModel(v)
	result := r.db.WithContext(ctx).Model(&VendorModel{}).Where("id = ?", v.ID).Updates(map[string]any{
		"name":           model.Name,
		"contact_person": model.ContactPerson,
		"email":          model.Email,
		"phone":          model.Phone,
		"address":        model.Address,
	})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, domain.ErrNotFound
	}
	return r.GetByID(ctx, v.ID)
}

func (r *VendorRepository) Delete(ctx context.Context, id int64) error {
	if r.db == nil {
		return errDBUnavailable
	}
	result := r.db.WithContext(ctx).Delete(&VendorModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *VendorRepository) List(ctx context.Context, req domain.PageRequest) (domain.Page[domain.Vendor], error) {
	if r.db == nil {
		return domain.Page[domain.Vendor]{}, errDBUnavailable
	}
	return listPage(ctx, r.db, req, VendorModel.toDomain)
}
