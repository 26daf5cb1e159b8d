package usecase

import (
	"context"
	"fmt"

	"takecost/internal/domain"
)

type VendorService struct {
	Repo VendorRepository
}

func NewVendorService(repo VendorRepository) *VendorService {
	return &VendorService{Repo: repo}
}

func (s *VendorService) Create(ctx context.Context, v domain.Vendor) (*domain.Vendor, error) {
	return s.Repo.Create(ctx, v)
}

func (s *VendorService) Get(ctx context.Context, id int64) (*domain.Vendor, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *VendorService) Update(ctx context.Context, v domain.Vendor) (*domain.Vendor, error) {
	return s.Repo.Update(ctx, v)
}

func (s *VendorService) Delete(ctx context.Context, id int64) error {
	return s.Repo.Delete(ctx, id)
}

func (s *VendorService) List(ctx context.Context, req domain.PageRequest) (domain.Page[domain.Vendor], error) {
	return s.Repo.List(ctx, req)
}

// MaterialCatalogService manages the material catalog. Vendor references
// are checked against the vendor repository.
type MaterialCatalogService struct {
	Repo    MaterialCatalogRepository
	Vendors VendorRepository
}

func NewMaterialCatalogService(repo MaterialCatalogRepository, vendors VendorRepository) *MaterialCatalogService {
	return &MaterialCatalogService{Repo: repo, Vendors: vendors}
}

func (s *MaterialCatalogService) checkVendor(ctx context.Context, vendorID *int64) error {
	if vendorID == nil {
		return nil
	}
	if _, err := s.Vendors.GetByID(ctx, *vendorID); err != nil {
		return fmt.Errorf("vendor %d: %w", *vendorID, err)
	}
	return nil
}

func (s *MaterialCatalogService) Create(ctx context.Context, m domain.MaterialCatalog) (*domain.MaterialCatalog, error) {
	if err := s.checkVendor(ctx, m.VendorID); err != nil {
		return nil, err
	}
	return s.Repo.Create(ctx, m)
}

func (s *MaterialCatalogService) Get(ctx context.Context, id int64) (*domain.MaterialCatalog, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *MaterialCatalogService) Update(ctx context.Context, m domain.MaterialCatalog) (*domain.MaterialCatalog, error) {
	if err := s.checkVendor(ctx, m.VendorID); err != nil {
		return nil, err
	}
	return s.Repo.Update(ctx, m)
}

func (s *MaterialCatalogService) Delete(ctx context.Context, id int64) error {
	return s.Repo.Delete(ctx, id)
}

func (s *MaterialCatalogService) List(ctx context.Context, req domain.PageRequest) (domain.Page[domain.MaterialCatalog], error) {
	return s.Repo.List(ctx, req)
}

type LaborCategoryService struct {
	Repo LaborCategoryRepository
}

func NewLaborCategoryService(repo LaborCategoryRepository) *LaborCategoryService {
	return &LaborCategoryService{Repo: repo}
}

func (s *LaborCategoryService) Create(ctx context.Context, c domain.LaborCategory) (*domain.LaborCategory, error) {
	return s.Repo.Create(ctx, c)
}

func (s *LaborCategoryService) Get(ctx context.Context, id int64) (*domain.LaborCategory, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *LaborCategoryService) Update(ctx context.Context, c domain.LaborCategory) (*domain.LaborCategory, error) {
	return s.Repo.Update(ctx, c)
}

func (s *LaborCategoryService) Delete(ctx context.Context, id int64) error {
	return s.Repo.Delete(ctx, id)
}

func (s *LaborCategoryService) List(ctx context.Context, req domain.PageRequest) (domain.Page[domain.LaborCategory], error) {
	return s.Repo.List(ctx, req)
}
