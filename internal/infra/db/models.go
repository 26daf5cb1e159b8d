package db

import (
	"time"

	"takecost/internal/domain"
)

type ProjectModel struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	Name        string    `gorm:"size:255;not null;uniqueIndex"`
	Description string    `gorm:"size:500"`
	Location    string    `gorm:"size:255"`
	StartDate   time.Time `gorm:"type:date;not null"`
	EndDate     time.Time `gorm:"type:date;not null"`
	Status      string    `gorm:"size:50;not null"`
}

func (ProjectModel) TableName() string { return "projects" }

func (m ProjectModel) toDomain() domain.Project {
	return domain.Project{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Location:    m.Location,
		StartDate:   m.StartDate,
		EndDate:     m.EndDate,
		Status:      m.Status,
	}
}

func projectModel(p domain.Project) ProjectModel {
	return ProjectModel{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Location:    p.Location,
		StartDate:   p.StartDate,
		EndDate:     p.EndDate,
		Status:      p.Status,
	}
}

type VendorModel struct {
	ID            int64  `gorm:"primaryKey;autoIncrement"`
	Name          string `gorm:"size:255;not null"`
	ContactPerson string `gorm:"size:255"`
	Email         string `gorm:"size:255"`
	Phone         string `gorm:"size:50"`
	Address       string `gorm:"size:500"`
}

func (VendorModel) TableName() string { return "vendors" }

func (m VendorModel) toDomain() domain.Vendor {
	return domain.Vendor{
		ID:            m.ID,
		Name:          m.Name,
		ContactPerson: m.ContactPerson,
		Email:         m.Email,
		Phone:         m.Phone,
		Address:       m.Address,
	}
}

func vendorModel(v domain.Vendor) VendorModel {
	return VendorModel{
		ID:            v.ID,
		Name:          v.Name,
		ContactPerson: v.ContactPerson,
		Email:         v.Email,
		Phone:         v.Phone,
		Address:       v.Address,
	}
}

type MaterialCatalogModel struct {
	ID           int64   `gorm:"primaryKey;autoIncrement"`
	Name         string  `gorm:"size:255;not null"`
	Category     string  `gorm:"size:100"`
	Subcategory  string  `gorm:"size:100"`
	UnitType     string  `gorm:"size:50"`
	UnitPrice    float64 `gorm:"not null"`
	StockQty     float64
	LeadTimeDays int
	VendorID     *int64 `gorm:"index"`
}

func (MaterialCatalogModel) TableName() string { return "material_catalog" }

func (m MaterialCatalogModel) toDomain() domain.MaterialCatalog {
	return domain.MaterialCatalog{
		ID:           m.ID,
		Name:         m.Name,
		Category:     m.Category,
		Subcategory:  m.Subcategory,
		UnitType:     m.UnitType,
		UnitPrice:    m.UnitPrice,
		StockQty:     m.StockQty,
		LeadTimeDays: m.LeadTimeDays,
		VendorID:     m.VendorID,
	}
}

func materialModel(m domain.MaterialCatalog) MaterialCatalogModel {
	return MaterialCatalogModel{
		ID:           m.ID,
		Name:         m.Name,
		Category:     m.Category,
		Subcategory:  m.Subcategory,
		UnitType:     m.UnitType,
		UnitPrice:    m.UnitPrice,
		StockQty:     m.StockQty,
		LeadTimeDays: m.LeadTimeDays,
		VendorID:     m.VendorID,
	}
}

type LaborCategoryModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"size:255;not null"`
	Description string `gorm:"size:500"`
	HourlyRate  float64
}

func (LaborCategoryModel) TableName() string { return "labor_categories" }

func (m LaborCategoryModel) toDomain() domain.LaborCategory {
	return domain.LaborCategory{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		HourlyRate:  m.HourlyRate,
	}
}

func laborCategoryModel(c domain.LaborCategory) LaborCategoryModel {
	return LaborCategoryModel{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		HourlyRate:  c.HourlyRate,
	}
}

type ProjectMaterialModel struct {
	ID         int64 `gorm:"primaryKey;autoIncrement"`
	ProjectID  int64 `gorm:"not null;index"`
	MaterialID int64 `gorm:"not null;index"`
	Quantity   float64
	UnitPrice  float64
	Notes      string `gorm:"size:500"`
}

func (ProjectMaterialModel) TableName() string { return "project_materials" }

func (m ProjectMaterialModel) toDomain() domain.ProjectMaterial {
	return domain.ProjectMaterial{
		ID:         m.ID,
		ProjectID:  m.ProjectID,
		MaterialID: m.MaterialID,
		Quantity:   m.Quantity,
		UnitPrice:  m.UnitPrice,
		Notes:      m.Notes,
	}
}

func projectMaterialModel(pm domain.ProjectMaterial) ProjectMaterialModel {
	return ProjectMaterialModel{
		ID:         pm.ID,
		ProjectID:  pm.ProjectID,
		MaterialID: pm.MaterialID,
		Quantity:   pm.Quantity,
		UnitPrice:  pm.UnitPrice,
		Notes:      pm.Notes,
	}
}

type ProjectLaborModel struct {
	ID              int64 `gorm:"primaryKey;autoIncrement"`
	ProjectID       int64 `gorm:"not null;index"`
	LaborCategoryID int64 `gorm:"not null;index"`
	HourlyRate      float64
	EstimatedHours  float64
}

func (ProjectLaborModel) TableName() string { return "project_labor" }

func (m ProjectLaborModel) toDomain() domain.ProjectLabor {
	return domain.ProjectLabor{
		ID:              m.ID,
		ProjectID:       m.ProjectID,
		LaborCategoryID: m.LaborCategoryID,
		HourlyRate:      m.HourlyRate,
		EstimatedHours:  m.EstimatedHours,
	}
}

func projectLaborModel(pl domain.ProjectLabor) ProjectLaborModel {
	return ProjectLaborModel{
		ID:              pl.ID,
		ProjectID:       pl.ProjectID,
		LaborCategoryID: pl.LaborCategoryID,
		HourlyRate:      pl.HourlyRate,
		EstimatedHours:  pl.EstimatedHours,
	}
}
