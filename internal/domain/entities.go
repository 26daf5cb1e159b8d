package domain

import "time"

// Project statuses.
const (
	ProjectPlanned    = "PLANNED"
	ProjectInProgress = "IN_PROGRESS"
	ProjectCompleted  = "COMPLETED"
)

type Project struct {
	ID          int64
	Name        string
	Description string
	Location    string
	StartDate   time.Time
	EndDate     time.Time
	Status      string
}

type Vendor struct {
	ID            int64
	Name          string
	ContactPerson string
	Email         string
	Phone         string
	Address       string
}

type MaterialCatalog struct {
	ID           int64
	Name         string
	Category     string
	Subcategory  string
	UnitType     string
	UnitPrice    float64
	StockQty     float64
	LeadTimeDays int
	VendorID     *int64
}

type LaborCategory struct {
	ID          int64
	Name        string
	Description string
	HourlyRate  float64
}

// ProjectMaterial assigns a catalog material to a project. UnitPrice is the
// price agreed for this project, which may differ from the catalog price.
type ProjectMaterial struct {
	ID         int64
	ProjectID  int64
	MaterialID int64
	Quantity   float64
	UnitPrice  float64
	Notes      string
}

type ProjectLabor struct {
	ID              int64
	ProjectID       int64
	LaborCategoryID int64
	HourlyRate      float64
	EstimatedHours  float64
}

// CostEstimate is the aggregated cost of a single project.
type CostEstimate struct {
	ProjectID    int64
	MaterialCost float64
	LaborCost    float64
	TotalCost    float64
}

// CostBreakdownLine is one material or labor line of a project's cost.
type CostBreakdownLine struct {
	Kind     string
	Name     string
	Quantity float64
	Rate     float64
	Cost     float64
}

// ProjectsSummary aggregates cost figures across all projects.
type ProjectsSummary struct {
	ProjectCount      int64
	TotalMaterialCost float64
	TotalLaborCost    float64
	TotalCost         float64
	AverageCost       float64
}
