package domain

import (
	"time"

	"gorm.io/gorm"
)

// BuildingType classifies the structure a project paints
type BuildingType string

const (
	BuildingTypeResidential BuildingType = "Residential"
	BuildingTypeCommercial  BuildingType = "Commercial"
	BuildingTypeIndustrial  BuildingType = "Industrial"
)

// IsValid checks if the BuildingType is a valid enum value
func (b BuildingType) IsValid() bool {
	switch b {
	case BuildingTypeResidential, BuildingTypeCommercial, BuildingTypeIndustrial:
		return true
	}
	return false
}

// ProjectStatus represents the status of a project
type ProjectStatus string

const (
	ProjectStatusPending    ProjectStatus = "pending"
	ProjectStatusInProgress ProjectStatus = "in_progress"
	ProjectStatusCompleted  ProjectStatus = "completed"
)

// IsValid checks if the ProjectStatus is a valid enum value
func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectStatusPending, ProjectStatusInProgress, ProjectStatusCompleted:
		return true
	}
	return false
}

// Client represents a customer of the contractor, identified by email.
// Imports reuse an existing client on email match and never refresh
// name or phone from newer rows.
type Client struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Email     string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Phone     string    `gorm:"type:varchar(50)"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
	Projects  []Project `gorm:"foreignKey:ClientID;constraint:OnDelete:CASCADE"`
}

// Employee represents a worker, identified by the (first, last) name
// pair. Wage and hours are set at creation only; later imports matching
// the same name reuse the record as-is.
type Employee struct {
	ID          uint      `gorm:"primaryKey"`
	FirstName   string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_employees_name;column:first_name"`
	LastName    string    `gorm:"type:varchar(100);uniqueIndex:idx_employees_name;column:last_name"`
	Wage        float64   `gorm:"not null;default:0"`
	HoursWorked float64   `gorm:"not null;default:0;column:hours_worked"`
	CreatedAt   time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt   time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// FullName returns the employee's full name
func (e *Employee) FullName() string {
	if e.LastName == "" {
		return e.FirstName
	}
	return e.FirstName + " " + e.LastName
}

// Project represents one painting job for a client
type Project struct {
	ID           uint                `gorm:"primaryKey"`
	ClientID     uint                `gorm:"not null;index;column:client_id"`
	Client       *Client             `gorm:"foreignKey:ClientID"`
	BuildingType BuildingType        `gorm:"type:varchar(50);not null;column:building_type;index"`
	Address      string              `gorm:"type:varchar(255)"`
	JobType      string              `gorm:"type:varchar(100);column:job_type"`
	Description  string              `gorm:"type:text"`
	AreaSizeSqft float64             `gorm:"column:area_size_sqft"`
	StartDate    time.Time           `gorm:"type:date;not null;column:start_date;index"`
	EndDate      time.Time           `gorm:"type:date;not null;column:end_date"`
	TotalGain    float64             `gorm:"column:total_gain"`
	Status       ProjectStatus       `gorm:"type:varchar(50);not null;default:'pending';index"`
	CreatedAt    time.Time           `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt    time.Time           `gorm:"not null;default:CURRENT_TIMESTAMP"`
	Cost         *Cost               `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Services     []AdditionalService `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Assignments  []ProjectEmployee   `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

// Cost is the one-to-one cost breakdown of a project. It shares the
// project's primary key. TotalCost is derived from the five subtotals
// and recomputed on every save.
type Cost struct {
	ProjectID             uint    `gorm:"primaryKey;column:project_id"`
	BodyPaintCost         float64 `gorm:"not null;default:0;column:body_paint_cost"`
	TrimPaintCost         float64 `gorm:"not null;default:0;column:trim_paint_cost"`
	OtherPaintCost        float64 `gorm:"not null;default:0;column:other_paint_cost"`
	SuppliesCost          float64 `gorm:"not null;default:0;column:supplies_cost"`
	AdditionalServiceCost float64 `gorm:"not null;default:0;column:additional_service_cost"`
	TotalCost             float64 `gorm:"not null;default:0;column:total_cost"`
}

// Sum returns the total of the five cost subtotals
func (c *Cost) Sum() float64 {
	return c.BodyPaintCost + c.TrimPaintCost + c.OtherPaintCost + c.SuppliesCost + c.AdditionalServiceCost
}

// BeforeSave keeps the derived total in sync with the subtotals
func (c *Cost) BeforeSave(_ *gorm.DB) error {
	c.TotalCost = c.Sum()
	return nil
}

// AdditionalService is an optional extra sold with a project, such as
// deck staining. A project may carry several.
type AdditionalService struct {
	ID          uint    `gorm:"primaryKey"`
	ProjectID   uint    `gorm:"not null;index;column:project_id"`
	ServiceName string  `gorm:"type:varchar(100);not null;column:service_name"`
	ServiceCost float64 `gorm:"not null;default:0;column:service_cost"`
}

// ProjectEmployee assigns an employee to a project with the hours
// worked on that assignment
type ProjectEmployee struct {
	ID          uint      `gorm:"primaryKey"`
	ProjectID   uint      `gorm:"not null;index;column:project_id"`
	Project     *Project  `gorm:"foreignKey:ProjectID"`
	EmployeeID  uint      `gorm:"not null;index;column:employee_id"`
	Employee    *Employee `gorm:"foreignKey:EmployeeID"`
	HoursWorked float64   `gorm:"not null;default:0;column:hours_worked"`
}

// UploadedDocument is the record of a raw job-sheet upload. Processed
// flips to true once every row of the document has been attempted,
// regardless of per-row failures.
type UploadedDocument struct {
	ID          uint      `gorm:"primaryKey"`
	FileName    string    `gorm:"type:varchar(255);not null;column:file_name"`
	StoragePath string    `gorm:"type:varchar(500);not null;column:storage_path"`
	UploadedAt  time.Time `gorm:"not null;default:CURRENT_TIMESTAMP;column:uploaded_at"`
	Processed   bool      `gorm:"not null;default:false"`
}
