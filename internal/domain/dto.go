package domain

// ClientDTO is the API representation of a client
type ClientDTO struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// CreateClientRequest is the request body for creating a client
type CreateClientRequest struct {
	Name  string `json:"name" validate:"required,max=255"`
	Email string `json:"email" validate:"required,email,max=255"`
	Phone string `json:"phone" validate:"omitempty,phone,max=50"`
}

// UpdateClientRequest is the request body for updating a client
type UpdateClientRequest struct {
	Name  string `json:"name" validate:"required,max=255"`
	Email string `json:"email" validate:"required,email,max=255"`
	Phone string `json:"phone" validate:"omitempty,phone,max=50"`
}

// EmployeeDTO is the API representation of an employee
type EmployeeDTO struct {
	ID          uint    `json:"id"`
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	Wage        float64 `json:"wage"`
	HoursWorked float64 `json:"hours_worked"`
}

// CreateEmployeeRequest is the request body for creating an employee
type CreateEmployeeRequest struct {
	FirstName   string  `json:"first_name" validate:"required,max=100"`
	LastName    string  `json:"last_name" validate:"max=100"`
	Wage        float64 `json:"wage" validate:"gte=0"`
	HoursWorked float64 `json:"hours_worked" validate:"gte=0"`
}

// ProjectDTO is the API representation of a project
type ProjectDTO struct {
	ID           uint          `json:"id"`
	ClientID     uint          `json:"client_id"`
	ClientName   string        `json:"client_name,omitempty"`
	ClientEmail  string        `json:"client_email,omitempty"`
	BuildingType BuildingType  `json:"building_type"`
	Address      string        `json:"address"`
	JobType      string        `json:"job_type"`
	Description  string        `json:"description"`
	AreaSizeSqft float64       `json:"area_size_sqft"`
	StartDate    string        `json:"start_date"`
	EndDate      string        `json:"end_date"`
	TotalGain    float64       `json:"total_gain"`
	Status       ProjectStatus `json:"status"`
}

// CreateProjectRequest is the request body for creating a project.
// Dates are ISO YYYY-MM-DD strings.
type CreateProjectRequest struct {
	ClientID     uint          `json:"client_id" validate:"required"`
	BuildingType BuildingType  `json:"building_type" validate:"required,oneof=Residential Commercial Industrial"`
	Address      string        `json:"address" validate:"max=255"`
	JobType      string        `json:"job_type" validate:"max=100"`
	Description  string        `json:"description"`
	AreaSizeSqft float64       `json:"area_size_sqft" validate:"gte=0"`
	StartDate    string        `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate      string        `json:"end_date" validate:"required,datetime=2006-01-02"`
	TotalGain    float64       `json:"total_gain"`
	Status       ProjectStatus `json:"status" validate:"omitempty,oneof=pending in_progress completed"`
}

// UpdateProjectRequest is the request body for updating a project
type UpdateProjectRequest struct {
	BuildingType BuildingType  `json:"building_type" validate:"required,oneof=Residential Commercial Industrial"`
	Address      string        `json:"address" validate:"max=255"`
	JobType      string        `json:"job_type" validate:"max=100"`
	Description  string        `json:"description"`
	AreaSizeSqft float64       `json:"area_size_sqft" validate:"gte=0"`
	StartDate    string        `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate      string        `json:"end_date" validate:"required,datetime=2006-01-02"`
	TotalGain    float64       `json:"total_gain"`
	Status       ProjectStatus `json:"status" validate:"required,oneof=pending in_progress completed"`
}

// CostDTO is the API representation of a project's cost breakdown
type CostDTO struct {
	ProjectID             uint    `json:"project_id"`
	BodyPaintCost         float64 `json:"body_paint_cost"`
	TrimPaintCost         float64 `json:"trim_paint_cost"`
	OtherPaintCost        float64 `json:"other_paint_cost"`
	SuppliesCost          float64 `json:"supplies_cost"`
	AdditionalServiceCost float64 `json:"additional_service_cost"`
	TotalCost             float64 `json:"total_cost"`
}

// UpsertCostRequest is the request body for creating or replacing a
// project's cost breakdown
type UpsertCostRequest struct {
	BodyPaintCost         float64 `json:"body_paint_cost" validate:"gte=0"`
	TrimPaintCost         float64 `json:"trim_paint_cost" validate:"gte=0"`
	OtherPaintCost        float64 `json:"other_paint_cost" validate:"gte=0"`
	SuppliesCost          float64 `json:"supplies_cost" validate:"gte=0"`
	AdditionalServiceCost float64 `json:"additional_service_cost" validate:"gte=0"`
}

// AdditionalServiceDTO is the API representation of an extra service
type AdditionalServiceDTO struct {
	ID          uint    `json:"id"`
	ProjectID   uint    `json:"project_id"`
	ServiceName string  `json:"service_name"`
	ServiceCost float64 `json:"service_cost"`
}

// CreateAdditionalServiceRequest is the request body for adding an
// extra service to a project
type CreateAdditionalServiceRequest struct {
	ProjectID   uint    `json:"project_id" validate:"required"`
	ServiceName string  `json:"service_name" validate:"required,max=100"`
	ServiceCost float64 `json:"service_cost" validate:"gte=0"`
}

// AssignmentDTO is the API representation of a project-employee assignment
type AssignmentDTO struct {
	ID           uint    `json:"id"`
	ProjectID    uint    `json:"project_id"`
	EmployeeID   uint    `json:"employee_id"`
	EmployeeName string  `json:"employee_name,omitempty"`
	HoursWorked  float64 `json:"hours_worked"`
}

// CreateAssignmentRequest is the request body for assigning an employee
// to a project
type CreateAssignmentRequest struct {
	ProjectID   uint    `json:"project_id" validate:"required"`
	EmployeeID  uint    `json:"employee_id" validate:"required"`
	HoursWorked float64 `json:"hours_worked" validate:"gte=0"`
}

// DocumentDTO is the API representation of an uploaded document
type DocumentDTO struct {
	ID         uint   `json:"id"`
	FileName   string `json:"file_name"`
	UploadedAt string `json:"uploaded_at"`
	Processed  bool   `json:"processed"`
}

// ImportedRecord summarizes one successfully imported row
type ImportedRecord struct {
	Row         int    `json:"row"`
	ProjectID   uint   `json:"project_id"`
	ClientEmail string `json:"client_email"`
	DateCreated string `json:"date_created,omitempty"`
}

// RowError describes why one row of a document failed to import.
// Row indices are 1-based over data rows.
type RowError struct {
	Row   int    `json:"row"`
	Error string `json:"error"`
}

// BatchReport is the structured outcome of processing one uploaded
// document. Errors is omitted when every row succeeded.
type BatchReport struct {
	DocumentID        uint             `json:"document_id"`
	TotalRows         int              `json:"total_rows"`
	SuccessfulRecords int              `json:"successful_records"`
	FailedRecords     int              `json:"failed_records"`
	Records           []ImportedRecord `json:"records"`
	Errors            []RowError       `json:"errors,omitempty"`
}

// PartiallySuccessful reports whether some but not all rows failed
func (r *BatchReport) PartiallySuccessful() bool {
	return r.FailedRecords > 0
}

// CalendarEvent is one project rendered for the calendar view
type CalendarEvent struct {
	ID           uint          `json:"id"`
	Title        string        `json:"title"`
	Start        string        `json:"start"`
	End          string        `json:"end"`
	ClientName   string        `json:"client_name"`
	ClientEmail  string        `json:"client_email"`
	ClientPhone  string        `json:"client_phone"`
	Address      string        `json:"address"`
	JobType      string        `json:"job_type"`
	BuildingType BuildingType  `json:"building_type"`
	Status       ProjectStatus `json:"status"`
	Description  string        `json:"description"`
}

// YearEarnings is one year's completed-project earnings
type YearEarnings struct {
	Year     int     `json:"year"`
	Earnings float64 `json:"earnings"`
}

// Summary holds the dashboard aggregates
type Summary struct {
	TotalProjects             int64          `json:"total_projects"`
	CompletedProjectsThisYear int64          `json:"completed_projects_this_year"`
	CurrentYearEarnings       float64        `json:"current_year_earnings"`
	TotalEarningsByYear       []YearEarnings `json:"total_earnings_by_year"`
	AverageEarningsPerProject float64        `json:"average_earnings_per_project"`
	TotalClients              int64          `json:"total_clients"`
	ProjectCompletionRate     float64        `json:"project_completion_rate"`
}

// PaginatedResponse wraps a paginated list
type PaginatedResponse struct {
	Data       interface{} `json:"data"`
	Total      int64       `json:"total"`
	Page       int         `json:"page"`
	PageSize   int         `json:"page_size"`
	TotalPages int         `json:"total_pages"`
}
