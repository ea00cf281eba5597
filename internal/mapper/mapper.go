// Package mapper converts persistence models to API DTOs
package mapper

import (
	"fmt"
	"time"

	"github.com/gradi-as/contractor-api/internal/domain"
)

const dateLayout = "2006-01-02"

// ToClientDTO converts a Client model to its DTO
func ToClientDTO(c *domain.Client) domain.ClientDTO {
	return domain.ClientDTO{
		ID:    c.ID,
		Name:  c.Name,
		Email: c.Email,
		Phone: c.Phone,
	}
}

// ToEmployeeDTO converts an Employee model to its DTO
func ToEmployeeDTO(e *domain.Employee) domain.EmployeeDTO {
	return domain.EmployeeDTO{
		ID:          e.ID,
		FirstName:   e.FirstName,
		LastName:    e.LastName,
		Wage:        e.Wage,
		HoursWorked: e.HoursWorked,
	}
}

// ToProjectDTO converts a Project model to its DTO. Client fields are
// populated when the relation is loaded.
func ToProjectDTO(p *domain.Project) domain.ProjectDTO {
	dto := domain.ProjectDTO{
		ID:           p.ID,
		ClientID:     p.ClientID,
		BuildingType: p.BuildingType,
		Address:      p.Address,
		JobType:      p.JobType,
		Description:  p.Description,
		AreaSizeSqft: p.AreaSizeSqft,
		StartDate:    p.StartDate.Format(dateLayout),
		EndDate:      p.EndDate.Format(dateLayout),
		TotalGain:    p.TotalGain,
		Status:       p.Status,
	}
	if p.Client != nil {
		dto.ClientName = p.Client.Name
		dto.ClientEmail = p.Client.Email
	}
	return dto
}

// ToCostDTO converts a Cost model to its DTO
func ToCostDTO(c *domain.Cost) domain.CostDTO {
	return domain.CostDTO{
		ProjectID:             c.ProjectID,
		BodyPaintCost:         c.BodyPaintCost,
		TrimPaintCost:         c.TrimPaintCost,
		OtherPaintCost:        c.OtherPaintCost,
		SuppliesCost:          c.SuppliesCost,
		AdditionalServiceCost: c.AdditionalServiceCost,
		TotalCost:             c.TotalCost,
	}
}

// ToAdditionalServiceDTO converts an AdditionalService model to its DTO
func ToAdditionalServiceDTO(s *domain.AdditionalService) domain.AdditionalServiceDTO {
	return domain.AdditionalServiceDTO{
		ID:          s.ID,
		ProjectID:   s.ProjectID,
		ServiceName: s.ServiceName,
		ServiceCost: s.ServiceCost,
	}
}

// ToAssignmentDTO converts a ProjectEmployee model to its DTO
func ToAssignmentDTO(a *domain.ProjectEmployee) domain.AssignmentDTO {
	dto := domain.AssignmentDTO{
		ID:          a.ID,
		ProjectID:   a.ProjectID,
		EmployeeID:  a.EmployeeID,
		HoursWorked: a.HoursWorked,
	}
	if a.Employee != nil {
		dto.EmployeeName = a.Employee.FullName()
	}
	return dto
}

// ToDocumentDTO converts an UploadedDocument model to its DTO
func ToDocumentDTO(d *domain.UploadedDocument) domain.DocumentDTO {
	return domain.DocumentDTO{
		ID:         d.ID,
		FileName:   d.FileName,
		UploadedAt: d.UploadedAt.Format(time.RFC3339),
		Processed:  d.Processed,
	}
}

// ToCalendarEvent renders a project as a calendar event. The title is
// synthesized as "{job type} - {building type} ({client name})".
func ToCalendarEvent(p *domain.Project) domain.CalendarEvent {
	event := domain.CalendarEvent{
		ID:           p.ID,
		Start:        p.StartDate.Format(dateLayout),
		End:          p.EndDate.Format(dateLayout),
		Address:      p.Address,
		JobType:      p.JobType,
		BuildingType: p.BuildingType,
		Status:       p.Status,
		Description:  p.Description,
	}
	clientName := ""
	if p.Client != nil {
		clientName = p.Client.Name
		event.ClientName = p.Client.Name
		event.ClientEmail = p.Client.Email
		event.ClientPhone = p.Client.Phone
	}
	event.Title = fmt.Sprintf("%s - %s (%s)", p.JobType, p.BuildingType, clientName)
	return event
}
