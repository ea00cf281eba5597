package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gradi-as/contractor-api/internal/domain"
	"github.com/gradi-as/contractor-api/internal/mapper"
	"github.com/gradi-as/contractor-api/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

// ProjectService handles business logic for projects, including the
// filtered listing and the calendar view
type ProjectService struct {
	projectRepo *repository.ProjectRepository
	clientRepo  *repository.ClientRepository
	logger      *zap.Logger
}

func NewProjectService(
	projectRepo *repository.ProjectRepository,
	clientRepo *repository.ClientRepository,
	logger *zap.Logger,
) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
		clientRepo:  clientRepo,
		logger:      logger,
	}
}

func (s *ProjectService) Create(ctx context.Context, req *domain.CreateProjectRequest) (*domain.ProjectDTO, error) {
	// Verify the client exists before creating
	if _, err := s.clientRepo.GetByID(ctx, req.ClientID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to verify client: %w", err)
	}

	startDate, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid start_date", ErrInvalidInput)
	}
	endDate, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid end_date", ErrInvalidInput)
	}

	status := req.Status
	if status == "" {
		status = domain.ProjectStatusPending
	}

	project := &domain.Project{
		ClientID:     req.ClientID,
		BuildingType: req.BuildingType,
		Address:      req.Address,
		JobType:      req.JobType,
		Description:  req.Description,
		AreaSizeSqft: req.AreaSizeSqft,
		StartDate:    startDate,
		EndDate:      endDate,
		TotalGain:    req.TotalGain,
		Status:       status,
	}

	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	// Reload with the client relation for the response
	if reloaded, err := s.projectRepo.GetByID(ctx, project.ID); err != nil {
		s.logger.Warn("failed to reload project after create", zap.Error(err))
	} else {
		project = reloaded
	}

	dto := mapper.ToProjectDTO(project)
	return &dto, nil
}

func (s *ProjectService) GetByID(ctx context.Context, id uint) (*domain.ProjectDTO, error) {
	project, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	dto := mapper.ToProjectDTO(project)
	return &dto, nil
}

func (s *ProjectService) Update(ctx context.Context, id uint, req *domain.UpdateProjectRequest) (*domain.ProjectDTO, error) {
	project, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	startDate, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid start_date", ErrInvalidInput)
	}
	endDate, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid end_date", ErrInvalidInput)
	}

	project.BuildingType = req.BuildingType
	project.Address = req.Address
	project.JobType = req.JobType
	project.Description = req.Description
	project.AreaSizeSqft = req.AreaSizeSqft
	project.StartDate = startDate
	project.EndDate = endDate
	project.TotalGain = req.TotalGain
	project.Status = req.Status

	if err := s.projectRepo.Update(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	dto := mapper.ToProjectDTO(project)
	return &dto, nil
}

func (s *ProjectService) Delete(ctx context.Context, id uint) error {
	if _, err := s.projectRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProjectNotFound
		}
		return fmt.Errorf("failed to get project: %w", err)
	}

	if err := s.projectRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}

func (s *ProjectService) List(ctx context.Context, page, pageSize int, filters *repository.ProjectFilters) (*domain.PaginatedResponse, error) {
	projects, total, err := s.projectRepo.List(ctx, page, pageSize, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	dtos := make([]domain.ProjectDTO, len(projects))
	for i, p := range projects {
		dtos[i] = mapper.ToProjectDTO(&p)
	}

	return paginated(dtos, total, page, pageSize), nil
}

// Calendar returns the projects overlapping [start, end] rendered as
// calendar events
func (s *ProjectService) Calendar(ctx context.Context, start, end *time.Time, status *domain.ProjectStatus) ([]domain.CalendarEvent, error) {
	projects, err := s.projectRepo.Calendar(ctx, start, end, status)
	if err != nil {
		return nil, fmt.Errorf("failed to load calendar projects: %w", err)
	}

	events := make([]domain.CalendarEvent, len(projects))
	for i, p := range projects {
		events[i] = mapper.ToCalendarEvent(&p)
	}
	return events, nil
}
