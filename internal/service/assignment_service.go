package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/gradi-as/contractor-api/internal/domain"
	"github.com/gradi-as/contractor-api/internal/mapper"
	"github.com/gradi-as/contractor-api/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AssignmentService handles project-employee assignments
type AssignmentService struct {
	assignmentRepo *repository.AssignmentRepository
	projectRepo    *repository.ProjectRepository
	employeeRepo   *repository.EmployeeRepository
	logger         *zap.Logger
}

func NewAssignmentService(
	assignmentRepo *repository.AssignmentRepository,
	projectRepo *repository.ProjectRepository,
	employeeRepo *repository.EmployeeRepository,
	logger *zap.Logger,
) *AssignmentService {
	return &AssignmentService{
		assignmentRepo: assignmentRepo,
		projectRepo:    projectRepo,
		employeeRepo:   employeeRepo,
		logger:         logger,
	}
}

func (s *AssignmentService) Create(ctx context.Context, req *domain.CreateAssignmentRequest) (*domain.AssignmentDTO, error) {
	if _, err := s.projectRepo.GetByID(ctx, req.ProjectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to verify project: %w", err)
	}
	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to verify employee: %w", err)
	}

	assignment := &domain.ProjectEmployee{
		ProjectID:   req.ProjectID,
		EmployeeID:  req.EmployeeID,
		HoursWorked: req.HoursWorked,
	}

	if err := s.assignmentRepo.Create(ctx, assignment); err != nil {
		return nil, fmt.Errorf("failed to create assignment: %w", err)
	}

	// Reload with the employee relation for the response
	assignment, err := s.assignmentRepo.GetByID(ctx, assignment.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload assignment: %w", err)
	}

	dto := mapper.ToAssignmentDTO(assignment)
	return &dto, nil
}

func (s *AssignmentService) GetByID(ctx context.Context, id uint) (*domain.AssignmentDTO, error) {
	assignment, err := s.assignmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get assignment: %w", err)
	}

	dto := mapper.ToAssignmentDTO(assignment)
	return &dto, nil
}

func (s *AssignmentService) Update(ctx context.Context, id uint, req *domain.CreateAssignmentRequest) (*domain.AssignmentDTO, error) {
	assignment, err := s.assignmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get assignment: %w", err)
	}

	assignment.HoursWorked = req.HoursWorked

	if err := s.assignmentRepo.Update(ctx, assignment); err != nil {
		return nil, fmt.Errorf("failed to update assignment: %w", err)
	}

	dto := mapper.ToAssignmentDTO(assignment)
	return &dto, nil
}

func (s *AssignmentService) Delete(ctx context.Context, id uint) error {
	if _, err := s.assignmentRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get assignment: %w", err)
	}

	if err := s.assignmentRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete assignment: %w", err)
	}
	return nil
}

// ListByProject returns all employees assigned to a project
func (s *AssignmentService) ListByProject(ctx context.Context, projectID uint) ([]domain.AssignmentDTO, error) {
	if _, err := s.projectRepo.GetByID(ctx, projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to verify project: %w", err)
	}

	assignments, err := s.assignmentRepo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}

	dtos := make([]domain.AssignmentDTO, len(assignments))
	for i, a := range assignments {
		dtos[i] = mapper.ToAssignmentDTO(&a)
	}
	return dtos, nil
}

func (s *AssignmentService) List(ctx context.Context, page, pageSize int) (*domain.PaginatedResponse, error) {
	assignments, total, err := s.assignmentRepo.List(ctx, page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}

	dtos := make([]domain.AssignmentDTO, len(assignments))
	for i, a := range assignments {
		dtos[i] = mapper.ToAssignmentDTO(&a)
	}

	return paginated(dtos, total, page, pageSize), nil
}
