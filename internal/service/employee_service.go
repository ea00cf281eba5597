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

// EmployeeService handles business logic for employees
type EmployeeService struct {
	employeeRepo *repository.EmployeeRepository
	logger       *zap.Logger
}

func NewEmployeeService(employeeRepo *repository.EmployeeRepository, logger *zap.Logger) *EmployeeService {
	return &EmployeeService{
		employeeRepo: employeeRepo,
		logger:       logger,
	}
}

func (s *EmployeeService) Create(ctx context.Context, req *domain.CreateEmployeeRequest) (*domain.EmployeeDTO, error) {
	employee := &domain.Employee{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Wage:        req.Wage,
		HoursWorked: req.HoursWorked,
	}

	if err := s.employeeRepo.Create(ctx, employee); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrConflict
		}
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}

	dto := mapper.ToEmployeeDTO(employee)
	return &dto, nil
}

func (s *EmployeeService) GetByID(ctx context.Context, id uint) (*domain.EmployeeDTO, error) {
	employee, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	dto := mapper.ToEmployeeDTO(employee)
	return &dto, nil
}

func (s *EmployeeService) Update(ctx context.Context, id uint, req *domain.CreateEmployeeRequest) (*domain.EmployeeDTO, error) {
	employee, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	employee.FirstName = req.FirstName
	employee.LastName = req.LastName
	employee.Wage = req.Wage
	employee.HoursWorked = req.HoursWorked

	if err := s.employeeRepo.Update(ctx, employee); err != nil {
		return nil, fmt.Errorf("failed to update employee: %w", err)
	}

	dto := mapper.ToEmployeeDTO(employee)
	return &dto, nil
}

func (s *EmployeeService) Delete(ctx context.Context, id uint) error {
	if _, err := s.employeeRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to get employee: %w", err)
	}

	if err := s.employeeRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	return nil
}

func (s *EmployeeService) List(ctx context.Context, page, pageSize int, search string) (*domain.PaginatedResponse, error) {
	employees, total, err := s.employeeRepo.List(ctx, page, pageSize, search)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	dtos := make([]domain.EmployeeDTO, len(employees))
	for i, e := range employees {
		dtos[i] = mapper.ToEmployeeDTO(&e)
	}

	return paginated(dtos, total, page, pageSize), nil
}
