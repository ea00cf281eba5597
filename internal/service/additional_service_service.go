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

// AdditionalServiceService handles extra services sold with projects
type AdditionalServiceService struct {
	serviceRepo *repository.AdditionalServiceRepository
	projectRepo *repository.ProjectRepository
	logger      *zap.Logger
}

func NewAdditionalServiceService(
	serviceRepo *repository.AdditionalServiceRepository,
	projectRepo *repository.ProjectRepository,
	logger *zap.Logger,
) *AdditionalServiceService {
	return &AdditionalServiceService{
		serviceRepo: serviceRepo,
		projectRepo: projectRepo,
		logger:      logger,
	}
}

func (s *AdditionalServiceService) Create(ctx context.Context, req *domain.CreateAdditionalServiceRequest) (*domain.AdditionalServiceDTO, error) {
	if _, err := s.projectRepo.GetByID(ctx, req.ProjectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to verify project: %w", err)
	}

	service := &domain.AdditionalService{
		ProjectID:   req.ProjectID,
		ServiceName: req.ServiceName,
		ServiceCost: req.ServiceCost,
	}

	if err := s.serviceRepo.Create(ctx, service); err != nil {
		return nil, fmt.Errorf("failed to create additional service: %w", err)
	}

	dto := mapper.ToAdditionalServiceDTO(service)
	return &dto, nil
}

func (s *AdditionalServiceService) GetByID(ctx context.Context, id uint) (*domain.AdditionalServiceDTO, error) {
	service, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get additional service: %w", err)
	}

	dto := mapper.ToAdditionalServiceDTO(service)
	return &dto, nil
}

func (s *AdditionalServiceService) Update(ctx context.Context, id uint, req *domain.CreateAdditionalServiceRequest) (*domain.AdditionalServiceDTO, error) {
	service, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get additional service: %w", err)
	}

	service.ServiceName = req.ServiceName
	service.ServiceCost = req.ServiceCost

	if err := s.serviceRepo.Update(ctx, service); err != nil {
		return nil, fmt.Errorf("failed to update additional service: %w", err)
	}

	dto := mapper.ToAdditionalServiceDTO(service)
	return &dto, nil
}

func (s *AdditionalServiceService) Delete(ctx context.Context, id uint) error {
	if _, err := s.serviceRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get additional service: %w", err)
	}

	if err := s.serviceRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete additional service: %w", err)
	}
	return nil
}

func (s *AdditionalServiceService) List(ctx context.Context, page, pageSize int) (*domain.PaginatedResponse, error) {
	services, total, err := s.serviceRepo.List(ctx, page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list additional services: %w", err)
	}

	dtos := make([]domain.AdditionalServiceDTO, len(services))
	for i, svc := range services {
		dtos[i] = mapper.ToAdditionalServiceDTO(&svc)
	}

	return paginated(dtos, total, page, pageSize), nil
}
