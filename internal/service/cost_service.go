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

// CostService handles the one-to-one cost breakdown of projects
type CostService struct {
	costRepo    *repository.CostRepository
	projectRepo *repository.ProjectRepository
	logger      *zap.Logger
}

func NewCostService(
	costRepo *repository.CostRepository,
	projectRepo *repository.ProjectRepository,
	logger *zap.Logger,
) *CostService {
	return &CostService{
		costRepo:    costRepo,
		projectRepo: projectRepo,
		logger:      logger,
	}
}

// Upsert creates or replaces the cost breakdown of a project. The
// derived total is recomputed on save.
func (s *CostService) Upsert(ctx context.Context, projectID uint, req *domain.UpsertCostRequest) (*domain.CostDTO, error) {
	if _, err := s.projectRepo.GetByID(ctx, projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to verify project: %w", err)
	}

	cost := &domain.Cost{
		ProjectID:             projectID,
		BodyPaintCost:         req.BodyPaintCost,
		TrimPaintCost:         req.TrimPaintCost,
		OtherPaintCost:        req.OtherPaintCost,
		SuppliesCost:          req.SuppliesCost,
		AdditionalServiceCost: req.AdditionalServiceCost,
	}

	if err := s.costRepo.Upsert(ctx, cost); err != nil {
		return nil, fmt.Errorf("failed to upsert cost: %w", err)
	}

	dto := mapper.ToCostDTO(cost)
	return &dto, nil
}

func (s *CostService) GetByProjectID(ctx context.Context, projectID uint) (*domain.CostDTO, error) {
	cost, err := s.costRepo.GetByProjectID(ctx, projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get cost: %w", err)
	}

	dto := mapper.ToCostDTO(cost)
	return &dto, nil
}

func (s *CostService) Delete(ctx context.Context, projectID uint) error {
	if _, err := s.costRepo.GetByProjectID(ctx, projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get cost: %w", err)
	}

	if err := s.costRepo.Delete(ctx, projectID); err != nil {
		return fmt.Errorf("failed to delete cost: %w", err)
	}
	return nil
}

func (s *CostService) List(ctx context.Context, page, pageSize int) (*domain.PaginatedResponse, error) {
	costs, total, err := s.costRepo.List(ctx, page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list costs: %w", err)
	}

	dtos := make([]domain.CostDTO, len(costs))
	for i, c := range costs {
		dtos[i] = mapper.ToCostDTO(&c)
	}

	return paginated(dtos, total, page, pageSize), nil
}
