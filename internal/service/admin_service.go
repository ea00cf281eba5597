package service

import (
	"context"
	"fmt"

	"github.com/gradi-as/contractor-api/internal/repository"
	"go.uber.org/zap"
)

// AdminService exposes destructive maintenance operations
type AdminService struct {
	adminRepo *repository.AdminRepository
	logger    *zap.Logger
}

func NewAdminService(adminRepo *repository.AdminRepository, logger *zap.Logger) *AdminService {
	return &AdminService{
		adminRepo: adminRepo,
		logger:    logger,
	}
}

// ClearAllData wipes every entity in one transaction
func (s *AdminService) ClearAllData(ctx context.Context) error {
	s.logger.Warn("clearing all data")
	if err := s.adminRepo.ClearAll(ctx); err != nil {
		return fmt.Errorf("failed to clear data: %w", err)
	}
	return nil
}
