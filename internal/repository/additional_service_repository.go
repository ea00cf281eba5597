package repository

import (
	"context"

	"github.com/gradi-as/contractor-api/internal/domain"
	"gorm.io/gorm"
)

type AdditionalServiceRepository struct {
	db *gorm.DB
}

func NewAdditionalServiceRepository(db *gorm.DB) *AdditionalServiceRepository {
	return &AdditionalServiceRepository{db: db}
}

func (r *AdditionalServiceRepository) Create(ctx context.Context, service *domain.AdditionalService) error {
	return r.db.WithContext(ctx).Create(service).Error
}

func (r *AdditionalServiceRepository) GetByID(ctx context.Context, id uint) (*domain.AdditionalService, error) {
	var service domain.AdditionalService
	err := r.db.WithContext(ctx).First(&service, id).Error
	if err != nil {
		return nil, err
	}
	return &service, nil
}

func (r *AdditionalServiceRepository) Update(ctx context.Context, service *domain.AdditionalService) error {
	return r.db.WithContext(ctx).Save(service).Error
}

func (r *AdditionalServiceRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&domain.AdditionalService{}, id).Error
}

func (r *AdditionalServiceRepository) ListByProject(ctx context.Context, projectID uint) ([]domain.AdditionalService, error) {
	var services []domain.AdditionalService
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("id").
		Find(&services).Error
	return services, err
}

func (r *AdditionalServiceRepository) List(ctx context.Context, page, pageSize int) ([]domain.AdditionalService, int64, error) {
	var services []domain.AdditionalService
	var total int64

	query := r.db.WithContext(ctx).Model(&domain.AdditionalService{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.Offset(offset).Limit(pageSize).Order("id").Find(&services).Error
	return services, total, err
}
