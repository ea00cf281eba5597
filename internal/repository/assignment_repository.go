package repository

import (
	"context"

	"github.com/gradi-as/contractor-api/internal/domain"
	"gorm.io/gorm"
)

// AssignmentRepository persists project-employee assignments
type AssignmentRepository struct {
	db *gorm.DB
}

func NewAssignmentRepository(db *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

func (r *AssignmentRepository) Create(ctx context.Context, assignment *domain.ProjectEmployee) error {
	return r.db.WithContext(ctx).Create(assignment).Error
}

func (r *AssignmentRepository) GetByID(ctx context.Context, id uint) (*domain.ProjectEmployee, error) {
	var assignment domain.ProjectEmployee
	err := r.db.WithContext(ctx).Preload("Employee").First(&assignment, id).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

func (r *AssignmentRepository) Update(ctx context.Context, assignment *domain.ProjectEmployee) error {
	return r.db.WithContext(ctx).Save(assignment).Error
}

func (r *AssignmentRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&domain.ProjectEmployee{}, id).Error
}

func (r *AssignmentRepository) ListByProject(ctx context.Context, projectID uint) ([]domain.ProjectEmployee, error) {
	var assignments []domain.ProjectEmployee
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Where("project_id = ?", projectID).
		Order("id").
		Find(&assignments).Error
	return assignments, err
}

func (r *AssignmentRepository) List(ctx context.Context, page, pageSize int) ([]domain.ProjectEmployee, int64, error) {
	var assignments []domain.ProjectEmployee
	var total int64

	query := r.db.WithContext(ctx).Model(&domain.ProjectEmployee{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.Preload("Employee").Offset(offset).Limit(pageSize).Order("id").Find(&assignments).Error
	return assignments, total, err
}
