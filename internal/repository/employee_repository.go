package repository

import (
	"context"
	"strings"

	"github.com/gradi-as/contractor-api/internal/domain"
	"gorm.io/gorm"
)

type EmployeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

func (r *EmployeeRepository) Create(ctx context.Context, employee *domain.Employee) error {
	return r.db.WithContext(ctx).Create(employee).Error
}

func (r *EmployeeRepository) GetByID(ctx context.Context, id uint) (*domain.Employee, error) {
	var employee domain.Employee
	err := r.db.WithContext(ctx).First(&employee, id).Error
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

// GetByName looks up an employee by the exact (first, last) name pair
func (r *EmployeeRepository) GetByName(ctx context.Context, firstName, lastName string) (*domain.Employee, error) {
	var employee domain.Employee
	err := r.db.WithContext(ctx).
		Where("first_name = ? AND last_name = ?", firstName, lastName).
		First(&employee).Error
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *EmployeeRepository) Update(ctx context.Context, employee *domain.Employee) error {
	return r.db.WithContext(ctx).Save(employee).Error
}

func (r *EmployeeRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&domain.Employee{}, id).Error
}

func (r *EmployeeRepository) List(ctx context.Context, page, pageSize int, search string) ([]domain.Employee, int64, error) {
	var employees []domain.Employee
	var total int64

	query := r.db.WithContext(ctx).Model(&domain.Employee{})

	if search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ?", pattern, pattern)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.Offset(offset).Limit(pageSize).Order("last_name, first_name").Find(&employees).Error

	return employees, total, err
}
