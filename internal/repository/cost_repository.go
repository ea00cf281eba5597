package repository

import (
	"context"

	"github.com/gradi-as/contractor-api/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CostRepository struct {
	db *gorm.DB
}

func NewCostRepository(db *gorm.DB) *CostRepository {
	return &CostRepository{db: db}
}

func (r *CostRepository) GetByProjectID(ctx context.Context, projectID uint) (*domain.Cost, error) {
	var cost domain.Cost
	err := r.db.WithContext(ctx).First(&cost, "project_id = ?", projectID).Error
	if err != nil {
		return nil, err
	}
	return &cost, nil
}

// Upsert creates or replaces the cost record for a project. The
// derived total is recomputed by the model's save hook.
func (r *CostRepository) Upsert(ctx context.Context, cost *domain.Cost) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "project_id"}},
			UpdateAll: true,
		}).
		Create(cost).Error
}

func (r *CostRepository) Delete(ctx context.Context, projectID uint) error {
	return r.db.WithContext(ctx).Delete(&domain.Cost{}, "project_id = ?", projectID).Error
}

func (r *CostRepository) List(ctx context.Context, page, pageSize int) ([]domain.Cost, int64, error) {
	var costs []domain.Cost
	var total int64

	query := r.db.WithContext(ctx).Model(&domain.Cost{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.Offset(offset).Limit(pageSize).Order("project_id").Find(&costs).Error
	return costs, total, err
}
