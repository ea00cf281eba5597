package repository

import (
	"context"
	"strings"
	"time"

	"github.com/gradi-as/contractor-api/internal/domain"
	"gorm.io/gorm"
)

// ProjectFilters holds the optional filters for listing projects.
// Substring filters match case-insensitively.
type ProjectFilters struct {
	Status       *domain.ProjectStatus
	BuildingType *domain.BuildingType
	JobType      string
	Address      string
	StartDate    *time.Time // projects starting on or after
	EndDate      *time.Time // projects ending on or before
	MinArea      *float64
	MaxArea      *float64
	ClientName   string
	ClientEmail  string
	Search       string // spans client name/email, address, job type, description
}

type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) Create(ctx context.Context, project *domain.Project) error {
	return r.db.WithContext(ctx).Create(project).Error
}

func (r *ProjectRepository) GetByID(ctx context.Context, id uint) (*domain.Project, error) {
	var project domain.Project
	err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Cost").
		Preload("Services").
		First(&project, id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *ProjectRepository) Update(ctx context.Context, project *domain.Project) error {
	return r.db.WithContext(ctx).Save(project).Error
}

func (r *ProjectRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&domain.Project{}, id).Error
}

// List returns a filtered page of projects, newest start date first
func (r *ProjectRepository) List(ctx context.Context, page, pageSize int, filters *ProjectFilters) ([]domain.Project, int64, error) {
	var projects []domain.Project
	var total int64

	query := r.db.WithContext(ctx).Model(&domain.Project{}).
		Joins("JOIN clients ON clients.id = projects.client_id")

	query = applyProjectFilters(query, filters)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.
		Preload("Client").
		Offset(offset).Limit(pageSize).
		Order("projects.start_date DESC").
		Find(&projects).Error

	return projects, total, err
}

func applyProjectFilters(query *gorm.DB, filters *ProjectFilters) *gorm.DB {
	if filters == nil {
		return query
	}

	if filters.Status != nil {
		query = query.Where("projects.status = ?", *filters.Status)
	}
	if filters.BuildingType != nil {
		query = query.Where("projects.building_type = ?", *filters.BuildingType)
	}
	if filters.JobType != "" {
		query = query.Where("LOWER(projects.job_type) LIKE ?", likePattern(filters.JobType))
	}
	if filters.Address != "" {
		query = query.Where("LOWER(projects.address) LIKE ?", likePattern(filters.Address))
	}
	if filters.StartDate != nil {
		query = query.Where("projects.start_date >= ?", *filters.StartDate)
	}
	if filters.EndDate != nil {
		query = query.Where("projects.end_date <= ?", *filters.EndDate)
	}
	if filters.MinArea != nil {
		query = query.Where("projects.area_size_sqft >= ?", *filters.MinArea)
	}
	if filters.MaxArea != nil {
		query = query.Where("projects.area_size_sqft <= ?", *filters.MaxArea)
	}
	if filters.ClientName != "" {
		query = query.Where("LOWER(clients.name) LIKE ?", likePattern(filters.ClientName))
	}
	if filters.ClientEmail != "" {
		query = query.Where("LOWER(clients.email) LIKE ?", likePattern(filters.ClientEmail))
	}
	if filters.Search != "" {
		pattern := likePattern(filters.Search)
		query = query.Where(
			"LOWER(clients.name) LIKE ? OR LOWER(clients.email) LIKE ? OR LOWER(projects.address) LIKE ? OR LOWER(projects.job_type) LIKE ? OR LOWER(projects.description) LIKE ?",
			pattern, pattern, pattern, pattern, pattern,
		)
	}

	return query
}

func likePattern(s string) string {
	return "%" + strings.ToLower(s) + "%"
}

// Calendar returns projects overlapping the [start, end] range,
// optionally restricted to one status, with their clients preloaded
func (r *ProjectRepository) Calendar(ctx context.Context, start, end *time.Time, status *domain.ProjectStatus) ([]domain.Project, error) {
	var projects []domain.Project

	query := r.db.WithContext(ctx).Model(&domain.Project{}).Preload("Client")

	if start != nil {
		query = query.Where("end_date >= ?", *start)
	}
	if end != nil {
		query = query.Where("start_date <= ?", *end)
	}
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	err := query.Order("start_date").Find(&projects).Error
	return projects, err
}

func (r *ProjectRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Project{}).Count(&count).Error
	return count, err
}

// CompletedEarnings is a completed project's end date paired with its
// total gain, used by the dashboard aggregates
type CompletedEarnings struct {
	EndDate   time.Time
	TotalGain float64
}

// ListCompletedEarnings returns (end date, total gain) for every
// completed project
func (r *ProjectRepository) ListCompletedEarnings(ctx context.Context) ([]CompletedEarnings, error) {
	var rows []CompletedEarnings
	err := r.db.WithContext(ctx).Model(&domain.Project{}).
		Select("end_date, total_gain").
		Where("status = ?", domain.ProjectStatusCompleted).
		Find(&rows).Error
	return rows, err
}
