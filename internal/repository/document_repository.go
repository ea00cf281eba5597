package repository

import (
	"context"
	"time"

	"github.com/gradi-as/contractor-api/internal/domain"
	"gorm.io/gorm"
)

type DocumentRepository struct {
	db *gorm.DB
}

func NewDocumentRepository(db *gorm.DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

func (r *DocumentRepository) Create(ctx context.Context, doc *domain.UploadedDocument) error {
	return r.db.WithContext(ctx).Create(doc).Error
}

func (r *DocumentRepository) GetByID(ctx context.Context, id uint) (*domain.UploadedDocument, error) {
	var doc domain.UploadedDocument
	err := r.db.WithContext(ctx).First(&doc, id).Error
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// MarkProcessed flips the processed flag. Called once all of a
// document's rows have been attempted, regardless of row failures.
func (r *DocumentRepository) MarkProcessed(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).
		Model(&domain.UploadedDocument{}).
		Where("id = ?", id).
		Update("processed", true).Error
}

func (r *DocumentRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&domain.UploadedDocument{}, id).Error
}

func (r *DocumentRepository) List(ctx context.Context, page, pageSize int) ([]domain.UploadedDocument, int64, error) {
	var docs []domain.UploadedDocument
	var total int64

	query := r.db.WithContext(ctx).Model(&domain.UploadedDocument{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.Offset(offset).Limit(pageSize).Order("uploaded_at DESC").Find(&docs).Error
	return docs, total, err
}

// ListProcessedBefore returns processed documents uploaded before the
// cutoff, for the retention job
func (r *DocumentRepository) ListProcessedBefore(ctx context.Context, cutoff time.Time) ([]domain.UploadedDocument, error) {
	var docs []domain.UploadedDocument
	err := r.db.WithContext(ctx).
		Where("processed = ? AND uploaded_at < ?", true, cutoff).
		Find(&docs).Error
	return docs, err
}
