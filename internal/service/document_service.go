package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/gradi-as/contractor-api/internal/domain"
	"github.com/gradi-as/contractor-api/internal/mapper"
	"github.com/gradi-as/contractor-api/internal/repository"
	"github.com/gradi-as/contractor-api/internal/storage"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DocumentService handles uploaded document metadata. The import
// pipeline itself lives in ImportService.
type DocumentService struct {
	documentRepo *repository.DocumentRepository
	fileStorage  storage.Storage
	logger       *zap.Logger
}

func NewDocumentService(
	documentRepo *repository.DocumentRepository,
	fileStorage storage.Storage,
	logger *zap.Logger,
) *DocumentService {
	return &DocumentService{
		documentRepo: documentRepo,
		fileStorage:  fileStorage,
		logger:       logger,
	}
}

func (s *DocumentService) GetByID(ctx context.Context, id uint) (*domain.DocumentDTO, error) {
	doc, err := s.documentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDocumentNotFound
		}
		return nil, fmt.Errorf("failed to get document: %w", err)
	}

	dto := mapper.ToDocumentDTO(doc)
	return &dto, nil
}

// Delete removes the document record and its stored file. A missing
// stored file is logged, not fatal: the record is the source of truth.
func (s *DocumentService) Delete(ctx context.Context, id uint) error {
	doc, err := s.documentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrDocumentNotFound
		}
		return fmt.Errorf("failed to get document: %w", err)
	}

	if err := s.fileStorage.Delete(ctx, doc.StoragePath); err != nil {
		s.logger.Warn("failed to delete stored file",
			zap.Uint("document_id", doc.ID),
			zap.String("storage_path", doc.StoragePath),
			zap.Error(err))
	}

	if err := s.documentRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	return nil
}

func (s *DocumentService) List(ctx context.Context, page, pageSize int) (*domain.PaginatedResponse, error) {
	docs, total, err := s.documentRepo.List(ctx, page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}

	dtos := make([]domain.DocumentDTO, len(docs))
	for i, d := range docs {
		dtos[i] = mapper.ToDocumentDTO(&d)
	}

	return paginated(dtos, total, page, pageSize), nil
}
