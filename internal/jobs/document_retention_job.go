package jobs

import (
	"context"
	"time"

	"github.com/gradi-as/contractor-api/internal/repository"
	"github.com/gradi-as/contractor-api/internal/storage"
	"go.uber.org/zap"
)

// DocumentRetentionJob removes processed job sheets older than the
// configured retention window. The stored file goes first; a file that
// fails to delete is retried on the next run because its record is
// only removed after the file is gone.
type DocumentRetentionJob struct {
	documentRepo *repository.DocumentRepository
	fileStorage  storage.Storage
	maxAge       time.Duration
	logger       *zap.Logger
}

func NewDocumentRetentionJob(
	documentRepo *repository.DocumentRepository,
	fileStorage storage.Storage,
	maxAge time.Duration,
	logger *zap.Logger,
) *DocumentRetentionJob {
	return &DocumentRetentionJob{
		documentRepo: documentRepo,
		fileStorage:  fileStorage,
		maxAge:       maxAge,
		logger:       logger,
	}
}

// Run deletes processed documents uploaded before the retention cutoff
func (j *DocumentRetentionJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	cutoff := time.Now().UTC().Add(-j.maxAge)
	docs, err := j.documentRepo.ListProcessedBefore(ctx, cutoff)
	if err != nil {
		j.logger.Error("failed to list expired documents", zap.Error(err))
		return
	}

	var removed int
	for _, doc := range docs {
		if err := j.fileStorage.Delete(ctx, doc.StoragePath); err != nil {
			j.logger.Warn("failed to delete stored file, will retry next run",
				zap.Uint("document_id", doc.ID),
				zap.String("storage_path", doc.StoragePath),
				zap.Error(err),
			)
			continue
		}
		if err := j.documentRepo.Delete(ctx, doc.ID); err != nil {
			j.logger.Warn("failed to delete document record",
				zap.Uint("document_id", doc.ID),
				zap.Error(err),
			)
			continue
		}
		removed++
	}

	if len(docs) > 0 {
		j.logger.Info("document retention sweep finished",
			zap.Int("expired", len(docs)),
			zap.Int("removed", removed),
		)
	}
}
