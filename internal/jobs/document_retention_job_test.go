package jobs

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gradi-as/contractor-api/internal/domain"
	"github.com/gradi-as/contractor-api/internal/repository"
	"github.com/gradi-as/contractor-api/internal/storage"
	"github.com/gradi-as/contractor-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestDocumentRetentionJob(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fileStorage, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	documentRepo := repository.NewDocumentRepository(db)
	ctx := context.Background()

	storeDoc := func(name string, age time.Duration, processed bool) *domain.UploadedDocument {
		path, _, err := fileStorage.Upload(ctx, name, "text/csv", strings.NewReader("Email\n"))
		require.NoError(t, err)
		doc := &domain.UploadedDocument{
			FileName:    name,
			StoragePath: path,
			UploadedAt:  time.Now().UTC().Add(-age),
			Processed:   processed,
		}
		require.NoError(t, db.Create(doc).Error)
		return doc
	}

	expired := storeDoc("old.csv", 48*time.Hour, true)
	fresh := storeDoc("fresh.csv", time.Hour, true)
	unprocessed := storeDoc("stuck.csv", 48*time.Hour, false)

	job := NewDocumentRetentionJob(documentRepo, fileStorage, 24*time.Hour, zap.NewNop())
	job.Run()

	_, err = documentRepo.GetByID(ctx, expired.ID)
	assert.Error(t, err, "expired document should be removed")
	_, err = fileStorage.Download(ctx, expired.StoragePath)
	assert.Error(t, err, "expired file should be removed")

	// Recent and unprocessed documents are untouched
	_, err = documentRepo.GetByID(ctx, fresh.ID)
	assert.NoError(t, err)
	_, err = documentRepo.GetByID(ctx, unprocessed.ID)
	assert.NoError(t, err)

	rc, err := fileStorage.Download(ctx, fresh.StoragePath)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
}
