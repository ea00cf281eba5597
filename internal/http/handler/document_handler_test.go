package handler

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gradi-as/contractor-api/internal/domain"
	"github.com/gradi-as/contractor-api/internal/ingest"
	"github.com/gradi-as/contractor-api/internal/repository"
	"github.com/gradi-as/contractor-api/internal/service"
	"github.com/gradi-as/contractor-api/internal/storage"
	"github.com/gradi-as/contractor-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestDocumentHandler(t *testing.T) *DocumentHandler {
	t.Helper()

	db := testutil.SetupTestDB(t)
	fileStorage, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	documentRepo := repository.NewDocumentRepository(db)
	importService := service.NewImportService(db, documentRepo, fileStorage, ingest.HeaderMapV1(), zap.NewNop())
	documentService := service.NewDocumentService(documentRepo, fileStorage, zap.NewNop())

	return NewDocumentHandler(importService, documentService, 25, zap.NewNop())
}

func multipartUpload(t *testing.T, fileName, content string) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", fileName)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/documents/upload", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestDocumentHandlerUpload(t *testing.T) {
	goodRow := "ann@example.com,555-0101,Ann Lee,2026-01-05,2026-01-20"
	badRow := "bob@example.com,555-0102,Bob Ray,2026-01-05,never"
	header := "Email,Client Phone,Employee Name,Start Date,End Date"

	t.Run("full success returns 201", func(t *testing.T) {
		h := newTestDocumentHandler(t)
		rec := httptest.NewRecorder()
		h.Upload(rec, multipartUpload(t, "sheets.csv", header+"\n"+goodRow+"\n"))

		require.Equal(t, http.StatusCreated, rec.Code)
		var report domain.BatchReport
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
		assert.Equal(t, 1, report.TotalRows)
		assert.Equal(t, 1, report.SuccessfulRecords)
		assert.Empty(t, report.Errors)
	})

	t.Run("partial success returns 207", func(t *testing.T) {
		h := newTestDocumentHandler(t)
		rec := httptest.NewRecorder()
		h.Upload(rec, multipartUpload(t, "sheets.csv", header+"\n"+goodRow+"\n"+badRow+"\n"))

		require.Equal(t, http.StatusMultiStatus, rec.Code)
		var report domain.BatchReport
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
		assert.Equal(t, 1, report.SuccessfulRecords)
		assert.Equal(t, 1, report.FailedRecords)
		require.Len(t, report.Errors, 1)
		assert.Equal(t, 2, report.Errors[0].Row)
	})

	t.Run("unsupported file type returns 400", func(t *testing.T) {
		h := newTestDocumentHandler(t)
		rec := httptest.NewRecorder()
		h.Upload(rec, multipartUpload(t, "sheets.txt", "whatever"))

		require.Equal(t, http.StatusBadRequest, rec.Code)
		var resp domain.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Only PDF and CSV files are supported", resp.Message)
	})

	t.Run("empty csv returns 400", func(t *testing.T) {
		h := newTestDocumentHandler(t)
		rec := httptest.NewRecorder()
		h.Upload(rec, multipartUpload(t, "sheets.csv", ""))

		require.Equal(t, http.StatusBadRequest, rec.Code)
		var resp domain.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "No table data found in the uploaded file", resp.Message)
	})

	t.Run("missing file field returns 400", func(t *testing.T) {
		h := newTestDocumentHandler(t)

		var body bytes.Buffer
		writer := multipart.NewWriter(&body)
		require.NoError(t, writer.WriteField("note", "no file here"))
		require.NoError(t, writer.Close())

		req := httptest.NewRequest(http.MethodPost, "/api/v1/documents/upload", &body)
		req.Header.Set("Content-Type", writer.FormDataContentType())

		rec := httptest.NewRecorder()
		h.Upload(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
