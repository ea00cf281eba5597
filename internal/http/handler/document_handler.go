package handler

import (
	"errors"
	"net/http"

	"github.com/gradi-as/contractor-api/internal/domain"
	"github.com/gradi-as/contractor-api/internal/ingest"
	"github.com/gradi-as/contractor-api/internal/service"
	"go.uber.org/zap"
)

// DocumentHandler exposes the job-sheet upload pipeline and the
// uploaded-document records
type DocumentHandler struct {
	importService   *service.ImportService
	documentService *service.DocumentService
	maxUploadBytes  int64
	logger          *zap.Logger
}

func NewDocumentHandler(
	importService *service.ImportService,
	documentService *service.DocumentService,
	maxUploadSizeMB int64,
	logger *zap.Logger,
) *DocumentHandler {
	return &DocumentHandler{
		importService:   importService,
		documentService: documentService,
		maxUploadBytes:  maxUploadSizeMB << 20,
		logger:          logger,
	}
}

// Upload accepts a multipart PDF or CSV job sheet and runs the bulk
// import. 201 means every row imported, 207 means a partial success
// with per-row errors in the body, 400 means the upload itself was
// rejected.
func (h *DocumentHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)

	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		respondJSON(w, http.StatusBadRequest, domain.ErrorResponse{
			Error:   "Bad Request",
			Message: "Invalid multipart form or file too large",
		})
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, domain.ErrorResponse{
			Error:   "Bad Request",
			Message: "A file is required in the 'file' field",
		})
		return
	}
	defer file.Close()

	report, err := h.importService.ImportDocument(r.Context(), header.Filename, file)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoFile):
			respondJSON(w, http.StatusBadRequest, domain.ErrorResponse{
				Error:   "Bad Request",
				Message: "A file is required",
			})
		case errors.Is(err, service.ErrUnsupportedFileType):
			respondJSON(w, http.StatusBadRequest, domain.ErrorResponse{
				Error:   "Bad Request",
				Message: "Only PDF and CSV files are supported",
			})
		case errors.Is(err, ingest.ErrNoTables), errors.Is(err, ingest.ErrNoRows):
			respondJSON(w, http.StatusBadRequest, domain.ErrorResponse{
				Error:   "Bad Request",
				Message: "No table data found in the uploaded file",
			})
		default:
			h.logger.Error("document import failed",
				zap.String("file_name", header.Filename),
				zap.Error(err),
			)
			respondJSON(w, http.StatusInternalServerError, domain.ErrorResponse{
				Error:   "Internal Server Error",
				Message: "Failed to process document",
			})
		}
		return
	}

	status := http.StatusCreated
	if report.PartiallySuccessful() {
		status = http.StatusMultiStatus
	}
	respondJSON(w, status, report)
}

func (h *DocumentHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := parsePaging(r)

	result, err := h.documentService.List(r.Context(), page, pageSize)
	if err != nil {
		h.logger.Error("failed to list documents", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, domain.ErrorResponse{
			Error:   "Internal Server Error",
			Message: "Failed to list documents",
		})
		return
	}

	respondJSON(w, http.StatusOK, result)
}

func (h *DocumentHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, domain.ErrorResponse{
			Error:   "Bad Request",
			Message: "Invalid document ID format",
		})
		return
	}

	doc, err := h.documentService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrDocumentNotFound) {
			respondJSON(w, http.StatusNotFound, domain.ErrorResponse{
				Error:   "Not Found",
				Message: "Document not found",
			})
			return
		}
		h.logger.Error("failed to get document", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, domain.ErrorResponse{
			Error:   "Internal Server Error",
			Message: "Failed to get document",
		})
		return
	}

	respondJSON(w, http.StatusOK, doc)
}

func (h *DocumentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, domain.ErrorResponse{
			Error:   "Bad Request",
			Message: "Invalid document ID format",
		})
		return
	}

	if err := h.documentService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrDocumentNotFound) {
			respondJSON(w, http.StatusNotFound, domain.ErrorResponse{
				Error:   "Not Found",
				Message: "Document not found",
			})
			return
		}
		h.logger.Error("failed to delete document", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, domain.ErrorResponse{
			Error:   "Internal Server Error",
			Message: "Failed to delete document",
		})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
