package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gradi-as/contractor-api/internal/domain"
	"github.com/gradi-as/contractor-api/internal/service"
	"go.uber.org/zap"
)

type CostHandler struct {
	costService *service.CostService
	logger      *zap.Logger
}

func NewCostHandler(costService *service.CostService, logger *zap.Logger) *CostHandler {
	return &CostHandler{
		costService: costService,
		logger:      logger,
	}
}

func (h *CostHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := parsePaging(r)

	result, err := h.costService.List(r.Context(), page, pageSize)
	if err != nil {
		h.logger.Error("failed to list costs", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, domain.ErrorResponse{
			Error:   "Internal Server Error",
			Message: "Failed to list costs",
		})
		return
	}

	respondJSON(w, http.StatusOK, result)
}

func (h *CostHandler) GetByProject(w http.ResponseWriter, r *http.Request) {
	projectID, err := parseIDParam(r, "id")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, domain.ErrorResponse{
			Error:   "Bad Request",
			Message: "Invalid project ID format",
		})
		return
	}

	cost, err := h.costService.GetByProjectID(r.Context(), projectID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondJSON(w, http.StatusNotFound, domain.ErrorResponse{
				Error:   "Not Found",
				Message: "Cost breakdown not found",
			})
			return
		}
		h.logger.Error("failed to get cost", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, domain.ErrorResponse{
			Error:   "Internal Server Error",
			Message: "Failed to get cost",
		})
		return
	}

	respondJSON(w, http.StatusOK, cost)
}

// Upsert creates or replaces a project's cost breakdown
func (h *CostHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	projectID, err := parseIDParam(r, "id")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, domain.ErrorResponse{
			Error:   "Bad Request",
			Message: "Invalid project ID format",
		})
		return
	}

	var req domain.UpsertCostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, domain.ErrorResponse{
			Error:   "Bad Request",
			Message: "Invalid request body",
		})
		return
	}

	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	cost, err := h.costService.Upsert(r.Context(), projectID, &req)
	if err != nil {
		if errors.Is(err, service.ErrProjectNotFound) {
			respondJSON(w, http.StatusNotFound, domain.ErrorResponse{
				Error:   "Not Found",
				Message: "Project not found",
			})
			return
		}
		h.logger.Error("failed to upsert cost", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, domain.ErrorResponse{
			Error:   "Internal Server Error",
			Message: "Failed to save cost",
		})
		return
	}

	respondJSON(w, http.StatusOK, cost)
}

func (h *CostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	projectID, err := parseIDParam(r, "id")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, domain.ErrorResponse{
			Error:   "Bad Request",
			Message: "Invalid project ID format",
		})
		return
	}

	if err := h.costService.Delete(r.Context(), projectID); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondJSON(w, http.StatusNotFound, domain.ErrorResponse{
				Error:   "Not Found",
				Message: "Cost breakdown not found",
			})
			return
		}
		h.logger.Error("failed to delete cost", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, domain.ErrorResponse{
			Error:   "Internal Server Error",
			Message: "Failed to delete cost",
		})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
