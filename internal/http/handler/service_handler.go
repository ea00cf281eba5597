package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gradi-as/contractor-api/internal/domain"
	"github.com/gradi-as/contractor-api/internal/service"
	"go.uber.org/zap"
)

// ServiceHandler exposes the additional services sold with projects
type ServiceHandler struct {
	additionalService *service.AdditionalServiceService
	logger            *zap.Logger
}

func NewServiceHandler(additionalService *service.AdditionalServiceService, logger *zap.Logger) *ServiceHandler {
	return &ServiceHandler{
		additionalService: additionalService,
		logger:            logger,
	}
}

func (h *ServiceHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := parsePaging(r)

	result, err := h.additionalService.List(r.Context(), page, pageSize)
	if err != nil {
		h.logger.Error("failed to list additional services", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, domain.ErrorResponse{
			Error:   "Internal Server Error",
			Message: "Failed to list additional services",
		})
		return
	}

	respondJSON(w, http.StatusOK, result)
}

func (h *ServiceHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, domain.ErrorResponse{
			Error:   "Bad Request",
			Message: "Invalid service ID format",
		})
		return
	}

	svc, err := h.additionalService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondJSON(w, http.StatusNotFound, domain.ErrorResponse{
				Error:   "Not Found",
				Message: "Additional service not found",
			})
			return
		}
		h.logger.Error("failed to get additional service", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, domain.ErrorResponse{
			Error:   "Internal Server Error",
			Message: "Failed to get additional service",
		})
		return
	}

	respondJSON(w, http.StatusOK, svc)
}

func (h *ServiceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateAdditionalServiceRequest
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

	svc, err := h.additionalService.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrProjectNotFound) {
			respondJSON(w, http.StatusBadRequest, domain.ErrorResponse{
				Error:   "Bad Request",
				Message: "Project not found",
			})
			return
		}
		h.logger.Error("failed to create additional service", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, domain.ErrorResponse{
			Error:   "Internal Server Error",
			Message: "Failed to create additional service",
		})
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/v1/services/%d", svc.ID))
	respondJSON(w, http.StatusCreated, svc)
}

func (h *ServiceHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, domain.ErrorResponse{
			Error:   "Bad Request",
			Message: "Invalid service ID format",
		})
		return
	}

	var req domain.CreateAdditionalServiceRequest
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

	svc, err := h.additionalService.Update(r.Context(), id, &req)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondJSON(w, http.StatusNotFound, domain.ErrorResponse{
				Error:   "Not Found",
				Message: "Additional service not found",
			})
			return
		}
		h.logger.Error("failed to update additional service", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, domain.ErrorResponse{
			Error:   "Internal Server Error",
			Message: "Failed to update additional service",
		})
		return
	}

	respondJSON(w, http.StatusOK, svc)
}

func (h *ServiceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, domain.ErrorResponse{
			Error:   "Bad Request",
			Message: "Invalid service ID format",
		})
		return
	}

	if err := h.additionalService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondJSON(w, http.StatusNotFound, domain.ErrorResponse{
				Error:   "Not Found",
				Message: "Additional service not found",
			})
			return
		}
		h.logger.Error("failed to delete additional service", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, domain.ErrorResponse{
			Error:   "Internal Server Error",
			Message: "Failed to delete additional service",
		})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
