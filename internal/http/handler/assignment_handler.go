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

type AssignmentHandler struct {
	assignmentService *service.AssignmentService
	logger            *zap.Logger
}

func NewAssignmentHandler(assignmentService *service.AssignmentService, logger *zap.Logger) *AssignmentHandler {
	return &AssignmentHandler{
		assignmentService: assignmentService,
		logger:            logger,
	}
}

func (h *AssignmentHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := parsePaging(r)

	result, err := h.assignmentService.List(r.Context(), page, pageSize)
	if err != nil {
		h.logger.Error("failed to list assignments", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, domain.ErrorResponse{
			Error:   "Internal Server Error",
			Message: "Failed to list assignments",
		})
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// ListByProject returns the employees assigned to one project
func (h *AssignmentHandler) ListByProject(w http.ResponseWriter, r *http.Request) {
	projectID, err := parseIDParam(r, "id")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, domain.ErrorResponse{
			Error:   "Bad Request",
			Message: "Invalid project ID format",
		})
		return
	}

	assignments, err := h.assignmentService.ListByProject(r.Context(), projectID)
	if err != nil {
		if errors.Is(err, service.ErrProjectNotFound) {
			respondJSON(w, http.StatusNotFound, domain.ErrorResponse{
				Error:   "Not Found",
				Message: "Project not found",
			})
			return
		}
		h.logger.Error("failed to list project assignments", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, domain.ErrorResponse{
			Error:   "Internal Server Error",
			Message: "Failed to list assignments",
		})
		return
	}

	respondJSON(w, http.StatusOK, assignments)
}

func (h *AssignmentHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, domain.ErrorResponse{
			Error:   "Bad Request",
			Message: "Invalid assignment ID format",
		})
		return
	}

	assignment, err := h.assignmentService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondJSON(w, http.StatusNotFound, domain.ErrorResponse{
				Error:   "Not Found",
				Message: "Assignment not found",
			})
			return
		}
		h.logger.Error("failed to get assignment", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, domain.ErrorResponse{
			Error:   "Internal Server Error",
			Message: "Failed to get assignment",
		})
		return
	}

	respondJSON(w, http.StatusOK, assignment)
}

func (h *AssignmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateAssignmentRequest
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

	assignment, err := h.assignmentService.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrProjectNotFound) {
			respondJSON(w, http.StatusBadRequest, domain.ErrorResponse{
				Error:   "Bad Request",
				Message: "Project not found",
			})
			return
		}
		if errors.Is(err, service.ErrEmployeeNotFound) {
			respondJSON(w, http.StatusBadRequest, domain.ErrorResponse{
				Error:   "Bad Request",
				Message: "Employee not found",
			})
			return
		}
		h.logger.Error("failed to create assignment", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, domain.ErrorResponse{
			Error:   "Internal Server Error",
			Message: "Failed to create assignment",
		})
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/v1/assignments/%d", assignment.ID))
	respondJSON(w, http.StatusCreated, assignment)
}

func (h *AssignmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, domain.ErrorResponse{
			Error:   "Bad Request",
			Message: "Invalid assignment ID format",
		})
		return
	}

	var req domain.CreateAssignmentRequest
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

	assignment, err := h.assignmentService.Update(r.Context(), id, &req)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondJSON(w, http.StatusNotFound, domain.ErrorResponse{
				Error:   "Not Found",
				Message: "Assignment not found",
			})
			return
		}
		h.logger.Error("failed to update assignment", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, domain.ErrorResponse{
			Error:   "Internal Server Error",
			Message: "Failed to update assignment",
		})
		return
	}

	respondJSON(w, http.StatusOK, assignment)
}

func (h *AssignmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, domain.ErrorResponse{
			Error:   "Bad Request",
			Message: "Invalid assignment ID format",
		})
		return
	}

	if err := h.assignmentService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondJSON(w, http.StatusNotFound, domain.ErrorResponse{
				Error:   "Not Found",
				Message: "Assignment not found",
			})
			return
		}
		h.logger.Error("failed to delete assignment", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, domain.ErrorResponse{
			Error:   "Internal Server Error",
			Message: "Failed to delete assignment",
		})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
