package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gradi-as/contractor-api/internal/domain"
	"github.com/gradi-as/contractor-api/internal/repository"
	"github.com/gradi-as/contractor-api/internal/service"
	"go.uber.org/zap"
)

type ProjectHandler struct {
	projectService *service.ProjectService
	logger         *zap.Logger
}

func NewProjectHandler(projectService *service.ProjectService, logger *zap.Logger) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
		logger:         logger,
	}
}

func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := parsePaging(r)
	q := r.URL.Query()

	filters := &repository.ProjectFilters{
		JobType:     q.Get("job_type"),
		Address:     q.Get("address"),
		ClientName:  q.Get("client_name"),
		ClientEmail: q.Get("client_email"),
		Search:      q.Get("search"),
	}

	if status := q.Get("status"); status != "" {
		s := domain.ProjectStatus(status)
		if !s.IsValid() {
			respondJSON(w, http.StatusBadRequest, domain.ErrorResponse{
				Error:   "Bad Request",
				Message: "Invalid status filter",
			})
			return
		}
		filters.Status = &s
	}

	if buildingType := q.Get("building_type"); buildingType != "" {
		b := domain.BuildingType(buildingType)
		if !b.IsValid() {
			respondJSON(w, http.StatusBadRequest, domain.ErrorResponse{
				Error:   "Bad Request",
				Message: "Invalid building_type filter",
			})
			return
		}
		filters.BuildingType = &b
	}

	if raw := q.Get("start_date"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			respondJSON(w, http.StatusBadRequest, domain.ErrorResponse{
				Error:   "Bad Request",
				Message: "start_date must be YYYY-MM-DD",
			})
			return
		}
		filters.StartDate = &t
	}

	if raw := q.Get("end_date"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			respondJSON(w, http.StatusBadRequest, domain.ErrorResponse{
				Error:   "Bad Request",
				Message: "end_date must be YYYY-MM-DD",
			})
			return
		}
		filters.EndDate = &t
	}

	if raw := q.Get("min_area"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			respondJSON(w, http.StatusBadRequest, domain.ErrorResponse{
				Error:   "Bad Request",
				Message: "min_area must be numeric",
			})
			return
		}
		filters.MinArea = &v
	}

	if raw := q.Get("max_area"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			respondJSON(w, http.StatusBadRequest, domain.ErrorResponse{
				Error:   "Bad Request",
				Message: "max_area must be numeric",
			})
			return
		}
		filters.MaxArea = &v
	}

	result, err := h.projectService.List(r.Context(), page, pageSize, filters)
	if err != nil {
		h.logger.Error("failed to list projects", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, domain.ErrorResponse{
			Error:   "Internal Server Error",
			Message: "Failed to list projects",
		})
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// Calendar returns projects as calendar events, optionally limited to a
// date window and a status
func (h *ProjectHandler) Calendar(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var start, end *time.Time
	if raw := q.Get("start"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			respondJSON(w, http.StatusBadRequest, domain.ErrorResponse{
				Error:   "Bad Request",
				Message: "start must be YYYY-MM-DD",
			})
			return
		}
		start = &t
	}
	if raw := q.Get("end"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			respondJSON(w, http.StatusBadRequest, domain.ErrorResponse{
				Error:   "Bad Request",
				Message: "end must be YYYY-MM-DD",
			})
			return
		}
		end = &t
	}

	var status *domain.ProjectStatus
	if raw := q.Get("status"); raw != "" {
		s := domain.ProjectStatus(raw)
		if !s.IsValid() {
			respondJSON(w, http.StatusBadRequest, domain.ErrorResponse{
				Error:   "Bad Request",
				Message: "Invalid status filter",
			})
			return
		}
		status = &s
	}

	events, err := h.projectService.Calendar(r.Context(), start, end, status)
	if err != nil {
		h.logger.Error("failed to load calendar", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, domain.ErrorResponse{
			Error:   "Internal Server Error",
			Message: "Failed to load calendar",
		})
		return
	}

	respondJSON(w, http.StatusOK, events)
}

func (h *ProjectHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, domain.ErrorResponse{
			Error:   "Bad Request",
			Message: "Invalid project ID format",
		})
		return
	}

	project, err := h.projectService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrProjectNotFound) {
			respondJSON(w, http.StatusNotFound, domain.ErrorResponse{
				Error:   "Not Found",
				Message: "Project not found",
			})
			return
		}
		h.logger.Error("failed to get project", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, domain.ErrorResponse{
			Error:   "Internal Server Error",
			Message: "Failed to get project",
		})
		return
	}

	respondJSON(w, http.StatusOK, project)
}

func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateProjectRequest
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

	project, err := h.projectService.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrClientNotFound) {
			respondJSON(w, http.StatusBadRequest, domain.ErrorResponse{
				Error:   "Bad Request",
				Message: "Client not found",
			})
			return
		}
		if errors.Is(err, service.ErrInvalidInput) {
			respondJSON(w, http.StatusBadRequest, domain.ErrorResponse{
				Error:   "Bad Request",
				Message: err.Error(),
			})
			return
		}
		h.logger.Error("failed to create project", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, domain.ErrorResponse{
			Error:   "Internal Server Error",
			Message: "Failed to create project",
		})
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/v1/projects/%d", project.ID))
	respondJSON(w, http.StatusCreated, project)
}

func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, domain.ErrorResponse{
			Error:   "Bad Request",
			Message: "Invalid project ID format",
		})
		return
	}

	var req domain.UpdateProjectRequest
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

	project, err := h.projectService.Update(r.Context(), id, &req)
	if err != nil {
		if errors.Is(err, service.ErrProjectNotFound) {
			respondJSON(w, http.StatusNotFound, domain.ErrorResponse{
				Error:   "Not Found",
				Message: "Project not found",
			})
			return
		}
		if errors.Is(err, service.ErrInvalidInput) {
			respondJSON(w, http.StatusBadRequest, domain.ErrorResponse{
				Error:   "Bad Request",
				Message: err.Error(),
			})
			return
		}
		h.logger.Error("failed to update project", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, domain.ErrorResponse{
			Error:   "Internal Server Error",
			Message: "Failed to update project",
		})
		return
	}

	respondJSON(w, http.StatusOK, project)
}

func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, domain.ErrorResponse{
			Error:   "Bad Request",
			Message: "Invalid project ID format",
		})
		return
	}

	if err := h.projectService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrProjectNotFound) {
			respondJSON(w, http.StatusNotFound, domain.ErrorResponse{
				Error:   "Not Found",
				Message: "Project not found",
			})
			return
		}
		h.logger.Error("failed to delete project", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, domain.ErrorResponse{
			Error:   "Internal Server Error",
			Message: "Failed to delete project",
		})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
