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

type EmployeeHandler struct {
	employeeService *service.EmployeeService
	logger          *zap.Logger
}

func NewEmployeeHandler(employeeService *service.EmployeeService, logger *zap.Logger) *EmployeeHandler {
	return &EmployeeHandler{
		employeeService: employeeService,
		logger:          logger,
	}
}

func (h *EmployeeHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := parsePaging(r)
	search := r.URL.Query().Get("search")

	result, err := h.employeeService.List(r.Context(), page, pageSize, search)
	if err != nil {
		h.logger.Error("failed to list employees", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, domain.ErrorResponse{
			Error:   "Internal Server Error",
			Message: "Failed to list employees",
		})
		return
	}

	respondJSON(w, http.StatusOK, result)
}

func (h *EmployeeHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, domain.ErrorResponse{
			Error:   "Bad Request",
			Message: "Invalid employee ID format",
		})
		return
	}

	employee, err := h.employeeService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrEmployeeNotFound) {
			respondJSON(w, http.StatusNotFound, domain.ErrorResponse{
				Error:   "Not Found",
				Message: "Employee not found",
			})
			return
		}
		h.logger.Error("failed to get employee", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, domain.ErrorResponse{
			Error:   "Internal Server Error",
			Message: "Failed to get employee",
		})
		return
	}

	respondJSON(w, http.StatusOK, employee)
}

func (h *EmployeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateEmployeeRequest
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

	employee, err := h.employeeService.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrConflict) {
			respondJSON(w, http.StatusConflict, domain.ErrorResponse{
				Error:   "Conflict",
				Message: "An employee with this name already exists",
			})
			return
		}
		h.logger.Error("failed to create employee", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, domain.ErrorResponse{
			Error:   "Internal Server Error",
			Message: "Failed to create employee",
		})
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/v1/employees/%d", employee.ID))
	respondJSON(w, http.StatusCreated, employee)
}

func (h *EmployeeHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, domain.ErrorResponse{
			Error:   "Bad Request",
			Message: "Invalid employee ID format",
		})
		return
	}

	var req domain.CreateEmployeeRequest
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

	employee, err := h.employeeService.Update(r.Context(), id, &req)
	if err != nil {
		if errors.Is(err, service.ErrEmployeeNotFound) {
			respondJSON(w, http.StatusNotFound, domain.ErrorResponse{
				Error:   "Not Found",
				Message: "Employee not found",
			})
			return
		}
		h.logger.Error("failed to update employee", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, domain.ErrorResponse{
			Error:   "Internal Server Error",
			Message: "Failed to update employee",
		})
		return
	}

	respondJSON(w, http.StatusOK, employee)
}

func (h *EmployeeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, domain.ErrorResponse{
			Error:   "Bad Request",
			Message: "Invalid employee ID format",
		})
		return
	}

	if err := h.employeeService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrEmployeeNotFound) {
			respondJSON(w, http.StatusNotFound, domain.ErrorResponse{
				Error:   "Not Found",
				Message: "Employee not found",
			})
			return
		}
		h.logger.Error("failed to delete employee", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, domain.ErrorResponse{
			Error:   "Internal Server Error",
			Message: "Failed to delete employee",
		})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
