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

type ClientHandler struct {
	clientService *service.ClientService
	logger        *zap.Logger
}

func NewClientHandler(clientService *service.ClientService, logger *zap.Logger) *ClientHandler {
	return &ClientHandler{
		clientService: clientService,
		logger:        logger,
	}
}

func (h *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := parsePaging(r)
	search := r.URL.Query().Get("search")

	result, err := h.clientService.List(r.Context(), page, pageSize, search)
	if err != nil {
		h.logger.Error("failed to list clients", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, domain.ErrorResponse{
			Error:   "Internal Server Error",
			Message: "Failed to list clients",
		})
		return
	}

	respondJSON(w, http.StatusOK, result)
}

func (h *ClientHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, domain.ErrorResponse{
			Error:   "Bad Request",
			Message: "Invalid client ID format",
		})
		return
	}

	client, err := h.clientService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrClientNotFound) {
			respondJSON(w, http.StatusNotFound, domain.ErrorResponse{
				Error:   "Not Found",
				Message: "Client not found",
			})
			return
		}
		h.logger.Error("failed to get client", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, domain.ErrorResponse{
			Error:   "Internal Server Error",
			Message: "Failed to get client",
		})
		return
	}

	respondJSON(w, http.StatusOK, client)
}

func (h *ClientHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateClientRequest
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

	client, err := h.clientService.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrConflict) {
			respondJSON(w, http.StatusConflict, domain.ErrorResponse{
				Error:   "Conflict",
				Message: "A client with this email already exists",
			})
			return
		}
		h.logger.Error("failed to create client", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, domain.ErrorResponse{
			Error:   "Internal Server Error",
			Message: "Failed to create client",
		})
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/v1/clients/%d", client.ID))
	respondJSON(w, http.StatusCreated, client)
}

func (h *ClientHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, domain.ErrorResponse{
			Error:   "Bad Request",
			Message: "Invalid client ID format",
		})
		return
	}

	var req domain.UpdateClientRequest
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

	client, err := h.clientService.Update(r.Context(), id, &req)
	if err != nil {
		if errors.Is(err, service.ErrClientNotFound) {
			respondJSON(w, http.StatusNotFound, domain.ErrorResponse{
				Error:   "Not Found",
				Message: "Client not found",
			})
			return
		}
		h.logger.Error("failed to update client", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, domain.ErrorResponse{
			Error:   "Internal Server Error",
			Message: "Failed to update client",
		})
		return
	}

	respondJSON(w, http.StatusOK, client)
}

func (h *ClientHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, domain.ErrorResponse{
			Error:   "Bad Request",
			Message: "Invalid client ID format",
		})
		return
	}

	if err := h.clientService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrClientNotFound) {
			respondJSON(w, http.StatusNotFound, domain.ErrorResponse{
				Error:   "Not Found",
				Message: "Client not found",
			})
			return
		}
		h.logger.Error("failed to delete client", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, domain.ErrorResponse{
			Error:   "Internal Server Error",
			Message: "Failed to delete client",
		})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
