package handler

import (
	"net/http"

	"github.com/gradi-as/contractor-api/internal/domain"
	"github.com/gradi-as/contractor-api/internal/service"
	"go.uber.org/zap"
)

type AdminHandler struct {
	adminService *service.AdminService
	logger       *zap.Logger
}

func NewAdminHandler(adminService *service.AdminService, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
		logger:       logger,
	}
}

// ClearAllData wipes every record of every entity type
func (h *AdminHandler) ClearAllData(w http.ResponseWriter, r *http.Request) {
	if err := h.adminService.ClearAllData(r.Context()); err != nil {
		h.logger.Error("failed to clear data", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, domain.ErrorResponse{
			Error:   "Internal Server Error",
			Message: "Failed to clear data",
		})
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"message": "All data cleared",
	})
}
