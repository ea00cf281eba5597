package handler

import (
	"net/http"

	"github.com/gradi-as/contractor-api/internal/domain"
	"github.com/gradi-as/contractor-api/internal/service"
	"go.uber.org/zap"
)

type DashboardHandler struct {
	dashboardService *service.DashboardService
	logger           *zap.Logger
}

func NewDashboardHandler(dashboardService *service.DashboardService, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		logger:           logger,
	}
}

// Summary returns the business aggregates for the dashboard
func (h *DashboardHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.dashboardService.Summary(r.Context())
	if err != nil {
		h.logger.Error("failed to build dashboard summary", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, domain.ErrorResponse{
			Error:   "Internal Server Error",
			Message: "Failed to build summary",
		})
		return
	}

	respondJSON(w, http.StatusOK, summary)
}
