package router

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gradi-as/contractor-api/internal/config"
	"github.com/gradi-as/contractor-api/internal/database"
	"github.com/gradi-as/contractor-api/internal/http/handler"
	"github.com/gradi-as/contractor-api/internal/http/middleware"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Router struct {
	cfg               *config.Config
	logger            *zap.Logger
	db                *gorm.DB
	rateLimiter       *middleware.RateLimiter
	clientHandler     *handler.ClientHandler
	employeeHandler   *handler.EmployeeHandler
	projectHandler    *handler.ProjectHandler
	costHandler       *handler.CostHandler
	serviceHandler    *handler.ServiceHandler
	assignmentHandler *handler.AssignmentHandler
	documentHandler   *handler.DocumentHandler
	dashboardHandler  *handler.DashboardHandler
	adminHandler      *handler.AdminHandler
}

func NewRouter(
	cfg *config.Config,
	logger *zap.Logger,
	db *gorm.DB,
	rateLimiter *middleware.RateLimiter,
	clientHandler *handler.ClientHandler,
	employeeHandler *handler.EmployeeHandler,
	projectHandler *handler.ProjectHandler,
	costHandler *handler.CostHandler,
	serviceHandler *handler.ServiceHandler,
	assignmentHandler *handler.AssignmentHandler,
	documentHandler *handler.DocumentHandler,
	dashboardHandler *handler.DashboardHandler,
	adminHandler *handler.AdminHandler,
) *Router {
	return &Router{
		cfg:               cfg,
		logger:            logger,
		db:                db,
		rateLimiter:       rateLimiter,
		clientHandler:     clientHandler,
		employeeHandler:   employeeHandler,
		projectHandler:    projectHandler,
		costHandler:       costHandler,
		serviceHandler:    serviceHandler,
		assignmentHandler: assignmentHandler,
		documentHandler:   documentHandler,
		dashboardHandler:  dashboardHandler,
		adminHandler:      adminHandler,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Recovery(rt.logger))
	r.Use(middleware.Logging(rt.logger))
	r.Use(middleware.SecurityHeaders(&rt.cfg.Security))
	r.Use(middleware.CORS(&rt.cfg.CORS, rt.cfg.App.Environment, rt.logger))
	r.Use(rt.rateLimiter.Limit)

	// Health check (basic liveness probe)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Database health check (readiness probe with pool stats)
	r.Get("/health/db", func(w http.ResponseWriter, r *http.Request) {
		stats, err := database.HealthCheckWithStats(rt.db)
		if err != nil {
			rt.logger.Error("database health check failed", zap.Error(err))
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"status":  "unhealthy",
				"error":   err.Error(),
				"service": "database",
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":  "healthy",
			"service": "database",
			"stats": map[string]interface{}{
				"max_open_connections": stats.MaxOpenConnections,
				"open_connections":     stats.OpenConnections,
				"in_use":               stats.InUse,
				"idle":                 stats.Idle,
			},
		})
	})

	// Combined readiness check
	r.Get("/health/ready", func(w http.ResponseWriter, r *http.Request) {
		checks := make(map[string]interface{})
		allHealthy := true

		if err := database.HealthCheck(rt.db); err != nil {
			rt.logger.Error("database health check failed", zap.Error(err))
			checks["database"] = map[string]interface{}{
				"status": "unhealthy",
				"error":  err.Error(),
			}
			allHealthy = false
		} else {
			checks["database"] = map[string]interface{}{
				"status": "healthy",
			}
		}

		w.Header().Set("Content-Type", "application/json")
		status := http.StatusOK
		overall := "healthy"
		if !allHealthy {
			status = http.StatusServiceUnavailable
			overall = "unhealthy"
		}
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status": overall,
			"checks": checks,
		})
	})

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Clients
		r.Route("/clients", func(r chi.Router) {
			r.Get("/", rt.clientHandler.List)
			r.Post("/", rt.clientHandler.Create)
			r.Get("/{id}", rt.clientHandler.GetByID)
			r.Put("/{id}", rt.clientHandler.Update)
			r.Delete("/{id}", rt.clientHandler.Delete)
		})

		// Employees
		r.Route("/employees", func(r chi.Router) {
			r.Get("/", rt.employeeHandler.List)
			r.Post("/", rt.employeeHandler.Create)
			r.Get("/{id}", rt.employeeHandler.GetByID)
			r.Put("/{id}", rt.employeeHandler.Update)
			r.Delete("/{id}", rt.employeeHandler.Delete)
		})

		// Projects, their cost breakdowns and crews
		r.Route("/projects", func(r chi.Router) {
			r.Get("/", rt.projectHandler.List)
			r.Post("/", rt.projectHandler.Create)
			r.Get("/calendar", rt.projectHandler.Calendar)
			r.Get("/{id}", rt.projectHandler.GetByID)
			r.Put("/{id}", rt.projectHandler.Update)
			r.Delete("/{id}", rt.projectHandler.Delete)
			r.Get("/{id}/cost", rt.costHandler.GetByProject)
			r.Put("/{id}/cost", rt.costHandler.Upsert)
			r.Delete("/{id}/cost", rt.costHandler.Delete)
			r.Get("/{id}/employees", rt.assignmentHandler.ListByProject)
		})

		// Costs
		r.Get("/costs", rt.costHandler.List)

		// Additional services
		r.Route("/services", func(r chi.Router) {
			r.Get("/", rt.serviceHandler.List)
			r.Post("/", rt.serviceHandler.Create)
			r.Get("/{id}", rt.serviceHandler.GetByID)
			r.Put("/{id}", rt.serviceHandler.Update)
			r.Delete("/{id}", rt.serviceHandler.Delete)
		})

		// Assignments
		r.Route("/assignments", func(r chi.Router) {
			r.Get("/", rt.assignmentHandler.List)
			r.Post("/", rt.assignmentHandler.Create)
			r.Get("/{id}", rt.assignmentHandler.GetByID)
			r.Put("/{id}", rt.assignmentHandler.Update)
			r.Delete("/{id}", rt.assignmentHandler.Delete)
		})

		// Documents (bulk job-sheet import)
		r.Route("/documents", func(r chi.Router) {
			r.Get("/", rt.documentHandler.List)
			r.Post("/upload", rt.documentHandler.Upload)
			r.Get("/{id}", rt.documentHandler.GetByID)
			r.Delete("/{id}", rt.documentHandler.Delete)
		})

		// Dashboard
		r.Get("/dashboard/summary", rt.dashboardHandler.Summary)

		// Admin
		r.Post("/admin/clear-data", rt.adminHandler.ClearAllData)
	})

	return r
}
