package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gradi-as/contractor-api/internal/config"
	"github.com/gradi-as/contractor-api/internal/database"
	"github.com/gradi-as/contractor-api/internal/http/handler"
	"github.com/gradi-as/contractor-api/internal/http/middleware"
	"github.com/gradi-as/contractor-api/internal/http/router"
	"github.com/gradi-as/contractor-api/internal/ingest"
	"github.com/gradi-as/contractor-api/internal/jobs"
	"github.com/gradi-as/contractor-api/internal/logger"
	"github.com/gradi-as/contractor-api/internal/repository"
	"github.com/gradi-as/contractor-api/internal/service"
	"github.com/gradi-as/contractor-api/internal/storage"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.NewLogger(&cfg.Logging, &cfg.App)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting application",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Environment),
		zap.Int("port", cfg.App.Port),
	)

	db, err := database.NewDatabase(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	fileStorage, err := storage.NewStorage(&cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	log.Info("storage initialized", zap.String("mode", cfg.Storage.Mode))

	// Repositories
	clientRepo := repository.NewClientRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	costRepo := repository.NewCostRepository(db)
	additionalServiceRepo := repository.NewAdditionalServiceRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)
	documentRepo := repository.NewDocumentRepository(db)
	adminRepo := repository.NewAdminRepository(db)

	// Services
	clientService := service.NewClientService(clientRepo, log)
	employeeService := service.NewEmployeeService(employeeRepo, log)
	projectService := service.NewProjectService(projectRepo, clientRepo, log)
	costService := service.NewCostService(costRepo, projectRepo, log)
	additionalServiceService := service.NewAdditionalServiceService(additionalServiceRepo, projectRepo, log)
	assignmentService := service.NewAssignmentService(assignmentRepo, projectRepo, employeeRepo, log)
	documentService := service.NewDocumentService(documentRepo, fileStorage, log)
	importService := service.NewImportService(db, documentRepo, fileStorage, ingest.HeaderMapV1(), log)
	dashboardService := service.NewDashboardService(projectRepo, clientRepo, log)
	adminService := service.NewAdminService(adminRepo, log)

	// Middleware
	rateLimiter := middleware.NewRateLimiter(&cfg.RateLimit, log)

	// Handlers
	clientHandler := handler.NewClientHandler(clientService, log)
	employeeHandler := handler.NewEmployeeHandler(employeeService, log)
	projectHandler := handler.NewProjectHandler(projectService, log)
	costHandler := handler.NewCostHandler(costService, log)
	serviceHandler := handler.NewServiceHandler(additionalServiceService, log)
	assignmentHandler := handler.NewAssignmentHandler(assignmentService, log)
	documentHandler := handler.NewDocumentHandler(importService, documentService, cfg.Storage.MaxUploadSizeMB, log)
	dashboardHandler := handler.NewDashboardHandler(dashboardService, log)
	adminHandler := handler.NewAdminHandler(adminService, log)

	rt := router.NewRouter(
		cfg,
		log,
		db,
		rateLimiter,
		clientHandler,
		employeeHandler,
		projectHandler,
		costHandler,
		serviceHandler,
		assignmentHandler,
		documentHandler,
		dashboardHandler,
		adminHandler,
	)

	// Background jobs
	var scheduler *jobs.Scheduler
	if cfg.Retention.Enabled {
		scheduler = jobs.NewScheduler(log)
		retentionJob := jobs.NewDocumentRetentionJob(documentRepo, fileStorage, cfg.Retention.MaxAge(), log)
		if err := scheduler.AddJob("document-retention", cfg.Retention.Schedule, retentionJob.Run); err != nil {
			log.Error("failed to register retention job", zap.Error(err))
		} else {
			scheduler.Start()
			log.Info("scheduler started with document retention job",
				zap.String("cron_expr", cfg.Retention.Schedule),
				zap.Int("max_age_days", cfg.Retention.MaxAgeDays),
			)
		}
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      rt.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeoutDuration(),
		WriteTimeout: cfg.Server.WriteTimeoutDuration(),
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.Info("server starting", zap.String("addr", srv.Addr))
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		log.Info("shutdown signal received", zap.String("signal", sig.String()))

		if scheduler != nil {
			ctx := scheduler.Stop()
			<-ctx.Done()
			log.Info("scheduler stopped")
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("failed to shutdown gracefully", zap.Error(err))
			return err
		}

		log.Info("server stopped gracefully")
	}

	return nil
}
