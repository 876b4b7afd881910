package main

import (
	"github.com/luowei/planboard/backend/internal/config"
	"github.com/luowei/planboard/backend/internal/handlers"
	"github.com/luowei/planboard/backend/internal/models"
	"github.com/luowei/planboard/backend/internal/services"
	"github.com/luowei/planboard/backend/internal/utils"
	"github.com/luowei/planboard/backend/pkg/logger"
)

// appServices holds the initialized handlers and shared state the router needs.
type appServices struct {
	authHandler *handlers.AuthHandler
}

// bootstrap initializes all application dependencies: database, audit trail, schedulers.
func bootstrap(cfg *config.Config) *appServices {
	utils.SetJWTSecret(cfg.JWT.Secret)

	// Initialize database
	if err := models.InitDB(&cfg.Database); err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto migrate database
	if err := models.AutoMigrate(); err != nil {
		logger.Fatalf("Failed to migrate database: %v", err)
	}

	// Initialize audit trail writer
	services.InitAuditLogger(models.GetDB())

	// Start audit retention scheduler
	services.StartRetentionScheduler(models.GetDB(), cfg.Audit.RetentionDays)

	// Create default admin user
	authHandler := handlers.NewAuthHandler(models.GetDB(), &cfg.JWT)
	if err := authHandler.CreateAdminIfNotExists(); err != nil {
		logger.Warn().Err(err).Msg("Failed to create admin user")
	}

	return &appServices{
		authHandler: authHandler,
	}
}

// shutdown gracefully stops all background services.
func (s *appServices) shutdown() {
	services.StopRetentionScheduler()
	logger.Info().Msg("All schedulers stopped")
}
