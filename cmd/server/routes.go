package main

import (
	"github.com/gin-gonic/gin"
	"github.com/luowei/planboard/backend/internal/config"
	"github.com/luowei/planboard/backend/internal/handlers"
	"github.com/luowei/planboard/backend/internal/middleware"
	"github.com/luowei/planboard/backend/internal/models"
	"github.com/luowei/planboard/backend/pkg/logger"
)

// registerRoutes sets up all HTTP routes on the given Gin engine.
func registerRoutes(r *gin.Engine, cfg *config.Config, svc *appServices) {
	// Middleware
	r.Use(logger.GinLogger(), logger.GinRecovery())
	r.RedirectTrailingSlash = false
	r.RedirectFixedPath = false
	r.Use(middleware.CORS(cfg.CORS.Origins))

	// Rate limiter for credential endpoints
	authLimiter := middleware.NewRateLimiter(5, 10)

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "service": "planboard"})
	})

	db := models.GetDB()

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public, rate limited)
		auth := api.Group("/auth", authLimiter.Middleware())
		{
			auth.POST("/register", svc.authHandler.Register)
			auth.POST("/login", svc.authHandler.Login)
		}

		// Protected routes
		protected := api.Group("")
		protected.Use(middleware.AuthRequired(db), middleware.AuditTrail())
		{
			// Auth
			protected.GET("/auth/me", svc.authHandler.GetCurrentUser)

			// Dashboard
			dashboardHandler := handlers.NewDashboardHandler(db)
			protected.GET("/stats/dashboard", dashboardHandler.GetStats)

			// Projects
			projectHandler := handlers.NewProjectHandler(db)
			protected.GET("/projects", projectHandler.List)
			protected.GET("/projects/:id", projectHandler.GetByID)
			protected.POST("/projects", projectHandler.Create)
			protected.PUT("/projects/:id", projectHandler.Update)
			protected.DELETE("/projects/:id", projectHandler.Delete)

			// Baselines
			baselineHandler := handlers.NewBaselineHandler(db)
			protected.POST("/baselines/project", baselineHandler.CreateProjectBaseline)
			protected.GET("/baselines/project/:project_id", baselineHandler.ListProjectBaselines)
			protected.POST("/baselines/task", baselineHandler.CreateTaskBaseline)
			protected.GET("/baselines/task/:task_id", baselineHandler.ListTaskBaselines)

			// Tasks
			taskHandler := handlers.NewTaskHandler(db)
			protected.GET("/tasks", taskHandler.List)
			protected.GET("/tasks/:id", taskHandler.GetByID)
			protected.POST("/tasks", taskHandler.Create)
			protected.PUT("/tasks/:id", taskHandler.Update)
			protected.DELETE("/tasks/:id", taskHandler.Delete)

			// Resources
			resourceHandler := handlers.NewResourceHandler(db)
			protected.GET("/resources", resourceHandler.List)
			protected.POST("/resources", resourceHandler.Create)
			protected.PUT("/resources/:id", resourceHandler.Update)
			protected.DELETE("/resources/:id", resourceHandler.Delete)

			// Resource allocations
			allocationHandler := handlers.NewAllocationHandler(db)
			protected.GET("/allocations", allocationHandler.List)
			protected.POST("/allocations", allocationHandler.Create)

			// Costs
			costHandler := handlers.NewCostHandler(db)
			protected.GET("/costs", costHandler.List)
			protected.POST("/costs", costHandler.Create)
			protected.DELETE("/costs/:id", costHandler.Delete)

			// Documents
			documentHandler := handlers.NewDocumentHandler(db)
			protected.GET("/documents", documentHandler.List)
			protected.POST("/documents", documentHandler.Create)
			protected.DELETE("/documents/:id", documentHandler.Delete)

			// Relationships
			relationshipHandler := handlers.NewRelationshipHandler(db)
			protected.GET("/relationships", relationshipHandler.List)
			protected.POST("/relationships", relationshipHandler.Create)
			protected.DELETE("/relationships/:id", relationshipHandler.Delete)
		}

		// Admin only routes
		admin := api.Group("")
		admin.Use(middleware.AuthRequired(db), middleware.AdminRequired(), middleware.AuditTrail())
		{
			// Users
			userHandler := handlers.NewUserHandler(db)
			admin.GET("/users", userHandler.List)
			admin.PUT("/users/:id", userHandler.Update)
			admin.DELETE("/users/:id", userHandler.Delete)

			// Audit logs
			auditLogHandler := handlers.NewAuditLogHandler(db)
			admin.GET("/audit-logs", auditLogHandler.List)
		}
	}
}
