// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/carbon-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/carbon-tracker/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine             *gin.Engine
	healthController   *controller.HealthController
	recordController   *controller.RecordController
	categoryController *controller.CategoryController
	refreshRateLimiter *middleware.RateLimiter
	authMiddleware     *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	recordController *controller.RecordController,
	categoryController *controller.CategoryController,
	refreshRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:   healthController,
		recordController:   recordController,
		categoryController: categoryController,
		refreshRateLimiter: refreshRateLimiter,
		authMiddleware:     authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Default middleware: logger and recovery.
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	v1.Use(r.authMiddleware.Authenticate())
	{
		recordTypes := v1.Group("/record-types")
		{
			recordTypes.GET("", r.categoryController.List)
			recordTypes.GET("/:type/unit-options", r.categoryController.UnitOptions)
		}

		records := v1.Group("/records")
		{
			records.GET("", r.recordController.List)
			records.POST("", r.recordController.Create)
			records.GET("/:id", r.recordController.Get)
			records.PUT("/:id", r.recordController.Update)
			records.DELETE("/:id", r.recordController.Delete)
		}

		admin := v1.Group("/admin")
		{
			admin.POST("/records/refresh-totals", r.refreshRateLimiter.Middleware(), r.recordController.RefreshTotals)
		}
	}
}
