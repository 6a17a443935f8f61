// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/budget-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/budget-tracker/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine               *gin.Engine
	healthController     *controller.HealthController
	budgetController     *controller.BudgetController
	dashboardController  *controller.DashboardController
	dashboardRateLimiter *middleware.RateLimiter
	authMiddleware       *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	budgetController *controller.BudgetController,
	dashboardController *controller.DashboardController,
	dashboardRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:     healthController,
		budgetController:     budgetController,
		dashboardController:  dashboardController,
		dashboardRateLimiter: dashboardRateLimiter,
		authMiddleware:       authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
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
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		// Budget routes (require authentication)
		if r.budgetController != nil && r.authMiddleware != nil {
			budgets := v1.Group("/budgets")
			budgets.Use(r.authMiddleware.Authenticate())
			{
				budgets.GET("", r.budgetController.List)
				budgets.POST("", r.budgetController.Create)
				budgets.GET("/current", r.budgetController.GetCurrent)
				budgets.GET("/alerts", r.budgetController.GetAlerts)
				budgets.POST("/recurring", r.budgetController.CreateRecurring)
				budgets.POST("/from-previous-month", r.budgetController.CreateFromPreviousMonth)
				budgets.POST("/:id/duplicate", r.budgetController.Duplicate)
				budgets.PATCH("/:id", r.budgetController.Update)
				budgets.DELETE("/:id", r.budgetController.Delete)
			}
		}

		// Dashboard routes (require authentication, rate limited because
		// every call replays spend computations)
		if r.dashboardController != nil && r.authMiddleware != nil {
			dashboard := v1.Group("/dashboard")
			dashboard.Use(r.authMiddleware.Authenticate())
			if r.dashboardRateLimiter != nil {
				dashboard.Use(r.dashboardRateLimiter.Middleware())
			}
			{
				dashboard.GET("/health-score", r.dashboardController.GetHealthScore)
				dashboard.GET("/trends", r.dashboardController.GetTrends)
				dashboard.GET("/insights", r.dashboardController.GetInsights)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
