// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/budget-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/budget-tracker/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	budgetController      *controller.BudgetController
	transactionController *controller.TransactionController
	dashboardController   *controller.DashboardController
	writeRateLimiter      *middleware.RateLimiter
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	budgetController *controller.BudgetController,
	transactionController *controller.TransactionController,
	dashboardController *controller.DashboardController,
	writeRateLimiter *middleware.RateLimiter,
) *Router {
	return &Router{
		healthController:      healthController,
		budgetController:      budgetController,
		transactionController: transactionController,
		dashboardController:   dashboardController,
		writeRateLimiter:      writeRateLimiter,
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
	r.setupDocsRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

func (r *Router) setupDocsRoutes() {
	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// writeGuard returns the throttling middleware for mutating endpoints.
func (r *Router) writeGuard() gin.HandlerFunc {
	if r.writeRateLimiter == nil {
		return func(c *gin.Context) { c.Next() }
	}
	return r.writeRateLimiter.Middleware()
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	api := r.engine.Group("/api")
	{
		budgets := api.Group("/budgets")
		{
			budgets.GET("", r.budgetController.List)
			budgets.POST("", r.writeGuard(), r.budgetController.Set)
			budgets.GET("/insights", r.dashboardController.GetBudgetInsights)
		}

		transactions := api.Group("/transactions")
		{
			transactions.GET("", r.transactionController.List)
			transactions.POST("", r.writeGuard(), r.transactionController.Create)
		}

		api.GET("/dashboard", r.dashboardController.GetOverview)
	}
}
