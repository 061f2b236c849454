// Package dependency provides dependency injection for the application.
package dependency

import (
	"time"

	"gorm.io/gorm"

	"github.com/budget-tracker/backend/config"
	"github.com/budget-tracker/backend/internal/application/usecase/budget"
	"github.com/budget-tracker/backend/internal/application/usecase/dashboard"
	"github.com/budget-tracker/backend/internal/application/usecase/transaction"
	"github.com/budget-tracker/backend/internal/infra/server/router"
	"github.com/budget-tracker/backend/internal/integration/cache"
	"github.com/budget-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/budget-tracker/backend/internal/integration/entrypoint/middleware"
	"github.com/budget-tracker/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config      *config.Config
	DB          *gorm.DB
	Cache       *cache.RedisCache
	RateLimiter *middleware.RateLimiter
	Router      *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
// dbHealthChecker may be nil, in which case the connection is pinged directly.
func NewInjector(cfg *config.Config, db *gorm.DB, redisCache *cache.RedisCache, dbHealthChecker func() bool) *Injector {
	return NewInjectorWithClock(cfg, db, redisCache, dbHealthChecker, time.Now)
}

// NewInjectorWithClock is NewInjector with the clock used for current-month
// defaults replaced, so dashboards can be pinned to a fixed date.
func NewInjectorWithClock(cfg *config.Config, db *gorm.DB, redisCache *cache.RedisCache, dbHealthChecker func() bool, now func() time.Time) *Injector {
	// Create repositories
	budgetRepo := persistence.NewBudgetRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)

	ttl := cfg.Cache.TTL

	// Create budget use cases
	listBudgetsUseCase := budget.NewListBudgetsUseCase(budgetRepo, redisCache, ttl)
	setBudgetUseCase := budget.NewSetBudgetUseCase(budgetRepo)

	// Create transaction use cases
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo, redisCache, ttl)
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo)

	// Create dashboard use cases
	getOverviewUseCase := dashboard.NewGetOverviewUseCase(listTransactionsUseCase, now)
	getBudgetInsightsUseCase := dashboard.NewGetBudgetInsightsUseCase(listBudgetsUseCase, listTransactionsUseCase, now)

	if dbHealthChecker == nil {
		dbHealthChecker = func() bool {
			sqlDB, err := db.DB()
			if err != nil {
				return false
			}
			return sqlDB.Ping() == nil
		}
	}

	// Create controllers
	healthController := controller.NewHealthController(dbHealthChecker, redisCache)
	budgetController := controller.NewBudgetController(listBudgetsUseCase, setBudgetUseCase)
	transactionController := controller.NewTransactionController(listTransactionsUseCase, createTransactionUseCase)
	dashboardController := controller.NewDashboardController(getOverviewUseCase, getBudgetInsightsUseCase)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var writeRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		writeRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		writeRateLimiter = middleware.NewRateLimiterWithConfig(cfg.RateLimit.MaxWrites, cfg.RateLimit.Window)
	}

	// Create router
	r := router.NewRouter(healthController, budgetController, transactionController, dashboardController, writeRateLimiter)

	return &Injector{
		Config:      cfg,
		DB:          db,
		Cache:       redisCache,
		RateLimiter: writeRateLimiter,
		Router:      r,
	}
}
