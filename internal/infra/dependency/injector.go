// Package dependency provides dependency injection for the application.
package dependency

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/budget-tracker/backend/config"
	"github.com/budget-tracker/backend/internal/application/adapter"
	"github.com/budget-tracker/backend/internal/application/usecase/budget"
	"github.com/budget-tracker/backend/internal/application/usecase/health"
	"github.com/budget-tracker/backend/internal/application/usecase/insight"
	"github.com/budget-tracker/backend/internal/application/usecase/trend"
	"github.com/budget-tracker/backend/internal/infra/server/router"
	"github.com/budget-tracker/backend/internal/integration/adapters"
	"github.com/budget-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/budget-tracker/backend/internal/integration/entrypoint/middleware"
	"github.com/budget-tracker/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
// The redis client is optional; without it the health score cache is disabled.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Injector {
	// Create repositories
	budgetRepo := persistence.NewBudgetRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)
	accountRepo := persistence.NewAccountRepository(db)

	// Create adapters/services
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.Issuer)
	clock := adapters.NewSystemClock()

	var summaryCache adapter.SummaryCache
	if redisClient != nil {
		summaryCache = adapters.NewRedisSummaryCache(redisClient, cfg.Engine.HealthScoreCacheTTL)
	}

	// Create budget use cases
	spendUseCase := budget.NewComputeSpendingUseCase(transactionRepo)
	listBudgetsUseCase := budget.NewListBudgetsUseCase(budgetRepo)
	createBudgetUseCase := budget.NewCreateBudgetUseCase(budgetRepo)
	updateBudgetUseCase := budget.NewUpdateBudgetUseCase(budgetRepo)
	deleteBudgetUseCase := budget.NewDeleteBudgetUseCase(budgetRepo)
	currentBudgetsUseCase := budget.NewGetCurrentBudgetsUseCase(budgetRepo, spendUseCase, clock)
	alertsUseCase := budget.NewGetBudgetAlertsUseCase(currentBudgetsUseCase)
	duplicateBudgetUseCase := budget.NewDuplicateBudgetUseCase(budgetRepo, clock)
	recurringBudgetsUseCase := budget.NewCreateRecurringBudgetsUseCase(budgetRepo, clock)
	fromPreviousMonthUseCase := budget.NewCreateFromPreviousMonthUseCase(budgetRepo, clock)

	// Create dashboard use cases
	healthScoreUseCase := health.NewGetHealthScoreUseCase(
		currentBudgetsUseCase,
		transactionRepo,
		accountRepo,
		summaryCache,
		clock,
	)
	trendsUseCase := trend.NewGetBudgetTrendsUseCase(budgetRepo, spendUseCase, clock)
	insightsUseCase := insight.NewGetInsightsUseCase(currentBudgetsUseCase, transactionRepo, clock)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	budgetController := controller.NewBudgetController(
		listBudgetsUseCase,
		createBudgetUseCase,
		updateBudgetUseCase,
		deleteBudgetUseCase,
		currentBudgetsUseCase,
		alertsUseCase,
		duplicateBudgetUseCase,
		recurringBudgetsUseCase,
		fromPreviousMonthUseCase,
	)

	dashboardController := controller.NewDashboardController(
		healthScoreUseCase,
		trendsUseCase,
		insightsUseCase,
	)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var dashboardRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		dashboardRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		dashboardRateLimiter = middleware.NewRateLimiterWithConfig(
			cfg.Engine.DashboardRateLimit,
			cfg.Engine.DashboardRateWindow,
		)
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		budgetController,
		dashboardController,
		dashboardRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
	}
}
