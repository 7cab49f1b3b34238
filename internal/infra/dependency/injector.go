// Package dependency provides dependency injection for the application.
package dependency

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/carbon-tracker/backend/config"
	"github.com/carbon-tracker/backend/internal/application/usecase/category"
	"github.com/carbon-tracker/backend/internal/application/usecase/record"
	"github.com/carbon-tracker/backend/internal/domain/entity"
	"github.com/carbon-tracker/backend/internal/infra/cache"
	"github.com/carbon-tracker/backend/internal/infra/server/router"
	"github.com/carbon-tracker/backend/internal/integration/adapters"
	cachestore "github.com/carbon-tracker/backend/internal/integration/cache"
	"github.com/carbon-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/carbon-tracker/backend/internal/integration/entrypoint/middleware"
	"github.com/carbon-tracker/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Redis  *redis.Client
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Injector {
	catalog := entity.DefaultCatalog()

	// Create repositories
	recordRepo := persistence.NewCarbonRecordRepository(db)

	// Create adapters/services
	tokenService := adapters.NewTokenService(cfg.JWT.Secret)
	footprintService := adapters.NewFootprintService(cfg.Footprint.BaseURL, cfg.Footprint.APIKey, cfg.Footprint.Timeout)
	drilldownCache := cachestore.NewDrilldownCache(redisClient)

	// Create record use cases
	listRecordsUseCase := record.NewListRecordsUseCase(recordRepo)
	getRecordUseCase := record.NewGetRecordUseCase(recordRepo)
	createRecordUseCase := record.NewCreateRecordUseCase(recordRepo, footprintService, drilldownCache, catalog)
	updateRecordUseCase := record.NewUpdateRecordUseCase(recordRepo, footprintService, drilldownCache, catalog)
	deleteRecordUseCase := record.NewDeleteRecordUseCase(recordRepo, footprintService)
	refreshTotalsUseCase := record.NewRefreshTotalsUseCase(recordRepo, footprintService)

	// Create category use cases
	listRecordTypesUseCase := category.NewListRecordTypesUseCase(catalog)
	unitOptionsUseCase := category.NewUnitOptionsUseCase(catalog)

	// Create controllers
	healthController := controller.NewHealthController(
		func() bool {
			sqlDB, err := db.DB()
			if err != nil {
				return false
			}
			return sqlDB.Ping() == nil
		},
		func() bool {
			return cache.HealthCheck(redisClient)
		},
	)

	recordController := controller.NewRecordController(
		listRecordsUseCase,
		getRecordUseCase,
		createRecordUseCase,
		updateRecordUseCase,
		deleteRecordUseCase,
		refreshTotalsUseCase,
	)

	categoryController := controller.NewCategoryController(
		listRecordTypesUseCase,
		unitOptionsUseCase,
	)

	// Create middleware
	authMiddleware := middleware.NewAuthMiddleware(tokenService)
	refreshRateLimiter := middleware.NewRateLimiter()

	// Create router
	appRouter := router.NewRouter(
		healthController,
		recordController,
		categoryController,
		refreshRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Redis:  redisClient,
		Router: appRouter,
	}
}
