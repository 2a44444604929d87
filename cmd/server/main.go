package main

import (
	"context"
	"log"

	"employee-roster/internal/api/handlers"
	"employee-roster/internal/api/routes"
	"employee-roster/internal/clock"
	"employee-roster/internal/config"
	"employee-roster/internal/database"
	"employee-roster/internal/events"
	"employee-roster/internal/i18n"
	"employee-roster/internal/logger"
	"employee-roster/internal/repository"
	"employee-roster/internal/seed"
	"employee-roster/internal/service"
	"employee-roster/internal/state"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	_ "employee-roster/docs" // This is needed for swag
)

//	@title			Employee Roster API
//	@version		1.0
//	@description	Backend API for the employee roster: employee CRUD, sorted and paginated views, statistics, import and export.

//	@host		localhost:7008
//	@BasePath	/api/v1

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Set up logging
	logger.Setup(cfg.LogLevel)

	ctx := context.Background()

	// Initialize storage
	store, checks, err := openStorage(ctx, cfg)
	if err != nil {
		logrus.Fatal("Failed to initialize storage:", err)
	}
	logrus.WithField("driver", cfg.StorageDriver).Info("Storage initialized")

	// Initialize services
	employeeService := service.NewEmployeeService(store, service.NewValidator(), clock.NewSystemClock(),
		service.WithSeed(seed.FromConfig(cfg.SeedDemoData, cfg.SeedFile)),
	)
	employeeService.Init(ctx)

	bus := events.NewBus()
	bus.Subscribe(events.LogHook(logger.ForComponent("events")))

	translator := i18n.New(cfg.DefaultLanguage)
	viewState := state.NewStore(employeeService, store,
		state.WithBus(bus),
		state.WithDefaultLanguage(translator.Default()),
	)
	viewState.Init(ctx)

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router := routes.SetupRoutes(cfg, routes.Dependencies{
		Store:        viewState,
		Service:      employeeService,
		Translator:   translator,
		HealthChecks: checks,
	})

	// Start server
	port := cfg.Port
	if port == "" {
		port = "7008"
	}

	logrus.Infof("Starting server on port %s", port)
	if err := router.Run(":" + port); err != nil {
		logrus.Fatal("Failed to start server:", err)
	}
}

// openStorage builds the key-value store selected by STORAGE_DRIVER together
// with the health checks of its backing service.
func openStorage(ctx context.Context, cfg *config.Config) (repository.KeyValueStoreInterface, map[string]handlers.HealthCheck, error) {
	switch cfg.StorageDriver {
	case config.StorageMemory:
		return repository.NewMemoryStore(), nil, nil

	case config.StoragePostgres:
		db, err := database.Initialize(cfg.DatabaseURL, nil)
		if err != nil {
			return nil, nil, err
		}
		checks := map[string]handlers.HealthCheck{
			"database": func(ctx context.Context) error {
				sqlDB, err := db.DB()
				if err != nil {
					return err
				}
				return sqlDB.PingContext(ctx)
			},
		}
		return repository.NewStorageEntryRepository(db), checks, nil

	case config.StorageMongo:
		client, err := database.ConnectMongo(ctx, cfg.MongoURI)
		if err != nil {
			return nil, nil, err
		}
		coll := client.Database(cfg.MongoDatabase).Collection(cfg.MongoCollection)
		checks := map[string]handlers.HealthCheck{
			"mongo": func(ctx context.Context) error {
				return client.Ping(ctx, readpref.Primary())
			},
		}
		return repository.NewMongoStore(coll), checks, nil
	}

	return repository.NewFileStore(cfg.StoragePath), nil, nil
}
