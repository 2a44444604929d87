package routes

import (
	"time"

	"employee-roster/internal/api/handlers"
	"employee-roster/internal/api/middleware"
	"employee-roster/internal/config"
	"employee-roster/internal/i18n"
	"employee-roster/internal/service"
	"employee-roster/internal/state"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// eventKeepAlive is the interval of ping events on idle streams
const eventKeepAlive = 30 * time.Second

// Dependencies are the collaborators the HTTP layer serves
type Dependencies struct {
	Store        *state.Store
	Service      service.EmployeeServiceInterface
	Translator   *i18n.Translator
	HealthChecks map[string]handlers.HealthCheck
}

// SetupRoutes configures all the routes for the application
func SetupRoutes(cfg *config.Config, deps Dependencies) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize handlers
	localizer := handlers.NewLocalizer(deps.Translator, deps.Store)
	employeeHandler := handlers.NewEmployeeHandler(deps.Store, deps.Service, localizer)
	viewHandler := handlers.NewViewHandler(deps.Store, localizer)
	eventsHandler := handlers.NewEventsHandler(deps.Store.Bus(), eventKeepAlive)
	healthHandler := handlers.NewHealthHandler(deps.HealthChecks)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		employees := v1.Group("/employees")
		{
			employees.GET("", employeeHandler.ListEmployees)
			employees.POST("", employeeHandler.CreateEmployee)
			employees.DELETE("", employeeHandler.ClearEmployees)
			employees.GET("/:id", employeeHandler.GetEmployee)
			employees.PUT("/:id", employeeHandler.UpdateEmployee)
			employees.DELETE("/:id", employeeHandler.DeleteEmployee)
		}

		v1.GET("/statistics", employeeHandler.Statistics)
		v1.GET("/export", employeeHandler.Export)
		v1.POST("/import", employeeHandler.Import)

		view := v1.Group("/view")
		{
			view.GET("", viewHandler.GetState)
			view.PUT("/sort", viewHandler.SetSort)
			view.PUT("/page", viewHandler.SetPage)
			view.PUT("/items-per-page", viewHandler.SetItemsPerPage)
			view.PUT("/mode", viewHandler.SetViewMode)
			view.PUT("/language", viewHandler.SetLanguage)
		}

		v1.GET("/events", eventsHandler.Stream)
	}

	return router
}
