package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/timeconv/internal/domain/port/core"
	"github.com/amirhossein-jamali/timeconv/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/timeconv/internal/infrastructure/adapter/api/middleware"
)

// MetricsEndpoint exposes a metrics handler at a path; a nil Handler disables it
type MetricsEndpoint struct {
	Path    string
	Handler http.Handler
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	conversionHandler *handler.ConversionHandler,
	healthHandler *handler.HealthHandler,
	metrics MetricsEndpoint,
) {
	router.GET("/health", healthHandler.Health)
	router.GET("/units", conversionHandler.Units)

	convertRoutes := router.Group("/convert")
	{
		// GET /convert/:unit?value=&decimals=
		convertRoutes.GET("/:unit", conversionHandler.ConvertQuery)

		// POST /convert
		convertRoutes.POST("", conversionHandler.Convert)

		// POST /convert/batch
		convertRoutes.POST("/batch", conversionHandler.ConvertBatch)
	}

	historyRoutes := router.Group("/conversions")
	{
		historyRoutes.GET("", conversionHandler.ListConversions)
		historyRoutes.GET("/stats", conversionHandler.Stats)
		historyRoutes.GET("/:id", conversionHandler.GetConversion)
	}

	if metrics.Handler != nil {
		router.GET(metrics.Path, gin.WrapH(metrics.Handler))
	}

	router.NoRoute(middleware.NotFound())
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, allowedOrigins []string) {
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS(allowedOrigins...))
}

// NewRouter creates a gin engine with middlewares and routes installed
func NewRouter(
	logger coreport.Logger,
	allowedOrigins []string,
	conversionHandler *handler.ConversionHandler,
	healthHandler *handler.HealthHandler,
	metrics MetricsEndpoint,
) *gin.Engine {
	router := gin.New()
	SetupMiddlewares(router, logger, allowedOrigins)
	SetupRoutes(router, conversionHandler, healthHandler, metrics)
	return router
}
