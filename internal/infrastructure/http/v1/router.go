// Package v1 provides HTTP API version 1.
package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"dealerdesk/internal/domain/catalogs"
	"dealerdesk/internal/domain/inventory"
	"dealerdesk/internal/domain/parts"
	"dealerdesk/internal/domain/reports"
	"dealerdesk/internal/infrastructure/http/v1/handlers"
	"dealerdesk/internal/infrastructure/http/v1/middleware"
	"dealerdesk/pkg/logger"
)

// RouterConfig holds router configuration.
type RouterConfig struct {
	// Pool is the database connection pool (health checks only; queries go
	// through the services).
	Pool *pgxpool.Pool

	// Logger for request logging
	Logger *logger.Logger

	// JWTSecret verifies bearer tokens carrying the actor's role claim.
	JWTSecret []byte

	InventoryService *inventory.Service
	PartsService     *parts.Service
	CatalogsService  *catalogs.Service
	ReportsService   *reports.Service
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware (order matters!)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler())

	// Health endpoints (no auth)
	healthHandler := handlers.NewHealthHandler(cfg.Pool)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
	}

	base := handlers.NewBaseHandler()
	vehiclesHandler := handlers.NewVehiclesHandler(base, cfg.InventoryService)
	partsHandler := handlers.NewPartsHandler(base, cfg.PartsService)
	catalogsHandler := handlers.NewCatalogsHandler(base, cfg.CatalogsService)
	reportsHandler := handlers.NewReportsHandler(base, cfg.ReportsService)

	// API v1. Every endpoint is reachable without a token; the actor role
	// only widens listing visibility.
	api := router.Group("/api/v1")
	api.Use(middleware.ActorRole(cfg.JWTSecret))
	{
		api.GET("/vehicles", vehiclesHandler.List)
		api.GET("/vehicles/:id", vehiclesHandler.Detail)
		api.POST("/vehicles", vehiclesHandler.Sell)

		api.GET("/parts", partsHandler.List)
		api.GET("/parts/:id", partsHandler.Detail)
		api.POST("/parts", partsHandler.Insert)

		api.GET("/filter-options", catalogsHandler.FilterOptions)
		api.GET("/manufacturers", catalogsHandler.Manufacturers)
		api.GET("/vehicle-types", catalogsHandler.VehicleTypes)
		api.GET("/colors", catalogsHandler.Colors)

		reportGroup := api.Group("/reports")
		{
			reportGroup.GET("/sales-productivity", reportsHandler.SalesProductivity)
			reportGroup.GET("/seller-history", reportsHandler.SellerHistory)
			reportGroup.GET("/part-statistics", reportsHandler.PartStatistics)
		}
	}

	return router
}
