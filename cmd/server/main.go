// Package main is the entry point for the dealerdesk API server.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dealerdesk/internal/domain/catalogs"
	"dealerdesk/internal/domain/inventory"
	"dealerdesk/internal/domain/parts"
	"dealerdesk/internal/domain/reports"
	v1 "dealerdesk/internal/infrastructure/http/v1"
	"dealerdesk/internal/infrastructure/storage/postgres"
	"dealerdesk/internal/infrastructure/storage/postgres/catalog_repo"
	"dealerdesk/internal/infrastructure/storage/postgres/inventory_repo"
	"dealerdesk/internal/infrastructure/storage/postgres/parts_repo"
	"dealerdesk/internal/infrastructure/storage/postgres/report_repo"
	"dealerdesk/pkg/logger"
)

func main() {
	// Initialize logger
	log, err := logger.New(logger.Config{
		Level:       getEnv("LOG_LEVEL", "info"),
		Development: getEnv("APP_ENV", "development") == "development",
	})
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	log.Info("starting dealerdesk server")

	// --- Database connection ---
	poolCfg := postgres.DefaultPoolConfig(mustEnv("DATABASE_URL"))
	if maxConns := getEnvInt("DB_MAX_CONNS", 0); maxConns > 0 {
		poolCfg.MaxConns = int32(maxConns)
	}
	if idleTime := getEnvDuration("DB_CONN_IDLE_TIME", 0); idleTime > 0 {
		poolCfg.MaxConnIdleTime = idleTime
	}

	pool, err := postgres.NewPool(ctx, poolCfg)
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()
	log.Info("database connection established")

	txManager := postgres.NewTxManager(pool)

	// --- Repositories ---
	vehicleRepo := inventory_repo.NewVehicleRepo(txManager)
	partRepo := parts_repo.NewPartRepo(txManager)
	catalogRepo := catalog_repo.NewCatalogRepo(txManager)
	reportRepo := report_repo.NewReportRepo(txManager)

	// --- Services ---
	inventoryService := inventory.NewService(vehicleRepo)
	partsService := parts.NewService(partRepo)
	catalogsService := catalogs.NewService(catalogRepo)
	reportsService := reports.NewService(reportRepo)

	// --- Router ---
	jwtSecret := getEnv("JWT_SECRET", "your-secret-key-change-in-production")
	router := v1.NewRouter(v1.RouterConfig{
		Pool:             pool.Unwrap(),
		Logger:           log,
		JWTSecret:        []byte(jwtSecret),
		InventoryService: inventoryService,
		PartsService:     partsService,
		CatalogsService:  catalogsService,
		ReportsService:   reportsService,
	})

	// --- HTTP Server ---
	port := getEnv("APP_PORT", "8080")
	server := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Infow("server starting", "port", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalw("server failed", "error", err)
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	// Give outstanding requests 30 seconds to complete
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalw("server forced to shutdown", "error", err)
	}

	log.Info("server stopped")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func mustEnv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		fmt.Printf("required environment variable %s not set\n", key)
		os.Exit(1)
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		var result int
		if _, err := fmt.Sscanf(value, "%d", &result); err == nil {
			return result
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
