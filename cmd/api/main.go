package main

import (
	"fmt"
	"os"

	"finvault/internal/config"
	"finvault/internal/database"
	"finvault/internal/logger"
	"finvault/internal/middleware"
	"finvault/internal/server"
	"finvault/internal/validator"

	"github.com/gin-gonic/gin"
)

// @title           finvault API
// @version         1.0
// @description     finvault keeps a per-user money ledger with bills, savings plans, savings circles and investments.

// @host      localhost:8080
// @BasePath  /api/v1

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if appConfig.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	dbManager, err := database.NewManager(database.NewConfig(appConfig))
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			log.Warnf("database close error: %v", err)
		}
	}()

	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	validator.Register()

	rateLimiter, err := middleware.NewRateLimiter(appConfig.RateLimit)
	if err != nil {
		return err
	}

	svc := server.NewServices(dbManager.DB())
	if _, err := svc.Accounts.EnsureAccounts(appConfig.DefaultUserID); err != nil {
		return fmt.Errorf("failed to provision default accounts: %w", err)
	}

	router := server.NewRouter(svc, server.Options{
		DefaultUserID:      appConfig.DefaultUserID,
		CORSAllowedOrigins: appConfig.CORSAllowedOrigins,
		RateLimiter:        rateLimiter,
	})

	log.Infof("Starting finvault server on port %s (driver %s)", appConfig.Port, appConfig.DBDriver)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
