package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"coinfolio/internal/config"
	"coinfolio/internal/database"
	"coinfolio/internal/logger"
	"coinfolio/internal/provider"
	"coinfolio/internal/server"
	"coinfolio/internal/services"
	"coinfolio/internal/validator"
)

// @title           Coinfolio API
// @version         1.0
// @description     Coinfolio is a simulated cryptocurrency portfolio: buy and sell coins at live prices with play money, invite friends for bonus points and track the market.
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

const shutdownTimeout = 10 * time.Second

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

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if appConfig.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create database manager
	dbManager, err := database.NewManager(database.NewConfig(appConfig))
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			log.Warnf("failed to close database: %v", err)
		}
	}()

	// Run migrations
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	validator.Register()

	// Price source
	prices := provider.NewCoinGeckoProvider(
		&http.Client{Timeout: appConfig.PriceSourceTimeout},
		appConfig.CoinGeckoBaseURL,
		appConfig.CoinGeckoAPIKey,
	)

	// Initialize services
	db := dbManager.DB()
	router := server.NewRouter(server.Services{
		Users:       services.NewUserService(db, appConfig.StartingCash, appConfig.ReferralBonus),
		Portfolios:  services.NewPortfolioService(db, prices, appConfig.StartingCash),
		Referrals:   services.NewReferralService(db),
		Market:      services.NewMarketService(db, prices),
		Maintenance: services.NewMaintenanceService(db),
		Audit:       services.NewAuditService(db),
	}, server.Options{
		AdminAPIKey:    appConfig.AdminAPIKey,
		RequestLogging: true,
		Swagger:        appConfig.Env != "production",
	})

	srv := &http.Server{
		Addr:              ":" + appConfig.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Infof("Starting Coinfolio server on port %s", appConfig.Port)
		log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if !ok {
			return nil
		}
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	log.Info("Shutdown requested")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
