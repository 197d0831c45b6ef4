// Package server assembles the HTTP router from the services.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "coinfolio/internal/docs" // registers the swagger spec
	"coinfolio/internal/handlers"
	"coinfolio/internal/middleware"
	"coinfolio/internal/services"
)

// Services bundles the business services the router exposes.
type Services struct {
	Users       services.UserServicer
	Portfolios  services.PortfolioServicer
	Referrals   services.ReferralServicer
	Market      services.MarketServicer
	Maintenance services.MaintenanceServicer
	Audit       services.AuditServicer
}

// Options tunes router behaviour that differs between deployments.
type Options struct {
	// AdminAPIKey guards the maintenance routes. Empty disables them.
	AdminAPIKey string
	// RequestLogging enables the per-request access log.
	RequestLogging bool
	// Swagger mounts the API docs at /swagger.
	Swagger bool
}

// NewRouter builds the gin engine with every route of the API.
func NewRouter(svc Services, opts Options) *gin.Engine {
	authHandler := handlers.NewAuthHandler(svc.Users, svc.Referrals, svc.Audit)
	portfolioHandler := handlers.NewPortfolioHandler(svc.Portfolios, svc.Audit)
	referralHandler := handlers.NewReferralHandler(svc.Referrals, svc.Audit)
	marketHandler := handlers.NewMarketHandler(svc.Market)
	adminHandler := handlers.NewAdminHandler(svc.Maintenance, svc.Audit)

	router := gin.New()
	router.Use(gin.Recovery())
	if opts.RequestLogging {
		router.Use(middleware.RequestLogging())
	}
	router.Use(middleware.ErrorHandler())
	router.Use(cors())
	router.NoRoute(middleware.NotFound())

	if opts.Swagger {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	// Public routes
	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/register/:referral_code", authHandler.Register)
	auth.GET("/referrers/:referral_code", authHandler.CheckReferrer)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.Refresh)

	market := v1.Group("/market")
	market.GET("/top", marketHandler.TopCoins)
	market.GET("/charts", marketHandler.Chart)
	market.GET("/charts/:coin_id", marketHandler.Chart)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	protected.POST("/auth/logout", authHandler.Logout)
	protected.GET("/profile", authHandler.GetProfile)
	protected.DELETE("/profile", authHandler.DeleteProfile)
	protected.GET("/market/search", marketHandler.Search)

	portfolio := protected.Group("/portfolio")
	portfolio.GET("", portfolioHandler.GetPortfolio)
	portfolio.GET("/changes", portfolioHandler.GetPriceChanges)
	portfolio.POST("/buy", portfolioHandler.Buy)
	portfolio.POST("/reset", portfolioHandler.Reset)
	portfolio.GET("/holdings/:id", portfolioHandler.GetHolding)
	portfolio.POST("/holdings/:id/sell", portfolioHandler.Sell)

	referrals := protected.Group("/referrals")
	referrals.GET("", referralHandler.ListReferrals)
	referrals.POST("/redeem", referralHandler.Redeem)

	// Admin routes
	admin := v1.Group("/admin")
	admin.Use(middleware.AdminAuthMiddleware(opts.AdminAPIKey))
	admin.POST("/maintenance/orphans", adminHandler.PurgeOrphans)

	return router
}

func cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-API-Key, X-Request-ID")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
