package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"olibranch/internal/config"
	"olibranch/internal/database"
	"olibranch/internal/handlers"
	custommw "olibranch/internal/middleware"
	"olibranch/internal/repositories"
	"olibranch/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	logLevel := slog.LevelInfo
	if cfg.IsDevelopment() {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})))

	db, err := database.Initialize(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Repositories
	profileRepo := repositories.NewProfileRepository(db.DB)
	bankRepo := repositories.NewBankRepository(db.DB)
	healthRepo := repositories.NewHealthRepository(db.DB)
	subscriptionRepo := repositories.NewSubscriptionRepository(db.DB)
	settingsRepo := repositories.NewSettingsRepository(db.DB)
	analysisRepo := repositories.NewFeeAnalysisRepository(db.DB)

	// Services
	metrics := services.NewPrometheusMetrics()
	generator := services.NewStatementGenerator()
	profileService := services.NewProfileService(profileRepo, metrics)
	healthService := services.NewHealthService(healthRepo, metrics)
	subscriptionService := services.NewSubscriptionService(subscriptionRepo, metrics)
	bankService := services.NewBankService(bankRepo, analysisRepo, generator, metrics)
	feeService := services.NewFeeAnalysisService(bankRepo, analysisRepo, subscriptionService, metrics)
	settingsService := services.NewSettingsService(settingsRepo)

	if cfg.Demo.SeedSampleProfiles {
		if err := services.SeedSampleProfiles(profileRepo); err != nil {
			log.Printf("Warning: failed to seed sample profiles: %v", err)
		}
	}

	// Handlers
	profileHandler := handlers.NewProfileHandler(profileService)
	healthHandler := handlers.NewFinancialHealthHandler(healthService)
	bankHandler := handlers.NewBankHandler(bankService)
	feeHandler := handlers.NewFeeHandler(feeService)
	subscriptionHandler := handlers.NewSubscriptionHandler(subscriptionService)
	settingsHandler := handlers.NewSettingsHandler(settingsService)
	healthCheckHandler := handlers.NewHealthCheckHandler(db.DB)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = custommw.CustomHTTPErrorHandler

	e.Use(custommw.RequestID())
	e.Use(custommw.PanicRecovery())
	e.Use(custommw.SecurityHeaders())
	e.Use(custommw.RateLimiterWithConfig(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
	}))
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			slog.Info("request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"trace_id", custommw.GetTraceID(c),
			)
			return nil
		},
	}))

	e.GET("/health", healthCheckHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")

	profiles := api.Group("/profiles")
	profiles.POST("", profileHandler.CreateProfile)
	profiles.GET("", profileHandler.ListProfiles)
	profiles.DELETE("", profileHandler.ClearProfiles)
	profiles.GET("/:id", profileHandler.GetProfile)
	profiles.GET("/:id/scorecard", profileHandler.GetScorecard)

	api.GET("/dashboard/risk-chart", profileHandler.RiskChart)

	healthScore := api.Group("/health-score")
	healthScore.GET("", healthHandler.GetScore)
	healthScore.PUT("/inputs", healthHandler.SaveInputs)
	healthScore.GET("/inputs", healthHandler.GetInputs)
	healthScore.DELETE("/inputs", healthHandler.ClearInputs)
	healthScore.GET("/history", healthHandler.GetHistory)

	banks := api.Group("/banks")
	banks.POST("", bankHandler.LinkBank)
	banks.GET("", bankHandler.ListBanks)
	banks.DELETE("/:id", bankHandler.UnlinkBank)
	banks.GET("/transactions", bankHandler.ListTransactions)

	fees := api.Group("/fees")
	fees.POST("/analysis", feeHandler.RunAnalysis)
	fees.GET("/analysis", feeHandler.LatestAnalysis)
	fees.GET("/rules", feeHandler.FeeRules)

	subscription := api.Group("/subscription")
	subscription.GET("", subscriptionHandler.GetSubscription)
	subscription.POST("/upgrade", subscriptionHandler.Upgrade)
	subscription.POST("/cancel", subscriptionHandler.Cancel)

	settings := api.Group("/settings")
	settings.GET("", settingsHandler.GetSettings)
	settings.PATCH("", settingsHandler.UpdateSettings)
	settings.PUT("/payment-links", settingsHandler.UpdatePaymentLinks)

	// Start server
	go func() {
		addr := cfg.Server.Host + ":" + cfg.Server.Port
		slog.Info("server starting", "addr", addr, "env", cfg.Server.Environment)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
}
