package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Dev-BrunoOliveira/CARTEIRA/internal/config"
	"github.com/Dev-BrunoOliveira/CARTEIRA/internal/database"
	"github.com/Dev-BrunoOliveira/CARTEIRA/internal/handlers"
	"github.com/Dev-BrunoOliveira/CARTEIRA/internal/middleware"
	"github.com/Dev-BrunoOliveira/CARTEIRA/internal/repositories"
	"github.com/Dev-BrunoOliveira/CARTEIRA/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	cfg := config.Load()

	logLevel := slog.LevelInfo
	if cfg.IsDevelopment() {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})))

	runMigrations(cfg)

	db, err := database.New(&cfg.Database)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	e := buildServer(cfg, db)

	go func() {
		addr := cfg.Server.Host + ":" + cfg.Server.Port
		slog.Info("Server starting", "addr", addr, "environment", cfg.Server.Environment)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("Server stopped", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		slog.Error("Forced shutdown", "error", err)
	}
}

func runMigrations(cfg *config.Config) {
	runner, err := database.NewMigrationRunner(&cfg.Database)
	if err != nil {
		slog.Error("Failed to create migration runner", "error", err)
		os.Exit(1)
	}
	defer runner.Close()

	if err := runner.WaitForDatabase(); err != nil {
		slog.Error("Database never became ready", "error", err)
		os.Exit(1)
	}

	if err := runner.RunMigrations(); err != nil {
		slog.Error("Migrations failed", "error", err)
		os.Exit(1)
	}
}

func buildServer(cfg *config.Config, db *database.DB) *echo.Echo {
	transactionRepo := repositories.NewTransactionRepository(db.DB)
	goalRepo := repositories.NewGoalRepository(db.DB)
	userRepo := repositories.NewUserRepository(db.DB)

	metrics := services.NewPrometheusMetrics()
	tokenService := services.NewTokenService(&cfg.JWT)
	authService := services.NewAuthService(userRepo, tokenService, metrics)
	ledgerService := services.NewLedgerService(transactionRepo, metrics)
	aggregationService := services.NewAggregationService()
	advisoryService := services.NewAdvisoryService(metrics)
	goalService := services.NewGoalService(goalRepo, cfg.Ledger.DerivedGoal)

	authHandler := handlers.NewAuthHandler(authService, ledgerService)
	ledgerHandler := handlers.NewLedgerHandler(ledgerService)
	dashboardHandler := handlers.NewDashboardHandler(
		ledgerService, aggregationService, advisoryService, goalService, metrics)
	goalHandler := handlers.NewGoalHandler(ledgerService, aggregationService, goalService)
	healthHandler := handlers.NewHealthCheckHandler(db.DB)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	e.Use(middleware.TraceID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.RateLimiter(cfg.Ledger.RateLimitPerSec, cfg.Ledger.RateLimitBurst))
	e.Use(echomiddleware.CORS())

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")

	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/logout", authHandler.Logout, middleware.RequireAuth(tokenService))

	protected := api.Group("", middleware.RequireAuth(tokenService))
	protected.POST("/transactions", ledgerHandler.AddTransaction)
	protected.GET("/transactions", ledgerHandler.ListTransactions)
	protected.DELETE("/transactions/:id", ledgerHandler.RemoveTransaction)
	protected.PUT("/ledger/month", ledgerHandler.SetActiveMonth)

	protected.GET("/dashboard/summary", dashboardHandler.Summary)
	protected.GET("/dashboard/series", dashboardHandler.Series)
	protected.GET("/dashboard/advice", dashboardHandler.Advice)

	protected.GET("/goal", goalHandler.GetGoal)
	protected.PUT("/goal", goalHandler.SetGoal)

	if cfg.Ledger.SeedEnabled && cfg.IsDevelopment() {
		devHandler := handlers.NewDevHandler(transactionRepo, ledgerService)
		protected.POST("/dev/seed", devHandler.Seed)
		slog.Info("Development seed endpoint enabled")
	}

	return e
}
