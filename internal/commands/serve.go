package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"internal-tools-api/internal/config"
	"internal-tools-api/internal/database"
	"internal-tools-api/internal/handlers"
	"internal-tools-api/internal/middleware"
	"internal-tools-api/internal/repositories"
	"internal-tools-api/internal/services"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Initialize(cfg)
	if err != nil {
		return fmt.Errorf("initialize database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.Warn("failed to close database", "error", err)
		}
	}()

	e := newServer(ctx, cfg, db.DB, prometheus.DefaultRegisterer, prometheus.DefaultGatherer)

	errCh := make(chan error, 1)
	go func() {
		slog.Info("starting server", "address", cfg.Server.Address(), "environment", cfg.Server.Environment)
		if err := e.Start(cfg.Server.Address()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	}

	slog.Info("shutting down server", "timeout", cfg.Server.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	slog.Info("server stopped")
	return nil
}

// newServer wires repositories, services and handlers into an echo instance.
// The rate limiter cleanup runs until ctx is done.
func newServer(ctx context.Context, cfg *config.Config, db *gorm.DB, reg prometheus.Registerer, gatherer prometheus.Gatherer) *echo.Echo {
	logger := slog.Default()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler
	e.Validator = handlers.NewValidator()
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	limiter := middleware.NewRateLimiter(cfg.Security)
	limiter.StartCleanup(ctx)

	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLogger(logger))
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:  cfg.Server.CORSAllowOrigins,
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{echo.HeaderContentType, middleware.TraceIDHeader, middleware.RequestIDHeader},
		ExposeHeaders: []string{middleware.TraceIDHeader},
	}))
	e.Use(echomw.BodyLimit(cfg.Server.BodyLimit))
	e.Use(limiter.Middleware())

	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	toolRepo := repositories.NewToolRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)

	metrics := services.NewPrometheusMetrics(reg)
	toolService := services.NewToolService(toolRepo, categoryRepo, metrics, logger)
	categoryService := services.NewCategoryService(categoryRepo)
	analyticsService := services.NewAnalyticsService(services.NewSnapshotLoader(toolRepo), metrics, logger)

	h := handlers.Handlers{
		Health:     handlers.NewHealthCheckHandler(db),
		Tools:      handlers.NewToolHandler(toolService),
		Categories: handlers.NewCategoryHandler(categoryService),
		Analytics:  handlers.NewAnalyticsHandler(analyticsService),
	}
	if cfg.IsDevelopment() {
		h.Dev = handlers.NewDevHandler(toolService, categoryService, services.NewToolGenerator())
	}
	handlers.RegisterRoutes(e, h)

	return e
}
