package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/timeconv/internal/domain/port/core"
	"github.com/amirhossein-jamali/timeconv/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/timeconv/internal/domain/usecase/conversion"
	"github.com/amirhossein-jamali/timeconv/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/timeconv/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/timeconv/internal/infrastructure/adapter/cache"
	"github.com/amirhossein-jamali/timeconv/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/timeconv/internal/infrastructure/adapter/metrics"
	"github.com/amirhossein-jamali/timeconv/internal/infrastructure/adapter/repository"
	"github.com/amirhossein-jamali/timeconv/internal/infrastructure/config"
)

const cacheDialTimeout = 2 * time.Second

// application holds the wired HTTP service and the resources it owns
type application struct {
	cfg    *config.Config
	logger coreport.Logger
	db     *database.Manager
	cache  *cache.RedisCache
	router *gin.Engine
}

// newApplication connects the optional backends and builds the router.
// The database is required when enabled; redis is best effort.
func newApplication(ctx context.Context, cfg *config.Config, logger coreport.Logger, tp coreport.TimeProvider) (*application, error) {
	app := &application{cfg: cfg, logger: logger}
	checks := make(map[string]handler.Pinger)

	var (
		repo            persistence.ConversionRepository
		conversionCache persistence.ConversionCache
		recorder        coreport.MetricsRecorder
		prom            *metrics.PrometheusRecorder
	)

	if cfg.Metrics.Enabled {
		prom = metrics.NewPrometheusRecorder()
		recorder = prom
	}

	if cfg.Database.Enabled {
		app.db = database.NewManager(database.NewConfig(cfg.Database, cfg.Logger.Level), logger, tp)

		db, err := app.db.Connect(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}

		if err := app.db.MigrationManager().MigrateAll(ctx); err != nil {
			app.Close()
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}

		repo = repository.NewConversionRepository(db, app.db.QueryTimeout(), tp, logger)
		checks["database"] = app.db

		if prom != nil {
			if sqlDB, err := db.DB(); err == nil {
				name := cfg.Database.Database
				if app.db.IsSQLite() {
					name = cfg.Database.SQLitePath
				}
				if err := prom.RegisterDBStats(sqlDB, name); err != nil {
					logger.Warn("Failed to register database metrics", map[string]any{"error": err.Error()})
				}
			}
		}
	}

	if cfg.Cache.Enabled {
		rc, err := cache.Connect(ctx, cache.Options{
			Addr:        cfg.Cache.Addr,
			Password:    cfg.Cache.Password,
			DB:          cfg.Cache.DB,
			DialTimeout: cacheDialTimeout,
		}, logger)
		if err != nil {
			logger.Warn("Redis unavailable, continuing without cache", map[string]any{
				"addr":  cfg.Cache.Addr,
				"error": err.Error(),
			})
		} else {
			app.cache = rc
			conversionCache = rc
			checks["cache"] = rc
		}
	}

	svc := conversion.NewConversionService(repo, conversionCache, recorder, tp, logger, conversion.Settings{
		DefaultDecimals: cfg.Conversion.DefaultDecimals,
		MaxDecimals:     cfg.Conversion.MaxDecimals,
		MaxBatchSize:    cfg.Conversion.MaxBatchSize,
		Workers:         cfg.Conversion.Workers,
		RecordHistory:   cfg.Conversion.RecordHistory,
		CacheTTL:        cfg.Cache.TTL,
	})

	endpoint := routes.MetricsEndpoint{}
	if prom != nil {
		endpoint = routes.MetricsEndpoint{Path: cfg.Metrics.Path, Handler: prom.Handler()}
	}

	app.router = routes.NewRouter(
		logger,
		cfg.Server.AllowedOrigins,
		handler.NewConversionHandler(svc, logger),
		handler.NewHealthHandler(checks, logger),
		endpoint,
	)

	return app, nil
}

// Run serves HTTP until ctx is canceled, then shuts down gracefully
func (a *application) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:              a.cfg.Server.Address(),
		Handler:           a.router,
		ReadTimeout:       a.cfg.Server.ReadTimeout,
		WriteTimeout:      a.cfg.Server.WriteTimeout,
		ReadHeaderTimeout: a.cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       a.cfg.Server.IdleTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		a.logger.Info("Starting server", map[string]any{
			"addr": server.Addr,
			"env":  a.cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	a.logger.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("Server forced to shutdown", map[string]any{"error": err.Error()})
		return err
	}

	a.logger.Info("Server exited gracefully", nil)
	return nil
}

// Close releases the database and cache connections
func (a *application) Close() {
	if a.cache != nil {
		if err := a.cache.Close(); err != nil {
			a.logger.Warn("Failed to close redis client", map[string]any{"error": err.Error()})
		}
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.logger.Warn("Failed to close database", map[string]any{"error": err.Error()})
		}
	}
}
