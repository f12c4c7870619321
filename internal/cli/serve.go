package cli

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/amirhossein-jamali/timeconv/internal/infrastructure/adapter/logger"
	timeprovider "github.com/amirhossein-jamali/timeconv/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/timeconv/internal/infrastructure/config"
)

func newServeCommand(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP conversion service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), root)
		},
	}
}

func runServe(ctx context.Context, root *rootOptions) error {
	cfg, err := root.loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger, err := logger.NewZapLogger(logger.Options{
		Level:      cfg.Logger.Level,
		Format:     cfg.Logger.Format,
		Output:     cfg.Logger.Output,
		CallerInfo: cfg.Logger.CallerInfo,
	})
	if err != nil {
		return err
	}
	defer func() { _ = appLogger.Flush() }()

	app, err := newApplication(ctx, cfg, appLogger, timeprovider.NewRealTimeProvider())
	if err != nil {
		appLogger.Error("Failed to initialize service", map[string]any{"error": err.Error()})
		return err
	}
	defer app.Close()

	return app.Run(ctx)
}
