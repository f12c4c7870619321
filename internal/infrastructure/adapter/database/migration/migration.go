package migration

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	coreport "github.com/amirhossein-jamali/timeconv/internal/domain/port/core"
	"github.com/amirhossein-jamali/timeconv/internal/infrastructure/adapter/model"
)

const (
	// CurrentSchemaVersion represents the current database schema version
	CurrentSchemaVersion = "1.1.0"
)

// step upgrades the schema from one version to the next
type step struct {
	from string
	to   string
	run  func(ctx context.Context, db *gorm.DB) error
}

// MigrationManager manages database migrations
type MigrationManager struct {
	db           *gorm.DB
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
	steps        []step
}

// NewMigrationManager creates a new migration manager
func NewMigrationManager(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider) *MigrationManager {
	return &MigrationManager{
		db:           db,
		logger:       logger,
		timeProvider: timeProvider,
		steps: []step{
			{from: "", to: "1.0.0", run: createConversionsTable},
			{from: "1.0.0", to: "1.1.0", run: createCompositeIndex},
		},
	}
}

// MigrateAll brings the schema up to CurrentSchemaVersion
func (m *MigrationManager) MigrateAll(ctx context.Context) error {
	m.logger.Info("Starting database migrations", map[string]any{
		"target_version": CurrentSchemaVersion,
	})

	if err := m.db.WithContext(ctx).AutoMigrate(&model.MigrationVersion{}); err != nil {
		m.logger.Error("Failed to create migration version table", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	currentVersion, err := m.GetCurrentVersion(ctx)
	if err != nil {
		m.logger.Error("Failed to check current schema version", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	if currentVersion == CurrentSchemaVersion {
		m.logger.Info("Database already at target version, skipping migration", map[string]any{
			"version": currentVersion,
		})
		return nil
	}

	for _, s := range m.steps {
		if s.from != currentVersion {
			continue
		}

		m.logger.Info("Applying migration", map[string]any{
			"from": s.from,
			"to":   s.to,
		})

		if err := s.run(ctx, m.db.WithContext(ctx)); err != nil {
			m.logger.Error("Migration failed", map[string]any{
				"error": err.Error(),
				"from":  s.from,
				"to":    s.to,
			})
			return fmt.Errorf("migrate %q to %q: %w", s.from, s.to, err)
		}

		if err := m.setVersion(ctx, s.to, fmt.Sprintf("migrated from %q", s.from)); err != nil {
			return err
		}
		currentVersion = s.to
	}

	if currentVersion != CurrentSchemaVersion {
		return fmt.Errorf("no migration path from schema version %q", currentVersion)
	}

	m.logger.Info("Database migrations completed successfully", map[string]any{
		"version": CurrentSchemaVersion,
	})
	return nil
}

// GetCurrentVersion gets the current migration version
func (m *MigrationManager) GetCurrentVersion(ctx context.Context) (string, error) {
	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	var version model.MigrationVersion
	result := m.db.WithContext(ctx).Order("id desc").First(&version)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", result.Error
	}

	return version.Version, nil
}

// setVersion records a new migration version
func (m *MigrationManager) setVersion(ctx context.Context, version string, details string) error {
	migrationVersion := model.MigrationVersion{
		Version:   version,
		AppliedAt: m.timeProvider.Now(),
		Details:   details,
	}

	return m.db.WithContext(ctx).Create(&migrationVersion).Error
}

func createConversionsTable(ctx context.Context, db *gorm.DB) error {
	return db.AutoMigrate(&model.Conversion{})
}

// createCompositeIndex speeds up per-unit history listings
func createCompositeIndex(ctx context.Context, db *gorm.DB) error {
	return db.Exec("CREATE INDEX IF NOT EXISTS idx_conversions_unit_created_at ON conversions (unit, created_at)").Error
}
