package migration

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/amirhossein-jamali/timeconv/internal/infrastructure/adapter/model"
	mockcore "github.com/amirhossein-jamali/timeconv/mocks/port/core"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func newTestManager(t *testing.T, db *gorm.DB) *MigrationManager {
	log := mockcore.NewMockLogger(t)
	log.On("Info", mock.Anything, mock.Anything).Maybe()
	log.On("Error", mock.Anything, mock.Anything).Maybe()

	tp := mockcore.NewMockTimeProvider(t)
	tp.On("Now").Return(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)).Maybe()

	return NewMigrationManager(db, log, tp)
}

func TestMigrationManager_MigrateAll(t *testing.T) {
	db := newTestDB(t)
	m := newTestManager(t, db)
	ctx := context.Background()

	require.NoError(t, m.MigrateAll(ctx))

	version, err := m.GetCurrentVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, CurrentSchemaVersion, version)

	assert.True(t, db.Migrator().HasTable(&model.Conversion{}))
	assert.True(t, db.Migrator().HasIndex(&model.Conversion{}, "idx_conversions_unit"))
	assert.True(t, db.Migrator().HasIndex(&model.Conversion{}, "idx_conversions_unit_created_at"))

	var count int64
	require.NoError(t, db.Model(&model.MigrationVersion{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestMigrationManager_Idempotent(t *testing.T) {
	db := newTestDB(t)
	m := newTestManager(t, db)
	ctx := context.Background()

	require.NoError(t, m.MigrateAll(ctx))
	require.NoError(t, m.MigrateAll(ctx))

	var count int64
	require.NoError(t, db.Model(&model.MigrationVersion{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestMigrationManager_UnknownVersion(t *testing.T) {
	db := newTestDB(t)
	m := newTestManager(t, db)
	ctx := context.Background()

	require.NoError(t, db.AutoMigrate(&model.MigrationVersion{}))
	require.NoError(t, db.Create(&model.MigrationVersion{Version: "0.1.0", AppliedAt: time.Now()}).Error)

	err := m.MigrateAll(ctx)
	assert.ErrorContains(t, err, "no migration path")
}
