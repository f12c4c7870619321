package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	domainErr "github.com/amirhossein-jamali/timeconv/internal/domain/error"
	"github.com/amirhossein-jamali/timeconv/internal/infrastructure/adapter/database/migration"
	appconfig "github.com/amirhossein-jamali/timeconv/internal/infrastructure/config"
	mockcore "github.com/amirhossein-jamali/timeconv/mocks/port/core"
	"gorm.io/gorm"
)

func newQuietLogger(t *testing.T) *mockcore.MockLogger {
	log := mockcore.NewMockLogger(t)
	for _, level := range []string{"Debug", "Info", "Warn", "Error"} {
		log.On(level, mock.Anything, mock.Anything).Maybe()
	}
	return log
}

func newClock(t *testing.T) *mockcore.MockTimeProvider {
	tp := mockcore.NewMockTimeProvider(t)
	tp.On("Now").Return(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)).Maybe()
	tp.On("Since", mock.Anything).Return(time.Millisecond).Maybe()
	return tp
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"sqlite", Config{Driver: appconfig.DriverSQLite, SQLitePath: ":memory:"}, false},
		{"sqlite without path", Config{Driver: appconfig.DriverSQLite}, true},
		{"postgres", Config{Driver: appconfig.DriverPostgres, Host: "db", Port: 5432, Database: "timeconv", SSLMode: "disable"}, false},
		{"postgres bad ssl", Config{Driver: appconfig.DriverPostgres, Host: "db", Port: 5432, Database: "timeconv", SSLMode: "always"}, true},
		{"postgres bad port", Config{Driver: appconfig.DriverPostgres, Host: "db", Port: 0, Database: "timeconv", SSLMode: "disable"}, true},
		{"unsupported", Config{Driver: "mysql"}, true},
		{"negative retries", Config{Driver: appconfig.DriverSQLite, SQLitePath: "x.db", RetryAttempts: -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewConfig(t *testing.T) {
	cfg := NewConfig(appconfig.DatabaseConfig{
		Driver:   appconfig.DriverPostgres,
		Host:     "localhost",
		Port:     "6543",
		Username: "tc",
		Password: "secret",
		Database: "timeconv",
		SSLMode:  "disable",
	}, "warn")

	assert.Equal(t, 6543, cfg.Port)
	assert.Equal(t, "host=localhost port=6543 user=tc password=secret dbname=timeconv sslmode=disable", cfg.DSN())

	_, err := cfg.Dialector()
	assert.NoError(t, err)
}

func TestManager_ConnectSQLite(t *testing.T) {
	m := NewManager(&Config{
		Driver:        appconfig.DriverSQLite,
		SQLitePath:    ":memory:",
		MaxOpenConns:  1,
		RetryAttempts: 1,
		LogLevel:      "silent",
	}, newQuietLogger(t), newClock(t))

	db, err := m.Connect(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { _ = m.Close() })

	assert.Same(t, db, m.DB())
	assert.True(t, m.IsSQLite())
	assert.NoError(t, m.Ping(context.Background()))
	require.NotNil(t, m.MigrationManager())
	require.NoError(t, m.MigrationManager().MigrateAll(context.Background()))

	version, err := m.MigrationManager().GetCurrentVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, migration.CurrentSchemaVersion, version)

	assert.Equal(t, 1, m.connectionMonitor.GetMetrics().MaxOpenConnections)
}

func TestManager_ConnectInvalidConfig(t *testing.T) {
	m := NewManager(&Config{Driver: "oracle"}, newQuietLogger(t), newClock(t))

	_, err := m.Connect(context.Background())
	assert.ErrorContains(t, err, "invalid database configuration")
	assert.NoError(t, m.Close())
}

func TestErrorMapper_MapError(t *testing.T) {
	mapper := NewErrorMapper()

	assert.NoError(t, mapper.MapError(nil, "get"))
	assert.ErrorIs(t, mapper.MapError(gorm.ErrRecordNotFound, "get"), domainErr.ErrConversionNotFound)
	assert.ErrorIs(t, mapper.MapError(errors.New("dial tcp: connection refused"), "create"), domainErr.ErrDatabaseConnection)
	assert.ErrorIs(t, mapper.MapError(context.DeadlineExceeded, "list"), domainErr.ErrDatabaseConnection)

	other := errors.New("syntax error")
	mapped := mapper.MapError(other, "count")
	assert.ErrorIs(t, mapped, other)
	assert.Contains(t, mapped.Error(), "count")
}

func TestRetryOnTransientError(t *testing.T) {
	cfg := RetryConfig{MaxRetries: 3, RetryInterval: time.Millisecond, MaxInterval: 2 * time.Millisecond}

	t.Run("succeeds after transient failures", func(t *testing.T) {
		calls := 0
		err := RetryOnTransientError(context.Background(), cfg, func() error {
			calls++
			if calls < 3 {
				return errors.New("database is locked")
			}
			return nil
		}, newQuietLogger(t))

		assert.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("permanent errors are not retried", func(t *testing.T) {
		calls := 0
		err := RetryOnTransientError(context.Background(), cfg, func() error {
			calls++
			return errors.New("UNIQUE constraint failed")
		}, newQuietLogger(t))

		assert.Error(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("gives up after max retries", func(t *testing.T) {
		calls := 0
		err := RetryOnTransientError(context.Background(), cfg, func() error {
			calls++
			return errors.New("connection reset by peer")
		}, newQuietLogger(t))

		assert.Error(t, err)
		assert.Equal(t, 3, calls)
	})
}

func TestCalculateBackoffWithJitter(t *testing.T) {
	cfg := RetryConfig{RetryInterval: 10 * time.Millisecond, MaxInterval: 40 * time.Millisecond, JitterFactor: 0.5}

	assert.GreaterOrEqual(t, calculateBackoffWithJitter(0, cfg), 10*time.Millisecond)
	assert.LessOrEqual(t, calculateBackoffWithJitter(0, cfg), 15*time.Millisecond)
	assert.LessOrEqual(t, calculateBackoffWithJitter(10, cfg), 60*time.Millisecond)
}

func TestExtractQueryType(t *testing.T) {
	assert.Equal(t, "SELECT", extractQueryType("  select * from conversions"))
	assert.Equal(t, "INSERT", extractQueryType("INSERT INTO conversions"))
	assert.Equal(t, "", extractQueryType("PRAGMA foreign_keys"))
}
