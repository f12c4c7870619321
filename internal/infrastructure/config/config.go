package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Config holds all configuration for the application
type Config struct {
	Environment string           `mapstructure:"environment"`
	Server      ServerConfig     `mapstructure:"server"`
	Database    DatabaseConfig   `mapstructure:"database"`
	Cache       CacheConfig      `mapstructure:"cache"`
	Logger      LoggerConfig     `mapstructure:"logger"`
	Conversion  ConversionConfig `mapstructure:"conversion"`
	Metrics     MetricsConfig    `mapstructure:"metrics"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
	AllowedOrigins    []string      `mapstructure:"allowedOrigins"`
}

// Address returns the host:port the server listens on
func (s ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// DatabaseConfig contains history store connection settings
type DatabaseConfig struct {
	Enabled         bool          `mapstructure:"enabled"`
	Driver          string        `mapstructure:"driver"` // postgres or sqlite
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	SSLMode         string        `mapstructure:"sslMode"`
	SQLitePath      string        `mapstructure:"sqlitePath"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"` // minutes
	ConnMaxIdleTime time.Duration `mapstructure:"connMaxIdleTime"` // minutes
	QueryTimeout    time.Duration `mapstructure:"queryTimeout"`    // seconds
	RetryAttempts   int           `mapstructure:"retryAttempts"`
	RetryDelay      time.Duration `mapstructure:"retryDelay"` // seconds
}

// CacheConfig contains redis result cache settings
type CacheConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	TTL      time.Duration `mapstructure:"ttl"` // seconds
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Output     string `mapstructure:"output"`
	TimeFormat string `mapstructure:"timeFormat"`
	CallerInfo bool   `mapstructure:"callerInfo"`
}

// ConversionConfig contains conversion settings
type ConversionConfig struct {
	DefaultDecimals int  `mapstructure:"defaultDecimals"`
	MaxDecimals     int  `mapstructure:"maxDecimals"`
	MaxBatchSize    int  `mapstructure:"maxBatchSize"`
	Workers         int  `mapstructure:"workers"`
	RecordHistory   bool `mapstructure:"recordHistory"`
}

// MetricsConfig contains prometheus exposition settings
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// Supported database drivers
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Validate reports every missing or invalid setting
func (c *Config) Validate() error {
	var problems []string

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		problems = append(problems, fmt.Sprintf("server.port %d out of range", c.Server.Port))
	}

	if c.Database.Enabled {
		switch c.Database.Driver {
		case DriverPostgres:
			if c.Database.Host == "" {
				problems = append(problems, "database.host is required for postgres")
			}
			if c.Database.Database == "" {
				problems = append(problems, "database.database is required for postgres")
			}
		case DriverSQLite:
			if c.Database.SQLitePath == "" {
				problems = append(problems, "database.sqlitePath is required for sqlite")
			}
		default:
			problems = append(problems, fmt.Sprintf("unsupported database.driver %q", c.Database.Driver))
		}
	}

	if c.Cache.Enabled && c.Cache.Addr == "" {
		problems = append(problems, "cache.addr is required when the cache is enabled")
	}

	conv := c.Conversion
	if conv.MaxDecimals < 0 || conv.MaxDecimals > 100 {
		problems = append(problems, fmt.Sprintf("conversion.maxDecimals %d out of range [0, 100]", conv.MaxDecimals))
	}
	if conv.DefaultDecimals < 0 || conv.DefaultDecimals > conv.MaxDecimals {
		problems = append(problems, fmt.Sprintf("conversion.defaultDecimals %d out of range [0, %d]", conv.DefaultDecimals, conv.MaxDecimals))
	}
	if conv.MaxBatchSize <= 0 {
		problems = append(problems, "conversion.maxBatchSize must be positive")
	}
	if conv.Workers <= 0 {
		problems = append(problems, "conversion.workers must be positive")
	}

	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		problems = append(problems, "metrics.path must start with /")
	}

	if len(problems) > 0 {
		return errors.New("invalid configuration: " + strings.Join(problems, "; "))
	}
	return nil
}

// HistoryEnabled reports whether conversions should be stored
func (c *Config) HistoryEnabled() bool {
	return c.Database.Enabled && c.Conversion.RecordHistory
}
