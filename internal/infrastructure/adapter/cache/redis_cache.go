package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	errs "github.com/amirhossein-jamali/timeconv/internal/domain/error"
	coreport "github.com/amirhossein-jamali/timeconv/internal/domain/port/core"
	"github.com/amirhossein-jamali/timeconv/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/timeconv/pkg/timedata"
)

// Options configures the redis connection
type Options struct {
	Addr         string
	Password     string
	DB           int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// RedisCache stores conversion results in redis as JSON
type RedisCache struct {
	rdb    *redis.Client
	logger coreport.Logger
}

var _ persistence.ConversionCache = (*RedisCache)(nil)

// NewRedisCache creates a client without contacting the server
func NewRedisCache(opts Options, logger coreport.Logger) *RedisCache {
	rdb := redis.NewClient(&redis.Options{
		Addr:         opts.Addr,
		Password:     opts.Password,
		DB:           opts.DB,
		DialTimeout:  opts.DialTimeout,
		ReadTimeout:  opts.ReadTimeout,
		WriteTimeout: opts.WriteTimeout,
		MaxRetries:   1,
	})

	return &RedisCache{rdb: rdb, logger: logger}
}

// Connect creates a client and verifies the server is reachable
func Connect(ctx context.Context, opts Options, logger coreport.Logger) (*RedisCache, error) {
	c := NewRedisCache(opts, logger)
	if err := c.Ping(ctx); err != nil {
		_ = c.Close()
		return nil, err
	}

	logger.Info("Connected to redis", map[string]any{
		"addr": opts.Addr,
		"db":   opts.DB,
	})
	return c, nil
}

// Ping checks that redis is reachable
func (c *RedisCache) Ping(ctx context.Context) error {
	if err := c.rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("%w: %v", errs.ErrCacheUnavailable, err)
	}
	return nil
}

// Close closes the underlying client
func (c *RedisCache) Close() error {
	return c.rdb.Close()
}

// Get returns the cached result for key; found is false on a miss
func (c *RedisCache) Get(ctx context.Context, key string) (timedata.TimeData, bool, error) {
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return timedata.TimeData{}, false, nil
		}
		return timedata.TimeData{}, false, fmt.Errorf("%w: get %s: %v", errs.ErrCacheUnavailable, key, err)
	}

	data, err := decode(raw)
	if err != nil {
		c.logger.Warn("Discarding malformed cache entry", map[string]any{
			"key":   key,
			"error": err.Error(),
		})
		return timedata.TimeData{}, false, nil
	}

	return data, true, nil
}

// Set stores a result under key; a zero ttl keeps the entry until evicted
func (c *RedisCache) Set(ctx context.Context, key string, data timedata.TimeData, ttl time.Duration) error {
	raw, err := encode(data)
	if err != nil {
		return err
	}

	if err := c.rdb.Set(ctx, key, raw, ttl).Err(); err != nil {
		return fmt.Errorf("%w: set %s: %v", errs.ErrCacheUnavailable, key, err)
	}
	return nil
}

func encode(data timedata.TimeData) ([]byte, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("unable to encode cache entry: %w", err)
	}
	return raw, nil
}

func decode(raw []byte) (timedata.TimeData, error) {
	var data timedata.TimeData
	if err := json.Unmarshal(raw, &data); err != nil {
		return timedata.TimeData{}, fmt.Errorf("unable to decode cache entry: %w", err)
	}
	return data, nil
}
