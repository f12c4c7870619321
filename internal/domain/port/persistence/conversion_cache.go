package persistence

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/timeconv/pkg/timedata"
)

// ConversionCache keeps computed results keyed by unit, quantity and precision
type ConversionCache interface {
	// Get returns the cached result and whether it was found
	Get(ctx context.Context, key string) (timedata.TimeData, bool, error)
	// Set stores a result for the given duration
	Set(ctx context.Context, key string, data timedata.TimeData, ttl time.Duration) error
}
