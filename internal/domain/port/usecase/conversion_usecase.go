package usecase

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/timeconv/pkg/timedata"
)

// ConversionRequest represents an incoming conversion request
type ConversionRequest struct {
	Unit     string  `json:"unit"`
	Quantity float64 `json:"value"`
	// Decimals is optional; nil selects the configured default precision
	Decimals *int `json:"decimals,omitempty"`
}

// ConversionResult contains a converted duration and how it was produced
type ConversionResult struct {
	ID        string
	Unit      timedata.Unit
	Quantity  float64
	Decimals  int
	Result    timedata.TimeData
	Cached    bool
	CreatedAt time.Time
}

// BatchItemResult holds the outcome of one item of a batch, in request order
type BatchItemResult struct {
	Index  int
	Result *ConversionResult
	Err    error
}

// ConversionStats summarizes the stored history
type ConversionStats struct {
	Total  int64
	ByUnit map[string]int64
}

// ConversionUseCase defines methods for conversion-related business operations
type ConversionUseCase interface {
	// Convert converts a single quantity into all units
	Convert(ctx context.Context, req ConversionRequest) (*ConversionResult, error)

	// ConvertBatch converts several quantities concurrently
	// Per-item failures are reported in the item result, not as the returned error
	ConvertBatch(ctx context.Context, reqs []ConversionRequest) ([]BatchItemResult, error)

	// GetConversion retrieves a previously recorded conversion
	GetConversion(ctx context.Context, id string) (*ConversionResult, error)

	// ListConversions lists the most recent recorded conversions
	ListConversions(ctx context.Context, limit int) ([]*ConversionResult, error)

	// Stats returns counts of recorded conversions per unit
	Stats(ctx context.Context) (*ConversionStats, error)
}
