package persistence

import (
	"context"

	"github.com/amirhossein-jamali/timeconv/internal/domain/entity"
)

// ConversionRepository stores the history of performed conversions
type ConversionRepository interface {
	// Create saves a new conversion record
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, conversion *entity.Conversion) error

	// GetByID retrieves a conversion by its ID
	//
	// Possible errors:
	// - ErrConversionNotFound: If no conversion has the given ID
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id string) (*entity.Conversion, error)

	// ListRecent returns up to limit conversions, newest first
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	ListRecent(ctx context.Context, limit int) ([]*entity.Conversion, error)

	// CountByUnit returns the number of stored conversions per source unit
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	CountByUnit(ctx context.Context) (map[string]int64, error)
}
