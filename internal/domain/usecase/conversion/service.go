package conversion

import (
	"fmt"
	"strconv"
	"time"

	coreport "github.com/amirhossein-jamali/timeconv/internal/domain/port/core"
	"github.com/amirhossein-jamali/timeconv/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/timeconv/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/timeconv/pkg/timedata"
)

// Default settings applied when a field of Settings is left at zero
const (
	DefaultMaxBatchSize = 100
	DefaultWorkers      = 4
	DefaultListLimit    = 20
	MaxListLimit        = 100
	cacheKeyPrefix      = "timeconv"
)

// Settings controls the behaviour of the conversion service
type Settings struct {
	DefaultDecimals int
	MaxDecimals     int
	MaxBatchSize    int
	Workers         int
	RecordHistory   bool
	CacheTTL        time.Duration
}

// Service implements usecase.ConversionUseCase
type Service struct {
	repo         persistence.ConversionRepository
	cache        persistence.ConversionCache
	metrics      coreport.MetricsRecorder
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	validator    *ConversionValidator
	batch        *BatchProcessor
	settings     Settings
}

var _ usecase.ConversionUseCase = (*Service)(nil)

// NewConversionService creates a new conversion service.
// repo and cache may be nil, which disables history and caching respectively.
func NewConversionService(
	repo persistence.ConversionRepository,
	cache persistence.ConversionCache,
	metrics coreport.MetricsRecorder,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	settings Settings,
) *Service {
	if settings.MaxDecimals <= 0 || settings.MaxDecimals > timedata.MaxDecimals {
		settings.MaxDecimals = timedata.MaxDecimals
	}
	if settings.DefaultDecimals < 0 || settings.DefaultDecimals > settings.MaxDecimals {
		settings.DefaultDecimals = timedata.DefaultDecimals
	}
	if settings.MaxBatchSize <= 0 {
		settings.MaxBatchSize = DefaultMaxBatchSize
	}
	if settings.Workers <= 0 {
		settings.Workers = DefaultWorkers
	}

	s := &Service{
		repo:         repo,
		cache:        cache,
		metrics:      metrics,
		timeProvider: timeProvider,
		logger:       logger,
		validator:    NewConversionValidator(settings.DefaultDecimals, settings.MaxDecimals),
		settings:     settings,
	}
	s.batch = NewBatchProcessor(settings.Workers, logger, s.Convert)
	return s
}

// Settings returns the effective settings after defaults were applied
func (s *Service) Settings() Settings {
	return s.settings
}

// HistoryEnabled reports whether conversions are recorded
func (s *Service) HistoryEnabled() bool {
	return s.repo != nil
}

// CacheKey builds the cache key for a validated request
func CacheKey(unit timedata.Unit, quantity float64, decimals int) string {
	return fmt.Sprintf("%s:%s:%s:%d", cacheKeyPrefix, unit, strconv.FormatFloat(quantity, 'g', -1, 64), decimals)
}
