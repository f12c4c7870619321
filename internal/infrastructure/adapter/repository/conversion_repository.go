package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/amirhossein-jamali/timeconv/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/timeconv/internal/domain/port/core"
	"github.com/amirhossein-jamali/timeconv/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/timeconv/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/timeconv/internal/infrastructure/adapter/model"
)

// ConversionRepository implements persistence.ConversionRepository using GORM
type ConversionRepository struct {
	db              *gorm.DB
	queryTimeout    time.Duration
	logger          coreport.Logger
	errorMapper     *database.ErrorMapper
	errorClassifier *ErrorClassifier
	metrics         *database.MetricsCollector
	retryConfig     database.RetryConfig
}

var _ persistence.ConversionRepository = (*ConversionRepository)(nil)

// NewConversionRepository creates a new ConversionRepository instance.
// A zero queryTimeout leaves deadlines to the caller's context.
func NewConversionRepository(db *gorm.DB, queryTimeout time.Duration, timeProvider coreport.TimeProvider, logger coreport.Logger) *ConversionRepository {
	return &ConversionRepository{
		db:              db,
		queryTimeout:    queryTimeout,
		logger:          logger,
		errorMapper:     database.NewErrorMapper(),
		errorClassifier: NewErrorClassifier(),
		metrics:         database.NewMetricsCollector(logger, timeProvider),
		retryConfig:     database.DefaultRetryConfig(),
	}
}

func (r *ConversionRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.queryTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, r.queryTimeout)
}

// handleDatabaseError logs and maps a database error to a domain error
func (r *ConversionRepository) handleDatabaseError(operation string, err error, fields map[string]any) error {
	errorType := r.errorClassifier.Classify(err)
	if errorType != NotFoundError {
		logFields := map[string]any{
			"operation":  operation,
			"error":      err.Error(),
			"error_type": string(errorType),
		}
		for k, v := range fields {
			logFields[k] = v
		}
		r.logger.Error("Database error", logFields)
	}
	return r.errorMapper.MapError(err, operation)
}

// Create stores a conversion, retrying transient failures
func (r *ConversionRepository) Create(ctx context.Context, conversion *entity.Conversion) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	row := model.NewConversionModel(conversion)

	_, err := r.metrics.MeasureQuery(ctx, "create_conversion", func() (int64, error) {
		var rows int64
		err := database.RetryOnTransientError(ctx, r.retryConfig, func() error {
			result := r.db.WithContext(ctx).Create(row)
			rows = result.RowsAffected
			return result.Error
		}, r.logger)
		return rows, err
	})
	if err != nil {
		return r.handleDatabaseError("create_conversion", err, map[string]any{"conversion_id": conversion.ID})
	}

	return nil
}

// GetByID retrieves a conversion by its ID
func (r *ConversionRepository) GetByID(ctx context.Context, id string) (*entity.Conversion, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var row model.Conversion
	_, err := r.metrics.MeasureQuery(ctx, "get_conversion", func() (int64, error) {
		result := r.db.WithContext(ctx).Where("id = ?", id).First(&row)
		return result.RowsAffected, result.Error
	})
	if err != nil {
		return nil, r.handleDatabaseError("get_conversion", err, map[string]any{"conversion_id": id})
	}

	return row.ToEntity(), nil
}

// ListRecent returns up to limit conversions, newest first
func (r *ConversionRepository) ListRecent(ctx context.Context, limit int) ([]*entity.Conversion, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var rows []model.Conversion
	_, err := r.metrics.MeasureQuery(ctx, "list_conversions", func() (int64, error) {
		result := r.db.WithContext(ctx).
			Order("created_at desc").
			Order("id desc").
			Limit(limit).
			Find(&rows)
		return result.RowsAffected, result.Error
	})
	if err != nil {
		return nil, r.handleDatabaseError("list_conversions", err, map[string]any{"limit": limit})
	}

	conversions := make([]*entity.Conversion, 0, len(rows))
	for i := range rows {
		conversions = append(conversions, rows[i].ToEntity())
	}
	return conversions, nil
}

// CountByUnit returns the number of stored conversions per source unit
func (r *ConversionRepository) CountByUnit(ctx context.Context) (map[string]int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var rows []model.UnitCount
	_, err := r.metrics.MeasureQuery(ctx, "count_conversions", func() (int64, error) {
		result := r.db.WithContext(ctx).
			Model(&model.Conversion{}).
			Select("unit, count(*) as count").
			Group("unit").
			Scan(&rows)
		return result.RowsAffected, result.Error
	})
	if err != nil {
		return nil, r.handleDatabaseError("count_conversions", err, nil)
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Unit] = row.Count
	}
	return counts, nil
}
