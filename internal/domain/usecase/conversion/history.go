package conversion

import (
	"context"

	"github.com/google/uuid"

	errs "github.com/amirhossein-jamali/timeconv/internal/domain/error"
	"github.com/amirhossein-jamali/timeconv/internal/domain/port/usecase"
)

// GetConversion returns a recorded conversion by its ID
func (s *Service) GetConversion(ctx context.Context, id string) (*usecase.ConversionResult, error) {
	if s.repo == nil {
		return nil, errs.ErrHistoryDisabled
	}

	if _, err := uuid.Parse(id); err != nil {
		return nil, errs.ErrInvalidConversionID
	}

	conversion, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if !errs.IsNotFoundError(err) {
			s.logger.Error("Failed to load conversion", map[string]any{
				"conversion_id": id,
				"error":         err.Error(),
			})
		}
		return nil, err
	}

	return toResult(conversion, false), nil
}

// ListConversions returns the most recent conversions, newest first.
// limit is clamped to [1, MaxListLimit]; zero or negative selects DefaultListLimit.
func (s *Service) ListConversions(ctx context.Context, limit int) ([]*usecase.ConversionResult, error) {
	if s.repo == nil {
		return nil, errs.ErrHistoryDisabled
	}

	limit = clampLimit(limit)
	conversions, err := s.repo.ListRecent(ctx, limit)
	if err != nil {
		s.logger.Error("Failed to list conversions", map[string]any{
			"limit": limit,
			"error": err.Error(),
		})
		return nil, err
	}

	results := make([]*usecase.ConversionResult, 0, len(conversions))
	for _, c := range conversions {
		results = append(results, toResult(c, false))
	}
	return results, nil
}

// Stats returns the number of recorded conversions per source unit
func (s *Service) Stats(ctx context.Context) (*usecase.ConversionStats, error) {
	if s.repo == nil {
		return nil, errs.ErrHistoryDisabled
	}

	counts, err := s.repo.CountByUnit(ctx)
	if err != nil {
		s.logger.Error("Failed to count conversions", map[string]any{
			"error": err.Error(),
		})
		return nil, err
	}

	stats := &usecase.ConversionStats{ByUnit: make(map[string]int64, len(counts))}
	for unit, n := range counts {
		stats.ByUnit[unit] = n
		stats.Total += n
	}
	return stats, nil
}

func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultListLimit
	case limit > MaxListLimit:
		return MaxListLimit
	default:
		return limit
	}
}
