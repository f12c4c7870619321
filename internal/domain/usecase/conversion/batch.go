package conversion

import (
	"context"

	errs "github.com/amirhossein-jamali/timeconv/internal/domain/error"
	"github.com/amirhossein-jamali/timeconv/internal/domain/port/usecase"
)

// ConvertBatch converts several requests concurrently.
// Per-item failures are reported in the item result; the returned error is
// reserved for failures of the batch as a whole.
func (s *Service) ConvertBatch(ctx context.Context, reqs []usecase.ConversionRequest) ([]usecase.BatchItemResult, error) {
	if len(reqs) == 0 {
		s.recordError(errs.ErrInvalidRequest)
		return nil, errs.ErrInvalidRequest
	}

	if len(reqs) > s.settings.MaxBatchSize {
		batchErr := &errs.BatchError{Size: len(reqs), MaxSize: s.settings.MaxBatchSize}
		s.logger.Warn("Batch rejected", batchErr.LogFields())
		s.recordError(batchErr)
		return nil, batchErr
	}

	if s.metrics != nil {
		s.metrics.ObserveBatch(len(reqs))
	}

	results := s.batch.Process(ctx, reqs)
	if err := ctx.Err(); err != nil {
		s.logger.Warn("Batch interrupted", map[string]any{
			"items": len(reqs),
			"error": err.Error(),
		})
		return nil, err
	}

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}

	s.logger.Info("Batch processed", map[string]any{
		"items":  len(reqs),
		"failed": failed,
	})

	return results, nil
}
