package conversion

import (
	"context"
	"sync"

	coreport "github.com/amirhossein-jamali/timeconv/internal/domain/port/core"
	"github.com/amirhossein-jamali/timeconv/internal/domain/port/usecase"
)

// ConvertFunc is the function signature for converting a single request
type ConvertFunc func(ctx context.Context, req usecase.ConversionRequest) (*usecase.ConversionResult, error)

// BatchProcessor fans conversion requests out to a bounded pool of workers
type BatchProcessor struct {
	workers int
	logger  coreport.Logger
	convert ConvertFunc
}

// batchJob represents a queued item of a batch
type batchJob struct {
	index int
	req   usecase.ConversionRequest
}

// NewBatchProcessor creates a new batch processor
func NewBatchProcessor(workers int, logger coreport.Logger, convert ConvertFunc) *BatchProcessor {
	if convert == nil {
		panic("Batch convert function cannot be nil")
	}
	if workers <= 0 {
		workers = 1
	}

	return &BatchProcessor{
		workers: workers,
		logger:  logger,
		convert: convert,
	}
}

// Process converts every request and returns the results in input order.
// Items not started before ctx is done carry ctx.Err().
func (p *BatchProcessor) Process(ctx context.Context, reqs []usecase.ConversionRequest) []usecase.BatchItemResult {
	results := make([]usecase.BatchItemResult, len(reqs))
	if len(reqs) == 0 {
		return results
	}

	workers := p.workers
	if workers > len(reqs) {
		workers = len(reqs)
	}

	jobs := make(chan batchJob)
	var wg sync.WaitGroup

	p.logger.Debug("Starting batch workers", map[string]any{
		"workers": workers,
		"items":   len(reqs),
	})

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				results[job.index] = p.run(ctx, job)
			}
		}()
	}

	next := 0
enqueue:
	for ; next < len(reqs); next++ {
		select {
		case jobs <- batchJob{index: next, req: reqs[next]}:
		case <-ctx.Done():
			break enqueue
		}
	}
	close(jobs)
	wg.Wait()

	for i := next; i < len(reqs); i++ {
		results[i] = usecase.BatchItemResult{Index: i, Err: ctx.Err()}
	}

	return results
}

func (p *BatchProcessor) run(ctx context.Context, job batchJob) usecase.BatchItemResult {
	if err := ctx.Err(); err != nil {
		return usecase.BatchItemResult{Index: job.index, Err: err}
	}

	result, err := p.convert(ctx, job.req)
	return usecase.BatchItemResult{Index: job.index, Result: result, Err: err}
}
