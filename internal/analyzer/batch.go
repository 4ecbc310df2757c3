package analyzer

import (
	"context"
	"log/slog"
	"sync"

	"github.com/passaudit/passaudit/internal/model"
	"golang.org/x/sync/errgroup"
)

// defaultBatchConcurrency is the default number of concurrent analyses.
// Analysis is CPU-bound and fast, so a small pool is plenty; the limit
// mainly keeps zxcvbn's allocations bounded on huge list files.
const defaultBatchConcurrency = 8

// BatchProcessor analyzes many passwords concurrently. The Analyzer is
// pure and stateless, so a single instance is shared by all workers.
type BatchProcessor struct {
	// analyzer performs each analysis.
	analyzer *Analyzer

	// concurrency is the maximum number of concurrent analyses.
	concurrency int

	// logger is used for batch-level logging.
	logger *slog.Logger
}

// BatchOption configures a BatchProcessor.
type BatchOption func(*BatchProcessor)

// WithBatchLogger sets a custom logger for batch processing.
func WithBatchLogger(logger *slog.Logger) BatchOption {
	return func(b *BatchProcessor) {
		b.logger = logger
	}
}

// WithConcurrency sets the maximum number of concurrent analyses.
// Non-positive values are ignored.
func WithConcurrency(n int) BatchOption {
	return func(b *BatchProcessor) {
		if n > 0 {
			b.concurrency = n
		}
	}
}

// NewBatchProcessor creates a BatchProcessor over the given Analyzer.
func NewBatchProcessor(analyzer *Analyzer, opts ...BatchOption) *BatchProcessor {
	bp := &BatchProcessor{
		analyzer:    analyzer,
		concurrency: defaultBatchConcurrency,
	}

	for _, opt := range opts {
		opt(bp)
	}

	if bp.logger == nil {
		bp.logger = slog.Default()
	}

	return bp
}

// ProcessBatch analyzes all passwords and returns results in input
// order. It stops early if the context is cancelled.
func (b *BatchProcessor) ProcessBatch(ctx context.Context, passwords []string) ([]*model.AnalysisResult, error) {
	results := make([]*model.AnalysisResult, len(passwords))
	err := b.ProcessBatchWithCallback(ctx, passwords, func(result *model.AnalysisResult, index int) {
		results[index] = result
	})
	return results, err
}

// ProcessBatchWithCallback analyzes all passwords concurrently and
// invokes the callback once per completed analysis. Callbacks are
// serialized, so they may write to shared output without locking.
// The index identifies the password's position in the input slice.
func (b *BatchProcessor) ProcessBatchWithCallback(ctx context.Context, passwords []string, callback func(result *model.AnalysisResult, index int)) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(b.concurrency)

	var mu sync.Mutex
	for i, password := range passwords {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			result := b.analyzer.Analyze(password)
			b.logger.Debug("batch analysis complete",
				"index", i,
				"score", result.Score,
				"strength", result.Strength.String(),
			)

			if callback != nil {
				mu.Lock()
				callback(result, i)
				mu.Unlock()
			}
			return nil
		})
	}

	return g.Wait()
}
