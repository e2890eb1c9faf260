package corpus

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/embedkit/ai"
)

// Pipeline embeds text collections in batches using a worker pool.
// Batches are dispatched concurrently but results always preserve input
// order. Failed batches are retried with exponential backoff before the
// whole operation fails; there are no partial results.
type Pipeline struct {
	embedder       ai.Embedder
	pool           *ants.Pool
	batchSize      int
	maxRetries     int
	retryDelay     time.Duration
	reportInterval int
	progress       io.Writer
	logger         *slog.Logger
}

// PipelineOption configures a Pipeline.
type PipelineOption func(*Pipeline) error

// WithPoolSize sets the worker pool size for concurrent batch embedding.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) PipelineOption {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}

		if p.pool != nil {
			p.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		p.pool = pool
		return nil
	}
}

// WithBatchSize sets the number of texts sent per embedding request.
// Default is 64.
func WithBatchSize(size int) PipelineOption {
	return func(p *Pipeline) error {
		if size < 1 {
			return fmt.Errorf("batch size must be at least 1, got %d", size)
		}
		p.batchSize = size
		return nil
	}
}

// WithRetry sets the retry policy for failed embedding requests.
// Defaults are 3 attempts with a 1 second base delay.
func WithRetry(maxRetries int, baseDelay time.Duration) PipelineOption {
	return func(p *Pipeline) error {
		if maxRetries < 1 {
			return ErrInvalidMaxAttempts
		}
		p.maxRetries = maxRetries
		p.retryDelay = baseDelay
		return nil
	}
}

// WithProgress reports embedding progress to w (typically os.Stderr).
// Default is no progress output.
func WithProgress(w io.Writer, reportInterval int) PipelineOption {
	return func(p *Pipeline) error {
		if reportInterval < 1 {
			reportInterval = 1
		}
		p.progress = w
		p.reportInterval = reportInterval
		return nil
	}
}

// WithPipelineLogger sets a custom logger.
// Default is slog.Default().
func WithPipelineLogger(logger *slog.Logger) PipelineOption {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates a new embedding pipeline.
func NewPipeline(embedder ai.Embedder, opts ...PipelineOption) (*Pipeline, error) {
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		embedder:   embedder,
		pool:       pool,
		batchSize:  64,
		maxRetries: 3,
		retryDelay: time.Second,
		logger:     slog.Default(),
	}

	// Apply options (may override defaults)
	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	return p, nil
}

// EmbedAll generates an embedding for every text, preserving input order.
// Returns an error if any batch fails after all retry attempts; no partial
// result is ever returned.
func (p *Pipeline) EmbedAll(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return [][]float32{}, nil
	}

	p.logger.Debug("embedding corpus", "texts", len(texts), "batchSize", p.batchSize)

	var tracker *ProgressTracker
	if p.progress != nil {
		tracker = NewProgressTracker(p.progress, len(texts), p.reportInterval)
		tracker.Start()
	}

	results := make([][]float32, len(texts))

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	setErr := func(err error) {
		mu.Lock()
		if firstErr == nil {
			firstErr = err
		}
		mu.Unlock()
	}

	for start := 0; start < len(texts); start += p.batchSize {
		end := start + p.batchSize
		if end > len(texts) {
			end = len(texts)
		}
		offset, batch := start, texts[start:end]

		wg.Add(1)
		err := p.pool.Submit(func() {
			defer wg.Done()

			var embeddings [][]float32
			retryErr := RetryWithBackoff(ctx, func() error {
				var embedErr error
				embeddings, embedErr = p.embedder.EmbedTexts(ctx, batch)
				return embedErr
			}, p.maxRetries, p.retryDelay)

			if retryErr != nil {
				p.logger.Error("error embedding batch", "offset", offset, "size", len(batch), "err", retryErr)
				setErr(fmt.Errorf("embedding batch at %d after %d attempts: %w", offset, p.maxRetries, retryErr))
				return
			}
			if len(embeddings) != len(batch) {
				setErr(fmt.Errorf("embedding count mismatch at %d: expected %d, got %d", offset, len(batch), len(embeddings)))
				return
			}

			copy(results[offset:], embeddings)
			if tracker != nil {
				tracker.Increment(len(batch))
			}
		})
		if err != nil {
			wg.Done()
			setErr(err)
			break
		}
	}

	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	if tracker != nil {
		tracker.Finish()
	}
	return results, nil
}

// Release releases the worker pool.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	if p.pool != nil {
		p.pool.Release()
	}
}
