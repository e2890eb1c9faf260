package corpus

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/poiesic/embedkit/ai/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPipeline(t *testing.T) {
	t.Run("nil embedder", func(t *testing.T) {
		_, err := NewPipeline(nil)
		assert.Equal(t, ErrEmbedderRequired, err)
	})

	t.Run("invalid batch size", func(t *testing.T) {
		_, err := NewPipeline(mock.NewEmbedder(), WithBatchSize(0))
		assert.Error(t, err)
	})

	t.Run("invalid retry attempts", func(t *testing.T) {
		_, err := NewPipeline(mock.NewEmbedder(), WithRetry(0, time.Millisecond))
		assert.ErrorIs(t, err, ErrInvalidMaxAttempts)
	})
}

func TestPipeline_EmbedAll(t *testing.T) {
	ctx := context.Background()

	t.Run("preserves input order across batches", func(t *testing.T) {
		embedder := mock.NewEmbedder()
		pipeline, err := NewPipeline(embedder, WithBatchSize(3), WithPoolSize(4))
		require.NoError(t, err)
		defer pipeline.Release()

		texts := make([]string, 10)
		for i := range texts {
			texts[i] = fmt.Sprintf("document %d", i)
		}

		embeddings, err := pipeline.EmbedAll(ctx, texts)
		require.NoError(t, err)
		require.Len(t, embeddings, len(texts))

		for i, text := range texts {
			assert.Equal(t, mock.DeterministicVector(text, mock.DefaultDim), embeddings[i], "index %d", i)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		pipeline, err := NewPipeline(mock.NewEmbedder())
		require.NoError(t, err)
		defer pipeline.Release()

		embeddings, err := pipeline.EmbedAll(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, embeddings)
	})

	t.Run("retries transient failures", func(t *testing.T) {
		var calls atomic.Int32
		embedder := mock.NewEmbedder()
		embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
			if calls.Add(1) == 1 {
				return nil, errors.New("transient")
			}
			out := make([][]float32, len(texts))
			for i, text := range texts {
				out[i] = mock.DeterministicVector(text, 8)
			}
			return out, nil
		}

		pipeline, err := NewPipeline(embedder, WithRetry(3, time.Millisecond))
		require.NoError(t, err)
		defer pipeline.Release()

		embeddings, err := pipeline.EmbedAll(ctx, []string{"a", "b"})
		require.NoError(t, err)
		assert.Len(t, embeddings, 2)
		assert.GreaterOrEqual(t, calls.Load(), int32(2))
	})

	t.Run("fails after exhausting retries", func(t *testing.T) {
		embedder := mock.NewEmbedder()
		embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
			return nil, errors.New("provider down")
		}

		pipeline, err := NewPipeline(embedder, WithRetry(2, time.Millisecond))
		require.NoError(t, err)
		defer pipeline.Release()

		_, err = pipeline.EmbedAll(ctx, []string{"a", "b"})
		assert.Error(t, err)
	})

	t.Run("count mismatch detected", func(t *testing.T) {
		embedder := mock.NewEmbedder()
		embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
			return [][]float32{{1}}, nil
		}

		pipeline, err := NewPipeline(embedder, WithRetry(1, time.Millisecond))
		require.NoError(t, err)
		defer pipeline.Release()

		_, err = pipeline.EmbedAll(ctx, []string{"a", "b"})
		assert.ErrorContains(t, err, "mismatch")
	})
}

func TestRetryWithBackoff(t *testing.T) {
	ctx := context.Background()

	t.Run("succeeds first try", func(t *testing.T) {
		calls := 0
		err := RetryWithBackoff(ctx, func() error {
			calls++
			return nil
		}, 3, time.Millisecond)
		require.NoError(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("succeeds after failures", func(t *testing.T) {
		calls := 0
		err := RetryWithBackoff(ctx, func() error {
			calls++
			if calls < 3 {
				return errors.New("nope")
			}
			return nil
		}, 5, time.Millisecond)
		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("returns last error when exhausted", func(t *testing.T) {
		wantErr := errors.New("persistent")
		calls := 0
		err := RetryWithBackoff(ctx, func() error {
			calls++
			return wantErr
		}, 3, time.Millisecond)
		assert.Equal(t, wantErr, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("invalid attempts", func(t *testing.T) {
		err := RetryWithBackoff(ctx, func() error { return nil }, 0, time.Millisecond)
		assert.Equal(t, ErrInvalidMaxAttempts, err)
	})

	t.Run("honors context cancellation", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		err := RetryWithBackoff(cancelled, func() error { return errors.New("nope") }, 3, time.Second)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
