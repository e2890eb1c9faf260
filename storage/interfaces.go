package storage

import (
	"context"

	"github.com/poiesic/embedkit/core"
)

// WordStore provides operations for a persistent word bank: a durable
// word-to-embedding mapping that supports nearest-neighbor queries.
// Implementations must be thread-safe and support concurrent access.
type WordStore interface {
	// PutWords stores word entries, replacing any existing entry for the
	// same word.
	PutWords(ctx context.Context, entries ...*core.WordEntry) error

	// GetWord retrieves a single word entry.
	// Returns ErrNotFound if the word is not stored.
	GetWord(ctx context.Context, word string) (*core.WordEntry, error)

	// ListWords returns every stored word in key order.
	ListWords(ctx context.Context) ([]string, error)

	// Nearest returns up to k stored words ordered by ascending Euclidean
	// distance from the given vector.
	Nearest(ctx context.Context, vector []float32, k int) ([]core.Option, error)

	// Close closes the storage backend and releases resources.
	Close() error
}
