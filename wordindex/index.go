package wordindex

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/poiesic/embedkit/ai"
	"github.com/poiesic/embedkit/core"
)

// Index is an in-memory nearest-neighbor index over word embeddings.
// Once built it is read-only; queries never mutate it.
type Index struct {
	modelName string
	words     []string
	vectors   [][]float32
	embedder  ai.Embedder
	logger    *slog.Logger
}

// Option configures an Index.
type Option func(*Index)

// WithLogger sets the logger for index operations.
func WithLogger(logger *slog.Logger) Option {
	return func(ix *Index) {
		ix.logger = logger
	}
}

// Build embeds every word in the list and assembles an index over the
// results. The word list must be non-empty, free of blanks, and free of
// duplicates. modelName is recorded for snapshot persistence; it is not
// used to construct the embedder, which the caller provides already bound
// to that model.
func Build(ctx context.Context, modelName string, words []string, embedder ai.Embedder, opts ...Option) (*Index, error) {
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}
	if len(words) == 0 {
		return nil, ErrNoWords
	}
	if err := core.ValidateWordList(words); err != nil {
		return nil, err
	}

	ix := &Index{
		modelName: modelName,
		words:     slices.Clone(words),
		embedder:  embedder,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(ix)
	}

	ix.logger.Info("building word index", "model", modelName, "words", len(words))

	vectors, err := embedder.EmbedTexts(ctx, ix.words)
	if err != nil {
		return nil, fmt.Errorf("embedding word list: %w", err)
	}
	if len(vectors) != len(ix.words) {
		return nil, fmt.Errorf("embedder returned %d vectors for %d words", len(vectors), len(ix.words))
	}
	ix.vectors = vectors

	return ix, nil
}

// Rehydrate reconstructs an index from a snapshot without re-embedding.
// The stored vectors are adopted as-is; embedder handles future queries and
// should be bound to the snapshot's model.
func Rehydrate(snapshot *core.IndexSnapshot, embedder ai.Embedder, opts ...Option) (*Index, error) {
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}
	if snapshot == nil || len(snapshot.Words) == 0 {
		return nil, ErrNoWords
	}
	if len(snapshot.Words) != len(snapshot.Vectors) {
		return nil, fmt.Errorf("%w: %d words but %d vectors",
			ErrNotASnapshot, len(snapshot.Words), len(snapshot.Vectors))
	}

	ix := &Index{
		modelName: snapshot.ModelName,
		words:     slices.Clone(snapshot.Words),
		vectors:   snapshot.Vectors,
		embedder:  embedder,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(ix)
	}
	return ix, nil
}

// ModelName returns the embedding model the index was built with.
func (ix *Index) ModelName() string {
	return ix.modelName
}

// Len returns the number of indexed words.
func (ix *Index) Len() int {
	return len(ix.words)
}

// Words returns a copy of the indexed word list.
func (ix *Index) Words() []string {
	return slices.Clone(ix.words)
}

// Query embeds word and returns up to k indexed words ordered by ascending
// Euclidean distance from it. The query word itself is not excluded; if it
// is indexed it typically comes back first at distance zero.
func (ix *Index) Query(ctx context.Context, word string, k int) ([]core.Option, error) {
	if len(ix.words) == 0 {
		return nil, ErrIndexEmpty
	}
	if k < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidLimit, k)
	}

	queryVec, err := ix.embedder.EmbedText(ctx, word)
	if err != nil {
		return nil, fmt.Errorf("embedding query word %q: %w", word, err)
	}

	results := make([]core.Option, len(ix.words))
	for i, w := range ix.words {
		results[i] = core.Option{
			Word:     w,
			Distance: core.EuclideanDistance(queryVec, ix.vectors[i]),
		}
	}

	slices.SortStableFunc(results, func(a, b core.Option) int {
		if a.Distance < b.Distance {
			return -1
		}
		if a.Distance > b.Distance {
			return 1
		}
		return 0
	})

	if len(results) > k {
		results = results[:k]
	}
	return results, nil
}

// Snapshot captures the index as a serializable value. The returned snapshot
// owns copies of the word list and vectors; mutating it does not affect the
// index.
func (ix *Index) Snapshot() *core.IndexSnapshot {
	vectors := make([][]float32, len(ix.vectors))
	for i, v := range ix.vectors {
		vectors[i] = slices.Clone(v)
	}
	return &core.IndexSnapshot{
		ModelName: ix.modelName,
		Words:     slices.Clone(ix.words),
		Vectors:   vectors,
	}
}
