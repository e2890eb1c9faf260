package badger

import (
	"context"
	"testing"

	"github.com/poiesic/embedkit/core"
	"github.com/poiesic/embedkit/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) storage.WordStore {
	t.Helper()
	store, err := NewMemoryWordStore()
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestWordStore_PutAndGet(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	entry := &core.WordEntry{Word: "cat", Vector: []float32{0.5, -0.25, 1.0}}
	require.NoError(t, store.PutWords(ctx, entry))

	got, err := store.GetWord(ctx, "cat")
	require.NoError(t, err)
	assert.Equal(t, "cat", got.Word)
	assert.Equal(t, entry.Vector, got.Vector)

	t.Run("missing word", func(t *testing.T) {
		_, err := store.GetWord(ctx, "unicorn")
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("put replaces existing entry", func(t *testing.T) {
		require.NoError(t, store.PutWords(ctx, &core.WordEntry{Word: "cat", Vector: []float32{1, 1, 1}}))
		got, err := store.GetWord(ctx, "cat")
		require.NoError(t, err)
		assert.Equal(t, []float32{1, 1, 1}, got.Vector)
	})
}

func TestWordStore_ListWords(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	t.Run("empty store", func(t *testing.T) {
		words, err := store.ListWords(ctx)
		require.NoError(t, err)
		assert.Empty(t, words)
	})

	require.NoError(t, store.PutWords(ctx,
		&core.WordEntry{Word: "dog", Vector: []float32{0, 1}},
		&core.WordEntry{Word: "cat", Vector: []float32{1, 0}},
		&core.WordEntry{Word: "car", Vector: []float32{1, 1}},
	))

	words, err := store.ListWords(ctx)
	require.NoError(t, err)
	// BadgerDB iterates in key order.
	assert.Equal(t, []string{"car", "cat", "dog"}, words)
}

func TestWordStore_Nearest(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	require.NoError(t, store.PutWords(ctx,
		&core.WordEntry{Word: "origin", Vector: []float32{0, 0}},
		&core.WordEntry{Word: "near", Vector: []float32{1, 0}},
		&core.WordEntry{Word: "far", Vector: []float32{10, 0}},
	))

	t.Run("ascending distance order", func(t *testing.T) {
		results, err := store.Nearest(ctx, []float32{0, 0}, 3)
		require.NoError(t, err)
		require.Len(t, results, 3)
		assert.Equal(t, "origin", results[0].Word)
		assert.Equal(t, "near", results[1].Word)
		assert.Equal(t, "far", results[2].Word)
		for i := 1; i < len(results); i++ {
			assert.LessOrEqual(t, results[i-1].Distance, results[i].Distance)
		}
	})

	t.Run("k caps the result", func(t *testing.T) {
		results, err := store.Nearest(ctx, []float32{0, 0}, 2)
		require.NoError(t, err)
		assert.Len(t, results, 2)
	})

	t.Run("k larger than store", func(t *testing.T) {
		results, err := store.Nearest(ctx, []float32{0, 0}, 50)
		require.NoError(t, err)
		assert.Len(t, results, 3)
	})

	t.Run("invalid k", func(t *testing.T) {
		_, err := store.Nearest(ctx, []float32{0, 0}, 0)
		assert.ErrorIs(t, err, storage.ErrInvalidQuery)
	})
}

func TestWordStore_Closed(t *testing.T) {
	ctx := context.Background()
	store, err := NewMemoryWordStore()
	require.NoError(t, err)
	require.NoError(t, store.Close())

	_, err = store.GetWord(ctx, "cat")
	assert.ErrorIs(t, err, storage.ErrStorageClosed)

	err = store.PutWords(ctx, &core.WordEntry{Word: "cat", Vector: []float32{1}})
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
}
