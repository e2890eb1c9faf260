package wordindex

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/poiesic/embedkit/ai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTestIndex(t *testing.T) *Index {
	t.Helper()
	ix, err := Build(context.Background(), "all-minilm",
		[]string{"cat", "dog", "car", "moon"}, planarEmbedder(testPoints))
	require.NoError(t, err)
	return ix
}

func TestSnapshotRoundTrip(t *testing.T) {
	ctx := context.Background()
	ix := buildTestIndex(t)

	var buf bytes.Buffer
	require.NoError(t, ix.WriteSnapshot(&buf))

	snap, err := ReadSnapshot(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, "all-minilm", snap.ModelName)
	assert.Equal(t, ix.Words(), snap.Words)

	restored, err := Rehydrate(snap, planarEmbedder(testPoints))
	require.NoError(t, err)

	// Stored vectors are bit-exact, so a reloaded index returns the same
	// neighbors at the same distances.
	want, err := ix.Query(ctx, "cat", 4)
	require.NoError(t, err)
	got, err := restored.Query(ctx, "cat", 4)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSnapshotFileRoundTrip(t *testing.T) {
	ix := buildTestIndex(t)
	path := filepath.Join(t.TempDir(), "words.ekix")

	require.NoError(t, ix.WriteSnapshotFile(path))

	snap, err := ReadSnapshotFile(path)
	require.NoError(t, err)
	assert.Equal(t, ix.Words(), snap.Words)
}

func TestReadSnapshot_Malformed(t *testing.T) {
	ix := buildTestIndex(t)
	var buf bytes.Buffer
	require.NoError(t, ix.WriteSnapshot(&buf))
	good := buf.Bytes()

	t.Run("empty input", func(t *testing.T) {
		_, err := ReadSnapshot(bytes.NewReader(nil))
		assert.ErrorIs(t, err, ErrNotASnapshot)
	})

	t.Run("wrong magic", func(t *testing.T) {
		_, err := ReadSnapshot(bytes.NewReader([]byte("not a snapshot file at all")))
		assert.ErrorIs(t, err, ErrNotASnapshot)
	})

	t.Run("unsupported version", func(t *testing.T) {
		bad := bytes.Clone(good)
		bad[len(snapshotMagic)] = 99
		_, err := ReadSnapshot(bytes.NewReader(bad))
		assert.ErrorIs(t, err, ErrNotASnapshot)
	})

	t.Run("corrupted payload fails checksum", func(t *testing.T) {
		bad := bytes.Clone(good)
		bad[len(bad)-1] ^= 0xff
		_, err := ReadSnapshot(bytes.NewReader(bad))
		assert.ErrorIs(t, err, ErrSnapshotChecksum)
	})

	t.Run("truncated header", func(t *testing.T) {
		_, err := ReadSnapshot(bytes.NewReader(good[:6]))
		assert.ErrorIs(t, err, ErrNotASnapshot)
	})
}

func TestLoadFile(t *testing.T) {
	ctx := context.Background()
	ix := buildTestIndex(t)
	path := filepath.Join(t.TempDir(), "words.ekix")
	require.NoError(t, ix.WriteSnapshotFile(path))

	t.Run("loads and attaches embedder by model name", func(t *testing.T) {
		var requested string
		factory := func(modelName string) (ai.Embedder, error) {
			requested = modelName
			return planarEmbedder(testPoints), nil
		}

		loaded, err := LoadFile(path, factory)
		require.NoError(t, err)
		assert.Equal(t, "all-minilm", requested)

		results, err := loaded.Query(ctx, "cat", 2)
		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, "cat", results[0].Word)
	})

	t.Run("factory failure propagates", func(t *testing.T) {
		boom := errors.New("unknown model")
		_, err := LoadFile(path, func(modelName string) (ai.Embedder, error) {
			return nil, boom
		})
		assert.ErrorIs(t, err, boom)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "nope.ekix"), func(modelName string) (ai.Embedder, error) {
			return planarEmbedder(testPoints), nil
		})
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}
