package badger

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/embedkit/core"
	"github.com/poiesic/embedkit/storage"
)

// WordStore implements storage.WordStore for BadgerDB.
type WordStore struct {
	backend *Backend
}

var _ storage.WordStore = (*WordStore)(nil)

// NewWordStore creates a word store on the given backend.
//
// Returns storage.WordStore interface to enforce abstraction.
func NewWordStore(backend *Backend) (storage.WordStore, error) {
	if backend == nil {
		return nil, fmt.Errorf("backend required")
	}
	return &WordStore{backend: backend}, nil
}

// OpenWordStore opens a word store backed by a BadgerDB database at path.
func OpenWordStore(path string) (storage.WordStore, error) {
	backend, err := OpenBackend(path, false)
	if err != nil {
		return nil, err
	}
	return NewWordStore(backend)
}

// PutWords stores word entries, replacing any existing entry for the same word.
func (s *WordStore) PutWords(ctx context.Context, entries ...*core.WordEntry) error {
	if s.backend.IsClosed() {
		return storage.ErrStorageClosed
	}

	return s.backend.WithTx(func(tx *badger.Txn) error {
		for _, entry := range entries {
			key := makeWordKey(entry.Word)
			value := storage.MarshalWordEntry(entry)
			if err := tx.Set(key, value); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// GetWord retrieves a single word entry.
func (s *WordStore) GetWord(ctx context.Context, word string) (*core.WordEntry, error) {
	if s.backend.IsClosed() {
		return nil, storage.ErrStorageClosed
	}

	var entry *core.WordEntry
	err := s.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeWordKey(word))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return fmt.Errorf("%w: %q", storage.ErrNotFound, word)
			}
			return err
		}
		return item.Value(func(val []byte) error {
			var err error
			entry, err = storage.UnmarshalWordEntry(val)
			return err
		})
	}, false)
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// ListWords returns every stored word in key order.
func (s *WordStore) ListWords(ctx context.Context) ([]string, error) {
	if s.backend.IsClosed() {
		return nil, storage.ErrStorageClosed
	}

	var words []string
	err := s.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(wordEntryPrefix + ":")
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			words = append(words, wordFromKey(iter.Item().Key()))
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}
	return words, nil
}

// Nearest returns up to k stored words ordered by ascending Euclidean
// distance from the given vector. The scan is linear over all entries;
// word banks are small enough that an approximate index isn't warranted.
func (s *WordStore) Nearest(ctx context.Context, vector []float32, k int) ([]core.Option, error) {
	if s.backend.IsClosed() {
		return nil, storage.ErrStorageClosed
	}
	if k < 1 {
		return nil, fmt.Errorf("%w: k must be positive, got %d", storage.ErrInvalidQuery, k)
	}

	var results []core.Option
	err := s.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(wordEntryPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var entry *core.WordEntry
			err := iter.Item().Value(func(val []byte) error {
				var err error
				entry, err = storage.UnmarshalWordEntry(val)
				return err
			})
			if err != nil {
				return err
			}
			if entry == nil || len(entry.Vector) == 0 {
				continue
			}

			results = append(results, core.Option{
				Word:     entry.Word,
				Distance: core.EuclideanDistance(vector, entry.Vector),
			})
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
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

// Close closes the underlying backend.
func (s *WordStore) Close() error {
	return s.backend.Close()
}
