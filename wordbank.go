// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package embedkit

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/poiesic/embedkit/ai"
	"github.com/poiesic/embedkit/core"
	"github.com/poiesic/embedkit/game"
	"github.com/poiesic/embedkit/storage"
	"github.com/poiesic/embedkit/storage/badger"
	"github.com/poiesic/embedkit/wordindex"
)

// WordBank is a persistent word embedding store. Words are embedded once
// when added and the vectors live in the database, so reopening a bank
// never re-embeds. It satisfies game.WordSource, letting game sessions run
// directly over a bank.
type WordBank struct {
	store    storage.WordStore
	embedder ai.Embedder
	words    []string
	logger   *slog.Logger
}

var _ game.WordSource = (*WordBank)(nil)

// WordBankOption configures a WordBank.
type WordBankOption func(*WordBank)

// WithWordBankLogger sets the logger for word bank operations.
func WithWordBankLogger(logger *slog.Logger) WordBankOption {
	return func(b *WordBank) {
		b.logger = logger
	}
}

// OpenWordBank opens (or creates) a word bank database at filePath.
// embedder handles both new words and query words and must match the model
// the stored vectors were produced with.
func OpenWordBank(filePath string, embedder ai.Embedder, opts ...WordBankOption) (*WordBank, error) {
	if embedder == nil {
		return nil, wordindex.ErrEmbedderRequired
	}

	store, err := badger.OpenWordStore(filePath)
	if err != nil {
		return nil, err
	}
	return newWordBank(store, embedder, opts...)
}

// NewWordBank wraps an existing word store. Used by tests to run a bank on
// an in-memory store.
func NewWordBank(store storage.WordStore, embedder ai.Embedder, opts ...WordBankOption) (*WordBank, error) {
	if embedder == nil {
		return nil, wordindex.ErrEmbedderRequired
	}
	if store == nil {
		return nil, fmt.Errorf("word store required")
	}
	return newWordBank(store, embedder, opts...)
}

func newWordBank(store storage.WordStore, embedder ai.Embedder, opts ...WordBankOption) (*WordBank, error) {
	bank := &WordBank{
		store:    store,
		embedder: embedder,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(bank)
	}

	words, err := store.ListWords(context.Background())
	if err != nil {
		store.Close()
		return nil, err
	}
	bank.words = words

	bank.logger.Debug("word bank opened", "words", len(words))
	return bank, nil
}

// Put embeds the given words and stores them, replacing existing entries.
// The word list must be free of blanks and duplicates.
func (b *WordBank) Put(ctx context.Context, words ...string) error {
	if len(words) == 0 {
		return nil
	}
	if err := core.ValidateWordList(words); err != nil {
		return err
	}

	vectors, err := b.embedder.EmbedTexts(ctx, words)
	if err != nil {
		return fmt.Errorf("embedding words: %w", err)
	}
	if len(vectors) != len(words) {
		return fmt.Errorf("embedder returned %d vectors for %d words", len(vectors), len(words))
	}

	entries := make([]*core.WordEntry, len(words))
	for i, word := range words {
		entries[i] = &core.WordEntry{Word: word, Vector: vectors[i]}
	}
	if err := b.store.PutWords(ctx, entries...); err != nil {
		return err
	}

	// Refresh the cached word list from storage so it stays in key order.
	fresh, err := b.store.ListWords(ctx)
	if err != nil {
		return err
	}
	b.words = fresh

	b.logger.Info("words stored", "added", len(words), "total", len(fresh))
	return nil
}

// Len returns the number of stored words.
func (b *WordBank) Len() int {
	return len(b.words)
}

// Words returns the stored words in key order.
func (b *WordBank) Words() []string {
	out := make([]string, len(b.words))
	copy(out, b.words)
	return out
}

// Query embeds word and returns up to k stored words ordered by ascending
// Euclidean distance from it.
func (b *WordBank) Query(ctx context.Context, word string, k int) ([]core.Option, error) {
	if len(b.words) == 0 {
		return nil, wordindex.ErrIndexEmpty
	}

	vector, err := b.embedder.EmbedText(ctx, word)
	if err != nil {
		return nil, fmt.Errorf("embedding query word %q: %w", word, err)
	}
	return b.store.Nearest(ctx, vector, k)
}

// Close closes the underlying store.
func (b *WordBank) Close() error {
	return b.store.Close()
}
