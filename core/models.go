package core

import (
	"encoding/binary"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated using content-based hashing.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Topic is a user-defined classification target. It starts as a name plus a
// keyword list and is enriched with a support set and a prototype vector by
// prototype building. After building it is treated as read-only.
type Topic struct {
	Name     string
	Keywords []string

	// SupportDocs holds the corpus indices of the documents whose embeddings
	// were averaged into Prototype. Populated by prototype building.
	SupportDocs []int

	// Prototype is the mean embedding of the support documents.
	// Non-nil exactly when SupportDocs has been computed.
	Prototype []float32
}

// HasPrototype reports whether the topic's prototype has been computed.
func (t *Topic) HasPrototype() bool {
	return len(t.Prototype) > 0 && len(t.SupportDocs) > 0
}

// Option is a navigation candidate offered to the player: a word and its
// distance from the current position in embedding space.
type Option struct {
	Word     string
	Distance float32
}

// WordEntry is a persisted word bank row pairing a word with its embedding.
type WordEntry struct {
	Word   string
	Vector []float32
}

// IndexSnapshot is the serializable form of a similarity index. It carries
// the embedding model name so a fresh provider can be attached on load; the
// provider itself is never serialized.
type IndexSnapshot struct {
	ModelName string
	Words     []string
	Vectors   [][]float32
}
