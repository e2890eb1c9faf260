package core

import (
	"testing"
)

func TestWordEntryMUS_RoundTrip(t *testing.T) {
	entry := WordEntry{
		Word:   "lantern",
		Vector: []float32{0.25, -1.5, 3.125},
	}

	buf := make([]byte, WordEntryMUS.Size(entry))
	n := WordEntryMUS.Marshal(entry, buf)
	if n != len(buf) {
		t.Fatalf("Marshal wrote %d bytes, Size predicted %d", n, len(buf))
	}

	got, n, err := WordEntryMUS.Unmarshal(buf)
	if err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if n != len(buf) {
		t.Errorf("Unmarshal consumed %d bytes, want %d", n, len(buf))
	}
	if got.Word != entry.Word {
		t.Errorf("Word = %q, want %q", got.Word, entry.Word)
	}
	if len(got.Vector) != len(entry.Vector) {
		t.Fatalf("Vector length = %d, want %d", len(got.Vector), len(entry.Vector))
	}
	for i := range entry.Vector {
		// raw float32 encoding must be bit-exact
		if got.Vector[i] != entry.Vector[i] {
			t.Errorf("Vector[%d] = %f, want %f", i, got.Vector[i], entry.Vector[i])
		}
	}
}

func TestIndexSnapshotMUS_RoundTrip(t *testing.T) {
	snapshot := IndexSnapshot{
		ModelName: "all-MiniLM-L6-v2",
		Words:     []string{"cat", "dog", "car"},
		Vectors: [][]float32{
			{0.1, 0.2},
			{0.3, 0.4},
			{0.5, 0.6},
		},
	}

	buf := make([]byte, IndexSnapshotMUS.Size(snapshot))
	n := IndexSnapshotMUS.Marshal(snapshot, buf)
	if n != len(buf) {
		t.Fatalf("Marshal wrote %d bytes, Size predicted %d", n, len(buf))
	}

	got, _, err := IndexSnapshotMUS.Unmarshal(buf)
	if err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if got.ModelName != snapshot.ModelName {
		t.Errorf("ModelName = %q, want %q", got.ModelName, snapshot.ModelName)
	}
	if len(got.Words) != len(snapshot.Words) {
		t.Fatalf("Words length = %d, want %d", len(got.Words), len(snapshot.Words))
	}
	for i, word := range snapshot.Words {
		if got.Words[i] != word {
			t.Errorf("Words[%d] = %q, want %q", i, got.Words[i], word)
		}
	}
	for i, vec := range snapshot.Vectors {
		for j, v := range vec {
			if got.Vectors[i][j] != v {
				t.Errorf("Vectors[%d][%d] = %f, want %f", i, j, got.Vectors[i][j], v)
			}
		}
	}
}

func TestIndexSnapshotMUS_UnmarshalTruncated(t *testing.T) {
	snapshot := IndexSnapshot{
		ModelName: "model",
		Words:     []string{"cat"},
		Vectors:   [][]float32{{0.1}},
	}
	buf := make([]byte, IndexSnapshotMUS.Size(snapshot))
	IndexSnapshotMUS.Marshal(snapshot, buf)

	_, _, err := IndexSnapshotMUS.Unmarshal(buf[:len(buf)/2])
	if err == nil {
		t.Error("Unmarshal() expected error for truncated data")
	}
}

func TestIDFromContent(t *testing.T) {
	id1 := IDFromContent("lantern")
	id2 := IDFromContent("lantern")
	if id1 != id2 {
		t.Errorf("IDFromContent() produced different IDs for same content: %d vs %d", id1, id2)
	}

	if IDFromContent("cat") == IDFromContent("dog") {
		t.Error("IDFromContent() produced same ID for different content")
	}
}
