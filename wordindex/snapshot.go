package wordindex

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-crypt/x/blake2b"
	"github.com/poiesic/embedkit/ai"
	"github.com/poiesic/embedkit/core"
	"github.com/poiesic/embedkit/storage"
)

// Snapshot file layout: magic, format version, a 64-bit BLAKE2b digest of
// the payload, then the serialized IndexSnapshot.
var snapshotMagic = []byte("EKIX")

const snapshotVersion byte = 1

func payloadChecksum(payload []byte) uint64 {
	h, _ := blake2b.New(8, nil)
	h.Write(payload)
	return binary.LittleEndian.Uint64(h.Sum(nil))
}

// WriteSnapshot serializes the index to w in the snapshot file format.
func (ix *Index) WriteSnapshot(w io.Writer) error {
	payload := storage.MarshalIndexSnapshot(ix.Snapshot())

	header := make([]byte, 0, len(snapshotMagic)+1+8)
	header = append(header, snapshotMagic...)
	header = append(header, snapshotVersion)
	header = binary.LittleEndian.AppendUint64(header, payloadChecksum(payload))

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("writing snapshot header: %w", err)
	}
	if _, err := w.Write(payload); err != nil {
		return fmt.Errorf("writing snapshot payload: %w", err)
	}
	return nil
}

// WriteSnapshotFile writes the index snapshot to path, creating or
// truncating the file.
func (ix *Index) WriteSnapshotFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating snapshot file: %w", err)
	}
	defer f.Close()

	if err := ix.WriteSnapshot(f); err != nil {
		return err
	}
	return f.Close()
}

// ReadSnapshot parses a snapshot from r and verifies its integrity.
func ReadSnapshot(r io.Reader) (*core.IndexSnapshot, error) {
	header := make([]byte, len(snapshotMagic)+1+8)
	if _, err := io.ReadFull(r, header); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, ErrNotASnapshot
		}
		return nil, fmt.Errorf("reading snapshot header: %w", err)
	}
	if !bytes.Equal(header[:len(snapshotMagic)], snapshotMagic) {
		return nil, ErrNotASnapshot
	}
	if version := header[len(snapshotMagic)]; version != snapshotVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrNotASnapshot, version)
	}
	want := binary.LittleEndian.Uint64(header[len(snapshotMagic)+1:])

	payload, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot payload: %w", err)
	}
	if got := payloadChecksum(payload); got != want {
		return nil, ErrSnapshotChecksum
	}

	snapshot, err := storage.UnmarshalIndexSnapshot(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotASnapshot, err)
	}
	if len(snapshot.Words) != len(snapshot.Vectors) {
		return nil, fmt.Errorf("%w: %d words but %d vectors",
			ErrNotASnapshot, len(snapshot.Words), len(snapshot.Vectors))
	}
	return snapshot, nil
}

// ReadSnapshotFile reads and verifies a snapshot file.
func ReadSnapshotFile(path string) (*core.IndexSnapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening snapshot file: %w", err)
	}
	defer f.Close()

	return ReadSnapshot(f)
}

// LoadFile reads a snapshot file and rehydrates it into a queryable index,
// attaching an embedder obtained from factory for the snapshot's model.
func LoadFile(path string, factory ai.EmbedderFactory, opts ...Option) (*Index, error) {
	snapshot, err := ReadSnapshotFile(path)
	if err != nil {
		return nil, err
	}

	embedder, err := factory(snapshot.ModelName)
	if err != nil {
		return nil, fmt.Errorf("creating embedder for model %q: %w", snapshot.ModelName, err)
	}
	return Rehydrate(snapshot, embedder, opts...)
}
