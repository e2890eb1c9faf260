package core

import (
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
)

// Field serializers. Embedding components use the raw fixed-width float32
// format so vectors survive a persist/reload cycle bit-for-bit.
var (
	vectorMUS  = ord.NewSliceSer[float32](raw.Float32)
	vectorsMUS = ord.NewSliceSer[[]float32](vectorMUS)
	wordsMUS   = ord.NewSliceSer[string](ord.String)
)

// WordEntryMUS serializes WordEntry values in the MUS format.
var WordEntryMUS = wordEntryMUS{}

type wordEntryMUS struct{}

func (s wordEntryMUS) Marshal(v WordEntry, bs []byte) (n int) {
	n = ord.String.Marshal(v.Word, bs)
	n += vectorMUS.Marshal(v.Vector, bs[n:])
	return
}

func (s wordEntryMUS) Unmarshal(bs []byte) (v WordEntry, n int, err error) {
	v.Word, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Vector, n1, err = vectorMUS.Unmarshal(bs[n:])
	n += n1
	return
}

func (s wordEntryMUS) Size(v WordEntry) (size int) {
	size = ord.String.Size(v.Word)
	size += vectorMUS.Size(v.Vector)
	return
}

func (s wordEntryMUS) Skip(bs []byte) (n int, err error) {
	n, err = ord.String.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = vectorMUS.Skip(bs[n:])
	n += n1
	return
}

// IndexSnapshotMUS serializes IndexSnapshot values in the MUS format.
var IndexSnapshotMUS = indexSnapshotMUS{}

type indexSnapshotMUS struct{}

func (s indexSnapshotMUS) Marshal(v IndexSnapshot, bs []byte) (n int) {
	n = ord.String.Marshal(v.ModelName, bs)
	n += wordsMUS.Marshal(v.Words, bs[n:])
	n += vectorsMUS.Marshal(v.Vectors, bs[n:])
	return
}

func (s indexSnapshotMUS) Unmarshal(bs []byte) (v IndexSnapshot, n int, err error) {
	v.ModelName, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Words, n1, err = wordsMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Vectors, n1, err = vectorsMUS.Unmarshal(bs[n:])
	n += n1
	return
}

func (s indexSnapshotMUS) Size(v IndexSnapshot) (size int) {
	size = ord.String.Size(v.ModelName)
	size += wordsMUS.Size(v.Words)
	size += vectorsMUS.Size(v.Vectors)
	return
}

func (s indexSnapshotMUS) Skip(bs []byte) (n int, err error) {
	n, err = ord.String.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = wordsMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = vectorsMUS.Skip(bs[n:])
	n += n1
	return
}
