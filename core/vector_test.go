package core

import (
	"math"
	"testing"
)

func almostEqual(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-5
}

func TestDotProduct(t *testing.T) {
	tests := []struct {
		name string
		a    []float32
		b    []float32
		want float32
	}{
		{
			name: "orthogonal vectors",
			a:    []float32{1, 0},
			b:    []float32{0, 1},
			want: 0,
		},
		{
			name: "parallel vectors",
			a:    []float32{1, 2, 3},
			b:    []float32{2, 4, 6},
			want: 28,
		},
		{
			name: "mismatched lengths use shorter",
			a:    []float32{1, 1, 1},
			b:    []float32{2, 2},
			want: 4,
		},
		{
			name: "empty vectors",
			a:    nil,
			b:    nil,
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DotProduct(tt.a, tt.b)
			if !almostEqual(got, tt.want) {
				t.Errorf("DotProduct() = %f, want %f", got, tt.want)
			}
		})
	}
}

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a    []float32
		b    []float32
		want float32
	}{
		{
			name: "identical direction",
			a:    []float32{1, 2, 3},
			b:    []float32{2, 4, 6},
			want: 1,
		},
		{
			name: "orthogonal",
			a:    []float32{1, 0},
			b:    []float32{0, 1},
			want: 0,
		},
		{
			name: "opposite direction",
			a:    []float32{1, 0},
			b:    []float32{-1, 0},
			want: -1,
		},
		{
			name: "zero vector yields zero",
			a:    []float32{0, 0},
			b:    []float32{1, 1},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CosineSimilarity(tt.a, tt.b)
			if !almostEqual(got, tt.want) {
				t.Errorf("CosineSimilarity() = %f, want %f", got, tt.want)
			}
		})
	}
}

func TestEuclideanDistance(t *testing.T) {
	tests := []struct {
		name string
		a    []float32
		b    []float32
		want float32
	}{
		{
			name: "identical vectors",
			a:    []float32{1, 2, 3},
			b:    []float32{1, 2, 3},
			want: 0,
		},
		{
			name: "unit apart",
			a:    []float32{0, 0},
			b:    []float32{0, 1},
			want: 1,
		},
		{
			name: "pythagorean triple",
			a:    []float32{0, 0},
			b:    []float32{3, 4},
			want: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EuclideanDistance(tt.a, tt.b)
			if !almostEqual(got, tt.want) {
				t.Errorf("EuclideanDistance() = %f, want %f", got, tt.want)
			}
		})
	}
}

func TestMeanVector(t *testing.T) {
	t.Run("averages elementwise", func(t *testing.T) {
		got := MeanVector([][]float32{
			{1, 2, 3},
			{3, 4, 5},
		})
		want := []float32{2, 3, 4}
		if len(got) != len(want) {
			t.Fatalf("MeanVector() length = %d, want %d", len(got), len(want))
		}
		for i := range want {
			if !almostEqual(got[i], want[i]) {
				t.Errorf("MeanVector()[%d] = %f, want %f", i, got[i], want[i])
			}
		}
	})

	t.Run("single vector is its own mean", func(t *testing.T) {
		got := MeanVector([][]float32{{7, 8}})
		if !almostEqual(got[0], 7) || !almostEqual(got[1], 8) {
			t.Errorf("MeanVector() = %v, want [7 8]", got)
		}
	})

	t.Run("empty input returns nil", func(t *testing.T) {
		if got := MeanVector(nil); got != nil {
			t.Errorf("MeanVector(nil) = %v, want nil", got)
		}
	})
}

func TestNormalizeVector(t *testing.T) {
	t.Run("produces unit length", func(t *testing.T) {
		got := NormalizeVector([]float32{3, 4})
		var mag float32
		for _, v := range got {
			mag += v * v
		}
		if !almostEqual(mag, 1) {
			t.Errorf("normalized magnitude = %f, want 1", mag)
		}
	})

	t.Run("zero vector stays zero", func(t *testing.T) {
		got := NormalizeVector([]float32{0, 0, 0})
		for i, v := range got {
			if v != 0 {
				t.Errorf("NormalizeVector()[%d] = %f, want 0", i, v)
			}
		}
	})

	t.Run("does not mutate input", func(t *testing.T) {
		in := []float32{3, 4}
		NormalizeVector(in)
		if in[0] != 3 || in[1] != 4 {
			t.Errorf("input mutated: %v", in)
		}
	})
}
