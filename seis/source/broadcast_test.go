package source

import (
	"errors"
	"testing"
)

func TestBroadcastFloats(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		n        int
		expected []float64
		wantErr  bool
	}{
		{"scalar to three", []float64{5}, 3, []float64{5, 5, 5}, false},
		{"exact length passes through", []float64{1, 2, 3}, 3, []float64{1, 2, 3}, false},
		{"single record scalar", []float64{7}, 1, []float64{7}, false},
		{"wrong cardinality", []float64{1, 2}, 3, nil, true},
		{"empty", nil, 3, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BroadcastFloats(tt.values, tt.n)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidArgument) {
					t.Errorf("expected ErrInvalidArgument, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != len(tt.expected) {
				t.Fatalf("length = %d, expected %d", len(got), len(tt.expected))
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("got[%d] = %v, expected %v", i, got[i], tt.expected[i])
				}
			}
		})
	}
}

func TestBroadcastTypes(t *testing.T) {
	got, err := BroadcastTypes([]Type{TypeGaussian}, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, typ := range got {
		if typ != TypeGaussian {
			t.Errorf("got[%d] = %v, expected gaussian", i, typ)
		}
	}

	if _, err := BroadcastTypes([]Type{TypeTriangle, TypeGaussian}, 3); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}

// Broadcasting a scalar must yield the same kernels as repeating it.
func TestBroadcastEquivalence(t *testing.T) {
	deltas := []float64{1, 1, 1}

	scalarHW, err := BroadcastFloats([]float64{10}, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	scalarTyp, err := BroadcastTypes([]Type{TypeTriangle}, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	fromScalar, _, err := GenerateBatch(deltas, scalarHW, scalarTyp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fromArrays, _, err := GenerateBatch(deltas,
		[]float64{10, 10, 10},
		[]Type{TypeTriangle, TypeTriangle, TypeTriangle})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := range fromScalar {
		if len(fromScalar[i]) != len(fromArrays[i]) {
			t.Fatalf("kernel %d length mismatch", i)
		}
		for j := range fromScalar[i] {
			if fromScalar[i][j] != fromArrays[i][j] {
				t.Errorf("kernel %d sample %d differs: %v vs %v",
					i, j, fromScalar[i][j], fromArrays[i][j])
			}
		}
	}
}
