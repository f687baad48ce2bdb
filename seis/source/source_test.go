package source

import (
	"errors"
	"math"
	"testing"
)

func kernelArea(kernel []float64, delta float64) float64 {
	sum := 0.0
	for _, v := range kernel {
		sum += v
	}
	return sum * delta
}

func TestGenerateUnitArea(t *testing.T) {
	tests := []struct {
		name      string
		delta     float64
		halfwidth float64
		typ       Type
	}{
		{"triangle grid-aligned", 1.0, 10, TypeTriangle},
		{"triangle fine sampling", 0.01, 0.5, TypeTriangle},
		{"triangle off-grid halfwidth", 0.3, 1.0, TypeTriangle},
		{"gaussian grid-aligned", 1.0, 10, TypeGaussian},
		{"gaussian fine sampling", 0.005, 0.2, TypeGaussian},
		{"gaussian off-grid halfwidth", 0.7, 2.5, TypeGaussian},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kernel, timeaxis, err := Generate(tt.delta, tt.halfwidth, tt.typ)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if len(kernel) != len(timeaxis) {
				t.Fatalf("kernel length %d != time axis length %d", len(kernel), len(timeaxis))
			}

			if area := kernelArea(kernel, tt.delta); math.Abs(area-1) > 1e-6 {
				t.Errorf("kernel area = %v, expected 1 within 1e-6", area)
			}
		})
	}
}

func TestGenerateTriangleShape(t *testing.T) {
	kernel, timeaxis, err := Generate(1.0, 10, TypeTriangle)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(kernel) != 21 {
		t.Fatalf("kernel length = %d, expected 21", len(kernel))
	}
	if math.Abs(timeaxis[0]+10) > 1e-12 {
		t.Errorf("timeaxis[0] = %v, expected -10", timeaxis[0])
	}
	if math.Abs(timeaxis[20]-10) > 1e-12 {
		t.Errorf("timeaxis[20] = %v, expected 10", timeaxis[20])
	}

	// Peak of a unit-area triangle of halfwidth 10 is 1/10, at center.
	center := len(kernel) / 2
	if math.Abs(kernel[center]-0.1) > 1e-9 {
		t.Errorf("kernel peak = %v, expected 0.1", kernel[center])
	}

	// Symmetric, nonincreasing away from center, zero at the support edges.
	for i := 0; i <= center; i++ {
		if math.Abs(kernel[i]-kernel[len(kernel)-1-i]) > 1e-12 {
			t.Errorf("kernel not symmetric at %d: %v vs %v",
				i, kernel[i], kernel[len(kernel)-1-i])
		}
	}
	if kernel[0] != 0 || kernel[20] != 0 {
		t.Errorf("triangle edges = %v, %v, expected 0", kernel[0], kernel[20])
	}
}

func TestGenerateGaussianShape(t *testing.T) {
	kernel, timeaxis, err := Generate(0.5, 4, TypeGaussian)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Support spans ±1.5×halfwidth = ±6 at delta 0.5: 25 samples.
	if len(kernel) != 25 {
		t.Fatalf("kernel length = %d, expected 25", len(kernel))
	}
	if math.Abs(timeaxis[0]+6) > 1e-12 {
		t.Errorf("timeaxis[0] = %v, expected -6", timeaxis[0])
	}

	center := len(kernel) / 2
	for i, v := range kernel {
		if v <= 0 {
			t.Fatalf("gaussian sample %d = %v, expected > 0", i, v)
		}
		if i != center && v >= kernel[center] {
			t.Errorf("gaussian sample %d = %v not below peak %v", i, v, kernel[center])
		}
	}
}

func TestGenerateErrors(t *testing.T) {
	if _, _, err := Generate(0, 10, TypeTriangle); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument for zero delta, got %v", err)
	}
	if _, _, err := Generate(1, -1, TypeTriangle); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument for negative halfwidth, got %v", err)
	}
	if _, _, err := Generate(1, 10, Type(99)); !errors.Is(err, ErrUnsupportedKernelType) {
		t.Errorf("expected ErrUnsupportedKernelType, got %v", err)
	}
}

func TestParseType(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Type
		wantErr  bool
	}{
		{"triangle", "triangle", TypeTriangle, false},
		{"gaussian", "gaussian", TypeGaussian, false},
		{"gauss alias", "gauss", TypeGaussian, false},
		{"case insensitive", "Triangle", TypeTriangle, false},
		{"unknown", "boxcar", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseType(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrUnsupportedKernelType) {
					t.Errorf("expected ErrUnsupportedKernelType, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("ParseType(%q) = %v, expected %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestGenerateBatch(t *testing.T) {
	deltas := []float64{1, 0.5}
	halfwidths := []float64{10, 4}
	types := []Type{TypeTriangle, TypeGaussian}

	kernels, timeaxes, err := GenerateBatch(deltas, halfwidths, types)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(kernels) != 2 || len(timeaxes) != 2 {
		t.Fatalf("expected 2 kernels and time axes, got %d and %d", len(kernels), len(timeaxes))
	}
	if len(kernels[0]) != 21 {
		t.Errorf("kernel 0 length = %d, expected 21", len(kernels[0]))
	}
	if len(kernels[1]) != 25 {
		t.Errorf("kernel 1 length = %d, expected 25", len(kernels[1]))
	}
}

func TestGenerateBatchCardinality(t *testing.T) {
	_, _, err := GenerateBatch([]float64{1, 1}, []float64{10}, []Type{TypeTriangle, TypeTriangle})
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument for mismatched lengths, got %v", err)
	}
}

func TestGenerateBatchUnsupportedType(t *testing.T) {
	_, _, err := GenerateBatch(
		[]float64{1, 1, 1},
		[]float64{10, 10, 10},
		[]Type{TypeTriangle, Type(99), TypeTriangle},
	)
	if !errors.Is(err, ErrUnsupportedKernelType) {
		t.Errorf("expected ErrUnsupportedKernelType, got %v", err)
	}
}
