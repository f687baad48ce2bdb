// Package source generates discretized source time-functions.
//
// A source time-function is a short, unit-area kernel representing finite
// source duration. Convolving it onto a synthetic seismogram smears the
// impulsive response over the source's duration. Kernels are generated per
// record at the record's own sampling interval, centered on zero time, and
// normalized so that the Riemann sum (sum of samples times delta) is 1.
package source

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/cwbudde/algo-vecmath"
)

// Errors returned by kernel generation.
var (
	ErrInvalidArgument       = errors.New("source: invalid argument")
	ErrUnsupportedKernelType = errors.New("source: unsupported kernel type")
)

// Type identifies a source time-function shape.
type Type int

const (
	// TypeTriangle is an isosceles triangle spanning ±halfwidth.
	TypeTriangle Type = iota

	// TypeGaussian is a Gaussian bell truncated at ±1.5×halfwidth.
	TypeGaussian
)

// String returns the canonical lowercase name of the type.
func (t Type) String() string {
	switch t {
	case TypeTriangle:
		return "triangle"
	case TypeGaussian:
		return "gaussian"
	default:
		return fmt.Sprintf("type(%d)", int(t))
	}
}

// ParseType resolves a kernel type name. Matching is case-insensitive.
func ParseType(name string) (Type, error) {
	switch strings.ToLower(name) {
	case "triangle":
		return TypeTriangle, nil
	case "gaussian", "gauss":
		return TypeGaussian, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedKernelType, name)
	}
}

// halfSupport returns the one-sided sample count of the kernel for the
// given shape: the kernel has 2n+1 samples with sample n at time zero.
func halfSupport(t Type, delta, halfwidth float64) (int, error) {
	var span float64
	switch t {
	case TypeTriangle:
		span = halfwidth
	case TypeGaussian:
		span = 1.5 * halfwidth
	default:
		return 0, fmt.Errorf("%w: %v", ErrUnsupportedKernelType, t)
	}

	n := int(math.Round(span / delta))
	if n < 1 {
		n = 1
	}
	return n, nil
}

// Generate produces one discretized source kernel and its time axis.
//
// The kernel is sampled at spacing delta and centered on zero: sample i
// sits at time (i-n)*delta, so timeaxis[0] is the negative start offset of
// the acausal kernel. The returned kernel is normalized to unit area.
func Generate(delta, halfwidth float64, typ Type) (kernel, timeaxis []float64, err error) {
	if delta <= 0 {
		return nil, nil, fmt.Errorf("%w: delta must be > 0: %g", ErrInvalidArgument, delta)
	}
	if halfwidth <= 0 {
		return nil, nil, fmt.Errorf("%w: halfwidth must be > 0: %g", ErrInvalidArgument, halfwidth)
	}

	n, err := halfSupport(typ, delta, halfwidth)
	if err != nil {
		return nil, nil, err
	}

	length := 2*n + 1
	kernel = make([]float64, length)
	timeaxis = make([]float64, length)

	for i := range kernel {
		t := float64(i-n) * delta
		timeaxis[i] = t
		kernel[i] = eval(typ, t, halfwidth)
	}

	normalize(kernel, delta)
	return kernel, timeaxis, nil
}

// eval returns the continuous source function value at time t.
func eval(typ Type, t, halfwidth float64) float64 {
	switch typ {
	case TypeTriangle:
		a := math.Abs(t)
		if a >= halfwidth {
			return 0
		}
		return (1 - a/halfwidth) / halfwidth
	case TypeGaussian:
		x := t / halfwidth
		return math.Exp(-x * x)
	default:
		return 0
	}
}

// normalize rescales the kernel in place so that sum(kernel)*delta == 1.
// Truncation and off-grid halfwidths otherwise leave a small area error.
func normalize(kernel []float64, delta float64) {
	sum := 0.0
	for _, v := range kernel {
		sum += v
	}

	area := sum * delta
	if area == 0 {
		return
	}
	vecmath.ScaleBlockInPlace(kernel, 1/area)
}

// GenerateBatch produces one kernel and time axis per record. All three
// argument slices must have identical length; use BroadcastFloats and
// BroadcastTypes first to expand scalar arguments.
func GenerateBatch(deltas, halfwidths []float64, types []Type) (kernels, timeaxes [][]float64, err error) {
	n := len(deltas)
	if len(halfwidths) != n || len(types) != n {
		return nil, nil, fmt.Errorf("%w: got %d deltas, %d halfwidths, %d types",
			ErrInvalidArgument, n, len(halfwidths), len(types))
	}

	kernels = make([][]float64, n)
	timeaxes = make([][]float64, n)

	for i := range deltas {
		k, ta, err := Generate(deltas[i], halfwidths[i], types[i])
		if err != nil {
			return nil, nil, fmt.Errorf("record %d: %w", i, err)
		}
		kernels[i] = k
		timeaxes[i] = ta
	}

	return kernels, timeaxes, nil
}
