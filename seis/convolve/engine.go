package convolve

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-vecmath"
)

// Errors returned by the convolution engine.
var (
	ErrEmptySignal = errors.New("convolve: empty signal")
	ErrEmptyKernel = errors.New("convolve: empty kernel")
)

// Kernels shorter than this are always convolved by direct summation,
// even when the FFT path is enabled.
const directThreshold = 64

// Result holds one record's convolution output split along the original
// record boundaries.
type Result struct {
	// Main is the window of the convolution aligned with the record's
	// original time span; same length as the input buffer.
	Main []float64

	// Beginning holds output samples preceding the original first sample.
	Beginning []float64

	// Ending holds output samples past the original last sample.
	Ending []float64
}

// Energy returns the sum of all output samples across the three segments.
func (r Result) Energy() float64 {
	sum := 0.0
	for _, seg := range [][]float64{r.Beginning, r.Main, r.Ending} {
		for _, v := range seg {
			sum += v
		}
	}
	return sum
}

// convolveSignal performs full linear convolution of signal with kernel and
// splits the output by delay: samples that line up with the original record
// window become Main, the rest become the Beginning and Ending tails.
//
// The convolution is computed as if the kernel were causal; the output
// window is then shifted by -delay samples so a centered kernel (negative
// delay) lines up with the original timeline.
func convolveSignal(signal, kernel []float64, delay int, useFFT bool) (Result, error) {
	if len(signal) == 0 {
		return Result{}, ErrEmptySignal
	}
	if len(kernel) == 0 {
		return Result{}, ErrEmptyKernel
	}

	if delay > 0 || -delay > len(kernel)-1 {
		return Result{}, fmt.Errorf("%w: delay %d for kernel length %d",
			ErrDelayOutOfRange, delay, len(kernel))
	}

	var (
		full []float64
		err  error
	)
	if useFFT && len(kernel) > directThreshold {
		full, err = overlapAddConvolve(signal, kernel)
		if err != nil {
			return Result{}, err
		}
	} else {
		full = direct(signal, kernel)
	}

	mainStart := -delay
	mainEnd := mainStart + len(signal)

	return Result{
		Beginning: full[:mainStart],
		Main:      full[mainStart:mainEnd],
		Ending:    full[mainEnd:],
	}, nil
}

// direct performs direct time-domain linear convolution, returning the full
// result of length len(a)+len(b)-1.
func direct(a, b []float64) []float64 {
	n := len(a)
	m := len(b)
	dst := make([]float64, n+m-1)

	// SIMD path pays off once the scaled-kernel blocks are wide enough.
	const simdThreshold = 4
	if m >= simdThreshold {
		temp := make([]float64, m)
		for i := 0; i < n; i++ {
			vecmath.ScaleBlock(temp, b, a[i])
			vecmath.AddBlockInPlace(dst[i:i+m], temp)
		}
		return dst
	}

	for i := 0; i < n; i++ {
		for j := 0; j < m; j++ {
			dst[i+j] += a[i] * b[j]
		}
	}
	return dst
}
