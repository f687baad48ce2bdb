package convolve

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// overlapAddConvolve performs full linear convolution via the FFT
// overlap-add method. The input is segmented into blocks, each block is
// convolved with the kernel by frequency-domain multiplication, and the
// block results are overlap-added into the output.
func overlapAddConvolve(signal, kernel []float64) ([]float64, error) {
	kernelLen := len(kernel)

	blockSize := nextPowerOf2(kernelLen)
	if blockSize < 256 {
		blockSize = 256
	}

	// FFT size must hold block + kernel - 1 for linear convolution.
	fftSize := nextPowerOf2(blockSize + kernelLen - 1)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("convolve: failed to create FFT plan: %w", err)
	}

	kernelFFT := make([]complex128, fftSize)
	padded := make([]complex128, fftSize)
	for i, v := range kernel {
		padded[i] = complex(v, 0)
	}
	if err := plan.Forward(kernelFFT, padded); err != nil {
		return nil, fmt.Errorf("convolve: kernel FFT failed: %w", err)
	}

	outputLen := len(signal) + kernelLen - 1
	output := make([]float64, outputLen)

	inputPadded := make([]complex128, fftSize)
	outputPadded := make([]complex128, fftSize)

	numBlocks := (len(signal) + blockSize - 1) / blockSize
	for blockIdx := 0; blockIdx < numBlocks; blockIdx++ {
		start := blockIdx * blockSize
		end := start + blockSize
		if end > len(signal) {
			end = len(signal)
		}
		blockLen := end - start

		for i := range inputPadded {
			inputPadded[i] = 0
		}
		for i := 0; i < blockLen; i++ {
			inputPadded[i] = complex(signal[start+i], 0)
		}

		if err := plan.Forward(inputPadded, inputPadded); err != nil {
			return nil, fmt.Errorf("convolve: forward FFT failed: %w", err)
		}

		for i := range outputPadded {
			outputPadded[i] = inputPadded[i] * kernelFFT[i]
		}

		if err := plan.Inverse(outputPadded, outputPadded); err != nil {
			return nil, fmt.Errorf("convolve: inverse FFT failed: %w", err)
		}

		resultLen := blockLen + kernelLen - 1
		for i := 0; i < resultLen && start+i < outputLen; i++ {
			output[start+i] += real(outputPadded[i])
		}
	}

	return output, nil
}

// nextPowerOf2 returns the next power of 2 >= n.
func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p *= 2
	}
	return p
}
