package convolve

import "github.com/cwbudde/algo-seis/seis/core"

// ResolveDelay converts a kernel's start-time offset into an integer sample
// delay on the record's native time axis. For a centered (acausal) kernel
// the start offset is negative, giving a negative delay.
//
// Rounding is half-away-from-zero; a tie only occurs when the kernel start
// falls exactly between two sample ticks.
func ResolveDelay(startOffset, delta float64) int {
	return core.RoundHalfAwayFromZero(startOffset / delta)
}

// ResolveDelays resolves one delay per record from each kernel's time axis.
func ResolveDelays(timeaxes [][]float64, deltas []float64) []int {
	out := make([]int, len(timeaxes))
	for i, ta := range timeaxes {
		if len(ta) == 0 {
			continue
		}
		out[i] = ResolveDelay(ta[0], deltas[i])
	}
	return out
}
