package convolve

import "github.com/cwbudde/algo-seis/seis/record"

// attachBoundaries extends a record with the convolution tails that fall
// outside its original time span: beginning samples are prepended and
// ending samples appended, the begin/end times move out by the tail
// durations, and the sample count and summary statistics are recomputed.
//
// Empty tails leave the corresponding boundary unchanged.
func attachBoundaries(r *record.Record, beginning, ending []float64) {
	if len(beginning) == 0 && len(ending) == 0 {
		record.RecomputeStats(r)
		return
	}

	extended := make([]float64, 0, len(beginning)+len(r.Data)+len(ending))
	extended = append(extended, beginning...)
	extended = append(extended, r.Data...)
	extended = append(extended, ending...)

	r.Data = extended
	record.SetSpan(r, r.Begin-float64(len(beginning))*r.Delta)
	record.RecomputeStats(r)
}
