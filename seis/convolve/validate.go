package convolve

import (
	"fmt"

	"github.com/cwbudde/algo-seis/seis/record"
)

// validateRecords checks that every record in the batch is eligible for
// time-domain convolution. The scan is exhaustive: all offending records
// of a kind are collected before failing, so the error names every index
// in one pass rather than only the first.
func validateRecords(coll record.Collection) error {
	var badKind, uneven []int

	for i, r := range coll {
		if r.Kind != record.KindTimeSeries && r.Kind != record.KindXY {
			badKind = append(badKind, i)
		}
		if !r.Even {
			uneven = append(uneven, i)
		}
	}

	if len(badKind) > 0 {
		return fmt.Errorf("%w: records %v", ErrIncompatibleRecordType, badKind)
	}
	if len(uneven) > 0 {
		return fmt.Errorf("%w: records %v", ErrUnevenSampling, uneven)
	}

	return nil
}
