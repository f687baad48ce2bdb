// Package record models discretely sampled waveform records and the
// header/metadata bookkeeping that surrounds them.
//
// A Record owns a mutable sample buffer plus derived header fields (sample
// count, begin/end time, amplitude summary statistics). Anything that
// mutates the buffer is expected to call RecomputeStats so the derived
// fields stay consistent.
package record

import (
	"errors"
	"fmt"
	"math"
)

// Kind classifies the dependent-variable type of a record.
type Kind int

const (
	// KindTimeSeries is an evenly or unevenly sampled time series.
	KindTimeSeries Kind = iota

	// KindXY is a general x-y pair series.
	KindXY

	// KindSpectral is a frequency-domain record (amplitude/phase or
	// real/imaginary); not eligible for time-domain processing.
	KindSpectral
)

// String returns the conventional short name for the kind.
func (k Kind) String() string {
	switch k {
	case KindTimeSeries:
		return "time-series"
	case KindXY:
		return "xy"
	case KindSpectral:
		return "spectral"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Stats holds amplitude summary statistics of a record's sample buffer.
type Stats struct {
	Min    float64
	MinPos int
	Max    float64
	MaxPos int
	Mean   float64
}

// Record is one waveform: a sample buffer plus its header fields.
type Record struct {
	// Delta is the sampling interval in seconds. Must be > 0.
	Delta float64

	// Npts is the number of valid samples; kept equal to len(Data).
	Npts int

	// Begin and End are the times of the first and last sample.
	Begin float64
	End   float64

	// Even reports whether the record is evenly sampled.
	Even bool

	// Kind classifies the record's dependent variable.
	Kind Kind

	// Data is the sample buffer.
	Data []float64

	// Stats are amplitude summary statistics over Data.
	Stats Stats

	// Name is the record's file name, if any.
	Name string
}

// Collection is an ordered batch of records processed together.
type Collection []*Record

// New creates an evenly sampled time-series record over data, with begin
// time begin and sampling interval delta. Derived fields are filled in.
func New(delta, begin float64, data []float64) (*Record, error) {
	if delta <= 0 {
		return nil, fmt.Errorf("record: delta must be > 0: %g", delta)
	}

	r := &Record{
		Delta: delta,
		Npts:  len(data),
		Begin: begin,
		End:   begin + float64(len(data)-1)*delta,
		Even:  true,
		Kind:  KindTimeSeries,
		Data:  data,
	}
	RecomputeStats(r)

	return r, nil
}

// RecomputeStats recalculates Npts, min/max (with positions), and mean over
// the current sample buffer in a single pass.
func RecomputeStats(r *Record) {
	r.Npts = len(r.Data)
	if r.Npts == 0 {
		r.Stats = Stats{}
		return
	}

	var (
		sum    float64
		maxVal = r.Data[0]
		maxPos int
		minVal = r.Data[0]
		minPos int
	)

	for i, x := range r.Data {
		sum += x

		if x > maxVal {
			maxVal = x
			maxPos = i
		}

		if x < minVal {
			minVal = x
			minPos = i
		}
	}

	r.Stats = Stats{
		Min:    minVal,
		MinPos: minPos,
		Max:    maxVal,
		MaxPos: maxPos,
		Mean:   sum / float64(r.Npts),
	}
}

// SetSpan rewrites the record's time span after a buffer-length change,
// keeping End consistent with Begin, Npts, and Delta.
func SetSpan(r *Record, begin float64) {
	r.Begin = begin
	r.End = begin + float64(len(r.Data)-1)*r.Delta
}

// Errors returned by structural checking.
var (
	ErrNilRecord     = errors.New("record: nil record in collection")
	ErrBadDelta      = errors.New("record: sampling interval must be > 0")
	ErrBadNpts       = errors.New("record: sample count does not match buffer length")
	ErrBadTimeBounds = errors.New("record: begin/end times must be finite")
)

// CheckConfig selects which structural checks to run. The zero value runs
// everything; callers that deliberately hold partially built records can
// switch individual checks off. Passing the config explicitly replaces the
// process-wide enable/disable toggles some waveform toolkits use, so there
// is no hidden global state to save and restore.
type CheckConfig struct {
	SkipDelta      bool
	SkipNpts       bool
	SkipTimeBounds bool
}

// Check validates the structural integrity of every record in the
// collection. It scans all records and reports the first kind of violation
// found, wrapped with the indices of every record exhibiting it.
func Check(coll Collection, cfg CheckConfig) error {
	var nilIdx, deltaIdx, nptsIdx, timeIdx []int

	for i, r := range coll {
		if r == nil {
			nilIdx = append(nilIdx, i)
			continue
		}
		if !cfg.SkipDelta && r.Delta <= 0 {
			deltaIdx = append(deltaIdx, i)
		}
		if !cfg.SkipNpts && r.Npts != len(r.Data) {
			nptsIdx = append(nptsIdx, i)
		}
		if !cfg.SkipTimeBounds && (!isFinite(r.Begin) || !isFinite(r.End)) {
			timeIdx = append(timeIdx, i)
		}
	}

	switch {
	case len(nilIdx) > 0:
		return fmt.Errorf("%w: records %v", ErrNilRecord, nilIdx)
	case len(deltaIdx) > 0:
		return fmt.Errorf("%w: records %v", ErrBadDelta, deltaIdx)
	case len(nptsIdx) > 0:
		return fmt.Errorf("%w: records %v", ErrBadNpts, nptsIdx)
	case len(timeIdx) > 0:
		return fmt.Errorf("%w: records %v", ErrBadTimeBounds, timeIdx)
	}

	return nil
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
