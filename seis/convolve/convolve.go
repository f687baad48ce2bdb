// Package convolve applies source time-functions to waveform records.
//
// The pipeline convolves each record's sample buffer with a per-record
// unit-area source kernel, then reattaches the convolution tails that fall
// outside the record's original time span, extending the record instead of
// discarding boundary energy.
//
// Processing is batch-atomic: every record is validated and every
// convolution is computed into transient buffers before any record is
// mutated. On error no record in the batch is modified.
//
//	err := convolve.Apply(coll,
//	    convolve.WithHalfwidth(10),
//	    convolve.WithType(source.TypeTriangle))
package convolve

import (
	"errors"
	"fmt"
	"io"

	"github.com/cwbudde/algo-seis/seis/record"
	"github.com/cwbudde/algo-seis/seis/source"
)

// Errors returned by the convolution pipeline.
var (
	ErrEmptyCollection        = errors.New("convolve: empty collection")
	ErrMissingHalfwidth       = errors.New("convolve: halfwidth not specified")
	ErrIncompatibleRecordType = errors.New("convolve: record is not a time-series or xy type")
	ErrUnevenSampling         = errors.New("convolve: record is not evenly sampled")
	ErrDelayOutOfRange        = errors.New("convolve: delay outside kernel support")
)

type config struct {
	halfwidths []float64
	types      []source.Type
	verbose    io.Writer
	fft        bool
	check      record.CheckConfig
}

func defaultConfig() config {
	return config{
		types: []source.Type{source.TypeTriangle},
	}
}

// Option configures the convolution pipeline.
type Option func(*config)

// WithHalfwidth sets one source half-width broadcast to all records.
func WithHalfwidth(v float64) Option {
	return func(c *config) {
		c.halfwidths = []float64{v}
	}
}

// WithHalfwidths sets one source half-width per record.
func WithHalfwidths(vs []float64) Option {
	return func(c *config) {
		c.halfwidths = vs
	}
}

// WithType sets one source time-function type broadcast to all records.
func WithType(t source.Type) Option {
	return func(c *config) {
		c.types = []source.Type{t}
	}
}

// WithTypes sets one source time-function type per record.
func WithTypes(ts []source.Type) Option {
	return func(c *config) {
		c.types = ts
	}
}

// WithVerbose emits a human-readable progress notice to w before the
// boundary-reattachment step. Purely observational.
func WithVerbose(w io.Writer) Option {
	return func(c *config) {
		c.verbose = w
	}
}

// WithFFT enables the FFT overlap-add path for kernels longer than the
// direct-summation threshold. Results match direct summation within
// floating-point tolerance.
func WithFFT() Option {
	return func(c *config) {
		c.fft = true
	}
}

// WithCheckConfig overrides the structural-check configuration.
func WithCheckConfig(cfg record.CheckConfig) Option {
	return func(c *config) {
		c.check = cfg
	}
}

// Apply convolves every record in the collection with its generated source
// time-function and reattaches the boundary tails. Records are mutated in
// place: sample buffers are replaced by the extended convolution result and
// begin/end times, sample counts, and summary statistics are updated.
//
// On any error the collection is returned unmodified.
func Apply(coll record.Collection, opts ...Option) error {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	n := len(coll)
	if n == 0 {
		return ErrEmptyCollection
	}
	if len(cfg.halfwidths) == 0 {
		return ErrMissingHalfwidth
	}

	if err := record.Check(coll, cfg.check); err != nil {
		return fmt.Errorf("convolve: structural check: %w", err)
	}

	if err := validateRecords(coll); err != nil {
		return err
	}

	halfwidths, err := source.BroadcastFloats(cfg.halfwidths, n)
	if err != nil {
		return err
	}
	types, err := source.BroadcastTypes(cfg.types, n)
	if err != nil {
		return err
	}

	deltas := record.Deltas(coll)
	kernels, timeaxes, err := source.GenerateBatch(deltas, halfwidths, types)
	if err != nil {
		return err
	}

	delays := ResolveDelays(timeaxes, deltas)

	// Compute phase: no record is touched until every convolution has
	// succeeded, so a failure anywhere leaves the whole batch unmodified.
	results := make([]Result, n)
	for i, r := range coll {
		res, err := convolveSignal(r.Data, kernels[i], delays[i], cfg.fft)
		if err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
		results[i] = res
	}

	if cfg.verbose != nil {
		fmt.Fprintf(cfg.verbose, "convolve: attaching boundary tails for %d record(s)\n", n)
	}

	// Commit phase.
	for i, r := range coll {
		commit(r, results[i])
	}

	return nil
}

// commit installs one convolution result on its record: the main window
// replaces the sample buffer, tails are reattached on both ends, and the
// time span, sample count, and summary statistics are updated.
func commit(r *record.Record, res Result) {
	r.Data = res.Main
	attachBoundaries(r, res.Beginning, res.Ending)
}
