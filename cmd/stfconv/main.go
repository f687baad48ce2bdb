// Command stfconv convolves a synthetic spike record with a source
// time-function and prints the resulting record header and statistics.
//
// Usage:
//
//	stfconv [flags]
//
// Examples:
//
//	stfconv -halfwidth 10
//	stfconv -delta 0.05 -npts 2000 -type gaussian -halfwidth 0.5
//	stfconv -halfwidth 10 -fft -v
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-seis/seis/convolve"
	"github.com/cwbudde/algo-seis/seis/record"
	"github.com/cwbudde/algo-seis/seis/source"
)

func main() {
	delta := flag.Float64("delta", 1.0, "sampling interval in seconds")
	npts := flag.Int("npts", 100, "number of samples in the synthetic record")
	halfwidth := flag.Float64("halfwidth", 10, "source half-width in seconds")
	typeName := flag.String("type", "triangle", "source time-function type (triangle, gaussian)")
	useFFT := flag.Bool("fft", false, "use FFT overlap-add for long kernels")
	verbose := flag.Bool("v", false, "print pipeline progress notices")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: stfconv [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Convolves a synthetic spike record with a source time-function.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	typ, err := source.ParseType(*typeName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "stfconv: %v\n", err)
		os.Exit(1)
	}

	if *npts <= 0 {
		fmt.Fprintf(os.Stderr, "stfconv: npts must be > 0: %d\n", *npts)
		os.Exit(1)
	}

	// Unit spike in the middle of the record.
	data := make([]float64, *npts)
	data[*npts/2] = 1

	rec, err := record.New(*delta, 0, data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "stfconv: %v\n", err)
		os.Exit(1)
	}
	rec.Name = "spike"

	kernel, timeaxis, err := source.Generate(*delta, *halfwidth, typ)
	if err != nil {
		fmt.Fprintf(os.Stderr, "stfconv: %v\n", err)
		os.Exit(1)
	}

	opts := []convolve.Option{
		convolve.WithHalfwidth(*halfwidth),
		convolve.WithType(typ),
	}
	if *useFFT {
		opts = append(opts, convolve.WithFFT())
	}
	if *verbose {
		opts = append(opts, convolve.WithVerbose(os.Stderr))
	}

	coll := record.Collection{rec}
	if err := convolve.Apply(coll, opts...); err != nil {
		fmt.Fprintf(os.Stderr, "stfconv: %v\n", err)
		os.Exit(1)
	}

	area := 0.0
	for _, v := range kernel {
		area += v
	}
	area *= *delta

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "kernel type\t%s\n", typ)
	fmt.Fprintf(w, "kernel samples\t%d\n", len(kernel))
	fmt.Fprintf(w, "kernel start\t%.6g s\n", timeaxis[0])
	fmt.Fprintf(w, "kernel area\t%.9f\n", area)
	fmt.Fprintf(w, "npts\t%d\n", rec.Npts)
	fmt.Fprintf(w, "begin\t%.6g s\n", rec.Begin)
	fmt.Fprintf(w, "end\t%.6g s\n", rec.End)
	fmt.Fprintf(w, "min\t%.6g (at %d)\n", rec.Stats.Min, rec.Stats.MinPos)
	fmt.Fprintf(w, "max\t%.6g (at %d)\n", rec.Stats.Max, rec.Stats.MaxPos)
	fmt.Fprintf(w, "mean\t%.6g\n", rec.Stats.Mean)
	w.Flush()
}
