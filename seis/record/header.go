package record

// Deltas returns the sampling interval of every record in order.
func Deltas(coll Collection) []float64 {
	out := make([]float64, len(coll))
	for i, r := range coll {
		out[i] = r.Delta
	}
	return out
}

// Begins returns the begin time of every record in order.
func Begins(coll Collection) []float64 {
	out := make([]float64, len(coll))
	for i, r := range coll {
		out[i] = r.Begin
	}
	return out
}

// Ends returns the end time of every record in order.
func Ends(coll Collection) []float64 {
	out := make([]float64, len(coll))
	for i, r := range coll {
		out[i] = r.End
	}
	return out
}
