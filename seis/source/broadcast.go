package source

import "fmt"

// BroadcastFloats expands a scalar-or-per-record float argument to exactly
// n entries. A single value is repeated n times; a slice of length n is
// returned as is. Any other cardinality is a contract violation.
func BroadcastFloats(values []float64, n int) ([]float64, error) {
	switch len(values) {
	case n:
		return values, nil
	case 1:
		out := make([]float64, n)
		for i := range out {
			out[i] = values[0]
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: need 1 or %d values, got %d",
			ErrInvalidArgument, n, len(values))
	}
}

// BroadcastTypes expands a scalar-or-per-record kernel type argument to
// exactly n entries, with the same cardinality rules as BroadcastFloats.
func BroadcastTypes(types []Type, n int) ([]Type, error) {
	switch len(types) {
	case n:
		return types, nil
	case 1:
		out := make([]Type, n)
		for i := range out {
			out[i] = types[0]
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: need 1 or %d types, got %d",
			ErrInvalidArgument, n, len(types))
	}
}
