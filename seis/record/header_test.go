package record

import "testing"

func TestHeaderGetters(t *testing.T) {
	a, err := New(1, 0, []float64{1, 2, 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := New(0.5, 10, []float64{4, 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	coll := Collection{a, b}

	if got := Deltas(coll); got[0] != 1 || got[1] != 0.5 {
		t.Errorf("Deltas = %v, expected [1 0.5]", got)
	}
	if got := Begins(coll); got[0] != 0 || got[1] != 10 {
		t.Errorf("Begins = %v, expected [0 10]", got)
	}
	if got := Ends(coll); got[0] != 2 || got[1] != 10.5 {
		t.Errorf("Ends = %v, expected [2 10.5]", got)
	}
}
