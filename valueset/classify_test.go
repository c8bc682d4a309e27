package valueset

import (
	"reflect"
	"testing"
)

func TestClassifyBaseIndices(t *testing.T) {
	cases := []struct {
		p, a   uint64
		n      int
		values []uint64
	}{
		{7, 1, 0, []uint64{2}},
		{7, 1, 1, []uint64{1}},
		{7, 1, 7, []uint64{1}},
		{5, 1, 0, []uint64{2}},
		{5, 1, 5, []uint64{1}},
	}
	for _, c := range cases {
		rec, err := Classify(c.p, c.a, c.n)
		if err != nil {
			t.Fatalf("Classify(%d,%d,%d): %v", c.p, c.a, c.n, err)
		}
		if !reflect.DeepEqual(rec.Values, c.values) {
			t.Fatalf("Classify(%d,%d,%d).Values = %v want %v", c.p, c.a, c.n, rec.Values, c.values)
		}
		if rec.Cardinality != len(c.values) {
			t.Fatalf("cardinality %d want %d", rec.Cardinality, len(c.values))
		}
		if rec.IsPermutation {
			t.Fatalf("Classify(%d,%d,%d) flagged as permutation", c.p, c.a, c.n)
		}
	}
}

// The three cardinality-2 indices for p=5, a=1 are n = (p²+1)/2 = 13,
// n = (p²+2p−1)/2 = 17, and n = p²−1 = 24.
func TestClassifyCardinalityTwoIndices(t *testing.T) {
	cases := []struct {
		n      int
		values []uint64
	}{
		{13, []uint64{1, 4}},
		{17, []uint64{1, 4}},
		{24, []uint64{1, 2}},
	}
	for _, c := range cases {
		rec, err := Classify(5, 1, c.n)
		if err != nil {
			t.Fatalf("Classify(5,1,%d): %v", c.n, err)
		}
		if rec.Cardinality != 2 {
			t.Fatalf("Classify(5,1,%d).Cardinality = %d want 2", c.n, rec.Cardinality)
		}
		if !reflect.DeepEqual(rec.Values, c.values) {
			t.Fatalf("Classify(5,1,%d).Values = %v want %v", c.n, rec.Values, c.values)
		}
	}
}

// D_{p²−1}(1, x) ≡ {1, 2}: the value 2 appears because γ^(p²−1) = 1 for
// every γ in the extension field's multiplicative group.
func TestClassifyAtPeriod(t *testing.T) {
	for _, p := range []uint64{3, 5, 7, 11, 13} {
		rec, err := Classify(p, 1, Period(p))
		if err != nil {
			t.Fatalf("Classify(%d,1,%d): %v", p, Period(p), err)
		}
		if rec.Cardinality != 2 {
			t.Fatalf("p=%d: cardinality at n=p²−1 is %d want 2", p, rec.Cardinality)
		}
		found := false
		for _, v := range rec.Values {
			if v == 2 {
				found = true
			}
		}
		if !found {
			t.Fatalf("p=%d: value set %v at n=p²−1 does not contain 2", p, rec.Values)
		}
	}
}

func TestClassifyPermutation(t *testing.T) {
	// D_2(1, x) = 1 − 2x permutes F_5.
	rec, err := Classify(5, 1, 2)
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if !rec.IsPermutation || rec.Cardinality != 5 {
		t.Fatalf("Classify(5,1,2) = %+v want a permutation of F_5", rec)
	}
	if !reflect.DeepEqual(rec.Values, []uint64{0, 1, 2, 3, 4}) {
		t.Fatalf("values %v want the whole field", rec.Values)
	}
}

func TestClassifyInvalidArguments(t *testing.T) {
	if _, err := Classify(1, 1, 0); err == nil {
		t.Fatal("Classify with modulus 1 must fail")
	}
	if _, err := Classify(0, 1, 0); err == nil {
		t.Fatal("Classify with modulus 0 must fail")
	}
	if _, err := Classify(5, 1, -3); err == nil {
		t.Fatal("Classify with negative index must fail")
	}
}
