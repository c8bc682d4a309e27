package analysis

import (
	"fmt"

	"dickson-valuesets/valueset"
)

// FormulaCheck records the outcome of one cardinality-2 index formula for
// the canonical parameter a=1.
type FormulaCheck struct {
	Name     string
	Formula  string
	N        int
	Expected []uint64
	Actual   []uint64
	Pass     bool
}

// VerifyCard2Formulas evaluates the three indices known to yield
// two-element value sets for D_n(1, x) over F_p:
//
//	n1 = p² − 1          → {1, 2}
//	n2 = (p² + 1)/2      → {1, p−1}
//	n3 = (p² + 2p − 1)/2 → {1, p−1}
//
// p must be an odd prime ≥ 5 for the half-integer indices to exist.
func VerifyCard2Formulas(p uint64) ([]FormulaCheck, error) {
	if p < 5 || p%2 == 0 {
		return nil, fmt.Errorf("odd prime p ≥ 5 required, got %d", p)
	}
	checks := []FormulaCheck{
		{Name: "n1", Formula: "p^2 - 1", N: int(p*p - 1), Expected: []uint64{1, 2}},
		{Name: "n2", Formula: "(p^2 + 1)/2", N: int((p*p + 1) / 2), Expected: []uint64{1, p - 1}},
		{Name: "n3", Formula: "(p^2 + 2p - 1)/2", N: int((p*p + 2*p - 1) / 2), Expected: []uint64{1, p - 1}},
	}
	for i := range checks {
		rec, err := valueset.Classify(p, 1, checks[i].N)
		if err != nil {
			return nil, err
		}
		checks[i].Actual = rec.Values
		checks[i].Pass = uintSlicesEqual(rec.Values, checks[i].Expected)
	}
	return checks, nil
}

func uintSlicesEqual(a, b []uint64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
