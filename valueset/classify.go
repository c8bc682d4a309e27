package valueset

import (
	"fmt"

	"dickson-valuesets/dickson"
)

// Classify computes the value set of D_n(a, x) as x ranges over F_p and
// reports its cardinality and permutation status. Primality of p is the
// caller's responsibility; p must be ≥ 2 and n non-negative.
func Classify(p, a uint64, n int) (Record, error) {
	if p <= 1 {
		return Record{}, fmt.Errorf("modulus must be at least 2, got %d", p)
	}
	if n < 0 {
		return Record{}, fmt.Errorf("index n must be non-negative, got %d", n)
	}
	seen := make([]bool, p)
	for x := uint64(0); x < p; x++ {
		v, err := dickson.Evaluate(n, a, x, p)
		if err != nil {
			return Record{}, err
		}
		seen[v] = true
	}
	return recordFromSeen(p, a, n, seen), nil
}

// recordFromSeen collects the marked residues in ascending order and
// clears the marks, so the caller can reuse the slice.
func recordFromSeen(p, a uint64, n int, seen []bool) Record {
	values := make([]uint64, 0, 8)
	for v := uint64(0); v < p; v++ {
		if seen[v] {
			values = append(values, v)
			seen[v] = false
		}
	}
	return Record{
		P:             p,
		A:             a % p,
		N:             n,
		Cardinality:   len(values),
		IsPermutation: len(values) == int(p),
		Values:        values,
	}
}
