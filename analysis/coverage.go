package analysis

import (
	"sort"

	"dickson-valuesets/valueset"
)

// Coverage summarizes which value-set cardinalities occur for one prime
// across a swept table.
type Coverage struct {
	P uint64
	// Observed lists the distinct cardinalities in ascending order.
	Observed []int
	// Missing lists the members of {1, …, p−1} that never occur.
	Missing []int
	// HasPermutation reports whether cardinality p occurs at all.
	HasPermutation bool
}

// CoverageFor scans the records belonging to prime p.
func CoverageFor(records []valueset.Record, p uint64) Coverage {
	present := make(map[int]bool)
	for _, rec := range records {
		if rec.P == p {
			present[rec.Cardinality] = true
		}
	}
	cov := Coverage{P: p, HasPermutation: present[int(p)]}
	for c := range present {
		cov.Observed = append(cov.Observed, c)
	}
	sort.Ints(cov.Observed)
	for c := 1; c < int(p); c++ {
		if !present[c] {
			cov.Missing = append(cov.Missing, c)
		}
	}
	return cov
}
