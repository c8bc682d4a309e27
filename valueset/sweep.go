package valueset

import (
	"fmt"

	"dickson-valuesets/dickson"
)

// SweepN classifies D_n(a, ·) for every index n in [0, nMax) at fixed
// (p, a), invoking yield once per index in increasing order.
//
// The sweep keeps one running (D_{n-1}, D_n) pair per field element and
// advances all p of them together, one step per index, so the whole sweep
// costs O(nMax·p) instead of the O(nMax²·p) of restarting the recurrence
// at every index. The pair arrays and the residue marks are allocated once
// up front; the hot loop allocates nothing but the emitted value slices.
func SweepN(p, a uint64, nMax int, yield func(Record) error) error {
	if p <= 1 {
		return fmt.Errorf("modulus must be at least 2, got %d", p)
	}
	if nMax < 0 {
		return fmt.Errorf("sweep bound must be non-negative, got %d", nMax)
	}
	f := dickson.NewField(p)
	av := f.Reduce(a)
	two := f.Reduce(2)

	prev2 := make([]dickson.Elem, p)
	prev1 := make([]dickson.Elem, p)
	seen := make([]bool, p)

	// n = 0: D_0 ≡ 2 for every x.
	for x := range prev1 {
		prev1[x] = two
	}
	if nMax > 0 {
		if err := emit(p, a, 0, prev1, seen, yield); err != nil {
			return err
		}
	}

	// n = 1: D_1 ≡ a for every x.
	for x := range prev1 {
		prev2[x] = prev1[x]
		prev1[x] = av
	}
	if nMax > 1 {
		if err := emit(p, a, 1, prev1, seen, yield); err != nil {
			return err
		}
	}

	for n := 2; n < nMax; n++ {
		for x := uint64(0); x < p; x++ {
			cur := f.Sub(f.Mul(av, prev1[x]), f.Mul(dickson.Elem(x), prev2[x]))
			prev2[x], prev1[x] = prev1[x], cur
		}
		if err := emit(p, a, n, prev1, seen, yield); err != nil {
			return err
		}
	}
	return nil
}

func emit(p, a uint64, n int, vals []dickson.Elem, seen []bool, yield func(Record) error) error {
	for _, v := range vals {
		seen[v] = true
	}
	return yield(recordFromSeen(p, a, n, seen))
}

// Sweep collects the full classification table for (p, a) over the default
// index range [0, p²−1).
func Sweep(p, a uint64) ([]Record, error) {
	nMax := Period(p)
	records := make([]Record, 0, nMax)
	err := SweepN(p, a, nMax, func(r Record) error {
		records = append(records, r)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}
