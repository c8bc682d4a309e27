package valueset

import (
	"reflect"
	"testing"
)

// The fused sweep must agree index by index with the direct classifier.
func TestSweepMatchesClassify(t *testing.T) {
	for _, c := range []struct{ p, a uint64 }{{5, 1}, {7, 3}, {7, 0}, {11, 2}} {
		records, err := Sweep(c.p, c.a)
		if err != nil {
			t.Fatalf("Sweep(%d,%d): %v", c.p, c.a, err)
		}
		if len(records) != Period(c.p) {
			t.Fatalf("Sweep(%d,%d) yielded %d records want %d", c.p, c.a, len(records), Period(c.p))
		}
		for n, rec := range records {
			if rec.N != n {
				t.Fatalf("record %d has index %d", n, rec.N)
			}
			direct, err := Classify(c.p, c.a, n)
			if err != nil {
				t.Fatalf("Classify(%d,%d,%d): %v", c.p, c.a, n, err)
			}
			if !rec.Equal(direct) {
				t.Fatalf("p=%d a=%d n=%d: sweep %+v direct %+v", c.p, c.a, n, rec, direct)
			}
		}
	}
}

// Full cardinality profile of the p=5, a=1 sweep, checked against the
// recurrence evaluated by hand.
func TestSweepCardinalityProfile(t *testing.T) {
	wantCards := []int{
		1, 1, 5, 5, 3, 1, 5, 3, 3, 3, 5, 3,
		3, 2, 4, 5, 3, 2, 4, 4, 3, 3, 4, 4,
	}
	records, err := Sweep(5, 1)
	if err != nil {
		t.Fatalf("Sweep: %v", err)
	}
	for n, rec := range records {
		if rec.Cardinality != wantCards[n] {
			t.Fatalf("n=%d: cardinality %d want %d", n, rec.Cardinality, wantCards[n])
		}
		if rec.IsPermutation != (wantCards[n] == 5) {
			t.Fatalf("n=%d: permutation flag %v inconsistent with cardinality %d", n, rec.IsPermutation, rec.Cardinality)
		}
	}
}

// For a = 1 the constant value sets occur exactly at n ∈ {0, 1, p}.
func TestSweepCardinalityOneIndices(t *testing.T) {
	for _, p := range []uint64{5, 7, 11} {
		records, err := Sweep(p, 1)
		if err != nil {
			t.Fatalf("Sweep(%d,1): %v", p, err)
		}
		var got []int
		for _, rec := range records {
			if rec.Cardinality == 1 {
				got = append(got, rec.N)
			}
		}
		want := []int{0, 1, int(p)}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("p=%d: cardinality-1 indices %v want %v", p, got, want)
		}
	}
}

func TestSweepPermutationIndices(t *testing.T) {
	records, err := Sweep(5, 1)
	if err != nil {
		t.Fatalf("Sweep: %v", err)
	}
	var got []int
	for _, rec := range records {
		if rec.IsPermutation {
			got = append(got, rec.N)
		}
	}
	if want := []int{2, 3, 6, 10, 15}; !reflect.DeepEqual(got, want) {
		t.Fatalf("p=5 permutation indices %v want %v", got, want)
	}
}

func TestSweepDeterminism(t *testing.T) {
	first, err := Sweep(7, 1)
	if err != nil {
		t.Fatalf("Sweep: %v", err)
	}
	second, err := Sweep(7, 1)
	if err != nil {
		t.Fatalf("Sweep: %v", err)
	}
	if len(first) != len(second) {
		t.Fatalf("record counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if !first[i].Equal(second[i]) {
			t.Fatalf("record %d differs between runs", i)
		}
	}
	if Digest(first) != Digest(second) {
		t.Fatal("digests differ between identical sweeps")
	}
}

func TestDigestSensitivity(t *testing.T) {
	records, err := Sweep(5, 1)
	if err != nil {
		t.Fatalf("Sweep: %v", err)
	}
	base := Digest(records)
	mutated := make([]Record, len(records))
	copy(mutated, records)
	mutated[3].Cardinality++
	if Digest(mutated) == base {
		t.Fatal("digest ignored a record mutation")
	}
	if Digest(records[:len(records)-1]) == base {
		t.Fatal("digest ignored a truncated stream")
	}
}

func TestSweepBounds(t *testing.T) {
	var count int
	err := SweepN(5, 1, 0, func(Record) error {
		count++
		return nil
	})
	if err != nil {
		t.Fatalf("SweepN: %v", err)
	}
	if count != 0 {
		t.Fatalf("empty sweep emitted %d records", count)
	}
	if err := SweepN(5, 1, -1, func(Record) error { return nil }); err == nil {
		t.Fatal("negative bound must fail")
	}
	if err := SweepN(1, 1, 10, func(Record) error { return nil }); err == nil {
		t.Fatal("modulus 1 must fail")
	}
}
