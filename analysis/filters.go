// Package analysis answers the research questions asked of a
// classification table: which cardinalities occur for a prime, where the
// permutation indices sit relative to the gcd closed form, whether the
// three cardinality-2 index formulas hold, and how the table reacts to the
// Dickson parameter a. It only filters and cross-checks records; all
// computation of value sets happens in the valueset package.
package analysis

import "dickson-valuesets/valueset"

// ByPrime returns the records for modulus p, preserving order.
func ByPrime(records []valueset.Record, p uint64) []valueset.Record {
	var out []valueset.Record
	for _, rec := range records {
		if rec.P == p {
			out = append(out, rec)
		}
	}
	return out
}

// ByCardinality returns the records for prime p whose value set has
// exactly c elements.
func ByCardinality(records []valueset.Record, p uint64, c int) []valueset.Record {
	var out []valueset.Record
	for _, rec := range records {
		if rec.P == p && rec.Cardinality == c {
			out = append(out, rec)
		}
	}
	return out
}

// Permutations returns the records for prime p classified as permutation
// polynomials.
func Permutations(records []valueset.Record, p uint64) []valueset.Record {
	var out []valueset.Record
	for _, rec := range records {
		if rec.P == p && rec.IsPermutation {
			out = append(out, rec)
		}
	}
	return out
}

// Primes returns the distinct moduli present in the table, in first-seen
// order.
func Primes(records []valueset.Record) []uint64 {
	seen := make(map[uint64]bool)
	var out []uint64
	for _, rec := range records {
		if !seen[rec.P] {
			seen[rec.P] = true
			out = append(out, rec.P)
		}
	}
	return out
}
