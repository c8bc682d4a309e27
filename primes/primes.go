// Package primes supplies prime moduli and the small number-theoretic
// helpers used by the value-set analyses.
package primes

import (
	"github.com/tuneinsight/lattigo/v4/ring"
)

// IsPrime reports whether p is prime.
func IsPrime(p uint64) bool {
	return ring.IsPrime(p)
}

// Range returns the primes in [lo, hi] in ascending order.
func Range(lo, hi uint64) []uint64 {
	var out []uint64
	if lo < 2 {
		lo = 2
	}
	for p := lo; p <= hi; p++ {
		if IsPrime(p) {
			out = append(out, p)
		}
	}
	return out
}

// GCD returns the greatest common divisor of a and b, with GCD(0, b) = b.
func GCD(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// Factor returns the prime factorization of n in ascending order with
// multiplicity. Factor(1) and Factor(0) return nil.
func Factor(n uint64) []uint64 {
	var factors []uint64
	for f := uint64(2); f*f <= n; f++ {
		for n%f == 0 {
			factors = append(factors, f)
			n /= f
		}
	}
	if n > 1 {
		factors = append(factors, n)
	}
	return factors
}

// CoprimeCount returns the number of n in [0, limit) with gcd(n, m) = 1.
// For limit = m this is Euler's totient φ(m).
func CoprimeCount(limit uint64, m uint64) int {
	count := 0
	for n := uint64(0); n < limit; n++ {
		if GCD(n, m) == 1 {
			count++
		}
	}
	return count
}
