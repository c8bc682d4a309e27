// Package dickson evaluates Dickson polynomials over prime fields.
//
// The reversed first-kind polynomial D_n(a, x) is defined by
//
//	D_0 = 2,  D_1 = a,  D_n = a·D_{n-1} − x·D_{n-2}  (n ≥ 2),
//
// and the classical first-kind polynomial E_n(x, a) by the same recurrence
// with the roles of a and x swapped. All arithmetic is carried out in F_p
// with representatives normalized to [0, p).
package dickson

import "fmt"

// Evaluate computes the reversed Dickson polynomial D_n(a, x) modulo p.
// a and x are reduced modulo p before use. The modulus is not checked for
// primality; p must be ≥ 2.
func Evaluate(n int, a, x, p uint64) (Elem, error) {
	if n < 0 {
		return 0, fmt.Errorf("index n must be non-negative, got %d", n)
	}
	f := NewField(p)
	av := f.Reduce(a)
	switch n {
	case 0:
		return f.Reduce(2), nil
	case 1:
		return av, nil
	}
	xv := f.Reduce(x)
	prev2, prev1 := f.Reduce(2), av
	for i := 2; i <= n; i++ {
		prev2, prev1 = prev1, f.Sub(f.Mul(av, prev1), f.Mul(xv, prev2))
	}
	return prev1, nil
}

// EvaluateClassical computes the classical first-kind Dickson polynomial
// E_n(x, a) modulo p: E_0 = 2, E_1 = x, E_n = x·E_{n-1} − a·E_{n-2}.
func EvaluateClassical(n int, x, a, p uint64) (Elem, error) {
	if n < 0 {
		return 0, fmt.Errorf("index n must be non-negative, got %d", n)
	}
	f := NewField(p)
	xv := f.Reduce(x)
	switch n {
	case 0:
		return f.Reduce(2), nil
	case 1:
		return xv, nil
	}
	av := f.Reduce(a)
	prev2, prev1 := f.Reduce(2), xv
	for i := 2; i <= n; i++ {
		prev2, prev1 = prev1, f.Sub(f.Mul(xv, prev1), f.Mul(av, prev2))
	}
	return prev1, nil
}
