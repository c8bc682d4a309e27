// Package valueset classifies the value sets of reversed Dickson
// polynomials over prime fields: for fixed (p, a, n) it collects
// {D_n(a, x) mod p : x ∈ F_p}, its cardinality, and whether the map
// x ↦ D_n(a, x) permutes F_p.
package valueset

// Record is one classification row. Records are produced once per
// (p, a, n) triple and never mutated afterwards.
type Record struct {
	P             uint64   `json:"p"`
	A             uint64   `json:"a"`
	N             int      `json:"n"`
	Cardinality   int      `json:"cardinality"`
	IsPermutation bool     `json:"is_permutation"`
	Values        []uint64 `json:"values"` // sorted residues in [0, p)
}

// Period returns p² − 1, the order of the multiplicative group of the
// degree-2 extension field and the span of a full index sweep.
func Period(p uint64) int {
	return int(p*p - 1)
}

// Equal reports whether two records coincide field by field.
func (r Record) Equal(other Record) bool {
	if r.P != other.P || r.A != other.A || r.N != other.N ||
		r.Cardinality != other.Cardinality || r.IsPermutation != other.IsPermutation ||
		len(r.Values) != len(other.Values) {
		return false
	}
	for i, v := range r.Values {
		if other.Values[i] != v {
			return false
		}
	}
	return true
}
