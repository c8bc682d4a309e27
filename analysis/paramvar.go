package analysis

import (
	"dickson-valuesets/valueset"
)

// CardinalityHistogram counts how many swept indices produced each
// value-set cardinality.
type CardinalityHistogram map[int]int

// Equal reports whether two histograms agree bucket by bucket.
func (h CardinalityHistogram) Equal(other CardinalityHistogram) bool {
	if len(h) != len(other) {
		return false
	}
	for c, count := range h {
		if other[c] != count {
			return false
		}
	}
	return true
}

// HistogramFor tallies the records belonging to (p, a).
func HistogramFor(records []valueset.Record, p, a uint64) CardinalityHistogram {
	h := make(CardinalityHistogram)
	for _, rec := range records {
		if rec.P == p && rec.A == a {
			h[rec.Cardinality]++
		}
	}
	return h
}

// InvarianceReport captures how the cardinality distribution of a full
// sweep reacts to the Dickson parameter a. For every nonzero a the
// distribution must coincide, because D_n(a, x) = aⁿ·D_n(1, x/a²) and
// both x ↦ x/a² and multiplication by aⁿ permute F_p. a = 0 is the one
// degenerate parameter and is reported separately.
type InvarianceReport struct {
	P uint64
	// Reference is the histogram for the smallest nonzero a present.
	Reference CardinalityHistogram
	// NonzeroInvariant is true when every nonzero a matches Reference.
	NonzeroInvariant bool
	// Deviating lists the nonzero parameters whose histogram differs.
	Deviating []uint64
	// ZeroMatches reports whether the a=0 histogram also matches; absent
	// a=0 records leave it false.
	ZeroMatches bool
	// ZeroHistogram is the a=0 histogram, nil when a=0 was not swept.
	ZeroHistogram CardinalityHistogram
}

// ParameterInvariance inspects all parameters present for prime p.
func ParameterInvariance(records []valueset.Record, p uint64) InvarianceReport {
	present := make(map[uint64]bool)
	for _, rec := range records {
		if rec.P == p {
			present[rec.A] = true
		}
	}
	rep := InvarianceReport{P: p, NonzeroInvariant: true}
	for a := uint64(1); a < p; a++ {
		if !present[a] {
			continue
		}
		h := HistogramFor(records, p, a)
		if rep.Reference == nil {
			rep.Reference = h
			continue
		}
		if !rep.Reference.Equal(h) {
			rep.NonzeroInvariant = false
			rep.Deviating = append(rep.Deviating, a)
		}
	}
	if present[0] {
		rep.ZeroHistogram = HistogramFor(records, p, 0)
		rep.ZeroMatches = rep.Reference != nil && rep.Reference.Equal(rep.ZeroHistogram)
	}
	return rep
}
