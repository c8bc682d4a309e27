package dickson

// Stepper yields D_n(a, x) for consecutive indices n at fixed (a, x),
// carrying the running (D_{n-1}, D_n) pair across calls. Sweeping all
// indices up to N costs O(N) total instead of the O(N²) of restarting the
// recurrence at every index.
type Stepper struct {
	f     Field
	a, x  Elem
	n     int
	prev2 Elem // D_{n-1}, meaningless while n == 0
	prev1 Elem // D_n
}

// NewStepper positions the cursor at n = 0, where D_0 = 2.
func NewStepper(a, x, p uint64) *Stepper {
	f := NewField(p)
	return &Stepper{
		f:     f,
		a:     f.Reduce(a),
		x:     f.Reduce(x),
		prev1: f.Reduce(2),
	}
}

// N returns the index of the value Cur reports.
func (s *Stepper) N() int { return s.n }

// Cur returns D_n(a, x) at the current index.
func (s *Stepper) Cur() Elem { return s.prev1 }

// Next advances to the following index and returns its value.
func (s *Stepper) Next() Elem {
	s.n++
	if s.n == 1 {
		s.prev2, s.prev1 = s.prev1, s.a
		return s.prev1
	}
	s.prev2, s.prev1 = s.prev1, s.f.Sub(s.f.Mul(s.a, s.prev1), s.f.Mul(s.x, s.prev2))
	return s.prev1
}
