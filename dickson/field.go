package dickson

// Elem represents a field element modulo p.
type Elem uint64

// Field exposes basic arithmetic modulo p.
type Field struct {
	p uint64
}

// NewField constructs a Field with modulus p.
func NewField(p uint64) Field {
	return Field{p: p}
}

func (f Field) P() uint64 { return f.p }

// Reduce maps an arbitrary residue into [0, p).
func (f Field) Reduce(v uint64) Elem {
	return Elem(v % f.p)
}

func (f Field) Add(a, b Elem) Elem {
	v := uint64(a) + uint64(b)
	if v >= f.p {
		v -= f.p
	}
	return Elem(v)
}

func (f Field) Sub(a, b Elem) Elem {
	va := uint64(a)
	vb := uint64(b)
	if va >= vb {
		return Elem(va - vb)
	}
	return Elem(va + f.p - vb)
}

func (f Field) Mul(a, b Elem) Elem {
	return Elem((uint64(a) * uint64(b)) % f.p)
}
