// Package tuple provides fixed-arity heterogeneous immutable aggregates.
// Arity and per-position types are fixed by the type parameters at
// construction; destructuring is total and returns every element.
package tuple

// Pair is an immutable 2-tuple.
type Pair[A, B any] struct {
	a A
	b B
}

// NewPair returns the pair (a, b).
func NewPair[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{a: a, b: b}
}

// Destructure returns both elements in order.
func (p Pair[A, B]) Destructure() (A, B) {
	return p.a, p.b
}

// Triple is an immutable 3-tuple.
type Triple[A, B, C any] struct {
	a A
	b B
	c C
}

// NewTriple returns the triple (a, b, c).
func NewTriple[A, B, C any](a A, b B, c C) Triple[A, B, C] {
	return Triple[A, B, C]{a: a, b: b, c: c}
}

// Destructure returns all three elements in order.
func (t Triple[A, B, C]) Destructure() (A, B, C) {
	return t.a, t.b, t.c
}

// Quad is an immutable 4-tuple.
type Quad[A, B, C, D any] struct {
	a A
	b B
	c C
	d D
}

// NewQuad returns the quad (a, b, c, d).
func NewQuad[A, B, C, D any](a A, b B, c C, d D) Quad[A, B, C, D] {
	return Quad[A, B, C, D]{a: a, b: b, c: c, d: d}
}

// Destructure returns all four elements in order.
func (q Quad[A, B, C, D]) Destructure() (A, B, C, D) {
	return q.a, q.b, q.c, q.d
}
