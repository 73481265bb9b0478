// Package felt implements the base field scalar of the runtime: an
// immutable value in [0, P) where P = 2^251 + 17*2^192 + 1 is the Stark
// prime. Addition, subtraction and multiplication reduce modulo P and
// never fail; division is field division (multiplication by the modular
// inverse) and fails only on a zero divisor.
//
// Arithmetic is delegated to gnark-crypto's stark-curve base field, which
// keeps elements in reduced form, so every Element observable here is
// already normalized into [0, P).
package felt

import (
	"errors"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/stark-curve/fp"
)

// Bytes is the size of an Element in a big-endian byte representation.
const Bytes = fp.Bytes

// ErrDivisionByZero is returned by Div and Inverse when the divisor is the
// additive identity.
var ErrDivisionByZero = errors.New("felt: division by zero")

// Element is a field scalar. The zero value is the additive identity.
// Elements have value semantics; all operations return a new Element and
// never mutate their operands.
type Element struct {
	z fp.Element
}

// New returns the Element representing v.
func New(v uint64) Element {
	return Element{z: fp.NewElement(v)}
}

// Zero returns the additive identity.
func Zero() Element {
	return Element{}
}

// One returns the multiplicative identity.
func One() Element {
	return New(1)
}

// Modulus returns a copy of P.
func Modulus() *big.Int {
	return fp.Modulus()
}

// FromBigInt returns the Element representing v mod P. Negative inputs map
// to their additive inverse class.
func FromBigInt(v *big.Int) Element {
	var e Element
	e.z.SetBigInt(v)
	return e
}

// FromBytes interprets b as a big-endian unsigned integer and returns the
// corresponding Element, reduced mod P.
func FromBytes(b []byte) Element {
	var e Element
	e.z.SetBytes(b)
	return e
}

// Add returns x + y mod P.
func (x Element) Add(y Element) Element {
	var r Element
	r.z.Add(&x.z, &y.z)
	return r
}

// Sub returns x - y mod P.
func (x Element) Sub(y Element) Element {
	var r Element
	r.z.Sub(&x.z, &y.z)
	return r
}

// Mul returns x * y mod P.
func (x Element) Mul(y Element) Element {
	var r Element
	r.z.Mul(&x.z, &y.z)
	return r
}

// Neg returns -x mod P.
func (x Element) Neg() Element {
	var r Element
	r.z.Neg(&x.z)
	return r
}

// Div returns the unique z such that z * y = x mod P. This is field
// division, not truncating integer division: Div(x, y).Mul(y) equals x
// exactly for every nonzero y. Returns ErrDivisionByZero when y is zero.
func (x Element) Div(y Element) (Element, error) {
	if y.z.IsZero() {
		return Element{}, ErrDivisionByZero
	}
	var r Element
	r.z.Div(&x.z, &y.z)
	return r, nil
}

// Inverse returns the multiplicative inverse of x, or ErrDivisionByZero
// when x is zero.
func (x Element) Inverse() (Element, error) {
	if x.z.IsZero() {
		return Element{}, ErrDivisionByZero
	}
	var r Element
	r.z.Inverse(&x.z)
	return r, nil
}

// IsZero reports whether x is the additive identity.
func (x Element) IsZero() bool {
	return x.z.IsZero()
}

// IsOne reports whether x is the multiplicative identity.
func (x Element) IsOne() bool {
	return x.z.IsOne()
}

// Equal reports whether x and y represent the same field value.
func (x Element) Equal(y Element) bool {
	return x.z.Equal(&y.z)
}

// Cmp compares the canonical integer representatives of x and y and
// returns -1, 0 or 1.
func (x Element) Cmp(y Element) int {
	return x.z.Cmp(&y.z)
}

// BigInt returns the canonical representative of x in [0, P) as a fresh
// big.Int.
func (x Element) BigInt() *big.Int {
	var r big.Int
	x.z.BigInt(&r)
	return &r
}

// Bytes returns the canonical representative of x as a big-endian byte
// array.
func (x Element) Bytes() [Bytes]byte {
	return x.z.Bytes()
}

// Uint64 returns the value of x and true if it fits in a uint64.
func (x Element) Uint64() (uint64, bool) {
	if !x.z.IsUint64() {
		return 0, false
	}
	return x.z.Uint64(), true
}

func (x Element) String() string {
	return x.z.String()
}

// Text returns the canonical representative of x in the given base.
func (x Element) Text(base int) string {
	return x.z.Text(base)
}
