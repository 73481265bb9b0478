package uints

import (
	"fmt"

	"github.com/consensys/feltrun/felt"
)

// FeltSized constrains the widths whose full range fits in the field, so
// the embedding into a felt is lossless. 256-bit integers exceed the
// 252-bit field and are excluded; use TryFelt for those.
type FeltSized interface {
	B8 | B16 | B32 | B64 | B128
	Bits
}

// ToFelt losslessly embeds x into the field. Defined only for widths that
// fit the field; the conversion never fails.
func ToFelt[T FeltSized](x Uint[T]) felt.Element {
	return felt.FromBigInt(&x.v)
}

// TryFelt embeds x into the field when its value is a canonical field
// representative, reporting false otherwise. For every FeltSized width it
// always succeeds and agrees with ToFelt; only 256-bit values can fall
// outside the field.
func TryFelt[T Bits](x Uint[T]) (felt.Element, bool) {
	if x.v.Cmp(felt.Modulus()) >= 0 {
		return felt.Element{}, false
	}
	return felt.FromBigInt(&x.v), true
}

// FromFelt converts a field value to a checked integer, reporting false
// when the value does not fit the width. It never reduces or truncates: an
// out-of-range source yields no value rather than a wrong one.
func FromFelt[T Bits](v felt.Element) (Uint[T], bool) {
	return FromBigInt[T](v.BigInt())
}

// Widen losslessly converts x to a strictly wider width. Instantiating it
// with a destination that is not strictly wider is a programmer error and
// panics; for runtime-dependent conversions use TryConvert.
func Widen[To, From Bits](x Uint[From]) Uint[To] {
	if widthOf[To]() <= widthOf[From]() {
		panic(fmt.Sprintf("uints: invalid lossless conversion %s -> %s", nameOf[From](), nameOf[To]()))
	}
	var r Uint[To]
	r.v.Set(&x.v)
	return r
}

// TryConvert converts x to any width, reporting false when the value does
// not fit the destination. On pairs where Widen is defined it always
// succeeds and agrees with Widen.
func TryConvert[To, From Bits](x Uint[From]) (Uint[To], bool) {
	return FromBigInt[To](&x.v)
}
