// Package serde serializes runtime values to and from felt sequences, the
// canonical exchange format between the runtime and its host. Every value
// flattens to one or more field scalars appended to a write-once array;
// deserialization consumes the array from the front in the same order.
//
// Encoding: a felt, a bool and a checked integer up to 128 bits each take
// one element; a 256-bit integer takes two, low 128 bits first.
package serde

import (
	"math/big"

	"github.com/consensys/feltrun/array"
	"github.com/consensys/feltrun/felt"
	"github.com/consensys/feltrun/uints"
)

// mask128 is 2^128 - 1, the low half of a 256-bit split.
var mask128 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))

// SerializeFelt appends the encoding of v to out.
func SerializeFelt(v felt.Element, out *array.Array[felt.Element]) {
	out.Append(v)
}

// SerializeBool appends the encoding of b to out: the felt 0 or 1.
func SerializeBool(b felt.Bool, out *array.Array[felt.Element]) {
	out.Append(b.Felt())
}

// SerializeUint appends the encoding of x to out: one felt for widths up
// to 128 bits, two felts (low half, then high half) for 256 bits.
func SerializeUint[T uints.Bits](x uints.Uint[T], out *array.Array[felt.Element]) {
	if x.BitWidth() <= 128 {
		// always fits the field at these widths
		f, _ := uints.TryFelt(x)
		out.Append(f)
		return
	}
	v := x.BigInt()
	var lo, hi big.Int
	lo.And(v, mask128)
	hi.Rsh(v, 128)
	out.Append(felt.FromBigInt(&lo))
	out.Append(felt.FromBigInt(&hi))
}

// Deserializer consumes a felt sequence from the front, one value at a
// time. Read methods report false on underrun or on an encoding that does
// not denote a value of the requested type; a false read may have consumed
// elements, so a malformed stream aborts deserialization rather than
// resuming mid-value.
type Deserializer struct {
	src *array.Array[felt.Element]
}

// NewDeserializer returns a Deserializer consuming src.
func NewDeserializer(src *array.Array[felt.Element]) *Deserializer {
	return &Deserializer{src: src}
}

// Remaining returns the number of unconsumed elements.
func (d *Deserializer) Remaining() int {
	return d.src.Len()
}

// ReadFelt consumes one element.
func (d *Deserializer) ReadFelt() (felt.Element, bool) {
	return d.src.PopFront()
}

// ReadBool consumes one element, which must be 0 or 1.
func (d *Deserializer) ReadBool() (felt.Bool, bool) {
	v, ok := d.src.PopFront()
	if !ok {
		return felt.False(), false
	}
	if v.IsZero() {
		return felt.False(), true
	}
	if v.IsOne() {
		return felt.True(), true
	}
	return felt.False(), false
}

// ReadUint consumes the encoding of a checked integer of the instantiated
// width: one element for widths up to 128 bits, two for 256 bits. Reports
// false when an element is out of the width's range.
func ReadUint[T uints.Bits](d *Deserializer) (uints.Uint[T], bool) {
	if uints.Zero[T]().BitWidth() <= 128 {
		v, ok := d.src.PopFront()
		if !ok {
			return uints.Uint[T]{}, false
		}
		return uints.FromFelt[T](v)
	}

	lo, ok := d.src.PopFront()
	if !ok {
		return uints.Uint[T]{}, false
	}
	hi, ok := d.src.PopFront()
	if !ok {
		return uints.Uint[T]{}, false
	}
	loV, hiV := lo.BigInt(), hi.BigInt()
	if loV.BitLen() > 128 || hiV.BitLen() > 128 {
		return uints.Uint[T]{}, false
	}
	var v big.Int
	v.Lsh(hiV, 128)
	v.Or(&v, loV)
	return uints.FromBigInt[T](&v)
}
