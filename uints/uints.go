// Package uints implements checked fixed-width unsigned integers for the
// runtime. Widths 8 through 256 share one generic implementation
// parameterized by a width descriptor; arithmetic computes the exact
// integer result and fails closed when it leaves [0, 2^width). There is
// no silent wraparound, unlike raw field arithmetic in package felt.
package uints

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"
)

var (
	// ErrOverflow is returned when a result exceeds the width's upper bound.
	ErrOverflow = errors.New("uints: overflow")
	// ErrUnderflow is returned when a result would be negative.
	ErrUnderflow = errors.New("uints: underflow")
	// ErrDivisionByZero is returned by Div and Rem on a zero divisor.
	ErrDivisionByZero = errors.New("uints: division by zero")
	// ErrUnsupported is returned by operations that are not defined for a
	// width, such as Div and Rem on 256-bit integers.
	ErrUnsupported = errors.New("uints: unsupported operation")
)

// Bits describes a supported bit width. Implementations are empty structs
// so a width can parameterize Uint as a type argument.
type Bits interface {
	BitWidth() uint
}

// B8 provides type parametrization for 8-bit integers.
type B8 struct{}

func (B8) BitWidth() uint { return 8 }

// B16 provides type parametrization for 16-bit integers.
type B16 struct{}

func (B16) BitWidth() uint { return 16 }

// B32 provides type parametrization for 32-bit integers.
type B32 struct{}

func (B32) BitWidth() uint { return 32 }

// B64 provides type parametrization for 64-bit integers.
type B64 struct{}

func (B64) BitWidth() uint { return 64 }

// B128 provides type parametrization for 128-bit integers.
type B128 struct{}

func (B128) BitWidth() uint { return 128 }

// B256 provides type parametrization for 256-bit integers. Div and Rem are
// not defined at this width.
type B256 struct{}

func (B256) BitWidth() uint { return 256 }

// bounds maps a width to 2^width.
var bounds = make(map[uint]*big.Int, 6)

func init() {
	one := big.NewInt(1)
	for _, w := range []uint{8, 16, 32, 64, 128, 256} {
		bounds[w] = new(big.Int).Lsh(one, w)
	}
}

func widthOf[T Bits]() uint {
	var t T
	return t.BitWidth()
}

func boundOf[T Bits]() *big.Int {
	return bounds[widthOf[T]()]
}

func nameOf[T Bits]() string {
	return "u" + strconv.FormatUint(uint64(widthOf[T]()), 10)
}

// Uint is an unsigned integer constrained to [0, 2^width), the width being
// selected by the type parameter. The zero value is 0. Values are
// immutable; arithmetic returns fresh values and reports out-of-range
// results as errors instead of wrapping.
type Uint[T Bits] struct {
	v big.Int
}

// Width aliases for the supported integer types.
type (
	U8   = Uint[B8]
	U16  = Uint[B16]
	U32  = Uint[B32]
	U64  = Uint[B64]
	U128 = Uint[B128]
	U256 = Uint[B256]

	// Usize is the 32-bit index type.
	Usize = Uint[B32]
)

// New returns the Uint representing v, or ErrOverflow when v does not fit
// the width.
func New[T Bits](v uint64) (Uint[T], error) {
	if w := widthOf[T](); w < 64 && v>>w != 0 {
		return Uint[T]{}, fmt.Errorf("%s: literal %d: %w", nameOf[T](), v, ErrOverflow)
	}
	var r Uint[T]
	r.v.SetUint64(v)
	return r, nil
}

// MustNew is New, panicking on out-of-range input. Intended for constants.
func MustNew[T Bits](v uint64) Uint[T] {
	r, err := New[T](v)
	if err != nil {
		panic(err)
	}
	return r
}

// FromBigInt returns the Uint representing v, reporting false when v is
// negative or does not fit the width. v is copied.
func FromBigInt[T Bits](v *big.Int) (Uint[T], bool) {
	if v.Sign() < 0 || v.Cmp(boundOf[T]()) >= 0 {
		return Uint[T]{}, false
	}
	var r Uint[T]
	r.v.Set(v)
	return r, true
}

// Zero returns the zero of the width.
func Zero[T Bits]() Uint[T] {
	return Uint[T]{}
}

// Max returns 2^width - 1, the largest representable value.
func Max[T Bits]() Uint[T] {
	var r Uint[T]
	r.v.Sub(boundOf[T](), big.NewInt(1))
	return r
}

// checked normalizes an exact integer result into a Uint, translating
// range violations into ErrUnderflow / ErrOverflow.
func checked[T Bits](r *big.Int, op string) (Uint[T], error) {
	if r.Sign() < 0 {
		return Uint[T]{}, fmt.Errorf("%s: %s: %w", nameOf[T](), op, ErrUnderflow)
	}
	if r.Cmp(boundOf[T]()) >= 0 {
		return Uint[T]{}, fmt.Errorf("%s: %s: %w", nameOf[T](), op, ErrOverflow)
	}
	var out Uint[T]
	out.v.Set(r)
	return out, nil
}

// Add returns x + y, or ErrOverflow when the sum reaches 2^width.
func (x Uint[T]) Add(y Uint[T]) (Uint[T], error) {
	var r big.Int
	r.Add(&x.v, &y.v)
	return checked[T](&r, "add")
}

// Sub returns x - y, or ErrUnderflow when y exceeds x.
func (x Uint[T]) Sub(y Uint[T]) (Uint[T], error) {
	var r big.Int
	r.Sub(&x.v, &y.v)
	return checked[T](&r, "sub")
}

// Mul returns x * y, or ErrOverflow when the product reaches 2^width.
func (x Uint[T]) Mul(y Uint[T]) (Uint[T], error) {
	var r big.Int
	r.Mul(&x.v, &y.v)
	return checked[T](&r, "mul")
}

// Div returns the truncating integer quotient x / y. This is integer
// division, not field division. Fails with ErrDivisionByZero on a zero
// divisor and with ErrUnsupported at width 256.
func (x Uint[T]) Div(y Uint[T]) (Uint[T], error) {
	if err := divPrecheck[T](&y.v, "div"); err != nil {
		return Uint[T]{}, err
	}
	var r big.Int
	r.Quo(&x.v, &y.v)
	return checked[T](&r, "div")
}

// Rem returns the remainder of truncating integer division x / y. Fails
// with ErrDivisionByZero on a zero divisor and with ErrUnsupported at
// width 256.
func (x Uint[T]) Rem(y Uint[T]) (Uint[T], error) {
	if err := divPrecheck[T](&y.v, "rem"); err != nil {
		return Uint[T]{}, err
	}
	var r big.Int
	r.Rem(&x.v, &y.v)
	return checked[T](&r, "rem")
}

func divPrecheck[T Bits](y *big.Int, op string) error {
	if widthOf[T]() == 256 {
		return fmt.Errorf("%s: %s: %w", nameOf[T](), op, ErrUnsupported)
	}
	if y.Sign() == 0 {
		return fmt.Errorf("%s: %s: %w", nameOf[T](), op, ErrDivisionByZero)
	}
	return nil
}

// BitWidth returns the width of x in bits.
func (x Uint[T]) BitWidth() uint {
	return widthOf[T]()
}

// BigInt returns the value of x as a fresh big.Int.
func (x Uint[T]) BigInt() *big.Int {
	return new(big.Int).Set(&x.v)
}

// Uint64 returns the value of x and true if it fits in a uint64.
func (x Uint[T]) Uint64() (uint64, bool) {
	if !x.v.IsUint64() {
		return 0, false
	}
	return x.v.Uint64(), true
}

// IsZero reports whether x is 0.
func (x Uint[T]) IsZero() bool {
	return x.v.Sign() == 0
}

// Equal reports whether x and y hold the same value.
func (x Uint[T]) Equal(y Uint[T]) bool {
	return x.v.Cmp(&y.v) == 0
}

// Cmp compares x and y and returns -1, 0 or 1.
func (x Uint[T]) Cmp(y Uint[T]) int {
	return x.v.Cmp(&y.v)
}

func (x Uint[T]) String() string {
	return x.v.String()
}
