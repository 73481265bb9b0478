package uints_test

import (
	"errors"
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"

	"github.com/consensys/feltrun/uints"
)

func TestNewRangeChecked(t *testing.T) {
	assert := require.New(t)

	x, err := uints.New[uints.B8](255)
	assert.NoError(err)
	assert.Equal("255", x.String())

	_, err = uints.New[uints.B8](256)
	assert.ErrorIs(err, uints.ErrOverflow)

	_, err = uints.New[uints.B16](1 << 16)
	assert.ErrorIs(err, uints.ErrOverflow)

	// any uint64 fits at width >= 64
	_, err = uints.New[uints.B64](^uint64(0))
	assert.NoError(err)

	assert.Panics(func() { uints.MustNew[uints.B8](300) })
}

func TestSubUnderflow(t *testing.T) {
	// 1 - 3 cannot be represented in [0, 256)
	one := uints.MustNew[uints.B8](1)
	three := uints.MustNew[uints.B8](3)
	_, err := one.Sub(three)
	require.ErrorIs(t, err, uints.ErrUnderflow)

	// and never wraps: the failing op yields no value at all
	r, err := three.Sub(one)
	require.NoError(t, err)
	require.Equal(t, "2", r.String())
}

func TestAddOverflow(t *testing.T) {
	assert := require.New(t)

	max := uints.Max[uints.B8]()
	_, err := max.Add(uints.MustNew[uints.B8](1))
	assert.ErrorIs(err, uints.ErrOverflow)

	r, err := max.Add(uints.Zero[uints.B8]())
	assert.NoError(err)
	assert.True(r.Equal(max))

	// 128-bit boundary
	max128 := uints.Max[uints.B128]()
	_, err = max128.Add(uints.MustNew[uints.B128](1))
	assert.ErrorIs(err, uints.ErrOverflow)
}

func TestMulOverflow(t *testing.T) {
	x := uints.MustNew[uints.B16](300)
	_, err := x.Mul(x) // 90000 > 65535
	require.ErrorIs(t, err, uints.ErrOverflow)

	y := uints.MustNew[uints.B16](255)
	r, err := y.Mul(uints.MustNew[uints.B16](257))
	require.NoError(t, err)
	require.Equal(t, "65535", r.String())
}

func TestDivRem(t *testing.T) {
	assert := require.New(t)

	x := uints.MustNew[uints.B32](17)
	y := uints.MustNew[uints.B32](5)

	q, err := x.Div(y)
	assert.NoError(err)
	assert.Equal("3", q.String()) // truncating, not field division

	r, err := x.Rem(y)
	assert.NoError(err)
	assert.Equal("2", r.String())

	_, err = x.Div(uints.Zero[uints.B32]())
	assert.ErrorIs(err, uints.ErrDivisionByZero)
	_, err = x.Rem(uints.Zero[uints.B32]())
	assert.ErrorIs(err, uints.ErrDivisionByZero)
}

func TestU256DivUnsupported(t *testing.T) {
	x := uints.MustNew[uints.B256](10)
	y := uints.MustNew[uints.B256](2)

	_, err := x.Div(y)
	require.ErrorIs(t, err, uints.ErrUnsupported)
	_, err = x.Rem(y)
	require.ErrorIs(t, err, uints.ErrUnsupported)

	// the other operations stay defined at width 256
	s, err := x.Add(y)
	require.NoError(t, err)
	require.Equal(t, "12", s.String())
}

func TestMax(t *testing.T) {
	want := new(big.Int).Lsh(big.NewInt(1), 256)
	want.Sub(want, big.NewInt(1))
	require.Equal(t, want, uints.Max[uints.B256]().BigInt())

	u64, ok := uints.Max[uints.B64]().Uint64()
	require.True(t, ok)
	require.Equal(t, ^uint64(0), u64)
}

func TestUsizeIsU32(t *testing.T) {
	var idx uints.Usize = uints.MustNew[uints.B32](7)
	require.Equal(t, uint(32), idx.BitWidth())
}

func TestCheckedArithmeticProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500

	properties := gopter.NewProperties(parameters)

	properties.Property("u8 add overflows iff x+y >= 2^8, else exact", prop.ForAll(
		func(x, y uint8) bool {
			sum := uint64(x) + uint64(y)
			r, err := uints.MustNew[uints.B8](uint64(x)).Add(uints.MustNew[uints.B8](uint64(y)))
			if sum >= 1<<8 {
				return errors.Is(err, uints.ErrOverflow)
			}
			v, ok := r.Uint64()
			return err == nil && ok && v == sum
		},
		gen.UInt8(), gen.UInt8(),
	))

	properties.Property("u8 sub underflows iff y > x, else exact", prop.ForAll(
		func(x, y uint8) bool {
			r, err := uints.MustNew[uints.B8](uint64(x)).Sub(uints.MustNew[uints.B8](uint64(y)))
			if y > x {
				return errors.Is(err, uints.ErrUnderflow)
			}
			v, ok := r.Uint64()
			return err == nil && ok && v == uint64(x-y)
		},
		gen.UInt8(), gen.UInt8(),
	))

	properties.Property("u64 mul overflows iff the exact product needs more than 64 bits", prop.ForAll(
		func(x, y uint64) bool {
			exact := new(big.Int).Mul(new(big.Int).SetUint64(x), new(big.Int).SetUint64(y))
			r, err := uints.MustNew[uints.B64](x).Mul(uints.MustNew[uints.B64](y))
			if exact.BitLen() > 64 {
				return errors.Is(err, uints.ErrOverflow)
			}
			return err == nil && r.BigInt().Cmp(exact) == 0
		},
		gen.UInt64(), gen.UInt64(),
	))

	properties.Property("u32 div/rem reconstruct the dividend", prop.ForAll(
		func(x, y uint32) bool {
			a := uints.MustNew[uints.B32](uint64(x))
			b := uints.MustNew[uints.B32](uint64(y))
			if y == 0 {
				_, err := a.Div(b)
				return errors.Is(err, uints.ErrDivisionByZero)
			}
			q, err := a.Div(b)
			if err != nil {
				return false
			}
			r, err := a.Rem(b)
			if err != nil {
				return false
			}
			qb, _ := q.Mul(b)
			back, _ := qb.Add(r)
			return back.Equal(a)
		},
		gen.UInt32(), gen.UInt32(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
