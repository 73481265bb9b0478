package array_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/consensys/feltrun/array"
	"github.com/consensys/feltrun/felt"
	"github.com/consensys/feltrun/uints"
)

func TestFIFO(t *testing.T) {
	assert := require.New(t)

	a := array.New[felt.Element]()
	a.Append(felt.New(1))
	a.Append(felt.New(2))
	a.Append(felt.New(3))
	assert.Equal(3, a.Len())

	for i, want := range []uint64{1, 2, 3} {
		v, ok := a.PopFront()
		assert.True(ok, "pop %d", i)
		assert.True(v.Equal(felt.New(want)))
	}

	_, ok := a.PopFront()
	assert.False(ok)
	assert.True(a.IsEmpty())

	// no terminal state: the array keeps working after draining
	a.Append(felt.New(4))
	assert.Equal(1, a.Len())
	v, ok := a.PopFront()
	assert.True(ok)
	assert.True(v.Equal(felt.New(4)))
}

func TestPopFrontEmpty(t *testing.T) {
	var a array.Array[int] // zero value is usable
	v, ok := a.PopFront()
	require.False(t, ok)
	require.Zero(t, v)
	require.Equal(t, 0, a.Len())
}

func TestGetNeverPanics(t *testing.T) {
	a := array.Of(10, 20, 30)

	for i := -2; i < 6; i++ {
		v, ok := a.Get(i)
		if i >= 0 && i < a.Len() {
			require.True(t, ok)
			require.Equal(t, (i+1)*10, v)
		} else {
			require.False(t, ok)
			require.Zero(t, v)
		}
	}
}

func TestGetIndexesRetainedElements(t *testing.T) {
	// indices are relative to the front cursor, not the backing arena
	a := array.Of("a", "b", "c")
	_, _ = a.PopFront()

	v, ok := a.Get(0)
	require.True(t, ok)
	require.Equal(t, "b", v)

	_, ok = a.Get(2)
	require.False(t, ok)
}

func TestAtMatchesGet(t *testing.T) {
	a := array.Of(7, 8, 9)
	for i := 0; i < a.Len(); i++ {
		v, ok := a.Get(i)
		require.True(t, ok)
		require.Equal(t, v, a.At(i))
	}
}

func TestAtPanicsOutOfBounds(t *testing.T) {
	a := array.Of(1, 2)

	for _, i := range []int{-1, 2, 100} {
		func() {
			defer func() {
				r := recover()
				require.NotNil(t, r, "At(%d) must panic", i)
				oob, ok := r.(*array.OutOfBoundsError)
				require.True(t, ok)
				require.Equal(t, i, oob.Index)
				require.Equal(t, 2, oob.Len)
				require.Contains(t, oob.Error(), "out of bounds")
			}()
			a.At(i)
		}()
	}
}

func TestSingleElementU128(t *testing.T) {
	assert := require.New(t)

	a := array.New[uints.U128]()
	a.Append(uints.MustNew[uints.B128](100))

	v, ok := a.Get(a.Len() - 1)
	assert.True(ok)
	assert.Equal("100", v.String())

	// one past the end: the fail-safe accessor reports absence
	_, ok = a.Get(a.Len())
	assert.False(ok)
}

func TestWriteOnceAcrossPop(t *testing.T) {
	// a popped slot is never reassigned: appending after popping grows the
	// arena instead of reusing the vacated positions
	a := array.New[int]()
	for i := 0; i < 100; i++ {
		a.Append(i)
		if i%2 == 1 {
			v, ok := a.PopFront()
			require.True(t, ok)
			require.Equal(t, i/2, v)
		}
	}
	require.Equal(t, 50, a.Len())
	for i := 0; i < a.Len(); i++ {
		require.Equal(t, 50+i, a.At(i))
	}
}
