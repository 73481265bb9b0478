// Package array implements the append-only, write-once sequence container
// of the runtime. An Array is an arena of single-assignment slots: values
// enter at the tail via Append, leave from the front via PopFront, and a
// written slot is never overwritten or reused. Reads come in two
// disciplines per call site: Get reports out-of-bounds as an absent
// result, At treats it as fatal.
package array

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/consensys/feltrun/debug"
	idebug "github.com/consensys/feltrun/internal/debug"
)

// OutOfBoundsError is the panic payload of At on an out-of-range index.
type OutOfBoundsError struct {
	Index int
	Len   int

	// Stack is the trimmed call stack at the fault site, captured only in
	// debug builds.
	Stack string
}

func (e *OutOfBoundsError) Error() string {
	s := fmt.Sprintf("array: index %d out of bounds [0, %d)", e.Index, e.Len)
	if e.Stack != "" {
		s += "\n" + e.Stack
	}
	return s
}

// Array is an append-only sequence of T. The zero value is an empty array
// ready to use.
//
// Slots are written exactly once: Append always targets a fresh slot, no
// operation mutates a written slot, and popped slots are never reassigned.
// The front cursor marks the oldest retained element; everything before it
// has been handed off to a caller via PopFront.
//
// An Array is owned by one goroutine at a time; callers needing sharing
// must synchronize externally.
type Array[T any] struct {
	slots []T
	front int

	// live marks slots that hold an element not yet popped. It backs the
	// internal single-assignment assertions checked in debug builds.
	live *bitset.BitSet
}

// New returns an empty array.
func New[T any]() *Array[T] {
	return &Array[T]{live: bitset.New(0)}
}

// Of returns an array holding vs in order.
func Of[T any](vs ...T) *Array[T] {
	a := New[T]()
	for _, v := range vs {
		a.Append(v)
	}
	return a
}

// Len returns the number of retained elements.
func (a *Array[T]) Len() int {
	return len(a.slots) - a.front
}

// IsEmpty reports whether the array retains no elements.
func (a *Array[T]) IsEmpty() bool {
	return a.Len() == 0
}

// Append adds v in a fresh slot at the tail. It always succeeds and is the
// only growth operation; there is no insertion at other positions.
func (a *Array[T]) Append(v T) {
	pos := uint(len(a.slots))
	if a.live == nil {
		a.live = bitset.New(pos + 1)
	}
	idebug.Assert(!a.live.Test(pos), "array: slot written twice")
	a.slots = append(a.slots, v)
	a.live.Set(pos)
}

// PopFront removes and returns the oldest retained element, reporting
// false on an empty array. It never panics. The vacated slot's ownership
// is cleared and the slot is never reused for different content.
func (a *Array[T]) PopFront() (T, bool) {
	if a.Len() == 0 {
		var zero T
		return zero, false
	}
	pos := uint(a.front)
	idebug.Assert(a.live.Test(pos), "array: pop of vacated slot")
	v := a.slots[a.front]
	var zero T
	a.slots[a.front] = zero // release ownership for the collector
	a.live.Clear(pos)
	a.front++
	return v, true
}

// Get returns a read-only snapshot of the element at index i, reporting
// false when i is out of [0, Len()). It never panics; use At for the
// fail-fast discipline.
func (a *Array[T]) Get(i int) (T, bool) {
	if i < 0 || i >= a.Len() {
		var zero T
		return zero, false
	}
	return a.slots[a.front+i], true
}

// At returns a read-only snapshot of the element at index i, panicking
// with *OutOfBoundsError when i is out of [0, Len()). The success path is
// identical to Get; only the out-of-bounds handling differs, so callers
// choose fail-fast or fail-safe per call site.
func (a *Array[T]) At(i int) T {
	v, ok := a.Get(i)
	if !ok {
		e := &OutOfBoundsError{Index: i, Len: a.Len()}
		if debug.Debug {
			e.Stack = debug.Stack()
		}
		panic(e)
	}
	return v
}
