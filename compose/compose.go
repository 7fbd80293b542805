// SPDX-License-Identifier: MIT

// Package compose enumerates weak compositions: every vector of `dim`
// non-negative integers that sums exactly to `total` ("stars and bars").
//
// Order is the left-to-right backtracking order: positions 0..dim−2 each
// range over 0..remaining ascending, the last position absorbs whatever is
// left, and earlier positions vary slowest. For total=3, dim=2:
//
//	(0,3) (1,2) (2,1) (3,0)
//
// There are C(total+dim−1, dim−1) vectors; Count returns that number.
//
// Enumeration is lazy: an Enumerator holds one vector and advances it in
// place, so memory is O(dim) no matter how many vectors exist.
package compose

import (
	"errors"
	"fmt"
	"iter"
	"math/bits"
)

var (
	// ErrInvalidArgument indicates a negative total or a dimension below one.
	ErrInvalidArgument = errors.New("compose: invalid argument")

	// ErrOverflow indicates the vector count does not fit in uint64.
	ErrOverflow = errors.New("compose: vector count overflows uint64")
)

func validate(total, dim int) error {
	if total < 0 {
		return fmt.Errorf("%w: total %d is negative", ErrInvalidArgument, total)
	}
	if dim < 1 {
		return fmt.Errorf("%w: dimension %d must be at least 1", ErrInvalidArgument, dim)
	}

	return nil
}

// Count returns C(total+dim−1, dim−1), the number of vectors Enumerate yields.
//
// Errors: ErrInvalidArgument; ErrOverflow.
func Count(total, dim int) (uint64, error) {
	if err := validate(total, dim); err != nil {
		return 0, err
	}

	n, k := uint64(total+dim-1), uint64(dim-1)
	if k > n-k {
		k = n - k
	}
	var r uint64 = 1
	for i := uint64(1); i <= k; i++ {
		hi, lo := bits.Mul64(r, n-k+i)
		if hi >= i {
			return 0, fmt.Errorf("%w: C(%d,%d)", ErrOverflow, n, k)
		}
		r, _ = bits.Div64(hi, lo, i)
	}

	return r, nil
}

// Enumerator yields the vectors of one (total, dim) pair in order.
// It is not safe for concurrent use; give each goroutine its own.
type Enumerator struct {
	vec     []int
	started bool
	done    bool
}

// New returns an Enumerator positioned before the first vector.
//
// Errors: ErrInvalidArgument.
func New(total, dim int) (*Enumerator, error) {
	if err := validate(total, dim); err != nil {
		return nil, err
	}
	vec := make([]int, dim)
	vec[dim-1] = total

	return &Enumerator{vec: vec}, nil
}

// Next returns the next vector as a fresh slice, or nil and false once all
// vectors have been produced.
func (e *Enumerator) Next() ([]int, bool) {
	if e.done {
		return nil, false
	}
	if !e.started {
		e.started = true
		return e.snapshot(), true
	}
	if !e.advance() {
		e.done = true
		return nil, false
	}

	return e.snapshot(), true
}

// advance moves to the successor of the current vector. The rightmost
// free position (0..dim−2) whose suffix still holds units is incremented,
// every free position after it resets to zero, and the last position takes
// the rest. It reports false after the final vector (total, 0, ..., 0).
func (e *Enumerator) advance() bool {
	last := len(e.vec) - 1
	suffix := e.vec[last]
	for j := last - 1; j >= 0; j-- {
		if suffix > 0 {
			e.vec[j]++
			for k := j + 1; k < last; k++ {
				e.vec[k] = 0
			}
			e.vec[last] = suffix - 1

			return true
		}
		suffix += e.vec[j]
	}

	return false
}

func (e *Enumerator) snapshot() []int {
	out := make([]int, len(e.vec))
	copy(out, e.vec)

	return out
}

// Enumerate returns a restartable lazy sequence of all vectors of dim
// non-negative integers summing to total. Each range starts over.
//
// Errors: ErrInvalidArgument.
func Enumerate(total, dim int) (iter.Seq[[]int], error) {
	if err := validate(total, dim); err != nil {
		return nil, err
	}

	return func(yield func([]int) bool) {
		e, _ := New(total, dim)
		for {
			v, ok := e.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}, nil
}
