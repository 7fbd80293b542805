// SPDX-License-Identifier: MIT

package permute

import "iter"

// Enumerator produces the distinct permutations of one multiset, one per
// Next call, in lexicographic label order.
//
// It is a depth-first backtracking search made explicit: pick[d] is the
// label index placed at depth d and cursor[d] the next index to try there.
// Descending decrements the chosen label's remaining count; retreating
// restores it. All state is private to the Enumerator, so independent
// Enumerators never interfere (one per goroutine if a host parallelizes).
//
// An Enumerator is not safe for concurrent use.
type Enumerator struct {
	labels []string
	remain []int // remaining count per label
	pick   []int // label index chosen at each depth
	cursor []int // next label index to try at each depth
	depth  int
	total  int
	leaf   bool // the previous Next returned a complete sequence
	done   bool
}

// New validates m and returns an Enumerator positioned before the first
// permutation. Empty or all-zero multisets yield no permutations.
//
// Errors: ErrInvalidCount.
func New(m Multiset) (*Enumerator, error) {
	entries, total, err := normalize(m)
	if err != nil {
		return nil, err
	}

	return newEnumerator(entries, total), nil
}

func newEnumerator(entries []entry, total int) *Enumerator {
	e := &Enumerator{
		labels: make([]string, len(entries)),
		remain: make([]int, len(entries)),
		pick:   make([]int, total),
		cursor: make([]int, total+1),
		total:  total,
		done:   total == 0,
	}
	for i, en := range entries {
		e.labels[i] = en.label
		e.remain[i] = en.count
	}

	return e
}

// Len returns the length of every produced sequence.
func (e *Enumerator) Len() int { return e.total }

// Next returns the next permutation and true, or nil and false once the
// enumeration is exhausted. The returned Sequence is a fresh slice owned
// by the caller.
func (e *Enumerator) Next() (Sequence, bool) {
	if e.done {
		return nil, false
	}
	if e.leaf {
		// Undo the last placement of the sequence we just returned.
		e.retreat()
		e.leaf = false
	}

	for {
		// 1. Complete arrangement: hand out a copy.
		if e.depth == e.total {
			e.leaf = true
			return e.current(), true
		}

		// 2. Find the next label at this depth that still has copies left.
		i := e.cursor[e.depth]
		for i < len(e.labels) && e.remain[i] == 0 {
			i++
		}

		// 3. Descend with it.
		if i < len(e.labels) {
			e.pick[e.depth] = i
			e.remain[i]--
			e.depth++
			e.cursor[e.depth] = 0
			continue
		}

		// 4. Depth exhausted: backtrack, or finish at the root.
		if e.depth == 0 {
			e.done = true
			return nil, false
		}
		e.retreat()
	}
}

// retreat pops one level, restoring the count of the label placed there
// and advancing that level's cursor past it.
func (e *Enumerator) retreat() {
	e.depth--
	i := e.pick[e.depth]
	e.remain[i]++
	e.cursor[e.depth] = i + 1
}

func (e *Enumerator) current() Sequence {
	out := make(Sequence, e.total)
	for d, i := range e.pick {
		out[d] = e.labels[i]
	}

	return out
}

// Enumerate validates m once and returns a restartable sequence of its
// permutations: every range over the result starts a fresh Enumerator.
// Breaking out of the loop early stops the search without further work.
//
// Errors: ErrInvalidCount.
func Enumerate(m Multiset) (iter.Seq[Sequence], error) {
	entries, total, err := normalize(m)
	if err != nil {
		return nil, err
	}

	return func(yield func(Sequence) bool) {
		e := newEnumerator(entries, total)
		for {
			seq, ok := e.Next()
			if !ok || !yield(seq) {
				return
			}
		}
	}, nil
}
