// SPDX-License-Identifier: MIT

package formula

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"unicode/utf8"
)

// Composition is an immutable element → count mapping.
//
// Invariants:
//   - keys are canonical symbols (first rune upper case, rest lower case);
//   - counts are strictly positive (zero entries are never stored).
//
// The zero value is the empty composition and is ready to use.
type Composition struct {
	counts map[string]int
}

// NewComposition builds a Composition from an arbitrary mapping.
// Symbols are canonicalized and merged (e.g. "na" and "Na" add up),
// zero counts are dropped, and any negative count fails with
// ErrNegativeComposition. A merged count that overflows int fails with
// ErrInvalidArgument. The input map is never retained.
//
// Complexity: O(k) for k input entries.
func NewComposition(counts map[string]int) (Composition, error) {
	out := make(map[string]int, len(counts))
	var (
		sym string
		n   int
	)
	for sym, n = range counts {
		if n < 0 {
			return Composition{}, fmt.Errorf("%w: %s=%d", ErrNegativeComposition, sym, n)
		}
		if sym == "" {
			return Composition{}, fmt.Errorf("%w: empty element symbol", ErrSyntax)
		}
		canon := CanonicalSymbol(sym)
		if out[canon] > math.MaxInt-n {
			return Composition{}, fmt.Errorf("%w: merged count of %s overflows", ErrInvalidArgument, canon)
		}
		out[canon] += n
	}

	return fromCounts(out)
}

// MustComposition is NewComposition for static tables; it panics on error.
func MustComposition(counts map[string]int) Composition {
	c, err := NewComposition(counts)
	if err != nil {
		panic(err)
	}

	return c
}

// fromCounts takes ownership of m, validates sign, and strips zeros.
func fromCounts(m map[string]int) (Composition, error) {
	var neg []string
	for sym, n := range m {
		switch {
		case n < 0:
			neg = append(neg, fmt.Sprintf("%s=%d", sym, n))
		case n == 0:
			delete(m, sym)
		}
	}
	if len(neg) > 0 {
		sort.Strings(neg)
		return Composition{}, fmt.Errorf("%w: %s", ErrNegativeComposition, strings.Join(neg, ", "))
	}
	if len(m) == 0 {
		return Composition{}, nil
	}

	return Composition{counts: m}, nil
}

// Count returns the count stored for sym (canonicalized); 0 when absent.
func (c Composition) Count(sym string) int {
	if sym == "" {
		return 0
	}

	return c.counts[CanonicalSymbol(sym)]
}

// Len returns the number of distinct elements with a non-zero count.
func (c Composition) Len() int { return len(c.counts) }

// IsEmpty reports whether the composition has no elements.
func (c Composition) IsEmpty() bool { return len(c.counts) == 0 }

// Elements returns the element symbols in ascending lexical order.
func (c Composition) Elements() []string {
	out := make([]string, 0, len(c.counts))
	for sym := range c.counts {
		out = append(out, sym)
	}
	sort.Strings(out)

	return out
}

// Counts returns a fresh copy of the underlying mapping.
func (c Composition) Counts() map[string]int {
	out := make(map[string]int, len(c.counts))
	for sym, n := range c.counts {
		out[sym] = n
	}

	return out
}

// Equal reports whether c and other hold exactly the same non-zero entries.
func (c Composition) Equal(other Composition) bool {
	if len(c.counts) != len(other.counts) {
		return false
	}
	for sym, n := range c.counts {
		if other.counts[sym] != n {
			return false
		}
	}

	return true
}

// String renders the composition in Hill notation.
func (c Composition) String() string { return FormatHill(c) }

// CanonicalSymbol normalizes an element symbol: first rune upper case,
// remainder lower case ("NA" → "Na", "c" → "C").
func CanonicalSymbol(sym string) string {
	if sym == "" {
		return ""
	}

	_, size := utf8.DecodeRuneInString(sym)

	return strings.ToUpper(sym[:size]) + strings.ToLower(sym[size:])
}
