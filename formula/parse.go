// SPDX-License-Identifier: MIT

package formula

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// snippetLen bounds the offending text quoted in syntax errors.
const snippetLen = 5

// ParseFormula tokenizes text left to right into a Composition.
//
// Token grammar (whitespace anywhere is ignored):
//
//	token  = letter [lower] {digit}
//	letter = "A".."Z" | "a".."z"
//	lower  = "a".."z"
//
// A missing count means 1. Symbols are canonicalized ("na" → "Na") and
// repeated occurrences of the same element are summed ("CH3CH3" → C2H6).
//
// Errors (all wrap ErrSyntax):
//   - empty or whitespace-only input;
//   - text at some position does not start a token (the snippet is reported);
//   - a count, or the sum of repeated counts of one element, that does
//     not fit into int.
//
// Complexity: O(len(text)).
func ParseFormula(text string) (Composition, error) {
	cleaned := strings.Join(strings.Fields(text), "")
	if cleaned == "" {
		return Composition{}, fmt.Errorf("%w: formula is empty", ErrSyntax)
	}

	counts := make(map[string]int)
	pos := 0
	for pos < len(cleaned) {
		sym, amount, next, err := scanToken(cleaned, pos)
		if err != nil {
			return Composition{}, fmt.Errorf("%w in formula %q", err, text)
		}
		if counts[sym] > math.MaxInt-amount {
			return Composition{}, fmt.Errorf("%w: total count of %s overflows in formula %q", ErrSyntax, sym, text)
		}
		counts[sym] += amount
		pos = next
	}

	return fromCounts(counts)
}

// MustParse is ParseFormula for package-level constants; it panics on error.
func MustParse(text string) Composition {
	c, err := ParseFormula(text)
	if err != nil {
		panic(err)
	}

	return c
}

// scanToken reads one token starting at pos and returns the canonical
// symbol, its count, and the position right after the token.
func scanToken(s string, pos int) (sym string, amount int, next int, err error) {
	i := pos

	// 1. Leading letter (either case; canonicalized below).
	if !isASCIILetter(s[i]) {
		return "", 0, pos, invalidToken(s, pos)
	}
	i++

	// 2. Optional lowercase continuation.
	if i < len(s) && s[i] >= 'a' && s[i] <= 'z' {
		i++
	}
	sym = CanonicalSymbol(s[pos:i])

	// 3. Optional decimal count.
	start := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if start == i {
		return sym, 1, i, nil
	}
	amount, convErr := strconv.Atoi(s[start:i])
	if convErr != nil {
		return "", 0, pos, fmt.Errorf("%w: count %q for %s out of range", ErrSyntax, s[start:i], sym)
	}
	if amount < 0 {
		return "", 0, pos, fmt.Errorf("%w: negative count for %s", ErrSyntax, sym)
	}

	return sym, amount, i, nil
}

func invalidToken(s string, pos int) error {
	end := pos + snippetLen
	if end > len(s) {
		end = len(s)
	}

	return fmt.Errorf("%w: invalid token %q", ErrSyntax, s[pos:end])
}

func isASCIILetter(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}
