// SPDX-License-Identifier: MIT

package formula

import (
	"fmt"
	"math"
)

// Water loss per condensation step.
const (
	waterH = 2
	waterO = 1
)

// Scale multiplies every count of c by factor.
//
// Errors:
//   - ErrInvalidArgument if factor < 0, if c carries a negative count
//     (unreachable for values built by this package), or if a product
//     overflows int.
//
// Complexity: O(k) for k elements.
func Scale(c Composition, factor int) (Composition, error) {
	if factor < 0 {
		return Composition{}, fmt.Errorf("%w: scale factor %d is negative", ErrInvalidArgument, factor)
	}

	out := make(map[string]int, len(c.counts))
	for sym, n := range c.counts {
		if n < 0 {
			return Composition{}, fmt.Errorf("%w: source count %s=%d is negative", ErrInvalidArgument, sym, n)
		}
		if factor > 0 && n > math.MaxInt/factor {
			return Composition{}, fmt.Errorf("%w: %s=%d × %d overflows", ErrInvalidArgument, sym, n, factor)
		}
		out[sym] = n * factor
	}

	return fromCounts(out)
}

// Pool returns the element-wise sum of all compositions.
// Pool() with no arguments returns the empty composition.
//
// Errors: ErrInvalidArgument when a sum overflows int.
//
// Complexity: O(Σ k_i).
func Pool(cs ...Composition) (Composition, error) {
	out := make(map[string]int)
	for _, c := range cs {
		for sym, n := range c.counts {
			if out[sym] > math.MaxInt-n {
				return Composition{}, fmt.Errorf("%w: pooled count of %s overflows", ErrInvalidArgument, sym)
			}
			out[sym] += n
		}
	}

	return fromCounts(out)
}

// Dehydrate models condensing `units` monomers into one linear chain:
// (units−1) water molecules are lost, i.e. H drops by 2·(units−1) and
// O by (units−1). A single unit loses nothing and c is returned as is.
//
// Errors:
//   - ErrInvalidArgument if units < 1 or the water loss overflows int.
//   - ErrNegativeComposition if H or O cannot cover the loss; the error
//     names every element that would go negative.
func Dehydrate(c Composition, units int) (Composition, error) {
	if units < 1 {
		return Composition{}, fmt.Errorf("%w: chain length %d must be at least 1", ErrInvalidArgument, units)
	}
	if units == 1 {
		return c, nil
	}

	loss := units - 1
	if loss > math.MaxInt/waterH {
		return Composition{}, fmt.Errorf("%w: water loss of %d units overflows", ErrInvalidArgument, units)
	}
	out := c.Counts()
	out["H"] -= waterH * loss
	out["O"] -= waterO * loss

	res, err := fromCounts(out)
	if err != nil {
		return Composition{}, fmt.Errorf("dehydrate by %d units: %w", units, err)
	}

	return res, nil
}

// AddModifier parses modifier and adds it once to c.
//
// Errors: ErrSyntax from parsing; ErrInvalidArgument when a sum overflows int.
func AddModifier(c Composition, modifier string) (Composition, error) {
	mod, err := ParseFormula(modifier)
	if err != nil {
		return Composition{}, fmt.Errorf("modifier: %w", err)
	}

	out := c.Counts()
	for sym, n := range mod.counts {
		if out[sym] > math.MaxInt-n {
			return Composition{}, fmt.Errorf("%w: count of %s overflows adding modifier %q", ErrInvalidArgument, sym, modifier)
		}
		out[sym] += n
	}

	res, err := fromCounts(out)
	if err != nil {
		return Composition{}, fmt.Errorf("add modifier %q: %w", modifier, err)
	}

	return res, nil
}
