// SPDX-License-Identifier: MIT

package permute

import (
	"fmt"
	"math/big"
	"math/bits"
)

// Count returns the number of distinct permutations of m:
//
//	total! / Π count_i!
//
// computed as the product of binomials C(n_1+…+n_j, n_j) so that every
// intermediate value is itself a permutation count. Each multiplication is
// checked through a 128-bit product; nothing is ever silently truncated.
//
// Returns 0 for an empty or all-zero multiset.
//
// Errors: ErrInvalidCount; ErrOverflow when the result exceeds uint64
// (use CountBig for such inputs).
func Count(m Multiset) (uint64, error) {
	entries, total, err := normalize(m)
	if err != nil {
		return 0, err
	}
	if total == 0 {
		return 0, nil
	}

	var (
		result uint64 = 1
		placed uint64
		b      uint64
		hi     uint64
		e      entry
	)
	for _, e = range entries {
		placed += uint64(e.count)
		if b, err = binomial(placed, uint64(e.count)); err != nil {
			return 0, err
		}
		hi, result = bits.Mul64(result, b)
		if hi != 0 {
			return 0, fmt.Errorf("%w: %d items over %d labels", ErrOverflow, total, len(entries))
		}
	}

	return result, nil
}

// binomial computes C(n, k) exactly, failing with ErrOverflow when the
// result (or an exact intermediate quotient) needs more than 64 bits.
func binomial(n, k uint64) (uint64, error) {
	if k > n-k {
		k = n - k
	}

	var (
		r      uint64 = 1
		hi, lo uint64
		i      uint64
	)
	for i = 1; i <= k; i++ {
		// r·(n−k+i) is divisible by i: r = C(n−k+i−1, i−1) at this point.
		hi, lo = bits.Mul64(r, n-k+i)
		if hi >= i {
			return 0, fmt.Errorf("%w: C(%d,%d)", ErrOverflow, n, k)
		}
		r, _ = bits.Div64(hi, lo, i)
	}

	return r, nil
}

// CountBig is Count with arbitrary precision; it never overflows.
func CountBig(m Multiset) (*big.Int, error) {
	entries, total, err := normalize(m)
	if err != nil {
		return nil, err
	}
	if total == 0 {
		return new(big.Int), nil
	}

	result := big.NewInt(1)
	b := new(big.Int)
	placed := int64(0)
	for _, e := range entries {
		placed += int64(e.count)
		result.Mul(result, b.Binomial(placed, int64(e.count)))
	}

	return result, nil
}
