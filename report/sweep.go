// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"iter"
	"math/bits"

	"github.com/katalvlaran/glycoenum/compose"
)

// Compositions yields one Result per composition of every total in
// [MinTotal, MaxTotal], totals ascending and vectors in compose order.
// All-zero vectors are skipped. The first error is yielded with a nil
// Result and ends the sequence; so does a cancelled Ctx.
func (b *Builder) Compositions() iter.Seq2[*Result, error] {
	return func(yield func(*Result, error) bool) {
		for total := b.opts.MinTotal; total <= b.opts.MaxTotal; total++ {
			vectors, err := compose.Enumerate(total, NumUnits)
			if err != nil {
				yield(nil, err)
				return
			}
			for v := range vectors {
				if err := b.opts.Ctx.Err(); err != nil {
					yield(nil, err)
					return
				}
				c, err := CountsFromVector(v)
				if err != nil {
					yield(nil, err)
					return
				}
				if c.Total() == 0 {
					continue
				}
				res, err := b.Calculate(c)
				if err != nil {
					yield(nil, fmt.Errorf("composition %s: %w", c, err))
					return
				}
				if !yield(res, nil) {
					return
				}
			}
		}
	}
}

// Sweep streams every sequence row of every composition in Compositions
// order. RowCap, when set, bounds the rows across the whole sweep.
// On error the sequence yields (Row{}, err) once and stops.
func (b *Builder) Sweep() iter.Seq2[Row, error] {
	return func(yield func(Row, error) bool) {
		var emitted uint64
		limit := b.opts.RowCap
		for res, err := range b.Compositions() {
			if err != nil {
				yield(Row{}, err)
				return
			}
			var left uint64
			if limit > 0 {
				left = limit - emitted
			}
			for row := range res.rows(left) {
				emitted++
				if !yield(row, nil) {
					return
				}
			}
			if limit > 0 && emitted >= limit {
				return
			}
		}
	}
}

// SweepRows returns the number of rows Sweep yields: Σ NumUnits^t over the
// configured totals (multinomials over all compositions of t sum to d^t),
// bounded by RowCap.
//
// Errors: compose.ErrOverflow when the sum exceeds uint64 (not reachable
// for totals ≤ 10).
func (b *Builder) SweepRows() (uint64, error) {
	var sum uint64
	for total := b.opts.MinTotal; total <= b.opts.MaxTotal; total++ {
		p := uint64(1)
		for i := 0; i < total; i++ {
			hi, lo := bits.Mul64(p, NumUnits)
			if hi != 0 {
				return 0, fmt.Errorf("%w: %d^%d", compose.ErrOverflow, NumUnits, total)
			}
			p = lo
		}
		var carry uint64
		sum, carry = bits.Add64(sum, p, 0)
		if carry != 0 {
			return 0, fmt.Errorf("%w: sweep row total", compose.ErrOverflow)
		}
	}
	if b.opts.RowCap > 0 && b.opts.RowCap < sum {
		return b.opts.RowCap, nil
	}
	return sum, nil
}
