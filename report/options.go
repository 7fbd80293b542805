// SPDX-License-Identifier: MIT

package report

import (
	"context"
	"fmt"
	"strings"

	"github.com/katalvlaran/glycoenum/formula"
	"github.com/katalvlaran/glycoenum/mass"
)

// Defaults.
const (
	DefaultDecimals = 4
	DefaultModel    = string(mass.Monoisotopic)
	DefaultAdduct   = string(mass.Neutral)

	// MaxDecimals bounds rendering precision; float64 carries ~17 digits.
	MaxDecimals = 15
)

// Option configures a Builder. Use with New(opts...).
type Option func(*Options)

// Options holds every knob of a Builder.
type Options struct {
	// Ctx aborts Sweep between compositions when cancelled.
	// Defaults to context.Background().
	Ctx context.Context

	// MassModel names the atomic mass model ("monoisotopic" or "average").
	MassModel string

	// Adduct applied to the neutral mass (neutral, [M+H]+, [M+Na]+).
	Adduct string

	// Overrides replace or extend element masses of the model.
	Overrides map[string]float64

	// RowCap bounds the sequence rows produced, per Result in single mode and
	// globally in Sweep. 0 means unlimited.
	RowCap uint64

	// Decimals is the fixed-point precision of rendered masses.
	Decimals int

	// IncludeMZ adds the m/z column (theoretical mass + H).
	IncludeMZ bool

	// MinTotal and MaxTotal bound the totals visited by Sweep.
	MinTotal, MaxTotal int
}

// DefaultOptions returns:
//   - monoisotopic masses, neutral adduct, no overrides
//   - 4 decimals, m/z column on
//   - no row cap
//   - sweep over 2..10 units
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		MassModel: DefaultModel,
		Adduct:    DefaultAdduct,
		Decimals:  DefaultDecimals,
		IncludeMZ: true,
		MinTotal:  MinTotalUnits,
		MaxTotal:  MaxTotalUnits,
	}
}

// WithContext sets the cancellation context checked by Sweep.
func WithContext(ctx context.Context) Option {
	return func(o *Options) { o.Ctx = ctx }
}

// WithMassModel selects the atomic mass model.
func WithMassModel(model string) Option {
	return func(o *Options) { o.MassModel = model }
}

// WithAdduct selects the ionization mode.
func WithAdduct(adduct string) Option {
	return func(o *Options) { o.Adduct = adduct }
}

// WithOverrides merges element mass overrides; later calls win per element,
// whatever the spelling of its symbol ("na" replaces an earlier "Na").
// Two spellings of one element within a single call are left for New to
// reject.
func WithOverrides(overrides map[string]float64) Option {
	return func(o *Options) {
		if o.Overrides == nil {
			o.Overrides = make(map[string]float64, len(overrides))
		}
		replaced := make(map[string]bool, len(overrides))
		for sym := range overrides {
			replaced[overrideKey(sym)] = true
		}
		for sym := range o.Overrides {
			if replaced[overrideKey(sym)] {
				delete(o.Overrides, sym)
			}
		}
		for sym, v := range overrides {
			o.Overrides[sym] = v
		}
	}
}

func overrideKey(sym string) string {
	return formula.CanonicalSymbol(strings.TrimSpace(sym))
}

// WithRowCap bounds the number of rows produced. 0 lifts the bound.
func WithRowCap(n uint64) Option {
	return func(o *Options) { o.RowCap = n }
}

// WithDecimals sets the fixed-point precision of rendered masses.
func WithDecimals(n int) Option {
	return func(o *Options) { o.Decimals = n }
}

// WithMZ toggles the m/z column.
func WithMZ(on bool) Option {
	return func(o *Options) { o.IncludeMZ = on }
}

// WithTotalRange narrows the totals visited by Sweep to [lo, hi].
func WithTotalRange(lo, hi int) Option {
	return func(o *Options) { o.MinTotal, o.MaxTotal = lo, hi }
}

func (o Options) validate() error {
	if o.Decimals < 0 || o.Decimals > MaxDecimals {
		return fmt.Errorf("%w: decimals %d not in [0, %d]", ErrInvalidOption, o.Decimals, MaxDecimals)
	}
	if o.MinTotal < MinTotalUnits || o.MaxTotal > MaxTotalUnits || o.MinTotal > o.MaxTotal {
		return fmt.Errorf("%w: sweep range [%d, %d] not within [%d, %d]",
			ErrOutOfRange, o.MinTotal, o.MaxTotal, MinTotalUnits, MaxTotalUnits)
	}
	if o.Ctx == nil {
		return fmt.Errorf("%w: nil context", ErrInvalidOption)
	}
	return nil
}
