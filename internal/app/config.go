// SPDX-License-Identifier: MIT

package app

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/glycoenum/report"
)

// ErrInvalidFlag indicates a flag value that cannot be converted.
var ErrInvalidFlag = errors.New("app: invalid flag value")

// Config holds the raw command-line values shared by the commands.
type Config struct {
	Units     map[string]int    // label → count, e.g. Hex=3
	MassModel string            // monoisotopic | average
	Adduct    string            // neutral | [M+H]+ | [M+Na]+
	Overrides map[string]string // element → mass text
	Decimals  int
	Limit     int // row cap; 0 means unlimited
	NoMZ      bool
	MinTotal  int // sweep bounds; 0 means the package default
	MaxTotal  int
}

// Defaults returns a Config matching report.DefaultOptions.
func Defaults() Config {
	return Config{
		MassModel: report.DefaultModel,
		Adduct:    report.DefaultAdduct,
		Decimals:  report.DefaultDecimals,
		MinTotal:  report.MinTotalUnits,
		MaxTotal:  report.MaxTotalUnits,
	}
}

// Options converts c into report options.
//
// Errors: ErrInvalidFlag for a negative limit or a non-numeric override.
func (c Config) Options(ctx context.Context) ([]report.Option, error) {
	if c.Limit < 0 {
		return nil, fmt.Errorf("%w: --limit %d is negative", ErrInvalidFlag, c.Limit)
	}
	overrides, err := ParseOverrides(c.Overrides)
	if err != nil {
		return nil, err
	}

	opts := []report.Option{
		report.WithMassModel(c.MassModel),
		report.WithAdduct(c.Adduct),
		report.WithDecimals(c.Decimals),
		report.WithRowCap(uint64(c.Limit)),
		report.WithMZ(!c.NoMZ),
	}
	if ctx != nil {
		opts = append(opts, report.WithContext(ctx))
	}
	if len(overrides) > 0 {
		opts = append(opts, report.WithOverrides(overrides))
	}
	if c.MinTotal != 0 || c.MaxTotal != 0 {
		opts = append(opts, report.WithTotalRange(c.MinTotal, c.MaxTotal))
	}
	return opts, nil
}

// Builder validates c and builds the report.Builder.
func (c Config) Builder(ctx context.Context) (*report.Builder, error) {
	opts, err := c.Options(ctx)
	if err != nil {
		return nil, err
	}
	return report.New(opts...)
}

// Counts converts the --units map.
//
// Errors: ErrInvalidFlag when no unit is given; report.ErrUnknownUnit;
// report.ErrNegativeCount.
func (c Config) Counts() (report.Counts, error) {
	if len(c.Units) == 0 {
		return report.Counts{}, fmt.Errorf("%w: --units is required (e.g. Hex=3,deoxyhex=1)", ErrInvalidFlag)
	}
	return report.CountsFromMap(c.Units)
}

// ParseOverrides converts element=mass text pairs. Keys pass through as
// given; the mass table canonicalizes them, rejects two spellings of one
// element and validates the values. Keys are walked in sorted order so the
// first unparsable pair reported is stable.
func ParseOverrides(raw map[string]string) (map[string]float64, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make(map[string]float64, len(raw))
	for _, sym := range keys {
		v, err := strconv.ParseFloat(strings.TrimSpace(raw[sym]), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: --override %s=%q is not a number", ErrInvalidFlag, sym, raw[sym])
		}
		out[sym] = v
	}
	return out, nil
}
