// SPDX-License-Identifier: MIT

package mass

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/katalvlaran/glycoenum/formula"
)

// Model identifies a built-in atomic mass table.
type Model string

const (
	// Monoisotopic uses the mass of each element's most abundant isotope.
	Monoisotopic Model = "monoisotopic"
	// Average uses standard atomic weights.
	Average Model = "average"
)

// builtin holds the reference constants for each model.
var builtin = map[Model]map[string]float64{
	Monoisotopic: {
		"C":  12.0,
		"H":  1.00782503223,
		"N":  14.00307400443,
		"O":  15.99491461957,
		"Na": 22.9897692820,
	},
	Average: {
		"C":  12.0107,
		"H":  1.00794,
		"N":  14.0067,
		"O":  15.9994,
		"Na": 22.98976928,
	},
}

// Models returns the supported model identifiers in lexical order.
func Models() []Model {
	out := make([]Model, 0, len(builtin))
	for m := range builtin {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// ParseModel matches name against the built-in models after trimming
// surrounding whitespace and lower-casing.
func ParseModel(name string) (Model, error) {
	m := Model(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := builtin[m]; !ok {
		return "", fmt.Errorf("%w %q (supported: %s, %s)", ErrUnknownModel, name, Average, Monoisotopic)
	}

	return m, nil
}

// Table is an immutable element → atomic mass lookup for one model.
type Table struct {
	model  Model
	masses map[string]float64
}

// BuildTable returns the table for model with overrides applied on top.
// Override keys are canonicalized like formula symbols ("NA" → "Na") and
// may replace a built-in entry or add a new element; no check is made that
// the element exists in the periodic table.
//
// Errors: ErrUnknownModel; ErrInvalidMass for empty symbols, two keys naming
// the same element, or NaN, ±Inf and non-positive overrides.
func BuildTable(model string, overrides map[string]float64) (*Table, error) {
	m, err := ParseModel(model)
	if err != nil {
		return nil, err
	}
	extra, err := canonicalMasses(overrides)
	if err != nil {
		return nil, fmt.Errorf("overrides: %w", err)
	}

	masses := make(map[string]float64, len(builtin[m])+len(extra))
	for sym, v := range builtin[m] {
		masses[sym] = v
	}
	for sym, v := range extra {
		masses[sym] = v
	}

	return &Table{model: m, masses: masses}, nil
}

// NewTable builds a table from an explicit mass list, without any built-in
// entries. It serves isotope-labelled or reduced element sets; model is only
// used as a label in errors and reports.
//
// Errors: ErrInvalidMass as for BuildTable overrides.
func NewTable(model Model, masses map[string]float64) (*Table, error) {
	out, err := canonicalMasses(masses)
	if err != nil {
		return nil, err
	}

	return &Table{model: model, masses: out}, nil
}

// canonicalMasses validates raw and re-keys it by canonical symbol. Two raw
// keys for one element are rejected so the result never depends on map order.
func canonicalMasses(raw map[string]float64) (map[string]float64, error) {
	out := make(map[string]float64, len(raw))
	seen := make(map[string]string, len(raw))
	for key, v := range raw {
		sym := strings.TrimSpace(key)
		if sym == "" {
			return nil, fmt.Errorf("%w: empty element symbol", ErrInvalidMass)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			return nil, fmt.Errorf("%w: %s=%v", ErrInvalidMass, sym, v)
		}
		canon := formula.CanonicalSymbol(sym)
		if prev, dup := seen[canon]; dup {
			a, b := prev, key
			if b < a {
				a, b = b, a
			}
			return nil, fmt.Errorf("%w: %q and %q both name %s", ErrInvalidMass, a, b, canon)
		}
		seen[canon] = key
		out[canon] = v
	}

	return out, nil
}

// Model returns the table's model identifier.
func (t *Table) Model() Model { return t.model }

// Mass returns the atomic mass of sym (canonicalized) and whether it exists.
func (t *Table) Mass(sym string) (float64, bool) {
	v, ok := t.masses[formula.CanonicalSymbol(sym)]
	return v, ok
}

// Elements returns the symbols present in the table, lexically sorted.
func (t *Table) Elements() []string {
	out := make([]string, 0, len(t.masses))
	for sym := range t.masses {
		out = append(out, sym)
	}
	sort.Strings(out)

	return out
}

// Calculate sums count × mass over c's elements.
// The empty composition weighs 0.
//
// Errors: *MissingMassError (matches ErrMissingElementMass) naming the
// first element, in lexical order, that has no table entry.
//
// Complexity: O(k log k).
func (t *Table) Calculate(c formula.Composition) (float64, error) {
	var total float64
	for _, sym := range c.Elements() {
		v, ok := t.masses[sym]
		if !ok {
			return 0, &MissingMassError{Element: sym, Model: t.model}
		}
		total += v * float64(c.Count(sym))
	}

	return total, nil
}

// require returns the mass of sym or a *MissingMassError explaining need.
func (t *Table) require(sym, need string) (float64, error) {
	v, ok := t.masses[sym]
	if !ok {
		return 0, &MissingMassError{Element: sym, Model: t.model, Need: need}
	}

	return v, nil
}

// HydrogenMass returns the table's H mass, the increment of the m/z column.
func (t *Table) HydrogenMass() (float64, error) {
	return t.require("H", "m/z")
}
