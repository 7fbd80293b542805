// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/glycoenum/formula"
	"github.com/katalvlaran/glycoenum/permute"
)

// Unit is one of the six monosaccharide categories.
type Unit int

const (
	Hex Unit = iota
	Deoxyhex
	Pent
	HexN
	UA
	HexNAc
)

// NumUnits is the number of unit categories.
const NumUnits = 6

// Total unit bounds accepted by Calculate and Sweep.
const (
	MinTotalUnits = 2
	MaxTotalUnits = 10
)

// TerminalModifier is the formula added once after dehydration (the
// derivatization tag on the reducing end).
const TerminalModifier = "C20H18N4O"

// UnitOrder lists every category in canonical order. Count vectors,
// composition sweeps and labels all follow it.
var UnitOrder = [NumUnits]Unit{Hex, Deoxyhex, Pent, HexN, UA, HexNAc}

var unitLabels = [NumUnits]string{"Hex", "deoxyhex", "pent", "HexN", "UA", "HexNAc"}

var unitFormulas = [NumUnits]string{
	"C6H12O6",  // Hex
	"C6H12O5",  // deoxyhex
	"C5H10O5",  // pent
	"C6H13NO5", // HexN
	"C6H10O7",  // UA
	"C8H15NO6", // HexNAc
}

// unitCompositions holds the parsed reference formulas.
var unitCompositions = func() (out [NumUnits]formula.Composition) {
	for i, f := range unitFormulas {
		out[i] = formula.MustParse(f)
	}
	return out
}()

// String returns the unit's label as it appears in sequences.
func (u Unit) String() string {
	if u < 0 || int(u) >= NumUnits {
		return fmt.Sprintf("Unit(%d)", int(u))
	}
	return unitLabels[u]
}

// Formula returns the reference molecular formula of the free monomer.
func (u Unit) Formula() string {
	if u < 0 || int(u) >= NumUnits {
		return ""
	}
	return unitFormulas[u]
}

// ParseUnit resolves a label case-insensitively ("hexnac" → HexNAc).
//
// Errors: ErrUnknownUnit.
func ParseUnit(label string) (Unit, error) {
	key := strings.TrimSpace(label)
	for i, l := range unitLabels {
		if strings.EqualFold(l, key) {
			return Unit(i), nil
		}
	}

	return 0, fmt.Errorf("%w %q (known: %s)", ErrUnknownUnit, label, strings.Join(unitLabels[:], ", "))
}

// Counts holds one non-negative count per unit category, in UnitOrder.
type Counts [NumUnits]int

// CountsFromMap builds Counts from label → count pairs. Labels are matched
// with ParseUnit; repeated labels (in any case) are summed.
//
// Errors: ErrUnknownUnit; ErrNegativeCount.
func CountsFromMap(m map[string]int) (Counts, error) {
	var c Counts
	for label, n := range m {
		u, err := ParseUnit(label)
		if err != nil {
			return Counts{}, err
		}
		if n < 0 {
			return Counts{}, fmt.Errorf("%w: %s=%d", ErrNegativeCount, u, n)
		}
		c[u] += n
	}

	return c, nil
}

// CountsFromVector copies a vector in UnitOrder.
//
// Errors: ErrInvalidOption if len(v) != NumUnits; ErrNegativeCount.
func CountsFromVector(v []int) (Counts, error) {
	var c Counts
	if len(v) != NumUnits {
		return c, fmt.Errorf("%w: count vector has %d entries, want %d", ErrInvalidOption, len(v), NumUnits)
	}
	for i, n := range v {
		if n < 0 {
			return Counts{}, fmt.Errorf("%w: %s=%d", ErrNegativeCount, Unit(i), n)
		}
		c[i] = n
	}

	return c, nil
}

// Total returns Σcounts.
func (c Counts) Total() int {
	t := 0
	for _, n := range c {
		t += n
	}
	return t
}

// Multiset returns the non-zero categories keyed by label.
func (c Counts) Multiset() permute.Multiset {
	m := make(permute.Multiset, NumUnits)
	for i, n := range c {
		if n > 0 {
			m[unitLabels[i]] = n
		}
	}
	return m
}

// String renders the non-zero counts as "Hex:3 deoxyhex:1".
func (c Counts) String() string {
	var parts []string
	for i, n := range c {
		if n > 0 {
			parts = append(parts, fmt.Sprintf("%s:%d", unitLabels[i], n))
		}
	}
	if len(parts) == 0 {
		return "(none)"
	}
	return strings.Join(parts, " ")
}

func (c Counts) validate() error {
	for i, n := range c {
		if n < 0 {
			return fmt.Errorf("%w: %s=%d", ErrNegativeCount, Unit(i), n)
		}
	}
	if t := c.Total(); t < MinTotalUnits || t > MaxTotalUnits {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrOutOfRange, t, MinTotalUnits, MaxTotalUnits)
	}
	return nil
}
