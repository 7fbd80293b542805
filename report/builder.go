// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"iter"
	"strconv"

	"github.com/katalvlaran/glycoenum/formula"
	"github.com/katalvlaran/glycoenum/mass"
	"github.com/katalvlaran/glycoenum/permute"
)

// Export column headings.
const (
	ColSequence     = "Predicted compound"
	ColBaseFormula  = "Pre-derivatization molecular formula"
	ColFinalFormula = "Post-derivatization molecular formula"
	ColMass         = "Calculated mass"
	ColMZ           = "Theoretical m/z"
)

// SequenceSeparator joins unit labels in the sequence column.
const SequenceSeparator = "-"

// Header returns the column headings, with or without the m/z column.
func Header(includeMZ bool) []string {
	h := []string{ColSequence, ColBaseFormula, ColFinalFormula, ColMass}
	if includeMZ {
		h = append(h, ColMZ)
	}
	return h
}

// Builder computes reports under one fixed configuration.
// It is immutable after New and safe for concurrent use.
type Builder struct {
	opts     Options
	table    *mass.Table
	adduct   mass.Adduct
	hydrogen float64
}

// New validates opts and builds the mass table once.
//
// Errors: ErrInvalidOption, ErrOutOfRange, mass.ErrUnknownModel,
// mass.ErrInvalidMass, mass.ErrUnsupportedAdduct, and
// mass.ErrMissingElementMass when the m/z column is on and H has no mass.
func New(opts ...Option) (*Builder, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}

	table, err := mass.BuildTable(o.MassModel, o.Overrides)
	if err != nil {
		return nil, err
	}
	adduct, err := mass.ParseAdduct(o.Adduct)
	if err != nil {
		return nil, err
	}

	b := &Builder{opts: o, table: table, adduct: adduct}
	if o.IncludeMZ {
		if b.hydrogen, err = table.HydrogenMass(); err != nil {
			return nil, err
		}
	}

	return b, nil
}

// Options returns a copy of the effective configuration.
func (b *Builder) Options() Options {
	o := b.opts
	if o.Overrides != nil {
		cp := make(map[string]float64, len(o.Overrides))
		for k, v := range o.Overrides {
			cp[k] = v
		}
		o.Overrides = cp
	}
	return o
}

// Table exposes the mass table in use.
func (b *Builder) Table() *mass.Table { return b.table }

// Adduct returns the parsed ionization mode.
func (b *Builder) Adduct() mass.Adduct { return b.adduct }

// Header is the package Header for this Builder's m/z setting.
func (b *Builder) Header() []string { return Header(b.opts.IncludeMZ) }

// Calculate runs the single-composition pipeline for counts.
//
// Errors: ErrNegativeCount; ErrOutOfRange when Σcounts ∉ [2, 10];
// mass.ErrMissingElementMass; permute.ErrOverflow cannot occur for totals ≤ 10.
//
// Complexity: O(1) here; enumeration cost is paid lazily by Reports/Rows.
func (b *Builder) Calculate(c Counts) (*Result, error) {
	if err := c.validate(); err != nil {
		return nil, err
	}

	parts := make([]formula.Composition, 0, NumUnits)
	for i, n := range c {
		if n == 0 {
			continue
		}
		scaled, err := formula.Scale(unitCompositions[i], n)
		if err != nil {
			return nil, fmt.Errorf("scale %s: %w", Unit(i), err)
		}
		parts = append(parts, scaled)
	}
	pooled, err := formula.Pool(parts...)
	if err != nil {
		return nil, err
	}
	base, err := formula.Dehydrate(pooled, c.Total())
	if err != nil {
		return nil, err
	}
	final, err := formula.AddModifier(base, TerminalModifier)
	if err != nil {
		return nil, err
	}

	neutral, err := b.table.Calculate(final)
	if err != nil {
		return nil, fmt.Errorf("mass of %s: %w", final, err)
	}
	theoretical, err := b.table.Ionize(neutral, b.adduct)
	if err != nil {
		return nil, err
	}

	ms := c.Multiset()
	perms, err := permute.Count(ms)
	if err != nil {
		return nil, err
	}

	r := &Result{
		Counts:          c,
		Base:            base,
		Final:           final,
		BaseFormula:     formula.FormatHill(base),
		FinalFormula:    formula.FormatHill(final),
		NeutralMass:     neutral,
		TheoreticalMass: theoretical,
		Permutations:    perms,
		multiset:        ms,
		decimals:        b.opts.Decimals,
		includeMZ:       b.opts.IncludeMZ,
		rowCap:          b.opts.RowCap,
	}
	if b.opts.IncludeMZ {
		r.MZ = theoretical + b.hydrogen
	}

	return r, nil
}

// CalculateMap is Calculate for label → count input.
func (b *Builder) CalculateMap(m map[string]int) (*Result, error) {
	c, err := CountsFromMap(m)
	if err != nil {
		return nil, err
	}
	return b.Calculate(c)
}

// SequenceReport is one linear arrangement of a composition.
type SequenceReport struct {
	Sequence        permute.Sequence
	BaseFormula     string
	FinalFormula    string
	NeutralMass     float64
	TheoreticalMass float64
	MZ              float64
}

// Row is a SequenceReport rendered to text columns.
type Row struct {
	Sequence     string
	BaseFormula  string
	FinalFormula string
	Mass         string
	MZ           string // empty when the m/z column is off
}

// Values returns the row's cells in Header order.
func (r Row) Values(includeMZ bool) []string {
	v := []string{r.Sequence, r.BaseFormula, r.FinalFormula, r.Mass}
	if includeMZ {
		v = append(v, r.MZ)
	}
	return v
}

// Result is the outcome of one composition: shared formulas and masses,
// plus lazy access to every sequence.
type Result struct {
	Counts          Counts
	Base, Final     formula.Composition
	BaseFormula     string
	FinalFormula    string
	NeutralMass     float64
	TheoreticalMass float64
	MZ              float64 // 0 when the m/z column is off

	// Permutations is the number of distinct sequences, before any row cap.
	Permutations uint64

	multiset  permute.Multiset
	decimals  int
	includeMZ bool
	rowCap    uint64
}

// Shown is the number of sequences Reports and Rows will yield.
func (r *Result) Shown() uint64 {
	if r.rowCap > 0 && r.rowCap < r.Permutations {
		return r.rowCap
	}
	return r.Permutations
}

// Truncated reports whether the row cap hides some sequences.
func (r *Result) Truncated() bool { return r.Shown() < r.Permutations }

// IncludeMZ reports whether m/z is part of the rendered rows.
func (r *Result) IncludeMZ() bool { return r.includeMZ }

// FormattedMass renders TheoreticalMass with the configured decimals.
func (r *Result) FormattedMass() string { return FormatMass(r.TheoreticalMass, r.decimals) }

// FormattedMZ renders MZ with the configured decimals, or "" when off.
func (r *Result) FormattedMZ() string {
	if !r.includeMZ {
		return ""
	}
	return FormatMass(r.MZ, r.decimals)
}

// Reports yields up to Shown() sequence reports in lexicographic label order.
func (r *Result) Reports() iter.Seq[SequenceReport] {
	return r.reports(r.rowCap)
}

// Rows is Reports rendered to text columns.
func (r *Result) Rows() iter.Seq[Row] {
	return r.rows(r.rowCap)
}

// reports yields at most limit reports; 0 means all of them.
func (r *Result) reports(limit uint64) iter.Seq[SequenceReport] {
	return func(yield func(SequenceReport) bool) {
		e, err := permute.New(r.multiset)
		if err != nil {
			return // unreachable: the multiset was validated by Calculate
		}
		var n uint64
		for limit == 0 || n < limit {
			seq, ok := e.Next()
			if !ok {
				return
			}
			n++
			if !yield(SequenceReport{
				Sequence:        seq,
				BaseFormula:     r.BaseFormula,
				FinalFormula:    r.FinalFormula,
				NeutralMass:     r.NeutralMass,
				TheoreticalMass: r.TheoreticalMass,
				MZ:              r.MZ,
			}) {
				return
			}
		}
	}
}

func (r *Result) rows(limit uint64) iter.Seq[Row] {
	mz := r.FormattedMZ()
	m := r.FormattedMass()
	return func(yield func(Row) bool) {
		for rep := range r.reports(limit) {
			if !yield(Row{
				Sequence:     rep.Sequence.Join(SequenceSeparator),
				BaseFormula:  r.BaseFormula,
				FinalFormula: r.FinalFormula,
				Mass:         m,
				MZ:           mz,
			}) {
				return
			}
		}
	}
}

// FormatMass renders v in fixed-point notation with exactly decimals places.
func FormatMass(v float64, decimals int) string {
	return strconv.FormatFloat(v, 'f', decimals, 64)
}
