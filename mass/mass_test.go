// SPDX-License-Identifier: MIT

package mass_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/glycoenum/formula"
	"github.com/katalvlaran/glycoenum/mass"
)

const (
	monoH  = 1.00782503223
	monoO  = 15.99491461957
	monoNa = 22.9897692820
	tol    = 1e-9
)

func TestBuildTable_Models(t *testing.T) {
	mono, err := mass.BuildTable("monoisotopic", nil)
	require.NoError(t, err)
	assert.Equal(t, mass.Monoisotopic, mono.Model())
	h, ok := mono.Mass("H")
	require.True(t, ok)
	assert.Equal(t, monoH, h)

	avg, err := mass.BuildTable("  AVERAGE ", nil)
	require.NoError(t, err)
	c, ok := avg.Mass("c")
	require.True(t, ok)
	assert.Equal(t, 12.0107, c)

	assert.Equal(t, []string{"C", "H", "N", "Na", "O"}, avg.Elements())
	assert.Equal(t, []mass.Model{mass.Average, mass.Monoisotopic}, mass.Models())
}

func TestBuildTable_UnknownModel(t *testing.T) {
	for _, name := range []string{"", "mono", "most-abundant"} {
		_, err := mass.BuildTable(name, nil)
		assert.ErrorIs(t, err, mass.ErrUnknownModel, "model %q", name)
	}
}

func TestBuildTable_Overrides(t *testing.T) {
	tbl, err := mass.BuildTable("monoisotopic", map[string]float64{
		"h":  1.0078,  // replaces, canonicalized
		"XE": 131.904, // adds an element the built-ins lack
	})
	require.NoError(t, err)

	h, _ := tbl.Mass("H")
	assert.Equal(t, 1.0078, h)
	xe, ok := tbl.Mass("Xe")
	require.True(t, ok)
	assert.Equal(t, 131.904, xe)

	// Overrides never leak into the next build.
	fresh, err := mass.BuildTable("monoisotopic", nil)
	require.NoError(t, err)
	h, _ = fresh.Mass("H")
	assert.Equal(t, monoH, h)

	for _, bad := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err = mass.BuildTable("average", map[string]float64{"H": bad})
		assert.ErrorIs(t, err, mass.ErrInvalidMass, "override %v", bad)
	}
}

func TestBuildTable_CollidingOverrides(t *testing.T) {
	for i := 0; i < 50; i++ {
		_, err := mass.BuildTable("monoisotopic", map[string]float64{"h": 1, "H": 2})
		require.ErrorIs(t, err, mass.ErrInvalidMass)
		assert.Contains(t, err.Error(), `"H" and "h" both name H`)
	}

	_, err := mass.NewTable("custom", map[string]float64{"na": 23, " NA ": 23})
	assert.ErrorIs(t, err, mass.ErrInvalidMass)
}

func TestCalculate_Water(t *testing.T) {
	tbl, err := mass.BuildTable("monoisotopic", nil)
	require.NoError(t, err)

	m, err := tbl.Calculate(formula.MustParse("H2O"))
	require.NoError(t, err)
	assert.InDelta(t, 2*monoH+monoO, m, tol)

	zero, err := tbl.Calculate(formula.Composition{})
	require.NoError(t, err)
	assert.Equal(t, 0.0, zero)
}

func TestCalculate_Deterministic(t *testing.T) {
	tbl, err := mass.BuildTable("average", nil)
	require.NoError(t, err)
	c := formula.MustParse("C44H60N4O21Na")

	first, err := tbl.Calculate(c)
	require.NoError(t, err)
	for i := 0; i < 50; i++ {
		again, err := tbl.Calculate(c)
		require.NoError(t, err)
		require.Equal(t, first, again, "summation order must be stable")
	}
}

func TestCalculate_MissingElement(t *testing.T) {
	tbl, err := mass.BuildTable("monoisotopic", nil)
	require.NoError(t, err)

	_, err = tbl.Calculate(formula.MustParse("C6H12O6S"))
	require.ErrorIs(t, err, mass.ErrMissingElementMass)

	var mm *mass.MissingMassError
	require.ErrorAs(t, err, &mm)
	assert.Equal(t, "S", mm.Element)
	assert.Equal(t, mass.Monoisotopic, mm.Model)
}

func TestParseAdduct(t *testing.T) {
	cases := map[string]mass.Adduct{
		"":          mass.Neutral,
		"   ":       mass.Neutral,
		"Neutral":   mass.Neutral,
		"[M+H]+":    mass.Protonated,
		" [m+h]+ ":  mass.Protonated,
		"[M+NA]+":   mass.Sodiated,
		"\t[m+na]+": mass.Sodiated,
	}
	for in, want := range cases {
		got, err := mass.ParseAdduct(in)
		require.NoError(t, err, "adduct %q", in)
		assert.Equal(t, want, got, "adduct %q", in)
	}

	for _, bad := range []string{"[M+K]+", "M+H", "[M-H]-"} {
		_, err := mass.ParseAdduct(bad)
		assert.ErrorIs(t, err, mass.ErrUnsupportedAdduct, "adduct %q", bad)
	}
}

func TestApplyAdduct(t *testing.T) {
	tbl, err := mass.BuildTable("monoisotopic", nil)
	require.NoError(t, err)
	const x = 980.375

	got, err := tbl.ApplyAdduct(x, "neutral")
	require.NoError(t, err)
	assert.Equal(t, x, got)

	got, err = tbl.ApplyAdduct(x, "[M+H]+")
	require.NoError(t, err)
	assert.InDelta(t, x+monoH, got, tol)

	got, err = tbl.ApplyAdduct(x, "[M+Na]+")
	require.NoError(t, err)
	assert.InDelta(t, x+monoNa, got, tol)

	_, err = tbl.ApplyAdduct(x, "[M+K]+")
	assert.ErrorIs(t, err, mass.ErrUnsupportedAdduct)
}

func TestApplyAdduct_MissingSpecies(t *testing.T) {
	tbl, err := mass.NewTable("reduced", map[string]float64{"C": 12, "O": monoO})
	require.NoError(t, err)

	_, err = tbl.ApplyAdduct(100, "[M+H]+")
	require.ErrorIs(t, err, mass.ErrMissingElementMass)
	var mm *mass.MissingMassError
	require.ErrorAs(t, err, &mm)
	assert.Equal(t, "H", mm.Element)

	_, err = tbl.ApplyAdduct(100, "[M+Na]+")
	assert.ErrorIs(t, err, mass.ErrMissingElementMass)

	_, err = tbl.HydrogenMass()
	assert.ErrorIs(t, err, mass.ErrMissingElementMass)

	// Neutral needs nothing from the table.
	got, err := tbl.ApplyAdduct(100, "")
	require.NoError(t, err)
	assert.Equal(t, 100.0, got)
}
