// SPDX-License-Identifier: MIT

package formula_test

import (
	"fmt"

	"github.com/katalvlaran/glycoenum/formula"
)

// ExampleDehydrate condenses three hexose units into one linear chain and
// attaches a derivatization tag at the reducing end.
func ExampleDehydrate() {
	hex := formula.MustParse("C6H12O6")

	// Three units pooled together: C18H36O18.
	pooled, _ := formula.Scale(hex, 3)

	// Two glycosidic bonds release two waters.
	chain, _ := formula.Dehydrate(pooled, 3)
	fmt.Println(formula.FormatHill(chain))

	tagged, _ := formula.AddModifier(chain, "C20H18N4O")
	fmt.Println(formula.FormatHill(tagged))

	// Output:
	// C18H32O16
	// C38H50N4O17
}

// ExampleFormatHill shows Hill ordering for carbon-free formulas.
func ExampleFormatHill() {
	salt := formula.MustParse("ClNa")
	water := formula.MustParse("OH2")
	fmt.Println(formula.FormatHill(salt), formula.FormatHill(water), formula.FormatHill(formula.Composition{}))

	// Output:
	// ClNa H2O 0
}
