// SPDX-License-Identifier: MIT

package report_test

import (
	"fmt"

	"github.com/katalvlaran/glycoenum/report"
)

// ExampleBuilder_Calculate reports a fucosylated trihexose.
func ExampleBuilder_Calculate() {
	b, _ := report.New()
	res, _ := b.CalculateMap(map[string]int{"Hex": 3, "deoxyhex": 1})

	fmt.Println(res.BaseFormula, res.FinalFormula, res.FormattedMass(), res.FormattedMZ())
	for row := range res.Rows() {
		fmt.Println(row.Sequence)
	}

	// Output:
	// C24H42O20 C44H60N4O21 980.3750 981.3828
	// Hex-Hex-Hex-deoxyhex
	// Hex-Hex-deoxyhex-Hex
	// Hex-deoxyhex-Hex-Hex
	// deoxyhex-Hex-Hex-Hex
}

// ExampleBuilder_SweepRows sizes the exhaustive table before streaming it.
func ExampleBuilder_SweepRows() {
	b, _ := report.New()
	n, _ := b.SweepRows()
	fmt.Println(n)

	// Output:
	// 72559404
}
