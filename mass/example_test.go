// SPDX-License-Identifier: MIT

package mass_test

import (
	"fmt"

	"github.com/katalvlaran/glycoenum/formula"
	"github.com/katalvlaran/glycoenum/mass"
)

// ExampleTable_ApplyAdduct weighs glucose and its sodium adduct.
func ExampleTable_ApplyAdduct() {
	table, _ := mass.BuildTable("monoisotopic", nil)
	glucose := formula.MustParse("C6H12O6")

	neutral, _ := table.Calculate(glucose)
	sodiated, _ := table.ApplyAdduct(neutral, "[M+Na]+")

	fmt.Printf("%.4f %.4f\n", neutral, sodiated)

	// Output:
	// 180.0634 203.0532
}
