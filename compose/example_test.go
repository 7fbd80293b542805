// SPDX-License-Identifier: MIT

package compose_test

import (
	"fmt"

	"github.com/katalvlaran/glycoenum/compose"
)

// ExampleEnumerate splits three units between two categories.
func ExampleEnumerate() {
	seq, _ := compose.Enumerate(3, 2)
	for v := range seq {
		fmt.Println(v)
	}

	n, _ := compose.Count(10, 6)
	fmt.Println("ten units over six categories:", n)

	// Output:
	// [0 3]
	// [1 2]
	// [2 1]
	// [3 0]
	// ten units over six categories: 3003
}
