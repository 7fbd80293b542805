// SPDX-License-Identifier: MIT

package compose_test

import (
	"testing"

	"github.com/katalvlaran/glycoenum/compose"
)

// BenchmarkEnumerator_SweepShape walks every composition of 2..10 units over
// six categories, the exhaustive-report driver workload.
func BenchmarkEnumerator_SweepShape(b *testing.B) {
	for i := 0; i < b.N; i++ {
		for total := 2; total <= 10; total++ {
			e, _ := compose.New(total, 6)
			for {
				if _, ok := e.Next(); !ok {
					break
				}
			}
		}
	}
}
