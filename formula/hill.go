// SPDX-License-Identifier: MIT

package formula

import (
	"sort"
	"strconv"
	"strings"
)

// emptyHill is the rendering of a composition without elements.
const emptyHill = "0"

// FormatHill renders c in Hill order: carbon first, hydrogen second, every
// other element alphabetically by canonical symbol. Counts of 1 omit the
// numeral; nothing separates tokens. An empty composition renders as "0".
//
// Hydrogen is placed second whether or not carbon is present, so {H:1, Cl:1}
// renders as "HCl".
//
// Complexity: O(k log k).
func FormatHill(c Composition) string {
	if len(c.counts) == 0 {
		return emptyHill
	}

	syms := c.Elements()
	sort.SliceStable(syms, func(i, j int) bool {
		return hillRank(syms[i]) < hillRank(syms[j])
	})

	var b strings.Builder
	for _, sym := range syms {
		b.WriteString(sym)
		if n := c.counts[sym]; n != 1 {
			b.WriteString(strconv.Itoa(n))
		}
	}

	return b.String()
}

func hillRank(sym string) int {
	switch sym {
	case "C":
		return 0
	case "H":
		return 1
	default:
		return 2
	}
}
