// SPDX-License-Identifier: MIT

package permute

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrInvalidCount indicates a negative repetition count or an empty label.
	ErrInvalidCount = errors.New("permute: invalid multiset entry")

	// ErrOverflow indicates the exact permutation count does not fit in uint64.
	ErrOverflow = errors.New("permute: permutation count overflows uint64")
)

// Multiset maps a label to its repetition count. Zero counts are ignored.
type Multiset map[string]int

// Sequence is one concrete arrangement of a multiset's labels.
type Sequence []string

// Join concatenates the labels with sep ("Hex-Hex-dHex" for sep "-").
func (s Sequence) Join(sep string) string { return strings.Join(s, sep) }

// entry is a label with a strictly positive count.
type entry struct {
	label string
	count int
}

// normalize validates m and returns its positive entries sorted by label,
// together with the total item count.
func normalize(m Multiset) ([]entry, int, error) {
	out := make([]entry, 0, len(m))
	total := 0
	for label, n := range m {
		if n < 0 {
			return nil, 0, fmt.Errorf("%w: %q=%d", ErrInvalidCount, label, n)
		}
		if n == 0 {
			continue
		}
		if label == "" {
			return nil, 0, fmt.Errorf("%w: empty label", ErrInvalidCount)
		}
		total += n
		if total < 0 {
			return nil, 0, fmt.Errorf("%w: total item count overflows", ErrOverflow)
		}
		out = append(out, entry{label: label, count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].label < out[j].label })

	return out, total, nil
}
