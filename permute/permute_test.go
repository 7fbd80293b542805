// SPDX-License-Identifier: MIT

package permute_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/glycoenum/permute"
)

// collect drains an Enumerator into joined strings.
func collect(t *testing.T, m permute.Multiset) []string {
	t.Helper()
	e, err := permute.New(m)
	require.NoError(t, err)

	var out []string
	for {
		s, ok := e.Next()
		if !ok {
			return out
		}
		out = append(out, s.Join("-"))
	}
}

func TestCount_Small(t *testing.T) {
	cases := []struct {
		m    permute.Multiset
		want uint64
	}{
		{permute.Multiset{}, 0},
		{permute.Multiset{"A": 0, "B": 0}, 0},
		{permute.Multiset{"A": 1}, 1},
		{permute.Multiset{"A": 2, "B": 1}, 3},
		{permute.Multiset{"Hex": 3, "deoxyhex": 1}, 4},
		{permute.Multiset{"A": 1, "B": 1, "C": 1, "D": 1}, 24},
		{permute.Multiset{"A": 5, "B": 5}, 252},
		{permute.Multiset{"a": 2, "b": 2, "c": 2, "d": 2, "e": 1, "f": 1}, 226800},
		{permute.Multiset{"a": 10}, 1},
	}
	for _, tc := range cases {
		got, err := permute.Count(tc.m)
		require.NoError(t, err, "%v", tc.m)
		assert.Equal(t, tc.want, got, "%v", tc.m)
	}
}

// TestCount_Overflow: 21 distinct labels give 21! > 2^64.
func TestCount_Overflow(t *testing.T) {
	m := permute.Multiset{}
	for i := 0; i < 21; i++ {
		m[string(rune('a'+i))] = 1
	}
	_, err := permute.Count(m)
	require.ErrorIs(t, err, permute.ErrOverflow)

	// 20! still fits.
	delete(m, "u")
	got, err := permute.Count(m)
	require.NoError(t, err)
	assert.Equal(t, uint64(2432902008176640000), got)

	// CountBig has no ceiling.
	m["u"] = 1
	b, err := permute.CountBig(m)
	require.NoError(t, err)
	want, _ := new(big.Int).SetString("51090942171709440000", 10)
	assert.Zero(t, want.Cmp(b))
}

func TestCount_InvalidEntries(t *testing.T) {
	_, err := permute.Count(permute.Multiset{"A": -1})
	assert.ErrorIs(t, err, permute.ErrInvalidCount)

	_, err = permute.Count(permute.Multiset{"": 2})
	assert.ErrorIs(t, err, permute.ErrInvalidCount)

	_, err = permute.New(permute.Multiset{"A": 1, "B": -3})
	assert.ErrorIs(t, err, permute.ErrInvalidCount)

	_, err = permute.Enumerate(permute.Multiset{"A": -1})
	assert.ErrorIs(t, err, permute.ErrInvalidCount)
}

func TestEnumerate_LexicographicOrder(t *testing.T) {
	assert.Equal(t, []string{"A-A-B", "A-B-A", "B-A-A"}, collect(t, permute.Multiset{"A": 2, "B": 1}))

	assert.Equal(t, []string{
		"Hex-Hex-Hex-deoxyhex",
		"Hex-Hex-deoxyhex-Hex",
		"Hex-deoxyhex-Hex-Hex",
		"deoxyhex-Hex-Hex-Hex",
	}, collect(t, permute.Multiset{"Hex": 3, "deoxyhex": 1, "pent": 0}))
}

func TestEnumerate_EmptyYieldsNothing(t *testing.T) {
	assert.Empty(t, collect(t, permute.Multiset{}))
	assert.Empty(t, collect(t, permute.Multiset{"A": 0}))

	e, err := permute.New(nil)
	require.NoError(t, err)
	_, ok := e.Next()
	assert.False(t, ok)
	_, ok = e.Next()
	assert.False(t, ok, "exhausted enumerator stays exhausted")
}

// TestEnumerate_CountLawAndUniqueness checks, across a spread of shapes, that
// the enumeration length equals Count, that no sequence repeats, that every
// sequence respects the multiset, and that output is strictly increasing.
func TestEnumerate_CountLawAndUniqueness(t *testing.T) {
	shapes := []permute.Multiset{
		{"A": 1},
		{"A": 1, "B": 1},
		{"A": 3, "B": 2},
		{"A": 2, "B": 2, "C": 2},
		{"Hex": 4, "HexNAc": 2, "UA": 1, "pent": 1},
		{"a": 1, "b": 1, "c": 1, "d": 1, "e": 1, "f": 1},
	}
	for _, m := range shapes {
		want, err := permute.Count(m)
		require.NoError(t, err)

		e, err := permute.New(m)
		require.NoError(t, err)

		seen := make(map[string]struct{}, want)
		prev := ""
		for {
			s, ok := e.Next()
			if !ok {
				break
			}
			require.Len(t, s, e.Len())

			tally := map[string]int{}
			for _, l := range s {
				tally[l]++
			}
			for l, n := range m {
				require.Equal(t, n, tally[l], "label %s in %v", l, s)
			}

			key := s.Join("\x00")
			_, dup := seen[key]
			require.False(t, dup, "duplicate %v", s)
			seen[key] = struct{}{}
			require.Greater(t, key, prev, "lexicographic order")
			prev = key
		}
		assert.Equal(t, want, uint64(len(seen)), "count law for %v", m)
	}
}

func TestEnumerate_RestartableAndStoppable(t *testing.T) {
	seq, err := permute.Enumerate(permute.Multiset{"A": 2, "B": 2})
	require.NoError(t, err)

	var first []string
	for s := range seq {
		first = append(first, s.Join(""))
	}
	require.Len(t, first, 6)

	// A second range starts over.
	var again []string
	for s := range seq {
		again = append(again, s.Join(""))
	}
	assert.Equal(t, first, again)

	// Early break after two items.
	var head []string
	for s := range seq {
		head = append(head, s.Join(""))
		if len(head) == 2 {
			break
		}
	}
	assert.Equal(t, []string{"AABB", "ABAB"}, head)
}

func TestEnumerate_ReturnedSlicesAreOwned(t *testing.T) {
	e, err := permute.New(permute.Multiset{"A": 1, "B": 1})
	require.NoError(t, err)

	a, _ := e.Next()
	b, _ := e.Next()
	assert.Equal(t, permute.Sequence{"A", "B"}, a, "first result must survive later Next calls")
	assert.Equal(t, permute.Sequence{"B", "A"}, b)
}
