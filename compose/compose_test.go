// SPDX-License-Identifier: MIT

package compose_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/glycoenum/compose"
)

func drain(t *testing.T, total, dim int) [][]int {
	t.Helper()
	seq, err := compose.Enumerate(total, dim)
	require.NoError(t, err)

	var out [][]int
	for v := range seq {
		out = append(out, v)
	}

	return out
}

func TestEnumerate_TotalThreeDimTwo(t *testing.T) {
	assert.Equal(t, [][]int{{0, 3}, {1, 2}, {2, 1}, {3, 0}}, drain(t, 3, 2))
}

func TestEnumerate_FirstPositionsVarySlowest(t *testing.T) {
	assert.Equal(t, [][]int{
		{0, 0, 2}, {0, 1, 1}, {0, 2, 0},
		{1, 0, 1}, {1, 1, 0},
		{2, 0, 0},
	}, drain(t, 2, 3))
}

func TestEnumerate_Degenerate(t *testing.T) {
	assert.Equal(t, [][]int{{5}}, drain(t, 5, 1), "one dimension absorbs everything")
	assert.Equal(t, [][]int{{0, 0, 0}}, drain(t, 0, 3), "zero total has exactly one vector")
}

// TestEnumerate_Completeness checks, for the sweep's six categories and a
// few smaller shapes, that the vector count equals C(t+d−1, d−1), that every
// vector sums to t with non-negative entries, and that none repeats.
func TestEnumerate_Completeness(t *testing.T) {
	for _, tc := range []struct{ total, dim int }{
		{0, 1}, {4, 1}, {4, 2}, {3, 4}, {2, 6}, {6, 6}, {10, 6},
	} {
		t.Run(fmt.Sprintf("t%d_d%d", tc.total, tc.dim), func(t *testing.T) {
			want, err := compose.Count(tc.total, tc.dim)
			require.NoError(t, err)

			seen := map[string]bool{}
			for _, v := range drain(t, tc.total, tc.dim) {
				require.Len(t, v, tc.dim)
				sum := 0
				for _, x := range v {
					require.GreaterOrEqual(t, x, 0)
					sum += x
				}
				require.Equal(t, tc.total, sum)
				key := fmt.Sprint(v)
				require.False(t, seen[key], "duplicate %v", v)
				seen[key] = true
			}
			assert.Equal(t, want, uint64(len(seen)))
		})
	}
}

func TestCount_Values(t *testing.T) {
	cases := []struct {
		total, dim int
		want       uint64
	}{
		{3, 2, 4},
		{2, 6, 21},
		{10, 6, 3003},
		{0, 6, 1},
		{7, 1, 1},
	}
	for _, tc := range cases {
		got, err := compose.Count(tc.total, tc.dim)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "C(%d+%d-1, %d-1)", tc.total, tc.dim, tc.dim)
	}

	_, err := compose.Count(1000, 1000)
	assert.ErrorIs(t, err, compose.ErrOverflow)
}

func TestInvalidArguments(t *testing.T) {
	_, err := compose.Enumerate(-1, 3)
	assert.ErrorIs(t, err, compose.ErrInvalidArgument)

	_, err = compose.New(3, 0)
	assert.ErrorIs(t, err, compose.ErrInvalidArgument)

	_, err = compose.Count(2, -1)
	assert.ErrorIs(t, err, compose.ErrInvalidArgument)
}

func TestEnumerator_VectorsAreOwned(t *testing.T) {
	e, err := compose.New(1, 2)
	require.NoError(t, err)

	a, ok := e.Next()
	require.True(t, ok)
	b, ok := e.Next()
	require.True(t, ok)
	_, ok = e.Next()
	require.False(t, ok)

	assert.Equal(t, []int{0, 1}, a)
	assert.Equal(t, []int{1, 0}, b)
}

func TestEnumerate_EarlyStop(t *testing.T) {
	seq, err := compose.Enumerate(10, 6)
	require.NoError(t, err)

	n := 0
	for range seq {
		n++
		if n == 5 {
			break
		}
	}
	assert.Equal(t, 5, n)
}
