package util_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sparselinalg/spla/util"
)

func b(v int64) []byte {
	out := make([]byte, 8)
	for i := 0; i < 8; i++ {
		out[i] = byte(v >> (8 * i))
	}
	return out
}

func i64(v []byte) int64 {
	var out int64
	for i := 0; i < 8; i++ {
		out |= int64(v[i]) << (8 * i)
	}
	return out
}

func plus(a, bb []byte) []byte { return b(i64(a) + i64(bb)) }

// TestReduceDuplicatesScenario exercises the concrete S6 scenario from
// SPEC_FULL.md §8.
func TestReduceDuplicatesScenario(t *testing.T) {
	keys := []int{0, 0, 1, 2, 3, 3, 4, 5, 5}
	vals := []int64{-1, 2, 4, 9, 0, -1, 4, 10, 20}
	bvals := make([][]byte, len(vals))
	for i, v := range vals {
		bvals[i] = b(v)
	}

	outKeys, outVals := util.ReduceDuplicates(keys, bvals, plus)

	require.Equal(t, []int{0, 1, 2, 3, 4, 5}, outKeys)
	want := []int64{1, 4, 9, -1, 4, 30}
	for i, w := range want {
		require.Equal(t, w, i64(outVals[i]), "index %d", i)
	}
}

func TestMergeByKey(t *testing.T) {
	aKeys := []int{0, 2, 4}
	bKeys := []int{1, 2, 5}
	aVals := [][]byte{b(1), b(2), b(3)}
	bVals := [][]byte{b(10), b(20), b(30)}

	keys, vals := util.MergeByKey(aKeys, aVals, bKeys, bVals)
	require.Equal(t, []int{0, 1, 2, 2, 4, 5}, keys)
	require.Len(t, vals, 6)
}

func TestMaskByKeyComplement(t *testing.T) {
	mask := []int{1, 3}
	aKeys := []int{0, 1, 2, 3, 4}
	aVals := [][]byte{b(0), b(1), b(2), b(3), b(4)}

	keys, _ := util.MaskByKey(mask, aKeys, aVals, false)
	require.Equal(t, []int{1, 3}, keys)

	keys, _ = util.MaskByKey(mask, aKeys, aVals, true)
	require.Equal(t, []int{0, 2, 4}, keys)
}

func TestPrefixSum(t *testing.T) {
	out := util.PrefixSum([]int{2, 0, 3, 1})
	require.Equal(t, []int{0, 2, 2, 5, 6}, out)
}

func TestSortByKeyAndGather(t *testing.T) {
	keys := []int{3, 1, 2}
	vals := [][]byte{b(30), b(10), b(20)}
	perm := util.SortByKey(keys)
	sortedKeys := make([]int, len(keys))
	util.GatherInts(perm, keys, sortedKeys)
	sortedVals := make([][]byte, len(vals))
	util.Gather(perm, vals, sortedVals)

	require.Equal(t, []int{1, 2, 3}, sortedKeys)
	require.Equal(t, int64(10), i64(sortedVals[0]))
	require.Equal(t, int64(30), i64(sortedVals[2]))
}
