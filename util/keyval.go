package util

import "sort"

// CombineFn folds two payloads into one, the shape the dispatcher hands
// these primitives whenever a reduce/accum Op is in play (typesop.BinaryHost
// satisfies this signature exactly).
type CombineFn func(a, b []byte) []byte

// ReduceByKey collapses runs of equal adjacent keys by folding their
// values with op, left to right. keys must already be sorted — the
// contract is the caller's, not this function's, to uphold (spec.md
// §4.11): ReduceByKey does not itself sort.
func ReduceByKey(keys []int, values [][]byte, op CombineFn) (outKeys []int, outValues [][]byte) {
	n := len(keys)
	if n == 0 {
		return nil, nil
	}
	outKeys = make([]int, 0, n)
	outValues = make([][]byte, 0, n)

	curKey := keys[0]
	curVal := values[0]
	for i := 1; i < n; i++ {
		if keys[i] == curKey {
			curVal = op(curVal, values[i])
			continue
		}
		outKeys = append(outKeys, curKey)
		outValues = append(outValues, curVal)
		curKey, curVal = keys[i], values[i]
	}
	outKeys = append(outKeys, curKey)
	outValues = append(outValues, curVal)
	return outKeys, outValues
}

// ReduceDuplicates is ReduceByKey under the stronger guarantee that no key
// appears more than twice consecutively — the shape produced by a two-way
// MergeByKey of two duplicate-free sorted sequences. The guarantee lets
// callers (e.g. the ewise-add algorithms) skip a general run-length scan,
// but the implementation itself is correct for any run length, so a
// violated guarantee degrades to ReduceByKey's behavior rather than
// corrupting output.
func ReduceDuplicates(keys []int, values [][]byte, op CombineFn) (outKeys []int, outValues [][]byte) {
	return ReduceByKey(keys, values, op)
}

// MergeByKey stably merges two key-sorted (key,value) sequences into one
// key-sorted sequence; it does not collapse duplicate keys (pair that with
// ReduceDuplicates when both inputs may contain the same key).
func MergeByKey(aKeys []int, aVals [][]byte, bKeys []int, bVals [][]byte) (outKeys []int, outVals [][]byte) {
	outKeys = make([]int, 0, len(aKeys)+len(bKeys))
	outVals = make([][]byte, 0, len(aKeys)+len(bKeys))
	i, j := 0, 0
	for i < len(aKeys) && j < len(bKeys) {
		if aKeys[i] <= bKeys[j] {
			outKeys = append(outKeys, aKeys[i])
			outVals = append(outVals, aVals[i])
			i++
		} else {
			outKeys = append(outKeys, bKeys[j])
			outVals = append(outVals, bVals[j])
			j++
		}
	}
	for ; i < len(aKeys); i++ {
		outKeys = append(outKeys, aKeys[i])
		outVals = append(outVals, aVals[i])
	}
	for ; j < len(bKeys); j++ {
		outKeys = append(outKeys, bKeys[j])
		outVals = append(outVals, bVals[j])
	}
	return outKeys, outVals
}

// MaskByKey filters (aKeys, aVals) down to those keys present in
// maskKeys (complement=false) or absent from maskKeys (complement=true).
// Both aKeys and maskKeys must be sorted ascending.
func MaskByKey(maskKeys []int, aKeys []int, aVals [][]byte, complement bool) (outKeys []int, outVals [][]byte) {
	maskSet := make(map[int]struct{}, len(maskKeys))
	for _, k := range maskKeys {
		maskSet[k] = struct{}{}
	}
	outKeys = make([]int, 0, len(aKeys))
	outVals = make([][]byte, 0, len(aKeys))
	for i, k := range aKeys {
		_, present := maskSet[k]
		if present != complement {
			outKeys = append(outKeys, k)
			outVals = append(outVals, aVals[i])
		}
	}
	return outKeys, outVals
}

// SortByKey returns the permutation that sorts keys ascending, stable on
// ties, without mutating keys itself.
func SortByKey(keys []int) []int {
	perm := make([]int, len(keys))
	for i := range perm {
		perm[i] = i
	}
	sort.SliceStable(perm, func(a, b int) bool { return keys[perm[a]] < keys[perm[b]] })
	return perm
}

// Gather sets dst[i] = src[perm[i]] for every i, the permutation-apply
// step that follows SortByKey.
func Gather(perm []int, src [][]byte, dst [][]byte) {
	for i, p := range perm {
		dst[i] = src[p]
	}
}

// GatherInts is Gather specialized to []int payloads (row/col index arrays).
func GatherInts(perm []int, src []int, dst []int) {
	for i, p := range perm {
		dst[i] = src[p]
	}
}

// PrefixSum computes the exclusive scan of values: it returns a new
// slice of len(values)+1 where out[i] = sum(values[:i]) and
// out[len(values)] is the grand total — the shape of a Csr Ap array.
func PrefixSum(values []int) []int {
	out := make([]int, len(values)+1)
	sum := 0
	for i, v := range values {
		out[i] = sum
		sum += v
	}
	out[len(values)] = sum
	return out
}

// TransformValues computes out[i] = op(aVals[aMap[i]], bVals[bMap[i]]) for
// every i: a gather-then-combine step for operands whose indices have
// been aligned to a shared output index space through aMap and bMap.
func TransformValues(aMap, bMap []int, aVals, bVals [][]byte, op CombineFn) [][]byte {
	out := make([][]byte, len(aMap))
	for i := range aMap {
		out[i] = op(aVals[aMap[i]], bVals[bMap[i]])
	}
	return out
}
