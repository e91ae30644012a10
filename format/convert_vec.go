package format

import "github.com/sparselinalg/spla/util"

// DokVecToCooVec sorts a DokVec's entries by index into a fresh CooVec,
// establishing the canonical order required of Coo-family formats
// (spec.md §3 "canonical order").
func DokVecToCooVec(src *DokVec) *CooVec {
	keys := make([]int, 0, len(src.Entries))
	for k := range src.Entries {
		keys = append(keys, k)
	}
	perm := util.SortByKey(keys)
	sortedKeys := make([]int, len(keys))
	util.GatherInts(perm, keys, sortedKeys)

	vals := make([][]byte, len(keys))
	for i, k := range keys {
		vals[i] = src.Entries[k]
	}
	sortedVals := make([][]byte, len(vals))
	util.Gather(perm, vals, sortedVals)

	dst := NewCooVec(src.Size, src.HasValues)
	dst.Idx = sortedKeys
	dst.Val = sortedVals
	return dst
}

// CooVecToDokVec scatters a CooVec's ordered entries back into a DokVec;
// order is irrelevant for Dok, so no sort is needed.
func CooVecToDokVec(src *CooVec) *DokVec {
	dst := NewDokVec(src.Size, src.HasValues)
	for i, idx := range src.Idx {
		dst.Entries[idx] = src.Val[i]
	}
	return dst
}

// CooVecToDenseVec expands a CooVec into a DenseVec, leaving every
// non-listed slot at fill.
func CooVecToDenseVec(src *CooVec, fill []byte) *DenseVec {
	dst := NewDenseVec(src.Size, src.HasValues, fill)
	for i, idx := range src.Idx {
		dst.Ax[idx] = src.Val[i]
	}
	return dst
}

// DenseVecToCooVec collapses a DenseVec back to its sparse (index, value)
// pairs, skipping entries equal to Fill, in index-increasing order.
func DenseVecToCooVec(src *DenseVec) *CooVec {
	dst := NewCooVec(src.Size, src.HasValues)
	for i, v := range src.Ax {
		if !bytesEqual(v, src.Fill) {
			dst.Idx = append(dst.Idx, i)
			dst.Val = append(dst.Val, v)
		}
	}
	return dst
}
