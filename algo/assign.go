package algo

import (
	"github.com/sparselinalg/spla/format"
	"github.com/sparselinalg/spla/typesop"
)

// AssignVec sets w[i] = scalar for every index i selected by mask
// (every index, if mask is nil); an index already present in w is
// combined via accum instead of overwritten, when accum is non-nil
// (spec.md §6.3 "assign": w[i] = scalar where mask, with AccumResult).
func AssignVec(w *format.CooVec, mask *format.CooVec, complement bool, accum *typesop.Op, scalar []byte) *format.CooVec {
	targets := selectedIndices(w.Size, mask, complement)

	existing := make(map[int][]byte, len(w.Idx))
	for i, idx := range w.Idx {
		existing[idx] = w.Val[i]
	}
	for _, idx := range targets {
		if prev, ok := existing[idx]; ok && accum != nil {
			existing[idx] = accum.HostBinary(prev, scalar)
		} else {
			existing[idx] = scalar
		}
	}

	out := format.NewCooVec(w.Size, w.HasValues)
	for idx := 0; idx < w.Size; idx++ {
		if v, ok := existing[idx]; ok {
			out.Idx = append(out.Idx, idx)
			out.Val = append(out.Val, v)
		}
	}
	return out
}

// selectedIndices returns, in increasing order, every logical index in
// [0, size) selected by mask (all of them when mask is nil), honoring
// MaskComplement.
func selectedIndices(size int, mask *format.CooVec, complement bool) []int {
	if mask == nil {
		out := make([]int, size)
		for i := range out {
			out[i] = i
		}
		return out
	}
	inMask := make(map[int]bool, len(mask.Idx))
	for _, idx := range mask.Idx {
		inMask[idx] = true
	}
	var out []int
	for i := 0; i < size; i++ {
		if inMask[i] != complement {
			out = append(out, i)
		}
	}
	return out
}

// AssignMat lifts AssignVec to a matrix tile, row by row, against a
// per-row slice of a flattened column mask.
func AssignMat(w *format.Coo, mask *format.Coo, complement bool, accum *typesop.Op, scalar []byte) *format.Coo {
	wRows := splitRows(w)
	maskRows := map[int]*format.CooVec{}
	if mask != nil {
		maskRows = splitRows(mask)
	}
	out := format.NewCoo(w.Rows, w.Cols, w.HasValues)
	for r := 0; r < w.Rows; r++ {
		wv := rowOrEmpty(wRows, r, w.Cols, w.HasValues)
		assigned := AssignVec(wv, maskRows[r], complement, accum, scalar)
		appendRow(out, r, assigned)
	}
	return out
}
