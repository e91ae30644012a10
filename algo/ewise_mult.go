package algo

import (
	"github.com/sparselinalg/spla/format"
	"github.com/sparselinalg/spla/typesop"
)

// EwiseMultVec computes w = a (x) b under op: only indices present in
// both operands survive (an index present in only one operand produces
// no output entry — "ewise_mult(a, empty) == empty", spec.md §8 property
// 5), then the surviving index set is further restricted by mask.
func EwiseMultVec(mask *format.CooVec, complement bool, op typesop.Op, a, b *format.CooVec) *format.CooVec {
	bVal := make(map[int][]byte, len(b.Idx))
	for i, idx := range b.Idx {
		bVal[idx] = b.Val[i]
	}

	var outKeys []int
	var outVals [][]byte
	for i, idx := range a.Idx {
		if bv, ok := bVal[idx]; ok {
			outKeys = append(outKeys, idx)
			outVals = append(outVals, op.HostBinary(a.Val[i], bv))
		}
	}
	outKeys, outVals = applyMaskVec(outKeys, outVals, mask, complement)

	w := format.NewCooVec(a.Size, a.HasValues)
	w.Idx, w.Val = outKeys, outVals
	return w
}

// EwiseMultMat lifts EwiseMultVec to matrices, row by row.
func EwiseMultMat(mask *format.Coo, complement bool, op typesop.Op, a, b *format.Coo) *format.Coo {
	aRows, bRows := splitRows(a), splitRows(b)
	maskRows := map[int]*format.CooVec{}
	if mask != nil {
		maskRows = splitRows(mask)
	}
	w := format.NewCoo(a.Rows, a.Cols, a.HasValues)
	for r := 0; r < a.Rows; r++ {
		av := rowOrEmpty(aRows, r, a.Cols, a.HasValues)
		bv := rowOrEmpty(bRows, r, b.Cols, b.HasValues)
		merged := EwiseMultVec(maskRows[r], complement, op, av, bv)
		appendRow(w, r, merged)
	}
	return w
}
