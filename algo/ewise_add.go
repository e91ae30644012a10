package algo

import (
	"github.com/sparselinalg/spla/format"
	"github.com/sparselinalg/spla/typesop"
	"github.com/sparselinalg/spla/util"
)

// applyMaskVec filters (keys, vals) against an optional mask CooVec,
// honoring MaskComplement. A nil mask means every index participates.
func applyMaskVec(keys []int, vals [][]byte, mask *format.CooVec, complement bool) ([]int, [][]byte) {
	if mask == nil {
		return keys, vals
	}
	return util.MaskByKey(mask.Idx, keys, vals, complement)
}

// EwiseAddVec computes w = a (+) b under op, restricted to mask, per the
// masked-reduce contract in doc.go. A fresh index from either operand is
// written directly; an index present in both is combined via op.
func EwiseAddVec(mask *format.CooVec, complement bool, op typesop.Op, a, b *format.CooVec) *format.CooVec {
	mergedKeys, mergedVals := util.MergeByKey(a.Idx, a.Val, b.Idx, b.Val)
	outKeys, outVals := util.ReduceDuplicates(mergedKeys, mergedVals, op.HostBinary)
	outKeys, outVals = applyMaskVec(outKeys, outVals, mask, complement)

	w := format.NewCooVec(a.Size, a.HasValues)
	w.Idx, w.Val = outKeys, outVals
	return w
}

// EwiseAddMat is EwiseAddVec lifted to matrices: rows are merged
// independently, then concatenated in row-increasing order, which
// preserves the Coo lexicographic invariant (spec.md §8 property 4).
func EwiseAddMat(mask *format.Coo, complement bool, op typesop.Op, a, b *format.Coo) *format.Coo {
	aRows := splitRows(a)
	bRows := splitRows(b)
	rows := a.Rows
	w := format.NewCoo(a.Rows, a.Cols, a.HasValues)
	maskRows := map[int]*format.CooVec{}
	if mask != nil {
		for r, cols := range splitRows(mask) {
			maskRows[r] = cols
		}
	}
	for r := 0; r < rows; r++ {
		av := rowOrEmpty(aRows, r, a.Cols, a.HasValues)
		bv := rowOrEmpty(bRows, r, b.Cols, b.HasValues)
		merged := EwiseAddVec(maskRows[r], complement, op, av, bv)
		appendRow(w, r, merged)
	}
	return w
}

// splitRows regroups a row-sorted Coo into one CooVec (over columns) per
// row index that has at least one entry.
func splitRows(m *format.Coo) map[int]*format.CooVec {
	out := map[int]*format.CooVec{}
	i := 0
	for i < len(m.Row) {
		r := m.Row[i]
		v := format.NewCooVec(m.Cols, m.HasValues)
		for i < len(m.Row) && m.Row[i] == r {
			v.Idx = append(v.Idx, m.Col[i])
			v.Val = append(v.Val, m.Val[i])
			i++
		}
		out[r] = v
	}
	return out
}

func rowOrEmpty(rows map[int]*format.CooVec, r, cols int, hasValues bool) *format.CooVec {
	if v, ok := rows[r]; ok {
		return v
	}
	return format.NewCooVec(cols, hasValues)
}

func appendRow(w *format.Coo, row int, v *format.CooVec) {
	for i, c := range v.Idx {
		w.Row = append(w.Row, row)
		w.Col = append(w.Col, c)
		w.Val = append(w.Val, v.Val[i])
	}
}
