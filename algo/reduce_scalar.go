package algo

import (
	"github.com/sparselinalg/spla/format"
	"github.com/sparselinalg/spla/typesop"
)

// ReduceScalar folds every mask-selected entry of m (a vector or a
// flattened matrix tile) with reduceOp, left to right in canonical
// order; reduceOp is assumed associative so the fold order across tiles
// does not matter (spec.md §4.10, §8 property 7 "reduce associativity").
// ok is false when no entry is selected — the NoValue condition of
// spec.md §6.5, left for the caller (package spla) to turn into a status
// code instead of a zero value.
func ReduceScalar(mask *format.CooVec, complement bool, accum *typesop.Op, reduceOp typesop.Op, prior []byte, m *format.CooVec) (result []byte, ok bool) {
	keys, vals := applyMaskVec(m.Idx, m.Val, mask, complement)
	if len(vals) == 0 {
		if accum != nil && prior != nil {
			return prior, true
		}
		return nil, false
	}
	acc := vals[0]
	for i := 1; i < len(vals); i++ {
		acc = reduceOp.HostBinary(acc, vals[i])
	}
	_ = keys
	if accum != nil && prior != nil {
		acc = accum.HostBinary(prior, acc)
	}
	return acc, true
}

// ReduceScalarMat flattens a matrix tile's rows into one (row,col)-free
// value stream before folding, since reduce_scalar's output does not
// depend on index at all.
func ReduceScalarMat(mask *format.Coo, complement bool, accum *typesop.Op, reduceOp typesop.Op, prior []byte, m *format.Coo) ([]byte, bool) {
	asVec := format.NewCooVec(len(m.Val), m.HasValues)
	asVec.Idx = make([]int, len(m.Val))
	for i := range m.Val {
		asVec.Idx[i] = i
	}
	asVec.Val = m.Val

	var maskVec *format.CooVec
	if mask != nil {
		inMask := make(map[[2]int]bool, len(mask.Row))
		for i := range mask.Row {
			inMask[[2]int{mask.Row[i], mask.Col[i]}] = true
		}
		maskVec = format.NewCooVec(len(m.Val), mask.HasValues)
		for i := range m.Val {
			if inMask[[2]int{m.Row[i], m.Col[i]}] {
				maskVec.Idx = append(maskVec.Idx, i)
			}
		}
	}
	return ReduceScalar(maskVec, complement, accum, reduceOp, prior, asVec)
}
