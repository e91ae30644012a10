package algo

import (
	"github.com/sparselinalg/spla/format"
	"github.com/sparselinalg/spla/typesop"
)

// Map computes w = f(v) elementwise over v's present entries: map never
// introduces an entry at an absent index (spec.md §6.3 "map": w, v, unary).
func Map(v *format.CooVec, unary typesop.Op) *format.CooVec {
	w := format.NewCooVec(v.Size, v.HasValues)
	w.Idx = append([]int(nil), v.Idx...)
	w.Val = make([][]byte, len(v.Val))
	for i, val := range v.Val {
		w.Val[i] = unary.HostUnary(val)
	}
	return w
}

// MapMat lifts Map to a matrix tile, preserving (row, col) structure.
func MapMat(m *format.Coo, unary typesop.Op) *format.Coo {
	w := format.NewCoo(m.Rows, m.Cols, m.HasValues)
	w.Row = append([]int(nil), m.Row...)
	w.Col = append([]int(nil), m.Col...)
	w.Val = make([][]byte, len(m.Val))
	for i, val := range m.Val {
		w.Val[i] = unary.HostUnary(val)
	}
	return w
}
