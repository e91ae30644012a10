package algo

import (
	"github.com/sparselinalg/spla/format"
	"github.com/sparselinalg/spla/typesop"
)

// ExtractRow computes r = f(m[i, :]) — the row's (col, value) pairs with
// unary applied to each value (spec.md §6.3 "extract_row": r, m, unary, i).
// unary may be the identity op when no transform is wanted.
func ExtractRow(m *format.Coo, unary typesop.Op, row int) *format.CooVec {
	r := format.NewCooVec(m.Cols, m.HasValues)
	for i := range m.Row {
		if m.Row[i] != row {
			continue
		}
		r.Idx = append(r.Idx, m.Col[i])
		r.Val = append(r.Val, unary.HostUnary(m.Val[i]))
	}
	return r
}
