package algo

import "github.com/sparselinalg/spla/format"

// Tril computes w = the strict lower triangle of a: entries with
// row > col (spec.md §6.3 "tril / triu": w = strict lower/upper triangle
// of a).
func Tril(a *format.Coo) *format.Coo {
	return filterTriangle(a, func(r, c int) bool { return r > c })
}

// Triu computes w = the strict upper triangle of a: entries with col > row.
func Triu(a *format.Coo) *format.Coo {
	return filterTriangle(a, func(r, c int) bool { return c > r })
}

func filterTriangle(a *format.Coo, keep func(r, c int) bool) *format.Coo {
	w := format.NewCoo(a.Rows, a.Cols, a.HasValues)
	for i := range a.Row {
		if keep(a.Row[i], a.Col[i]) {
			w.Row = append(w.Row, a.Row[i])
			w.Col = append(w.Col, a.Col[i])
			w.Val = append(w.Val, a.Val[i])
		}
	}
	return w
}
