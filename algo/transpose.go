package algo

import (
	"sort"

	"github.com/sparselinalg/spla/format"
	"github.com/sparselinalg/spla/typesop"
)

// Transpose computes w = aᵀ, restricted to mask and optionally combined
// with w's prior contents via accum (spec.md §6.3 "transpose": w, mask,
// accum, a). Swapping (row, col) breaks the lexicographic invariant, so
// the result is re-sorted before being returned — this is the "transpose
// -tria" kernel named in spec.md §2's C10 responsibility.
func Transpose(mask *format.Coo, accum *typesop.Op, prior *format.Coo, a *format.Coo) *format.Coo {
	w := format.NewCoo(a.Cols, a.Rows, a.HasValues)
	w.Row = append([]int(nil), a.Col...)
	w.Col = append([]int(nil), a.Row...)
	w.Val = append([][]byte(nil), a.Val...)
	sortCooInPlace(w)

	if mask != nil {
		w = maskCoo(w, mask, false)
	}
	if accum != nil && prior != nil {
		w = accumulateCoo(prior, w, *accum)
	}
	return w
}

func sortCooInPlace(m *format.Coo) {
	idx := make([]int, len(m.Row))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool {
		ia, ib := idx[a], idx[b]
		if m.Row[ia] != m.Row[ib] {
			return m.Row[ia] < m.Row[ib]
		}
		return m.Col[ia] < m.Col[ib]
	})
	row := make([]int, len(idx))
	col := make([]int, len(idx))
	val := make([][]byte, len(idx))
	for i, p := range idx {
		row[i], col[i], val[i] = m.Row[p], m.Col[p], m.Val[p]
	}
	m.Row, m.Col, m.Val = row, col, val
}

// maskCoo restricts m to (row,col) pairs selected by mask, honoring
// complement.
func maskCoo(m *format.Coo, mask *format.Coo, complement bool) *format.Coo {
	selected := make(map[[2]int]bool, len(mask.Row))
	for i := range mask.Row {
		selected[[2]int{mask.Row[i], mask.Col[i]}] = true
	}
	out := format.NewCoo(m.Rows, m.Cols, m.HasValues)
	for i := range m.Row {
		key := [2]int{m.Row[i], m.Col[i]}
		if selected[key] != complement {
			out.Row = append(out.Row, m.Row[i])
			out.Col = append(out.Col, m.Col[i])
			out.Val = append(out.Val, m.Val[i])
		}
	}
	return out
}

// accumulateCoo combines fresh's entries into prior's: a fresh index
// absent from prior is written directly, one present in both is folded
// with op (spec.md §4.10 "fresh index ... written directly; pre-existing
// index ... combined via reduceOp").
func accumulateCoo(prior, fresh *format.Coo, op typesop.Op) *format.Coo {
	priorVal := make(map[[2]int][]byte, len(prior.Row))
	for i := range prior.Row {
		priorVal[[2]int{prior.Row[i], prior.Col[i]}] = prior.Val[i]
	}
	for i := range fresh.Row {
		key := [2]int{fresh.Row[i], fresh.Col[i]}
		if pv, ok := priorVal[key]; ok {
			priorVal[key] = op.HostBinary(pv, fresh.Val[i])
		} else {
			priorVal[key] = fresh.Val[i]
		}
	}
	out := format.NewCoo(prior.Rows, prior.Cols, prior.HasValues)
	for k, v := range priorVal {
		out.Row = append(out.Row, k[0])
		out.Col = append(out.Col, k[1])
		out.Val = append(out.Val, v)
	}
	sortCooInPlace(out)
	return out
}
