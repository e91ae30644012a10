package algo

import (
	"sort"

	"github.com/sparselinalg/spla/format"
	"github.com/sparselinalg/spla/typesop"
)

// Vxm computes w = v × m over the (mult, add) semiring: w[j] = add over i
// of mult(v[i], m[i,j]), restricted to mask (spec.md §6.3 "vxm": w, mask,
// mult, add, v, m). The scheduler issues one subtask per (inner block,
// output block) pair; each such subtask calls Vxm once with one tile of
// v and one tile of m.
func Vxm(mask *format.CooVec, complement bool, mult, add typesop.Op, v *format.CooVec, m *format.Csr) *format.CooVec {
	acc := map[int][]byte{}
	for vi, i := range v.Idx {
		vval := v.Val[vi]
		start, end := m.RowRange(i)
		for mi := start; mi < end; mi++ {
			j := m.Aj[mi]
			contrib := mult.HostBinary(vval, elemOrNil(m.Ax, mi))
			if prev, ok := acc[j]; ok {
				acc[j] = add.HostBinary(prev, contrib)
			} else {
				acc[j] = contrib
			}
		}
	}
	return finishVec(acc, m.Cols, v.HasValues, mask, complement)
}

// Mxv computes w = m × v over the (mult, add) semiring: w[i] = add over j
// of mult(m[i,j], v[j]) (spec.md §6.3 "mxv": w, mask, mult, add, m, v).
func Mxv(mask *format.CooVec, complement bool, mult, add typesop.Op, m *format.Csr, v *format.CooVec) *format.CooVec {
	vVal := make(map[int][]byte, len(v.Idx))
	for i, idx := range v.Idx {
		vVal[idx] = v.Val[i]
	}

	acc := map[int][]byte{}
	for i := 0; i < m.Rows; i++ {
		start, end := m.RowRange(i)
		for mi := start; mi < end; mi++ {
			j := m.Aj[mi]
			vval, ok := vVal[j]
			if !ok {
				continue
			}
			contrib := mult.HostBinary(elemOrNil(m.Ax, mi), vval)
			if prev, had := acc[i]; had {
				acc[i] = add.HostBinary(prev, contrib)
			} else {
				acc[i] = contrib
			}
		}
	}
	return finishVec(acc, m.Rows, v.HasValues, mask, complement)
}

func finishVec(acc map[int][]byte, size int, hasValues bool, mask *format.CooVec, complement bool) *format.CooVec {
	idx := make([]int, 0, len(acc))
	for k := range acc {
		idx = append(idx, k)
	}
	sort.Ints(idx)
	vals := make([][]byte, len(idx))
	for i, k := range idx {
		vals[i] = acc[k]
	}
	idx, vals = applyMaskVec(idx, vals, mask, complement)

	w := format.NewCooVec(size, hasValues)
	w.Idx, w.Val = idx, vals
	return w
}
