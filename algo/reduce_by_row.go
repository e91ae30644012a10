package algo

import (
	"github.com/sparselinalg/spla/format"
	"github.com/sparselinalg/spla/typesop"
	"github.com/sparselinalg/spla/util"
)

// ReduceByRow computes v[i] = reduceOp over j of m[i,j], for every row
// with at least one entry; rows with no entries get no output entry
// unless init is non-nil, in which case they are seeded with init
// (spec.md §6.3 "reduce_by_row": v, m, reduce, init).
func ReduceByRow(m *format.Coo, reduceOp typesop.Op, init []byte) *format.CooVec {
	rowKeys, rowVals := util.ReduceByKey(m.Row, m.Val, reduceOp.HostBinary)

	out := format.NewCooVec(m.Rows, m.HasValues)
	seen := make(map[int]bool, len(rowKeys))
	for i, r := range rowKeys {
		out.Idx = append(out.Idx, r)
		out.Val = append(out.Val, rowVals[i])
		seen[r] = true
	}
	if init != nil {
		for r := 0; r < m.Rows; r++ {
			if !seen[r] {
				out.Idx = append(out.Idx, r)
				out.Val = append(out.Val, init)
			}
		}
		// Restore the index-increasing canonical order after appending
		// the seeded rows out of order.
		out = resortVec(out)
	}
	return out
}

func resortVec(v *format.CooVec) *format.CooVec {
	perm := util.SortByKey(v.Idx)
	sortedIdx := make([]int, len(v.Idx))
	util.GatherInts(perm, v.Idx, sortedIdx)
	sortedVal := make([][]byte, len(v.Val))
	util.Gather(perm, v.Val, sortedVal)
	out := format.NewCooVec(v.Size, v.HasValues)
	out.Idx, out.Val = sortedIdx, sortedVal
	return out
}
