package algo

import (
	"sort"

	"github.com/sparselinalg/spla/format"
	"github.com/sparselinalg/spla/typesop"
)

// Mxm computes w = a × b over the (mult, add) semiring, restricted to
// mask (spec.md §6.3 "mxm": w, mask, mult, add, a, b). This is the Csr×Csr
// fast path SPEC_FULL.md §4.10 calls out: one subtask's worth of work per
// scheduler.computeSubtasks' product-stage contract (spec.md §4.8 "one
// subtask per inner product A[i,k] × B[k,j]"), but expressed here as a
// single-tile call — the scheduler (package schedule) is the one that
// actually slices this into per-(i,k,j) subtasks and merges them; a
// direct per-tile call is equivalent to running every such subtask for
// this tile and merging immediately.
func Mxm(mask *format.Coo, complement bool, mult, add typesop.Op, a, b *format.Csr) *format.Coo {
	w := format.NewCoo(a.Rows, b.Cols, a.HasValues)
	var maskRows map[int]map[int]bool
	if mask != nil {
		maskRows = maskByRow(mask)
	}

	for i := 0; i < a.Rows; i++ {
		acc := map[int][]byte{}
		aStart, aEnd := a.RowRange(i)
		for ai := aStart; ai < aEnd; ai++ {
			k := a.Aj[ai]
			va := elemOrNil(a.Ax, ai)
			bStart, bEnd := b.RowRange(k)
			for bi := bStart; bi < bEnd; bi++ {
				j := b.Aj[bi]
				vb := elemOrNil(b.Ax, bi)
				contrib := mult.HostBinary(va, vb)
				if prev, ok := acc[j]; ok {
					acc[j] = add.HostBinary(prev, contrib)
				} else {
					acc[j] = contrib
				}
			}
		}
		if len(acc) == 0 {
			continue
		}
		cols := make([]int, 0, len(acc))
		for j := range acc {
			cols = append(cols, j)
		}
		sort.Ints(cols)
		rowMask := maskRows[i]
		for _, j := range cols {
			if rowMask != nil {
				if rowMask[j] == complement {
					continue
				}
			} else if mask != nil && complement {
				// mask supplied but this row has no selected columns at
				// all: under complement every column of this row is kept.
			} else if mask != nil {
				continue
			}
			w.Row = append(w.Row, i)
			w.Col = append(w.Col, j)
			w.Val = append(w.Val, acc[j])
		}
	}
	return w
}

func elemOrNil(ax [][]byte, i int) []byte {
	if ax == nil {
		return nil
	}
	return ax[i]
}

func maskByRow(mask *format.Coo) map[int]map[int]bool {
	out := map[int]map[int]bool{}
	for i := range mask.Row {
		r := mask.Row[i]
		if out[r] == nil {
			out[r] = map[int]bool{}
		}
		out[r][mask.Col[i]] = true
	}
	return out
}
