package spla

import (
	"sort"

	"github.com/sparselinalg/spla/expr"
	"github.com/sparselinalg/spla/format"
	"github.com/sparselinalg/spla/schedule"
	"github.com/sparselinalg/spla/typesop"
)

// execReduceScalar runs the lone subtask of a ReduceScalar node. Args:
// s, mask, accum, reduce, m. Because OutShape.IsScalar collapses to one
// subtask regardless of how many tiles m spans, Execute loops every
// tile of m itself and folds the per-tile results using reduceOp as its
// own cross-tile accumulator (reduce is assumed associative, per
// package algo's ReduceScalar doc), then applies the node's real accum
// once against s's prior value.
func (ex *executor) execReduceScalar(n *expr.Node, sub schedule.Subtask) error {
	s := n.Args[0].(*coreScalar)
	var accum *typesop.Op
	if a, ok := n.Args[2].(*typesop.Op); ok {
		accum = a
	}
	reduceOp := n.Args[3].(typesop.Op)
	cmpl := complementOf(n)

	var acc []byte
	accOk := false

	if mv, ok := n.Args[4].(*coreVector); ok {
		var maskV *coreVector
		if mh, ok := n.Args[1].(*coreVector); ok {
			maskV = mh
		}
		alg, err := ex.lib.resolve("reduce_scalar_vec")
		if err != nil {
			return err
		}
		for row := 0; row < mv.blockCount(); row++ {
			tile, err := vecTileCoo(mv, row)
			if err != nil {
				return err
			}
			var maskTile *format.CooVec
			if maskV != nil {
				maskTile, err = vecTileCoo(maskV, row)
				if err != nil {
					return err
				}
			}
			var tileAccum *typesop.Op
			var prior []byte
			if accOk {
				tileAccum, prior = &reduceOp, acc
			}
			res, err := alg.Run(maskTile, cmpl, tileAccum, reduceOp, prior, tile)
			if err != nil {
				return err
			}
			rr := res.(reduceResult)
			if rr.Ok {
				acc, accOk = rr.Val, true
			}
		}
	} else {
		mm := n.Args[4].(*coreMatrix)
		var maskM *coreMatrix
		if mh, ok := n.Args[1].(*coreMatrix); ok {
			maskM = mh
		}
		alg, err := ex.lib.resolve("reduce_scalar_mat")
		if err != nil {
			return err
		}
		for row := 0; row < mm.rowBlocks(); row++ {
			for col := 0; col < mm.colBlocks(); col++ {
				tile, err := matTileCoo(mm, row, col)
				if err != nil {
					return err
				}
				var maskTile *format.Coo
				if maskM != nil {
					maskTile, err = matTileCoo(maskM, row, col)
					if err != nil {
						return err
					}
				}
				var tileAccum *typesop.Op
				var prior []byte
				if accOk {
					tileAccum, prior = &reduceOp, acc
				}
				res, err := alg.Run(maskTile, cmpl, tileAccum, reduceOp, prior, tile)
				if err != nil {
					return err
				}
				rr := res.(reduceResult)
				if rr.Ok {
					acc, accOk = rr.Val, true
				}
			}
		}
	}

	if !accOk {
		return nil
	}
	if prior, hasPrior := s.get(); hasPrior && accum != nil {
		acc = accum.HostBinary(prior, acc)
	}
	s.set(acc)
	return nil
}

// execReduceByRow runs one output row-block of a ReduceByRow node. Args:
// v, m, reduce, init. The matrix operand m may span several column
// blocks for this row; Execute folds each column tile's contribution
// with reduceOp before writing v's tile.
func (ex *executor) execReduceByRow(n *expr.Node, sub schedule.Subtask) error {
	v := n.Args[0].(*coreVector)
	m := n.Args[1].(*coreMatrix)
	reduceOp := n.Args[2].(typesop.Op)
	var init []byte
	if i, ok := n.Args[3].([]byte); ok {
		init = i
	}
	row := sub.Row

	rowAlg, err := ex.lib.resolve("reduce_by_row")
	if err != nil {
		return err
	}
	addAlg, err := ex.lib.resolve("ewise_add_vec")
	if err != nil {
		return err
	}

	var acc *format.CooVec
	localSize := 0
	for col := 0; col < m.colBlocks(); col++ {
		tile, err := matTileCoo(m, row, col)
		if err != nil {
			return err
		}
		localSize = tile.Rows
		res, err := rowAlg.Run(tile, reduceOp, []byte(nil))
		if err != nil {
			return err
		}
		partial := res.(*format.CooVec)
		if acc == nil {
			acc = partial
			continue
		}
		combined, err := addAlg.Run((*format.CooVec)(nil), false, reduceOp, acc, partial)
		if err != nil {
			return err
		}
		acc = combined.(*format.CooVec)
	}
	if acc == nil {
		acc = format.NewCooVec(localSize, v.hasValues)
	}
	if init != nil {
		seen := make(map[int]bool, len(acc.Idx))
		for _, idx := range acc.Idx {
			seen[idx] = true
		}
		for i := 0; i < acc.Size; i++ {
			if !seen[i] {
				acc.Idx = append(acc.Idx, i)
				acc.Val = append(acc.Val, init)
			}
		}
		sortCooVecInPlace(acc)
	}
	return writeVecTile(v, row, acc)
}

// sortCooVecInPlace restores index-increasing order after entries were
// appended out of order (e.g. ReduceByRow's init-seeded rows).
func sortCooVecInPlace(v *format.CooVec) {
	perm := make([]int, len(v.Idx))
	for i := range perm {
		perm[i] = i
	}
	sort.Slice(perm, func(a, b int) bool { return v.Idx[perm[a]] < v.Idx[perm[b]] })
	idx := make([]int, len(v.Idx))
	val := make([][]byte, len(v.Val))
	for i, p := range perm {
		idx[i], val[i] = v.Idx[p], v.Val[p]
	}
	v.Idx, v.Val = idx, val
}
