package spla

import (
	"fmt"

	"github.com/sparselinalg/spla/expr"
	"github.com/sparselinalg/spla/format"
	"github.com/sparselinalg/spla/schedule"
	"github.com/sparselinalg/spla/typesop"
)

// execEwise runs one output tile of an EwiseAdd/EwiseMult node. Args:
// w, mask, op, a, b. w/a/b (and mask, if present) are either all
// *coreVector or all *coreMatrix, matching n.OutShape.IsVector.
func (ex *executor) execEwise(n *expr.Node, sub schedule.Subtask, vecKey, matKey string) error {
	if wv, ok := n.Args[0].(*coreVector); ok {
		av := n.Args[3].(*coreVector)
		bv := n.Args[4].(*coreVector)
		row := sub.Row

		aTile, err := vecTileCoo(av, row)
		if err != nil {
			return err
		}
		bTile, err := vecTileCoo(bv, row)
		if err != nil {
			return err
		}
		var maskTile *format.CooVec
		if mh, ok := n.Args[1].(*coreVector); ok && mh != nil {
			maskTile, err = vecTileCoo(mh, row)
			if err != nil {
				return err
			}
		}
		alg, err := ex.lib.resolve(vecKey)
		if err != nil {
			return err
		}
		res, err := alg.Run(maskTile, complementOf(n), n.Args[2].(typesop.Op), aTile, bTile)
		if err != nil {
			return err
		}
		return writeVecTile(wv, row, res.(*format.CooVec))
	}

	wm := n.Args[0].(*coreMatrix)
	am := n.Args[3].(*coreMatrix)
	bm := n.Args[4].(*coreMatrix)
	row, col := sub.Row, sub.Col

	aTile, err := matTileCoo(am, row, col)
	if err != nil {
		return err
	}
	bTile, err := matTileCoo(bm, row, col)
	if err != nil {
		return err
	}
	var maskTile *format.Coo
	if mh, ok := n.Args[1].(*coreMatrix); ok && mh != nil {
		maskTile, err = matTileCoo(mh, row, col)
		if err != nil {
			return err
		}
	}
	alg, err := ex.lib.resolve(matKey)
	if err != nil {
		return err
	}
	res, err := alg.Run(maskTile, complementOf(n), n.Args[2].(typesop.Op), aTile, bTile)
	if err != nil {
		return err
	}
	return writeMatTile(wm, row, col, res.(*format.Coo))
}

// execAssign runs one output tile of an Assign node. Args: w, mask,
// accum, scalar.
func (ex *executor) execAssign(n *expr.Node, sub schedule.Subtask) error {
	var accum *typesop.Op
	if a, ok := n.Args[2].(*typesop.Op); ok {
		accum = a
	}
	scalar := n.Args[3].([]byte)

	if wv, ok := n.Args[0].(*coreVector); ok {
		row := sub.Row
		wTile, err := vecTileCoo(wv, row)
		if err != nil {
			return err
		}
		var maskTile *format.CooVec
		if mh, ok := n.Args[1].(*coreVector); ok && mh != nil {
			maskTile, err = vecTileCoo(mh, row)
			if err != nil {
				return err
			}
		}
		alg, err := ex.lib.resolve("assign_vec")
		if err != nil {
			return err
		}
		res, err := alg.Run(wTile, maskTile, complementOf(n), accum, scalar)
		if err != nil {
			return err
		}
		return writeVecTile(wv, row, res.(*format.CooVec))
	}

	wm := n.Args[0].(*coreMatrix)
	row, col := sub.Row, sub.Col
	wTile, err := matTileCoo(wm, row, col)
	if err != nil {
		return err
	}
	var maskTile *format.Coo
	if mh, ok := n.Args[1].(*coreMatrix); ok && mh != nil {
		maskTile, err = matTileCoo(mh, row, col)
		if err != nil {
			return err
		}
	}
	alg, err := ex.lib.resolve("assign_mat")
	if err != nil {
		return err
	}
	res, err := alg.Run(wTile, maskTile, complementOf(n), accum, scalar)
	if err != nil {
		return err
	}
	return writeMatTile(wm, row, col, res.(*format.Coo))
}

// execMap runs one output tile of a Map node. Args: w, v, unary.
func (ex *executor) execMap(n *expr.Node, sub schedule.Subtask) error {
	unary := n.Args[2].(typesop.Op)

	if wv, ok := n.Args[0].(*coreVector); ok {
		src := n.Args[1].(*coreVector)
		row := sub.Row
		srcTile, err := vecTileCoo(src, row)
		if err != nil {
			return err
		}
		alg, err := ex.lib.resolve("map_vec")
		if err != nil {
			return err
		}
		res, err := alg.Run(srcTile, unary)
		if err != nil {
			return err
		}
		return writeVecTile(wv, row, res.(*format.CooVec))
	}

	wm, ok := n.Args[0].(*coreMatrix)
	if !ok {
		return fmt.Errorf("spla: map: unsupported destination handle")
	}
	src := n.Args[1].(*coreMatrix)
	row, col := sub.Row, sub.Col
	srcTile, err := matTileCoo(src, row, col)
	if err != nil {
		return err
	}
	alg, err := ex.lib.resolve("map_mat")
	if err != nil {
		return err
	}
	res, err := alg.Run(srcTile, unary)
	if err != nil {
		return err
	}
	return writeMatTile(wm, row, col, res.(*format.Coo))
}
