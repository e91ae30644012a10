package spla

import (
	"github.com/sparselinalg/spla/expr"
	"github.com/sparselinalg/spla/format"
	"github.com/sparselinalg/spla/schedule"
	"github.com/sparselinalg/spla/typesop"
)

// execTranspose runs one output tile of a Transpose node. Args: w, mask,
// a. w's output tile (I,J) is the local transpose of a's tile (J,I); the
// accum operator, if any, was stashed under the AccumResult descriptor
// param rather than carried as an Args slot, so it applies against w's
// own pre-existing tile content.
func (ex *executor) execTranspose(n *expr.Node, sub schedule.Subtask) error {
	w := n.Args[0].(*coreMatrix)
	a := n.Args[2].(*coreMatrix)
	i, j := sub.Row, sub.Col

	srcTile, err := matTileCoo(a, j, i)
	if err != nil {
		return err
	}
	var maskTile *format.Coo
	if mh, ok := n.Args[1].(*coreMatrix); ok && mh != nil {
		maskTile, err = matTileCoo(mh, i, j)
		if err != nil {
			return err
		}
	}
	var accum *typesop.Op
	var prior *format.Coo
	if op, ok := accumOp(n); ok {
		accum = &op
		prior, err = matTileCoo(w, i, j)
		if err != nil {
			return err
		}
	}

	alg, err := ex.lib.resolve("transpose")
	if err != nil {
		return err
	}
	res, err := alg.Run(maskTile, accum, prior, srcTile)
	if err != nil {
		return err
	}
	return writeMatTile(w, i, j, res.(*format.Coo))
}

// execTriangle runs one output tile of a Tril/Triu node. Args: w, a.
// tril/triu is defined over global (row, col) comparison; for a tile
// strictly below (tril keeps it whole) or above (triu keeps it whole)
// the main diagonal, every entry already satisfies (or fails) the
// predicate uniformly, so only the diagonal tile (I == J) needs the
// per-entry local filter algo.Tril/Triu implement — this assumes every
// row/col block shares one square tiling, true for every Tril/Triu node
// this package builds.
func (ex *executor) execTriangle(n *expr.Node, sub schedule.Subtask, lower bool) error {
	w := n.Args[0].(*coreMatrix)
	a := n.Args[1].(*coreMatrix)
	i, j := sub.Row, sub.Col

	srcTile, err := matTileCoo(a, i, j)
	if err != nil {
		return err
	}

	var out *format.Coo
	switch {
	case i == j:
		algName := "triu"
		if lower {
			algName = "tril"
		}
		alg, err := ex.lib.resolve(algName)
		if err != nil {
			return err
		}
		res, err := alg.Run(srcTile)
		if err != nil {
			return err
		}
		out = res.(*format.Coo)
	case (i > j) == lower:
		out = srcTile
	default:
		out = format.NewCoo(srcTile.Rows, srcTile.Cols, srcTile.HasValues)
	}
	return writeMatTile(w, i, j, out)
}

// execExtractRow runs one output tile of an ExtractRow node. Args: r,
// m, unary, i. The output vector r is tiled over m's column dimension;
// Execute locates the matrix row-block owning global row i and reads
// the (rowBlock, sub.Row) tile.
func (ex *executor) execExtractRow(n *expr.Node, sub schedule.Subtask) error {
	r := n.Args[0].(*coreVector)
	m := n.Args[1].(*coreMatrix)
	unary := n.Args[2].(typesop.Op)
	i := n.Args[3].(int)
	col := sub.Row

	b := m.blockSize()
	rowBlock := i / b
	localRow := i - rowBlock*b

	srcTile, err := matTileCoo(m, rowBlock, col)
	if err != nil {
		return err
	}
	alg, err := ex.lib.resolve("extract_row")
	if err != nil {
		return err
	}
	res, err := alg.Run(srcTile, unary, localRow)
	if err != nil {
		return err
	}
	return writeVecTile(r, col, res.(*format.CooVec))
}
