package spla

import (
	"github.com/sparselinalg/spla/expr"
	"github.com/sparselinalg/spla/format"
	"github.com/sparselinalg/spla/schedule"
	"github.com/sparselinalg/spla/typesop"
)

// execMxmSub computes one unmasked A[I,K] x B[K,J] contribution of a Mxm
// node and stashes it for Merge. Args: w, mask, mult, add, a, b.
func (ex *executor) execMxmSub(n *expr.Node, sub schedule.Subtask) error {
	a := n.Args[4].(*coreMatrix)
	b := n.Args[5].(*coreMatrix)
	mult, add := n.Args[2].(typesop.Op), n.Args[3].(typesop.Op)

	aTile, err := matTileCsr(a, sub.I, sub.K)
	if err != nil {
		return err
	}
	bTile, err := matTileCsr(b, sub.K, sub.J)
	if err != nil {
		return err
	}
	alg, err := ex.lib.resolve("mxm")
	if err != nil {
		return err
	}
	res, err := alg.Run(mult, add, aTile, bTile)
	if err != nil {
		return err
	}
	ex.addPartial(n, sub.I, sub.J, partialResult{mat: res.(*format.Coo)})
	return nil
}

// execVxmSub computes one unmasked v[K] x M[K,J] contribution of a Vxm
// node. Args: w, mask, mult, add, v, m.
func (ex *executor) execVxmSub(n *expr.Node, sub schedule.Subtask) error {
	v := n.Args[4].(*coreVector)
	m := n.Args[5].(*coreMatrix)
	mult, add := n.Args[2].(typesop.Op), n.Args[3].(typesop.Op)

	vTile, err := vecTileCoo(v, sub.K)
	if err != nil {
		return err
	}
	mTile, err := matTileCsr(m, sub.K, sub.J)
	if err != nil {
		return err
	}
	alg, err := ex.lib.resolve("vxm")
	if err != nil {
		return err
	}
	res, err := alg.Run(mult, add, vTile, mTile)
	if err != nil {
		return err
	}
	ex.addPartial(n, sub.I, sub.J, partialResult{vec: res.(*format.CooVec)})
	return nil
}

// execMxvSub computes one unmasked M[I,K] x v[K] contribution of a Mxv
// node. Args: w, mask, mult, add, m, v.
func (ex *executor) execMxvSub(n *expr.Node, sub schedule.Subtask) error {
	m := n.Args[4].(*coreMatrix)
	v := n.Args[5].(*coreVector)
	mult, add := n.Args[2].(typesop.Op), n.Args[3].(typesop.Op)

	mTile, err := matTileCsr(m, sub.I, sub.K)
	if err != nil {
		return err
	}
	vTile, err := vecTileCoo(v, sub.K)
	if err != nil {
		return err
	}
	alg, err := ex.lib.resolve("mxv")
	if err != nil {
		return err
	}
	res, err := alg.Run(mult, add, mTile, vTile)
	if err != nil {
		return err
	}
	ex.addPartial(n, sub.I, sub.J, partialResult{vec: res.(*format.CooVec)})
	return nil
}

// distinctOutputTiles returns each (I,J) pair seen across subs, in the
// order first encountered.
func distinctOutputTiles(subs []schedule.Subtask) [][2]int {
	seen := make(map[[2]int]bool, len(subs))
	var out [][2]int
	for _, s := range subs {
		key := [2]int{s.I, s.J}
		if !seen[key] {
			seen[key] = true
			out = append(out, key)
		}
	}
	return out
}

// mergeMxm sums every Product subtask's partial for each output tile
// with the node's add operator, masks the sum, and writes it to w.
func (ex *executor) mergeMxm(n *expr.Node, subs []schedule.Subtask) error {
	w := n.Args[0].(*coreMatrix)
	add := n.Args[3].(typesop.Op)
	cmpl := complementOf(n)

	addAlg, err := ex.lib.resolve("ewise_add_mat")
	if err != nil {
		return err
	}

	for _, ij := range distinctOutputTiles(subs) {
		i, j := ij[0], ij[1]
		parts := ex.takePartials(n, i, j)
		if len(parts) == 0 {
			continue
		}
		sum := parts[0].mat
		for _, p := range parts[1:] {
			res, err := addAlg.Run((*format.Coo)(nil), false, add, sum, p.mat)
			if err != nil {
				return err
			}
			sum = res.(*format.Coo)
		}
		if mh, ok := n.Args[1].(*coreMatrix); ok && mh != nil {
			maskTile, err := matTileCoo(mh, i, j)
			if err != nil {
				return err
			}
			empty := format.NewCoo(sum.Rows, sum.Cols, sum.HasValues)
			res, err := addAlg.Run(maskTile, cmpl, add, sum, empty)
			if err != nil {
				return err
			}
			sum = res.(*format.Coo)
		}
		if err := writeMatTile(w, i, j, sum); err != nil {
			return err
		}
	}
	return nil
}

// mergeVxm is mergeMxm's vector analogue for Vxm's output (addressed by
// J only; I is always 0).
func (ex *executor) mergeVxm(n *expr.Node, subs []schedule.Subtask) error {
	return ex.mergeVectorProduct(n, subs)
}

// mergeMxv is mergeMxm's vector analogue for Mxv's output (addressed by
// I only; J is always -1).
func (ex *executor) mergeMxv(n *expr.Node, subs []schedule.Subtask) error {
	return ex.mergeVectorProduct(n, subs)
}

func (ex *executor) mergeVectorProduct(n *expr.Node, subs []schedule.Subtask) error {
	w := n.Args[0].(*coreVector)
	add := n.Args[3].(typesop.Op)
	cmpl := complementOf(n)

	addAlg, err := ex.lib.resolve("ewise_add_vec")
	if err != nil {
		return err
	}

	for _, ij := range distinctOutputTiles(subs) {
		i, j := ij[0], ij[1]
		row := i
		if j >= 0 {
			row = j
		}
		parts := ex.takePartials(n, i, j)
		if len(parts) == 0 {
			continue
		}
		sum := parts[0].vec
		for _, p := range parts[1:] {
			res, err := addAlg.Run((*format.CooVec)(nil), false, add, sum, p.vec)
			if err != nil {
				return err
			}
			sum = res.(*format.CooVec)
		}
		if mh, ok := n.Args[1].(*coreVector); ok && mh != nil {
			maskTile, err := vecTileCoo(mh, row)
			if err != nil {
				return err
			}
			empty := format.NewCooVec(sum.Size, sum.HasValues)
			res, err := addAlg.Run(maskTile, cmpl, add, sum, empty)
			if err != nil {
				return err
			}
			sum = res.(*format.CooVec)
		}
		if err := writeVecTile(w, row, sum); err != nil {
			return err
		}
	}
	return nil
}
