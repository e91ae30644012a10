package spla

import (
	"context"
	"fmt"
	"sync"

	"github.com/sparselinalg/spla/block"
	"github.com/sparselinalg/spla/descriptor"
	"github.com/sparselinalg/spla/expr"
	"github.com/sparselinalg/spla/format"
	"github.com/sparselinalg/spla/schedule"
	"github.com/sparselinalg/spla/typesop"
)

// productKey groups every Product subtask contribution for one output
// tile of a multiplication node so Merge can fold them together.
type productKey struct {
	node *expr.Node
	i, j int
}

// partialResult is one inner-block contribution to a product node's
// output tile: exactly one of vec/mat is set, matching whether the node
// produces a vector (vxm, mxv) or a matrix (mxm).
type partialResult struct {
	vec *format.CooVec
	mat *format.Coo
}

// executor implements schedule.Executor over this package's core
// objects. A Library owns exactly one, created in NewLibrary.
type executor struct {
	lib *Library

	mu    sync.Mutex
	parts map[productKey][]partialResult
}

func (ex *executor) addPartial(n *expr.Node, i, j int, pr partialResult) {
	ex.mu.Lock()
	defer ex.mu.Unlock()
	k := productKey{n, i, j}
	ex.parts[k] = append(ex.parts[k], pr)
}

func (ex *executor) takePartials(n *expr.Node, i, j int) []partialResult {
	ex.mu.Lock()
	defer ex.mu.Unlock()
	k := productKey{n, i, j}
	ps := ex.parts[k]
	delete(ex.parts, k)
	return ps
}

func complementOf(n *expr.Node) bool {
	return n.Desc != nil && n.Desc.IsParamSet(descriptor.MaskComplement)
}

// accumOp resolves the operator stashed under the AccumResult descriptor
// param (used by nodes, like Transpose, whose fixed Args arity has no
// room for an explicit accum slot).
func accumOp(n *expr.Node) (typesop.Op, bool) {
	if n.Desc == nil {
		return typesop.Op{}, false
	}
	key, ok := n.Desc.GetParam(descriptor.AccumResult)
	if !ok || key == "" {
		return typesop.Op{}, false
	}
	return typesop.Lookup(key)
}

// Execute runs one subtask of node n. Per-tile nodes (everything except
// Mxm/Vxm/Mxv) fully compute and write their output tile here; product
// nodes stash an unmasked partial contribution for Merge to fold.
func (ex *executor) Execute(ctx context.Context, n *expr.Node, sub schedule.Subtask) error {
	switch n.Kind {
	case expr.DataWrite:
		return ex.execDataWrite(n, sub)
	case expr.DataRead:
		return ex.execDataRead(n, sub)
	case expr.EwiseAdd:
		return ex.execEwise(n, sub, "ewise_add_vec", "ewise_add_mat")
	case expr.EwiseMult:
		return ex.execEwise(n, sub, "ewise_mult_vec", "ewise_mult_mat")
	case expr.Assign:
		return ex.execAssign(n, sub)
	case expr.ReduceScalar:
		return ex.execReduceScalar(n, sub)
	case expr.ReduceByRow:
		return ex.execReduceByRow(n, sub)
	case expr.Mxm:
		return ex.execMxmSub(n, sub)
	case expr.Vxm:
		return ex.execVxmSub(n, sub)
	case expr.Mxv:
		return ex.execMxvSub(n, sub)
	case expr.Transpose:
		return ex.execTranspose(n, sub)
	case expr.Tril:
		return ex.execTriangle(n, sub, true)
	case expr.Triu:
		return ex.execTriangle(n, sub, false)
	case expr.Map:
		return ex.execMap(n, sub)
	case expr.ExtractRow:
		return ex.execExtractRow(n, sub)
	default:
		return fmt.Errorf("spla: %w: %s", ErrUnknownNodeKind, n.Kind)
	}
}

// Merge folds a node's completed subtasks. Only product nodes need real
// work here; every per-tile node writes its own output directly in
// Execute and Merge is a no-op for it.
func (ex *executor) Merge(ctx context.Context, n *expr.Node, subs []schedule.Subtask) error {
	switch n.Kind {
	case expr.Mxm:
		return ex.mergeMxm(n, subs)
	case expr.Vxm:
		return ex.mergeVxm(n, subs)
	case expr.Mxv:
		return ex.mergeMxv(n, subs)
	default:
		return nil
	}
}

func vecTileCoo(v *coreVector, row int) (*format.CooVec, error) {
	ts, mgr := v.tile(block.Index(row))
	return ensureVecCoo(ts, mgr)
}

func matTileCoo(m *coreMatrix, row, col int) (*format.Coo, error) {
	ts, mgr := m.tile(block.TileIndex{I: row, J: col})
	return ensureMatCoo(ts, mgr)
}

func matTileCsr(m *coreMatrix, row, col int) (*format.Csr, error) {
	ts, mgr := m.tile(block.TileIndex{I: row, J: col})
	return ensureMatCsr(ts, mgr)
}

func writeVecTile(v *coreVector, row int, result *format.CooVec) error {
	ts, mgr := v.tile(block.Index(row))
	return writeVecCoo(ts, mgr, result)
}

func writeMatTile(m *coreMatrix, row, col int, result *format.Coo) error {
	ts, mgr := m.tile(block.TileIndex{I: row, J: col})
	return writeMatCoo(ts, mgr, result)
}
