package schedule

import "github.com/sparselinalg/spla/expr"

// Kind tags what a Subtask represents within a node's fan-out.
type Kind int

const (
	// Tile is one output tile of a per-tile-algebra node (ewise_add,
	// ewise_mult, assign, reduce_by_row, transpose, tril, triu, map,
	// extract_row) or one data_read/data_write transfer tile.
	Tile Kind = iota
	// Product is one inner-product contribution A[i,k] x B[k,j] toward
	// output tile (i,j) of a multiplication node (mxm, vxm, mxv).
	Product
)

// Subtask identifies one unit of a node's fan-out by block coordinates
// only; the Executor is responsible for mapping coordinates back to real
// tile data.
type Subtask struct {
	Kind Kind

	// Row, Col address an output tile for Kind == Tile. Col is -1 for a
	// vector-shaped output.
	Row, Col int

	// I, K, J address a product contribution for Kind == Product: output
	// row-block I, inner block K, output col-block J. For mxv J is -1;
	// for vxm I is 0 and J is the output vector block.
	I, K, J int
}

func ceilDiv(n, b int) int {
	if b <= 0 {
		b = 1
	}
	if n <= 0 {
		return 1
	}
	return (n + b - 1) / b
}

func blockSizeOf(s expr.Shape) int {
	if s.BlockSize <= 0 {
		return 1
	}
	return s.BlockSize
}

// tileSubtasks enumerates the output tiles of shp (spec.md §4.8: a
// data-transfer node yields ceil(N/B) or ceil(M/B) x ceil(N/B) subtasks;
// a per-tile-algebra node yields one subtask per output tile — the same
// enumeration either way, just over a different shape).
func tileSubtasks(shp expr.Shape) []Subtask {
	if shp.IsScalar {
		return []Subtask{{Kind: Tile, Row: 0, Col: 0}}
	}
	b := blockSizeOf(shp)
	if shp.IsVector {
		rb := ceilDiv(shp.Rows, b)
		out := make([]Subtask, rb)
		for i := range out {
			out[i] = Subtask{Kind: Tile, Row: i, Col: -1}
		}
		return out
	}
	rb, cb := ceilDiv(shp.Rows, b), ceilDiv(shp.Cols, b)
	out := make([]Subtask, 0, rb*cb)
	for i := 0; i < rb; i++ {
		for j := 0; j < cb; j++ {
			out = append(out, Subtask{Kind: Tile, Row: i, Col: j})
		}
	}
	return out
}

// productSubtasksMxm enumerates one subtask per inner-product contribution
// for a Mxm node: output row-block i in [0,rb), inner block k in
// [0,kb), output col-block j in [0,cb) (spec.md §4.8 "one subtask per
// A[i,k] x B[k,j]").
func productSubtasksMxm(out, a expr.Shape) []Subtask {
	b := blockSizeOf(out)
	rb, cb := ceilDiv(out.Rows, b), ceilDiv(out.Cols, b)
	kb := ceilDiv(a.Cols, b)
	subs := make([]Subtask, 0, rb*cb*kb)
	for i := 0; i < rb; i++ {
		for k := 0; k < kb; k++ {
			for j := 0; j < cb; j++ {
				subs = append(subs, Subtask{Kind: Product, I: i, K: k, J: j})
			}
		}
	}
	return subs
}

// productSubtasksVxm enumerates product subtasks for vxm: w = v x m, the
// inner dimension is v's (and m's row) extent, the output is a vector.
func productSubtasksVxm(out, m expr.Shape) []Subtask {
	b := blockSizeOf(out)
	cb := ceilDiv(out.Rows, b)
	kb := ceilDiv(m.Rows, b)
	subs := make([]Subtask, 0, cb*kb)
	for k := 0; k < kb; k++ {
		for j := 0; j < cb; j++ {
			subs = append(subs, Subtask{Kind: Product, I: 0, K: k, J: j})
		}
	}
	return subs
}

// productSubtasksMxv enumerates product subtasks for mxv: w = m x v, the
// inner dimension is m's column (and v's) extent.
func productSubtasksMxv(out, m expr.Shape) []Subtask {
	b := blockSizeOf(out)
	rb := ceilDiv(out.Rows, b)
	kb := ceilDiv(m.Cols, b)
	subs := make([]Subtask, 0, rb*kb)
	for i := 0; i < rb; i++ {
		for k := 0; k < kb; k++ {
			subs = append(subs, Subtask{Kind: Product, I: i, K: k, J: -1})
		}
	}
	return subs
}

// computeSubtasks enumerates a node's first-phase subtasks; a
// multiplication node's results still need a second-phase merge once
// every Product subtask for a given output tile has completed, which
// Scheduler.runNode drives separately (the merge keys on (I, J) not on
// any field this function owns).
func computeSubtasks(n *expr.Node) []Subtask {
	switch n.Kind {
	case expr.Mxm:
		a := n.ArgShapes[len(n.ArgShapes)-2]
		return productSubtasksMxm(n.OutShape, a)
	case expr.Vxm:
		m := n.ArgShapes[len(n.ArgShapes)-1]
		return productSubtasksVxm(n.OutShape, m)
	case expr.Mxv:
		m := n.ArgShapes[len(n.ArgShapes)-2]
		return productSubtasksMxv(n.OutShape, m)
	case expr.DataWrite, expr.DataRead:
		return tileSubtasks(n.ArgShapes[0])
	default:
		return tileSubtasks(n.OutShape)
	}
}
