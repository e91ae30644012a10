package expr

import "github.com/sparselinalg/spla/descriptor"

// Kind tags an expression node's operation, one per row of spec.md §6.3.
type Kind int

const (
	DataWrite Kind = iota
	DataRead
	EwiseAdd
	EwiseMult
	Assign
	ReduceScalar
	ReduceByRow
	Mxm
	Vxm
	Mxv
	Transpose
	Tril
	Triu
	Map
	ExtractRow

	kindCount
)

func (k Kind) String() string {
	names := [...]string{
		"data_write", "data_read", "ewise_add", "ewise_mult", "assign",
		"reduce_scalar", "reduce_by_row", "mxm", "vxm", "mxv",
		"transpose", "tril", "triu", "map", "extract_row",
	}
	if int(k) < len(names) {
		return names[k]
	}
	return "unknown"
}

// arity is the fixed argument count for each Kind, matching the "Args"
// column of spec.md §6.3 (the mask/accum slots are optional and are
// represented by a nil entry in Args at a fixed position, not by a
// variable arity).
var arity = [...]int{
	DataWrite:    2, // X, host-data
	DataRead:     2, // X, host-buffer
	EwiseAdd:     5, // w, mask, op, a, b
	EwiseMult:    5, // w, mask, op, a, b
	Assign:       4, // w, mask, accum, scalar
	ReduceScalar: 5, // s, mask, accum, reduce, m
	ReduceByRow:  4, // v, m, reduce, init
	Mxm:          6, // w, mask, mult, add, a, b
	Vxm:          6, // w, mask, mult, add, v, m
	Mxv:          6, // w, mask, mult, add, m, v
	Transpose:    3, // w, mask, a (accum folded into descriptor AccumResult)
	Tril:         2, // w, a
	Triu:         2, // w, a
	Map:          3, // w, v, unary
	ExtractRow:   4, // r, m, unary, i (i is a plain int, not a handle)
}

// Shape describes enough about one argument for the scheduler (package
// schedule) to compute subtask fan-out without needing to know the
// argument's concrete Go type (spla.Matrix/spla.Vector/spla.Scalar).
type Shape struct {
	Rows, Cols int
	IsVector   bool
	IsScalar   bool
	BlockSize  int
}

// Node is one immutable-once-submitted operation in an Expression's DAG.
// Args holds opaque handles (spla.Matrix[T]/Vector[T]/Scalar[T] or a raw
// host buffer for data_read/data_write); expr never type-asserts them —
// only the package that builds nodes (spla) and the Executor the
// scheduler is handed at submit time know their concrete type.
type Node struct {
	Index int
	Kind  Kind
	Args  []any
	Desc  *descriptor.Descriptor

	// OutShape/ArgShapes are filled in by the typed factory (package
	// spla) at MakeNode time so the scheduler can fan this node out into
	// subtasks purely from integer shapes (SPEC_FULL.md §4.8 Go realization).
	OutShape  Shape
	ArgShapes []Shape

	preds []int
	succs []int

	expr *Expression // non-owning back-reference, per spec.md §4.7/§9
}

// Preds/Succs return the node's predecessor/successor nodes in the
// owning Expression.
func (n *Node) Preds() []*Node { return n.expr.nodesAt(n.preds) }
func (n *Node) Succs() []*Node { return n.expr.nodesAt(n.succs) }
