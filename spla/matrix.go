package spla

import "github.com/sparselinalg/spla/expr"

// Matrix[T] is Vector[T]'s two-dimensional analogue: a typed handle over
// a byte-erased coreMatrix.
type Matrix[T any] struct {
	core  *coreMatrix
	codec Codec[T]
	lib   *Library
}

// NewMatrix constructs a rows x cols matrix carrying values of type T,
// tiled at lib's configured block size.
func NewMatrix[T any](lib *Library, rows, cols int, codec Codec[T]) (*Matrix[T], error) {
	cm, err := newCoreMatrix(rows, cols, lib.blockSize(), true, codec.byteSize(), lib.backend)
	if err != nil {
		return nil, err
	}
	return &Matrix[T]{core: cm, codec: codec, lib: lib}, nil
}

// Rows and Cols return the matrix's logical dimensions.
func (m *Matrix[T]) Rows() int { return m.core.rows }
func (m *Matrix[T]) Cols() int { return m.core.cols }

// Release drops this handle's strong reference to the underlying
// object.
func (m *Matrix[T]) Release() { m.core.Release() }

// Retain returns a second handle sharing the same underlying object.
func (m *Matrix[T]) Retain() *Matrix[T] {
	m.core.Retain()
	return &Matrix[T]{core: m.core, codec: m.codec, lib: m.lib}
}

func (m *Matrix[T]) shape() expr.Shape {
	return expr.Shape{Rows: m.core.rows, Cols: m.core.cols, BlockSize: m.core.blockSize()}
}

// Build stores (rows[i], cols[i], vals[i]) for every i into m, as a
// data_write node of e.
func (m *Matrix[T]) Build(e *Builder, rows, cols []int, vals []T) (*expr.Node, error) {
	enc := make([][]byte, len(vals))
	for i, x := range vals {
		enc[i] = m.codec.Encode(x)
	}
	return e.addNode(expr.DataWrite,
		[]any{m.core, matHostData{Row: rows, Col: cols, Val: enc}},
		nil, m.shape(), []expr.Shape{m.shape(), {}},
		[]any{m.core})
}

// MatrixReader collects a data_read node's output until the owning
// Expression finishes running; call Entries after Submit.
type MatrixReader[T any] struct {
	dst   *matReadResult
	codec Codec[T]
}

// Entries decodes the collected (row, col, value) triples. Call only
// after the Builder this reader's node belongs to has been submitted.
func (r *MatrixReader[T]) Entries() ([]int, []int, []T) {
	r.dst.mu.Lock()
	defer r.dst.mu.Unlock()
	vals := make([]T, len(r.dst.Val))
	for i, b := range r.dst.Val {
		vals[i] = r.codec.Decode(b)
	}
	return append([]int(nil), r.dst.Row...), append([]int(nil), r.dst.Col...), vals
}

// Read adds a data_read node for m to e, returning a reader whose
// Entries become valid once e has been submitted and run.
func (m *Matrix[T]) Read(e *Builder) (*MatrixReader[T], *expr.Node, error) {
	dst := &matReadResult{}
	n, err := e.addNode(expr.DataRead,
		[]any{m.core, dst},
		nil, m.shape(), []expr.Shape{m.shape(), {}},
		[]any{m.core})
	if err != nil {
		return nil, nil, err
	}
	return &MatrixReader[T]{dst: dst, codec: m.codec}, n, nil
}
