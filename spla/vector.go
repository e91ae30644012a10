package spla

import "github.com/sparselinalg/spla/expr"

// Vector[T] is a typed handle over a byte-erased coreVector: Codec[T]
// is the only place T appears, so every op below stays generic purely
// at the boundary and dispatches through the same non-generic Executor
// as every other Vector[T]/Matrix[T] pairing built from the same Library.
type Vector[T any] struct {
	core  *coreVector
	codec Codec[T]
	lib   *Library
}

// NewVector constructs a size-element vector carrying values of type T,
// tiled at lib's configured block size.
func NewVector[T any](lib *Library, size int, codec Codec[T]) (*Vector[T], error) {
	cv, err := newCoreVector(size, lib.blockSize(), true, nil, codec.byteSize(), lib.backend)
	if err != nil {
		return nil, err
	}
	return &Vector[T]{core: cv, codec: codec, lib: lib}, nil
}

// Size returns the vector's logical length.
func (v *Vector[T]) Size() int { return v.core.size }

// Release drops this handle's strong reference to the underlying
// object; the tiles are freed once the last handle releases.
func (v *Vector[T]) Release() { v.core.Release() }

// Retain returns a second handle sharing the same underlying object.
func (v *Vector[T]) Retain() *Vector[T] {
	v.core.Retain()
	return &Vector[T]{core: v.core, codec: v.codec, lib: v.lib}
}

func (v *Vector[T]) shape() expr.Shape {
	return expr.Shape{Rows: v.core.size, IsVector: true, BlockSize: v.core.blockSize()}
}

// Build stores (idx[i], vals[i]) for every i into v, as a data_write
// node of e.
func (v *Vector[T]) Build(e *Builder, idx []int, vals []T) (*expr.Node, error) {
	enc := make([][]byte, len(vals))
	for i, x := range vals {
		enc[i] = v.codec.Encode(x)
	}
	return e.addNode(expr.DataWrite,
		[]any{v.core, vecHostData{Idx: idx, Val: enc}},
		nil, v.shape(), []expr.Shape{v.shape(), {}},
		[]any{v.core})
}

// VectorReader collects a data_read node's output until the owning
// Expression finishes running; call Entries after Submit.
type VectorReader[T any] struct {
	dst   *vecReadResult
	codec Codec[T]
}

// Entries decodes the collected (index, value) pairs. Call only after
// the Builder this reader's node belongs to has been submitted.
func (r *VectorReader[T]) Entries() ([]int, []T) {
	r.dst.mu.Lock()
	defer r.dst.mu.Unlock()
	vals := make([]T, len(r.dst.Val))
	for i, b := range r.dst.Val {
		vals[i] = r.codec.Decode(b)
	}
	return append([]int(nil), r.dst.Idx...), vals
}

// Read adds a data_read node for v to e, returning a reader whose
// Entries become valid once e has been submitted and run.
func (v *Vector[T]) Read(e *Builder) (*VectorReader[T], *expr.Node, error) {
	dst := &vecReadResult{}
	n, err := e.addNode(expr.DataRead,
		[]any{v.core, dst},
		nil, v.shape(), []expr.Shape{v.shape(), {}},
		[]any{v.core})
	if err != nil {
		return nil, nil, err
	}
	return &VectorReader[T]{dst: dst, codec: v.codec}, n, nil
}
