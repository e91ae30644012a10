package spla

import "github.com/sparselinalg/spla/expr"

// Scalar[T] is a typed handle over a byte-erased coreScalar: a single
// optional value of type T with no tiling or format conversion.
type Scalar[T any] struct {
	core  *coreScalar
	codec Codec[T]
	lib   *Library
}

// NewScalar returns an empty Scalar[T] belonging to lib, used by
// ReduceScalar/ReduceScalarMat to check the scalar was built from the
// same Library as the vector/matrix it reduces.
func NewScalar[T any](lib *Library, codec Codec[T]) *Scalar[T] {
	return &Scalar[T]{core: newCoreScalar(), codec: codec, lib: lib}
}

// Release drops this handle's strong reference to the underlying
// object.
func (s *Scalar[T]) Release() { s.core.Release() }

// Retain returns a second handle sharing the same underlying object.
func (s *Scalar[T]) Retain() *Scalar[T] {
	s.core.Retain()
	return &Scalar[T]{core: s.core, codec: s.codec, lib: s.lib}
}

// Value returns the scalar's current value, or ErrScalarEmpty if no
// operation has assigned one yet. Only meaningful after the Builder
// that last wrote to s has been submitted.
func (s *Scalar[T]) Value() (T, error) {
	var zero T
	v, ok := s.core.get()
	if !ok {
		return zero, ErrScalarEmpty
	}
	return s.codec.Decode(v), nil
}

// Set seeds s with an initial host value outside of any Expression,
// e.g. to prime an accumulator before a ReduceScalar with AccumResult.
func (s *Scalar[T]) Set(v T) { s.core.set(s.codec.Encode(v)) }

func (s *Scalar[T]) shape() expr.Shape { return expr.Shape{IsScalar: true} }
