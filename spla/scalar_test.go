package spla

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScalarValueEmptyReturnsErrScalarEmpty(t *testing.T) {
	lib := newTestLibrary(t)
	s := NewScalar(lib, Int64Codec())

	_, err := s.Value()
	require.ErrorIs(t, err, ErrScalarEmpty)
}

func TestScalarSetAndValueRoundTrip(t *testing.T) {
	lib := newTestLibrary(t)
	s := NewScalar(lib, Float64Codec())

	s.Set(3.5)
	v, err := s.Value()
	require.NoError(t, err)
	require.Equal(t, 3.5, v)
}

func TestScalarRetainSharesStorage(t *testing.T) {
	lib := newTestLibrary(t)
	s := NewScalar(lib, Int64Codec())
	alias := s.Retain()
	defer alias.Release()

	s.Set(7)
	v, err := alias.Value()
	require.NoError(t, err)
	require.Equal(t, int64(7), v)
}

// TestEwiseAddForeignHandleRejected verifies EwiseAdd refuses to wire a
// Vector built from a different Library into this Library's Builder.
func TestEwiseAddForeignHandleRejected(t *testing.T) {
	lib1 := newTestLibrary(t)
	lib2 := newTestLibrary(t)
	codec := Int64Codec()

	w, err := NewVector(lib1, 2, codec)
	require.NoError(t, err)
	a, err := NewVector(lib1, 2, codec)
	require.NoError(t, err)
	b, err := NewVector(lib2, 2, codec)
	require.NoError(t, err)

	e := lib1.NewExpression()
	_, err = EwiseAdd(e, w, a, b, nil, false, plusOp(t))
	require.ErrorIs(t, err, ErrForeignHandle)
}

// TestMxmShapeMismatchRejected verifies Mxm refuses incompatible inner
// dimensions instead of silently building a malformed node.
func TestMxmShapeMismatchRejected(t *testing.T) {
	lib := newTestLibrary(t)
	codec := Int64Codec()

	a, err := NewMatrix(lib, 2, 3, codec)
	require.NoError(t, err)
	b, err := NewMatrix(lib, 4, 2, codec)
	require.NoError(t, err)
	w, err := NewMatrix(lib, 2, 2, codec)
	require.NoError(t, err)

	e := lib.NewExpression()
	_, err = Mxm(e, w, a, b, nil, false, timesOp(t), plusOp(t))
	require.ErrorIs(t, err, ErrShapeMismatch)
}
