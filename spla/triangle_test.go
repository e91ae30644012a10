package spla

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestTriangleCountScenarioS4 drives spec.md §8 S4 through the public
// facade: tril/triu split a 3-cycle, masked mxm counts closed
// triangles, reduce_scalar sums the result (the standard masked-mxm
// triangle-count idiom; see algo.TestTrilTriuTriangleCountScenarioS4
// for why the mask on mxm is required to reach the documented count
// of 1).
func TestTriangleCountScenarioS4(t *testing.T) {
	lib := newTestLibrary(t)
	codec := Int64Codec()

	a, err := NewMatrix(lib, 3, 3, codec)
	require.NoError(t, err)
	l, err := NewMatrix(lib, 3, 3, codec)
	require.NoError(t, err)
	u, err := NewMatrix(lib, 3, 3, codec)
	require.NoError(t, err)
	b, err := NewMatrix(lib, 3, 3, codec)
	require.NoError(t, err)
	s := NewScalar(lib, codec)

	e := lib.NewExpression()
	rows := []int{0, 1, 0, 2, 1, 2}
	cols := []int{1, 0, 2, 0, 2, 1}
	vals := []int64{1, 1, 1, 1, 1, 1}
	_, err = a.Build(e, rows, cols, vals)
	require.NoError(t, err)
	_, err = Tril(e, l, a)
	require.NoError(t, err)
	_, err = Triu(e, u, a)
	require.NoError(t, err)
	_, err = Mxm(e, b, l, u, l, false, timesOp(t), plusOp(t))
	require.NoError(t, err)
	_, err = ReduceScalarMat(e, s, nil, false, nil, plusOp(t), b)
	require.NoError(t, err)

	require.NoError(t, lib.Submit(context.Background(), e))

	got, err := s.Value()
	require.NoError(t, err)
	require.Equal(t, int64(1), got)
}
