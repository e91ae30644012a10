package legacy

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sparselinalg/spla/spla"
	"github.com/sparselinalg/spla/typesop"
)

func plusOp(t *testing.T) typesop.Op {
	op, ok := typesop.Lookup(fmt.Sprintf("plus_%d%d%d", typesop.Int64, typesop.Int64, typesop.Int64))
	require.True(t, ok)
	return op
}

// TestEWiseAddBuildsSameResultAsSplaEwiseAdd verifies the old-binding
// entry point reaches the same output as its new-named counterpart,
// since both build exactly one expr.EwiseAdd node on the same DAG.
func TestEWiseAddBuildsSameResultAsSplaEwiseAdd(t *testing.T) {
	lib, err := spla.NewLibrary()
	require.NoError(t, err)
	codec := spla.Int64Codec()

	a, err := spla.NewVector(lib, 3, codec)
	require.NoError(t, err)
	b, err := spla.NewVector(lib, 3, codec)
	require.NoError(t, err)
	w, err := spla.NewVector(lib, 3, codec)
	require.NoError(t, err)

	e := lib.NewExpression()
	_, err = a.Build(e, []int{0, 1}, []int64{1, 2})
	require.NoError(t, err)
	_, err = b.Build(e, []int{1, 2}, []int64{10, 20})
	require.NoError(t, err)
	_, err = EWiseAdd(e, w, a, b, nil, false, plusOp(t))
	require.NoError(t, err)
	reader, _, err := w.Read(e)
	require.NoError(t, err)

	require.NoError(t, lib.Submit(context.Background(), e))

	idx, val := reader.Entries()
	sum := map[int]int64{}
	for i, at := range idx {
		sum[at] = val[i]
	}
	require.Equal(t, map[int]int64{0: 1, 1: 12, 2: 20}, sum)
}

// TestSelectDispatchesTrilOrTriu verifies the lower/upper flag picks the
// matching spla triangle operation.
func TestSelectDispatchesTrilOrTriu(t *testing.T) {
	lib, err := spla.NewLibrary()
	require.NoError(t, err)
	codec := spla.Int64Codec()

	a, err := spla.NewMatrix(lib, 2, 2, codec)
	require.NoError(t, err)
	lower, err := spla.NewMatrix(lib, 2, 2, codec)
	require.NoError(t, err)
	upper, err := spla.NewMatrix(lib, 2, 2, codec)
	require.NoError(t, err)

	e := lib.NewExpression()
	_, err = a.Build(e, []int{0, 0, 1, 1}, []int{0, 1, 0, 1}, []int64{1, 2, 3, 4})
	require.NoError(t, err)
	_, err = Select(e, lower, a, true)
	require.NoError(t, err)
	_, err = Select(e, upper, a, false)
	require.NoError(t, err)
	lowerReader, _, err := lower.Read(e)
	require.NoError(t, err)
	upperReader, _, err := upper.Read(e)
	require.NoError(t, err)

	require.NoError(t, lib.Submit(context.Background(), e))

	lr, lc, _ := lowerReader.Entries()
	ur, uc, _ := upperReader.Entries()
	require.ElementsMatch(t, []int{1}, lr)
	require.ElementsMatch(t, []int{0}, lc)
	require.ElementsMatch(t, []int{0}, ur)
	require.ElementsMatch(t, []int{1}, uc)
}
