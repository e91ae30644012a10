package spla

import (
	"context"
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sparselinalg/spla/typesop"
)

func plusOp(t *testing.T) typesop.Op {
	op, ok := typesop.Lookup(fmt.Sprintf("plus_%d%d%d", typesop.Int64, typesop.Int64, typesop.Int64))
	require.True(t, ok)
	return op
}

func timesOp(t *testing.T) typesop.Op {
	op, ok := typesop.Lookup(fmt.Sprintf("times_%d%d%d", typesop.Int64, typesop.Int64, typesop.Int64))
	require.True(t, ok)
	return op
}

func newTestLibrary(t *testing.T) *Library {
	lib, err := NewLibrary()
	require.NoError(t, err)
	return lib
}

// sortPairs returns idx/val sorted by idx, so read-back results (which
// arrive in tile-completion order, not index order) compare stably.
func sortPairs(idx []int, val []int64) ([]int, []int64) {
	order := make([]int, len(idx))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool { return idx[order[a]] < idx[order[b]] })
	oi := make([]int, len(idx))
	ov := make([]int64, len(idx))
	for i, o := range order {
		oi[i] = idx[o]
		ov[i] = val[o]
	}
	return oi, ov
}

// TestEwiseAddScenarioS1 drives spec.md §8 S1 end to end through the
// public facade: build two vectors, ewise-add them, read back w.
func TestEwiseAddScenarioS1(t *testing.T) {
	lib := newTestLibrary(t)
	codec := Int64Codec()

	a, err := NewVector(lib, 4, codec)
	require.NoError(t, err)
	b, err := NewVector(lib, 4, codec)
	require.NoError(t, err)
	w, err := NewVector(lib, 4, codec)
	require.NoError(t, err)

	e := lib.NewExpression()
	_, err = a.Build(e, []int{0, 2}, []int64{10, 30})
	require.NoError(t, err)
	_, err = b.Build(e, []int{1, 2}, []int64{20, 5})
	require.NoError(t, err)
	_, err = EwiseAdd(e, w, a, b, nil, false, plusOp(t))
	require.NoError(t, err)
	reader, _, err := w.Read(e)
	require.NoError(t, err)

	require.NoError(t, lib.Submit(context.Background(), e))

	idx, val := reader.Entries()
	idx, val = sortPairs(idx, val)
	require.Equal(t, []int{0, 1, 2}, idx)
	require.Equal(t, []int64{10, 20, 35}, val)
}

// TestVxmScenarioS2 drives spec.md §8 S2: v x A over (*, +), masked with
// complement so only column 2 survives.
func TestVxmScenarioS2(t *testing.T) {
	lib := newTestLibrary(t)
	codec := Int64Codec()

	v, err := NewVector(lib, 3, codec)
	require.NoError(t, err)
	a, err := NewMatrix(lib, 3, 3, codec)
	require.NoError(t, err)
	mask, err := NewVector(lib, 3, codec)
	require.NoError(t, err)
	w, err := NewVector(lib, 3, codec)
	require.NoError(t, err)

	e := lib.NewExpression()
	_, err = v.Build(e, []int{0, 2}, []int64{1, 2})
	require.NoError(t, err)
	_, err = a.Build(e, []int{0, 1, 2, 2}, []int{1, 1, 1, 2}, []int64{3, 4, 5, 6})
	require.NoError(t, err)
	_, err = mask.Build(e, []int{1}, []int64{0})
	require.NoError(t, err)
	_, err = Vxm(e, w, v, a, mask, true, timesOp(t), plusOp(t))
	require.NoError(t, err)
	reader, _, err := w.Read(e)
	require.NoError(t, err)

	require.NoError(t, lib.Submit(context.Background(), e))

	idx, val := reader.Entries()
	require.Equal(t, []int{2}, idx)
	require.Equal(t, []int64{12}, val)
}

// TestMxmScenarioS3 drives spec.md §8 S3: A x B over (*, +), no mask.
func TestMxmScenarioS3(t *testing.T) {
	lib := newTestLibrary(t)
	codec := Int64Codec()

	a, err := NewMatrix(lib, 2, 2, codec)
	require.NoError(t, err)
	b, err := NewMatrix(lib, 2, 2, codec)
	require.NoError(t, err)
	w, err := NewMatrix(lib, 2, 2, codec)
	require.NoError(t, err)

	e := lib.NewExpression()
	_, err = a.Build(e, []int{0, 0, 1, 1}, []int{0, 1, 0, 1}, []int64{1, 2, 3, 4})
	require.NoError(t, err)
	_, err = b.Build(e, []int{0, 1, 1}, []int{0, 0, 1}, []int64{5, 6, 7})
	require.NoError(t, err)
	_, err = Mxm(e, w, a, b, nil, false, timesOp(t), plusOp(t))
	require.NoError(t, err)
	reader, _, err := w.Read(e)
	require.NoError(t, err)

	require.NoError(t, lib.Submit(context.Background(), e))

	rows, cols, val := reader.Entries()
	got := map[[2]int]int64{}
	for i := range rows {
		got[[2]int{rows[i], cols[i]}] = val[i]
	}
	require.Equal(t, map[[2]int]int64{
		{0, 0}: 17, {0, 1}: 14, {1, 0}: 39, {1, 1}: 28,
	}, got)
}

// TestBFSFixedPointScenarioS5 drives spec.md §8 S5: iterating
// v[q] := depth; q := q x A masked by !v over a 0->1->2 chain reaches
// the documented fixed point once the frontier empties (the scenario's
// "two iterations" count the two edge traversals that grow the
// frontier past its seed, not the loop's own termination check).
func TestBFSFixedPointScenarioS5(t *testing.T) {
	lib := newTestLibrary(t)
	codec := Int64Codec()

	const n = 3
	adj, err := NewMatrix(lib, n, n, codec)
	require.NoError(t, err)
	v, err := NewVector(lib, n, codec)
	require.NoError(t, err)
	q, err := NewVector(lib, n, codec)
	require.NoError(t, err)

	e := lib.NewExpression()
	_, err = adj.Build(e, []int{0, 1}, []int{1, 2}, []int64{1, 1})
	require.NoError(t, err)
	_, err = q.Build(e, []int{0}, []int64{1})
	require.NoError(t, err)
	require.NoError(t, lib.Submit(context.Background(), e))

	depth := int64(1)
	for round := 0; round < n+1; round++ {
		e = lib.NewExpression()
		_, err = Assign(e, v, q, false, nil, depth)
		require.NoError(t, err)
		qReader, _, rerr := q.Read(e)
		require.NoError(t, rerr)
		require.NoError(t, lib.Submit(context.Background(), e))
		if qIdx, _ := qReader.Entries(); len(qIdx) == 0 {
			break
		}

		e = lib.NewExpression()
		nextQ, err2 := NewVector(lib, n, codec)
		require.NoError(t, err2)
		_, err = Vxm(e, nextQ, q, adj, v, true, timesOp(t), plusOp(t))
		require.NoError(t, err)
		require.NoError(t, lib.Submit(context.Background(), e))
		q = nextQ
		depth++
	}

	e = lib.NewExpression()
	vReader, _, err := v.Read(e)
	require.NoError(t, err)
	qReader, _, err := q.Read(e)
	require.NoError(t, err)
	require.NoError(t, lib.Submit(context.Background(), e))

	idx, val := vReader.Entries()
	idx, val = sortPairs(idx, val)
	require.Equal(t, []int{0, 1, 2}, idx)
	require.Equal(t, []int64{1, 2, 3}, val)

	qIdx, _ := qReader.Entries()
	require.Empty(t, qIdx)
}

// TestRetainReleaseSharesStorage verifies Retain yields a second handle
// over the same object: a write through one is visible through a read
// via the other.
func TestRetainReleaseSharesStorage(t *testing.T) {
	lib := newTestLibrary(t)
	codec := Int64Codec()

	v, err := NewVector(lib, 2, codec)
	require.NoError(t, err)
	alias := v.Retain()
	defer alias.Release()

	e := lib.NewExpression()
	_, err = v.Build(e, []int{0}, []int64{42})
	require.NoError(t, err)
	reader, _, err := alias.Read(e)
	require.NoError(t, err)
	require.NoError(t, lib.Submit(context.Background(), e))

	idx, val := reader.Entries()
	require.Equal(t, []int{0}, idx)
	require.Equal(t, []int64{42}, val)
}
