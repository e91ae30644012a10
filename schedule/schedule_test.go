package schedule

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sparselinalg/spla/expr"
)

type fakeExecutor struct {
	mu         sync.Mutex
	order      []int
	execCount  map[int]int
	mergeSubs  map[int][]Subtask
	failOnNode int
}

func newFakeExecutor() *fakeExecutor {
	return &fakeExecutor{execCount: map[int]int{}, mergeSubs: map[int][]Subtask{}, failOnNode: -1}
}

func (f *fakeExecutor) Execute(_ context.Context, n *expr.Node, _ Subtask) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.order = append(f.order, n.Index)
	f.execCount[n.Index]++
	if n.Index == f.failOnNode {
		return errors.New("boom")
	}
	return nil
}

func (f *fakeExecutor) Merge(_ context.Context, n *expr.Node, subs []Subtask) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.mergeSubs[n.Index] = subs
	return nil
}

func smallShape() expr.Shape { return expr.Shape{Rows: 1, Cols: 1, BlockSize: 1} }

// TestSchedulerRunsInTopoOrder builds two Map nodes with an explicit
// dependency and verifies the dependent one never starts before its
// predecessor has finished.
func TestSchedulerRunsInTopoOrder(t *testing.T) {
	e := expr.New()
	n1, err := e.MakeNode(expr.Map, []any{nil, nil, nil}, nil, smallShape(), []expr.Shape{smallShape(), smallShape(), {}})
	require.NoError(t, err)
	n2, err := e.MakeNode(expr.Map, []any{nil, nil, nil}, nil, smallShape(), []expr.Shape{smallShape(), smallShape(), {}})
	require.NoError(t, err)
	require.NoError(t, e.Dependency(n1, n2))

	fx := newFakeExecutor()
	sched, err := New(fx, 4)
	require.NoError(t, err)

	require.NoError(t, e.SubmitWait(context.Background(), sched))
	require.Equal(t, expr.Evaluated, e.State())
	require.Equal(t, []int{n1.Index, n2.Index}, fx.order)
}

// TestSchedulerFansOutMxmAndMerges verifies a mxm node with a 4x4,
// block-size-2 output produces one Product subtask per (row, inner, col)
// block triple and exactly one Merge call over all of them.
func TestSchedulerFansOutMxmAndMerges(t *testing.T) {
	e := expr.New()
	out := expr.Shape{Rows: 4, Cols: 4, BlockSize: 2}
	operand := expr.Shape{Rows: 4, Cols: 4, BlockSize: 2}
	argShapes := []expr.Shape{{}, {}, {}, {}, operand, operand}
	n, err := e.MakeNode(expr.Mxm, []any{nil, nil, nil, nil, nil, nil}, nil, out, argShapes)
	require.NoError(t, err)

	fx := newFakeExecutor()
	sched, err := New(fx, 4)
	require.NoError(t, err)

	require.NoError(t, e.SubmitWait(context.Background(), sched))
	require.Equal(t, 8, fx.execCount[n.Index]) // rb=2 * kb=2 * cb=2
	require.Len(t, fx.mergeSubs[n.Index], 8)
}

// TestSchedulerMergesSingleSubtaskProduct verifies a mxm node whose
// fan-out collapses to exactly one Product subtask (1x1 blocking) still
// reaches Merge: Execute alone only stashes a partial for product nodes,
// so a node with one subtask must not skip the merge step.
func TestSchedulerMergesSingleSubtaskProduct(t *testing.T) {
	e := expr.New()
	out := expr.Shape{Rows: 1, Cols: 1, BlockSize: 1}
	operand := expr.Shape{Rows: 1, Cols: 1, BlockSize: 1}
	argShapes := []expr.Shape{{}, {}, {}, {}, operand, operand}
	n, err := e.MakeNode(expr.Mxm, []any{nil, nil, nil, nil, nil, nil}, nil, out, argShapes)
	require.NoError(t, err)

	fx := newFakeExecutor()
	sched, err := New(fx, 4)
	require.NoError(t, err)

	require.NoError(t, e.SubmitWait(context.Background(), sched))
	require.Equal(t, 1, fx.execCount[n.Index])
	require.Len(t, fx.mergeSubs[n.Index], 1)
}

// TestSchedulerPropagatesError checks that a failing node's error reaches
// SubmitWait and leaves the Expression Aborted.
func TestSchedulerPropagatesError(t *testing.T) {
	e := expr.New()
	n, err := e.MakeNode(expr.Map, []any{nil, nil, nil}, nil, smallShape(), []expr.Shape{smallShape(), smallShape(), {}})
	require.NoError(t, err)

	fx := newFakeExecutor()
	fx.failOnNode = n.Index
	sched, err := New(fx, 2)
	require.NoError(t, err)

	err = e.SubmitWait(context.Background(), sched)
	require.Error(t, err)
	require.Equal(t, expr.Aborted, e.State())
}

func TestNewRejectsNilExecutor(t *testing.T) {
	_, err := New(nil, 4)
	require.ErrorIs(t, err, ErrNoExecutor)
}
