package expr

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

type recordingRunner struct{ order []Kind }

func (r *recordingRunner) Run(ctx context.Context, e *Expression) error {
	order, err := e.TopoSort()
	if err != nil {
		return err
	}
	for _, n := range order {
		r.order = append(r.order, n.Kind)
	}
	return nil
}

func TestMakeNodeValidatesArity(t *testing.T) {
	e := New()
	_, err := e.MakeNode(EwiseAdd, []any{"w"}, nil, Shape{}, nil)
	require.ErrorIs(t, err, ErrBadArity)
}

func TestDependencyAndTopoSort(t *testing.T) {
	e := New()
	a, err := e.MakeNode(DataWrite, []any{"x", "data"}, nil, Shape{}, nil)
	require.NoError(t, err)
	b, err := e.MakeNode(Transpose, []any{"w", nil, "x"}, nil, Shape{}, nil)
	require.NoError(t, err)
	require.NoError(t, e.Dependency(a, b))

	order, err := e.TopoSort()
	require.NoError(t, err)
	require.Equal(t, []*Node{a, b}, order)
}

func TestTopoSortDetectsCycle(t *testing.T) {
	e := New()
	a, _ := e.MakeNode(Tril, []any{"w", "a"}, nil, Shape{}, nil)
	b, _ := e.MakeNode(Triu, []any{"w", "a"}, nil, Shape{}, nil)
	require.NoError(t, e.Dependency(a, b))
	require.NoError(t, e.Dependency(b, a))

	_, err := e.TopoSort()
	require.ErrorIs(t, err, ErrCycle)
}

func TestSubmitWaitLifecycle(t *testing.T) {
	e := New()
	require.Equal(t, Default, e.State())

	r := &recordingRunner{}
	err := e.SubmitWait(context.Background(), r)
	require.NoError(t, err)
	require.Equal(t, Evaluated, e.State())

	err = e.SubmitWait(context.Background(), r)
	require.ErrorIs(t, err, ErrNotSubmitted)
}

type failingRunner struct{ cause error }

func (f failingRunner) Run(ctx context.Context, e *Expression) error { return f.cause }

func TestSubmitWaitAborts(t *testing.T) {
	e := New()
	cause := require.Error
	_ = cause
	want := ErrCycle
	err := e.SubmitWait(context.Background(), failingRunner{cause: want})
	require.ErrorIs(t, err, want)
	require.Equal(t, Aborted, e.State())
	require.ErrorIs(t, e.Err(), want)
}
