package schedule

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/sparselinalg/spla/expr"
)

// Scheduler walks an expr.Expression's DAG and runs each node once its
// predecessors have completed, fanning each node out into Subtasks
// bounded by Workers concurrent goroutines. It implements expr.Runner so
// it can be handed directly to Expression.SubmitWait.
type Scheduler struct {
	executor Executor
	workers  int
}

// New returns a Scheduler that dispatches Subtask work to executor with
// at most workers nodes running at once and, within each running node,
// at most workers concurrent subtasks. workers <= 0 is treated as 1.
func New(executor Executor, workers int) (*Scheduler, error) {
	if executor == nil {
		return nil, ErrNoExecutor
	}
	if workers <= 0 {
		workers = 1
	}
	return &Scheduler{executor: executor, workers: workers}, nil
}

// Run implements expr.Runner. It blocks until every node has completed or
// one has returned an error, in which case the first error observed is
// returned and no further nodes are dispatched.
func (s *Scheduler) Run(ctx context.Context, e *expr.Expression) error {
	order, err := e.TopoSort()
	if err != nil {
		return err
	}
	n := len(order)
	if n == 0 {
		return nil
	}

	indeg := make([]atomic.Int64, n)
	for _, node := range order {
		indeg[node.Index].Store(int64(len(node.Preds())))
	}

	ready := make(chan *expr.Node, n)
	results := make(chan error, n)
	for _, node := range order {
		if indeg[node.Index].Load() == 0 {
			ready <- node
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	// A failed node's successors never reach indeg 0, so they never
	// dispatch; completed therefore only counts up to n when nothing
	// fails. On the first error we stop waiting for the unreachable rest
	// and just drain whatever is already in flight.
	var firstErr error
dispatch:
	for completed := 0; completed < n; {
		select {
		case node := <-ready:
			node := node
			g.Go(func() error {
				runErr := s.runNode(gctx, node)
				if runErr == nil {
					for _, succ := range node.Succs() {
						if indeg[succ.Index].Add(-1) == 0 {
							ready <- succ
						}
					}
				}
				results <- runErr
				return runErr
			})
		case runErr := <-results:
			completed++
			if runErr != nil {
				firstErr = runErr
				break dispatch
			}
		}
	}

	if waitErr := g.Wait(); waitErr != nil && firstErr == nil {
		firstErr = waitErr
	}
	return firstErr
}

// runNode fans n out into its Subtasks, runs them with bounded
// concurrency, then merges the results. Merge is called even when there
// is exactly one Subtask: product nodes (Mxm/Vxm/Mxv) stash an unmasked
// partial result during Execute and only write it to the output tile's
// storage inside Merge, so skipping Merge for a single-subtask node
// would silently drop that node's output.
func (s *Scheduler) runNode(ctx context.Context, n *expr.Node) error {
	subs := computeSubtasks(n)
	if len(subs) == 1 {
		if err := s.executor.Execute(ctx, n, subs[0]); err != nil {
			return err
		}
		return s.executor.Merge(ctx, n, subs)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for _, sub := range subs {
		sub := sub
		g.Go(func() error { return s.executor.Execute(gctx, n, sub) })
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return s.executor.Merge(ctx, n, subs)
}
