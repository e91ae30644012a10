package schedule

import (
	"context"

	"github.com/sparselinalg/spla/expr"
)

// Executor performs the real work a Subtask names. The spla facade is the
// only intended implementation: it knows how to map (Node, Subtask)
// coordinates to real storage tiles and how to invoke the appropriate
// algo function on them. Execute is called once per Subtask (concurrently,
// bounded by the Scheduler's worker limit); Merge is called once per node,
// always, after every one of that node's Subtasks has returned without
// error — including nodes with exactly one Subtask — and is responsible
// for combining partial per-subtask results (e.g. partial inner products
// for mxm, or partial reductions) into the node's final output.
type Executor interface {
	Execute(ctx context.Context, n *expr.Node, sub Subtask) error
	Merge(ctx context.Context, n *expr.Node, subs []Subtask) error
}
