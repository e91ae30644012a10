package expr

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/sparselinalg/spla/descriptor"
)

// State is an Expression's lifecycle stage (spec.md §3 "Expression").
type State int32

const (
	Default State = iota
	Submitted
	Evaluated
	Aborted
)

func (s State) String() string {
	switch s {
	case Default:
		return "Default"
	case Submitted:
		return "Submitted"
	case Evaluated:
		return "Evaluated"
	case Aborted:
		return "Aborted"
	default:
		return "Unknown"
	}
}

// Runner hands a topologically-valid Expression to the task scheduler
// (package schedule implements this) and blocks until every node has
// run or one has failed. Defining the interface here (rather than
// importing package schedule) keeps the C7→C8 dependency one-directional,
// matching the leaves-first order in SPEC_FULL.md §2.
type Runner interface {
	Run(ctx context.Context, e *Expression) error
}

// Expression is the user-visible DAG of operation nodes submitted as a
// unit (spec.md §3). Zero value is not usable; construct with New.
type Expression struct {
	ID uuid.UUID

	mu    sync.RWMutex
	nodes []*Node

	state atomic.Int32
	errMu sync.Mutex
	err   error
	done  chan struct{}
}

// New returns an empty Expression in the Default state.
func New() *Expression {
	return &Expression{ID: uuid.New(), done: make(chan struct{})}
}

// State reports the current lifecycle stage; safe from any goroutine
// (spec.md §4.7 "get_state ... safe to call from any thread").
func (e *Expression) State() State {
	return State(e.state.Load())
}

// Nodes returns the node list in insertion order.
func (e *Expression) Nodes() []*Node {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make([]*Node, len(e.nodes))
	copy(out, e.nodes)
	return out
}

func (e *Expression) nodesAt(indices []int) []*Node {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make([]*Node, len(indices))
	for i, idx := range indices {
		out[i] = e.nodes[idx]
	}
	return out
}

// MakeNode appends a node of the given kind to the expression, validating
// arity immediately; errors here leave the Expression untouched
// (spec.md §4.7). Per-argument type constraints are the caller's (spla's)
// responsibility since expr does not know the concrete argument types.
func (e *Expression) MakeNode(kind Kind, args []any, desc *descriptor.Descriptor, outShape Shape, argShapes []Shape) (*Node, error) {
	if State(e.state.Load()) != Default {
		return nil, ErrNotDefault
	}
	if int(kind) < 0 || int(kind) >= int(kindCount) {
		return nil, fmt.Errorf("expr: %s (%d): %w", kind, int(kind), ErrBadArity)
	}
	if arity[kind] != len(args) {
		return nil, fmt.Errorf("expr: %s: want %d args, got %d: %w", kind, arity[kind], len(args), ErrBadArity)
	}
	if desc == nil {
		desc = descriptor.New()
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	n := &Node{
		Index:     len(e.nodes),
		Kind:      kind,
		Args:      args,
		Desc:      desc,
		OutShape:  outShape,
		ArgShapes: argShapes,
		expr:      e,
	}
	e.nodes = append(e.nodes, n)
	return n, nil
}

// Dependency inserts a directed pred→succ edge between two nodes of this
// Expression. Cycle detection is deferred to SubmitWait's topological
// sort, per spec.md §4.7 ("cycle detection is the caller's
// responsibility but the scheduler rejects a submission whose
// topological sort fails").
func (e *Expression) Dependency(pred, succ *Node) error {
	if State(e.state.Load()) != Default {
		return ErrNotDefault
	}
	if pred.expr != e || succ.expr != e {
		return ErrForeignNode
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	pred.succs = append(pred.succs, succ.Index)
	succ.preds = append(succ.preds, pred.Index)
	return nil
}

// TopoSort returns the nodes of this Expression in a valid topological
// order (Kahn's algorithm), or ErrCycle if the graph is not acyclic.
func (e *Expression) TopoSort() ([]*Node, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	indeg := make([]int, len(e.nodes))
	for _, n := range e.nodes {
		indeg[n.Index] = len(n.preds)
	}
	queue := make([]int, 0, len(e.nodes))
	for i, d := range indeg {
		if d == 0 {
			queue = append(queue, i)
		}
	}
	order := make([]*Node, 0, len(e.nodes))
	for len(queue) > 0 {
		i := queue[0]
		queue = queue[1:]
		order = append(order, e.nodes[i])
		for _, s := range e.nodes[i].succs {
			indeg[s]--
			if indeg[s] == 0 {
				queue = append(queue, s)
			}
		}
	}
	if len(order) != len(e.nodes) {
		return nil, ErrCycle
	}
	return order, nil
}

// SubmitWait transitions the Expression to Submitted, hands it to runner,
// and blocks until runner reports the outcome; the Expression ends in
// Evaluated or Aborted (spec.md §4.7). Calling SubmitWait a second time
// returns ErrNotSubmitted without re-running anything.
func (e *Expression) SubmitWait(ctx context.Context, runner Runner) error {
	if !e.state.CompareAndSwap(int32(Default), int32(Submitted)) {
		return ErrNotSubmitted
	}
	err := runner.Run(ctx, e)
	if err != nil {
		e.errMu.Lock()
		e.err = err
		e.errMu.Unlock()
		e.state.Store(int32(Aborted))
	} else {
		e.state.Store(int32(Evaluated))
	}
	close(e.done)
	return err
}

// Err returns the failure recorded by SubmitWait, if the Expression is
// Aborted.
func (e *Expression) Err() error {
	e.errMu.Lock()
	defer e.errMu.Unlock()
	return e.err
}

// Done returns a channel closed once SubmitWait has recorded an outcome.
func (e *Expression) Done() <-chan struct{} { return e.done }
