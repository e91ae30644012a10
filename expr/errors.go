package expr

import "errors"

var (
	// ErrNotDefault indicates an operation that requires the Default
	// state (MakeNode, Dependency) was attempted after submission.
	ErrNotDefault = errors.New("expr: expression is no longer in the Default state")

	// ErrNotSubmitted indicates SubmitWait was called twice.
	ErrNotSubmitted = errors.New("expr: expression already submitted")

	// ErrForeignNode indicates Dependency was called with a node that
	// does not belong to this Expression.
	ErrForeignNode = errors.New("expr: node does not belong to this expression")

	// ErrCycle indicates the node graph is not acyclic: topological sort
	// failed, so the scheduler rejects the submission (spec.md §4.7).
	ErrCycle = errors.New("expr: dependency graph contains a cycle")

	// ErrBadArity indicates MakeNode was called with an argument count
	// that does not match Kind's fixed arity (spec.md §4.7 "validate
	// arity ... immediately").
	ErrBadArity = errors.New("expr: wrong argument count for operation kind")
)
