// Package schedule turns a topologically-valid expr.Expression into
// bounded-concurrency subtask fan-out and implements expr.Runner so that
// expr.Expression.SubmitWait can hand an Expression straight to it.
//
// A node only starts once every predecessor has finished (tracked with an
// atomic per-node countdown, not a single global barrier), and within a
// node the scheduler further fans out into per-tile or per-inner-product
// subtasks so that even one node's work is spread across workers. The
// Executor interface is where the actual tile algebra happens — package
// schedule only ever deals in node and subtask coordinates, never in
// concrete matrix/vector data, so it stays independent of the spla facade.
package schedule
