// Package expr implements the expression DAG (C7): a directed acyclic
// graph of operation nodes with explicit predecessor/successor edges and
// a lifecycle {Default, Submitted, Evaluated, Aborted}, per spec.md §3/§4.7.
//
// Expression is modeled the way the teacher (katalvlaran/lvlath) models a
// graph: a node slice plus per-node predecessor/successor index slices,
// guarded by a sync.RWMutex,
// except here edges are directed and acyclic and nodes become immutable
// once the expression is submitted. Node arguments are held as `any`
// (not a concrete Matrix/Vector/Scalar type) because expr sits below the
// public facade (package spla) in the dependency order fixed by
// SPEC_FULL.md §2 — spla depends on expr, not the reverse.
package expr
