// Package spla is the public facade: typed Matrix[T]/Vector[T]/Scalar[T]
// handles over the byte-erased storage, format and algorithm layers, a
// Library that owns its own kernel registry and dispatcher, and
// the Executor that bridges an expr.Expression's nodes to real tile data
// by way of the task scheduler (package schedule).
//
// Every typed operation (EwiseAdd, Mxm, ReduceScalar, ...) is a factory
// function that appends one node to a caller-supplied *Builder (a wrapper
// around an expr.Expression) and returns immediately; nothing runs until
// the Builder is submitted through Library.Submit, which drives package
// schedule's Scheduler.
package spla
