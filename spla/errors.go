package spla

import "errors"

var (
	// ErrShapeMismatch is returned when two operands' dimensions are not
	// compatible with the operation being built.
	ErrShapeMismatch = errors.New("spla: shape mismatch")
	// ErrForeignHandle is returned when an operand was not created by the
	// same Library as the one building the node.
	ErrForeignHandle = errors.New("spla: operand belongs to a different library")
	// ErrScalarEmpty is returned by Scalar.Value when the scalar has no
	// value assigned.
	ErrScalarEmpty = errors.New("spla: scalar has no value")
	// ErrUnknownNodeKind is returned by the Executor when it is handed an
	// expr.Node of a Kind it does not implement.
	ErrUnknownNodeKind = errors.New("spla: unsupported node kind")
)
