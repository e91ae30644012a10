// Package status defines a fixed set of result codes for spla operations,
// plus the small set of sentinel errors used to build them (a Code can be
// wrapped in an error via AsError).
//
// No other package of this module uses Code: package spla's entry points
// return plain error values (ErrShapeMismatch, ErrForeignHandle, ...) and
// report dimension mismatches that way rather than by panicking.
package status

import "fmt"

// Code is a fixed enum of outcomes for a spla operation.
type Code int

// The full status enum, unchanged from the specification.
const (
	// Ok indicates success.
	Ok Code = iota
	// Error is a generic failure with no more specific code.
	Error
	// NoAcceleration indicates the requested accelerator backend is unavailable.
	NoAcceleration
	// PlatformNotFound indicates the requested accelerator platform does not exist.
	PlatformNotFound
	// DeviceNotFound indicates the requested accelerator device does not exist.
	DeviceNotFound
	// InvalidState indicates an operation was attempted on an object in the wrong lifecycle state.
	InvalidState
	// InvalidArgument indicates a programmer error: nil handle, bad dimension, type mismatch.
	InvalidArgument
	// NoValue indicates a read of a Scalar (or similar) that currently holds no value.
	NoValue
	// CompilationError indicates a device kernel failed to compile.
	CompilationError
	// NotImplemented indicates no algorithm is registered for the resolved key.
	NotImplemented
)

// String renders the Code the way log lines and error messages expect.
func (c Code) String() string {
	switch c {
	case Ok:
		return "Ok"
	case Error:
		return "Error"
	case NoAcceleration:
		return "NoAcceleration"
	case PlatformNotFound:
		return "PlatformNotFound"
	case DeviceNotFound:
		return "DeviceNotFound"
	case InvalidState:
		return "InvalidState"
	case InvalidArgument:
		return "InvalidArgument"
	case NoValue:
		return "NoValue"
	case CompilationError:
		return "CompilationError"
	case NotImplemented:
		return "NotImplemented"
	default:
		return fmt.Sprintf("Code(%d)", int(c))
	}
}

// Err pairs a Code with a human-readable cause. It implements error and
// supports errors.Is against the sentinels below via Unwrap.
type Err struct {
	Code  Code
	Cause error
}

// Error implements the error interface.
func (e *Err) Error() string {
	if e.Cause == nil {
		return e.Code.String()
	}
	return fmt.Sprintf("%s: %v", e.Code, e.Cause)
}

// Unwrap exposes Cause to errors.Is/errors.As.
func (e *Err) Unwrap() error { return e.Cause }

// New builds an *Err from a Code and a wrapped sentinel/cause.
func New(code Code, cause error) *Err {
	return &Err{Code: code, Cause: cause}
}

// Wrap attaches a tag to cause the way the teacher's matrixErrorf does,
// then packages it as an *Err with the given Code.
func Wrap(code Code, tag string, cause error) *Err {
	return &Err{Code: code, Cause: fmt.Errorf("%s: %w", tag, cause)}
}
