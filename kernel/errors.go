package kernel

import "errors"

var (
	// ErrNotRegistered indicates no algorithm is registered for any key
	// the dispatcher is willing to try (after device-suffix fallback). It
	// is returned as a plain error; nothing maps it to a status.Code.
	ErrNotRegistered = errors.New("kernel: no algorithm registered for key")

	// ErrFormatMismatch indicates a registered algorithm's Select
	// predicate rejected the operands' current tile formats, either with
	// no conversion callback supplied or still after the callback ran for
	// every operand.
	ErrFormatMismatch = errors.New("kernel: operand formats rejected by algorithm Select predicate")
)
