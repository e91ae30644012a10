package storage

import "errors"

var (
	// ErrNoConstructor indicates a format slot has no registered
	// constructor — a programmer error in Manager setup, not a data
	// condition a caller can hit at runtime once the library is wired up.
	ErrNoConstructor = errors.New("storage: no constructor registered for format")

	// ErrNoConversionPath indicates the BFS search in validateRW found no
	// route from any currently-valid format to the target. It is returned
	// as a plain error; nothing maps it to a status.Code.
	ErrNoConversionPath = errors.New("storage: no conversion path to requested format")
)
