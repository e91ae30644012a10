package block

import "errors"

var (
	// ErrBadBlockSize indicates a non-positive block size was requested.
	ErrBadBlockSize = errors.New("block: block size must be > 0")

	// ErrBadDimension indicates a negative row/col dimension was requested.
	ErrBadDimension = errors.New("block: dimension must be >= 0")
)
