package schedule

import "errors"

// ErrNoExecutor is returned by New if executor is nil.
var ErrNoExecutor = errors.New("schedule: executor must not be nil")
