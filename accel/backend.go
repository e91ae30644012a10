package accel

import "context"

// Buffer is an opaque device-owned allocation of raw bytes.
type Buffer interface {
	Size() int
}

// Program is a compiled kernel module, the result of CompileProgram.
type Program interface {
	Key() string
}

// Queue is a single command queue on a device; subtasks pinned to the
// same DeviceIdN descriptor share one Queue per worker (spec.md §5).
type Queue interface {
	// Wait blocks until every previously enqueued command on this queue
	// has completed.
	Wait(ctx context.Context) error
}

// Backend is the entire surface the core requires from an accelerator
// collaborator. Nothing in the core may depend on a concrete device API
// beyond this interface (spec.md §6.4).
type Backend interface {
	// Name identifies the backend for the device-class dispatch suffix,
	// which the dispatcher forms as "__gpu_" + Name() (Reference's
	// "reference" gives "__gpu_reference").
	Name() string

	// SupportsAtomicAdd reports whether device kernels on this backend can
	// rely on an atomic-add primitive. kernel.Dispatcher falls back to the
	// CPU algorithm for any kernel that requires one when this is false
	// (SPEC_FULL.md §9.1 open-question decision #2).
	SupportsAtomicAdd() bool

	AcquireContext(ctx context.Context) error
	CommandQueue(deviceID int) (Queue, error)
	CompileProgram(key string, sources []string, defines map[string]string) (Program, error)
	NewBuffer(bytes int) (Buffer, error)
	EnqueueWrite(q Queue, dst Buffer, src []byte) error
	EnqueueRead(q Queue, dst []byte, src Buffer) error
	EnqueueCopy(q Queue, dst, src Buffer) error
	EnqueueNDRange(q Queue, prog Program, kernel string, global, local [3]int, args ...Buffer) error
}
