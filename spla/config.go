package spla

import "github.com/sparselinalg/spla/accel"

// BackendKind selects the accelerator collaborator a Library dispatches
// to, mirroring spec.md §6.2's "device class" configuration knob.
type BackendKind int

const (
	// BackendNone runs every operation on the CPU path only.
	BackendNone BackendKind = iota
	// BackendReference drives accel.Reference, the in-process backend
	// that exercises the accelerator leg of the dispatcher without a real
	// device.
	BackendReference
)

// Config carries the library-wide knobs spec.md §6.2 exposes to callers.
type Config struct {
	BlockSize int
	Backend   BackendKind
	Workers   int
}

// Option configures a Config, following the functional-options shape the
// rest of this codebase's ecosystem stack favors over a builder struct.
type Option func(*Config)

// WithBlockSize overrides the tile edge length (block.DefaultBlockSize
// otherwise).
func WithBlockSize(n int) Option {
	return func(c *Config) { c.BlockSize = n }
}

// WithBackend selects the accelerator backend a Library dispatches to.
func WithBackend(kind BackendKind) Option {
	return func(c *Config) { c.Backend = kind }
}

// WithWorkers sets the scheduler's worker limit: at most n nodes run at
// once, each with at most n concurrent subtasks.
func WithWorkers(n int) Option {
	return func(c *Config) { c.Workers = n }
}

func defaultConfig() Config {
	return Config{BlockSize: 0, Backend: BackendNone, Workers: 4}
}

func (c Config) resolveBackend() (accel.Backend, bool) {
	switch c.Backend {
	case BackendReference:
		return accel.NewReference(), true
	default:
		return nil, false
	}
}
