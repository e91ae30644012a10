package kernel

import "sync"

// Algorithm is one registered per-tile implementation: the resolved key
// it answers to, the device class it runs on, a predicate over the
// operands' current format codes, whether it needs a device atomic-add
// primitive, and the Go closure that actually does the work (supplied
// by package algo and, ultimately, package spla's Executor).
type Algorithm struct {
	Key               string
	DeviceClass       string // "cpu" or "gpu_<backend>"
	RequiresAtomicAdd bool
	// Select reports whether this algorithm accepts the operands'
	// current tile format codes, in argument order (spec.md §4.9 "validates
	// that the per-tile formats of the input operands meet the
	// algorithm's select predicate").
	Select func(formats ...int) bool
	// Run executes the algorithm body. args/result are left as `any`
	// because the registry is shared across every operation name and
	// element type; callers (package algo) type-assert to their own
	// concrete signatures.
	Run func(args ...any) (any, error)
}

// Registry is the process-wide map {key -> compiled algorithm}, read
// mostly, with write-locked insertion — mirroring the kernel source
// cache policy of spec.md §5 (this registry is the Go analogue of that
// cache, except entries never fail to "compile": a Go closure either
// exists or doesn't).
type Registry struct {
	mu   sync.RWMutex
	byID map[string]*Algorithm
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{byID: make(map[string]*Algorithm)}
}

// Register installs (or replaces) alg under alg.Key.
func (r *Registry) Register(alg *Algorithm) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[alg.Key] = alg
}

// Lookup returns the algorithm registered under key, if any.
func (r *Registry) Lookup(key string) (*Algorithm, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.byID[key]
	return a, ok
}
