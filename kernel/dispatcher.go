package kernel

import (
	"fmt"

	"github.com/sparselinalg/spla/accel"
	"github.com/sparselinalg/spla/descriptor"
)

// Dispatcher resolves a node's operation+operand+op key and current
// operand tile formats to a concrete Algorithm, with the accelerator
// fallback policy of spec.md §4.6/§4.9.
type Dispatcher struct {
	Registry *Registry
	Backend  accel.Backend // nil means no accelerator is configured
	Enabled  bool          // BackendKind != None and Backend != nil
}

// NewDispatcher constructs a Dispatcher over registry. backend/enabled
// describe the library's configured accelerator (spec.md §6.2); pass a
// nil backend and enabled=false for a CPU-only library.
func NewDispatcher(registry *Registry, backend accel.Backend, enabled bool) *Dispatcher {
	return &Dispatcher{Registry: registry, Backend: backend, Enabled: enabled}
}

// Resolve finds the algorithm to run for baseKey (opName + "_" + each
// op's key, already including the mask-complement suffix — i.e. the
// output of Descriptor.BuildKey called with deviceSuffix=""), given the
// operands' current format codes.
//
// Order of decisions, per SPEC_FULL.md §9.1 open-question #2: the
// atomic-add capability check happens *before* the device-suffix lookup,
// not as a retry after a failed enqueue. If an accelerator is enabled
// but cannot provide atomic-add and the only accelerator-registered
// candidate requires it, Resolve goes straight to the CPU key.
func (d *Dispatcher) Resolve(baseKey string, formats []int, convert func(operandIdx int) error) (*Algorithm, error) {
	if d.Enabled && d.Backend != nil {
		gpuKey := baseKey + "__gpu_" + d.Backend.Name()
		if alg, ok := d.Registry.Lookup(gpuKey); ok {
			if !alg.RequiresAtomicAdd || d.Backend.SupportsAtomicAdd() {
				resolved, err := d.matchOrConvert(alg, formats, convert)
				if err == nil {
					return resolved, nil
				}
			}
		}
	}

	cpuKey := baseKey + "__cpu"
	alg, ok := d.Registry.Lookup(cpuKey)
	if !ok {
		return nil, fmt.Errorf("kernel: key %q: %w", cpuKey, ErrNotRegistered)
	}
	return d.matchOrConvert(alg, formats, convert)
}

// matchOrConvert checks alg.Select against formats; on rejection it
// calls convert for each operand in turn (skipping any whose conversion
// fails) and checks alg.Select again after each successful call.
func (d *Dispatcher) matchOrConvert(alg *Algorithm, formats []int, convert func(int) error) (*Algorithm, error) {
	if alg.Select == nil || alg.Select(formats...) {
		return alg, nil
	}
	if convert == nil {
		return nil, fmt.Errorf("kernel: %s: %w", alg.Key, ErrFormatMismatch)
	}
	for i := range formats {
		if err := convert(i); err != nil {
			continue
		}
		if alg.Select(formats...) {
			return alg, nil
		}
	}
	return nil, fmt.Errorf("kernel: %s: %w", alg.Key, ErrFormatMismatch)
}

// BuildBaseKey is a thin convenience wrapper around
// descriptor.Descriptor.BuildKey with an empty device suffix, since
// Resolve appends the device suffix itself.
func BuildBaseKey(desc *descriptor.Descriptor, opName string, argKeys []string) string {
	return desc.BuildKey(opName, argKeys, "")
}
