// Package converters marks the accelerator-runtime integration boundary
// this module deliberately does not implement (SPEC_FULL.md §6.4/§1
// scope rule): a real OpenCL or CUDA backend would live here, built
// against the accel.Backend interface the core already consumes, but
// compiling and shipping one is out of scope for this module.
//
// accel/reference.go is the only Backend this repository ships, and
// spla.WithBackend chooses only between BackendNone and BackendReference;
// it takes no accel.Backend value, so a Library cannot be given an
// external backend.
package converters
