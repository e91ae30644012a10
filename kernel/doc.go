// Package kernel implements the kernel registry & dispatcher (C9): a
// mapping from a resolved dispatch key (package descriptor) to a
// concrete per-tile algorithm, plus the lookup/fallback policy described
// in spec.md §4.9.
//
// The registry itself never decides *how* to run an algorithm — that is
// package algo's job. kernel only decides *which* registered algorithm
// applies to a given node, given the tile formats of its operands, and
// how to fall back from an accelerator key to a CPU key when no device
// implementation is registered or the accelerator is disabled.
package kernel
