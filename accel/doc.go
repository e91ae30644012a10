// Package accel defines the minimal interface the core consumes from an
// external accelerator collaborator (C6.4): acquire a context, get a
// command queue, compile a program from assembled source with #define
// macros, allocate a device buffer, enqueue buffer read/write/copy,
// enqueue an N-D range over a compiled kernel, and wait for completion.
//
// The actual device runtime (OpenCL/CUDA context management, kernel
// compilation, device memory pool) is explicitly out of scope (spec.md
// §1): this package only fixes the seam. reference.go is a trivial
// in-process Backend used by tests and by BackendKind.None, standing in
// for the real collaborator the same way the teacher's converterts
// package stands in for external graph-library adapters it declares but
// does not implement (a doc.go-only boundary marker).
package accel
