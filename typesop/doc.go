// Package typesop is the type & op registry (C1).
//
// It describes element types (name, byte size, has-values flag) and user
// ops (unary/binary/select) by a stable string key plus a host-callable
// body and/or device source fragment.
//
//	typ := typesop.TypeOf(typesop.Float64)
//	plus, _ := typesop.Lookup("plus_101010")   // built-in Float64 "+"
//
// Values inside format primitives (package format) and Storage (package
// storage) are carried as raw []byte payloads sized by Type.ByteSize, not
// as Go generic type parameters: the registry, the storage manager, and
// the dispatcher must all key on arbitrary user-registered types at
// runtime, which a single compiled generic instantiation cannot do. See
// SPEC_FULL.md §3.1 for the full rationale and the typed facade
// (package spla) that sits on top.
package typesop
