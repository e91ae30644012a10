// Package util implements the utility primitives (C11) shared by the
// per-operation algorithms (package algo) and by package format's vector
// converters: reduce-by-key, reduce-duplicates, sort-by-key, merge-by-key,
// mask-by-key, gather, prefix-sum and transform-values.
//
// Every primitive here is total and deterministic — they are building
// blocks, not independent algorithms. Most allocate and return their
// outputs; Gather and GatherInts fill a caller-supplied, already-sized
// destination.
package util
