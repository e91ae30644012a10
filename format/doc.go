// Package format implements the concrete per-tile storage layouts (C3):
// DokVec, CooVec, DenseVec for vectors; Dok, Lil, Coo, Csr for matrices;
// plus accelerator twins for Coo, Csr and DenseVec.
//
// Every format supplies: construct-empty, resize, clear, and pairwise
// conversion to every other format of the same category (vector or
// matrix) it has a registered converter for. Conversions are total on the
// format's declared invariants (spec.md §3, §4.3): Dok→Csr produces a
// monotone Ap and strictly-increasing Aj per row; Coo→Lil preserves
// ordering; Csr→Coo reconstructs row indices by Ap expansion.
//
// Element values are carried as opaque `[]byte` payloads sized by
// typesop.Type.ByteSize — the idiomatic Go rendering of the type-erased
// contiguous value buffer the spec describes, without resorting to
// unsafe.Pointer arithmetic. Structure-only types (ByteSize==0) store no
// payloads at all: HasValues on the tile mirrors typesop.Type.HasValues.
package format
