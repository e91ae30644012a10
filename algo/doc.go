// Package algo implements the per-operation algorithms (C10) for the
// rows of the expression operation surface in spec.md §6.3, each a
// concrete per-tile implementation over the canonical-order format
// primitives (package format).
//
// Every masked operation here follows the contract fixed by spec.md
// §4.10:
//
//	out(i[,j]) = reduceOp over k of multiplyOp(A..., B...)   if mask selects (i,j)
//	           = undefined (output has no entry)             otherwise
//
// with rows/tiles processed in index-increasing order, canonical order
// within a tile, MaskComplement negating the "selects" predicate, a
// fresh index written directly and a pre-existing index combined via the
// reduce op, and reduceOp assumed (never required to be checked)
// associative.
//
// Mxm, Vxm and Mxv take their matrix operands as Csr (package format's
// Csr; Vxm and Mxv take the vector side as CooVec) and have no Coo
// variant; every other operation works on the CooVec/Coo layouts.
package algo
