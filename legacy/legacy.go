// Package legacy adapts this module's spla.Builder-based operation
// surface to the naming scheme of the original spla_c binding
// (spla_mxm, spla_vxm, spla_mxv, ... in original_source/include/spla_c/spla.h):
// each function here builds exactly the same DAG node as its package
// spla counterpart, just under the older name, so a caller migrating
// from that binding can keep its call sites and still target one
// Expression graph alongside newer spla-style call sites.
package legacy

import (
	"github.com/sparselinalg/spla/spla"
	"github.com/sparselinalg/spla/expr"
	"github.com/sparselinalg/spla/typesop"
)

// EWiseAdd is spla.EwiseAdd under the old binding's capitalization.
func EWiseAdd[T any](e *spla.Builder, w, a, b *spla.Vector[T], mask *spla.Vector[T], complement bool, op typesop.Op) (*expr.Node, error) {
	return spla.EwiseAdd(e, w, a, b, mask, complement, op)
}

// MEWiseAdd is spla.EwiseAddMat under the old binding's capitalization.
func MEWiseAdd[T any](e *spla.Builder, w, a, b *spla.Matrix[T], mask *spla.Matrix[T], complement bool, op typesop.Op) (*expr.Node, error) {
	return spla.EwiseAddMat(e, w, a, b, mask, complement, op)
}

// EWiseMult is spla.EwiseMult under the old binding's capitalization.
func EWiseMult[T any](e *spla.Builder, w, a, b *spla.Vector[T], mask *spla.Vector[T], complement bool, op typesop.Op) (*expr.Node, error) {
	return spla.EwiseMult(e, w, a, b, mask, complement, op)
}

// MEWiseMult is spla.EwiseMultMat under the old binding's capitalization.
func MEWiseMult[T any](e *spla.Builder, w, a, b *spla.Matrix[T], mask *spla.Matrix[T], complement bool, op typesop.Op) (*expr.Node, error) {
	return spla.EwiseMultMat(e, w, a, b, mask, complement, op)
}

// VectorAssign mirrors spla_VectorAssign.
func VectorAssign[T any](e *spla.Builder, w *spla.Vector[T], mask *spla.Vector[T], complement bool, accum *typesop.Op, scalar T) (*expr.Node, error) {
	return spla.Assign(e, w, mask, complement, accum, scalar)
}

// MatrixAssign mirrors spla_MatrixAssign.
func MatrixAssign[T any](e *spla.Builder, w *spla.Matrix[T], mask *spla.Matrix[T], complement bool, accum *typesop.Op, scalar T) (*expr.Node, error) {
	return spla.AssignMat(e, w, mask, complement, accum, scalar)
}

// Reduce mirrors spla_Reduce's vector-operand form (reduce to scalar).
func Reduce[T any](e *spla.Builder, s *spla.Scalar[T], mask *spla.Vector[T], complement bool, accum *typesop.Op, reduceOp typesop.Op, m *spla.Vector[T]) (*expr.Node, error) {
	return spla.ReduceScalar(e, s, mask, complement, accum, reduceOp, m)
}

// MReduce mirrors spla_Reduce's matrix-operand form.
func MReduce[T any](e *spla.Builder, s *spla.Scalar[T], mask *spla.Matrix[T], complement bool, accum *typesop.Op, reduceOp typesop.Op, m *spla.Matrix[T]) (*expr.Node, error) {
	return spla.ReduceScalarMat(e, s, mask, complement, accum, reduceOp, m)
}

// ReduceByRow mirrors spla_Reduce's row-wise matrix-to-vector form.
func ReduceByRow[T any](e *spla.Builder, v *spla.Vector[T], reduceOp typesop.Op, init *T, m *spla.Matrix[T]) (*expr.Node, error) {
	return spla.ReduceByRow(e, v, reduceOp, init, m)
}

// MxM mirrors spla_MxM.
func MxM[T any](e *spla.Builder, w, a, b *spla.Matrix[T], mask *spla.Matrix[T], complement bool, mult, add typesop.Op) (*expr.Node, error) {
	return spla.Mxm(e, w, a, b, mask, complement, mult, add)
}

// VxM mirrors spla_VxM.
func VxM[T any](e *spla.Builder, w, v *spla.Vector[T], m *spla.Matrix[T], mask *spla.Vector[T], complement bool, mult, add typesop.Op) (*expr.Node, error) {
	return spla.Vxm(e, w, v, m, mask, complement, mult, add)
}

// MxV mirrors spla_MxV.
func MxV[T any](e *spla.Builder, w *spla.Vector[T], m *spla.Matrix[T], v *spla.Vector[T], mask *spla.Vector[T], complement bool, mult, add typesop.Op) (*expr.Node, error) {
	return spla.Mxv(e, w, m, v, mask, complement, mult, add)
}

// Transpose mirrors spla_Transpose.
func Transpose[T any](e *spla.Builder, w, a *spla.Matrix[T], mask *spla.Matrix[T], complement bool, accumKey string) (*expr.Node, error) {
	return spla.Transpose(e, w, a, mask, complement, accumKey)
}

// Select mirrors spla_Select's lower/upper-triangle special case, the
// only Select variant this module implements (general predicate-masked
// select is the general ewise/assign path with a Select op, per
// SPEC_FULL.md §6.3).
func Select[T any](e *spla.Builder, w, a *spla.Matrix[T], lower bool) (*expr.Node, error) {
	if lower {
		return spla.Tril(e, w, a)
	}
	return spla.Triu(e, w, a)
}

// Apply mirrors spla_Apply (unary map over a vector).
func Apply[T any](e *spla.Builder, w, v *spla.Vector[T], unary typesop.Op) (*expr.Node, error) {
	return spla.Map(e, w, v, unary)
}

// MApply mirrors spla_Apply's matrix form.
func MApply[T any](e *spla.Builder, w, m *spla.Matrix[T], unary typesop.Op) (*expr.Node, error) {
	return spla.MapMat(e, w, m, unary)
}

// Extract mirrors spla_Extract's single-row form.
func Extract[T any](e *spla.Builder, r *spla.Vector[T], m *spla.Matrix[T], unary typesop.Op, i int) (*expr.Node, error) {
	return spla.ExtractRow(e, r, m, unary, i)
}
