package spla

import (
	"github.com/sparselinalg/spla/expr"
	"github.com/sparselinalg/spla/typesop"
)

func vecShapeOrZero[T any](v *Vector[T]) expr.Shape {
	if v == nil {
		return expr.Shape{}
	}
	return v.shape()
}

func matShapeOrZero[T any](m *Matrix[T]) expr.Shape {
	if m == nil {
		return expr.Shape{}
	}
	return m.shape()
}

func vecCoreOrNil[T any](v *Vector[T]) any {
	if v == nil {
		return (*coreVector)(nil)
	}
	return v.core
}

func matCoreOrNil[T any](m *Matrix[T]) any {
	if m == nil {
		return (*coreMatrix)(nil)
	}
	return m.core
}

// vecTouch and matTouch resolve a possibly-nil mask to its dependency-
// tracking key: a genuine untyped nil when absent, so Builder.addNode's
// "h == nil" skip actually fires (a *coreVector(nil) boxed in an any,
// as vecCoreOrNil produces for Args, never compares equal to nil and
// would otherwise wire every no-mask op to the same bogus key).
func vecTouch[T any](v *Vector[T]) any {
	if v == nil {
		return nil
	}
	return v.core
}

func matTouch[T any](m *Matrix[T]) any {
	if m == nil {
		return nil
	}
	return m.core
}

// checkVecLib and checkMatLib report ErrForeignHandle when v/m (if
// non-nil) was built from a different Library than the one building
// this node, per spec.md §7's "programmer error" taxonomy: a handle's
// tiles are laid out with its own Library's block size and backend,
// which need not match the building Library's.
func checkVecLib[T any](lib *Library, v *Vector[T]) error {
	if v != nil && v.lib != nil && v.lib != lib {
		return ErrForeignHandle
	}
	return nil
}

func checkMatLib[T any](lib *Library, m *Matrix[T]) error {
	if m != nil && m.lib != nil && m.lib != lib {
		return ErrForeignHandle
	}
	return nil
}

func checkScalarLib[T any](lib *Library, s *Scalar[T]) error {
	if s != nil && s.lib != nil && s.lib != lib {
		return ErrForeignHandle
	}
	return nil
}

// checkSizes reports ErrShapeMismatch unless every given size equals
// the first one; a size of -1 marks "absent" (e.g. a nil mask) and is
// skipped.
func checkSizes(sizes ...int) error {
	want := -1
	for _, s := range sizes {
		if s < 0 {
			continue
		}
		if want == -1 {
			want = s
			continue
		}
		if s != want {
			return ErrShapeMismatch
		}
	}
	return nil
}

func vecSizeOrAbsent[T any](v *Vector[T]) int {
	if v == nil {
		return -1
	}
	return v.core.size
}

// EwiseAdd adds a and b element-wise into w under an optional mask, per
// spec.md §6.3's ewise_add row.
func EwiseAdd[T any](e *Builder, w, a, b *Vector[T], mask *Vector[T], complement bool, op typesop.Op) (*expr.Node, error) {
	if err := checkVecLib(e.lib, w); err != nil {
		return nil, err
	}
	if err := checkVecLib(e.lib, a); err != nil {
		return nil, err
	}
	if err := checkVecLib(e.lib, b); err != nil {
		return nil, err
	}
	if err := checkVecLib(e.lib, mask); err != nil {
		return nil, err
	}
	if err := checkSizes(w.core.size, a.core.size, b.core.size, vecSizeOrAbsent(mask)); err != nil {
		return nil, err
	}
	return e.addNode(expr.EwiseAdd,
		[]any{w.core, vecCoreOrNil(mask), op, a.core, b.core},
		maskDesc(complement), w.shape(), []expr.Shape{w.shape(), vecShapeOrZero(mask), {}, a.shape(), b.shape()},
		[]any{w.core, vecTouch(mask), a.core, b.core})
}

// EwiseAddMat is EwiseAdd's matrix analogue.
func EwiseAddMat[T any](e *Builder, w, a, b *Matrix[T], mask *Matrix[T], complement bool, op typesop.Op) (*expr.Node, error) {
	if err := checkMatLib(e.lib, w); err != nil {
		return nil, err
	}
	if err := checkMatLib(e.lib, a); err != nil {
		return nil, err
	}
	if err := checkMatLib(e.lib, b); err != nil {
		return nil, err
	}
	if err := checkMatLib(e.lib, mask); err != nil {
		return nil, err
	}
	if w.core.rows != a.core.rows || w.core.cols != a.core.cols ||
		a.core.rows != b.core.rows || a.core.cols != b.core.cols {
		return nil, ErrShapeMismatch
	}
	if mask != nil && (mask.core.rows != w.core.rows || mask.core.cols != w.core.cols) {
		return nil, ErrShapeMismatch
	}
	return e.addNode(expr.EwiseAdd,
		[]any{w.core, matCoreOrNil(mask), op, a.core, b.core},
		maskDesc(complement), w.shape(), []expr.Shape{w.shape(), matShapeOrZero(mask), {}, a.shape(), b.shape()},
		[]any{w.core, matTouch(mask), a.core, b.core})
}

// EwiseMult multiplies a and b element-wise into w under an optional
// mask, per spec.md §6.3's ewise_mult row.
func EwiseMult[T any](e *Builder, w, a, b *Vector[T], mask *Vector[T], complement bool, op typesop.Op) (*expr.Node, error) {
	if err := checkVecLib(e.lib, w); err != nil {
		return nil, err
	}
	if err := checkVecLib(e.lib, a); err != nil {
		return nil, err
	}
	if err := checkVecLib(e.lib, b); err != nil {
		return nil, err
	}
	if err := checkVecLib(e.lib, mask); err != nil {
		return nil, err
	}
	if err := checkSizes(w.core.size, a.core.size, b.core.size, vecSizeOrAbsent(mask)); err != nil {
		return nil, err
	}
	return e.addNode(expr.EwiseMult,
		[]any{w.core, vecCoreOrNil(mask), op, a.core, b.core},
		maskDesc(complement), w.shape(), []expr.Shape{w.shape(), vecShapeOrZero(mask), {}, a.shape(), b.shape()},
		[]any{w.core, vecTouch(mask), a.core, b.core})
}

// EwiseMultMat is EwiseMult's matrix analogue.
func EwiseMultMat[T any](e *Builder, w, a, b *Matrix[T], mask *Matrix[T], complement bool, op typesop.Op) (*expr.Node, error) {
	if err := checkMatLib(e.lib, w); err != nil {
		return nil, err
	}
	if err := checkMatLib(e.lib, a); err != nil {
		return nil, err
	}
	if err := checkMatLib(e.lib, b); err != nil {
		return nil, err
	}
	if err := checkMatLib(e.lib, mask); err != nil {
		return nil, err
	}
	if w.core.rows != a.core.rows || w.core.cols != a.core.cols ||
		a.core.rows != b.core.rows || a.core.cols != b.core.cols {
		return nil, ErrShapeMismatch
	}
	if mask != nil && (mask.core.rows != w.core.rows || mask.core.cols != w.core.cols) {
		return nil, ErrShapeMismatch
	}
	return e.addNode(expr.EwiseMult,
		[]any{w.core, matCoreOrNil(mask), op, a.core, b.core},
		maskDesc(complement), w.shape(), []expr.Shape{w.shape(), matShapeOrZero(mask), {}, a.shape(), b.shape()},
		[]any{w.core, matTouch(mask), a.core, b.core})
}

// Assign writes scalar into every masked-in element of w, optionally
// combining with w's existing value via accum, per spec.md §6.3's
// assign row.
func Assign[T any](e *Builder, w *Vector[T], mask *Vector[T], complement bool, accum *typesop.Op, scalar T) (*expr.Node, error) {
	if err := checkVecLib(e.lib, w); err != nil {
		return nil, err
	}
	if err := checkVecLib(e.lib, mask); err != nil {
		return nil, err
	}
	if err := checkSizes(w.core.size, vecSizeOrAbsent(mask)); err != nil {
		return nil, err
	}
	return e.addNode(expr.Assign,
		[]any{w.core, vecCoreOrNil(mask), accum, w.codec.Encode(scalar)},
		maskDesc(complement), w.shape(), []expr.Shape{w.shape(), vecShapeOrZero(mask), {}, {}},
		[]any{w.core, vecTouch(mask)})
}

// AssignMat is Assign's matrix analogue.
func AssignMat[T any](e *Builder, w *Matrix[T], mask *Matrix[T], complement bool, accum *typesop.Op, scalar T) (*expr.Node, error) {
	if err := checkMatLib(e.lib, w); err != nil {
		return nil, err
	}
	if err := checkMatLib(e.lib, mask); err != nil {
		return nil, err
	}
	if mask != nil && (mask.core.rows != w.core.rows || mask.core.cols != w.core.cols) {
		return nil, ErrShapeMismatch
	}
	return e.addNode(expr.Assign,
		[]any{w.core, matCoreOrNil(mask), accum, w.codec.Encode(scalar)},
		maskDesc(complement), w.shape(), []expr.Shape{w.shape(), matShapeOrZero(mask), {}, {}},
		[]any{w.core, matTouch(mask)})
}

// ReduceScalar folds every masked-in element of m into s with reduceOp,
// optionally combined with s's prior value via accum, per spec.md
// §6.3's reduce_scalar row (vector operand form).
func ReduceScalar[T any](e *Builder, s *Scalar[T], mask *Vector[T], complement bool, accum *typesop.Op, reduceOp typesop.Op, m *Vector[T]) (*expr.Node, error) {
	if err := checkScalarLib(e.lib, s); err != nil {
		return nil, err
	}
	if err := checkVecLib(e.lib, m); err != nil {
		return nil, err
	}
	if err := checkVecLib(e.lib, mask); err != nil {
		return nil, err
	}
	if err := checkSizes(m.core.size, vecSizeOrAbsent(mask)); err != nil {
		return nil, err
	}
	return e.addNode(expr.ReduceScalar,
		[]any{s.core, vecCoreOrNil(mask), accum, reduceOp, m.core},
		maskDesc(complement), s.shape(), []expr.Shape{s.shape(), vecShapeOrZero(mask), {}, {}, m.shape()},
		[]any{s.core, vecTouch(mask), m.core})
}

// ReduceScalarMat is ReduceScalar's matrix-operand form.
func ReduceScalarMat[T any](e *Builder, s *Scalar[T], mask *Matrix[T], complement bool, accum *typesop.Op, reduceOp typesop.Op, m *Matrix[T]) (*expr.Node, error) {
	if err := checkScalarLib(e.lib, s); err != nil {
		return nil, err
	}
	if err := checkMatLib(e.lib, m); err != nil {
		return nil, err
	}
	if err := checkMatLib(e.lib, mask); err != nil {
		return nil, err
	}
	if mask != nil && (mask.core.rows != m.core.rows || mask.core.cols != m.core.cols) {
		return nil, ErrShapeMismatch
	}
	return e.addNode(expr.ReduceScalar,
		[]any{s.core, matCoreOrNil(mask), accum, reduceOp, m.core},
		maskDesc(complement), s.shape(), []expr.Shape{s.shape(), matShapeOrZero(mask), {}, {}, m.shape()},
		[]any{s.core, matTouch(mask), m.core})
}

// ReduceByRow folds each row of m with reduceOp into v, seeding any row
// with no entries with init (if non-nil), per spec.md §6.3's
// reduce_by_row row.
func ReduceByRow[T any](e *Builder, v *Vector[T], reduceOp typesop.Op, init *T, m *Matrix[T]) (*expr.Node, error) {
	if err := checkVecLib(e.lib, v); err != nil {
		return nil, err
	}
	if err := checkMatLib(e.lib, m); err != nil {
		return nil, err
	}
	if v.core.size != m.core.rows {
		return nil, ErrShapeMismatch
	}
	var initBytes any
	if init != nil {
		initBytes = v.codec.Encode(*init)
	}
	return e.addNode(expr.ReduceByRow,
		[]any{v.core, m.core, reduceOp, initBytes},
		nil, v.shape(), []expr.Shape{v.shape(), m.shape(), {}, {}},
		[]any{v.core, m.core})
}

// Mxm computes w = mask(a mult-add b), per spec.md §6.3's mxm row.
func Mxm[T any](e *Builder, w, a, b *Matrix[T], mask *Matrix[T], complement bool, mult, add typesop.Op) (*expr.Node, error) {
	if err := checkMatLib(e.lib, w); err != nil {
		return nil, err
	}
	if err := checkMatLib(e.lib, a); err != nil {
		return nil, err
	}
	if err := checkMatLib(e.lib, b); err != nil {
		return nil, err
	}
	if err := checkMatLib(e.lib, mask); err != nil {
		return nil, err
	}
	if a.core.cols != b.core.rows || w.core.rows != a.core.rows || w.core.cols != b.core.cols {
		return nil, ErrShapeMismatch
	}
	if mask != nil && (mask.core.rows != w.core.rows || mask.core.cols != w.core.cols) {
		return nil, ErrShapeMismatch
	}
	return e.addNode(expr.Mxm,
		[]any{w.core, matCoreOrNil(mask), mult, add, a.core, b.core},
		maskDesc(complement), w.shape(), []expr.Shape{w.shape(), matShapeOrZero(mask), {}, {}, a.shape(), b.shape()},
		[]any{w.core, matTouch(mask), a.core, b.core})
}

// Vxm computes w = mask(v mult-add m), per spec.md §6.3's vxm row.
func Vxm[T any](e *Builder, w, v *Vector[T], m *Matrix[T], mask *Vector[T], complement bool, mult, add typesop.Op) (*expr.Node, error) {
	if err := checkVecLib(e.lib, w); err != nil {
		return nil, err
	}
	if err := checkVecLib(e.lib, v); err != nil {
		return nil, err
	}
	if err := checkMatLib(e.lib, m); err != nil {
		return nil, err
	}
	if err := checkVecLib(e.lib, mask); err != nil {
		return nil, err
	}
	if v.core.size != m.core.rows || w.core.size != m.core.cols {
		return nil, ErrShapeMismatch
	}
	if err := checkSizes(w.core.size, vecSizeOrAbsent(mask)); err != nil {
		return nil, err
	}
	return e.addNode(expr.Vxm,
		[]any{w.core, vecCoreOrNil(mask), mult, add, v.core, m.core},
		maskDesc(complement), w.shape(), []expr.Shape{w.shape(), vecShapeOrZero(mask), {}, {}, v.shape(), m.shape()},
		[]any{w.core, vecTouch(mask), v.core, m.core})
}

// Mxv computes w = mask(m mult-add v), per spec.md §6.3's mxv row.
func Mxv[T any](e *Builder, w *Vector[T], m *Matrix[T], v *Vector[T], mask *Vector[T], complement bool, mult, add typesop.Op) (*expr.Node, error) {
	if err := checkVecLib(e.lib, w); err != nil {
		return nil, err
	}
	if err := checkMatLib(e.lib, m); err != nil {
		return nil, err
	}
	if err := checkVecLib(e.lib, v); err != nil {
		return nil, err
	}
	if err := checkVecLib(e.lib, mask); err != nil {
		return nil, err
	}
	if m.core.cols != v.core.size || w.core.size != m.core.rows {
		return nil, ErrShapeMismatch
	}
	if err := checkSizes(w.core.size, vecSizeOrAbsent(mask)); err != nil {
		return nil, err
	}
	return e.addNode(expr.Mxv,
		[]any{w.core, vecCoreOrNil(mask), mult, add, m.core, v.core},
		maskDesc(complement), w.shape(), []expr.Shape{w.shape(), vecShapeOrZero(mask), {}, {}, m.shape(), v.shape()},
		[]any{w.core, vecTouch(mask), m.core, v.core})
}

// Transpose writes a's transpose into w under an optional mask,
// optionally combined with w's existing value via an accum operator
// carried in the descriptor's AccumResult param (Transpose's fixed
// Args arity has no slot for it), per spec.md §6.3's transpose row.
func Transpose[T any](e *Builder, w, a *Matrix[T], mask *Matrix[T], complement bool, accumKey string) (*expr.Node, error) {
	if err := checkMatLib(e.lib, w); err != nil {
		return nil, err
	}
	if err := checkMatLib(e.lib, a); err != nil {
		return nil, err
	}
	if err := checkMatLib(e.lib, mask); err != nil {
		return nil, err
	}
	if w.core.rows != a.core.cols || w.core.cols != a.core.rows {
		return nil, ErrShapeMismatch
	}
	if mask != nil && (mask.core.rows != w.core.rows || mask.core.cols != w.core.cols) {
		return nil, ErrShapeMismatch
	}
	return e.addNode(expr.Transpose,
		[]any{w.core, matCoreOrNil(mask), a.core},
		accumDesc(complement, accumKey), w.shape(), []expr.Shape{w.shape(), matShapeOrZero(mask), a.shape()},
		[]any{w.core, matTouch(mask), a.core})
}

// Tril keeps a's strict lower triangle (diagonal excluded) in w, per
// spec.md §6.3's tril row.
func Tril[T any](e *Builder, w, a *Matrix[T]) (*expr.Node, error) {
	if err := checkMatLib(e.lib, w); err != nil {
		return nil, err
	}
	if err := checkMatLib(e.lib, a); err != nil {
		return nil, err
	}
	if w.core.rows != a.core.rows || w.core.cols != a.core.cols {
		return nil, ErrShapeMismatch
	}
	return e.addNode(expr.Tril,
		[]any{w.core, a.core},
		nil, w.shape(), []expr.Shape{w.shape(), a.shape()},
		[]any{w.core, a.core})
}

// Triu keeps a's strict upper triangle (diagonal excluded) in w, per
// spec.md §6.3's triu row.
func Triu[T any](e *Builder, w, a *Matrix[T]) (*expr.Node, error) {
	if err := checkMatLib(e.lib, w); err != nil {
		return nil, err
	}
	if err := checkMatLib(e.lib, a); err != nil {
		return nil, err
	}
	if w.core.rows != a.core.rows || w.core.cols != a.core.cols {
		return nil, ErrShapeMismatch
	}
	return e.addNode(expr.Triu,
		[]any{w.core, a.core},
		nil, w.shape(), []expr.Shape{w.shape(), a.shape()},
		[]any{w.core, a.core})
}

// Map applies unary to every element of v, writing the result into w,
// per spec.md §6.3's map row.
func Map[T any](e *Builder, w, v *Vector[T], unary typesop.Op) (*expr.Node, error) {
	if err := checkVecLib(e.lib, w); err != nil {
		return nil, err
	}
	if err := checkVecLib(e.lib, v); err != nil {
		return nil, err
	}
	if w.core.size != v.core.size {
		return nil, ErrShapeMismatch
	}
	return e.addNode(expr.Map,
		[]any{w.core, v.core, unary},
		nil, w.shape(), []expr.Shape{w.shape(), v.shape(), {}},
		[]any{w.core, v.core})
}

// MapMat is Map's matrix analogue.
func MapMat[T any](e *Builder, w, m *Matrix[T], unary typesop.Op) (*expr.Node, error) {
	if err := checkMatLib(e.lib, w); err != nil {
		return nil, err
	}
	if err := checkMatLib(e.lib, m); err != nil {
		return nil, err
	}
	if w.core.rows != m.core.rows || w.core.cols != m.core.cols {
		return nil, ErrShapeMismatch
	}
	return e.addNode(expr.Map,
		[]any{w.core, m.core, unary},
		nil, w.shape(), []expr.Shape{w.shape(), m.shape(), {}},
		[]any{w.core, m.core})
}

// ExtractRow applies unary to row i of m, writing the result into r,
// per spec.md §6.3's extract_row row.
func ExtractRow[T any](e *Builder, r *Vector[T], m *Matrix[T], unary typesop.Op, i int) (*expr.Node, error) {
	if err := checkVecLib(e.lib, r); err != nil {
		return nil, err
	}
	if err := checkMatLib(e.lib, m); err != nil {
		return nil, err
	}
	if r.core.size != m.core.cols {
		return nil, ErrShapeMismatch
	}
	if i < 0 || i >= m.core.rows {
		return nil, ErrShapeMismatch
	}
	return e.addNode(expr.ExtractRow,
		[]any{r.core, m.core, unary, i},
		nil, r.shape(), []expr.Shape{r.shape(), m.shape(), {}, {}},
		[]any{r.core, m.core})
}
