package algo

import "github.com/sparselinalg/spla/format"

// DataWriteVec appends (idx, val) pairs supplied by the caller into dst,
// a DokVec under active construction (spec.md §6.3 "data_write(X)": X,
// host-data; §4.4 validate_ctor is how the caller ensures dst exists
// before calling this). Later writes at the same index overwrite earlier
// ones, matching DokVec's unordered-map semantics.
func DataWriteVec(dst *format.DokVec, idx []int, vals [][]byte) {
	for i, at := range idx {
		dst.Set(at, vals[i])
	}
}

// DataWriteMat is DataWriteVec's matrix analogue, writing (row, col, val)
// triples into a Dok under construction.
func DataWriteMat(dst *format.Dok, rows, cols []int, vals [][]byte) {
	for i := range rows {
		dst.Set(rows[i], cols[i], vals[i])
	}
}

// DataReadVec copies every present entry of src into caller-supplied
// parallel index/value slices, in whatever order src iterates (the
// caller sorts if canonical order is required — spec.md §6.3
// "data_read(X)": X, host-buffer).
func DataReadVec(src *format.CooVec) (idx []int, vals [][]byte) {
	return append([]int(nil), src.Idx...), append([][]byte(nil), src.Val...)
}

// DataReadMat is DataReadVec's matrix analogue.
func DataReadMat(src *format.Coo) (rows, cols []int, vals [][]byte) {
	return append([]int(nil), src.Row...), append([]int(nil), src.Col...), append([][]byte(nil), src.Val...)
}
