// Package block implements block decomposition (C5): splitting a
// row-dimension (and, for matrices, also a column-dimension) into
// fixed-size tiles, and tracking the non-empty tiles in a sparse
// index→block map.
//
// A constant block size B is configured at library init (spec.md §4.5);
// this package does not choose B itself, it only does the arithmetic
// once B is known. Ordering inside a tile is defined by the owning
// format (package format); block only ever reasons about tile
// boundaries and membership.
package block

import "fmt"

// DefaultBlockSize is used when the library configuration does not
// override it — large enough to behave like "one big tile" on a CPU-only
// configuration, mirroring the "CPU-only picks a large B" guidance in
// spec.md §4.5. A real accelerator-backed configuration overrides this
// with the device's preferred tile size.
const DefaultBlockSize = 1 << 20 // ~1Mi indices, matching the spec's CPU-only guidance

// Index addresses one row-block (vector tiling).
type Index int

// TileIndex addresses one (row-block, col-block) tile (matrix tiling).
type TileIndex struct{ I, J int }

// VecTiling describes how a Vector's N rows are split into blocks of
// size B: block i covers [i*B, min((i+1)*B, N)).
type VecTiling struct {
	N, B   int
	Blocks int
}

// NewVecTiling validates N >= 0 and B > 0 and computes ⌈N/B⌉ blocks.
func NewVecTiling(n, b int) (VecTiling, error) {
	if b <= 0 {
		return VecTiling{}, fmt.Errorf("block: vector tiling: %w", ErrBadBlockSize)
	}
	if n < 0 {
		return VecTiling{}, fmt.Errorf("block: vector tiling: %w", ErrBadDimension)
	}
	return VecTiling{N: n, B: b, Blocks: ceilDiv(n, b)}, nil
}

// Range returns the half-open logical row range covered by block i.
func (t VecTiling) Range(i Index) (lo, hi int) {
	lo = int(i) * t.B
	hi = lo + t.B
	if hi > t.N {
		hi = t.N
	}
	return lo, hi
}

// LocalSize returns hi-lo for block i — the block's local index range is
// always [0, LocalSize(i)), per spec.md §3's block invariant.
func (t VecTiling) LocalSize(i Index) int {
	lo, hi := t.Range(i)
	return hi - lo
}

// MatTiling describes how an M×N Matrix is split into ⌈M/B⌉×⌈N/B⌉ tiles.
type MatTiling struct {
	M, N, B    int
	RowBlocks  int
	ColBlocks  int
}

// NewMatTiling validates M,N >= 0 and B > 0.
func NewMatTiling(m, n, b int) (MatTiling, error) {
	if b <= 0 {
		return MatTiling{}, fmt.Errorf("block: matrix tiling: %w", ErrBadBlockSize)
	}
	if m < 0 || n < 0 {
		return MatTiling{}, fmt.Errorf("block: matrix tiling: %w", ErrBadDimension)
	}
	return MatTiling{M: m, N: n, B: b, RowBlocks: ceilDiv(m, b), ColBlocks: ceilDiv(n, b)}, nil
}

// RowRange returns the logical row range [iB, (i+1)B) clamped to M of
// tile-row i.
func (t MatTiling) RowRange(i int) (lo, hi int) {
	lo = i * t.B
	hi = lo + t.B
	if hi > t.M {
		hi = t.M
	}
	return lo, hi
}

// ColRange returns the logical col range [jB, (j+1)B) clamped to N of
// tile-col j.
func (t MatTiling) ColRange(j int) (lo, hi int) {
	lo = j * t.B
	hi = lo + t.B
	if hi > t.N {
		hi = t.N
	}
	return lo, hi
}

// LocalShape returns the local (rows, cols) of tile (i,j).
func (t MatTiling) LocalShape(idx TileIndex) (rows, cols int) {
	rlo, rhi := t.RowRange(idx.I)
	clo, chi := t.ColRange(idx.J)
	return rhi - rlo, chi - clo
}

func ceilDiv(n, b int) int {
	if n == 0 {
		return 0
	}
	return (n + b - 1) / b
}
