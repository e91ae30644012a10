package block_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sparselinalg/spla/block"
)

func TestVecTilingRanges(t *testing.T) {
	tl, err := block.NewVecTiling(10, 4)
	require.NoError(t, err)
	require.Equal(t, 3, tl.Blocks)

	lo, hi := tl.Range(0)
	require.Equal(t, 0, lo)
	require.Equal(t, 4, hi)

	lo, hi = tl.Range(2)
	require.Equal(t, 8, lo)
	require.Equal(t, 10, hi)
	require.Equal(t, 2, tl.LocalSize(2))
}

func TestMatTilingShapes(t *testing.T) {
	tl, err := block.NewMatTiling(10, 6, 4)
	require.NoError(t, err)
	require.Equal(t, 3, tl.RowBlocks)
	require.Equal(t, 2, tl.ColBlocks)

	rows, cols := tl.LocalShape(block.TileIndex{I: 2, J: 1})
	require.Equal(t, 2, rows) // rows 8,9
	require.Equal(t, 2, cols) // cols 4,5
}

func TestMatTilingRejectsBadBlockSize(t *testing.T) {
	_, err := block.NewMatTiling(10, 6, 0)
	require.ErrorIs(t, err, block.ErrBadBlockSize)
}

func TestMatMapSortedKeysRowMajor(t *testing.T) {
	mm := block.NewMatMap[int]()
	mm.Set(block.TileIndex{I: 1, J: 0}, 1)
	mm.Set(block.TileIndex{I: 0, J: 1}, 2)
	mm.Set(block.TileIndex{I: 0, J: 0}, 3)

	keys := mm.SortedKeys()
	require.Equal(t, []block.TileIndex{{I: 0, J: 0}, {I: 0, J: 1}, {I: 1, J: 0}}, keys)
}
