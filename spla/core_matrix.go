package spla

import (
	"sync"

	"github.com/sparselinalg/spla/accel"
	"github.com/sparselinalg/spla/block"
	"github.com/sparselinalg/spla/format"
	"github.com/sparselinalg/spla/objref"
	"github.com/sparselinalg/spla/storage"
)

type matManagerKey struct{ rows, cols int }

// coreMatrix is coreVector's matrix analogue: one TileStorage/Manager pair
// per non-empty (row-block, col-block) tile.
type coreMatrix struct {
	objref.Base

	rows, cols int
	hasValues  bool
	elemSize   int
	backend    accel.Backend

	tiling block.MatTiling

	mu       sync.Mutex
	tiles    *block.MatMap[*storage.TileStorage[format.MatCode]]
	managers map[matManagerKey]*storage.Manager[format.MatCode]
}

func newCoreMatrix(rows, cols, blockSize int, hasValues bool, elemSize int, backend accel.Backend) (*coreMatrix, error) {
	if blockSize <= 0 {
		blockSize = block.DefaultBlockSize
	}
	tiling, err := block.NewMatTiling(rows, cols, blockSize)
	if err != nil {
		return nil, err
	}
	m := &coreMatrix{
		rows: rows, cols: cols, hasValues: hasValues, elemSize: elemSize, backend: backend,
		tiling:   tiling,
		tiles:    block.NewMatMap[*storage.TileStorage[format.MatCode]](),
		managers: make(map[matManagerKey]*storage.Manager[format.MatCode]),
	}
	m.Base = objref.New(nil)
	return m, nil
}

func (m *coreMatrix) tile(idx block.TileIndex) (*storage.TileStorage[format.MatCode], *storage.Manager[format.MatCode]) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ts, ok := m.tiles.Get(idx)
	if !ok {
		ts = storage.NewTileStorage[format.MatCode]()
		m.tiles.Set(idx, ts)
	}
	r, c := m.tiling.LocalShape(idx)
	key := matManagerKey{r, c}
	mgr, ok := m.managers[key]
	if !ok {
		mgr = storage.NewMatManager(r, c, m.hasValues, m.elemSize, m.backend)
		m.managers[key] = mgr
	}
	return ts, mgr
}

func (m *coreMatrix) rowBlocks() int { return m.tiling.RowBlocks }
func (m *coreMatrix) colBlocks() int { return m.tiling.ColBlocks }
func (m *coreMatrix) blockSize() int { return m.tiling.B }
