package spla

import (
	"sync"

	"github.com/sparselinalg/spla/accel"
	"github.com/sparselinalg/spla/block"
	"github.com/sparselinalg/spla/format"
	"github.com/sparselinalg/spla/objref"
	"github.com/sparselinalg/spla/storage"
)

// coreVector is the byte-erased, type-independent object behind every
// Vector[T]: one TileStorage (and one conversion Manager) per non-empty
// row-block. It carries no T anywhere, which is what lets the scheduler's
// Executor operate on it without ever importing a generic instantiation.
type coreVector struct {
	objref.Base

	size      int
	hasValues bool
	fill      []byte
	elemSize  int
	backend   accel.Backend

	tiling block.VecTiling

	mu       sync.Mutex
	tiles    *block.VecMap[*storage.TileStorage[format.VecCode]]
	managers map[int]*storage.Manager[format.VecCode] // keyed by local tile size
}

func newCoreVector(size, blockSize int, hasValues bool, fill []byte, elemSize int, backend accel.Backend) (*coreVector, error) {
	if blockSize <= 0 {
		blockSize = block.DefaultBlockSize
	}
	tiling, err := block.NewVecTiling(size, blockSize)
	if err != nil {
		return nil, err
	}
	v := &coreVector{
		size: size, hasValues: hasValues, fill: fill, elemSize: elemSize, backend: backend,
		tiling:   tiling,
		tiles:    block.NewVecMap[*storage.TileStorage[format.VecCode]](),
		managers: make(map[int]*storage.Manager[format.VecCode]),
	}
	v.Base = objref.New(nil)
	return v, nil
}

// tile returns the TileStorage and Manager for row-block i, constructing
// both lazily on first access (spec.md §4.4: a tile starts out with no
// format valid at all).
func (v *coreVector) tile(i block.Index) (*storage.TileStorage[format.VecCode], *storage.Manager[format.VecCode]) {
	v.mu.Lock()
	defer v.mu.Unlock()
	ts, ok := v.tiles.Get(i)
	if !ok {
		ts = storage.NewTileStorage[format.VecCode]()
		v.tiles.Set(i, ts)
	}
	localSize := v.tiling.LocalSize(i)
	mgr, ok := v.managers[localSize]
	if !ok {
		mgr = storage.NewVecManager(localSize, v.hasValues, v.fill, v.backend)
		v.managers[localSize] = mgr
	}
	return ts, mgr
}

func (v *coreVector) blockCount() int { return v.tiling.Blocks }

func (v *coreVector) blockSize() int { return v.tiling.B }
