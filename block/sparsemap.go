package block

import "sort"

// VecMap is the sparse index→block map for a Vector's row-blocks: a
// block is absent iff all its logical entries are absent (spec.md §3).
type VecMap[T any] struct {
	m map[Index]T
}

// NewVecMap returns an empty VecMap.
func NewVecMap[T any]() *VecMap[T] { return &VecMap[T]{m: make(map[Index]T)} }

// Get returns the block at i and whether it is present.
func (vm *VecMap[T]) Get(i Index) (T, bool) {
	v, ok := vm.m[i]
	return v, ok
}

// Set installs (or replaces) the block at i.
func (vm *VecMap[T]) Set(i Index, v T) { vm.m[i] = v }

// Delete removes the block at i, if present.
func (vm *VecMap[T]) Delete(i Index) { delete(vm.m, i) }

// Len reports the number of non-empty blocks.
func (vm *VecMap[T]) Len() int { return len(vm.m) }

// SortedKeys returns the present block indices in increasing order —
// the iteration order the scheduler and algorithms rely on for
// determinism (spec.md §4.10 "Rows/tiles processed in index-increasing
// order").
func (vm *VecMap[T]) SortedKeys() []Index {
	keys := make([]Index, 0, len(vm.m))
	for k := range vm.m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(a, b int) bool { return keys[a] < keys[b] })
	return keys
}

// MatMap is the sparse tile-index→tile map for a Matrix.
type MatMap[T any] struct {
	m map[TileIndex]T
}

// NewMatMap returns an empty MatMap.
func NewMatMap[T any]() *MatMap[T] { return &MatMap[T]{m: make(map[TileIndex]T)} }

// Get returns the tile at idx and whether it is present.
func (mm *MatMap[T]) Get(idx TileIndex) (T, bool) {
	v, ok := mm.m[idx]
	return v, ok
}

// Set installs (or replaces) the tile at idx.
func (mm *MatMap[T]) Set(idx TileIndex, v T) { mm.m[idx] = v }

// Delete removes the tile at idx, if present.
func (mm *MatMap[T]) Delete(idx TileIndex) { delete(mm.m, idx) }

// Len reports the number of non-empty tiles.
func (mm *MatMap[T]) Len() int { return len(mm.m) }

// SortedKeys returns the present tile indices in row-major increasing
// order (row first, then column) — the deterministic tile-composition
// order spec.md §5 requires for multiplication merges.
func (mm *MatMap[T]) SortedKeys() []TileIndex {
	keys := make([]TileIndex, 0, len(mm.m))
	for k := range mm.m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(a, b int) bool {
		if keys[a].I != keys[b].I {
			return keys[a].I < keys[b].I
		}
		return keys[a].J < keys[b].J
	})
	return keys
}
