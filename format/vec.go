package format

// DokVec is an unordered index→value mapping, the "dictionary of keys"
// vector tile used for incremental random-access writes (spec.md §3).
type DokVec struct {
	Size      int
	HasValues bool
	Entries   map[int][]byte
}

// NewDokVec constructs an empty DokVec of the given local size.
func NewDokVec(size int, hasValues bool) *DokVec {
	return &DokVec{Size: size, HasValues: hasValues, Entries: make(map[int][]byte)}
}

// Resize changes the tile's logical size, dropping any entries that fall
// outside the new range.
func (v *DokVec) Resize(size int) {
	v.Size = size
	for i := range v.Entries {
		if i >= size {
			delete(v.Entries, i)
		}
	}
}

// Clear empties the tile without changing its size (the "discarder").
func (v *DokVec) Clear() { v.Entries = make(map[int][]byte) }

// Set writes (or overwrites) the value at local index i.
func (v *DokVec) Set(i int, val []byte) { v.Entries[i] = val }

// Values returns the count of populated entries.
func (v *DokVec) Values() int { return len(v.Entries) }

// CooVec is an ordered sequence of (index, value) pairs, sorted by index,
// with no duplicate index (spec.md §3).
type CooVec struct {
	Size      int
	HasValues bool
	Idx       []int
	Val       [][]byte
}

// NewCooVec constructs an empty CooVec of the given local size.
func NewCooVec(size int, hasValues bool) *CooVec {
	return &CooVec{Size: size, HasValues: hasValues}
}

// Resize changes the tile's logical size; callers must not call Resize
// with a size smaller than the current max index without first Clear-ing,
// mirroring the "resize or clear, never both implicitly" discipline the
// storage manager relies on.
func (v *CooVec) Resize(size int) { v.Size = size }

// Clear empties the tile, keeping its size.
func (v *CooVec) Clear() { v.Idx = nil; v.Val = nil }

// Values reports the populated-entry count.
func (v *CooVec) Values() int { return len(v.Idx) }

// DenseVec is a fixed-length array plus a fill-value convention: entries
// equal to Fill are considered logically absent (spec.md §3).
type DenseVec struct {
	Size      int
	HasValues bool
	Fill      []byte
	Ax        [][]byte
}

// NewDenseVec constructs a DenseVec of the given size, every slot
// initialized to fill.
func NewDenseVec(size int, hasValues bool, fill []byte) *DenseVec {
	d := &DenseVec{Size: size, HasValues: hasValues, Fill: fill}
	d.Ax = make([][]byte, size)
	for i := range d.Ax {
		d.Ax[i] = fill
	}
	return d
}

// Resize grows or shrinks the backing array, filling new slots with Fill.
func (v *DenseVec) Resize(size int) {
	next := make([][]byte, size)
	copy(next, v.Ax)
	for i := len(v.Ax); i < size; i++ {
		next[i] = v.Fill
	}
	v.Ax = next
	v.Size = size
}

// Clear resets every slot back to Fill.
func (v *DenseVec) Clear() {
	for i := range v.Ax {
		v.Ax[i] = v.Fill
	}
}

// Values counts entries whose payload differs from Fill. bytesEqual is
// used rather than reflect.DeepEqual to keep this on the hot path cheap.
func (v *DenseVec) Values() int {
	n := 0
	for _, b := range v.Ax {
		if !bytesEqual(b, v.Fill) {
			n++
		}
	}
	return n
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
