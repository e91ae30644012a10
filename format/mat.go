package format

// rc packs a (row, col) local tile coordinate as a map key.
type rc struct{ r, c int }

// Dok is an unordered (row,col)→value mapping (spec.md §3), the matrix
// tile used for incremental random-access writes.
type Dok struct {
	Rows, Cols int
	HasValues  bool
	Entries    map[rc][]byte
}

// NewDok constructs an empty Dok tile of the given local shape.
func NewDok(rows, cols int, hasValues bool) *Dok {
	return &Dok{Rows: rows, Cols: cols, HasValues: hasValues, Entries: make(map[rc][]byte)}
}

// Resize changes the tile's logical shape, dropping out-of-range entries.
func (m *Dok) Resize(rows, cols int) {
	m.Rows, m.Cols = rows, cols
	for k := range m.Entries {
		if k.r >= rows || k.c >= cols {
			delete(m.Entries, k)
		}
	}
}

// Clear empties the tile, keeping its shape.
func (m *Dok) Clear() { m.Entries = make(map[rc][]byte) }

// Set writes (or overwrites) the value at local (row, col).
func (m *Dok) Set(row, col int, val []byte) { m.Entries[rc{row, col}] = val }

// Values reports the populated-entry count.
func (m *Dok) Values() int { return len(m.Entries) }

// LilRow is one row's ordered (col, value) run, strictly increasing in
// col (spec.md §3).
type LilRow struct {
	Col []int
	Val [][]byte
}

// Lil is a per-row list-of-lists matrix tile.
type Lil struct {
	Rows, Cols int
	HasValues  bool
	Row        []LilRow
}

// NewLil constructs an empty Lil tile of the given local shape.
func NewLil(rows, cols int, hasValues bool) *Lil {
	return &Lil{Rows: rows, Cols: cols, HasValues: hasValues, Row: make([]LilRow, rows)}
}

// Resize changes the row/col count, truncating rows beyond the new count
// and dropping entries whose column falls outside the new width.
func (m *Lil) Resize(rows, cols int) {
	next := make([]LilRow, rows)
	n := rows
	if len(m.Row) < n {
		n = len(m.Row)
	}
	for i := 0; i < n; i++ {
		row := m.Row[i]
		var col []int
		var val [][]byte
		for j, c := range row.Col {
			if c < cols {
				col = append(col, c)
				val = append(val, row.Val[j])
			}
		}
		next[i] = LilRow{Col: col, Val: val}
	}
	m.Row, m.Rows, m.Cols = next, rows, cols
}

// Clear empties every row, keeping shape.
func (m *Lil) Clear() { m.Row = make([]LilRow, m.Rows) }

// Values sums the populated-entry count over all rows.
func (m *Lil) Values() int {
	n := 0
	for _, row := range m.Row {
		n += len(row.Col)
	}
	return n
}

// Coo is an ordered sequence of (row, col, value) triples, lexicographically
// sorted by (row, col), with no duplicate (row, col) (spec.md §3).
type Coo struct {
	Rows, Cols int
	HasValues  bool
	Row        []int
	Col        []int
	Val        [][]byte
}

// NewCoo constructs an empty Coo tile of the given local shape.
func NewCoo(rows, cols int, hasValues bool) *Coo {
	return &Coo{Rows: rows, Cols: cols, HasValues: hasValues}
}

// Resize changes the tile's logical shape.
func (m *Coo) Resize(rows, cols int) { m.Rows, m.Cols = rows, cols }

// Clear empties the tile, keeping shape.
func (m *Coo) Clear() { m.Row, m.Col, m.Val = nil, nil, nil }

// Values reports the populated-entry count.
func (m *Coo) Values() int { return len(m.Row) }

// Csr is the compressed sparse row matrix tile: Ap has length rows+1 and
// is non-decreasing; Aj[Ap[i]:Ap[i+1]) is strictly increasing per row; Ax
// is parallel to Aj whenever the element type has values (spec.md §3).
type Csr struct {
	Rows, Cols int
	HasValues  bool
	Ap         []int
	Aj         []int
	Ax         [][]byte
}

// NewCsr constructs an empty Csr tile of the given local shape (Ap is all
// zero, meaning every row is empty).
func NewCsr(rows, cols int, hasValues bool) *Csr {
	return &Csr{Rows: rows, Cols: cols, HasValues: hasValues, Ap: make([]int, rows+1)}
}

// Resize changes the tile's logical shape, resetting to the empty state:
// a Csr resize cannot preserve existing entries in general (row count
// changed invalidates Ap's length), so callers needing to preserve data
// across a resize must go through a conversion instead.
func (m *Csr) Resize(rows, cols int) {
	m.Rows, m.Cols = rows, cols
	m.Ap = make([]int, rows+1)
	m.Aj = nil
	m.Ax = nil
}

// Clear empties the tile, keeping shape.
func (m *Csr) Clear() {
	m.Ap = make([]int, m.Rows+1)
	m.Aj = nil
	m.Ax = nil
}

// Values reports the populated-entry count.
func (m *Csr) Values() int { return len(m.Aj) }

// RowRange returns the half-open [start, end) slice bounds of row i into
// Aj/Ax, per the Ap monotone-prefix convention.
func (m *Csr) RowRange(i int) (int, int) { return m.Ap[i], m.Ap[i+1] }
