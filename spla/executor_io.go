package spla

import (
	"sync"

	"github.com/sparselinalg/spla/algo"
	"github.com/sparselinalg/spla/block"
	"github.com/sparselinalg/spla/expr"
	"github.com/sparselinalg/spla/format"
	"github.com/sparselinalg/spla/schedule"
)

// vecHostData carries a data_write's global (index, value) pairs for a
// vector destination; matHostData is its matrix analogue.
type vecHostData struct {
	Idx []int
	Val [][]byte
}

type matHostData struct {
	Row, Col []int
	Val      [][]byte
}

// vecReadResult/matReadResult accumulate a data_read's output across
// every tile subtask; Execute runs concurrently across tiles, so both
// guard their slices with a mutex.
type vecReadResult struct {
	mu  sync.Mutex
	Idx []int
	Val [][]byte
}

func (r *vecReadResult) append(idx []int, val [][]byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Idx = append(r.Idx, idx...)
	r.Val = append(r.Val, val...)
}

type matReadResult struct {
	mu       sync.Mutex
	Row, Col []int
	Val      [][]byte
}

func (r *matReadResult) append(rows, cols []int, val [][]byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Row = append(r.Row, rows...)
	r.Col = append(r.Col, cols...)
	r.Val = append(r.Val, val...)
}

func ensureVecDok(v *coreVector, row int) (*format.DokVec, error) {
	ts, mgr := v.tile(block.Index(row))
	if err := mgr.ValidateRWD(format.VecDok, ts); err != nil {
		return nil, err
	}
	slot, _ := ts.Get(format.VecDok)
	return slot.(*format.DokVec), nil
}

func ensureMatDok(m *coreMatrix, row, col int) (*format.Dok, error) {
	ts, mgr := m.tile(block.TileIndex{I: row, J: col})
	if err := mgr.ValidateRWD(format.MatDok, ts); err != nil {
		return nil, err
	}
	slot, _ := ts.Get(format.MatDok)
	return slot.(*format.Dok), nil
}

// execDataWrite writes one tile's slice of a data_write node's host
// payload. Args: X, host-data.
func (ex *executor) execDataWrite(n *expr.Node, sub schedule.Subtask) error {
	if v, ok := n.Args[0].(*coreVector); ok {
		data := n.Args[1].(vecHostData)
		lo, hi := v.tiling.Range(block.Index(sub.Row))
		dok, err := ensureVecDok(v, sub.Row)
		if err != nil {
			return err
		}
		var idx []int
		var val [][]byte
		for i, at := range data.Idx {
			if at >= lo && at < hi {
				idx = append(idx, at-lo)
				val = append(val, data.Val[i])
			}
		}
		algo.DataWriteVec(dok, idx, val)
		return nil
	}

	m := n.Args[0].(*coreMatrix)
	data := n.Args[1].(matHostData)
	rlo, rhi := m.tiling.RowRange(sub.Row)
	clo, chi := m.tiling.ColRange(sub.Col)
	dok, err := ensureMatDok(m, sub.Row, sub.Col)
	if err != nil {
		return err
	}
	var rows, cols []int
	var val [][]byte
	for i := range data.Row {
		r, c := data.Row[i], data.Col[i]
		if r >= rlo && r < rhi && c >= clo && c < chi {
			rows = append(rows, r-rlo)
			cols = append(cols, c-clo)
			val = append(val, data.Val[i])
		}
	}
	algo.DataWriteMat(dok, rows, cols, val)
	return nil
}

// execDataRead reads one tile's entries into a data_read node's output
// buffer, translating local indices back to global ones. Args: X,
// host-buffer.
func (ex *executor) execDataRead(n *expr.Node, sub schedule.Subtask) error {
	if v, ok := n.Args[0].(*coreVector); ok {
		dst := n.Args[1].(*vecReadResult)
		lo, _ := v.tiling.Range(block.Index(sub.Row))
		tile, err := vecTileCoo(v, sub.Row)
		if err != nil {
			return err
		}
		idx, val := algo.DataReadVec(tile)
		for i := range idx {
			idx[i] += lo
		}
		dst.append(idx, val)
		return nil
	}

	m := n.Args[0].(*coreMatrix)
	dst := n.Args[1].(*matReadResult)
	rlo, _ := m.tiling.RowRange(sub.Row)
	clo, _ := m.tiling.ColRange(sub.Col)
	tile, err := matTileCoo(m, sub.Row, sub.Col)
	if err != nil {
		return err
	}
	rows, cols, val := algo.DataReadMat(tile)
	for i := range rows {
		rows[i] += rlo
		cols[i] += clo
	}
	dst.append(rows, cols, val)
	return nil
}
