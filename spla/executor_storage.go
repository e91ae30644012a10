package spla

import (
	"github.com/sparselinalg/spla/format"
	"github.com/sparselinalg/spla/storage"
)

// ensureVecCoo validates ts to the ordered-coordinate layout and returns
// the live CooVec, constructing/converting through mgr as needed.
func ensureVecCoo(ts *storage.TileStorage[format.VecCode], mgr *storage.Manager[format.VecCode]) (*format.CooVec, error) {
	if err := mgr.ValidateRW(format.VecCoo, ts); err != nil {
		return nil, err
	}
	v, _ := ts.Get(format.VecCoo)
	return v.(*format.CooVec), nil
}

// writeVecCoo discards ts's prior contents (invalidating every other
// format) and installs result as the new VecCoo payload.
func writeVecCoo(ts *storage.TileStorage[format.VecCode], mgr *storage.Manager[format.VecCode], result *format.CooVec) error {
	if err := mgr.ValidateWD(format.VecCoo, ts); err != nil {
		return err
	}
	slot, _ := ts.Get(format.VecCoo)
	dst := slot.(*format.CooVec)
	dst.Size, dst.HasValues = result.Size, result.HasValues
	dst.Idx, dst.Val = result.Idx, result.Val
	return nil
}

func ensureMatCoo(ts *storage.TileStorage[format.MatCode], mgr *storage.Manager[format.MatCode]) (*format.Coo, error) {
	if err := mgr.ValidateRW(format.MatCoo, ts); err != nil {
		return nil, err
	}
	v, _ := ts.Get(format.MatCoo)
	return v.(*format.Coo), nil
}

// ensureMatCsr validates to Csr directly when the algorithm benefits from
// a fast row-indexed layout (mxm, vxm, mxv).
func ensureMatCsr(ts *storage.TileStorage[format.MatCode], mgr *storage.Manager[format.MatCode]) (*format.Csr, error) {
	if err := mgr.ValidateRW(format.MatCsr, ts); err != nil {
		return nil, err
	}
	v, _ := ts.Get(format.MatCsr)
	return v.(*format.Csr), nil
}

func writeMatCoo(ts *storage.TileStorage[format.MatCode], mgr *storage.Manager[format.MatCode], result *format.Coo) error {
	if err := mgr.ValidateWD(format.MatCoo, ts); err != nil {
		return err
	}
	slot, _ := ts.Get(format.MatCoo)
	dst := slot.(*format.Coo)
	dst.Rows, dst.Cols, dst.HasValues = result.Rows, result.Cols, result.HasValues
	dst.Row, dst.Col, dst.Val = result.Row, result.Col, result.Val
	return nil
}
