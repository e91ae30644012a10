package format

import (
	"encoding/binary"

	"github.com/sparselinalg/spla/accel"
)

// encodeInts packs a []int as little-endian int64 words, the layout the
// reference and real accelerator backends both expect for index buffers.
func encodeInts(xs []int) []byte {
	buf := make([]byte, 8*len(xs))
	for i, x := range xs {
		binary.LittleEndian.PutUint64(buf[i*8:], uint64(int64(x)))
	}
	return buf
}

func decodeInts(buf []byte) []int {
	n := len(buf) / 8
	out := make([]int, n)
	for i := 0; i < n; i++ {
		out[i] = int(int64(binary.LittleEndian.Uint64(buf[i*8:])))
	}
	return out
}

func encodeVals(vals [][]byte, elemSize int) []byte {
	if elemSize == 0 {
		return nil
	}
	buf := make([]byte, elemSize*len(vals))
	for i, v := range vals {
		copy(buf[i*elemSize:], v)
	}
	return buf
}

func decodeVals(buf []byte, elemSize int) [][]byte {
	if elemSize == 0 {
		return nil
	}
	n := len(buf) / elemSize
	out := make([][]byte, n)
	for i := 0; i < n; i++ {
		v := make([]byte, elemSize)
		copy(v, buf[i*elemSize:(i+1)*elemSize])
		out[i] = v
	}
	return out
}

// AccelCoo is the device-owned twin of Coo: row/col/value live in
// accelerator buffers rather than host slices. "Validating" it from a
// host Coo (HostToDevice) or back (DeviceToHost) is the accelerator
// analogue of the CPU format converters in convert_mat.go.
type AccelCoo struct {
	Rows, Cols int
	HasValues  bool
	ElemSize   int
	NNZ        int
	RowBuf     accel.Buffer
	ColBuf     accel.Buffer
	ValBuf     accel.Buffer
}

// HostToDeviceCoo uploads a host Coo tile to device buffers on backend b.
func HostToDeviceCoo(b accel.Backend, q accel.Queue, src *Coo, elemSize int) (*AccelCoo, error) {
	rowBytes, colBytes := encodeInts(src.Row), encodeInts(src.Col)
	rowBuf, err := b.NewBuffer(len(rowBytes))
	if err != nil {
		return nil, err
	}
	colBuf, err := b.NewBuffer(len(colBytes))
	if err != nil {
		return nil, err
	}
	if err := b.EnqueueWrite(q, rowBuf, rowBytes); err != nil {
		return nil, err
	}
	if err := b.EnqueueWrite(q, colBuf, colBytes); err != nil {
		return nil, err
	}
	dst := &AccelCoo{Rows: src.Rows, Cols: src.Cols, HasValues: src.HasValues,
		ElemSize: elemSize, NNZ: len(src.Row), RowBuf: rowBuf, ColBuf: colBuf}
	if src.HasValues {
		valBytes := encodeVals(src.Val, elemSize)
		valBuf, err := b.NewBuffer(len(valBytes))
		if err != nil {
			return nil, err
		}
		if err := b.EnqueueWrite(q, valBuf, valBytes); err != nil {
			return nil, err
		}
		dst.ValBuf = valBuf
	}
	return dst, nil
}

// DeviceToHostCoo downloads an AccelCoo back into a host Coo tile.
func DeviceToHostCoo(b accel.Backend, q accel.Queue, src *AccelCoo) (*Coo, error) {
	rowBytes := make([]byte, src.NNZ*8)
	colBytes := make([]byte, src.NNZ*8)
	if err := b.EnqueueRead(q, rowBytes, src.RowBuf); err != nil {
		return nil, err
	}
	if err := b.EnqueueRead(q, colBytes, src.ColBuf); err != nil {
		return nil, err
	}
	dst := NewCoo(src.Rows, src.Cols, src.HasValues)
	dst.Row = decodeInts(rowBytes)
	dst.Col = decodeInts(colBytes)
	if src.HasValues {
		valBytes := make([]byte, src.NNZ*src.ElemSize)
		if err := b.EnqueueRead(q, valBytes, src.ValBuf); err != nil {
			return nil, err
		}
		dst.Val = decodeVals(valBytes, src.ElemSize)
	}
	return dst, nil
}

// AccelCsr is the device-owned twin of Csr.
type AccelCsr struct {
	Rows, Cols int
	HasValues  bool
	ElemSize   int
	NNZ        int
	ApBuf      accel.Buffer
	AjBuf      accel.Buffer
	AxBuf      accel.Buffer
}

// HostToDeviceCsr uploads a host Csr tile to device buffers on backend b.
func HostToDeviceCsr(b accel.Backend, q accel.Queue, src *Csr, elemSize int) (*AccelCsr, error) {
	apBytes, ajBytes := encodeInts(src.Ap), encodeInts(src.Aj)
	apBuf, err := b.NewBuffer(len(apBytes))
	if err != nil {
		return nil, err
	}
	ajBuf, err := b.NewBuffer(len(ajBytes))
	if err != nil {
		return nil, err
	}
	if err := b.EnqueueWrite(q, apBuf, apBytes); err != nil {
		return nil, err
	}
	if err := b.EnqueueWrite(q, ajBuf, ajBytes); err != nil {
		return nil, err
	}
	dst := &AccelCsr{Rows: src.Rows, Cols: src.Cols, HasValues: src.HasValues,
		ElemSize: elemSize, NNZ: len(src.Aj), ApBuf: apBuf, AjBuf: ajBuf}
	if src.HasValues {
		axBytes := encodeVals(src.Ax, elemSize)
		axBuf, err := b.NewBuffer(len(axBytes))
		if err != nil {
			return nil, err
		}
		if err := b.EnqueueWrite(q, axBuf, axBytes); err != nil {
			return nil, err
		}
		dst.AxBuf = axBuf
	}
	return dst, nil
}

// DeviceToHostCsr downloads an AccelCsr back into a host Csr tile.
func DeviceToHostCsr(b accel.Backend, q accel.Queue, src *AccelCsr) (*Csr, error) {
	apBytes := make([]byte, (src.Rows+1)*8)
	ajBytes := make([]byte, src.NNZ*8)
	if err := b.EnqueueRead(q, apBytes, src.ApBuf); err != nil {
		return nil, err
	}
	if err := b.EnqueueRead(q, ajBytes, src.AjBuf); err != nil {
		return nil, err
	}
	dst := NewCsr(src.Rows, src.Cols, src.HasValues)
	dst.Ap = decodeInts(apBytes)
	dst.Aj = decodeInts(ajBytes)
	if src.HasValues {
		axBytes := make([]byte, src.NNZ*src.ElemSize)
		if err := b.EnqueueRead(q, axBytes, src.AxBuf); err != nil {
			return nil, err
		}
		dst.Ax = decodeVals(axBytes, src.ElemSize)
	}
	return dst, nil
}

// AccelDenseVec is the device-owned twin of DenseVec.
type AccelDenseVec struct {
	Size      int
	HasValues bool
	ElemSize  int
	Fill      []byte
	AxBuf     accel.Buffer
}

// HostToDeviceDenseVec uploads a host DenseVec tile to a device buffer.
func HostToDeviceDenseVec(b accel.Backend, q accel.Queue, src *DenseVec, elemSize int) (*AccelDenseVec, error) {
	axBytes := encodeVals(src.Ax, elemSize)
	axBuf, err := b.NewBuffer(len(axBytes))
	if err != nil {
		return nil, err
	}
	if err := b.EnqueueWrite(q, axBuf, axBytes); err != nil {
		return nil, err
	}
	return &AccelDenseVec{Size: src.Size, HasValues: src.HasValues, ElemSize: elemSize, Fill: src.Fill, AxBuf: axBuf}, nil
}

// DeviceToHostDenseVec downloads an AccelDenseVec back into a host DenseVec tile.
func DeviceToHostDenseVec(b accel.Backend, q accel.Queue, src *AccelDenseVec) (*DenseVec, error) {
	axBytes := make([]byte, src.Size*src.ElemSize)
	if err := b.EnqueueRead(q, axBytes, src.AxBuf); err != nil {
		return nil, err
	}
	dst := NewDenseVec(src.Size, src.HasValues, src.Fill)
	dst.Ax = decodeVals(axBytes, src.ElemSize)
	return dst, nil
}
