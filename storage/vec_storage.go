package storage

import (
	"github.com/sparselinalg/spla/accel"
	"github.com/sparselinalg/spla/format"
)

// NewVecManager builds the registration-time conversion graph for vector
// tiles of the given logical size, element "has values" flag and dense
// fill value. Package spla's vector core keeps one Manager per distinct
// local tile size and shares it among the tiles of that size;
// TileStorage instances are per-tile (spec.md §4.2, §4.4).
//
// backend is the accelerator collaborator used for the host↔device
// legs of the graph (VecDense↔VecAccelDense); pass nil to fall back to
// accel.NewReference(). There is no device-owned CooVec twin: no
// SPEC_FULL.md component constructs a sparse vector directly on-device,
// so VecAccelCoo carries no registered constructor or edges and
// ValidateRW against it always fails (ErrNoConversionPath, or
// ErrNoConstructor when the tile has no valid format at all).
func NewVecManager(size int, hasValues bool, fill []byte, backend accel.Backend) *Manager[format.VecCode] {
	if backend == nil {
		backend = accel.NewReference()
	}
	m := NewManager[format.VecCode](int(format.VecCount),
		func(c format.VecCode) int { return int(c) },
		func(i int) format.VecCode { return format.VecCode(i) },
	)

	m.RegisterValidatorDiscard(format.VecDok, func(ts *TileStorage[format.VecCode]) {
		ts.set(format.VecDok, format.NewDokVec(size, hasValues))
	})
	m.RegisterConstructor(format.VecDok, func(ts *TileStorage[format.VecCode]) {
		ts.set(format.VecDok, format.NewDokVec(size, hasValues))
	})

	m.RegisterValidatorDiscard(format.VecCoo, func(ts *TileStorage[format.VecCode]) {
		ts.set(format.VecCoo, format.NewCooVec(size, hasValues))
	})
	m.RegisterConstructor(format.VecCoo, func(ts *TileStorage[format.VecCode]) {
		ts.set(format.VecCoo, format.NewCooVec(size, hasValues))
	})

	m.RegisterValidatorDiscard(format.VecDense, func(ts *TileStorage[format.VecCode]) {
		ts.set(format.VecDense, format.NewDenseVec(size, hasValues, fill))
	})
	m.RegisterConstructor(format.VecDense, func(ts *TileStorage[format.VecCode]) {
		ts.set(format.VecDense, format.NewDenseVec(size, hasValues, fill))
	})

	m.RegisterConverter(format.VecDok, format.VecCoo, func(ts *TileStorage[format.VecCode]) {
		src := ts.get(format.VecDok).(*format.DokVec)
		ts.set(format.VecCoo, format.DokVecToCooVec(src))
	})
	m.RegisterConverter(format.VecCoo, format.VecDok, func(ts *TileStorage[format.VecCode]) {
		src := ts.get(format.VecCoo).(*format.CooVec)
		ts.set(format.VecDok, format.CooVecToDokVec(src))
	})
	m.RegisterConverter(format.VecCoo, format.VecDense, func(ts *TileStorage[format.VecCode]) {
		src := ts.get(format.VecCoo).(*format.CooVec)
		ts.set(format.VecDense, format.CooVecToDenseVec(src, fill))
	})
	m.RegisterConverter(format.VecDense, format.VecCoo, func(ts *TileStorage[format.VecCode]) {
		src := ts.get(format.VecDense).(*format.DenseVec)
		ts.set(format.VecCoo, format.DenseVecToCooVec(src))
	})

	elemSize := 0
	if hasValues {
		elemSize = len(fill)
	}
	queue, _ := backend.CommandQueue(0)

	m.RegisterConstructor(format.VecAccelDense, func(ts *TileStorage[format.VecCode]) {
		ts.set(format.VecAccelDense, &format.AccelDenseVec{Size: size, HasValues: hasValues, ElemSize: elemSize, Fill: fill})
	})
	m.RegisterConverter(format.VecDense, format.VecAccelDense, func(ts *TileStorage[format.VecCode]) {
		src := ts.get(format.VecDense).(*format.DenseVec)
		dev, err := format.HostToDeviceDenseVec(backend, queue, src, elemSize)
		if err == nil {
			ts.set(format.VecAccelDense, dev)
		}
	})
	m.RegisterConverter(format.VecAccelDense, format.VecDense, func(ts *TileStorage[format.VecCode]) {
		src := ts.get(format.VecAccelDense).(*format.AccelDenseVec)
		host, err := format.DeviceToHostDenseVec(backend, queue, src)
		if err == nil {
			ts.set(format.VecDense, host)
		}
	})

	return m
}
