package storage

import (
	"github.com/sparselinalg/spla/accel"
	"github.com/sparselinalg/spla/format"
)

// NewMatManager builds the registration-time conversion graph for matrix
// tiles of the given logical shape, element "has values" flag and byte
// width (elemSize, used only for the device legs). backend is the
// accelerator collaborator for the AccelCoo/AccelCsr host↔device legs;
// pass nil to fall back to accel.NewReference().
func NewMatManager(rows, cols int, hasValues bool, elemSize int, backend accel.Backend) *Manager[format.MatCode] {
	if backend == nil {
		backend = accel.NewReference()
	}
	m := NewManager[format.MatCode](int(format.MatCount),
		func(c format.MatCode) int { return int(c) },
		func(i int) format.MatCode { return format.MatCode(i) },
	)

	m.RegisterValidatorDiscard(format.MatDok, func(ts *TileStorage[format.MatCode]) {
		ts.set(format.MatDok, format.NewDok(rows, cols, hasValues))
	})
	m.RegisterConstructor(format.MatDok, func(ts *TileStorage[format.MatCode]) {
		ts.set(format.MatDok, format.NewDok(rows, cols, hasValues))
	})

	m.RegisterValidatorDiscard(format.MatLil, func(ts *TileStorage[format.MatCode]) {
		ts.set(format.MatLil, format.NewLil(rows, cols, hasValues))
	})
	m.RegisterConstructor(format.MatLil, func(ts *TileStorage[format.MatCode]) {
		ts.set(format.MatLil, format.NewLil(rows, cols, hasValues))
	})

	m.RegisterValidatorDiscard(format.MatCoo, func(ts *TileStorage[format.MatCode]) {
		ts.set(format.MatCoo, format.NewCoo(rows, cols, hasValues))
	})
	m.RegisterConstructor(format.MatCoo, func(ts *TileStorage[format.MatCode]) {
		ts.set(format.MatCoo, format.NewCoo(rows, cols, hasValues))
	})

	m.RegisterValidatorDiscard(format.MatCsr, func(ts *TileStorage[format.MatCode]) {
		ts.set(format.MatCsr, format.NewCsr(rows, cols, hasValues))
	})
	m.RegisterConstructor(format.MatCsr, func(ts *TileStorage[format.MatCode]) {
		ts.set(format.MatCsr, format.NewCsr(rows, cols, hasValues))
	})

	m.RegisterConverter(format.MatDok, format.MatCoo, func(ts *TileStorage[format.MatCode]) {
		ts.set(format.MatCoo, format.DokToCoo(ts.get(format.MatDok).(*format.Dok)))
	})
	m.RegisterConverter(format.MatCoo, format.MatDok, func(ts *TileStorage[format.MatCode]) {
		ts.set(format.MatDok, format.CooToDok(ts.get(format.MatCoo).(*format.Coo)))
	})
	m.RegisterConverter(format.MatCoo, format.MatLil, func(ts *TileStorage[format.MatCode]) {
		ts.set(format.MatLil, format.CooToLil(ts.get(format.MatCoo).(*format.Coo)))
	})
	m.RegisterConverter(format.MatLil, format.MatCoo, func(ts *TileStorage[format.MatCode]) {
		ts.set(format.MatCoo, format.LilToCoo(ts.get(format.MatLil).(*format.Lil)))
	})
	m.RegisterConverter(format.MatCoo, format.MatCsr, func(ts *TileStorage[format.MatCode]) {
		ts.set(format.MatCsr, format.CooToCsr(ts.get(format.MatCoo).(*format.Coo)))
	})
	m.RegisterConverter(format.MatCsr, format.MatCoo, func(ts *TileStorage[format.MatCode]) {
		ts.set(format.MatCoo, format.CsrToCoo(ts.get(format.MatCsr).(*format.Csr)))
	})

	queue, _ := backend.CommandQueue(0)

	m.RegisterConstructor(format.MatAccelCoo, func(ts *TileStorage[format.MatCode]) {
		ts.set(format.MatAccelCoo, &format.AccelCoo{Rows: rows, Cols: cols, HasValues: hasValues, ElemSize: elemSize})
	})
	m.RegisterConverter(format.MatCoo, format.MatAccelCoo, func(ts *TileStorage[format.MatCode]) {
		src := ts.get(format.MatCoo).(*format.Coo)
		dev, err := format.HostToDeviceCoo(backend, queue, src, elemSize)
		if err == nil {
			ts.set(format.MatAccelCoo, dev)
		}
	})
	m.RegisterConverter(format.MatAccelCoo, format.MatCoo, func(ts *TileStorage[format.MatCode]) {
		src := ts.get(format.MatAccelCoo).(*format.AccelCoo)
		host, err := format.DeviceToHostCoo(backend, queue, src)
		if err == nil {
			ts.set(format.MatCoo, host)
		}
	})

	m.RegisterConstructor(format.MatAccelCsr, func(ts *TileStorage[format.MatCode]) {
		ts.set(format.MatAccelCsr, &format.AccelCsr{Rows: rows, Cols: cols, HasValues: hasValues, ElemSize: elemSize})
	})
	m.RegisterConverter(format.MatCsr, format.MatAccelCsr, func(ts *TileStorage[format.MatCode]) {
		src := ts.get(format.MatCsr).(*format.Csr)
		dev, err := format.HostToDeviceCsr(backend, queue, src, elemSize)
		if err == nil {
			ts.set(format.MatAccelCsr, dev)
		}
	})
	m.RegisterConverter(format.MatAccelCsr, format.MatCsr, func(ts *TileStorage[format.MatCode]) {
		src := ts.get(format.MatAccelCsr).(*format.AccelCsr)
		host, err := format.DeviceToHostCsr(backend, queue, src)
		if err == nil {
			ts.set(format.MatCsr, host)
		}
	})

	return m
}
