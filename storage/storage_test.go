package storage_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sparselinalg/spla/format"
	"github.com/sparselinalg/spla/storage"
)

func int64Bytes(v int64) []byte {
	return []byte{byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24), byte(v >> 32), byte(v >> 40), byte(v >> 48), byte(v >> 56)}
}

func TestVecManagerConstructsFirstRequestedFormat(t *testing.T) {
	m := storage.NewVecManager(8, true, int64Bytes(0), nil)
	ts := storage.NewTileStorage[format.VecCode]()

	require.NoError(t, m.ValidateRW(format.VecDok, ts))
	v, ok := ts.Get(format.VecDok)
	require.True(t, ok)
	require.Equal(t, 0, v.(*format.DokVec).Values())
}

func TestVecManagerConvertsThroughShortestPath(t *testing.T) {
	m := storage.NewVecManager(4, true, int64Bytes(0), nil)
	ts := storage.NewTileStorage[format.VecCode]()
	require.NoError(t, m.ValidateRWD(format.VecDok, ts))

	dok, _ := ts.Get(format.VecDok)
	dok.(*format.DokVec).Set(1, int64Bytes(7))
	dok.(*format.DokVec).Set(3, int64Bytes(9))

	require.NoError(t, m.ValidateRW(format.VecDense, ts))
	dv, ok := ts.Get(format.VecDense)
	require.True(t, ok)
	require.Equal(t, int64Bytes(7), dv.(*format.DenseVec).Ax[1])
	require.Equal(t, int64Bytes(9), dv.(*format.DenseVec).Ax[3])

	require.NoError(t, m.ValidateRW(format.VecCoo, ts))
	co, ok := ts.Get(format.VecCoo)
	require.True(t, ok)
	require.Equal(t, []int{1, 3}, co.(*format.CooVec).Idx)
}

func TestVecManagerValidateWDSkipsConversion(t *testing.T) {
	m := storage.NewVecManager(4, true, int64Bytes(0), nil)
	ts := storage.NewTileStorage[format.VecCode]()
	require.NoError(t, m.ValidateRWD(format.VecDok, ts))
	ts.Get(format.VecDok) // sanity: dok now valid

	require.NoError(t, m.ValidateWD(format.VecCoo, ts))
	co, ok := ts.Get(format.VecCoo)
	require.True(t, ok)
	require.Equal(t, 0, co.(*format.CooVec).Values())

	_, dokStillValid := ts.Get(format.VecDok)
	require.False(t, dokStillValid)
}

func TestVecManagerHostDeviceRoundTrip(t *testing.T) {
	m := storage.NewVecManager(4, true, int64Bytes(0), nil)
	ts := storage.NewTileStorage[format.VecCode]()
	require.NoError(t, m.ValidateRWD(format.VecDense, ts))
	dense, _ := ts.Get(format.VecDense)
	dense.(*format.DenseVec).Ax[2] = int64Bytes(42)

	require.NoError(t, m.ValidateRW(format.VecAccelDense, ts))
	require.NoError(t, m.ValidateRWD(format.VecAccelDense, ts))

	require.NoError(t, m.ValidateRW(format.VecDense, ts))
	back, ok := ts.Get(format.VecDense)
	require.True(t, ok)
	require.Equal(t, int64Bytes(42), back.(*format.DenseVec).Ax[2])
}

func TestVecManagerNoConversionPathToUnwiredFormat(t *testing.T) {
	m := storage.NewVecManager(4, true, int64Bytes(0), nil)
	ts := storage.NewTileStorage[format.VecCode]()
	require.NoError(t, m.ValidateRWD(format.VecDok, ts))

	err := m.ValidateRW(format.VecAccelCoo, ts)
	require.ErrorIs(t, err, storage.ErrNoConversionPath)
}

func TestMatManagerDokToCsrChain(t *testing.T) {
	m := storage.NewMatManager(3, 3, true, 8, nil)
	ts := storage.NewTileStorage[format.MatCode]()
	require.NoError(t, m.ValidateRWD(format.MatDok, ts))
	dok, _ := ts.Get(format.MatDok)
	dok.(*format.Dok).Set(0, 2, int64Bytes(5))
	dok.(*format.Dok).Set(2, 0, int64Bytes(6))
	dok.(*format.Dok).Set(2, 1, int64Bytes(7))

	require.NoError(t, m.ValidateRW(format.MatCsr, ts))
	csr, ok := ts.Get(format.MatCsr)
	require.True(t, ok)
	require.Equal(t, []int{0, 1, 1, 3}, csr.(*format.Csr).Ap)
	require.Equal(t, []int{2, 0, 1}, csr.(*format.Csr).Aj)
}

func TestMatManagerAccelCsrRoundTrip(t *testing.T) {
	m := storage.NewMatManager(2, 2, true, 8, nil)
	ts := storage.NewTileStorage[format.MatCode]()
	require.NoError(t, m.ValidateRWD(format.MatDok, ts))
	dok, _ := ts.Get(format.MatDok)
	dok.(*format.Dok).Set(1, 1, int64Bytes(11))

	require.NoError(t, m.ValidateRW(format.MatAccelCsr, ts))
	require.NoError(t, m.ValidateRWD(format.MatAccelCsr, ts))
	require.NoError(t, m.ValidateRW(format.MatCsr, ts))
	csr, ok := ts.Get(format.MatCsr)
	require.True(t, ok)
	require.Equal(t, []int{1}, csr.(*format.Csr).Aj)
}
