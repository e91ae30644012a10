package format_test

import (
	"encoding/binary"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sparselinalg/spla/format"
)

func enc(v int64) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, uint64(v))
	return b
}

func dec(b []byte) int64 { return int64(binary.LittleEndian.Uint64(b)) }

type triple struct{ r, c int; v int64 }

func cooEntries(c *format.Coo) []triple {
	out := make([]triple, len(c.Row))
	for i := range c.Row {
		out[i] = triple{c.Row[i], c.Col[i], dec(c.Val[i])}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].r != out[j].r {
			return out[i].r < out[j].r
		}
		return out[i].c < out[j].c
	})
	return out
}

// TestDokCsrCooRoundTrip verifies conversion consistency (spec.md §8
// invariant 2): Dok -> Coo -> Csr -> Coo preserves the logical
// (index,value) multiset.
func TestDokCsrCooRoundTrip(t *testing.T) {
	dok := format.NewDok(4, 4, true)
	dok.Set(0, 0, enc(1))
	dok.Set(0, 2, enc(2))
	dok.Set(2, 1, enc(3))
	dok.Set(3, 3, enc(4))

	coo := format.DokToCoo(dok)
	require.Equal(t, []triple{{0, 0, 1}, {0, 2, 2}, {2, 1, 3}, {3, 3, 4}}, cooEntries(coo))

	csr := format.CooToCsr(coo)
	require.Equal(t, []int{0, 2, 2, 3, 4}, csr.Ap)

	back := format.CsrToCoo(csr)
	require.Equal(t, cooEntries(coo), cooEntries(back))
}

func TestCooLilRoundTrip(t *testing.T) {
	dok := format.NewDok(3, 3, true)
	dok.Set(1, 0, enc(5))
	dok.Set(1, 2, enc(6))
	dok.Set(0, 1, enc(7))
	coo := format.DokToCoo(dok)

	lil := format.CooToLil(coo)
	require.Equal(t, []int{1}, lil.Row[0].Col)
	require.Equal(t, []int{0, 2}, lil.Row[1].Col)

	back := format.LilToCoo(lil)
	require.Equal(t, cooEntries(coo), cooEntries(back))
}

func TestDenseVecCooVecRoundTrip(t *testing.T) {
	cv := format.NewCooVec(4, true)
	cv.Idx = []int{0, 2}
	cv.Val = [][]byte{enc(10), enc(30)}

	dense := format.CooVecToDenseVec(cv, enc(0))
	require.Equal(t, int64(10), dec(dense.Ax[0]))
	require.Equal(t, int64(0), dec(dense.Ax[1]))
	require.Equal(t, 2, dense.Values())

	back := format.DenseVecToCooVec(dense)
	require.Equal(t, cv.Idx, back.Idx)
}

func TestDokVecCooVecRoundTrip(t *testing.T) {
	dv := format.NewDokVec(5, true)
	dv.Set(3, enc(9))
	dv.Set(1, enc(8))

	cv := format.DokVecToCooVec(dv)
	require.Equal(t, []int{1, 3}, cv.Idx)

	back := format.CooVecToDokVec(cv)
	require.Equal(t, int64(9), dec(back.Entries[3]))
}
