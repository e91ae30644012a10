package format

import "fmt"

// VecCode identifies a vector tile's storage layout.
type VecCode int

// The full vector format set, including accelerator twins (spec.md §3).
const (
	VecDok VecCode = iota
	VecCoo
	VecDense
	VecAccelCoo
	VecAccelDense

	VecCount
)

func (c VecCode) String() string {
	switch c {
	case VecDok:
		return "DokVec"
	case VecCoo:
		return "CooVec"
	case VecDense:
		return "DenseVec"
	case VecAccelCoo:
		return "AccelCooVec"
	case VecAccelDense:
		return "AccelDenseVec"
	default:
		return fmt.Sprintf("VecCode(%d)", int(c))
	}
}

// MatCode identifies a matrix tile's storage layout.
type MatCode int

// The full matrix format set, including accelerator twins (spec.md §3).
const (
	MatDok MatCode = iota
	MatLil
	MatCoo
	MatCsr
	MatAccelCoo
	MatAccelCsr

	MatCount
)

func (c MatCode) String() string {
	switch c {
	case MatDok:
		return "Dok"
	case MatLil:
		return "Lil"
	case MatCoo:
		return "Coo"
	case MatCsr:
		return "Csr"
	case MatAccelCoo:
		return "AccelCoo"
	case MatAccelCsr:
		return "AccelCsr"
	default:
		return fmt.Sprintf("MatCode(%d)", int(c))
	}
}
