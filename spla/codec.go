package spla

import (
	"encoding/binary"
	"math"

	"github.com/sparselinalg/spla/typesop"
)

// Codec bridges a Go value type T to the byte payloads every lower layer
// (format, algo, storage) carries. Two Vector[T]/Matrix[T] built from
// codecs over the same typesop.TypeCode can freely share tiles; codecs
// over different codes cannot.
type Codec[T any] struct {
	Type   typesop.TypeCode
	Encode func(T) []byte
	Decode func([]byte) T
}

// Int64Codec returns a Codec for Go's int64, matching typesop.Int64's
// little-endian 8-byte encoding.
func Int64Codec() Codec[int64] {
	return Codec[int64]{
		Type:   typesop.Int64,
		Encode: func(v int64) []byte { b := make([]byte, 8); binary.LittleEndian.PutUint64(b, uint64(v)); return b },
		Decode: func(b []byte) int64 { return int64(binary.LittleEndian.Uint64(b)) },
	}
}

// Float64Codec returns a Codec for Go's float64, matching typesop.Float64.
func Float64Codec() Codec[float64] {
	return Codec[float64]{
		Type: typesop.Float64,
		Encode: func(v float64) []byte {
			b := make([]byte, 8)
			binary.LittleEndian.PutUint64(b, math.Float64bits(v))
			return b
		},
		Decode: func(b []byte) float64 { return math.Float64frombits(binary.LittleEndian.Uint64(b)) },
	}
}

// Int32Codec returns a Codec for Go's int32, matching typesop.Int32.
func Int32Codec() Codec[int32] {
	return Codec[int32]{
		Type:   typesop.Int32,
		Encode: func(v int32) []byte { b := make([]byte, 4); binary.LittleEndian.PutUint32(b, uint32(v)); return b },
		Decode: func(b []byte) int32 { return int32(binary.LittleEndian.Uint32(b)) },
	}
}

func (c Codec[T]) byteSize() int { return typesop.TypeOf(c.Type).ByteSize }
