package typesop

import (
	"encoding/binary"
	"math"
)

// numericKind describes how to decode/encode the []byte payload of one
// built-in numeric type, so the builtin table below can be generated once
// by iterating a fixed list of (type, decode, encode) tuples instead of
// hand-writing a host body per type per operator (see the "template/macro
// metaprogramming of per-type builtin op tables" design note).
//
// decode/encode round-trip through float64 for the arithmetic table
// (builtinBinaryTable) where that loses no representable precision for
// any built-in type this package registers. decodeInt/encodeInt instead
// round-trip through int64 at the type's own byte width, so bitwiseTable
// (bor/band/bxor) and the 64-bit integer kinds keep exact integer bits
// rather than passing them through a float64 intermediate.
type numericKind struct {
	code      TypeCode
	decode    func([]byte) float64
	encode    func(float64) []byte
	decodeInt func([]byte) int64
	encodeInt func(int64) []byte
	isFloat   bool
}

var numericKinds = []numericKind{
	{
		code:      Int8,
		decode:    func(b []byte) float64 { return float64(int8(b[0])) },
		encode:    func(f float64) []byte { return []byte{byte(int8(f))} },
		decodeInt: func(b []byte) int64 { return int64(int8(b[0])) },
		encodeInt: func(v int64) []byte { return []byte{byte(int8(v))} },
	},
	{
		code:      Int16,
		decode:    func(b []byte) float64 { return float64(int16(binary.LittleEndian.Uint16(b))) },
		encode:    func(f float64) []byte { b := make([]byte, 2); binary.LittleEndian.PutUint16(b, uint16(int16(f))); return b },
		decodeInt: func(b []byte) int64 { return int64(int16(binary.LittleEndian.Uint16(b))) },
		encodeInt: func(v int64) []byte { b := make([]byte, 2); binary.LittleEndian.PutUint16(b, uint16(int16(v))); return b },
	},
	{
		code:      Int32,
		decode:    func(b []byte) float64 { return float64(int32(binary.LittleEndian.Uint32(b))) },
		encode:    func(f float64) []byte { b := make([]byte, 4); binary.LittleEndian.PutUint32(b, uint32(int32(f))); return b },
		decodeInt: func(b []byte) int64 { return int64(int32(binary.LittleEndian.Uint32(b))) },
		encodeInt: func(v int64) []byte { b := make([]byte, 4); binary.LittleEndian.PutUint32(b, uint32(int32(v))); return b },
	},
	{
		code:      Int64,
		decode:    func(b []byte) float64 { return float64(int64(binary.LittleEndian.Uint64(b))) },
		encode:    func(f float64) []byte { b := make([]byte, 8); binary.LittleEndian.PutUint64(b, uint64(int64(f))); return b },
		decodeInt: func(b []byte) int64 { return int64(binary.LittleEndian.Uint64(b)) },
		encodeInt: func(v int64) []byte { b := make([]byte, 8); binary.LittleEndian.PutUint64(b, uint64(v)); return b },
	},
	{
		code:      UInt8,
		decode:    func(b []byte) float64 { return float64(b[0]) },
		encode:    func(f float64) []byte { return []byte{byte(uint8(f))} },
		decodeInt: func(b []byte) int64 { return int64(b[0]) },
		encodeInt: func(v int64) []byte { return []byte{byte(uint8(v))} },
	},
	{
		code:      UInt16,
		decode:    func(b []byte) float64 { return float64(binary.LittleEndian.Uint16(b)) },
		encode:    func(f float64) []byte { b := make([]byte, 2); binary.LittleEndian.PutUint16(b, uint16(f)); return b },
		decodeInt: func(b []byte) int64 { return int64(binary.LittleEndian.Uint16(b)) },
		encodeInt: func(v int64) []byte { b := make([]byte, 2); binary.LittleEndian.PutUint16(b, uint16(v)); return b },
	},
	{
		code:      UInt32,
		decode:    func(b []byte) float64 { return float64(binary.LittleEndian.Uint32(b)) },
		encode:    func(f float64) []byte { b := make([]byte, 4); binary.LittleEndian.PutUint32(b, uint32(f)); return b },
		decodeInt: func(b []byte) int64 { return int64(binary.LittleEndian.Uint32(b)) },
		encodeInt: func(v int64) []byte { b := make([]byte, 4); binary.LittleEndian.PutUint32(b, uint32(v)); return b },
	},
	{
		code:      UInt64,
		decode:    func(b []byte) float64 { return float64(binary.LittleEndian.Uint64(b)) },
		encode:    func(f float64) []byte { b := make([]byte, 8); binary.LittleEndian.PutUint64(b, uint64(f)); return b },
		decodeInt: func(b []byte) int64 { return int64(binary.LittleEndian.Uint64(b)) },
		encodeInt: func(v int64) []byte { b := make([]byte, 8); binary.LittleEndian.PutUint64(b, uint64(v)); return b },
	},
	{
		code:    Float32,
		decode:  func(b []byte) float64 { return float64(math.Float32frombits(binary.LittleEndian.Uint32(b))) },
		encode:  func(f float64) []byte { b := make([]byte, 4); binary.LittleEndian.PutUint32(b, math.Float32bits(float32(f))); return b },
		isFloat: true,
	},
	{
		code:    Float64,
		decode:  func(b []byte) float64 { return math.Float64frombits(binary.LittleEndian.Uint64(b)) },
		encode:  func(f float64) []byte { b := make([]byte, 8); binary.LittleEndian.PutUint64(b, math.Float64bits(f)); return b },
		isFloat: true,
	},
}

// binFn is a float64-domain implementation of one of the builtin binary
// operator families, shared across every numericKind.
type binFn func(a, b float64) float64

// builtinBinaryTable is the fixed list of (name, body) tuples the
// per-type Ops below are generated from, per the §9 design note.
var builtinBinaryTable = []struct {
	name string
	fn   binFn
}{
	{"plus", func(a, b float64) float64 { return a + b }},
	{"minus", func(a, b float64) float64 { return a - b }},
	{"times", func(a, b float64) float64 { return a * b }},
	{"div", func(a, b float64) float64 {
		if b == 0 {
			return 0
		}
		return a / b
	}},
	{"min", math.Min},
	{"max", math.Max},
	{"first", func(a, b float64) float64 { return a }},
	{"second", func(a, b float64) float64 { return b }},
}

var bitwiseTable = []struct {
	name string
	fn   func(a, b int64) int64
}{
	{"bor", func(a, b int64) int64 { return a | b }},
	{"band", func(a, b int64) int64 { return a & b }},
	{"bxor", func(a, b int64) int64 { return a ^ b }},
}

// Registries keyed by Op.Key, populated once by registerBuiltins.
var builtinOps = map[string]Op{}

func init() {
	registerBuiltins()
}

func registerOp(op Op) {
	builtinOps[op.Key] = op
}

// Lookup returns a built-in Op by its key. Ops built with MakeUnary,
// MakeBinary or MakeSelect are not added to the table it searches.
func Lookup(key string) (Op, bool) {
	op, ok := builtinOps[key]
	return op, ok
}

func registerBuiltins() {
	for _, nk := range numericKinds {
		nk := nk
		for _, entry := range builtinBinaryTable {
			entry := entry
			host := func(a, b []byte) []byte {
				return nk.encode(entry.fn(nk.decode(a), nk.decode(b)))
			}
			registerOp(MakeBinary(entry.name, nk.code, nk.code, nk.code, host, ""))
		}
		if !nk.isFloat {
			for _, entry := range bitwiseTable {
				entry := entry
				host := func(a, b []byte) []byte {
					return nk.encodeInt(entry.fn(nk.decodeInt(a), nk.decodeInt(b)))
				}
				registerOp(MakeBinary(entry.name, nk.code, nk.code, nk.code, host, ""))
			}
		}
		registerOp(MakeUnary("one", nk.code, nk.code, func([]byte) []byte { return nk.encode(1) }, ""))
		registerOp(MakeUnary("identity", nk.code, nk.code, func(a []byte) []byte { return a }, ""))
		registerOp(MakeSelect("gt0", nk.code, func(v []byte) bool { return nk.decode(v) > 0 }, ""))
		registerOp(MakeSelect("ne0", nk.code, func(v []byte) bool { return nk.decode(v) != 0 }, ""))
		registerOp(MakeSelect("eq0", nk.code, func(v []byte) bool { return nk.decode(v) == 0 }, ""))
		registerOp(MakeBinary("eq", nk.code, nk.code, nk.code, func(a, b []byte) []byte {
			if nk.decode(a) == nk.decode(b) {
				return nk.encode(1)
			}
			return nk.encode(0)
		}, ""))
		registerOp(MakeBinary("lt", nk.code, nk.code, nk.code, func(a, b []byte) []byte {
			if nk.decode(a) < nk.decode(b) {
				return nk.encode(1)
			}
			return nk.encode(0)
		}, ""))
	}
}
