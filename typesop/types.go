// Package typesop implements the type & op registry (component C1):
// built-in element types, and factories for user-defined unary, binary
// and select Ops keyed by a stable string derived from operation kind
// plus operand/result type codes.
//
// Op and Type are value-like and immutable after construction, per the
// data model in SPEC_FULL.md §3. Building an Op with a nil host body or
// an unknown type code is a programmer error and panics; the host body
// is not checked against the declared type codes.
package typesop

import "fmt"

// TypeCode identifies a built-in scalar type. User types registered via
// RegisterType receive codes starting at firstUserCode.
type TypeCode int

// Built-in type codes, one per row of the built-in table in SPEC_FULL §3.1.
const (
	Void TypeCode = iota
	Int8
	Int16
	Int32
	Int64
	UInt8
	UInt16
	UInt32
	UInt64
	Float32
	Float64

	firstUserCode
)

// Type describes an element type: a stable name, a byte size (0 for
// structure-only "void"), and a has-values flag. ByteSize is a
// compile-time constant for a given Type and never changes — see
// spec.md §3 "Type".
type Type struct {
	Code      TypeCode
	Name      string
	ByteSize  int
	HasValues bool
}

var builtins = map[TypeCode]Type{
	Void:    {Void, "void", 0, false},
	Int8:    {Int8, "int8", 1, true},
	Int16:   {Int16, "int16", 2, true},
	Int32:   {Int32, "int32", 4, true},
	Int64:   {Int64, "int64", 8, true},
	UInt8:   {UInt8, "uint8", 1, true},
	UInt16:  {UInt16, "uint16", 2, true},
	UInt32:  {UInt32, "uint32", 4, true},
	UInt64:  {UInt64, "uint64", 8, true},
	Float32: {Float32, "float32", 4, true},
	Float64: {Float64, "float64", 8, true},
}

var (
	userTypes = map[TypeCode]Type{}
	nextUser  = firstUserCode
)

// TypeOf returns the Type record for a code, built-in or user-registered.
// Panics if code is unknown: looking up a Type that was never registered
// is a programmer error, not a runtime condition a caller can recover from.
func TypeOf(code TypeCode) Type {
	if t, ok := builtins[code]; ok {
		return t
	}
	if t, ok := userTypes[code]; ok {
		return t
	}
	panic(fmt.Sprintf("typesop: unknown type code %d", int(code)))
}

// RegisterType adds a user element type of the given byte size and
// returns its freshly allocated TypeCode. byteSize must be >= 0;
// byteSize == 0 implies a structure-only type and forces hasValues=false,
// matching the "void" invariant in spec.md §3.
func RegisterType(name string, byteSize int) TypeCode {
	if byteSize < 0 {
		panic("typesop: negative byte size for type " + name)
	}
	code := nextUser
	nextUser++
	userTypes[code] = Type{
		Code:      code,
		Name:      name,
		ByteSize:  byteSize,
		HasValues: byteSize > 0,
	}
	return code
}
