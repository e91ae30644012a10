package typesop

import "fmt"

// Kind tags the arity/role of an Op; it decides how many type codes its
// key carries.
type Kind int

// The three op kinds the dispatcher and algorithms distinguish.
const (
	Unary Kind = iota
	Binary
	Select
)

func (k Kind) String() string {
	switch k {
	case Unary:
		return "unary"
	case Binary:
		return "binary"
	case Select:
		return "select"
	default:
		return "unknown"
	}
}

// UnaryHost computes result = f(arg) over raw byte payloads sized by the
// respective Type.ByteSize. A void (ByteSize==0) argument or result is
// passed/returned as a nil slice.
type UnaryHost func(arg []byte) []byte

// BinaryHost computes result = f(a, b).
type BinaryHost func(a, b []byte) []byte

// SelectHost reports whether a value at some index participates (used by
// mask/select predicates): it never depends on the index itself, only the
// payload, keeping Select a pure value predicate per spec.md §3.
type SelectHost func(v []byte) bool

// Op is a stable, string-keyed, immutable description of a unary, binary
// or select operation: a host body for CPU execution and an optional
// device source fragment. Two Ops with equal Key are semantically
// interchangeable (spec.md §3 "Op" invariant); the dispatcher and kernel
// registry (C9) key exclusively off Key, never off the Go function value.
type Op struct {
	Kind         Kind
	Key          string
	ArgType      TypeCode
	ArgType2     TypeCode // Binary/Select second operand; ignored for Unary
	ResultType   TypeCode
	HostUnary    UnaryHost
	HostBinary   BinaryHost
	HostSelect   SelectHost
	DeviceSource string
}

// opKey builds the key "<name>_<argcode><argcode2><rescode>" for Binary
// and "<name>_<argcode><rescode>" for Unary and Select (codes in decimal).
func opKey(kind Kind, name string, arg, arg2, res TypeCode) string {
	switch kind {
	case Unary:
		return fmt.Sprintf("%s_%d%d", name, int(arg), int(res))
	case Select:
		return fmt.Sprintf("%s_%d%d", name, int(arg), int(res))
	default: // Binary
		return fmt.Sprintf("%s_%d%d%d", name, int(arg), int(arg2), int(res))
	}
}

// MakeUnary builds a unary Op. Panics if host is nil or argType/resultType
// are unregistered — a malformed Op is always a programmer error, never a
// recoverable runtime condition (spec.md §4.1 "Failure").
func MakeUnary(name string, argType, resultType TypeCode, host UnaryHost, deviceSrc string) Op {
	if host == nil {
		panic("typesop: MakeUnary " + name + ": nil host body")
	}
	_ = TypeOf(argType)
	_ = TypeOf(resultType)
	return Op{
		Kind:         Unary,
		Key:          opKey(Unary, name, argType, argType, resultType),
		ArgType:      argType,
		ResultType:   resultType,
		HostUnary:    host,
		DeviceSource: deviceSrc,
	}
}

// MakeBinary builds a binary Op. See MakeUnary for the failure contract.
func MakeBinary(name string, argType, argType2, resultType TypeCode, host BinaryHost, deviceSrc string) Op {
	if host == nil {
		panic("typesop: MakeBinary " + name + ": nil host body")
	}
	_ = TypeOf(argType)
	_ = TypeOf(argType2)
	_ = TypeOf(resultType)
	return Op{
		Kind:         Binary,
		Key:          opKey(Binary, name, argType, argType2, resultType),
		ArgType:      argType,
		ArgType2:     argType2,
		ResultType:   resultType,
		HostBinary:   host,
		DeviceSource: deviceSrc,
	}
}

// MakeSelect builds a select (mask predicate) Op over a single argument
// type, always logically boolean-resulting even though ResultType is
// tracked for key stability.
func MakeSelect(name string, argType TypeCode, host SelectHost, deviceSrc string) Op {
	if host == nil {
		panic("typesop: MakeSelect " + name + ": nil host body")
	}
	_ = TypeOf(argType)
	return Op{
		Kind:         Select,
		Key:          opKey(Select, name, argType, argType, argType),
		ArgType:      argType,
		ResultType:   argType,
		HostSelect:   host,
		DeviceSource: deviceSrc,
	}
}
