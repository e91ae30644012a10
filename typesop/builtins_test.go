package typesop_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sparselinalg/spla/typesop"
)

// TestBuiltinsRegisteredForEveryNumericType verifies SPEC_FULL.md §4.1's
// "registered ... for every built-in numeric type" holds for all ten
// built-in numeric codes, not just the ones with a dedicated accelerator
// backing — signed/unsigned 8/16/32/64-bit integers and 32/64-bit float.
func TestBuiltinsRegisteredForEveryNumericType(t *testing.T) {
	integerCodes := []typesop.TypeCode{
		typesop.Int8, typesop.Int16, typesop.Int32, typesop.Int64,
		typesop.UInt8, typesop.UInt16, typesop.UInt32, typesop.UInt64,
	}
	floatCodes := []typesop.TypeCode{typesop.Float32, typesop.Float64}

	arithmetic := []string{"plus", "minus", "times", "div", "min", "max", "first", "second", "eq", "lt"}
	bitwise := []string{"bor", "band", "bxor"}
	unary := []string{"one", "identity"}
	selects := []string{"gt0", "ne0", "eq0"}

	for _, code := range append(append([]typesop.TypeCode{}, integerCodes...), floatCodes...) {
		for _, name := range arithmetic {
			key := fmt.Sprintf("%s_%d%d%d", name, code, code, code)
			_, ok := typesop.Lookup(key)
			require.Truef(t, ok, "missing binary op %q", key)
		}
		for _, name := range unary {
			key := fmt.Sprintf("%s_%d%d", name, code, code)
			_, ok := typesop.Lookup(key)
			require.Truef(t, ok, "missing unary op %q", key)
		}
		for _, name := range selects {
			key := fmt.Sprintf("%s_%d%d", name, code, code)
			_, ok := typesop.Lookup(key)
			require.Truef(t, ok, "missing select op %q", key)
		}
	}

	for _, code := range integerCodes {
		for _, name := range bitwise {
			key := fmt.Sprintf("%s_%d%d%d", name, code, code, code)
			_, ok := typesop.Lookup(key)
			require.Truef(t, ok, "missing bitwise op %q", key)
		}
	}
	for _, code := range floatCodes {
		for _, name := range bitwise {
			key := fmt.Sprintf("%s_%d%d%d", name, code, code, code)
			_, ok := typesop.Lookup(key)
			require.Falsef(t, ok, "bitwise op %q should not be registered for a float type", key)
		}
	}
}

// TestBitwiseOpsRespectByteWidth exercises bor on the 1-byte Int8 and
// UInt8 types and band on the 2-byte UInt16 type, where a naive
// fixed-8-byte decode would read past the payload.
func TestBitwiseOpsRespectByteWidth(t *testing.T) {
	cases := []struct {
		code typesop.TypeCode
		a, b byte
	}{
		{typesop.Int8, 0b0110, 0b0011},
		{typesop.UInt8, 0b1100, 0b1010},
	}
	for _, c := range cases {
		key := fmt.Sprintf("bor_%d%d%d", c.code, c.code, c.code)
		op, ok := typesop.Lookup(key)
		require.True(t, ok)
		got := op.HostBinary([]byte{c.a}, []byte{c.b})
		require.Equal(t, []byte{c.a | c.b}, got)
	}

	andKey := fmt.Sprintf("band_%d%d%d", typesop.UInt16, typesop.UInt16, typesop.UInt16)
	andOp, ok := typesop.Lookup(andKey)
	require.True(t, ok)
	got := andOp.HostBinary([]byte{0xFF, 0x00}, []byte{0x0F, 0x00})
	require.Equal(t, []byte{0x0F, 0x00}, got)
}
