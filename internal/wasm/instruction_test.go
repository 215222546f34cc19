package wasm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestInstructionName ensures that all the instruction's name is defined.
func TestInstructionName(t *testing.T) {
	for _, op := range Opcodes() {
		require.NotEqual(t, "", InstructionName(op))
		actual, ok := OpcodeByName(InstructionName(op))
		require.True(t, ok, InstructionName(op))
		require.Equal(t, op, actual)
	}
	require.Equal(t, "unknown(0xff)", InstructionName(0xff))
}

func TestOpcodes(t *testing.T) {
	ops := Opcodes()
	require.Equal(t, len(instructionNames), len(ops))
	for i := 1; i < len(ops); i++ {
		require.True(t, ops[i-1] < ops[i])
	}

	// The returned slice is a copy.
	ops[0] = OpcodeEnd
	require.Equal(t, OpcodeUnreachable, Opcodes()[0])
}

func TestOpcode_Prefix(t *testing.T) {
	require.Equal(t, byte(0), OpcodeI32Add.Prefix())
	require.Equal(t, OpcodeMiscPrefix, OpcodeMiscTableGrow.Prefix())
	require.Equal(t, OpcodeVecPrefix, OpcodeVecV128Load.Prefix())
	require.Equal(t, OpcodeAtomicPrefix, OpcodeAtomicFence.Prefix())
	require.Equal(t, "i64.atomic.rmw32.cmpxchg_u", OpcodeAtomicI64Rmw32CmpxchgU.String())
	require.Equal(t, "f64x2.convert_low_i32x4_u", OpcodeVecF64x2ConvertLowI32x4U.String())
}
