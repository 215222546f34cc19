package flatir

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/flatwasm/flatwasm/internal/wasm"
)

func newSignatureTestCompiler(t *testing.T) *compiler {
	m := &wasm.Module{
		Types:     []*wasm.FunctionType{i32_i32, {Params: []wasm.ValType{i64, f64}}},
		Functions: []uint32{0},
		Globals:   []wasm.ValType{i64},
		Tables:    []wasm.ValType{wasm.ValTypeFuncref},
		Tags:      []uint32{1},
		Codes:     []*wasm.FunctionBody{{Locals: []wasm.ValType{f64}}},
	}
	meta, err := m.Metadata()
	require.NoError(t, err)

	c := newCompiler(meta, i32_i32, m.Codes[0])
	require.NoError(t, c.stack.enterScope(nil, &wasm.FunctionType{Results: i32_i32.Results}))
	c.stack.push(wasm.ValTypeExternref)
	c.stack.push(wasm.ValTypeFuncref)
	return c
}

func TestCompiler_wasmOpcodeSignature(t *testing.T) {
	tests := []struct {
		name string
		ins  *wasm.AnnotatedInstruction
		exp  *signature
	}{
		{
			name: "i32.trunc_sat_f32_s",
			ins:  &wasm.AnnotatedInstruction{Opcode: wasm.OpcodeMiscI32TruncSatF32S},
			exp:  signature_F32_I32,
		},
		{
			name: "memory.init",
			ins:  &wasm.AnnotatedInstruction{Opcode: wasm.OpcodeMiscMemoryInit},
			exp:  signature_I32I32I32_None,
		},
		{
			name: "i32x4.add",
			ins:  &wasm.AnnotatedInstruction{Opcode: wasm.OpcodeVecI32x4Add},
			exp:  signature_V128V128_V128,
		},
		{
			name: "v128.const",
			ins:  &wasm.AnnotatedInstruction{Opcode: wasm.OpcodeVecV128Const},
			exp:  signature_None_V128,
		},
		{
			name: "i32.atomic.rmw.cmpxchg",
			ins:  &wasm.AnnotatedInstruction{Opcode: wasm.OpcodeAtomicI32RmwCmpxchg},
			exp:  signature_I32I32I32_I32,
		},
		{
			name: "throw_ref",
			ins:  &wasm.AnnotatedInstruction{Opcode: wasm.OpcodeThrowRef},
			exp:  signature_Exnref_None,
		},
		{
			name: "call",
			ins:  &wasm.AnnotatedInstruction{Opcode: wasm.OpcodeCall, Operands: []uint64{0}},
			exp:  &signature{in: []wasm.ValType{i32}, out: []wasm.ValType{i32}},
		},
		{
			name: "call_indirect",
			ins:  &wasm.AnnotatedInstruction{Opcode: wasm.OpcodeCallIndirect, Operands: []uint64{0, 0}},
			exp:  &signature{in: []wasm.ValType{i32, i32}, out: []wasm.ValType{i32}},
		},
		{
			name: "call_ref",
			ins:  &wasm.AnnotatedInstruction{Opcode: wasm.OpcodeCallRef, Operands: []uint64{0}},
			exp: &signature{
				in:  []wasm.ValType{i32, wasm.RefType(true, wasm.HeapTypeIndex(0))},
				out: []wasm.ValType{i32},
			},
		},
		{
			name: "throw",
			ins:  &wasm.AnnotatedInstruction{Opcode: wasm.OpcodeThrow, Operands: []uint64{0}},
			exp:  &signature{in: []wasm.ValType{i64, f64}},
		},
		{
			name: "drop",
			ins:  &wasm.AnnotatedInstruction{Opcode: wasm.OpcodeDrop},
			exp:  &signature{in: []wasm.ValType{wasm.ValTypeFuncref}},
		},
		{
			name: "select",
			ins:  &wasm.AnnotatedInstruction{Opcode: wasm.OpcodeSelect},
			exp: &signature{
				in:  []wasm.ValType{wasm.ValTypeExternref, wasm.ValTypeExternref, i32},
				out: []wasm.ValType{wasm.ValTypeExternref},
			},
		},
		{
			name: "select_t",
			ins:  &wasm.AnnotatedInstruction{Opcode: wasm.OpcodeSelectT, Operands: []uint64{uint64(f64)}},
			exp:  &signature{in: []wasm.ValType{f64, f64, i32}, out: []wasm.ValType{f64}},
		},
		{
			name: "local.get param",
			ins:  &wasm.AnnotatedInstruction{Opcode: wasm.OpcodeLocalGet, Operands: []uint64{0}},
			exp:  &signature{out: []wasm.ValType{i32}},
		},
		{
			name: "local.set",
			ins:  &wasm.AnnotatedInstruction{Opcode: wasm.OpcodeLocalSet, Operands: []uint64{1}},
			exp:  &signature{in: []wasm.ValType{f64}},
		},
		{
			name: "local.tee",
			ins:  &wasm.AnnotatedInstruction{Opcode: wasm.OpcodeLocalTee, Operands: []uint64{1}},
			exp:  &signature{in: []wasm.ValType{f64}, out: []wasm.ValType{f64}},
		},
		{
			name: "global.get",
			ins:  &wasm.AnnotatedInstruction{Opcode: wasm.OpcodeGlobalGet, Operands: []uint64{0}},
			exp:  &signature{out: []wasm.ValType{i64}},
		},
		{
			name: "global.set",
			ins:  &wasm.AnnotatedInstruction{Opcode: wasm.OpcodeGlobalSet, Operands: []uint64{0}},
			exp:  &signature{in: []wasm.ValType{i64}},
		},
		{
			name: "table.get",
			ins:  &wasm.AnnotatedInstruction{Opcode: wasm.OpcodeTableGet, Operands: []uint64{0}},
			exp:  &signature{in: []wasm.ValType{i32}, out: []wasm.ValType{wasm.ValTypeFuncref}},
		},
		{
			name: "table.grow",
			ins:  &wasm.AnnotatedInstruction{Opcode: wasm.OpcodeMiscTableGrow, Operands: []uint64{0}},
			exp:  &signature{in: []wasm.ValType{wasm.ValTypeFuncref, i32}, out: []wasm.ValType{i32}},
		},
		{
			name: "table.fill",
			ins:  &wasm.AnnotatedInstruction{Opcode: wasm.OpcodeMiscTableFill, Operands: []uint64{0}},
			exp:  &signature{in: []wasm.ValType{i32, wasm.ValTypeFuncref, i32}},
		},
		{
			name: "ref.null extern",
			ins:  &wasm.AnnotatedInstruction{Opcode: wasm.OpcodeRefNull, Operands: []uint64{uint64(wasm.HeapTypeExtern)}},
			exp:  &signature{out: []wasm.ValType{wasm.ValTypeExternref}},
		},
		{
			name: "ref.is_null",
			ins:  &wasm.AnnotatedInstruction{Opcode: wasm.OpcodeRefIsNull},
			exp:  &signature{in: []wasm.ValType{wasm.ValTypeFuncref}, out: []wasm.ValType{i32}},
		},
	}

	for _, tt := range tests {
		tc := tt
		t.Run(tc.name, func(t *testing.T) {
			c := newSignatureTestCompiler(t)
			actual, err := c.wasmOpcodeSignature(tc.ins)
			require.NoError(t, err)
			require.Equal(t, tc.exp, actual)
		})
	}
}

// TestCompiler_wasmOpcodeSignature_total ensures every known opcode has a stack effect.
func TestCompiler_wasmOpcodeSignature_total(t *testing.T) {
	c := newSignatureTestCompiler(t)
	for _, op := range wasm.Opcodes() {
		_, err := c.wasmOpcodeSignature(&wasm.AnnotatedInstruction{Opcode: op, Operands: []uint64{0, 0}})
		require.NoError(t, err, wasm.InstructionName(op))
	}
}

func TestCompiler_wasmOpcodeSignature_errors(t *testing.T) {
	tests := []struct {
		name        string
		ins         *wasm.AnnotatedInstruction
		expectedErr error
	}{
		{
			name:        "unknown opcode",
			ins:         &wasm.AnnotatedInstruction{Opcode: wasm.Opcode(0xfc<<16 | 0xff)},
			expectedErr: ErrUnsupportedOpcode,
		},
		{
			name:        "unknown function",
			ins:         &wasm.AnnotatedInstruction{Opcode: wasm.OpcodeCall, Operands: []uint64{1}},
			expectedErr: wasm.ErrInvalidIndex,
		},
		{
			name:        "unknown global",
			ins:         &wasm.AnnotatedInstruction{Opcode: wasm.OpcodeGlobalGet, Operands: []uint64{1}},
			expectedErr: wasm.ErrInvalidIndex,
		},
		{
			name:        "unknown table",
			ins:         &wasm.AnnotatedInstruction{Opcode: wasm.OpcodeTableSet, Operands: []uint64{1}},
			expectedErr: wasm.ErrInvalidIndex,
		},
		{
			name:        "unknown local",
			ins:         &wasm.AnnotatedInstruction{Opcode: wasm.OpcodeLocalGet, Operands: []uint64{2}},
			expectedErr: wasm.ErrInvalidIndex,
		},
	}

	for _, tt := range tests {
		tc := tt
		t.Run(tc.name, func(t *testing.T) {
			c := newSignatureTestCompiler(t)
			_, err := c.wasmOpcodeSignature(tc.ins)
			require.ErrorIs(t, err, tc.expectedErr)
		})
	}

	t.Run("ref.is_null on a number", func(t *testing.T) {
		c := newSignatureTestCompiler(t)
		c.stack.push(i32)
		_, err := c.wasmOpcodeSignature(&wasm.AnnotatedInstruction{Opcode: wasm.OpcodeRefIsNull})
		require.ErrorIs(t, err, ErrTypeMismatch)
	})
}
