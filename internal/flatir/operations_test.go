package flatir

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/flatwasm/flatwasm/internal/wasm"
)

// TestOperationKind_String ensures that all the operation kind's stringer is well-defined.
func TestOperationKind_String(t *testing.T) {
	for k := OperationKind(0); k < operationKindEnd; k++ {
		require.NotEqual(t, "", k.String())
	}
	require.Panics(t, func() { _ = operationKindEnd.String() })
}

func TestOperation_String(t *testing.T) {
	tests := []struct {
		op  Operation
		exp string
	}{
		{op: newOperationLabel(3), exp: "L3:"},
		{op: newOperationGoto(3), exp: "Goto L3"},
		{op: newOperationIfEq(4), exp: "IfEq L4"},
		{op: newOperationIfNe(5), exp: "IfNe L5"},
		{op: newOperationSwitch([]Label{1, 2, 1}), exp: "Switch [L1 L2 L1]"},
		{op: newOperationDropKeep(2, []wasm.ValType{i64, f64, i32}), exp: "DropKeep 2 [i64 f64 i32]"},
		{op: newOperationDrop(wasm.ValTypeFuncref), exp: "Drop funcref"},
		{op: newOperationSelect(f64), exp: "Select f64"},
		{op: newOperationLocalTee(2, i64), exp: "LocalTee 2 i64"},
		{op: newOperationReturn(nil), exp: "Return []"},
		{op: newOperationReturn([]wasm.ValType{i32, i64}), exp: "Return [i32 i64]"},
		{op: newOperationTrap(), exp: "Trap"},
		{op: newOperationTryCatchBlock(10, 11, 12), exp: "TryCatchBlock L10 L11 L12"},
		{op: newOperationCatchStart(), exp: "CatchStart"},
		{op: newOperationCatchCompareTag(1), exp: "CatchCompareTag 1"},
		{op: newOperationCatchUnboxParams(1), exp: "CatchUnboxParams 1"},
		{op: newOperationCatchRegisterException(), exp: "CatchRegisterException"},
		{op: newOperationCatchEnd(), exp: "CatchEnd"},
		{op: newOperationWasm(wasm.OpcodeI32Add, nil), exp: "i32.add"},
		{op: newOperationWasm(wasm.OpcodeI32Load, []uint64{2, 16}), exp: "i32.load 2 16"},
	}

	for _, tt := range tests {
		tc := tt
		t.Run(tc.exp, func(t *testing.T) {
			require.Equal(t, tc.exp, tc.op.String())
		})
	}
}

func TestOperation_Labels(t *testing.T) {
	require.Equal(t, []Label{7}, newOperationGoto(7).Labels())
	require.Equal(t, []Label{1, 2}, newOperationSwitch([]Label{1, 2}).Labels())
	require.Equal(t, []Label{1, 2, 3}, newOperationTryCatchBlock(1, 2, 3).Labels())
	require.Nil(t, newOperationLabel(7).Labels())
	require.Nil(t, newOperationDropKeep(1, []wasm.ValType{i32, i32}).Labels())
}

func TestDisassemble(t *testing.T) {
	ops := []Operation{
		newOperationIfEq(2),
		newOperationTrap(),
		newOperationLabel(2),
		newOperationReturn(nil),
	}
	require.Equal(t, "\tIfEq L2\n\tTrap\nL2:\n\tReturn []", Disassemble(ops))
	require.Equal(t, "", Disassemble(nil))
}
