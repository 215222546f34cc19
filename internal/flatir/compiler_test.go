package flatir

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/flatwasm/flatwasm/internal/wasm"
)

var (
	i32, i64, f64 = wasm.ValTypeI32, wasm.ValTypeI64, wasm.ValTypeF64
	v_v           = &wasm.FunctionType{}
	v_i32         = &wasm.FunctionType{Results: []wasm.ValType{i32}}
	i32_v         = &wasm.FunctionType{Params: []wasm.ValType{i32}}
	i32_i32       = &wasm.FunctionType{Params: []wasm.ValType{i32}, Results: []wasm.ValType{i32}}
)

func ins(op wasm.Opcode, operands ...uint64) wasm.Instruction {
	return wasm.Instruction{Opcode: op, Operands: operands}
}

func tryTable(blockType uint64, catches ...wasm.Catch) wasm.Instruction {
	return wasm.Instruction{Opcode: wasm.OpcodeTryTable, Operands: []uint64{blockType}, Catches: catches}
}

// requireBody annotates the instructions, which must end with the end of the function.
func requireBody(t *testing.T, locals []wasm.ValType, instrs ...wasm.Instruction) *wasm.FunctionBody {
	annotated, err := wasm.Annotate(instrs)
	require.NoError(t, err)
	return &wasm.FunctionBody{Locals: locals, Instructions: annotated}
}

// singleFunctionModule returns a module whose only function is of the type sig and has the body.
func singleFunctionModule(sig *wasm.FunctionType, body *wasm.FunctionBody) *wasm.Module {
	return &wasm.Module{
		Types:     []*wasm.FunctionType{sig},
		Functions: []uint32{0},
		Codes:     []*wasm.FunctionBody{body},
	}
}

func requireCompile(t *testing.T, m *wasm.Module) *CompilationResult {
	meta, err := m.Metadata()
	require.NoError(t, err)
	res, err := Compile(meta, meta.ImportedFunctionCount, m.Codes[0])
	require.NoError(t, err)
	requireStackBalance(t, meta, res, m.Codes[0])
	return res
}

func compileErr(t *testing.T, m *wasm.Module) error {
	meta, err := m.Metadata()
	require.NoError(t, err)
	res, err := Compile(meta, meta.ImportedFunctionCount, m.Codes[0])
	require.Error(t, err)
	require.Nil(t, res)
	return err
}

func disassembly(lines ...string) string {
	return strings.Join(lines, "\n")
}

func TestCompile(t *testing.T) {
	tests := []struct {
		name     string
		module   func(t *testing.T) *wasm.Module
		expected string
	}{
		{
			name: "nullary",
			module: func(t *testing.T) *wasm.Module {
				return singleFunctionModule(v_v, requireBody(t, nil, ins(wasm.OpcodeEnd)))
			},
			expected: "\tReturn []",
		},
		{
			name: "identity",
			module: func(t *testing.T) *wasm.Module {
				return singleFunctionModule(i32_i32, requireBody(t, nil,
					ins(wasm.OpcodeLocalGet, 0),
					ins(wasm.OpcodeEnd),
				))
			},
			expected: disassembly(
				"\tlocal.get 0",
				"\tReturn [i32]",
			),
		},
		{
			name: "br with values below the result",
			module: func(t *testing.T) *wasm.Module {
				return singleFunctionModule(v_i32, requireBody(t, nil,
					ins(wasm.OpcodeBlock, wasm.BlockTypeValue(i32)), // 0
					ins(wasm.OpcodeI32Const, 1),                     // 1
					ins(wasm.OpcodeI32Const, 2),                     // 2
					ins(wasm.OpcodeI32Const, 3),                     // 3
					ins(wasm.OpcodeI32Const, 4),                     // 4
					ins(wasm.OpcodeBr, 0),                           // 5
					ins(wasm.OpcodeEnd),                             // 6
					ins(wasm.OpcodeEnd),                             // 7
				))
			},
			expected: disassembly(
				"\ti32.const 1",
				"\ti32.const 2",
				"\ti32.const 3",
				"\ti32.const 4",
				"\tDropKeep 3 [i32 i32 i32 i32]",
				"\tGoto L6",
				"L6:",
				"\tReturn [i32]",
			),
		},
		{
			name: "br with exactly the result",
			module: func(t *testing.T) *wasm.Module {
				return singleFunctionModule(v_i32, requireBody(t, nil,
					ins(wasm.OpcodeBlock, wasm.BlockTypeValue(i32)), // 0
					ins(wasm.OpcodeI32Const, 1),                     // 1
					ins(wasm.OpcodeBr, 0),                           // 2
					ins(wasm.OpcodeEnd),                             // 3
					ins(wasm.OpcodeEnd),                             // 4
				))
			},
			expected: disassembly(
				"\ti32.const 1",
				"\tGoto L3",
				"L3:",
				"\tReturn [i32]",
			),
		},
		{
			name: "br to the function",
			module: func(t *testing.T) *wasm.Module {
				return singleFunctionModule(v_i32, requireBody(t, nil,
					ins(wasm.OpcodeI64Const, 1), // 0
					ins(wasm.OpcodeI32Const, 2), // 1
					ins(wasm.OpcodeBr, 0),       // 2
					ins(wasm.OpcodeEnd),         // 3
				))
			},
			expected: disassembly(
				"\ti64.const 1",
				"\ti32.const 2",
				"\tDropKeep 1 [i64 i32]",
				"\tGoto L3",
				"L3:",
				"\tReturn [i32]",
			),
		},
		{
			name: "backward br keeps the loop parameters",
			module: func(t *testing.T) *wasm.Module {
				m := singleFunctionModule(v_v, requireBody(t, nil,
					ins(wasm.OpcodeI32Const, 0),                  // 0
					ins(wasm.OpcodeLoop, wasm.BlockTypeIndex(1)), // 1
					ins(wasm.OpcodeI64Const, 5),                  // 2
					ins(wasm.OpcodeI32Const, 1),                  // 3
					ins(wasm.OpcodeBr, 0),                        // 4
					ins(wasm.OpcodeEnd),                          // 5
					ins(wasm.OpcodeEnd),                          // 6
				))
				m.Types = append(m.Types, i32_v)
				return m
			},
			expected: disassembly(
				"\ti32.const 0",
				"L2:",
				"\ti64.const 5",
				"\ti32.const 1",
				"\tDropKeep 2 [i32 i64 i32]",
				"\tGoto L2",
				"\tReturn []",
			),
		},
		{
			name: "br_if with unwind",
			module: func(t *testing.T) *wasm.Module {
				return singleFunctionModule(v_i32, requireBody(t, nil,
					ins(wasm.OpcodeBlock, wasm.BlockTypeValue(i32)), // 0
					ins(wasm.OpcodeI32Const, 7),                     // 1
					ins(wasm.OpcodeI32Const, 9),                     // 2
					ins(wasm.OpcodeI32Const, 1),                     // 3
					ins(wasm.OpcodeBrIf, 0),                         // 4
					ins(wasm.OpcodeDrop),                            // 5
					ins(wasm.OpcodeEnd),                             // 6
					ins(wasm.OpcodeEnd),                             // 7
				))
			},
			expected: disassembly(
				"\ti32.const 7",
				"\ti32.const 9",
				"\ti32.const 1",
				"\tIfEq L5",
				"\tDropKeep 1 [i32 i32]",
				"\tGoto L6",
				"L5:",
				"\tDrop i32",
				"L6:",
				"\tReturn [i32]",
			),
		},
		{
			name: "br_if without unwind",
			module: func(t *testing.T) *wasm.Module {
				return singleFunctionModule(v_i32, requireBody(t, nil,
					ins(wasm.OpcodeBlock, wasm.BlockTypeValue(i32)), // 0
					ins(wasm.OpcodeI32Const, 7),                     // 1
					ins(wasm.OpcodeI32Const, 1),                     // 2
					ins(wasm.OpcodeBrIf, 0),                         // 3
					ins(wasm.OpcodeEnd),                             // 4
					ins(wasm.OpcodeEnd),                             // 5
				))
			},
			expected: disassembly(
				"\ti32.const 7",
				"\ti32.const 1",
				"\tIfNe L4",
				"L4:",
				"\tReturn [i32]",
			),
		},
		{
			name: "br_table with only a default",
			module: func(t *testing.T) *wasm.Module {
				return singleFunctionModule(i32_v, requireBody(t, nil,
					ins(wasm.OpcodeBlock, wasm.BlockTypeEmpty), // 0
					ins(wasm.OpcodeLocalGet, 0),                // 1
					ins(wasm.OpcodeBrTable, 0),                 // 2
					ins(wasm.OpcodeEnd),                        // 3
					ins(wasm.OpcodeEnd),                        // 4
				))
			},
			expected: disassembly(
				"\tlocal.get 0",
				"\tDrop i32",
				"\tGoto L3",
				"L3:",
				"\tReturn []",
			),
		},
		{
			name: "br_table unwinds once per target",
			module: func(t *testing.T) *wasm.Module {
				return singleFunctionModule(i32_i32, requireBody(t, nil,
					ins(wasm.OpcodeBlock, wasm.BlockTypeValue(i32)), // 0
					ins(wasm.OpcodeBlock, wasm.BlockTypeEmpty),      // 1
					ins(wasm.OpcodeI32Const, 10),                    // 2
					ins(wasm.OpcodeI32Const, 20),                    // 3
					ins(wasm.OpcodeLocalGet, 0),                     // 4
					ins(wasm.OpcodeBrTable, 0, 1, 0, 1),             // 5
					ins(wasm.OpcodeEnd),                             // 6
					ins(wasm.OpcodeI32Const, 30),                    // 7
					ins(wasm.OpcodeEnd),                             // 8
					ins(wasm.OpcodeEnd),                             // 9
				))
			},
			expected: disassembly(
				"\ti32.const 10",
				"\ti32.const 20",
				"\tlocal.get 0",
				"\tSwitch [L10 L11 L10 L11]",
				"L10:",
				"\tDropKeep 2 [i32 i32]",
				"\tGoto L6",
				"L11:",
				"\tDropKeep 1 [i32 i32]",
				"\tGoto L8",
				"L6:",
				"\ti32.const 30",
				"L8:",
				"\tReturn [i32]",
			),
		},
		{
			name: "if else",
			module: func(t *testing.T) *wasm.Module {
				return singleFunctionModule(i32_i32, requireBody(t, nil,
					ins(wasm.OpcodeLocalGet, 0),                  // 0
					ins(wasm.OpcodeIf, wasm.BlockTypeValue(i32)), // 1
					ins(wasm.OpcodeI32Const, 1),                  // 2
					ins(wasm.OpcodeElse),                         // 3
					ins(wasm.OpcodeI32Const, 2),                  // 4
					ins(wasm.OpcodeEnd),                          // 5
					ins(wasm.OpcodeEnd),                          // 6
				))
			},
			expected: disassembly(
				"\tlocal.get 0",
				"\tIfEq L4",
				"\ti32.const 1",
				"\tGoto L5",
				"L4:",
				"\ti32.const 2",
				"L5:",
				"\tReturn [i32]",
			),
		},
		{
			name: "if without else",
			module: func(t *testing.T) *wasm.Module {
				return singleFunctionModule(i32_v, requireBody(t, nil,
					ins(wasm.OpcodeLocalGet, 0),             // 0
					ins(wasm.OpcodeIf, wasm.BlockTypeEmpty), // 1
					ins(wasm.OpcodeNop),                     // 2
					ins(wasm.OpcodeEnd),                     // 3
					ins(wasm.OpcodeEnd),                     // 4
				))
			},
			expected: disassembly(
				"\tlocal.get 0",
				"\tIfEq L3",
				"L3:",
				"\tReturn []",
			),
		},
		{
			name: "if without else passing its parameters through",
			module: func(t *testing.T) *wasm.Module {
				return singleFunctionModule(i32_i32, requireBody(t, nil,
					ins(wasm.OpcodeLocalGet, 0),                // 0
					ins(wasm.OpcodeLocalGet, 0),                // 1
					ins(wasm.OpcodeIf, wasm.BlockTypeIndex(0)), // 2
					ins(wasm.OpcodeI32Const, 1),                // 3
					ins(wasm.OpcodeI32Add),                     // 4
					ins(wasm.OpcodeEnd),                        // 5
					ins(wasm.OpcodeEnd),                        // 6
				))
			},
			expected: disassembly(
				"\tlocal.get 0",
				"\tlocal.get 0",
				"\tIfEq L5",
				"\ti32.const 1",
				"\ti32.add",
				"L5:",
				"\tReturn [i32]",
			),
		},
		{
			name: "early return discards the values below the results",
			module: func(t *testing.T) *wasm.Module {
				return singleFunctionModule(v_i32, requireBody(t, nil,
					ins(wasm.OpcodeBlock, wasm.BlockTypeEmpty), // 0
					ins(wasm.OpcodeI64Const, 1),                // 1
					ins(wasm.OpcodeI32Const, 2),                // 2
					ins(wasm.OpcodeReturn),                     // 3
					ins(wasm.OpcodeEnd),                        // 4
					ins(wasm.OpcodeI32Const, 3),                // 5
					ins(wasm.OpcodeEnd),                        // 6
				))
			},
			expected: disassembly(
				"\ti64.const 1",
				"\ti32.const 2",
				"\tDropKeep 1 [i64 i32]",
				"\tReturn [i32]",
				"\ti32.const 3",
				"\tReturn [i32]",
			),
		},
		{
			name: "unreachable code is skipped",
			module: func(t *testing.T) *wasm.Module {
				return singleFunctionModule(v_i32, requireBody(t, nil,
					ins(wasm.OpcodeBlock, wasm.BlockTypeValue(i32)), // 0
					ins(wasm.OpcodeUnreachable),                     // 1
					ins(wasm.OpcodeI32Add),                          // 2
					ins(wasm.OpcodeBlock, wasm.BlockTypeEmpty),      // 3
					ins(wasm.OpcodeEnd),                             // 4
					ins(wasm.OpcodeEnd),                             // 5
					ins(wasm.OpcodeEnd),                             // 6
				))
			},
			expected: disassembly(
				"\tTrap",
				"\tReturn [i32]",
			),
		},
		{
			name: "select drop and local.tee",
			module: func(t *testing.T) *wasm.Module {
				return singleFunctionModule(i32_i32, requireBody(t, []wasm.ValType{f64},
					ins(wasm.OpcodeF64Const, 0),          // 0
					ins(wasm.OpcodeF64Const, 1),          // 1
					ins(wasm.OpcodeLocalGet, 0),          // 2
					ins(wasm.OpcodeSelect),               // 3
					ins(wasm.OpcodeLocalTee, 1),          // 4
					ins(wasm.OpcodeDrop),                 // 5
					ins(wasm.OpcodeI64Const, 0),          // 6
					ins(wasm.OpcodeI64Const, 1),          // 7
					ins(wasm.OpcodeLocalGet, 0),          // 8
					ins(wasm.OpcodeSelectT, uint64(i64)), // 9
					ins(wasm.OpcodeDrop),                 // 10
					ins(wasm.OpcodeLocalGet, 0),          // 11
					ins(wasm.OpcodeEnd),                  // 12
				))
			},
			expected: disassembly(
				"\tf64.const 0",
				"\tf64.const 1",
				"\tlocal.get 0",
				"\tSelect f64",
				"\tLocalTee 1 f64",
				"\tDrop f64",
				"\ti64.const 0",
				"\ti64.const 1",
				"\tlocal.get 0",
				"\tSelect i64",
				"\tDrop i64",
				"\tlocal.get 0",
				"\tReturn [i32]",
			),
		},
	}

	for _, tt := range tests {
		tc := tt
		t.Run(tc.name, func(t *testing.T) {
			res := requireCompile(t, tc.module(t))
			require.Equal(t, tc.expected, Disassemble(res.Operations))
			requireLabelPositions(t, res)
		})
	}
}

func TestCompile_TailCall(t *testing.T) {
	module := func(t *testing.T, tail bool) *wasm.Module {
		instrs := []wasm.Instruction{ins(wasm.OpcodeLocalGet, 0)}
		if tail {
			instrs = append(instrs, ins(wasm.OpcodeReturnCall, 0))
		} else {
			instrs = append(instrs, ins(wasm.OpcodeCall, 0), ins(wasm.OpcodeReturn))
		}
		instrs = append(instrs, ins(wasm.OpcodeEnd))
		return &wasm.Module{
			Types:             []*wasm.FunctionType{i32_i32},
			ImportedFunctions: []uint32{0},
			Functions:         []uint32{0},
			Codes:             []*wasm.FunctionBody{requireBody(t, nil, instrs...)},
		}
	}

	tail := requireCompile(t, module(t, true))
	require.Equal(t, disassembly(
		"\tlocal.get 0",
		"\tcall 0",
		"\tReturn [i32]",
		"\tReturn [i32]",
	), Disassemble(tail.Operations))

	call := requireCompile(t, module(t, false))
	require.Equal(t, call.Operations, tail.Operations)

	t.Run("return_call_indirect", func(t *testing.T) {
		m := singleFunctionModule(i32_i32, requireBody(t, nil,
			ins(wasm.OpcodeLocalGet, 0),
			ins(wasm.OpcodeI32Const, 0),
			ins(wasm.OpcodeReturnCallIndirect, 0, 0),
			ins(wasm.OpcodeEnd),
		))
		m.Tables = []wasm.ValType{wasm.ValTypeFuncref}
		res := requireCompile(t, m)
		require.Equal(t, disassembly(
			"\tlocal.get 0",
			"\ti32.const 0",
			"\tcall_indirect 0 0",
			"\tReturn [i32]",
			"\tReturn [i32]",
		), Disassemble(res.Operations))
	})
}

func TestCompile_TryTable(t *testing.T) {
	t.Run("catch and catch_all", func(t *testing.T) {
		m := singleFunctionModule(v_v, requireBody(t, nil,
			ins(wasm.OpcodeBlock, wasm.BlockTypeEmpty), // 0
			tryTable(wasm.BlockTypeEmpty,               // 1
				wasm.Catch{Kind: wasm.CatchKindCatch, Tag: 0, Label: 0},
				wasm.Catch{Kind: wasm.CatchKindCatchAll, Label: 0},
			),
			ins(wasm.OpcodeThrow, 0), // 2
			ins(wasm.OpcodeEnd),      // 3
			ins(wasm.OpcodeEnd),      // 4
			ins(wasm.OpcodeEnd),      // 5
		))
		m.Tags = []uint32{0}

		res := requireCompile(t, m)
		require.Equal(t, disassembly(
			"\tTryCatchBlock L6 L7 L8",
			"L6:",
			"\tthrow 0",
			"L7:",
			"\tGoto L9",
			"L8:",
			"\tCatchStart",
			"\tCatchCompareTag 0",
			"\tIfEq L10",
			"\tCatchUnboxParams 0",
			"\tGoto L4",
			"L10:",
			"\tGoto L4",
			"L11:",
			"\tCatchEnd",
			"L9:",
			"L4:",
			"\tReturn []",
		), Disassemble(res.Operations))
		requireLabelPositions(t, res)
	})

	t.Run("catch_ref and catch_all_ref", func(t *testing.T) {
		m := singleFunctionModule(v_v, requireBody(t, nil,
			ins(wasm.OpcodeBlock, wasm.BlockTypeValue(wasm.ValTypeExnref)), // 0
			tryTable(wasm.BlockTypeEmpty,                                   // 1
				wasm.Catch{Kind: wasm.CatchKindCatchRef, Tag: 0, Label: 0},
				wasm.Catch{Kind: wasm.CatchKindCatchAllRef, Label: 0},
			),
			ins(wasm.OpcodeUnreachable), // 2
			ins(wasm.OpcodeEnd),         // 3
			ins(wasm.OpcodeUnreachable), // 4
			ins(wasm.OpcodeEnd),         // 5
			ins(wasm.OpcodeDrop),        // 6
			ins(wasm.OpcodeEnd),         // 7
		))
		m.Tags = []uint32{0}

		res := requireCompile(t, m)
		require.Equal(t, disassembly(
			"\tTryCatchBlock L8 L9 L10",
			"L8:",
			"\tTrap",
			"L9:",
			"\tGoto L11",
			"L10:",
			"\tCatchStart",
			"\tCatchCompareTag 0",
			"\tIfEq L12",
			"\tCatchUnboxParams 0",
			"\tCatchRegisterException",
			"\tGoto L5",
			"L12:",
			"\tCatchRegisterException",
			"\tGoto L5",
			"L13:",
			"\tCatchEnd",
			"L11:",
			"\tTrap",
			"L5:",
			"\tDrop exnref",
			"\tReturn []",
		), Disassemble(res.Operations))
		requireLabelPositions(t, res)
	})

	t.Run("empty", func(t *testing.T) {
		m := singleFunctionModule(v_v, requireBody(t, nil,
			tryTable(wasm.BlockTypeEmpty, wasm.Catch{Kind: wasm.CatchKindCatchAll, Label: 0}), // 0
			ins(wasm.OpcodeEnd),                                                               // 1
			ins(wasm.OpcodeEnd),                                                               // 2
		))
		res := requireCompile(t, m)
		require.Equal(t, disassembly(
			"L2:",
			"\tReturn []",
		), Disassemble(res.Operations))
	})

	t.Run("unreachable", func(t *testing.T) {
		m := singleFunctionModule(v_v, requireBody(t, nil,
			ins(wasm.OpcodeUnreachable),                                                       // 0
			tryTable(wasm.BlockTypeEmpty, wasm.Catch{Kind: wasm.CatchKindCatchAll, Label: 0}), // 1
			ins(wasm.OpcodeNop),                                                               // 2
			ins(wasm.OpcodeEnd),                                                               // 3
			ins(wasm.OpcodeEnd),                                                               // 4
		))
		res := requireCompile(t, m)
		require.Equal(t, disassembly(
			"\tTrap",
			"L4:",
			"\tReturn []",
		), Disassemble(res.Operations))
	})

	t.Run("nested", func(t *testing.T) {
		body := requireBody(t, nil,
			tryTable(wasm.BlockTypeEmpty, wasm.Catch{Kind: wasm.CatchKindCatchAll, Label: 0}), // 0
			tryTable(wasm.BlockTypeEmpty, wasm.Catch{Kind: wasm.CatchKindCatchAll, Label: 0}), // 1
			ins(wasm.OpcodeNop),                                                               // 2
			ins(wasm.OpcodeEnd),                                                               // 3
			ins(wasm.OpcodeEnd),                                                               // 4
			ins(wasm.OpcodeEnd),                                                               // 5
		)
		res := requireCompile(t, singleFunctionModule(v_v, body))

		// The inner region is declared first.
		require.Equal(t, "TryCatchBlock L6 L7 L8", res.Operations[0].String())
		require.Equal(t, "TryCatchBlock L11 L12 L13", res.Operations[1].String())
		requireLabelPositions(t, res)

		positions := map[int]Label{}
		for l, pos := range res.LabelPositions {
			require.NotContains(t, positions, pos)
			positions[pos] = l
		}
	})
}

func TestCompile_Errors(t *testing.T) {
	tests := []struct {
		name        string
		module      func(t *testing.T) *wasm.Module
		expectedErr error
		opcode      wasm.Opcode
		address     int
	}{
		{
			name: "operand type mismatch",
			module: func(t *testing.T) *wasm.Module {
				return singleFunctionModule(v_v, requireBody(t, nil,
					ins(wasm.OpcodeI64Const, 1),
					ins(wasm.OpcodeI32Const, 2),
					ins(wasm.OpcodeI32Add),
					ins(wasm.OpcodeDrop),
					ins(wasm.OpcodeEnd),
				))
			},
			expectedErr: ErrTypeMismatch,
			opcode:      wasm.OpcodeI32Add,
			address:     2,
		},
		{
			name: "stack underflow",
			module: func(t *testing.T) *wasm.Module {
				return singleFunctionModule(v_v, requireBody(t, nil,
					ins(wasm.OpcodeI32Const, 2),
					ins(wasm.OpcodeI32Add),
					ins(wasm.OpcodeEnd),
				))
			},
			expectedErr: ErrStackUnderflow,
			opcode:      wasm.OpcodeI32Add,
			address:     1,
		},
		{
			name: "block without its result",
			module: func(t *testing.T) *wasm.Module {
				return singleFunctionModule(v_v, requireBody(t, nil,
					ins(wasm.OpcodeBlock, wasm.BlockTypeValue(i32)),
					ins(wasm.OpcodeEnd),
					ins(wasm.OpcodeDrop),
					ins(wasm.OpcodeEnd),
				))
			},
			expectedErr: ErrScopeMismatch,
			opcode:      wasm.OpcodeEnd,
			address:     1,
		},
		{
			name: "value left at the end of the function",
			module: func(t *testing.T) *wasm.Module {
				return singleFunctionModule(v_v, requireBody(t, nil,
					ins(wasm.OpcodeI32Const, 1),
					ins(wasm.OpcodeEnd),
				))
			},
			expectedErr: ErrScopeMismatch,
			opcode:      wasm.OpcodeEnd,
			address:     1,
		},
		{
			name: "then arm without its result",
			module: func(t *testing.T) *wasm.Module {
				return singleFunctionModule(i32_i32, requireBody(t, nil,
					ins(wasm.OpcodeLocalGet, 0),
					ins(wasm.OpcodeIf, wasm.BlockTypeValue(i32)),
					ins(wasm.OpcodeElse),
					ins(wasm.OpcodeI32Const, 1),
					ins(wasm.OpcodeEnd),
					ins(wasm.OpcodeEnd),
				))
			},
			expectedErr: ErrScopeMismatch,
			opcode:      wasm.OpcodeElse,
			address:     2,
		},
		{
			name: "if without else producing a result",
			module: func(t *testing.T) *wasm.Module {
				return singleFunctionModule(i32_v, requireBody(t, nil,
					ins(wasm.OpcodeLocalGet, 0),
					ins(wasm.OpcodeIf, wasm.BlockTypeValue(i32)),
					ins(wasm.OpcodeI32Const, 5),
					ins(wasm.OpcodeEnd),
					ins(wasm.OpcodeDrop),
					ins(wasm.OpcodeEnd),
				))
			},
			expectedErr: ErrScopeMismatch,
			opcode:      wasm.OpcodeIf,
			address:     1,
		},
		{
			name: "br without the result",
			module: func(t *testing.T) *wasm.Module {
				return singleFunctionModule(v_i32, requireBody(t, nil,
					ins(wasm.OpcodeBlock, wasm.BlockTypeValue(i32)),
					ins(wasm.OpcodeI64Const, 1),
					ins(wasm.OpcodeBr, 0),
					ins(wasm.OpcodeEnd),
					ins(wasm.OpcodeEnd),
				))
			},
			expectedErr: ErrTypeMismatch,
			opcode:      wasm.OpcodeBr,
			address:     2,
		},
		{
			name: "local.tee of another type",
			module: func(t *testing.T) *wasm.Module {
				return singleFunctionModule(v_v, requireBody(t, []wasm.ValType{i64},
					ins(wasm.OpcodeI32Const, 1),
					ins(wasm.OpcodeLocalTee, 0),
					ins(wasm.OpcodeDrop),
					ins(wasm.OpcodeEnd),
				))
			},
			expectedErr: ErrTypeMismatch,
			opcode:      wasm.OpcodeLocalTee,
			address:     1,
		},
		{
			name: "unknown local",
			module: func(t *testing.T) *wasm.Module {
				return singleFunctionModule(v_v, requireBody(t, nil,
					ins(wasm.OpcodeLocalGet, 0),
					ins(wasm.OpcodeDrop),
					ins(wasm.OpcodeEnd),
				))
			},
			expectedErr: wasm.ErrInvalidIndex,
			opcode:      wasm.OpcodeLocalGet,
			address:     0,
		},
		{
			name: "unknown tag",
			module: func(t *testing.T) *wasm.Module {
				return singleFunctionModule(v_v, requireBody(t, nil,
					ins(wasm.OpcodeThrow, 5),
					ins(wasm.OpcodeEnd),
				))
			},
			expectedErr: wasm.ErrInvalidIndex,
			opcode:      wasm.OpcodeThrow,
			address:     0,
		},
		{
			name: "unsupported opcode",
			module: func(t *testing.T) *wasm.Module {
				return singleFunctionModule(v_v, requireBody(t, nil,
					ins(wasm.Opcode(0xff)),
					ins(wasm.OpcodeEnd),
				))
			},
			expectedErr: ErrUnsupportedOpcode,
			opcode:      wasm.Opcode(0xff),
			address:     0,
		},
	}

	for _, tt := range tests {
		tc := tt
		t.Run(tc.name, func(t *testing.T) {
			err := compileErr(t, tc.module(t))
			require.ErrorIs(t, err, tc.expectedErr)

			var verr *VerificationError
			require.True(t, errors.As(err, &verr))
			require.Equal(t, tc.opcode, verr.Opcode)
			require.Equal(t, tc.address, verr.Address)
		})
	}
}

func TestCompile_MalformedBody(t *testing.T) {
	meta, err := singleFunctionModule(v_v, &wasm.FunctionBody{}).Metadata()
	require.NoError(t, err)
	_, err = Compile(meta, 0, &wasm.FunctionBody{})
	require.ErrorIs(t, err, wasm.ErrMalformedBody)

	_, err = Compile(meta, 1, &wasm.FunctionBody{})
	require.ErrorIs(t, err, wasm.ErrInvalidIndex)
}

// requireLabelPositions ensures every referenced label is marked exactly once at its recorded position.
func requireLabelPositions(t *testing.T, res *CompilationResult) {
	marked := 0
	for i, op := range res.Operations {
		if op.Kind == OperationKindLabel {
			marked++
			require.Equal(t, i, res.LabelPositions[Label(op.Operands[0])])
		}
		for _, l := range op.Labels() {
			pos, ok := res.LabelPositions[l]
			require.True(t, ok, "%s is not marked", l)
			require.Equal(t, OperationKindLabel, res.Operations[pos].Kind)
		}
	}
	require.Equal(t, marked, len(res.LabelPositions))
}

// requireStackBalance replays the operand types along every path of the lowered operations, and ensures that
// every return leaves exactly the results of the function, and that every label is reached with the same stack.
func requireStackBalance(t *testing.T, meta *wasm.Metadata, res *CompilationResult, body *wasm.FunctionBody) {
	c := newCompiler(meta, res.Signature, body)
	ops := res.Operations

	type path struct {
		pc    int
		stack []wasm.ValType
	}
	seen := map[int]string{}
	pending := []path{{pc: 0}}

	jump := func(l Label, stack []wasm.ValType) {
		pending = append(pending, path{pc: res.LabelPositions[l], stack: append([]wasm.ValType{}, stack...)})
	}
	pop := func(stack []wasm.ValType, expected wasm.ValType) []wasm.ValType {
		require.NotEmpty(t, stack)
		require.Equal(t, expected, stack[len(stack)-1])
		return stack[:len(stack)-1]
	}

	for len(pending) > 0 {
		p := pending[len(pending)-1]
		pending = pending[:len(pending)-1]
		stack := p.stack

	walk:
		for pc := p.pc; pc < len(ops); pc++ {
			op := ops[pc]
			switch op.Kind {
			case OperationKindLabel:
				if prev, ok := seen[pc]; ok {
					require.Equal(t, prev, valTypes(stack), "stack at %s", Label(op.Operands[0]))
					break walk
				}
				seen[pc] = valTypes(stack)
			case OperationKindGoto:
				jump(Label(op.Operands[0]), stack)
				break walk
			case OperationKindIfEq, OperationKindIfNe:
				stack = pop(stack, i32)
				jump(Label(op.Operands[0]), stack)
			case OperationKindSwitch:
				stack = pop(stack, i32)
				for _, l := range op.Labels() {
					jump(l, stack)
				}
				break walk
			case OperationKindDropKeep:
				drop := int(op.Operands[0])
				types := op.Operands[1:]
				require.GreaterOrEqual(t, len(stack), len(types))
				for i, id := range types {
					require.Equal(t, wasm.ValType(id), stack[len(stack)-len(types)+i])
				}
				keep := append([]wasm.ValType{}, stack[len(stack)-len(types)+drop:]...)
				stack = append(stack[:len(stack)-len(types)], keep...)
			case OperationKindDrop:
				stack = pop(stack, wasm.ValType(op.Operands[0]))
			case OperationKindSelect:
				vt := wasm.ValType(op.Operands[0])
				stack = pop(pop(pop(stack, i32), vt), vt)
				stack = append(stack, vt)
			case OperationKindLocalTee:
				require.Equal(t, wasm.ValType(op.Operands[1]), stack[len(stack)-1])
			case OperationKindReturn:
				results := make([]wasm.ValType, len(op.Operands))
				for i, id := range op.Operands {
					results[i] = wasm.ValType(id)
				}
				require.Equal(t, valTypes(res.Signature.Results), valTypes(results))
				require.Equal(t, valTypes(results), valTypes(stack))
				break walk
			case OperationKindTrap, OperationKindCatchEnd:
				break walk
			case OperationKindWasm:
				if op.Opcode == wasm.OpcodeThrow || op.Opcode == wasm.OpcodeThrowRef {
					break walk
				}
				s, err := c.wasmOpcodeSignature(&wasm.AnnotatedInstruction{Opcode: op.Opcode, Operands: op.Operands})
				require.NoError(t, err)
				for i := len(s.in) - 1; i >= 0; i-- {
					stack = pop(stack, s.in[i])
				}
				stack = append(stack, s.out...)
			}
		}
	}
}
