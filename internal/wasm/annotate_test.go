package wasm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAnnotate(t *testing.T) {
	t.Run("block and loop", func(t *testing.T) {
		body, err := Annotate([]Instruction{
			{Opcode: OpcodeBlock, Operands: []uint64{BlockTypeEmpty}}, // 0
			{Opcode: OpcodeI32Const, Operands: []uint64{1}},          // 1
			{Opcode: OpcodeBrIf, Operands: []uint64{0}},              // 2
			{Opcode: OpcodeLoop, Operands: []uint64{BlockTypeEmpty}}, // 3
			{Opcode: OpcodeBr, Operands: []uint64{0}},                // 4
			{Opcode: OpcodeEnd},                                      // 5
			{Opcode: OpcodeEnd},                                      // 6
			{Opcode: OpcodeEnd},                                      // 7
		})
		require.NoError(t, err)
		require.Equal(t, 8, len(body))

		require.Equal(t, 6, body[2].LabelTrue)
		require.Equal(t, 3, body[2].LabelFalse)
		require.Equal(t, 4, body[4].LabelTrue)
		require.Equal(t, UndefinedLabel, body[4].LabelFalse)

		var depths []int
		for _, ins := range body {
			depths = append(depths, ins.Depth)
		}
		require.Equal(t, []int{0, 1, 1, 1, 2, 2, 1, 0}, depths)

		require.Equal(t, body[0], body[0].Scope)
		require.Equal(t, body[0], body[1].Scope)
		require.Equal(t, body[3], body[5].Scope)
		require.Equal(t, body[0], body[6].Scope)
		require.Equal(t, body[7], body[7].Scope)
	})
	t.Run("if else", func(t *testing.T) {
		body, err := Annotate([]Instruction{
			{Opcode: OpcodeI32Const},                               // 0
			{Opcode: OpcodeIf, Operands: []uint64{BlockTypeEmpty}}, // 1
			{Opcode: OpcodeNop},                                    // 2
			{Opcode: OpcodeElse},                                   // 3
			{Opcode: OpcodeNop},                                    // 4
			{Opcode: OpcodeEnd},                                    // 5
			{Opcode: OpcodeI32Const},                               // 6
			{Opcode: OpcodeIf, Operands: []uint64{BlockTypeEmpty}}, // 7
			{Opcode: OpcodeBr, Operands: []uint64{1}},              // 8
			{Opcode: OpcodeEnd},                                    // 9
			{Opcode: OpcodeEnd},                                    // 10
		})
		require.NoError(t, err)
		require.Equal(t, 4, body[1].LabelFalse)
		require.Equal(t, 5, body[3].LabelTrue)
		require.Equal(t, body[1], body[3].Scope)
		require.Equal(t, 1, body[3].Depth)
		require.Equal(t, 9, body[7].LabelFalse)
		require.Equal(t, 10, body[8].LabelTrue)
	})
	t.Run("br_table", func(t *testing.T) {
		body, err := Annotate([]Instruction{
			{Opcode: OpcodeBlock, Operands: []uint64{BlockTypeEmpty}}, // 0
			{Opcode: OpcodeLoop, Operands: []uint64{BlockTypeEmpty}},  // 1
			{Opcode: OpcodeI32Const},                                  // 2
			{Opcode: OpcodeBrTable, Operands: []uint64{0, 1, 2, 1}},   // 3
			{Opcode: OpcodeEnd},                                       // 4
			{Opcode: OpcodeEnd},                                       // 5
			{Opcode: OpcodeEnd},                                       // 6
		})
		require.NoError(t, err)
		require.Equal(t, []int{2, 5, 6, 5}, body[3].LabelTable)
	})
	t.Run("try_table", func(t *testing.T) {
		body, err := Annotate([]Instruction{
			{Opcode: OpcodeBlock, Operands: []uint64{BlockTypeEmpty}}, // 0
			{Opcode: OpcodeTryTable, Operands: []uint64{BlockTypeEmpty}, Catches: []Catch{ // 1
				{Kind: CatchKindCatch, Tag: 3, Label: 0},
				{Kind: CatchKindCatchAll, Label: 1},
			}},
			{Opcode: OpcodeNop}, // 2
			{Opcode: OpcodeEnd}, // 3
			{Opcode: OpcodeEnd}, // 4
			{Opcode: OpcodeEnd}, // 5
		})
		require.NoError(t, err)
		require.Equal(t, []Catch{
			{Kind: CatchKindCatch, Tag: 3, Label: 0, ResolvedLabel: 4},
			{Kind: CatchKindCatchAll, Label: 1, ResolvedLabel: 5},
		}, body[1].Catches)
		require.Equal(t, body[1], body[3].Scope)
		require.Equal(t, "try_table 64 (catch 3 0) (catch_all 1)", body[1].String())
	})
}

func TestAnnotate_Errors(t *testing.T) {
	tests := []struct {
		name   string
		input  []Instruction
		expErr string
	}{
		{
			name:   "empty",
			expErr: "malformed function body: function body must end with end",
		},
		{
			name:   "else outside of if",
			input:  []Instruction{{Opcode: OpcodeBlock}, {Opcode: OpcodeElse}, {Opcode: OpcodeEnd}, {Opcode: OpcodeEnd}},
			expErr: "malformed function body: else outside of if at 1",
		},
		{
			name:   "duplicated else",
			input:  []Instruction{{Opcode: OpcodeIf}, {Opcode: OpcodeElse}, {Opcode: OpcodeElse}, {Opcode: OpcodeEnd}, {Opcode: OpcodeEnd}},
			expErr: "malformed function body: duplicated else at 2",
		},
		{
			name:   "unclosed",
			input:  []Instruction{{Opcode: OpcodeBlock}, {Opcode: OpcodeEnd}},
			expErr: "malformed function body: 1 unclosed scopes",
		},
		{
			name:   "trailing end",
			input:  []Instruction{{Opcode: OpcodeEnd}, {Opcode: OpcodeEnd}},
			expErr: "malformed function body: unexpected end at 0",
		},
		{
			name:   "branch too deep",
			input:  []Instruction{{Opcode: OpcodeBr, Operands: []uint64{1}}, {Opcode: OpcodeEnd}},
			expErr: "malformed function body: branch depth 1 exceeds nesting 0 at 0",
		},
		{
			name:   "br_table without default",
			input:  []Instruction{{Opcode: OpcodeBrTable}, {Opcode: OpcodeEnd}},
			expErr: "malformed function body: br_table without default at 0",
		},
	}

	for _, tt := range tests {
		tc := tt
		t.Run(tc.name, func(t *testing.T) {
			_, err := Annotate(tc.input)
			require.EqualError(t, err, tc.expErr)
			require.ErrorIs(t, err, ErrMalformedBody)
		})
	}
}
