package wasm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var (
	v_v      = &FunctionType{}
	i32_i32  = &FunctionType{Params: []ValType{ValTypeI32}, Results: []ValType{ValTypeI32}}
	i64_none = &FunctionType{Params: []ValType{ValTypeI64}}
)

func TestModule_Metadata(t *testing.T) {
	m := &Module{
		Types:             []*FunctionType{v_v, i32_i32, i64_none},
		ImportedFunctions: []uint32{2},
		Functions:         []uint32{1, 0},
		ImportedGlobals:   []ValType{ValTypeF32},
		Globals:           []ValType{ValTypeI64},
		ImportedTables:    []ValType{ValTypeExternref},
		Tables:            []ValType{ValTypeFuncref},
		Tags:              []uint32{2},
		Codes:             []*FunctionBody{{}, {}},
	}

	md, err := m.Metadata()
	require.NoError(t, err)
	require.Equal(t, []*FunctionType{i64_none, i32_i32, v_v}, md.FunctionTypes)
	require.Equal(t, []ValType{ValTypeF32, ValTypeI64}, md.GlobalTypes)
	require.Equal(t, []ValType{ValTypeExternref, ValTypeFuncref}, md.TableTypes)
	require.Equal(t, []*FunctionType{i64_none}, md.TagTypes)
	require.Equal(t, uint32(1), md.ImportedFunctionCount)

	ft, err := md.Function(1)
	require.NoError(t, err)
	require.Equal(t, i32_i32, ft)

	gt, err := md.Global(1)
	require.NoError(t, err)
	require.Equal(t, ValTypeI64, gt)

	tt, err := md.Table(0)
	require.NoError(t, err)
	require.Equal(t, ValTypeExternref, tt)

	tag, err := md.Tag(0)
	require.NoError(t, err)
	require.Equal(t, i64_none, tag)

	_, err = md.Function(3)
	require.ErrorIs(t, err, ErrInvalidIndex)
	_, err = md.Global(2)
	require.ErrorIs(t, err, ErrInvalidIndex)
	_, err = md.Table(2)
	require.ErrorIs(t, err, ErrInvalidIndex)
	_, err = md.Tag(1)
	require.ErrorIs(t, err, ErrInvalidIndex)
}

func TestModule_Metadata_Errors(t *testing.T) {
	t.Run("inconsistent code section", func(t *testing.T) {
		_, err := (&Module{Functions: []uint32{0}}).Metadata()
		require.EqualError(t, err, "function and code section have inconsistent lengths: 1 != 0")
	})
	t.Run("invalid function type", func(t *testing.T) {
		_, err := (&Module{Types: []*FunctionType{v_v}, ImportedFunctions: []uint32{1}}).Metadata()
		require.EqualError(t, err, "imported function[0]: invalid index: type 1 out of range (1)")
	})
	t.Run("invalid tag type", func(t *testing.T) {
		_, err := (&Module{Tags: []uint32{0}}).Metadata()
		require.EqualError(t, err, "tag[0]: invalid index: type 0 out of range (0)")
	})
}

func TestMetadata_BlockType(t *testing.T) {
	md := &Metadata{Types: []*FunctionType{v_v, i32_i32}}

	tests := []struct {
		name     string
		input    uint64
		expected *FunctionType
		expErr   string
	}{
		{name: "empty", input: BlockTypeEmpty, expected: v_v},
		{name: "i32", input: BlockTypeValue(ValTypeI32), expected: &FunctionType{Results: []ValType{ValTypeI32}}},
		{name: "funcref", input: BlockTypeValue(ValTypeFuncref), expected: &FunctionType{Results: []ValType{ValTypeFuncref}}},
		{name: "type index 0", input: BlockTypeIndex(0), expected: v_v},
		{name: "type index 1", input: BlockTypeIndex(1), expected: i32_i32},
		{name: "type index out of range", input: BlockTypeIndex(2), expErr: "invalid index: type 2 out of range (2)"},
		{name: "invalid", input: 0x01, expErr: "invalid block type: 0x1"},
	}

	for _, tt := range tests {
		tc := tt
		t.Run(tc.name, func(t *testing.T) {
			actual, err := md.BlockType(tc.input)
			if tc.expErr != "" {
				require.EqualError(t, err, tc.expErr)
			} else {
				require.NoError(t, err)
				require.Equal(t, tc.expected, actual)
			}
		})
	}
}
