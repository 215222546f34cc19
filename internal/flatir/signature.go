package flatir

import (
	"fmt"

	"github.com/flatwasm/flatwasm/internal/wasm"
)

// signature represents how a Wasm opcode
// manipulates the value stacks in terms of value types.
type signature struct {
	in, out []wasm.ValType
}

var (
	signature_None_None = &signature{}
	signature_None_F32  = &signature{
		out: []wasm.ValType{wasm.ValTypeF32},
	}
	signature_None_F64 = &signature{
		out: []wasm.ValType{wasm.ValTypeF64},
	}
	signature_None_Funcref = &signature{
		out: []wasm.ValType{wasm.ValTypeFuncref},
	}
	signature_None_I32 = &signature{
		out: []wasm.ValType{wasm.ValTypeI32},
	}
	signature_None_I64 = &signature{
		out: []wasm.ValType{wasm.ValTypeI64},
	}
	signature_None_V128 = &signature{
		out: []wasm.ValType{wasm.ValTypeV128},
	}
	signature_Exnref_None = &signature{
		in: []wasm.ValType{wasm.ValTypeExnref},
	}
	signature_F32_F32 = &signature{
		in:  []wasm.ValType{wasm.ValTypeF32},
		out: []wasm.ValType{wasm.ValTypeF32},
	}
	signature_F32_F64 = &signature{
		in:  []wasm.ValType{wasm.ValTypeF32},
		out: []wasm.ValType{wasm.ValTypeF64},
	}
	signature_F32_I32 = &signature{
		in:  []wasm.ValType{wasm.ValTypeF32},
		out: []wasm.ValType{wasm.ValTypeI32},
	}
	signature_F32_I64 = &signature{
		in:  []wasm.ValType{wasm.ValTypeF32},
		out: []wasm.ValType{wasm.ValTypeI64},
	}
	signature_F32_V128 = &signature{
		in:  []wasm.ValType{wasm.ValTypeF32},
		out: []wasm.ValType{wasm.ValTypeV128},
	}
	signature_F64_F32 = &signature{
		in:  []wasm.ValType{wasm.ValTypeF64},
		out: []wasm.ValType{wasm.ValTypeF32},
	}
	signature_F64_F64 = &signature{
		in:  []wasm.ValType{wasm.ValTypeF64},
		out: []wasm.ValType{wasm.ValTypeF64},
	}
	signature_F64_I32 = &signature{
		in:  []wasm.ValType{wasm.ValTypeF64},
		out: []wasm.ValType{wasm.ValTypeI32},
	}
	signature_F64_I64 = &signature{
		in:  []wasm.ValType{wasm.ValTypeF64},
		out: []wasm.ValType{wasm.ValTypeI64},
	}
	signature_F64_V128 = &signature{
		in:  []wasm.ValType{wasm.ValTypeF64},
		out: []wasm.ValType{wasm.ValTypeV128},
	}
	signature_I32_F32 = &signature{
		in:  []wasm.ValType{wasm.ValTypeI32},
		out: []wasm.ValType{wasm.ValTypeF32},
	}
	signature_I32_F64 = &signature{
		in:  []wasm.ValType{wasm.ValTypeI32},
		out: []wasm.ValType{wasm.ValTypeF64},
	}
	signature_I32_I32 = &signature{
		in:  []wasm.ValType{wasm.ValTypeI32},
		out: []wasm.ValType{wasm.ValTypeI32},
	}
	signature_I32_I64 = &signature{
		in:  []wasm.ValType{wasm.ValTypeI32},
		out: []wasm.ValType{wasm.ValTypeI64},
	}
	signature_I32_None = &signature{
		in: []wasm.ValType{wasm.ValTypeI32},
	}
	signature_I32_V128 = &signature{
		in:  []wasm.ValType{wasm.ValTypeI32},
		out: []wasm.ValType{wasm.ValTypeV128},
	}
	signature_I64_F32 = &signature{
		in:  []wasm.ValType{wasm.ValTypeI64},
		out: []wasm.ValType{wasm.ValTypeF32},
	}
	signature_I64_F64 = &signature{
		in:  []wasm.ValType{wasm.ValTypeI64},
		out: []wasm.ValType{wasm.ValTypeF64},
	}
	signature_I64_I32 = &signature{
		in:  []wasm.ValType{wasm.ValTypeI64},
		out: []wasm.ValType{wasm.ValTypeI32},
	}
	signature_I64_I64 = &signature{
		in:  []wasm.ValType{wasm.ValTypeI64},
		out: []wasm.ValType{wasm.ValTypeI64},
	}
	signature_I64_V128 = &signature{
		in:  []wasm.ValType{wasm.ValTypeI64},
		out: []wasm.ValType{wasm.ValTypeV128},
	}
	signature_V128_F32 = &signature{
		in:  []wasm.ValType{wasm.ValTypeV128},
		out: []wasm.ValType{wasm.ValTypeF32},
	}
	signature_V128_F64 = &signature{
		in:  []wasm.ValType{wasm.ValTypeV128},
		out: []wasm.ValType{wasm.ValTypeF64},
	}
	signature_V128_I32 = &signature{
		in:  []wasm.ValType{wasm.ValTypeV128},
		out: []wasm.ValType{wasm.ValTypeI32},
	}
	signature_V128_I64 = &signature{
		in:  []wasm.ValType{wasm.ValTypeV128},
		out: []wasm.ValType{wasm.ValTypeI64},
	}
	signature_V128_V128 = &signature{
		in:  []wasm.ValType{wasm.ValTypeV128},
		out: []wasm.ValType{wasm.ValTypeV128},
	}
	signature_F32F32_F32 = &signature{
		in:  []wasm.ValType{wasm.ValTypeF32, wasm.ValTypeF32},
		out: []wasm.ValType{wasm.ValTypeF32},
	}
	signature_F32F32_I32 = &signature{
		in:  []wasm.ValType{wasm.ValTypeF32, wasm.ValTypeF32},
		out: []wasm.ValType{wasm.ValTypeI32},
	}
	signature_F64F64_F64 = &signature{
		in:  []wasm.ValType{wasm.ValTypeF64, wasm.ValTypeF64},
		out: []wasm.ValType{wasm.ValTypeF64},
	}
	signature_F64F64_I32 = &signature{
		in:  []wasm.ValType{wasm.ValTypeF64, wasm.ValTypeF64},
		out: []wasm.ValType{wasm.ValTypeI32},
	}
	signature_I32F32_None = &signature{
		in: []wasm.ValType{wasm.ValTypeI32, wasm.ValTypeF32},
	}
	signature_I32F64_None = &signature{
		in: []wasm.ValType{wasm.ValTypeI32, wasm.ValTypeF64},
	}
	signature_I32I32_I32 = &signature{
		in:  []wasm.ValType{wasm.ValTypeI32, wasm.ValTypeI32},
		out: []wasm.ValType{wasm.ValTypeI32},
	}
	signature_I32I32_None = &signature{
		in: []wasm.ValType{wasm.ValTypeI32, wasm.ValTypeI32},
	}
	signature_I32I64_I64 = &signature{
		in:  []wasm.ValType{wasm.ValTypeI32, wasm.ValTypeI64},
		out: []wasm.ValType{wasm.ValTypeI64},
	}
	signature_I32I64_None = &signature{
		in: []wasm.ValType{wasm.ValTypeI32, wasm.ValTypeI64},
	}
	signature_I32V128_None = &signature{
		in: []wasm.ValType{wasm.ValTypeI32, wasm.ValTypeV128},
	}
	signature_I32V128_V128 = &signature{
		in:  []wasm.ValType{wasm.ValTypeI32, wasm.ValTypeV128},
		out: []wasm.ValType{wasm.ValTypeV128},
	}
	signature_I64I64_I32 = &signature{
		in:  []wasm.ValType{wasm.ValTypeI64, wasm.ValTypeI64},
		out: []wasm.ValType{wasm.ValTypeI32},
	}
	signature_I64I64_I64 = &signature{
		in:  []wasm.ValType{wasm.ValTypeI64, wasm.ValTypeI64},
		out: []wasm.ValType{wasm.ValTypeI64},
	}
	signature_V128F32_V128 = &signature{
		in:  []wasm.ValType{wasm.ValTypeV128, wasm.ValTypeF32},
		out: []wasm.ValType{wasm.ValTypeV128},
	}
	signature_V128F64_V128 = &signature{
		in:  []wasm.ValType{wasm.ValTypeV128, wasm.ValTypeF64},
		out: []wasm.ValType{wasm.ValTypeV128},
	}
	signature_V128I32_V128 = &signature{
		in:  []wasm.ValType{wasm.ValTypeV128, wasm.ValTypeI32},
		out: []wasm.ValType{wasm.ValTypeV128},
	}
	signature_V128I64_V128 = &signature{
		in:  []wasm.ValType{wasm.ValTypeV128, wasm.ValTypeI64},
		out: []wasm.ValType{wasm.ValTypeV128},
	}
	signature_V128V128_V128 = &signature{
		in:  []wasm.ValType{wasm.ValTypeV128, wasm.ValTypeV128},
		out: []wasm.ValType{wasm.ValTypeV128},
	}
	signature_I32I32I32_I32 = &signature{
		in:  []wasm.ValType{wasm.ValTypeI32, wasm.ValTypeI32, wasm.ValTypeI32},
		out: []wasm.ValType{wasm.ValTypeI32},
	}
	signature_I32I32I32_None = &signature{
		in: []wasm.ValType{wasm.ValTypeI32, wasm.ValTypeI32, wasm.ValTypeI32},
	}
	signature_I32I32I64_I32 = &signature{
		in:  []wasm.ValType{wasm.ValTypeI32, wasm.ValTypeI32, wasm.ValTypeI64},
		out: []wasm.ValType{wasm.ValTypeI32},
	}
	signature_I32I64I64_I32 = &signature{
		in:  []wasm.ValType{wasm.ValTypeI32, wasm.ValTypeI64, wasm.ValTypeI64},
		out: []wasm.ValType{wasm.ValTypeI32},
	}
	signature_I32I64I64_I64 = &signature{
		in:  []wasm.ValType{wasm.ValTypeI32, wasm.ValTypeI64, wasm.ValTypeI64},
		out: []wasm.ValType{wasm.ValTypeI64},
	}
	signature_V128V128V128_V128 = &signature{
		in:  []wasm.ValType{wasm.ValTypeV128, wasm.ValTypeV128, wasm.ValTypeV128},
		out: []wasm.ValType{wasm.ValTypeV128},
	}
)

// wasmOpcodeSignature returns the signature of given Wasm opcode.
// Note that some of opcodes' signature vary depending on
// the function instance (for example, local types, global types, table element types
// and function signatures), and the current top of the operand-type stack for drop and select.
//
// Structured instructions report their stack effect outside of the scope operations:
// for example, if pops its condition and br_if pops the i32 it is conditioned on.
func (c *compiler) wasmOpcodeSignature(ins *wasm.AnnotatedInstruction) (*signature, error) {
	switch op := ins.Opcode; op {
	case wasm.OpcodeCall, wasm.OpcodeReturnCall:
		ft, err := c.meta.Function(uint32(ins.Operand(0)))
		if err != nil {
			return nil, err
		}
		return &signature{in: ft.Params, out: ft.Results}, nil
	case wasm.OpcodeCallIndirect, wasm.OpcodeReturnCallIndirect:
		ft, err := c.meta.Type(uint32(ins.Operand(0)))
		if err != nil {
			return nil, err
		}
		return &signature{in: appendValType(ft.Params, wasm.ValTypeI32), out: ft.Results}, nil
	case wasm.OpcodeCallRef, wasm.OpcodeReturnCallRef:
		typeIndex := uint32(ins.Operand(0))
		ft, err := c.meta.Type(typeIndex)
		if err != nil {
			return nil, err
		}
		ref := wasm.RefType(true, wasm.HeapTypeIndex(typeIndex))
		return &signature{in: appendValType(ft.Params, ref), out: ft.Results}, nil
	case wasm.OpcodeThrow:
		ft, err := c.meta.Tag(uint32(ins.Operand(0)))
		if err != nil {
			return nil, err
		}
		return &signature{in: ft.Params}, nil
	case wasm.OpcodeThrowRef:
		return signature_Exnref_None, nil
	case wasm.OpcodeDrop:
		t, err := c.stack.peek()
		if err != nil {
			return nil, err
		}
		return &signature{in: []wasm.ValType{t}}, nil
	case wasm.OpcodeSelect:
		t, err := c.stack.peekAt(1)
		if err != nil {
			return nil, err
		}
		return &signature{in: []wasm.ValType{t, t, wasm.ValTypeI32}, out: []wasm.ValType{t}}, nil
	case wasm.OpcodeSelectT:
		t := wasm.ValType(ins.Operand(0))
		return &signature{in: []wasm.ValType{t, t, wasm.ValTypeI32}, out: []wasm.ValType{t}}, nil
	case wasm.OpcodeLocalGet, wasm.OpcodeLocalSet, wasm.OpcodeLocalTee:
		t, err := c.localType(uint32(ins.Operand(0)))
		if err != nil {
			return nil, err
		}
		switch op {
		case wasm.OpcodeLocalGet:
			return &signature{out: []wasm.ValType{t}}, nil
		case wasm.OpcodeLocalSet:
			return &signature{in: []wasm.ValType{t}}, nil
		default:
			return &signature{in: []wasm.ValType{t}, out: []wasm.ValType{t}}, nil
		}
	case wasm.OpcodeGlobalGet, wasm.OpcodeGlobalSet:
		t, err := c.meta.Global(uint32(ins.Operand(0)))
		if err != nil {
			return nil, err
		}
		if op == wasm.OpcodeGlobalGet {
			return &signature{out: []wasm.ValType{t}}, nil
		}
		return &signature{in: []wasm.ValType{t}}, nil
	case wasm.OpcodeTableGet, wasm.OpcodeTableSet, wasm.OpcodeMiscTableGrow, wasm.OpcodeMiscTableFill:
		t, err := c.meta.Table(uint32(ins.Operand(0)))
		if err != nil {
			return nil, err
		}
		switch op {
		case wasm.OpcodeTableGet:
			// [i32] -> [t]
			return &signature{in: []wasm.ValType{wasm.ValTypeI32}, out: []wasm.ValType{t}}, nil
		case wasm.OpcodeTableSet:
			// [i32 t] -> []
			return &signature{in: []wasm.ValType{wasm.ValTypeI32, t}}, nil
		case wasm.OpcodeMiscTableGrow:
			// [t i32] -> [i32]
			return &signature{in: []wasm.ValType{t, wasm.ValTypeI32}, out: []wasm.ValType{wasm.ValTypeI32}}, nil
		default:
			// [i32 t i32] -> []
			return &signature{in: []wasm.ValType{wasm.ValTypeI32, t, wasm.ValTypeI32}}, nil
		}
	case wasm.OpcodeRefNull:
		return &signature{out: []wasm.ValType{wasm.RefType(true, wasm.HeapType(ins.Operand(0)))}}, nil
	case wasm.OpcodeRefIsNull:
		t, err := c.stack.peek()
		if err != nil {
			return nil, err
		}
		if !t.IsReference() {
			return nil, fmt.Errorf("%w: expected a reference but was %s", ErrTypeMismatch, t)
		}
		return &signature{in: []wasm.ValType{t}, out: []wasm.ValType{wasm.ValTypeI32}}, nil
	case wasm.OpcodeUnreachable, wasm.OpcodeNop, wasm.OpcodeBlock, wasm.OpcodeLoop, wasm.OpcodeElse, wasm.OpcodeEnd, wasm.OpcodeBr, wasm.OpcodeReturn,
		wasm.OpcodeTryTable, wasm.OpcodeMiscDataDrop, wasm.OpcodeMiscElemDrop, wasm.OpcodeAtomicFence:
		return signature_None_None, nil
	case wasm.OpcodeIf, wasm.OpcodeBrIf, wasm.OpcodeBrTable:
		return signature_I32_None, nil
	case wasm.OpcodeI32Load, wasm.OpcodeI32Load8S, wasm.OpcodeI32Load8U, wasm.OpcodeI32Load16S, wasm.OpcodeI32Load16U, wasm.OpcodeMemoryGrow,
		wasm.OpcodeI32Eqz, wasm.OpcodeI32Clz, wasm.OpcodeI32Ctz, wasm.OpcodeI32Popcnt, wasm.OpcodeI32Extend8S, wasm.OpcodeI32Extend16S,
		wasm.OpcodeAtomicI32Load, wasm.OpcodeAtomicI32Load8U, wasm.OpcodeAtomicI32Load16U:
		return signature_I32_I32, nil
	case wasm.OpcodeI64Load, wasm.OpcodeI64Load8S, wasm.OpcodeI64Load8U, wasm.OpcodeI64Load16S, wasm.OpcodeI64Load16U, wasm.OpcodeI64Load32S,
		wasm.OpcodeI64Load32U, wasm.OpcodeI64ExtendI32S, wasm.OpcodeI64ExtendI32U, wasm.OpcodeAtomicI64Load, wasm.OpcodeAtomicI64Load8U,
		wasm.OpcodeAtomicI64Load16U, wasm.OpcodeAtomicI64Load32U:
		return signature_I32_I64, nil
	case wasm.OpcodeF32Load, wasm.OpcodeF32ConvertI32S, wasm.OpcodeF32ConvertI32U, wasm.OpcodeF32ReinterpretI32:
		return signature_I32_F32, nil
	case wasm.OpcodeF64Load, wasm.OpcodeF64ConvertI32S, wasm.OpcodeF64ConvertI32U:
		return signature_I32_F64, nil
	case wasm.OpcodeI32Store, wasm.OpcodeI32Store8, wasm.OpcodeI32Store16, wasm.OpcodeAtomicI32Store, wasm.OpcodeAtomicI32Store8,
		wasm.OpcodeAtomicI32Store16:
		return signature_I32I32_None, nil
	case wasm.OpcodeI64Store, wasm.OpcodeI64Store8, wasm.OpcodeI64Store16, wasm.OpcodeI64Store32, wasm.OpcodeAtomicI64Store,
		wasm.OpcodeAtomicI64Store8, wasm.OpcodeAtomicI64Store16, wasm.OpcodeAtomicI64Store32:
		return signature_I32I64_None, nil
	case wasm.OpcodeF32Store:
		return signature_I32F32_None, nil
	case wasm.OpcodeF64Store:
		return signature_I32F64_None, nil
	case wasm.OpcodeMemorySize, wasm.OpcodeI32Const, wasm.OpcodeMiscTableSize:
		return signature_None_I32, nil
	case wasm.OpcodeI64Const:
		return signature_None_I64, nil
	case wasm.OpcodeF32Const:
		return signature_None_F32, nil
	case wasm.OpcodeF64Const:
		return signature_None_F64, nil
	case wasm.OpcodeI32Eq, wasm.OpcodeI32Ne, wasm.OpcodeI32LtS, wasm.OpcodeI32LtU, wasm.OpcodeI32GtS, wasm.OpcodeI32GtU, wasm.OpcodeI32LeS, wasm.OpcodeI32LeU,
		wasm.OpcodeI32GeS, wasm.OpcodeI32GeU, wasm.OpcodeI32Add, wasm.OpcodeI32Sub, wasm.OpcodeI32Mul, wasm.OpcodeI32DivS, wasm.OpcodeI32DivU,
		wasm.OpcodeI32RemS, wasm.OpcodeI32RemU, wasm.OpcodeI32And, wasm.OpcodeI32Or, wasm.OpcodeI32Xor, wasm.OpcodeI32Shl, wasm.OpcodeI32ShrS,
		wasm.OpcodeI32ShrU, wasm.OpcodeI32Rotl, wasm.OpcodeI32Rotr, wasm.OpcodeAtomicMemoryNotify, wasm.OpcodeAtomicI32RmwAdd,
		wasm.OpcodeAtomicI32Rmw8AddU, wasm.OpcodeAtomicI32Rmw16AddU, wasm.OpcodeAtomicI32RmwSub, wasm.OpcodeAtomicI32Rmw8SubU,
		wasm.OpcodeAtomicI32Rmw16SubU, wasm.OpcodeAtomicI32RmwAnd, wasm.OpcodeAtomicI32Rmw8AndU, wasm.OpcodeAtomicI32Rmw16AndU,
		wasm.OpcodeAtomicI32RmwOr, wasm.OpcodeAtomicI32Rmw8OrU, wasm.OpcodeAtomicI32Rmw16OrU, wasm.OpcodeAtomicI32RmwXor,
		wasm.OpcodeAtomicI32Rmw8XorU, wasm.OpcodeAtomicI32Rmw16XorU, wasm.OpcodeAtomicI32RmwXchg, wasm.OpcodeAtomicI32Rmw8XchgU,
		wasm.OpcodeAtomicI32Rmw16XchgU:
		return signature_I32I32_I32, nil
	case wasm.OpcodeI64Eqz, wasm.OpcodeI32WrapI64:
		return signature_I64_I32, nil
	case wasm.OpcodeI64Eq, wasm.OpcodeI64Ne, wasm.OpcodeI64LtS, wasm.OpcodeI64LtU, wasm.OpcodeI64GtS, wasm.OpcodeI64GtU, wasm.OpcodeI64LeS, wasm.OpcodeI64LeU,
		wasm.OpcodeI64GeS, wasm.OpcodeI64GeU:
		return signature_I64I64_I32, nil
	case wasm.OpcodeF32Eq, wasm.OpcodeF32Ne, wasm.OpcodeF32Lt, wasm.OpcodeF32Gt, wasm.OpcodeF32Le, wasm.OpcodeF32Ge:
		return signature_F32F32_I32, nil
	case wasm.OpcodeF64Eq, wasm.OpcodeF64Ne, wasm.OpcodeF64Lt, wasm.OpcodeF64Gt, wasm.OpcodeF64Le, wasm.OpcodeF64Ge:
		return signature_F64F64_I32, nil
	case wasm.OpcodeI64Clz, wasm.OpcodeI64Ctz, wasm.OpcodeI64Popcnt, wasm.OpcodeI64Extend8S, wasm.OpcodeI64Extend16S, wasm.OpcodeI64Extend32S:
		return signature_I64_I64, nil
	case wasm.OpcodeI64Add, wasm.OpcodeI64Sub, wasm.OpcodeI64Mul, wasm.OpcodeI64DivS, wasm.OpcodeI64DivU, wasm.OpcodeI64RemS, wasm.OpcodeI64RemU,
		wasm.OpcodeI64And, wasm.OpcodeI64Or, wasm.OpcodeI64Xor, wasm.OpcodeI64Shl, wasm.OpcodeI64ShrS, wasm.OpcodeI64ShrU, wasm.OpcodeI64Rotl,
		wasm.OpcodeI64Rotr:
		return signature_I64I64_I64, nil
	case wasm.OpcodeF32Abs, wasm.OpcodeF32Neg, wasm.OpcodeF32Ceil, wasm.OpcodeF32Floor, wasm.OpcodeF32Trunc, wasm.OpcodeF32Nearest, wasm.OpcodeF32Sqrt:
		return signature_F32_F32, nil
	case wasm.OpcodeF32Add, wasm.OpcodeF32Sub, wasm.OpcodeF32Mul, wasm.OpcodeF32Div, wasm.OpcodeF32Min, wasm.OpcodeF32Max, wasm.OpcodeF32Copysign:
		return signature_F32F32_F32, nil
	case wasm.OpcodeF64Abs, wasm.OpcodeF64Neg, wasm.OpcodeF64Ceil, wasm.OpcodeF64Floor, wasm.OpcodeF64Trunc, wasm.OpcodeF64Nearest, wasm.OpcodeF64Sqrt:
		return signature_F64_F64, nil
	case wasm.OpcodeF64Add, wasm.OpcodeF64Sub, wasm.OpcodeF64Mul, wasm.OpcodeF64Div, wasm.OpcodeF64Min, wasm.OpcodeF64Max, wasm.OpcodeF64Copysign:
		return signature_F64F64_F64, nil
	case wasm.OpcodeI32TruncF32S, wasm.OpcodeI32TruncF32U, wasm.OpcodeI32ReinterpretF32, wasm.OpcodeMiscI32TruncSatF32S,
		wasm.OpcodeMiscI32TruncSatF32U:
		return signature_F32_I32, nil
	case wasm.OpcodeI32TruncF64S, wasm.OpcodeI32TruncF64U, wasm.OpcodeMiscI32TruncSatF64S, wasm.OpcodeMiscI32TruncSatF64U:
		return signature_F64_I32, nil
	case wasm.OpcodeI64TruncF32S, wasm.OpcodeI64TruncF32U, wasm.OpcodeMiscI64TruncSatF32S, wasm.OpcodeMiscI64TruncSatF32U:
		return signature_F32_I64, nil
	case wasm.OpcodeI64TruncF64S, wasm.OpcodeI64TruncF64U, wasm.OpcodeI64ReinterpretF64, wasm.OpcodeMiscI64TruncSatF64S,
		wasm.OpcodeMiscI64TruncSatF64U:
		return signature_F64_I64, nil
	case wasm.OpcodeF32ConvertI64S, wasm.OpcodeF32ConvertI64U:
		return signature_I64_F32, nil
	case wasm.OpcodeF32DemoteF64:
		return signature_F64_F32, nil
	case wasm.OpcodeF64ConvertI64S, wasm.OpcodeF64ConvertI64U, wasm.OpcodeF64ReinterpretI64:
		return signature_I64_F64, nil
	case wasm.OpcodeF64PromoteF32:
		return signature_F32_F64, nil
	case wasm.OpcodeRefFunc:
		return signature_None_Funcref, nil
	case wasm.OpcodeMiscMemoryInit, wasm.OpcodeMiscMemoryCopy, wasm.OpcodeMiscMemoryFill, wasm.OpcodeMiscTableInit, wasm.OpcodeMiscTableCopy:
		return signature_I32I32I32_None, nil
	case wasm.OpcodeVecV128Load, wasm.OpcodeVecV128Load8x8S, wasm.OpcodeVecV128Load8x8U, wasm.OpcodeVecV128Load16x4S,
		wasm.OpcodeVecV128Load16x4U, wasm.OpcodeVecV128Load32x2S, wasm.OpcodeVecV128Load32x2U, wasm.OpcodeVecV128Load8Splat,
		wasm.OpcodeVecV128Load16Splat, wasm.OpcodeVecV128Load32Splat, wasm.OpcodeVecV128Load64Splat, wasm.OpcodeVecI8x16Splat,
		wasm.OpcodeVecI16x8Splat, wasm.OpcodeVecI32x4Splat, wasm.OpcodeVecV128Load32Zero, wasm.OpcodeVecV128Load64Zero:
		return signature_I32_V128, nil
	case wasm.OpcodeVecV128Store, wasm.OpcodeVecV128Store8Lane, wasm.OpcodeVecV128Store16Lane, wasm.OpcodeVecV128Store32Lane,
		wasm.OpcodeVecV128Store64Lane:
		return signature_I32V128_None, nil
	case wasm.OpcodeVecV128Const:
		return signature_None_V128, nil
	case wasm.OpcodeVecI8x16Shuffle, wasm.OpcodeVecI8x16Swizzle, wasm.OpcodeVecI8x16Eq, wasm.OpcodeVecI8x16Ne, wasm.OpcodeVecI8x16LtS,
		wasm.OpcodeVecI8x16LtU, wasm.OpcodeVecI8x16GtS, wasm.OpcodeVecI8x16GtU, wasm.OpcodeVecI8x16LeS, wasm.OpcodeVecI8x16LeU,
		wasm.OpcodeVecI8x16GeS, wasm.OpcodeVecI8x16GeU, wasm.OpcodeVecI16x8Eq, wasm.OpcodeVecI16x8Ne, wasm.OpcodeVecI16x8LtS,
		wasm.OpcodeVecI16x8LtU, wasm.OpcodeVecI16x8GtS, wasm.OpcodeVecI16x8GtU, wasm.OpcodeVecI16x8LeS, wasm.OpcodeVecI16x8LeU,
		wasm.OpcodeVecI16x8GeS, wasm.OpcodeVecI16x8GeU, wasm.OpcodeVecI32x4Eq, wasm.OpcodeVecI32x4Ne, wasm.OpcodeVecI32x4LtS,
		wasm.OpcodeVecI32x4LtU, wasm.OpcodeVecI32x4GtS, wasm.OpcodeVecI32x4GtU, wasm.OpcodeVecI32x4LeS, wasm.OpcodeVecI32x4LeU,
		wasm.OpcodeVecI32x4GeS, wasm.OpcodeVecI32x4GeU, wasm.OpcodeVecF32x4Eq, wasm.OpcodeVecF32x4Ne, wasm.OpcodeVecF32x4Lt, wasm.OpcodeVecF32x4Gt,
		wasm.OpcodeVecF32x4Le, wasm.OpcodeVecF32x4Ge, wasm.OpcodeVecF64x2Eq, wasm.OpcodeVecF64x2Ne, wasm.OpcodeVecF64x2Lt, wasm.OpcodeVecF64x2Gt,
		wasm.OpcodeVecF64x2Le, wasm.OpcodeVecF64x2Ge, wasm.OpcodeVecV128And, wasm.OpcodeVecV128Andnot, wasm.OpcodeVecV128Or, wasm.OpcodeVecV128Xor,
		wasm.OpcodeVecI8x16NarrowI16x8S, wasm.OpcodeVecI8x16NarrowI16x8U, wasm.OpcodeVecI8x16Add, wasm.OpcodeVecI8x16AddSatS,
		wasm.OpcodeVecI8x16AddSatU, wasm.OpcodeVecI8x16Sub, wasm.OpcodeVecI8x16SubSatS, wasm.OpcodeVecI8x16SubSatU, wasm.OpcodeVecI8x16MinS,
		wasm.OpcodeVecI8x16MinU, wasm.OpcodeVecI8x16MaxS, wasm.OpcodeVecI8x16MaxU, wasm.OpcodeVecI8x16AvgrU, wasm.OpcodeVecI16x8Q15mulrSatS,
		wasm.OpcodeVecI16x8NarrowI32x4S, wasm.OpcodeVecI16x8NarrowI32x4U, wasm.OpcodeVecI16x8Add, wasm.OpcodeVecI16x8AddSatS,
		wasm.OpcodeVecI16x8AddSatU, wasm.OpcodeVecI16x8Sub, wasm.OpcodeVecI16x8SubSatS, wasm.OpcodeVecI16x8SubSatU, wasm.OpcodeVecI16x8Mul,
		wasm.OpcodeVecI16x8MinS, wasm.OpcodeVecI16x8MinU, wasm.OpcodeVecI16x8MaxS, wasm.OpcodeVecI16x8MaxU, wasm.OpcodeVecI16x8AvgrU,
		wasm.OpcodeVecI16x8ExtmulLowI8x16S, wasm.OpcodeVecI16x8ExtmulHighI8x16S, wasm.OpcodeVecI16x8ExtmulLowI8x16U,
		wasm.OpcodeVecI16x8ExtmulHighI8x16U, wasm.OpcodeVecI32x4Add, wasm.OpcodeVecI32x4Sub, wasm.OpcodeVecI32x4Mul, wasm.OpcodeVecI32x4MinS,
		wasm.OpcodeVecI32x4MinU, wasm.OpcodeVecI32x4MaxS, wasm.OpcodeVecI32x4MaxU, wasm.OpcodeVecI32x4DotI16x8S,
		wasm.OpcodeVecI32x4ExtmulLowI16x8S, wasm.OpcodeVecI32x4ExtmulHighI16x8S, wasm.OpcodeVecI32x4ExtmulLowI16x8U,
		wasm.OpcodeVecI32x4ExtmulHighI16x8U, wasm.OpcodeVecI64x2Add, wasm.OpcodeVecI64x2Sub, wasm.OpcodeVecI64x2Mul, wasm.OpcodeVecI64x2Eq,
		wasm.OpcodeVecI64x2Ne, wasm.OpcodeVecI64x2LtS, wasm.OpcodeVecI64x2GtS, wasm.OpcodeVecI64x2LeS, wasm.OpcodeVecI64x2GeS,
		wasm.OpcodeVecI64x2ExtmulLowI32x4S, wasm.OpcodeVecI64x2ExtmulHighI32x4S, wasm.OpcodeVecI64x2ExtmulLowI32x4U,
		wasm.OpcodeVecI64x2ExtmulHighI32x4U, wasm.OpcodeVecF32x4Add, wasm.OpcodeVecF32x4Sub, wasm.OpcodeVecF32x4Mul, wasm.OpcodeVecF32x4Div,
		wasm.OpcodeVecF32x4Min, wasm.OpcodeVecF32x4Max, wasm.OpcodeVecF32x4Pmin, wasm.OpcodeVecF32x4Pmax, wasm.OpcodeVecF64x2Add,
		wasm.OpcodeVecF64x2Sub, wasm.OpcodeVecF64x2Mul, wasm.OpcodeVecF64x2Div, wasm.OpcodeVecF64x2Min, wasm.OpcodeVecF64x2Max,
		wasm.OpcodeVecF64x2Pmin, wasm.OpcodeVecF64x2Pmax:
		return signature_V128V128_V128, nil
	case wasm.OpcodeVecI64x2Splat:
		return signature_I64_V128, nil
	case wasm.OpcodeVecF32x4Splat:
		return signature_F32_V128, nil
	case wasm.OpcodeVecF64x2Splat:
		return signature_F64_V128, nil
	case wasm.OpcodeVecI8x16ExtractLaneS, wasm.OpcodeVecI8x16ExtractLaneU, wasm.OpcodeVecI16x8ExtractLaneS,
		wasm.OpcodeVecI16x8ExtractLaneU, wasm.OpcodeVecI32x4ExtractLane, wasm.OpcodeVecV128AnyTrue, wasm.OpcodeVecI8x16AllTrue,
		wasm.OpcodeVecI8x16Bitmask, wasm.OpcodeVecI16x8AllTrue, wasm.OpcodeVecI16x8Bitmask, wasm.OpcodeVecI32x4AllTrue,
		wasm.OpcodeVecI32x4Bitmask, wasm.OpcodeVecI64x2AllTrue, wasm.OpcodeVecI64x2Bitmask:
		return signature_V128_I32, nil
	case wasm.OpcodeVecI8x16ReplaceLane, wasm.OpcodeVecI16x8ReplaceLane, wasm.OpcodeVecI32x4ReplaceLane, wasm.OpcodeVecI8x16Shl,
		wasm.OpcodeVecI8x16ShrS, wasm.OpcodeVecI8x16ShrU, wasm.OpcodeVecI16x8Shl, wasm.OpcodeVecI16x8ShrS, wasm.OpcodeVecI16x8ShrU,
		wasm.OpcodeVecI32x4Shl, wasm.OpcodeVecI32x4ShrS, wasm.OpcodeVecI32x4ShrU, wasm.OpcodeVecI64x2Shl, wasm.OpcodeVecI64x2ShrS,
		wasm.OpcodeVecI64x2ShrU:
		return signature_V128I32_V128, nil
	case wasm.OpcodeVecI64x2ExtractLane:
		return signature_V128_I64, nil
	case wasm.OpcodeVecI64x2ReplaceLane:
		return signature_V128I64_V128, nil
	case wasm.OpcodeVecF32x4ExtractLane:
		return signature_V128_F32, nil
	case wasm.OpcodeVecF32x4ReplaceLane:
		return signature_V128F32_V128, nil
	case wasm.OpcodeVecF64x2ExtractLane:
		return signature_V128_F64, nil
	case wasm.OpcodeVecF64x2ReplaceLane:
		return signature_V128F64_V128, nil
	case wasm.OpcodeVecV128Not, wasm.OpcodeVecF32x4DemoteF64x2Zero, wasm.OpcodeVecF64x2PromoteLowF32x4, wasm.OpcodeVecI8x16Abs,
		wasm.OpcodeVecI8x16Neg, wasm.OpcodeVecI8x16Popcnt, wasm.OpcodeVecF32x4Ceil, wasm.OpcodeVecF32x4Floor, wasm.OpcodeVecF32x4Trunc,
		wasm.OpcodeVecF32x4Nearest, wasm.OpcodeVecF64x2Ceil, wasm.OpcodeVecF64x2Floor, wasm.OpcodeVecF64x2Trunc,
		wasm.OpcodeVecI16x8ExtaddPairwiseI8x16S, wasm.OpcodeVecI16x8ExtaddPairwiseI8x16U, wasm.OpcodeVecI32x4ExtaddPairwiseI16x8S,
		wasm.OpcodeVecI32x4ExtaddPairwiseI16x8U, wasm.OpcodeVecI16x8Abs, wasm.OpcodeVecI16x8Neg, wasm.OpcodeVecI16x8ExtendLowI8x16S,
		wasm.OpcodeVecI16x8ExtendHighI8x16S, wasm.OpcodeVecI16x8ExtendLowI8x16U, wasm.OpcodeVecI16x8ExtendHighI8x16U,
		wasm.OpcodeVecF64x2Nearest, wasm.OpcodeVecI32x4Abs, wasm.OpcodeVecI32x4Neg, wasm.OpcodeVecI32x4ExtendLowI16x8S,
		wasm.OpcodeVecI32x4ExtendHighI16x8S, wasm.OpcodeVecI32x4ExtendLowI16x8U, wasm.OpcodeVecI32x4ExtendHighI16x8U,
		wasm.OpcodeVecI64x2Abs, wasm.OpcodeVecI64x2Neg, wasm.OpcodeVecI64x2ExtendLowI32x4S, wasm.OpcodeVecI64x2ExtendHighI32x4S,
		wasm.OpcodeVecI64x2ExtendLowI32x4U, wasm.OpcodeVecI64x2ExtendHighI32x4U, wasm.OpcodeVecF32x4Abs, wasm.OpcodeVecF32x4Neg,
		wasm.OpcodeVecF32x4Sqrt, wasm.OpcodeVecF64x2Abs, wasm.OpcodeVecF64x2Neg, wasm.OpcodeVecF64x2Sqrt, wasm.OpcodeVecI32x4TruncSatF32x4S,
		wasm.OpcodeVecI32x4TruncSatF32x4U, wasm.OpcodeVecF32x4ConvertI32x4S, wasm.OpcodeVecF32x4ConvertI32x4U,
		wasm.OpcodeVecI32x4TruncSatF64x2SZero, wasm.OpcodeVecI32x4TruncSatF64x2UZero, wasm.OpcodeVecF64x2ConvertLowI32x4S,
		wasm.OpcodeVecF64x2ConvertLowI32x4U:
		return signature_V128_V128, nil
	case wasm.OpcodeVecV128Bitselect:
		return signature_V128V128V128_V128, nil
	case wasm.OpcodeVecV128Load8Lane, wasm.OpcodeVecV128Load16Lane, wasm.OpcodeVecV128Load32Lane, wasm.OpcodeVecV128Load64Lane:
		return signature_I32V128_V128, nil
	case wasm.OpcodeAtomicMemoryWait32:
		return signature_I32I32I64_I32, nil
	case wasm.OpcodeAtomicMemoryWait64:
		return signature_I32I64I64_I32, nil
	case wasm.OpcodeAtomicI64RmwAdd, wasm.OpcodeAtomicI64Rmw8AddU, wasm.OpcodeAtomicI64Rmw16AddU, wasm.OpcodeAtomicI64Rmw32AddU,
		wasm.OpcodeAtomicI64RmwSub, wasm.OpcodeAtomicI64Rmw8SubU, wasm.OpcodeAtomicI64Rmw16SubU, wasm.OpcodeAtomicI64Rmw32SubU,
		wasm.OpcodeAtomicI64RmwAnd, wasm.OpcodeAtomicI64Rmw8AndU, wasm.OpcodeAtomicI64Rmw16AndU, wasm.OpcodeAtomicI64Rmw32AndU,
		wasm.OpcodeAtomicI64RmwOr, wasm.OpcodeAtomicI64Rmw8OrU, wasm.OpcodeAtomicI64Rmw16OrU, wasm.OpcodeAtomicI64Rmw32OrU,
		wasm.OpcodeAtomicI64RmwXor, wasm.OpcodeAtomicI64Rmw8XorU, wasm.OpcodeAtomicI64Rmw16XorU, wasm.OpcodeAtomicI64Rmw32XorU,
		wasm.OpcodeAtomicI64RmwXchg, wasm.OpcodeAtomicI64Rmw8XchgU, wasm.OpcodeAtomicI64Rmw16XchgU, wasm.OpcodeAtomicI64Rmw32XchgU:
		return signature_I32I64_I64, nil
	case wasm.OpcodeAtomicI32RmwCmpxchg, wasm.OpcodeAtomicI32Rmw8CmpxchgU, wasm.OpcodeAtomicI32Rmw16CmpxchgU:
		return signature_I32I32I32_I32, nil
	case wasm.OpcodeAtomicI64RmwCmpxchg, wasm.OpcodeAtomicI64Rmw8CmpxchgU, wasm.OpcodeAtomicI64Rmw16CmpxchgU,
		wasm.OpcodeAtomicI64Rmw32CmpxchgU:
		return signature_I32I64I64_I64, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedOpcode, wasm.InstructionName(op))
	}
}

func appendValType(types []wasm.ValType, t wasm.ValType) []wasm.ValType {
	ret := make([]wasm.ValType, 0, len(types)+1)
	return append(append(ret, types...), t)
}
