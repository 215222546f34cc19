package wasm

import (
	"fmt"
	"sort"
)

// Opcode is the opcode of an instruction. See also InstructionName
//
// Single byte opcodes have their binary value. Prefixed opcodes are encoded as
// prefix<<16 | sub-opcode, so OpcodeMiscTableGrow is 0xfc000f.
type Opcode uint32

const (
	// OpcodeMiscPrefix is the prefix of various multi-byte opcodes.
	// Introduced in WebAssembly 2.0, but first released with the non-trapping float-to-int conversions proposal.
	OpcodeMiscPrefix byte = 0xfc
	// OpcodeVecPrefix is the prefix of all vector instructions.
	OpcodeVecPrefix byte = 0xfd
	// OpcodeAtomicPrefix is the prefix of all atomic instructions of the threads proposal.
	OpcodeAtomicPrefix byte = 0xfe
)

// Prefix returns the prefix byte of a multi-byte opcode, or zero.
func (o Opcode) Prefix() byte {
	return byte(o >> 16)
}

func (o Opcode) String() string {
	return InstructionName(o)
}

const (
	// OpcodeUnreachable causes an unconditional trap.
	OpcodeUnreachable Opcode = 0x00
	// OpcodeNop does nothing
	OpcodeNop Opcode = 0x01

	// OpcodeBlock brackets a sequence of instructions. A branch instruction on a block label breaks out to after its
	// OpcodeEnd.
	OpcodeBlock Opcode = 0x02
	// OpcodeLoop brackets a sequence of instructions. A branch instruction on a loop label jumps back to the
	// beginning of its body.
	OpcodeLoop Opcode = 0x03
	// OpcodeIf brackets a sequence of instructions. When the top of the stack evaluates to 1, the block is executed.
	// Zero jumps to the optional OpcodeElse. A branch instruction on an if label breaks out to after its OpcodeEnd.
	OpcodeIf Opcode = 0x04
	// OpcodeElse brackets a sequence of instructions enclosed by an OpcodeIf. A branch instruction on a then label
	// breaks out to after the OpcodeEnd on the enclosing OpcodeIf.
	OpcodeElse Opcode = 0x05
	// OpcodeThrow raises an exception of the tag given by its immediate, taking the tag parameters from the stack.
	OpcodeThrow Opcode = 0x08
	// OpcodeThrowRef re-raises the exception referenced by the exnref on top of the stack.
	OpcodeThrowRef Opcode = 0x0a
	// OpcodeEnd terminates a control instruction OpcodeBlock, OpcodeLoop, OpcodeIf or OpcodeTryTable, or the
	// function body itself.
	OpcodeEnd Opcode = 0x0b
	// OpcodeBr is a stack-polymorphic opcode that performs an unconditional branch. A branch to a loop keeps the
	// loop parameters, any other branch keeps the results of the target block.
	OpcodeBr      Opcode = 0x0c
	OpcodeBrIf    Opcode = 0x0d
	OpcodeBrTable Opcode = 0x0e
	OpcodeReturn  Opcode = 0x0f

	OpcodeCall         Opcode = 0x10
	OpcodeCallIndirect Opcode = 0x11
	// OpcodeReturnCall is the tail call variant of OpcodeCall.
	OpcodeReturnCall Opcode = 0x12
	// OpcodeReturnCallIndirect is the tail call variant of OpcodeCallIndirect.
	OpcodeReturnCallIndirect Opcode = 0x13
	// OpcodeCallRef calls the function referenced by the typed function reference on top of the stack.
	OpcodeCallRef Opcode = 0x14
	// OpcodeReturnCallRef is the tail call variant of OpcodeCallRef.
	OpcodeReturnCallRef Opcode = 0x15

	// parametric instructions

	OpcodeDrop   Opcode = 0x1a
	OpcodeSelect Opcode = 0x1b
	// OpcodeSelectT is the select instruction with an explicit value type immediate.
	OpcodeSelectT Opcode = 0x1c
	// OpcodeTryTable brackets a sequence of instructions whose exceptions are dispatched to the branch targets
	// of its catch clauses.
	OpcodeTryTable Opcode = 0x1f

	// variable instructions

	OpcodeLocalGet  Opcode = 0x20
	OpcodeLocalSet  Opcode = 0x21
	OpcodeLocalTee  Opcode = 0x22
	OpcodeGlobalGet Opcode = 0x23
	OpcodeGlobalSet Opcode = 0x24

	// table instructions

	OpcodeTableGet Opcode = 0x25
	OpcodeTableSet Opcode = 0x26

	// memory instructions

	OpcodeI32Load    Opcode = 0x28
	OpcodeI64Load    Opcode = 0x29
	OpcodeF32Load    Opcode = 0x2a
	OpcodeF64Load    Opcode = 0x2b
	OpcodeI32Load8S  Opcode = 0x2c
	OpcodeI32Load8U  Opcode = 0x2d
	OpcodeI32Load16S Opcode = 0x2e
	OpcodeI32Load16U Opcode = 0x2f
	OpcodeI64Load8S  Opcode = 0x30
	OpcodeI64Load8U  Opcode = 0x31
	OpcodeI64Load16S Opcode = 0x32
	OpcodeI64Load16U Opcode = 0x33
	OpcodeI64Load32S Opcode = 0x34
	OpcodeI64Load32U Opcode = 0x35
	OpcodeI32Store   Opcode = 0x36
	OpcodeI64Store   Opcode = 0x37
	OpcodeF32Store   Opcode = 0x38
	OpcodeF64Store   Opcode = 0x39
	OpcodeI32Store8  Opcode = 0x3a
	OpcodeI32Store16 Opcode = 0x3b
	OpcodeI64Store8  Opcode = 0x3c
	OpcodeI64Store16 Opcode = 0x3d
	OpcodeI64Store32 Opcode = 0x3e
	OpcodeMemorySize Opcode = 0x3f
	OpcodeMemoryGrow Opcode = 0x40

	// const instructions

	OpcodeI32Const Opcode = 0x41
	OpcodeI64Const Opcode = 0x42
	OpcodeF32Const Opcode = 0x43
	OpcodeF64Const Opcode = 0x44

	// numeric instructions

	OpcodeI32Eqz            Opcode = 0x45
	OpcodeI32Eq             Opcode = 0x46
	OpcodeI32Ne             Opcode = 0x47
	OpcodeI32LtS            Opcode = 0x48
	OpcodeI32LtU            Opcode = 0x49
	OpcodeI32GtS            Opcode = 0x4a
	OpcodeI32GtU            Opcode = 0x4b
	OpcodeI32LeS            Opcode = 0x4c
	OpcodeI32LeU            Opcode = 0x4d
	OpcodeI32GeS            Opcode = 0x4e
	OpcodeI32GeU            Opcode = 0x4f
	OpcodeI64Eqz            Opcode = 0x50
	OpcodeI64Eq             Opcode = 0x51
	OpcodeI64Ne             Opcode = 0x52
	OpcodeI64LtS            Opcode = 0x53
	OpcodeI64LtU            Opcode = 0x54
	OpcodeI64GtS            Opcode = 0x55
	OpcodeI64GtU            Opcode = 0x56
	OpcodeI64LeS            Opcode = 0x57
	OpcodeI64LeU            Opcode = 0x58
	OpcodeI64GeS            Opcode = 0x59
	OpcodeI64GeU            Opcode = 0x5a
	OpcodeF32Eq             Opcode = 0x5b
	OpcodeF32Ne             Opcode = 0x5c
	OpcodeF32Lt             Opcode = 0x5d
	OpcodeF32Gt             Opcode = 0x5e
	OpcodeF32Le             Opcode = 0x5f
	OpcodeF32Ge             Opcode = 0x60
	OpcodeF64Eq             Opcode = 0x61
	OpcodeF64Ne             Opcode = 0x62
	OpcodeF64Lt             Opcode = 0x63
	OpcodeF64Gt             Opcode = 0x64
	OpcodeF64Le             Opcode = 0x65
	OpcodeF64Ge             Opcode = 0x66
	OpcodeI32Clz            Opcode = 0x67
	OpcodeI32Ctz            Opcode = 0x68
	OpcodeI32Popcnt         Opcode = 0x69
	OpcodeI32Add            Opcode = 0x6a
	OpcodeI32Sub            Opcode = 0x6b
	OpcodeI32Mul            Opcode = 0x6c
	OpcodeI32DivS           Opcode = 0x6d
	OpcodeI32DivU           Opcode = 0x6e
	OpcodeI32RemS           Opcode = 0x6f
	OpcodeI32RemU           Opcode = 0x70
	OpcodeI32And            Opcode = 0x71
	OpcodeI32Or             Opcode = 0x72
	OpcodeI32Xor            Opcode = 0x73
	OpcodeI32Shl            Opcode = 0x74
	OpcodeI32ShrS           Opcode = 0x75
	OpcodeI32ShrU           Opcode = 0x76
	OpcodeI32Rotl           Opcode = 0x77
	OpcodeI32Rotr           Opcode = 0x78
	OpcodeI64Clz            Opcode = 0x79
	OpcodeI64Ctz            Opcode = 0x7a
	OpcodeI64Popcnt         Opcode = 0x7b
	OpcodeI64Add            Opcode = 0x7c
	OpcodeI64Sub            Opcode = 0x7d
	OpcodeI64Mul            Opcode = 0x7e
	OpcodeI64DivS           Opcode = 0x7f
	OpcodeI64DivU           Opcode = 0x80
	OpcodeI64RemS           Opcode = 0x81
	OpcodeI64RemU           Opcode = 0x82
	OpcodeI64And            Opcode = 0x83
	OpcodeI64Or             Opcode = 0x84
	OpcodeI64Xor            Opcode = 0x85
	OpcodeI64Shl            Opcode = 0x86
	OpcodeI64ShrS           Opcode = 0x87
	OpcodeI64ShrU           Opcode = 0x88
	OpcodeI64Rotl           Opcode = 0x89
	OpcodeI64Rotr           Opcode = 0x8a
	OpcodeF32Abs            Opcode = 0x8b
	OpcodeF32Neg            Opcode = 0x8c
	OpcodeF32Ceil           Opcode = 0x8d
	OpcodeF32Floor          Opcode = 0x8e
	OpcodeF32Trunc          Opcode = 0x8f
	OpcodeF32Nearest        Opcode = 0x90
	OpcodeF32Sqrt           Opcode = 0x91
	OpcodeF32Add            Opcode = 0x92
	OpcodeF32Sub            Opcode = 0x93
	OpcodeF32Mul            Opcode = 0x94
	OpcodeF32Div            Opcode = 0x95
	OpcodeF32Min            Opcode = 0x96
	OpcodeF32Max            Opcode = 0x97
	OpcodeF32Copysign       Opcode = 0x98
	OpcodeF64Abs            Opcode = 0x99
	OpcodeF64Neg            Opcode = 0x9a
	OpcodeF64Ceil           Opcode = 0x9b
	OpcodeF64Floor          Opcode = 0x9c
	OpcodeF64Trunc          Opcode = 0x9d
	OpcodeF64Nearest        Opcode = 0x9e
	OpcodeF64Sqrt           Opcode = 0x9f
	OpcodeF64Add            Opcode = 0xa0
	OpcodeF64Sub            Opcode = 0xa1
	OpcodeF64Mul            Opcode = 0xa2
	OpcodeF64Div            Opcode = 0xa3
	OpcodeF64Min            Opcode = 0xa4
	OpcodeF64Max            Opcode = 0xa5
	OpcodeF64Copysign       Opcode = 0xa6
	OpcodeI32WrapI64        Opcode = 0xa7
	OpcodeI32TruncF32S      Opcode = 0xa8
	OpcodeI32TruncF32U      Opcode = 0xa9
	OpcodeI32TruncF64S      Opcode = 0xaa
	OpcodeI32TruncF64U      Opcode = 0xab
	OpcodeI64ExtendI32S     Opcode = 0xac
	OpcodeI64ExtendI32U     Opcode = 0xad
	OpcodeI64TruncF32S      Opcode = 0xae
	OpcodeI64TruncF32U      Opcode = 0xaf
	OpcodeI64TruncF64S      Opcode = 0xb0
	OpcodeI64TruncF64U      Opcode = 0xb1
	OpcodeF32ConvertI32S    Opcode = 0xb2
	OpcodeF32ConvertI32U    Opcode = 0xb3
	OpcodeF32ConvertI64S    Opcode = 0xb4
	OpcodeF32ConvertI64U    Opcode = 0xb5
	OpcodeF32DemoteF64      Opcode = 0xb6
	OpcodeF64ConvertI32S    Opcode = 0xb7
	OpcodeF64ConvertI32U    Opcode = 0xb8
	OpcodeF64ConvertI64S    Opcode = 0xb9
	OpcodeF64ConvertI64U    Opcode = 0xba
	OpcodeF64PromoteF32     Opcode = 0xbb
	OpcodeI32ReinterpretF32 Opcode = 0xbc
	OpcodeI64ReinterpretF64 Opcode = 0xbd
	OpcodeF32ReinterpretI32 Opcode = 0xbe
	OpcodeF64ReinterpretI64 Opcode = 0xbf

	// sign-extension operators

	OpcodeI32Extend8S  Opcode = 0xc0
	OpcodeI32Extend16S Opcode = 0xc1
	OpcodeI64Extend8S  Opcode = 0xc2
	OpcodeI64Extend16S Opcode = 0xc3
	OpcodeI64Extend32S Opcode = 0xc4

	// reference instructions

	OpcodeRefNull   Opcode = 0xd0
	OpcodeRefIsNull Opcode = 0xd1
	OpcodeRefFunc   Opcode = 0xd2
)

// Miscellaneous opcodes, prefixed by OpcodeMiscPrefix.
const (
	OpcodeMiscI32TruncSatF32S = Opcode(0xfc<<16 | 0x00)
	OpcodeMiscI32TruncSatF32U = Opcode(0xfc<<16 | 0x01)
	OpcodeMiscI32TruncSatF64S = Opcode(0xfc<<16 | 0x02)
	OpcodeMiscI32TruncSatF64U = Opcode(0xfc<<16 | 0x03)
	OpcodeMiscI64TruncSatF32S = Opcode(0xfc<<16 | 0x04)
	OpcodeMiscI64TruncSatF32U = Opcode(0xfc<<16 | 0x05)
	OpcodeMiscI64TruncSatF64S = Opcode(0xfc<<16 | 0x06)
	OpcodeMiscI64TruncSatF64U = Opcode(0xfc<<16 | 0x07)
	OpcodeMiscMemoryInit      = Opcode(0xfc<<16 | 0x08)
	OpcodeMiscDataDrop        = Opcode(0xfc<<16 | 0x09)
	OpcodeMiscMemoryCopy      = Opcode(0xfc<<16 | 0x0a)
	OpcodeMiscMemoryFill      = Opcode(0xfc<<16 | 0x0b)
	OpcodeMiscTableInit       = Opcode(0xfc<<16 | 0x0c)
	OpcodeMiscElemDrop        = Opcode(0xfc<<16 | 0x0d)
	OpcodeMiscTableCopy       = Opcode(0xfc<<16 | 0x0e)
	OpcodeMiscTableGrow       = Opcode(0xfc<<16 | 0x0f)
	OpcodeMiscTableSize       = Opcode(0xfc<<16 | 0x10)
	OpcodeMiscTableFill       = Opcode(0xfc<<16 | 0x11)
)

// Vector opcodes, prefixed by OpcodeVecPrefix. Only their stack effects are modeled.
const (
	OpcodeVecV128Load                  = Opcode(0xfd<<16 | 0x00)
	OpcodeVecV128Load8x8S              = Opcode(0xfd<<16 | 0x01)
	OpcodeVecV128Load8x8U              = Opcode(0xfd<<16 | 0x02)
	OpcodeVecV128Load16x4S             = Opcode(0xfd<<16 | 0x03)
	OpcodeVecV128Load16x4U             = Opcode(0xfd<<16 | 0x04)
	OpcodeVecV128Load32x2S             = Opcode(0xfd<<16 | 0x05)
	OpcodeVecV128Load32x2U             = Opcode(0xfd<<16 | 0x06)
	OpcodeVecV128Load8Splat            = Opcode(0xfd<<16 | 0x07)
	OpcodeVecV128Load16Splat           = Opcode(0xfd<<16 | 0x08)
	OpcodeVecV128Load32Splat           = Opcode(0xfd<<16 | 0x09)
	OpcodeVecV128Load64Splat           = Opcode(0xfd<<16 | 0x0a)
	OpcodeVecV128Store                 = Opcode(0xfd<<16 | 0x0b)
	OpcodeVecV128Const                 = Opcode(0xfd<<16 | 0x0c)
	OpcodeVecI8x16Shuffle              = Opcode(0xfd<<16 | 0x0d)
	OpcodeVecI8x16Swizzle              = Opcode(0xfd<<16 | 0x0e)
	OpcodeVecI8x16Splat                = Opcode(0xfd<<16 | 0x0f)
	OpcodeVecI16x8Splat                = Opcode(0xfd<<16 | 0x10)
	OpcodeVecI32x4Splat                = Opcode(0xfd<<16 | 0x11)
	OpcodeVecI64x2Splat                = Opcode(0xfd<<16 | 0x12)
	OpcodeVecF32x4Splat                = Opcode(0xfd<<16 | 0x13)
	OpcodeVecF64x2Splat                = Opcode(0xfd<<16 | 0x14)
	OpcodeVecI8x16ExtractLaneS         = Opcode(0xfd<<16 | 0x15)
	OpcodeVecI8x16ExtractLaneU         = Opcode(0xfd<<16 | 0x16)
	OpcodeVecI8x16ReplaceLane          = Opcode(0xfd<<16 | 0x17)
	OpcodeVecI16x8ExtractLaneS         = Opcode(0xfd<<16 | 0x18)
	OpcodeVecI16x8ExtractLaneU         = Opcode(0xfd<<16 | 0x19)
	OpcodeVecI16x8ReplaceLane          = Opcode(0xfd<<16 | 0x1a)
	OpcodeVecI32x4ExtractLane          = Opcode(0xfd<<16 | 0x1b)
	OpcodeVecI32x4ReplaceLane          = Opcode(0xfd<<16 | 0x1c)
	OpcodeVecI64x2ExtractLane          = Opcode(0xfd<<16 | 0x1d)
	OpcodeVecI64x2ReplaceLane          = Opcode(0xfd<<16 | 0x1e)
	OpcodeVecF32x4ExtractLane          = Opcode(0xfd<<16 | 0x1f)
	OpcodeVecF32x4ReplaceLane          = Opcode(0xfd<<16 | 0x20)
	OpcodeVecF64x2ExtractLane          = Opcode(0xfd<<16 | 0x21)
	OpcodeVecF64x2ReplaceLane          = Opcode(0xfd<<16 | 0x22)
	OpcodeVecI8x16Eq                   = Opcode(0xfd<<16 | 0x23)
	OpcodeVecI8x16Ne                   = Opcode(0xfd<<16 | 0x24)
	OpcodeVecI8x16LtS                  = Opcode(0xfd<<16 | 0x25)
	OpcodeVecI8x16LtU                  = Opcode(0xfd<<16 | 0x26)
	OpcodeVecI8x16GtS                  = Opcode(0xfd<<16 | 0x27)
	OpcodeVecI8x16GtU                  = Opcode(0xfd<<16 | 0x28)
	OpcodeVecI8x16LeS                  = Opcode(0xfd<<16 | 0x29)
	OpcodeVecI8x16LeU                  = Opcode(0xfd<<16 | 0x2a)
	OpcodeVecI8x16GeS                  = Opcode(0xfd<<16 | 0x2b)
	OpcodeVecI8x16GeU                  = Opcode(0xfd<<16 | 0x2c)
	OpcodeVecI16x8Eq                   = Opcode(0xfd<<16 | 0x2d)
	OpcodeVecI16x8Ne                   = Opcode(0xfd<<16 | 0x2e)
	OpcodeVecI16x8LtS                  = Opcode(0xfd<<16 | 0x2f)
	OpcodeVecI16x8LtU                  = Opcode(0xfd<<16 | 0x30)
	OpcodeVecI16x8GtS                  = Opcode(0xfd<<16 | 0x31)
	OpcodeVecI16x8GtU                  = Opcode(0xfd<<16 | 0x32)
	OpcodeVecI16x8LeS                  = Opcode(0xfd<<16 | 0x33)
	OpcodeVecI16x8LeU                  = Opcode(0xfd<<16 | 0x34)
	OpcodeVecI16x8GeS                  = Opcode(0xfd<<16 | 0x35)
	OpcodeVecI16x8GeU                  = Opcode(0xfd<<16 | 0x36)
	OpcodeVecI32x4Eq                   = Opcode(0xfd<<16 | 0x37)
	OpcodeVecI32x4Ne                   = Opcode(0xfd<<16 | 0x38)
	OpcodeVecI32x4LtS                  = Opcode(0xfd<<16 | 0x39)
	OpcodeVecI32x4LtU                  = Opcode(0xfd<<16 | 0x3a)
	OpcodeVecI32x4GtS                  = Opcode(0xfd<<16 | 0x3b)
	OpcodeVecI32x4GtU                  = Opcode(0xfd<<16 | 0x3c)
	OpcodeVecI32x4LeS                  = Opcode(0xfd<<16 | 0x3d)
	OpcodeVecI32x4LeU                  = Opcode(0xfd<<16 | 0x3e)
	OpcodeVecI32x4GeS                  = Opcode(0xfd<<16 | 0x3f)
	OpcodeVecI32x4GeU                  = Opcode(0xfd<<16 | 0x40)
	OpcodeVecF32x4Eq                   = Opcode(0xfd<<16 | 0x41)
	OpcodeVecF32x4Ne                   = Opcode(0xfd<<16 | 0x42)
	OpcodeVecF32x4Lt                   = Opcode(0xfd<<16 | 0x43)
	OpcodeVecF32x4Gt                   = Opcode(0xfd<<16 | 0x44)
	OpcodeVecF32x4Le                   = Opcode(0xfd<<16 | 0x45)
	OpcodeVecF32x4Ge                   = Opcode(0xfd<<16 | 0x46)
	OpcodeVecF64x2Eq                   = Opcode(0xfd<<16 | 0x47)
	OpcodeVecF64x2Ne                   = Opcode(0xfd<<16 | 0x48)
	OpcodeVecF64x2Lt                   = Opcode(0xfd<<16 | 0x49)
	OpcodeVecF64x2Gt                   = Opcode(0xfd<<16 | 0x4a)
	OpcodeVecF64x2Le                   = Opcode(0xfd<<16 | 0x4b)
	OpcodeVecF64x2Ge                   = Opcode(0xfd<<16 | 0x4c)
	OpcodeVecV128Not                   = Opcode(0xfd<<16 | 0x4d)
	OpcodeVecV128And                   = Opcode(0xfd<<16 | 0x4e)
	OpcodeVecV128Andnot                = Opcode(0xfd<<16 | 0x4f)
	OpcodeVecV128Or                    = Opcode(0xfd<<16 | 0x50)
	OpcodeVecV128Xor                   = Opcode(0xfd<<16 | 0x51)
	OpcodeVecV128Bitselect             = Opcode(0xfd<<16 | 0x52)
	OpcodeVecV128AnyTrue               = Opcode(0xfd<<16 | 0x53)
	OpcodeVecV128Load8Lane             = Opcode(0xfd<<16 | 0x54)
	OpcodeVecV128Load16Lane            = Opcode(0xfd<<16 | 0x55)
	OpcodeVecV128Load32Lane            = Opcode(0xfd<<16 | 0x56)
	OpcodeVecV128Load64Lane            = Opcode(0xfd<<16 | 0x57)
	OpcodeVecV128Store8Lane            = Opcode(0xfd<<16 | 0x58)
	OpcodeVecV128Store16Lane           = Opcode(0xfd<<16 | 0x59)
	OpcodeVecV128Store32Lane           = Opcode(0xfd<<16 | 0x5a)
	OpcodeVecV128Store64Lane           = Opcode(0xfd<<16 | 0x5b)
	OpcodeVecV128Load32Zero            = Opcode(0xfd<<16 | 0x5c)
	OpcodeVecV128Load64Zero            = Opcode(0xfd<<16 | 0x5d)
	OpcodeVecF32x4DemoteF64x2Zero      = Opcode(0xfd<<16 | 0x5e)
	OpcodeVecF64x2PromoteLowF32x4      = Opcode(0xfd<<16 | 0x5f)
	OpcodeVecI8x16Abs                  = Opcode(0xfd<<16 | 0x60)
	OpcodeVecI8x16Neg                  = Opcode(0xfd<<16 | 0x61)
	OpcodeVecI8x16Popcnt               = Opcode(0xfd<<16 | 0x62)
	OpcodeVecI8x16AllTrue              = Opcode(0xfd<<16 | 0x63)
	OpcodeVecI8x16Bitmask              = Opcode(0xfd<<16 | 0x64)
	OpcodeVecI8x16NarrowI16x8S         = Opcode(0xfd<<16 | 0x65)
	OpcodeVecI8x16NarrowI16x8U         = Opcode(0xfd<<16 | 0x66)
	OpcodeVecF32x4Ceil                 = Opcode(0xfd<<16 | 0x67)
	OpcodeVecF32x4Floor                = Opcode(0xfd<<16 | 0x68)
	OpcodeVecF32x4Trunc                = Opcode(0xfd<<16 | 0x69)
	OpcodeVecF32x4Nearest              = Opcode(0xfd<<16 | 0x6a)
	OpcodeVecI8x16Shl                  = Opcode(0xfd<<16 | 0x6b)
	OpcodeVecI8x16ShrS                 = Opcode(0xfd<<16 | 0x6c)
	OpcodeVecI8x16ShrU                 = Opcode(0xfd<<16 | 0x6d)
	OpcodeVecI8x16Add                  = Opcode(0xfd<<16 | 0x6e)
	OpcodeVecI8x16AddSatS              = Opcode(0xfd<<16 | 0x6f)
	OpcodeVecI8x16AddSatU              = Opcode(0xfd<<16 | 0x70)
	OpcodeVecI8x16Sub                  = Opcode(0xfd<<16 | 0x71)
	OpcodeVecI8x16SubSatS              = Opcode(0xfd<<16 | 0x72)
	OpcodeVecI8x16SubSatU              = Opcode(0xfd<<16 | 0x73)
	OpcodeVecF64x2Ceil                 = Opcode(0xfd<<16 | 0x74)
	OpcodeVecF64x2Floor                = Opcode(0xfd<<16 | 0x75)
	OpcodeVecI8x16MinS                 = Opcode(0xfd<<16 | 0x76)
	OpcodeVecI8x16MinU                 = Opcode(0xfd<<16 | 0x77)
	OpcodeVecI8x16MaxS                 = Opcode(0xfd<<16 | 0x78)
	OpcodeVecI8x16MaxU                 = Opcode(0xfd<<16 | 0x79)
	OpcodeVecF64x2Trunc                = Opcode(0xfd<<16 | 0x7a)
	OpcodeVecI8x16AvgrU                = Opcode(0xfd<<16 | 0x7b)
	OpcodeVecI16x8ExtaddPairwiseI8x16S = Opcode(0xfd<<16 | 0x7c)
	OpcodeVecI16x8ExtaddPairwiseI8x16U = Opcode(0xfd<<16 | 0x7d)
	OpcodeVecI32x4ExtaddPairwiseI16x8S = Opcode(0xfd<<16 | 0x7e)
	OpcodeVecI32x4ExtaddPairwiseI16x8U = Opcode(0xfd<<16 | 0x7f)
	OpcodeVecI16x8Abs                  = Opcode(0xfd<<16 | 0x80)
	OpcodeVecI16x8Neg                  = Opcode(0xfd<<16 | 0x81)
	OpcodeVecI16x8Q15mulrSatS          = Opcode(0xfd<<16 | 0x82)
	OpcodeVecI16x8AllTrue              = Opcode(0xfd<<16 | 0x83)
	OpcodeVecI16x8Bitmask              = Opcode(0xfd<<16 | 0x84)
	OpcodeVecI16x8NarrowI32x4S         = Opcode(0xfd<<16 | 0x85)
	OpcodeVecI16x8NarrowI32x4U         = Opcode(0xfd<<16 | 0x86)
	OpcodeVecI16x8ExtendLowI8x16S      = Opcode(0xfd<<16 | 0x87)
	OpcodeVecI16x8ExtendHighI8x16S     = Opcode(0xfd<<16 | 0x88)
	OpcodeVecI16x8ExtendLowI8x16U      = Opcode(0xfd<<16 | 0x89)
	OpcodeVecI16x8ExtendHighI8x16U     = Opcode(0xfd<<16 | 0x8a)
	OpcodeVecI16x8Shl                  = Opcode(0xfd<<16 | 0x8b)
	OpcodeVecI16x8ShrS                 = Opcode(0xfd<<16 | 0x8c)
	OpcodeVecI16x8ShrU                 = Opcode(0xfd<<16 | 0x8d)
	OpcodeVecI16x8Add                  = Opcode(0xfd<<16 | 0x8e)
	OpcodeVecI16x8AddSatS              = Opcode(0xfd<<16 | 0x8f)
	OpcodeVecI16x8AddSatU              = Opcode(0xfd<<16 | 0x90)
	OpcodeVecI16x8Sub                  = Opcode(0xfd<<16 | 0x91)
	OpcodeVecI16x8SubSatS              = Opcode(0xfd<<16 | 0x92)
	OpcodeVecI16x8SubSatU              = Opcode(0xfd<<16 | 0x93)
	OpcodeVecF64x2Nearest              = Opcode(0xfd<<16 | 0x94)
	OpcodeVecI16x8Mul                  = Opcode(0xfd<<16 | 0x95)
	OpcodeVecI16x8MinS                 = Opcode(0xfd<<16 | 0x96)
	OpcodeVecI16x8MinU                 = Opcode(0xfd<<16 | 0x97)
	OpcodeVecI16x8MaxS                 = Opcode(0xfd<<16 | 0x98)
	OpcodeVecI16x8MaxU                 = Opcode(0xfd<<16 | 0x99)
	OpcodeVecI16x8AvgrU                = Opcode(0xfd<<16 | 0x9b)
	OpcodeVecI16x8ExtmulLowI8x16S      = Opcode(0xfd<<16 | 0x9c)
	OpcodeVecI16x8ExtmulHighI8x16S     = Opcode(0xfd<<16 | 0x9d)
	OpcodeVecI16x8ExtmulLowI8x16U      = Opcode(0xfd<<16 | 0x9e)
	OpcodeVecI16x8ExtmulHighI8x16U     = Opcode(0xfd<<16 | 0x9f)
	OpcodeVecI32x4Abs                  = Opcode(0xfd<<16 | 0xa0)
	OpcodeVecI32x4Neg                  = Opcode(0xfd<<16 | 0xa1)
	OpcodeVecI32x4AllTrue              = Opcode(0xfd<<16 | 0xa3)
	OpcodeVecI32x4Bitmask              = Opcode(0xfd<<16 | 0xa4)
	OpcodeVecI32x4ExtendLowI16x8S      = Opcode(0xfd<<16 | 0xa7)
	OpcodeVecI32x4ExtendHighI16x8S     = Opcode(0xfd<<16 | 0xa8)
	OpcodeVecI32x4ExtendLowI16x8U      = Opcode(0xfd<<16 | 0xa9)
	OpcodeVecI32x4ExtendHighI16x8U     = Opcode(0xfd<<16 | 0xaa)
	OpcodeVecI32x4Shl                  = Opcode(0xfd<<16 | 0xab)
	OpcodeVecI32x4ShrS                 = Opcode(0xfd<<16 | 0xac)
	OpcodeVecI32x4ShrU                 = Opcode(0xfd<<16 | 0xad)
	OpcodeVecI32x4Add                  = Opcode(0xfd<<16 | 0xae)
	OpcodeVecI32x4Sub                  = Opcode(0xfd<<16 | 0xb1)
	OpcodeVecI32x4Mul                  = Opcode(0xfd<<16 | 0xb5)
	OpcodeVecI32x4MinS                 = Opcode(0xfd<<16 | 0xb6)
	OpcodeVecI32x4MinU                 = Opcode(0xfd<<16 | 0xb7)
	OpcodeVecI32x4MaxS                 = Opcode(0xfd<<16 | 0xb8)
	OpcodeVecI32x4MaxU                 = Opcode(0xfd<<16 | 0xb9)
	OpcodeVecI32x4DotI16x8S            = Opcode(0xfd<<16 | 0xba)
	OpcodeVecI32x4ExtmulLowI16x8S      = Opcode(0xfd<<16 | 0xbc)
	OpcodeVecI32x4ExtmulHighI16x8S     = Opcode(0xfd<<16 | 0xbd)
	OpcodeVecI32x4ExtmulLowI16x8U      = Opcode(0xfd<<16 | 0xbe)
	OpcodeVecI32x4ExtmulHighI16x8U     = Opcode(0xfd<<16 | 0xbf)
	OpcodeVecI64x2Abs                  = Opcode(0xfd<<16 | 0xc0)
	OpcodeVecI64x2Neg                  = Opcode(0xfd<<16 | 0xc1)
	OpcodeVecI64x2AllTrue              = Opcode(0xfd<<16 | 0xc3)
	OpcodeVecI64x2Bitmask              = Opcode(0xfd<<16 | 0xc4)
	OpcodeVecI64x2ExtendLowI32x4S      = Opcode(0xfd<<16 | 0xc7)
	OpcodeVecI64x2ExtendHighI32x4S     = Opcode(0xfd<<16 | 0xc8)
	OpcodeVecI64x2ExtendLowI32x4U      = Opcode(0xfd<<16 | 0xc9)
	OpcodeVecI64x2ExtendHighI32x4U     = Opcode(0xfd<<16 | 0xca)
	OpcodeVecI64x2Shl                  = Opcode(0xfd<<16 | 0xcb)
	OpcodeVecI64x2ShrS                 = Opcode(0xfd<<16 | 0xcc)
	OpcodeVecI64x2ShrU                 = Opcode(0xfd<<16 | 0xcd)
	OpcodeVecI64x2Add                  = Opcode(0xfd<<16 | 0xce)
	OpcodeVecI64x2Sub                  = Opcode(0xfd<<16 | 0xd1)
	OpcodeVecI64x2Mul                  = Opcode(0xfd<<16 | 0xd5)
	OpcodeVecI64x2Eq                   = Opcode(0xfd<<16 | 0xd6)
	OpcodeVecI64x2Ne                   = Opcode(0xfd<<16 | 0xd7)
	OpcodeVecI64x2LtS                  = Opcode(0xfd<<16 | 0xd8)
	OpcodeVecI64x2GtS                  = Opcode(0xfd<<16 | 0xd9)
	OpcodeVecI64x2LeS                  = Opcode(0xfd<<16 | 0xda)
	OpcodeVecI64x2GeS                  = Opcode(0xfd<<16 | 0xdb)
	OpcodeVecI64x2ExtmulLowI32x4S      = Opcode(0xfd<<16 | 0xdc)
	OpcodeVecI64x2ExtmulHighI32x4S     = Opcode(0xfd<<16 | 0xdd)
	OpcodeVecI64x2ExtmulLowI32x4U      = Opcode(0xfd<<16 | 0xde)
	OpcodeVecI64x2ExtmulHighI32x4U     = Opcode(0xfd<<16 | 0xdf)
	OpcodeVecF32x4Abs                  = Opcode(0xfd<<16 | 0xe0)
	OpcodeVecF32x4Neg                  = Opcode(0xfd<<16 | 0xe1)
	OpcodeVecF32x4Sqrt                 = Opcode(0xfd<<16 | 0xe3)
	OpcodeVecF32x4Add                  = Opcode(0xfd<<16 | 0xe4)
	OpcodeVecF32x4Sub                  = Opcode(0xfd<<16 | 0xe5)
	OpcodeVecF32x4Mul                  = Opcode(0xfd<<16 | 0xe6)
	OpcodeVecF32x4Div                  = Opcode(0xfd<<16 | 0xe7)
	OpcodeVecF32x4Min                  = Opcode(0xfd<<16 | 0xe8)
	OpcodeVecF32x4Max                  = Opcode(0xfd<<16 | 0xe9)
	OpcodeVecF32x4Pmin                 = Opcode(0xfd<<16 | 0xea)
	OpcodeVecF32x4Pmax                 = Opcode(0xfd<<16 | 0xeb)
	OpcodeVecF64x2Abs                  = Opcode(0xfd<<16 | 0xec)
	OpcodeVecF64x2Neg                  = Opcode(0xfd<<16 | 0xed)
	OpcodeVecF64x2Sqrt                 = Opcode(0xfd<<16 | 0xef)
	OpcodeVecF64x2Add                  = Opcode(0xfd<<16 | 0xf0)
	OpcodeVecF64x2Sub                  = Opcode(0xfd<<16 | 0xf1)
	OpcodeVecF64x2Mul                  = Opcode(0xfd<<16 | 0xf2)
	OpcodeVecF64x2Div                  = Opcode(0xfd<<16 | 0xf3)
	OpcodeVecF64x2Min                  = Opcode(0xfd<<16 | 0xf4)
	OpcodeVecF64x2Max                  = Opcode(0xfd<<16 | 0xf5)
	OpcodeVecF64x2Pmin                 = Opcode(0xfd<<16 | 0xf6)
	OpcodeVecF64x2Pmax                 = Opcode(0xfd<<16 | 0xf7)
	OpcodeVecI32x4TruncSatF32x4S       = Opcode(0xfd<<16 | 0xf8)
	OpcodeVecI32x4TruncSatF32x4U       = Opcode(0xfd<<16 | 0xf9)
	OpcodeVecF32x4ConvertI32x4S        = Opcode(0xfd<<16 | 0xfa)
	OpcodeVecF32x4ConvertI32x4U        = Opcode(0xfd<<16 | 0xfb)
	OpcodeVecI32x4TruncSatF64x2SZero   = Opcode(0xfd<<16 | 0xfc)
	OpcodeVecI32x4TruncSatF64x2UZero   = Opcode(0xfd<<16 | 0xfd)
	OpcodeVecF64x2ConvertLowI32x4S     = Opcode(0xfd<<16 | 0xfe)
	OpcodeVecF64x2ConvertLowI32x4U     = Opcode(0xfd<<16 | 0xff)
)

// Atomic opcodes, prefixed by OpcodeAtomicPrefix.
const (
	OpcodeAtomicMemoryNotify     = Opcode(0xfe<<16 | 0x00)
	OpcodeAtomicMemoryWait32     = Opcode(0xfe<<16 | 0x01)
	OpcodeAtomicMemoryWait64     = Opcode(0xfe<<16 | 0x02)
	OpcodeAtomicFence            = Opcode(0xfe<<16 | 0x03)
	OpcodeAtomicI32Load          = Opcode(0xfe<<16 | 0x10)
	OpcodeAtomicI64Load          = Opcode(0xfe<<16 | 0x11)
	OpcodeAtomicI32Load8U        = Opcode(0xfe<<16 | 0x12)
	OpcodeAtomicI32Load16U       = Opcode(0xfe<<16 | 0x13)
	OpcodeAtomicI64Load8U        = Opcode(0xfe<<16 | 0x14)
	OpcodeAtomicI64Load16U       = Opcode(0xfe<<16 | 0x15)
	OpcodeAtomicI64Load32U       = Opcode(0xfe<<16 | 0x16)
	OpcodeAtomicI32Store         = Opcode(0xfe<<16 | 0x17)
	OpcodeAtomicI64Store         = Opcode(0xfe<<16 | 0x18)
	OpcodeAtomicI32Store8        = Opcode(0xfe<<16 | 0x19)
	OpcodeAtomicI32Store16       = Opcode(0xfe<<16 | 0x1a)
	OpcodeAtomicI64Store8        = Opcode(0xfe<<16 | 0x1b)
	OpcodeAtomicI64Store16       = Opcode(0xfe<<16 | 0x1c)
	OpcodeAtomicI64Store32       = Opcode(0xfe<<16 | 0x1d)
	OpcodeAtomicI32RmwAdd        = Opcode(0xfe<<16 | 0x1e)
	OpcodeAtomicI64RmwAdd        = Opcode(0xfe<<16 | 0x1f)
	OpcodeAtomicI32Rmw8AddU      = Opcode(0xfe<<16 | 0x20)
	OpcodeAtomicI32Rmw16AddU     = Opcode(0xfe<<16 | 0x21)
	OpcodeAtomicI64Rmw8AddU      = Opcode(0xfe<<16 | 0x22)
	OpcodeAtomicI64Rmw16AddU     = Opcode(0xfe<<16 | 0x23)
	OpcodeAtomicI64Rmw32AddU     = Opcode(0xfe<<16 | 0x24)
	OpcodeAtomicI32RmwSub        = Opcode(0xfe<<16 | 0x25)
	OpcodeAtomicI64RmwSub        = Opcode(0xfe<<16 | 0x26)
	OpcodeAtomicI32Rmw8SubU      = Opcode(0xfe<<16 | 0x27)
	OpcodeAtomicI32Rmw16SubU     = Opcode(0xfe<<16 | 0x28)
	OpcodeAtomicI64Rmw8SubU      = Opcode(0xfe<<16 | 0x29)
	OpcodeAtomicI64Rmw16SubU     = Opcode(0xfe<<16 | 0x2a)
	OpcodeAtomicI64Rmw32SubU     = Opcode(0xfe<<16 | 0x2b)
	OpcodeAtomicI32RmwAnd        = Opcode(0xfe<<16 | 0x2c)
	OpcodeAtomicI64RmwAnd        = Opcode(0xfe<<16 | 0x2d)
	OpcodeAtomicI32Rmw8AndU      = Opcode(0xfe<<16 | 0x2e)
	OpcodeAtomicI32Rmw16AndU     = Opcode(0xfe<<16 | 0x2f)
	OpcodeAtomicI64Rmw8AndU      = Opcode(0xfe<<16 | 0x30)
	OpcodeAtomicI64Rmw16AndU     = Opcode(0xfe<<16 | 0x31)
	OpcodeAtomicI64Rmw32AndU     = Opcode(0xfe<<16 | 0x32)
	OpcodeAtomicI32RmwOr         = Opcode(0xfe<<16 | 0x33)
	OpcodeAtomicI64RmwOr         = Opcode(0xfe<<16 | 0x34)
	OpcodeAtomicI32Rmw8OrU       = Opcode(0xfe<<16 | 0x35)
	OpcodeAtomicI32Rmw16OrU      = Opcode(0xfe<<16 | 0x36)
	OpcodeAtomicI64Rmw8OrU       = Opcode(0xfe<<16 | 0x37)
	OpcodeAtomicI64Rmw16OrU      = Opcode(0xfe<<16 | 0x38)
	OpcodeAtomicI64Rmw32OrU      = Opcode(0xfe<<16 | 0x39)
	OpcodeAtomicI32RmwXor        = Opcode(0xfe<<16 | 0x3a)
	OpcodeAtomicI64RmwXor        = Opcode(0xfe<<16 | 0x3b)
	OpcodeAtomicI32Rmw8XorU      = Opcode(0xfe<<16 | 0x3c)
	OpcodeAtomicI32Rmw16XorU     = Opcode(0xfe<<16 | 0x3d)
	OpcodeAtomicI64Rmw8XorU      = Opcode(0xfe<<16 | 0x3e)
	OpcodeAtomicI64Rmw16XorU     = Opcode(0xfe<<16 | 0x3f)
	OpcodeAtomicI64Rmw32XorU     = Opcode(0xfe<<16 | 0x40)
	OpcodeAtomicI32RmwXchg       = Opcode(0xfe<<16 | 0x41)
	OpcodeAtomicI64RmwXchg       = Opcode(0xfe<<16 | 0x42)
	OpcodeAtomicI32Rmw8XchgU     = Opcode(0xfe<<16 | 0x43)
	OpcodeAtomicI32Rmw16XchgU    = Opcode(0xfe<<16 | 0x44)
	OpcodeAtomicI64Rmw8XchgU     = Opcode(0xfe<<16 | 0x45)
	OpcodeAtomicI64Rmw16XchgU    = Opcode(0xfe<<16 | 0x46)
	OpcodeAtomicI64Rmw32XchgU    = Opcode(0xfe<<16 | 0x47)
	OpcodeAtomicI32RmwCmpxchg    = Opcode(0xfe<<16 | 0x48)
	OpcodeAtomicI64RmwCmpxchg    = Opcode(0xfe<<16 | 0x49)
	OpcodeAtomicI32Rmw8CmpxchgU  = Opcode(0xfe<<16 | 0x4a)
	OpcodeAtomicI32Rmw16CmpxchgU = Opcode(0xfe<<16 | 0x4b)
	OpcodeAtomicI64Rmw8CmpxchgU  = Opcode(0xfe<<16 | 0x4c)
	OpcodeAtomicI64Rmw16CmpxchgU = Opcode(0xfe<<16 | 0x4d)
	OpcodeAtomicI64Rmw32CmpxchgU = Opcode(0xfe<<16 | 0x4e)
)

var instructionNames = map[Opcode]string{
	OpcodeUnreachable:        "unreachable",
	OpcodeNop:                "nop",
	OpcodeBlock:              "block",
	OpcodeLoop:               "loop",
	OpcodeIf:                 "if",
	OpcodeElse:               "else",
	OpcodeThrow:              "throw",
	OpcodeThrowRef:           "throw_ref",
	OpcodeEnd:                "end",
	OpcodeBr:                 "br",
	OpcodeBrIf:               "br_if",
	OpcodeBrTable:            "br_table",
	OpcodeReturn:             "return",
	OpcodeCall:               "call",
	OpcodeCallIndirect:       "call_indirect",
	OpcodeReturnCall:         "return_call",
	OpcodeReturnCallIndirect: "return_call_indirect",
	OpcodeCallRef:            "call_ref",
	OpcodeReturnCallRef:      "return_call_ref",
	OpcodeDrop:               "drop",
	OpcodeSelect:             "select",
	OpcodeSelectT:            "select_t",
	OpcodeTryTable:           "try_table",
	OpcodeLocalGet:           "local.get",
	OpcodeLocalSet:           "local.set",
	OpcodeLocalTee:           "local.tee",
	OpcodeGlobalGet:          "global.get",
	OpcodeGlobalSet:          "global.set",
	OpcodeTableGet:           "table.get",
	OpcodeTableSet:           "table.set",
	OpcodeI32Load:            "i32.load",
	OpcodeI64Load:            "i64.load",
	OpcodeF32Load:            "f32.load",
	OpcodeF64Load:            "f64.load",
	OpcodeI32Load8S:          "i32.load8_s",
	OpcodeI32Load8U:          "i32.load8_u",
	OpcodeI32Load16S:         "i32.load16_s",
	OpcodeI32Load16U:         "i32.load16_u",
	OpcodeI64Load8S:          "i64.load8_s",
	OpcodeI64Load8U:          "i64.load8_u",
	OpcodeI64Load16S:         "i64.load16_s",
	OpcodeI64Load16U:         "i64.load16_u",
	OpcodeI64Load32S:         "i64.load32_s",
	OpcodeI64Load32U:         "i64.load32_u",
	OpcodeI32Store:           "i32.store",
	OpcodeI64Store:           "i64.store",
	OpcodeF32Store:           "f32.store",
	OpcodeF64Store:           "f64.store",
	OpcodeI32Store8:          "i32.store8",
	OpcodeI32Store16:         "i32.store16",
	OpcodeI64Store8:          "i64.store8",
	OpcodeI64Store16:         "i64.store16",
	OpcodeI64Store32:         "i64.store32",
	OpcodeMemorySize:         "memory.size",
	OpcodeMemoryGrow:         "memory.grow",
	OpcodeI32Const:           "i32.const",
	OpcodeI64Const:           "i64.const",
	OpcodeF32Const:           "f32.const",
	OpcodeF64Const:           "f64.const",
	OpcodeI32Eqz:             "i32.eqz",
	OpcodeI32Eq:              "i32.eq",
	OpcodeI32Ne:              "i32.ne",
	OpcodeI32LtS:             "i32.lt_s",
	OpcodeI32LtU:             "i32.lt_u",
	OpcodeI32GtS:             "i32.gt_s",
	OpcodeI32GtU:             "i32.gt_u",
	OpcodeI32LeS:             "i32.le_s",
	OpcodeI32LeU:             "i32.le_u",
	OpcodeI32GeS:             "i32.ge_s",
	OpcodeI32GeU:             "i32.ge_u",
	OpcodeI64Eqz:             "i64.eqz",
	OpcodeI64Eq:              "i64.eq",
	OpcodeI64Ne:              "i64.ne",
	OpcodeI64LtS:             "i64.lt_s",
	OpcodeI64LtU:             "i64.lt_u",
	OpcodeI64GtS:             "i64.gt_s",
	OpcodeI64GtU:             "i64.gt_u",
	OpcodeI64LeS:             "i64.le_s",
	OpcodeI64LeU:             "i64.le_u",
	OpcodeI64GeS:             "i64.ge_s",
	OpcodeI64GeU:             "i64.ge_u",
	OpcodeF32Eq:              "f32.eq",
	OpcodeF32Ne:              "f32.ne",
	OpcodeF32Lt:              "f32.lt",
	OpcodeF32Gt:              "f32.gt",
	OpcodeF32Le:              "f32.le",
	OpcodeF32Ge:              "f32.ge",
	OpcodeF64Eq:              "f64.eq",
	OpcodeF64Ne:              "f64.ne",
	OpcodeF64Lt:              "f64.lt",
	OpcodeF64Gt:              "f64.gt",
	OpcodeF64Le:              "f64.le",
	OpcodeF64Ge:              "f64.ge",
	OpcodeI32Clz:             "i32.clz",
	OpcodeI32Ctz:             "i32.ctz",
	OpcodeI32Popcnt:          "i32.popcnt",
	OpcodeI32Add:             "i32.add",
	OpcodeI32Sub:             "i32.sub",
	OpcodeI32Mul:             "i32.mul",
	OpcodeI32DivS:            "i32.div_s",
	OpcodeI32DivU:            "i32.div_u",
	OpcodeI32RemS:            "i32.rem_s",
	OpcodeI32RemU:            "i32.rem_u",
	OpcodeI32And:             "i32.and",
	OpcodeI32Or:              "i32.or",
	OpcodeI32Xor:             "i32.xor",
	OpcodeI32Shl:             "i32.shl",
	OpcodeI32ShrS:            "i32.shr_s",
	OpcodeI32ShrU:            "i32.shr_u",
	OpcodeI32Rotl:            "i32.rotl",
	OpcodeI32Rotr:            "i32.rotr",
	OpcodeI64Clz:             "i64.clz",
	OpcodeI64Ctz:             "i64.ctz",
	OpcodeI64Popcnt:          "i64.popcnt",
	OpcodeI64Add:             "i64.add",
	OpcodeI64Sub:             "i64.sub",
	OpcodeI64Mul:             "i64.mul",
	OpcodeI64DivS:            "i64.div_s",
	OpcodeI64DivU:            "i64.div_u",
	OpcodeI64RemS:            "i64.rem_s",
	OpcodeI64RemU:            "i64.rem_u",
	OpcodeI64And:             "i64.and",
	OpcodeI64Or:              "i64.or",
	OpcodeI64Xor:             "i64.xor",
	OpcodeI64Shl:             "i64.shl",
	OpcodeI64ShrS:            "i64.shr_s",
	OpcodeI64ShrU:            "i64.shr_u",
	OpcodeI64Rotl:            "i64.rotl",
	OpcodeI64Rotr:            "i64.rotr",
	OpcodeF32Abs:             "f32.abs",
	OpcodeF32Neg:             "f32.neg",
	OpcodeF32Ceil:            "f32.ceil",
	OpcodeF32Floor:           "f32.floor",
	OpcodeF32Trunc:           "f32.trunc",
	OpcodeF32Nearest:         "f32.nearest",
	OpcodeF32Sqrt:            "f32.sqrt",
	OpcodeF32Add:             "f32.add",
	OpcodeF32Sub:             "f32.sub",
	OpcodeF32Mul:             "f32.mul",
	OpcodeF32Div:             "f32.div",
	OpcodeF32Min:             "f32.min",
	OpcodeF32Max:             "f32.max",
	OpcodeF32Copysign:        "f32.copysign",
	OpcodeF64Abs:             "f64.abs",
	OpcodeF64Neg:             "f64.neg",
	OpcodeF64Ceil:            "f64.ceil",
	OpcodeF64Floor:           "f64.floor",
	OpcodeF64Trunc:           "f64.trunc",
	OpcodeF64Nearest:         "f64.nearest",
	OpcodeF64Sqrt:            "f64.sqrt",
	OpcodeF64Add:             "f64.add",
	OpcodeF64Sub:             "f64.sub",
	OpcodeF64Mul:             "f64.mul",
	OpcodeF64Div:             "f64.div",
	OpcodeF64Min:             "f64.min",
	OpcodeF64Max:             "f64.max",
	OpcodeF64Copysign:        "f64.copysign",
	OpcodeI32WrapI64:         "i32.wrap_i64",
	OpcodeI32TruncF32S:       "i32.trunc_f32_s",
	OpcodeI32TruncF32U:       "i32.trunc_f32_u",
	OpcodeI32TruncF64S:       "i32.trunc_f64_s",
	OpcodeI32TruncF64U:       "i32.trunc_f64_u",
	OpcodeI64ExtendI32S:      "i64.extend_i32_s",
	OpcodeI64ExtendI32U:      "i64.extend_i32_u",
	OpcodeI64TruncF32S:       "i64.trunc_f32_s",
	OpcodeI64TruncF32U:       "i64.trunc_f32_u",
	OpcodeI64TruncF64S:       "i64.trunc_f64_s",
	OpcodeI64TruncF64U:       "i64.trunc_f64_u",
	OpcodeF32ConvertI32S:     "f32.convert_i32_s",
	OpcodeF32ConvertI32U:     "f32.convert_i32_u",
	OpcodeF32ConvertI64S:     "f32.convert_i64_s",
	OpcodeF32ConvertI64U:     "f32.convert_i64_u",
	OpcodeF32DemoteF64:       "f32.demote_f64",
	OpcodeF64ConvertI32S:     "f64.convert_i32_s",
	OpcodeF64ConvertI32U:     "f64.convert_i32_u",
	OpcodeF64ConvertI64S:     "f64.convert_i64_s",
	OpcodeF64ConvertI64U:     "f64.convert_i64_u",
	OpcodeF64PromoteF32:      "f64.promote_f32",
	OpcodeI32ReinterpretF32:  "i32.reinterpret_f32",
	OpcodeI64ReinterpretF64:  "i64.reinterpret_f64",
	OpcodeF32ReinterpretI32:  "f32.reinterpret_i32",
	OpcodeF64ReinterpretI64:  "f64.reinterpret_i64",
	OpcodeI32Extend8S:        "i32.extend8_s",
	OpcodeI32Extend16S:       "i32.extend16_s",
	OpcodeI64Extend8S:        "i64.extend8_s",
	OpcodeI64Extend16S:       "i64.extend16_s",
	OpcodeI64Extend32S:       "i64.extend32_s",
	OpcodeRefNull:            "ref.null",
	OpcodeRefIsNull:          "ref.is_null",
	OpcodeRefFunc:            "ref.func",

	OpcodeMiscI32TruncSatF32S: "i32.trunc_sat_f32_s",
	OpcodeMiscI32TruncSatF32U: "i32.trunc_sat_f32_u",
	OpcodeMiscI32TruncSatF64S: "i32.trunc_sat_f64_s",
	OpcodeMiscI32TruncSatF64U: "i32.trunc_sat_f64_u",
	OpcodeMiscI64TruncSatF32S: "i64.trunc_sat_f32_s",
	OpcodeMiscI64TruncSatF32U: "i64.trunc_sat_f32_u",
	OpcodeMiscI64TruncSatF64S: "i64.trunc_sat_f64_s",
	OpcodeMiscI64TruncSatF64U: "i64.trunc_sat_f64_u",
	OpcodeMiscMemoryInit:      "memory.init",
	OpcodeMiscDataDrop:        "data.drop",
	OpcodeMiscMemoryCopy:      "memory.copy",
	OpcodeMiscMemoryFill:      "memory.fill",
	OpcodeMiscTableInit:       "table.init",
	OpcodeMiscElemDrop:        "elem.drop",
	OpcodeMiscTableCopy:       "table.copy",
	OpcodeMiscTableGrow:       "table.grow",
	OpcodeMiscTableSize:       "table.size",
	OpcodeMiscTableFill:       "table.fill",

	OpcodeVecV128Load:                  "v128.load",
	OpcodeVecV128Load8x8S:              "v128.load8x8_s",
	OpcodeVecV128Load8x8U:              "v128.load8x8_u",
	OpcodeVecV128Load16x4S:             "v128.load16x4_s",
	OpcodeVecV128Load16x4U:             "v128.load16x4_u",
	OpcodeVecV128Load32x2S:             "v128.load32x2_s",
	OpcodeVecV128Load32x2U:             "v128.load32x2_u",
	OpcodeVecV128Load8Splat:            "v128.load8_splat",
	OpcodeVecV128Load16Splat:           "v128.load16_splat",
	OpcodeVecV128Load32Splat:           "v128.load32_splat",
	OpcodeVecV128Load64Splat:           "v128.load64_splat",
	OpcodeVecV128Store:                 "v128.store",
	OpcodeVecV128Const:                 "v128.const",
	OpcodeVecI8x16Shuffle:              "i8x16.shuffle",
	OpcodeVecI8x16Swizzle:              "i8x16.swizzle",
	OpcodeVecI8x16Splat:                "i8x16.splat",
	OpcodeVecI16x8Splat:                "i16x8.splat",
	OpcodeVecI32x4Splat:                "i32x4.splat",
	OpcodeVecI64x2Splat:                "i64x2.splat",
	OpcodeVecF32x4Splat:                "f32x4.splat",
	OpcodeVecF64x2Splat:                "f64x2.splat",
	OpcodeVecI8x16ExtractLaneS:         "i8x16.extract_lane_s",
	OpcodeVecI8x16ExtractLaneU:         "i8x16.extract_lane_u",
	OpcodeVecI8x16ReplaceLane:          "i8x16.replace_lane",
	OpcodeVecI16x8ExtractLaneS:         "i16x8.extract_lane_s",
	OpcodeVecI16x8ExtractLaneU:         "i16x8.extract_lane_u",
	OpcodeVecI16x8ReplaceLane:          "i16x8.replace_lane",
	OpcodeVecI32x4ExtractLane:          "i32x4.extract_lane",
	OpcodeVecI32x4ReplaceLane:          "i32x4.replace_lane",
	OpcodeVecI64x2ExtractLane:          "i64x2.extract_lane",
	OpcodeVecI64x2ReplaceLane:          "i64x2.replace_lane",
	OpcodeVecF32x4ExtractLane:          "f32x4.extract_lane",
	OpcodeVecF32x4ReplaceLane:          "f32x4.replace_lane",
	OpcodeVecF64x2ExtractLane:          "f64x2.extract_lane",
	OpcodeVecF64x2ReplaceLane:          "f64x2.replace_lane",
	OpcodeVecI8x16Eq:                   "i8x16.eq",
	OpcodeVecI8x16Ne:                   "i8x16.ne",
	OpcodeVecI8x16LtS:                  "i8x16.lt_s",
	OpcodeVecI8x16LtU:                  "i8x16.lt_u",
	OpcodeVecI8x16GtS:                  "i8x16.gt_s",
	OpcodeVecI8x16GtU:                  "i8x16.gt_u",
	OpcodeVecI8x16LeS:                  "i8x16.le_s",
	OpcodeVecI8x16LeU:                  "i8x16.le_u",
	OpcodeVecI8x16GeS:                  "i8x16.ge_s",
	OpcodeVecI8x16GeU:                  "i8x16.ge_u",
	OpcodeVecI16x8Eq:                   "i16x8.eq",
	OpcodeVecI16x8Ne:                   "i16x8.ne",
	OpcodeVecI16x8LtS:                  "i16x8.lt_s",
	OpcodeVecI16x8LtU:                  "i16x8.lt_u",
	OpcodeVecI16x8GtS:                  "i16x8.gt_s",
	OpcodeVecI16x8GtU:                  "i16x8.gt_u",
	OpcodeVecI16x8LeS:                  "i16x8.le_s",
	OpcodeVecI16x8LeU:                  "i16x8.le_u",
	OpcodeVecI16x8GeS:                  "i16x8.ge_s",
	OpcodeVecI16x8GeU:                  "i16x8.ge_u",
	OpcodeVecI32x4Eq:                   "i32x4.eq",
	OpcodeVecI32x4Ne:                   "i32x4.ne",
	OpcodeVecI32x4LtS:                  "i32x4.lt_s",
	OpcodeVecI32x4LtU:                  "i32x4.lt_u",
	OpcodeVecI32x4GtS:                  "i32x4.gt_s",
	OpcodeVecI32x4GtU:                  "i32x4.gt_u",
	OpcodeVecI32x4LeS:                  "i32x4.le_s",
	OpcodeVecI32x4LeU:                  "i32x4.le_u",
	OpcodeVecI32x4GeS:                  "i32x4.ge_s",
	OpcodeVecI32x4GeU:                  "i32x4.ge_u",
	OpcodeVecF32x4Eq:                   "f32x4.eq",
	OpcodeVecF32x4Ne:                   "f32x4.ne",
	OpcodeVecF32x4Lt:                   "f32x4.lt",
	OpcodeVecF32x4Gt:                   "f32x4.gt",
	OpcodeVecF32x4Le:                   "f32x4.le",
	OpcodeVecF32x4Ge:                   "f32x4.ge",
	OpcodeVecF64x2Eq:                   "f64x2.eq",
	OpcodeVecF64x2Ne:                   "f64x2.ne",
	OpcodeVecF64x2Lt:                   "f64x2.lt",
	OpcodeVecF64x2Gt:                   "f64x2.gt",
	OpcodeVecF64x2Le:                   "f64x2.le",
	OpcodeVecF64x2Ge:                   "f64x2.ge",
	OpcodeVecV128Not:                   "v128.not",
	OpcodeVecV128And:                   "v128.and",
	OpcodeVecV128Andnot:                "v128.andnot",
	OpcodeVecV128Or:                    "v128.or",
	OpcodeVecV128Xor:                   "v128.xor",
	OpcodeVecV128Bitselect:             "v128.bitselect",
	OpcodeVecV128AnyTrue:               "v128.any_true",
	OpcodeVecV128Load8Lane:             "v128.load8_lane",
	OpcodeVecV128Load16Lane:            "v128.load16_lane",
	OpcodeVecV128Load32Lane:            "v128.load32_lane",
	OpcodeVecV128Load64Lane:            "v128.load64_lane",
	OpcodeVecV128Store8Lane:            "v128.store8_lane",
	OpcodeVecV128Store16Lane:           "v128.store16_lane",
	OpcodeVecV128Store32Lane:           "v128.store32_lane",
	OpcodeVecV128Store64Lane:           "v128.store64_lane",
	OpcodeVecV128Load32Zero:            "v128.load32_zero",
	OpcodeVecV128Load64Zero:            "v128.load64_zero",
	OpcodeVecF32x4DemoteF64x2Zero:      "f32x4.demote_f64x2_zero",
	OpcodeVecF64x2PromoteLowF32x4:      "f64x2.promote_low_f32x4",
	OpcodeVecI8x16Abs:                  "i8x16.abs",
	OpcodeVecI8x16Neg:                  "i8x16.neg",
	OpcodeVecI8x16Popcnt:               "i8x16.popcnt",
	OpcodeVecI8x16AllTrue:              "i8x16.all_true",
	OpcodeVecI8x16Bitmask:              "i8x16.bitmask",
	OpcodeVecI8x16NarrowI16x8S:         "i8x16.narrow_i16x8_s",
	OpcodeVecI8x16NarrowI16x8U:         "i8x16.narrow_i16x8_u",
	OpcodeVecF32x4Ceil:                 "f32x4.ceil",
	OpcodeVecF32x4Floor:                "f32x4.floor",
	OpcodeVecF32x4Trunc:                "f32x4.trunc",
	OpcodeVecF32x4Nearest:              "f32x4.nearest",
	OpcodeVecI8x16Shl:                  "i8x16.shl",
	OpcodeVecI8x16ShrS:                 "i8x16.shr_s",
	OpcodeVecI8x16ShrU:                 "i8x16.shr_u",
	OpcodeVecI8x16Add:                  "i8x16.add",
	OpcodeVecI8x16AddSatS:              "i8x16.add_sat_s",
	OpcodeVecI8x16AddSatU:              "i8x16.add_sat_u",
	OpcodeVecI8x16Sub:                  "i8x16.sub",
	OpcodeVecI8x16SubSatS:              "i8x16.sub_sat_s",
	OpcodeVecI8x16SubSatU:              "i8x16.sub_sat_u",
	OpcodeVecF64x2Ceil:                 "f64x2.ceil",
	OpcodeVecF64x2Floor:                "f64x2.floor",
	OpcodeVecI8x16MinS:                 "i8x16.min_s",
	OpcodeVecI8x16MinU:                 "i8x16.min_u",
	OpcodeVecI8x16MaxS:                 "i8x16.max_s",
	OpcodeVecI8x16MaxU:                 "i8x16.max_u",
	OpcodeVecF64x2Trunc:                "f64x2.trunc",
	OpcodeVecI8x16AvgrU:                "i8x16.avgr_u",
	OpcodeVecI16x8ExtaddPairwiseI8x16S: "i16x8.extadd_pairwise_i8x16_s",
	OpcodeVecI16x8ExtaddPairwiseI8x16U: "i16x8.extadd_pairwise_i8x16_u",
	OpcodeVecI32x4ExtaddPairwiseI16x8S: "i32x4.extadd_pairwise_i16x8_s",
	OpcodeVecI32x4ExtaddPairwiseI16x8U: "i32x4.extadd_pairwise_i16x8_u",
	OpcodeVecI16x8Abs:                  "i16x8.abs",
	OpcodeVecI16x8Neg:                  "i16x8.neg",
	OpcodeVecI16x8Q15mulrSatS:          "i16x8.q15mulr_sat_s",
	OpcodeVecI16x8AllTrue:              "i16x8.all_true",
	OpcodeVecI16x8Bitmask:              "i16x8.bitmask",
	OpcodeVecI16x8NarrowI32x4S:         "i16x8.narrow_i32x4_s",
	OpcodeVecI16x8NarrowI32x4U:         "i16x8.narrow_i32x4_u",
	OpcodeVecI16x8ExtendLowI8x16S:      "i16x8.extend_low_i8x16_s",
	OpcodeVecI16x8ExtendHighI8x16S:     "i16x8.extend_high_i8x16_s",
	OpcodeVecI16x8ExtendLowI8x16U:      "i16x8.extend_low_i8x16_u",
	OpcodeVecI16x8ExtendHighI8x16U:     "i16x8.extend_high_i8x16_u",
	OpcodeVecI16x8Shl:                  "i16x8.shl",
	OpcodeVecI16x8ShrS:                 "i16x8.shr_s",
	OpcodeVecI16x8ShrU:                 "i16x8.shr_u",
	OpcodeVecI16x8Add:                  "i16x8.add",
	OpcodeVecI16x8AddSatS:              "i16x8.add_sat_s",
	OpcodeVecI16x8AddSatU:              "i16x8.add_sat_u",
	OpcodeVecI16x8Sub:                  "i16x8.sub",
	OpcodeVecI16x8SubSatS:              "i16x8.sub_sat_s",
	OpcodeVecI16x8SubSatU:              "i16x8.sub_sat_u",
	OpcodeVecF64x2Nearest:              "f64x2.nearest",
	OpcodeVecI16x8Mul:                  "i16x8.mul",
	OpcodeVecI16x8MinS:                 "i16x8.min_s",
	OpcodeVecI16x8MinU:                 "i16x8.min_u",
	OpcodeVecI16x8MaxS:                 "i16x8.max_s",
	OpcodeVecI16x8MaxU:                 "i16x8.max_u",
	OpcodeVecI16x8AvgrU:                "i16x8.avgr_u",
	OpcodeVecI16x8ExtmulLowI8x16S:      "i16x8.extmul_low_i8x16_s",
	OpcodeVecI16x8ExtmulHighI8x16S:     "i16x8.extmul_high_i8x16_s",
	OpcodeVecI16x8ExtmulLowI8x16U:      "i16x8.extmul_low_i8x16_u",
	OpcodeVecI16x8ExtmulHighI8x16U:     "i16x8.extmul_high_i8x16_u",
	OpcodeVecI32x4Abs:                  "i32x4.abs",
	OpcodeVecI32x4Neg:                  "i32x4.neg",
	OpcodeVecI32x4AllTrue:              "i32x4.all_true",
	OpcodeVecI32x4Bitmask:              "i32x4.bitmask",
	OpcodeVecI32x4ExtendLowI16x8S:      "i32x4.extend_low_i16x8_s",
	OpcodeVecI32x4ExtendHighI16x8S:     "i32x4.extend_high_i16x8_s",
	OpcodeVecI32x4ExtendLowI16x8U:      "i32x4.extend_low_i16x8_u",
	OpcodeVecI32x4ExtendHighI16x8U:     "i32x4.extend_high_i16x8_u",
	OpcodeVecI32x4Shl:                  "i32x4.shl",
	OpcodeVecI32x4ShrS:                 "i32x4.shr_s",
	OpcodeVecI32x4ShrU:                 "i32x4.shr_u",
	OpcodeVecI32x4Add:                  "i32x4.add",
	OpcodeVecI32x4Sub:                  "i32x4.sub",
	OpcodeVecI32x4Mul:                  "i32x4.mul",
	OpcodeVecI32x4MinS:                 "i32x4.min_s",
	OpcodeVecI32x4MinU:                 "i32x4.min_u",
	OpcodeVecI32x4MaxS:                 "i32x4.max_s",
	OpcodeVecI32x4MaxU:                 "i32x4.max_u",
	OpcodeVecI32x4DotI16x8S:            "i32x4.dot_i16x8_s",
	OpcodeVecI32x4ExtmulLowI16x8S:      "i32x4.extmul_low_i16x8_s",
	OpcodeVecI32x4ExtmulHighI16x8S:     "i32x4.extmul_high_i16x8_s",
	OpcodeVecI32x4ExtmulLowI16x8U:      "i32x4.extmul_low_i16x8_u",
	OpcodeVecI32x4ExtmulHighI16x8U:     "i32x4.extmul_high_i16x8_u",
	OpcodeVecI64x2Abs:                  "i64x2.abs",
	OpcodeVecI64x2Neg:                  "i64x2.neg",
	OpcodeVecI64x2AllTrue:              "i64x2.all_true",
	OpcodeVecI64x2Bitmask:              "i64x2.bitmask",
	OpcodeVecI64x2ExtendLowI32x4S:      "i64x2.extend_low_i32x4_s",
	OpcodeVecI64x2ExtendHighI32x4S:     "i64x2.extend_high_i32x4_s",
	OpcodeVecI64x2ExtendLowI32x4U:      "i64x2.extend_low_i32x4_u",
	OpcodeVecI64x2ExtendHighI32x4U:     "i64x2.extend_high_i32x4_u",
	OpcodeVecI64x2Shl:                  "i64x2.shl",
	OpcodeVecI64x2ShrS:                 "i64x2.shr_s",
	OpcodeVecI64x2ShrU:                 "i64x2.shr_u",
	OpcodeVecI64x2Add:                  "i64x2.add",
	OpcodeVecI64x2Sub:                  "i64x2.sub",
	OpcodeVecI64x2Mul:                  "i64x2.mul",
	OpcodeVecI64x2Eq:                   "i64x2.eq",
	OpcodeVecI64x2Ne:                   "i64x2.ne",
	OpcodeVecI64x2LtS:                  "i64x2.lt_s",
	OpcodeVecI64x2GtS:                  "i64x2.gt_s",
	OpcodeVecI64x2LeS:                  "i64x2.le_s",
	OpcodeVecI64x2GeS:                  "i64x2.ge_s",
	OpcodeVecI64x2ExtmulLowI32x4S:      "i64x2.extmul_low_i32x4_s",
	OpcodeVecI64x2ExtmulHighI32x4S:     "i64x2.extmul_high_i32x4_s",
	OpcodeVecI64x2ExtmulLowI32x4U:      "i64x2.extmul_low_i32x4_u",
	OpcodeVecI64x2ExtmulHighI32x4U:     "i64x2.extmul_high_i32x4_u",
	OpcodeVecF32x4Abs:                  "f32x4.abs",
	OpcodeVecF32x4Neg:                  "f32x4.neg",
	OpcodeVecF32x4Sqrt:                 "f32x4.sqrt",
	OpcodeVecF32x4Add:                  "f32x4.add",
	OpcodeVecF32x4Sub:                  "f32x4.sub",
	OpcodeVecF32x4Mul:                  "f32x4.mul",
	OpcodeVecF32x4Div:                  "f32x4.div",
	OpcodeVecF32x4Min:                  "f32x4.min",
	OpcodeVecF32x4Max:                  "f32x4.max",
	OpcodeVecF32x4Pmin:                 "f32x4.pmin",
	OpcodeVecF32x4Pmax:                 "f32x4.pmax",
	OpcodeVecF64x2Abs:                  "f64x2.abs",
	OpcodeVecF64x2Neg:                  "f64x2.neg",
	OpcodeVecF64x2Sqrt:                 "f64x2.sqrt",
	OpcodeVecF64x2Add:                  "f64x2.add",
	OpcodeVecF64x2Sub:                  "f64x2.sub",
	OpcodeVecF64x2Mul:                  "f64x2.mul",
	OpcodeVecF64x2Div:                  "f64x2.div",
	OpcodeVecF64x2Min:                  "f64x2.min",
	OpcodeVecF64x2Max:                  "f64x2.max",
	OpcodeVecF64x2Pmin:                 "f64x2.pmin",
	OpcodeVecF64x2Pmax:                 "f64x2.pmax",
	OpcodeVecI32x4TruncSatF32x4S:       "i32x4.trunc_sat_f32x4_s",
	OpcodeVecI32x4TruncSatF32x4U:       "i32x4.trunc_sat_f32x4_u",
	OpcodeVecF32x4ConvertI32x4S:        "f32x4.convert_i32x4_s",
	OpcodeVecF32x4ConvertI32x4U:        "f32x4.convert_i32x4_u",
	OpcodeVecI32x4TruncSatF64x2SZero:   "i32x4.trunc_sat_f64x2_s_zero",
	OpcodeVecI32x4TruncSatF64x2UZero:   "i32x4.trunc_sat_f64x2_u_zero",
	OpcodeVecF64x2ConvertLowI32x4S:     "f64x2.convert_low_i32x4_s",
	OpcodeVecF64x2ConvertLowI32x4U:     "f64x2.convert_low_i32x4_u",

	OpcodeAtomicMemoryNotify:     "memory.atomic.notify",
	OpcodeAtomicMemoryWait32:     "memory.atomic.wait32",
	OpcodeAtomicMemoryWait64:     "memory.atomic.wait64",
	OpcodeAtomicFence:            "atomic.fence",
	OpcodeAtomicI32Load:          "i32.atomic.load",
	OpcodeAtomicI64Load:          "i64.atomic.load",
	OpcodeAtomicI32Load8U:        "i32.atomic.load8_u",
	OpcodeAtomicI32Load16U:       "i32.atomic.load16_u",
	OpcodeAtomicI64Load8U:        "i64.atomic.load8_u",
	OpcodeAtomicI64Load16U:       "i64.atomic.load16_u",
	OpcodeAtomicI64Load32U:       "i64.atomic.load32_u",
	OpcodeAtomicI32Store:         "i32.atomic.store",
	OpcodeAtomicI64Store:         "i64.atomic.store",
	OpcodeAtomicI32Store8:        "i32.atomic.store8",
	OpcodeAtomicI32Store16:       "i32.atomic.store16",
	OpcodeAtomicI64Store8:        "i64.atomic.store8",
	OpcodeAtomicI64Store16:       "i64.atomic.store16",
	OpcodeAtomicI64Store32:       "i64.atomic.store32",
	OpcodeAtomicI32RmwAdd:        "i32.atomic.rmw.add",
	OpcodeAtomicI64RmwAdd:        "i64.atomic.rmw.add",
	OpcodeAtomicI32Rmw8AddU:      "i32.atomic.rmw8.add_u",
	OpcodeAtomicI32Rmw16AddU:     "i32.atomic.rmw16.add_u",
	OpcodeAtomicI64Rmw8AddU:      "i64.atomic.rmw8.add_u",
	OpcodeAtomicI64Rmw16AddU:     "i64.atomic.rmw16.add_u",
	OpcodeAtomicI64Rmw32AddU:     "i64.atomic.rmw32.add_u",
	OpcodeAtomicI32RmwSub:        "i32.atomic.rmw.sub",
	OpcodeAtomicI64RmwSub:        "i64.atomic.rmw.sub",
	OpcodeAtomicI32Rmw8SubU:      "i32.atomic.rmw8.sub_u",
	OpcodeAtomicI32Rmw16SubU:     "i32.atomic.rmw16.sub_u",
	OpcodeAtomicI64Rmw8SubU:      "i64.atomic.rmw8.sub_u",
	OpcodeAtomicI64Rmw16SubU:     "i64.atomic.rmw16.sub_u",
	OpcodeAtomicI64Rmw32SubU:     "i64.atomic.rmw32.sub_u",
	OpcodeAtomicI32RmwAnd:        "i32.atomic.rmw.and",
	OpcodeAtomicI64RmwAnd:        "i64.atomic.rmw.and",
	OpcodeAtomicI32Rmw8AndU:      "i32.atomic.rmw8.and_u",
	OpcodeAtomicI32Rmw16AndU:     "i32.atomic.rmw16.and_u",
	OpcodeAtomicI64Rmw8AndU:      "i64.atomic.rmw8.and_u",
	OpcodeAtomicI64Rmw16AndU:     "i64.atomic.rmw16.and_u",
	OpcodeAtomicI64Rmw32AndU:     "i64.atomic.rmw32.and_u",
	OpcodeAtomicI32RmwOr:         "i32.atomic.rmw.or",
	OpcodeAtomicI64RmwOr:         "i64.atomic.rmw.or",
	OpcodeAtomicI32Rmw8OrU:       "i32.atomic.rmw8.or_u",
	OpcodeAtomicI32Rmw16OrU:      "i32.atomic.rmw16.or_u",
	OpcodeAtomicI64Rmw8OrU:       "i64.atomic.rmw8.or_u",
	OpcodeAtomicI64Rmw16OrU:      "i64.atomic.rmw16.or_u",
	OpcodeAtomicI64Rmw32OrU:      "i64.atomic.rmw32.or_u",
	OpcodeAtomicI32RmwXor:        "i32.atomic.rmw.xor",
	OpcodeAtomicI64RmwXor:        "i64.atomic.rmw.xor",
	OpcodeAtomicI32Rmw8XorU:      "i32.atomic.rmw8.xor_u",
	OpcodeAtomicI32Rmw16XorU:     "i32.atomic.rmw16.xor_u",
	OpcodeAtomicI64Rmw8XorU:      "i64.atomic.rmw8.xor_u",
	OpcodeAtomicI64Rmw16XorU:     "i64.atomic.rmw16.xor_u",
	OpcodeAtomicI64Rmw32XorU:     "i64.atomic.rmw32.xor_u",
	OpcodeAtomicI32RmwXchg:       "i32.atomic.rmw.xchg",
	OpcodeAtomicI64RmwXchg:       "i64.atomic.rmw.xchg",
	OpcodeAtomicI32Rmw8XchgU:     "i32.atomic.rmw8.xchg_u",
	OpcodeAtomicI32Rmw16XchgU:    "i32.atomic.rmw16.xchg_u",
	OpcodeAtomicI64Rmw8XchgU:     "i64.atomic.rmw8.xchg_u",
	OpcodeAtomicI64Rmw16XchgU:    "i64.atomic.rmw16.xchg_u",
	OpcodeAtomicI64Rmw32XchgU:    "i64.atomic.rmw32.xchg_u",
	OpcodeAtomicI32RmwCmpxchg:    "i32.atomic.rmw.cmpxchg",
	OpcodeAtomicI64RmwCmpxchg:    "i64.atomic.rmw.cmpxchg",
	OpcodeAtomicI32Rmw8CmpxchgU:  "i32.atomic.rmw8.cmpxchg_u",
	OpcodeAtomicI32Rmw16CmpxchgU: "i32.atomic.rmw16.cmpxchg_u",
	OpcodeAtomicI64Rmw8CmpxchgU:  "i64.atomic.rmw8.cmpxchg_u",
	OpcodeAtomicI64Rmw16CmpxchgU: "i64.atomic.rmw16.cmpxchg_u",
	OpcodeAtomicI64Rmw32CmpxchgU: "i64.atomic.rmw32.cmpxchg_u",
}

var (
	allOpcodes    []Opcode
	opcodesByName map[string]Opcode
)

func init() {
	opcodesByName = make(map[string]Opcode, len(instructionNames))
	allOpcodes = make([]Opcode, 0, len(instructionNames))
	for op, name := range instructionNames {
		opcodesByName[name] = op
		allOpcodes = append(allOpcodes, op)
	}
	sort.Slice(allOpcodes, func(i, j int) bool { return allOpcodes[i] < allOpcodes[j] })
}

// InstructionName returns the instruction name corresponding to the given opcode.
// Returns "unknown(0x..)" if the opcode is not known.
func InstructionName(oc Opcode) string {
	if name, ok := instructionNames[oc]; ok {
		return name
	}
	return fmt.Sprintf("unknown(%#x)", uint32(oc))
}

// OpcodeByName returns the opcode of the instruction with the given text format name.
func OpcodeByName(name string) (Opcode, bool) {
	op, ok := opcodesByName[name]
	return op, ok
}

// Opcodes returns every known opcode in ascending order.
func Opcodes() []Opcode {
	ret := make([]Opcode, len(allOpcodes))
	copy(ret, allOpcodes)
	return ret
}
