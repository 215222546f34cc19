package flatir

import (
	"fmt"
	"strings"

	"github.com/flatwasm/flatwasm/internal/wasm"
)

// Label identifies a position in the lowered operations. Labels lower than the number of instructions
// of the function body are instruction positions, the others are synthesized during lowering.
type Label uint64

func (l Label) String() string {
	return fmt.Sprintf("L%d", uint64(l))
}

// OperationKind is the kind of each implementation of Operation interface.
type OperationKind uint16

const (
	// OperationKindLabel marks the position of the label in Operands[0].
	OperationKindLabel OperationKind = iota
	// OperationKindGoto jumps to the label in Operands[0].
	OperationKindGoto
	// OperationKindIfEq pops an i32 and jumps to the label in Operands[0] if it is zero.
	OperationKindIfEq
	// OperationKindIfNe pops an i32 and jumps to the label in Operands[0] if it is not zero.
	OperationKindIfNe
	// OperationKindSwitch pops an i32 index and jumps to the label at that index of Operands,
	// or to the last one when the index is out of range.
	OperationKindSwitch
	// OperationKindDropKeep discards Operands[0] values below the top values. Operands[1:] are the types of
	// the discarded and kept values ordered from the bottom to the top of the stack.
	OperationKindDropKeep
	// OperationKindDrop discards the top value whose type is Operands[0].
	OperationKindDrop
	// OperationKindSelect is the select instruction on values of type Operands[0].
	OperationKindSelect
	// OperationKindLocalTee is local.tee of the local Operands[0] whose type is Operands[1].
	OperationKindLocalTee
	// OperationKindReturn returns the top values, whose types are Operands.
	OperationKindReturn
	// OperationKindTrap traps unconditionally.
	OperationKindTrap
	// OperationKindTryCatchBlock declares that exceptions raised between the labels Operands[0] and
	// Operands[1] are handled at the label Operands[2].
	OperationKindTryCatchBlock
	// OperationKindCatchStart stores the exception being handled in the current exception slot.
	OperationKindCatchStart
	// OperationKindCatchCompareTag pushes 1 if the current exception has the tag Operands[0], 0 otherwise.
	OperationKindCatchCompareTag
	// OperationKindCatchUnboxParams pushes the parameters of the current exception, of tag Operands[0].
	OperationKindCatchUnboxParams
	// OperationKindCatchRegisterException pushes a reference to the current exception.
	OperationKindCatchRegisterException
	// OperationKindCatchEnd raises the current exception again.
	OperationKindCatchEnd
	// OperationKindWasm is a Wasm instruction without control flow meaning. Its opcode is in Operation.Opcode
	// and its original immediates are the Operands.
	OperationKindWasm

	// operationKindEnd is always placed at the bottom of this iota definition to be used in the test.
	operationKindEnd
)

func (o OperationKind) String() (ret string) {
	switch o {
	case OperationKindLabel:
		ret = "Label"
	case OperationKindGoto:
		ret = "Goto"
	case OperationKindIfEq:
		ret = "IfEq"
	case OperationKindIfNe:
		ret = "IfNe"
	case OperationKindSwitch:
		ret = "Switch"
	case OperationKindDropKeep:
		ret = "DropKeep"
	case OperationKindDrop:
		ret = "Drop"
	case OperationKindSelect:
		ret = "Select"
	case OperationKindLocalTee:
		ret = "LocalTee"
	case OperationKindReturn:
		ret = "Return"
	case OperationKindTrap:
		ret = "Trap"
	case OperationKindTryCatchBlock:
		ret = "TryCatchBlock"
	case OperationKindCatchStart:
		ret = "CatchStart"
	case OperationKindCatchCompareTag:
		ret = "CatchCompareTag"
	case OperationKindCatchUnboxParams:
		ret = "CatchUnboxParams"
	case OperationKindCatchRegisterException:
		ret = "CatchRegisterException"
	case OperationKindCatchEnd:
		ret = "CatchEnd"
	case OperationKindWasm:
		ret = "Wasm"
	default:
		panic(fmt.Errorf("unknown operation %d", o))
	}
	return
}

// Operation is a lowered instruction. Its Operands are self-describing given its Kind,
// see the documentation of each OperationKind.
type Operation struct {
	Kind OperationKind
	// Opcode is the Wasm instruction of OperationKindWasm.
	Opcode   wasm.Opcode
	Operands []uint64
}

// Labels returns the labels the operation jumps to, or refers to in the case of OperationKindTryCatchBlock.
func (o Operation) Labels() []Label {
	switch o.Kind {
	case OperationKindGoto, OperationKindIfEq, OperationKindIfNe, OperationKindSwitch, OperationKindTryCatchBlock:
		ret := make([]Label, len(o.Operands))
		for i, l := range o.Operands {
			ret[i] = Label(l)
		}
		return ret
	}
	return nil
}

// String implements fmt.Stringer.
func (o Operation) String() string {
	switch o.Kind {
	case OperationKindLabel:
		return Label(o.Operands[0]).String() + ":"
	case OperationKindGoto, OperationKindIfEq, OperationKindIfNe:
		return fmt.Sprintf("%s %s", o.Kind, Label(o.Operands[0]))
	case OperationKindSwitch:
		return fmt.Sprintf("%s %s", o.Kind, o.Labels())
	case OperationKindDropKeep:
		return fmt.Sprintf("%s %d %s", o.Kind, o.Operands[0], valTypesString(o.Operands[1:]))
	case OperationKindDrop, OperationKindSelect:
		return fmt.Sprintf("%s %s", o.Kind, wasm.ValType(o.Operands[0]))
	case OperationKindLocalTee:
		return fmt.Sprintf("%s %d %s", o.Kind, o.Operands[0], wasm.ValType(o.Operands[1]))
	case OperationKindReturn:
		return fmt.Sprintf("%s %s", o.Kind, valTypesString(o.Operands))
	case OperationKindTryCatchBlock:
		return fmt.Sprintf("%s %s %s %s", o.Kind, Label(o.Operands[0]), Label(o.Operands[1]), Label(o.Operands[2]))
	case OperationKindCatchCompareTag, OperationKindCatchUnboxParams:
		return fmt.Sprintf("%s %d", o.Kind, o.Operands[0])
	case OperationKindWasm:
		var sb strings.Builder
		sb.WriteString(wasm.InstructionName(o.Opcode))
		for _, v := range o.Operands {
			fmt.Fprintf(&sb, " %d", v)
		}
		return sb.String()
	}
	return o.Kind.String()
}

func valTypesString(ids []uint64) string {
	strs := make([]string, len(ids))
	for i, id := range ids {
		strs[i] = wasm.ValType(id).String()
	}
	return "[" + strings.Join(strs, " ") + "]"
}

// Disassemble returns a human-readable form of the operations, one per line.
func Disassemble(ops []Operation) string {
	var sb strings.Builder
	for i, op := range ops {
		if i > 0 {
			sb.WriteByte('\n')
		}
		if op.Kind != OperationKindLabel {
			sb.WriteByte('\t')
		}
		sb.WriteString(op.String())
	}
	return sb.String()
}

func newOperationLabel(l Label) Operation {
	return Operation{Kind: OperationKindLabel, Operands: []uint64{uint64(l)}}
}

func newOperationGoto(l Label) Operation {
	return Operation{Kind: OperationKindGoto, Operands: []uint64{uint64(l)}}
}

func newOperationIfEq(l Label) Operation {
	return Operation{Kind: OperationKindIfEq, Operands: []uint64{uint64(l)}}
}

func newOperationIfNe(l Label) Operation {
	return Operation{Kind: OperationKindIfNe, Operands: []uint64{uint64(l)}}
}

func newOperationSwitch(targets []Label) Operation {
	operands := make([]uint64, len(targets))
	for i, l := range targets {
		operands[i] = uint64(l)
	}
	return Operation{Kind: OperationKindSwitch, Operands: operands}
}

// newOperationDropKeep creates a OperationKindDropKeep discarding drop values below keep values.
// types are the types of the drop+keep values ordered from the bottom to the top of the stack.
func newOperationDropKeep(drop int, types []wasm.ValType) Operation {
	operands := make([]uint64, 0, len(types)+1)
	operands = append(operands, uint64(drop))
	return Operation{Kind: OperationKindDropKeep, Operands: appendTypeIDs(operands, types)}
}

func newOperationDrop(t wasm.ValType) Operation {
	return Operation{Kind: OperationKindDrop, Operands: []uint64{uint64(t)}}
}

func newOperationSelect(t wasm.ValType) Operation {
	return Operation{Kind: OperationKindSelect, Operands: []uint64{uint64(t)}}
}

func newOperationLocalTee(index uint64, t wasm.ValType) Operation {
	return Operation{Kind: OperationKindLocalTee, Operands: []uint64{index, uint64(t)}}
}

func newOperationReturn(types []wasm.ValType) Operation {
	return Operation{Kind: OperationKindReturn, Operands: appendTypeIDs(make([]uint64, 0, len(types)), types)}
}

func newOperationTrap() Operation {
	return Operation{Kind: OperationKindTrap}
}

func newOperationTryCatchBlock(start, end, handler Label) Operation {
	return Operation{Kind: OperationKindTryCatchBlock, Operands: []uint64{uint64(start), uint64(end), uint64(handler)}}
}

func newOperationCatchStart() Operation {
	return Operation{Kind: OperationKindCatchStart}
}

func newOperationCatchCompareTag(tag uint32) Operation {
	return Operation{Kind: OperationKindCatchCompareTag, Operands: []uint64{uint64(tag)}}
}

func newOperationCatchUnboxParams(tag uint32) Operation {
	return Operation{Kind: OperationKindCatchUnboxParams, Operands: []uint64{uint64(tag)}}
}

func newOperationCatchRegisterException() Operation {
	return Operation{Kind: OperationKindCatchRegisterException}
}

func newOperationCatchEnd() Operation {
	return Operation{Kind: OperationKindCatchEnd}
}

func newOperationWasm(op wasm.Opcode, operands []uint64) Operation {
	return Operation{Kind: OperationKindWasm, Opcode: op, Operands: operands}
}

func appendTypeIDs(operands []uint64, types []wasm.ValType) []uint64 {
	for _, t := range types {
		operands = append(operands, uint64(t))
	}
	return operands
}
