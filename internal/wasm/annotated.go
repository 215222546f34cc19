package wasm

import (
	"fmt"
	"strings"
)

// UndefinedLabel is the value of labels that an instruction does not use.
const UndefinedLabel = -1

// CatchKind is the kind of a catch clause of OpcodeTryTable, using its binary encoding.
type CatchKind byte

const (
	// CatchKindCatch catches exceptions of a tag and pushes the tag parameters.
	CatchKindCatch CatchKind = 0x00
	// CatchKindCatchRef is CatchKindCatch that additionally pushes the caught exnref.
	CatchKindCatchRef CatchKind = 0x01
	// CatchKindCatchAll catches any exception.
	CatchKindCatchAll CatchKind = 0x02
	// CatchKindCatchAllRef catches any exception and pushes its exnref.
	CatchKindCatchAllRef CatchKind = 0x03
)

func (k CatchKind) String() string {
	switch k {
	case CatchKindCatch:
		return "catch"
	case CatchKindCatchRef:
		return "catch_ref"
	case CatchKindCatchAll:
		return "catch_all"
	case CatchKindCatchAllRef:
		return "catch_all_ref"
	}
	return fmt.Sprintf("catch(%#x)", byte(k))
}

// HasTag returns true if the clause only matches exceptions of its tag.
func (k CatchKind) HasTag() bool {
	return k == CatchKindCatch || k == CatchKindCatchRef
}

// Catch is a catch clause of OpcodeTryTable.
type Catch struct {
	Kind CatchKind
	// Tag is the tag index. Unused by CatchKindCatchAll and CatchKindCatchAllRef.
	Tag uint32
	// Label is the relative branch depth of the clause, counted from outside the try_table.
	Label uint32
	// ResolvedLabel is the instruction position Label branches to.
	ResolvedLabel int
}

// Instruction is a structured instruction whose branch immediates are relative depths, as decoded.
type Instruction struct {
	Opcode   Opcode
	Operands []uint64
	Catches  []Catch
}

// AnnotatedInstruction is a structured instruction ready to be lowered: its labels are
// resolved to instruction positions within the same FunctionBody.
//
// Label conventions:
//   - a forward branch to a block, if or try_table targets the position of its OpcodeEnd.
//   - a branch to the function targets the position of the final OpcodeEnd, whose Scope is itself.
//   - a backward branch to a loop targets the position right after its OpcodeLoop.
//   - OpcodeIf has LabelFalse at the instruction after its OpcodeElse, or at its OpcodeEnd without else.
//   - OpcodeElse has LabelTrue at the OpcodeEnd of the if.
//   - OpcodeBrIf has LabelTrue at its target and LabelFalse at the next instruction.
//   - OpcodeBrTable has LabelTable with the targets followed by the default target.
type AnnotatedInstruction struct {
	// Address is the position of the instruction in the function body.
	Address  int
	Opcode   Opcode
	Operands []uint64
	// Depth is the number of open scopes around the instruction. OpcodeElse and OpcodeEnd have the depth
	// of the body they close.
	Depth      int
	LabelTrue  int
	LabelFalse int
	LabelTable []int
	Catches    []Catch
	// Scope is the instruction that opened the scope this instruction is in, or for structured instructions,
	// the scope they open or close.
	Scope *AnnotatedInstruction
}

// Operand returns the operand at the given index, or zero if absent.
func (a *AnnotatedInstruction) Operand(i int) uint64 {
	if i < len(a.Operands) {
		return a.Operands[i]
	}
	return 0
}

func (a *AnnotatedInstruction) String() string {
	var sb strings.Builder
	sb.WriteString(InstructionName(a.Opcode))
	for _, o := range a.Operands {
		fmt.Fprintf(&sb, " %d", o)
	}
	for _, c := range a.Catches {
		fmt.Fprintf(&sb, " (%s", c.Kind)
		if c.Kind.HasTag() {
			fmt.Fprintf(&sb, " %d", c.Tag)
		}
		fmt.Fprintf(&sb, " %d)", c.Label)
	}
	return sb.String()
}

// FunctionBody is the code of a function ready to be lowered.
type FunctionBody struct {
	// Locals are the types of the declared locals, excluding the function parameters.
	Locals []ValType
	// Instructions end with the OpcodeEnd of the function.
	Instructions []*AnnotatedInstruction
}
