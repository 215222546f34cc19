package flatir

import (
	"errors"
	"fmt"

	"github.com/flatwasm/flatwasm/internal/wasm"
)

var (
	// ErrTypeMismatch is returned when an operand type does not match the type an instruction expects.
	ErrTypeMismatch = errors.New("type mismatch")
	// ErrStackUnderflow is returned when an instruction pops more operands than its scope holds.
	ErrStackUnderflow = errors.New("stack underflow")
	// ErrScopeMismatch is returned when the operand stack does not have the shape declared by a scope,
	// at its end or at the end of the function.
	ErrScopeMismatch = errors.New("scope mismatch")
	// ErrUnsupportedOpcode is returned for opcodes without a known stack effect.
	ErrUnsupportedOpcode = errors.New("unsupported opcode")
	// ErrUnresolvedLabel is returned when a lowered operation refers to a label that was not emitted.
	ErrUnresolvedLabel = errors.New("unresolved label")
)

// VerificationError is returned when a function body cannot be lowered.
// It identifies the offending instruction, and wraps one of the errors of this package
// or of the wasm package describing the reason.
type VerificationError struct {
	Opcode wasm.Opcode
	// Address is the position of the instruction in the function body.
	Address int
	Err     error
}

func (e *VerificationError) Error() string {
	return fmt.Sprintf("%s at %d: %v", wasm.InstructionName(e.Opcode), e.Address, e.Err)
}

func (e *VerificationError) Unwrap() error {
	return e.Err
}

// FunctionError is returned by CompileModule when a function fails to lower.
type FunctionError struct {
	// Index is the function index, which includes imported functions.
	Index uint32
	Err   error
}

func (e *FunctionError) Error() string {
	return fmt.Sprintf("function[%d]: %v", e.Index, e.Err)
}

func (e *FunctionError) Unwrap() error {
	return e.Err
}
