package flatir

import (
	"fmt"

	"github.com/flatwasm/flatwasm/internal/wasm"
)

// unwind computes the DropKeep operation which leaves exactly the values expected by the target of the branch
// of ins to label: the results of the target scope for forward branches, or its parameters for backward
// branches to a loop. ok is false when the stack already has the expected shape.
func (c *compiler) unwind(ins *wasm.AnnotatedInstruction, label int) (op Operation, ok bool, err error) {
	instrs := c.body.Instructions
	forward := label > ins.Address

	var target *wasm.AnnotatedInstruction
	if forward {
		target = instrs[label]
	} else {
		if label == 0 {
			return op, false, fmt.Errorf("%w: backward branch to %d", wasm.ErrMalformedBody, label)
		}
		target = instrs[label-1]
	}

	opener := target.Scope
	var keep []wasm.ValType
	if opener == nil || opener.Opcode == wasm.OpcodeEnd {
		// Branch to the function.
		opener, keep = nil, c.sig.Results
	} else {
		bt, err := c.blockType(opener)
		if err != nil {
			return op, false, err
		}
		if forward {
			keep = bt.Results
		} else {
			keep = bt.Params
		}
	}

	if err = c.stack.checkTop(keep); err != nil {
		return
	}
	base, err := c.stack.heightAt(opener)
	if err != nil {
		return
	}

	drop := c.stack.height() - base - len(keep)
	if drop <= 0 {
		return op, false, nil
	}
	return newOperationDropKeep(drop, c.stack.top(drop+len(keep))), true, nil
}

// emitUnwind emits the DropKeep operation of the branch, if any.
func (c *compiler) emitUnwind(ins *wasm.AnnotatedInstruction, label int) error {
	op, ok, err := c.unwind(ins, label)
	if err != nil {
		return err
	}
	if ok {
		c.emit(op)
	}
	return nil
}
