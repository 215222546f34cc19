package flatir

import (
	"fmt"

	"github.com/flatwasm/flatwasm/internal/wasm"
)

// CompilationResult is the lowered form of a function body.
type CompilationResult struct {
	// Operations are the flat operations. Every label referenced by an operation is marked by exactly
	// one OperationKindLabel.
	Operations []Operation
	// LabelPositions maps each label to the index of its OperationKindLabel in Operations.
	LabelPositions map[Label]int
	// Signature is the type of the lowered function.
	Signature *wasm.FunctionType
}

type compiler struct {
	meta   *wasm.Metadata
	sig    *wasm.FunctionType
	body   *wasm.FunctionBody
	stack  *typeStack
	result []Operation

	// labels are the instruction positions which are branch targets.
	labels map[int]struct{}
	// nextLabel is the next synthesized label. It starts at the length of the body so that
	// synthesized labels never collide with instruction positions.
	nextLabel      Label
	tryCatchBlocks map[*wasm.AnnotatedInstruction]*tryCatchBlock

	pc int
	// exitBlockDepth is the depth of the scope whose remaining instructions are unreachable, or -1.
	exitBlockDepth int
}

// Compile lowers the body of the function at funcIndex into flat operations, verifying the operand
// types of every reachable instruction.
//
// Errors are returned as *VerificationError when an instruction is at fault. No operation is returned on error.
func Compile(meta *wasm.Metadata, funcIndex uint32, body *wasm.FunctionBody) (*CompilationResult, error) {
	sig, err := meta.Function(funcIndex)
	if err != nil {
		return nil, err
	}
	c := newCompiler(meta, sig, body)
	return c.compile()
}

func newCompiler(meta *wasm.Metadata, sig *wasm.FunctionType, body *wasm.FunctionBody) *compiler {
	return &compiler{
		meta:           meta,
		sig:            sig,
		body:           body,
		stack:          newTypeStack(),
		labels:         map[int]struct{}{},
		nextLabel:      Label(len(body.Instructions)),
		tryCatchBlocks: map[*wasm.AnnotatedInstruction]*tryCatchBlock{},
		exitBlockDepth: -1,
	}
}

func (c *compiler) compile() (*CompilationResult, error) {
	instrs := c.body.Instructions
	if len(instrs) == 0 || instrs[len(instrs)-1].Opcode != wasm.OpcodeEnd {
		return nil, fmt.Errorf("%w: function body must end with end", wasm.ErrMalformedBody)
	}

	if err := c.scanLabels(); err != nil {
		return nil, err
	}

	// The function is the outermost scope. Its parameters are locals, not operands.
	if err := c.stack.enterScope(nil, &wasm.FunctionType{Results: c.sig.Results}); err != nil {
		return nil, err
	}

	for c.pc = 0; c.pc < len(instrs); c.pc++ {
		ins := instrs[c.pc]
		if _, ok := c.labels[c.pc]; ok {
			c.emit(newOperationLabel(Label(c.pc)))
		}

		// Skip the instructions following an unconditional control transfer, up to the else or end of its scope.
		if c.exitBlockDepth >= 0 {
			if ins.Depth > c.exitBlockDepth || (ins.Opcode != wasm.OpcodeElse && ins.Opcode != wasm.OpcodeEnd) {
				continue
			}
			c.exitBlockDepth = -1
			if ins.Opcode == wasm.OpcodeEnd {
				c.stack.scopeRestore()
			}
		}

		if err := c.handleInstruction(ins); err != nil {
			return nil, &VerificationError{Opcode: ins.Opcode, Address: ins.Address, Err: err}
		}
	}

	// Implicit return at the end of the function.
	last := instrs[len(instrs)-1]
	if err := c.emitReturn(); err != nil {
		return nil, &VerificationError{Opcode: last.Opcode, Address: last.Address, Err: err}
	}
	if err := c.stack.verifyEmpty(); err != nil {
		return nil, &VerificationError{Opcode: last.Opcode, Address: last.Address, Err: err}
	}
	return c.finish()
}

// scanLabels walks the body backwards to collect the branch targets, and to allocate the labels of
// every try_table. The try_table markers are emitted first, inner regions before outer ones.
func (c *compiler) scanLabels() error {
	instrs := c.body.Instructions
	for i := len(instrs) - 1; i >= 0; i-- {
		ins := instrs[i]
		if err := c.addLabel(ins, ins.LabelTrue); err != nil {
			return err
		}
		if err := c.addLabel(ins, ins.LabelFalse); err != nil {
			return err
		}
		for _, l := range ins.LabelTable {
			if err := c.addLabel(ins, l); err != nil {
				return err
			}
		}
		for _, catch := range ins.Catches {
			if err := c.addLabel(ins, catch.ResolvedLabel); err != nil {
				return err
			}
		}

		if ins.Opcode == wasm.OpcodeTryTable && !c.isEmptyTryTable(i) {
			block := c.newTryCatchBlock(ins)
			c.tryCatchBlocks[ins] = block
			c.emit(newOperationTryCatchBlock(block.start, block.end, block.handler))
		}
	}
	return nil
}

func (c *compiler) addLabel(ins *wasm.AnnotatedInstruction, l int) error {
	if l == wasm.UndefinedLabel {
		return nil
	}
	if l < 0 || l >= len(c.body.Instructions) {
		return &VerificationError{
			Opcode: ins.Opcode, Address: ins.Address,
			Err: fmt.Errorf("%w: label %d out of range (%d)", wasm.ErrMalformedBody, l, len(c.body.Instructions)),
		}
	}
	c.labels[l] = struct{}{}
	return nil
}

func (c *compiler) allocateLabel() (l Label) {
	l = c.nextLabel
	c.nextLabel++
	return
}

// isEmptyTryTable returns true if the try_table at pos is immediately closed.
func (c *compiler) isEmptyTryTable(pos int) bool {
	instrs := c.body.Instructions
	return pos+1 < len(instrs) && instrs[pos+1].Opcode == wasm.OpcodeEnd && instrs[pos+1].Scope == instrs[pos]
}

// hasElse returns true if the if instruction has an else arm.
func (c *compiler) hasElse(ins *wasm.AnnotatedInstruction) bool {
	pos := ins.LabelFalse - 1
	if pos <= ins.Address || pos >= len(c.body.Instructions) {
		return false
	}
	e := c.body.Instructions[pos]
	return e.Opcode == wasm.OpcodeElse && e.Scope == ins
}

// handleInstruction translates the instruction into flat operations and updates the type stack accordingly.
func (c *compiler) handleInstruction(ins *wasm.AnnotatedInstruction) error {
	switch op := ins.Opcode; op {
	case wasm.OpcodeNop:
	case wasm.OpcodeUnreachable:
		c.emit(newOperationTrap())
		c.markUnreachable(ins)
	case wasm.OpcodeBlock, wasm.OpcodeLoop:
		bt, err := c.blockType(ins)
		if err != nil {
			return err
		}
		return c.stack.enterScope(ins, bt)
	case wasm.OpcodeIf:
		if err := c.stack.pop(wasm.ValTypeI32); err != nil {
			return err
		}
		bt, err := c.blockType(ins)
		if err != nil {
			return err
		}
		if err := c.stack.enterScope(ins, bt); err != nil {
			return err
		}
		if c.hasElse(ins) {
			// Both arms start from the same stack.
			c.stack.pushTypes()
		} else if !passesThrough(bt) {
			// The false path reaches the end with the parameters in place of the results.
			return fmt.Errorf("%w: if without else must have the same parameters and results but has %s",
				ErrScopeMismatch, bt)
		}
		c.emit(newOperationIfEq(Label(ins.LabelFalse)))
	case wasm.OpcodeElse:
		if err := c.stack.checkResults(); err != nil {
			return err
		}
		if err := c.stack.popTypes(); err != nil {
			return err
		}
		c.emit(newOperationGoto(Label(ins.LabelTrue)))
	case wasm.OpcodeEnd:
		opener := scopeOpener(ins)
		if opener != nil && opener.Opcode == wasm.OpcodeTryTable {
			if block, ok := c.tryCatchBlocks[opener]; ok {
				delete(c.tryCatchBlocks, opener)
				if err := c.emitCatchDispatch(block); err != nil {
					return err
				}
			}
		}
		return c.stack.exitScope(opener)
	case wasm.OpcodeBr:
		if err := c.emitUnwind(ins, ins.LabelTrue); err != nil {
			return err
		}
		c.emit(newOperationGoto(Label(ins.LabelTrue)))
		c.markUnreachable(ins)
	case wasm.OpcodeBrIf:
		if err := c.stack.pop(wasm.ValTypeI32); err != nil {
			return err
		}
		dropKeep, ok, err := c.unwind(ins, ins.LabelTrue)
		if err != nil {
			return err
		}
		if ok {
			c.emit(
				newOperationIfEq(Label(ins.LabelFalse)),
				dropKeep,
				newOperationGoto(Label(ins.LabelTrue)),
			)
		} else {
			c.emit(newOperationIfNe(Label(ins.LabelTrue)))
		}
	case wasm.OpcodeBrTable:
		if err := c.stack.pop(wasm.ValTypeI32); err != nil {
			return err
		}
		if err := c.emitBrTable(ins); err != nil {
			return err
		}
		c.markUnreachable(ins)
	case wasm.OpcodeReturn:
		if err := c.emitReturn(); err != nil {
			return err
		}
		c.markUnreachable(ins)
	case wasm.OpcodeReturnCall, wasm.OpcodeReturnCallIndirect, wasm.OpcodeReturnCallRef:
		// Tail calls are a call followed by a return.
		if err := c.applyToStack(ins); err != nil {
			return err
		}
		c.emit(newOperationWasm(tailCallOpcode(op), ins.Operands))
		if err := c.emitReturn(); err != nil {
			return err
		}
		c.markUnreachable(ins)
	case wasm.OpcodeTryTable:
		if c.isEmptyTryTable(c.pc) {
			// Nothing can throw, so both the try_table and its end are dropped.
			c.pc++
			return nil
		}
		bt, err := c.blockType(ins)
		if err != nil {
			return err
		}
		if err := c.stack.enterScope(ins, bt); err != nil {
			return err
		}
		block, ok := c.tryCatchBlocks[ins]
		if !ok {
			panic(fmt.Sprintf("BUG: try_table at %d without catch block", ins.Address))
		}
		c.emit(newOperationLabel(block.start))
	case wasm.OpcodeThrow, wasm.OpcodeThrowRef:
		if err := c.applyToStack(ins); err != nil {
			return err
		}
		c.emit(newOperationWasm(op, ins.Operands))
		c.markUnreachable(ins)
	case wasm.OpcodeSelect, wasm.OpcodeSelectT:
		// [t t i32] -> [t]
		if err := c.stack.pop(wasm.ValTypeI32); err != nil {
			return err
		}
		var t wasm.ValType
		if op == wasm.OpcodeSelectT {
			t = wasm.ValType(ins.Operand(0))
		} else {
			var err error
			if t, err = c.stack.peek(); err != nil {
				return err
			}
		}
		if err := c.stack.popAll([]wasm.ValType{t, t}); err != nil {
			return err
		}
		c.stack.push(t)
		c.emit(newOperationSelect(t))
	case wasm.OpcodeDrop:
		t, err := c.stack.peek()
		if err != nil {
			return err
		}
		if err := c.stack.pop(t); err != nil {
			return err
		}
		c.emit(newOperationDrop(t))
	case wasm.OpcodeLocalTee:
		local, err := c.localType(uint32(ins.Operand(0)))
		if err != nil {
			return err
		}
		t, err := c.stack.peek()
		if err != nil {
			return err
		}
		if !t.Matches(local) {
			return fmt.Errorf("%w: expected %s but was %s", ErrTypeMismatch, local, t)
		}
		c.emit(newOperationLocalTee(ins.Operand(0), t))
	default:
		if err := c.applyToStack(ins); err != nil {
			return err
		}
		c.emit(newOperationWasm(op, ins.Operands))
	}
	return nil
}

// emitBrTable lowers br_table into a switch. Targets requiring an unwind jump to a synthesized label
// emitted after the switch, which adjusts the stack once per distinct target.
func (c *compiler) emitBrTable(ins *wasm.AnnotatedInstruction) error {
	// The table always ends with the default, so a single entry means there is only the default.
	if len(ins.LabelTable) == 1 {
		c.emit(newOperationDrop(wasm.ValTypeI32))
		target := ins.LabelTable[0]
		if err := c.emitUnwind(ins, target); err != nil {
			return err
		}
		c.emit(newOperationGoto(Label(target)))
		return nil
	}

	var unwinds []Operation
	targets := make(map[int]Label, len(ins.LabelTable))
	switchTargets := make([]Label, len(ins.LabelTable))
	for i, target := range ins.LabelTable {
		l, ok := targets[target]
		if !ok {
			l = Label(target)
			dropKeep, needed, err := c.unwind(ins, target)
			if err != nil {
				return err
			}
			if needed {
				l = c.allocateLabel()
				unwinds = append(unwinds, newOperationLabel(l), dropKeep, newOperationGoto(Label(target)))
			}
			targets[target] = l
		}
		switchTargets[i] = l
	}
	c.emit(newOperationSwitch(switchTargets))
	c.emit(unwinds...)
	return nil
}

// emitReturn pops the results of the function and emits the return. Values of the enclosing scopes below
// the results are discarded first.
func (c *compiler) emitReturn() error {
	if err := c.stack.checkTop(c.sig.Results); err != nil {
		return err
	}
	if _, unreachable := c.stack.base(); !unreachable {
		if drop := c.stack.height() - len(c.sig.Results); drop > 0 {
			c.emit(newOperationDropKeep(drop, c.stack.top(c.stack.height())))
		}
	}
	if err := c.stack.popAll(c.sig.Results); err != nil {
		return err
	}
	c.emit(newOperationReturn(c.sig.Results))
	return nil
}

// passesThrough returns true if the parameters of bt are valid as its results.
func passesThrough(bt *wasm.FunctionType) bool {
	if len(bt.Params) != len(bt.Results) {
		return false
	}
	for i, p := range bt.Params {
		if !p.Matches(bt.Results[i]) {
			return false
		}
	}
	return true
}

// markUnreachable makes the rest of the scope of ins unreachable.
func (c *compiler) markUnreachable(ins *wasm.AnnotatedInstruction) {
	c.exitBlockDepth = ins.Depth
	c.stack.markUnreachable()
}

// applyToStack pops the inputs and pushes the outputs of the stack effect of the instruction.
func (c *compiler) applyToStack(ins *wasm.AnnotatedInstruction) error {
	s, err := c.wasmOpcodeSignature(ins)
	if err != nil {
		return err
	}
	if err := c.stack.popAll(s.in); err != nil {
		return err
	}
	c.stack.pushAll(s.out)
	return nil
}

func (c *compiler) emit(ops ...Operation) {
	c.result = append(c.result, ops...)
}

func (c *compiler) blockType(ins *wasm.AnnotatedInstruction) (*wasm.FunctionType, error) {
	return c.meta.BlockType(ins.Operand(0))
}

// localType returns the type of the local at the given index, parameters first.
func (c *compiler) localType(index uint32) (wasm.ValType, error) {
	params := uint32(len(c.sig.Params))
	if index < params {
		return c.sig.Params[index], nil
	}
	if i := index - params; int(i) < len(c.body.Locals) {
		return c.body.Locals[i], nil
	}
	return 0, fmt.Errorf("%w: local %d out of range (%d)", wasm.ErrInvalidIndex, index, int(params)+len(c.body.Locals))
}

// finish resolves the label positions of the result.
func (c *compiler) finish() (*CompilationResult, error) {
	emitted := map[Label]struct{}{}
	for _, op := range c.result {
		if op.Kind == OperationKindLabel {
			emitted[Label(op.Operands[0])] = struct{}{}
		}
	}

	positions := make(map[Label]int, len(emitted))
	ops := c.result[:0]
	for _, op := range c.result {
		switch op.Kind {
		case OperationKindTryCatchBlock:
			// A try_table in unreachable code never marks its region.
			if _, ok := emitted[Label(op.Operands[0])]; !ok {
				continue
			}
		case OperationKindLabel:
			l := Label(op.Operands[0])
			if _, ok := positions[l]; ok {
				panic(fmt.Sprintf("BUG: label %s emitted twice", l))
			}
			positions[l] = len(ops)
		}
		ops = append(ops, op)
	}

	for _, op := range ops {
		for _, l := range op.Labels() {
			if _, ok := positions[l]; !ok {
				return nil, fmt.Errorf("%w: %s referenced by %s", ErrUnresolvedLabel, l, op)
			}
		}
	}
	return &CompilationResult{Operations: ops, LabelPositions: positions, Signature: c.sig}, nil
}

// scopeOpener returns the instruction which opened the scope closed by the end instruction, or nil for the function.
func scopeOpener(end *wasm.AnnotatedInstruction) *wasm.AnnotatedInstruction {
	if end.Scope == nil || end.Scope.Opcode == wasm.OpcodeEnd {
		return nil
	}
	return end.Scope
}

func tailCallOpcode(op wasm.Opcode) wasm.Opcode {
	switch op {
	case wasm.OpcodeReturnCall:
		return wasm.OpcodeCall
	case wasm.OpcodeReturnCallIndirect:
		return wasm.OpcodeCallIndirect
	default:
		return wasm.OpcodeCallRef
	}
}
