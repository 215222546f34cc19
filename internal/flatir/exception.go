package flatir

import "github.com/flatwasm/flatwasm/internal/wasm"

// tryCatchBlock holds the synthesized labels of a non-empty try_table.
type tryCatchBlock struct {
	ins *wasm.AnnotatedInstruction
	// start and end delimit the region whose exceptions are handled at handler.
	start, end, handler Label
	// after is where the execution continues when the region completes normally.
	after Label
	// afterCatch are the labels following the dispatch of each catch clause.
	afterCatch []Label
}

func (c *compiler) newTryCatchBlock(ins *wasm.AnnotatedInstruction) *tryCatchBlock {
	b := &tryCatchBlock{
		ins:     ins,
		start:   c.allocateLabel(),
		end:     c.allocateLabel(),
		handler: c.allocateLabel(),
		after:   c.allocateLabel(),
	}
	b.afterCatch = make([]Label, len(ins.Catches))
	for i := range b.afterCatch {
		b.afterCatch[i] = c.allocateLabel()
	}
	return b
}

// emitCatchDispatch emits the handler of the try_table at its end. The handler tests the caught exception
// against each catch clause in order, and raises it again if none matches:
//
//	end:
//		Goto after
//	handler:
//		CatchStart
//		CatchCompareTag tag      ;; catch and catch_ref only
//		IfEq afterCatch[i]       ;; catch and catch_ref only
//		CatchUnboxParams tag     ;; catch and catch_ref only
//		CatchRegisterException   ;; catch_ref and catch_all_ref only
//		Goto label
//	afterCatch[i]:
//		...
//		CatchEnd
//	after:
func (c *compiler) emitCatchDispatch(b *tryCatchBlock) error {
	c.emit(
		newOperationLabel(b.end),
		newOperationGoto(b.after),
		newOperationLabel(b.handler),
		newOperationCatchStart(),
	)

	for i, catch := range b.ins.Catches {
		if catch.Kind.HasTag() {
			if _, err := c.meta.Tag(catch.Tag); err != nil {
				return err
			}
			c.emit(
				newOperationCatchCompareTag(catch.Tag),
				newOperationIfEq(b.afterCatch[i]),
				newOperationCatchUnboxParams(catch.Tag),
			)
		}
		if catch.Kind == wasm.CatchKindCatchRef || catch.Kind == wasm.CatchKindCatchAllRef {
			c.emit(newOperationCatchRegisterException())
		}
		c.emit(
			newOperationGoto(Label(catch.ResolvedLabel)),
			newOperationLabel(b.afterCatch[i]),
		)
	}

	c.emit(
		newOperationCatchEnd(),
		newOperationLabel(b.after),
	)
	return nil
}
