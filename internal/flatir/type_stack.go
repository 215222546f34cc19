package flatir

import (
	"fmt"
	"strings"

	"github.com/flatwasm/flatwasm/internal/wasm"
)

// scope is an open block, loop, if or try_table, or the function itself when opener is nil.
type scope struct {
	opener *wasm.AnnotatedInstruction
	sig    *wasm.FunctionType
	// height is the stack height at the entry of the scope, below its parameters.
	height int
	// unreachable is true after an unconditional control transfer until the end of the scope.
	unreachable bool
}

type snapshot struct {
	types       []wasm.ValType
	unreachable bool
}

// typeStack tracks the types of the values on the operand stack while a function is lowered.
type typeStack struct {
	types     []wasm.ValType
	scopes    []*scope
	snapshots []snapshot
}

func newTypeStack() *typeStack {
	return &typeStack{}
}

func (s *typeStack) current() *scope {
	if len(s.scopes) == 0 {
		return nil
	}
	return s.scopes[len(s.scopes)-1]
}

// base returns the height under which values belong to the enclosing scopes.
func (s *typeStack) base() (height int, unreachable bool) {
	if cur := s.current(); cur != nil {
		return cur.height, cur.unreachable
	}
	return 0, false
}

func (s *typeStack) height() int {
	return len(s.types)
}

func (s *typeStack) push(t wasm.ValType) {
	s.types = append(s.types, t)
}

func (s *typeStack) pushAll(types []wasm.ValType) {
	s.types = append(s.types, types...)
}

// pop removes the top type, which must match expected. In an unreachable scope, popping past the
// entry of the scope is allowed and succeeds.
func (s *typeStack) pop(expected wasm.ValType) error {
	base, unreachable := s.base()
	if len(s.types) <= base {
		if unreachable {
			return nil
		}
		return fmt.Errorf("%w: expected %s", ErrStackUnderflow, expected)
	}
	actual := s.types[len(s.types)-1]
	if !actual.Matches(expected) {
		return fmt.Errorf("%w: expected %s but was %s", ErrTypeMismatch, expected, actual)
	}
	s.types = s.types[:len(s.types)-1]
	return nil
}

// popAll pops types in reverse order, so that types is ordered from the bottom to the top of the stack.
func (s *typeStack) popAll(types []wasm.ValType) error {
	for i := len(types) - 1; i >= 0; i-- {
		if err := s.pop(types[i]); err != nil {
			return err
		}
	}
	return nil
}

// popRef removes the top type, which must be a reference type.
func (s *typeStack) popRef() (wasm.ValType, error) {
	t, err := s.peek()
	if err != nil {
		return 0, err
	}
	if !t.IsReference() {
		return 0, fmt.Errorf("%w: expected a reference but was %s", ErrTypeMismatch, t)
	}
	s.types = s.types[:len(s.types)-1]
	return t, nil
}

func (s *typeStack) peek() (wasm.ValType, error) {
	return s.peekAt(0)
}

// peekAt returns the type depth values below the top.
func (s *typeStack) peekAt(depth int) (wasm.ValType, error) {
	base, _ := s.base()
	if len(s.types)-depth <= base {
		return 0, fmt.Errorf("%w: no value at depth %d", ErrStackUnderflow, depth)
	}
	return s.types[len(s.types)-1-depth], nil
}

// top returns a copy of the n top types, ordered from the bottom to the top of the stack.
func (s *typeStack) top(n int) []wasm.ValType {
	ret := make([]wasm.ValType, n)
	copy(ret, s.types[len(s.types)-n:])
	return ret
}

// checkTop verifies the top of the current scope matches types without popping them.
func (s *typeStack) checkTop(types []wasm.ValType) error {
	base, unreachable := s.base()
	if unreachable {
		return nil
	}
	if available := len(s.types) - base; available < len(types) {
		return fmt.Errorf("%w: expected %s but the scope has %d values", ErrStackUnderflow, valTypes(types), available)
	}
	offset := len(s.types) - len(types)
	for i, expected := range types {
		if actual := s.types[offset+i]; !actual.Matches(expected) {
			return fmt.Errorf("%w: expected %s but was %s", ErrTypeMismatch, valTypes(types), valTypes(s.types[offset:]))
		}
	}
	return nil
}

// enterScope pops and verifies the parameters of sig, records the entry height and pushes them back.
func (s *typeStack) enterScope(opener *wasm.AnnotatedInstruction, sig *wasm.FunctionType) error {
	if err := s.popAll(sig.Params); err != nil {
		return err
	}
	s.scopes = append(s.scopes, &scope{opener: opener, sig: sig, height: len(s.types)})
	s.pushAll(sig.Params)
	return nil
}

// checkResults verifies that the current scope holds exactly its result types.
func (s *typeStack) checkResults() error {
	cur := s.current()
	if cur == nil || cur.unreachable {
		return nil
	}
	results := cur.sig.Results
	if n := len(s.types) - cur.height; n != len(results) {
		return fmt.Errorf("%w: expected %s at the end of the scope but was %s",
			ErrScopeMismatch, valTypes(results), valTypes(s.types[cur.height:]))
	}
	for i, expected := range results {
		if actual := s.types[cur.height+i]; !actual.Matches(expected) {
			return fmt.Errorf("%w: expected %s at the end of the scope but was %s",
				ErrTypeMismatch, valTypes(results), valTypes(s.types[cur.height:]))
		}
	}
	return nil
}

// exitScope verifies the stack matches the results of the scope opened by opener, then restores
// the stack of the enclosing scope with the results pushed.
func (s *typeStack) exitScope(opener *wasm.AnnotatedInstruction) error {
	cur := s.current()
	if cur == nil || cur.opener != opener {
		return fmt.Errorf("%w: end does not close the current scope", ErrScopeMismatch)
	}
	if err := s.checkResults(); err != nil {
		return err
	}
	s.types = s.types[:cur.height]
	s.scopes = s.scopes[:len(s.scopes)-1]
	s.pushAll(cur.sig.Results)
	return nil
}

// scopeRestore resets the current scope after dead code: the stack is as if its results were produced.
func (s *typeStack) scopeRestore() {
	cur := s.current()
	if cur == nil {
		return
	}
	s.types = append(s.types[:cur.height], cur.sig.Results...)
	cur.unreachable = false
}

// markUnreachable discards the values of the current scope after an unconditional control transfer.
func (s *typeStack) markUnreachable() {
	cur := s.current()
	if cur == nil {
		return
	}
	s.types = s.types[:cur.height]
	cur.unreachable = true
}

// heightAt returns the entry height of the open scope of opener, nil meaning the function.
func (s *typeStack) heightAt(opener *wasm.AnnotatedInstruction) (int, error) {
	for i := len(s.scopes) - 1; i >= 0; i-- {
		if s.scopes[i].opener == opener {
			return s.scopes[i].height, nil
		}
	}
	return 0, fmt.Errorf("%w: branch target is not an enclosing scope", ErrScopeMismatch)
}

// pushTypes saves the stack so that it can be restored by popTypes.
func (s *typeStack) pushTypes() {
	types := make([]wasm.ValType, len(s.types))
	copy(types, s.types)
	_, unreachable := s.base()
	s.snapshots = append(s.snapshots, snapshot{types: types, unreachable: unreachable})
}

// popTypes restores the stack saved by the last pushTypes.
func (s *typeStack) popTypes() error {
	if len(s.snapshots) == 0 {
		return fmt.Errorf("%w: no saved stack to restore", ErrScopeMismatch)
	}
	snap := s.snapshots[len(s.snapshots)-1]
	s.snapshots = s.snapshots[:len(s.snapshots)-1]
	s.types = snap.types
	if cur := s.current(); cur != nil {
		cur.unreachable = snap.unreachable
	}
	return nil
}

// verifyEmpty verifies that nothing remains on the stack at the end of the function.
func (s *typeStack) verifyEmpty() error {
	if len(s.types) != 0 {
		return fmt.Errorf("%w: %s remaining at the end of the function", ErrScopeMismatch, valTypes(s.types))
	}
	if len(s.scopes) != 0 {
		return fmt.Errorf("%w: %d scopes remaining at the end of the function", ErrScopeMismatch, len(s.scopes))
	}
	return nil
}

// For debugging only.
func (s *typeStack) String() string {
	return valTypes(s.types)
}

func valTypes(types []wasm.ValType) string {
	strs := make([]string, len(types))
	for i, t := range types {
		strs[i] = t.String()
	}
	return "[" + strings.Join(strs, ", ") + "]"
}
