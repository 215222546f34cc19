package wasm

import "fmt"

// Annotate resolves the nesting depth, the scope and the branch labels of decoded instructions,
// following the conventions documented on AnnotatedInstruction.
//
// The instructions must end with the OpcodeEnd of the function. Branch immediates (of OpcodeBr,
// OpcodeBrIf, OpcodeBrTable and catch clauses) are relative depths.
func Annotate(instrs []Instruction) ([]*AnnotatedInstruction, error) {
	if len(instrs) == 0 || instrs[len(instrs)-1].Opcode != OpcodeEnd {
		return nil, fmt.Errorf("%w: function body must end with end", ErrMalformedBody)
	}

	ends, elses, err := matchScopes(instrs)
	if err != nil {
		return nil, err
	}

	last := len(instrs) - 1
	ret := make([]*AnnotatedInstruction, len(instrs))
	for i := range instrs {
		ret[i] = &AnnotatedInstruction{
			Address:    i,
			Opcode:     instrs[i].Opcode,
			Operands:   instrs[i].Operands,
			LabelTrue:  UndefinedLabel,
			LabelFalse: UndefinedLabel,
		}
	}

	var scopes []*AnnotatedInstruction
	target := func(pos int, depth uint64) (int, error) {
		if depth > uint64(len(scopes)) {
			return 0, fmt.Errorf("%w: branch depth %d exceeds nesting %d at %d", ErrMalformedBody, depth, len(scopes), pos)
		}
		if depth == uint64(len(scopes)) {
			return last, nil
		}
		s := scopes[len(scopes)-1-int(depth)]
		if s.Opcode == OpcodeLoop {
			return s.Address + 1, nil
		}
		return ends[s.Address], nil
	}

	for i, a := range ret {
		a.Depth = len(scopes)
		if len(scopes) > 0 {
			a.Scope = scopes[len(scopes)-1]
		}

		switch a.Opcode {
		case OpcodeBlock, OpcodeLoop:
			a.Scope = a
			scopes = append(scopes, a)
		case OpcodeIf:
			a.Scope = a
			if e, ok := elses[i]; ok {
				a.LabelFalse = e + 1
			} else {
				a.LabelFalse = ends[i]
			}
			scopes = append(scopes, a)
		case OpcodeTryTable:
			a.Scope = a
			if n := len(instrs[i].Catches); n > 0 {
				a.Catches = make([]Catch, n)
				for j, c := range instrs[i].Catches {
					if c.ResolvedLabel, err = target(i, uint64(c.Label)); err != nil {
						return nil, err
					}
					a.Catches[j] = c
				}
			}
			scopes = append(scopes, a)
		case OpcodeElse:
			a.LabelTrue = ends[a.Scope.Address]
		case OpcodeEnd:
			if len(scopes) == 0 {
				a.Scope = a
			} else {
				scopes = scopes[:len(scopes)-1]
			}
		case OpcodeBr:
			if a.LabelTrue, err = target(i, a.Operand(0)); err != nil {
				return nil, err
			}
		case OpcodeBrIf:
			if a.LabelTrue, err = target(i, a.Operand(0)); err != nil {
				return nil, err
			}
			a.LabelFalse = i + 1
		case OpcodeBrTable:
			if len(a.Operands) == 0 {
				return nil, fmt.Errorf("%w: br_table without default at %d", ErrMalformedBody, i)
			}
			a.LabelTable = make([]int, len(a.Operands))
			for j, depth := range a.Operands {
				if a.LabelTable[j], err = target(i, depth); err != nil {
					return nil, err
				}
			}
		}
	}
	return ret, nil
}

// matchScopes returns the position of the end of every structured instruction,
// and the position of the else of every if which has one.
func matchScopes(instrs []Instruction) (ends, elses map[int]int, err error) {
	ends, elses = map[int]int{}, map[int]int{}
	var open []int
	functionEnd := false
	for i, in := range instrs {
		switch in.Opcode {
		case OpcodeBlock, OpcodeLoop, OpcodeIf, OpcodeTryTable:
			open = append(open, i)
		case OpcodeElse:
			if len(open) == 0 {
				return nil, nil, fmt.Errorf("%w: else outside of if at %d", ErrMalformedBody, i)
			}
			top := open[len(open)-1]
			if instrs[top].Opcode != OpcodeIf {
				return nil, nil, fmt.Errorf("%w: else outside of if at %d", ErrMalformedBody, i)
			}
			if _, ok := elses[top]; ok {
				return nil, nil, fmt.Errorf("%w: duplicated else at %d", ErrMalformedBody, i)
			}
			elses[top] = i
		case OpcodeEnd:
			if len(open) == 0 {
				if i != len(instrs)-1 {
					return nil, nil, fmt.Errorf("%w: unexpected end at %d", ErrMalformedBody, i)
				}
				functionEnd = true
				continue
			}
			ends[open[len(open)-1]] = i
			open = open[:len(open)-1]
		}
	}
	if len(open) != 0 || !functionEnd {
		return nil, nil, fmt.Errorf("%w: %d unclosed scopes", ErrMalformedBody, len(open)+1)
	}
	return
}
