package fixture

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/flatwasm/flatwasm/internal/wasm"
)

// ParseValType parses a value type name: a number type, v128, funcref, externref, exnref,
// or a typed reference such as "(ref 1)" or "(ref null extern)".
func ParseValType(s string) (wasm.ValType, error) {
	tokens := tokenize(s)
	switch len(tokens) {
	case 1:
		switch tokens[0] {
		case "i32":
			return wasm.ValTypeI32, nil
		case "i64":
			return wasm.ValTypeI64, nil
		case "f32":
			return wasm.ValTypeF32, nil
		case "f64":
			return wasm.ValTypeF64, nil
		case "v128":
			return wasm.ValTypeV128, nil
		case "funcref":
			return wasm.ValTypeFuncref, nil
		case "externref":
			return wasm.ValTypeExternref, nil
		case "exnref":
			return wasm.ValTypeExnref, nil
		}
	case 4, 5:
		if tokens[0] != "(" || tokens[1] != "ref" || tokens[len(tokens)-1] != ")" {
			break
		}
		nullable := len(tokens) == 5
		if nullable && tokens[2] != "null" {
			break
		}
		heap, err := parseHeapType(tokens[len(tokens)-2])
		if err != nil {
			return 0, err
		}
		return wasm.RefType(nullable, heap), nil
	}
	return 0, fmt.Errorf("%w: invalid value type %q", ErrSyntax, s)
}

func parseHeapType(s string) (wasm.HeapType, error) {
	switch s {
	case "func":
		return wasm.HeapTypeFunc, nil
	case "extern":
		return wasm.HeapTypeExtern, nil
	case "exn":
		return wasm.HeapTypeExn, nil
	}
	idx, err := strconv.ParseUint(s, 0, 31)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid heap type %q", ErrSyntax, s)
	}
	return wasm.HeapTypeIndex(uint32(idx)), nil
}

// ParseBody parses the text of a function body and annotates it. The closing end of the function
// is appended, so it must not be written.
//
// Branch immediates are relative depths, as in the binary format. Block types are either absent,
// a value type, or "type N". Catch clauses follow the block type of try_table:
//
//	try_table i32 (catch 0 1) (catch_all_ref 0)
func ParseBody(text string) ([]*wasm.AnnotatedInstruction, error) {
	var instrs []wasm.Instruction
	for i, line := range strings.Split(text, "\n") {
		if c := strings.Index(line, ";;"); c >= 0 {
			line = line[:c]
		}
		tokens := tokenize(line)
		if len(tokens) == 0 {
			continue
		}
		in, err := parseInstruction(tokens)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		instrs = append(instrs, in)
	}
	instrs = append(instrs, wasm.Instruction{Opcode: wasm.OpcodeEnd})
	return wasm.Annotate(instrs)
}

func tokenize(s string) []string {
	s = strings.ReplaceAll(s, "(", " ( ")
	s = strings.ReplaceAll(s, ")", " ) ")
	return strings.Fields(s)
}

func parseInstruction(tokens []string) (in wasm.Instruction, err error) {
	name, args := tokens[0], tokens[1:]
	op, ok := wasm.OpcodeByName(name)
	if !ok {
		return in, fmt.Errorf("%w: unknown instruction %q", ErrSyntax, name)
	}
	in.Opcode = op

	switch op {
	case wasm.OpcodeBlock, wasm.OpcodeLoop, wasm.OpcodeIf:
		var bt uint64
		if bt, err = parseBlockType(args); err == nil {
			in.Operands = []uint64{bt}
		}
	case wasm.OpcodeTryTable:
		n := len(args)
		for i, a := range args {
			if a == "(" {
				n = i
				break
			}
		}
		var bt uint64
		if bt, err = parseBlockType(args[:n]); err != nil {
			return
		}
		in.Operands = []uint64{bt}
		in.Catches, err = parseCatches(args[n:])
	case wasm.OpcodeRefNull:
		if len(args) != 1 {
			return in, fmt.Errorf("%w: %s expects a heap type", ErrSyntax, name)
		}
		var heap wasm.HeapType
		if heap, err = parseHeapType(args[0]); err == nil {
			in.Operands = []uint64{uint64(heap)}
		}
	case wasm.OpcodeSelectT:
		var vt wasm.ValType
		if vt, err = ParseValType(strings.Join(args, " ")); err == nil {
			in.Operands = []uint64{uint64(vt)}
		}
	case wasm.OpcodeI32Const, wasm.OpcodeI64Const, wasm.OpcodeF32Const, wasm.OpcodeF64Const:
		if len(args) != 1 {
			return in, fmt.Errorf("%w: %s expects one immediate", ErrSyntax, name)
		}
		var v uint64
		if v, err = parseConst(op, args[0]); err == nil {
			in.Operands = []uint64{v}
		}
	default:
		in.Operands, err = parseImmediates(args)
	}
	return
}

func parseBlockType(args []string) (uint64, error) {
	switch {
	case len(args) == 0:
		return wasm.BlockTypeEmpty, nil
	case args[0] == "type":
		if len(args) != 2 {
			break
		}
		idx, err := strconv.ParseUint(args[1], 0, 32)
		if err != nil {
			break
		}
		return wasm.BlockTypeIndex(uint32(idx)), nil
	default:
		vt, err := ParseValType(strings.Join(args, " "))
		if err != nil {
			return 0, err
		}
		return wasm.BlockTypeValue(vt), nil
	}
	return 0, fmt.Errorf("%w: invalid block type %q", ErrSyntax, strings.Join(args, " "))
}

var catchKinds = map[string]wasm.CatchKind{
	"catch":         wasm.CatchKindCatch,
	"catch_ref":     wasm.CatchKindCatchRef,
	"catch_all":     wasm.CatchKindCatchAll,
	"catch_all_ref": wasm.CatchKindCatchAllRef,
}

// parseCatches parses clauses such as "(catch 0 1)", where 0 is the tag and 1 the label.
func parseCatches(tokens []string) ([]wasm.Catch, error) {
	var ret []wasm.Catch
	for len(tokens) > 0 {
		end := -1
		for i, tok := range tokens {
			if tok == ")" {
				end = i
				break
			}
		}
		if tokens[0] != "(" || end < 2 {
			return nil, fmt.Errorf("%w: invalid catch clause %q", ErrSyntax, strings.Join(tokens, " "))
		}
		clause := tokens[1:end]
		tokens = tokens[end+1:]

		kind, ok := catchKinds[clause[0]]
		if !ok {
			return nil, fmt.Errorf("%w: unknown catch clause %q", ErrSyntax, clause[0])
		}
		immediates, err := parseImmediates(clause[1:])
		if err != nil {
			return nil, err
		}

		c := wasm.Catch{Kind: kind}
		want := 1
		if kind.HasTag() {
			want = 2
		}
		if len(immediates) != want {
			return nil, fmt.Errorf("%w: %s expects %d immediates", ErrSyntax, kind, want)
		}
		if kind.HasTag() {
			c.Tag = uint32(immediates[0])
		}
		c.Label = uint32(immediates[want-1])
		ret = append(ret, c)
	}
	return ret, nil
}

func parseConst(op wasm.Opcode, s string) (uint64, error) {
	switch op {
	case wasm.OpcodeI32Const:
		v, err := strconv.ParseInt(s, 0, 32)
		if err != nil {
			// Accept unsigned spellings of negative values, like 0xffffffff.
			u, uerr := strconv.ParseUint(s, 0, 32)
			if uerr != nil {
				return 0, fmt.Errorf("%w: i32 outside range of int32: %s", ErrSyntax, s)
			}
			return u, nil
		}
		return uint64(uint32(int32(v))), nil
	case wasm.OpcodeI64Const:
		v, err := strconv.ParseInt(s, 0, 64)
		if err != nil {
			u, uerr := strconv.ParseUint(s, 0, 64)
			if uerr != nil {
				return 0, fmt.Errorf("%w: i64 outside range of int64: %s", ErrSyntax, s)
			}
			return u, nil
		}
		return uint64(v), nil
	case wasm.OpcodeF32Const:
		v, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return 0, fmt.Errorf("%w: invalid f32: %s", ErrSyntax, s)
		}
		return uint64(math.Float32bits(float32(v))), nil
	default:
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: invalid f64: %s", ErrSyntax, s)
		}
		return math.Float64bits(v), nil
	}
}

func parseImmediates(tokens []string) ([]uint64, error) {
	if len(tokens) == 0 {
		return nil, nil
	}
	ret := make([]uint64, len(tokens))
	for i, tok := range tokens {
		v, err := strconv.ParseUint(tok, 0, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid immediate %q", ErrSyntax, tok)
		}
		ret[i] = v
	}
	return ret, nil
}
