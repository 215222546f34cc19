package wasm

import (
	"fmt"
	"strings"

	"github.com/flatwasm/flatwasm/api"
)

// HeapType is the referenced type of a reference value type. It is either an abstract heap type
// (HeapTypeFunc, HeapTypeExtern or HeapTypeExn) or the index of a concrete type in the type section.
type HeapType uint32

// heapTypeAbstractBit distinguishes abstract heap types from type indexes.
const heapTypeAbstractBit HeapType = 1 << 31

const (
	HeapTypeFunc   = heapTypeAbstractBit | HeapType(api.ValueTypeFuncref)
	HeapTypeExtern = heapTypeAbstractBit | HeapType(api.ValueTypeExternref)
	HeapTypeExn    = heapTypeAbstractBit | HeapType(api.ValueTypeExnref)
)

// HeapTypeIndex returns the heap type of the concrete type at the given type section index.
func HeapTypeIndex(typeIndex uint32) HeapType {
	return HeapType(typeIndex) &^ heapTypeAbstractBit
}

// IsAbstract returns true if h is not a type section index.
func (h HeapType) IsAbstract() bool {
	return h&heapTypeAbstractBit != 0
}

// TypeIndex returns the type section index of a concrete heap type.
func (h HeapType) TypeIndex() uint32 {
	return uint32(h &^ heapTypeAbstractBit)
}

func (h HeapType) String() string {
	switch h {
	case HeapTypeFunc:
		return "func"
	case HeapTypeExtern:
		return "extern"
	case HeapTypeExn:
		return "exn"
	}
	if h.IsAbstract() {
		return fmt.Sprintf("heap(%#x)", uint32(h&^heapTypeAbstractBit))
	}
	return fmt.Sprintf("%d", h.TypeIndex())
}

// ValType is a value type as seen by the operand-type stack.
//
// The low byte is the api.ValueType code. Reference types use api.ValueTypeRef or api.ValueTypeRefNull
// as their code and carry their HeapType in the upper bits, so a ValType is self-describing and can be
// used as an operand of lowered operations as is.
type ValType uint64

const (
	ValTypeI32  = ValType(api.ValueTypeI32)
	ValTypeI64  = ValType(api.ValueTypeI64)
	ValTypeF32  = ValType(api.ValueTypeF32)
	ValTypeF64  = ValType(api.ValueTypeF64)
	ValTypeV128 = ValType(api.ValueTypeV128)

	ValTypeFuncref   = ValType(api.ValueTypeRefNull) | ValType(HeapTypeFunc)<<8
	ValTypeExternref = ValType(api.ValueTypeRefNull) | ValType(HeapTypeExtern)<<8
	ValTypeExnref    = ValType(api.ValueTypeRefNull) | ValType(HeapTypeExn)<<8
)

// RefType returns the reference type to the given heap type.
func RefType(nullable bool, heap HeapType) ValType {
	code := api.ValueTypeRef
	if nullable {
		code = api.ValueTypeRefNull
	}
	return ValType(code) | ValType(heap)<<8
}

// Code returns the binary value type code of v.
func (v ValType) Code() api.ValueType {
	return api.ValueType(v)
}

// IsReference returns true if v is a reference type.
func (v ValType) IsReference() bool {
	code := v.Code()
	return code == api.ValueTypeRef || code == api.ValueTypeRefNull
}

// Nullable returns true if v is a nullable reference type.
func (v ValType) Nullable() bool {
	return v.Code() == api.ValueTypeRefNull
}

// HeapType returns the heap type of a reference type.
func (v ValType) HeapType() HeapType {
	return HeapType(v >> 8)
}

// IsValid returns true if v is a value type known to this package.
func (v ValType) IsValid() bool {
	switch v.Code() {
	case api.ValueTypeI32, api.ValueTypeI64, api.ValueTypeF32, api.ValueTypeF64, api.ValueTypeV128:
		return v>>8 == 0
	case api.ValueTypeRef, api.ValueTypeRefNull:
		return true
	}
	return false
}

// Matches returns true if a value of type v can be used where expected is required.
//
// Reference subtyping is limited to nullability and to concrete function types being a subtype of func.
func (v ValType) Matches(expected ValType) bool {
	if v == expected {
		return true
	}
	if !v.IsReference() || !expected.IsReference() {
		return false
	}
	if v.Nullable() && !expected.Nullable() {
		return false
	}
	have, want := v.HeapType(), expected.HeapType()
	if have == want {
		return true
	}
	return !have.IsAbstract() && want == HeapTypeFunc
}

func (v ValType) String() string {
	switch v {
	case ValTypeFuncref:
		return "funcref"
	case ValTypeExternref:
		return "externref"
	case ValTypeExnref:
		return "exnref"
	}
	switch v.Code() {
	case api.ValueTypeRefNull:
		return fmt.Sprintf("(ref null %s)", v.HeapType())
	case api.ValueTypeRef:
		return fmt.Sprintf("(ref %s)", v.HeapType())
	}
	if v>>8 != 0 {
		return "unknown"
	}
	return api.ValueTypeName(v.Code())
}

// FunctionType is a possibly empty function signature.
type FunctionType struct {
	// Params are the possibly empty sequence of value types accepted by a function with this signature.
	Params []ValType

	// Results are the possibly empty sequence of value types returned by a function with this signature.
	Results []ValType
}

// EqualsSignature returns true if the function type has the same parameters and results.
func (t *FunctionType) EqualsSignature(params []ValType, results []ValType) bool {
	return valTypesEqual(t.Params, params) && valTypesEqual(t.Results, results)
}

func valTypesEqual(a, b []ValType) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// String returns the signature in the form "(i32,i64)->(f32)".
func (t *FunctionType) String() string {
	var sb strings.Builder
	writeValTypes(&sb, t.Params)
	sb.WriteString("->")
	writeValTypes(&sb, t.Results)
	return sb.String()
}

func writeValTypes(sb *strings.Builder, types []ValType) {
	sb.WriteByte('(')
	for i, vt := range types {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(vt.String())
	}
	sb.WriteByte(')')
}

// BlockTypeEmpty is the block type immediate of a block without parameters and results.
const BlockTypeEmpty uint64 = 0x40

// BlockTypeValue returns the block type immediate of a block with a single result and no parameters.
func BlockTypeValue(vt ValType) uint64 {
	return uint64(vt)
}

// BlockTypeIndex returns the block type immediate that refers to the type section.
func BlockTypeIndex(typeIndex uint32) uint64 {
	return uint64(typeIndex) << 8
}
