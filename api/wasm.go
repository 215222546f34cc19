// Package api includes constants shared by the lowering engine, its inputs and its consumers.
package api

// ValueType is the binary encoding of a WebAssembly value type code.
//
// Numeric and vector types are fully described by their code. Reference types
// use ValueTypeRef or ValueTypeRefNull followed by a heap type, or one of the
// abbreviated codes such as ValueTypeFuncref.
//
// See https://webassembly.github.io/spec/core/binary/types.html#value-types
type ValueType = byte

const (
	// ValueTypeI32 is a 32-bit integer.
	ValueTypeI32 ValueType = 0x7f
	// ValueTypeI64 is a 64-bit integer.
	ValueTypeI64 ValueType = 0x7e
	// ValueTypeF32 is a 32-bit floating point number.
	ValueTypeF32 ValueType = 0x7d
	// ValueTypeF64 is a 64-bit floating point number.
	ValueTypeF64 ValueType = 0x7c
	// ValueTypeV128 is a 128-bit vector value. Lane interpretation is up to each operation.
	ValueTypeV128 ValueType = 0x7b

	// ValueTypeFuncref is the abbreviation of (ref null func).
	ValueTypeFuncref ValueType = 0x70
	// ValueTypeExternref is the abbreviation of (ref null extern).
	ValueTypeExternref ValueType = 0x6f
	// ValueTypeExnref is the abbreviation of (ref null exn).
	ValueTypeExnref ValueType = 0x69

	// ValueTypeRefNull prefixes a nullable reference to a heap type.
	ValueTypeRefNull ValueType = 0x63
	// ValueTypeRef prefixes a non-nullable reference to a heap type.
	ValueTypeRef ValueType = 0x64
)

// ValueTypeName returns the type name of the given ValueType as a string.
// These type names match the names used in the WebAssembly text format.
//
// Note: This returns "unknown", if an undefined ValueType value is passed.
func ValueTypeName(t ValueType) string {
	switch t {
	case ValueTypeI32:
		return "i32"
	case ValueTypeI64:
		return "i64"
	case ValueTypeF32:
		return "f32"
	case ValueTypeF64:
		return "f64"
	case ValueTypeV128:
		return "v128"
	case ValueTypeFuncref:
		return "funcref"
	case ValueTypeExternref:
		return "externref"
	case ValueTypeExnref:
		return "exnref"
	case ValueTypeRefNull:
		return "ref null"
	case ValueTypeRef:
		return "ref"
	}
	return "unknown"
}
