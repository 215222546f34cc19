package wasm

import "fmt"

// Module is the subset of a decoded module that lowering depends on.
//
// Index spaces are the WebAssembly ones: imported entities come first, followed by the ones the module defines.
type Module struct {
	// Types is the type section.
	Types []*FunctionType

	// ImportedFunctions are the type indexes of the imported functions.
	ImportedFunctions []uint32
	// Functions are the type indexes of the functions defined in the module, in the same order as Codes.
	Functions []uint32

	ImportedGlobals []ValType
	Globals         []ValType

	// ImportedTables are the element types of the imported tables.
	ImportedTables []ValType
	// Tables are the element types of the tables defined in the module.
	Tables []ValType

	// Tags are the type indexes of the exception tags, imports first.
	Tags []uint32

	// Codes are the bodies of Functions.
	Codes []*FunctionBody
}

// Metadata is the module level information shared by the lowering of every function body.
//
// It is computed once by Module.Metadata and never modified afterwards, so it is safe to use it from
// multiple goroutines without synchronization.
type Metadata struct {
	Types []*FunctionType
	// FunctionTypes are the signatures of all functions, imports first.
	FunctionTypes []*FunctionType
	// GlobalTypes are the types of all globals, imports first.
	GlobalTypes []ValType
	// TableTypes are the element types of all tables, imports first.
	TableTypes []ValType
	// TagTypes are the signatures of all tags.
	TagTypes []*FunctionType
	// ImportedFunctionCount is the index of the first function defined in the module.
	ImportedFunctionCount uint32
}

// Metadata computes the read-only type lists of the module.
func (m *Module) Metadata() (*Metadata, error) {
	if len(m.Functions) != len(m.Codes) {
		return nil, fmt.Errorf("function and code section have inconsistent lengths: %d != %d", len(m.Functions), len(m.Codes))
	}

	md := &Metadata{
		Types:                 m.Types,
		FunctionTypes:         make([]*FunctionType, 0, len(m.ImportedFunctions)+len(m.Functions)),
		GlobalTypes:           make([]ValType, 0, len(m.ImportedGlobals)+len(m.Globals)),
		TableTypes:            make([]ValType, 0, len(m.ImportedTables)+len(m.Tables)),
		TagTypes:              make([]*FunctionType, 0, len(m.Tags)),
		ImportedFunctionCount: uint32(len(m.ImportedFunctions)),
	}

	for _, idx := range m.ImportedFunctions {
		ft, err := md.Type(idx)
		if err != nil {
			return nil, fmt.Errorf("imported function[%d]: %w", len(md.FunctionTypes), err)
		}
		md.FunctionTypes = append(md.FunctionTypes, ft)
	}
	for _, idx := range m.Functions {
		ft, err := md.Type(idx)
		if err != nil {
			return nil, fmt.Errorf("function[%d]: %w", len(md.FunctionTypes), err)
		}
		md.FunctionTypes = append(md.FunctionTypes, ft)
	}
	for i, idx := range m.Tags {
		ft, err := md.Type(idx)
		if err != nil {
			return nil, fmt.Errorf("tag[%d]: %w", i, err)
		}
		md.TagTypes = append(md.TagTypes, ft)
	}
	md.GlobalTypes = append(append(md.GlobalTypes, m.ImportedGlobals...), m.Globals...)
	md.TableTypes = append(append(md.TableTypes, m.ImportedTables...), m.Tables...)
	return md, nil
}

// Type returns the type at the given index of the type section.
func (m *Metadata) Type(typeIndex uint32) (*FunctionType, error) {
	if int(typeIndex) >= len(m.Types) {
		return nil, fmt.Errorf("%w: type %d out of range (%d)", ErrInvalidIndex, typeIndex, len(m.Types))
	}
	return m.Types[typeIndex], nil
}

// Function returns the signature of the function at the given function index.
func (m *Metadata) Function(funcIndex uint32) (*FunctionType, error) {
	if int(funcIndex) >= len(m.FunctionTypes) {
		return nil, fmt.Errorf("%w: function %d out of range (%d)", ErrInvalidIndex, funcIndex, len(m.FunctionTypes))
	}
	return m.FunctionTypes[funcIndex], nil
}

// Global returns the type of the global at the given global index.
func (m *Metadata) Global(globalIndex uint32) (ValType, error) {
	if int(globalIndex) >= len(m.GlobalTypes) {
		return 0, fmt.Errorf("%w: global %d out of range (%d)", ErrInvalidIndex, globalIndex, len(m.GlobalTypes))
	}
	return m.GlobalTypes[globalIndex], nil
}

// Table returns the element type of the table at the given table index.
func (m *Metadata) Table(tableIndex uint32) (ValType, error) {
	if int(tableIndex) >= len(m.TableTypes) {
		return 0, fmt.Errorf("%w: table %d out of range (%d)", ErrInvalidIndex, tableIndex, len(m.TableTypes))
	}
	return m.TableTypes[tableIndex], nil
}

// Tag returns the signature of the tag at the given tag index.
func (m *Metadata) Tag(tagIndex uint32) (*FunctionType, error) {
	if int(tagIndex) >= len(m.TagTypes) {
		return nil, fmt.Errorf("%w: tag %d out of range (%d)", ErrInvalidIndex, tagIndex, len(m.TagTypes))
	}
	return m.TagTypes[tagIndex], nil
}

var emptyFunctionType = &FunctionType{}

// BlockType decodes the block type immediate of OpcodeBlock, OpcodeLoop, OpcodeIf or OpcodeTryTable.
// See BlockTypeEmpty, BlockTypeValue and BlockTypeIndex for the encoding.
func (m *Metadata) BlockType(immediate uint64) (*FunctionType, error) {
	switch code := byte(immediate); {
	case immediate == BlockTypeEmpty:
		return emptyFunctionType, nil
	case code == 0:
		typeIndex := immediate >> 8
		if typeIndex > uint64(^uint32(0)) {
			return nil, fmt.Errorf("%w: %#x", ErrInvalidBlockType, immediate)
		}
		return m.Type(uint32(typeIndex))
	default:
		vt := ValType(immediate)
		if !vt.IsValid() {
			return nil, fmt.Errorf("%w: %#x", ErrInvalidBlockType, immediate)
		}
		return &FunctionType{Results: []ValType{vt}}, nil
	}
}
