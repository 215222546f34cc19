package wasm

import "errors"

// The errors are returned while preparing module metadata or function bodies for lowering,
// and they indicate that the input is malformed.
var (
	// ErrMalformedBody indicates that the structured instructions of a function body are not properly nested,
	// or a branch refers to a label that does not exist.
	ErrMalformedBody = errors.New("malformed function body")
	// ErrInvalidIndex indicates that an immediate refers to an entity (type, function, global, table or tag)
	// that the module does not define.
	ErrInvalidIndex = errors.New("invalid index")
	// ErrInvalidBlockType indicates that a block type immediate is neither empty, a value type nor a type index.
	ErrInvalidBlockType = errors.New("invalid block type")
)
