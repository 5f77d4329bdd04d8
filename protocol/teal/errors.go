package teal

import "tealc/errors"

// Errors returned by code generation and the program drivers.
var (
	ErrTypeCheck          = errors.New("type checking failed")
	ErrBytesStringParse   = errors.New("byte string cannot be written as text")
	ErrOutOfScratchSpace  = errors.New("out of scratch space")
	ErrMissingStack       = errors.New("missing operand")
	ErrConstantAssignment = errors.New("assignment to constant")
	ErrBadVersion         = errors.New("unsupported program version")
	ErrEmptyProgram       = errors.New("empty program")
	ErrSchemaType         = errors.New("unknown schema field type")
)
