package vm

import "tealc/errors"

var (
	ErrBadImmediate       = errors.New("bad immediate argument")
	ErrDuplicateLabel     = errors.New("duplicate label")
	ErrUnknownLabel       = errors.New("reference to undeclared label")
	ErrUnknownOpcode      = errors.New("unknown opcode")
	ErrUnsupportedVersion = errors.New("unsupported version")
	ErrBadPragma          = errors.New("bad pragma")
)
