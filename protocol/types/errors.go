package types

import "tealc/errors"

// Errors returned by type inference.
var (
	ErrMismatchedTypes          = errors.New("mismatched types")
	ErrIrreconcilableTypes      = errors.New("irreconcilable types")
	ErrUnresolvableTypeVariable = errors.New("unresolvable type variable")
	ErrStackUnderflow           = errors.New("stack underflow")
	ErrNonFunctionApplication   = errors.New("application of a non-function")
	ErrUnboundIdentifier        = errors.New("unbound identifier")
	ErrSequencing               = errors.New("value discarded in sequence")
)
