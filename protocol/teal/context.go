package teal

import (
	"tealc/protocol/scope"
	"tealc/protocol/types"
)

// MaxScratchSlots is the number of scratch slots on the machine.
const MaxScratchSlots = 256

// Binding is what a let- or const-bound name compiles to:
// a ScratchVar or a Replacement.
type Binding interface {
	isBinding()
}

// ScratchVar is a name stored in a scratch slot.
type ScratchVar int

// Replacement is a name whose references are replaced by
// precompiled code.
type Replacement string

func (ScratchVar) isBinding()  {}
func (Replacement) isBinding() {}

// CompileContext is the environment of a node during code generation.
// Binders derive a new context for their bodies; a context is never
// modified.
type CompileContext struct {
	Scope *scope.Scope[string, Binding]

	// Scratch is the next free scratch slot.
	Scratch int
}

// bind returns ctx extended with name bound to b.
func (ctx CompileContext) bind(name string, b Binding) CompileContext {
	return CompileContext{Scope: ctx.Scope.Add(name, b), Scratch: ctx.Scratch}
}

// TypeEnv is the environment of a node during type inference.
type TypeEnv struct {
	Bind   *scope.Scope[string, types.Type]
	Global *scope.Scope[string, types.Type]
	Local  *scope.Scope[string, types.Type]
}

func (env TypeEnv) scope(k VarKind) *scope.Scope[string, types.Type] {
	switch k {
	case Global:
		return env.Global
	case Local:
		return env.Local
	}
	return env.Bind
}
