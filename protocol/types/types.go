// Package types defines the types of the expression language and
// the unification engine used to infer them.
//
// A Type is one of a Primitive, an Arrow (a curried function), or a Var
// (a type variable). Type variables live in a Store: a Var carries only
// an ID, and the Store holds the binding of every variable it has
// allocated. Binding a variable through Unify is therefore visible
// through every copy of the Var.
package types

import (
	"strconv"
	"strings"
)

// Type is a type expression.
// The concrete types are Primitive, Arrow and Var.
type Type interface {
	String() string
	isType()
}

// Primitive is a simple, non-function type.
type Primitive int

const (
	// Void is the type of side-effecting statements.
	Void Primitive = iota
	UInt64
	Byteslice

	// Halt is the bottom type of expressions that never produce a
	// value for their context, such as a return. It unifies with
	// every other Primitive.
	Halt
)

var primitiveNames = [...]string{
	Void:      "<void>",
	UInt64:    "int",
	Byteslice: "bytes",
	Halt:      "<halt>",
}

func (p Primitive) String() string {
	if p < 0 || int(p) >= len(primitiveNames) {
		return "<primitive " + strconv.Itoa(int(p)) + ">"
	}
	return primitiveNames[p]
}

func (Primitive) isType() {}

// Arrow is the type of a function from Param to Result.
// Functions of several arguments are curried.
type Arrow struct {
	Param  Type
	Result Type
}

func (a Arrow) String() string { return String(a) }

func (Arrow) isType() {}

// Var is a type variable. Its binding, if any, is held in the Store
// that allocated it.
type Var struct {
	ID int
}

func (v Var) String() string { return String(v) }

func (Var) isType() {}

// Func returns the curried function type
//
//	ts[0] -> ts[1] -> ... -> ts[len(ts)-1]
//
// Func panics if ts is empty.
func Func(ts ...Type) Type {
	if len(ts) == 0 {
		panic("types.Func: no types")
	}
	t := ts[len(ts)-1]
	for i := len(ts) - 2; i >= 0; i-- {
		t = Arrow{Param: ts[i], Result: t}
	}
	return t
}

// String formats t without consulting any Store,
// treating every variable as unbound.
func String(t Type) string {
	var p printer
	p.print(t, false)
	return p.b.String()
}

// printer names variables in order of first occurrence,
// so types of the same shape print identically.
type printer struct {
	b     strings.Builder
	names map[int]string
}

func (p *printer) print(t Type, paren bool) {
	switch t := t.(type) {
	case Primitive:
		p.b.WriteString(t.String())
	case Arrow:
		if paren {
			p.b.WriteByte('(')
		}
		_, isArrow := t.Param.(Arrow)
		p.print(t.Param, isArrow)
		p.b.WriteString(" -> ")
		p.print(t.Result, false)
		if paren {
			p.b.WriteByte(')')
		}
	case Var:
		p.b.WriteString(p.name(t.ID))
	case nil:
		p.b.WriteString("<nil>")
	}
}

func (p *printer) name(id int) string {
	if p.names == nil {
		p.names = make(map[int]string)
	}
	if n, ok := p.names[id]; ok {
		return n
	}
	n := varName(len(p.names))
	p.names[id] = n
	return n
}

// varName returns the display name of the i'th distinct variable:
// 'a through 'z, then 'a1 through 'z1, and so on.
func varName(i int) string {
	n := "'" + string(rune('a'+i%26))
	if i >= 26 {
		n += strconv.Itoa(i / 26)
	}
	return n
}
