package teal

import (
	"regexp"
	"strconv"
	"strings"

	"tealc/protocol/vm"
)

// Expr is a node of a program tree.
// The node types are Int, Bytes, BinaryOp, UnaryOp, *Apply, *Let,
// *Const, *Cond, *If, *Seq, Ret, RVal, LVal, Txn and OnComplete.
type Expr interface {
	// String returns the canonical text of the tree rooted at the node.
	String() string
	isExpr()
}

// Int is an unsigned 64-bit integer literal.
type Int uint64

// Bytes is a byte string literal.
type Bytes []byte

// Apply applies a curried function to one argument.
type Apply struct {
	Fn  Expr
	Arg Expr
}

// Let binds Name to the value of Value, stored in a scratch slot,
// while evaluating Body.
type Let struct {
	Name  string
	Value Expr
	Body  Expr
}

// Const binds Name to Value while evaluating Body.
// Value's code is substituted at every reference; no scratch slot
// is used and Name cannot be assigned.
type Const struct {
	Name  string
	Value Expr
	Body  Expr
}

// Cond is one arm of a conditional chain. If Test is nonzero the
// result is Body; otherwise evaluation continues with Next, and the
// program fails if there is no next arm.
type Cond struct {
	Test Expr
	Body Expr
	Next *Cond
}

// If is a function of a test value that evaluates Then if the test
// is nonzero and Else otherwise.
type If struct {
	Then Expr
	Else Expr
}

// Seq evaluates Head for its effect and then Tail.
// A nil Tail ends the sequence.
type Seq struct {
	Head Expr
	Tail Expr
}

// Ret is the function that ends the program with its argument as
// the result.
type Ret struct{}

// VarKind selects the storage a Var refers to.
type VarKind uint8

const (
	// Bound is a name introduced by Let or Const.
	Bound VarKind = iota

	// Global is a field of the application's global state.
	Global

	// Local is a field of an account's local state. Access takes
	// the account as an extra argument.
	Local
)

var varKindNames = [...]string{Bound: "bound", Global: "global", Local: "local"}

func (k VarKind) String() string {
	if int(k) >= len(varKindNames) {
		return "VarKind(" + strconv.Itoa(int(k)) + ")"
	}
	return varKindNames[k]
}

// Var names a variable.
type Var struct {
	Kind VarKind
	Name string
}

func (v Var) String() string {
	name := v.Name
	if !identRE.MatchString(name) {
		name = strconv.Quote(name)
	}
	if v.Kind == Bound {
		return name
	}
	return v.Kind.String() + "." + name
}

var identRE = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// RVal reads a variable.
type RVal struct {
	Var Var
}

// LVal is the function that assigns its argument to a variable.
type LVal struct {
	Var Var
}

// Txn reads a field of the current transaction.
// Index selects the element of an array field such as
// Accounts and is ignored for other fields.
type Txn struct {
	Field vm.TxnField
	Index uint8
}

// OnComplete is the integer constant for an OnCompletion action.
type OnComplete struct {
	Action vm.OnCompletionType
}

func (Int) isExpr()        {}
func (Bytes) isExpr()      {}
func (BinaryOp) isExpr()   {}
func (UnaryOp) isExpr()    {}
func (*Apply) isExpr()     {}
func (*Let) isExpr()       {}
func (*Const) isExpr()     {}
func (*Cond) isExpr()      {}
func (*If) isExpr()        {}
func (*Seq) isExpr()       {}
func (Ret) isExpr()        {}
func (RVal) isExpr()       {}
func (LVal) isExpr()       {}
func (Txn) isExpr()        {}
func (OnComplete) isExpr() {}

func (n Int) String() string   { return strconv.FormatUint(uint64(n), 10) }
func (b Bytes) String() string { return strconv.Quote(string(b)) }
func (a *Apply) String() string {
	return "(" + a.Fn.String() + " " + a.Arg.String() + ")"
}
func (l *Let) String() string {
	return "(let " + Var{Name: l.Name}.String() + " " + l.Value.String() + " " + l.Body.String() + ")"
}
func (c *Const) String() string {
	return "(const " + Var{Name: c.Name}.String() + " " + c.Value.String() + " " + c.Body.String() + ")"
}
func (c *Cond) String() string {
	var b strings.Builder
	b.WriteString("(cond")
	for arm := c; arm != nil; arm = arm.Next {
		b.WriteString(" (" + arm.Test.String() + " " + arm.Body.String() + ")")
	}
	b.WriteString(")")
	return b.String()
}
func (i *If) String() string {
	return "(if " + i.Then.String() + " " + i.Else.String() + ")"
}
func (s *Seq) String() string {
	if s.Tail == nil {
		return "(seq " + s.Head.String() + ")"
	}
	return "(seq " + s.Head.String() + " " + s.Tail.String() + ")"
}
func (Ret) String() string    { return "return" }
func (r RVal) String() string { return r.Var.String() }
func (l LVal) String() string { return "(set " + l.Var.String() + ")" }
func (t Txn) String() string {
	if t.Field.Array() {
		return "txn." + t.Field.String() + "[" + strconv.Itoa(int(t.Index)) + "]"
	}
	return "txn." + t.Field.String()
}
func (o OnComplete) String() string { return "oncomplete." + o.Action.String() }

// Call applies fn to args in order:
//
//	Call(f, a, b) = (f a) b
func Call(fn Expr, args ...Expr) Expr {
	for _, arg := range args {
		fn = &Apply{Fn: fn, Arg: arg}
	}
	return fn
}

// Binop returns the application of op to left and right, which
// compiles to left's code, then right's, then op.
func Binop(op BinaryOp, left, right Expr) Expr {
	return Call(op, right, left)
}

// Unop returns the application of op to x.
func Unop(op UnaryOp, x Expr) Expr {
	return Call(op, x)
}

// Bind returns a read of the let- or const-bound name.
func Bind(name string) RVal { return RVal{Var{Kind: Bound, Name: name}} }

// GlobalGet returns a read of global state field name.
func GlobalGet(name string) RVal { return RVal{Var{Kind: Global, Name: name}} }

// LocalGet returns a read of local state field name of account.
func LocalGet(name string, account Expr) Expr {
	return Call(RVal{Var{Kind: Local, Name: name}}, account)
}

// Assign returns the assignment of value to the let-bound name.
func Assign(name string, value Expr) Expr {
	return Call(LVal{Var{Kind: Bound, Name: name}}, value)
}

// GlobalPut returns the assignment of value to global state field name.
func GlobalPut(name string, value Expr) Expr {
	return Call(LVal{Var{Kind: Global, Name: name}}, value)
}

// LocalPut returns the assignment of value to local state field name
// of account.
func LocalPut(name string, account, value Expr) Expr {
	return Call(LVal{Var{Kind: Local, Name: name}}, account, value)
}

// Return returns an expression ending the program with value.
func Return(value Expr) Expr {
	return Call(Ret{}, value)
}

// IfElse returns an expression evaluating then or els
// depending on test.
func IfElse(test, then, els Expr) Expr {
	return Call(&If{Then: then, Else: els}, test)
}

// Sequence chains exprs into nested Seq nodes.
// It returns nil if exprs is empty.
func Sequence(exprs ...Expr) Expr {
	if len(exprs) == 0 {
		return nil
	}
	var tail Expr
	for i := len(exprs) - 1; i >= 0; i-- {
		tail = &Seq{Head: exprs[i], Tail: tail}
	}
	return tail
}
