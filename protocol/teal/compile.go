package teal

import (
	"fmt"
	"strconv"

	"tealc/errors"
	"tealc/protocol/types"
	"tealc/protocol/vm"
	"tealc/protocol/vmutil"
)

// Compile generates assembly for e in ctx.
// Operands applied to e by enclosing Apply nodes are on stack.
func (s *Session) Compile(ctx CompileContext, e Expr, stack *Stack) (string, error) {
	switch e := e.(type) {
	case Int:
		return vmutil.NewBuilder().AddInt(uint64(e)).Build()

	case Bytes:
		text := vmutil.Escape(e)
		if !vmutil.ValidText(text) {
			return "", errors.WithDetailf(ErrBytesStringParse, "%q", []byte(e))
		}
		return vmutil.NewBuilder().AddOp(vm.OP_BYTE, `"`+text+`"`).Build()

	case BinaryOp:
		operands, err := stack.popN(2)
		if err != nil {
			return "", errors.WithDetailf(err, "operator %s", e)
		}
		left, right := operands[0], operands[1]
		return vmutil.NewBuilder().AddRaw(left).AddRaw(right).AddOp(e.Op()).Build()

	case UnaryOp:
		x, err := stack.Pop()
		if err != nil {
			return "", errors.WithDetailf(err, "operator %s", e)
		}
		return vmutil.NewBuilder().AddRaw(x).AddOp(e.Op()).Build()

	case *Apply:
		arg, err := s.Compile(ctx, e.Arg, new(Stack))
		if err != nil {
			return "", err
		}
		stack.Push(arg)
		return s.Compile(ctx, e.Fn, stack)

	case *Let:
		value, err := s.Compile(ctx, e.Value, new(Stack))
		if err != nil {
			return "", err
		}
		slot := ctx.Scratch
		if slot >= MaxScratchSlots {
			return "", errors.WithData(
				errors.WithDetailf(ErrOutOfScratchSpace, "binding %s", e.Name),
				"identifier", e.Name,
			)
		}
		inner := ctx.bind(e.Name, ScratchVar(slot))
		inner.Scratch = slot + 1
		body, err := s.Compile(inner, e.Body, stack)
		if err != nil {
			return "", err
		}
		b := vmutil.NewBuilder()
		b.AddRaw(value).AddOp(vm.OP_STORE, strconv.Itoa(slot)).AddRaw(body)
		return b.Build()

	case *Const:
		value, err := s.Compile(ctx, e.Value, new(Stack))
		if err != nil {
			return "", err
		}
		return s.Compile(ctx.bind(e.Name, Replacement(value)), e.Body, stack)

	case *Cond:
		// The label is taken before the later arms are compiled,
		// so earlier arms get lower numbers.
		label := s.newLabel("cond")
		b := vmutil.NewBuilder()
		var next string
		if e.Next != nil {
			var err error
			next, err = s.Compile(ctx, e.Next, new(Stack))
			if err != nil {
				return "", err
			}
		}
		test, err := s.Compile(ctx, e.Test, new(Stack))
		if err != nil {
			return "", err
		}
		body, err := s.Compile(ctx, e.Body, new(Stack))
		if err != nil {
			return "", err
		}
		b.AddRaw(test).AddJumpIf(label)
		if e.Next != nil {
			b.AddRaw(next)
		} else {
			b.AddOp(vm.OP_ERR)
		}
		b.SetJumpTarget(label).AddRaw(body)
		return b.Build()

	case *If:
		then, err := s.Compile(ctx, e.Then, new(Stack))
		if err != nil {
			return "", err
		}
		els, err := s.Compile(ctx, e.Else, new(Stack))
		if err != nil {
			return "", err
		}
		elseLabel := s.newLabel("else")
		endLabel := s.newLabel("endif")
		test, err := stack.Pop()
		if err != nil {
			return "", errors.WithDetail(err, "if without a test")
		}
		b := vmutil.NewBuilder()
		b.AddRaw(test).AddJumpIfNot(elseLabel)
		b.AddRaw(then).AddJump(endLabel)
		b.SetJumpTarget(elseLabel).AddRaw(els)
		b.SetJumpTarget(endLabel)
		return b.Build()

	case *Seq:
		head, err := s.Compile(ctx, e.Head, new(Stack))
		if err != nil {
			return "", err
		}
		if e.Tail == nil {
			return head, nil
		}
		tail, err := s.Compile(ctx, e.Tail, new(Stack))
		if err != nil {
			return "", err
		}
		return vmutil.NewBuilder().AddRaw(head).AddRaw(tail).Build()

	case Ret:
		value, err := stack.Pop()
		if err != nil {
			return "", errors.WithDetail(err, "return without a value")
		}
		return vmutil.NewBuilder().AddRaw(value).AddOp(vm.OP_RETURN).Build()

	case RVal:
		return s.compileRead(ctx, e.Var, stack)

	case LVal:
		return s.compileWrite(ctx, e.Var, stack)

	case Txn:
		if e.Field.Array() {
			return vmutil.NewBuilder().AddOp(vm.OP_TXNA, e.Field.String(), strconv.Itoa(int(e.Index))).Build()
		}
		return vmutil.NewBuilder().AddOp(vm.OP_TXN, e.Field.String()).Build()

	case OnComplete:
		return vmutil.NewBuilder().AddOp(vm.OP_INT, e.Action.String()).Build()
	}

	panic(fmt.Errorf("teal: unknown expression type %T", e))
}

func (s *Session) compileRead(ctx CompileContext, v Var, stack *Stack) (string, error) {
	b := vmutil.NewBuilder()
	switch v.Kind {
	case Bound:
		binding, err := lookupBinding(ctx, v)
		if err != nil {
			return "", err
		}
		switch binding := binding.(type) {
		case ScratchVar:
			b.AddOp(vm.OP_LOAD, strconv.Itoa(int(binding)))
		case Replacement:
			b.AddRaw(string(binding))
		}
	case Global:
		b.AddData([]byte(v.Name)).AddOp(vm.OP_APP_GLOBAL_GET)
	case Local:
		account, err := stack.Pop()
		if err != nil {
			return "", errors.WithDetailf(err, "reading %s without an account", v)
		}
		b.AddRaw(account).AddData([]byte(v.Name)).AddOp(vm.OP_APP_LOCAL_GET)
	}
	return b.Build()
}

func (s *Session) compileWrite(ctx CompileContext, v Var, stack *Stack) (string, error) {
	b := vmutil.NewBuilder()
	switch v.Kind {
	case Bound:
		binding, err := lookupBinding(ctx, v)
		if err != nil {
			return "", err
		}
		slot, ok := binding.(ScratchVar)
		if !ok {
			return "", errors.WithData(
				errors.WithDetailf(ErrConstantAssignment, "%s", v),
				"identifier", v.Name,
			)
		}
		value, err := stack.Pop()
		if err != nil {
			return "", errors.WithDetailf(err, "assigning %s without a value", v)
		}
		b.AddRaw(value).AddOp(vm.OP_STORE, strconv.Itoa(int(slot)))
	case Global:
		value, err := stack.Pop()
		if err != nil {
			return "", errors.WithDetailf(err, "assigning %s without a value", v)
		}
		b.AddData([]byte(v.Name)).AddRaw(value).AddOp(vm.OP_APP_GLOBAL_PUT)
	case Local:
		operands, err := stack.popN(2)
		if err != nil {
			return "", errors.WithDetailf(err, "assigning %s", v)
		}
		value, account := operands[0], operands[1]
		b.AddRaw(account).AddData([]byte(v.Name)).AddRaw(value).AddOp(vm.OP_APP_LOCAL_PUT)
	}
	return b.Build()
}

// lookupBinding finds a let- or const-bound name. A miss means the
// program was compiled without being type-checked.
func lookupBinding(ctx CompileContext, v Var) (Binding, error) {
	binding, ok := ctx.Scope.Lookup(v.Name)
	if !ok {
		return nil, errors.Sub(ErrTypeCheck, errors.WithData(
			errors.WithDetailf(types.ErrUnboundIdentifier, "%s", v),
			"identifier", v.Name, "kind", v.Kind.String(),
		))
	}
	return binding, nil
}
