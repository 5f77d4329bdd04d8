package teal

import (
	"fmt"

	"tealc/errors"
	"tealc/protocol/types"
)

// Resolve infers the type of e in env.
// The returned type may contain variables bound in the session's
// store; use Types().Resolve or Types().Format to inspect it.
func (s *Session) Resolve(env TypeEnv, e Expr) (types.Type, error) {
	store := s.types

	switch e := e.(type) {
	case Int:
		return types.UInt64, nil

	case Bytes:
		return types.Byteslice, nil

	case BinaryOp:
		return e.typ(store), nil

	case UnaryOp:
		return e.typ(), nil

	case *Apply:
		fnType, err := s.Resolve(env, e.Fn)
		if err != nil {
			return nil, err
		}
		argType, err := s.Resolve(env, e.Arg)
		if err != nil {
			return nil, err
		}
		fn, err := store.Function(fnType)
		if err != nil {
			return nil, errors.WithDetailf(err, "applying %s", e.Fn)
		}
		if err := store.Unify(fn.Param, argType); err != nil {
			return nil, errors.WithDetailf(err, "argument %s of %s", e.Arg, e.Fn)
		}
		return fn.Result, nil

	case *Let:
		return s.resolveBinder(env, e.Name, e.Value, e.Body)

	case *Const:
		return s.resolveBinder(env, e.Name, e.Value, e.Body)

	case *Cond:
		testType, err := s.Resolve(env, e.Test)
		if err != nil {
			return nil, err
		}
		if err := store.Unify(testType, types.UInt64); err != nil {
			return nil, errors.WithDetailf(err, "condition %s", e.Test)
		}
		bodyType, err := s.Resolve(env, e.Body)
		if err != nil {
			return nil, err
		}
		if e.Next != nil {
			nextType, err := s.Resolve(env, e.Next)
			if err != nil {
				return nil, err
			}
			if err := store.Unify(bodyType, nextType); err != nil {
				return nil, errors.WithDetail(err, "arms of cond")
			}
		}
		return bodyType, nil

	case *If:
		thenType, err := s.Resolve(env, e.Then)
		if err != nil {
			return nil, err
		}
		elseType, err := s.Resolve(env, e.Else)
		if err != nil {
			return nil, err
		}
		if err := store.Unify(thenType, elseType); err != nil {
			return nil, errors.WithDetail(err, "branches of if")
		}
		return types.Func(types.UInt64, thenType), nil

	case *Seq:
		return s.resolveSeq(env, e)

	case Ret:
		return types.Func(types.UInt64, types.Halt), nil

	case RVal:
		t, err := lookupType(env, e.Var)
		if err != nil {
			return nil, err
		}
		if e.Var.Kind == Local {
			return types.Func(types.UInt64, t), nil
		}
		return t, nil

	case LVal:
		t, err := lookupType(env, e.Var)
		if err != nil {
			return nil, err
		}
		if e.Var.Kind == Local {
			return types.Func(types.UInt64, t, types.Void), nil
		}
		return types.Func(t, types.Void), nil

	case Txn:
		if e.Field.Bytes() {
			return types.Byteslice, nil
		}
		return types.UInt64, nil

	case OnComplete:
		return types.UInt64, nil
	}

	panic(fmt.Errorf("teal: unknown expression type %T", e))
}

func (s *Session) resolveBinder(env TypeEnv, name string, value, body Expr) (types.Type, error) {
	valueType, err := s.Resolve(env, value)
	if err != nil {
		return nil, err
	}
	env.Bind = env.Bind.Add(name, valueType)
	return s.Resolve(env, body)
}

// resolveSeq types a sequence. A head is a statement: it must have
// type Void (an effect) or Halt (the end of the program, after which
// the tail is unreachable and is not checked). A head whose type is
// still unknown is taken to be Void.
func (s *Session) resolveSeq(env TypeEnv, e *Seq) (types.Type, error) {
	store := s.types
	headType, err := s.Resolve(env, e.Head)
	if err != nil {
		return nil, err
	}
	if e.Tail == nil {
		return headType, nil
	}

	switch h := store.Head(headType).(type) {
	case types.Primitive:
		switch h {
		case types.Halt:
			return headType, nil
		case types.Void:
			return s.Resolve(env, e.Tail)
		}
	case types.Var:
		if err := store.Unify(h, types.Void); err != nil {
			return nil, err
		}
		return s.Resolve(env, e.Tail)
	case types.Arrow:
		return nil, errors.WithData(
			errors.WithDetailf(types.ErrStackUnderflow, "statement %s has type %s and needs more arguments", e.Head, store.Format(h)),
			"type", store.Resolve(h),
		)
	}
	return nil, errors.WithData(
		errors.WithDetailf(types.ErrSequencing, "statement %s has type %s", e.Head, store.Format(headType)),
		"type", store.Resolve(headType),
	)
}

func lookupType(env TypeEnv, v Var) (types.Type, error) {
	t, ok := env.scope(v.Kind).Lookup(v.Name)
	if !ok {
		return nil, errors.WithData(
			errors.WithDetailf(types.ErrUnboundIdentifier, "%s", v),
			"identifier", v.Name, "kind", v.Kind.String(),
		)
	}
	return t, nil
}
