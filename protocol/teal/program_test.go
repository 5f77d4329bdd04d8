package teal

import (
	"testing"

	"tealc/errors"
	"tealc/protocol/types"
	"tealc/protocol/vm"
	"tealc/testutil"
)

func TestNewProgram(t *testing.T) {
	cases := []struct {
		version uint64
		body    Expr
		want    error
	}{
		{1, Int(1), nil},
		{vm.MaxVersion, Int(1), nil},
		{0, Int(1), ErrBadVersion},
		{vm.MaxVersion + 1, Int(1), ErrBadVersion},
		{2, nil, ErrEmptyProgram},
	}
	for _, c := range cases {
		p, err := NewProgram(c.version, c.body)
		if errors.Root(err) != c.want {
			t.Errorf("NewProgram(%d, %v) error = %v want %v", c.version, c.body, err, c.want)
			continue
		}
		if err == nil && (p.Version != c.version || p.Body != c.body) {
			t.Errorf("NewProgram(%d, %v) = %+v", c.version, c.body, p)
		}
	}
}

func TestProgramCompile(t *testing.T) {
	cases := []struct {
		name    string
		version uint64
		body    Expr
		want    string
	}{
		{
			"return",
			2,
			Return(Int(1)),
			"#pragma version 2\nint 1\nreturn",
		},
		{
			"approve payments",
			1,
			Binop(EQ, Txn{Field: vm.TypeEnum}, Int(1)),
			"#pragma version 1\ntxn TypeEnum\nint 1\n==",
		},
		{
			"branch on completion",
			2,
			IfElse(
				Binop(EQ, Txn{Field: vm.OnCompletion}, OnComplete{vm.OptIn}),
				Return(Int(1)),
				Return(Int(0)),
			),
			"#pragma version 2\n" +
				"txn OnCompletion\nint OptIn\n==\n" +
				"bz else0\nint 1\nreturn\nb endif1\n" +
				"else0:\nint 0\nreturn\n" +
				"endif1:",
		},
		{
			"first argument",
			2,
			Return(Binop(EQ, Txn{Field: vm.ApplicationArgs, Index: 0}, Bytes("inc"))),
			"#pragma version 2\ntxna ApplicationArgs 0\nbyte \"inc\"\n==\nreturn",
		},
		{
			"shift",
			4,
			Binop(SHL, Int(1), Int(3)),
			"#pragma version 4\nint 1\nint 3\nshl",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p, err := NewProgram(c.version, c.body)
			if err != nil {
				testutil.FatalErr(t, err)
			}
			got, err := p.Compile()
			if err != nil {
				testutil.FatalErr(t, err)
			}
			testutil.ExpectAsmEqual(t, got, c.want, c.body.String())
			if err := vm.Check(got, c.version); err != nil {
				testutil.FatalErr(t, err)
			}
		})
	}
}

func TestProgramCompileErrors(t *testing.T) {
	cases := []struct {
		name    string
		version uint64
		body    Expr
		want    error
	}{
		{"type error", 2, Binop(ADD, Int(1), Bytes("x")), ErrTypeCheck},
		{"unbound global", 2, GlobalGet("count"), ErrTypeCheck},
		{"shift before version 4", 3, Binop(SHL, Int(1), Int(3)), vm.ErrUnsupportedVersion},
		{"named completion before version 2", 1, Binop(EQ, Txn{Field: vm.OnCompletion}, OnComplete{vm.NoOp}), vm.ErrUnsupportedVersion},
		{"if before version 2", 1, IfElse(Int(1), Int(2), Int(3)), vm.ErrUnsupportedVersion},
		{"return before version 2", 1, Return(Int(1)), vm.ErrUnsupportedVersion},
		{"partial application", 2, Call(GT, Int(1)), ErrMissingStack},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p, err := NewProgram(c.version, c.body)
			if err != nil {
				testutil.FatalErr(t, err)
			}
			testutil.ExpectError(t, c.want, c.name, func() error {
				_, err := p.Compile()
				return err
			})
		})
	}
}

func TestProgramTypeErrorKeepsCause(t *testing.T) {
	p, err := NewProgram(2, Binop(ADD, Int(1), Bytes("x")))
	if err != nil {
		testutil.FatalErr(t, err)
	}
	_, err = p.Compile()
	if errors.Root(err) != ErrTypeCheck {
		t.Fatalf("Root(err) = %v want %v", errors.Root(err), ErrTypeCheck)
	}
	if !errors.Is(err, types.ErrMismatchedTypes) {
		t.Errorf("errors.Is(%v, ErrMismatchedTypes) = false", err)
	}
	if errors.Detail(err) == "" {
		t.Errorf("type error has no detail")
	}
}

func TestProgramTypeCheck(t *testing.T) {
	cases := []struct {
		body Expr
		want types.Type
	}{
		{Return(Int(1)), types.Halt},
		{Binop(LT, Int(1), Int(2)), types.UInt64},
		{Unop(ITOB, Int(7)), types.Byteslice},
		{Sequence(Return(Int(1)), Bytes("dead")), types.Halt},
		{Call(GT, Int(1)), types.Func(types.UInt64, types.UInt64)},
	}
	for _, c := range cases {
		p, err := NewProgram(vm.MaxVersion, c.body)
		if err != nil {
			testutil.FatalErr(t, err)
		}
		got, err := p.TypeCheck()
		if err != nil {
			testutil.FatalErr(t, err)
		}
		if got != c.want {
			t.Errorf("TypeCheck(%s) = %s want %s", c.body, types.String(got), types.String(c.want))
		}
	}
}
