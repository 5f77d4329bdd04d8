package types

import "testing"

func TestString(t *testing.T) {
	s := NewStore()
	a, b := s.Fresh(), s.Fresh()

	cases := []struct {
		typ  Type
		want string
	}{
		{Void, "<void>"},
		{UInt64, "int"},
		{Byteslice, "bytes"},
		{Halt, "<halt>"},
		{Func(UInt64, UInt64), "int -> int"},
		{Func(UInt64, UInt64, UInt64), "int -> int -> int"},
		{Func(Func(UInt64, Byteslice), Void), "(int -> bytes) -> <void>"},
		{Func(a, b, a), "'a -> 'b -> 'a"},
		{Func(b, a, b), "'a -> 'b -> 'a"},
		{Func(a, a, UInt64), "'a -> 'a -> int"},
	}
	for _, c := range cases {
		if got := String(c.typ); got != c.want {
			t.Errorf("String(%#v) = %q want %q", c.typ, got, c.want)
		}
		if got := c.typ.String(); got != c.want {
			t.Errorf("%#v.String() = %q want %q", c.typ, got, c.want)
		}
	}
}

func TestFormatResolves(t *testing.T) {
	s := NewStore()
	a, b, c := s.Fresh(), s.Fresh(), s.Fresh()
	if err := s.Unify(a, Func(b, UInt64)); err != nil {
		t.Fatal(err)
	}
	if got, want := s.Format(Func(c, a)), "'a -> 'b -> int"; got != want {
		t.Errorf("Format = %q want %q", got, want)
	}
}

func TestVarName(t *testing.T) {
	cases := map[int]string{
		0:  "'a",
		1:  "'b",
		25: "'z",
		26: "'a1",
		27: "'b1",
		52: "'a2",
	}
	for i, want := range cases {
		if got := varName(i); got != want {
			t.Errorf("varName(%d) = %q want %q", i, got, want)
		}
	}
}
