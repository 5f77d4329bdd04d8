package types

import (
	"testing"

	"tealc/errors"
	"tealc/testutil"
)

func TestUnifyPrimitives(t *testing.T) {
	prims := []Primitive{Void, UInt64, Byteslice, Halt}
	for _, a := range prims {
		for _, b := range prims {
			s := NewStore()
			err := s.Unify(a, b)
			wantOK := a == b || a == Halt || b == Halt
			if wantOK && err != nil {
				t.Errorf("Unify(%s, %s) = %v want nil", a, b, err)
			}
			if !wantOK && errors.Root(err) != ErrMismatchedTypes {
				t.Errorf("Unify(%s, %s) = %v want %v", a, b, err, ErrMismatchedTypes)
			}
		}
	}
}

func TestHaltAbsorption(t *testing.T) {
	for _, x := range []Primitive{Void, UInt64, Byteslice, Halt} {
		s := NewStore()
		v := s.Fresh()
		if err := s.Unify(v, x); err != nil {
			testutil.FatalErr(t, err)
		}
		if err := s.Unify(Halt, v); err != nil {
			t.Errorf("Unify(Halt, %s) = %v", x, err)
		}
		if err := s.Unify(v, Halt); err != nil {
			t.Errorf("Unify(%s, Halt) = %v", x, err)
		}
		if got := s.Resolve(v); got != x {
			t.Errorf("Halt changed %s to %s", x, got)
		}
	}
}

func TestUnifySymmetric(t *testing.T) {
	cases := []struct {
		name string
		mk   func(s *Store) (Type, Type)
		ok   bool
	}{
		{"var and prim", func(s *Store) (Type, Type) { return s.Fresh(), UInt64 }, true},
		{"var and arrow", func(s *Store) (Type, Type) { return s.Fresh(), Func(UInt64, Byteslice) }, true},
		{"arrows with vars", func(s *Store) (Type, Type) {
			a, b := s.Fresh(), s.Fresh()
			return Func(a, UInt64), Func(Byteslice, b)
		}, true},
		{"alias of itself", func(s *Store) (Type, Type) {
			a, b := s.Fresh(), s.Fresh()
			s.Unify(a, b)
			return a, Func(b, UInt64)
		}, false},
		{"prim and arrow", func(s *Store) (Type, Type) { return UInt64, Func(UInt64, UInt64) }, false},
		{"arrow param mismatch", func(s *Store) (Type, Type) {
			return Func(UInt64, Void), Func(Byteslice, Void)
		}, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			for _, flip := range []bool{false, true} {
				s := NewStore()
				a, b := c.mk(s)
				if flip {
					a, b = b, a
				}
				err := s.Unify(a, b)
				if c.ok != (err == nil) {
					t.Fatalf("flip=%v: Unify(%s, %s) = %v", flip, s.Format(a), s.Format(b), err)
				}
				if err == nil && s.Resolve(a) != s.Resolve(b) {
					t.Errorf("flip=%v: after unify %s != %s", flip, s.Format(a), s.Format(b))
				}
				if err == nil {
					if err := s.Unify(a, b); err != nil {
						t.Errorf("flip=%v: second unify failed: %v", flip, err)
					}
				}
			}
		})
	}
}

func TestOccursCheck(t *testing.T) {
	s := NewStore()
	v := s.Fresh()
	recursive := Func(v, UInt64)

	testutil.ExpectError(t, ErrUnresolvableTypeVariable, "var in arrow", func() error {
		return s.Unify(v, recursive)
	})
	testutil.ExpectError(t, ErrUnresolvableTypeVariable, "arrow with var", func() error {
		return s.Unify(Func(UInt64, v), v)
	})
	if s.Head(v) != v {
		t.Errorf("failed occurs check bound %s", s.Format(v))
	}
}

func TestBindingVisibleThroughCopies(t *testing.T) {
	s := NewStore()
	v := s.Fresh()
	copy1, copy2 := v, v
	f := Func(copy1, copy1)

	if err := s.Unify(copy2, Byteslice); err != nil {
		testutil.FatalErr(t, err)
	}
	if got := s.Format(f); got != "bytes -> bytes" {
		t.Errorf("Format = %q want %q", got, "bytes -> bytes")
	}
}

func TestPathCompression(t *testing.T) {
	s := NewStore()
	vars := make([]Var, 5)
	for i := range vars {
		vars[i] = s.Fresh()
	}
	for i := 0; i+1 < len(vars); i++ {
		if err := s.Unify(vars[i], vars[i+1]); err != nil {
			testutil.FatalErr(t, err)
		}
	}
	if err := s.Unify(vars[len(vars)-1], UInt64); err != nil {
		testutil.FatalErr(t, err)
	}
	if s.Head(vars[0]) != UInt64 {
		t.Fatalf("Head = %s", s.Head(vars[0]))
	}
	if s.cells[vars[0].ID] != UInt64 {
		t.Errorf("path not compressed: cell holds %v", s.cells[vars[0].ID])
	}
}

func TestFunction(t *testing.T) {
	s := NewStore()

	a, err := s.Function(Func(UInt64, Void))
	if err != nil {
		testutil.FatalErr(t, err)
	}
	if a.Param != UInt64 || a.Result != Void {
		t.Errorf("Function = %s", a)
	}

	v := s.Fresh()
	_, err = s.Function(v)
	if err != nil {
		testutil.FatalErr(t, err)
	}
	if _, ok := s.Head(v).(Arrow); !ok {
		t.Errorf("variable in function position not bound to an arrow: %s", s.Format(v))
	}

	testutil.ExpectError(t, ErrNonFunctionApplication, "int", func() error {
		_, err := s.Function(UInt64)
		return err
	})
}

func TestErrorData(t *testing.T) {
	s := NewStore()
	err := s.Unify(UInt64, Byteslice)
	data := errors.Data(err)
	if data["left"] != UInt64 || data["right"] != Byteslice {
		t.Errorf("Data = %v", data)
	}
	if got, want := errors.Detail(err), "int and bytes"; got != want {
		t.Errorf("Detail = %q want %q", got, want)
	}
}
