package env

import (
	"testing"

	"tealc/errors"
)

func TestInt(t *testing.T) {
	s := NewSet(Map(nil))
	result := s.Int("nonexistent", 15)
	if err := s.Parse(); err != nil {
		t.Fatal(err)
	}
	if *result != 15 {
		t.Fatalf("expected result=15, got result=%d", *result)
	}

	s = NewSet(Map(map[string]string{"int-key": "25"}))
	result = s.Int("int-key", 15)
	if err := s.Parse(); err != nil {
		t.Fatal(err)
	}
	if *result != 25 {
		t.Fatalf("expected result=25, got result=%d", *result)
	}
}

func TestUint64(t *testing.T) {
	s := NewSet(Map(map[string]string{"u": "18446744073709551615"}))
	result := s.Uint64("u", 1)
	if err := s.Parse(); err != nil {
		t.Fatal(err)
	}
	if *result != 1<<64-1 {
		t.Fatalf("expected max uint64, got %d", *result)
	}
}

func TestBool(t *testing.T) {
	s := NewSet(Map(map[string]string{"bool-key": "true"}))
	a := s.Bool("nonexistent", true)
	b := s.Bool("bool-key", false)
	if err := s.Parse(); err != nil {
		t.Fatal(err)
	}
	if !*a || !*b {
		t.Fatalf("expected both true, got %v %v", *a, *b)
	}
}

func TestParseBadValue(t *testing.T) {
	s := NewSet(Map(map[string]string{"n": "five", "b": "yes please", "ok": "7"}))
	n := s.Int("n", 5)
	s.Bool("b", false)
	ok := s.Int("ok", 0)

	err := s.Parse()
	if errors.Root(err) != ErrBadValue {
		t.Fatalf("Parse error = %v want %v", err, ErrBadValue)
	}
	if *n != 5 {
		t.Errorf("bad value should leave the default, got %d", *n)
	}
	if *ok != 7 {
		t.Errorf("good values should still be parsed, got %d", *ok)
	}
}

func TestProcessEnvironment(t *testing.T) {
	t.Setenv("TEALC_ENV_TEST", "42")
	s := new(Set)
	result := s.Int("TEALC_ENV_TEST", 0)
	if err := s.Parse(); err != nil {
		t.Fatal(err)
	}
	if *result != 42 {
		t.Fatalf("expected 42, got %d", *result)
	}
}
