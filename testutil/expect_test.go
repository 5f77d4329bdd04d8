package testutil

import (
	"strings"
	"testing"

	"tealc/errors"
)

// recorder captures failures instead of failing the enclosing test.
type recorder struct {
	testing.TB
	failed bool
	msg    string
}

func (r *recorder) Helper() {}

func (r *recorder) Errorf(format string, args ...interface{}) {
	r.failed = true
	r.msg = format
}

func TestExpectAsmEqual(t *testing.T) {
	r := &recorder{TB: t}
	ExpectAsmEqual(r, "int 1\nint 2\n+", "int 1\nint 2\n+", "same")
	if r.failed {
		t.Error("equal listings reported as different")
	}

	ExpectAsmEqual(r, "int 1\nint 2\n+", "int 1\nint 3\n+", "differ")
	if !r.failed {
		t.Error("different listings not reported")
	}
}

func TestExpectError(t *testing.T) {
	errBoom := errors.New("boom")

	r := &recorder{TB: t}
	ExpectError(r, errBoom, "wrapped", func() error {
		return errors.WithDetail(errBoom, "context")
	})
	if r.failed {
		t.Error("wrapped sentinel not matched")
	}

	ExpectError(r, errBoom, "other", func() error { return errors.New("boom") })
	if !r.failed {
		t.Error("distinct error matched sentinel")
	}
}

func TestNumbered(t *testing.T) {
	got := numbered([]string{"int 1", "return"})
	if !strings.Contains(got, "   1  int 1") || !strings.Contains(got, "   2  return") {
		t.Errorf("numbered = %q", got)
	}
}
