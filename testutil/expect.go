// Package testutil contains helpers shared by the tests of tealc packages.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"runtime"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"

	"tealc/errors"
)

var wd, _ = os.Getwd()

var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// ExpectEqual reports a test error, with a dump of both values,
// if actual and expected are not deeply equal.
func ExpectEqual(t testing.TB, actual, expected interface{}, msg string) {
	t.Helper()
	if !reflect.DeepEqual(actual, expected) {
		t.Errorf("%s:\ngot:\n%s\nexpected:\n%s\n%s", msg, dumper.Sdump(actual), dumper.Sdump(expected), stackTrace())
	}
}

// ExpectAsmEqual compares two assembly listings line by line and
// reports the first differing line along with both listings.
func ExpectAsmEqual(t testing.TB, actual, expected string, msg string) {
	t.Helper()
	if actual == expected {
		return
	}
	got := strings.Split(actual, "\n")
	want := strings.Split(expected, "\n")
	line := 0
	for line < len(got) && line < len(want) && got[line] == want[line] {
		line++
	}
	t.Errorf("%s: listings differ at line %d\ngot:\n%s\n\nexpected:\n%s",
		msg, line+1, numbered(got), numbered(want))
}

// ExpectError calls fn and reports a test error if the root
// of the returned error is not expected.
func ExpectError(t testing.TB, expected error, msg string, fn func() error) {
	t.Helper()
	actual := fn()
	if expected != errors.Root(actual) {
		t.Errorf("%s: got error %v, expected %v\n%s", msg, actual, expected, stackTrace())
	}
}

// FatalErr fails the test with err and the stack recorded in it,
// printing file names relative to the working directory.
func FatalErr(t testing.TB, err error) {
	t.Helper()
	args := []interface{}{err}
	for _, frame := range errors.Stack(err) {
		file := frame.File
		if rel, err := filepath.Rel(wd, file); err == nil && !strings.HasPrefix(rel, "../") {
			file = rel
		}
		funcname := frame.Func[strings.IndexByte(frame.Func, '.')+1:]
		s := fmt.Sprintf("\n%s:%d: %s", file, frame.Line, funcname)
		args = append(args, s)
	}
	if d := errors.Detail(err); d != "" {
		args = append(args, "\ndetail: "+d)
	}
	t.Fatal(args...)
}

func numbered(lines []string) string {
	var b strings.Builder
	for i, l := range lines {
		fmt.Fprintf(&b, "%4d  %s\n", i+1, l)
	}
	return b.String()
}

func stackTrace() []byte {
	buf := make([]byte, 16384)
	len := runtime.Stack(buf, false)
	return buf[:len]
}
