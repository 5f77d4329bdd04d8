package vm

import (
	"strings"
	"testing"

	"tealc/errors"
)

func TestCheck(t *testing.T) {
	cases := []struct {
		name    string
		src     string
		version uint64
		wantErr error
	}{
		{"literal", "int 5", 1, nil},
		{"comparison", "int 6\nint 2\n>", 1, nil},
		{"scratch", "int 5\nstore 0\nload 0", 1, nil},
		{"string with spaces", `byte "hello world"`, 1, nil},
		{"escaped string", `byte "a\"b\\c\n\x00"`, 1, nil},
		{"hex bytes", "byte 0xdeadbeef", 1, nil},
		{"base64 bytes", "byte base64 AAEC", 1, nil},
		{"comment", "int 1 // one\n// nothing\n\nreturn", 2, nil},
		{"pragma", "#pragma version 2\nint 1\nreturn", 2, nil},
		{"cond", "int 0\nbnz cond0\nerr\ncond0:\nint 1", 1, nil},
		{"if", "int 1\nbz else0\nint 2\nb endif1\nelse0:\nint 3\nendif1:", 2, nil},
		{"global state", "byte \"k\"\nint 1\napp_global_put", 2, nil},
		{"local state", "int 0\nbyte \"k\"\nint 1\napp_local_put", 2, nil},
		{"txn", "txn Sender\ntxn Accounts 1\ntxna ApplicationArgs 0", 2, nil},
		{"on completion", "int OptIn", 2, nil},
		{"type enum constant", "int pay", 1, nil},
		{"global field", "global GroupSize", 1, nil},

		{"unknown opcode", "frobnicate", 1, ErrUnknownOpcode},
		{"op too new", "int 4\nint 2\nshl", 3, ErrUnsupportedVersion},
		{"bz in v1", "int 0\nbz a\na:", 1, ErrUnsupportedVersion},
		{"txn field too new", "txn OnCompletion", 1, ErrUnsupportedVersion},
		{"constant too new", "int NoOp", 1, ErrUnsupportedVersion},
		{"global too new", "global GroupID", 4, ErrUnsupportedVersion},
		{"version zero", "int 1", 0, ErrUnsupportedVersion},
		{"version above max", "int 1", MaxVersion + 1, ErrUnsupportedVersion},
		{"missing immediate", "int", 1, ErrBadImmediate},
		{"extra immediate", "err 1", 1, ErrBadImmediate},
		{"bad int", "int five", 1, ErrBadImmediate},
		{"slot out of range", "store 256", 1, ErrBadImmediate},
		{"unterminated string", `byte "abc`, 1, ErrBadImmediate},
		{"bad hex", "byte 0xzz", 1, ErrBadImmediate},
		{"unknown txn field", "txn Frobs", 1, ErrBadImmediate},
		{"index on scalar field", "txn Fee 0", 1, ErrBadImmediate},
		{"array field without index", "txn Accounts", 2, ErrBadImmediate},
		{"txna in v1", "txna Accounts 0", 1, ErrUnsupportedVersion},
		{"array index out of range", "txna ApplicationArgs 256", 2, ErrBadImmediate},
		{"unknown label", "int 1\nbnz nowhere", 1, ErrUnknownLabel},
		{"duplicate label", "a:\nint 1\na:", 1, ErrDuplicateLabel},
		{"pragma mismatch", "#pragma version 3\nint 1", 2, ErrBadPragma},
		{"malformed pragma", "#pragma vers 2", 2, ErrBadPragma},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := Check(c.src, c.version)
			if errors.Root(err) != c.wantErr {
				t.Errorf("Check(%q, %d) = %v want %v", c.src, c.version, err, c.wantErr)
			}
		})
	}
}

func TestParse(t *testing.T) {
	insts, err := Parse("int 1\nbnz l0\n\nl0:\nbyte \"a b\"\ntxn Accounts 2")
	if err != nil {
		t.Fatal(err)
	}
	if len(insts) != 5 {
		t.Fatalf("got %d instructions want 5", len(insts))
	}

	want := []struct {
		op    Op
		label string
		imms  []string
		line  int
	}{
		{OP_INT, "", []string{"1"}, 1},
		{OP_BNZ, "", []string{"l0"}, 2},
		{0, "l0", nil, 4},
		{OP_BYTE, "", []string{`"a b"`}, 5},
		{OP_TXN, "", []string{"Accounts", "2"}, 6},
	}
	for i, w := range want {
		got := insts[i]
		if got.Op != w.op || got.Label != w.label || got.Line != w.line ||
			strings.Join(got.Immediates, ",") != strings.Join(w.imms, ",") {
			t.Errorf("instruction %d = %+v want %+v", i, got, w)
		}
	}
}

func TestStripComment(t *testing.T) {
	cases := map[string]string{
		"int 1 // one":        "int 1 ",
		`byte "//not" // yes`: `byte "//not" `,
		`byte "\"//" // yes`:  `byte "\"//" `,
		"// whole line":       "",
		"int 1":               "int 1",
	}
	for in, want := range cases {
		if got := stripComment(in); got != want {
			t.Errorf("stripComment(%q) = %q want %q", in, got, want)
		}
	}
}
