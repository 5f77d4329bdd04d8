package vm

import "testing"

func TestOpsTable(t *testing.T) {
	for i, info := range ops {
		if info.name == "" {
			continue
		}
		if info.op != Op(i) {
			t.Errorf("ops[%d].op = %d", i, info.op)
		}
		if info.version == 0 || info.version > MaxVersion {
			t.Errorf("%s: version %d out of range", info.name, info.version)
		}
		if op, ok := Lookup(info.name); !ok || op != info.op {
			t.Errorf("Lookup(%q) = %d, %v", info.name, op, ok)
		}
	}
}

func TestMinVersion(t *testing.T) {
	cases := []struct {
		op   Op
		want uint64
	}{
		{OP_INT, 1},
		{OP_BNZ, 1},
		{OP_BZ, 2},
		{OP_B, 2},
		{OP_RETURN, 2},
		{OP_APP_GLOBAL_PUT, 2},
		{OP_APP_LOCAL_GET, 2},
		{OP_SHL, 4},
		{OP_SQRT, 4},
		{OP_EXP, 4},
		{OP_LOG, 5},
	}
	for _, c := range cases {
		if got := c.op.MinVersion(); got != c.want {
			t.Errorf("%s.MinVersion() = %d want %d", c.op, got, c.want)
		}
	}
	if !OP_BNZ.IsBranch() || OP_INT.IsBranch() {
		t.Error("IsBranch misclassifies bnz or int")
	}
}

func TestTxnFields(t *testing.T) {
	bytesFields := map[TxnField]bool{
		Sender: true, Receiver: true, CloseRemainderTo: true, Accounts: true,
	}
	for _, f := range []TxnField{Sender, Fee, Receiver, Amount, CloseRemainderTo, GroupIndex, ApplicationID, OnCompletion, Accounts, NumAccounts} {
		if f.Bytes() != bytesFields[f] {
			t.Errorf("%s.Bytes() = %v", f, f.Bytes())
		}
		got, ok := LookupTxnField(f.String())
		if !ok || got != f {
			t.Errorf("LookupTxnField(%q) = %v, %v", f.String(), got, ok)
		}
	}
	if !Accounts.Array() || Sender.Array() {
		t.Error("Array misclassifies Accounts or Sender")
	}
}

func TestOnCompletionNames(t *testing.T) {
	want := []string{"NoOp", "OptIn", "CloseOut", "ClearState", "UpdateApplication", "DeleteApplication"}
	for i, name := range want {
		if got := OnCompletionType(i).String(); got != name {
			t.Errorf("OnCompletionType(%d) = %q want %q", i, got, name)
		}
		if namedInts[name] != 2 {
			t.Errorf("%s not accepted by int from version 2", name)
		}
	}
}
