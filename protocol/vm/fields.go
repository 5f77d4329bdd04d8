package vm

// TxnField names a field of the current transaction,
// read with the txn opcode.
type TxnField uint8

const (
	Sender TxnField = iota
	Fee
	FirstValid
	LastValid
	Note
	Lease
	Receiver
	Amount
	CloseRemainderTo
	TypeEnum
	GroupIndex
	TxID
	ApplicationID
	OnCompletion
	ApplicationArgs
	NumAppArgs
	Accounts
	NumAccounts
	RekeyTo
)

type txnFieldInfo struct {
	name    string
	version uint64
	bytes   bool
	array   bool
}

var txnFields = [...]txnFieldInfo{
	Sender:           {"Sender", 1, true, false},
	Fee:              {"Fee", 1, false, false},
	FirstValid:       {"FirstValid", 1, false, false},
	LastValid:        {"LastValid", 1, false, false},
	Note:             {"Note", 1, true, false},
	Lease:            {"Lease", 1, true, false},
	Receiver:         {"Receiver", 1, true, false},
	Amount:           {"Amount", 1, false, false},
	CloseRemainderTo: {"CloseRemainderTo", 1, true, false},
	TypeEnum:         {"TypeEnum", 1, false, false},
	GroupIndex:       {"GroupIndex", 1, false, false},
	TxID:             {"TxID", 1, true, false},
	ApplicationID:    {"ApplicationID", 2, false, false},
	OnCompletion:     {"OnCompletion", 2, false, false},
	ApplicationArgs:  {"ApplicationArgs", 2, true, true},
	NumAppArgs:       {"NumAppArgs", 2, false, false},
	Accounts:         {"Accounts", 2, true, true},
	NumAccounts:      {"NumAccounts", 2, false, false},
	RekeyTo:          {"RekeyTo", 2, true, false},
}

var txnFieldsByName = make(map[string]TxnField)

func init() {
	for i, f := range txnFields {
		txnFieldsByName[f.name] = TxnField(i)
	}
}

func (f TxnField) valid() bool { return int(f) < len(txnFields) }

func (f TxnField) String() string {
	if !f.valid() {
		return "TxnField(?)"
	}
	return txnFields[f].name
}

// Bytes reports whether the field holds a byte string
// (an address, hash, or argument) rather than an integer.
func (f TxnField) Bytes() bool { return f.valid() && txnFields[f].bytes }

// Array reports whether the field is an array indexed by an
// additional immediate.
func (f TxnField) Array() bool { return f.valid() && txnFields[f].array }

// MinVersion returns the first program version supporting f.
func (f TxnField) MinVersion() uint64 {
	if !f.valid() {
		return 0
	}
	return txnFields[f].version
}

// LookupTxnField returns the field with the given name.
func LookupTxnField(name string) (TxnField, bool) {
	f, ok := txnFieldsByName[name]
	return f, ok
}

// globalFields maps global field names to the version introducing them.
var globalFields = map[string]uint64{
	"MinTxnFee":                 1,
	"MinBalance":                1,
	"MaxTxnLife":                1,
	"ZeroAddress":               1,
	"GroupSize":                 1,
	"LogicSigVersion":           2,
	"Round":                     2,
	"LatestTimestamp":           2,
	"CurrentApplicationID":      2,
	"CreatorAddress":            3,
	"CurrentApplicationAddress": 5,
	"GroupID":                   5,
}

// OnCompletionType is the action an application call requests after
// the approval program succeeds.
type OnCompletionType uint8

const (
	NoOp OnCompletionType = iota
	OptIn
	CloseOut
	ClearState
	UpdateApplication
	DeleteApplication
)

var onCompletionNames = [...]string{
	NoOp:              "NoOp",
	OptIn:             "OptIn",
	CloseOut:          "CloseOut",
	ClearState:        "ClearState",
	UpdateApplication: "UpdateApplication",
	DeleteApplication: "DeleteApplication",
}

func (c OnCompletionType) String() string {
	if int(c) >= len(onCompletionNames) {
		return "OnCompletion(?)"
	}
	return onCompletionNames[c]
}

// namedInts are the symbolic constants accepted by int and pushint,
// with the version introducing each.
var namedInts = map[string]uint64{
	"unknown": 1,
	"pay":     1,
	"keyreg":  1,
	"acfg":    1,
	"axfer":   1,
	"afrz":    1,
	"appl":    2,
}

func init() {
	for _, name := range onCompletionNames {
		namedInts[name] = 2
	}
}
