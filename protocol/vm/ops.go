package vm

// MaxVersion is the highest program version this package knows about.
const MaxVersion = 5

// OpSeparator separates lines of assembly text.
const OpSeparator = "\n"

type Op uint8

func (op Op) String() string {
	return ops[op].name
}

// MinVersion returns the first program version supporting op.
func (op Op) MinVersion() uint64 {
	return ops[op].version
}

// IsBranch reports whether op takes a label as its immediate.
func (op Op) IsBranch() bool {
	return ops[op].imm == immLabel
}

const (
	OP_ERR Op = iota + 1

	// cryptography
	OP_SHA256
	OP_KECCAK256
	OP_SHA512_256
	OP_ED25519VERIFY

	// arithmetic and logic
	OP_ADD
	OP_SUB
	OP_DIV
	OP_MUL
	OP_LT
	OP_GT
	OP_LE
	OP_GE
	OP_AND
	OP_OR
	OP_EQ
	OP_NEQ
	OP_NOT
	OP_LEN
	OP_ITOB
	OP_BTOI
	OP_MOD
	OP_BITOR
	OP_BITAND
	OP_BITXOR
	OP_BITNOT
	OP_MULW
	OP_ADDW
	OP_DIVMODW
	OP_SHL
	OP_SHR
	OP_SQRT
	OP_BITLEN
	OP_EXP
	OP_EXPW

	// constants
	OP_INTCBLOCK
	OP_INTC
	OP_BYTECBLOCK
	OP_BYTEC
	OP_INT
	OP_BYTE
	OP_PUSHINT
	OP_PUSHBYTES

	// transaction and global state
	OP_ARG
	OP_TXN
	OP_GLOBAL
	OP_GTXN
	OP_TXNA
	OP_GTXNA
	OP_GLOAD
	OP_GAID

	// scratch space
	OP_LOAD
	OP_STORE

	// control flow
	OP_BNZ
	OP_BZ
	OP_B
	OP_RETURN
	OP_ASSERT
	OP_CALLSUB
	OP_RETSUB

	// stack manipulation
	OP_POP
	OP_DUP
	OP_DUP2
	OP_DIG
	OP_SWAP
	OP_SELECT
	OP_COVER
	OP_UNCOVER

	// byte strings
	OP_CONCAT
	OP_SUBSTRING
	OP_SUBSTRING3
	OP_GETBIT
	OP_SETBIT
	OP_GETBYTE
	OP_SETBYTE

	// application state
	OP_BALANCE
	OP_APP_OPTED_IN
	OP_APP_LOCAL_GET
	OP_APP_LOCAL_GET_EX
	OP_APP_GLOBAL_GET
	OP_APP_GLOBAL_GET_EX
	OP_APP_LOCAL_PUT
	OP_APP_GLOBAL_PUT
	OP_APP_LOCAL_DEL
	OP_APP_GLOBAL_DEL
	OP_MIN_BALANCE

	OP_LOG
)

type immKind uint8

// Immediate argument shapes.
// An immUint8 op takes opInfo.n small integers.
const (
	immNone immKind = iota
	immInt
	immBytes
	immUint8
	immLabel
	immTxn
	immGlobal
	immGtxn
	immTxna
	immGtxna
	immIntList
	immBytesList
)

type opInfo struct {
	op      Op
	name    string
	version uint64
	imm     immKind
	n       int
}

var (
	ops = [256]opInfo{
		OP_ERR: {OP_ERR, "err", 1, immNone, 0},

		OP_SHA256:        {OP_SHA256, "sha256", 1, immNone, 0},
		OP_KECCAK256:     {OP_KECCAK256, "keccak256", 1, immNone, 0},
		OP_SHA512_256:    {OP_SHA512_256, "sha512_256", 1, immNone, 0},
		OP_ED25519VERIFY: {OP_ED25519VERIFY, "ed25519verify", 1, immNone, 0},

		OP_ADD:     {OP_ADD, "+", 1, immNone, 0},
		OP_SUB:     {OP_SUB, "-", 1, immNone, 0},
		OP_DIV:     {OP_DIV, "/", 1, immNone, 0},
		OP_MUL:     {OP_MUL, "*", 1, immNone, 0},
		OP_LT:      {OP_LT, "<", 1, immNone, 0},
		OP_GT:      {OP_GT, ">", 1, immNone, 0},
		OP_LE:      {OP_LE, "<=", 1, immNone, 0},
		OP_GE:      {OP_GE, ">=", 1, immNone, 0},
		OP_AND:     {OP_AND, "&&", 1, immNone, 0},
		OP_OR:      {OP_OR, "||", 1, immNone, 0},
		OP_EQ:      {OP_EQ, "==", 1, immNone, 0},
		OP_NEQ:     {OP_NEQ, "!=", 1, immNone, 0},
		OP_NOT:     {OP_NOT, "!", 1, immNone, 0},
		OP_LEN:     {OP_LEN, "len", 1, immNone, 0},
		OP_ITOB:    {OP_ITOB, "itob", 1, immNone, 0},
		OP_BTOI:    {OP_BTOI, "btoi", 1, immNone, 0},
		OP_MOD:     {OP_MOD, "%", 1, immNone, 0},
		OP_BITOR:   {OP_BITOR, "|", 1, immNone, 0},
		OP_BITAND:  {OP_BITAND, "&", 1, immNone, 0},
		OP_BITXOR:  {OP_BITXOR, "^", 1, immNone, 0},
		OP_BITNOT:  {OP_BITNOT, "~", 1, immNone, 0},
		OP_MULW:    {OP_MULW, "mulw", 1, immNone, 0},
		OP_ADDW:    {OP_ADDW, "addw", 2, immNone, 0},
		OP_DIVMODW: {OP_DIVMODW, "divmodw", 4, immNone, 0},
		OP_SHL:     {OP_SHL, "shl", 4, immNone, 0},
		OP_SHR:     {OP_SHR, "shr", 4, immNone, 0},
		OP_SQRT:    {OP_SQRT, "sqrt", 4, immNone, 0},
		OP_BITLEN:  {OP_BITLEN, "bitlen", 4, immNone, 0},
		OP_EXP:     {OP_EXP, "exp", 4, immNone, 0},
		OP_EXPW:    {OP_EXPW, "expw", 4, immNone, 0},

		OP_INTCBLOCK:  {OP_INTCBLOCK, "intcblock", 1, immIntList, 0},
		OP_INTC:       {OP_INTC, "intc", 1, immUint8, 1},
		OP_BYTECBLOCK: {OP_BYTECBLOCK, "bytecblock", 1, immBytesList, 0},
		OP_BYTEC:      {OP_BYTEC, "bytec", 1, immUint8, 1},
		OP_INT:        {OP_INT, "int", 1, immInt, 0},
		OP_BYTE:       {OP_BYTE, "byte", 1, immBytes, 0},
		OP_PUSHINT:    {OP_PUSHINT, "pushint", 3, immInt, 0},
		OP_PUSHBYTES:  {OP_PUSHBYTES, "pushbytes", 3, immBytes, 0},

		OP_ARG:    {OP_ARG, "arg", 1, immUint8, 1},
		OP_TXN:    {OP_TXN, "txn", 1, immTxn, 0},
		OP_GLOBAL: {OP_GLOBAL, "global", 1, immGlobal, 0},
		OP_GTXN:   {OP_GTXN, "gtxn", 1, immGtxn, 0},
		OP_TXNA:   {OP_TXNA, "txna", 2, immTxna, 0},
		OP_GTXNA:  {OP_GTXNA, "gtxna", 2, immGtxna, 0},
		OP_GLOAD:  {OP_GLOAD, "gload", 4, immUint8, 2},
		OP_GAID:   {OP_GAID, "gaid", 4, immUint8, 1},

		OP_LOAD:  {OP_LOAD, "load", 1, immUint8, 1},
		OP_STORE: {OP_STORE, "store", 1, immUint8, 1},

		OP_BNZ:     {OP_BNZ, "bnz", 1, immLabel, 0},
		OP_BZ:      {OP_BZ, "bz", 2, immLabel, 0},
		OP_B:       {OP_B, "b", 2, immLabel, 0},
		OP_RETURN:  {OP_RETURN, "return", 2, immNone, 0},
		OP_ASSERT:  {OP_ASSERT, "assert", 3, immNone, 0},
		OP_CALLSUB: {OP_CALLSUB, "callsub", 4, immLabel, 0},
		OP_RETSUB:  {OP_RETSUB, "retsub", 4, immNone, 0},

		OP_POP:     {OP_POP, "pop", 1, immNone, 0},
		OP_DUP:     {OP_DUP, "dup", 1, immNone, 0},
		OP_DUP2:    {OP_DUP2, "dup2", 2, immNone, 0},
		OP_DIG:     {OP_DIG, "dig", 3, immUint8, 1},
		OP_SWAP:    {OP_SWAP, "swap", 3, immNone, 0},
		OP_SELECT:  {OP_SELECT, "select", 3, immNone, 0},
		OP_COVER:   {OP_COVER, "cover", 5, immUint8, 1},
		OP_UNCOVER: {OP_UNCOVER, "uncover", 5, immUint8, 1},

		OP_CONCAT:     {OP_CONCAT, "concat", 2, immNone, 0},
		OP_SUBSTRING:  {OP_SUBSTRING, "substring", 2, immUint8, 2},
		OP_SUBSTRING3: {OP_SUBSTRING3, "substring3", 2, immNone, 0},
		OP_GETBIT:     {OP_GETBIT, "getbit", 3, immNone, 0},
		OP_SETBIT:     {OP_SETBIT, "setbit", 3, immNone, 0},
		OP_GETBYTE:    {OP_GETBYTE, "getbyte", 3, immNone, 0},
		OP_SETBYTE:    {OP_SETBYTE, "setbyte", 3, immNone, 0},

		OP_BALANCE:           {OP_BALANCE, "balance", 2, immNone, 0},
		OP_APP_OPTED_IN:      {OP_APP_OPTED_IN, "app_opted_in", 2, immNone, 0},
		OP_APP_LOCAL_GET:     {OP_APP_LOCAL_GET, "app_local_get", 2, immNone, 0},
		OP_APP_LOCAL_GET_EX:  {OP_APP_LOCAL_GET_EX, "app_local_get_ex", 2, immNone, 0},
		OP_APP_GLOBAL_GET:    {OP_APP_GLOBAL_GET, "app_global_get", 2, immNone, 0},
		OP_APP_GLOBAL_GET_EX: {OP_APP_GLOBAL_GET_EX, "app_global_get_ex", 2, immNone, 0},
		OP_APP_LOCAL_PUT:     {OP_APP_LOCAL_PUT, "app_local_put", 2, immNone, 0},
		OP_APP_GLOBAL_PUT:    {OP_APP_GLOBAL_PUT, "app_global_put", 2, immNone, 0},
		OP_APP_LOCAL_DEL:     {OP_APP_LOCAL_DEL, "app_local_del", 2, immNone, 0},
		OP_APP_GLOBAL_DEL:    {OP_APP_GLOBAL_DEL, "app_global_del", 2, immNone, 0},
		OP_MIN_BALANCE:       {OP_MIN_BALANCE, "min_balance", 3, immNone, 0},

		OP_LOG: {OP_LOG, "log", 5, immNone, 0},
	}

	opsByName map[string]opInfo
)

func init() {
	opsByName = make(map[string]opInfo)
	for _, info := range ops {
		if info.name != "" {
			opsByName[info.name] = info
		}
	}
}

// Lookup returns the opcode with the given mnemonic.
func Lookup(name string) (Op, bool) {
	info, ok := opsByName[name]
	return info.op, ok
}
