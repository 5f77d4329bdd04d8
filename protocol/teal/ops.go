package teal

import (
	"fmt"
	"strconv"

	"tealc/protocol/types"
	"tealc/protocol/vm"
)

// BinaryOp is a two-argument operator.
// As an Expr it is a curried function taking its right operand first.
type BinaryOp uint8

const (
	EQ BinaryOp = iota
	NEQ
	GT
	GE
	LT
	LE
	ADD
	SUB
	MUL
	DIV
	MOD
	EXP
	SHL
	SHR
	BITOR
	BITAND
	BITXOR
	AND
	OR
)

var binaryOps = [...]vm.Op{
	EQ:     vm.OP_EQ,
	NEQ:    vm.OP_NEQ,
	GT:     vm.OP_GT,
	GE:     vm.OP_GE,
	LT:     vm.OP_LT,
	LE:     vm.OP_LE,
	ADD:    vm.OP_ADD,
	SUB:    vm.OP_SUB,
	MUL:    vm.OP_MUL,
	DIV:    vm.OP_DIV,
	MOD:    vm.OP_MOD,
	EXP:    vm.OP_EXP,
	SHL:    vm.OP_SHL,
	SHR:    vm.OP_SHR,
	BITOR:  vm.OP_BITOR,
	BITAND: vm.OP_BITAND,
	BITXOR: vm.OP_BITXOR,
	AND:    vm.OP_AND,
	OR:     vm.OP_OR,
}

// Op returns the machine opcode implementing op.
func (op BinaryOp) Op() vm.Op {
	if int(op) >= len(binaryOps) {
		return 0
	}
	return binaryOps[op]
}

func (op BinaryOp) String() string {
	if int(op) >= len(binaryOps) {
		return "BinaryOp(" + strconv.Itoa(int(op)) + ")"
	}
	return op.Op().String()
}

// typ returns the type of op. The equality operators compare
// values of any one type, so each occurrence gets a fresh variable.
func (op BinaryOp) typ(store *types.Store) types.Type {
	if int(op) >= len(binaryOps) {
		panic(fmt.Errorf("teal: unknown binary operator %d", op))
	}
	switch op {
	case EQ, NEQ:
		a := store.Fresh()
		return types.Func(a, a, types.UInt64)
	}
	return types.Func(types.UInt64, types.UInt64, types.UInt64)
}

// UnaryOp is a one-argument operator.
type UnaryOp uint8

const (
	LEN UnaryOp = iota
	NOT
	BITNOT
	ITOB
	BTOI
	SQRT
)

var unaryOps = [...]struct {
	op         vm.Op
	arg, value types.Primitive
}{
	LEN:    {vm.OP_LEN, types.Byteslice, types.UInt64},
	NOT:    {vm.OP_NOT, types.UInt64, types.UInt64},
	BITNOT: {vm.OP_BITNOT, types.UInt64, types.UInt64},
	ITOB:   {vm.OP_ITOB, types.UInt64, types.Byteslice},
	BTOI:   {vm.OP_BTOI, types.Byteslice, types.UInt64},
	SQRT:   {vm.OP_SQRT, types.UInt64, types.UInt64},
}

// Op returns the machine opcode implementing op.
func (op UnaryOp) Op() vm.Op {
	if int(op) >= len(unaryOps) {
		return 0
	}
	return unaryOps[op].op
}

func (op UnaryOp) String() string {
	if int(op) >= len(unaryOps) {
		return "UnaryOp(" + strconv.Itoa(int(op)) + ")"
	}
	return op.Op().String()
}

func (op UnaryOp) typ() types.Type {
	if int(op) >= len(unaryOps) {
		panic(fmt.Errorf("teal: unknown unary operator %d", op))
	}
	u := unaryOps[op]
	return types.Func(u.arg, u.value)
}
