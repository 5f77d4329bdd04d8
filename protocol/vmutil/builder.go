// Package vmutil builds assembly text for the TEAL machine.
package vmutil

import (
	"strconv"
	"strings"

	"tealc/errors"
	"tealc/protocol/vm"
)

var ErrUnresolvedJump = errors.New("unresolved jump target")

// Builder accumulates assembly lines. Fragments produced by other
// builders can be spliced in with AddRaw.
type Builder struct {
	lines []string

	// Labels declared with SetJumpTarget.
	targets map[string]bool

	// Labels referenced by AddJump, AddJumpIf and AddJumpIfNot,
	// in order of first use.
	jumps []string
}

func NewBuilder() *Builder {
	return &Builder{targets: make(map[string]bool)}
}

// AddRaw appends a fragment of assembly text,
// which may span several lines. Empty fragments are ignored.
func (b *Builder) AddRaw(fragment string) *Builder {
	if fragment != "" {
		b.lines = append(b.lines, fragment)
	}
	return b
}

// AddOp adds the given opcode with its immediate arguments.
func (b *Builder) AddOp(op vm.Op, immediates ...string) *Builder {
	line := op.String()
	if len(immediates) > 0 {
		line += " " + strings.Join(immediates, " ")
	}
	b.lines = append(b.lines, line)
	return b
}

// AddInt adds an int instruction pushing n.
func (b *Builder) AddInt(n uint64) *Builder {
	return b.AddOp(vm.OP_INT, strconv.FormatUint(n, 10))
}

// AddData adds a byte instruction pushing data
// as a quoted string literal.
func (b *Builder) AddData(data []byte) *Builder {
	return b.AddOp(vm.OP_BYTE, Quote(data))
}

// AddJump adds an unconditional branch to label.
// The label does not need to be declared yet, as long as
// SetJumpTarget is called before Build.
func (b *Builder) AddJump(label string) *Builder {
	return b.addJump(vm.OP_B, label)
}

// AddJumpIf adds a branch to label taken when the top of
// the stack is nonzero.
func (b *Builder) AddJumpIf(label string) *Builder {
	return b.addJump(vm.OP_BNZ, label)
}

// AddJumpIfNot adds a branch to label taken when the top of
// the stack is zero.
func (b *Builder) AddJumpIfNot(label string) *Builder {
	return b.addJump(vm.OP_BZ, label)
}

func (b *Builder) addJump(op vm.Op, label string) *Builder {
	b.AddOp(op, label)
	b.jumps = append(b.jumps, label)
	return b
}

// SetJumpTarget declares label at the current position, so that
// a jump to it continues with whatever instruction is added next.
func (b *Builder) SetJumpTarget(label string) *Builder {
	b.targets[label] = true
	b.lines = append(b.lines, label+":")
	return b
}

// Build joins the accumulated lines. Every label used in a jump
// must have been declared with SetJumpTarget; otherwise Build
// returns ErrUnresolvedJump.
func (b *Builder) Build() (string, error) {
	for _, label := range b.jumps {
		if !b.targets[label] {
			return "", errors.WithDetailf(ErrUnresolvedJump, "label %s", label)
		}
	}
	return strings.Join(b.lines, vm.OpSeparator), nil
}

// Len returns the number of fragments added so far.
func (b *Builder) Len() int {
	return len(b.lines)
}
