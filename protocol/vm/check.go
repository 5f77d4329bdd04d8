package vm

import (
	"encoding/base32"
	"encoding/base64"
	"encoding/hex"
	"strconv"
	"strings"

	"tealc/errors"
)

// Instruction is one parsed line of assembly text.
// Exactly one of Op and Label is set.
type Instruction struct {
	Line       int
	Op         Op
	Immediates []string
	Label      string
}

// Parse splits src into instructions and label declarations.
// Blank lines, comments, and pragmas are skipped.
// Parse checks that every mnemonic is known but does not
// validate immediates.
func Parse(src string) ([]Instruction, error) {
	var insts []Instruction
	for i, line := range strings.Split(src, OpSeparator) {
		line = strings.TrimSpace(stripComment(line))
		if line == "" || strings.HasPrefix(line, "#pragma") {
			continue
		}
		if strings.HasSuffix(line, ":") && !strings.ContainsAny(line, " \t\"") {
			insts = append(insts, Instruction{Line: i + 1, Label: strings.TrimSuffix(line, ":")})
			continue
		}
		name, rest, _ := strings.Cut(line, " ")
		info, ok := opsByName[name]
		if !ok {
			return nil, errors.WithDetailf(ErrUnknownOpcode, "line %d: %q", i+1, name)
		}
		inst := Instruction{Line: i + 1, Op: info.op}
		rest = strings.TrimSpace(rest)
		switch {
		case rest == "":
		case info.imm == immBytes && strings.HasPrefix(rest, `"`):
			// A quoted string may contain spaces.
			inst.Immediates = []string{rest}
		default:
			inst.Immediates = strings.Fields(rest)
		}
		insts = append(insts, inst)
	}
	return insts, nil
}

// stripComment removes a trailing // comment that is not
// inside a string literal.
func stripComment(line string) string {
	inString := false
	for i := 0; i < len(line); i++ {
		switch c := line[i]; {
		case c == '\\' && inString:
			i++
		case c == '"':
			inString = !inString
		case c == '/' && !inString && i+1 < len(line) && line[i+1] == '/':
			return line[:i]
		}
	}
	return line
}

// Check validates src as a program of the given version.
func Check(src string, version uint64) error {
	if version == 0 || version > MaxVersion {
		return errors.WithDetailf(ErrUnsupportedVersion, "version %d (max %d)", version, MaxVersion)
	}
	if err := checkPragma(src, version); err != nil {
		return err
	}
	insts, err := Parse(src)
	if err != nil {
		return err
	}

	labels := make(map[string]int)
	var targets []Instruction
	for _, inst := range insts {
		if inst.Label != "" {
			if prev, ok := labels[inst.Label]; ok {
				return errors.WithDetailf(ErrDuplicateLabel, "line %d: %s (first declared on line %d)", inst.Line, inst.Label, prev)
			}
			labels[inst.Label] = inst.Line
			continue
		}
		info := ops[inst.Op]
		if info.version > version {
			return errors.WithData(
				errors.WithDetailf(ErrUnsupportedVersion, "line %d: %s requires version %d", inst.Line, info.name, info.version),
				"op", info.name, "version", version,
			)
		}
		if err := checkImmediates(info, inst.Immediates, version); err != nil {
			return errors.WithDetailf(err, "line %d: %s", inst.Line, info.name)
		}
		if inst.Op.IsBranch() {
			targets = append(targets, inst)
		}
	}

	for _, inst := range targets {
		if _, ok := labels[inst.Immediates[0]]; !ok {
			return errors.WithDetailf(ErrUnknownLabel, "line %d: %s %s", inst.Line, inst.Op, inst.Immediates[0])
		}
	}
	return nil
}

// checkPragma requires any version pragma in src to agree with version.
func checkPragma(src string, version uint64) error {
	for i, line := range strings.Split(src, OpSeparator) {
		fields := strings.Fields(line)
		if len(fields) == 0 || fields[0] != "#pragma" {
			continue
		}
		if len(fields) != 3 || fields[1] != "version" {
			return errors.WithDetailf(ErrBadPragma, "line %d: %q", i+1, line)
		}
		n, err := strconv.ParseUint(fields[2], 10, 64)
		if err != nil || n != version {
			return errors.WithDetailf(ErrBadPragma, "line %d: %q for version %d", i+1, line, version)
		}
	}
	return nil
}

func checkImmediates(info opInfo, imms []string, version uint64) error {
	want := func(n int) error {
		if len(imms) != n {
			return errors.WithDetailf(ErrBadImmediate, "want %d immediates, got %d", n, len(imms))
		}
		return nil
	}

	switch info.imm {
	case immNone:
		return want(0)
	case immInt:
		if err := want(1); err != nil {
			return err
		}
		return checkInt(imms[0], version)
	case immBytes:
		return checkBytes(imms)
	case immUint8:
		if err := want(info.n); err != nil {
			return err
		}
		for _, s := range imms {
			if err := checkUint8(s); err != nil {
				return err
			}
		}
		return nil
	case immLabel:
		if err := want(1); err != nil {
			return err
		}
		return nil
	case immTxn:
		if len(imms) == 2 {
			return checkTxnField(imms[0], imms[1:], version)
		}
		if err := want(1); err != nil {
			return err
		}
		return checkTxnField(imms[0], nil, version)
	case immGlobal:
		if err := want(1); err != nil {
			return err
		}
		v, ok := globalFields[imms[0]]
		if !ok {
			return errors.WithDetailf(ErrBadImmediate, "unknown global field %q", imms[0])
		}
		if v > version {
			return errors.WithDetailf(ErrUnsupportedVersion, "global %s requires version %d", imms[0], v)
		}
		return nil
	case immGtxn:
		if len(imms) != 2 && len(imms) != 3 {
			return want(2)
		}
		if err := checkUint8(imms[0]); err != nil {
			return err
		}
		return checkTxnField(imms[1], imms[2:], version)
	case immTxna:
		if err := want(2); err != nil {
			return err
		}
		return checkTxnField(imms[0], imms[1:], version)
	case immGtxna:
		if err := want(3); err != nil {
			return err
		}
		if err := checkUint8(imms[0]); err != nil {
			return err
		}
		return checkTxnField(imms[1], imms[2:], version)
	case immIntList:
		for _, s := range imms {
			if _, err := strconv.ParseUint(s, 0, 64); err != nil {
				return errors.WithDetailf(ErrBadImmediate, "%q", s)
			}
		}
		return nil
	case immBytesList:
		for _, s := range imms {
			if err := checkBytes([]string{s}); err != nil {
				return err
			}
		}
		return nil
	}
	return errors.WithDetailf(ErrBadImmediate, "unhandled immediate kind %d", info.imm)
}

func checkInt(s string, version uint64) error {
	if _, err := strconv.ParseUint(s, 0, 64); err == nil {
		return nil
	}
	v, ok := namedInts[s]
	if !ok {
		return errors.WithDetailf(ErrBadImmediate, "bad integer %q", s)
	}
	if v > version {
		return errors.WithDetailf(ErrUnsupportedVersion, "constant %s requires version %d", s, v)
	}
	return nil
}

func checkUint8(s string) error {
	if _, err := strconv.ParseUint(s, 0, 8); err != nil {
		return errors.WithDetailf(ErrBadImmediate, "%q is not in 0-255", s)
	}
	return nil
}

// checkBytes accepts the literal forms of the byte opcode:
// a quoted string, 0x-prefixed hex, or an encoding name
// followed by encoded data.
func checkBytes(imms []string) error {
	switch len(imms) {
	case 1:
		s := imms[0]
		if strings.HasPrefix(s, `"`) {
			if _, err := strconv.Unquote(s); err != nil {
				return errors.WithDetailf(ErrBadImmediate, "bad string literal %s", s)
			}
			return nil
		}
		if strings.HasPrefix(s, "0x") {
			if _, err := hex.DecodeString(s[2:]); err != nil {
				return errors.WithDetailf(ErrBadImmediate, "bad hex literal %s", s)
			}
			return nil
		}
	case 2:
		var err error
		switch imms[0] {
		case "base64", "b64":
			_, err = base64.StdEncoding.DecodeString(imms[1])
		case "base32", "b32":
			_, err = base32.StdEncoding.WithPadding(base32.NoPadding).DecodeString(strings.TrimRight(imms[1], "="))
		default:
			return errors.WithDetailf(ErrBadImmediate, "unknown encoding %q", imms[0])
		}
		if err != nil {
			return errors.WithDetailf(ErrBadImmediate, "bad %s literal %s", imms[0], imms[1])
		}
		return nil
	}
	return errors.WithDetailf(ErrBadImmediate, "bad byte literal %q", strings.Join(imms, " "))
}

func checkTxnField(name string, index []string, version uint64) error {
	f, ok := LookupTxnField(name)
	if !ok {
		return errors.WithDetailf(ErrBadImmediate, "unknown txn field %q", name)
	}
	if f.MinVersion() > version {
		return errors.WithDetailf(ErrUnsupportedVersion, "txn field %s requires version %d", f, f.MinVersion())
	}
	switch {
	case len(index) > 0 && !f.Array():
		return errors.WithDetailf(ErrBadImmediate, "txn field %s is not an array", f)
	case len(index) == 0 && f.Array():
		return errors.WithDetailf(ErrBadImmediate, "txn field %s needs an index", f)
	case len(index) > 0:
		return checkUint8(index[0])
	}
	return nil
}
