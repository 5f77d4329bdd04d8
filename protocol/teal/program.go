package teal

import (
	"strconv"

	"tealc/errors"
	"tealc/protocol/types"
	"tealc/protocol/vm"
)

// Program is a versioned program body.
type Program struct {
	Version uint64
	Body    Expr
}

// NewProgram returns a program for the given machine version.
// It fails with ErrBadVersion if the version is zero or
// above vm.MaxVersion, and with ErrEmptyProgram if body is nil.
func NewProgram(version uint64, body Expr) (*Program, error) {
	if version == 0 || version > vm.MaxVersion {
		return nil, errors.WithDetailf(ErrBadVersion, "version %d (max %d)", version, vm.MaxVersion)
	}
	if body == nil {
		return nil, ErrEmptyProgram
	}
	return &Program{Version: version, Body: body}, nil
}

// TypeCheck infers the type of the program body in an empty
// environment and returns it fully resolved.
func (p *Program) TypeCheck() (types.Type, error) {
	return p.typeCheck(NewSession(), TypeEnv{})
}

func (p *Program) typeCheck(s *Session, env TypeEnv) (types.Type, error) {
	t, err := s.Resolve(env, p.Body)
	if err != nil {
		return nil, err
	}
	return s.Types().Resolve(t), nil
}

// Compile type-checks the program and generates its assembly,
// headed by a version pragma. A type error is returned with root
// ErrTypeCheck; the underlying type error remains reachable with
// errors.Is.
func (p *Program) Compile() (string, error) {
	return p.compile(NewSession(), TypeEnv{})
}

func (p *Program) compile(s *Session, env TypeEnv) (string, error) {
	if _, err := p.typeCheck(s, env); err != nil {
		return "", errors.Sub(ErrTypeCheck, err)
	}
	body, err := s.Compile(CompileContext{}, p.Body, new(Stack))
	if err != nil {
		return "", err
	}
	if err := vm.Check(body, p.Version); err != nil {
		return "", errors.Wrap(err, "checking generated code")
	}
	return "#pragma version " + strconv.FormatUint(p.Version, 10) + vm.OpSeparator + body, nil
}
