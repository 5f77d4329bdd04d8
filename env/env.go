// Package env provides a convenient way to convert environment
// variables into Go data. It is similar in design to package
// flag: variables are registered on a Set with a default value
// and assigned when Parse is called.
package env

import (
	"os"
	"strconv"

	"tealc/errors"
)

// ErrBadValue is returned by Parse when an environment
// variable cannot be converted to its registered type.
var ErrBadValue = errors.New("invalid environment value")

// A Set is a collection of registered environment variables.
// The zero value reads from the process environment.
type Set struct {
	// Lookup retrieves the value of an environment variable.
	// If nil, os.LookupEnv is used.
	Lookup func(name string) (string, bool)

	funcs []func(lookup func(string) (string, bool)) error
}

// NewSet returns an empty Set that reads variables with lookup.
// A nil lookup reads from the process environment.
func NewSet(lookup func(name string) (string, bool)) *Set {
	return &Set{Lookup: lookup}
}

// Map returns a lookup function backed by m,
// for use with NewSet.
func Map(m map[string]string) func(string) (string, bool) {
	return func(name string) (string, bool) {
		v, ok := m[name]
		return v, ok
	}
}

func (s *Set) add(name string, parse func(string) error) {
	s.funcs = append(s.funcs, func(lookup func(string) (string, bool)) error {
		v, ok := lookup(name)
		if !ok || v == "" {
			return nil
		}
		if err := parse(v); err != nil {
			return errors.WithDetailf(ErrBadValue, "%s=%q: %s", name, v, err)
		}
		return nil
	})
}

// IntVar defines an int var with the specified
// name and default value. The argument p points
// to an int variable in which to store the
// value of the environment var.
func (s *Set) IntVar(p *int, name string, value int) {
	*p = value
	s.add(name, func(v string) error {
		n, err := strconv.Atoi(v)
		if err != nil {
			return err
		}
		*p = n
		return nil
	})
}

// Int returns a new int pointer.
// When Parse is called,
// env var name will be parsed
// and the resulting value
// will be assigned to the returned location.
func (s *Set) Int(name string, value int) *int {
	p := new(int)
	s.IntVar(p, name, value)
	return p
}

// Uint64Var defines a uint64 var with the specified
// name and default value.
func (s *Set) Uint64Var(p *uint64, name string, value uint64) {
	*p = value
	s.add(name, func(v string) error {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return err
		}
		*p = n
		return nil
	})
}

// Uint64 returns a new uint64 pointer.
func (s *Set) Uint64(name string, value uint64) *uint64 {
	p := new(uint64)
	s.Uint64Var(p, name, value)
	return p
}

// BoolVar defines a bool var with the specified
// name and default value. Parsing uses strconv.ParseBool.
func (s *Set) BoolVar(p *bool, name string, value bool) {
	*p = value
	s.add(name, func(v string) error {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return err
		}
		*p = b
		return nil
	})
}

// Bool returns a new bool pointer.
func (s *Set) Bool(name string, value bool) *bool {
	p := new(bool)
	s.BoolVar(p, name, value)
	return p
}

// Parse parses known env vars
// and assigns the values to the variables
// that were previously registered.
// Every variable is attempted; the first
// error encountered is returned.
func (s *Set) Parse() error {
	lookup := s.Lookup
	if lookup == nil {
		lookup = os.LookupEnv
	}
	var first error
	for _, f := range s.funcs {
		if err := f(lookup); err != nil && first == nil {
			first = err
		}
	}
	return first
}
