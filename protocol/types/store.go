package types

import "tealc/errors"

// Store is an arena of type variables.
// Each variable is a cell indexed by its ID. An unbound cell is nil.
//
// A Store is not safe for concurrent use; each compilation
// session owns its own.
type Store struct {
	cells []Type
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return new(Store)
}

// Fresh allocates a new unbound variable.
// IDs are assigned in increasing order and never reused.
func (s *Store) Fresh() Var {
	s.cells = append(s.cells, nil)
	return Var{ID: len(s.cells) - 1}
}

// Len returns the number of variables allocated so far.
func (s *Store) Len() int {
	return len(s.cells)
}

func (s *Store) cell(v Var) Type {
	if v.ID < 0 || v.ID >= len(s.cells) {
		return nil
	}
	return s.cells[v.ID]
}

// head follows variable bindings until it reaches an unbound
// variable or a non-variable type, compressing the path behind it.
func (s *Store) head(t Type) Type {
	v, ok := t.(Var)
	if !ok {
		return t
	}
	bound := s.cell(v)
	if bound == nil {
		return v
	}
	h := s.head(bound)
	s.cells[v.ID] = h
	return h
}

// Unify makes a and b equal by binding variables in s.
// On failure, the variables bound before the failure stay bound.
func (s *Store) Unify(a, b Type) error {
	if a == b {
		return nil
	}
	a, b = s.head(a), s.head(b)
	if a == b {
		return nil
	}

	if v, ok := a.(Var); ok {
		return s.bind(v, b)
	}
	if v, ok := b.(Var); ok {
		return s.bind(v, a)
	}

	switch a := a.(type) {
	case Primitive:
		if b, ok := b.(Primitive); ok {
			if a == Halt || b == Halt {
				return nil
			}
			return errors.WithData(
				errors.WithDetailf(ErrMismatchedTypes, "%s and %s", s.Format(a), s.Format(b)),
				"left", a, "right", b,
			)
		}
	case Arrow:
		if b, ok := b.(Arrow); ok {
			if err := s.Unify(a.Param, b.Param); err != nil {
				return err
			}
			return s.Unify(a.Result, b.Result)
		}
	}

	return errors.WithData(
		errors.WithDetailf(ErrIrreconcilableTypes, "%s and %s", s.Format(a), s.Format(b)),
		"left", s.Resolve(a), "right", s.Resolve(b),
	)
}

// bind binds the unbound variable v to t, which must already be
// a head. It fails if t mentions v.
func (s *Store) bind(v Var, t Type) error {
	if s.occurs(v, t) {
		return errors.WithData(
			errors.WithDetailf(ErrUnresolvableTypeVariable, "%s occurs in %s", s.Format(v), s.Format(t)),
			"var", v, "type", s.Resolve(t),
		)
	}
	s.cells[v.ID] = t
	return nil
}

func (s *Store) occurs(v Var, t Type) bool {
	switch t := s.head(t).(type) {
	case Var:
		return t == v
	case Arrow:
		return s.occurs(v, t.Param) || s.occurs(v, t.Result)
	}
	return false
}

// Function returns t as an Arrow.
// An unbound variable is bound to a function between two
// fresh variables. Any other non-function type is an error.
func (s *Store) Function(t Type) (Arrow, error) {
	switch h := s.head(t).(type) {
	case Arrow:
		return h, nil
	case Var:
		a := Arrow{Param: s.Fresh(), Result: s.Fresh()}
		s.cells[h.ID] = a
		return a, nil
	}
	return Arrow{}, errors.WithData(
		errors.WithDetailf(ErrNonFunctionApplication, "%s is not a function", s.Format(t)),
		"type", s.Resolve(t),
	)
}

// Head returns t with any bound variable at its top replaced by
// its binding. Nested variables are left as they are.
func (s *Store) Head(t Type) Type {
	return s.head(t)
}

// Resolve returns t with every bound variable replaced by its binding.
func (s *Store) Resolve(t Type) Type {
	switch h := s.head(t).(type) {
	case Arrow:
		return Arrow{Param: s.Resolve(h.Param), Result: s.Resolve(h.Result)}
	default:
		return h
	}
}

// Format returns the display form of t after resolving it.
// Free variables are named 'a, 'b, ... in order of first occurrence.
func (s *Store) Format(t Type) string {
	return String(s.Resolve(t))
}
