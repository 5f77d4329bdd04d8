package teal

import "tealc/errors"

// Stack holds the compiled code of arguments that have been
// applied but not yet consumed, most recent last.
type Stack struct {
	frags []string
}

// Push adds a fragment to the top of the stack.
func (s *Stack) Push(frag string) {
	s.frags = append(s.frags, frag)
}

// Pop removes and returns the fragment on top of the stack.
func (s *Stack) Pop() (string, error) {
	if len(s.frags) == 0 {
		return "", ErrMissingStack
	}
	frag := s.frags[len(s.frags)-1]
	s.frags = s.frags[:len(s.frags)-1]
	return frag, nil
}

// popN pops n fragments and returns them in push order.
func (s *Stack) popN(n int) ([]string, error) {
	if len(s.frags) < n {
		return nil, errors.WithDetailf(ErrMissingStack, "need %d operands, have %d", n, len(s.frags))
	}
	out := make([]string, n)
	copy(out, s.frags[len(s.frags)-n:])
	s.frags = s.frags[:len(s.frags)-n]
	return out, nil
}

// Len returns the number of fragments on the stack.
func (s *Stack) Len() int {
	return len(s.frags)
}
