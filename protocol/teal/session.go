package teal

import (
	"strconv"

	"github.com/google/uuid"

	"tealc/protocol/types"
)

// Session holds the state shared by the passes of one compilation:
// the type-variable store and the label counter. Sessions are
// independent, so separate compilations may run concurrently and
// still number their labels and variables deterministically.
//
// A Session is not safe for concurrent use.
type Session struct {
	// ID identifies the session in log entries.
	ID string

	types  *types.Store
	labels int
}

// NewSession returns a session with a fresh type store,
// numbering labels from 0.
func NewSession() *Session {
	return &Session{
		ID:    uuid.NewString(),
		types: types.NewStore(),
	}
}

// Types returns the session's type-variable store.
func (s *Session) Types() *types.Store {
	return s.types
}

// newLabel returns a label unique within the session.
func (s *Session) newLabel(prefix string) string {
	l := prefix + strconv.Itoa(s.labels)
	s.labels++
	return l
}
