// Package state carries the per-run client identity: the session id the
// service scopes all data by, and the currently active document. Both are
// passed explicitly into every call that needs them; there is no package
// level mutable session.
package state

import (
	"strings"

	"github.com/google/uuid"
)

// Session identifies the learner's session with the remote service.
type Session struct {
	// ID is sent as the session header on every request. Empty means the
	// service falls back to its default session.
	ID string

	// DocumentID is the active document scope for asking and quiz
	// generation. Zero means "all documents".
	DocumentID int
}

// NewSession returns a session with a freshly generated id.
func NewSession() Session {
	return Session{ID: uuid.New().String()}
}

// Normalized returns the session with its id trimmed.
func (s Session) Normalized() Session {
	s.ID = strings.TrimSpace(s.ID)
	return s
}

// ShortID returns a compact session id for header display.
func (s Session) ShortID() string {
	id := strings.TrimSpace(s.ID)
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
