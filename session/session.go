// Package session authenticates the user and gates every screen.
//
// The API issues no token: login is a bare credential check. A *Session is
// therefore only a process-lifetime witness that the check succeeded; it is
// passed explicitly to each screen rather than kept in a global.
package session

import (
	"errors"
	"sync"
	"time"
)

// ErrNotAuthenticated is returned by screens used without a live session.
var ErrNotAuthenticated = errors.New("session: not authenticated")

// Session is safe for concurrent use.
type Session struct {
	email           string
	authenticatedAt time.Time

	mu     sync.RWMutex
	active bool
}

func newSession(email string, at time.Time) *Session {
	return &Session{email: email, authenticatedAt: at, active: true}
}

// Email returns the login used to open the session.
func (s *Session) Email() string { return s.email }

// AuthenticatedAt returns when the credential check succeeded.
func (s *Session) AuthenticatedAt() time.Time { return s.authenticatedAt }

// Authenticated reports whether the session is still open.
func (s *Session) Authenticated() bool {
	if s == nil {
		return false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

// Logout closes the session. Screens holding it stop working immediately.
func (s *Session) Logout() {
	s.mu.Lock()
	s.active = false
	s.mu.Unlock()
}

// Require returns ErrNotAuthenticated unless s is open.
func Require(s *Session) error {
	if !s.Authenticated() {
		return ErrNotAuthenticated
	}
	return nil
}
