package models

import "time"

// Session represents an authenticated session. Token is an unguessable
// random identifier; Username is a non-owning back-reference to the account.
// A zero ExpiresAt means the session lives until logout.
type Session struct {
	Token     string
	Username  string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Expired reports whether the session is past its expiry at the given time.
// Sessions without an expiry never expire.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}
