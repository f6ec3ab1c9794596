package model

import "time"

// Session is a server-side session. AdminID stays nil until a successful login.
type Session struct {
	ID         string    `json:"-" db:"id"`
	AdminID    *int64    `json:"adminId,omitempty" db:"admin_id"`
	AdminEmail string    `json:"adminEmail,omitempty" db:"admin_email"`
	CSRFToken  string    `json:"-" db:"csrf_token"`
	ExpiresAt  time.Time `json:"expiresAt" db:"expires_at"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}

// Authenticated reports whether an admin is attached to the session.
func (s *Session) Authenticated() bool {
	return s != nil && s.AdminID != nil
}

// Expired reports whether the session lifetime has elapsed at now.
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
