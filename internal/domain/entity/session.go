package entity

import (
	"time"

	"github.com/google/uuid"
)

// Claims holds the identity fields recovered from a bearer token.
type Claims struct {
	Role      Role      // Account role claimed by the token.
	UserID    uuid.UUID // Identifier of the account the token was issued for.
	Name      string    // Display name for the shell header.
	ExpiresAt time.Time // Expiry claim; decoded but not enforced client-side.
}

// Session is the identity derived from the stored token for a single
// navigation. It is recomputed on every navigation and never stored.
type Session struct {
	Authenticated bool
	Role          Role
	UserID        uuid.UUID
	Name          string
}

// GuestSession is the session used whenever no token is stored or the
// stored token cannot be decoded.
func GuestSession() Session {
	return Session{Role: RoleGuest}
}

// SessionFromClaims derives an authenticated session from decoded claims.
func SessionFromClaims(claims *Claims) Session {
	return Session{
		Authenticated: true,
		Role:          claims.Role,
		UserID:        claims.UserID,
		Name:          claims.Name,
	}
}

// FirstName returns the leading word of the display name, used for the
// shell greeting.
func (s Session) FirstName() string {
	for i, r := range s.Name {
		if r == ' ' {
			return s.Name[:i]
		}
	}

	return s.Name
}
