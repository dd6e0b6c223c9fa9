package session

import (
	"github.com/golasco/golasco/internal/domain"
)

// Session is the pairing of an Identity with a credential token.
//
// The invariant is that token and identity are set and cleared together:
// there is never an orphaned token nor an identity without a way to
// authorize requests. Sessions are replaced or cleared wholesale, so
// readers always observe either a complete session or an empty one.
type Session struct {
	// Token is the opaque bearer credential for the backend
	Token string

	// Identity is the authenticated principal
	Identity *domain.Identity
}

// Active reports whether the session carries both a token and an identity.
func (s Session) Active() bool {
	return s.Token != "" && s.Identity.Valid()
}

// Role returns the session's role, or the empty role when inactive.
func (s Session) Role() domain.Role {
	if !s.Active() {
		return ""
	}
	return s.Identity.Role
}
