// Package authz decides whether a session may enter a guarded area. The
// checks are pure functions of the session snapshot and the route's role
// whitelist; callers act on the decision (navigate, redirect, deny).
package authz

import (
	"github.com/golasco/golasco/internal/domain"
	"github.com/golasco/golasco/internal/session"
)

// Decision is the outcome of a guard check.
type Decision int

const (
	// Allow lets the navigation proceed.
	Allow Decision = iota
	// RedirectLogin sends a signed-out visitor to the login screen.
	RedirectLogin
	// RedirectHome sends a signed-in visitor with the wrong role back to
	// the public landing screen. Deliberately not an error page: the
	// visitor keeps their session and lands somewhere they can use.
	RedirectHome
)

func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case RedirectLogin:
		return "redirect-login"
	case RedirectHome:
		return "redirect-home"
	default:
		return "unknown"
	}
}

// Route is a guarded destination. An empty AllowedRoles list means any
// signed-in role may enter.
type Route struct {
	Path         string
	AllowedRoles []domain.Role
}

// Check evaluates the guard for a session. Authentication is checked
// before role membership, so a signed-out visitor always gets
// RedirectLogin even when the route also has a role whitelist.
func Check(sess session.Session, route Route) Decision {
	if !sess.Active() {
		return RedirectLogin
	}

	if len(route.AllowedRoles) == 0 {
		return Allow
	}

	role := sess.Role()
	for _, allowed := range route.AllowedRoles {
		if role == allowed {
			return Allow
		}
	}

	return RedirectHome
}

// DashboardRoute returns the guarded dashboard destination for a role.
// Every role has exactly one dashboard, and each dashboard admits exactly
// that role.
func DashboardRoute(role domain.Role) Route {
	return Route{
		Path:         "/dashboard/" + role.DashboardSegment(),
		AllowedRoles: []domain.Role{role},
	}
}
