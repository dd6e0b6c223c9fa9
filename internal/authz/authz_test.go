package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/golasco/golasco/internal/domain"
	"github.com/golasco/golasco/internal/session"
)

func activeSession(role domain.Role) session.Session {
	return session.Session{
		Token: "tok",
		Identity: &domain.Identity{
			ID:    "u1",
			Email: "u1@example.com",
			Role:  role,
		},
	}
}

func TestCheck(t *testing.T) {
	customerOnly := Route{Path: "/book", AllowedRoles: []domain.Role{domain.RoleCustomer}}
	anySignedIn := Route{Path: "/account"}

	tests := []struct {
		name  string
		sess  session.Session
		route Route
		want  Decision
	}{
		{"signed out to guarded route", session.Session{}, customerOnly, RedirectLogin},
		{"signed out beats role check", session.Session{}, customerOnly, RedirectLogin},
		{"token without identity is signed out", session.Session{Token: "tok"}, anySignedIn, RedirectLogin},
		{"matching role allowed", activeSession(domain.RoleCustomer), customerOnly, Allow},
		{"wrong role redirected home", activeSession(domain.RoleAgent), customerOnly, RedirectHome},
		{"admin not implicitly whitelisted", activeSession(domain.RoleAdmin), customerOnly, RedirectHome},
		{"empty whitelist admits any role", activeSession(domain.RoleFranchiseOwner), anySignedIn, Allow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Check(tt.sess, tt.route))
		})
	}
}

func TestDashboardRoute(t *testing.T) {
	tests := []struct {
		role domain.Role
		path string
	}{
		{domain.RoleCustomer, "/dashboard/customer"},
		{domain.RoleAgent, "/dashboard/agent"},
		{domain.RoleFranchiseOwner, "/dashboard/franchise"},
		{domain.RoleAdmin, "/dashboard/super-admin"},
	}

	for _, tt := range tests {
		route := DashboardRoute(tt.role)
		assert.Equal(t, tt.path, route.Path)
		assert.Equal(t, []domain.Role{tt.role}, route.AllowedRoles)

		// Each dashboard admits exactly its own role.
		assert.Equal(t, Allow, Check(activeSession(tt.role), route))
		for _, other := range domain.AllRoles() {
			if other == tt.role {
				continue
			}
			assert.Equal(t, RedirectHome, Check(activeSession(other), route), "role %s on %s", other, route.Path)
		}
	}
}

func TestDecisionString(t *testing.T) {
	assert.Equal(t, "allow", Allow.String())
	assert.Equal(t, "redirect-login", RedirectLogin.String())
	assert.Equal(t, "redirect-home", RedirectHome.String())
}
