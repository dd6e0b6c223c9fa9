// Package dashboard fetches and caches the per-role dashboard summaries.
package dashboard

import (
	"context"
	"sync"

	"github.com/golasco/golasco/internal/api"
	"github.com/golasco/golasco/internal/domain"
	"github.com/golasco/golasco/internal/errors"
	"github.com/golasco/golasco/internal/log"
	"github.com/golasco/golasco/internal/session"
)

// Loader fetches role dashboards and keeps the last good copy per role.
// A failed refresh reports its error but never evicts data that loaded
// before, so callers can show stale numbers alongside a retry prompt.
type Loader struct {
	client *api.Client
	logger *log.Logger

	mu        sync.Mutex
	cached    map[domain.Role]*api.Dashboard
	lastToken string
}

// NewLoader creates a dashboard loader for the given client.
func NewLoader(client *api.Client) *Loader {
	return &Loader{
		client: client,
		logger: log.DefaultLogger(),
		cached: make(map[domain.Role]*api.Dashboard),
	}
}

// Load fetches the dashboard for the session's role. Without an active
// session it reports a login-required error and makes no request. On a
// fetch failure it returns the last good copy for the role (possibly nil)
// together with the error.
//
// Cached copies belong to the session that loaded them: when the token
// changes, everything cached under the old token is dropped first.
func (l *Loader) Load(ctx context.Context, sess session.Session) (*api.Dashboard, error) {
	if !sess.Active() {
		return nil, errors.NewLoginRequiredError()
	}

	l.mu.Lock()
	if sess.Token != l.lastToken {
		l.cached = make(map[domain.Role]*api.Dashboard)
		l.lastToken = sess.Token
	}
	l.mu.Unlock()

	role := sess.Role()
	dash, err := l.client.GetDashboard(ctx, role)
	if err != nil {
		l.logger.Warn("dashboard fetch failed", "role", role, "error", err)

		l.mu.Lock()
		stale := l.cached[role]
		l.mu.Unlock()
		return stale, errors.NewDashboardLoadError(string(role), err)
	}

	l.mu.Lock()
	l.cached[role] = dash
	l.mu.Unlock()

	return dash, nil
}

// Cached returns the last good dashboard for a role, or nil.
func (l *Loader) Cached(role domain.Role) *api.Dashboard {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.cached[role]
}

// Invalidate drops all cached dashboards. Called on sign-out.
func (l *Loader) Invalidate() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cached = make(map[domain.Role]*api.Dashboard)
	l.lastToken = ""
}
