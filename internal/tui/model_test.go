package tui

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/golasco/golasco/internal/api"
	"github.com/golasco/golasco/internal/auth"
	"github.com/golasco/golasco/internal/booking"
	"github.com/golasco/golasco/internal/checkout"
	"github.com/golasco/golasco/internal/dashboard"
	"github.com/golasco/golasco/internal/domain"
	"github.com/golasco/golasco/internal/session"
	"github.com/golasco/golasco/internal/ux"
)

type noopCheckout struct{}

func (noopCheckout) Open(ctx context.Context, opts checkout.Options) (checkout.Completion, error) {
	return checkout.Completion{}, checkout.ErrDismissed{}
}

func newTestApp(t *testing.T, handler http.Handler) *App {
	t.Helper()
	if handler == nil {
		handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `[]`)
		})
	}
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := api.NewClient(server.URL)
	loader := checkout.NewLoader(func(ctx context.Context) (checkout.Checkout, error) {
		return noopCheckout{}, nil
	})
	return &App{
		Auth:       auth.NewService(client, session.NewStore(t.TempDir())),
		Dashboards: dashboard.NewLoader(client),
		Booking:    booking.NewFlow(client, loader),
		Client:     client,
	}
}

func signIn(t *testing.T, app *App, role domain.Role) {
	t.Helper()
	store := session.NewStore(t.TempDir())
	sess := session.Session{
		Token: "tok",
		Identity: &domain.Identity{
			ID:       "u1",
			FullName: "Test User",
			Email:    "u1@example.com",
			Role:     role,
		},
	}
	if err := store.Persist(sess); err != nil {
		t.Fatal(err)
	}
	app.Auth = auth.NewService(app.Client, store)
	app.Auth.Hydrate()
}

func keyMsg(s string) tea.KeyMsg {
	if len(s) == 1 {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestDashboardKeyRedirectsSignedOutToLogin(t *testing.T) {
	m := NewModel(newTestApp(t, nil))

	updated, _ := m.Update(keyMsg("d"))
	model := updated.(Model)
	if model.currentView != ViewLogin {
		t.Errorf("currentView = %v, want ViewLogin", model.currentView)
	}
}

func TestDashboardKeyAllowsSignedIn(t *testing.T) {
	app := newTestApp(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"total_leads":2,"leads":[]}`)
	}))
	signIn(t, app, domain.RoleCustomer)
	m := NewModel(app)

	updated, cmd := m.Update(keyMsg("d"))
	model := updated.(Model)
	if model.currentView != ViewDashboard {
		t.Fatalf("currentView = %v, want ViewDashboard", model.currentView)
	}
	if cmd == nil {
		t.Fatal("expected a dashboard load command")
	}
}

func TestSignedInMsgNavigatesToOwnDashboard(t *testing.T) {
	app := newTestApp(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"total_leads":0,"leads":[]}`)
	}))
	signIn(t, app, domain.RoleFranchiseOwner)
	m := NewModel(app)

	updated, _ := m.Update(SignedInMsg{Identity: app.Auth.Current().Identity})
	model := updated.(Model)
	if model.currentView != ViewDashboard {
		t.Errorf("currentView = %v, want ViewDashboard", model.currentView)
	}
	if model.toast == nil || !strings.Contains(model.toast.Title, "Welcome back") {
		t.Error("expected welcome toast")
	}
}

func TestSignInFailureShowsToastAndStays(t *testing.T) {
	m := NewModel(newTestApp(t, nil))
	m.currentView = ViewLogin

	updated, _ := m.Update(SignedInMsg{Err: fmt.Errorf("invalid credentials")})
	model := updated.(Model)
	if model.currentView != ViewLogin {
		t.Errorf("currentView = %v, want ViewLogin", model.currentView)
	}
	if model.toast == nil || model.toast.Variant != ux.VariantDestructive {
		t.Error("expected destructive toast")
	}
}

func TestPropertyNavigation(t *testing.T) {
	m := NewModel(newTestApp(t, nil))
	m.currentView = ViewProperties
	m.properties = []domain.Property{
		{ID: "p1", Title: "First"},
		{ID: "p2", Title: "Second"},
	}

	updated, _ := m.Update(keyMsg("j"))
	model := updated.(Model)
	if model.cursor != 1 {
		t.Errorf("cursor = %d, want 1", model.cursor)
	}

	// Cursor stops at the end of the list.
	updated, _ = model.Update(keyMsg("j"))
	model = updated.(Model)
	if model.cursor != 1 {
		t.Errorf("cursor = %d, want 1", model.cursor)
	}

	updated, _ = model.Update(keyMsg("enter"))
	model = updated.(Model)
	if model.currentView != ViewDetail {
		t.Errorf("currentView = %v, want ViewDetail", model.currentView)
	}
	if model.selected == nil || model.selected.ID != "p2" {
		t.Error("expected second property selected")
	}
}

func TestBookingOutcomeRouting(t *testing.T) {
	tests := []struct {
		name     string
		outcome  booking.Outcome
		wantView ViewType
		wantErr  bool
	}{
		{
			name:     "redirect login",
			outcome:  booking.Outcome{Status: booking.StatusRedirectLogin, Err: fmt.Errorf("login required")},
			wantView: ViewLogin,
		},
		{
			name:     "rejected role lands home",
			outcome:  booking.Outcome{Status: booking.StatusRejected, Err: fmt.Errorf("customer account required")},
			wantView: ViewLanding,
			wantErr:  true,
		},
		{
			name:     "abandoned stays put",
			outcome:  booking.Outcome{Status: booking.StatusAbandoned},
			wantView: ViewDetail,
		},
		{
			name:     "manual verify warns",
			outcome:  booking.Outcome{Status: booking.StatusManualVerify, Err: fmt.Errorf("we will verify your payment manually")},
			wantView: ViewDetail,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewModel(newTestApp(t, nil))
			m.currentView = ViewDetail

			updated, _ := m.Update(BookingDoneMsg{Outcome: tt.outcome})
			model := updated.(Model)
			if model.currentView != tt.wantView {
				t.Errorf("currentView = %v, want %v", model.currentView, tt.wantView)
			}
			if model.toast == nil {
				t.Fatal("expected a toast")
			}
			if tt.wantErr && model.toast.Variant != ux.VariantDestructive {
				t.Error("expected destructive toast")
			}
		})
	}
}

func TestToastExpiry(t *testing.T) {
	m := NewModel(newTestApp(t, nil))
	model, _ := m.pushToast(ux.Notify("hello", ""))

	// A stale expiry must not clear a newer toast.
	model, _ = model.pushToast(ux.Notify("newer", ""))
	updated, _ := model.Update(toastExpiredMsg{seq: 1})
	model = updated.(Model)
	if model.toast == nil || model.toast.Title != "newer" {
		t.Error("stale expiry cleared a newer toast")
	}

	updated, _ = model.Update(toastExpiredMsg{seq: 2})
	model = updated.(Model)
	if model.toast != nil {
		t.Error("toast should have expired")
	}
}

func TestSignOutClearsDashboards(t *testing.T) {
	app := newTestApp(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"total_leads":2,"leads":[]}`)
	}))
	signIn(t, app, domain.RoleCustomer)

	_, err := app.Dashboards.Load(context.Background(), app.Auth.Current())
	if err != nil {
		t.Fatal(err)
	}

	m := NewModel(app)
	updated, _ := m.Update(keyMsg("o"))
	model := updated.(Model)

	if model.currentView != ViewLanding {
		t.Errorf("currentView = %v, want ViewLanding", model.currentView)
	}
	if app.Auth.Current().Active() {
		t.Error("session should be gone")
	}
	if app.Dashboards.Cached(domain.RoleCustomer) != nil {
		t.Error("dashboard cache should be gone")
	}
}

func TestViewRendersToastLine(t *testing.T) {
	m := NewModel(newTestApp(t, nil))
	m.ready = true
	model, _ := m.pushToast(ux.Notify("Booking confirmed", "lead-1"))

	out := model.View()
	if !strings.Contains(out, "Booking confirmed") {
		t.Errorf("toast missing from view: %s", out)
	}
}
