// Package tui is the interactive terminal front of the marketplace:
// property browsing, sign-in, role dashboards, and bookings.
package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/golasco/golasco/internal/api"
	"github.com/golasco/golasco/internal/auth"
	"github.com/golasco/golasco/internal/authz"
	"github.com/golasco/golasco/internal/booking"
	"github.com/golasco/golasco/internal/dashboard"
	"github.com/golasco/golasco/internal/domain"
	"github.com/golasco/golasco/internal/ux"
)

// ViewType represents the current view being displayed
type ViewType int

// View type constants
const (
	// ViewLanding is the public landing view
	ViewLanding ViewType = iota
	// ViewProperties is the property catalog
	ViewProperties
	// ViewDetail shows a single property
	ViewDetail
	// ViewLogin is the sign-in form
	ViewLogin
	// ViewRegister is the account creation form
	ViewRegister
	// ViewDashboard is the signed-in role dashboard
	ViewDashboard
	// ViewHelp is the keybinding reference
	ViewHelp
)

// App bundles the services the TUI drives.
type App struct {
	Auth       *auth.Service
	Dashboards *dashboard.Loader
	Booking    *booking.Flow
	Client     *api.Client
}

// Model represents the TUI application state
type Model struct {
	app *App

	// Catalog state
	properties []domain.Property
	cursor     int
	selected   *domain.Property
	loading    bool

	// Dashboard state
	dash    *api.Dashboard
	dashErr string

	// Form state
	login    loginForm
	register registerForm

	// UI state
	currentView ViewType
	width       int
	height      int
	ready       bool
	quitting    bool

	// Toast state
	toast    *ux.Notification
	toastSeq int

	styles Styles
}

// NewModel creates the TUI model. The session, if any, is whatever the
// auth service hydrated before the program started.
func NewModel(app *App) Model {
	return Model{
		app:         app,
		currentView: ViewLanding,
		login:       newLoginForm(),
		register:    newRegisterForm(),
		styles:      DefaultStyles(),
	}
}

// Init initializes the TUI model (required by Bubble Tea)
func (m Model) Init() tea.Cmd {
	return m.loadPropertiesCmd()
}

// Update handles messages and updates the model state (required by Bubble Tea)
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case PropertiesLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			return m.pushToast(ux.NotifyError("Could not load properties", msg.Err.Error()))
		}
		m.properties = msg.Properties
		if m.cursor >= len(m.properties) {
			m.cursor = 0
		}
		return m, nil

	case SignedInMsg:
		if msg.Err != nil {
			return m.pushToast(ux.NotifyError("Sign in failed", msg.Err.Error()))
		}
		m.login = newLoginForm()
		m.register = newRegisterForm()
		model, cmd := m.pushToast(ux.Notify("Welcome back", msg.Identity.FullName))
		return model.navigate(authz.DashboardRoute(msg.Identity.Role).Path, ViewDashboard, cmd)

	case DashboardLoadedMsg:
		m.loading = false
		m.dashErr = ""
		if msg.Err != nil {
			m.dashErr = msg.Err.Error()
		}
		if msg.Dashboard != nil {
			m.dash = msg.Dashboard
		}
		return m, nil

	case BookingDoneMsg:
		m.loading = false
		return m.handleBookingOutcome(msg.Outcome)

	case toastExpiredMsg:
		if msg.seq == m.toastSeq {
			m.toast = nil
		}
		return m, nil
	}

	// Form views own all other messages while active.
	switch m.currentView {
	case ViewLogin:
		var cmd tea.Cmd
		m.login, cmd = m.login.update(msg)
		return m, cmd
	case ViewRegister:
		var cmd tea.Cmd
		m.register, cmd = m.register.update(msg)
		return m, cmd
	}

	return m, nil
}

// navigate applies the route guard before switching views. A denied
// navigation lands on the guard's redirect target instead.
func (m Model) navigate(path string, view ViewType, cmd tea.Cmd) (tea.Model, tea.Cmd) {
	guarded := map[ViewType]bool{ViewDashboard: true}
	if !guarded[view] {
		m.currentView = view
		return m, cmd
	}

	sess := m.app.Auth.Current()
	route := authz.Route{Path: path}
	if view == ViewDashboard && sess.Active() {
		route = authz.DashboardRoute(sess.Role())
	}

	switch authz.Check(sess, route) {
	case authz.Allow:
		m.currentView = view
		if view == ViewDashboard {
			m.loading = true
			return m, tea.Batch(cmd, m.loadDashboardCmd())
		}
		return m, cmd
	case authz.RedirectLogin:
		m.currentView = ViewLogin
		return m, cmd
	default:
		m.currentView = ViewLanding
		return m, cmd
	}
}

func (m Model) handleBookingOutcome(outcome booking.Outcome) (tea.Model, tea.Cmd) {
	switch outcome.Status {
	case booking.StatusVerified:
		model, cmd := m.pushToast(ux.Notify("Booking confirmed", "The property is reserved for you"))
		// Booked properties change status; refetch the catalog.
		return model, tea.Batch(cmd, model.loadPropertiesCmd())
	case booking.StatusManualVerify:
		return m.pushToast(ux.NotifyError("Payment received, verification pending", outcome.Err.Error()))
	case booking.StatusRedirectLogin:
		m.currentView = ViewLogin
		return m.pushToast(ux.Notify("Please sign in", "Sign in with a customer account to book"))
	case booking.StatusRejected:
		m.currentView = ViewLanding
		return m.pushToast(ux.NotifyError("Booking unavailable", outcome.Err.Error()))
	case booking.StatusAbandoned:
		return m.pushToast(ux.Notify("Booking cancelled", "No payment was taken"))
	default:
		return m.pushToast(ux.NotifyError("Booking failed", outcome.Err.Error()))
	}
}

// pushToast replaces the toast line and schedules its expiry.
func (m Model) pushToast(n ux.Notification) (Model, tea.Cmd) {
	m.toast = &n
	m.toastSeq++
	seq := m.toastSeq
	return m, tea.Tick(4*time.Second, func(time.Time) tea.Msg {
		return toastExpiredMsg{seq: seq}
	})
}

// handleKeyPress handles keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	// Text forms consume keys first.
	switch m.currentView {
	case ViewLogin:
		if msg.String() == "esc" {
			m.currentView = ViewLanding
			return m, nil
		}
		if done, email, password := m.login.submit(msg); done {
			return m, m.signInCmd(email, password)
		}
		var cmd tea.Cmd
		m.login, cmd = m.login.update(msg)
		return m, cmd
	case ViewRegister:
		if msg.String() == "esc" {
			m.currentView = ViewLanding
			return m, nil
		}
		if done, profile := m.register.submit(msg); done {
			return m, m.registerCmd(profile)
		}
		var cmd tea.Cmd
		m.register, cmd = m.register.update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit

	case "?":
		if m.currentView == ViewHelp {
			m.currentView = ViewLanding
		} else {
			m.currentView = ViewHelp
		}

	case "p":
		m.currentView = ViewProperties
		m.loading = true
		return m, m.loadPropertiesCmd()

	case "l":
		if !m.app.Auth.Current().Active() {
			m.currentView = ViewLogin
		}

	case "r":
		if !m.app.Auth.Current().Active() {
			m.currentView = ViewRegister
		}

	case "d":
		return m.navigate("/dashboard", ViewDashboard, nil)

	case "o":
		if m.app.Auth.Current().Active() {
			m.app.Auth.Logout()
			m.app.Dashboards.Invalidate()
			m.dash = nil
			m.currentView = ViewLanding
			return m.pushToast(ux.Notify("Signed out", ""))
		}

	case "up", "k":
		if m.currentView == ViewProperties && m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.currentView == ViewProperties && m.cursor < len(m.properties)-1 {
			m.cursor++
		}

	case "enter":
		if m.currentView == ViewProperties && len(m.properties) > 0 {
			p := m.properties[m.cursor]
			m.selected = &p
			m.currentView = ViewDetail
		}

	case "b":
		if m.currentView == ViewDetail && m.selected != nil {
			m.loading = true
			return m, m.bookCmd(*m.selected)
		}

	case "esc":
		switch m.currentView {
		case ViewDetail:
			m.currentView = ViewProperties
		default:
			m.currentView = ViewLanding
		}
	}

	return m, nil
}

// Commands

func (m Model) loadPropertiesCmd() tea.Cmd {
	client := m.app.Client
	return func() tea.Msg {
		properties, err := client.ListProperties(context.Background(), api.PropertyFilter{})
		return PropertiesLoadedMsg{Properties: properties, Err: err}
	}
}

func (m Model) signInCmd(email, password string) tea.Cmd {
	svc := m.app.Auth
	return func() tea.Msg {
		identity, err := svc.Login(context.Background(), email, password)
		return SignedInMsg{Identity: identity, Err: err}
	}
}

func (m Model) registerCmd(profile auth.RegisterProfile) tea.Cmd {
	svc := m.app.Auth
	return func() tea.Msg {
		identity, err := svc.Register(context.Background(), profile)
		return SignedInMsg{Identity: identity, Err: err}
	}
}

func (m Model) loadDashboardCmd() tea.Cmd {
	app := m.app
	return func() tea.Msg {
		dash, err := app.Dashboards.Load(context.Background(), app.Auth.Current())
		return DashboardLoadedMsg{Dashboard: dash, Err: err}
	}
}

func (m Model) bookCmd(property domain.Property) tea.Cmd {
	app := m.app
	return func() tea.Msg {
		outcome := app.Booking.Book(context.Background(), app.Auth.Current(), &property)
		return BookingDoneMsg{Outcome: outcome}
	}
}

// Messages

// PropertiesLoadedMsg carries the fetched property catalog
type PropertiesLoadedMsg struct {
	Properties []domain.Property
	Err        error
}

// SignedInMsg carries the result of a login or registration
type SignedInMsg struct {
	Identity *domain.Identity
	Err      error
}

// DashboardLoadedMsg carries the fetched role dashboard
type DashboardLoadedMsg struct {
	Dashboard *api.Dashboard
	Err       error
}

// BookingDoneMsg carries the terminal state of a booking attempt
type BookingDoneMsg struct {
	Outcome booking.Outcome
}

type toastExpiredMsg struct {
	seq int
}
