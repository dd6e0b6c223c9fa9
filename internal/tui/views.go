package tui

import (
	"fmt"
	"strings"

	"github.com/golasco/golasco/internal/ux"
)

// View renders the TUI (required by Bubble Tea)
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.quitting {
		return "Goodbye.\n"
	}

	var body string
	switch m.currentView {
	case ViewLanding:
		body = m.renderLanding()
	case ViewProperties:
		body = m.renderProperties()
	case ViewDetail:
		body = m.renderDetail()
	case ViewLogin:
		body = m.renderLogin()
	case ViewRegister:
		body = m.renderRegister()
	case ViewDashboard:
		body = m.renderDashboard()
	case ViewHelp:
		body = m.renderHelp()
	default:
		body = "Unknown view"
	}

	if m.toast != nil {
		style := m.styles.Toast
		if m.toast.Variant == ux.VariantDestructive {
			style = m.styles.ToastErr
		}
		line := m.toast.Title
		if m.toast.Description != "" {
			line += " · " + m.toast.Description
		}
		body += "\n" + style.Render(line)
	}

	return body
}

func (m Model) renderLanding() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("🏠 Golasco Property"))
	b.WriteString("\n")
	b.WriteString(m.styles.Subtitle.Render("Find, visit, and book your next home"))
	b.WriteString("\n\n")

	sess := m.app.Auth.Current()
	if sess.Active() {
		b.WriteString(m.styles.Status.Render("Signed in as " + sess.Identity.FullName))
		b.WriteString(m.styles.Muted.Render(" (" + string(sess.Role()) + ")"))
		b.WriteString("\n\n")
		b.WriteString(m.renderHelpLine("p", "properties", "d", "dashboard", "o", "sign out", "q", "quit"))
	} else {
		b.WriteString(m.styles.Muted.Render("Browse freely. Sign in to book a property."))
		b.WriteString("\n\n")
		b.WriteString(m.renderHelpLine("p", "properties", "l", "sign in", "r", "register", "q", "quit"))
	}

	return b.String()
}

func (m Model) renderProperties() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Properties"))
	b.WriteString("\n")

	if m.loading {
		b.WriteString(m.styles.Muted.Render("Loading catalog..."))
		return b.String()
	}
	if len(m.properties) == 0 {
		b.WriteString(m.styles.Muted.Render("No properties listed right now."))
		b.WriteString("\n\n")
		b.WriteString(m.renderHelpLine("esc", "back", "q", "quit"))
		return b.String()
	}

	for i, p := range m.properties {
		line := fmt.Sprintf("%-40s %-12s ₹%.0f", p.Title, p.Status, p.Price)
		if i == m.cursor {
			b.WriteString(m.styles.Selected.Render("› " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderHelpLine("↑/↓", "move", "enter", "details", "esc", "back"))
	return b.String()
}

func (m Model) renderDetail() string {
	if m.selected == nil {
		return m.styles.Muted.Render("No property selected")
	}
	p := m.selected

	var b strings.Builder
	b.WriteString(m.styles.Title.Render(p.Title))
	b.WriteString("\n")
	b.WriteString(m.styles.Subtitle.Render(p.City + " · " + p.PropertyType))
	b.WriteString("\n\n")

	if p.Description != "" {
		b.WriteString(p.Description)
		b.WriteString("\n\n")
	}

	b.WriteString(m.styles.Price.Render(fmt.Sprintf("₹%.0f", p.Price)))
	b.WriteString(m.styles.Muted.Render(fmt.Sprintf("  (booking amount ₹%.0f)", p.BookingAmount())))
	b.WriteString("\n")
	b.WriteString(m.styles.Status.Render("Status: " + string(p.Status)))
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString(m.styles.Muted.Render("Processing booking..."))
		b.WriteString("\n")
	}

	b.WriteString(m.renderHelpLine("b", "book", "esc", "back"))
	return b.String()
}

func (m Model) renderLogin() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Sign in"))
	b.WriteString("\n")
	for _, input := range m.login.inputs {
		b.WriteString(input.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.renderHelpLine("enter", "submit", "tab", "next field", "esc", "cancel"))
	return b.String()
}

func (m Model) renderRegister() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Create account"))
	b.WriteString("\n")
	for _, input := range m.register.inputs {
		b.WriteString(input.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render("Role: "))
	b.WriteString(m.styles.Key.Render(selfServiceRoles[m.register.role]))
	b.WriteString(m.styles.Muted.Render("  (←/→ to change)"))
	b.WriteString("\n\n")
	b.WriteString(m.renderHelpLine("enter", "submit", "tab", "next field", "esc", "cancel"))
	return b.String()
}

func (m Model) renderDashboard() string {
	var b strings.Builder

	sess := m.app.Auth.Current()
	if !sess.Active() {
		return m.styles.Muted.Render("Sign in to see your dashboard")
	}

	b.WriteString(m.styles.Title.Render("Dashboard · " + string(sess.Role())))
	b.WriteString("\n")

	if m.loading {
		b.WriteString(m.styles.Muted.Render("Loading..."))
		return b.String()
	}

	if m.dashErr != "" {
		b.WriteString(m.styles.Error.Render("Could not refresh: " + m.dashErr))
		b.WriteString("\n")
		if m.dash != nil {
			b.WriteString(m.styles.Muted.Render("Showing last known numbers"))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if m.dash == nil {
		b.WriteString(m.styles.Muted.Render("Press d to retry"))
		return b.String()
	}

	var stats []string
	switch {
	case m.dash.Customer != nil:
		c := m.dash.Customer
		stats = append(stats,
			fmt.Sprintf("Leads:              %d", c.TotalLeads),
			fmt.Sprintf("Completed bookings: %d", c.CompletedBookings),
		)
	case m.dash.Agent != nil:
		a := m.dash.Agent
		stats = append(stats,
			fmt.Sprintf("Assigned leads: %d", a.TotalLeads),
			fmt.Sprintf("Properties:     %d", a.PropertiesCount),
		)
	case m.dash.Franchise != nil:
		f := m.dash.Franchise
		stats = append(stats,
			fmt.Sprintf("Properties: %d (%d available, %d booked, %d sold)",
				f.TotalProperties, f.AvailableProperties, f.BookedProperties, f.SoldProperties),
			fmt.Sprintf("Booking revenue: ₹%.0f", f.TotalBookingAmount),
		)
	case m.dash.Admin != nil:
		a := m.dash.Admin
		stats = append(stats,
			fmt.Sprintf("Total users:   %d", a.TotalUsers),
			fmt.Sprintf("Pending users: %d", len(a.PendingUsers)),
		)
	}

	b.WriteString(m.styles.Border.Render(strings.Join(stats, "\n")))
	b.WriteString("\n\n")
	b.WriteString(m.renderHelpLine("d", "refresh", "esc", "back", "o", "sign out"))
	return b.String()
}

func (m Model) renderHelp() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Keys"))
	b.WriteString("\n")

	keys := [][2]string{
		{"p", "browse properties"},
		{"enter", "open property"},
		{"b", "book selected property"},
		{"l", "sign in"},
		{"r", "create account"},
		{"d", "dashboard"},
		{"o", "sign out"},
		{"?", "toggle this help"},
		{"q", "quit"},
	}
	for _, k := range keys {
		b.WriteString(fmt.Sprintf("  %s  %s\n", m.styles.Key.Render(fmt.Sprintf("%-6s", k[0])), k[1]))
	}
	return b.String()
}

func (m Model) renderHelpLine(pairs ...string) string {
	var parts []string
	for i := 0; i+1 < len(pairs); i += 2 {
		parts = append(parts, m.styles.Key.Render(pairs[i])+" "+m.styles.Muted.Render(pairs[i+1]))
	}
	return m.styles.Help.Render(strings.Join(parts, "  ·  "))
}
