package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/golasco/golasco/internal/auth"
)

// loginForm is the two-field sign-in form.
type loginForm struct {
	inputs []textinput.Model
	focus  int
}

func newLoginForm() loginForm {
	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 128
	email.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 128
	password.EchoMode = textinput.EchoPassword

	return loginForm{inputs: []textinput.Model{email, password}}
}

// submit reports whether the form is complete. Enter on the last field
// submits; enter elsewhere advances focus.
func (f *loginForm) submit(msg tea.KeyMsg) (bool, string, string) {
	switch msg.String() {
	case "enter":
		if f.focus == len(f.inputs)-1 {
			return true, f.inputs[0].Value(), f.inputs[1].Value()
		}
		f.next()
	case "tab", "down":
		f.next()
	case "shift+tab", "up":
		f.prev()
	}
	return false, "", ""
}

func (f *loginForm) next() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + 1) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f *loginForm) prev() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus - 1 + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f loginForm) update(msg tea.Msg) (loginForm, tea.Cmd) {
	cmds := make([]tea.Cmd, len(f.inputs))
	for i := range f.inputs {
		f.inputs[i], cmds[i] = f.inputs[i].Update(msg)
	}
	return f, tea.Batch(cmds...)
}

// registerForm collects the account profile. Role cycles through the
// self-service roles with left/right.
type registerForm struct {
	inputs []textinput.Model
	focus  int
	role   int
}

var selfServiceRoles = []string{"customer", "agent", "franchise_owner"}

func newRegisterForm() registerForm {
	name := textinput.New()
	name.Placeholder = "full name"
	name.CharLimit = 128
	name.Focus()

	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 128

	password := textinput.New()
	password.Placeholder = "password (8+ characters)"
	password.CharLimit = 128
	password.EchoMode = textinput.EchoPassword

	return registerForm{inputs: []textinput.Model{name, email, password}}
}

func (f *registerForm) submit(msg tea.KeyMsg) (bool, auth.RegisterProfile) {
	switch msg.String() {
	case "enter":
		if f.focus == len(f.inputs)-1 {
			return true, auth.RegisterProfile{
				FullName: f.inputs[0].Value(),
				Email:    f.inputs[1].Value(),
				Password: f.inputs[2].Value(),
				Role:     selfServiceRoles[f.role],
			}
		}
		f.next()
	case "tab", "down":
		f.next()
	case "shift+tab", "up":
		f.prev()
	case "left":
		f.role = (f.role - 1 + len(selfServiceRoles)) % len(selfServiceRoles)
	case "right":
		f.role = (f.role + 1) % len(selfServiceRoles)
	}
	return false, auth.RegisterProfile{}
}

func (f *registerForm) next() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + 1) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f *registerForm) prev() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus - 1 + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f registerForm) update(msg tea.Msg) (registerForm, tea.Cmd) {
	cmds := make([]tea.Cmd, len(f.inputs))
	for i := range f.inputs {
		f.inputs[i], cmds[i] = f.inputs[i].Update(msg)
	}
	return f, tea.Batch(cmds...)
}
