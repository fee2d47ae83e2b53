package tui

import (
	"context"
	"strings"

	"github.com/NeonGeckoCom/neon-hub-config/internal/app"
	"github.com/NeonGeckoCom/neon-hub-config/internal/service"
	"github.com/NeonGeckoCom/neon-hub-config/internal/validators"
	"github.com/NeonGeckoCom/neon-hub-config/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// baseURLEditor edits the stored backend location. It is a page of its own
// before login and an overlay on the dashboard.
type baseURLEditor struct {
	ctx       context.Context
	prefs     service.PreferencesService
	hub       interface{ BaseURL() string }
	validator validators.Validator

	input      textinput.Model
	submitting bool
	errMsg     string

	// back is where esc and a successful save lead on the login page.
	back string
}

func newBaseURLEditor(ctx context.Context, services *service.ClientServices, validator validators.Validator, back string) *baseURLEditor {
	input := textinput.New()
	input.Placeholder = "http://hub.local:8080 (empty restores the default)"
	input.CharLimit = 256
	input.Width = 50
	input.Focus()

	e := &baseURLEditor{
		ctx:       ctx,
		prefs:     services.Preferences,
		hub:       services.Hub,
		validator: validator,
		input:     input,
		back:      back,
	}
	e.reset()
	return e
}

// reset loads the current backend location into the input.
func (e *baseURLEditor) reset() {
	e.input.SetValue(e.hub.BaseURL())
	e.input.CursorEnd()
	e.errMsg = ""
	e.submitting = false
}

func (e *baseURLEditor) Init() tea.Cmd {
	e.reset()
	return textinput.Blink
}

// update reports done once the editor should close.
func (e *baseURLEditor) update(msg tea.Msg) (cmd tea.Cmd, done bool) {
	switch msg := msg.(type) {
	case baseURLSavedMsg:
		e.submitting = false
		if msg.err != nil {
			e.errMsg = humanizeError(msg.err)
			return nil, false
		}
		return nil, true
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return nil, true
		case key.Matches(msg, keys.enter):
			if e.submitting {
				return nil, false
			}
			raw := strings.TrimSpace(e.input.Value())
			if err := e.validator.Validate(e.ctx, models.APIConfig{BaseURL: raw}); err != nil {
				e.errMsg = app.MsgInvalidBaseURL
				return nil, false
			}
			e.errMsg = ""
			e.submitting = true
			return e.cmdSave(raw), false
		}
	}

	e.input, cmd = e.input.Update(msg)
	return cmd, false
}

func (e *baseURLEditor) cmdSave(raw string) tea.Cmd {
	ctx := e.ctx
	prefs := e.prefs
	return func() tea.Msg {
		url, err := prefs.SetBaseURL(ctx, raw)
		return baseURLSavedMsg{url: url, err: err}
	}
}

func (e *baseURLEditor) body() string {
	var b strings.Builder
	b.WriteString("Backend URL\n\n[")
	b.WriteString(e.input.View())
	b.WriteString("]\n")
	if e.submitting {
		b.WriteString("\nSaving...\n")
	}
	if e.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(e.errMsg))
		b.WriteString("\n")
	}
	b.WriteString("\nenter save │ esc cancel")
	return b.String()
}

// baseURLPage adapts the editor to a [RootModel] page.
type baseURLPage struct {
	*baseURLEditor
}

func (p baseURLPage) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd, done := p.update(msg)
	if !done {
		return p, cmd
	}

	back := p.back
	nav := func() tea.Msg { return NavigateTo{Page: back} }
	if saved, ok := msg.(baseURLSavedMsg); ok {
		return p, tea.Sequence(nav, func() tea.Msg { return saved })
	}
	return p, nav
}

func (p baseURLPage) View() string {
	return renderPage("BACKEND", p.body(), "")
}
