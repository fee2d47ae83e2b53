// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

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

// LoginModel is the Bubble Tea model for the login screen. It renders the
// username and password inputs and dispatches an async login command on
// submission. On success a [LoginResult] message is produced and handled by
// [RootModel] to finish the login flow.
type LoginModel struct {
	ctx       context.Context
	auth      service.AuthService
	hub       interface{ BaseURL() string }
	validator validators.Validator

	inputs     []textinput.Model
	focus      int
	remember   bool
	submitting bool
	errMsg     string
	status     string
}

// NewLoginModel creates a [LoginModel]. The username field receives focus
// immediately; the password field uses masked echo.
func NewLoginModel(ctx context.Context, services *service.ClientServices, validator validators.Validator) *LoginModel {
	usernameInput := textinput.New()
	usernameInput.Placeholder = "username"
	usernameInput.CharLimit = 64
	usernameInput.Width = 40
	usernameInput.Focus()

	passwordInput := textinput.New()
	passwordInput.Placeholder = "password"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	return &LoginModel{
		ctx:       ctx,
		auth:      services.Auth,
		hub:       services.Hub,
		validator: validator,
		inputs:    []textinput.Model{usernameInput, passwordInput},
	}
}

// Init implements [tea.Model].
func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [LoginResult]     clears submitting state; on error, populates errMsg.
//   - [baseURLSavedMsg] reports the backend the next login goes to.
//   - tab / shift+tab   move focus between the inputs.
//   - ctrl+t            toggles "remember me".
//   - ctrl+b            opens the base URL editor.
//   - enter             validates the inputs and dispatches the login.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case LoginResult:
		m.submitting = false
		if msg.Err != nil {
			m.errMsg = app.LoginMessage(msg.Err)
		}
		return m, nil
	case baseURLSavedMsg:
		if msg.err == nil {
			m.errMsg = ""
			m.status = "Backend: " + msg.url
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.tab):
			m.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.remember):
			m.remember = !m.remember
			return m, nil
		case keyMsg.String() == "ctrl+b":
			return m, func() tea.Msg { return NavigateTo{Page: pageBaseURL} }
		case key.Matches(keyMsg, keys.enter):
			if m.submitting {
				return m, nil
			}

			creds := models.Credentials{
				Username: strings.TrimSpace(m.inputs[0].Value()),
				Password: m.inputs[1].Value(),
			}
			if err := m.validator.Validate(m.ctx, creds); err != nil {
				m.errMsg = app.MsgLoginRequired
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdLogin(creds)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m *LoginModel) View() string {
	var b strings.Builder
	b.WriteString("Field     │ Value\n")
	b.WriteString("──────────┼────────────────────────────────────────────\n")
	b.WriteString("Username  │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Password  │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")
	b.WriteString("Remember  │ ")
	if m.remember {
		b.WriteString("[x]\n")
	} else {
		b.WriteString("[ ]\n")
	}

	if m.submitting {
		b.WriteString("\n[Logging in...]\n")
	} else {
		b.WriteString("\n[Log in]\n")
	}

	if m.hub != nil {
		b.WriteString("\nBackend: ")
		b.WriteString(m.hub.BaseURL())
		b.WriteString("\n")
	}

	if banner := renderBanner(m.errMsg, m.status); banner != "" {
		b.WriteString("\n")
		b.WriteString(banner)
		b.WriteString("\n")
	}

	return renderPage("NEON HUB LOGIN", strings.TrimRight(b.String(), "\n"),
		"tab: next field │ enter: log in │ ctrl+t: remember me │ ctrl+b: backend URL │ f1: version")
}

func (m *LoginModel) cmdLogin(creds models.Credentials) tea.Cmd {
	ctx := m.ctx
	auth := m.auth
	remember := m.remember

	return func() tea.Msg {
		err := auth.Login(ctx, creds, remember)
		return LoginResult{Username: creds.Username, Err: err}
	}
}

func (m *LoginModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *LoginModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
