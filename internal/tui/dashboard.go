package tui

import (
	"context"
	"strings"
	"time"

	"github.com/NeonGeckoCom/neon-hub-config/internal/panel"
	"github.com/NeonGeckoCom/neon-hub-config/internal/service"
	"github.com/NeonGeckoCom/neon-hub-config/internal/validators"
	"github.com/NeonGeckoCom/neon-hub-config/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const statusTTL = 3 * time.Second

// chromeHeight is the number of lines around the tab body: title, tabs,
// banner, dividers and the hot key line.
const chromeHeight = 12

type mainLoopModel struct {
	ctx       context.Context
	services  *service.ClientServices
	validator validators.Validator
	saved     <-chan sectionSavedMsg
	buildInfo models.AppBuildInfo

	tab      models.Tab
	config   configPanel
	advanced advancedPanel
	baseURL  *baseURLEditor

	showBuildInfo bool
	status        string
	errMsg        string
	width, height int

	logout bool
}

func newMainLoopModel(ctx context.Context, services *service.ClientServices, validator validators.Validator, autosave service.AutoSaver, saved <-chan sectionSavedMsg, buildInfo models.AppBuildInfo) mainLoopModel {
	return mainLoopModel{
		ctx:       ctx,
		services:  services,
		validator: validator,
		saved:     saved,
		buildInfo: buildInfo,
		tab:       services.Preferences.ActiveTab(ctx),
		config:    newConfigPanel(ctx, services.Config, autosave),
		advanced:  newAdvancedPanel(ctx, services.Raw),
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	cmds := []tea.Cmd{m.config.cmdLoad(), waitForAutoSave(m.saved)}
	if m.tab == models.TabAdvanced {
		cmds = append(cmds, m.advanced.ensureLoaded())
	}
	return tea.Batch(cmds...)
}

// waitForAutoSave turns auto-save notifications into messages, one at a
// time. It yields nil once saved is closed.
func waitForAutoSave(saved <-chan sectionSavedMsg) tea.Cmd {
	if saved == nil {
		return nil
	}
	return func() tea.Msg {
		msg, ok := <-saved
		if !ok {
			return nil
		}
		return msg
	}
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func (m *mainLoopModel) show(n notice) tea.Cmd {
	switch {
	case n.err != "":
		m.errMsg = n.err
		m.status = ""
	case n.status != "":
		m.errMsg = ""
		m.status = n.status
		return clearStatusAfter(statusTTL)
	}
	return nil
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.config.height = msg.Height - chromeHeight
		m.advanced.resize(msg.Width, msg.Height)
		return m, nil

	case configLoadedMsg:
		m.config.loading = false
		m.config.refresh()
		if msg.err != nil {
			if isSessionExpired(msg.err) {
				m.logout = true
				return m, tea.Quit
			}
			return m, m.show(notice{err: humanizeError(msg.err)})
		}
		return m, m.show(notice{status: "Configuration loaded"})

	case sectionSavedMsg:
		m.config.refresh()
		var next tea.Cmd
		if msg.auto {
			next = waitForAutoSave(m.saved)
		}
		title := panel.Title(msg.section)
		if msg.err != nil {
			return m, tea.Batch(next, m.show(notice{err: title + ": " + humanizeError(msg.err)}))
		}
		status := "Saved " + title
		if msg.auto {
			status = "Auto-saved " + title
		}
		return m, tea.Batch(next, m.show(notice{status: status}))

	case rawLoadedMsg:
		m.advanced.onResult(msg.target, msg.err)
		if msg.err != nil {
			return m, m.show(notice{err: humanizeError(msg.err)})
		}
		return m, nil

	case rawSavedMsg:
		m.advanced.onResult(msg.target, msg.err)
		if msg.err != nil {
			return m, m.show(notice{err: humanizeError(msg.err)})
		}
		return m, m.show(notice{status: "Saved " + msg.target.Title()})

	case baseURLSavedMsg:
		if m.baseURL != nil {
			if _, done := m.baseURL.update(msg); !done {
				return m, nil
			}
			m.baseURL = nil
		}
		m.advanced.invalidate()
		cmds := []tea.Cmd{m.show(notice{status: "Backend: " + msg.url}), m.config.cmdLoad()}
		if m.tab == models.TabAdvanced {
			cmds = append(cmds, m.advanced.ensureLoaded())
		}
		return m, tea.Batch(cmds...)

	case copiedMsg:
		if msg.err != nil {
			return m, m.show(notice{err: "Copy failed: " + msg.err.Error()})
		}
		return m, m.show(notice{status: "Copied " + msg.label})

	case clearStatusMsg:
		m.status = ""
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.forward(msg)
	}

	if key.Matches(keyMsg, keys.quit) {
		return m, tea.Quit
	}

	if m.baseURL != nil {
		cmd, done := m.baseURL.update(keyMsg)
		if done {
			m.baseURL = nil
		}
		return m, cmd
	}

	if m.showBuildInfo {
		if key.Matches(keyMsg, keys.esc, keys.version) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	if m.config.editing || m.advanced.focused {
		return m.toPanel(keyMsg)
	}

	switch {
	case key.Matches(keyMsg, keys.tab):
		return m, m.switchTab(1)
	case key.Matches(keyMsg, keys.backtab):
		return m, m.switchTab(-1)
	case key.Matches(keyMsg, keys.logout):
		m.logout = true
		return m, tea.Quit
	case key.Matches(keyMsg, keys.baseURL):
		m.baseURL = newBaseURLEditor(m.ctx, m.services, m.validator, "")
		return m, m.baseURL.Init()
	case key.Matches(keyMsg, keys.version):
		m.showBuildInfo = true
		return m, nil
	}

	return m.toPanel(keyMsg)
}

// forward passes non-key messages, e.g. cursor blinks, to the active widget.
func (m mainLoopModel) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch {
	case m.baseURL != nil:
		cmd, _ = m.baseURL.update(msg)
	case m.config.editing && m.config.useArea:
		m.config.area, cmd = m.config.area.Update(msg)
	case m.config.editing:
		m.config.input, cmd = m.config.input.Update(msg)
	case m.advanced.focused:
		m.advanced.area, cmd = m.advanced.area.Update(msg)
	}
	return m, cmd
}

func (m mainLoopModel) toPanel(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var (
		cmd tea.Cmd
		n   notice
	)
	switch m.tab {
	case models.TabConfig:
		cmd, n = m.config.update(msg)
	case models.TabAdvanced:
		cmd, n = m.advanced.update(msg)
	default:
		return m, nil
	}
	return m, tea.Batch(cmd, m.show(n))
}

func (m *mainLoopModel) switchTab(delta int) tea.Cmd {
	idx := 0
	for i, t := range models.Tabs {
		if t == m.tab {
			idx = i
		}
	}
	n := len(models.Tabs)
	m.tab = models.Tabs[(idx+delta+n)%n]
	m.errMsg = ""

	ctx, prefs, tab := m.ctx, m.services.Preferences, m.tab
	persist := func() tea.Msg {
		// best effort; the tab is still shown
		_ = prefs.SetActiveTab(ctx, tab)
		return nil
	}

	if tab == models.TabAdvanced {
		m.advanced.sync()
		return tea.Batch(persist, m.advanced.ensureLoaded())
	}
	return persist
}

func (m mainLoopModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo, m.services.Hub.BaseURL()))
	}

	var b strings.Builder
	for _, t := range models.Tabs {
		if t == m.tab {
			b.WriteString(activeTabStyle.Render(t.Title()))
		} else {
			b.WriteString(tabStyle.Render(t.Title()))
		}
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("User: " + m.services.Auth.Username() + "  │  Backend: " + m.services.Hub.BaseURL()))
	b.WriteString("\n")

	if banner := renderBanner(m.errMsg, m.status); banner != "" {
		b.WriteString(banner)
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if m.baseURL != nil {
		b.WriteString(overlayBoxStyle.Render(m.baseURL.body()))
		return appStyle.Render(renderPage("NEON HUB CONFIGURATION", b.String(), ""))
	}

	var hotKeys string
	switch m.tab {
	case models.TabConfig:
		b.WriteString(m.config.view())
		hotKeys = "↑/↓: move │ enter: edit │ space: next option │ r: reveal │ c: copy │ s: save │ ctrl+r: refresh"
		if m.config.editing {
			hotKeys = "enter: apply │ esc: cancel"
		}
	case models.TabAdvanced:
		b.WriteString(m.advanced.view())
		hotKeys = "←/→: file │ enter: edit │ ctrl+s: save │ ctrl+r: reload"
		if m.advanced.focused {
			hotKeys = "ctrl+s: save │ esc: stop editing"
		}
	default:
		if p, ok := panel.Placeholder(m.tab); ok {
			b.WriteString(sectionStyle.Render(p.Title))
			b.WriteString("\n\n")
			b.WriteString(p.Text)
			if p.Link != nil {
				b.WriteString("\n\n")
				b.WriteString(p.Link.Text + ": " + p.Link.URL)
			}
		}
	}

	if !m.config.editing && !m.advanced.focused {
		hotKeys += "\ntab: next tab │ b: backend URL │ v: version │ L: log out"
	}

	return appStyle.Render(renderPage("NEON HUB CONFIGURATION", b.String(), hotKeys))
}
