package tui

import (
	"context"
	"strings"

	"github.com/NeonGeckoCom/neon-hub-config/internal/app"
	"github.com/NeonGeckoCom/neon-hub-config/internal/service"
	"github.com/NeonGeckoCom/neon-hub-config/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
)

// advancedPanel is the Advanced tab: one raw YAML editor per target.
type advancedPanel struct {
	ctx context.Context
	raw service.RawConfigService

	target  int
	area    textarea.Model
	focused bool
	state   models.RawEditorState
	loaded  map[models.RawTarget]bool
}

func newAdvancedPanel(ctx context.Context, raw service.RawConfigService) advancedPanel {
	area := textarea.New()
	area.SetWidth(80)
	area.SetHeight(20)
	area.CharLimit = 0
	area.Placeholder = "Loading..."

	return advancedPanel{
		ctx:    ctx,
		raw:    raw,
		area:   area,
		loaded: map[models.RawTarget]bool{},
	}
}

func (p advancedPanel) currentTarget() models.RawTarget {
	return models.RawTargets[p.target]
}

func (p *advancedPanel) sync() {
	p.state = p.raw.State(p.currentTarget())
}

// ensureLoaded loads the current target the first time it is shown.
func (p *advancedPanel) ensureLoaded() tea.Cmd {
	if p.loaded[p.currentTarget()] {
		return nil
	}
	return p.cmdLoad()
}

// invalidate forgets every loaded buffer, e.g. after the backend changed.
func (p *advancedPanel) invalidate() {
	p.loaded = map[models.RawTarget]bool{}
}

func (p *advancedPanel) cmdLoad() tea.Cmd {
	ctx, raw, target := p.ctx, p.raw, p.currentTarget()
	p.state.Loading = true
	return func() tea.Msg {
		return rawLoadedMsg{target: target, err: raw.Load(ctx, target)}
	}
}

func (p *advancedPanel) save() (tea.Cmd, notice) {
	p.sync()
	if !p.state.CanSave() {
		if !p.state.Valid {
			return nil, notice{err: app.MsgCannotSaveInvalidYAML}
		}
		return nil, notice{}
	}

	ctx, raw, target := p.ctx, p.raw, p.currentTarget()
	p.state.Saving = true
	return func() tea.Msg {
		return rawSavedMsg{target: target, err: raw.Save(ctx, target)}
	}, notice{status: "Saving " + target.Title() + "..."}
}

func (p *advancedPanel) switchTarget(delta int) tea.Cmd {
	n := len(models.RawTargets)
	p.target = (p.target + delta + n) % n
	p.sync()
	p.area.SetValue(p.state.Text)
	return p.ensureLoaded()
}

func (p *advancedPanel) update(msg tea.KeyMsg) (tea.Cmd, notice) {
	if p.focused {
		switch {
		case key.Matches(msg, keys.esc):
			p.focused = false
			p.area.Blur()
			return nil, notice{}
		case key.Matches(msg, keys.saveYAML):
			return p.save()
		}

		var cmd tea.Cmd
		p.area, cmd = p.area.Update(msg)
		if p.area.Value() != p.state.Text {
			// an invalid buffer is kept; the state carries the parse error
			_ = p.raw.SetText(p.currentTarget(), p.area.Value())
			p.sync()
		}
		return cmd, notice{}
	}

	switch {
	case key.Matches(msg, keys.left):
		return p.switchTarget(-1), notice{}
	case key.Matches(msg, keys.right):
		return p.switchTarget(1), notice{}
	case key.Matches(msg, keys.enter):
		p.focused = true
		return p.area.Focus(), notice{}
	case key.Matches(msg, keys.saveYAML):
		return p.save()
	case key.Matches(msg, keys.refresh):
		return p.cmdLoad(), notice{}
	}
	return nil, notice{}
}

// onResult applies a finished load or save of target.
func (p *advancedPanel) onResult(target models.RawTarget, err error) {
	if err == nil {
		p.loaded[target] = true
	}
	if target != p.currentTarget() {
		return
	}
	p.sync()
	if err == nil {
		p.area.SetValue(p.state.Text)
	}
}

func (p *advancedPanel) resize(width, height int) {
	if width > 10 {
		p.area.SetWidth(width - 6)
	}
	if height > 14 {
		p.area.SetHeight(height - 14)
	}
}

func (p advancedPanel) view() string {
	var b strings.Builder

	for i, t := range models.RawTargets {
		if i == p.target {
			b.WriteString(activeTabStyle.Render(t.Title()))
		} else {
			b.WriteString(tabStyle.Render(t.Title()))
		}
	}
	b.WriteString("\n\n")

	s := p.state
	var flags []string
	switch {
	case s.Loading:
		flags = append(flags, helpStyle.Render("Loading..."))
	case s.Saving:
		flags = append(flags, helpStyle.Render("Saving..."))
	}
	if s.Valid {
		flags = append(flags, okStyle.Render("✓ Valid YAML"))
	} else {
		flags = append(flags, errorStyle.Render("✗ Invalid YAML"))
	}
	if s.Dirty {
		flags = append(flags, errorStyle.Render("● Unsaved changes"))
	}
	if !s.LastRefresh.IsZero() {
		flags = append(flags, helpStyle.Render("Last refreshed: "+s.LastRefresh.Format("15:04:05")))
	}
	b.WriteString(strings.Join(flags, "  "))
	b.WriteString("\n")

	for _, msg := range []string{s.LoadError, s.ParseError, s.SaveError} {
		if msg != "" {
			b.WriteString(errorStyle.Render(msg))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(p.area.View())
	return b.String()
}
