package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/NeonGeckoCom/neon-hub-config/internal/app"
	"github.com/NeonGeckoCom/neon-hub-config/internal/panel"
	"github.com/NeonGeckoCom/neon-hub-config/internal/service"
	"github.com/NeonGeckoCom/neon-hub-config/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const labelWidth = 24

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

type fieldRef struct {
	section int
	field   int
}

// notice is what a panel wants shown in the dashboard banner.
type notice struct {
	status string
	err    string
}

// configPanel is the Configuration tab: every section of the default layout
// as a scrollable list of fields.
type configPanel struct {
	ctx      context.Context
	config   service.ConfigService
	autosave service.AutoSaver

	views    []panel.SectionView
	rows     []fieldRef
	cursor   int
	state    models.ConfigState
	loading  bool
	revealed map[string]bool

	editing bool
	editRef fieldRef
	useArea bool
	input   textinput.Model
	area    textarea.Model

	height int
}

func newConfigPanel(ctx context.Context, config service.ConfigService, autosave service.AutoSaver) configPanel {
	input := textinput.New()
	input.Width = 50
	input.CharLimit = 1024

	area := textarea.New()
	area.SetWidth(60)
	area.SetHeight(8)
	area.ShowLineNumbers = false

	return configPanel{
		ctx:      ctx,
		config:   config,
		autosave: autosave,
		revealed: map[string]bool{},
		input:    input,
		area:     area,
	}
}

func fieldID(section models.SectionKey, key string) string {
	return string(section) + "." + key
}

// refresh re-reads the store and rebuilds the field list.
func (p *configPanel) refresh() {
	p.state = p.config.Snapshot()
	p.views = panel.BuildLayout(p.config.Section)

	p.rows = p.rows[:0]
	for si, v := range p.views {
		for fi := range v.Fields {
			p.rows = append(p.rows, fieldRef{section: si, field: fi})
		}
	}
	if p.cursor >= len(p.rows) {
		p.cursor = len(p.rows) - 1
	}
	if p.cursor < 0 {
		p.cursor = 0
	}
}

func (p configPanel) at(ref fieldRef) (panel.SectionView, panel.Field, bool) {
	if ref.section >= len(p.views) || ref.field >= len(p.views[ref.section].Fields) {
		return panel.SectionView{}, panel.Field{}, false
	}
	view := p.views[ref.section]
	return view, view.Fields[ref.field], true
}

func (p configPanel) current() (panel.SectionView, panel.Field, bool) {
	if p.cursor >= len(p.rows) {
		return panel.SectionView{}, panel.Field{}, false
	}
	return p.at(p.rows[p.cursor])
}

func (p *configPanel) cmdLoad() tea.Cmd {
	p.loading = true
	ctx, cfg := p.ctx, p.config
	return func() tea.Msg {
		return configLoadedMsg{err: cfg.Load(ctx)}
	}
}

func (p *configPanel) cmdSave(section models.SectionKey) tea.Cmd {
	ctx, cfg := p.ctx, p.config
	return func() tea.Msg {
		return sectionSavedMsg{section: section, err: cfg.SaveSection(ctx, section)}
	}
}

func (p *configPanel) update(msg tea.KeyMsg) (tea.Cmd, notice) {
	if p.editing {
		return p.updateEditing(msg)
	}

	switch {
	case key.Matches(msg, keys.up):
		if p.cursor > 0 {
			p.cursor--
		}
	case key.Matches(msg, keys.down):
		if p.cursor < len(p.rows)-1 {
			p.cursor++
		}
	case key.Matches(msg, keys.enter):
		view, f, ok := p.current()
		if !ok {
			return nil, notice{}
		}
		if f.Kind == panel.KindSelect {
			return nil, p.cycle(view, f)
		}
		return p.startEdit(view, f), notice{}
	case key.Matches(msg, keys.cycle):
		if view, f, ok := p.current(); ok && f.Kind == panel.KindSelect {
			return nil, p.cycle(view, f)
		}
	case key.Matches(msg, keys.reveal):
		if view, f, ok := p.current(); ok && f.Kind == panel.KindSecret {
			id := fieldID(view.Key, f.Key)
			p.revealed[id] = !p.revealed[id]
		}
	case key.Matches(msg, keys.copy):
		if _, f, ok := p.current(); ok {
			return cmdCopy(f.Label, f.Value), notice{}
		}
	case key.Matches(msg, keys.save):
		if view, _, ok := p.current(); ok {
			return p.cmdSave(view.Key), notice{status: "Saving " + view.Title + "..."}
		}
	case key.Matches(msg, keys.refresh):
		return p.cmdLoad(), notice{}
	}
	return nil, notice{}
}

func (p *configPanel) cycle(view panel.SectionView, f panel.Field) notice {
	next, ok := f.Next()
	if !ok {
		return notice{}
	}
	if err := p.config.SetField(view.Key, f.Key, next.Value); err != nil {
		return notice{err: humanizeError(err)}
	}
	p.autosave.Touch(view.Key)
	p.refresh()
	return notice{status: fmt.Sprintf("%s: %s", f.Label, next.Label)}
}

func (p *configPanel) startEdit(view panel.SectionView, f panel.Field) tea.Cmd {
	p.editing = true
	p.editRef = p.rows[p.cursor]
	p.useArea = f.Kind == panel.KindJSON

	if p.useArea {
		p.area.SetValue(f.Value)
		return p.area.Focus()
	}

	p.input.SetValue(f.Value)
	p.input.CursorEnd()
	p.input.EchoMode = textinput.EchoNormal
	if f.Kind == panel.KindSecret && !p.revealed[fieldID(view.Key, f.Key)] {
		p.input.EchoMode = textinput.EchoPassword
		p.input.EchoCharacter = '•'
	}
	return p.input.Focus()
}

func (p *configPanel) stopEdit() {
	p.editing = false
	p.input.Blur()
	p.area.Blur()
}

func (p *configPanel) updateEditing(msg tea.KeyMsg) (tea.Cmd, notice) {
	switch {
	case key.Matches(msg, keys.esc):
		p.stopEdit()
		return nil, notice{}
	case p.useArea && key.Matches(msg, keys.saveYAML):
		return nil, p.apply(p.area.Value())
	case !p.useArea && key.Matches(msg, keys.enter):
		return nil, p.apply(p.input.Value())
	}

	var cmd tea.Cmd
	if p.useArea {
		p.area, cmd = p.area.Update(msg)
	} else {
		p.input, cmd = p.input.Update(msg)
	}
	return cmd, notice{}
}

// apply stores the edited text and schedules the auto-save of its section.
func (p *configPanel) apply(raw string) notice {
	view, f, ok := p.at(p.editRef)
	p.stopEdit()
	if !ok {
		return notice{}
	}

	if err := p.config.EditField(view.Key, f.Key, raw); err != nil {
		return notice{err: humanizeError(err)}
	}
	p.autosave.Touch(view.Key)
	p.refresh()

	if _, bad := p.state.ParseNotes[fieldID(view.Key, f.Key)]; bad {
		return notice{err: f.Label + ": " + app.MsgStoredAsText}
	}
	return notice{status: f.Label + " updated"}
}

func cmdCopy(label, value string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{label: label, err: writeClipboard(value)}
	}
}

func (p configPanel) view() string {
	var lines []string
	cursorLine := 0

	switch {
	case p.loading:
		lines = append(lines, helpStyle.Render("Loading configuration..."))
	case !p.state.LastRefresh.IsZero():
		lines = append(lines, helpStyle.Render("Last refreshed: "+p.state.LastRefresh.Format("2006-01-02 15:04:05")))
	}
	if p.state.LoadError != "" {
		lines = append(lines, errorStyle.Render("Error: "+p.state.LoadError))
	}

	row := 0
	for si, v := range p.views {
		header := sectionStyle.Render(v.Title)
		switch {
		case p.state.IsSaving(v.Key):
			header += helpStyle.Render("  saving...")
		case p.state.SaveError(v.Key) != "":
			header += "  " + errorStyle.Render(p.state.SaveError(v.Key))
		}
		lines = append(lines, "", header)

		for fi, f := range v.Fields {
			selected := row == p.cursor
			if selected {
				cursorLine = len(lines)
			}
			lines = append(lines, p.fieldLines(v, f, selected, fieldRef{section: si, field: fi})...)
			row++
		}
	}

	if len(p.views) == 0 && !p.loading && p.state.LoadError == "" {
		lines = append(lines, "", "No configuration loaded. Press ctrl+r to refresh.")
	}

	return strings.Join(window(lines, cursorLine, p.height), "\n")
}

func (p configPanel) fieldLines(v panel.SectionView, f panel.Field, selected bool, ref fieldRef) []string {
	marker := "  "
	label := fmt.Sprintf("%-*s", labelWidth, fitText(f.Label, labelWidth))
	if selected {
		marker = cursorStyle.Render("> ")
		label = cursorStyle.Render(label)
	}

	if p.editing && p.editRef == ref {
		if p.useArea {
			return []string{marker + label, p.area.View(), helpStyle.Render("ctrl+s apply │ esc cancel")}
		}
		return []string{marker + label + " " + p.input.View()}
	}

	value := f.Value
	if f.Kind == panel.KindSecret && !p.revealed[fieldID(v.Key, f.Key)] {
		value = f.Masked()
	}
	if f.Kind == panel.KindSelect {
		value = "◂ " + value + " ▸"
	}
	out := []string{marker + label + " " + fitText(firstLine(value), 60)}

	if !selected {
		return out
	}
	if f.Hint != "" {
		out = append(out, "    "+helpStyle.Render(f.Hint))
	}
	if f.Link != nil {
		out = append(out, "    "+helpStyle.Render(f.Link.Text+": "+f.Link.URL))
	}
	if note, ok := p.state.ParseNotes[fieldID(v.Key, f.Key)]; ok {
		out = append(out, "    "+errorStyle.Render(app.MsgStoredAsText+": "+note))
	}
	return out
}

// window returns at most height lines keeping focus visible.
func window(lines []string, focus, height int) []string {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	start := focus - height/2
	if start < 0 {
		start = 0
	}
	if start+height > len(lines) {
		start = len(lines) - height
	}
	return lines[start : start+height]
}
