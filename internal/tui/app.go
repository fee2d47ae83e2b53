package tui

import (
	"github.com/NeonGeckoCom/neon-hub-config/models"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	pageLogin   = "login"
	pageBaseURL = "baseurl"
)

// RootModel is the router of the login flow:
// 1) keeps active page
// 2) handles global Ctrl+C quit and the F1 version window
// 3) handles NavigateTo messages
// 4) delegates all other messages to the active page
type RootModel struct {
	pages   map[string]tea.Model
	current tea.Model

	quitByUser bool
	username   string
	buildInfo  models.AppBuildInfo
	baseURL    func() string

	showBuildInfo bool
}

// NewRootModel registers all pages and opens startPage.
func NewRootModel(pages map[string]tea.Model, startPage string, buildInfo models.AppBuildInfo, baseURL func() string) RootModel {
	return RootModel{
		pages:     pages,
		current:   pages[startPage],
		buildInfo: buildInfo,
		baseURL:   baseURL,
	}
}

func (r RootModel) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Global hotkeys for every page.
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c":
			r.quitByUser = true
			return r, tea.Quit
		case "f1":
			r.showBuildInfo = !r.showBuildInfo
			return r, nil
		case "esc":
			if r.showBuildInfo {
				r.showBuildInfo = false
				return r, nil
			}
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	if nav, ok := msg.(NavigateTo); ok {
		next, exists := r.pages[nav.Page]
		if !exists {
			return r, nil
		}

		r.showBuildInfo = false
		r.current = next
		return r, r.current.Init()
	}

	// Finish the flow on a successful login.
	if result, ok := msg.(LoginResult); ok && result.Err == nil {
		r.username = result.Username
		return r, tea.Quit
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	return r, cmd
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		url := ""
		if r.baseURL != nil {
			url = r.baseURL()
		}
		return appStyle.Render(renderBuildInfoWindow(r.buildInfo, url))
	}
	if r.current == nil {
		return renderPage("NEON HUB", "", "")
	}
	return appStyle.Render(r.current.View())
}
