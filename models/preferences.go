package models

// Preference keys persisted in the client-local store.
const (
	// PrefAPIConfig holds the JSON-encoded APIConfig (base URL override).
	PrefAPIConfig = "apiConfig"
	// PrefActiveTab holds the last selected dashboard tab.
	PrefActiveTab = "activeTab"
	// PrefTheme holds the selected colour theme ("dark" or "light").
	PrefTheme = "theme"
	// PrefSession holds the sealed credentials of the remembered TUI session.
	PrefSession = "session"
)

// APIConfig is the runtime override of the backend location.
type APIConfig struct {
	BaseURL string `json:"baseUrl"`
}

// Tab identifies a dashboard panel.
type Tab string

const (
	TabConfig   Tab = "config"
	TabServices Tab = "services"
	TabDevices  Tab = "devices"
	TabUpdates  Tab = "updates"
	TabAdvanced Tab = "advanced"
)

// DefaultTab is shown when no tab was persisted yet.
const DefaultTab = TabConfig

// Tabs lists every panel in navigation order.
var Tabs = []Tab{TabConfig, TabServices, TabDevices, TabUpdates, TabAdvanced}

// Title returns the navigation label of the tab.
func (t Tab) Title() string {
	switch t {
	case TabConfig:
		return "Configuration"
	case TabServices:
		return "Node Services"
	case TabDevices:
		return "Connected Devices"
	case TabUpdates:
		return "System Updates"
	case TabAdvanced:
		return "Advanced"
	default:
		return string(t)
	}
}

// Valid reports whether t is one of the known tabs.
func (t Tab) Valid() bool {
	for _, known := range Tabs {
		if t == known {
			return true
		}
	}
	return false
}

// Theme is the colour scheme of the dashboard.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Toggle returns the opposite theme.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}
