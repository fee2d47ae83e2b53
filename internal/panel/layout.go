package panel

import "github.com/NeonGeckoCom/neon-hub-config/models"

var titles = map[models.SectionKey]string{
	models.SectionGeneral:   "General Settings",
	models.SectionLogging:   "Logging Configuration",
	models.SectionUnits:     "Units of Measurement",
	models.SectionLocation:  "Location Settings",
	models.SectionAPIKeys:   "External API Keys",
	models.SectionHANA:      "HANA Configuration",
	models.SectionIRIS:      "IRIS Configuration",
	models.SectionSkills:    "Skills and Dependencies",
	models.SectionMQ:        "Message Queue Configuration",
	models.SectionWebsocket: "WebSocket Configuration",
}

// Title returns the heading of a section.
func Title(key models.SectionKey) string {
	if t, ok := titles[key]; ok {
		return t
	}
	return Label(string(key))
}

// DefaultLayout lists the sections of the Configuration tab in display order.
// MQ, websocket and skills stay editable through the Advanced tab only.
func DefaultLayout() []models.SectionKey {
	return []models.SectionKey{
		models.SectionGeneral,
		models.SectionLogging,
		models.SectionUnits,
		models.SectionLocation,
		models.SectionAPIKeys,
		models.SectionHANA,
		models.SectionIRIS,
	}
}

// BuildLayout renders every section of [DefaultLayout] present in sections.
func BuildLayout(sections func(models.SectionKey) (models.Section, bool)) []SectionView {
	layout := DefaultLayout()
	views := make([]SectionView, 0, len(layout))
	for _, key := range layout {
		data, ok := sections(key)
		if !ok {
			continue
		}
		views = append(views, BuildSection(key, "", data))
	}
	return views
}

// PlaceholderView is the static content of a tab without logic.
type PlaceholderView struct {
	Title string
	Text  string
	Link  *Link
}

var placeholders = map[models.Tab]PlaceholderView{
	models.TabServices: {
		Title: "Node Services",
		Text:  "Node services are managed through Yacht. Please refer to the Yacht interface for enabling and modifying services.",
	},
	models.TabDevices: {
		Title: "Connected Devices",
		Text:  "This feature is currently under development. It will display information about devices connected to the Hub.",
	},
	models.TabUpdates: {
		Title: "System Updates",
		Text:  "Hub services and updates are managed through Yacht. Please refer to the Yacht interface for enabling and modifying services.",
		Link: &Link{
			URL:  "https://neongeckocom.github.io/neon-hub-installer/services/",
			Text: "Yacht interface",
		},
	},
}

// Placeholder returns the static content of tab. ok is false for tabs with
// real panels.
func Placeholder(tab models.Tab) (PlaceholderView, bool) {
	p, ok := placeholders[tab]
	return p, ok
}
