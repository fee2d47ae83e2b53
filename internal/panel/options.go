package panel

import "github.com/NeonGeckoCom/neon-hub-config/models"

type selectDef struct {
	choices []Option
	hints   map[string]string
}

// options returns the fixed choices, plus current when the backend holds a
// value outside them so selecting never drops it silently.
func (s selectDef) options(current string) []Option {
	out := make([]Option, len(s.choices), len(s.choices)+1)
	copy(out, s.choices)
	if current == "" {
		return out
	}
	for _, o := range s.choices {
		if o.Value == current {
			return out
		}
	}
	return append(out, Option{Value: current, Label: current})
}

var selects = map[string]selectDef{
	models.KeyLogLevel: {
		choices: []Option{
			{Value: "DEBUG", Label: "DEBUG"},
			{Value: "INFO", Label: "INFO"},
			{Value: "WARNING", Label: "WARNING"},
			{Value: "ERROR", Label: "ERROR"},
			{Value: "CRITICAL", Label: "CRITICAL"},
		},
	},
	models.KeySystemUnit: {
		choices: []Option{
			{Value: "metric", Label: "Metric"},
			{Value: "imperial", Label: "Imperial"},
		},
		hints: map[string]string{
			"metric":   "Example: metric (uses kilometers, Celsius)",
			"imperial": "Example: imperial (uses miles, Fahrenheit)",
		},
	},
	models.KeyTimeFormat: {
		choices: []Option{
			{Value: "half", Label: "12-hour"},
			{Value: "full", Label: "24-hour"},
		},
		hints: map[string]string{
			"half": "Example: half (12-hour format, e.g., 3:00 PM)",
			"full": "Example: full (24-hour format, e.g., 15:00)",
		},
	},
}

var apiKeyPages = map[string]string{
	"alpha_vantage":    "https://www.alphavantage.co/support/#api-key",
	"open_weather_map": "https://home.openweathermap.org/appid",
	"wolfram_alpha":    "https://products.wolframalpha.com/api/",
}

func linkFor(section models.SectionKey, key string) *Link {
	switch {
	case key == models.KeyLogLevel:
		return &Link{
			URL:  "https://docs.python.org/3/library/logging.html#logging-levels",
			Text: "View LOG_LEVEL documentation",
		}
	case key == "timezone":
		return &Link{
			URL:  "https://en.wikipedia.org/wiki/List_of_tz_database_time_zones",
			Text: "View list of valid timezones",
		}
	case section == models.SectionAPIKeys:
		if url, ok := apiKeyPages[key]; ok {
			return &Link{URL: url, Text: "Get " + Label(key) + " API key"}
		}
	}
	return nil
}
