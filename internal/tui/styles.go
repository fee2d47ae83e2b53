package tui

import "github.com/charmbracelet/lipgloss"

var (
	accent  = lipgloss.AdaptiveColor{Light: "#C2410C", Dark: "#FB923C"}
	danger  = lipgloss.AdaptiveColor{Light: "#B91C1C", Dark: "#F87171"}
	success = lipgloss.AdaptiveColor{Light: "#15803D", Dark: "#4ADE80"}

	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true).Foreground(accent)
	sectionStyle    = lipgloss.NewStyle().Bold(true).Foreground(accent)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(danger)
	okStyle         = lipgloss.NewStyle().Foreground(success)
	cursorStyle     = lipgloss.NewStyle().Bold(true).Foreground(accent)
	tabStyle        = lipgloss.NewStyle().Faint(true).Padding(0, 1)
	activeTabStyle  = lipgloss.NewStyle().Bold(true).Underline(true).Foreground(accent).Padding(0, 1)
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(accent).Padding(1, 2)
)
