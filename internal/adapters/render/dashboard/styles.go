package dashboard

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title      lipgloss.Style
	header     lipgloss.Style
	empty      lipgloss.Style
	section    lipgloss.Style
	task       lipgloss.Style
	detail     lipgloss.Style
	shortcut   lipgloss.Style
	barFill    lipgloss.Style
	barEmpty   lipgloss.Style
	barBracket lipgloss.Style
	chartLabel lipgloss.Style
	chartZero  lipgloss.Style
	chartCell  lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:      lipgloss.NewStyle().Bold(true),
		header:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		empty:      lipgloss.NewStyle().Faint(true),
		section:    lipgloss.NewStyle().MarginTop(1),
		task:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		detail:     lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		shortcut:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		barFill:    lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
		barEmpty:   lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		barBracket: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		chartLabel: lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		chartZero:  lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		chartCell:  lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
	}
}
