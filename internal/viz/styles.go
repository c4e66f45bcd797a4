package viz

import "github.com/charmbracelet/lipgloss"

type styles struct {
	board  lipgloss.Style
	stats  lipgloss.Style
	header lipgloss.Style
	label  lipgloss.Style
	value  lipgloss.Style
	graph  lipgloss.Style
	paused lipgloss.Style
	help   lipgloss.Style
}

func newStyles(t Theme) styles {
	return styles{
		board:  lipgloss.NewStyle().Foreground(t.Alive).Border(lipgloss.RoundedBorder()).BorderForeground(t.Border),
		stats:  lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(t.Border).Padding(0, 2).Width(44),
		header: lipgloss.NewStyle().Foreground(t.Header).Bold(true).MarginBottom(1),
		label:  lipgloss.NewStyle().Foreground(t.Label).Width(12),
		value:  lipgloss.NewStyle().Foreground(t.Value),
		graph:  lipgloss.NewStyle().Foreground(t.Graph).Padding(1, 0),
		paused: lipgloss.NewStyle().Foreground(t.Paused).Bold(true),
		help:   lipgloss.NewStyle().Foreground(t.Label).MarginTop(1),
	}
}
