package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines color scheme for the TUI
type Theme struct {
	Name   string
	Alive  lipgloss.Color
	Border lipgloss.Color
	Header lipgloss.Color
	Label  lipgloss.Color
	Value  lipgloss.Color
	Graph  lipgloss.Color
	Paused lipgloss.Color
}

var (
	ThemeRetroGreen = Theme{
		Name:   "retro",
		Alive:  lipgloss.Color("#00ff00"), // Green phosphor
		Border: lipgloss.Color("#005500"),
		Header: lipgloss.Color("#88ff88"),
		Label:  lipgloss.Color("#00aa00"),
		Value:  lipgloss.Color("#00ff00"),
		Graph:  lipgloss.Color("#00cc00"),
		Paused: lipgloss.Color("#ffff00"),
	}

	ThemeCyberpunk = Theme{
		Name:   "cyberpunk",
		Alive:  lipgloss.Color("#ff00ff"),
		Border: lipgloss.Color("#444466"),
		Header: lipgloss.Color("#00ffff"),
		Label:  lipgloss.Color("#888899"),
		Value:  lipgloss.Color("#00ccff"),
		Graph:  lipgloss.Color("#ff00ff"),
		Paused: lipgloss.Color("#ffaa00"),
	}

	ThemeMinimal = Theme{
		Name:   "minimal",
		Alive:  lipgloss.Color("#ffffff"),
		Border: lipgloss.Color("240"),
		Header: lipgloss.Color("86"),
		Label:  lipgloss.Color("245"),
		Value:  lipgloss.Color("252"),
		Graph:  lipgloss.Color("49"),
		Paused: lipgloss.Color("205"),
	}

	Themes = []Theme{
		ThemeRetroGreen,
		ThemeCyberpunk,
		ThemeMinimal,
	}
)

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
