package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Name       string
	Background lipgloss.Color
	Panel      lipgloss.Style
	Ring       lipgloss.Style
	Track      lipgloss.Style
	Alert      lipgloss.Style
	Clock      lipgloss.Style
	Label      lipgloss.Style
	Button     lipgloss.Style
	Disabled   lipgloss.Style
	Dim        lipgloss.Style
}

func newTheme(name string, bg, ring, track, alert, clock, label, button, dim lipgloss.Color) Theme {
	base := lipgloss.NewStyle().Background(bg)
	return Theme{
		Name:       name,
		Background: bg,
		Panel:      base,
		Ring:       base.Foreground(ring),
		Track:      base.Foreground(track),
		Alert:      base.Foreground(alert).Bold(true),
		Clock:      base.Foreground(clock).Bold(true),
		Label:      base.Foreground(label),
		Button: base.Foreground(button).Bold(true).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(button).
			BorderBackground(bg).
			Align(lipgloss.Center),
		Disabled: base.Foreground(dim).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(dim).
			BorderBackground(bg).
			Align(lipgloss.Center),
		Dim: base.Foreground(dim),
	}
}

var Themes = map[string]Theme{
	"default": newTheme("Default",
		lipgloss.Color("16"),  // black panel
		lipgloss.Color("208"), // orange ring
		lipgloss.Color("238"),
		lipgloss.Color("196"), // red alert
		lipgloss.Color("255"),
		lipgloss.Color("245"),
		lipgloss.Color("252"),
		lipgloss.Color("240"),
	),
	"dracula": newTheme("Dracula",
		lipgloss.Color("235"),
		lipgloss.Color("215"), // Orange
		lipgloss.Color("60"),  // Comment
		lipgloss.Color("203"), // Red
		lipgloss.Color("255"),
		lipgloss.Color("141"), // Purple
		lipgloss.Color("117"), // Cyan
		lipgloss.Color("60"),
	),
}

// CurrentTheme holds the currently active theme.
// We initialize it to default to avoid nil pointer dereferences.
var CurrentTheme = Themes["default"]

// SetTheme switches themes and reports whether name was known.
func SetTheme(name string) bool {
	if t, ok := Themes[name]; ok {
		CurrentTheme = t
		return true
	}
	return false
}
