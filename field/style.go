package field

import "github.com/charmbracelet/lipgloss"

// Style controls the field's rendering.
type Style struct {
	Text        lipgloss.Style
	Cursor      lipgloss.Style
	Selection   lipgloss.Style
	Placeholder lipgloss.Style
}

func DefaultStyle() Style {
	return Style{
		Text:        lipgloss.NewStyle(),
		Cursor:      lipgloss.NewStyle().Reverse(true),
		Selection:   lipgloss.NewStyle().Background(lipgloss.Color("237")),
		Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
}
