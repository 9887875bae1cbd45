package styles

import "github.com/charmbracelet/lipgloss"

// PanelStyle returns the rounded panel border, highlighted when focused.
func PanelStyle(focused bool) lipgloss.Style {
	color := T().Border
	if focused {
		color = T().BorderFocus
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(color)
}

// Panel renders content inside a bordered panel of the given outer size.
func Panel(content string, width, height int, focused bool) string {
	return PanelStyle(focused).
		Width(max(width-2, 0)).
		Height(max(height-2, 0)).
		MaxHeight(max(height, 0)).
		Render(content)
}
