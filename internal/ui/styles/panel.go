package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// TileStyle returns the bordered box used for cards and grid tiles.
// The tile under the cursor gets the focus border.
func TileStyle(focused bool) lipgloss.Style {
	color := T().Border
	if focused {
		color = T().BorderFocus
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(color)
}

// ProgressBar renders a width-cell bar filled to percent.
func ProgressBar(percent, width int) string {
	width = max(width, 1)
	filled := max(0, min(width, percent*width/100))
	s := T().S()
	return s.Owned.Render(strings.Repeat("█", filled)) + s.Subtle.Render(strings.Repeat("░", width-filled))
}

