// Package popup renders modal boxes centered over the screen.
package popup

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/pccollector/internal/ui/overlay"
	"github.com/llehouerou/pccollector/internal/ui/styles"
)

// chrome is the border plus horizontal padding around popup content.
const chrome = 2 + 4

// Box wraps content in a rounded border, limited to the screen size.
func Box(content string, screenW, screenH int) string {
	width := min(maxLineWidth(content)+chrome, max(screenW-2, chrome+1))
	lines := strings.Split(content, "\n")
	if limit := screenH - 4; limit > 0 && len(lines) > limit {
		lines = lines[:limit]
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.T().BorderFocus).
		Padding(0, 2).
		Width(width - 2).
		Render(strings.Join(lines, "\n"))
}

// Center places box in the middle of a screenW x screenH area.
func Center(box string, screenW, screenH int) string {
	return lipgloss.Place(screenW, screenH, lipgloss.Center, lipgloss.Center, box,
		lipgloss.WithWhitespaceChars(" "))
}

// Render draws p on top of base.
func Render(base string, p Popup, screenW, screenH int) string {
	box := Center(Box(p.View(), screenW, screenH), screenW, screenH)
	return overlay.Compose(base, box, screenW)
}

func maxLineWidth(s string) int {
	w := 0
	for line := range strings.SplitSeq(s, "\n") {
		w = max(w, lipgloss.Width(line))
	}
	return w
}
