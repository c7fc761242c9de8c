// Package headerbar renders the category tab line.
package headerbar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/pccollector/internal/ui/render"
	"github.com/llehouerou/pccollector/internal/ui/styles"
)

// Height is the fixed height of the header bar (single line).
const Height = 1

// Title is the application name shown left of the tabs.
const Title = "PC Collector"

// Tab is one category tab.
type Tab struct {
	Key     string // "F1"
	Label   string // "Korean Albums"
	Percent int    // completion of the category
}

// Render returns the header bar for the given width. Tabs are dropped from
// the right when they do not fit; the active tab is always kept.
func Render(tabs []Tab, active, width int) string {
	if width < 20 {
		return ""
	}
	t := styles.T()
	s := t.S()

	title := styles.Gradient(Title, t.Primary, t.Secondary)
	separator := s.Subtle.Render(" │ ")

	parts := make([]string, 0, len(tabs))
	for i, tab := range tabs {
		parts = append(parts, renderTab(tab, i == active))
	}

	// Drop trailing tabs other than the active one until the line fits.
	line := title + separator + strings.Join(parts, separator)
	for i := len(parts) - 1; i >= 0 && lipgloss.Width(line) > width; i-- {
		if i == active {
			continue
		}
		parts = append(parts[:i], parts[i+1:]...)
		line = title + separator + strings.Join(parts, separator)
	}
	if lipgloss.Width(line) > width {
		line = strings.Join(parts, separator)
	}

	return render.FitStyled(line, width)
}

func renderTab(tab Tab, active bool) string {
	t := styles.T()
	keyStyle := lipgloss.NewStyle().Foreground(t.FgSubtle)
	nameStyle := lipgloss.NewStyle().Foreground(t.FgMuted)
	if active {
		keyStyle = lipgloss.NewStyle().Foreground(t.Primary).Bold(true)
		nameStyle = keyStyle
	}
	pct := t.S().Muted.Render(fmt.Sprintf("%d%%", tab.Percent))
	if tab.Percent >= 100 {
		pct = t.S().Owned.Render("100%")
	}
	return keyStyle.Render(tab.Key) + " " + nameStyle.Render(tab.Label) + " " + pct
}
