// Package overlay composes a foreground layer over a rendered screen.
package overlay

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Compose draws the non-blank span of each overlay line over the matching
// base line. Leading and trailing spaces of the overlay are transparent.
// Both layers may contain ANSI styling.
func Compose(base, top string, width int) string {
	baseLines := strings.Split(base, "\n")

	for i, line := range strings.Split(top, "\n") {
		if i >= len(baseLines) {
			break
		}
		plain := ansi.Strip(line)
		trimmed := strings.TrimLeft(plain, " ")
		if strings.TrimSpace(trimmed) == "" {
			continue
		}

		start := len(plain) - len(trimmed)
		end := start + ansi.StringWidth(strings.TrimRight(trimmed, " "))

		under := baseLines[i]
		if w := ansi.StringWidth(under); w < width {
			under += strings.Repeat(" ", width-w)
		}

		composed := padTo(ansi.Cut(under, 0, start), start) + ansi.Cut(line, start, end)
		if end < width {
			composed += ansi.Cut(under, end, width)
		}
		baseLines[i] = composed
	}

	return strings.Join(baseLines, "\n")
}

// padTo right-pads s when cutting through a wide character left it short.
func padTo(s string, width int) string {
	if w := ansi.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
