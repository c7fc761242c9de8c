// Package testutil provides helpers for testing rendered terminal output.
package testutil

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// StripANSI removes escape sequences so rendered output can be compared as text.
func StripANSI(s string) string {
	return ansi.Strip(s)
}

// Width returns the display width of s, ignoring escape sequences.
func Width(s string) int {
	return ansi.StringWidth(s)
}

// Lines strips s and splits it into lines, dropping trailing blank lines.
func Lines(s string) []string {
	lines := strings.Split(StripANSI(s), "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// FindLine returns the first stripped line containing substr, or "".
func FindLine(output, substr string) string {
	for _, line := range Lines(output) {
		if strings.Contains(line, substr) {
			return line
		}
	}
	return ""
}

// CountLines counts the non-blank lines of output.
func CountLines(output string) int {
	n := 0
	for _, line := range Lines(output) {
		if strings.TrimSpace(line) != "" {
			n++
		}
	}
	return n
}

// AssertContains returns a failure message if stripped output lacks substr.
func AssertContains(output, substr string) string {
	if !strings.Contains(StripANSI(output), substr) {
		return "expected output to contain " + substr
	}
	return ""
}

// AssertNotContains returns a failure message if stripped output has substr.
func AssertNotContains(output, substr string) string {
	if strings.Contains(StripANSI(output), substr) {
		return "expected output to NOT contain " + substr
	}
	return ""
}
