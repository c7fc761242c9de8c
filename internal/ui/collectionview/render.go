package collectionview

import (
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/pccollector/internal/collection"
	"github.com/llehouerou/pccollector/internal/ui"
	"github.com/llehouerou/pccollector/internal/ui/render"
	"github.com/llehouerou/pccollector/internal/ui/styles"
	"github.com/llehouerou/pccollector/internal/view"
)

const (
	checkOn      = "[x]"
	checkOff     = "[ ]"
	memberWidth  = 12
	expandedMark = "▾"
	collapseMark = "▸"
)

// EmptyText is shown when nothing passes the filters.
const EmptyText = "No cards match the current filters"

// View renders the visible units, padded to the view height.
func (m *Model) View() string {
	width, height := m.Width(), m.Height()
	if width <= 0 || height <= 0 {
		return ""
	}

	var lines []string
	if m.doc.Empty || len(m.units) == 0 {
		lines = append(lines, render.Center(styles.T().S().Muted.Render(EmptyText), width))
	} else {
		start, end := m.cursor.VisibleRange(len(m.units), m.viewport())
		for i := start; i < end; i++ {
			lines = append(lines, m.renderUnit(i)...)
		}
	}

	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines[:height], "\n")
}

func (m *Model) renderUnit(i int) []string {
	u := m.units[i]
	focused := -1
	if i == m.cursor.Pos() {
		focused = min(m.col, len(u.entries)-1)
	}

	first := u.entries[0]
	sec := m.doc.Sections[first.section]
	if first.IsHeader() {
		return m.renderHeader(sec, focused == 0)
	}

	switch m.doc.Mode {
	case view.ModeCards:
		return m.renderCard(sec.Rows[first.row], focused == 0)
	case view.ModeGrid:
		return m.renderTiles(sec, u.entries, focused)
	}
	return []string{m.renderListRow(sec.Rows[first.row], focused == 0)}
}

func (m *Model) renderHeader(sec view.Section, focused bool) []string {
	s := styles.T().S()
	width := m.Width()

	mark := expandedMark
	if sec.Collapsed {
		mark = collapseMark
	}
	left := mark + " " + render.Sanitize(sec.Album)
	right := sec.HeaderText
	if sec.Pending != "" {
		right = sec.Pending + "  " + right
	}

	leftWidth := max(width-lipgloss.Width(right)-3, 4)
	line := render.Row(render.Truncate(left, leftWidth), right, width-1)
	style := s.Header
	if focused {
		style = style.Background(styles.T().BgCursor)
	}
	lines := []string{style.Render(" " + line)}
	if m.unitHeight() == 2 {
		lines = append(lines, s.Subtle.Render(render.Separator(width)))
	}
	return lines
}

func (m *Model) renderListRow(r view.Row, focused bool) string {
	width := m.Width()
	// marker, check, spaces, member column, wish mark
	nameWidth := max(width-(2+3+1+1+memberWidth+1+2), 8)

	text := marker(focused) + check(r.Owned) + " " +
		render.Fit(r.Name, nameWidth) + " " +
		render.Fit(r.Member, memberWidth) + " "
	return styleRow(r, focused, text) + wishMark(r.Wish)
}

func (m *Model) renderCard(r view.Row, focused bool) []string {
	width := m.Width()
	title := marker(focused) + check(r.Owned) + " " + render.Truncate(r.Name, max(width-9, 4)) + " "

	detail := []string{}
	if r.Member != "" {
		detail = append(detail, r.Member)
	}
	detail = append(detail, r.ID)
	if r.Image != "" {
		detail = append(detail, filepath.Base(r.Image))
	}
	sub := "      " + render.Truncate(strings.Join(detail, " · "), max(width-6, 4))

	return []string{
		styleRow(r, focused, title) + wishMark(r.Wish),
		styles.T().S().Muted.Render(sub),
	}
}

func (m *Model) renderTiles(sec view.Section, entries []Entry, focused int) []string {
	inner := ui.GridTileWidth - 2
	var top, bottom strings.Builder
	for i, e := range entries {
		r := sec.Rows[e.row]
		name := check(r.Owned) + " " + render.Truncate(r.Name, inner-6)
		name = render.Pad(name, inner-2)
		top.WriteString(" ")
		top.WriteString(styleRow(r, i == focused, name))
		top.WriteString(padWish(r.Wish))
		top.WriteString(" ")

		bottom.WriteString(" ")
		bottom.WriteString(styles.T().S().Muted.Render(render.Fit("    "+r.Member, inner)))
		bottom.WriteString(" ")
	}
	return []string{top.String(), bottom.String()}
}

func check(owned bool) string {
	if owned {
		return checkOn
	}
	return checkOff
}

func styleRow(r view.Row, focused bool, text string) string {
	s := styles.T().S()
	style := s.Base
	if r.Owned {
		style = s.Owned
	}
	if focused {
		style = style.Background(styles.T().BgCursor)
	}
	return style.Render(text)
}

func marker(focused bool) string {
	if focused {
		return "> "
	}
	return "  "
}

func wishMark(w collection.WishState) string {
	s := styles.T().S()
	switch w {
	case collection.WishRed:
		return s.WishRed.Render("♥")
	case collection.WishGold:
		return s.WishGold.Render("★")
	}
	return ""
}

// padWish is wishMark padded to two cells so tiles line up.
func padWish(w collection.WishState) string {
	if w == collection.WishUnset {
		return "  "
	}
	return wishMark(w) + " "
}
