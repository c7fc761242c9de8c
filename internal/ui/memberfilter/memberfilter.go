// Package memberfilter provides the checkbox popup that hides or shows
// members' items.
package memberfilter

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/pccollector/internal/collection"
	"github.com/llehouerou/pccollector/internal/ui"
	"github.com/llehouerou/pccollector/internal/ui/cursor"
	"github.com/llehouerou/pccollector/internal/ui/popup"
	"github.com/llehouerou/pccollector/internal/ui/render"
	"github.com/llehouerou/pccollector/internal/ui/styles"
)

// Compile-time check that Model implements popup.Popup.
var _ popup.Popup = (*Model)(nil)

// Model is the member checkbox list.
type Model struct {
	ui.Base
	members []string
	filter  collection.MemberFilter
	cursor  cursor.Cursor
}

// New creates a popup over members, starting from a copy of filter.
func New(members []string, filter collection.MemberFilter) Model {
	f := make(collection.MemberFilter, len(filter))
	for k, v := range filter {
		f[k] = v
	}
	return Model{
		members: members,
		filter:  f,
		cursor:  cursor.New(1),
	}
}

// Filter returns the popup's current filter.
func (m *Model) Filter() collection.MemberFilter {
	return m.filter
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	key := keyMsg.String()
	switch key {
	case "esc", "enter", "m", "q":
		return m, func() tea.Msg { return ActionMsg(Close{}) }
	case " ", "x":
		if len(m.members) == 0 {
			return m, nil
		}
		m.filter.Toggle(m.members[m.cursor.Pos()])
		return m, m.changed()
	case "a":
		for _, member := range m.members {
			m.filter[member] = true
		}
		return m, m.changed()
	case "n":
		for _, member := range m.members {
			m.filter[member] = false
		}
		return m, m.changed()
	}

	m.cursor.HandleKey(key, len(m.members), m.listHeight())
	return m, nil
}

func (m *Model) changed() tea.Cmd {
	f := make(collection.MemberFilter, len(m.filter))
	for k, v := range m.filter {
		f[k] = v
	}
	return func() tea.Msg { return ActionMsg(Changed{Filter: f}) }
}

func (m *Model) listHeight() int {
	// title, hint, blank lines and the box border
	return max(m.Height()-10, 3)
}

// View implements popup.Popup.
func (m *Model) View() string {
	s := styles.T().S()
	var b strings.Builder
	b.WriteString(s.Title.Render("Members"))
	b.WriteString("\n\n")

	if len(m.members) == 0 {
		b.WriteString(s.Muted.Render("No members in this category"))
	}

	start, end := m.cursor.VisibleRange(len(m.members), m.listHeight())
	for i := start; i < end; i++ {
		member := m.members[i]
		box := "[ ]"
		if m.filter.Visible(member) {
			box = s.Owned.Render("[x]")
		}
		line := box + " " + render.Truncate(member, 24)
		if i == m.cursor.Pos() {
			line = s.Cursor.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		if i < end-1 {
			b.WriteString("\n")
		}
	}

	b.WriteString("\n\n")
	b.WriteString(s.Subtle.Render("space toggle · a all · n none · esc close"))
	return b.String()
}
