// Package statspopup shows per-member completion for a category.
package statspopup

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/pccollector/internal/collection"
	"github.com/llehouerou/pccollector/internal/ui"
	"github.com/llehouerou/pccollector/internal/ui/action"
	"github.com/llehouerou/pccollector/internal/ui/popup"
	"github.com/llehouerou/pccollector/internal/ui/render"
	"github.com/llehouerou/pccollector/internal/ui/styles"
)

// Compile-time check that Model implements popup.Popup.
var _ popup.Popup = (*Model)(nil)

const (
	nameWidth = 12
	barWidth  = 20
)

// Close signals the popup should close.
type Close struct{}

// ActionType implements action.Action.
func (a Close) ActionType() string { return "statspopup.close" }

// Model is a read-only summary of one category.
type Model struct {
	ui.Base
	title   string
	total   collection.Stats
	members []collection.MemberStat
}

// New creates the popup for a category label and its aggregates.
func New(title string, total collection.Stats, members []collection.MemberStat) Model {
	return Model{title: title, total: total, members: members}
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc", "q", "t", "enter":
			return m, func() tea.Msg {
				return action.Msg{Source: "statspopup", Action: Close{}}
			}
		}
	}
	return m, nil
}

// View implements popup.Popup.
func (m *Model) View() string {
	s := styles.T().S()
	var b strings.Builder
	b.WriteString(s.Title.Render(m.title))
	b.WriteString("\n\n")
	b.WriteString(line("Total", m.total))
	if len(m.members) > 0 {
		b.WriteString("\n")
		b.WriteString(s.Subtle.Render(render.Separator(nameWidth + barWidth + 22)))
	}
	for _, ms := range m.members {
		b.WriteString("\n")
		b.WriteString(line(ms.Member, ms.Stats))
	}
	b.WriteString("\n\n")
	b.WriteString(s.Subtle.Render("esc close"))
	return b.String()
}

func line(name string, st collection.Stats) string {
	s := styles.T().S()
	counts := fmt.Sprintf("%3d/%-3d %3d%%", st.Owned, st.Total, st.Percent())
	wish := ""
	if st.Wishlisted > 0 {
		wish = s.WishRed.Render(fmt.Sprintf("  ♥ %d", st.Wishlisted))
	}
	return render.Fit(name, nameWidth) + " " +
		styles.ProgressBar(st.Percent(), barWidth) + " " +
		counts + wish
}
