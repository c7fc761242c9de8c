// Package textinput provides a single-line text prompt popup.
package textinput

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/pccollector/internal/ui"
	"github.com/llehouerou/pccollector/internal/ui/popup"
	"github.com/llehouerou/pccollector/internal/ui/styles"
)

// Compile-time check that Model implements popup.Popup.
var _ popup.Popup = (*Model)(nil)

// Model is a prompt with a title, an input line and a key hint.
type Model struct {
	ui.Base
	title   string
	input   textinput.Model
	context any
}

// New creates an empty prompt.
func New() Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 1024
	return Model{input: ti}
}

// Start opens the prompt with a title and initial text.
// context is handed back unchanged in the Result.
func (m *Model) Start(title, initialText, placeholder string, context any, width, height int) {
	m.title = title
	m.context = context
	m.input.Placeholder = placeholder
	m.input.SetValue(initialText)
	m.input.CursorEnd()
	m.input.Focus()
	m.SetSize(width, height)
}

// SetSize implements popup.Popup.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.input.Width = max(min(width-12, 72), 10)
}

// Value returns the current text.
func (m *Model) Value() string {
	return m.input.Value()
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEsc:
			ctx := m.context
			return m, func() tea.Msg {
				return ActionMsg(Result{Canceled: true, Context: ctx})
			}
		case tea.KeyEnter:
			text := strings.TrimSpace(m.input.Value())
			ctx := m.context
			return m, func() tea.Msg {
				return ActionMsg(Result{Text: text, Context: ctx})
			}
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements popup.Popup.
func (m *Model) View() string {
	title := lipgloss.NewStyle().Bold(true).Foreground(styles.T().Primary).Render(m.title)
	hint := styles.T().S().Subtle.Render("enter confirm · esc cancel")
	return title + "\n\n" + m.input.View() + "\n\n" + hint
}
