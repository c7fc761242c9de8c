package popup

import tea "github.com/charmbracelet/bubbletea"

// Popup is a modal component drawn over the collection.
type Popup interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Popup, tea.Cmd)
	// View renders the content only; Render adds the border and centering.
	View() string
	SetSize(width, height int)
}
