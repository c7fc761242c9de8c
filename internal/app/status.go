package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/llehouerou/pccollector/internal/backup"
	"github.com/llehouerou/pccollector/internal/ui/render"
	"github.com/llehouerou/pccollector/internal/ui/styles"
)

// flashKind selects the color of a transient status message.
type flashKind int

const (
	flashInfo flashKind = iota
	flashSuccess
	flashError
)

// flash shows text in the status line until the fade window expires.
func (m *Model) flash(text string, kind flashKind) tea.Cmd {
	m.flashText = text
	m.flashKind = kind
	return m.fade.Arm(m.now())
}

// flashError logs a failed save and reports it in the error popup. The
// in-memory state is kept so the session can continue.
func (m *Model) flashError(text string, err error) tea.Cmd {
	m.log.Error(text, zap.Error(err))
	m.popups.ShowError(text)
	return nil
}

// statusText picks the status line message and its style. An armed bulk
// action wins, then the undo window, then a transient message, then the
// age of the last backup.
func (m *Model) statusText() (string, func(...string) string) {
	s := styles.T().S()
	now := m.now()

	if label := m.bulkLabel(); label != "" {
		return label, s.Warning.Render
	}
	if m.undo.Armed(now) {
		return backup.ImportSucceeded(m.undo.RemainingSeconds(now)), s.Success.Render
	}
	if m.flashText != "" {
		switch m.flashKind {
		case flashSuccess:
			return m.flashText, s.Success.Render
		case flashError:
			return m.flashText, s.Error.Render
		}
		return m.flashText, s.Base.Render
	}

	st := backup.StatusAt(m.meta.LastBackupTime(), now)
	switch st.Kind { //nolint:exhaustive // completed is only ever flashed
	case backup.StatusStale:
		return st.Text, s.Warning.Render
	case backup.StatusNever:
		return st.Text, s.Subtle.Render
	}
	return st.Text, s.Muted.Render
}

func (m *Model) statusLine() string {
	text, style := m.statusText()
	return style(render.Fit(" "+text, m.width))
}
