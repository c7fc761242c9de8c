// Package action defines how UI components report results to the app.
package action

import tea "github.com/charmbracelet/bubbletea"

// Action is a result emitted by a UI component.
// ActionType returns an identifier used in logs.
type Action interface {
	ActionType() string
}

// Msg wraps an action with the name of the component that emitted it.
type Msg struct {
	Source string // "textinput", "memberfilter", "help", ...
	Action Action
}

var _ tea.Msg = Msg{}
