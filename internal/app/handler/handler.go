// Package handler chains key-action handlers.
package handler

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/pccollector/internal/keymap"
)

// Result represents the outcome of a handler.
type Result struct {
	Handled bool
	Cmd     tea.Cmd
}

// NotHandled is returned when a handler does not own the action.
var NotHandled = Result{}

// HandledNoCmd is returned by handlers that act without a command.
var HandledNoCmd = Result{Handled: true}

// Handled creates a Result for a handled action with a command.
func Handled(cmd tea.Cmd) Result {
	return Result{Handled: true, Cmd: cmd}
}

// Handler attempts to handle a resolved action.
type Handler func(a keymap.Action) Result

// Chain offers a to each handler in order until one handles it.
// An empty action is never handled.
func Chain(a keymap.Action, handlers ...Handler) (bool, tea.Cmd) {
	if a == "" {
		return false, nil
	}
	for _, h := range handlers {
		if r := h(a); r.Handled {
			return true, r.Cmd
		}
	}
	return false, nil
}
