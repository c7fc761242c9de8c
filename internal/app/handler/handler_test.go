package handler

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/pccollector/internal/keymap"
)

func TestResults(t *testing.T) {
	if NotHandled.Handled || NotHandled.Cmd != nil {
		t.Error("NotHandled should be unhandled without command")
	}
	if !HandledNoCmd.Handled || HandledNoCmd.Cmd != nil {
		t.Error("HandledNoCmd should be handled without command")
	}
	cmd := func() tea.Msg { return "x" }
	if r := Handled(cmd); !r.Handled || r.Cmd == nil {
		t.Error("Handled(cmd) should carry the command")
	}
}

func TestChain_NoHandlers(t *testing.T) {
	handled, cmd := Chain(keymap.ActionQuit)
	if handled || cmd != nil {
		t.Error("Chain with no handlers should not handle")
	}
}

func TestChain_EmptyActionSkipsHandlers(t *testing.T) {
	called := false
	h := func(keymap.Action) Result {
		called = true
		return HandledNoCmd
	}

	if handled, _ := Chain("", h); handled {
		t.Error("empty action should not be handled")
	}
	if called {
		t.Error("handlers should not run for an empty action")
	}
}

func TestChain_StopsAtFirstHandler(t *testing.T) {
	var calls []string
	filter := func(a keymap.Action) Result {
		calls = append(calls, "filter")
		if a == keymap.ActionCycleOwnedFilter {
			return Handled(func() tea.Msg { return "filtered" })
		}
		return NotHandled
	}
	collection := func(keymap.Action) Result {
		calls = append(calls, "collection")
		return HandledNoCmd
	}

	handled, cmd := Chain(keymap.ActionCycleOwnedFilter, filter, collection)
	if !handled || cmd == nil || cmd() != "filtered" {
		t.Fatal("expected the filter handler's command")
	}
	if len(calls) != 1 {
		t.Errorf("calls = %v, want only filter", calls)
	}

	calls = nil
	handled, cmd = Chain(keymap.ActionToggleOwned, filter, collection)
	if !handled || cmd != nil {
		t.Error("expected collection handler without command")
	}
	if len(calls) != 2 {
		t.Errorf("calls = %v, want both", calls)
	}
}
