package popupctl

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/pccollector/internal/collection"
	"github.com/llehouerou/pccollector/internal/ui/action"
	"github.com/llehouerou/pccollector/internal/ui/helpbindings"
	"github.com/llehouerou/pccollector/internal/ui/testutil"
)

func newManager() *Manager {
	m := New()
	m.SetSize(80, 24)
	return m
}

func TestManager_NoPopup(t *testing.T) {
	m := newManager()

	if m.ActivePopup() != None {
		t.Errorf("ActivePopup = %v, want None", m.ActivePopup())
	}
	if handled, _ := m.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}); handled {
		t.Error("expected key not handled")
	}
}

func TestManager_ErrorTakesPriorityAndDismisses(t *testing.T) {
	m := newManager()
	m.ShowHelp([]string{"global"})
	m.ShowError("boom")

	if m.ActivePopup() != Error {
		t.Fatalf("ActivePopup = %v, want Error", m.ActivePopup())
	}
	base := strings.Repeat(strings.Repeat(" ", 80)+"\n", 23) + strings.Repeat(" ", 80)
	if !strings.Contains(testutil.StripANSI(m.RenderOverlay(base)), "boom") {
		t.Error("error not rendered")
	}

	handled, cmd := m.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	if !handled || cmd != nil {
		t.Error("expected error dismissed without command")
	}
	if m.ActivePopup() != Help {
		t.Errorf("ActivePopup = %v, want Help", m.ActivePopup())
	}
}

func TestManager_RoutesKeysToActivePopup(t *testing.T) {
	m := newManager()
	m.ShowHelp([]string{"global"})

	handled, cmd := m.HandleKey(tea.KeyMsg{Type: tea.KeyEsc})
	if !handled || cmd == nil {
		t.Fatal("expected help to handle esc with a command")
	}
	msg, ok := cmd().(action.Msg)
	if !ok {
		t.Fatal("expected action.Msg")
	}
	if _, ok := msg.Action.(helpbindings.Close); !ok {
		t.Errorf("action = %T, want helpbindings.Close", msg.Action)
	}

	m.Hide(Help)
	if m.IsVisible(Help) {
		t.Error("help still visible after Hide")
	}
}

func TestManager_TextInputTracksMode(t *testing.T) {
	m := newManager()
	m.ShowTextInput(InputImportPath, "Import backup", "", "path", nil)

	if m.InputMode() != InputImportPath || !m.IsVisible(TextInput) {
		t.Fatal("text input not visible")
	}

	m.Hide(TextInput)
	if m.InputMode() != InputNone || m.IsVisible(TextInput) {
		t.Error("text input still visible after Hide")
	}
}

func TestManager_RenderOverlayDrawsPopups(t *testing.T) {
	m := newManager()
	base := strings.Repeat(strings.Repeat(".", 80)+"\n", 23) + strings.Repeat(".", 80)
	m.ShowStats("Korean Albums", collection.Stats{Owned: 1, Total: 2}, nil)

	out := testutil.StripANSI(m.RenderOverlay(base))
	if !strings.Contains(out, "Korean Albums") {
		t.Error("stats popup not rendered")
	}
	if !strings.HasPrefix(out, "....") {
		t.Error("base not kept around the popup")
	}
}
