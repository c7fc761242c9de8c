// Package popupctl owns the modal popups drawn over the collection.
package popupctl

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/pccollector/internal/collection"
	"github.com/llehouerou/pccollector/internal/ui/confirm"
	"github.com/llehouerou/pccollector/internal/ui/helpbindings"
	"github.com/llehouerou/pccollector/internal/ui/memberfilter"
	"github.com/llehouerou/pccollector/internal/ui/overlay"
	"github.com/llehouerou/pccollector/internal/ui/popup"
	"github.com/llehouerou/pccollector/internal/ui/statspopup"
	"github.com/llehouerou/pccollector/internal/ui/styles"
	"github.com/llehouerou/pccollector/internal/ui/textinput"
)

// Manager manages all modal popups and overlays.
type Manager struct {
	popups    map[Type]popup.Popup
	inputMode InputMode
	errorMsg  string
	width     int
	height    int
}

// New creates a new Manager.
func New() *Manager {
	return &Manager{popups: make(map[Type]popup.Popup)}
}

// SetSize updates the dimensions for popup rendering.
func (p *Manager) SetSize(width, height int) {
	p.width = width
	p.height = height
	for _, pop := range p.popups {
		pop.SetSize(width, height)
	}
}

// IsVisible returns true if the specified popup type is visible.
func (p *Manager) IsVisible(t Type) bool {
	switch t {
	case None:
		return false
	case Error:
		return p.errorMsg != ""
	case TextInput:
		return p.inputMode != InputNone && p.popups[t] != nil
	case Help, Confirm, MemberFilter, Stats:
		return p.popups[t] != nil
	}
	return false
}

// ActivePopup returns which popup is currently active (highest priority).
func (p *Manager) ActivePopup() Type {
	for _, t := range Priority {
		if p.IsVisible(t) {
			return t
		}
	}
	return None
}

// Show displays a popup of the given type.
func (p *Manager) Show(t Type, pop popup.Popup) tea.Cmd {
	pop.SetSize(p.width, p.height)
	p.popups[t] = pop
	return pop.Init()
}

// Hide hides the specified popup type.
func (p *Manager) Hide(t Type) {
	switch t {
	case None:
	case Error:
		p.errorMsg = ""
	case TextInput:
		p.inputMode = InputNone
		delete(p.popups, t)
	case Help, Confirm, MemberFilter, Stats:
		delete(p.popups, t)
	}
}

// Get retrieves a popup for type assertion when needed.
func (p *Manager) Get(t Type) popup.Popup {
	return p.popups[t]
}

// --- Show Methods (convenience wrappers) ---

// ShowHelp displays the help popup with the given contexts.
func (p *Manager) ShowHelp(contexts []string) tea.Cmd {
	help := helpbindings.New()
	help.SetContexts(contexts)
	return p.Show(Help, &help)
}

// ShowConfirm displays a confirmation dialog.
func (p *Manager) ShowConfirm(title, message string, context any) tea.Cmd {
	c := confirm.New()
	c.Show(title, message, context, p.width, p.height)
	return p.Show(Confirm, &c)
}

// ShowTextInput displays a text input popup.
func (p *Manager) ShowTextInput(mode InputMode, title, value, placeholder string, context any) tea.Cmd {
	p.inputMode = mode
	ti := textinput.New()
	ti.Start(title, value, placeholder, context, p.width, p.height)
	return p.Show(TextInput, &ti)
}

// ShowMemberFilter displays the member checkbox list.
func (p *Manager) ShowMemberFilter(members []string, filter collection.MemberFilter) tea.Cmd {
	mf := memberfilter.New(members, filter)
	return p.Show(MemberFilter, &mf)
}

// ShowStats displays the per-member statistics popup.
func (p *Manager) ShowStats(title string, total collection.Stats, members []collection.MemberStat) tea.Cmd {
	st := statspopup.New(title, total, members)
	return p.Show(Stats, &st)
}

// ShowError displays an error message popup.
func (p *Manager) ShowError(msg string) {
	p.errorMsg = msg
}

// --- Accessors ---

// InputMode returns the current input mode.
func (p *Manager) InputMode() InputMode {
	return p.inputMode
}

// ErrorMsg returns the current error message.
func (p *Manager) ErrorMsg() string {
	return p.errorMsg
}

// --- Key Handling ---

// HandleKey routes key events to the active popup.
// Returns (handled, cmd) where handled is true if a popup consumed the key.
func (p *Manager) HandleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	// Error popup: dismiss on any key
	if p.errorMsg != "" {
		p.errorMsg = ""
		return true, nil
	}

	active := p.ActivePopup()
	if active == None {
		return false, nil
	}

	pop := p.popups[active]
	updated, cmd := pop.Update(msg)
	p.popups[active] = updated
	return true, cmd
}

// Update forwards non-key messages, such as cursor blinks, to the active popup.
func (p *Manager) Update(msg tea.Msg) tea.Cmd {
	active := p.ActivePopup()
	if active == None || active == Error {
		return nil
	}
	updated, cmd := p.popups[active].Update(msg)
	p.popups[active] = updated
	return cmd
}

// --- Rendering ---

// RenderOverlay renders active popup(s) on top of the base view.
func (p *Manager) RenderOverlay(base string) string {
	for _, t := range RenderOrder {
		if !p.IsVisible(t) {
			continue
		}
		if t == Error {
			base = overlay.Compose(base, p.renderError(), p.width)
			continue
		}
		base = popup.Render(base, p.popups[t], p.width, p.height)
	}
	return base
}

func (p *Manager) renderError() string {
	s := styles.T().S()
	content := s.Error.Bold(true).Render("Error") + "\n\n" +
		p.errorMsg + "\n\n" +
		s.Subtle.Render("Press any key to dismiss")
	return popup.Center(popup.Box(content, p.width, p.height), p.width, p.height)
}
