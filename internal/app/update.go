package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/llehouerou/pccollector/internal/app/handler"
	"github.com/llehouerou/pccollector/internal/app/popupctl"
	"github.com/llehouerou/pccollector/internal/countdown"
	"github.com/llehouerou/pccollector/internal/errmsg"
	"github.com/llehouerou/pccollector/internal/ui/action"
	"github.com/llehouerou/pccollector/internal/ui/confirm"
	"github.com/llehouerou/pccollector/internal/ui/helpbindings"
	"github.com/llehouerou/pccollector/internal/ui/memberfilter"
	"github.com/llehouerou/pccollector/internal/ui/statspopup"
	"github.com/llehouerou/pccollector/internal/ui/textinput"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case countdown.TickMsg:
		return m, m.handleTick(msg)

	case action.Msg:
		return m, m.handleUIAction(msg)

	case tea.KeyMsg:
		return m, m.handleKeyMsg(msg)
	}

	if m.popups.ActivePopup() != popupctl.None {
		return m, m.popups.Update(msg)
	}
	return m, m.searchBlink(msg)
}

// handleTick advances the countdown a tick belongs to. Ticks of an older
// arming are dropped.
func (m *Model) handleTick(msg countdown.TickMsg) tea.Cmd {
	now := m.now()
	switch msg.Name {
	case windowBulk:
		if !m.bulk.Accept(msg) {
			return nil
		}
		if m.bulk.Expire(now) {
			m.log.Debug("album action expired")
			m.bulkPlan = nil
			m.refreshKeeping()
			return nil
		}
		m.refreshKeeping()
		return m.bulk.Tick()

	case windowUndo:
		if !m.undo.Accept(msg) {
			return nil
		}
		if m.undo.Expire(now) {
			m.undoSnapshot = nil
			return nil
		}
		return m.undo.Tick()

	case windowFade:
		if !m.fade.Accept(msg) {
			return nil
		}
		if m.fade.Expire(now) {
			m.flashText = ""
			return nil
		}
		return m.fade.Tick()
	}
	return nil
}

// handleUIAction routes popup actions to their handlers.
func (m *Model) handleUIAction(msg action.Msg) tea.Cmd {
	switch msg.Source {
	case "helpbindings":
		if _, ok := msg.Action.(helpbindings.Close); ok {
			m.popups.Hide(popupctl.Help)
		}
	case "confirm":
		if res, ok := msg.Action.(confirm.Result); ok {
			return m.handleConfirm(res)
		}
	case "textinput":
		if res, ok := msg.Action.(textinput.Result); ok {
			return m.handleTextInput(res)
		}
	case "memberfilter":
		return m.handleMemberFilterAction(msg.Action)
	case "statspopup":
		if _, ok := msg.Action.(statspopup.Close); ok {
			m.popups.Hide(popupctl.Stats)
		}
	}
	return nil
}

func (m *Model) handleTextInput(res textinput.Result) tea.Cmd {
	switch m.popups.InputMode() {
	case popupctl.InputImportPath:
		return m.handleImportPath(res)
	case popupctl.InputNone:
	}
	m.popups.Hide(popupctl.TextInput)
	return nil
}

// handleMemberFilterAction applies and persists each toggle right away.
func (m *Model) handleMemberFilterAction(a action.Action) tea.Cmd {
	switch act := a.(type) {
	case memberfilter.Changed:
		m.members = act.Filter
		m.log.Debug("member filter changed", zap.Int("hidden", hiddenCount(act.Filter)))
		m.refreshFocused()
		if err := m.state.SaveMemberFilters(m.members); err != nil {
			return m.flashError(errmsg.Format(errmsg.OpMemberFilterSave, err), err)
		}
	case memberfilter.Close:
		m.popups.Hide(popupctl.MemberFilter)
	}
	return nil
}

func hiddenCount(f map[string]bool) int {
	n := 0
	for _, visible := range f {
		if !visible {
			n++
		}
	}
	return n
}

// handleKeyMsg routes a key to the catalog error screen, a popup, the
// search box or the key handlers, in that order.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	if !m.ready() {
		switch msg.String() {
		case "q", "ctrl+c":
			return tea.Quit
		}
		return nil
	}

	if handled, cmd := m.popups.HandleKey(msg); handled {
		return cmd
	}

	if m.searching {
		return m.handleSearchKey(msg)
	}

	a := m.keys.Resolve(msg.String())
	if handled, cmd := handler.Chain(a,
		m.handleGlobalKeys,
		m.handleFilterKeys,
		m.handleNavigationKeys,
		m.handleCollectionKeys,
		m.handleBackupKeys,
	); handled {
		return cmd
	}
	return nil
}
