package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/pccollector/internal/app/handler"
	"github.com/llehouerou/pccollector/internal/catalog"
	"github.com/llehouerou/pccollector/internal/collection"
	"github.com/llehouerou/pccollector/internal/errmsg"
	"github.com/llehouerou/pccollector/internal/keymap"
	"github.com/llehouerou/pccollector/internal/ui/helpbindings"
)

// handleGlobalKeys handles quit, help, categories and search.
func (m *Model) handleGlobalKeys(a keymap.Action) handler.Result {
	switch a { //nolint:exhaustive // only handling global actions
	case keymap.ActionQuit:
		return handler.Handled(tea.Quit)
	case keymap.ActionHelp:
		return handler.Handled(m.popups.ShowHelp(helpbindings.Contexts))
	case keymap.ActionNextCategory:
		m.setCategory(m.category + 1)
	case keymap.ActionPrevCategory:
		m.setCategory(m.category - 1)
	case keymap.ActionCategory1:
		m.setCategory(0)
	case keymap.ActionCategory2:
		m.setCategory(1)
	case keymap.ActionCategory3:
		m.setCategory(2)
	case keymap.ActionCategory4:
		m.setCategory(3)
	case keymap.ActionSearch:
		m.searching = true
		return handler.Handled(m.search.Focus())
	case keymap.ActionClearSearch:
		if m.search.Value() == "" {
			return handler.NotHandled
		}
		m.clearSearch()
	default:
		return handler.NotHandled
	}
	return handler.HandledNoCmd
}

// setCategory switches category. Tab wraps around; out-of-range direct
// jumps are ignored.
func (m *Model) setCategory(i int) {
	n := len(m.catalog.Categories())
	if n == 0 {
		return
	}
	switch {
	case i == n && m.category == n-1:
		i = 0
	case i == -1 && m.category == 0:
		i = n - 1
	case i < 0 || i >= n:
		return
	}
	if i == m.category {
		return
	}
	m.category = i
	m.cancelBulk()
	m.list.Reset()
	m.refresh()
}

// handleFilterKeys handles filter, sort, view mode and the member popups.
func (m *Model) handleFilterKeys(a keymap.Action) handler.Result {
	switch a { //nolint:exhaustive // only handling filter actions
	case keymap.ActionCycleOwnedFilter:
		m.filter = m.filter.Next()
		m.list.Reset()
		m.refresh()
	case keymap.ActionCycleSortKey:
		m.sort.Key = m.sort.Key.Next()
		m.refreshFocused()
	case keymap.ActionToggleSortDir:
		if m.sort.Direction == collection.Ascending {
			m.sort.Direction = collection.Descending
		} else {
			m.sort.Direction = collection.Ascending
		}
		m.refreshFocused()
	case keymap.ActionCycleViewMode:
		m.mode = m.mode.Next()
		m.refreshFocused()
		if err := m.state.SaveViewMode(m.mode); err != nil {
			return handler.Handled(m.flashError(errmsg.Format(errmsg.OpViewModeSave, err), err))
		}
	case keymap.ActionMemberFilter:
		return handler.Handled(m.popups.ShowMemberFilter(m.catalog.Members(m.currentCategory()), m.members))
	case keymap.ActionStats:
		category := m.currentCategory()
		items := m.catalog.Items(category)
		return handler.Handled(m.popups.ShowStats(
			catalog.Label(category),
			collection.Count(items, m.owned, m.wishlist),
			collection.MemberStats(items, m.owned, m.wishlist),
		))
	default:
		return handler.NotHandled
	}
	return handler.HandledNoCmd
}

// handleNavigationKeys moves the cursor.
func (m *Model) handleNavigationKeys(a keymap.Action) handler.Result {
	switch a { //nolint:exhaustive // only handling navigation actions
	case keymap.ActionMoveUp:
		m.list.Move(-1)
	case keymap.ActionMoveDown:
		m.list.Move(1)
	case keymap.ActionMoveLeft:
		m.list.MoveColumn(-1)
	case keymap.ActionMoveRight:
		m.list.MoveColumn(1)
	case keymap.ActionJumpStart:
		m.list.JumpStart()
	case keymap.ActionJumpEnd:
		m.list.JumpEnd()
	case keymap.ActionPageUp:
		m.list.Page(-1)
	case keymap.ActionPageDown:
		m.list.Page(1)
	default:
		return handler.NotHandled
	}
	return handler.HandledNoCmd
}

// handleSearchKey edits the search box while it has focus. Enter keeps
// the query, esc clears it.
func (m *Model) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type { //nolint:exhaustive // other keys edit the query
	case tea.KeyEnter:
		m.searching = false
		m.search.Blur()
		return nil
	case tea.KeyEsc:
		m.clearSearch()
		return nil
	case tea.KeyCtrlC:
		return tea.Quit
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != before {
		m.list.Reset()
		m.refresh()
	}
	return cmd
}

func (m *Model) clearSearch() {
	m.searching = false
	m.search.Blur()
	if m.search.Value() == "" {
		return
	}
	m.search.SetValue("")
	m.list.Reset()
	m.refresh()
}

// searchBlink keeps the search cursor blinking while the box has focus.
func (m *Model) searchBlink(msg tea.Msg) tea.Cmd {
	if !m.searching {
		return nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return cmd
}
