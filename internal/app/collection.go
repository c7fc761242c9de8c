package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/llehouerou/pccollector/internal/app/handler"
	"github.com/llehouerou/pccollector/internal/collection"
	"github.com/llehouerou/pccollector/internal/errmsg"
	"github.com/llehouerou/pccollector/internal/keymap"
)

// bulkPlan is an armed album check or uncheck.
type bulkPlan struct {
	category string
	album    string
	check    bool
}

// handleCollectionKeys handles per-item and per-album actions.
func (m *Model) handleCollectionKeys(a keymap.Action) handler.Result {
	switch a { //nolint:exhaustive // only handling collection actions
	case keymap.ActionToggleOwned:
		return m.toggleOwned()
	case keymap.ActionCycleWish:
		return m.cycleWish()
	case keymap.ActionToggleCollapse:
		return m.toggleCollapse()
	case keymap.ActionToggleAll:
		return m.toggleAllAlbums()
	case keymap.ActionCheckAlbum:
		return handler.Handled(m.activateBulk(true))
	case keymap.ActionUncheckAlbum:
		return handler.Handled(m.activateBulk(false))
	}
	return handler.NotHandled
}

func (m *Model) toggleOwned() handler.Result {
	id, ok := m.list.CurrentID()
	if !ok {
		return handler.HandledNoCmd
	}
	owned := m.owned.Toggle(id)
	m.log.Debug("ownership toggled", zap.String("id", id), zap.Bool("owned", owned))

	var cmd tea.Cmd
	if err := m.state.SaveOwned(m.owned); err != nil {
		cmd = m.flashError(errmsg.FormatWith(errmsg.OpOwnedSave, id, err), err)
	}
	m.refreshKeeping()
	return handler.Handled(cmd)
}

func (m *Model) cycleWish() handler.Result {
	id, ok := m.list.CurrentID()
	if !ok {
		return handler.HandledNoCmd
	}
	st := m.wishlist.Cycle(id)
	m.log.Debug("wishlist cycled", zap.String("id", id), zap.Stringer("state", st))

	var cmd tea.Cmd
	if err := m.state.SaveWishlist(m.wishlist); err != nil {
		cmd = m.flashError(errmsg.FormatWith(errmsg.OpWishlistSave, id, err), err)
	}
	m.refreshKeeping()
	return handler.Handled(cmd)
}

func (m *Model) toggleCollapse() handler.Result {
	album := m.list.CurrentAlbum()
	if album == "" {
		return handler.HandledNoCmd
	}
	category := m.currentCategory()
	def := m.cfg.AlbumsCollapsedByDefault()
	m.collapse.Set(category, album, !m.collapse.Collapsed(category, album, def))

	cmd := m.saveCollapse()
	m.refresh()
	m.list.Focus(album, "")
	return handler.Handled(cmd)
}

// toggleAllAlbums collapses every album when all are expanded, and
// expands every album otherwise.
func (m *Model) toggleAllAlbums() handler.Result {
	category := m.currentCategory()
	def := m.cfg.AlbumsCollapsedByDefault()
	albums := m.catalog.Albums(category)

	allExpanded := true
	for _, album := range albums {
		if m.collapse.Collapsed(category, album, def) {
			allExpanded = false
			break
		}
	}
	for _, album := range albums {
		m.collapse.Set(category, album, allExpanded)
	}

	cmd := m.saveCollapse()
	album := m.list.CurrentAlbum()
	m.refresh()
	if !m.list.Focus(album, "") {
		m.list.Reset()
	}
	return handler.Handled(cmd)
}

func (m *Model) saveCollapse() tea.Cmd {
	if err := m.state.SaveAlbumCollapse(m.collapse); err != nil {
		return m.flashError(errmsg.Format(errmsg.OpCollapseSave, err), err)
	}
	return nil
}

// bulkTargets returns the ids an album action applies to: every item of
// the album passing the member filter. Search and the owned filter are
// not applied.
func (m *Model) bulkTargets(album string) []string {
	items := collection.FilterMembers(m.catalog.AlbumItems(m.currentCategory(), album), m.members)
	ids := make([]string, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}
	return ids
}

// activateBulk is the two-step album action. The first press arms a
// countdown; a second press of the same action on the same album before
// the deadline applies it. Anything else re-arms.
func (m *Model) activateBulk(check bool) tea.Cmd {
	album := m.list.CurrentAlbum()
	if album == "" {
		return nil
	}
	plan := &bulkPlan{category: m.currentCategory(), album: album, check: check}
	now := m.now()

	if m.bulkPlan == nil || *m.bulkPlan != *plan {
		m.bulkPlan = plan
		cmd := m.bulk.Arm(now)
		m.refreshKeeping()
		return cmd
	}

	executed, cmd := m.bulk.Activate(now)
	if !executed {
		m.refreshKeeping()
		return cmd
	}

	ids := m.bulkTargets(album)
	m.owned.Set(ids, check)
	m.bulkPlan = nil
	m.log.Info("album updated",
		zap.String("album", album), zap.Bool("owned", check), zap.Int("items", len(ids)))

	if err := m.state.SaveOwned(m.owned); err != nil {
		cmd = m.flashError(errmsg.FormatWith(errmsg.OpBulkUpdate, album, err), err)
	}
	m.refreshKeeping()
	return cmd
}

// cancelBulk drops an armed album action.
func (m *Model) cancelBulk() {
	if m.bulkPlan == nil {
		return
	}
	m.bulk.Cancel()
	m.bulkPlan = nil
}
