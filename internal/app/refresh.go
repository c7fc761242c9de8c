package app

import (
	"fmt"

	"github.com/llehouerou/pccollector/internal/collection"
	"github.com/llehouerou/pccollector/internal/keymap"
	"github.com/llehouerou/pccollector/internal/ui"
	"github.com/llehouerou/pccollector/internal/view"
)

// query builds the pipeline input from the current state.
func (m *Model) query() collection.Query {
	return collection.Query{
		Search:    m.search.Value(),
		Owned:     m.filter,
		Members:   m.members,
		Sort:      m.sort,
		Ownership: m.owned,
		Wishlist:  m.wishlist,
		Roster:    m.roster,
	}
}

// document runs the pipeline over the active category and projects it.
func (m *Model) document() view.Document {
	category := m.currentCategory()
	items := m.catalog.Items(category)
	res := collection.Apply(items, m.query())

	// Albums stay open while searching so matches are not hidden.
	searching := m.search.Value() != ""
	def := m.cfg.AlbumsCollapsedByDefault()

	pending := map[string]string{}
	if label := m.bulkLabel(); label != "" {
		pending[m.bulkPlan.album] = label
	}

	return view.Project(view.Input{
		Result:     res,
		AlbumStats: collection.AlbumStats(items, m.owned, m.wishlist),
		Filter:     m.filter,
		Ownership:  m.owned,
		Wishlist:   m.wishlist,
		Mode:       m.mode,
		Collapsed: func(album string) bool {
			return !searching && m.collapse.Collapsed(category, album, def)
		},
		Image:   m.images.Path,
		Pending: pending,
	})
}

// refresh re-renders the collection. The cursor is clamped, not moved.
func (m *Model) refresh() {
	if !m.ready() {
		return
	}
	m.list.SetDocument(m.document())
}

// refreshKeeping re-renders and puts the cursor back where it was, so
// the line under the cursor and the scroll offset survive the mutation.
func (m *Model) refreshKeeping() {
	snap := m.list.Snapshot()
	m.refresh()
	m.list.Restore(snap)
}

// refreshFocused re-renders and keeps the cursor on the same entry when it
// is still shown, for changes that move entries around.
func (m *Model) refreshFocused() {
	entry, ok := m.list.Current()
	m.refresh()
	if ok && (m.list.Focus(entry.Album, entry.ID) || m.list.Focus(entry.Album, "")) {
		return
	}
	m.list.Reset()
}

// bulkLabel is the prompt of an armed bulk action, or "".
func (m *Model) bulkLabel() string {
	p := m.bulkPlan
	if p == nil || p.category != m.currentCategory() || !m.bulk.Armed(m.now()) {
		return ""
	}
	act := keymap.ActionUncheckAlbum
	verb := "uncheck"
	if p.check {
		act = keymap.ActionCheckAlbum
		verb = "check"
	}
	key := "?"
	if keys := m.keys.KeysFor(act); len(keys) > 0 {
		key = keymap.DisplayKey(keys[0])
	}
	return fmt.Sprintf("Press %s again to %s %d cards (%ds)",
		key, verb, len(m.bulkTargets(p.album)), m.bulk.RemainingSeconds(m.now()))
}

// resize applies the terminal size to every component.
func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	m.popups.SetSize(width, height)
	m.list.SetSize(width, max(height-ui.Chrome, 1))
	m.search.Width = max(width/3, 10)
}
