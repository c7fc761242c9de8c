package app

import (
	"fmt"
	"strings"

	"github.com/llehouerou/pccollector/internal/catalog"
	"github.com/llehouerou/pccollector/internal/collection"
	"github.com/llehouerou/pccollector/internal/errmsg"
	"github.com/llehouerou/pccollector/internal/ui"
	"github.com/llehouerou/pccollector/internal/ui/headerbar"
	"github.com/llehouerou/pccollector/internal/ui/render"
	"github.com/llehouerou/pccollector/internal/ui/styles"
)

// categoryKeys are the direct-jump keys shown on the tabs.
var categoryKeys = []string{"F1", "F2", "F3", "F4"}

// View renders the application UI.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if !m.ready() {
		return m.renderCatalogError()
	}

	header := headerbar.Render(m.tabs(), m.category, m.width)
	toolbar := m.toolbar()
	body := m.list.View()
	status := m.statusLine()

	base := strings.Join([]string{header, toolbar, body, status}, "\n")
	return m.popups.RenderOverlay(base)
}

func (m *Model) tabs() []headerbar.Tab {
	stats := collection.CategoryStats(m.catalog, m.owned, m.wishlist)
	cats := m.catalog.Categories()
	tabs := make([]headerbar.Tab, len(cats))
	for i, c := range cats {
		key := ""
		if i < len(categoryKeys) {
			key = categoryKeys[i]
		}
		tabs[i] = headerbar.Tab{Key: key, Label: catalog.Label(c), Percent: stats[c].Percent()}
	}
	return tabs
}

// toolbar shows the search box and the active filter, sort and view mode.
func (m *Model) toolbar() string {
	s := styles.T().S()

	search := m.search.View()
	if !m.searching && m.search.Value() == "" {
		search = s.Subtle.Render("/ search")
	}

	members := m.catalog.Members(m.currentCategory())
	shown := 0
	for _, name := range members {
		if m.members.Visible(name) {
			shown++
		}
	}

	sortLabel := m.sort.Label()
	if sortLabel == "" {
		sortLabel = "catalog"
	}
	// Completion over what passes the filters, unlike the album headers.
	vis := m.list.Document().Visible
	info := fmt.Sprintf("visible:%d/%d (%d%%)  show:%s  sort:%s  view:%s  members:%d/%d",
		vis.Owned, vis.Total, vis.Percent(), m.filter, sortLabel, m.mode, shown, len(members))

	return render.FitStyled(search+"  "+s.Muted.Render(info), m.width)
}

// renderCatalogError replaces the whole screen when the catalog could not
// be loaded. Only quitting is possible.
func (m *Model) renderCatalogError() string {
	s := styles.T().S()
	width := max(m.width-4, ui.MinWidth/2)

	lines := []string{
		s.Error.Bold(true).Render("Catalog error"),
		"",
	}
	for _, l := range strings.Split(errmsg.Format(errmsg.OpCatalogLoad, m.catalogErr), "\n") {
		lines = append(lines, render.Truncate(l, width))
	}
	lines = append(lines, "", s.Subtle.Render("Press q to quit"))

	top := max((m.height-len(lines))/2, 0)
	out := make([]string, 0, m.height)
	for range top {
		out = append(out, "")
	}
	for _, l := range lines {
		out = append(out, "  "+l)
	}
	return strings.Join(out, "\n")
}
