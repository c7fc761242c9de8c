// Package app is the root bubbletea model of the collection tracker.
package app

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/llehouerou/pccollector/internal/app/popupctl"
	"github.com/llehouerou/pccollector/internal/backup"
	"github.com/llehouerou/pccollector/internal/catalog"
	"github.com/llehouerou/pccollector/internal/collection"
	"github.com/llehouerou/pccollector/internal/config"
	"github.com/llehouerou/pccollector/internal/countdown"
	"github.com/llehouerou/pccollector/internal/images"
	"github.com/llehouerou/pccollector/internal/keymap"
	"github.com/llehouerou/pccollector/internal/logging"
	"github.com/llehouerou/pccollector/internal/state"
	"github.com/llehouerou/pccollector/internal/ui/collectionview"
	"github.com/llehouerou/pccollector/internal/view"
)

// Countdown window names.
const (
	windowBulk = "bulk"
	windowUndo = "undo"
	windowFade = "fade"
)

// BulkWindow is how long a bulk album action waits for its second press.
const BulkWindow = 10 * time.Second

// Options configures New.
type Options struct {
	Config  *config.Config
	Catalog *catalog.Catalog
	// CatalogErr, when set, makes the model show only a full-screen error.
	CatalogErr error
	State      state.Interface
	Logger     *zap.Logger
	// Now defaults to time.Now.
	Now func() time.Time
}

// Model is the root application model. It owns every piece of
// application state; nothing is kept at package level.
type Model struct {
	cfg        *config.Config
	catalog    *catalog.Catalog
	catalogErr error
	state      state.Interface
	log        *zap.Logger
	now        func() time.Time

	keys   *keymap.Resolver
	roster collection.Roster
	images *images.Cache
	popups *popupctl.Manager

	// Persisted
	owned    collection.Ownership
	wishlist collection.Wishlist
	members  collection.MemberFilter
	collapse state.AlbumCollapse
	meta     state.BackupMeta
	mode     view.Mode

	// Process lifetime
	category  int
	search    textinput.Model
	searching bool
	filter    collection.OwnedFilter
	sort      collection.SortState

	list collectionview.Model

	bulk     countdown.Window
	bulkPlan *bulkPlan

	undo         countdown.Window
	undoSnapshot collection.Ownership

	fade      countdown.Window
	flashText string
	flashKind flashKind

	width  int
	height int
}

// New creates the model and loads persisted state.
func New(opts Options) Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = &config.Config{}
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "search name, album or member"
	search.CharLimit = 128

	m := Model{
		cfg:        cfg,
		catalog:    opts.Catalog,
		catalogErr: opts.CatalogErr,
		state:      opts.State,
		log:        logging.OrNop(opts.Logger),
		now:        now,
		keys:       keymap.NewResolver(keymap.All),
		roster:     collection.NewRoster(cfg.GetRoster()),
		images:     images.NewCache(images.NewResolver(cfg.ImageBase())),
		popups:     popupctl.New(),
		search:     search,
		list:       collectionview.New(),
		bulk:       countdown.New(windowBulk, BulkWindow),
		undo:       countdown.New(windowUndo, backup.UndoWindow),
		fade:       countdown.New(windowFade, backup.FadeAfter),
	}

	if m.catalogErr != nil || m.catalog == nil || m.state == nil {
		return m
	}

	m.owned = m.state.Owned()
	m.wishlist = m.state.Wishlist()
	m.members = m.state.MemberFilters()
	m.collapse = m.state.AlbumCollapse()
	m.meta = m.state.BackupMeta()
	m.mode = m.state.ViewMode()

	m.log.Info("collection loaded",
		zap.Int("items", m.catalog.Len()),
		zap.Int("owned", m.owned.Count()),
		zap.Int("wishlisted", m.wishlist.Count()),
		zap.Stringer("view_mode", m.mode))

	m.refresh()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// ready reports whether the collection can be shown.
func (m *Model) ready() bool {
	return m.catalogErr == nil && m.catalog != nil && m.state != nil
}

// currentCategory returns the active category id.
func (m *Model) currentCategory() string {
	cats := m.catalog.Categories()
	if len(cats) == 0 {
		return ""
	}
	return cats[m.category]
}
