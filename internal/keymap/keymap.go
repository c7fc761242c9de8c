package keymap

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "filter", "collection", "backup"
}

// All contains all key bindings, in help display order.
var All = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit application", "global"},
	{ActionHelp, []string{"?"}, "Show help", "global"},
	{ActionNextCategory, []string{"tab"}, "Next category", "global"},
	{ActionPrevCategory, []string{"shift+tab"}, "Previous category", "global"},
	{ActionCategory1, []string{"f1"}, "First category", "global"},
	{ActionCategory2, []string{"f2"}, "Second category", "global"},
	{ActionCategory3, []string{"f3"}, "Third category", "global"},
	{ActionCategory4, []string{"f4"}, "Fourth category", "global"},
	{ActionSearch, []string{"/"}, "Search", "global"},
	{ActionClearSearch, []string{"esc"}, "Clear search", "global"},

	// Filters and display
	{ActionCycleOwnedFilter, []string{"f"}, "Cycle owned filter", "filter"},
	{ActionCycleSortKey, []string{"s"}, "Cycle sort key", "filter"},
	{ActionToggleSortDir, []string{"S"}, "Toggle sort direction", "filter"},
	{ActionMemberFilter, []string{"m"}, "Member filter", "filter"},
	{ActionCycleViewMode, []string{"v"}, "Cycle list/cards/grid", "filter"},
	{ActionStats, []string{"t"}, "Member statistics", "filter"},

	// Collection
	{ActionMoveUp, []string{"k", "up"}, "Move up", "collection"},
	{ActionMoveDown, []string{"j", "down"}, "Move down", "collection"},
	{ActionMoveLeft, []string{"h", "left"}, "Previous tile (grid)", "collection"},
	{ActionMoveRight, []string{"l", "right"}, "Next tile (grid)", "collection"},
	{ActionJumpStart, []string{"g", "home"}, "First line", "collection"},
	{ActionJumpEnd, []string{"G", "end"}, "Last line", "collection"},
	{ActionPageUp, []string{"pgup", "ctrl+u"}, "Page up", "collection"},
	{ActionPageDown, []string{"pgdown", "ctrl+d"}, "Page down", "collection"},
	{ActionToggleOwned, []string{" ", "x"}, "Toggle owned", "collection"},
	{ActionCycleWish, []string{"w"}, "Cycle wishlist (red/gold/off)", "collection"},
	{ActionToggleCollapse, []string{"enter", "z"}, "Collapse/expand album", "collection"},
	{ActionToggleAll, []string{"Z"}, "Collapse/expand all albums", "collection"},
	{ActionCheckAlbum, []string{"c"}, "Check album (press twice)", "collection"},
	{ActionUncheckAlbum, []string{"u"}, "Uncheck album (press twice)", "collection"},

	// Backup
	{ActionExport, []string{"e"}, "Export backup", "backup"},
	{ActionImport, []string{"i"}, "Import backup", "backup"},
	{ActionUndoImport, []string{"U"}, "Undo import", "backup"},
	{ActionShareWishlist, []string{"W"}, "Write wishlist sheet", "backup"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range All {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}

// DisplayKey returns the help label of a key.
func DisplayKey(key string) string {
	if key == " " {
		return "space"
	}
	return key
}
