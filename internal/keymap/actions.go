// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit         Action = "quit"
	ActionHelp         Action = "help"
	ActionNextCategory Action = "next_category"
	ActionPrevCategory Action = "prev_category"
	ActionCategory1    Action = "category_1"
	ActionCategory2    Action = "category_2"
	ActionCategory3    Action = "category_3"
	ActionCategory4    Action = "category_4"
	ActionSearch       Action = "search"
	ActionClearSearch  Action = "clear_search"

	// Filter and display actions
	ActionCycleOwnedFilter Action = "cycle_owned_filter"
	ActionCycleSortKey     Action = "cycle_sort_key"
	ActionToggleSortDir    Action = "toggle_sort_direction"
	ActionMemberFilter     Action = "member_filter"
	ActionCycleViewMode    Action = "cycle_view_mode"
	ActionStats            Action = "stats"

	// Navigation actions
	ActionMoveUp    Action = "move_up"
	ActionMoveDown  Action = "move_down"
	ActionJumpStart Action = "jump_start"
	ActionJumpEnd   Action = "jump_end"
	ActionPageUp    Action = "page_up"
	ActionPageDown  Action = "page_down"
	ActionMoveLeft  Action = "move_left"
	ActionMoveRight Action = "move_right"

	// Collection actions
	ActionToggleOwned    Action = "toggle_owned"     // space/x
	ActionCycleWish      Action = "cycle_wish"       // w
	ActionToggleCollapse Action = "toggle_collapse"  // enter/z
	ActionToggleAll      Action = "toggle_all"       // Z
	ActionCheckAlbum     Action = "check_album"      // c, press twice
	ActionUncheckAlbum   Action = "uncheck_album"    // u, press twice

	// Backup actions
	ActionExport        Action = "export"
	ActionImport        Action = "import"
	ActionUndoImport    Action = "undo_import"
	ActionShareWishlist Action = "share_wishlist"
)
