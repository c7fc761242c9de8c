// Package ui provides shared UI constants and utilities.
package ui

// Layout constants for consistent sizing across UI components.
const (
	// ScrollMargin is the number of lines kept visible above/below the cursor.
	ScrollMargin = 3

	// HeaderBarHeight is the category tab line at the top of the screen.
	HeaderBarHeight = 1

	// ToolbarHeight is the search/filter/sort line under the tabs.
	ToolbarHeight = 1

	// StatusBarHeight is the backup/notification line at the bottom.
	StatusBarHeight = 1

	// Chrome is the total vertical space not available to the collection.
	Chrome = HeaderBarHeight + ToolbarHeight + StatusBarHeight

	// GridTileWidth is the width of one tile in grid mode, including gap.
	GridTileWidth = 22

	// MinWidth is the narrowest terminal the layout supports.
	MinWidth = 40
)
