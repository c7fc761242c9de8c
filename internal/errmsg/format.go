// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Catalog
	OpCatalogLoad Op = "load catalog"

	// Ownership and wishlist
	OpOwnedSave    Op = "save collection"
	OpWishlistSave Op = "save wishlist"
	OpBulkUpdate   Op = "update album"

	// Preferences
	OpMemberFilterSave Op = "save member filters"
	OpCollapseSave     Op = "save album layout"
	OpViewModeSave     Op = "save view mode"

	// Backup
	OpBackupExport Op = "export backup"
	OpBackupImport Op = "import backup"
	OpBackupUndo   Op = "undo import"

	// Sharing
	OpWishlistShare Op = "export wishlist"

	// Initialization
	OpInitialize Op = "initialize application"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
