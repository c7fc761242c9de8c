// internal/state/interface.go
package state

import (
	"github.com/llehouerou/pccollector/internal/collection"
	"github.com/llehouerou/pccollector/internal/view"
)

// Interface defines the state manager contract for dependency injection and testing.
// Reads never fail: missing or malformed regions yield their defaults.
type Interface interface {
	Owned() collection.Ownership
	SaveOwned(o collection.Ownership) error
	Wishlist() collection.Wishlist
	SaveWishlist(w collection.Wishlist) error
	MemberFilters() collection.MemberFilter
	SaveMemberFilters(f collection.MemberFilter) error
	AlbumCollapse() AlbumCollapse
	SaveAlbumCollapse(a AlbumCollapse) error
	BackupMeta() BackupMeta
	SaveBackupMeta(b BackupMeta) error
	ViewMode() view.Mode
	SaveViewMode(mode view.Mode) error
	SaveImport(o collection.Ownership, b BackupMeta) error
	Close() error
}

// Verify Manager implements Interface at compile time.
var _ Interface = (*Manager)(nil)
