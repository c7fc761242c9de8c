// internal/state/mock.go
package state

import (
	"maps"

	"github.com/llehouerou/pccollector/internal/collection"
	"github.com/llehouerou/pccollector/internal/view"
)

// Mock is a test double for Manager. Saved values are copied so later
// in-memory mutation by the caller is not visible until the next save.
type Mock struct {
	owned    collection.Ownership
	wishlist collection.Wishlist
	members  collection.MemberFilter
	collapse AlbumCollapse
	meta     BackupMeta
	mode     view.Mode
	closed   bool

	// SaveErr, when set, is returned by every save.
	SaveErr error
	// Saves counts successful saves per region key.
	Saves map[string]int
}

// NewMock creates a new mock state manager for testing.
func NewMock() *Mock {
	return &Mock{
		owned:    collection.Ownership{},
		wishlist: collection.Wishlist{},
		members:  collection.MemberFilter{},
		collapse: AlbumCollapse{},
		Saves:    make(map[string]int),
	}
}

func (m *Mock) Owned() collection.Ownership { return m.owned.Clone() }

func (m *Mock) SaveOwned(o collection.Ownership) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.owned = o.Clone()
	m.Saves[keyOwned]++
	return nil
}

func (m *Mock) Wishlist() collection.Wishlist { return maps.Clone(m.wishlist) }

func (m *Mock) SaveWishlist(w collection.Wishlist) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.wishlist = maps.Clone(w)
	m.Saves[keyWishlist]++
	return nil
}

func (m *Mock) MemberFilters() collection.MemberFilter { return maps.Clone(m.members) }

func (m *Mock) SaveMemberFilters(f collection.MemberFilter) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.members = maps.Clone(f)
	m.Saves[keyMemberFilters]++
	return nil
}

func (m *Mock) AlbumCollapse() AlbumCollapse { return cloneCollapse(m.collapse) }

func (m *Mock) SaveAlbumCollapse(a AlbumCollapse) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.collapse = cloneCollapse(a)
	m.Saves[keyAlbumCollapse]++
	return nil
}

func (m *Mock) BackupMeta() BackupMeta { return m.meta }

func (m *Mock) SaveBackupMeta(b BackupMeta) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.meta = b
	m.Saves[keyBackupMeta]++
	return nil
}

func (m *Mock) ViewMode() view.Mode { return m.mode }

func (m *Mock) SaveViewMode(mode view.Mode) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.mode = mode
	m.Saves[keyViewMode]++
	return nil
}

func (m *Mock) SaveImport(o collection.Ownership, b BackupMeta) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.owned = o.Clone()
	m.meta = b
	m.Saves[keyOwned]++
	m.Saves[keyBackupMeta]++
	return nil
}

func (m *Mock) Close() error {
	m.closed = true
	return nil
}

// Test helpers

func (m *Mock) SetOwned(o collection.Ownership) { m.owned = o.Clone() }

func (m *Mock) SetWishlist(w collection.Wishlist) { m.wishlist = maps.Clone(w) }

func (m *Mock) SetMemberFilters(f collection.MemberFilter) { m.members = maps.Clone(f) }

func (m *Mock) SetBackupMeta(b BackupMeta) { m.meta = b }

func (m *Mock) SetViewMode(mode view.Mode) { m.mode = mode }

func (m *Mock) SaveCount(region string) int { return m.Saves[region] }

func (m *Mock) IsClosed() bool { return m.closed }

func cloneCollapse(a AlbumCollapse) AlbumCollapse {
	out := make(AlbumCollapse, len(a))
	for cat, albums := range a {
		out[cat] = maps.Clone(albums)
	}
	return out
}

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
