package state

import (
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/llehouerou/pccollector/internal/collection"
	"github.com/llehouerou/pccollector/internal/db"
	"github.com/llehouerou/pccollector/internal/view"
)

// Region keys. Each is stored and decoded independently.
const (
	keyOwned         = "owned"
	keyWishlist      = "wishlist"
	keyMemberFilters = "member_filters"
	keyAlbumCollapse = "album_collapse"
	keyBackupMeta    = "backup_meta"
	keyViewMode      = "view_mode"
)

// AlbumCollapse maps category to album to collapsed.
type AlbumCollapse map[string]map[string]bool

// Collapsed returns the saved state of album, or def when none was saved.
func (a AlbumCollapse) Collapsed(category, album string, def bool) bool {
	if v, ok := a[category][album]; ok {
		return v
	}
	return def
}

// Set records the collapsed state of album.
func (a AlbumCollapse) Set(category, album string, collapsed bool) {
	if a[category] == nil {
		a[category] = make(map[string]bool)
	}
	a[category][album] = collapsed
}

// BackupMeta records when the collection was last exported and imported,
// in unix milliseconds. Zero means never.
type BackupMeta struct {
	LastBackup int64 `json:"lastBackup,omitempty"`
	LastImport int64 `json:"lastImport,omitempty"`
}

// LastBackupTime returns the last backup time, or the zero time.
func (b BackupMeta) LastBackupTime() time.Time {
	if b.LastBackup == 0 {
		return time.Time{}
	}
	return time.UnixMilli(b.LastBackup)
}

// Owned returns the saved ownership map.
func (m *Manager) Owned() collection.Ownership {
	var out collection.Ownership
	if !m.read(keyOwned, &out) || out == nil {
		return collection.Ownership{}
	}
	return out
}

func (m *Manager) SaveOwned(o collection.Ownership) error {
	return writeRegion(m.db, keyOwned, o, m.now())
}

// Wishlist returns the saved wishlist. Legacy boolean entries read as red.
func (m *Manager) Wishlist() collection.Wishlist {
	var out collection.Wishlist
	if !m.read(keyWishlist, &out) || out == nil {
		return collection.Wishlist{}
	}
	return out
}

func (m *Manager) SaveWishlist(w collection.Wishlist) error {
	return writeRegion(m.db, keyWishlist, w, m.now())
}

// MemberFilters returns the saved member visibility map.
func (m *Manager) MemberFilters() collection.MemberFilter {
	var out collection.MemberFilter
	if !m.read(keyMemberFilters, &out) || out == nil {
		return collection.MemberFilter{}
	}
	return out
}

func (m *Manager) SaveMemberFilters(f collection.MemberFilter) error {
	return writeRegion(m.db, keyMemberFilters, f, m.now())
}

// AlbumCollapse returns the saved per-category collapse state.
func (m *Manager) AlbumCollapse() AlbumCollapse {
	var out AlbumCollapse
	if !m.read(keyAlbumCollapse, &out) || out == nil {
		return AlbumCollapse{}
	}
	return out
}

func (m *Manager) SaveAlbumCollapse(a AlbumCollapse) error {
	return writeRegion(m.db, keyAlbumCollapse, a, m.now())
}

// BackupMeta returns the saved backup metadata.
func (m *Manager) BackupMeta() BackupMeta {
	var out BackupMeta
	if !m.read(keyBackupMeta, &out) {
		return BackupMeta{}
	}
	return out
}

func (m *Manager) SaveBackupMeta(b BackupMeta) error {
	return writeRegion(m.db, keyBackupMeta, b, m.now())
}

// ViewMode returns the saved presentation, defaulting to list.
func (m *Manager) ViewMode() view.Mode {
	var s string
	if !m.read(keyViewMode, &s) {
		return view.ModeList
	}
	mode, ok := view.ParseMode(s)
	if !ok {
		m.log.Warn("unknown view mode, using default", zap.String("value", s))
		return view.ModeList
	}
	return mode
}

func (m *Manager) SaveViewMode(mode view.Mode) error {
	return writeRegion(m.db, keyViewMode, mode.String(), m.now())
}

// SaveImport replaces the ownership map and backup metadata atomically.
func (m *Manager) SaveImport(o collection.Ownership, b BackupMeta) error {
	now := m.now()
	return db.WithTx(m.db, func(tx *sql.Tx) error {
		if err := writeRegion(tx, keyOwned, o, now); err != nil {
			return err
		}
		return writeRegion(tx, keyBackupMeta, b, now)
	})
}

// read decodes region key into dst. It reports false when the region is
// missing or unreadable; unreadable regions are logged and never returned
// as errors.
func (m *Manager) read(key string, dst any) bool {
	var raw string
	err := m.db.QueryRow(`SELECT value FROM preferences WHERE key = ?`, key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return false
	}
	if err != nil {
		m.log.Warn("read preference region", zap.String("region", key), zap.Error(err))
		return false
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		m.log.Warn("malformed preference region, using default",
			zap.String("region", key), zap.Error(err))
		return false
	}
	return true
}

type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

func writeRegion(ex execer, key string, v any, now time.Time) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = ex.Exec(`
		INSERT INTO preferences (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at
	`, key, string(data), now.UnixMilli())
	return err
}
