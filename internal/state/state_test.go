package state

import (
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/llehouerou/pccollector/internal/collection"
	"github.com/llehouerou/pccollector/internal/view"
)

// setupTestDB creates an in-memory SQLite database with the schema initialized.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	// Each pooled connection would otherwise get its own empty database.
	db.SetMaxOpenConns(1)

	if err := initSchema(db); err != nil {
		db.Close()
		t.Fatalf("failed to init schema: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return db
}

func setupTestManager(t *testing.T) *Manager {
	t.Helper()
	m := newManager(setupTestDB(t), zap.NewNop())
	m.now = func() time.Time { return time.UnixMilli(1_700_000_000_000) }
	return m
}

func putRaw(t *testing.T, m *Manager, key, value string) {
	t.Helper()
	_, err := m.db.Exec(`INSERT OR REPLACE INTO preferences (key, value, updated_at) VALUES (?, ?, 0)`, key, value)
	if err != nil {
		t.Fatalf("insert raw %s: %v", key, err)
	}
}

func TestEmptyDatabaseYieldsDefaults(t *testing.T) {
	m := setupTestManager(t)

	if got := m.Owned(); got == nil || len(got) != 0 {
		t.Errorf("Owned() = %v, want empty map", got)
	}
	if got := m.Wishlist(); got == nil || len(got) != 0 {
		t.Errorf("Wishlist() = %v, want empty map", got)
	}
	if got := m.MemberFilters(); got == nil || len(got) != 0 {
		t.Errorf("MemberFilters() = %v, want empty map", got)
	}
	if got := m.AlbumCollapse(); got == nil || len(got) != 0 {
		t.Errorf("AlbumCollapse() = %v, want empty map", got)
	}
	if got := m.BackupMeta(); got != (BackupMeta{}) {
		t.Errorf("BackupMeta() = %+v, want zero", got)
	}
	if got := m.ViewMode(); got != view.ModeList {
		t.Errorf("ViewMode() = %v, want list", got)
	}
}

func TestSaveAndReadRegions(t *testing.T) {
	m := setupTestManager(t)

	owned := collection.Ownership{"a1-001": true}
	wish := collection.Wishlist{"a1-002": collection.WishGold}
	members := collection.MemberFilter{"Felix": false}
	collapse := AlbumCollapse{}
	collapse.Set("korean_albums", "ODDINARY", false)
	meta := BackupMeta{LastBackup: 1_699_000_000_000}

	for name, err := range map[string]error{
		"owned":    m.SaveOwned(owned),
		"wishlist": m.SaveWishlist(wish),
		"members":  m.SaveMemberFilters(members),
		"collapse": m.SaveAlbumCollapse(collapse),
		"meta":     m.SaveBackupMeta(meta),
		"mode":     m.SaveViewMode(view.ModeGrid),
	} {
		if err != nil {
			t.Fatalf("save %s: %v", name, err)
		}
	}

	if got := m.Owned(); !collection.Equal(got, owned) {
		t.Errorf("Owned() = %v", got)
	}
	if got := m.Wishlist(); got.State("a1-002") != collection.WishGold || len(got) != 1 {
		t.Errorf("Wishlist() = %v", got)
	}
	if got := m.MemberFilters(); got.Visible("Felix") {
		t.Errorf("MemberFilters() = %v, want Felix hidden", got)
	}
	if got := m.AlbumCollapse(); got.Collapsed("korean_albums", "ODDINARY", true) {
		t.Errorf("AlbumCollapse() = %v, want ODDINARY expanded", got)
	}
	if got := m.BackupMeta(); got != meta {
		t.Errorf("BackupMeta() = %+v", got)
	}
	if got := m.ViewMode(); got != view.ModeGrid {
		t.Errorf("ViewMode() = %v, want grid", got)
	}
}

func TestSaveOverwritesWholeRegion(t *testing.T) {
	m := setupTestManager(t)

	if err := m.SaveOwned(collection.Ownership{"a": true, "b": true}); err != nil {
		t.Fatal(err)
	}
	if err := m.SaveOwned(collection.Ownership{"c": true}); err != nil {
		t.Fatal(err)
	}

	if got := m.Owned(); !collection.Equal(got, collection.Ownership{"c": true}) {
		t.Errorf("Owned() = %v, want only c", got)
	}
}

func TestCorruptRegionIsIsolated(t *testing.T) {
	m := setupTestManager(t)

	if err := m.SaveWishlist(collection.Wishlist{"x": collection.WishRed}); err != nil {
		t.Fatal(err)
	}
	if err := m.SaveMemberFilters(collection.MemberFilter{"HAN": false}); err != nil {
		t.Fatal(err)
	}
	putRaw(t, m, keyOwned, `{"a1-001": tru`)
	putRaw(t, m, keyAlbumCollapse, `["not", "an", "object"]`)
	putRaw(t, m, keyBackupMeta, `"yesterday"`)
	putRaw(t, m, keyViewMode, `"carousel"`)

	if got := m.Owned(); len(got) != 0 {
		t.Errorf("Owned() = %v, want empty", got)
	}
	if got := m.AlbumCollapse(); len(got) != 0 {
		t.Errorf("AlbumCollapse() = %v, want empty", got)
	}
	if got := m.BackupMeta(); got != (BackupMeta{}) {
		t.Errorf("BackupMeta() = %+v, want zero", got)
	}
	if got := m.ViewMode(); got != view.ModeList {
		t.Errorf("ViewMode() = %v, want list", got)
	}

	if got := m.Wishlist(); got.State("x") != collection.WishRed {
		t.Errorf("Wishlist() = %v, want untouched", got)
	}
	if got := m.MemberFilters(); got.Visible("HAN") {
		t.Errorf("MemberFilters() = %v, want untouched", got)
	}
}

func TestOwnedWithWrongValueTypeIsDiscarded(t *testing.T) {
	m := setupTestManager(t)
	putRaw(t, m, keyOwned, `{"a": true, "b": "yes"}`)

	if got := m.Owned(); len(got) != 0 {
		t.Errorf("Owned() = %v, want empty", got)
	}
}

func TestLegacyWishlistNormalizedOnWrite(t *testing.T) {
	m := setupTestManager(t)
	putRaw(t, m, keyWishlist, `{"a": true, "b": false, "c": "gold"}`)

	w := m.Wishlist()
	if w.State("a") != collection.WishRed || w.State("b") != collection.WishUnset || w.State("c") != collection.WishGold {
		t.Fatalf("Wishlist() = %v", w)
	}

	if err := m.SaveWishlist(w); err != nil {
		t.Fatal(err)
	}

	var raw string
	if err := m.db.QueryRow(`SELECT value FROM preferences WHERE key = ?`, keyWishlist).Scan(&raw); err != nil {
		t.Fatal(err)
	}
	if raw != `{"a":"red","c":"gold"}` {
		t.Errorf("stored wishlist = %s", raw)
	}
}

func TestSaveImportWritesBothRegions(t *testing.T) {
	m := setupTestManager(t)

	meta := BackupMeta{LastBackup: 1, LastImport: 2}
	if err := m.SaveImport(collection.Ownership{"z": true}, meta); err != nil {
		t.Fatalf("SaveImport: %v", err)
	}

	if !m.Owned().Has("z") {
		t.Error("owned not written")
	}
	if m.BackupMeta() != meta {
		t.Errorf("BackupMeta() = %+v", m.BackupMeta())
	}
}

func TestUpdatedAtRecorded(t *testing.T) {
	m := setupTestManager(t)
	if err := m.SaveViewMode(view.ModeCards); err != nil {
		t.Fatal(err)
	}

	var updated int64
	if err := m.db.QueryRow(`SELECT updated_at FROM preferences WHERE key = ?`, keyViewMode).Scan(&updated); err != nil {
		t.Fatal(err)
	}
	if updated != 1_700_000_000_000 {
		t.Errorf("updated_at = %d", updated)
	}
}

func TestOpen_CreatesDatabaseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "state.db")

	m, err := Open(path, nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := m.SaveOwned(collection.Ownership{"a": true}); err != nil {
		t.Fatal(err)
	}
	if err := m.Close(); err != nil {
		t.Fatal(err)
	}

	m, err = Open(path, nil)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer m.Close()
	if !m.Owned().Has("a") {
		t.Error("ownership not persisted across reopen")
	}
}

func TestAlbumCollapse_Default(t *testing.T) {
	a := AlbumCollapse{}
	if !a.Collapsed("x", "y", true) || a.Collapsed("x", "y", false) {
		t.Error("unsaved album should use default")
	}
	a.Set("x", "y", true)
	if !a.Collapsed("x", "y", false) {
		t.Error("saved state should override default")
	}
}

func TestBackupMeta_LastBackupTime(t *testing.T) {
	if !(BackupMeta{}).LastBackupTime().IsZero() {
		t.Error("never backed up should be zero time")
	}
	ts := time.UnixMilli(1_700_000_000_000)
	if got := (BackupMeta{LastBackup: ts.UnixMilli()}).LastBackupTime(); !got.Equal(ts) {
		t.Errorf("LastBackupTime() = %v", got)
	}
}

func TestMock_SaveErr(t *testing.T) {
	m := NewMock()
	m.SaveErr = errors.New("disk full")

	if err := m.SaveOwned(collection.Ownership{"a": true}); err == nil {
		t.Fatal("expected error")
	}
	if m.Owned().Has("a") {
		t.Error("failed save should not change state")
	}
	if m.SaveCount(keyOwned) != 0 {
		t.Error("failed save counted")
	}
}
