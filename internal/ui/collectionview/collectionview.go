// Package collectionview draws a view.Document as a list, cards or a grid
// and keeps the cursor over it.
//
// The document is flattened into units: an album header, or a row (list and
// cards), or a line of tiles (grid). The cursor moves over units; in grid
// mode a column picks the tile within a unit.
package collectionview

import (
	"github.com/llehouerou/pccollector/internal/ui"
	"github.com/llehouerou/pccollector/internal/ui/cursor"
	"github.com/llehouerou/pccollector/internal/view"
)

// Entry identifies what the cursor is on. ID is empty on an album header.
type Entry struct {
	Album string
	ID    string

	section int
	row     int // -1 for the header
}

// IsHeader reports whether the entry is an album header.
func (e Entry) IsHeader() bool {
	return e.row < 0
}

type unit struct {
	entries []Entry
}

// Snapshot is a cursor position captured before a mutation.
type Snapshot struct {
	Pos, Offset, Col int
}

// Model is the collection adapter.
type Model struct {
	ui.Base
	doc    view.Document
	units  []unit
	cursor cursor.Cursor
	col    int
}

// New creates an empty view.
func New() Model {
	return Model{cursor: cursor.New(ui.ScrollMargin)}
}

// SetSize implements the sizing contract. Grid columns depend on width.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.rebuild()
}

// SetDocument replaces the rendered document. The cursor is clamped to
// the new content but otherwise stays where it was.
func (m *Model) SetDocument(doc view.Document) {
	m.doc = doc
	m.rebuild()
}

// Document returns the current document.
func (m *Model) Document() view.Document {
	return m.doc
}

func (m *Model) rebuild() {
	m.units = m.units[:0]
	cols := m.columns()
	for si, sec := range m.doc.Sections {
		m.units = append(m.units, unit{entries: []Entry{{Album: sec.Album, section: si, row: -1}}})

		step := 1
		if m.doc.Mode == view.ModeGrid {
			step = cols
		}
		for start := 0; start < len(sec.Rows); start += step {
			end := min(start+step, len(sec.Rows))
			u := unit{entries: make([]Entry, 0, end-start)}
			for ri := start; ri < end; ri++ {
				u.entries = append(u.entries, Entry{Album: sec.Album, ID: sec.Rows[ri].ID, section: si, row: ri})
			}
			m.units = append(m.units, u)
		}
	}
	m.cursor.Restore(m.cursor.Pos(), m.cursor.Offset(), len(m.units), m.viewport())
	m.clampCol()
}

// columns is the number of tiles per grid line.
func (m *Model) columns() int {
	return max(m.Width()/ui.GridTileWidth, 1)
}

// unitHeight is the number of screen lines one unit takes.
func (m *Model) unitHeight() int {
	if m.doc.Mode == view.ModeList {
		return 1
	}
	return 2
}

// viewport is the number of units that fit on screen.
func (m *Model) viewport() int {
	return max(m.Height()/m.unitHeight(), 1)
}

func (m *Model) clampCol() {
	if len(m.units) == 0 {
		m.col = 0
		return
	}
	m.col = max(0, min(m.col, len(m.units[m.cursor.Pos()].entries)-1))
}

// Current returns the entry under the cursor.
func (m *Model) Current() (Entry, bool) {
	if len(m.units) == 0 {
		return Entry{}, false
	}
	entries := m.units[m.cursor.Pos()].entries
	return entries[min(m.col, len(entries)-1)], true
}

// CurrentAlbum returns the album of the entry under the cursor.
func (m *Model) CurrentAlbum() string {
	e, _ := m.Current()
	return e.Album
}

// CurrentID returns the item under the cursor, if the cursor is on a row.
func (m *Model) CurrentID() (string, bool) {
	e, ok := m.Current()
	if !ok || e.IsHeader() {
		return "", false
	}
	return e.ID, true
}

// Move moves the cursor by delta units.
func (m *Model) Move(delta int) {
	m.cursor.Move(delta, len(m.units), m.viewport())
	m.clampCol()
}

// MoveColumn moves between tiles of a grid line.
func (m *Model) MoveColumn(delta int) {
	if m.doc.Mode != view.ModeGrid {
		return
	}
	m.col += delta
	m.clampCol()
}

// JumpStart moves to the first unit.
func (m *Model) JumpStart() {
	m.cursor.Jump(0, len(m.units), m.viewport())
	m.col = 0
}

// JumpEnd moves to the last unit.
func (m *Model) JumpEnd() {
	m.cursor.Jump(len(m.units)-1, len(m.units), m.viewport())
	m.clampCol()
}

// Page moves by half a screen in the direction of sign.
func (m *Model) Page(sign int) {
	m.Move(sign * max(m.viewport()/2, 1))
}

// Reset moves to the top.
func (m *Model) Reset() {
	m.cursor.Reset()
	m.col = 0
}

// Focus puts the cursor on the given album header (id empty) or item.
// It reports whether the entry was found.
func (m *Model) Focus(album, id string) bool {
	for i, u := range m.units {
		for ci, e := range u.entries {
			if e.Album == album && e.ID == id {
				m.cursor.Jump(i, len(m.units), m.viewport())
				m.col = ci
				return true
			}
		}
	}
	return false
}

// Snapshot captures the cursor for a later Restore.
func (m *Model) Snapshot() Snapshot {
	return Snapshot{Pos: m.cursor.Pos(), Offset: m.cursor.Offset(), Col: m.col}
}

// Restore puts the cursor back where s was taken, clamped to the content.
func (m *Model) Restore(s Snapshot) {
	m.cursor.Restore(s.Pos, s.Offset, len(m.units), m.viewport())
	m.col = s.Col
	m.clampCol()
}

// Offset returns the first visible unit.
func (m *Model) Offset() int {
	return m.cursor.Offset()
}

// Len returns the number of units.
func (m *Model) Len() int {
	return len(m.units)
}
