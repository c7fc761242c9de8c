// Package view projects pipeline output into a presentation-neutral
// document. Projection is pure: the same input always yields the same
// document, and no UI toolkit is involved.
package view

import (
	"fmt"

	"github.com/llehouerou/pccollector/internal/catalog"
	"github.com/llehouerou/pccollector/internal/collection"
)

// Row is one item as displayed.
type Row struct {
	ID     string
	Name   string
	Member string
	Album  string
	Owned  bool
	Wish   collection.WishState
	Image  string
}

// Section is one album: a header and, unless collapsed, its rows.
type Section struct {
	Album      string
	HeaderText string
	Collapsed  bool
	Full       collection.Stats // whole album, unfiltered
	Visible    collection.Stats // rows passing the filters
	Pending    string           // armed bulk action label, if any
	Rows       []Row
}

// Document is the projected collection.
type Document struct {
	Mode     Mode
	Filter   collection.OwnedFilter
	Member   string // member resolved from the search, if any
	Sections []Section
	Empty    bool

	// Visible aggregates the rows passing the filters, across albums.
	Visible collection.Stats
}

// Input is everything Project reads.
type Input struct {
	Result     collection.Result
	AlbumStats map[string]collection.Stats
	Filter     collection.OwnedFilter
	Ownership  collection.Ownership
	Wishlist   collection.Wishlist
	Mode       Mode

	// Collapsed reports whether album is collapsed. Nil means expanded.
	Collapsed func(album string) bool
	// Image resolves an item's image. Nil leaves Row.Image empty.
	Image func(catalog.Item) string
	// Pending maps album to the label of an armed bulk action.
	Pending map[string]string
}

// Project builds the document for in.
func Project(in Input) Document {
	doc := Document{
		Mode:     in.Mode,
		Filter:   in.Filter,
		Member:   in.Result.Member,
		Sections: make([]Section, 0, len(in.Result.Groups)),
		Empty:    in.Result.Visible == 0,
	}

	for _, g := range in.Result.Groups {
		full, ok := in.AlbumStats[g.Album]
		if !ok {
			full = g.Visible
		}
		sec := Section{
			Album:      g.Album,
			HeaderText: HeaderText(in.Filter, full),
			Collapsed:  in.Collapsed != nil && in.Collapsed(g.Album),
			Full:       full,
			Visible:    g.Visible,
			Pending:    in.Pending[g.Album],
		}
		doc.Visible = doc.Visible.Add(g.Visible)
		if !sec.Collapsed {
			sec.Rows = make([]Row, 0, len(g.Items))
			for _, it := range g.Items {
				sec.Rows = append(sec.Rows, projectRow(it, in))
			}
		}
		doc.Sections = append(doc.Sections, sec)
	}
	return doc
}

func projectRow(it catalog.Item, in Input) Row {
	r := Row{
		ID:     it.ID,
		Name:   it.Name,
		Member: it.Member,
		Album:  it.AlbumOrUnknown(),
		Owned:  in.Ownership.Has(it.ID),
		Wish:   in.Wishlist.State(it.ID),
	}
	if in.Image != nil {
		r.Image = in.Image(it)
	}
	return r
}

// HeaderText is the album header aggregate for the active owned filter.
func HeaderText(f collection.OwnedFilter, s collection.Stats) string {
	switch f {
	case collection.FilterUnowned:
		return fmt.Sprintf("%d/%d (%d%%)", s.Unowned(), s.Total, 100-s.Percent())
	case collection.FilterWishlisted:
		return fmt.Sprintf("%d on wishlist", s.Wishlisted)
	}
	return fmt.Sprintf("%d/%d (%d%%)", s.Owned, s.Total, s.Percent())
}

// RowCount returns the number of rows across sections.
func (d Document) RowCount() int {
	n := 0
	for _, s := range d.Sections {
		n += len(s.Rows)
	}
	return n
}

// Section returns the section for album.
func (d Document) Section(album string) (Section, bool) {
	for _, s := range d.Sections {
		if s.Album == album {
			return s, true
		}
	}
	return Section{}, false
}
