package collection

import (
	"math"

	"github.com/llehouerou/pccollector/internal/catalog"
)

// Stats is an owned/total/wishlisted aggregate over a set of items.
type Stats struct {
	Owned      int
	Total      int
	Wishlisted int
}

// Percent returns the owned share rounded to the nearest integer.
// An empty set is 0%.
func (s Stats) Percent() int {
	if s.Total == 0 {
		return 0
	}
	return int(math.Round(float64(s.Owned) / float64(s.Total) * 100))
}

// Unowned returns the number of items not owned.
func (s Stats) Unowned() int {
	return s.Total - s.Owned
}

// Add returns the sum of s and o.
func (s Stats) Add(o Stats) Stats {
	return Stats{
		Owned:      s.Owned + o.Owned,
		Total:      s.Total + o.Total,
		Wishlisted: s.Wishlisted + o.Wishlisted,
	}
}

// Count aggregates items.
func Count(items []catalog.Item, owned Ownership, wish Wishlist) Stats {
	var s Stats
	for _, it := range items {
		s.Total++
		if owned.Has(it.ID) {
			s.Owned++
		}
		if wish.State(it.ID) != WishUnset {
			s.Wishlisted++
		}
	}
	return s
}

// AlbumStats aggregates the full membership of every album in items,
// independent of any filter. Keys use catalog.UnknownAlbum for items
// without an album.
func AlbumStats(items []catalog.Item, owned Ownership, wish Wishlist) map[string]Stats {
	out := make(map[string]Stats)
	for _, g := range GroupByAlbum(items) {
		out[g.Album] = Count(g.Items, owned, wish)
	}
	return out
}

// MemberStat is the aggregate of one member's items.
type MemberStat struct {
	Member string
	Stats
}

// MemberStats aggregates items per member in first-seen order.
// Items without a member are skipped.
func MemberStats(items []catalog.Item, owned Ownership, wish Wishlist) []MemberStat {
	index := make(map[string]int)
	var out []MemberStat
	for _, it := range items {
		if it.Member == "" {
			continue
		}
		i, ok := index[it.Member]
		if !ok {
			i = len(out)
			index[it.Member] = i
			out = append(out, MemberStat{Member: it.Member})
		}
		out[i].Total++
		if owned.Has(it.ID) {
			out[i].Owned++
		}
		if wish.State(it.ID) != WishUnset {
			out[i].Wishlisted++
		}
	}
	return out
}

// CategoryStats aggregates every category of c.
func CategoryStats(c *catalog.Catalog, owned Ownership, wish Wishlist) map[string]Stats {
	out := make(map[string]Stats, len(c.Categories()))
	for _, cat := range c.Categories() {
		out[cat] = Count(c.Items(cat), owned, wish)
	}
	return out
}
