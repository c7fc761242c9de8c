package collection

import (
	"cmp"
	"slices"
	"strings"

	"github.com/llehouerou/pccollector/internal/catalog"
)

// Query is every input of the filter/sort pipeline.
type Query struct {
	Search    string
	Owned     OwnedFilter
	Members   MemberFilter
	Sort      SortState
	Ownership Ownership
	Wishlist  Wishlist
	Roster    Roster
}

// Group is one album of the pipeline output.
type Group struct {
	Album   string
	Items   []catalog.Item
	Visible Stats // over Items only
}

// Result is the grouped, ordered pipeline output.
type Result struct {
	Groups  []Group
	Member  string // member resolved from the search text, if any
	Visible int
}

// IDs returns the visible item ids in display order.
func (r Result) IDs() []string {
	out := make([]string, 0, r.Visible)
	for _, g := range r.Groups {
		for _, it := range g.Items {
			out = append(out, it.ID)
		}
	}
	return out
}

// Group returns the output group for album.
func (r Result) Group(album string) (Group, bool) {
	for _, g := range r.Groups {
		if g.Album == album {
			return g, true
		}
	}
	return Group{}, false
}

// Apply runs search, ownership filter, member filter, album grouping and
// per-album sort over items. items is not modified.
func Apply(items []catalog.Item, q Query) Result {
	matched, member := Search(items, q.Search, q.Roster)
	matched = FilterByOwnership(matched, q.Owned, q.Ownership, q.Wishlist)
	if member == "" {
		matched = FilterMembers(matched, q.Members)
	}

	groups := GroupByAlbum(matched)
	for i := range groups {
		SortItems(groups[i].Items, q.Sort, q.Ownership)
		groups[i].Visible = Count(groups[i].Items, q.Ownership, q.Wishlist)
	}

	return Result{Groups: groups, Member: member, Visible: len(matched)}
}

// Search keeps items matching text. When the text contains a roster phrase,
// items must belong to that member and every other token must match the
// name or album. The resolved member is returned, or "" when none matched.
func Search(items []catalog.Item, text string, roster Roster) ([]catalog.Item, string) {
	tokens := Tokenize(text)
	if len(tokens) == 0 {
		return slices.Clone(items), ""
	}

	member, rest, ok := roster.Match(tokens)
	out := make([]catalog.Item, 0, len(items))
	for _, it := range items {
		if ok && !strings.EqualFold(it.Member, member) {
			continue
		}
		if matchesAll(it, rest) {
			out = append(out, it)
		}
	}
	return out, member
}

func matchesAll(it catalog.Item, tokens []string) bool {
	if len(tokens) == 0 {
		return true
	}
	name := strings.ToLower(it.Name)
	album := strings.ToLower(it.Album)
	for _, t := range tokens {
		if !strings.Contains(name, t) && !strings.Contains(album, t) {
			return false
		}
	}
	return true
}

// FilterByOwnership keeps items passing the ownership filter.
func FilterByOwnership(items []catalog.Item, f OwnedFilter, owned Ownership, wish Wishlist) []catalog.Item {
	if f == FilterAll {
		return items
	}
	out := make([]catalog.Item, 0, len(items))
	for _, it := range items {
		var keep bool
		switch f {
		case FilterOwned:
			keep = owned.Has(it.ID)
		case FilterUnowned:
			keep = !owned.Has(it.ID)
		case FilterWishlisted:
			keep = wish.State(it.ID) != WishUnset
		default:
			keep = true
		}
		if keep {
			out = append(out, it)
		}
	}
	return out
}

// FilterMembers keeps items whose member is visible in f.
func FilterMembers(items []catalog.Item, f MemberFilter) []catalog.Item {
	out := make([]catalog.Item, 0, len(items))
	for _, it := range items {
		if f.Visible(it.Member) {
			out = append(out, it)
		}
	}
	return out
}

// GroupByAlbum groups items by album in first-seen order.
// Items without an album go to catalog.UnknownAlbum.
func GroupByAlbum(items []catalog.Item) []Group {
	index := make(map[string]int)
	var groups []Group

	for _, it := range items {
		album := it.AlbumOrUnknown()
		i, ok := index[album]
		if !ok {
			i = len(groups)
			index[album] = i
			groups = append(groups, Group{Album: album})
		}
		groups[i].Items = append(groups[i].Items, it)
	}
	return groups
}

// SortItems stable-sorts items in place. Equal keys keep their prior order
// in both directions.
func SortItems(items []catalog.Item, s SortState, owned Ownership) {
	var compare func(a, b catalog.Item) int
	switch s.Key {
	case SortCollected:
		compare = func(a, b catalog.Item) int {
			return cmp.Compare(boolInt(owned.Has(a.ID)), boolInt(owned.Has(b.ID)))
		}
	case SortName:
		compare = func(a, b catalog.Item) int { return strings.Compare(a.Name, b.Name) }
	case SortMember:
		compare = func(a, b catalog.Item) int { return strings.Compare(a.Member, b.Member) }
	default:
		return
	}

	if s.Direction == Descending {
		asc := compare
		compare = func(a, b catalog.Item) int { return asc(b, a) }
	}
	slices.SortStableFunc(items, compare)
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
