package collection

// OwnedFilter narrows items by ownership or wishlist state.
type OwnedFilter int

const (
	FilterAll OwnedFilter = iota
	FilterOwned
	FilterUnowned
	FilterWishlisted
)

var ownedFilterNames = []string{"all", "owned", "unowned", "wishlisted"}

func (f OwnedFilter) String() string {
	if f < 0 || int(f) >= len(ownedFilterNames) {
		return ownedFilterNames[0]
	}
	return ownedFilterNames[f]
}

// Next cycles all → owned → unowned → wishlisted → all.
func (f OwnedFilter) Next() OwnedFilter {
	return (f + 1) % OwnedFilter(len(ownedFilterNames))
}

// ParseOwnedFilter parses a filter name, returning FilterAll for unknown names.
func ParseOwnedFilter(s string) OwnedFilter {
	for i, name := range ownedFilterNames {
		if name == s {
			return OwnedFilter(i)
		}
	}
	return FilterAll
}

// SortKey is the per-album sort field.
type SortKey int

const (
	SortNone SortKey = iota
	SortCollected
	SortName
	SortMember
)

var sortKeyNames = []string{"none", "collected", "name", "member"}

func (k SortKey) String() string {
	if k < 0 || int(k) >= len(sortKeyNames) {
		return sortKeyNames[0]
	}
	return sortKeyNames[k]
}

// Next cycles none → collected → name → member → none.
func (k SortKey) Next() SortKey {
	return (k + 1) % SortKey(len(sortKeyNames))
}

// ParseSortKey parses a key name, returning SortNone for unknown names.
func ParseSortKey(s string) SortKey {
	for i, name := range sortKeyNames {
		if name == s {
			return SortKey(i)
		}
	}
	return SortNone
}

// SortDirection orders the sort.
type SortDirection int

const (
	Ascending SortDirection = iota
	Descending
)

func (d SortDirection) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

// SortState is the active sort. It lives for the process only.
type SortState struct {
	Key       SortKey
	Direction SortDirection
}

// Label returns a short description such as "name desc", or "" when unsorted.
func (s SortState) Label() string {
	if s.Key == SortNone {
		return ""
	}
	return s.Key.String() + " " + s.Direction.String()
}
