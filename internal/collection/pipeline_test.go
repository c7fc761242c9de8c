package collection

import (
	"slices"
	"testing"

	"github.com/llehouerou/pccollector/internal/catalog"
)

func oddinary() []catalog.Item {
	return []catalog.Item{
		{ID: "a1-001", Name: "Felix", Member: "Felix", Album: "ODDINARY"},
		{ID: "a1-002", Name: "Hyunjin", Member: "Hyunjin", Album: "ODDINARY"},
	}
}

func TestApply_OwnedFilterScenario(t *testing.T) {
	items := oddinary()
	owned := Ownership{}
	owned.Toggle("a1-001")

	res := Apply(items, Query{Owned: FilterOwned, Ownership: owned})

	if got := res.IDs(); !slices.Equal(got, []string{"a1-001"}) {
		t.Fatalf("IDs() = %v, want [a1-001]", got)
	}

	full := AlbumStats(items, owned, nil)["ODDINARY"]
	if full.Owned != 1 || full.Total != 2 || full.Percent() != 50 {
		t.Errorf("album stats = %+v (%d%%), want 1/2 (50%%)", full, full.Percent())
	}
	if v := res.Groups[0].Visible; v.Total != 1 || v.Owned != 1 {
		t.Errorf("visible stats = %+v, want 1/1", v)
	}
}

func TestApply_MemberPhraseTakesPrecedence(t *testing.T) {
	items := []catalog.Item{
		{ID: "h-1", Name: "Jisung", Member: "HAN", Album: "MAXIDENT"},
		{ID: "h-2", Name: "Shanghai Fansign", Member: "Felix", Album: "MAXIDENT"},
		{ID: "h-3", Name: "Lee Know", Member: "Lee Know", Album: "Han River"},
		{ID: "h-4", Name: "Hidden", Member: "han", Album: "ROCK-STAR"},
	}
	roster := NewRoster([]string{"Bang Chan", "HAN", "Felix"})

	res := Apply(items, Query{Search: "han", Roster: roster})

	if res.Member != "HAN" {
		t.Errorf("Member = %q, want HAN", res.Member)
	}
	if got := res.IDs(); !slices.Equal(got, []string{"h-1", "h-4"}) {
		t.Errorf("IDs() = %v, want [h-1 h-4]", got)
	}
}

func TestApply_MemberPhraseWithRemainingTokens(t *testing.T) {
	items := []catalog.Item{
		{ID: "1", Name: "Felix A", Member: "Felix", Album: "ODDINARY"},
		{ID: "2", Name: "Felix B", Member: "Felix", Album: "MAXIDENT"},
		{ID: "3", Name: "Hyunjin", Member: "Hyunjin", Album: "ODDINARY"},
	}
	roster := NewRoster([]string{"Felix", "Hyunjin"})

	res := Apply(items, Query{Search: "odd felix", Roster: roster})

	if got := res.IDs(); !slices.Equal(got, []string{"1"}) {
		t.Errorf("IDs() = %v, want [1]", got)
	}
}

func TestApply_PlainSearchMatchesNameOrAlbum(t *testing.T) {
	items := []catalog.Item{
		{ID: "1", Name: "Felix Lucky Draw", Member: "Felix", Album: "5-STAR"},
		{ID: "2", Name: "Felix", Member: "Felix", Album: "5-STAR Lucky"},
		{ID: "3", Name: "Felix", Member: "Felix", Album: "NOEASY"},
		{ID: "4", Name: "Lucky", Member: "Felix"},
	}

	res := Apply(items, Query{Search: "  LUCKY  star "})

	if got := res.IDs(); !slices.Equal(got, []string{"1", "2"}) {
		t.Errorf("IDs() = %v, want [1 2]", got)
	}
}

func TestApply_MemberFilterSkippedForMemberSearch(t *testing.T) {
	items := oddinary()
	hidden := MemberFilter{"Felix": false}
	roster := NewRoster([]string{"Felix", "Hyunjin"})

	res := Apply(items, Query{Members: hidden})
	if got := res.IDs(); !slices.Equal(got, []string{"a1-002"}) {
		t.Errorf("without search IDs() = %v, want [a1-002]", got)
	}

	res = Apply(items, Query{Search: "felix", Members: hidden, Roster: roster})
	if got := res.IDs(); !slices.Equal(got, []string{"a1-001"}) {
		t.Errorf("member search IDs() = %v, want [a1-001]", got)
	}
}

func TestApply_FilterUnownedAndWishlisted(t *testing.T) {
	items := oddinary()
	owned := Ownership{"a1-001": true}
	wish := Wishlist{"a1-001": WishGold}

	if got := Apply(items, Query{Owned: FilterUnowned, Ownership: owned}).IDs(); !slices.Equal(got, []string{"a1-002"}) {
		t.Errorf("unowned = %v", got)
	}
	if got := Apply(items, Query{Owned: FilterWishlisted, Wishlist: wish}).IDs(); !slices.Equal(got, []string{"a1-001"}) {
		t.Errorf("wishlisted = %v", got)
	}
}

func TestFilterByOwnership(t *testing.T) {
	items := oddinary()
	owned := Ownership{"a1-002": true}
	wish := Wishlist{"a1-001": WishRed}

	tests := []struct {
		filter OwnedFilter
		want   []string
	}{
		{FilterAll, []string{"a1-001", "a1-002"}},
		{FilterOwned, []string{"a1-002"}},
		{FilterUnowned, []string{"a1-001"}},
		{FilterWishlisted, []string{"a1-001"}},
	}
	for _, tt := range tests {
		t.Run(tt.filter.String(), func(t *testing.T) {
			var got []string
			for _, it := range FilterByOwnership(items, tt.filter, owned, wish) {
				got = append(got, it.ID)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("FilterByOwnership(%s) = %v, want %v", tt.filter, got, tt.want)
			}
		})
	}
}

func TestGroupByAlbum_FirstSeenOrder(t *testing.T) {
	items := []catalog.Item{
		{ID: "1", Album: "B"},
		{ID: "2"},
		{ID: "3", Album: "A"},
		{ID: "4", Album: "B"},
		{ID: "5"},
	}

	groups := GroupByAlbum(items)

	var albums []string
	for _, g := range groups {
		albums = append(albums, g.Album)
	}
	if !slices.Equal(albums, []string{"B", "Unknown", "A"}) {
		t.Errorf("albums = %v", albums)
	}
	if len(groups[0].Items) != 2 || groups[0].Items[1].ID != "4" {
		t.Errorf("group B = %v", groups[0].Items)
	}
}

func TestSortItems_Stable(t *testing.T) {
	base := []catalog.Item{
		{ID: "1", Name: "B", Member: "Felix"},
		{ID: "2", Name: "A", Member: "HAN"},
		{ID: "3", Name: "B", Member: "Felix"},
		{ID: "4", Name: "A", Member: "Felix"},
		{ID: "5", Name: "B", Member: "HAN"},
	}
	owned := Ownership{"2": true, "5": true}

	tests := []struct {
		name string
		sort SortState
		want []string
	}{
		{"none keeps order", SortState{Key: SortNone}, []string{"1", "2", "3", "4", "5"}},
		{"collected asc", SortState{Key: SortCollected}, []string{"1", "3", "4", "2", "5"}},
		{"collected desc", SortState{Key: SortCollected, Direction: Descending}, []string{"2", "5", "1", "3", "4"}},
		{"name asc", SortState{Key: SortName}, []string{"2", "4", "1", "3", "5"}},
		{"name desc", SortState{Key: SortName, Direction: Descending}, []string{"1", "3", "5", "2", "4"}},
		{"member asc", SortState{Key: SortMember}, []string{"1", "3", "4", "2", "5"}},
		{"member desc", SortState{Key: SortMember, Direction: Descending}, []string{"2", "5", "1", "3", "4"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := slices.Clone(base)
			SortItems(items, tt.sort, owned)

			got := make([]string, len(items))
			for i, it := range items {
				got[i] = it.ID
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("order = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestApply_SortIsPerGroup(t *testing.T) {
	items := []catalog.Item{
		{ID: "1", Name: "Z", Album: "X"},
		{ID: "2", Name: "A", Album: "Y"},
		{ID: "3", Name: "M", Album: "X"},
	}

	res := Apply(items, Query{Sort: SortState{Key: SortName}})

	if got := res.IDs(); !slices.Equal(got, []string{"3", "1", "2"}) {
		t.Errorf("IDs() = %v, want [3 1 2]", got)
	}
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	items := []catalog.Item{
		{ID: "1", Name: "Z", Album: "X"},
		{ID: "2", Name: "A", Album: "X"},
	}
	Apply(items, Query{Sort: SortState{Key: SortName}})
	if items[0].ID != "1" {
		t.Error("Apply reordered its input")
	}
}
