package collection

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/pccollector/internal/catalog"
)

func TestStats_Percent(t *testing.T) {
	tests := []struct {
		owned, total, want int
	}{
		{0, 0, 0},
		{1, 2, 50},
		{1, 3, 33},
		{2, 3, 67},
		{1, 8, 13}, // 12.5 rounds up
		{3, 3, 100},
	}
	for _, tt := range tests {
		s := Stats{Owned: tt.owned, Total: tt.total}
		if got := s.Percent(); got != tt.want {
			t.Errorf("Percent(%d/%d) = %d, want %d", tt.owned, tt.total, got, tt.want)
		}
	}
}

func TestMemberStats_FirstSeenOrder(t *testing.T) {
	items := []catalog.Item{
		{ID: "1", Member: "HAN"},
		{ID: "2", Member: "Felix"},
		{ID: "3"},
		{ID: "4", Member: "HAN"},
	}

	got := MemberStats(items, Ownership{"4": true}, Wishlist{"2": WishRed})

	assert.Equal(t, []MemberStat{
		{Member: "HAN", Stats: Stats{Owned: 1, Total: 2}},
		{Member: "Felix", Stats: Stats{Total: 1, Wishlisted: 1}},
	}, got)
}

func TestAlbumStats_IgnoresFilters(t *testing.T) {
	items := oddinary()
	owned := Ownership{"a1-001": true}

	res := Apply(items, Query{Owned: FilterOwned, Ownership: owned})
	full := AlbumStats(items, owned, nil)

	assert.Equal(t, Stats{Owned: 1, Total: 2}, full["ODDINARY"])
	assert.Equal(t, Stats{Owned: 1, Total: 1}, res.Groups[0].Visible)
}

func TestStats_AddAndUnowned(t *testing.T) {
	s := Stats{Owned: 1, Total: 4, Wishlisted: 1}.Add(Stats{Owned: 2, Total: 2})
	assert.Equal(t, Stats{Owned: 3, Total: 6, Wishlisted: 1}, s)
	assert.Equal(t, 3, s.Unowned())
}
