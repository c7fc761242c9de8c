package headerbar

import (
	"strings"
	"testing"

	"github.com/llehouerou/pccollector/internal/ui/testutil"
)

var tabs = []Tab{
	{Key: "F1", Label: "Korean Albums", Percent: 42},
	{Key: "F2", Label: "Japanese Albums", Percent: 100},
	{Key: "F3", Label: "Korean POB", Percent: 0},
	{Key: "F4", Label: "Japanese POB", Percent: 7},
}

func TestRender_AllTabsWhenWide(t *testing.T) {
	out := testutil.StripANSI(Render(tabs, 0, 160))

	for _, want := range []string{Title, "F1 Korean Albums 42%", "F2 Japanese Albums 100%", "F4 Japanese POB 7%"} {
		if !strings.Contains(out, want) {
			t.Errorf("header missing %q: %q", want, out)
		}
	}
	if w := testutil.Width(out); w != 160 {
		t.Errorf("width = %d, want 160", w)
	}
}

func TestRender_NarrowKeepsActiveTab(t *testing.T) {
	out := testutil.StripANSI(Render(tabs, 3, 60))

	if !strings.Contains(out, "Japanese POB") {
		t.Errorf("active tab dropped: %q", out)
	}
	if testutil.Width(out) > 60 {
		t.Errorf("width = %d, exceeds 60", testutil.Width(out))
	}
}

func TestRender_TooNarrow(t *testing.T) {
	if got := Render(tabs, 0, 10); got != "" {
		t.Errorf("expected empty header, got %q", got)
	}
}
