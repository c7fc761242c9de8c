//nolint:goconst // test cases intentionally repeat strings for readability
package keymap

import (
	"slices"
	"testing"
)

func TestResolver_Resolve(t *testing.T) {
	bindings := []Binding{
		{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
		{ActionToggleOwned, []string{" ", "x"}, "Toggle owned", "collection"},
		{ActionMoveUp, []string{"k", "up"}, "Move up", "collection"},
		{ActionMoveDown, []string{"j", "down"}, "Move down", "collection"},
	}

	r := NewResolver(bindings)

	tests := []struct {
		key      string
		expected Action
	}{
		{"q", ActionQuit},
		{"ctrl+c", ActionQuit},
		{" ", ActionToggleOwned},
		{"x", ActionToggleOwned},
		{"k", ActionMoveUp},
		{"up", ActionMoveUp},
		{"j", ActionMoveDown},
		{"down", ActionMoveDown},
		{"unknown", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			result := r.Resolve(tt.key)
			if result != tt.expected {
				t.Errorf("Resolve(%q) = %q, want %q", tt.key, result, tt.expected)
			}
		})
	}
}

func TestResolver_KeysFor(t *testing.T) {
	bindings := []Binding{
		{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
		{ActionExport, []string{"e"}, "Export", "backup"},
		{ActionExport, []string{"e", "E"}, "Export again", "backup"},
	}

	r := NewResolver(bindings)

	tests := []struct {
		action   Action
		expected []string
	}{
		{ActionQuit, []string{"q", "ctrl+c"}},
		{ActionExport, []string{"e", "E"}},
		{ActionImport, nil},
	}

	for _, tt := range tests {
		t.Run(string(tt.action), func(t *testing.T) {
			if got := r.KeysFor(tt.action); !slices.Equal(got, tt.expected) {
				t.Errorf("KeysFor(%q) = %v, want %v", tt.action, got, tt.expected)
			}
		})
	}
}

func TestResolver_LastBindingWins(t *testing.T) {
	r := NewResolver([]Binding{
		{ActionExport, []string{"e"}, "Export", "backup"},
		{ActionImport, []string{"e"}, "Import", "backup"},
	})
	if got := r.Resolve("e"); got != ActionImport {
		t.Errorf("Resolve(e) = %q, want import", got)
	}
}

func TestDefaultResolverCoversAllBindings(t *testing.T) {
	r := NewResolver(All)
	for _, b := range All {
		for _, k := range b.Keys {
			if got := r.Resolve(k); got != b.Action {
				t.Errorf("Resolve(%q) = %q, want %q", k, got, b.Action)
			}
		}
	}
}
