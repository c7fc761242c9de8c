//nolint:goconst // test cases intentionally repeat strings for readability
package keymap

import (
	"testing"
)

func TestByContext(t *testing.T) {
	tests := []struct {
		name            string
		context         string
		expectMinLength int
	}{
		{"global context", "global", 5},
		{"filter context", "filter", 5},
		{"collection context", "collection", 10},
		{"backup context", "backup", 4},
		{"unknown context returns empty", "unknown", 0},
		{"empty context returns empty", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ByContext(tt.context)

			if tt.expectMinLength == 0 && len(result) != 0 {
				t.Errorf("ByContext(%q) returned %d items, expected empty", tt.context, len(result))
			}
			if len(result) < tt.expectMinLength {
				t.Errorf("ByContext(%q) returned %d items, expected at least %d", tt.context, len(result), tt.expectMinLength)
			}

			for _, binding := range result {
				if binding.Context != tt.context {
					t.Errorf("binding context = %q, want %q", binding.Context, tt.context)
				}
			}
		})
	}
}

func TestAllBindingsHaveActionAndKeys(t *testing.T) {
	for _, b := range All {
		if b.Action == "" {
			t.Errorf("binding %q has no action", b.Description)
		}
		if len(b.Keys) == 0 {
			t.Errorf("binding %q has no keys", b.Description)
		}
		if b.Description == "" {
			t.Errorf("binding for %q has no description", b.Action)
		}
	}
}

func TestAllKeysAreUnique(t *testing.T) {
	seen := make(map[string]Action)
	for _, b := range All {
		for _, k := range b.Keys {
			if prev, ok := seen[k]; ok {
				t.Errorf("key %q bound to both %q and %q", k, prev, b.Action)
			}
			seen[k] = b.Action
		}
	}
}

func TestDisplayKey(t *testing.T) {
	if DisplayKey(" ") != "space" {
		t.Errorf("DisplayKey(space) = %q", DisplayKey(" "))
	}
	if DisplayKey("W") != "W" {
		t.Errorf("DisplayKey(W) = %q", DisplayKey("W"))
	}
}
