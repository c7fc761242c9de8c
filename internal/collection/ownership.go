// Package collection holds the per-item user state and the pure
// filter/sort pipeline that turns a catalog slice into grouped, ordered items.
package collection

import (
	"encoding/json"
	"maps"
)

// Ownership maps item id to owned. A missing entry means not owned.
type Ownership map[string]bool

// Has reports whether id is owned.
func (o Ownership) Has(id string) bool {
	return o[id]
}

// Toggle flips the owned state of id and returns the new state.
// Un-owning removes the entry so the map only ever holds owned ids.
func (o Ownership) Toggle(id string) bool {
	if o[id] {
		delete(o, id)
		return false
	}
	o[id] = true
	return true
}

// Set marks every id as owned or not owned.
func (o Ownership) Set(ids []string, owned bool) {
	for _, id := range ids {
		if owned {
			o[id] = true
		} else {
			delete(o, id)
		}
	}
}

// Clone returns an independent copy.
func (o Ownership) Clone() Ownership {
	c := make(Ownership, len(o))
	maps.Copy(c, o)
	return c
}

// Count returns the number of owned ids.
func (o Ownership) Count() int {
	n := 0
	for _, v := range o {
		if v {
			n++
		}
	}
	return n
}

// Equal reports whether a and b own exactly the same ids.
// Explicit false entries are treated as absent.
func Equal(a, b Ownership) bool {
	for id, v := range a {
		if v != b[id] {
			return false
		}
	}
	for id, v := range b {
		if v != a[id] {
			return false
		}
	}
	return true
}

// WishState is the wishlist marker on an item.
type WishState int

const (
	WishUnset WishState = iota
	WishRed
	WishGold
)

// Next returns the state after one activation: unset → red → gold → unset.
func (s WishState) Next() WishState {
	switch s {
	case WishUnset:
		return WishRed
	case WishRed:
		return WishGold
	}
	return WishUnset
}

func (s WishState) String() string {
	switch s {
	case WishRed:
		return "red"
	case WishGold:
		return "gold"
	}
	return ""
}

// Wishlist maps item id to its wishlist state. Missing entries are unset.
type Wishlist map[string]WishState

// State returns the wishlist state of id.
func (w Wishlist) State(id string) WishState {
	return w[id]
}

// Cycle advances id to its next state and returns it.
func (w Wishlist) Cycle(id string) WishState {
	next := w[id].Next()
	if next == WishUnset {
		delete(w, id)
	} else {
		w[id] = next
	}
	return next
}

// Count returns the number of wishlisted ids.
func (w Wishlist) Count() int {
	n := 0
	for _, s := range w {
		if s != WishUnset {
			n++
		}
	}
	return n
}

// MarshalJSON writes states as "red"/"gold", dropping unset entries.
func (w Wishlist) MarshalJSON() ([]byte, error) {
	out := make(map[string]string, len(w))
	for id, s := range w {
		if s != WishUnset {
			out[id] = s.String()
		}
	}
	return json.Marshal(out)
}

// UnmarshalJSON reads "red"/"gold" states. The legacy boolean form is
// accepted: true means red, false means unset. Unknown values are skipped.
func (w *Wishlist) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(Wishlist, len(raw))
	for id, v := range raw {
		if s := parseWishValue(v); s != WishUnset {
			out[id] = s
		}
	}
	*w = out
	return nil
}

func parseWishValue(v json.RawMessage) WishState {
	var b bool
	if err := json.Unmarshal(v, &b); err == nil {
		if b {
			return WishRed
		}
		return WishUnset
	}
	var s string
	if err := json.Unmarshal(v, &s); err == nil {
		switch s {
		case "red":
			return WishRed
		case "gold":
			return WishGold
		}
	}
	return WishUnset
}

// MemberFilter maps member name to visible. Missing members are visible.
type MemberFilter map[string]bool

// Visible reports whether items of member pass the filter.
// Items without a member always pass.
func (f MemberFilter) Visible(member string) bool {
	if member == "" {
		return true
	}
	v, ok := f[member]
	return !ok || v
}

// Toggle flips the visibility of member and returns the new value.
func (f MemberFilter) Toggle(member string) bool {
	v := !f.Visible(member)
	f[member] = v
	return v
}
