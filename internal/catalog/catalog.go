// Package catalog loads the static, category-partitioned item catalog.
package catalog

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// UnknownAlbum is the group used for items without an album.
const UnknownAlbum = "Unknown"

// Item is a single collectible. Items are immutable after load.
type Item struct {
	ID       string
	Name     string
	Member   string
	Album    string
	Image    string
	Category string
}

// AlbumOrUnknown returns the item's album, or UnknownAlbum when empty.
func (i Item) AlbumOrUnknown() string {
	if i.Album == "" {
		return UnknownAlbum
	}
	return i.Album
}

// rawItem mirrors the on-disk shape. Unrecognized fields are ignored.
type rawItem struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Member string `json:"member"`
	Album  string `json:"album"`
	Source string `json:"source"` // legacy album field
	Img    string `json:"img"`
	Image  string `json:"image"`
}

// Catalog holds every category's items in file order.
type Catalog struct {
	categories []string
	items      map[string][]Item
	byID       map[string]Item
}

// LoadDir loads categories from <dir>/<category>.json.
func LoadDir(dir string, categories []string) (*Catalog, error) {
	return Load(os.DirFS(dir), categories)
}

// Load reads one JSON array per category from fsys and validates every item.
// Ids must be unique across all categories of the load pass.
func Load(fsys fs.FS, categories []string) (*Catalog, error) {
	c := &Catalog{
		categories: append([]string(nil), categories...),
		items:      make(map[string][]Item, len(categories)),
		byID:       make(map[string]Item),
	}

	for _, category := range categories {
		raw, err := readCategory(fsys, category)
		if err != nil {
			return nil, &Error{Kind: KindResource, Category: category, Index: -1, Err: err}
		}

		items := make([]Item, 0, len(raw))
		for i, r := range raw {
			if r.ID == "" || r.Name == "" {
				return nil, &Error{Kind: KindInvalidItem, Category: category, ID: r.ID, Index: i}
			}
			if _, seen := c.byID[r.ID]; seen {
				return nil, &Error{Kind: KindDuplicateID, Category: category, ID: r.ID, Index: i}
			}

			item := Item{
				ID:       r.ID,
				Name:     r.Name,
				Member:   r.Member,
				Album:    r.Album,
				Image:    r.Img,
				Category: category,
			}
			if item.Album == "" && r.Source != "" {
				item.Album = r.Source
			}
			if item.Image == "" {
				item.Image = r.Image
			}

			c.byID[item.ID] = item
			items = append(items, item)
		}
		c.items[category] = items
	}

	return c, nil
}

func readCategory(fsys fs.FS, category string) ([]rawItem, error) {
	data, err := fs.ReadFile(fsys, category+".json")
	if err != nil {
		return nil, err
	}
	var raw []rawItem
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, errors.New("expected a JSON array of items")
	}
	return raw, nil
}

// Categories returns the categories in load order.
func (c *Catalog) Categories() []string {
	return c.categories
}

// Items returns a category's items in file order.
func (c *Catalog) Items(category string) []Item {
	return c.items[category]
}

// Item looks up an item by id across all categories.
func (c *Catalog) Item(id string) (Item, bool) {
	item, ok := c.byID[id]
	return item, ok
}

// Len returns the total number of items.
func (c *Catalog) Len() int {
	return len(c.byID)
}

// Members returns the distinct non-empty members of a category in first-seen order.
func (c *Catalog) Members(category string) []string {
	var members []string
	seen := make(map[string]bool)
	for _, item := range c.items[category] {
		if item.Member == "" || seen[item.Member] {
			continue
		}
		seen[item.Member] = true
		members = append(members, item.Member)
	}
	return members
}

// Albums returns the distinct albums of a category in first-seen order,
// with UnknownAlbum standing in for items without one.
func (c *Catalog) Albums(category string) []string {
	var albums []string
	seen := make(map[string]bool)
	for _, item := range c.items[category] {
		album := item.AlbumOrUnknown()
		if seen[album] {
			continue
		}
		seen[album] = true
		albums = append(albums, album)
	}
	return albums
}

// AlbumItems returns every item of a category belonging to album, in file order.
func (c *Catalog) AlbumItems(category, album string) []Item {
	var items []Item
	for _, item := range c.items[category] {
		if item.AlbumOrUnknown() == album {
			items = append(items, item)
		}
	}
	return items
}

var titleCaser = cases.Title(language.English)

// Label turns a category id such as "korean_pob" into "Korean POB".
func Label(category string) string {
	words := strings.FieldsFunc(category, func(r rune) bool { return r == '_' || r == '-' })
	for i, w := range words {
		if acronyms[strings.ToLower(w)] {
			words[i] = strings.ToUpper(w)
			continue
		}
		words[i] = titleCaser.String(w)
	}
	return strings.Join(words, " ")
}

// acronyms are category words shown upper-cased.
var acronyms = map[string]bool{"pob": true, "pc": true}
