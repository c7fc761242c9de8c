// Package images resolves where an item's photo lives.
package images

import (
	"os"
	"path"
	"strings"

	"github.com/llehouerou/pccollector/internal/catalog"
)

const (
	photocardsDir   = "photocards"
	placeholderPath = "ui/placeholder.webp"
	extension       = ".webp"
)

// Resolver maps items to image paths under Base.
type Resolver struct {
	Base string

	// exists reports whether a resolved path can be loaded. Defaults to os.Stat.
	exists func(string) bool
}

// NewResolver creates a resolver rooted at base.
func NewResolver(base string) Resolver {
	return Resolver{Base: strings.TrimSuffix(base, "/")}
}

// Placeholder returns the image shown when an item has no usable photo.
func (r Resolver) Placeholder() string {
	return r.join(placeholderPath)
}

// Resolve returns <base>/photocards/<category>/<album-folder>/<id>.webp,
// where album-folder is the id up to its first '-'.
// An explicit item image overrides the derived path: URLs and absolute
// paths are kept, relative ones are taken under base.
// Items without an id resolve to the placeholder.
func (r Resolver) Resolve(item catalog.Item) string {
	if img := strings.TrimSpace(item.Image); img != "" {
		if strings.Contains(img, "://") || path.IsAbs(img) {
			return img
		}
		return r.join(path.Clean(img))
	}
	id := strings.TrimSpace(item.ID)
	if id == "" || strings.ContainsAny(id, `/\`) {
		return r.Placeholder()
	}
	folder, _, _ := strings.Cut(id, "-")
	return r.join(path.Join(photocardsDir, item.Category, folder, id+extension))
}

// ResolveExisting is Resolve, falling back to the placeholder when the file
// cannot be found.
func (r Resolver) ResolveExisting(item catalog.Item) string {
	p := r.Resolve(item)
	if p == r.Placeholder() || strings.Contains(p, "://") {
		return p
	}
	if !r.fileExists(p) {
		return r.Placeholder()
	}
	return p
}

func (r Resolver) fileExists(p string) bool {
	if r.exists != nil {
		return r.exists(p)
	}
	info, err := os.Stat(p)
	return err == nil && !info.IsDir()
}

func (r Resolver) join(rel string) string {
	if r.Base == "" {
		return rel
	}
	return r.Base + "/" + rel
}

// Cache remembers ResolveExisting results per item id, so the file check
// runs once per item rather than on every render.
type Cache struct {
	resolver Resolver
	paths    map[string]string
}

// NewCache creates an empty cache over r.
func NewCache(r Resolver) *Cache {
	return &Cache{resolver: r, paths: make(map[string]string)}
}

// Path returns the item's image, or the placeholder when it cannot be found.
func (c *Cache) Path(item catalog.Item) string {
	if p, ok := c.paths[item.ID]; ok {
		return p
	}
	p := c.resolver.ResolveExisting(item)
	c.paths[item.ID] = p
	return p
}

// Placeholder returns the resolver's placeholder path.
func (c *Cache) Placeholder() string {
	return c.resolver.Placeholder()
}
