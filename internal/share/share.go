// Package share renders the wishlist as a Markdown sheet and a standalone
// HTML page that can be sent to trading partners.
package share

import (
	"bytes"
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/llehouerou/pccollector/internal/catalog"
	"github.com/llehouerou/pccollector/internal/collection"
	"github.com/llehouerou/pccollector/internal/images"
)

const (
	MarkdownFileName = "pccollector-wishlist.md"
	HTMLFileName     = "pccollector-wishlist.html"
)

var sections = []struct {
	state collection.WishState
	title string
}{
	{collection.WishGold, "Top priority"},
	{collection.WishRed, "Wishlist"},
}

var htmlPolicy = newHTMLPolicy()

func newHTMLPolicy() *bluemonday.Policy {
	policy := bluemonday.UGCPolicy()
	policy.AllowAttrs("loading", "width").OnElements("img")
	return policy
}

// Markdown renders wishlisted items grouped by priority, category and album.
// Owned items are left out. Images are linked when res is non-nil; missing
// files link the placeholder.
func Markdown(c *catalog.Catalog, wish collection.Wishlist, owned collection.Ownership, res *images.Cache) []byte {
	var b bytes.Buffer
	b.WriteString("# Photocard wishlist\n")

	total := 0
	for _, sec := range sections {
		var body bytes.Buffer
		count := 0
		for _, cat := range c.Categories() {
			var items []catalog.Item
			for _, it := range c.Items(cat) {
				if wish.State(it.ID) == sec.state && !owned.Has(it.ID) {
					items = append(items, it)
				}
			}
			if len(items) == 0 {
				continue
			}
			fmt.Fprintf(&body, "\n### %s\n", catalog.Label(cat))
			for _, g := range collection.GroupByAlbum(items) {
				fmt.Fprintf(&body, "\n#### %s\n\n", escape(g.Album))
				for _, it := range g.Items {
					writeItem(&body, it, res)
					count++
				}
			}
		}
		if count == 0 {
			continue
		}
		total += count
		fmt.Fprintf(&b, "\n## %s (%d)\n", sec.title, count)
		b.Write(body.Bytes())
	}

	if total == 0 {
		b.WriteString("\nNothing on the wishlist.\n")
	}
	return b.Bytes()
}

func writeItem(b *bytes.Buffer, it catalog.Item, res *images.Cache) {
	b.WriteString("- **")
	b.WriteString(escape(it.Name))
	b.WriteString("**")
	if it.Member != "" {
		b.WriteString(" · ")
		b.WriteString(escape(it.Member))
	}
	fmt.Fprintf(b, " `%s`", it.ID)
	if res != nil {
		fmt.Fprintf(b, "\n  ![%s](<%s>)", escape(it.Name), res.Path(it))
	}
	b.WriteString("\n")
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`, "*", `\*`, "_", `\_`, "`", "\\`",
	"[", `\[`, "]", `\]`, "<", `\<`, "#", `\#`,
)

func escape(s string) string {
	return markdownEscaper.Replace(s)
}

// HTML converts a Markdown sheet into a sanitized standalone page.
func HTML(markdown []byte) ([]byte, error) {
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))

	var body bytes.Buffer
	if err := md.Convert(markdown, &body); err != nil {
		return nil, fmt.Errorf("render wishlist: %w", err)
	}

	var page bytes.Buffer
	page.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&page, "<title>%s</title>\n", html.EscapeString("Photocard wishlist"))
	page.WriteString("<style>body{font-family:sans-serif;max-width:48rem;margin:auto}img{width:120px}</style>\n")
	page.WriteString("</head>\n<body>\n")
	page.Write(htmlPolicy.SanitizeBytes(body.Bytes()))
	page.WriteString("</body>\n</html>\n")
	return page.Bytes(), nil
}

// WriteFiles writes the Markdown and HTML sheets into dir and returns their paths.
func WriteFiles(dir string, markdown []byte) (mdPath, htmlPath string, err error) {
	page, err := HTML(markdown)
	if err != nil {
		return "", "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", "", fmt.Errorf("create share dir: %w", err)
	}

	mdPath = filepath.Join(dir, MarkdownFileName)
	if err := os.WriteFile(mdPath, markdown, 0o644); err != nil {
		return "", "", fmt.Errorf("write wishlist markdown: %w", err)
	}
	htmlPath = filepath.Join(dir, HTMLFileName)
	if err := os.WriteFile(htmlPath, page, 0o644); err != nil {
		return "", "", fmt.Errorf("write wishlist html: %w", err)
	}
	return mdPath, htmlPath, nil
}
