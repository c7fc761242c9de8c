package catalog

import (
	"errors"
	"slices"
	"testing"
	"testing/fstest"
)

func mapFS(files map[string]string) fstest.MapFS {
	fsys := fstest.MapFS{}
	for name, content := range files {
		fsys[name] = &fstest.MapFile{Data: []byte(content)}
	}
	return fsys
}

func TestLoad_Valid(t *testing.T) {
	fsys := mapFS(map[string]string{
		"korean_albums.json": `[
			{"id":"a1-001","name":"Felix","member":"Felix","album":"ODDINARY","img":"x.webp","extra":42},
			{"id":"a1-002","name":"Hyunjin","member":"Hyunjin","source":"MAXIDENT"},
			{"id":"a1-003","name":"Group photo"}
		]`,
		"japanese_pob.json": `[{"id":"j1-001","name":"HAN","member":"HAN","album":"CIRCUS"}]`,
	})

	cat, err := Load(fsys, []string{"korean_albums", "japanese_pob"})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cat.Len() != 4 {
		t.Errorf("Len() = %d, want 4", cat.Len())
	}
	if !slices.Equal(cat.Categories(), []string{"korean_albums", "japanese_pob"}) {
		t.Errorf("Categories() = %v", cat.Categories())
	}

	items := cat.Items("korean_albums")
	if len(items) != 3 {
		t.Fatalf("len(Items) = %d, want 3", len(items))
	}
	if items[0].Image != "x.webp" {
		t.Errorf("Image = %q, want x.webp", items[0].Image)
	}
	if items[1].Album != "MAXIDENT" {
		t.Errorf("legacy source not applied: Album = %q", items[1].Album)
	}
	if items[2].AlbumOrUnknown() != UnknownAlbum {
		t.Errorf("AlbumOrUnknown() = %q, want %q", items[2].AlbumOrUnknown(), UnknownAlbum)
	}
	if items[0].Category != "korean_albums" {
		t.Errorf("Category = %q", items[0].Category)
	}

	item, ok := cat.Item("j1-001")
	if !ok || item.Category != "japanese_pob" {
		t.Errorf("Item(j1-001) = %+v, %v", item, ok)
	}
}

func TestLoad_AlbumWinsOverSource(t *testing.T) {
	fsys := mapFS(map[string]string{
		"c.json": `[{"id":"x","name":"X","album":"NOEASY","source":"OLD"}]`,
	})
	cat, err := Load(fsys, []string{"c"})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := cat.Items("c")[0].Album; got != "NOEASY" {
		t.Errorf("Album = %q, want NOEASY", got)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name       string
		files      map[string]string
		categories []string
		kind       ErrorKind
		id         string
	}{
		{
			name:       "missing resource",
			files:      map[string]string{},
			categories: []string{"korean_albums"},
			kind:       KindResource,
		},
		{
			name:       "malformed json",
			files:      map[string]string{"c.json": `[{"id":`},
			categories: []string{"c"},
			kind:       KindResource,
		},
		{
			name:       "object instead of array",
			files:      map[string]string{"c.json": `{"id":"x"}`},
			categories: []string{"c"},
			kind:       KindResource,
		},
		{
			name:       "null document",
			files:      map[string]string{"c.json": `null`},
			categories: []string{"c"},
			kind:       KindResource,
		},
		{
			name:       "missing id",
			files:      map[string]string{"c.json": `[{"name":"Felix"}]`},
			categories: []string{"c"},
			kind:       KindInvalidItem,
		},
		{
			name:       "missing name",
			files:      map[string]string{"c.json": `[{"id":"a1-001"}]`},
			categories: []string{"c"},
			kind:       KindInvalidItem,
			id:         "a1-001",
		},
		{
			name:       "empty name",
			files:      map[string]string{"c.json": `[{"id":"a1-001","name":""}]`},
			categories: []string{"c"},
			kind:       KindInvalidItem,
			id:         "a1-001",
		},
		{
			name: "duplicate within category",
			files: map[string]string{"c.json": `[
				{"id":"a1-001","name":"Felix"},
				{"id":"a1-001","name":"Felix again"}
			]`},
			categories: []string{"c"},
			kind:       KindDuplicateID,
			id:         "a1-001",
		},
		{
			name: "duplicate across categories",
			files: map[string]string{
				"a.json": `[{"id":"a1-001","name":"Felix"}]`,
				"b.json": `[{"id":"a1-001","name":"Felix"}]`,
			},
			categories: []string{"a", "b"},
			kind:       KindDuplicateID,
			id:         "a1-001",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat, err := Load(mapFS(tt.files), tt.categories)
			if err == nil {
				t.Fatal("expected error")
			}
			if cat != nil {
				t.Error("expected nil catalog on error")
			}

			var cerr *Error
			if !errors.As(err, &cerr) {
				t.Fatalf("error %T is not *catalog.Error", err)
			}
			if cerr.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", cerr.Kind, tt.kind)
			}
			if tt.id != "" && cerr.ID != tt.id {
				t.Errorf("ID = %q, want %q", cerr.ID, tt.id)
			}
			if cerr.Error() == "" {
				t.Error("empty error message")
			}
		})
	}
}

func TestLoad_DuplicateReportsSecondCategory(t *testing.T) {
	fsys := mapFS(map[string]string{
		"a.json": `[{"id":"dup","name":"One"}]`,
		"b.json": `[{"id":"ok","name":"Two"},{"id":"dup","name":"Three"}]`,
	})

	_, err := Load(fsys, []string{"a", "b"})

	var cerr *Error
	if !errors.As(err, &cerr) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if cerr.Category != "b" || cerr.Index != 1 {
		t.Errorf("Category/Index = %q/%d, want b/1", cerr.Category, cerr.Index)
	}
}

func TestMembersAndAlbums_FirstSeenOrder(t *testing.T) {
	fsys := mapFS(map[string]string{
		"c.json": `[
			{"id":"1","name":"a","member":"HAN","album":"NOEASY"},
			{"id":"2","name":"b","member":"Felix","album":"ODDINARY"},
			{"id":"3","name":"c","member":"HAN","album":"NOEASY"},
			{"id":"4","name":"d"}
		]`,
	})
	cat, err := Load(fsys, []string{"c"})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got := cat.Members("c"); !slices.Equal(got, []string{"HAN", "Felix"}) {
		t.Errorf("Members() = %v", got)
	}
	if got := cat.Albums("c"); !slices.Equal(got, []string{"NOEASY", "ODDINARY", UnknownAlbum}) {
		t.Errorf("Albums() = %v", got)
	}
	if got := cat.AlbumItems("c", "NOEASY"); len(got) != 2 || got[0].ID != "1" || got[1].ID != "3" {
		t.Errorf("AlbumItems() = %+v", got)
	}
}

func TestLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"korean_albums", "Korean Albums"},
		{"japanese_pob", "Japanese POB"},
		{"special-events", "Special Events"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Label(tt.in); got != tt.want {
			t.Errorf("Label(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
