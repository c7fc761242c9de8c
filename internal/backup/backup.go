// Package backup reads and writes versioned ownership backup files.
package backup

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/llehouerou/pccollector/internal/collection"
)

// Version is the only backup format version this build reads or writes.
const Version = 1

const exportedAtLayout = "2006-01-02T15:04:05.000Z07:00"

// File is the on-disk backup document.
type File struct {
	Version    int                  `json:"version"`
	ExportedAt string               `json:"exportedAt"`
	Owned      collection.Ownership `json:"owned"`
}

// FileName returns the name backups are written under.
func FileName() string {
	return fmt.Sprintf("pccollector-backup-v%d.json", Version)
}

// Export writes owned to w as an indented backup document stamped with now.
func Export(w io.Writer, owned collection.Ownership, now time.Time) error {
	if owned == nil {
		owned = collection.Ownership{}
	}
	doc := File{
		Version:    Version,
		ExportedAt: now.UTC().Format(exportedAtLayout),
		Owned:      owned,
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// WriteFile exports owned into dir under FileName and returns the path.
func WriteFile(dir string, owned collection.Ownership, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create backup dir: %w", err)
	}
	path := filepath.Join(dir, FileName())

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create backup file: %w", err)
	}
	if err := Export(f, owned, now); err != nil {
		f.Close()
		return "", fmt.Errorf("write backup: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close backup: %w", err)
	}
	return path, nil
}

// Parse reads a backup document and returns its ownership map.
// Only true entries are kept. Any failure is an *ImportError.
func Parse(r io.Reader) (collection.Ownership, error) {
	var doc map[string]json.RawMessage
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, &ImportError{Kind: KindMalformed, Err: err}
	}
	if doc == nil {
		return nil, &ImportError{Kind: KindMalformed}
	}

	var version float64
	if raw, ok := doc["version"]; !ok || json.Unmarshal(raw, &version) != nil || version != Version {
		return nil, &ImportError{Kind: KindVersion, Version: string(doc["version"])}
	}

	var entries map[string]bool
	raw, ok := doc["owned"]
	if !ok {
		return nil, &ImportError{Kind: KindOwned}
	}
	if err := json.Unmarshal(raw, &entries); err != nil || entries == nil {
		return nil, &ImportError{Kind: KindOwned, Err: err}
	}

	owned := make(collection.Ownership, len(entries))
	for id, v := range entries {
		if v {
			owned[id] = true
		}
	}
	return owned, nil
}

// ReadFile parses the backup at path.
func ReadFile(path string) (collection.Ownership, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ImportError{Kind: KindMalformed, Err: err}
	}
	defer f.Close()
	return Parse(f)
}
