package catalog

import (
	"fmt"
)

// ErrorKind classifies catalog load failures.
type ErrorKind int

const (
	// KindResource means a category file is missing or is not a JSON array of items.
	KindResource ErrorKind = iota
	// KindInvalidItem means an item lacks its id or name.
	KindInvalidItem
	// KindDuplicateID means an id was already seen in the same load pass.
	KindDuplicateID
)

func (k ErrorKind) String() string {
	switch k {
	case KindResource:
		return "network or parse"
	case KindInvalidItem:
		return "invalid item"
	case KindDuplicateID:
		return "duplicate id"
	}
	return "unknown"
}

// Error is returned by Load. Any Error is fatal to startup.
type Error struct {
	Kind     ErrorKind
	Category string
	ID       string // offending id, when known
	Index    int    // position of the item in its file, -1 for resource errors
	Err      error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindResource:
		return fmt.Sprintf("failed to load %s.json: %v", e.Category, e.Err)
	case KindInvalidItem:
		return fmt.Sprintf("invalid item #%d in %s.json: id and name are required", e.Index, e.Category)
	case KindDuplicateID:
		return fmt.Sprintf("duplicate id %q in %s.json", e.ID, e.Category)
	}
	return fmt.Sprintf("catalog %s: %v", e.Category, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
