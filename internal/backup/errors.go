package backup

import "fmt"

// ImportErrorKind classifies why a backup was rejected.
type ImportErrorKind int

const (
	KindMalformed ImportErrorKind = iota
	KindVersion
	KindOwned
)

func (k ImportErrorKind) String() string {
	switch k {
	case KindVersion:
		return "unsupported version"
	case KindOwned:
		return "invalid owned map"
	}
	return "malformed"
}

// ImportError is returned when a backup cannot be imported.
// Nothing is changed when it is returned.
type ImportError struct {
	Kind    ImportErrorKind
	Version string // raw version value, for KindVersion
	Err     error
}

func (e *ImportError) Error() string {
	switch {
	case e.Kind == KindVersion && e.Version != "":
		return fmt.Sprintf("invalid backup file: %s %s", e.Kind, e.Version)
	case e.Err != nil:
		return fmt.Sprintf("invalid backup file: %s: %v", e.Kind, e.Err)
	}
	return "invalid backup file: " + e.Kind.String()
}

func (e *ImportError) Unwrap() error {
	return e.Err
}
