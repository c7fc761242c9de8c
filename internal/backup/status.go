package backup

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
)

// StaleAfter is the backup age from which a new backup is recommended.
const StaleAfter = 48 * time.Hour

// FadeAfter is how long the "backup complete" message stays up.
const FadeAfter = 4 * time.Second

// UndoWindow is how long an import can be undone.
const UndoWindow = 30 * time.Second

const dateLayout = "02-01-2006 15:04"

// StatusKind is the age bucket of the last backup.
type StatusKind int

const (
	StatusNever StatusKind = iota
	StatusRecent
	StatusStale
	StatusCompleted
)

// Status is the backup status line.
type Status struct {
	Kind StatusKind
	Text string
}

// FormatTime renders t as dd-mm-yyyy hh:mm in local time.
func FormatTime(t time.Time) string {
	return t.Local().Format(dateLayout)
}

// StatusAt ages last relative to now. A zero last means never backed up.
func StatusAt(last, now time.Time) Status {
	if last.IsZero() {
		return Status{Kind: StatusNever, Text: "No backup yet"}
	}
	formatted := FormatTime(last)
	if now.Sub(last) >= StaleAfter {
		return Status{
			Kind: StatusStale,
			Text: fmt.Sprintf("⚠ Backup recommended (last: %s)", formatted),
		}
	}
	return Status{
		Kind: StatusRecent,
		Text: fmt.Sprintf("Last backup: %s (%s)", formatted, humanize.RelTime(last, now, "ago", "from now")),
	}
}

// Completed is the transient status shown right after an export.
func Completed(at time.Time) Status {
	return Status{Kind: StatusCompleted, Text: "✔ Backup complete: " + FormatTime(at)}
}

// ImportSucceeded is the status line during the undo window.
func ImportSucceeded(secondsLeft int) string {
	return fmt.Sprintf("✔ Import successful  [U] Undo (%ds)", secondsLeft)
}

const (
	ImportFailed = "✖ Import failed: invalid backup file"
	ImportUndone = "↩ Import undone"
)
