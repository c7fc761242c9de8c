package backup

import (
	"strings"
	"testing"
	"time"
)

func TestStatusAt(t *testing.T) {
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.Local)

	tests := []struct {
		name     string
		last     time.Time
		wantKind StatusKind
		wantText string
	}{
		{"never", time.Time{}, StatusNever, "No backup yet"},
		{"three hours", now.Add(-3 * time.Hour), StatusRecent, "Last backup: 10-05-2024 09:00 (3 hours ago)"},
		{"just under two days", now.Add(-47 * time.Hour), StatusRecent, "Last backup: 08-05-2024 13:00"},
		{"exactly two days", now.Add(-48 * time.Hour), StatusStale, "⚠ Backup recommended (last: 08-05-2024 12:00)"},
		{"a week", now.Add(-7 * 24 * time.Hour), StatusStale, "⚠ Backup recommended (last: 03-05-2024 12:00)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StatusAt(tt.last, now)
			if got.Kind != tt.wantKind {
				t.Errorf("kind = %v, want %v", got.Kind, tt.wantKind)
			}
			if !strings.HasPrefix(got.Text, tt.wantText) {
				t.Errorf("text = %q, want prefix %q", got.Text, tt.wantText)
			}
		})
	}
}

func TestCompleted(t *testing.T) {
	at := time.Date(2024, 1, 2, 3, 4, 0, 0, time.Local)
	got := Completed(at)
	if got.Kind != StatusCompleted || got.Text != "✔ Backup complete: 02-01-2024 03:04" {
		t.Errorf("Completed() = %+v", got)
	}
}

func TestImportSucceeded(t *testing.T) {
	if got := ImportSucceeded(30); !strings.Contains(got, "Undo (30s)") {
		t.Errorf("ImportSucceeded(30) = %q", got)
	}
}

func TestFileName(t *testing.T) {
	if FileName() != "pccollector-backup-v1.json" {
		t.Errorf("FileName() = %q", FileName())
	}
}
