package journal

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func TestAppendAndRecent(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "journal.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	records := []Record{
		{ScanID: "scan-1", Path: "/media/a.mp3", Track: -1, Mode: "segmented", Detail: "4 segments"},
		{ScanID: "scan-1", Path: "/media/b.mkv", Track: 1, Mode: "whole-file"},
		{ScanID: "scan-2", Path: "/media/c.wav", Track: -1, Mode: "failed", Detail: "probe failure"},
	}
	for _, record := range records {
		if err := store.Append(ctx, record); err != nil {
			t.Fatalf("Append(%q): %v", record.Path, err)
		}
	}

	got, err := store.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("Recent returned %d records, want 3", len(got))
	}
	// Newest first.
	if got[0].Path != "/media/c.wav" || got[2].Path != "/media/a.mp3" {
		t.Fatalf("unexpected ordering: first=%q last=%q", got[0].Path, got[2].Path)
	}
	if got[1].Track != 1 || got[1].Mode != "whole-file" {
		t.Fatalf("unexpected middle record: %+v", got[1])
	}
	if got[0].CreatedAt.IsZero() {
		t.Fatal("CreatedAt was not populated on read")
	}
}

func TestRecentHonorsLimit(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "journal.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		record := Record{ScanID: "scan-1", Path: "/media/x.mp3", Track: -1, Mode: "segmented", CreatedAt: base.Add(time.Duration(i) * time.Second)}
		if err := store.Append(ctx, record); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	got, err := store.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Recent returned %d records, want 2", len(got))
	}
	if !got[0].CreatedAt.After(got[1].CreatedAt) {
		t.Fatalf("expected newest first, got %v then %v", got[0].CreatedAt, got[1].CreatedAt)
	}
}

func TestOpenRejectsEmptyPath(t *testing.T) {
	if _, err := Open("   "); err == nil {
		t.Fatal("expected error for empty path")
	}
}
