package scanner

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"autoasr/internal/scanlog"
	"autoasr/internal/services"
)

func TestScanEndToEnd(t *testing.T) {
	cfg := newTestConfig(t)
	cfg.VAD.Enabled = false
	root := cfg.Paths.MediaDir
	touch(t, filepath.Join(root, "talk.mp3"))
	touch(t, filepath.Join(root, "done.mp3"))
	touch(t, TranscriptPath(filepath.Join(root, "done.mp3"), WholeFileTrack))

	recorder := &fakeJournal{}
	stream := scanlog.NewStream()
	client := &fakeClient{transcribe: func(path string) (string, error) {
		return "spoken words", nil
	}}
	s, err := New(Options{
		Config:     cfg,
		Stream:     stream,
		Client:     client,
		Prober:     &fakeProber{duration: 30},
		Transcoder: &fakeTranscoder{},
		Journal:    recorder,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	report, err := s.Scan(context.Background())
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if report.ScanID == "" {
		t.Fatal("report missing scan id")
	}
	if report.SucceededCount() != 1 || report.FailedCount() != 0 {
		t.Fatalf("counts = %d/%d, want 1/0", report.SucceededCount(), report.FailedCount())
	}
	if _, err := os.Stat(TranscriptPath(filepath.Join(root, "talk.mp3"), WholeFileTrack)); err != nil {
		t.Fatalf("transcript not written: %v", err)
	}

	if len(recorder.records) != 1 {
		t.Fatalf("journal holds %d records, want 1", len(recorder.records))
	}
	record := recorder.records[0]
	if record.Mode != "whole-file" || record.ScanID != report.ScanID {
		t.Fatalf("unexpected journal record: %+v", record)
	}

	// The stream was closed by the scan; draining yields the same entries
	// the report carries.
	drained := stream.Drain()
	if len(drained) != len(report.Entries) {
		t.Fatalf("stream drained %d entries, report carries %d", len(drained), len(report.Entries))
	}
	var sawSuccess bool
	for _, entry := range report.Entries {
		if entry.Level == scanlog.LevelSuccess {
			sawSuccess = true
		}
	}
	if !sawSuccess {
		t.Fatal("expected a success entry for the written transcript")
	}
}

func TestScanRejectsBlankCredential(t *testing.T) {
	cfg := newTestConfig(t)
	cfg.Transcription.APIKey = "   "
	s, err := New(Options{Config: cfg, Client: &fakeClient{}, Prober: &fakeProber{}, Transcoder: &fakeTranscoder{}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if _, err := s.Scan(context.Background()); !services.IsFatal(err) {
		t.Fatalf("expected fatal error for blank credential, got %v", err)
	}
}

func TestScanRejectsMissingDirectory(t *testing.T) {
	cfg := newTestConfig(t)
	cfg.Paths.MediaDir = filepath.Join(cfg.Paths.MediaDir, "absent")
	s, err := New(Options{Config: cfg, Client: &fakeClient{}, Prober: &fakeProber{}, Transcoder: &fakeTranscoder{}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	_, err = s.Scan(context.Background())
	if !services.IsFatal(err) {
		t.Fatalf("expected fatal error for missing directory, got %v", err)
	}
	if !strings.Contains(err.Error(), "does not exist") {
		t.Fatalf("error should name the problem: %v", err)
	}
}

func TestScanContinuesAfterItemFailure(t *testing.T) {
	cfg := newTestConfig(t)
	cfg.VAD.Enabled = false
	root := cfg.Paths.MediaDir
	touch(t, filepath.Join(root, "bad.mp3"))
	touch(t, filepath.Join(root, "good.mp3"))

	client := &fakeClient{transcribe: func(path string) (string, error) {
		if strings.Contains(path, "bad") {
			return "", nil
		}
		return "good text", nil
	}}
	s, err := New(Options{
		Config:     cfg,
		Client:     client,
		Prober:     &fakeProber{duration: 10},
		Transcoder: &fakeTranscoder{},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	report, err := s.Scan(context.Background())
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if report.SucceededCount() != 1 || report.FailedCount() != 1 {
		t.Fatalf("counts = %d/%d, want 1/1", report.SucceededCount(), report.FailedCount())
	}
}
