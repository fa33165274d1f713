package services

import (
	"errors"
	"testing"
)

func TestWrapTagsMarker(t *testing.T) {
	base := errors.New("boom")
	err := Wrap(ErrSegment, "pipeline", "export clip", "segment 3", base)
	if !errors.Is(err, ErrSegment) {
		t.Fatalf("expected segment marker, got %v", err)
	}
	if !errors.Is(err, base) {
		t.Fatalf("expected wrapped cause, got %v", err)
	}
	want := "segment failure: pipeline: export clip: segment 3: boom"
	if err.Error() != want {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestWrapDefaultsMarker(t *testing.T) {
	err := Wrap(nil, "", "", "", nil)
	if !errors.Is(err, ErrItem) {
		t.Fatalf("expected item marker fallback, got %v", err)
	}
	if err.Error() != "item failure: service failure" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestIsFatal(t *testing.T) {
	if !IsFatal(Wrap(ErrFatal, "scan", "validate", "directory missing", nil)) {
		t.Fatal("fatal marker not classified")
	}
	if !IsFatal(Wrap(ErrConfiguration, "scan", "validate", "api key blank", nil)) {
		t.Fatal("configuration marker not classified")
	}
	if IsFatal(Wrap(ErrItem, "scan", "probe", "no tracks", nil)) {
		t.Fatal("item marker misclassified as fatal")
	}
}
