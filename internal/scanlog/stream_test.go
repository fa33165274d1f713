package scanlog

import (
	"context"
	"fmt"
	"testing"
	"time"
)

func TestStreamPreservesFIFOOrder(t *testing.T) {
	stream := NewStream()
	for i := 0; i < 100; i++ {
		stream.Publish(Entry{Level: LevelInfo, Message: fmt.Sprintf("msg-%d", i)})
	}
	stream.Close()

	for i := 0; i < 100; i++ {
		entry, ok, err := stream.Next(context.Background())
		if err != nil || !ok {
			t.Fatalf("entry %d: ok=%v err=%v", i, ok, err)
		}
		if want := fmt.Sprintf("msg-%d", i); entry.Message != want {
			t.Fatalf("out of order: got %q want %q", entry.Message, want)
		}
	}
	if _, ok, _ := stream.Next(context.Background()); ok {
		t.Fatal("drained closed stream should report ok=false")
	}
}

func TestStreamProducerNeverBlocks(t *testing.T) {
	stream := NewStream()
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 10000; i++ {
			stream.Publish(Entry{Message: "x"})
		}
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("publisher blocked without a consumer")
	}
}

func TestStreamNextHonorsContext(t *testing.T) {
	stream := NewStream()
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()
	if _, _, err := stream.Next(ctx); err == nil {
		t.Fatal("expected context error")
	}
}

func TestStreamDrain(t *testing.T) {
	stream := NewStream()
	stream.Publish(Entry{Message: "a"})
	stream.Publish(Entry{Message: "b"})
	got := stream.Drain()
	if len(got) != 2 || got[0].Message != "a" || got[1].Message != "b" {
		t.Fatalf("unexpected drain result: %+v", got)
	}
	if rest := stream.Drain(); len(rest) != 0 {
		t.Fatalf("second drain should be empty, got %+v", rest)
	}
}

func TestLoggerRecordsAndMirrors(t *testing.T) {
	stream := NewStream()
	logger := NewLogger(stream, nil)
	logger.Info("one")
	logger.Error("two")
	logger.Success("three")
	entries := logger.Finish()

	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	if entries[0].Level != LevelInfo || entries[1].Level != LevelError || entries[2].Level != LevelSuccess {
		t.Fatalf("unexpected levels: %+v", entries)
	}

	for _, want := range []string{"one", "two", "three"} {
		entry, ok, err := stream.Next(context.Background())
		if err != nil || !ok {
			t.Fatalf("stream ended early: ok=%v err=%v", ok, err)
		}
		if entry.Message != want {
			t.Fatalf("got %q want %q", entry.Message, want)
		}
	}
	if _, ok, _ := stream.Next(context.Background()); ok {
		t.Fatal("stream should be closed after Finish")
	}
}

func TestNilStreamIsSafe(t *testing.T) {
	logger := NewLogger(nil, nil)
	logger.Info("no stream attached")
	if entries := logger.Finish(); len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
}
