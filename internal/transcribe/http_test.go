package transcribe

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"autoasr/internal/config"
)

func writeAudio(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte("fake audio bytes"), 0o644); err != nil {
		t.Fatalf("write audio: %v", err)
	}
	return path
}

func newClient(t *testing.T, handler http.HandlerFunc) *HTTPClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewHTTPClient(config.Transcription{
		APIKey:  "secret",
		BaseURL: server.URL,
		Model:   "test-model",
	})
}

func TestTranscribeSendsCredentialAndForm(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer secret" {
			t.Errorf("authorization header %q", got)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parse multipart: %v", err)
		}
		if got := r.FormValue("model"); got != "test-model" {
			t.Errorf("model field %q", got)
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			t.Errorf("file part: %v", err)
		} else {
			file.Close()
			if header.Filename != "clip.mp3" {
				t.Errorf("filename %q", header.Filename)
			}
			if ct := header.Header.Get("Content-Type"); ct != "audio/mpeg" {
				t.Errorf("content type %q", ct)
			}
		}
		w.Write([]byte(`{"text": "hello world"}`))
	})

	text, err := client.Transcribe(context.Background(), writeAudio(t, "clip.mp3"))
	if err != nil {
		t.Fatalf("Transcribe: %v", err)
	}
	if text != "hello world" {
		t.Fatalf("unexpected text %q", text)
	}
}

func TestTranscribeStructuredError(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"code": 40101, "message": "invalid api key", "data": ""}`))
	})

	_, err := client.Transcribe(context.Background(), writeAudio(t, "clip.mp3"))
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "code 40101") || !strings.Contains(err.Error(), "invalid api key") {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestTranscribeRateLimited(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte("slow down"))
	})

	_, err := client.Transcribe(context.Background(), writeAudio(t, "clip.mp3"))
	if err == nil || !strings.Contains(err.Error(), "rate limited (HTTP 429)") {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestTranscribeMalformedSuccessBody(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	})

	_, err := client.Transcribe(context.Background(), writeAudio(t, "clip.mp3"))
	if err == nil || !strings.Contains(err.Error(), "parse success response") {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestMimeTypeFor(t *testing.T) {
	cases := map[string]string{
		"a.wav":  "audio/wav",
		"a.OGG":  "audio/ogg",
		"a.opus": "audio/ogg",
		"a.m4a":  "audio/mp4",
		"a.mp3":  "audio/mpeg",
		"a.flac": "audio/mpeg",
	}
	for path, want := range cases {
		if got := mimeTypeFor(path); got != want {
			t.Errorf("mimeTypeFor(%q) = %q, want %q", path, got, want)
		}
	}
}

func TestNewSelectsBackend(t *testing.T) {
	client, err := New(config.Transcription{Backend: config.BackendSiliconFlow})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, ok := client.(*HTTPClient); !ok {
		t.Fatalf("expected HTTPClient, got %T", client)
	}

	client, err = New(config.Transcription{Backend: config.BackendOpenAI})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, ok := client.(*OpenAIClient); !ok {
		t.Fatalf("expected OpenAIClient, got %T", client)
	}
}
