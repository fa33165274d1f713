package wav

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
)

func writeWAV(t *testing.T, path string, sampleRate, bitDepth, channels int, samples []int) {
	t.Helper()
	file, err := os.Create(path)
	if err != nil {
		t.Fatalf("create wav: %v", err)
	}
	defer file.Close()

	encoder := gowav.NewEncoder(file, sampleRate, bitDepth, channels, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{SampleRate: sampleRate, NumChannels: channels},
		Data:           samples,
		SourceBitDepth: bitDepth,
	}
	if err := encoder.Write(buf); err != nil {
		t.Fatalf("encode wav: %v", err)
	}
	if err := encoder.Close(); err != nil {
		t.Fatalf("close wav: %v", err)
	}
}

func TestReadMono16RoundTrip(t *testing.T) {
	samples := make([]int, 1024)
	for i := range samples {
		samples[i] = int(int16(8000 * math.Sin(float64(i)/10)))
	}
	path := filepath.Join(t.TempDir(), "tone.wav")
	writeWAV(t, path, SampleRate, BitDepth, Channels, samples)

	got, err := ReadMono16(path)
	if err != nil {
		t.Fatalf("ReadMono16: %v", err)
	}
	if len(got) != len(samples) {
		t.Fatalf("sample count mismatch: got %d want %d", len(got), len(samples))
	}
	for i := range got {
		if int(got[i]) != samples[i] {
			t.Fatalf("sample %d mismatch: got %d want %d", i, got[i], samples[i])
		}
	}
}

func TestReadMono16RejectsWrongFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stereo.wav")
	writeWAV(t, path, 44100, BitDepth, 2, make([]int, 200))
	if _, err := ReadMono16(path); err == nil {
		t.Fatal("expected format rejection")
	}
}

func TestReadMono16MissingFile(t *testing.T) {
	if _, err := ReadMono16(filepath.Join(t.TempDir(), "absent.wav")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
