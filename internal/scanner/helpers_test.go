package scanner

import (
	"context"
	"os"
	"testing"

	"github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"autoasr/internal/config"
	"autoasr/internal/journal"
	"autoasr/internal/testsupport"
	"autoasr/internal/vad"
)

type fakeTranscoder struct {
	samples     []int16
	extractErr  error
	resampleErr error
	exportErr   error
	extracts    []string
	exports     []string
}

func (f *fakeTranscoder) ExtractTrack(_ context.Context, _ string, _ int, dest string) error {
	if f.extractErr != nil {
		return f.extractErr
	}
	f.extracts = append(f.extracts, dest)
	return os.WriteFile(dest, []byte("mp3"), 0o644)
}

func (f *fakeTranscoder) ResampleForAnalysis(_ context.Context, _ string, _ int, dest string) error {
	if f.resampleErr != nil {
		return f.resampleErr
	}
	file, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer file.Close()
	encoder := gowav.NewEncoder(file, vad.SampleRate, 16, 1, 1)
	data := make([]int, len(f.samples))
	for i, sample := range f.samples {
		data[i] = int(sample)
	}
	buf := &audio.IntBuffer{
		Format:         &audio.Format{SampleRate: vad.SampleRate, NumChannels: 1},
		Data:           data,
		SourceBitDepth: 16,
	}
	if err := encoder.Write(buf); err != nil {
		return err
	}
	return encoder.Close()
}

func (f *fakeTranscoder) ExportClip(_ context.Context, _ string, _ int, _, _ float64, dest string) error {
	if f.exportErr != nil {
		return f.exportErr
	}
	f.exports = append(f.exports, dest)
	return os.WriteFile(dest, []byte("clip"), 0o644)
}

type fakeClient struct {
	transcribe func(path string) (string, error)
}

func (f *fakeClient) Transcribe(_ context.Context, path string) (string, error) {
	return f.transcribe(path)
}

type fakeProber struct {
	indexes     map[string][]int
	probeErr    error
	duration    float64
	durationErr error
}

func (f *fakeProber) AudioStreamIndexes(_ context.Context, path string) ([]int, error) {
	if f.probeErr != nil {
		return nil, f.probeErr
	}
	return f.indexes[path], nil
}

func (f *fakeProber) Duration(_ context.Context, _ string) (float64, error) {
	return f.duration, f.durationErr
}

type fakeJournal struct {
	records []journal.Record
}

func (f *fakeJournal) Append(_ context.Context, record journal.Record) error {
	f.records = append(f.records, record)
	return nil
}

// scriptClassifier replays a fixed probability sequence, one value per
// chunk, then reports silence.
type scriptClassifier struct {
	probs []float64
	calls int
}

func (c *scriptClassifier) Predict(_ []int16) float64 {
	if c.calls >= len(c.probs) {
		c.calls++
		return 0
	}
	p := c.probs[c.calls]
	c.calls++
	return p
}

func repeat(n int, p float64) []float64 {
	probs := make([]float64, n)
	for i := range probs {
		probs[i] = p
	}
	return probs
}

func newTestConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := testsupport.NewConfig(t)
	cfg.VAD.MinSegmentSeconds = 0.5
	return cfg
}
