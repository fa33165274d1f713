package ffmpeg

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Analysis signal parameters expected by the segmentation engine.
const (
	AnalysisSampleRate = 16000
)

// Transcoder invokes the external ffmpeg binary for the three extraction
// shapes the pipeline needs: full-track demux, analysis resampling, and
// per-segment clip export.
type Transcoder struct {
	binary string
	runner func(ctx context.Context, name string, args ...string) error
}

// New creates a transcoder for the given ffmpeg binary name.
func New(binary string) *Transcoder {
	if strings.TrimSpace(binary) == "" {
		binary = "ffmpeg"
	}
	return &Transcoder{binary: binary}
}

// WithCommandRunner sets a custom command runner (for testing).
func (t *Transcoder) WithCommandRunner(runner func(ctx context.Context, name string, args ...string) error) {
	t.runner = runner
}

// ExtractTrack demuxes one audio stream into a standalone MP3 file at dest.
// streamIndex < 0 means no explicit stream selection.
func (t *Transcoder) ExtractTrack(ctx context.Context, source string, streamIndex int, dest string) error {
	args := []string{
		"-y",
		"-hide_banner",
		"-loglevel", "error",
		"-i", source,
	}
	args = appendMap(args, streamIndex)
	args = append(args,
		"-vn",
		"-sn",
		"-dn",
		"-c:a", "libmp3lame",
		dest,
	)
	return t.run(ctx, args)
}

// ResampleForAnalysis converts the selected audio into the mono 16 kHz
// 16-bit PCM WAV the segmentation engine consumes.
func (t *Transcoder) ResampleForAnalysis(ctx context.Context, source string, streamIndex int, dest string) error {
	args := []string{
		"-y",
		"-hide_banner",
		"-loglevel", "error",
		"-i", source,
	}
	args = appendMap(args, streamIndex)
	args = append(args,
		"-vn",
		"-sn",
		"-dn",
		"-ac", "1",
		"-ar", fmt.Sprintf("%d", AnalysisSampleRate),
		"-c:a", "pcm_s16le",
		dest,
	)
	return t.run(ctx, args)
}

// ExportClip re-encodes the interval [startSec, startSec+durationSec] of the
// selected audio from the original input into an MP3 clip at dest.
func (t *Transcoder) ExportClip(ctx context.Context, source string, streamIndex int, startSec, durationSec float64, dest string) error {
	if durationSec <= 0 {
		return fmt.Errorf("export clip: invalid duration %.3f", durationSec)
	}
	args := []string{
		"-y",
		"-hide_banner",
		"-loglevel", "error",
		"-ss", fmt.Sprintf("%.3f", startSec),
		"-i", source,
	}
	args = appendMap(args, streamIndex)
	args = append(args,
		"-t", fmt.Sprintf("%.3f", durationSec),
		"-vn",
		"-sn",
		"-dn",
		"-c:a", "libmp3lame",
		dest,
	)
	return t.run(ctx, args)
}

func appendMap(args []string, streamIndex int) []string {
	if streamIndex >= 0 {
		return append(args, "-map", fmt.Sprintf("0:%d", streamIndex))
	}
	return args
}

func (t *Transcoder) run(ctx context.Context, args []string) error {
	if t.runner != nil {
		return t.runner(ctx, t.binary, args...)
	}
	cmd := exec.CommandContext(ctx, t.binary, args...) //nolint:gosec
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("%s: %w: %s", t.binary, err, strings.TrimSpace(string(output)))
	}
	return nil
}
