package vad

import "math"

// Fixed analysis parameters. Every chunk fed to a classifier has exactly
// ChunkSize samples at SampleRate; the final partial chunk is zero-padded.
const (
	SampleRate = 16000
	ChunkSize  = 512

	// MinSpeechChunksFloor rejects noise bursts shorter than ~320 ms no
	// matter how aggressive the user configuration is.
	MinSpeechChunksFloor = 10

	DefaultPaddingChunks     = 3
	DefaultThreshold         = 0.6
	DefaultMinSegmentSeconds = 2.0

	// Epsilon is the minimum interval width; degenerate segments are never
	// constructed.
	Epsilon = 1e-3
)

// Config tunes the speech-detection pass.
type Config struct {
	// Threshold is the frame speech probability at or above which a chunk
	// counts as speech.
	Threshold float64
	// MinSpeechChunks is the shortest accepted speech run, in chunks.
	MinSpeechChunks int
	// PaddingChunks is the hysteresis: consecutive sub-threshold chunks
	// tolerated before an open segment is closed.
	PaddingChunks int
}

// DefaultConfig returns the detection parameters used when the user has not
// tuned anything.
func DefaultConfig() Config {
	return Config{
		Threshold:       DefaultThreshold,
		MinSpeechChunks: SecondsToChunks(DefaultMinSegmentSeconds),
		PaddingChunks:   DefaultPaddingChunks,
	}
}

// ConfigFromSettings builds a Config from the user-facing threshold and
// minimum segment duration, clamping both to their working ranges.
func ConfigFromSettings(threshold, minSegmentSeconds float64) Config {
	threshold = clamp(threshold, 0.10, 0.99)
	minSegmentSeconds = clamp(minSegmentSeconds, 0.5, 10.0)
	return Config{
		Threshold:       threshold,
		MinSpeechChunks: SecondsToChunks(minSegmentSeconds),
		PaddingChunks:   DefaultPaddingChunks,
	}
}

// SecondsToChunks converts a duration to whole analysis chunks, rounding up
// and flooring at MinSpeechChunksFloor.
func SecondsToChunks(seconds float64) int {
	raw := int(math.Ceil(seconds * SampleRate / ChunkSize))
	if raw < MinSpeechChunksFloor {
		return MinSpeechChunksFloor
	}
	return raw
}

// ChunkToTime converts a chunk index to its start time in seconds.
func ChunkToTime(chunk int) float64 {
	return float64(chunk) * ChunkSize / SampleRate
}

// Kind labels a timeline interval.
type Kind int

const (
	KindSpeech Kind = iota
	KindGap
)

func (k Kind) String() string {
	if k == KindGap {
		return "gap"
	}
	return "speech"
}

// Segment is a bounded time interval on the audio timeline. A finalized
// sequence for one stream is sorted, non-overlapping, and after gap filling
// contiguous over [0, total].
type Segment struct {
	Start float64
	End   float64
	Kind  Kind
}

// Duration returns the segment length in seconds.
func (s Segment) Duration() float64 {
	return s.End - s.Start
}

func segmentFromChunks(startChunk, endChunk int) Segment {
	return Segment{Start: ChunkToTime(startChunk), End: ChunkToTime(endChunk), Kind: KindSpeech}
}

// trySegment constructs a segment only when the interval is wider than
// Epsilon.
func trySegment(start, end float64, kind Kind) (Segment, bool) {
	if end-start <= Epsilon {
		return Segment{}, false
	}
	return Segment{Start: start, End: end, Kind: kind}, true
}

func clamp(value, lo, hi float64) float64 {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}
