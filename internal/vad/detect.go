package vad

import "sort"

// segmentState tracks the currently open speech run during detection.
type segmentState struct {
	startChunk      int
	lastActiveChunk int
}

// Detect runs the speech-detection pass over a mono 16 kHz 16-bit sample
// buffer and returns the accepted speech segments in chronological order.
// An empty result means no usable speech was found; the caller decides how
// to proceed.
func Detect(samples []int16, cfg Config, cls Classifier) []Segment {
	if cfg.Threshold == 0 {
		cfg = DefaultConfig()
	}

	var segments []Segment
	var current *segmentState
	trailingSilence := 0

	chunk := make([]int16, ChunkSize)
	chunkIndex := 0
	for offset := 0; offset < len(samples); offset += ChunkSize {
		end := offset + ChunkSize
		if end > len(samples) {
			end = len(samples)
		}
		n := copy(chunk, samples[offset:end])
		for i := n; i < ChunkSize; i++ {
			chunk[i] = 0
		}

		probability := cls.Predict(chunk)
		if probability >= cfg.Threshold {
			if current == nil {
				current = &segmentState{startChunk: chunkIndex, lastActiveChunk: chunkIndex}
			} else {
				current.lastActiveChunk = chunkIndex
			}
			trailingSilence = 0
		} else if current != nil {
			trailingSilence++
			if trailingSilence > cfg.PaddingChunks {
				segments = finalizeSegment(current, cfg, segments)
				current = nil
				trailingSilence = 0
			}
		}

		chunkIndex++
	}

	if current != nil {
		segments = finalizeSegment(current, cfg, segments)
	}

	return segments
}

// finalizeSegment applies the acceptance rule: runs shorter than
// MinSpeechChunks are discarded as noise. Detected-but-too-short terminal
// runs are dropped with no attempt to merge them into a neighbor.
func finalizeSegment(state *segmentState, cfg Config, segments []Segment) []Segment {
	durationChunks := state.lastActiveChunk - state.startChunk + 1
	if durationChunks >= cfg.MinSpeechChunks {
		segments = append(segments, segmentFromChunks(state.startChunk, state.lastActiveChunk+1))
	}
	return segments
}

// ExpandWithGaps fills the intervals between speech segments with gap
// segments so the result covers [0, total] contiguously. Gap segments are
// transcribed like speech so the full timeline ends up in the document; they
// only differ in labeling. An empty input yields an empty output.
func ExpandWithGaps(speech []Segment, total float64) []Segment {
	if len(speech) == 0 {
		return nil
	}

	sorted := make([]Segment, len(speech))
	copy(sorted, speech)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })

	expanded := make([]Segment, 0, 2*len(sorted)+1)
	cursor := 0.0
	for _, segment := range sorted {
		if gap, ok := trySegment(cursor, segment.Start, KindGap); ok {
			expanded = append(expanded, gap)
		}
		expanded = append(expanded, segment)
		cursor = segment.End
	}
	if tail, ok := trySegment(cursor, total, KindGap); ok {
		expanded = append(expanded, tail)
	}
	return expanded
}
