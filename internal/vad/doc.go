// Package vad converts a continuous audio signal into an ordered, contiguous
// sequence of labeled time intervals suitable for independent transcription.
//
// Detection is a two-pass process: a frame-level classifier scores fixed
// 512-sample chunks and a hysteresis fold groups them into speech segments,
// then gap filling synthesizes the intervals between segments so the final
// timeline covers the whole stream.
package vad
