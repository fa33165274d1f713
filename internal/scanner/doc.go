// Package scanner discovers untranscribed media under a directory and
// drives each item through segmentation, per-segment transcription, and the
// whole-file fallback, writing SubRip transcripts beside the sources.
package scanner
