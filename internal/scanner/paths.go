package scanner

import (
	"fmt"
	"path/filepath"
	"strings"
)

// MinExportDuration floors per-segment clip lengths so ffmpeg never
// produces zero-length media.
const MinExportDuration = 0.25

const transcriptExtension = ".srt"

var audioExtensions = map[string]struct{}{
	".wav": {}, ".ogg": {}, ".opus": {}, ".mp3": {}, ".m4a": {},
}

var videoExtensions = map[string]struct{}{
	".mkv": {}, ".mp4": {}, ".avi": {}, ".mov": {}, ".flv": {}, ".wmv": {},
}

func isMediaPath(path string) bool {
	return isAudioPath(path) || isVideoPath(path)
}

func isAudioPath(path string) bool {
	_, ok := audioExtensions[strings.ToLower(filepath.Ext(path))]
	return ok
}

func isVideoPath(path string) bool {
	_, ok := videoExtensions[strings.ToLower(filepath.Ext(path))]
	return ok
}

func stemOf(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path))
}

// TranscriptPath maps a (source, track) key to its transcript location
// beside the source file.
func TranscriptPath(source string, track int) string {
	if track < 0 {
		return stemOf(source) + transcriptExtension
	}
	return fmt.Sprintf("%s.track%d%s", stemOf(source), track, transcriptExtension)
}

// trackAudioPath is the deterministic temp location for a demuxed audio
// track.
func trackAudioPath(source string, track int) string {
	return fmt.Sprintf("%s-track%d.mp3", stemOf(source), track)
}

// analysisAudioPath is the temp location of the mono 16 kHz resample used
// by the detection pass, derived from the materialized audio path.
func analysisAudioPath(audioPath string) string {
	return stemOf(audioPath) + "-vad.wav"
}

// segmentClipPath is the temp location for the clip exported for one
// timeline segment. Indices are 1-based.
func segmentClipPath(item Item, index int) string {
	stem := stemOf(item.Path)
	if item.HasTrack() {
		return fmt.Sprintf("%s-track%d-seg%d.mp3", stem, item.Track, index)
	}
	return fmt.Sprintf("%s-seg%d.mp3", stem, index)
}
