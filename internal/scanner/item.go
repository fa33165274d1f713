package scanner

import (
	"fmt"
	"path/filepath"
)

// WholeFileTrack marks an item whose source is already a plain audio file,
// consumed without demuxing.
const WholeFileTrack = -1

// Item is one unit of work: a media file plus an optional audio stream
// index. The (Path, Track) pair is the idempotency key; its transcript path
// is a pure function of it.
type Item struct {
	Path  string
	Track int
}

// HasTrack reports whether the item selects a specific audio stream inside
// a container rather than a standalone audio file.
func (i Item) HasTrack() bool {
	return i.Track >= 0
}

// DisplayName is the short human-readable form used in log entries.
func (i Item) DisplayName() string {
	name := filepath.Base(i.Path)
	if i.HasTrack() {
		return fmt.Sprintf("%s (track %d)", name, i.Track)
	}
	return name
}

// TranscriptPath returns the deterministic output path for this item.
// Distinct tracks of the same container never collide.
func (i Item) TranscriptPath() string {
	return TranscriptPath(i.Path, i.Track)
}
