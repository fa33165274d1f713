package scanner

import (
	"context"
	"fmt"
	"os"

	"autoasr/internal/services"
)

// Materialized is a concrete, decodable audio artifact for one item.
// Owned artifacts are deleted by Release once the consuming stage is done.
type Materialized struct {
	Path  string
	Owned bool
}

// Release deletes the artifact when the pipeline owns it.
func (m Materialized) Release() {
	if m.Owned && m.Path != "" {
		_ = os.Remove(m.Path)
	}
}

// materialize obtains playable audio for an item. Direct audio files are
// used in place; video tracks are demuxed to a deterministic temp path
// beside the source, replacing any stale artifact from an earlier run.
func (s *Scanner) materialize(ctx context.Context, item Item) (Materialized, error) {
	if !item.HasTrack() {
		return Materialized{Path: item.Path}, nil
	}
	dest := trackAudioPath(item.Path, item.Track)
	_ = os.Remove(dest)
	if err := s.transcoder.ExtractTrack(ctx, item.Path, item.Track, dest); err != nil {
		return Materialized{}, services.Wrap(services.ErrItem, "scanner", "materialize",
			fmt.Sprintf("extract track %d from %s", item.Track, item.Path), err)
	}
	return Materialized{Path: dest, Owned: true}, nil
}
