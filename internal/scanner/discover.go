package scanner

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"autoasr/internal/scanlog"
	"autoasr/internal/services"
)

// discover walks root and returns the pending work items: audio files and
// video audio tracks whose transcript path does not exist yet. Probe
// failures skip the file, not the scan.
func (s *Scanner) discover(ctx context.Context, root string, log *scanlog.Logger) ([]Item, error) {
	var items []Item
	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isMediaPath(path) {
			return nil
		}
		if isVideoPath(path) {
			items = append(items, s.discoverTracks(ctx, path, log)...)
			return nil
		}
		if transcriptExists(path, WholeFileTrack) {
			log.Info(fmt.Sprintf("skipping %s: transcript exists", filepath.Base(path)))
			return nil
		}
		items = append(items, Item{Path: path, Track: WholeFileTrack})
		return nil
	})
	if err != nil {
		return nil, services.Wrap(services.ErrFatal, "scanner", "discover",
			fmt.Sprintf("walk %s", root), err)
	}
	log.Info(fmt.Sprintf("%d pending tracks", len(items)))
	return items, nil
}

func (s *Scanner) discoverTracks(ctx context.Context, path string, log *scanlog.Logger) []Item {
	indexes, err := s.prober.AudioStreamIndexes(ctx, path)
	if err != nil {
		log.Error(fmt.Sprintf("failed to probe %s: %v", filepath.Base(path), err))
		return nil
	}
	if len(indexes) == 0 {
		log.Info(fmt.Sprintf("skipping %s: no audio tracks", filepath.Base(path)))
		return nil
	}
	var items []Item
	for _, index := range indexes {
		if transcriptExists(path, index) {
			log.Info(fmt.Sprintf("skipping %s track %d: transcript exists", filepath.Base(path), index))
			continue
		}
		items = append(items, Item{Path: path, Track: index})
	}
	return items
}

func transcriptExists(source string, track int) bool {
	_, err := os.Stat(TranscriptPath(source, track))
	return err == nil
}
