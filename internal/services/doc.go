// Package services defines the shared error taxonomy used across the scan
// pipeline. Components tag failures with sentinel markers so the scanner can
// decide between aborting, skipping an item, skipping a segment, or falling
// back to whole-file transcription.
package services
