package subtitle

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// minEntrySpan widens degenerate timestamp pairs so no entry ever renders
// with a zero or negative duration.
const minEntrySpan = 0.5

// Entry is one numbered, time-coded block of a transcript document.
type Entry struct {
	Index int
	Start float64
	End   float64
	Text  string
}

// Document is an ordered transcript in SubRip form. Output indices are
// assigned on append, so they stay monotonic even when some source segments
// produced no text and were never added.
type Document struct {
	entries []Entry
}

// Append adds a transcript entry for the given time span. Text is normalized
// (NFC, LF line endings, trimmed); a span that is not after its start is
// corrected to a half-second minimum.
func (d *Document) Append(start, end float64, text string) {
	if end <= start {
		end = start + minEntrySpan
	}
	d.entries = append(d.entries, Entry{
		Index: len(d.entries) + 1,
		Start: start,
		End:   end,
		Text:  sanitizeText(text),
	})
}

// Len reports the number of entries appended so far.
func (d *Document) Len() int {
	return len(d.entries)
}

// Entries returns a copy of the appended entries in order.
func (d *Document) Entries() []Entry {
	out := make([]Entry, len(d.entries))
	copy(out, d.entries)
	return out
}

// Render serializes the document in SubRip format.
func (d *Document) Render() string {
	var b strings.Builder
	for _, entry := range d.entries {
		fmt.Fprintf(&b, "%d\n%s --> %s\n%s\n\n",
			entry.Index,
			FormatTimestamp(entry.Start),
			FormatTimestamp(entry.End),
			entry.Text,
		)
	}
	return b.String()
}

// WriteFile atomically writes the rendered document: the content lands in a
// sibling temp file first and is renamed into place, so a crash never leaves
// a half-written transcript that discovery would treat as done.
func (d *Document) WriteFile(path string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp*")
	if err != nil {
		return fmt.Errorf("create transcript temp file: %w", err)
	}
	tmpPath := tmp.Name()
	if _, err := tmp.WriteString(d.Render()); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write transcript: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("write transcript: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("place transcript: %w", err)
	}
	return nil
}

func sanitizeText(input string) string {
	cleaned := strings.ReplaceAll(input, "\r\n", "\n")
	cleaned = strings.TrimSpace(cleaned)
	return norm.NFC.String(cleaned)
}
