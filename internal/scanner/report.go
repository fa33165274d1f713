package scanner

import "autoasr/internal/scanlog"

// Report summarizes one completed scan.
type Report struct {
	ScanID   string
	Root     string
	Entries  []scanlog.Entry
	Outcomes []Outcome
}

// SucceededCount counts items that produced a transcript.
func (r *Report) SucceededCount() int {
	count := 0
	for _, outcome := range r.Outcomes {
		if outcome.Mode != ModeFailed {
			count++
		}
	}
	return count
}

// FailedCount counts items that produced no transcript.
func (r *Report) FailedCount() int {
	return len(r.Outcomes) - r.SucceededCount()
}
