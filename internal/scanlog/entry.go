package scanlog

import "time"

// Level classifies a scan log entry.
type Level int

const (
	LevelInfo Level = iota
	LevelSuccess
	LevelError
)

// String returns the canonical lowercase name for the level.
func (l Level) String() string {
	switch l {
	case LevelSuccess:
		return "success"
	case LevelError:
		return "error"
	default:
		return "info"
	}
}

// Entry is one append-only scan log record. Ordering equals emission order.
type Entry struct {
	Level   Level
	Message string
	Time    time.Time
}
