package subtitle

import "fmt"

// FormatTimestamp renders seconds as the SubRip "HH:MM:SS,mmm" form.
// Negative inputs clamp to zero.
func FormatTimestamp(seconds float64) string {
	totalMillis := int64(seconds*1000 + 0.5)
	if totalMillis < 0 {
		totalMillis = 0
	}
	hours := totalMillis / 3_600_000
	minutes := (totalMillis % 3_600_000) / 60_000
	secs := (totalMillis % 60_000) / 1000
	millis := totalMillis % 1000
	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, secs, millis)
}

// FormatClock renders seconds for human-facing log lines, dropping the hour
// field when it is zero.
func FormatClock(seconds float64) string {
	totalMillis := int64(seconds*1000 + 0.5)
	if totalMillis < 0 {
		totalMillis = 0
	}
	hours := totalMillis / 3_600_000
	minutes := (totalMillis % 3_600_000) / 60_000
	secs := (totalMillis % 60_000) / 1000
	millis := totalMillis % 1000
	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d.%03d", hours, minutes, secs, millis)
	}
	return fmt.Sprintf("%02d:%02d.%03d", minutes, secs, millis)
}
