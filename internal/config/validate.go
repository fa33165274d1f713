package config

import (
	"fmt"
	"strconv"
	"strings"
)

// Validate checks config invariants that normalization cannot repair.
func (c *Config) Validate() error {
	switch c.Transcription.Backend {
	case BackendSiliconFlow, BackendOpenAI:
	default:
		return fmt.Errorf("transcription.backend: unsupported value %q", c.Transcription.Backend)
	}

	switch c.Logging.Format {
	case "auto", "json", "text", "console":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}

	if c.Schedule.Time != "" {
		if err := validateClock(c.Schedule.Time); err != nil {
			return fmt.Errorf("schedule.time: %w", err)
		}
	}
	return nil
}

func validateClock(value string) error {
	parts := strings.Split(value, ":")
	if len(parts) != 2 {
		return fmt.Errorf("expected HH:MM, got %q", value)
	}
	hour, errH := strconv.Atoi(parts[0])
	minute, errM := strconv.Atoi(parts[1])
	if errH != nil || errM != nil || hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return fmt.Errorf("expected HH:MM, got %q", value)
	}
	return nil
}
