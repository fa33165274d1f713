package services

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel markers for the scan error taxonomy. Callers wrap failures with
// Wrap so the orchestration layer can classify them afterwards.
var (
	// ErrFatal marks bad input to the whole scan (missing directory, blank
	// credential). Nothing is processed after a fatal error.
	ErrFatal = errors.New("fatal scan error")
	// ErrItem marks a work item that cannot be produced at all; the item is
	// skipped and the scan continues.
	ErrItem = errors.New("item failure")
	// ErrSegment marks a single segment whose transcode or transcription
	// failed; siblings are still processed.
	ErrSegment = errors.New("segment failure")
	// ErrNoSpeech marks a segmentation pass that found no usable speech; the
	// caller silently falls back to whole-file transcription.
	ErrNoSpeech = errors.New("no usable speech")
	// ErrExternalTool marks a failed external process invocation.
	ErrExternalTool = errors.New("external tool error")
	// ErrConfiguration marks invalid or incomplete configuration.
	ErrConfiguration = errors.New("configuration error")
)

// Wrap builds an error message that includes component context while tagging
// it with the provided marker for later classification. The marker should be
// one of the exported sentinel errors above.
func Wrap(marker error, component, operation, message string, err error) error {
	detail := buildDetail(component, operation, message)
	if marker == nil {
		marker = ErrItem
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// IsFatal reports whether err should abort the scan before any work begins.
func IsFatal(err error) bool {
	return errors.Is(err, ErrFatal) || errors.Is(err, ErrConfiguration)
}

func buildDetail(component, operation, message string) string {
	parts := make([]string, 0, 3)
	if component = strings.TrimSpace(component); component != "" {
		parts = append(parts, component)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "service failure"
	}
	return strings.Join(parts, ": ")
}
