package transcribe

import (
	"context"
	"fmt"

	"autoasr/internal/config"
)

// Client submits one audio file to a speech-to-text service and returns the
// transcript text. Authentication, rate limiting, and malformed-response
// failures all surface as a single textual error.
type Client interface {
	Transcribe(ctx context.Context, audioPath string) (string, error)
}

// New constructs the client selected by the transcription configuration.
func New(cfg config.Transcription) (Client, error) {
	switch cfg.Backend {
	case config.BackendSiliconFlow, "":
		return NewHTTPClient(cfg), nil
	case config.BackendOpenAI:
		return NewOpenAIClient(cfg), nil
	default:
		return nil, fmt.Errorf("transcription backend %q not supported", cfg.Backend)
	}
}
