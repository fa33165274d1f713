package transcribe

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"autoasr/internal/config"
)

// OpenAIClient targets any OpenAI-compatible transcription endpoint through
// the go-openai SDK.
type OpenAIClient struct {
	client *openai.Client
	model  string
}

// NewOpenAIClient builds the SDK-backed client from configuration. The
// configured base URL points at the transcription endpoint; the SDK wants
// the API root, so a trailing /audio/transcriptions is stripped.
func NewOpenAIClient(cfg config.Transcription) *OpenAIClient {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if base := strings.TrimSuffix(strings.TrimRight(cfg.BaseURL, "/"), "/audio/transcriptions"); base != "" {
		clientConfig.BaseURL = base
	}
	model := cfg.Model
	if model == "" {
		model = openai.Whisper1
	}
	return &OpenAIClient{
		client: openai.NewClientWithConfig(clientConfig),
		model:  model,
	}
}

// Transcribe uploads the audio file and returns the recognized text.
func (c *OpenAIClient) Transcribe(ctx context.Context, audioPath string) (string, error) {
	resp, err := c.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    c.model,
		FilePath: audioPath,
	})
	if err != nil {
		return "", fmt.Errorf("transcription request: %w", err)
	}
	return resp.Text, nil
}
