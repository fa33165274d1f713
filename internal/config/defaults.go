package config

// Backend names accepted by [transcription].
const (
	BackendSiliconFlow = "siliconflow"
	BackendOpenAI      = "openai"
)

// Default transcription endpoint and model, matching the hosted service the
// tool was built against.
const (
	DefaultBaseURL = "https://api.siliconflow.cn/v1/audio/transcriptions"
	DefaultModel   = "FunAudioLLM/SenseVoiceSmall"
)

// Default returns the baseline configuration before any file overrides.
func Default() Config {
	return Config{
		Paths: Paths{},
		Transcription: Transcription{
			Backend:        BackendSiliconFlow,
			BaseURL:        DefaultBaseURL,
			Model:          DefaultModel,
			TimeoutSeconds: 3600,
		},
		VAD: VAD{
			Enabled:           true,
			Threshold:         0.6,
			MinSegmentSeconds: 2.0,
		},
		Schedule: Schedule{
			Time: "02:00",
		},
		Logging: Logging{
			Format: "auto",
			Level:  "info",
		},
	}
}
