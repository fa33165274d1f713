// Package transcribe holds the speech-to-text service clients. The native
// HTTP client matches the SiliconFlow error surface; an OpenAI-compatible
// client is available for other providers.
package transcribe
