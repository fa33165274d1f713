// Package ffmpeg wraps the external ffmpeg binary used for audio extraction,
// analysis resampling, and segment clip export.
package ffmpeg
