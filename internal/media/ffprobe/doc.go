// Package ffprobe wraps the external ffprobe binary used to enumerate audio
// streams and read container durations.
package ffprobe
