// Package logging wires log/slog construction and the attribute helpers the
// rest of the codebase uses for structured output.
package logging
