// Package config loads, normalizes, and validates the autoasr TOML
// configuration file.
package config
