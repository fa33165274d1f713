// Package subtitle builds and persists SubRip transcript documents.
package subtitle
