// Package journal records scan outcomes in a local SQLite database for
// later review through the history command.
package journal
