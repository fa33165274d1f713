// Command autoasr scans a media directory and writes SubRip transcripts for
// every audio file and video audio track that does not have one yet.
package main
