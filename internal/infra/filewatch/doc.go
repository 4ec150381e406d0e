// Package filewatch notifies callers when watched files change.
//
// It watches the parent directory of each file rather than the file
// itself, so editors that save by writing a temporary file and renaming
// it over the original are still observed.
package filewatch
