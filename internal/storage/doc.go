// Package storage reads and writes boot sector images.
//
// Images are stored as raw binary files. Writes create or truncate the
// target and are only issued with a fully built sector; a rejected
// assembly never opens the file.
//
// Images can also be exported as Intel HEX records addressed at the
// firmware load address (0x7C00) for programmers and emulators that
// expect that format.
package storage
