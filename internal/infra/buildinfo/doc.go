// Package buildinfo provides build information for makeboot.
//
// Version, Commit and BuildTime are injected via ldflags; the Go
// version comes from the running toolchain.
package buildinfo
