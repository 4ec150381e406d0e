// Package logger provides structured logging for makeboot.
//
// Logger wraps log/slog. The CLI configures level and format once in its
// Before hook and installs the result with SetDefault.
//
// The CLI writes human-facing results to stdout and diagnostics to
// stderr through this package, so piping an inspect report stays clean
// even with --verbose.
package logger
