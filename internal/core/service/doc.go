// Package service provides domain services for makeboot.
//
// Services orchestrate the domain model and define small interfaces for
// their storage dependencies so tests can substitute them.
//
// This package contains:
//
//   - Assembler: byte tokens to a written 512-byte boot sector
//   - ReadTokens: token files with '#' comments
//   - Inspect/Verify: boot sector checks on existing images
//   - Watch: rebuild an image whenever its token file changes
package service
