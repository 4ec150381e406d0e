// Package domain defines the core domain models for makeboot.
//
// Domain models are pure values without any IO dependencies or
// framework coupling. This package contains:
//
//   - Byte tokens: two-character hex strings parsed with ParseToken
//   - Boot images: the 512-byte sector layout built by BuildImage
//   - Errors: domain-specific error definitions
//
// A boot image is laid out as:
//
//	0 .. N-1    instruction bytes, in the order supplied
//	N .. 509    zero padding
//	510, 511    signature 0x55 0xAA
package domain
