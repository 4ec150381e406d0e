// Package domain defines the core domain models for makeboot.
package domain

import (
	"bytes"
	"fmt"
)

// Boot sector layout.
const (
	// SectorSize is the size of a boot sector image.
	SectorSize = 512
	// PayloadSize is the space available for instruction bytes and padding.
	PayloadSize = 510
	// SignatureOffset is where the boot signature starts.
	SignatureOffset = PayloadSize

	// SignatureByte1 and SignatureByte2 mark a valid legacy boot sector.
	SignatureByte1 = 0x55
	SignatureByte2 = 0xAA

	// LoadAddress is where firmware places the boot sector in memory.
	LoadAddress = 0x7C00

	// DefaultImageName is the output file used when none is given.
	DefaultImageName = "boot.bin"
)

// Signature is the two trailing bytes of every boot sector.
var Signature = []byte{SignatureByte1, SignatureByte2}

// BuildImage lays out payload as a boot sector: the payload bytes, zero
// padding up to offset 510, then the signature. A payload longer than
// PayloadSize is not truncated; the result then fails the size check with
// ErrSizeMismatch.
func BuildImage(payload []byte) ([]byte, error) {
	buf := make([]byte, 0, SectorSize)
	buf = append(buf, payload...)

	for len(buf) < PayloadSize {
		buf = append(buf, 0x00)
	}

	buf = append(buf, SignatureByte1, SignatureByte2)

	if len(buf) != SectorSize {
		return nil, ErrSizeMismatch.WithDetails(
			fmt.Sprintf("%d instruction bytes leave a %d byte image", len(payload), len(buf)))
	}
	return buf, nil
}

// HasSignature reports whether image carries the boot signature at 510-511.
func HasSignature(image []byte) bool {
	if len(image) < SectorSize {
		return false
	}
	return bytes.Equal(image[SignatureOffset:SectorSize], Signature)
}

// UsedPayload returns the length of the payload up to and including the
// last non-zero byte before the signature.
func UsedPayload(image []byte) int {
	end := min(len(image), PayloadSize)
	for i := end - 1; i >= 0; i-- {
		if image[i] != 0 {
			return i + 1
		}
	}
	return 0
}
