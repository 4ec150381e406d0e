package storage

import (
	"bytes"
	"fmt"
	"io"

	"github.com/marcinbor85/gohex"

	"github.com/yndnr/makeboot-go/internal/core/domain"
)

// DefaultHexLineLength is the number of data bytes per Intel HEX record.
const DefaultHexLineLength byte = 16

// ExportIntelHex writes image as Intel HEX records starting at address.
// A zero lineLength selects DefaultHexLineLength.
func ExportIntelHex(w io.Writer, image []byte, address uint32, lineLength byte) error {
	if lineLength == 0 {
		lineLength = DefaultHexLineLength
	}

	mem := gohex.NewMemory()
	if err := mem.AddBinary(address, image); err != nil {
		return fmt.Errorf("add image at %#x: %w", address, err)
	}
	if err := mem.DumpIntelHex(w, lineLength); err != nil {
		return fmt.Errorf("dump intel hex: %w", err)
	}
	return nil
}

// ImportIntelHex loads Intel HEX records and returns size bytes starting at
// address, filling gaps with zero.
func ImportIntelHex(r io.Reader, address uint32, size int) ([]byte, error) {
	mem := gohex.NewMemory()
	if err := mem.ParseIntelHex(r); err != nil {
		return nil, fmt.Errorf("parse intel hex: %w", err)
	}
	return mem.ToBinary(address, uint32(size), 0x00), nil
}

// WriteIntelHex exports the image as a boot sector loaded at 0x7C00 to path.
func (s *ImageStore) WriteIntelHex(path string, image []byte) error {
	var buf bytes.Buffer
	if err := ExportIntelHex(&buf, image, domain.LoadAddress, DefaultHexLineLength); err != nil {
		return err
	}
	return s.Write(path, buf.Bytes())
}
