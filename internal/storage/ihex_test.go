package storage

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yndnr/makeboot-go/internal/core/domain"
)

func TestExportIntelHex_RoundTrip(t *testing.T) {
	img, err := domain.BuildImage([]byte{0xEB, 0xFE, 0x90})
	if err != nil {
		t.Fatalf("BuildImage failed: %v", err)
	}

	var buf bytes.Buffer
	if err := ExportIntelHex(&buf, img, domain.LoadAddress, 0); err != nil {
		t.Fatalf("ExportIntelHex failed: %v", err)
	}

	out := buf.String()
	if !strings.HasPrefix(out, ":") {
		t.Errorf("output should start with a record mark, got %q", out[:min(len(out), 16)])
	}
	if !strings.Contains(out, ":00000001FF") {
		t.Error("output should end with an EOF record")
	}

	got, err := ImportIntelHex(strings.NewReader(out), domain.LoadAddress, domain.SectorSize)
	if err != nil {
		t.Fatalf("ImportIntelHex failed: %v", err)
	}
	if !bytes.Equal(got, img) {
		t.Error("round trip through Intel HEX should preserve the image")
	}
}

func TestImageStore_WriteIntelHex(t *testing.T) {
	path := filepath.Join(t.TempDir(), "boot.hex")
	img, _ := domain.BuildImage([]byte{0xEB, 0xFE})

	store := NewImageStore()
	if err := store.WriteIntelHex(path, img); err != nil {
		t.Fatalf("WriteIntelHex failed: %v", err)
	}

	data, err := store.Read(path)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	got, err := ImportIntelHex(bytes.NewReader(data), domain.LoadAddress, domain.SectorSize)
	if err != nil {
		t.Fatalf("ImportIntelHex failed: %v", err)
	}
	if !bytes.Equal(got, img) {
		t.Error("hex file should decode to the image")
	}
}

func TestExportIntelHex_LineLength(t *testing.T) {
	img, err := domain.BuildImage([]byte{0x90})
	if err != nil {
		t.Fatalf("BuildImage failed: %v", err)
	}

	tests := []struct {
		name       string
		lineLength byte
		wantRecord string
	}{
		{"default", 0, ":107C0000"},
		{"explicit default", DefaultHexLineLength, ":107C0000"},
		{"wide", 32, ":207C0000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := ExportIntelHex(&buf, img, domain.LoadAddress, tt.lineLength); err != nil {
				t.Fatalf("ExportIntelHex failed: %v", err)
			}
			if !strings.Contains(buf.String(), tt.wantRecord) {
				t.Errorf("output missing record %s:\n%s", tt.wantRecord, buf.String())
			}

			got, err := ImportIntelHex(&buf, domain.LoadAddress, domain.SectorSize)
			if err != nil {
				t.Fatalf("ImportIntelHex failed: %v", err)
			}
			if !bytes.Equal(got, img) {
				t.Error("records should decode to the image")
			}
		})
	}
}
