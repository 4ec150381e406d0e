package command

import (
	"encoding/json"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/yndnr/makeboot-go/internal/core/domain"
	"github.com/yndnr/makeboot-go/internal/storage"
)

// tableValue returns the VALUE column for field in a FIELD/VALUE table.
func tableValue(t *testing.T, out, field string) string {
	t.Helper()
	for _, line := range strings.Split(out, "\n") {
		fields := strings.Fields(line)
		if len(fields) >= 2 && fields[0] == field {
			return strings.Join(fields[1:], " ")
		}
	}
	t.Fatalf("field %q not found in:\n%s", field, out)
	return ""
}

func TestInspect_Table(t *testing.T) {
	sandbox(t)
	writeImage(t, "boot.bin", 0xEB, 0xFE, 0x90)

	stdout, _, err := runApp(t, "inspect", "boot.bin")
	if err != nil {
		t.Fatalf("run error = %v", err)
	}

	tests := map[string]string{
		"path":          "boot.bin",
		"size":          "512",
		"payload_bytes": "3",
		"free_bytes":    "507",
		"signature":     "true",
		"bootable":      "true",
	}
	for field, want := range tests {
		if got := tableValue(t, stdout, field); got != want {
			t.Errorf("%s = %q, want %q", field, got, want)
		}
	}
}

func TestInspect_JSONNotBootable(t *testing.T) {
	sandbox(t)
	if err := os.WriteFile("short.bin", []byte{0xEB, 0xFE}, 0o644); err != nil {
		t.Fatal(err)
	}

	stdout, _, err := runApp(t, "-o", "json", "inspect", "short.bin")
	if err != nil {
		t.Fatalf("inspect should not fail on a short image: %v", err)
	}

	var report domain.Report
	if err := json.Unmarshal([]byte(stdout), &report); err != nil {
		t.Fatalf("invalid JSON %q: %v", stdout, err)
	}
	if report.Bootable {
		t.Error("short image reported bootable")
	}
	if report.Reason != domain.ReasonTooSmall {
		t.Errorf("Reason = %q, want %q", report.Reason, domain.ReasonTooSmall)
	}
}

func TestInspect_MissingArg(t *testing.T) {
	sandbox(t)

	if _, _, err := runApp(t, "inspect"); err == nil {
		t.Fatal("expected error without image path")
	}
}

func TestVerify(t *testing.T) {
	sandbox(t)
	image := writeImage(t, "good.bin", 0x90)

	unsigned := append([]byte(nil), image...)
	unsigned[511] = 0x00
	if err := os.WriteFile("unsigned.bin", unsigned, 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		args    []string
		wantErr error
		wantOut string
	}{
		{"bootable", []string{"verify", "good.bin"}, nil, "good.bin: bootable (1 payload bytes, 509 free)\n"},
		{"quiet", []string{"verify", "-q", "good.bin"}, nil, ""},
		{"unsigned", []string{"verify", "unsigned.bin"}, domain.ErrNotBootable, ""},
		{"missing", []string{"verify", "missing.bin"}, domain.ErrIO, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := runApp(t, tt.args...)
			if tt.wantErr == nil && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
			if stdout != tt.wantOut {
				t.Errorf("stdout = %q, want %q", stdout, tt.wantOut)
			}
		})
	}
}

func TestVerify_ReasonInError(t *testing.T) {
	sandbox(t)
	if err := os.WriteFile("tiny.bin", []byte{0x55, 0xAA}, 0o644); err != nil {
		t.Fatal(err)
	}

	_, _, err := runApp(t, "verify", "tiny.bin")
	if err == nil || !strings.Contains(err.Error(), domain.ReasonTooSmall) {
		t.Errorf("error = %v, want reason %q", err, domain.ReasonTooSmall)
	}
}

func TestDump(t *testing.T) {
	sandbox(t)
	writeImage(t, "boot.bin", 0xEB, 0xFE)

	stdout, _, err := runApp(t, "dump", "boot.bin")
	if err != nil {
		t.Fatalf("run error = %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(stdout, "\n"), "\n")
	if !strings.HasPrefix(lines[0], "00000000  eb fe 00") {
		t.Errorf("first line = %q", lines[0])
	}
	if !strings.Contains(stdout, "00 55 aa  |") {
		t.Errorf("signature line missing:\n%s", stdout)
	}
	if last := lines[len(lines)-1]; last != "00000200" {
		t.Errorf("last line = %q, want 00000200", last)
	}
}

func TestExport_DefaultPath(t *testing.T) {
	sandbox(t)
	image := writeImage(t, "boot.bin", 0xEB, 0xFE, 0x90)

	stdout, _, err := runApp(t, "export", "boot.bin")
	if err != nil {
		t.Fatalf("run error = %v", err)
	}
	if stdout != "Intel HEX written to boot.hex\n" {
		t.Errorf("stdout = %q", stdout)
	}

	f, err := os.Open("boot.hex")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	got, err := storage.ImportIntelHex(f, domain.LoadAddress, domain.SectorSize)
	if err != nil {
		t.Fatalf("ImportIntelHex() error = %v", err)
	}
	if string(got) != string(image) {
		t.Error("exported records do not reproduce the image at 0x7C00")
	}
}

func TestExport_Stdout(t *testing.T) {
	sandbox(t)
	image := writeImage(t, "boot.bin", 0x90)

	stdout, _, err := runApp(t, "export", "boot.bin", "-")
	if err != nil {
		t.Fatalf("run error = %v", err)
	}
	if !strings.HasPrefix(stdout, ":") {
		t.Fatalf("stdout is not Intel HEX: %q", stdout)
	}

	got, err := storage.ImportIntelHex(strings.NewReader(stdout), domain.LoadAddress, domain.SectorSize)
	if err != nil {
		t.Fatalf("ImportIntelHex() error = %v", err)
	}
	if string(got) != string(image) {
		t.Error("stdout records do not reproduce the image")
	}
	if _, err := os.Stat("boot.hex"); !os.IsNotExist(err) {
		t.Error("no file should be written when exporting to stdout")
	}
}

func TestHexPath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"boot.bin", "boot.hex"},
		{"boot", "boot.hex"},
		{"dir/loader.img", "dir/loader.hex"},
		{"image.hex", "image.hex.hex"},
	}
	for _, tt := range tests {
		if got := hexPath(tt.in); got != tt.want {
			t.Errorf("hexPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
