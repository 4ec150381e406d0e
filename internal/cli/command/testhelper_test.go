package command

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/yndnr/makeboot-go/internal/core/domain"
)

// sandbox isolates a test from the user's home directory and MAKEBOOT_*
// environment, and makes a fresh temp directory the working directory.
func sandbox(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("HOME", filepath.Join(dir, "home"))
	for _, name := range []string{"MAKEBOOT_CONFIG", "MAKEBOOT_IMAGE_NAME", "MAKEBOOT_OUTPUT_FORMAT", "MAKEBOOT_LOG_LEVEL"} {
		t.Setenv(name, "")
		os.Unsetenv(name)
	}
	t.Chdir(dir)
	return dir
}

// runApp runs the CLI with args and captures its output.
func runApp(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	return runAppContext(context.Background(), args...)
}

func runAppContext(ctx context.Context, args ...string) (string, string, error) {
	app := App()
	var out, errOut bytes.Buffer
	app.Writer = &out
	app.ErrWriter = &errOut

	err := app.RunContext(ctx, append([]string{"makeboot"}, args...))
	return out.String(), errOut.String(), err
}

// writeImage writes a boot sector built from payload to path.
func writeImage(t *testing.T, path string, payload ...byte) []byte {
	t.Helper()

	image, err := domain.BuildImage(payload)
	if err != nil {
		t.Fatalf("BuildImage() error = %v", err)
	}
	if err := os.WriteFile(path, image, 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return image
}
