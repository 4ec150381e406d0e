package filewatch

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/yndnr/makeboot-go/internal/telemetry/logger"
)

func TestNewWatcher(t *testing.T) {
	w, err := NewWatcher()
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	defer w.Stop()

	if w.watcher == nil {
		t.Error("NewWatcher() watcher is nil")
	}
	if w.logger == nil {
		t.Error("NewWatcher() logger is nil")
	}
}

func TestNewWatcher_WithLogger(t *testing.T) {
	l := logger.Nop()
	w, err := NewWatcher(WithLogger(l))
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	defer w.Stop()

	if w.logger != l {
		t.Error("WithLogger() option not applied")
	}
}

func TestWatcher_Watch_NonexistentDir(t *testing.T) {
	w, err := NewWatcher(WithLogger(logger.Nop()))
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	defer w.Stop()

	if err := w.Watch("/nonexistent/path/boot.hex"); err == nil {
		t.Error("Watch() expected error for nonexistent directory")
	}
}

func TestWatcher_IsWatched(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "boot.txt")

	w, err := NewWatcher(WithLogger(logger.Nop()))
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	defer w.Stop()

	if err := w.Watch(file); err != nil {
		t.Fatalf("Watch() error = %v", err)
	}
	if !w.isWatched(file) {
		t.Error("watched file should be reported as watched")
	}
	if w.isWatched(filepath.Join(dir, "other.txt")) {
		t.Error("sibling file should not be reported as watched")
	}
}

func TestWatcher_OnChange_MultipleCallbacks(t *testing.T) {
	w, err := NewWatcher()
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	defer w.Stop()

	var count int
	for i := 0; i < 3; i++ {
		w.OnChange(func(string) { count++ })
	}

	w.notifyCallbacks("/test/path")
	if count != 3 {
		t.Errorf("callbacks called %d times, want 3", count)
	}
}

func TestWatcher_Run_DetectsWrite(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "boot.txt")
	if err := os.WriteFile(file, []byte("EB FE"), 0644); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(WithLogger(logger.Nop()))
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	defer w.Stop()

	if err := w.Watch(file); err != nil {
		t.Fatalf("Watch() error = %v", err)
	}

	changed := make(chan string, 8)
	var once sync.Once
	w.OnChange(func(path string) {
		once.Do(func() { changed <- path })
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	if err := os.WriteFile(file, []byte("EB FE 90"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case path := <-changed:
		if filepath.Base(path) != "boot.txt" {
			t.Errorf("changed path = %q, want boot.txt", path)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for change notification")
	}
}

func TestWatcher_Run_StopsOnCancel(t *testing.T) {
	w, err := NewWatcher(WithLogger(logger.Nop()))
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestWatcher_Stop_Twice(t *testing.T) {
	w, err := NewWatcher()
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	if err := w.Stop(); err != nil {
		t.Errorf("first Stop() error = %v", err)
	}
	if err := w.Stop(); err != nil {
		t.Errorf("second Stop() error = %v", err)
	}
}
