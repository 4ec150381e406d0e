package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/yndnr/makeboot-go/internal/core/domain"
)

// File permissions for written images.
const (
	DefaultFilePerm = 0644
	DefaultDirPerm  = 0755
)

// ImageStore reads and writes image files on the local file system.
type ImageStore struct {
	// CreateDirs creates missing parent directories before writing.
	CreateDirs bool
}

// NewImageStore creates an image store.
func NewImageStore() *ImageStore {
	return &ImageStore{}
}

// Write writes image to path, replacing any existing file.
// Failures are reported as domain.ErrIO wrapping the cause.
func (s *ImageStore) Write(path string, image []byte) (err error) {
	if s.CreateDirs {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, DefaultDirPerm); err != nil {
				return ioError("create directory", dir, err)
			}
		}
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, DefaultFilePerm)
	if err != nil {
		return ioError("open", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = ioError("close", path, cerr)
		}
	}()

	n, err := f.Write(image)
	if err != nil {
		return ioError("write", path, err)
	}
	if n != len(image) {
		return ioError("write", path, io.ErrShortWrite)
	}
	return nil
}

// Read returns the contents of the image at path.
func (s *ImageStore) Read(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ioError("read", path, err)
	}
	return data, nil
}

// Exists reports whether a regular file exists at path.
func (s *ImageStore) Exists(path string) bool {
	fi, err := os.Stat(path)
	if err != nil {
		return false
	}
	return fi.Mode().IsRegular()
}

// IsNotExist reports whether err was caused by a missing file.
func IsNotExist(err error) bool {
	return errors.Is(err, os.ErrNotExist)
}

func ioError(op, path string, err error) error {
	return domain.ErrIO.WithDetails(fmt.Sprintf("%s %s", op, path)).WithCause(err)
}
