package service

import (
	"github.com/yndnr/makeboot-go/internal/core/domain"
)

// ImageReader loads an existing image.
type ImageReader interface {
	Read(path string) ([]byte, error)
}

// Inspect reads the image at path and reports whether firmware would
// accept it as a boot sector.
func Inspect(r ImageReader, path string) (*domain.Report, error) {
	data, err := r.Read(path)
	if err != nil {
		return nil, err
	}
	return domain.Examine(path, data), nil
}

// Verify is Inspect that fails with domain.ErrNotBootable when the image
// would be rejected. The report is returned in both cases.
func Verify(r ImageReader, path string) (*domain.Report, error) {
	report, err := Inspect(r, path)
	if err != nil {
		return nil, err
	}
	if !report.Bootable {
		return report, domain.ErrNotBootable.WithDetails(path + ": " + report.Reason)
	}
	return report, nil
}
