// Package domain defines the core domain models for makeboot.
package domain

// Reasons reported for images that are not bootable.
const (
	ReasonTooSmall         = "image is smaller than 512 bytes"
	ReasonMissingSignature = "missing 0x55AA signature"
)

// Report describes an existing boot sector image.
type Report struct {
	Path         string `json:"path" yaml:"path"`
	Size         int    `json:"size" yaml:"size"`
	PayloadBytes int    `json:"payload_bytes" yaml:"payload_bytes"`
	FreeBytes    int    `json:"free_bytes" yaml:"free_bytes"`
	Signature    bool   `json:"signature" yaml:"signature"`
	Bootable     bool   `json:"bootable" yaml:"bootable"`
	Reason       string `json:"reason,omitempty" yaml:"reason,omitempty"`
}

// Examine checks image the way firmware would before jumping to 0x7C00:
// at least one full sector must be present and the sector must end in the
// boot signature. Bytes past the first sector are ignored.
func Examine(path string, image []byte) *Report {
	r := &Report{
		Path: path,
		Size: len(image),
	}

	if len(image) < SectorSize {
		r.Reason = ReasonTooSmall
		return r
	}

	r.PayloadBytes = UsedPayload(image)
	r.FreeBytes = PayloadSize - r.PayloadBytes
	r.Signature = HasSignature(image)
	if !r.Signature {
		r.Reason = ReasonMissingSignature
		return r
	}

	r.Bootable = true
	return r
}
