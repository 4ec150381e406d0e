// Package service provides domain services for makeboot.
package service

import (
	"context"
	"fmt"

	"github.com/oklog/ulid/v2"

	"github.com/yndnr/makeboot-go/internal/core/domain"
	"github.com/yndnr/makeboot-go/internal/telemetry/logger"
)

// ImageWriter persists a finished image.
type ImageWriter interface {
	Write(path string, image []byte) error
}

// AssembleResult describes a successfully written boot sector.
type AssembleResult struct {
	BuildID      string `json:"build_id" yaml:"build_id"`
	Path         string `json:"path" yaml:"path"`
	PayloadBytes int    `json:"payload_bytes" yaml:"payload_bytes"`
	PaddingBytes int    `json:"padding_bytes" yaml:"padding_bytes"`
	Image        []byte `json:"-" yaml:"-"`
}

// Assembler turns byte tokens into boot sector images.
type Assembler struct {
	writer      ImageWriter
	defaultName string
	logger      logger.Logger
}

// AssemblerOption configures an Assembler.
type AssemblerOption func(*Assembler)

// WithDefaultName sets the output path used when Assemble gets an empty name.
func WithDefaultName(name string) AssemblerOption {
	return func(a *Assembler) {
		if name != "" {
			a.defaultName = name
		}
	}
}

// WithLogger sets the assembler logger.
func WithLogger(l logger.Logger) AssemblerOption {
	return func(a *Assembler) {
		a.logger = l
	}
}

// NewAssembler creates an Assembler that writes images through w.
func NewAssembler(w ImageWriter, opts ...AssemblerOption) *Assembler {
	a := &Assembler{
		writer:      w,
		defaultName: domain.DefaultImageName,
		logger:      logger.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// DefaultName returns the output path used for an empty name.
func (a *Assembler) DefaultName() string {
	return a.defaultName
}

// Build validates instructions and lays them out as a 512-byte image.
// It performs no I/O. The first invalid token aborts the build.
func (a *Assembler) Build(instructions []string) ([]byte, error) {
	payload, err := domain.ParseTokens(instructions)
	if err != nil {
		return nil, err
	}
	return domain.BuildImage(payload)
}

// Assemble builds the image for instructions and writes it to outputName,
// replacing any existing file. Nothing is written unless the whole image
// builds successfully.
func (a *Assembler) Assemble(ctx context.Context, instructions []string, outputName string) (*AssembleResult, error) {
	if outputName == "" {
		outputName = a.defaultName
	}

	buildID := ulid.Make().String()
	log := a.logger.WithContext(ctx).With("build_id", buildID)

	image, err := a.Build(instructions)
	if err != nil {
		log.Debug("boot sector rejected", "code", domain.GetErrorCode(err), "error", err)
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("assemble %s: %w", outputName, err)
	}

	if err := a.writer.Write(outputName, image); err != nil {
		log.Debug("failed to write boot sector", "path", outputName, "error", err)
		return nil, err
	}

	result := &AssembleResult{
		BuildID:      buildID,
		Path:         outputName,
		PayloadBytes: len(instructions),
		PaddingBytes: domain.PayloadSize - len(instructions),
		Image:        image,
	}

	log.Info("boot sector assembled",
		"path", result.Path,
		"bytes", result.PayloadBytes,
		"padding", result.PaddingBytes,
	)
	return result, nil
}
