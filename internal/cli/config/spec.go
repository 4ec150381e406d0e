// Package config defines the CLI configuration structure.
package config

import "github.com/yndnr/makeboot-go/internal/core/domain"

// CLIConfig is the configuration for makeboot.
type CLIConfig struct {
	Image  ImageConfig  `koanf:"image" yaml:"image"`
	Output OutputConfig `koanf:"output" yaml:"output"`
	Log    LogConfig    `koanf:"log" yaml:"log"`
}

// ImageConfig controls where images are written.
type ImageConfig struct {
	// Name is the output file used when --out-file is not given.
	Name string `koanf:"name" yaml:"name"`
	// Mkdir creates missing parent directories of the output file.
	Mkdir bool `koanf:"mkdir" yaml:"mkdir"`
}

// OutputConfig controls report formatting.
type OutputConfig struct {
	Format string `koanf:"format" yaml:"format"` // table, json, yaml
}

// LogConfig controls diagnostic logging on stderr.
type LogConfig struct {
	Level  string `koanf:"level" yaml:"level"`
	Format string `koanf:"format" yaml:"format"` // text, json
}

// Default returns the default CLI configuration.
func Default() *CLIConfig {
	return &CLIConfig{
		Image: ImageConfig{
			Name: domain.DefaultImageName,
		},
		Output: OutputConfig{
			Format: "table",
		},
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}
