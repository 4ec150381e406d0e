package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/yndnr/makeboot-go/internal/infra/confloader"
)

// DefaultConfigPath returns the default CLI config file path.
func DefaultConfigPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".makeboot", "config.yaml")
}

// Load loads CLI configuration. Sources are applied in order: defaults,
// the YAML file at path, MAKEBOOT_* environment variables, then flags.
//
// An empty path means DefaultConfigPath, which may be absent. An explicit
// path must exist.
func Load(path string, flags map[string]any) (*CLIConfig, error) {
	opts := []confloader.Option{confloader.WithConfigFile(path)}
	if path == "" {
		opts = []confloader.Option{
			confloader.WithConfigFile(DefaultConfigPath()),
			confloader.WithOptionalFile(),
		}
	}

	cfg := Default()
	l := confloader.NewLoader(opts...)
	if err := l.Load(cfg); err != nil {
		return nil, err
	}

	if len(flags) > 0 {
		if err := l.LoadMap(flags); err != nil {
			return nil, err
		}
		if err := l.Unmarshal(cfg); err != nil {
			return nil, fmt.Errorf("unmarshal flags: %w", err)
		}
	}

	return cfg, nil
}

// Save writes cfg as YAML to path, creating the directory if needed.
func Save(cfg *CLIConfig, path string) error {
	if path == "" {
		path = DefaultConfigPath()
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
