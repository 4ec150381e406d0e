// Package config provides CLI configuration for makeboot.
//
//   - spec.go: CLIConfig struct (~/.makeboot/config.yaml)
//   - loader.go: Configuration loading and saving
//
// Example file:
//
//	image:
//	  name: boot.bin
//	  mkdir: false
//	output:
//	  format: table
//	log:
//	  level: warn
//	  format: text
package config
