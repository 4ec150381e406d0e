// Package command provides CLI command definitions for makeboot.
//
// This package defines all CLI commands using urfave/cli/v2:
//
//   - root.go: App, global flags, the Before hook that wires services
//   - assemble.go: Root action that writes a boot sector from byte tokens
//   - image.go: inspect, verify, dump and export
//   - watch.go: Rebuild on token file changes
//   - config.go: Configuration subcommand group
//
// Commands parse their arguments, call the service layer and format
// the result on the app's Writer. Errors are returned to main.
package command
