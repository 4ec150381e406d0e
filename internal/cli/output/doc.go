// Package output provides output formatting for makeboot.
//
//   - formatter.go: Formatter interface and factory
//   - table.go: aligned text tables
//   - json.go: JSON output
//   - yaml.go: YAML output
//   - hexdump.go: "hexdump -C" style image listings
//
// Reports go to stdout so they can be piped; diagnostics go through the
// logger on stderr.
package output
