// Package command provides the ut command-line application.
//
// This package defines all CLI commands using urfave/cli/v2:
//
//   - root.go: App, global flags, per-invocation setup and teardown
//   - parse.go: timestamp to date conversion
//   - generate.go: preset midnight to timestamp
//   - list.go: precisions and presets listings
//   - version.go: build information
//
// Commands parse flags, call the converter service, and hand the result
// to an output formatter.
package command
