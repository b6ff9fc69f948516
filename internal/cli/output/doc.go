// Package output renders command results for ut.
//
//   - formatter.go: Format names and the Formatter factory
//   - text.go: plain text, one result per line
//   - json.go, yaml.go: machine-readable records
//   - table.go: aligned tables for listings
package output
