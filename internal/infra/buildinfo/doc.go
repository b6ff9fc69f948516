// Package buildinfo exposes build information for ut.
//
// Version, Commit and BuildTime are injected via ldflags:
//
//	go build -ldflags "-X github.com/yndnr/ut-go/internal/infra/buildinfo.Version=v1.0.0" ./cmd/ut
//
// When a binary is built without ldflags, values recorded by the Go
// toolchain (module version, vcs revision and time) are used instead.
package buildinfo
