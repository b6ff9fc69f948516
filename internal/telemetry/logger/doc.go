// Package logger provides structured logging for ut.
//
// It wraps log/slog:
//
//   - logger.go: Logger interface, configuration and the default logger
//   - context.go: context propagation and invocation IDs
//
// The CLI logs to stderr in text format at warn level unless told
// otherwise, so stdout carries only conversion results.
package logger
