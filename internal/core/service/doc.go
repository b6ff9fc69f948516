// Package service orchestrates ut's domain types into commands.
//
// ConverterService turns raw command-line tokens into results:
//
//   - Parse: raw timestamp + optional precision -> formatted instant
//   - Generate: optional preset + precision -> raw timestamp of that day
//
// The clock is always passed in as a domain.DateTimeProvider; nothing here
// reads global time. Services hold no per-request state and are safe for
// concurrent use.
package service
