// Package domain defines the core value types of ut.
//
// Everything here is a pure value without IO or framework coupling:
//
//   - Precision: the unit a raw integer timestamp is counted in
//   - Preset: a named relative day (today, tomorrow, yesterday)
//   - DateTimeProvider: the injected clock and timezone
//   - Errors: domain error codes
//
// Name resolution for Precision and Preset goes through pkg/lookup.
package domain
