// Package lookup resolves names against closed sets of enumerated variants.
//
// Enumerations in ut (precisions, presets) expose their variants as a slice
// and a canonical String() name per variant. This package matches user input
// against those names:
//
//   - ByName: exact, case-sensitive match
//   - ByNameOpt: same, for optional input (nil means "not given")
//   - ByNameFold: Unicode case-folded match, for config and env values
//
// Usage:
//
//	p, err := lookup.ByName("millisecond", domain.Precisions())
//	if errors.Is(err, lookup.ErrNotFound) {
//		// err.Error() lists every possible name
//	}
package lookup
