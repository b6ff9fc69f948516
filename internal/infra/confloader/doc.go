// Package confloader loads configuration with koanf.
//
// Sources, lowest to highest priority:
//
//  1. Defaults (WithDefaults)
//  2. YAML file (WithConfigFile, or WithOptionalFile when absence is fine)
//  3. Environment variables sharing a prefix (WithEnvPrefix)
//  4. Overrides, typically command-line flags (WithOverrides)
//
// Keys are dot-delimited; with prefix UT_, UT_LOG_LEVEL maps to log.level.
package confloader
