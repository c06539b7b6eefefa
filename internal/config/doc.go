// Package config loads, normalizes, and validates holocron configuration data.
//
// It supplies repository defaults (the series offset table, character macros,
// and the main/side classification lists), expands user paths including tilde
// shortcuts, reads TOML files, and honours HOLOCRON_LOG_LEVEL and
// HOLOCRON_LOG_FORMAT environment overrides.
//
// Always obtain settings through this package so downstream code receives
// trimmed names, canonical layout and policy values, and clear validation
// errors.
package config
