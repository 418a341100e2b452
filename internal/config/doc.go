// Package config loads, normalizes, and validates introscan configuration
// data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and centralizes every knob the analysis
// pipeline and CLI need: library/staging directories, matcher thresholds,
// EDL emission policy, and logging format.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
