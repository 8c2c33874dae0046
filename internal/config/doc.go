// Package config loads scrubline scene configuration from TOML.
//
// A file names a base variant and overrides any part of it. Fields left out
// keep the variant's values, so an empty file is the variant unchanged.
package config
