// Package config loads, normalizes, and validates the stratship TOML
// configuration.
//
// Configuration resolution prefers an explicit --config path, then
// ~/.config/stratship/config.toml, then a project-local stratship.toml.
// Relative project paths (dist dir, release notes, asset files) are resolved
// against the configured project directory so the CLI behaves the same from
// any working directory.
package config
