// Package config loads editor settings from a TOML file, falling
// back to built-in defaults when no file exists.
package config
