// Package config loads typed application settings from defaults, an optional
// YAML file and FILMSTORE_* environment variables, and validates them before
// anything else starts.
package config
