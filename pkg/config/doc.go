// Package config loads service configuration from a YAML file with
// environment variable overrides. Each value tracks its source (default,
// file or environment) for the configuration-show command.
package config
