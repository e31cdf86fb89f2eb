// Package config manages user-level settings stored at ~/.mint/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the introspection tool binary and its arguments. Environment variables with
// the MINT_ prefix override file values.
package config
