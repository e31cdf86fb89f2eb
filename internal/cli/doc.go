// Package cli defines the Cobra command tree for the mint CLI. Each file
// in this package registers one top-level command (dump, validate, config,
// version) with the root command. Commands delegate to internal/pkgmanifest
// for the work and only handle flag parsing and output formatting.
package cli
