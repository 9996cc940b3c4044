// Package file provides the TOML-backed configuration store.
// Settings live in a single config.toml under the aoc config directory
// and are addressed with flattened dot-notation keys.
package file
