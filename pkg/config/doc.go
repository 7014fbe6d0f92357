// Package config loads, validates and writes the malaria configuration file.
//
// Loading is two-pass: the raw YAML is first validated against the JSON
// schema so errors point at the offending node in the source, then decoded
// into the typed configuration and defaulted.
package config
