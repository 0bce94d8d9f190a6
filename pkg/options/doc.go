// Package options provides the static department -> vacancy catalog used by
// the role step, plus helpers that derive dependent select options.
//
// The default catalog is embedded from data/departments.yaml and loaded once.
// Callers may supply their own YAML document through LoadCatalog; the result
// is immutable for the lifetime of the process.
package options
