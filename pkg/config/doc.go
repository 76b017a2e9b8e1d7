// Package config parses template descriptor files (cargo-generate.toml).
//
// Two kinds of descriptors share the format:
//
//   - the root descriptor, whose [template] table lists the sub-template
//     names that exist under the template root
//   - per-template descriptors, whose [placeholders.<name>] tables declare
//     each parameter and its allowed choices
//
// Placeholder declaration order is significant downstream (it fixes both
// the define order inside a variant and the nesting order of output
// directories), so the loader preserves it exactly as written in the file.
package config
