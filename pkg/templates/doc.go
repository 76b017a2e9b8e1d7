// Package templates provides discovery and loading of code-generation
// templates under a root directory.
//
// A template root carries a descriptor whose [template] table enumerates
// the sub-template names; each sub-template directory carries its own
// descriptor declaring placeholders. This package handles:
//
//   - root descriptor validation
//   - per-template descriptor loading in declaration order
//   - the Template value consumed by the variant and generation pipeline
package templates
