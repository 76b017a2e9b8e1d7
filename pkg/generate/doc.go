// Package generate drives the materialization of template variants.
//
// For each (template, variant) pair the driver computes a deterministic
// output directory (one nesting level per placeholder, in declaration
// order), creates it, and hands the pair to a Materializer. The default
// materializer shells out to cargo-generate; tests substitute their own.
//
// Generation is strictly sequential. Before the first variant the driver
// normalizes CARGO_NAME and CARGO_EMAIL process-wide so the collaborator
// embeds stable metadata; that mutation is unsynchronized and is the
// reason the pipeline must not generate variants concurrently.
package generate
