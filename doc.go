// Package bitreg converts between raw register words and the named,
// typed bit fields a schema declares inside them.
//
// Ownership boundary:
// - register schemas and field descriptors
// - per-field pack/unpack primitives
// - register encode/decode entry points
// - named schema registry
package bitreg
