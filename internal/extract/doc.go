// Package extract implements the multi-pattern extraction engine: a
// fixed set of named matchers applied uniformly to every unit of text,
// accumulating per-category result collections for the lifetime of one
// engine instance.
package extract
