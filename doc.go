// Package ansiterm defines the document model consumed by the ANSI
// terminal writer: a tree of block-level and inline-level nodes in the
// shape produced by pandoc-style document parsers.
//
// The model is deliberately inert — it carries structure, not behavior.
// Rendering lives in the writer package, decoding of pandoc's JSON
// interchange format in the json package.
package ansiterm
