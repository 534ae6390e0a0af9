// Package writer renders a document tree as plain text decorated with
// ANSI SGR escape sequences, for display in a fixed-width terminal.
//
// Rendering is a single synchronous tree traversal. The only mutable
// state is the per-render footnote store: footnotes are numbered in the
// order their references appear and their bodies are rendered in one
// deferred block after the document body.
package writer

import (
	ansiterm "github.com/tarleb/ansi-terminal-writer"
	"github.com/tarleb/ansi-terminal-writer/layout"
)

// Render translates doc into terminal text wrapped to columns.
// Top-level blocks are separated by single blank lines; collected
// footnotes follow the body as a final block. The result carries
// literal characters and SGR sequences only.
func Render(doc *ansiterm.Document, columns int, cfg ansiterm.Config) string {
	if columns < 1 {
		columns = 1
	}
	r := &renderer{cfg: cfg, notes: &footnotes{}}
	body := r.blocks(doc.Blocks, columns)
	if notes := r.notes.drain(r, columns); notes != "" {
		body = layout.JoinBlank(body, notes)
	}
	return layout.TrimTrailing(body)
}

// renderer holds one render's configuration and footnote store. A
// renderer must not be shared between documents: the store is drained
// exactly once at the end of Render.
type renderer struct {
	cfg   ansiterm.Config
	notes *footnotes
}

func (r *renderer) blocks(bb []ansiterm.Block, width int) string {
	parts := make([]string, len(bb))
	for i, b := range bb {
		parts[i] = r.block(b, width)
	}
	return layout.JoinBlank(parts...)
}
