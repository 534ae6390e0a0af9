package writer

import (
	"strconv"
	"strings"

	ansiterm "github.com/tarleb/ansi-terminal-writer"
	"github.com/tarleb/ansi-terminal-writer/layout"
)

// footnotes is the per-render store of footnote bodies, indexed 1..N in
// the order their references were encountered. It is appended to during
// inline translation and drained exactly once afterwards.
type footnotes struct {
	bodies [][]ansiterm.Block
}

// add appends body and returns its 1-based index.
func (f *footnotes) add(body []ansiterm.Block) int {
	f.bodies = append(f.bodies, body)
	return len(f.bodies)
}

// drain renders every recorded footnote in encounter order, each hung
// under its marker at a four-column indent, separated by blank lines.
// Bodies are rendered with the same block rules as the main document,
// so a footnote containing further notes or links extends the store
// while it drains; the index loop picks the additions up.
func (f *footnotes) drain(r *renderer, width int) string {
	var rendered []string
	for i := 0; i < len(f.bodies); i++ {
		var prefix string
		if r.cfg.Unicode {
			prefix = superscriptDigits(i+1) + " "
		} else {
			prefix = "[^" + strconv.Itoa(i+1) + "]: "
		}
		body := r.blocks(f.bodies[i], width-noteIndent)
		rendered = append(rendered, layout.Hang(body, prefix, noteIndent))
	}
	return layout.JoinBlank(rendered...)
}

// noteMarker is the inline footnote reference: [^N], or the number in
// superscript digits under the unicode option.
func (r *renderer) noteMarker(idx int) string {
	if r.cfg.Unicode {
		return superscriptDigits(idx)
	}
	return "[^" + strconv.Itoa(idx) + "]"
}

var superscripts = [...]rune{'⁰', '¹', '²', '³', '⁴', '⁵', '⁶', '⁷', '⁸', '⁹'}

// superscriptDigits writes n with each decimal digit replaced by its
// Unicode superscript form. Only digits have superscript glyphs, and
// footnote numbers consist of nothing else.
func superscriptDigits(n int) string {
	var sb strings.Builder
	for _, d := range strconv.Itoa(n) {
		sb.WriteRune(superscripts[d-'0'])
	}
	return sb.String()
}
