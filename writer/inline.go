package writer

import (
	"strings"

	ansiterm "github.com/tarleb/ansi-terminal-writer"
	"github.com/tarleb/ansi-terminal-writer/sgr"
)

func (r *renderer) inlines(ii []ansiterm.Inline) string {
	var sb strings.Builder
	for _, in := range ii {
		sb.WriteString(r.inline(in))
	}
	return sb.String()
}

func (r *renderer) inline(in ansiterm.Inline) string {
	switch n := in.(type) {
	case *ansiterm.Str:
		return n.Text

	case *ansiterm.Space:
		return " "

	case *ansiterm.SoftBreak:
		if r.cfg.Wrap == ansiterm.WrapPreserve {
			return "\n"
		}
		return " "

	case *ansiterm.LineBreak:
		return "\n"

	case *ansiterm.Code:
		return r.code(n.Text)

	case *ansiterm.Emph:
		if r.cfg.Italic {
			return sgr.Apply(r.inlines(n.Inlines), sgr.Italic)
		}
		return sgr.Apply(r.inlines(n.Inlines), sgr.Underline)

	case *ansiterm.Strong:
		return sgr.Apply(r.inlines(n.Inlines), sgr.Bold)

	case *ansiterm.Strikeout:
		return sgr.Apply(r.inlines(n.Inlines), sgr.Strikeout)

	case *ansiterm.Underline:
		return sgr.Apply(r.inlines(n.Inlines), sgr.Underline)

	case *ansiterm.Subscript:
		return "~" + r.inlines(n.Inlines) + "~"

	case *ansiterm.Superscript:
		return "^" + r.inlines(n.Inlines) + "^"

	case *ansiterm.SmallCaps:
		return r.inlines(uppercased(n.Inlines))

	case *ansiterm.Math:
		if n.Type == ansiterm.DisplayMath {
			return r.code("$$" + n.Text + "$$")
		}
		return r.code("$" + n.Text + "$")

	case *ansiterm.Quoted:
		if n.Type == ansiterm.DoubleQuote {
			return "“" + r.inlines(n.Inlines) + "”"
		}
		return "‘" + r.inlines(n.Inlines) + "’"

	case *ansiterm.Cite:
		return r.inlines(n.Inlines)

	case *ansiterm.Span:
		return r.inlines(n.Inlines)

	case *ansiterm.Link:
		return r.link(n)

	case *ansiterm.Image:
		// Caption only; no terminal image protocol is attempted.
		return r.inlines(n.Inlines)

	case *ansiterm.Note:
		return r.noteMarker(r.notes.add(n.Blocks))

	case *ansiterm.RawInline:
		return ""
	}
	return ""
}

// code is the inline code path: bold, no other decoration. Math spans
// are delegated here with their dollar delimiters already attached.
func (r *renderer) code(text string) string {
	return sgr.Apply(text, sgr.Bold)
}

// link renders the link text, recording the target as a footnote unless
// the link collapses: same-document anchors and autolinks (target equal
// to the stringified content) render as their content alone.
func (r *renderer) link(l *ansiterm.Link) string {
	content := r.inlines(l.Inlines)
	if strings.HasPrefix(l.Target.URL, "#") || l.Target.URL == ansiterm.Stringify(l.Inlines) {
		return content
	}
	idx := r.notes.add([]ansiterm.Block{
		&ansiterm.Plain{Inlines: []ansiterm.Inline{&ansiterm.Str{Text: l.Target.URL}}},
	})
	return content + r.noteMarker(idx)
}

// uppercased returns a copy of inlines with every literal text run
// upper-cased. strings.ToUpper handles the full Unicode case mapping.
func uppercased(ii []ansiterm.Inline) []ansiterm.Inline {
	out := make([]ansiterm.Inline, len(ii))
	for i, in := range ii {
		out[i] = upperInline(in)
	}
	return out
}

func upperInline(in ansiterm.Inline) ansiterm.Inline {
	switch n := in.(type) {
	case *ansiterm.Str:
		return &ansiterm.Str{Text: strings.ToUpper(n.Text)}
	case *ansiterm.Emph:
		return &ansiterm.Emph{Inlines: uppercased(n.Inlines)}
	case *ansiterm.Strong:
		return &ansiterm.Strong{Inlines: uppercased(n.Inlines)}
	case *ansiterm.Strikeout:
		return &ansiterm.Strikeout{Inlines: uppercased(n.Inlines)}
	case *ansiterm.Subscript:
		return &ansiterm.Subscript{Inlines: uppercased(n.Inlines)}
	case *ansiterm.Superscript:
		return &ansiterm.Superscript{Inlines: uppercased(n.Inlines)}
	case *ansiterm.SmallCaps:
		return &ansiterm.SmallCaps{Inlines: uppercased(n.Inlines)}
	case *ansiterm.Underline:
		return &ansiterm.Underline{Inlines: uppercased(n.Inlines)}
	case *ansiterm.Cite:
		return &ansiterm.Cite{Inlines: uppercased(n.Inlines)}
	case *ansiterm.Span:
		return &ansiterm.Span{Attr: n.Attr, Inlines: uppercased(n.Inlines)}
	case *ansiterm.Quoted:
		return &ansiterm.Quoted{Type: n.Type, Inlines: uppercased(n.Inlines)}
	case *ansiterm.Link:
		return &ansiterm.Link{Attr: n.Attr, Inlines: uppercased(n.Inlines), Target: n.Target}
	case *ansiterm.Image:
		return &ansiterm.Image{Attr: n.Attr, Inlines: uppercased(n.Inlines), Target: n.Target}
	default:
		return in
	}
}
