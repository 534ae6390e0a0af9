package ansiterm

import "strings"

// Stringify flattens inlines to their plain text content: text runs and
// code/math literals are kept, spacing inlines become single spaces,
// container inlines contribute their children, and footnotes are
// skipped. The writer uses it to detect autolinks, where a link's
// target equals its stringified content.
func Stringify(inlines []Inline) string {
	var sb strings.Builder
	stringifyTo(&sb, inlines)
	return sb.String()
}

func stringifyTo(sb *strings.Builder, inlines []Inline) {
	for _, in := range inlines {
		switch n := in.(type) {
		case *Str:
			sb.WriteString(n.Text)
		case *Space, *SoftBreak, *LineBreak:
			sb.WriteByte(' ')
		case *Code:
			sb.WriteString(n.Text)
		case *Math:
			sb.WriteString(n.Text)
		case *Emph:
			stringifyTo(sb, n.Inlines)
		case *Strong:
			stringifyTo(sb, n.Inlines)
		case *Strikeout:
			stringifyTo(sb, n.Inlines)
		case *Subscript:
			stringifyTo(sb, n.Inlines)
		case *Superscript:
			stringifyTo(sb, n.Inlines)
		case *SmallCaps:
			stringifyTo(sb, n.Inlines)
		case *Underline:
			stringifyTo(sb, n.Inlines)
		case *Cite:
			stringifyTo(sb, n.Inlines)
		case *Span:
			stringifyTo(sb, n.Inlines)
		case *Link:
			stringifyTo(sb, n.Inlines)
		case *Image:
			stringifyTo(sb, n.Inlines)
		case *Quoted:
			stringifyTo(sb, n.Inlines)
		case *RawInline, *Note:
			// No plain-text representation.
		}
	}
}
