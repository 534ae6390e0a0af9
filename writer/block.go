package writer

import (
	"strings"

	ansiterm "github.com/tarleb/ansi-terminal-writer"
	"github.com/tarleb/ansi-terminal-writer/layout"
	"github.com/tarleb/ansi-terminal-writer/sgr"
)

// Space consumed by block decorations, in columns.
const (
	quoteIndent = 3 // "> " plus one column of nesting
	codeIndent  = 4
	defIndent   = 4
	noteIndent  = 4
	bulletWidth = 2 // "- "
)

func (r *renderer) block(b ansiterm.Block, width int) string {
	switch n := b.(type) {
	case *ansiterm.Plain:
		return layout.Wrap(r.inlines(n.Inlines), width)

	case *ansiterm.Para:
		return layout.Wrap(r.inlines(n.Inlines), width)

	case *ansiterm.Header:
		return r.header(n, width)

	case *ansiterm.BlockQuote:
		inner := r.blocks(n.Blocks, width-quoteIndent)
		return layout.Prefix(layout.Indent(inner, 1), "> ")

	case *ansiterm.Div:
		// Divs are a transparent grouping construct: their leading and
		// trailing breaks collapse into the surrounding blank-line join.
		return r.blocks(n.Blocks, width)

	case *ansiterm.LineBlock:
		lines := make([]string, len(n.Lines))
		for i, inlines := range n.Lines {
			lines[i] = r.inlines(inlines)
		}
		return strings.Join(lines, "\n")

	case *ansiterm.CodeBlock:
		return layout.Indent(strings.TrimRight(n.Text, "\n"), codeIndent)

	case *ansiterm.HorizontalRule:
		return layout.Center("* * * * *", width)

	case *ansiterm.BulletList:
		return r.bulletList(n, width)

	case *ansiterm.OrderedList:
		return r.orderedList(n, width)

	case *ansiterm.DefinitionList:
		return r.definitionList(n, width)

	case *ansiterm.Table:
		return "table omitted"

	case *ansiterm.RawBlock, *ansiterm.Null:
		return ""
	}
	return ""
}

// header renders the five-tier heading scheme: levels 1 and 2 are
// centered, level 3 keeps its column but stays bold+underline, level 4
// is faint, and everything deeper is plain bold.
func (r *renderer) header(h *ansiterm.Header, width int) string {
	content := r.inlines(h.Inlines)
	switch {
	case h.Level == 1:
		styled := sgr.Apply(content, sgr.Bold, sgr.Underline)
		return layout.Center(layout.Wrap(styled, width), width)
	case h.Level == 2:
		styled := sgr.Apply(content, sgr.Bold)
		return layout.Center(layout.Wrap(styled, width), width)
	case h.Level == 3:
		return layout.Wrap(sgr.Apply(content, sgr.Bold, sgr.Underline), width)
	case h.Level == 4:
		return layout.Wrap(sgr.Apply(content, sgr.Faint), width)
	default:
		return layout.Wrap(sgr.Apply(content, sgr.Bold), width)
	}
}

func (r *renderer) bulletList(l *ansiterm.BulletList, width int) string {
	tight := isTight(l.Items)
	items := make([]string, len(l.Items))
	for i, item := range l.Items {
		content := r.listItem(item, width-bulletWidth, tight)
		items[i] = layout.Hang(content, "- ", bulletWidth)
	}
	return joinItems(items, tight)
}

func (r *renderer) orderedList(l *ansiterm.OrderedList, width int) string {
	start := l.Attrs.Start
	if start < 1 {
		start = 1
	}
	tight := isTight(l.Items)
	colWidth := numeralWidth(start+len(l.Items)-1, l.Attrs.Style)
	items := make([]string, len(l.Items))
	for i, item := range l.Items {
		prefix := itemPrefix(delimit(numeral(start+i, l.Attrs.Style), l.Attrs.Delimiter), colWidth)
		content := r.listItem(item, width-colWidth, tight)
		items[i] = layout.Hang(content, prefix, colWidth)
	}
	return joinItems(items, tight)
}

// listItem renders one item's block sequence. Tight items keep their
// blocks on adjacent lines; loose items separate them with blank lines.
func (r *renderer) listItem(blocks []ansiterm.Block, width int, tight bool) string {
	if !tight {
		return r.blocks(blocks, width)
	}
	parts := make([]string, len(blocks))
	for i, b := range blocks {
		parts[i] = r.block(b, width)
	}
	return layout.JoinLines(parts...)
}

func joinItems(items []string, tight bool) string {
	if tight {
		return layout.JoinLines(items...)
	}
	return layout.JoinBlank(items...)
}

// definitionList renders each term above its definitions, definitions
// nested four columns, with a blank line between definitions and after
// each term's definitions.
func (r *renderer) definitionList(l *ansiterm.DefinitionList, width int) string {
	items := make([]string, len(l.Items))
	for i, item := range l.Items {
		term := layout.Wrap(r.inlines(item.Term), width)
		defs := make([]string, len(item.Definitions))
		for j, def := range item.Definitions {
			defs[j] = layout.Indent(r.blocks(def, width-defIndent), defIndent)
		}
		if joined := layout.JoinBlank(defs...); joined != "" {
			items[i] = term + "\n" + joined
		} else {
			items[i] = term
		}
	}
	return layout.JoinBlank(items...)
}
