// Package layout provides the text-shaping primitives the writer
// composes its output from: ANSI-aware word wrapping, nesting, hanging
// indents, per-line prefixing, alignment, and vertical joining with
// blank-line collapsing.
//
// A shaped block is a plain string of newline-separated lines, possibly
// containing SGR escape sequences. All width arithmetic is in display
// columns and treats escape sequences as zero-width.
package layout

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
)

// Wrap word-wraps s to width columns, preserving existing line breaks.
// A width of zero or less disables wrapping.
func Wrap(s string, width int) string {
	if width <= 0 || s == "" {
		return s
	}
	return wordwrap.String(s, width)
}

// Indent shifts every non-empty line of block right by n columns.
func Indent(block string, n int) string {
	if n <= 0 || block == "" {
		return block
	}
	return indent.String(block, uint(n))
}

// Prefix puts pref at the start of every line of block, blank lines
// included.
func Prefix(block, pref string) string {
	lines := strings.Split(block, "\n")
	for i, line := range lines {
		lines[i] = pref + line
	}
	return strings.Join(lines, "\n")
}

// Hang lays block out under prefix: the first line follows the prefix
// directly, continuation lines are indented by cont columns. The block
// should already be wrapped to the width remaining after cont columns.
func Hang(block, prefix string, cont int) string {
	lines := strings.Split(block, "\n")
	pad := strings.Repeat(" ", max(cont, 0))
	var sb strings.Builder
	for i, line := range lines {
		if i == 0 {
			sb.WriteString(prefix)
		} else {
			sb.WriteByte('\n')
			if line != "" {
				sb.WriteString(pad)
			}
		}
		sb.WriteString(line)
	}
	return sb.String()
}

// Center pads each line of block on the left so it sits centered within
// width columns. Lines at least as wide as width are left untouched.
func Center(block string, width int) string {
	return align(block, width, func(free int) int { return free / 2 })
}

// RightAlign pads each line of block on the left so it ends at column
// width. Lines at least as wide as width are left untouched.
func RightAlign(block string, width int) string {
	return align(block, width, func(free int) int { return free })
}

func align(block string, width int, pad func(free int) int) string {
	lines := strings.Split(block, "\n")
	for i, line := range lines {
		if line == "" {
			continue
		}
		if n := pad(width - lipgloss.Width(line)); n > 0 {
			lines[i] = strings.Repeat(" ", n) + line
		}
	}
	return strings.Join(lines, "\n")
}

// JoinBlank joins blocks vertically with a single blank line between
// them. Empty blocks and surrounding blank lines are dropped first, so
// adjacent separators collapse to at most one blank line.
func JoinBlank(blocks ...string) string {
	parts := make([]string, 0, len(blocks))
	for _, b := range blocks {
		b = strings.Trim(b, "\n")
		if b == "" {
			continue
		}
		parts = append(parts, b)
	}
	return strings.Join(parts, "\n\n")
}

// JoinLines joins blocks vertically with no blank line between them,
// dropping empty blocks.
func JoinLines(blocks ...string) string {
	parts := make([]string, 0, len(blocks))
	for _, b := range blocks {
		b = strings.Trim(b, "\n")
		if b == "" {
			continue
		}
		parts = append(parts, b)
	}
	return strings.Join(parts, "\n")
}

// TrimTrailing removes trailing spaces and tabs from every line.
func TrimTrailing(block string) string {
	lines := strings.Split(block, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n")
}
