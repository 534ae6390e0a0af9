package layout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tarleb/ansi-terminal-writer/layout"
)

func TestWrap(t *testing.T) {
	t.Parallel()

	t.Run("wraps at word boundaries", func(t *testing.T) {
		t.Parallel()
		got := layout.Wrap("one two three", 7)
		assert.Equal(t, "one two\nthree", got)
	})

	t.Run("preserves existing line breaks", func(t *testing.T) {
		t.Parallel()
		got := layout.Wrap("one\ntwo", 80)
		assert.Equal(t, "one\ntwo", got)
	})

	t.Run("escape sequences are zero width", func(t *testing.T) {
		t.Parallel()
		got := layout.Wrap("\x1b[1mone\x1b[22m two", 7)
		assert.Equal(t, "\x1b[1mone\x1b[22m two", got)
	})

	t.Run("zero width disables wrapping", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "one two three", layout.Wrap("one two three", 0))
	})
}

func TestIndent(t *testing.T) {
	t.Parallel()

	t.Run("indents every line", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "    a\n    b", layout.Indent("a\nb", 4))
	})

	t.Run("blank lines stay blank", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "  a\n\n  b", layout.Indent("a\n\nb", 2))
	})
}

func TestPrefix(t *testing.T) {
	t.Parallel()
	got := layout.Prefix("a\n\nb", "> ")
	assert.Equal(t, "> a\n> \n> b", got)
}

func TestHang(t *testing.T) {
	t.Parallel()

	t.Run("first line after prefix, continuation indented", func(t *testing.T) {
		t.Parallel()
		got := layout.Hang("one\ntwo", "1.  ", 4)
		assert.Equal(t, "1.  one\n    two", got)
	})

	t.Run("prefix wider than continuation indent", func(t *testing.T) {
		t.Parallel()
		got := layout.Hang("one\ntwo", "[^1]: ", 4)
		assert.Equal(t, "[^1]: one\n    two", got)
	})

	t.Run("blank continuation lines stay blank", func(t *testing.T) {
		t.Parallel()
		got := layout.Hang("one\n\ntwo", "- ", 2)
		assert.Equal(t, "- one\n\n  two", got)
	})
}

func TestCenter(t *testing.T) {
	t.Parallel()

	t.Run("pads left by half the free space", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "   ab", layout.Center("ab", 8))
	})

	t.Run("odd free space rounds down", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "  abc", layout.Center("abc", 8))
	})

	t.Run("escape sequences do not shift the content", func(t *testing.T) {
		t.Parallel()
		got := layout.Center("\x1b[1mab\x1b[22m", 8)
		assert.Equal(t, "   \x1b[1mab\x1b[22m", got)
	})

	t.Run("wide lines are untouched", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "abcdef", layout.Center("abcdef", 4))
	})
}

func TestRightAlign(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "      ab", layout.RightAlign("ab", 8))
}

func TestJoinBlank(t *testing.T) {
	t.Parallel()

	t.Run("single blank line between blocks", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "a\n\nb", layout.JoinBlank("a", "b"))
	})

	t.Run("empty blocks collapse", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "a\n\nb", layout.JoinBlank("a", "", "", "b"))
	})

	t.Run("surrounding newlines collapse into the separator", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "a\n\nb", layout.JoinBlank("a\n", "\n\nb"))
	})
}

func TestJoinLines(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "a\nb", layout.JoinLines("a", "", "b"))
}

func TestTrimTrailing(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "a\n>\n b", layout.TrimTrailing("a  \n> \n b\t"))
}
