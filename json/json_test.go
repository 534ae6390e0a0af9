package json_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	ansiterm "github.com/tarleb/ansi-terminal-writer"
	pandocjson "github.com/tarleb/ansi-terminal-writer/json"
	"github.com/tarleb/ansi-terminal-writer/writer"
)

func TestUnmarshal(t *testing.T) {
	t.Parallel()

	t.Run("metadata is tolerated and ignored", func(t *testing.T) {
		t.Parallel()
		src := `{
			"pandoc-api-version": [1, 23, 1],
			"meta": {"title": {"t": "MetaInlines", "c": [{"t": "Str", "c": "T"}]}},
			"blocks": [{"t": "Para", "c": [{"t": "Str", "c": "hi"}]}]
		}`
		doc, err := pandocjson.Unmarshal([]byte(src))
		require.NoError(t, err)
		require.Len(t, doc.Blocks, 1)
		para, ok := doc.Blocks[0].(*ansiterm.Para)
		require.True(t, ok)
		require.Len(t, para.Inlines, 1)
		assert.Equal(t, &ansiterm.Str{Text: "hi"}, para.Inlines[0])
	})

	t.Run("header with attributes", func(t *testing.T) {
		t.Parallel()
		src := `{"blocks": [
			{"t": "Header", "c": [2, ["intro", ["sec"], [["k", "v"]]], [{"t": "Str", "c": "Intro"}]]}
		]}`
		doc, err := pandocjson.Unmarshal([]byte(src))
		require.NoError(t, err)
		h, ok := doc.Blocks[0].(*ansiterm.Header)
		require.True(t, ok)
		assert.Equal(t, 2, h.Level)
		assert.Equal(t, "intro", h.ID)
		assert.Equal(t, []string{"sec"}, h.Classes)
		assert.Equal(t, []ansiterm.KV{{Key: "k", Value: "v"}}, h.KVs)
	})

	t.Run("ordered list attributes", func(t *testing.T) {
		t.Parallel()
		src := `{"blocks": [
			{"t": "OrderedList", "c": [
				[3, {"t": "LowerRoman"}, {"t": "OneParen"}],
				[[{"t": "Plain", "c": [{"t": "Str", "c": "a"}]}],
				 [{"t": "Plain", "c": [{"t": "Str", "c": "b"}]}]]
			]}
		]}`
		doc, err := pandocjson.Unmarshal([]byte(src))
		require.NoError(t, err)
		l, ok := doc.Blocks[0].(*ansiterm.OrderedList)
		require.True(t, ok)
		assert.Equal(t, 3, l.Attrs.Start)
		assert.Equal(t, ansiterm.LowerRoman, l.Attrs.Style)
		assert.Equal(t, ansiterm.OneParen, l.Attrs.Delimiter)
		require.Len(t, l.Items, 2)
	})

	t.Run("definition list", func(t *testing.T) {
		t.Parallel()
		src := `{"blocks": [
			{"t": "DefinitionList", "c": [
				[[{"t": "Str", "c": "term"}],
				 [[{"t": "Para", "c": [{"t": "Str", "c": "def"}]}]]]
			]}
		]}`
		doc, err := pandocjson.Unmarshal([]byte(src))
		require.NoError(t, err)
		l, ok := doc.Blocks[0].(*ansiterm.DefinitionList)
		require.True(t, ok)
		require.Len(t, l.Items, 1)
		assert.Equal(t, []ansiterm.Inline{&ansiterm.Str{Text: "term"}}, l.Items[0].Term)
		require.Len(t, l.Items[0].Definitions, 1)
	})

	t.Run("inline variants", func(t *testing.T) {
		t.Parallel()
		src := `{"blocks": [{"t": "Para", "c": [
			{"t": "Emph", "c": [{"t": "Str", "c": "e"}]},
			{"t": "Space"},
			{"t": "Code", "c": [["", [], []], "ls"]},
			{"t": "Quoted", "c": [{"t": "DoubleQuote"}, [{"t": "Str", "c": "q"}]]},
			{"t": "Math", "c": [{"t": "InlineMath"}, "x"]},
			{"t": "Cite", "c": [[], [{"t": "Str", "c": "ref"}]]},
			{"t": "Link", "c": [["", [], []], [{"t": "Str", "c": "click"}], ["https://example.com", "title"]]},
			{"t": "Note", "c": [{"t": "Para", "c": [{"t": "Str", "c": "n"}]}]},
			{"t": "SoftBreak"},
			{"t": "LineBreak"}
		]}]}`
		doc, err := pandocjson.Unmarshal([]byte(src))
		require.NoError(t, err)
		para, ok := doc.Blocks[0].(*ansiterm.Para)
		require.True(t, ok)
		require.Len(t, para.Inlines, 10)
		assert.IsType(t, &ansiterm.Emph{}, para.Inlines[0])
		assert.IsType(t, &ansiterm.Space{}, para.Inlines[1])
		code, ok := para.Inlines[2].(*ansiterm.Code)
		require.True(t, ok)
		assert.Equal(t, "ls", code.Text)
		quoted, ok := para.Inlines[3].(*ansiterm.Quoted)
		require.True(t, ok)
		assert.Equal(t, ansiterm.DoubleQuote, quoted.Type)
		math, ok := para.Inlines[4].(*ansiterm.Math)
		require.True(t, ok)
		assert.Equal(t, ansiterm.InlineMath, math.Type)
		assert.IsType(t, &ansiterm.Cite{}, para.Inlines[5])
		l, ok := para.Inlines[6].(*ansiterm.Link)
		require.True(t, ok)
		assert.Equal(t, "https://example.com", l.Target.URL)
		assert.Equal(t, "title", l.Target.Title)
		n, ok := para.Inlines[7].(*ansiterm.Note)
		require.True(t, ok)
		require.Len(t, n.Blocks, 1)
		assert.IsType(t, &ansiterm.SoftBreak{}, para.Inlines[8])
		assert.IsType(t, &ansiterm.LineBreak{}, para.Inlines[9])
	})

	t.Run("tables keep their place as placeholders", func(t *testing.T) {
		t.Parallel()
		src := `{"blocks": [{"t": "Table", "c": [["", [], []], [null, []], [], [["", [], []], []], [], [["", [], []], []]]}]}`
		doc, err := pandocjson.Unmarshal([]byte(src))
		require.NoError(t, err)
		require.Len(t, doc.Blocks, 1)
		assert.IsType(t, &ansiterm.Table{}, doc.Blocks[0])
	})

	t.Run("unknown tags are dropped silently", func(t *testing.T) {
		t.Parallel()
		src := `{"blocks": [
			{"t": "Figure", "c": []},
			{"t": "Para", "c": [{"t": "Str", "c": "keep"}, {"t": "Sparkle", "c": "x"}]}
		]}`
		doc, err := pandocjson.Unmarshal([]byte(src))
		require.NoError(t, err)
		require.Len(t, doc.Blocks, 1)
		para := doc.Blocks[0].(*ansiterm.Para)
		require.Len(t, para.Inlines, 1)
	})

	t.Run("malformed document fails", func(t *testing.T) {
		t.Parallel()
		_, err := pandocjson.Unmarshal([]byte(`{"blocks": "nope"`))
		require.Error(t, err)
	})

	t.Run("wrong content arity fails with context", func(t *testing.T) {
		t.Parallel()
		_, err := pandocjson.Unmarshal([]byte(`{"blocks": [{"t": "CodeBlock", "c": ["only-one"]}]}`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "CodeBlock")
	})
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("reads a document from disk", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "doc.json")
		src := `{"blocks": [{"t": "Para", "c": [{"t": "Str", "c": "hello"}]}]}`
		require.NoError(t, os.WriteFile(path, []byte(src), 0o600))
		doc, err := pandocjson.Load(path)
		require.NoError(t, err)
		require.Len(t, doc.Blocks, 1)
	})

	t.Run("missing file fails", func(t *testing.T) {
		t.Parallel()
		_, err := pandocjson.Load(filepath.Join(t.TempDir(), "absent.json"))
		require.Error(t, err)
	})
}

func TestDecodeThenRender(t *testing.T) {
	t.Parallel()
	src := `{"blocks": [
		{"t": "Header", "c": [3, ["", [], []], [{"t": "Str", "c": "Title"}]]},
		{"t": "Para", "c": [
			{"t": "Str", "c": "See"},
			{"t": "Space"},
			{"t": "Link", "c": [["", [], []], [{"t": "Str", "c": "docs"}], ["https://example.com", ""]]}
		]}
	]}`
	doc, err := pandocjson.Unmarshal([]byte(src))
	require.NoError(t, err)
	got := writer.Render(doc, 80, ansiterm.Config{})
	assert.Equal(t, "\x1b[1;4mTitle\x1b[22;24m\n\nSee docs[^1]\n\n[^1]: https://example.com", got)
}
