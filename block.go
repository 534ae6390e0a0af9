package ansiterm

// Document is the root of a parsed document: an ordered sequence of
// block-level nodes. Parsers that carry metadata drop it before handing
// the tree to the writer.
type Document struct {
	Blocks []Block
}

// Block is a structural unit that begins a new region of output: a
// paragraph, list, header, quote, and so on. The set of implementations
// is closed; rendering dispatches exhaustively over it.
type Block interface {
	block()
}

// Plain is a sequence of inlines without paragraph spacing. List items
// produced by tight lists consist of Plain blocks.
type Plain struct {
	Inlines []Inline
}

// Para is a paragraph.
type Para struct {
	Inlines []Inline
}

// LineBlock holds lines whose breaks must be preserved, each a sequence
// of inlines.
type LineBlock struct {
	Lines [][]Inline
}

// CodeBlock is a literal block of preformatted text.
type CodeBlock struct {
	Attr
	Text string
}

// RawBlock is verbatim content in some external format (html, latex, ...).
type RawBlock struct {
	Format string
	Text   string
}

// BlockQuote is a quoted sequence of blocks.
type BlockQuote struct {
	Blocks []Block
}

// ListStyle names the numbering style of an ordered list. The values
// match pandoc's type constructor names so the JSON decoder can use
// them directly.
type ListStyle string

const (
	DefaultStyle ListStyle = "DefaultStyle"
	Example      ListStyle = "Example"
	Decimal      ListStyle = "Decimal"
	LowerRoman   ListStyle = "LowerRoman"
	UpperRoman   ListStyle = "UpperRoman"
	LowerAlpha   ListStyle = "LowerAlpha"
	UpperAlpha   ListStyle = "UpperAlpha"
)

// ListDelim names the punctuation around an ordered list numeral.
type ListDelim string

const (
	DefaultDelim ListDelim = "DefaultDelim"
	Period       ListDelim = "Period"
	OneParen     ListDelim = "OneParen"
	TwoParens    ListDelim = "TwoParens"
)

// ListAttrs carries the numbering attributes of an ordered list.
type ListAttrs struct {
	Start     int
	Style     ListStyle
	Delimiter ListDelim
}

// OrderedList is a numbered list. Each item is a sequence of blocks.
type OrderedList struct {
	Attrs ListAttrs
	Items [][]Block
}

// BulletList is an unnumbered list. Each item is a sequence of blocks.
type BulletList struct {
	Items [][]Block
}

// Definition pairs a term with one or more definitions.
type Definition struct {
	Term        []Inline
	Definitions [][]Block
}

// DefinitionList is a list of term/definition pairs.
type DefinitionList struct {
	Items []Definition
}

// Header is a section heading with a level starting at 1.
type Header struct {
	Attr
	Level   int
	Inlines []Inline
}

// HorizontalRule is a thematic break between blocks.
type HorizontalRule struct{}

// Table is a table node. The terminal writer does not lay tables out;
// the node exists so documents containing tables still render.
type Table struct{}

// Div is a generic block container. It groups its children without
// affecting their styling.
type Div struct {
	Attr
	Blocks []Block
}

// Null is an empty block that renders to nothing.
type Null struct{}

func (*Plain) block()          {}
func (*Para) block()           {}
func (*LineBlock) block()      {}
func (*CodeBlock) block()      {}
func (*RawBlock) block()       {}
func (*BlockQuote) block()     {}
func (*OrderedList) block()    {}
func (*BulletList) block()     {}
func (*DefinitionList) block() {}
func (*Header) block()         {}
func (*HorizontalRule) block() {}
func (*Table) block()          {}
func (*Div) block()            {}
func (*Null) block()           {}
