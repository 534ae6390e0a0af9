package ansiterm

// Inline is a unit of content within a line: a text run, emphasis span,
// link, footnote reference, and so on. The set of implementations is
// closed; rendering dispatches exhaustively over it.
type Inline interface {
	inline()
}

// KV is a key-value attribute pair.
type KV struct {
	Key   string
	Value string
}

// Attr carries the identifier, classes, and key-value attributes a
// parser attaches to an element. The terminal writer ignores it, but
// decoded documents keep it so the model round-trips structure.
type Attr struct {
	ID      string
	Classes []string
	KVs     []KV
}

// Str is a run of literal text.
type Str struct {
	Text string
}

// Space is an inter-word space.
type Space struct{}

// SoftBreak is a breakable line ending inside a paragraph.
type SoftBreak struct{}

// LineBreak is a hard line break.
type LineBreak struct{}

// RawInline is verbatim content in some external format.
type RawInline struct {
	Format string
	Text   string
}

// Code is an inline code span.
type Code struct {
	Attr
	Text string
}

// Emph is emphasized content.
type Emph struct {
	Inlines []Inline
}

// Strong is strongly emphasized content.
type Strong struct {
	Inlines []Inline
}

// Strikeout is struck-out content.
type Strikeout struct {
	Inlines []Inline
}

// Subscript is subscripted content.
type Subscript struct {
	Inlines []Inline
}

// Superscript is superscripted content.
type Superscript struct {
	Inlines []Inline
}

// SmallCaps is content set in small capitals.
type SmallCaps struct {
	Inlines []Inline
}

// Underline is underlined content.
type Underline struct {
	Inlines []Inline
}

// Cite is cited content. Citation metadata is not modeled; only the
// rendered content survives decoding.
type Cite struct {
	Inlines []Inline
}

// MathType distinguishes display math from inline math.
type MathType string

const (
	DisplayMath MathType = "DisplayMath"
	InlineMath  MathType = "InlineMath"
)

// Math is literal TeX math.
type Math struct {
	Type MathType
	Text string
}

// Span is a generic inline container. It groups its children without
// affecting their styling.
type Span struct {
	Attr
	Inlines []Inline
}

// Target is a link or image destination.
type Target struct {
	URL   string
	Title string
}

// Link is a hyperlink with the link text as content.
type Link struct {
	Attr
	Inlines []Inline
	Target  Target
}

// Image is an image with its caption as content.
type Image struct {
	Attr
	Inlines []Inline
	Target  Target
}

// QuoteType distinguishes single from double typographic quoting.
type QuoteType string

const (
	SingleQuote QuoteType = "SingleQuote"
	DoubleQuote QuoteType = "DoubleQuote"
)

// Quoted is content wrapped in typographic quotes.
type Quoted struct {
	Type    QuoteType
	Inlines []Inline
}

// Note is a footnote. Its body is a sequence of blocks rendered apart
// from the reference point.
type Note struct {
	Blocks []Block
}

func (*Str) inline()         {}
func (*Space) inline()       {}
func (*SoftBreak) inline()   {}
func (*LineBreak) inline()   {}
func (*RawInline) inline()   {}
func (*Code) inline()        {}
func (*Emph) inline()        {}
func (*Strong) inline()      {}
func (*Strikeout) inline()   {}
func (*Subscript) inline()   {}
func (*Superscript) inline() {}
func (*SmallCaps) inline()   {}
func (*Underline) inline()   {}
func (*Cite) inline()        {}
func (*Math) inline()        {}
func (*Span) inline()        {}
func (*Link) inline()        {}
func (*Image) inline()       {}
func (*Quoted) inline()      {}
func (*Note) inline()        {}
