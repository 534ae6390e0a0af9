package ansiterm

// WrapMode controls how soft line breaks inside paragraphs are treated.
type WrapMode string

const (
	// WrapAuto collapses soft breaks to spaces and lets the writer
	// re-wrap paragraphs to the terminal width.
	WrapAuto WrapMode = "auto"

	// WrapNone collapses soft breaks to spaces, like WrapAuto.
	WrapNone WrapMode = "none"

	// WrapPreserve turns every soft break into a hard line break,
	// keeping the source's line structure.
	WrapPreserve WrapMode = "preserve"
)

// Config is the writer's option surface.
type Config struct {
	// Italic renders emphasis with the italic font effect instead of
	// the default underline.
	Italic bool

	// Unicode renders footnote markers as superscript Unicode digits
	// instead of the bracket form [^N].
	Unicode bool

	// Wrap selects the soft-break treatment. The zero value behaves
	// like WrapAuto.
	Wrap WrapMode
}
