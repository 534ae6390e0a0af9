// Command ansi-terminal-writer renders a pandoc JSON document as
// ANSI-decorated plain text.
//
// Usage:
//
//	pandoc -t json doc.md | ansi-terminal-writer [flags]
//	ansi-terminal-writer [flags] doc.json
//
// Flags:
//
//	-columns int     Output width (default: terminal width, or 80 when piped)
//	-italic          Render emphasis as italics instead of underline
//	-unicode         Use Unicode superscript footnote markers
//	-wrap string     Line wrapping: auto, none, preserve (default "auto")
//	-output string   Write to file instead of stdout
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	ansiterm "github.com/tarleb/ansi-terminal-writer"
	pandocjson "github.com/tarleb/ansi-terminal-writer/json"
	"github.com/tarleb/ansi-terminal-writer/writer"
	"golang.org/x/term"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "ansi-terminal-writer: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		columns  = flag.Int("columns", 0, "Output width (default: terminal width, or 80 when piped)")
		italic   = flag.Bool("italic", false, "Render emphasis as italics instead of underline")
		unicode  = flag.Bool("unicode", false, "Use Unicode superscript footnote markers")
		wrapFlag = flag.String("wrap", "auto", "Line wrapping: auto, none, preserve")
		output   = flag.String("output", "", "Write to file instead of stdout")
	)
	flag.Parse()

	wrap, err := wrapMode(*wrapFlag)
	if err != nil {
		return err
	}
	cfg := ansiterm.Config{Italic: *italic, Unicode: *unicode, Wrap: wrap}

	doc, err := load(flag.Args())
	if err != nil {
		return err
	}

	width := *columns
	if width <= 0 {
		width = detectWidth()
	}

	rendered := writer.Render(doc, width, cfg)

	out := io.Writer(os.Stdout)
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		out = f
	}
	if _, err := fmt.Fprintln(out, rendered); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func wrapMode(s string) (ansiterm.WrapMode, error) {
	switch ansiterm.WrapMode(s) {
	case ansiterm.WrapAuto, ansiterm.WrapNone, ansiterm.WrapPreserve:
		return ansiterm.WrapMode(s), nil
	}
	return "", fmt.Errorf("invalid -wrap value %q (want auto, none, or preserve)", s)
}

func load(args []string) (*ansiterm.Document, error) {
	switch len(args) {
	case 0:
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return pandocjson.Unmarshal(data)
	case 1:
		return pandocjson.Load(args[0])
	}
	return nil, fmt.Errorf("want at most one input file, got %d arguments", len(args))
}

func detectWidth() int {
	if isatty.IsTerminal(os.Stdout.Fd()) {
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
			return w
		}
	}
	return 80
}
