package json

import (
	"encoding/json"
	"fmt"

	ansiterm "github.com/tarleb/ansi-terminal-writer"
)

func decodeInlineList(raw json.RawMessage) ([]ansiterm.Inline, error) {
	var raws []json.RawMessage
	if err := json.Unmarshal(raw, &raws); err != nil {
		return nil, err
	}
	return decodeInlines(raws)
}

func decodeInlines(raws []json.RawMessage) ([]ansiterm.Inline, error) {
	var inlines []ansiterm.Inline
	for i, raw := range raws {
		var n node
		if err := json.Unmarshal(raw, &n); err != nil {
			return nil, fmt.Errorf("inline %d: %w", i, err)
		}
		in, err := decodeInline(n)
		if err != nil {
			return nil, fmt.Errorf("inline %d (%s): %w", i, n.T, err)
		}
		if in != nil {
			inlines = append(inlines, in)
		}
	}
	return inlines, nil
}

// decodeInline returns nil for tags without a model counterpart; the
// caller drops them.
func decodeInline(n node) (ansiterm.Inline, error) {
	switch n.T {
	case "Str":
		var text string
		if err := json.Unmarshal(n.C, &text); err != nil {
			return nil, err
		}
		return &ansiterm.Str{Text: text}, nil

	case "Space":
		return &ansiterm.Space{}, nil

	case "SoftBreak":
		return &ansiterm.SoftBreak{}, nil

	case "LineBreak":
		return &ansiterm.LineBreak{}, nil

	case "Emph", "Underline", "Strong", "Strikeout", "Superscript", "Subscript", "SmallCaps":
		inlines, err := decodeInlineList(n.C)
		if err != nil {
			return nil, err
		}
		switch n.T {
		case "Emph":
			return &ansiterm.Emph{Inlines: inlines}, nil
		case "Underline":
			return &ansiterm.Underline{Inlines: inlines}, nil
		case "Strong":
			return &ansiterm.Strong{Inlines: inlines}, nil
		case "Strikeout":
			return &ansiterm.Strikeout{Inlines: inlines}, nil
		case "Superscript":
			return &ansiterm.Superscript{Inlines: inlines}, nil
		case "Subscript":
			return &ansiterm.Subscript{Inlines: inlines}, nil
		default:
			return &ansiterm.SmallCaps{Inlines: inlines}, nil
		}

	case "Quoted":
		parts, err := tuple(n.C, 2)
		if err != nil {
			return nil, err
		}
		quoteType, err := tag(parts[0])
		if err != nil {
			return nil, fmt.Errorf("quote type: %w", err)
		}
		inlines, err := decodeInlineList(parts[1])
		if err != nil {
			return nil, err
		}
		return &ansiterm.Quoted{Type: ansiterm.QuoteType(quoteType), Inlines: inlines}, nil

	case "Cite":
		// Citation metadata has no terminal rendering; keep the
		// citation's inline content only.
		parts, err := tuple(n.C, 2)
		if err != nil {
			return nil, err
		}
		inlines, err := decodeInlineList(parts[1])
		if err != nil {
			return nil, err
		}
		return &ansiterm.Cite{Inlines: inlines}, nil

	case "Code":
		parts, err := tuple(n.C, 2)
		if err != nil {
			return nil, err
		}
		attr, err := decodeAttr(parts[0])
		if err != nil {
			return nil, fmt.Errorf("attr: %w", err)
		}
		var text string
		if err := json.Unmarshal(parts[1], &text); err != nil {
			return nil, fmt.Errorf("text: %w", err)
		}
		return &ansiterm.Code{Attr: attr, Text: text}, nil

	case "Math":
		parts, err := tuple(n.C, 2)
		if err != nil {
			return nil, err
		}
		mathType, err := tag(parts[0])
		if err != nil {
			return nil, fmt.Errorf("math type: %w", err)
		}
		var text string
		if err := json.Unmarshal(parts[1], &text); err != nil {
			return nil, fmt.Errorf("text: %w", err)
		}
		return &ansiterm.Math{Type: ansiterm.MathType(mathType), Text: text}, nil

	case "RawInline":
		parts, err := tuple(n.C, 2)
		if err != nil {
			return nil, err
		}
		var format, text string
		if err := json.Unmarshal(parts[0], &format); err != nil {
			return nil, fmt.Errorf("format: %w", err)
		}
		if err := json.Unmarshal(parts[1], &text); err != nil {
			return nil, fmt.Errorf("text: %w", err)
		}
		return &ansiterm.RawInline{Format: format, Text: text}, nil

	case "Link", "Image":
		parts, err := tuple(n.C, 3)
		if err != nil {
			return nil, err
		}
		attr, err := decodeAttr(parts[0])
		if err != nil {
			return nil, fmt.Errorf("attr: %w", err)
		}
		inlines, err := decodeInlineList(parts[1])
		if err != nil {
			return nil, err
		}
		target, err := decodeTarget(parts[2])
		if err != nil {
			return nil, fmt.Errorf("target: %w", err)
		}
		if n.T == "Link" {
			return &ansiterm.Link{Attr: attr, Inlines: inlines, Target: target}, nil
		}
		return &ansiterm.Image{Attr: attr, Inlines: inlines, Target: target}, nil

	case "Note":
		var raws []json.RawMessage
		if err := json.Unmarshal(n.C, &raws); err != nil {
			return nil, err
		}
		blocks, err := decodeBlocks(raws)
		if err != nil {
			return nil, err
		}
		return &ansiterm.Note{Blocks: blocks}, nil

	case "Span":
		parts, err := tuple(n.C, 2)
		if err != nil {
			return nil, err
		}
		attr, err := decodeAttr(parts[0])
		if err != nil {
			return nil, fmt.Errorf("attr: %w", err)
		}
		inlines, err := decodeInlineList(parts[1])
		if err != nil {
			return nil, err
		}
		return &ansiterm.Span{Attr: attr, Inlines: inlines}, nil
	}
	return nil, nil
}

func decodeTarget(raw json.RawMessage) (ansiterm.Target, error) {
	var parts [2]string
	if err := json.Unmarshal(raw, &parts); err != nil {
		return ansiterm.Target{}, err
	}
	return ansiterm.Target{URL: parts[0], Title: parts[1]}, nil
}
