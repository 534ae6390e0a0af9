package json

import (
	"encoding/json"
	"fmt"

	ansiterm "github.com/tarleb/ansi-terminal-writer"
)

func decodeBlocks(raws []json.RawMessage) ([]ansiterm.Block, error) {
	var blocks []ansiterm.Block
	for i, raw := range raws {
		var n node
		if err := json.Unmarshal(raw, &n); err != nil {
			return nil, fmt.Errorf("block %d: %w", i, err)
		}
		b, err := decodeBlock(n)
		if err != nil {
			return nil, fmt.Errorf("block %d (%s): %w", i, n.T, err)
		}
		if b != nil {
			blocks = append(blocks, b)
		}
	}
	return blocks, nil
}

func decodeBlockItems(raw json.RawMessage) ([][]ansiterm.Block, error) {
	var items [][]json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}
	out := make([][]ansiterm.Block, len(items))
	for i, item := range items {
		blocks, err := decodeBlocks(item)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		out[i] = blocks
	}
	return out, nil
}

// decodeBlock returns nil for tags without a model counterpart; the
// caller drops them.
func decodeBlock(n node) (ansiterm.Block, error) {
	switch n.T {
	case "Plain":
		inlines, err := decodeInlineList(n.C)
		if err != nil {
			return nil, err
		}
		return &ansiterm.Plain{Inlines: inlines}, nil

	case "Para":
		inlines, err := decodeInlineList(n.C)
		if err != nil {
			return nil, err
		}
		return &ansiterm.Para{Inlines: inlines}, nil

	case "LineBlock":
		var rawLines [][]json.RawMessage
		if err := json.Unmarshal(n.C, &rawLines); err != nil {
			return nil, err
		}
		lines := make([][]ansiterm.Inline, len(rawLines))
		for i, rawLine := range rawLines {
			line, err := decodeInlines(rawLine)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", i, err)
			}
			lines[i] = line
		}
		return &ansiterm.LineBlock{Lines: lines}, nil

	case "CodeBlock":
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
		return &ansiterm.CodeBlock{Attr: attr, Text: text}, nil

	case "RawBlock":
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
		return &ansiterm.RawBlock{Format: format, Text: text}, nil

	case "BlockQuote":
		var raws []json.RawMessage
		if err := json.Unmarshal(n.C, &raws); err != nil {
			return nil, err
		}
		blocks, err := decodeBlocks(raws)
		if err != nil {
			return nil, err
		}
		return &ansiterm.BlockQuote{Blocks: blocks}, nil

	case "OrderedList":
		parts, err := tuple(n.C, 2)
		if err != nil {
			return nil, err
		}
		attrs, err := decodeListAttrs(parts[0])
		if err != nil {
			return nil, fmt.Errorf("attributes: %w", err)
		}
		items, err := decodeBlockItems(parts[1])
		if err != nil {
			return nil, err
		}
		return &ansiterm.OrderedList{Attrs: attrs, Items: items}, nil

	case "BulletList":
		items, err := decodeBlockItems(n.C)
		if err != nil {
			return nil, err
		}
		return &ansiterm.BulletList{Items: items}, nil

	case "DefinitionList":
		return decodeDefinitionList(n.C)

	case "Header":
		parts, err := tuple(n.C, 3)
		if err != nil {
			return nil, err
		}
		var level int
		if err := json.Unmarshal(parts[0], &level); err != nil {
			return nil, fmt.Errorf("level: %w", err)
		}
		attr, err := decodeAttr(parts[1])
		if err != nil {
			return nil, fmt.Errorf("attr: %w", err)
		}
		inlines, err := decodeInlineList(parts[2])
		if err != nil {
			return nil, err
		}
		return &ansiterm.Header{Attr: attr, Level: level, Inlines: inlines}, nil

	case "HorizontalRule":
		return &ansiterm.HorizontalRule{}, nil

	case "Table":
		// The writer renders tables as a placeholder; the table's
		// internal structure is not decoded.
		return &ansiterm.Table{}, nil

	case "Div":
		parts, err := tuple(n.C, 2)
		if err != nil {
			return nil, err
		}
		attr, err := decodeAttr(parts[0])
		if err != nil {
			return nil, fmt.Errorf("attr: %w", err)
		}
		var raws []json.RawMessage
		if err := json.Unmarshal(parts[1], &raws); err != nil {
			return nil, err
		}
		blocks, err := decodeBlocks(raws)
		if err != nil {
			return nil, err
		}
		return &ansiterm.Div{Attr: attr, Blocks: blocks}, nil

	case "Null":
		return &ansiterm.Null{}, nil
	}
	return nil, nil
}

func decodeListAttrs(raw json.RawMessage) (ansiterm.ListAttrs, error) {
	parts, err := tuple(raw, 3)
	if err != nil {
		return ansiterm.ListAttrs{}, err
	}
	var attrs ansiterm.ListAttrs
	if err := json.Unmarshal(parts[0], &attrs.Start); err != nil {
		return ansiterm.ListAttrs{}, fmt.Errorf("start: %w", err)
	}
	style, err := tag(parts[1])
	if err != nil {
		return ansiterm.ListAttrs{}, fmt.Errorf("style: %w", err)
	}
	delim, err := tag(parts[2])
	if err != nil {
		return ansiterm.ListAttrs{}, fmt.Errorf("delimiter: %w", err)
	}
	attrs.Style = ansiterm.ListStyle(style)
	attrs.Delimiter = ansiterm.ListDelim(delim)
	return attrs, nil
}

func decodeDefinitionList(raw json.RawMessage) (*ansiterm.DefinitionList, error) {
	var rawItems [][]json.RawMessage
	if err := json.Unmarshal(raw, &rawItems); err != nil {
		return nil, err
	}
	list := &ansiterm.DefinitionList{Items: make([]ansiterm.Definition, len(rawItems))}
	for i, rawItem := range rawItems {
		if len(rawItem) != 2 {
			return nil, fmt.Errorf("item %d: want 2 elements, got %d", i, len(rawItem))
		}
		term, err := decodeInlineList(rawItem[0])
		if err != nil {
			return nil, fmt.Errorf("item %d term: %w", i, err)
		}
		defs, err := decodeBlockItems(rawItem[1])
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		list.Items[i] = ansiterm.Definition{Term: term, Definitions: defs}
	}
	return list, nil
}
