// Package json decodes pandoc's JSON interchange format into the
// document model. Every element is a tagged object {"t": ..., "c": ...}
// whose content shape depends on the tag.
//
// Malformed shapes are errors; well-formed elements the writer has no
// rendering for (unknown tags from newer pandoc versions) are dropped
// silently. Document metadata is tolerated and ignored.
package json

import (
	"encoding/json"
	"fmt"
	"os"

	ansiterm "github.com/tarleb/ansi-terminal-writer"
)

// node is pandoc's tagged union representation. Tag-only elements like
// Space or Decimal carry no content.
type node struct {
	T string          `json:"t"`
	C json.RawMessage `json:"c"`
}

type document struct {
	Blocks []json.RawMessage `json:"blocks"`
}

// Unmarshal decodes a pandoc JSON document into the document model.
func Unmarshal(data []byte) (*ansiterm.Document, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("unmarshal document: %w", err)
	}
	blocks, err := decodeBlocks(doc.Blocks)
	if err != nil {
		return nil, err
	}
	return &ansiterm.Document{Blocks: blocks}, nil
}

// Load reads and decodes a pandoc JSON document from a file.
func Load(path string) (*ansiterm.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return Unmarshal(data)
}

// tuple splits a fixed-arity JSON array content value.
func tuple(raw json.RawMessage, arity int) ([]json.RawMessage, error) {
	var parts []json.RawMessage
	if err := json.Unmarshal(raw, &parts); err != nil {
		return nil, err
	}
	if len(parts) != arity {
		return nil, fmt.Errorf("want %d elements, got %d", arity, len(parts))
	}
	return parts, nil
}

// tag decodes a tag-only element such as {"t": "Decimal"}.
func tag(raw json.RawMessage) (string, error) {
	var n node
	if err := json.Unmarshal(raw, &n); err != nil {
		return "", err
	}
	return n.T, nil
}

func decodeAttr(raw json.RawMessage) (ansiterm.Attr, error) {
	parts, err := tuple(raw, 3)
	if err != nil {
		return ansiterm.Attr{}, err
	}
	var attr ansiterm.Attr
	if err := json.Unmarshal(parts[0], &attr.ID); err != nil {
		return ansiterm.Attr{}, fmt.Errorf("identifier: %w", err)
	}
	if err := json.Unmarshal(parts[1], &attr.Classes); err != nil {
		return ansiterm.Attr{}, fmt.Errorf("classes: %w", err)
	}
	var kvs [][2]string
	if err := json.Unmarshal(parts[2], &kvs); err != nil {
		return ansiterm.Attr{}, fmt.Errorf("key-value pairs: %w", err)
	}
	for _, kv := range kvs {
		attr.KVs = append(attr.KVs, ansiterm.KV{Key: kv[0], Value: kv[1]})
	}
	return attr, nil
}
