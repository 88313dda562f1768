package nowiki

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// WriteMode selects the serialization layout.
type WriteMode int

const (
	// ModePretty writes indented JSON for humans and golden files.
	ModePretty WriteMode = iota
	// ModeCompact writes single-line JSON for machine consumers.
	ModeCompact
)

// Writer serializes an expanded document tree to JSON. Text runs are
// encoded as bare strings; element nodes as {tag, attrs, children} objects
// with empty fields omitted, so output is deterministic for a given tree.
type Writer struct {
	mode WriteMode
}

func NewWriter(mode WriteMode) *Writer {
	return &Writer{mode: mode}
}

func (w *Writer) Write(doc *Document, out io.Writer) error {
	enc := json.NewEncoder(out)
	if w.mode == ModePretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding document: %w", err)
	}
	return nil
}

func (w *Writer) WriteToPath(doc *Document, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}
	defer f.Close()
	return w.Write(doc, f)
}

type jsonElement struct {
	Tag      Tag               `json:"tag"`
	Attrs    map[string]string `json:"attrs,omitempty"`
	Children []*Node           `json:"children,omitempty"`
}

func (n *Node) MarshalJSON() ([]byte, error) {
	if n.IsText() {
		return json.Marshal(n.Text)
	}
	return json.Marshal(jsonElement{Tag: n.Tag, Attrs: n.Attrs, Children: n.Children})
}
