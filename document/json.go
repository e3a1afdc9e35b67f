package document

import (
	"encoding/json"
	"fmt"
)

// The wire shape matches the editor value used by browser front ends:
//
//	[{"type":"paragraph","children":[{"text":"Hi","bold":true}]}]

type wireBlock struct {
	Type     BlockType `json:"type"`
	Children []Node    `json:"children"`
}

type wireText struct {
	Text   string `json:"text"`
	Bold   bool   `json:"bold,omitempty"`
	Italic bool   `json:"italic,omitempty"`
}

type wireNode struct {
	Type     *BlockType        `json:"type"`
	Children []json.RawMessage `json:"children"`
	Text     *string           `json:"text"`
	Bold     bool              `json:"bold"`
	Italic   bool              `json:"italic"`
}

func (b *Block) MarshalJSON() ([]byte, error) {
	children := b.Children
	if children == nil {
		children = []Node{}
	}
	return json.Marshal(wireBlock{Type: b.Type, Children: children})
}

func (t *Text) MarshalJSON() ([]byte, error) {
	return json.Marshal(wireText{Text: t.Text, Bold: t.Marks.Bold, Italic: t.Marks.Italic})
}

func (d *Document) MarshalJSON() ([]byte, error) {
	children := d.Children
	if children == nil {
		children = []Node{}
	}
	return json.Marshal(children)
}

// UnmarshalJSON decodes the wire shape. The result is not normalized.
func (d *Document) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decode document: %w", err)
	}
	children, err := decodeNodes(raw)
	if err != nil {
		return err
	}
	d.Children = children
	return nil
}

func decodeNodes(raw []json.RawMessage) ([]Node, error) {
	out := make([]Node, 0, len(raw))
	for i, r := range raw {
		n, err := decodeNode(r)
		if err != nil {
			return nil, fmt.Errorf("node %d: %w", i, err)
		}
		out = append(out, n)
	}
	return out, nil
}

func decodeNode(r json.RawMessage) (Node, error) {
	var w wireNode
	if err := json.Unmarshal(r, &w); err != nil {
		return nil, fmt.Errorf("decode node: %w", err)
	}
	if w.Text != nil && w.Children == nil {
		return &Text{Text: *w.Text, Marks: Marks{Bold: w.Bold, Italic: w.Italic}}, nil
	}

	// Blocks without a type fall back to paragraph.
	t := Paragraph
	if w.Type != nil && *w.Type != "" {
		t = *w.Type
	}
	children, err := decodeNodes(w.Children)
	if err != nil {
		return nil, err
	}
	return &Block{Type: t, Children: children}, nil
}

// Parse decodes a document from its wire shape and normalizes it.
func Parse(data []byte) (*Document, error) {
	var d Document
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, err
	}
	d.Normalize()
	return &d, nil
}
