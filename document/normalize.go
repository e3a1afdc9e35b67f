package document

import "fmt"

// Validate checks the structural invariants of d.
func (d *Document) Validate() error {
	if d == nil || len(d.Children) == 0 {
		return ErrEmptyDocument
	}
	for i, c := range d.Children {
		b, ok := c.(*Block)
		if !ok {
			return fmt.Errorf("%w: %s", ErrRootText, Path{i})
		}
		if err := validateBlock(b, Path{i}); err != nil {
			return err
		}
	}
	return nil
}

func validateBlock(b *Block, p Path) error {
	texts, blocks := 0, 0
	for _, c := range b.Children {
		if IsText(c) {
			texts++
		} else {
			blocks++
		}
	}

	if b.Type.IsList() {
		if len(b.Children) == 0 {
			return fmt.Errorf("%w: %s is empty", ErrListChild, p)
		}
		for i, c := range b.Children {
			cb, ok := c.(*Block)
			if !ok || cb.Type != ListItem {
				return fmt.Errorf("%w: %s", ErrListChild, p.Child(i))
			}
		}
	} else if texts > 0 && blocks > 0 {
		return fmt.Errorf("%w: %s", ErrLeafChild, p)
	}
	if (b.Type == Paragraph || b.Type == HeadingOne) && blocks > 0 {
		return fmt.Errorf("%w: %s is a %s", ErrLeafChild, p, b.Type)
	}
	if blocks == 0 && !b.Type.IsList() {
		if texts == 0 {
			return fmt.Errorf("%w: %s has no text", ErrEmptyText, p)
		}
		if texts > 1 {
			for i, c := range b.Children {
				if c.(*Text).Text == "" {
					return fmt.Errorf("%w: %s", ErrEmptyText, p.Child(i))
				}
			}
		}
	}

	for i, c := range b.Children {
		if cb, ok := c.(*Block); ok {
			if err := validateBlock(cb, p.Child(i)); err != nil {
				return err
			}
		}
	}
	return nil
}

// Normalize restores the structural invariants of d in place:
//   - stray text under the root or next to nested blocks is wrapped in paragraphs,
//   - list containers only hold list-items and list-items only appear in lists,
//   - empty list containers are dropped,
//   - text-holding blocks hold at least one text, with no empty text among
//     siblings and adjacent equally-marked texts merged,
//   - the document holds at least one block.
func (d *Document) Normalize() {
	d.Children = normalizeChildren(d.Children, true, "")
	if len(d.Children) == 0 {
		d.Children = []Node{NewBlock(Paragraph, NewText(""))}
	}
}

func normalizeChildren(children []Node, root bool, parent BlockType) []Node {
	hasBlock := root
	for _, c := range children {
		if IsElement(c) {
			hasBlock = true
			break
		}
	}
	if !hasBlock && !parent.IsList() {
		return normalizeInline(children)
	}

	out := make([]Node, 0, len(children))
	var run []Node
	flush := func() {
		if len(run) == 0 {
			return
		}
		t := ListItem
		if !parent.IsList() {
			t = Paragraph
		}
		out = append(out, &Block{Type: t, Children: normalizeInline(run)})
		run = nil
	}

	for _, c := range children {
		switch c := c.(type) {
		case *Text:
			run = append(run, c)
		case *Block:
			flush()
			if parent.IsList() && c.Type != ListItem {
				if c.HoldsInline() {
					c.Type = ListItem
				} else {
					c = &Block{Type: ListItem, Children: []Node{c}}
				}
			}
			c.Children = normalizeChildren(c.Children, false, c.Type)
			if c.Type.IsList() && len(c.Children) == 0 {
				continue
			}
			if c.Type == ListItem && !parent.IsList() {
				if c.HoldsInline() {
					c.Type = Paragraph
				} else {
					out = append(out, c.Children...)
					continue
				}
			}
			if (c.Type == Paragraph || c.Type == HeadingOne) && !c.HoldsInline() {
				// Text-only types cannot nest; hoist the nested blocks instead.
				out = append(out, c.Children...)
				continue
			}
			out = append(out, c)
		}
	}
	flush()
	return out
}

func normalizeInline(children []Node) []Node {
	texts := make([]*Text, 0, len(children))
	for _, c := range children {
		if t, ok := c.(*Text); ok {
			texts = append(texts, t)
		}
	}
	if len(texts) == 0 {
		return []Node{NewText("")}
	}

	nonEmpty := texts[:0:0]
	for _, t := range texts {
		if t.Text != "" {
			nonEmpty = append(nonEmpty, t)
		}
	}
	if len(nonEmpty) == 0 {
		return []Node{texts[0]}
	}

	out := make([]Node, 0, len(nonEmpty))
	var prev *Text
	for _, t := range nonEmpty {
		if prev != nil && prev.Marks == t.Marks {
			prev.Text += t.Text
			continue
		}
		out = append(out, t)
		prev = t
	}
	return out
}
