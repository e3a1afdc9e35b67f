package transform

import (
	"strings"

	"github.com/iw2rmb/leaflet/document"
	"github.com/iw2rmb/leaflet/internal/grapheme"
)

// InsertText types text at the cursor, replacing an expanded selection
// first. The inserted run takes the pending marks if set, otherwise the marks
// of the text before the cursor. Newlines split the block.
func InsertText(s State, text string) (State, error) {
	if err := s.Validate(); err != nil {
		return s, err
	}
	if !s.Selection.Active || text == "" {
		return s, nil
	}

	marks := s.Marks
	cur := s
	if !s.Selection.Range.IsCollapsed() {
		var err error
		if cur, err = DeleteFragment(s); err != nil {
			return s, err
		}
	}
	if marks == nil {
		ms := marksBefore(cur.Doc, cur.Selection.Range.Anchor)
		marks = &ms
	}

	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			next, err := InsertBreak(cur)
			if err != nil {
				return s, err
			}
			cur = next
		}
		if line == "" {
			continue
		}
		next, err := insertRun(cur, line, *marks)
		if err != nil {
			return s, err
		}
		cur = next
	}
	return cur, nil
}

// insertRun inserts a single-line run at a collapsed cursor.
func insertRun(s State, text string, marks document.Marks) (State, error) {
	doc := s.Doc.Clone()
	ref, err := refOf(doc, s.Selection.Range.Focus, affinityBackward)
	if err != nil {
		return s, err
	}

	before, _, after := cutInline(ref.block, ref.offset, ref.offset)
	run := []document.Node{document.NewMarkedText(text, marks)}
	ref.block.Children = joinNodes(before, run, after)
	ref.offset += grapheme.Count(text)

	doc.Normalize()
	return collapsedAt(doc, ref), nil
}

// DeleteFragment removes the content of an expanded selection and leaves a
// collapsed cursor at its start. Blocks touched by both edges are merged into
// the first one. A collapsed selection is returned unchanged.
func DeleteFragment(s State) (State, error) {
	if err := s.Validate(); err != nil {
		return s, err
	}
	if !s.Selection.Active || s.Selection.Range.IsCollapsed() {
		return s, nil
	}

	doc := s.Doc.Clone()
	leaves := doc.LeafBlocks()
	start, end := s.Selection.Range.Edges()
	si, sAbs, err := locate(doc, leaves, start)
	if err != nil {
		return s, err
	}
	ei, eAbs, err := locate(doc, leaves, end)
	if err != nil {
		return s, err
	}

	sb := leaves[si].Block
	if si == ei {
		before, _, after := cutInline(sb, sAbs, eAbs)
		sb.Children = joinNodes(before, after)
	} else {
		before, _, _ := cutInline(sb, sAbs, inlineLen(sb))
		_, _, after := cutInline(leaves[ei].Block, 0, eAbs)
		sb.Children = joinNodes(before, after)
		for _, lb := range leaves[si+1 : ei+1] {
			removeBlock(doc, lb.Block)
		}
	}

	doc.Normalize()
	return collapsedAt(doc, pointRef{block: sb, offset: sAbs}), nil
}

// DeleteBackward removes the grapheme before the cursor, or the selection if
// it is expanded. At the start of a block it merges the block into the
// previous one. A list-item is lifted out of its list instead, and a
// non-paragraph first block turns into a paragraph.
func DeleteBackward(s State) (State, error) {
	if err := s.Validate(); err != nil {
		return s, err
	}
	if !s.Selection.Active {
		return s, nil
	}
	if !s.Selection.Range.IsCollapsed() {
		return DeleteFragment(s)
	}

	doc := s.Doc.Clone()
	leaves := doc.LeafBlocks()
	i, abs, err := locate(doc, leaves, s.Selection.Range.Focus)
	if err != nil {
		return s, err
	}
	b := leaves[i].Block

	switch {
	case abs > 0:
		before, _, after := cutInline(b, abs-1, abs)
		b.Children = joinNodes(before, after)
		abs--
	case b.Type == document.ListItem && liftItem(doc, b):
	case i == 0:
		if b.Type == document.Paragraph {
			return s, nil
		}
		b.Type = document.Paragraph
	default:
		prev := leaves[i-1].Block
		abs = inlineLen(prev)
		prev.Children = joinNodes(prev.Children, b.Children)
		removeBlock(doc, b)
		b = prev
	}

	doc.Normalize()
	return collapsedAt(doc, pointRef{block: b, offset: abs}), nil
}

// DeleteForward removes the grapheme after the cursor, or the selection if it
// is expanded. At the end of a block it pulls the next block's content in.
func DeleteForward(s State) (State, error) {
	if err := s.Validate(); err != nil {
		return s, err
	}
	if !s.Selection.Active {
		return s, nil
	}
	if !s.Selection.Range.IsCollapsed() {
		return DeleteFragment(s)
	}

	doc := s.Doc.Clone()
	leaves := doc.LeafBlocks()
	i, abs, err := locate(doc, leaves, s.Selection.Range.Focus)
	if err != nil {
		return s, err
	}
	b := leaves[i].Block

	switch {
	case abs < inlineLen(b):
		before, _, after := cutInline(b, abs, abs+1)
		b.Children = joinNodes(before, after)
	case i+1 < len(leaves):
		next := leaves[i+1].Block
		b.Children = joinNodes(b.Children, next.Children)
		removeBlock(doc, next)
	default:
		return s, nil
	}

	doc.Normalize()
	return collapsedAt(doc, pointRef{block: b, offset: abs}), nil
}

// InsertBreak splits the block at the cursor, replacing an expanded selection
// first. The new block keeps the type of the split one, except that a heading
// split at its end continues as a paragraph. Enter in an empty list-item
// lifts it out of the list.
func InsertBreak(s State) (State, error) {
	if err := s.Validate(); err != nil {
		return s, err
	}
	if !s.Selection.Active {
		return s, nil
	}
	cur := s
	if !s.Selection.Range.IsCollapsed() {
		var err error
		if cur, err = DeleteFragment(s); err != nil {
			return s, err
		}
	}

	doc := cur.Doc.Clone()
	leaves := doc.LeafBlocks()
	i, abs, err := locate(doc, leaves, cur.Selection.Range.Focus)
	if err != nil {
		return s, err
	}
	b := leaves[i].Block
	n := inlineLen(b)

	if b.Type == document.ListItem && n == 0 && liftItem(doc, b) {
		doc.Normalize()
		return collapsedAt(doc, pointRef{block: b}), nil
	}

	before, _, after := cutInline(b, abs, n)
	t := b.Type
	if t == document.HeadingOne && abs == n {
		t = document.Paragraph
	}
	nb := document.NewBlock(t, after...)
	b.Children = before

	p, _ := doc.PathOf(b)
	if err := replaceAt(doc, p, b, nb); err != nil {
		return s, err
	}

	doc.Normalize()
	return collapsedAt(doc, pointRef{block: nb, aff: affinityForward}), nil
}

// liftItem moves the list-item b out of its list, splitting the list around
// it, and turns it into a paragraph. It reports false if b is not in a list.
func liftItem(doc *document.Document, b *document.Block) bool {
	p, ok := doc.PathOf(b)
	if !ok || len(p) < 2 {
		return false
	}
	list, err := doc.BlockAt(p.Parent())
	if err != nil || !list.Type.IsList() {
		return false
	}
	at := document.Point{Path: p.Child(0)}
	splitList(doc, p.Parent(), at, at)
	b.Type = document.Paragraph
	return true
}

// collapsedAt returns a state over doc with the cursor at ref.
func collapsedAt(doc *document.Document, ref pointRef) State {
	sel := selectionRefs{active: true, anchor: ref, focus: ref}
	return State{Doc: doc, Selection: sel.resolve(doc)}
}
