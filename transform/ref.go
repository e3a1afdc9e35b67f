package transform

import (
	"fmt"

	"github.com/iw2rmb/leaflet/document"
	"github.com/iw2rmb/leaflet/internal/grapheme"
)

// affinity picks a side when an offset falls on a boundary between two texts.
type affinity uint8

const (
	affinityBackward affinity = iota // end of the earlier text
	affinityForward                  // start of the later text
)

// pointRef survives structural edits: it names the block holding the point
// and the grapheme offset across that block's inline content.
type pointRef struct {
	block  *document.Block
	offset int
	aff    affinity
}

func refOf(doc *document.Document, p document.Point, aff affinity) (pointRef, error) {
	b, _, abs, err := doc.BlockOffset(p)
	if err != nil {
		return pointRef{}, err
	}
	return pointRef{block: b, offset: abs, aff: aff}, nil
}

func (r pointRef) resolve(doc *document.Document) (document.Point, bool) {
	p, ok := doc.PathOf(r.block)
	if !ok {
		return document.Point{}, false
	}
	return pointIn(r.block, p, r.offset, r.aff), true
}

// pointIn converts a block-level offset into a text point. Offsets outside
// the block are clamped.
func pointIn(b *document.Block, p document.Path, offset int, aff affinity) document.Point {
	if offset < 0 {
		offset = 0
	}
	cum := 0
	last, lastLen := -1, 0
	for i, c := range b.Children {
		t, ok := c.(*document.Text)
		if !ok {
			continue
		}
		n := grapheme.Count(t.Text)
		if offset < cum+n || (offset == cum+n && aff == affinityBackward) {
			return document.Point{Path: p.Child(i), Offset: offset - cum}
		}
		cum += n
		last, lastLen = i, n
	}
	if last < 0 {
		return document.Point{Path: p.Child(0)}
	}
	return document.Point{Path: p.Child(last), Offset: lastLen}
}

// selectionRefs tracks a selection across edits. Expanded selections keep
// their start attached forward and their end attached backward so edges
// stay glued to the content they enclose.
type selectionRefs struct {
	active bool
	anchor pointRef
	focus  pointRef
}

func takeRefs(doc *document.Document, sel document.Selection) (selectionRefs, error) {
	if !sel.Active {
		return selectionRefs{}, nil
	}
	anchorAff, focusAff := affinityBackward, affinityBackward
	if !sel.Range.IsCollapsed() {
		if sel.Range.IsBackward() {
			anchorAff, focusAff = affinityBackward, affinityForward
		} else {
			anchorAff, focusAff = affinityForward, affinityBackward
		}
	}
	a, err := refOf(doc, sel.Range.Anchor, anchorAff)
	if err != nil {
		return selectionRefs{}, fmt.Errorf("%w: anchor: %w", ErrInvalidSelection, err)
	}
	f, err := refOf(doc, sel.Range.Focus, focusAff)
	if err != nil {
		return selectionRefs{}, fmt.Errorf("%w: focus: %w", ErrInvalidSelection, err)
	}
	return selectionRefs{active: true, anchor: a, focus: f}, nil
}

// resolve maps the refs onto doc. A ref whose block is gone falls back to
// the start of the document.
func (r selectionRefs) resolve(doc *document.Document) document.Selection {
	if !r.active {
		return document.Selection{}
	}
	a, okA := r.anchor.resolve(doc)
	f, okF := r.focus.resolve(doc)
	if !okA || !okF {
		start, err := doc.Start(document.Path{})
		if err != nil {
			return document.Selection{}
		}
		return document.Select(document.Collapsed(start))
	}
	return document.Select(document.Range{Anchor: a, Focus: f})
}

func inlineLen(b *document.Block) int {
	n := 0
	for _, c := range b.Children {
		if t, ok := c.(*document.Text); ok {
			n += grapheme.Count(t.Text)
		}
	}
	return n
}

// cutInline copies b's inline content split into [0,lo), [lo,hi) and [hi,end).
// Zero-length pieces are omitted.
func cutInline(b *document.Block, lo, hi int) (before, mid, after []document.Node) {
	cum := 0
	for _, c := range b.Children {
		t, ok := c.(*document.Text)
		if !ok {
			continue
		}
		n := grapheme.Count(t.Text)
		before = appendPiece(before, t, cum, 0, lo, n)
		mid = appendPiece(mid, t, cum, lo, hi, n)
		after = appendPiece(after, t, cum, hi, cum+n, n)
		cum += n
	}
	return before, mid, after
}

// appendPiece appends the part of t (starting at block offset cum, n
// graphemes long) that falls into the block window [from, to).
func appendPiece(dst []document.Node, t *document.Text, cum, from, to, n int) []document.Node {
	lo := max(from-cum, 0)
	hi := min(to-cum, n)
	if lo >= hi {
		return dst
	}
	return append(dst, document.NewMarkedText(grapheme.Slice(t.Text, lo, hi), t.Marks))
}

func joinNodes(parts ...[]document.Node) []document.Node {
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	out := make([]document.Node, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// setChildren replaces the children of the document or block at parent.
func setChildren(doc *document.Document, parent document.Path, children []document.Node) error {
	n, err := doc.NodeAt(parent)
	if err != nil {
		return err
	}
	switch n := n.(type) {
	case *document.Document:
		n.Children = children
	case *document.Block:
		n.Children = children
	default:
		return fmt.Errorf("%w: %s holds no children", document.ErrInvalidPath, parent)
	}
	return nil
}

// replaceAt splices repl in place of the node at p.
func replaceAt(doc *document.Document, p document.Path, repl ...document.Node) error {
	if len(p) == 0 {
		return fmt.Errorf("%w: cannot replace the root", document.ErrInvalidPath)
	}
	parent := p.Parent()
	pn, err := doc.NodeAt(parent)
	if err != nil {
		return err
	}
	siblings := document.Children(pn)
	i := p[len(p)-1]
	if i < 0 || i >= len(siblings) {
		return fmt.Errorf("%w: %s", document.ErrInvalidPath, p)
	}
	next := joinNodes(siblings[:i], repl, siblings[i+1:])
	return setChildren(doc, parent, next)
}

// removeBlock detaches b and any ancestor block left without children.
func removeBlock(doc *document.Document, b *document.Block) {
	p, ok := doc.PathOf(b)
	if !ok {
		return
	}
	for len(p) > 0 {
		if err := replaceAt(doc, p); err != nil {
			return
		}
		parent := p.Parent()
		if len(parent) == 0 {
			return
		}
		pb, err := doc.BlockAt(parent)
		if err != nil || len(pb.Children) > 0 {
			return
		}
		p = parent
	}
}

// locate returns the leaf-block index and block offset of p.
func locate(doc *document.Document, leaves []document.BlockEntry, p document.Point) (int, int, error) {
	ref, err := refOf(doc, p, affinityBackward)
	if err != nil {
		return 0, 0, err
	}
	for i, lb := range leaves {
		if lb.Block == ref.block {
			return i, ref.offset, nil
		}
	}
	return 0, 0, fmt.Errorf("%w: %s is not inside a text block", document.ErrInvalidPath, p)
}
