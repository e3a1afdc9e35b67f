package document

import (
	"fmt"
	"strings"

	"github.com/iw2rmb/leaflet/internal/grapheme"
)

// TextEntry pairs a text leaf with its path.
type TextEntry struct {
	Text *Text
	Path Path
}

// BlockEntry pairs a block with its path.
type BlockEntry struct {
	Block *Block
	Path  Path
}

// NodeAt resolves p. The empty path resolves to the document.
func (d *Document) NodeAt(p Path) (Node, error) {
	var cur Node = d
	for depth, i := range p {
		children := Children(cur)
		if i < 0 || i >= len(children) {
			return nil, fmt.Errorf("%w: %s at depth %d", ErrInvalidPath, p, depth)
		}
		cur = children[i]
	}
	return cur, nil
}

// TextAt resolves p to a text leaf.
func (d *Document) TextAt(p Path) (*Text, error) {
	n, err := d.NodeAt(p)
	if err != nil {
		return nil, err
	}
	t, ok := n.(*Text)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotText, p)
	}
	return t, nil
}

// BlockAt resolves p to a block.
func (d *Document) BlockAt(p Path) (*Block, error) {
	n, err := d.NodeAt(p)
	if err != nil {
		return nil, err
	}
	b, ok := n.(*Block)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not a block", ErrInvalidPath, p)
	}
	return b, nil
}

// ValidatePoint checks that p addresses an existing text leaf and that its
// offset lies within that leaf.
func (d *Document) ValidatePoint(p Point) error {
	t, err := d.TextAt(p.Path)
	if err != nil {
		return err
	}
	if p.Offset < 0 || p.Offset > grapheme.Count(t.Text) {
		return fmt.Errorf("%w: %s", ErrInvalidOffset, p)
	}
	return nil
}

// ValidateRange checks both endpoints of r.
func (d *Document) ValidateRange(r Range) error {
	if err := d.ValidatePoint(r.Anchor); err != nil {
		return fmt.Errorf("anchor: %w", err)
	}
	if err := d.ValidatePoint(r.Focus); err != nil {
		return fmt.Errorf("focus: %w", err)
	}
	return nil
}

// Walk visits every node below the root in pre-order. Returning false from fn
// skips the node's descendants.
func (d *Document) Walk(fn func(n Node, p Path) bool) {
	walk(d, Path{}, fn)
}

func walk(parent Node, p Path, fn func(n Node, p Path) bool) {
	for i, c := range Children(parent) {
		cp := p.Child(i)
		if fn(c, cp) {
			walk(c, cp, fn)
		}
	}
}

// Texts returns every text leaf in document order.
func (d *Document) Texts() []TextEntry {
	var out []TextEntry
	d.Walk(func(n Node, p Path) bool {
		if t, ok := n.(*Text); ok {
			out = append(out, TextEntry{Text: t, Path: p})
		}
		return true
	})
	return out
}

// LeafBlocks returns every block holding inline content, in document order.
func (d *Document) LeafBlocks() []BlockEntry {
	var out []BlockEntry
	d.Walk(func(n Node, p Path) bool {
		b, ok := n.(*Block)
		if !ok {
			return false
		}
		if b.HoldsInline() {
			out = append(out, BlockEntry{Block: b, Path: p})
			return false
		}
		return true
	})
	return out
}

// PathOf finds n by identity.
func (d *Document) PathOf(n Node) (Path, bool) {
	if n == nil {
		return nil, false
	}
	if IsEditorRoot(n) && n == Node(d) {
		return Path{}, true
	}
	var found Path
	d.Walk(func(c Node, p Path) bool {
		if found != nil {
			return false
		}
		if c == n {
			found = p
			return false
		}
		return true
	})
	return found, found != nil
}

// Start returns the first point inside the subtree at p.
func (d *Document) Start(p Path) (Point, error) {
	n, err := d.NodeAt(p)
	if err != nil {
		return Point{}, err
	}
	cur := p.Clone()
	for {
		if _, ok := n.(*Text); ok {
			return Point{Path: cur, Offset: 0}, nil
		}
		children := Children(n)
		if len(children) == 0 {
			return Point{}, fmt.Errorf("%w: %s has no text", ErrInvalidPath, cur)
		}
		cur = cur.Child(0)
		n = children[0]
	}
}

// End returns the last point inside the subtree at p.
func (d *Document) End(p Path) (Point, error) {
	n, err := d.NodeAt(p)
	if err != nil {
		return Point{}, err
	}
	cur := p.Clone()
	for {
		if t, ok := n.(*Text); ok {
			return Point{Path: cur, Offset: grapheme.Count(t.Text)}, nil
		}
		children := Children(n)
		if len(children) == 0 {
			return Point{}, fmt.Errorf("%w: %s has no text", ErrInvalidPath, cur)
		}
		last := len(children) - 1
		cur = cur.Child(last)
		n = children[last]
	}
}

// Clone returns a deep copy sharing no nodes with d.
func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}
	return &Document{Children: cloneNodes(d.Children)}
}

// Clone returns a deep copy of b.
func (b *Block) Clone() *Block {
	if b == nil {
		return nil
	}
	return &Block{Type: b.Type, Children: cloneNodes(b.Children)}
}

func cloneNodes(in []Node) []Node {
	if in == nil {
		return nil
	}
	out := make([]Node, len(in))
	for i, n := range in {
		switch n := n.(type) {
		case *Block:
			out[i] = n.Clone()
		case *Text:
			t := *n
			out[i] = &t
		}
	}
	return out
}

// Equal reports structural equality.
func Equal(a, b *Document) bool {
	if a == nil || b == nil {
		return a == b
	}
	return nodesEqual(a.Children, b.Children)
}

func nodesEqual(a, b []Node) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		switch x := a[i].(type) {
		case *Block:
			y, ok := b[i].(*Block)
			if !ok || x.Type != y.Type || !nodesEqual(x.Children, y.Children) {
				return false
			}
		case *Text:
			y, ok := b[i].(*Text)
			if !ok || *x != *y {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// InlineText concatenates the text leaves directly under b.
func (b *Block) InlineText() string {
	var sb strings.Builder
	for _, c := range b.Children {
		if t, ok := c.(*Text); ok {
			sb.WriteString(t.Text)
		}
	}
	return sb.String()
}

// PlainText joins leaf blocks with newlines.
func (d *Document) PlainText() string {
	leaves := d.LeafBlocks()
	lines := make([]string, len(leaves))
	for i, lb := range leaves {
		lines[i] = lb.Block.InlineText()
	}
	return strings.Join(lines, "\n")
}

// BlockOffset maps p onto the block holding its text: the block, its path and
// the grapheme offset of p across the block's inline content.
func (d *Document) BlockOffset(p Point) (*Block, Path, int, error) {
	if err := d.ValidatePoint(p); err != nil {
		return nil, nil, 0, err
	}
	parent := p.Path.Parent()
	b, err := d.BlockAt(parent)
	if err != nil {
		return nil, nil, 0, err
	}
	abs := 0
	for _, c := range b.Children[:p.Path[len(p.Path)-1]] {
		if t, ok := c.(*Text); ok {
			abs += grapheme.Count(t.Text)
		}
	}
	return b, parent, abs + p.Offset, nil
}

// PointAt maps a grapheme offset across the inline content of the block at
// blockPath onto a text point. An offset on a boundary between two texts
// resolves to the end of the earlier one. Offsets outside the block are
// clamped.
func (d *Document) PointAt(blockPath Path, offset int) (Point, error) {
	b, err := d.BlockAt(blockPath)
	if err != nil {
		return Point{}, err
	}
	if !b.HoldsInline() || len(b.Children) == 0 {
		return Point{}, fmt.Errorf("%w: %s holds no text", ErrInvalidPath, blockPath)
	}
	offset = max(offset, 0)
	cum := 0
	last := len(b.Children) - 1
	for i, c := range b.Children {
		n := grapheme.Count(c.(*Text).Text)
		if offset <= cum+n || i == last {
			return Point{Path: blockPath.Child(i), Offset: min(offset-cum, n)}, nil
		}
		cum += n
	}
	return Point{}, fmt.Errorf("%w: %s", ErrInvalidPath, blockPath)
}
