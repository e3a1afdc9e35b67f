package document

// Node is one of *Document, *Block or *Text.
type Node interface {
	node()
}

// BlockType tags a Block.
type BlockType string

const (
	Paragraph    BlockType = "paragraph"
	HeadingOne   BlockType = "heading-one"
	BulletedList BlockType = "bulleted-list"
	NumberedList BlockType = "numbered-list"
	ListItem     BlockType = "list-item"
)

// IsList reports whether t is a list container type.
func (t BlockType) IsList() bool {
	return t == BulletedList || t == NumberedList
}

// Known reports whether t is one of the recognized block types.
func (t BlockType) Known() bool {
	switch t {
	case Paragraph, HeadingOne, BulletedList, NumberedList, ListItem:
		return true
	default:
		return false
	}
}

// ParseBlockType maps a toolbar or command format onto a block type.
// Unrecognized formats resolve to Paragraph.
func ParseBlockType(format string) BlockType {
	t := BlockType(format)
	if !t.Known() {
		return Paragraph
	}
	return t
}

// Mark is a boolean inline attribute.
type Mark uint8

const (
	Bold Mark = iota
	Italic
)

func (m Mark) String() string {
	switch m {
	case Bold:
		return "bold"
	case Italic:
		return "italic"
	default:
		return "unknown"
	}
}

// Marks is the set of marks applied to a Text leaf.
type Marks struct {
	Bold   bool
	Italic bool
}

// Has reports whether mark is set.
func (ms Marks) Has(m Mark) bool {
	switch m {
	case Bold:
		return ms.Bold
	case Italic:
		return ms.Italic
	default:
		return false
	}
}

// With returns a copy of ms with mark set to on.
func (ms Marks) With(m Mark, on bool) Marks {
	switch m {
	case Bold:
		ms.Bold = on
	case Italic:
		ms.Italic = on
	}
	return ms
}

// Text is an inline leaf.
type Text struct {
	Text  string
	Marks Marks
}

// Block is a structural node.
type Block struct {
	Type     BlockType
	Children []Node
}

// Document is the editor root.
type Document struct {
	Children []Node
}

func (*Document) node() {}
func (*Block) node()    {}
func (*Text) node()     {}

// IsElement reports whether n is a Block (as opposed to a Text leaf or the root).
func IsElement(n Node) bool {
	b, ok := n.(*Block)
	return ok && b != nil
}

// IsEditorRoot reports whether n is the Document itself.
func IsEditorRoot(n Node) bool {
	d, ok := n.(*Document)
	return ok && d != nil
}

// IsText reports whether n is a Text leaf.
func IsText(n Node) bool {
	t, ok := n.(*Text)
	return ok && t != nil
}

// Children returns the child slice of a Document or Block, nil for Text.
func Children(n Node) []Node {
	switch n := n.(type) {
	case *Document:
		return n.Children
	case *Block:
		return n.Children
	default:
		return nil
	}
}

// HoldsInline reports whether b holds inline content (no nested blocks).
func (b *Block) HoldsInline() bool {
	for _, c := range b.Children {
		if IsElement(c) {
			return false
		}
	}
	return true
}

// New returns the initial document: a single empty paragraph.
func New() *Document {
	return &Document{Children: []Node{NewBlock(Paragraph, NewText(""))}}
}

// NewDocument returns a document holding blocks.
func NewDocument(blocks ...*Block) *Document {
	d := &Document{Children: make([]Node, 0, len(blocks))}
	for _, b := range blocks {
		d.Children = append(d.Children, b)
	}
	return d
}

// NewBlock returns a block of type t.
func NewBlock(t BlockType, children ...Node) *Block {
	return &Block{Type: t, Children: children}
}

// NewText returns an unmarked text leaf.
func NewText(s string) *Text {
	return &Text{Text: s}
}

// NewMarkedText returns a text leaf carrying marks.
func NewMarkedText(s string, ms Marks) *Text {
	return &Text{Text: s, Marks: ms}
}
