// Package render projects document nodes onto visual shapes and renders whole
// documents as HTML or Markdown.
package render

import "github.com/iw2rmb/leaflet/document"

// Kind is the visual role of a node.
type Kind int

const (
	KindParagraph Kind = iota
	KindHeading
	KindBulletedList
	KindNumberedList
	KindListItem
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindHeading:
		return "heading"
	case KindBulletedList:
		return "bulleted-list"
	case KindNumberedList:
		return "numbered-list"
	case KindListItem:
		return "list-item"
	case KindText:
		return "text"
	default:
		return "paragraph"
	}
}

// IsContainer reports whether shapes of kind k hold other blocks.
func (k Kind) IsContainer() bool {
	return k == KindBulletedList || k == KindNumberedList
}

// Shape describes how a node is drawn.
type Shape struct {
	Kind Kind

	// Tag and Class are the HTML element and CSS classes for the node.
	Tag   string
	Class string

	// Strong and Emphasis decorate text shapes. Both may be set.
	Strong   bool
	Emphasis bool
}

var blockShapes = map[document.BlockType]Shape{
	document.HeadingOne:   {Kind: KindHeading, Tag: "h1", Class: "text-2xl font-bold mb-4"},
	document.BulletedList: {Kind: KindBulletedList, Tag: "ul", Class: "list-disc ml-6 mb-4"},
	document.NumberedList: {Kind: KindNumberedList, Tag: "ol", Class: "list-decimal ml-6 mb-4"},
	document.ListItem:     {Kind: KindListItem, Tag: "li"},
}

var paragraphShape = Shape{Kind: KindParagraph, Tag: "p", Class: "mb-4"}

// Project returns the shape of n. Blocks of any unrecognized type, and
// anything that is neither a block nor a text, draw as paragraphs.
func Project(n document.Node) Shape {
	switch n := n.(type) {
	case *document.Text:
		return Shape{Kind: KindText, Tag: "span", Strong: n.Marks.Bold, Emphasis: n.Marks.Italic}
	case *document.Block:
		if s, ok := blockShapes[n.Type]; ok {
			return s
		}
	}
	return paragraphShape
}
