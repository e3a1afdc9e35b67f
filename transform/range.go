package transform

import (
	"strings"

	"github.com/iw2rmb/leaflet/document"
	"github.com/iw2rmb/leaflet/internal/grapheme"
)

// Unhang pulls back the end of an expanded range that sits at offset 0 of
// the first text in a block, so that a selection ending exactly at a block
// boundary does not reach into the following block. The end moves to the
// end of the closest preceding text that is non-empty or lies in an earlier
// block. Other ranges are returned unchanged. Orientation is preserved.
func Unhang(doc *document.Document, r document.Range) document.Range {
	if r.IsCollapsed() {
		return r
	}
	start, end := r.Edges()
	if end.Offset != 0 || len(end.Path) == 0 || end.Path[len(end.Path)-1] != 0 {
		return r
	}
	endBlock := end.Path.Parent()

	texts := doc.Texts()
	for i := len(texts) - 1; i >= 0; i-- {
		te := texts[i]
		if document.ComparePath(te.Path, end.Path) >= 0 {
			continue
		}
		if document.ComparePath(te.Path, start.Path) < 0 {
			break
		}
		if te.Text.Text != "" || document.ComparePath(te.Path, endBlock) < 0 {
			end = document.Point{Path: te.Path, Offset: grapheme.Count(te.Text.Text)}
			break
		}
	}

	if r.IsBackward() {
		return document.Range{Anchor: end, Focus: start}
	}
	return document.Range{Anchor: start, Focus: end}
}

// intersects reports whether the subtree at p overlaps [start, end].
func intersects(p document.Path, start, end document.Point) bool {
	return document.ComparePath(p, start.Path) >= 0 && document.ComparePath(p, end.Path) <= 0
}

// IsBlockActive reports whether some block intersecting the unhung selection
// has type format.
func IsBlockActive(s State, format document.BlockType) bool {
	if !s.Selection.Active || s.Validate() != nil {
		return false
	}
	start, end := Unhang(s.Doc, s.Selection.Range).Edges()

	found := false
	s.Doc.Walk(func(n document.Node, p document.Path) bool {
		if found || !document.IsElement(n) || !intersects(p, start, end) {
			return false
		}
		if n.(*document.Block).Type == format {
			found = true
			return false
		}
		return true
	})
	return found
}

// selectedLeaves returns the text-holding blocks intersecting [start, end].
func selectedLeaves(doc *document.Document, start, end document.Point) []document.BlockEntry {
	var out []document.BlockEntry
	for _, lb := range doc.LeafBlocks() {
		if intersects(lb.Path, start, end) {
			out = append(out, lb)
		}
	}
	return out
}

// SelectedText returns the plain text under an expanded selection, one line
// per text-holding block.
func SelectedText(s State) string {
	if !s.Selection.Active || s.Selection.Range.IsCollapsed() || s.Validate() != nil {
		return ""
	}
	start, end := s.Selection.Range.Edges()
	leaves := s.Doc.LeafBlocks()
	si, sAbs, err := locate(s.Doc, leaves, start)
	if err != nil {
		return ""
	}
	ei, eAbs, err := locate(s.Doc, leaves, end)
	if err != nil {
		return ""
	}

	lines := make([]string, 0, ei-si+1)
	for i := si; i <= ei; i++ {
		text := leaves[i].Block.InlineText()
		lo, hi := 0, grapheme.Count(text)
		if i == si {
			lo = sAbs
		}
		if i == ei {
			hi = eAbs
		}
		lines = append(lines, grapheme.Slice(text, lo, hi))
	}
	return strings.Join(lines, "\n")
}
