package transform

import (
	"github.com/iw2rmb/leaflet/document"
	"github.com/iw2rmb/leaflet/internal/grapheme"
)

// ActiveMarks returns the marks in effect for the selection.
//
// A collapsed cursor reports pending marks if any, otherwise the marks of the
// text before the cursor. An expanded selection reports the marks of the first
// text it covers; texts further along are not consulted, so a selection over
// mixed runs reports whatever its first run carries.
func ActiveMarks(s State) (document.Marks, bool) {
	if !s.Selection.Active || s.Validate() != nil {
		return document.Marks{}, false
	}
	r := s.Selection.Range
	if r.IsCollapsed() {
		if s.Marks != nil {
			return *s.Marks, true
		}
		return marksBefore(s.Doc, r.Anchor), true
	}

	start, end := r.Edges()
	for _, te := range s.Doc.Texts() {
		if !intersects(te.Path, start, end) {
			continue
		}
		lo, hi := 0, grapheme.Count(te.Text.Text)
		if te.Path.Equal(start.Path) {
			lo = start.Offset
		}
		if te.Path.Equal(end.Path) {
			hi = end.Offset
		}
		if lo < hi {
			return te.Text.Marks, true
		}
	}
	t, err := s.Doc.TextAt(start.Path)
	if err != nil {
		return document.Marks{}, false
	}
	return t.Marks, true
}

// marksBefore returns the marks a caret at p types with: the previous
// sibling's marks when p sits at the very start of a text that has one.
func marksBefore(doc *document.Document, p document.Point) document.Marks {
	t, err := doc.TextAt(p.Path)
	if err != nil {
		return document.Marks{}
	}
	idx := p.Path[len(p.Path)-1]
	if p.Offset == 0 && idx > 0 {
		if prev, err := doc.TextAt(p.Path.Parent().Child(idx - 1)); err == nil {
			return prev.Marks
		}
	}
	return t.Marks
}

// IsMarkActive reports whether m is in effect for the selection.
func IsMarkActive(s State, m document.Mark) bool {
	ms, ok := ActiveMarks(s)
	return ok && ms.Has(m)
}

// ToggleMark removes m from every text in the selection if it is active and
// adds it otherwise. Texts are split at the selection edges. A collapsed
// cursor toggles the pending mark instead. Without a selection the state is
// returned as is.
func ToggleMark(s State, m document.Mark) (State, error) {
	if err := s.Validate(); err != nil {
		return s, err
	}
	if !s.Selection.Active {
		return s, nil
	}

	active := IsMarkActive(s, m)
	r := s.Selection.Range
	if r.IsCollapsed() {
		ms := marksBefore(s.Doc, r.Anchor)
		if s.Marks != nil {
			ms = *s.Marks
		}
		ms = ms.With(m, !active)
		return State{Doc: s.Doc, Selection: s.Selection, Marks: &ms}, nil
	}

	doc := s.Doc.Clone()
	refs, err := takeRefs(doc, s.Selection)
	if err != nil {
		return s, err
	}
	start, end := r.Edges()
	startRef, err := refOf(doc, start, affinityForward)
	if err != nil {
		return s, err
	}
	endRef, err := refOf(doc, end, affinityBackward)
	if err != nil {
		return s, err
	}

	for _, lb := range selectedLeaves(doc, start, end) {
		lo, hi := 0, inlineLen(lb.Block)
		if lb.Block == startRef.block {
			lo = startRef.offset
		}
		if lb.Block == endRef.block {
			hi = endRef.offset
		}
		if lo >= hi {
			continue
		}
		before, mid, after := cutInline(lb.Block, lo, hi)
		for _, n := range mid {
			t := n.(*document.Text)
			t.Marks = t.Marks.With(m, !active)
		}
		lb.Block.Children = joinNodes(before, mid, after)
	}

	doc.Normalize()
	return State{Doc: doc, Selection: refs.resolve(doc)}, nil
}
