package transform

import (
	"github.com/iw2rmb/leaflet/document"
)

// ToggleBlock switches the selected blocks to format, or back to paragraph
// if format is already active.
//
// List containers around the selection are always split first so that only
// the selected items leave them. The selected text-holding blocks are then
// retyped: to paragraph when format was active, to list-item for list
// formats, to format otherwise. List formats finally wrap the retyped items
// in a new container, which converts one list type into another in a single
// call. Formats outside the known set act as paragraph.
func ToggleBlock(s State, format document.BlockType) (State, error) {
	if err := s.Validate(); err != nil {
		return s, err
	}
	if !s.Selection.Active {
		return s, nil
	}

	format = document.ParseBlockType(string(format))
	active := IsBlockActive(s, format)

	doc := s.Doc.Clone()
	refs, err := takeRefs(doc, s.Selection)
	if err != nil {
		return s, err
	}
	edges, err := takeEdges(doc, Unhang(doc, s.Selection.Range))
	if err != nil {
		return s, err
	}

	unwrapLists(doc, edges)

	next := format
	switch {
	case active:
		next = document.Paragraph
	case format.IsList():
		next = document.ListItem
	}

	start, end := edges.points(doc)
	leaves := selectedLeaves(doc, start, end)
	for _, lb := range leaves {
		lb.Block.Type = next
	}
	if !active && format.IsList() && len(leaves) > 0 {
		wrapBlocks(doc, leaves[0].Block, leaves[len(leaves)-1].Block, format)
	}

	doc.Normalize()
	return State{Doc: doc, Selection: refs.resolve(doc)}, nil
}

// rangeRefs tracks the edges of a working range while the tree is reshaped.
type rangeRefs struct {
	start pointRef
	end   pointRef
}

func takeEdges(doc *document.Document, r document.Range) (rangeRefs, error) {
	start, end := r.Edges()
	s, err := refOf(doc, start, affinityForward)
	if err != nil {
		return rangeRefs{}, err
	}
	e, err := refOf(doc, end, affinityBackward)
	if err != nil {
		return rangeRefs{}, err
	}
	return rangeRefs{start: s, end: e}, nil
}

func (r rangeRefs) points(doc *document.Document) (document.Point, document.Point) {
	start, okS := r.start.resolve(doc)
	end, okE := r.end.resolve(doc)
	if !okS || !okE {
		return document.Point{}, document.Point{}
	}
	return start, end
}

// unwrapLists lifts the selected items out of the innermost list containers
// that intersect the range. A list with an intersecting list below it stays
// in place, so a parent item keeps its unselected content.
func unwrapLists(doc *document.Document, edges rangeRefs) {
	start, end := edges.points(doc)
	if start.Path == nil {
		return
	}
	var targets []document.Path
	doc.Walk(func(n document.Node, p document.Path) bool {
		if !document.IsElement(n) || !intersects(p, start, end) {
			return false
		}
		if !n.(*document.Block).Type.IsList() {
			return true
		}
		if k := len(targets); k > 0 && targets[k-1].IsAncestorOf(p) {
			targets[k-1] = p.Clone()
		} else {
			targets = append(targets, p.Clone())
		}
		return true
	})

	// Later targets first: a split only shifts the paths that follow it.
	for i := len(targets) - 1; i >= 0; i-- {
		start, end := edges.points(doc)
		if start.Path == nil {
			return
		}
		splitList(doc, targets[i], start, end)
	}
}

// splitList replaces the list at p with up to three siblings: a list of the
// items before the range, the selected items themselves, and a list of the
// items after it.
func splitList(doc *document.Document, p document.Path, start, end document.Point) {
	list, err := doc.BlockAt(p)
	if err != nil {
		return
	}
	from, to := -1, -1
	for i := range list.Children {
		if intersects(p.Child(i), start, end) {
			if from < 0 {
				from = i
			}
			to = i
		}
	}
	if from < 0 {
		_ = replaceAt(doc, p)
		return
	}

	var repl []document.Node
	if from > 0 {
		repl = append(repl, document.NewBlock(list.Type, append([]document.Node(nil), list.Children[:from]...)...))
	}
	repl = append(repl, list.Children[from:to+1]...)
	if to < len(list.Children)-1 {
		repl = append(repl, document.NewBlock(list.Type, append([]document.Node(nil), list.Children[to+1:]...)...))
	}
	_ = replaceAt(doc, p, repl...)
}

// wrapBlocks moves the siblings spanning first..last under a new block of
// type t. Both blocks must be in doc.
func wrapBlocks(doc *document.Document, first, last *document.Block, t document.BlockType) {
	fp, ok := doc.PathOf(first)
	if !ok {
		return
	}
	lp, ok := doc.PathOf(last)
	if !ok {
		return
	}

	common := document.CommonPath(fp, lp)
	if fp.Equal(lp) {
		common = fp.Parent()
	}
	parent, err := doc.NodeAt(common)
	if err != nil {
		return
	}
	depth := len(common)
	lo, hi := fp[depth], lp[depth]

	siblings := document.Children(parent)
	wrapper := document.NewBlock(t, append([]document.Node(nil), siblings[lo:hi+1]...)...)
	next := joinNodes(siblings[:lo], []document.Node{wrapper}, siblings[hi+1:])
	_ = setChildren(doc, common, next)
}
