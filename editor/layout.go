package editor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/leaflet/document"
	"github.com/iw2rmb/leaflet/internal/grapheme"
	"github.com/iw2rmb/leaflet/render"
	"github.com/iw2rmb/leaflet/transform"
)

type cell struct {
	text   string
	width  int
	abs    int // grapheme offset in the block; -1 for decorations
	style  lipgloss.Style
	cursor bool
}

// visualRow is one terminal row. Spacer rows between top-level blocks have
// leaf == -1.
type visualRow struct {
	leaf    int
	prefix  string
	prefixW int
	cells   []cell
	last    bool // last row of its block
}

type docLayout struct {
	rows      []visualRow
	leaves    []document.BlockEntry
	cursorRow int
}

// leafPos is a point expressed as (leaf block index, block offset).
type leafPos struct {
	leaf int
	abs  int
}

func (p leafPos) less(q leafPos) bool {
	return p.leaf < q.leaf || (p.leaf == q.leaf && p.abs < q.abs)
}

type layoutBuilder struct {
	style       Style
	width       int
	focused     bool
	placeholder string

	index  map[*document.Block]int
	cursor leafPos
	hasSel bool
	selLo  leafPos
	selHi  leafPos

	out docLayout
}

func buildLayout(st transform.State, style Style, width int, focused bool, placeholder string) docLayout {
	b := layoutBuilder{
		style:       style,
		width:       width,
		focused:     focused,
		placeholder: placeholder,
		index:       map[*document.Block]int{},
		cursor:      leafPos{leaf: -1},
	}
	b.out.leaves = st.Doc.LeafBlocks()
	for i, lb := range b.out.leaves {
		b.index[lb.Block] = i
	}

	if st.Selection.Active && st.Validate() == nil {
		b.cursor = b.locate(st.Doc, st.Selection.Range.Focus)
		if !st.Selection.Range.IsCollapsed() {
			start, end := st.Selection.Range.Edges()
			b.hasSel = true
			b.selLo = b.locate(st.Doc, start)
			b.selHi = b.locate(st.Doc, end)
		}
	}

	b.blocks(st.Doc.Children, 0, render.KindParagraph, true)
	return b.out
}

func (b *layoutBuilder) locate(doc *document.Document, p document.Point) leafPos {
	blk, _, abs, err := doc.BlockOffset(p)
	if err != nil {
		return leafPos{leaf: -1}
	}
	i, ok := b.index[blk]
	if !ok {
		return leafPos{leaf: -1}
	}
	return leafPos{leaf: i, abs: abs}
}

func (b *layoutBuilder) blocks(nodes []document.Node, depth int, list render.Kind, top bool) {
	for i, n := range nodes {
		blk, ok := n.(*document.Block)
		if !ok {
			continue
		}
		shape := render.Project(blk)
		switch {
		case shape.Kind.IsContainer():
			b.blocks(blk.Children, depth+1, shape.Kind, false)
		case blk.HoldsInline():
			b.leaf(blk, shape.Kind, depth, list, i)
		default:
			b.blocks(blk.Children, depth, list, false)
		}
		if top && i < len(nodes)-1 {
			b.out.rows = append(b.out.rows, visualRow{leaf: -1, last: true})
		}
	}
}

func (b *layoutBuilder) blockStyle(k render.Kind) lipgloss.Style {
	switch k {
	case render.KindHeading:
		return b.style.Heading
	case render.KindListItem:
		return b.style.ListItem
	default:
		return b.style.Paragraph
	}
}

func (b *layoutBuilder) marker(k render.Kind, depth int, list render.Kind, i int) string {
	if k != render.KindListItem || depth == 0 {
		return ""
	}
	indent := strings.Repeat("  ", depth-1)
	if list == render.KindNumberedList {
		return indent + fmt.Sprintf("%d. ", i+1)
	}
	return indent + "• "
}

func (b *layoutBuilder) leaf(blk *document.Block, k render.Kind, depth int, list render.Kind, i int) {
	li := b.index[blk]
	base := b.blockStyle(k)

	var cells []cell
	abs := 0
	for _, c := range blk.Children {
		t, ok := c.(*document.Text)
		if !ok {
			continue
		}
		ts := render.Project(t)
		st := base
		if ts.Strong {
			st = st.Inherit(b.style.Strong)
		}
		if ts.Emphasis {
			st = st.Inherit(b.style.Emphasis)
		}
		for _, g := range grapheme.Split(t.Text) {
			cs := st
			if b.selected(li, abs) {
				cs = cs.Inherit(b.style.Selection)
			}
			cells = append(cells, cell{text: g, width: graphemeCellWidth(g), abs: abs, style: cs})
			abs++
		}
	}

	if b.focused && b.cursor.leaf == li {
		if b.cursor.abs < len(cells) {
			cells[b.cursor.abs].cursor = true
		} else {
			cells = append(cells, cell{text: " ", width: 1, abs: abs, style: base, cursor: true})
		}
	}
	if abs == 0 && b.placeholder != "" && len(b.out.leaves) == 1 {
		cells = append(cells, cell{
			text:  b.placeholder,
			width: lipgloss.Width(b.placeholder),
			abs:   -1,
			style: b.style.Placeholder,
		})
	}

	prefix := b.marker(k, depth, list, i)
	prefixW := lipgloss.Width(prefix)
	styledPrefix := prefix
	if prefix != "" {
		styledPrefix = b.style.Bullet.Render(prefix)
	}

	row := visualRow{leaf: li, prefix: styledPrefix, prefixW: prefixW}
	used := 0
	avail := b.width - prefixW
	for _, c := range cells {
		if avail > 0 && used+c.width > avail && len(row.cells) > 0 {
			b.out.rows = append(b.out.rows, row)
			row = visualRow{leaf: li, prefix: strings.Repeat(" ", prefixW), prefixW: prefixW}
			used = 0
		}
		if c.cursor {
			b.out.cursorRow = len(b.out.rows)
		}
		row.cells = append(row.cells, c)
		used += c.width
	}
	row.last = true
	b.out.rows = append(b.out.rows, row)
}

func (b *layoutBuilder) selected(li, abs int) bool {
	if !b.hasSel {
		return false
	}
	p := leafPos{leaf: li, abs: abs}
	return !p.less(b.selLo) && p.less(b.selHi)
}

func (r visualRow) render(style Style) string {
	var sb strings.Builder
	sb.WriteString(r.prefix)
	for _, c := range r.cells {
		if c.cursor {
			sb.WriteString(style.Cursor.Inherit(c.style).Render(c.text))
			continue
		}
		sb.WriteString(c.style.Render(c.text))
	}
	return sb.String()
}

func (l docLayout) render(style Style) string {
	out := make([]string, len(l.rows))
	for i, r := range l.rows {
		out[i] = r.render(style)
	}
	return strings.Join(out, "\n")
}

// pointAt maps a content coordinate onto a document point. Rows past the end
// clamp to the last block; spacer rows resolve to the end of the block above.
func (l docLayout) pointAt(doc *document.Document, x, y int) (document.Point, bool) {
	if len(l.rows) == 0 {
		return document.Point{}, false
	}
	y = min(max(y, 0), len(l.rows)-1)
	spacer := l.rows[y].leaf < 0
	for y > 0 && l.rows[y].leaf < 0 {
		y--
	}
	r := l.rows[y]
	if r.leaf < 0 || r.leaf >= len(l.leaves) {
		return document.Point{}, false
	}

	lb := l.leaves[r.leaf]
	abs := -1
	col := r.prefixW
	for _, c := range r.cells {
		if spacer || c.abs < 0 {
			break
		}
		if x < col+c.width {
			abs = c.abs
			break
		}
		col += c.width
	}
	if abs < 0 {
		abs = rowEnd(r, lb.Block)
	}

	p, err := doc.PointAt(lb.Path, abs)
	if err != nil {
		return document.Point{}, false
	}
	return p, true
}

// rowEnd is the offset a click past the last cell of r lands on.
func rowEnd(r visualRow, blk *document.Block) int {
	if r.last {
		return grapheme.Count(blk.InlineText())
	}
	for i := len(r.cells) - 1; i >= 0; i-- {
		if r.cells[i].abs >= 0 {
			return r.cells[i].abs
		}
	}
	return 0
}
