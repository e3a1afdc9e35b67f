package document

import (
	"fmt"
	"strconv"
	"strings"
)

// Path is a sequence of child indexes from the document root.
type Path []int

func (p Path) String() string {
	parts := make([]string, len(p))
	for i, v := range p {
		parts[i] = strconv.Itoa(v)
	}
	return "[" + strings.Join(parts, ",") + "]"
}

// Clone returns an independent copy of p.
func (p Path) Clone() Path {
	if p == nil {
		return nil
	}
	return append(Path(nil), p...)
}

func (p Path) Equal(q Path) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}
	return true
}

// Parent returns the path of p's parent. The parent of the root is nil.
func (p Path) Parent() Path {
	if len(p) == 0 {
		return nil
	}
	return p[:len(p)-1].Clone()
}

// Child returns the path of the i-th child of p.
func (p Path) Child(i int) Path {
	out := make(Path, len(p)+1)
	copy(out, p)
	out[len(p)] = i
	return out
}

// IsAncestorOf reports whether p is a strict ancestor of q.
func (p Path) IsAncestorOf(q Path) bool {
	if len(p) >= len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}
	return true
}

// ComparePath orders paths in document order. Paths that share their whole
// common prefix (ancestors and descendants) compare equal.
func ComparePath(a, b Path) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] < b[i] {
			return -1
		}
		if a[i] > b[i] {
			return 1
		}
	}
	return 0
}

// CommonPath returns the longest shared prefix of a and b.
func CommonPath(a, b Path) Path {
	n := min(len(a), len(b))
	out := Path{}
	for i := 0; i < n && a[i] == b[i]; i++ {
		out = append(out, a[i])
	}
	return out
}

// Point addresses a grapheme offset inside a Text leaf.
type Point struct {
	Path   Path
	Offset int
}

func (p Point) String() string {
	return fmt.Sprintf("%s:%d", p.Path, p.Offset)
}

// Clone returns a point with an independent path.
func (p Point) Clone() Point {
	return Point{Path: p.Path.Clone(), Offset: p.Offset}
}

func (p Point) Equal(q Point) bool {
	return p.Offset == q.Offset && p.Path.Equal(q.Path)
}

// ComparePoint orders points in document order.
func ComparePoint(a, b Point) int {
	if c := ComparePath(a.Path, b.Path); c != 0 {
		return c
	}
	if len(a.Path) != len(b.Path) {
		// One addresses an ancestor of the other; the shorter path sorts first.
		if len(a.Path) < len(b.Path) {
			return -1
		}
		return 1
	}
	switch {
	case a.Offset < b.Offset:
		return -1
	case a.Offset > b.Offset:
		return 1
	default:
		return 0
	}
}

// Range is an anchor/focus pair. The focus moves when a selection is extended.
type Range struct {
	Anchor Point
	Focus  Point
}

// Collapsed returns a zero-width range at p.
func Collapsed(p Point) Range {
	return Range{Anchor: p, Focus: p.Clone()}
}

func (r Range) IsCollapsed() bool { return r.Anchor.Equal(r.Focus) }

// IsBackward reports whether the anchor comes after the focus.
func (r Range) IsBackward() bool { return ComparePoint(r.Anchor, r.Focus) > 0 }

// Edges returns the range endpoints in document order.
func (r Range) Edges() (start, end Point) {
	if r.IsBackward() {
		return r.Focus, r.Anchor
	}
	return r.Anchor, r.Focus
}

func (r Range) Equal(o Range) bool {
	return r.Anchor.Equal(o.Anchor) && r.Focus.Equal(o.Focus)
}

// Clone returns a range with independent paths.
func (r Range) Clone() Range {
	return Range{Anchor: r.Anchor.Clone(), Focus: r.Focus.Clone()}
}

// Selection is an optional range. Inactive selections carry no range.
type Selection struct {
	Active bool
	Range  Range
}

// Select returns an active selection over r.
func Select(r Range) Selection {
	return Selection{Active: true, Range: r}
}

func (s Selection) Equal(o Selection) bool {
	if !s.Active && !o.Active {
		return true
	}
	return s.Active == o.Active && s.Range.Equal(o.Range)
}
