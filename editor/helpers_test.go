package editor

import (
	"regexp"
	"strings"
	"testing"

	"github.com/iw2rmb/leaflet/document"
)

type memClipboard struct {
	s string
}

func (c *memClipboard) ReadText() (string, error) { return c.s, nil }
func (c *memClipboard) WriteText(s string) error  { c.s = s; return nil }

var ansiRE = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string { return ansiRE.ReplaceAllString(s, "") }

// viewLines returns the view split into lines, stripped of escapes and
// trailing blanks.
func viewLines(m Model) []string {
	lines := strings.Split(m.View(), "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(stripANSI(lines[i]), " ")
	}
	return lines
}

func pt(offset int, path ...int) document.Point {
	return document.Point{Path: document.Path(path), Offset: offset}
}

func para(s string) *document.Block {
	return document.NewBlock(document.Paragraph, document.NewText(s))
}

func list(t document.BlockType, items ...string) *document.Block {
	b := document.NewBlock(t)
	for _, s := range items {
		b.Children = append(b.Children, document.NewBlock(document.ListItem, document.NewText(s)))
	}
	return b
}

func assertText(t *testing.T, s *Session, want string) {
	t.Helper()
	if got := s.Document().PlainText(); got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
}

func assertCaret(t *testing.T, s *Session, want document.Point) {
	t.Helper()
	sel := s.Selection()
	if !sel.Active || !sel.Range.IsCollapsed() {
		t.Fatalf("selection: got %+v, want caret at %v", sel, want)
	}
	if !sel.Range.Focus.Equal(want) {
		t.Fatalf("caret: got %v, want %v", sel.Range.Focus, want)
	}
}
