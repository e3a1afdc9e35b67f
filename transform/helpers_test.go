package transform

import (
	"encoding/json"
	"testing"

	"github.com/iw2rmb/leaflet/document"
)

func pt(offset int, path ...int) document.Point {
	return document.Point{Path: document.Path(path), Offset: offset}
}

func rng(anchor, focus document.Point) document.Range {
	return document.Range{Anchor: anchor, Focus: focus}
}

func para(children ...document.Node) *document.Block {
	return document.NewBlock(document.Paragraph, children...)
}

func item(s string) *document.Block {
	return document.NewBlock(document.ListItem, document.NewText(s))
}

func txt(s string) *document.Text { return document.NewText(s) }

func bold(s string) *document.Text {
	return document.NewMarkedText(s, document.Marks{Bold: true})
}

// stateAt builds a state over doc with the given selection.
func stateAt(t *testing.T, doc *document.Document, r document.Range) State {
	t.Helper()
	s, err := Select(State{Doc: doc}, r)
	if err != nil {
		t.Fatalf("select %v: %v", r, err)
	}
	return s
}

func apply(t *testing.T, s State, fn func(State) (State, error)) State {
	t.Helper()
	out, err := fn(s)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if err := out.Doc.Validate(); err != nil {
		t.Fatalf("result does not validate: %v\n%s", err, dump(out.Doc))
	}
	if err := out.Validate(); err != nil {
		t.Fatalf("result selection dangles: %v", err)
	}
	return out
}

func assertDoc(t *testing.T, got, want *document.Document) {
	t.Helper()
	if !document.Equal(got, want) {
		t.Fatalf("doc:\n got: %s\nwant: %s", dump(got), dump(want))
	}
}

func assertSel(t *testing.T, s State, want document.Range) {
	t.Helper()
	if !s.Selection.Active {
		t.Fatalf("expected active selection")
	}
	if got := s.Selection.Range; !got.Equal(want) {
		t.Fatalf("selection=(%v,%v), want (%v,%v)", got.Anchor, got.Focus, want.Anchor, want.Focus)
	}
}

func dump(d *document.Document) string {
	b, err := json.Marshal(d)
	if err != nil {
		return err.Error()
	}
	return string(b)
}

func toggleBlock(f document.BlockType) func(State) (State, error) {
	return func(s State) (State, error) { return ToggleBlock(s, f) }
}

func toggleMark(m document.Mark) func(State) (State, error) {
	return func(s State) (State, error) { return ToggleMark(s, m) }
}

func insert(text string) func(State) (State, error) {
	return func(s State) (State, error) { return InsertText(s, text) }
}
