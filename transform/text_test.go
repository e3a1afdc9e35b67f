package transform

import (
	"testing"

	"github.com/iw2rmb/leaflet/document"
)

func TestInsertText_ReplacesSelectionAcrossBlocks(t *testing.T) {
	doc := document.NewDocument(para(txt("hello")), para(txt("world")))
	s := stateAt(t, doc, rng(pt(2, 1, 0), pt(3, 0, 0)))

	s = apply(t, s, insert("p, "))
	assertDoc(t, s.Doc, document.NewDocument(para(txt("help, rld"))))
	assertSel(t, s, document.Collapsed(pt(6, 0, 0)))
}

func TestInsertText_MultiLineSplitsBlocks(t *testing.T) {
	doc := document.NewDocument(para(txt("ab")))
	s := stateAt(t, doc, document.Collapsed(pt(1, 0, 0)))

	s = apply(t, s, insert("X\nY"))
	assertDoc(t, s.Doc, document.NewDocument(para(txt("aX")), para(txt("Yb"))))
	assertSel(t, s, document.Collapsed(pt(1, 1, 0)))
}

func TestInsertText_GraphemeClusters(t *testing.T) {
	const family = "\U0001F468\u200d\U0001F469\u200d\U0001F467"
	s := NewState(nil)
	s = apply(t, s, insert("a"+family))
	assertSel(t, s, document.Collapsed(pt(2, 0, 0)))

	s = apply(t, s, DeleteBackward)
	assertDoc(t, s.Doc, document.NewDocument(para(txt("a"))))
	assertSel(t, s, document.Collapsed(pt(1, 0, 0)))
}

func TestDeleteBackward_MergesWithPreviousBlock(t *testing.T) {
	doc := document.NewDocument(para(txt("ab")), document.NewBlock(document.HeadingOne, bold("cd")))
	s := stateAt(t, doc, document.Collapsed(pt(0, 1, 0)))

	s = apply(t, s, DeleteBackward)
	assertDoc(t, s.Doc, document.NewDocument(para(txt("ab"), bold("cd"))))
	assertSel(t, s, document.Collapsed(pt(2, 0, 0)))
}

func TestDeleteBackward_LiftsListItem(t *testing.T) {
	doc := document.NewDocument(
		para(txt("p")),
		document.NewBlock(document.BulletedList, item("a"), item("b")),
	)
	s := stateAt(t, doc, document.Collapsed(pt(0, 1, 1, 0)))

	s = apply(t, s, DeleteBackward)
	want := document.NewDocument(
		para(txt("p")),
		document.NewBlock(document.BulletedList, item("a")),
		para(txt("b")),
	)
	assertDoc(t, s.Doc, want)
	assertSel(t, s, document.Collapsed(pt(0, 2, 0)))

	s = apply(t, s, DeleteBackward)
	want = document.NewDocument(
		para(txt("p")),
		document.NewBlock(document.BulletedList, item("ab")),
	)
	assertDoc(t, s.Doc, want)
	assertSel(t, s, document.Collapsed(pt(1, 1, 0, 0)))
}

func TestDeleteBackward_FirstHeadingBecomesParagraph(t *testing.T) {
	doc := document.NewDocument(document.NewBlock(document.HeadingOne, txt("t")))
	s := stateAt(t, doc, document.Collapsed(pt(0, 0, 0)))

	s = apply(t, s, DeleteBackward)
	assertDoc(t, s.Doc, document.NewDocument(para(txt("t"))))

	out := apply(t, s, DeleteBackward)
	if !Equal(out, s) {
		t.Fatalf("backspace at document start changed state")
	}
}

func TestDeleteForward_PullsNextBlockIn(t *testing.T) {
	doc := document.NewDocument(
		para(txt("ab")),
		document.NewBlock(document.BulletedList, item("cd")),
	)
	s := stateAt(t, doc, document.Collapsed(pt(2, 0, 0)))

	s = apply(t, s, DeleteForward)
	assertDoc(t, s.Doc, document.NewDocument(para(txt("abcd"))))
	assertSel(t, s, document.Collapsed(pt(2, 0, 0)))

	s = apply(t, s, DeleteForward)
	assertDoc(t, s.Doc, document.NewDocument(para(txt("abd"))))
}

func TestDeleteFragment_RemovesInnerBlocks(t *testing.T) {
	doc := document.NewDocument(
		para(txt("one")),
		document.NewBlock(document.NumberedList, item("two"), item("three")),
		para(txt("four")),
	)
	s := stateAt(t, doc, rng(pt(1, 0, 0), pt(2, 2, 0)))

	s = apply(t, s, DeleteFragment)
	assertDoc(t, s.Doc, document.NewDocument(para(txt("our"))))
	assertSel(t, s, document.Collapsed(pt(1, 0, 0)))
}

func TestInsertBreak(t *testing.T) {
	cases := []struct {
		name string
		doc  *document.Document
		at   document.Point
		want *document.Document
		sel  document.Point
	}{
		{
			name: "middle of paragraph",
			doc:  document.NewDocument(para(txt("hello"))),
			at:   pt(2, 0, 0),
			want: document.NewDocument(para(txt("he")), para(txt("llo"))),
			sel:  pt(0, 1, 0),
		},
		{
			name: "end of heading",
			doc:  document.NewDocument(document.NewBlock(document.HeadingOne, txt("T"))),
			at:   pt(1, 0, 0),
			want: document.NewDocument(document.NewBlock(document.HeadingOne, txt("T")), para(txt(""))),
			sel:  pt(0, 1, 0),
		},
		{
			name: "inside list item",
			doc:  document.NewDocument(document.NewBlock(document.BulletedList, item("ab"))),
			at:   pt(1, 0, 0, 0),
			want: document.NewDocument(document.NewBlock(document.BulletedList, item("a"), item("b"))),
			sel:  pt(0, 0, 1, 0),
		},
		{
			name: "empty list item",
			doc:  document.NewDocument(document.NewBlock(document.BulletedList, item("a"), item(""))),
			at:   pt(0, 0, 1, 0),
			want: document.NewDocument(document.NewBlock(document.BulletedList, item("a")), para(txt(""))),
			sel:  pt(0, 1, 0),
		},
	}
	for _, tc := range cases {
		s := stateAt(t, tc.doc, document.Collapsed(tc.at))
		s = apply(t, s, InsertBreak)
		if !document.Equal(s.Doc, tc.want) {
			t.Fatalf("%s: doc:\n got: %s\nwant: %s", tc.name, dump(s.Doc), dump(tc.want))
		}
		if got := s.Selection.Range.Focus; !got.Equal(tc.sel) {
			t.Fatalf("%s: cursor=%v, want %v", tc.name, got, tc.sel)
		}
	}
}

func TestInsertText_DoesNotMutateInput(t *testing.T) {
	s := NewState(document.NewDocument(para(txt("x"))))
	before := s.Clone()

	_ = apply(t, s, insert("yz"))
	if !Equal(s, before) {
		t.Fatalf("input state mutated")
	}
}
