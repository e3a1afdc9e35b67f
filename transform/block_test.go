package transform

import (
	"errors"
	"testing"

	"github.com/iw2rmb/leaflet/document"
)

func TestEndToEnd_TypeBoldHeading(t *testing.T) {
	s := NewState(nil)
	if err := s.Doc.Validate(); err != nil {
		t.Fatalf("initial doc: %v", err)
	}

	s = apply(t, s, insert("Hello"))
	s = apply(t, s, SelectAll)
	s = apply(t, s, toggleMark(document.Bold))

	leaf := s.Doc.Texts()
	if got, want := len(leaf), 1; got != want {
		t.Fatalf("texts=%d, want %d", got, want)
	}
	if got, want := *leaf[0].Text, *bold("Hello"); got != want {
		t.Fatalf("text=%+v, want %+v", got, want)
	}

	s = apply(t, s, toggleBlock(document.HeadingOne))
	assertDoc(t, s.Doc, document.NewDocument(document.NewBlock(document.HeadingOne, bold("Hello"))))
	if !IsBlockActive(s, document.HeadingOne) {
		t.Fatalf("expected heading active")
	}

	s = apply(t, s, toggleBlock(document.HeadingOne))
	assertDoc(t, s.Doc, document.NewDocument(para(bold("Hello"))))
	assertSel(t, s, rng(pt(0, 0, 0), pt(5, 0, 0)))
}

func TestToggleBlock_TwiceRestoresType(t *testing.T) {
	formats := []document.BlockType{
		document.HeadingOne,
		document.BulletedList,
		document.NumberedList,
		document.Paragraph,
	}
	for _, f := range formats {
		doc := document.NewDocument(para(txt("a")), para(txt("b")))
		s := stateAt(t, doc, document.Collapsed(pt(1, 1, 0)))

		s = apply(t, s, toggleBlock(f))
		s = apply(t, s, toggleBlock(f))
		if !document.Equal(s.Doc, doc) {
			t.Fatalf("%s: doc:\n got: %s\nwant: %s", f, dump(s.Doc), dump(doc))
		}
		assertSel(t, s, document.Collapsed(pt(1, 1, 0)))
	}
}

func TestToggleBlock_ListConversionInOneStep(t *testing.T) {
	s := stateAt(t, document.NewDocument(para(txt("x"), bold("y"))), document.Collapsed(pt(0, 0, 0)))

	s = apply(t, s, toggleBlock(document.BulletedList))
	want := document.NewDocument(document.NewBlock(document.BulletedList,
		document.NewBlock(document.ListItem, txt("x"), bold("y")),
	))
	assertDoc(t, s.Doc, want)
	assertSel(t, s, document.Collapsed(pt(0, 0, 0, 0)))

	s = apply(t, s, toggleBlock(document.NumberedList))
	want = document.NewDocument(document.NewBlock(document.NumberedList,
		document.NewBlock(document.ListItem, txt("x"), bold("y")),
	))
	assertDoc(t, s.Doc, want)
	if IsBlockActive(s, document.BulletedList) || !IsBlockActive(s, document.NumberedList) {
		t.Fatalf("expected numbered list active only")
	}
}

func TestToggleBlock_SplitsListAroundSelection(t *testing.T) {
	doc := document.NewDocument(document.NewBlock(document.BulletedList, item("a"), item("b"), item("c")))
	s := stateAt(t, doc, document.Collapsed(pt(1, 0, 1, 0)))

	s = apply(t, s, toggleBlock(document.BulletedList))
	want := document.NewDocument(
		document.NewBlock(document.BulletedList, item("a")),
		para(txt("b")),
		document.NewBlock(document.BulletedList, item("c")),
	)
	assertDoc(t, s.Doc, want)
	assertSel(t, s, document.Collapsed(pt(1, 1, 0)))
}

func TestToggleBlock_NestedListLeavesParentItem(t *testing.T) {
	doc, err := document.Parse([]byte(`[{"type": "bulleted-list", "children": [
		{"type": "list-item", "children": [
			{"type": "paragraph", "children": [{"text": "A"}]},
			{"type": "bulleted-list", "children": [
				{"type": "list-item", "children": [{"text": "B"}]}
			]}
		]},
		{"type": "list-item", "children": [{"text": "C"}]}
	]}]`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	s := stateAt(t, doc, document.Collapsed(pt(0, 0, 0, 1, 0, 0)))

	s = apply(t, s, toggleBlock(document.BulletedList))
	want := document.NewDocument(document.NewBlock(document.BulletedList,
		document.NewBlock(document.ListItem, para(txt("A")), para(txt("B"))),
		item("C"),
	))
	assertDoc(t, s.Doc, want)
	assertSel(t, s, document.Collapsed(pt(0, 0, 0, 1, 0)))
}

func TestToggleBlock_HeadingFromListItem(t *testing.T) {
	doc := document.NewDocument(document.NewBlock(document.NumberedList, item("a"), item("b")))
	s := stateAt(t, doc, document.Collapsed(pt(0, 0, 0, 0)))

	s = apply(t, s, toggleBlock(document.HeadingOne))
	want := document.NewDocument(
		document.NewBlock(document.HeadingOne, txt("a")),
		document.NewBlock(document.NumberedList, item("b")),
	)
	assertDoc(t, s.Doc, want)
}

func TestToggleBlock_WrapsSeveralBlocks(t *testing.T) {
	doc := document.NewDocument(para(txt("a")), para(txt("b")), para(txt("c")))
	s := stateAt(t, doc, rng(pt(0, 0, 0), pt(1, 1, 0)))

	s = apply(t, s, toggleBlock(document.BulletedList))
	want := document.NewDocument(
		document.NewBlock(document.BulletedList, item("a"), item("b")),
		para(txt("c")),
	)
	assertDoc(t, s.Doc, want)
	assertSel(t, s, rng(pt(0, 0, 0, 0), pt(1, 0, 1, 0)))
}

func TestToggleBlock_HangingEndStaysOut(t *testing.T) {
	doc := document.NewDocument(para(txt("a")), para(txt("b")))
	s := stateAt(t, doc, rng(pt(0, 0, 0), pt(0, 1, 0)))

	s = apply(t, s, toggleBlock(document.HeadingOne))
	want := document.NewDocument(document.NewBlock(document.HeadingOne, txt("a")), para(txt("b")))
	assertDoc(t, s.Doc, want)
	assertSel(t, s, rng(pt(0, 0, 0), pt(0, 1, 0)))
}

func TestToggleBlock_UnknownFormatActsAsParagraph(t *testing.T) {
	doc := document.NewDocument(document.NewBlock(document.HeadingOne, txt("a")))
	s := stateAt(t, doc, document.Collapsed(pt(0, 0, 0)))

	s = apply(t, s, toggleBlock("heading-seven"))
	assertDoc(t, s.Doc, document.NewDocument(para(txt("a"))))

	s = apply(t, s, toggleBlock("heading-seven"))
	assertDoc(t, s.Doc, document.NewDocument(para(txt("a"))))
}

func TestToggleBlock_InvalidSelectionLeavesStateUnchanged(t *testing.T) {
	doc := document.NewDocument(para(txt("a")))
	s := State{Doc: doc, Selection: document.Select(document.Collapsed(pt(5, 0, 0)))}
	before := s.Clone()

	out, err := ToggleBlock(s, document.BulletedList)
	if !errors.Is(err, ErrInvalidSelection) {
		t.Fatalf("err=%v, want ErrInvalidSelection", err)
	}
	if !errors.Is(err, document.ErrInvalidOffset) {
		t.Fatalf("err=%v, want wrapped ErrInvalidOffset", err)
	}
	if !Equal(out, before) || !Equal(s, before) {
		t.Fatalf("state changed on rejected toggle")
	}
}

func TestIsBlockActive_IgnoresFollowingBlockAtOffsetZero(t *testing.T) {
	doc := document.NewDocument(
		para(txt("one")),
		document.NewBlock(document.HeadingOne, txt("two")),
	)
	s := stateAt(t, doc, rng(pt(0, 0, 0), pt(0, 1, 0)))
	if IsBlockActive(s, document.HeadingOne) {
		t.Fatalf("heading reported active through a hanging selection")
	}
	if !IsBlockActive(s, document.Paragraph) {
		t.Fatalf("expected paragraph active")
	}

	s = stateAt(t, doc, rng(pt(0, 0, 0), pt(1, 1, 0)))
	if !IsBlockActive(s, document.HeadingOne) {
		t.Fatalf("expected heading active once the selection enters it")
	}
}

func TestIsBlockActive_ListContainerAncestor(t *testing.T) {
	doc := document.NewDocument(document.NewBlock(document.BulletedList, item("a")))
	s := stateAt(t, doc, document.Collapsed(pt(0, 0, 0, 0)))
	if !IsBlockActive(s, document.BulletedList) || !IsBlockActive(s, document.ListItem) {
		t.Fatalf("expected list and list-item active")
	}
	if IsBlockActive(Deselect(s), document.BulletedList) {
		t.Fatalf("expected nothing active without a selection")
	}
}

func TestMutations_NeverEmptyTheDocument(t *testing.T) {
	doc := document.NewDocument(
		document.NewBlock(document.BulletedList, item("a"), item("b")),
		para(txt("c")),
	)
	s := stateAt(t, doc, document.Collapsed(pt(0, 0, 0, 0)))

	steps := []func(State) (State, error){
		SelectAll,
		toggleMark(document.Italic),
		toggleBlock(document.NumberedList),
		SelectAll,
		DeleteFragment,
		DeleteBackward,
		DeleteBackward,
		DeleteForward,
		toggleBlock(document.HeadingOne),
		DeleteBackward,
		insert("z"),
		SelectAll,
		DeleteBackward,
	}
	for i, step := range steps {
		s = apply(t, s, step)
		if len(s.Doc.Children) < 1 {
			t.Fatalf("step %d emptied the document", i)
		}
	}
	assertDoc(t, s.Doc, document.New())
}
