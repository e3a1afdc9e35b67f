package render

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/leaflet/document"
)

func TestProject_BlockTypes(t *testing.T) {
	cases := []struct {
		node document.Node
		kind Kind
		tag  string
	}{
		{node: document.NewBlock(document.HeadingOne), kind: KindHeading, tag: "h1"},
		{node: document.NewBlock(document.BulletedList), kind: KindBulletedList, tag: "ul"},
		{node: document.NewBlock(document.NumberedList), kind: KindNumberedList, tag: "ol"},
		{node: document.NewBlock(document.ListItem), kind: KindListItem, tag: "li"},
		{node: document.NewBlock(document.Paragraph), kind: KindParagraph, tag: "p"},
		{node: document.NewBlock("callout"), kind: KindParagraph, tag: "p"},
		{node: document.NewBlock(""), kind: KindParagraph, tag: "p"},
		{node: document.New(), kind: KindParagraph, tag: "p"},
	}
	for _, tc := range cases {
		s := Project(tc.node)
		require.Equal(t, tc.kind, s.Kind)
		require.Equal(t, tc.tag, s.Tag)
	}
}

func TestProject_TextDecorationsNest(t *testing.T) {
	s := Project(document.NewMarkedText("x", document.Marks{Bold: true, Italic: true}))
	require.Equal(t, KindText, s.Kind)
	require.True(t, s.Strong)
	require.True(t, s.Emphasis)

	s = Project(document.NewText("x"))
	require.False(t, s.Strong || s.Emphasis)
}

func TestWriteHTML(t *testing.T) {
	doc := document.NewDocument(
		document.NewBlock(document.HeadingOne, document.NewMarkedText("Hello", document.Marks{Bold: true})),
		document.NewBlock(document.BulletedList,
			document.NewBlock(document.ListItem, document.NewMarkedText("a", document.Marks{Italic: true})),
		),
		document.NewBlock("callout", document.NewText("")),
		document.NewBlock(document.Paragraph, document.NewMarkedText("<b>", document.Marks{Bold: true, Italic: true})),
	)

	var buf bytes.Buffer
	require.NoError(t, WriteHTML(&buf, doc))
	want := `<h1 class="text-2xl font-bold mb-4"><span><strong>Hello</strong></span></h1>` +
		`<ul class="list-disc ml-6 mb-4"><li><span><em>a</em></span></li></ul>` +
		`<p class="mb-4"><span></span></p>` +
		`<p class="mb-4"><span><em><strong>&lt;b&gt;</strong></em></span></p>`
	require.Equal(t, want, buf.String())
}

func TestMarkdown(t *testing.T) {
	doc := document.NewDocument(
		document.NewBlock(document.HeadingOne, document.NewText("Title")),
		document.NewBlock(document.Paragraph,
			document.NewText("plain "),
			document.NewMarkedText("strong", document.Marks{Bold: true}),
		),
		document.NewBlock(document.BulletedList,
			document.NewBlock(document.ListItem, document.NewText("one")),
			document.NewBlock(document.ListItem, document.NewText("two")),
		),
		document.NewBlock(document.NumberedList,
			document.NewBlock(document.ListItem, document.NewText("first")),
		),
	)

	md, err := Markdown(doc)
	require.NoError(t, err)
	require.Contains(t, md, "# Title")
	require.Contains(t, md, "plain **strong**")
	require.Contains(t, md, "- one")
	require.Contains(t, md, "- two")
	require.Contains(t, md, "1. first")
}
