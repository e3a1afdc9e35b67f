package editor

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/leaflet/document"
	"github.com/iw2rmb/leaflet/history"
)

func altKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}, Alt: true}
}

func typeText(m Model, s string) Model {
	for _, r := range s {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestUpdate_TypingMovementAndDelete(t *testing.T) {
	m := New(Config{Document: document.NewDocument(para("ab"))})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("X")})
	assertText(t, m.Session(), "aXb")
	assertCaret(t, m.Session(), pt(2, 0, 0))

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	assertText(t, m.Session(), "ab")
	assertCaret(t, m.Session(), pt(1, 0, 0))

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	assertText(t, m.Session(), "a b")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assertText(t, m.Session(), "a \nb")
	assertCaret(t, m.Session(), pt(0, 1, 0))

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	assertText(t, m.Session(), "a b")
}

func TestUpdate_ReadOnly_IgnoresMutations(t *testing.T) {
	m := New(Config{
		Document: document.NewDocument(para("ab")),
		ReadOnly: true,
	})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	assertCaret(t, m.Session(), pt(1, 0, 0))

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("X")})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	m, _ = m.Update(altKey('1'))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlB})
	assertText(t, m.Session(), "ab")
	if m.Session().IsBlockActive(document.HeadingOne) {
		t.Fatalf("heading toggled in read-only mode")
	}
	if m.Session().CanUndo() {
		t.Fatalf("read-only edits reached history")
	}
}

func TestUpdate_FormattingShortcuts(t *testing.T) {
	m := New(Config{Document: document.NewDocument(para("Hello"))})

	m, _ = m.Update(altKey('a'))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlB})
	if !m.Session().IsMarkActive(document.Bold) {
		t.Fatalf("bold not active after ctrl+b")
	}
	m, _ = m.Update(altKey('i'))
	if !m.Session().IsMarkActive(document.Italic) {
		t.Fatalf("italic not active after alt+i")
	}

	m, _ = m.Update(altKey('1'))
	if !m.Session().IsBlockActive(document.HeadingOne) {
		t.Fatalf("heading not active after alt+1")
	}
	m, _ = m.Update(altKey('8'))
	if !m.Session().IsBlockActive(document.BulletedList) {
		t.Fatalf("bulleted list not active after alt+8")
	}
	m, _ = m.Update(altKey('7'))
	if !m.Session().IsBlockActive(document.NumberedList) || m.Session().IsBlockActive(document.BulletedList) {
		t.Fatalf("numbered list should replace the bulleted list")
	}
	assertText(t, m.Session(), "Hello")
}

func TestUpdate_PendingMarkAppliesToTypedText(t *testing.T) {
	m := New(Config{})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlB})
	m = typeText(m, "hi")

	blk := m.Session().Document().Children[0].(*document.Block)
	if len(blk.Children) != 1 {
		t.Fatalf("text nodes: got %d, want 1", len(blk.Children))
	}
	tx := blk.Children[0].(*document.Text)
	if tx.Text != "hi" || !tx.Marks.Bold {
		t.Fatalf("typed text: got %+v, want bold %q", tx, "hi")
	}
}

func TestUpdate_UndoRedo(t *testing.T) {
	m := New(Config{History: history.Options{MergeWindow: -1}})
	m = typeText(m, "ab")
	assertText(t, m.Session(), "ab")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlZ})
	assertText(t, m.Session(), "a")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlY})
	assertText(t, m.Session(), "ab")
}

func TestUpdate_UndoRevertsTypingBurst(t *testing.T) {
	m := New(Config{})
	m = typeText(m, "abc")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlZ})
	assertText(t, m.Session(), "")
}

func TestUpdate_Clipboard(t *testing.T) {
	cb := &memClipboard{}
	m := New(Config{
		Document:  document.NewDocument(para("one"), para("two")),
		Clipboard: cb,
	})

	m, _ = m.Update(altKey('a'))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cb.s != "one\ntwo" {
		t.Fatalf("copied: got %q, want %q", cb.s, "one\ntwo")
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlX})
	assertText(t, m.Session(), "")

	cb.s = "x\r\ny"
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlV})
	assertText(t, m.Session(), "x\ny")
	assertCaret(t, m.Session(), pt(1, 1, 0))
}

func TestUpdate_PasteEventInsertsLiteralText(t *testing.T) {
	m := New(Config{})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a\nb"), Paste: true})
	assertText(t, m.Session(), "a\nb")
}

func TestUpdate_BlurredIgnoresKeys(t *testing.T) {
	m := New(Config{Document: document.NewDocument(para("ab"))}).Blur()
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("X")})
	assertText(t, m.Session(), "ab")

	m = m.Focus()
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("X")})
	assertText(t, m.Session(), "Xab")
}

func TestUpdate_SelectAndTypeReplaces(t *testing.T) {
	m := New(Config{Document: document.NewDocument(para("abc"))})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftRight})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftRight})
	if got := m.Session().SelectedText(); got != "ab" {
		t.Fatalf("selected: got %q, want %q", got, "ab")
	}
	m = typeText(m, "Z")
	assertText(t, m.Session(), "Zc")
}
