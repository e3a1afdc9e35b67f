package editor

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/leaflet/document"
)

func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func motion(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft}
}

func release(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}
}

func TestMouse_ClickPlacesCaret(t *testing.T) {
	m := New(Config{
		Document:    document.NewDocument(para("hello"), para("ab")),
		HideToolbar: true,
	}).SetSize(20, 5)

	m, _ = m.Update(press(2, 0))
	m, _ = m.Update(release(2, 0))
	assertCaret(t, m.Session(), pt(2, 0, 0))

	// Past the end of a row lands at the end of the block.
	m, _ = m.Update(press(10, 2))
	m, _ = m.Update(release(10, 2))
	assertCaret(t, m.Session(), pt(2, 1, 0))

	// The spacer row between blocks resolves to the block above.
	m, _ = m.Update(press(1, 1))
	assertCaret(t, m.Session(), pt(5, 0, 0))
}

func TestMouse_DragSelects(t *testing.T) {
	m := New(Config{
		Document:    document.NewDocument(para("hello"), para("ab")),
		HideToolbar: true,
	}).SetSize(20, 5)

	m, _ = m.Update(press(1, 0))
	m, _ = m.Update(motion(1, 2))
	m, _ = m.Update(release(1, 2))
	if got, want := m.Session().SelectedText(), "ello\na"; got != want {
		t.Fatalf("selected: got %q, want %q", got, want)
	}

	// Motion after release does not extend.
	m, _ = m.Update(motion(0, 0))
	if got, want := m.Session().SelectedText(), "ello\na"; got != want {
		t.Fatalf("selected after release: got %q, want %q", got, want)
	}
}

func TestMouse_ShiftClickExtends(t *testing.T) {
	m := New(Config{
		Document:    document.NewDocument(para("hello")),
		HideToolbar: true,
	}).SetSize(20, 3)

	m, _ = m.Update(press(1, 0))
	m, _ = m.Update(release(1, 0))
	msg := press(4, 0)
	msg.Shift = true
	m, _ = m.Update(msg)
	if got := m.Session().SelectedText(); got != "ell" {
		t.Fatalf("selected: got %q, want %q", got, "ell")
	}
}

func TestMouse_ToolbarClickTogglesFormat(t *testing.T) {
	m := New(Config{Document: document.NewDocument(para("ab"))}).SetSize(60, 6)

	// " H1 " occupies the first four cells.
	m, _ = m.Update(press(1, 0))
	if !m.Session().IsBlockActive(document.HeadingOne) {
		t.Fatalf("heading not active after toolbar click")
	}
	m, _ = m.Update(press(1, 0))
	if m.Session().IsBlockActive(document.HeadingOne) {
		t.Fatalf("heading still active after second toolbar click")
	}

	// The border row under the buttons is inert.
	v := m.Session().Version()
	m, _ = m.Update(press(1, 1))
	if m.Session().Version() != v {
		t.Fatalf("border click changed the session")
	}
}
