package editor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/leaflet/document"
)

type toolbarAction uint8

const (
	actionHeading toolbarAction = iota
	actionBold
	actionItalic
	actionBulletList
	actionNumberList
)

type toolbarButton struct {
	label  string
	action toolbarAction
}

var toolbarButtons = []toolbarButton{
	{label: "H1", action: actionHeading},
	{label: "B", action: actionBold},
	{label: "I", action: actionItalic},
	{label: "• List", action: actionBulletList},
	{label: "1. List", action: actionNumberList},
}

// buttonSpan is the half-open cell range [x0, x1) a toolbar button covers.
type buttonSpan struct {
	x0, x1 int
	action toolbarAction
}

func (m *Model) actionActive(a toolbarAction) bool {
	switch a {
	case actionHeading:
		return m.sess.IsBlockActive(document.HeadingOne)
	case actionBold:
		return m.sess.IsMarkActive(document.Bold)
	case actionItalic:
		return m.sess.IsMarkActive(document.Italic)
	case actionBulletList:
		return m.sess.IsBlockActive(document.BulletedList)
	case actionNumberList:
		return m.sess.IsBlockActive(document.NumberedList)
	default:
		return false
	}
}

// runAction applies a toolbar action. It reports whether the session changed.
func (m *Model) runAction(a toolbarAction) bool {
	if m.cfg.ReadOnly {
		return false
	}
	switch a {
	case actionHeading:
		return m.sess.ToggleBlock(document.HeadingOne)
	case actionBold:
		return m.sess.ToggleMark(document.Bold)
	case actionItalic:
		return m.sess.ToggleMark(document.Italic)
	case actionBulletList:
		return m.sess.ToggleBlock(document.BulletedList)
	case actionNumberList:
		return m.sess.ToggleBlock(document.NumberedList)
	default:
		return false
	}
}

// renderToolbar draws the button row and records each button's span.
func (m *Model) renderToolbar() string {
	if m.cfg.HideToolbar {
		m.buttons = nil
		return ""
	}
	st := m.cfg.Style

	m.buttons = make([]buttonSpan, 0, len(toolbarButtons))
	parts := make([]string, 0, len(toolbarButtons))
	x := 0
	for _, b := range toolbarButtons {
		s := st.ToolbarButton
		if m.actionActive(b.action) {
			s = s.Inherit(st.ToolbarActive)
		} else {
			s = s.Inherit(st.ToolbarInactive)
		}
		out := s.Render(b.label)
		w := lipgloss.Width(out)
		m.buttons = append(m.buttons, buttonSpan{x0: x, x1: x + w, action: b.action})
		parts = append(parts, out)
		x += w
	}
	return st.Toolbar.Render(strings.Join(parts, ""))
}

func (m *Model) toolbarHeight() int {
	if m.cfg.HideToolbar {
		return 0
	}
	return lipgloss.Height(m.renderToolbar())
}

func (m *Model) buttonAt(x int) (toolbarAction, bool) {
	for _, b := range m.buttons {
		if x >= b.x0 && x < b.x1 {
			return b.action, true
		}
	}
	return 0, false
}

func (m *Model) renderContent() string {
	if m.sess == nil {
		return ""
	}
	ph := ""
	if m.sess.IsEmpty() {
		ph = m.cfg.placeholder()
	}
	m.layout = buildLayout(m.sess.State(), m.cfg.Style, m.viewport.Width, m.focused, ph)
	return m.layout.render(m.cfg.Style)
}
