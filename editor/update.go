package editor

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/leaflet/document"
	"github.com/iw2rmb/leaflet/transform"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused || m.sess == nil {
		return m, nil
	}

	// Paste events insert literal text and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		if !m.cfg.ReadOnly {
			m.sess.InsertText(normalizeNewlines(string(msg.Runes)))
		}
		return m, nil
	}

	km := m.cfg.KeyMap
	s := m.sess
	move := func(unit transform.MoveUnit, dir transform.MoveDir, extend bool) {
		s.Move(transform.Move{Unit: unit, Dir: dir, Extend: extend})
	}

	switch {
	case key.Matches(msg, km.Left):
		move(transform.MoveGrapheme, transform.DirLeft, false)
	case key.Matches(msg, km.Right):
		move(transform.MoveGrapheme, transform.DirRight, false)
	case key.Matches(msg, km.Up):
		move(transform.MoveGrapheme, transform.DirUp, false)
	case key.Matches(msg, km.Down):
		move(transform.MoveGrapheme, transform.DirDown, false)

	case key.Matches(msg, km.ShiftLeft):
		move(transform.MoveGrapheme, transform.DirLeft, true)
	case key.Matches(msg, km.ShiftRight):
		move(transform.MoveGrapheme, transform.DirRight, true)
	case key.Matches(msg, km.ShiftUp):
		move(transform.MoveGrapheme, transform.DirUp, true)
	case key.Matches(msg, km.ShiftDown):
		move(transform.MoveGrapheme, transform.DirDown, true)

	case key.Matches(msg, km.BlockUp):
		move(transform.MoveBlock, transform.DirLeft, false)
	case key.Matches(msg, km.BlockDown):
		move(transform.MoveBlock, transform.DirRight, false)
	case key.Matches(msg, km.Home):
		move(transform.MoveBlock, transform.DirHome, false)
	case key.Matches(msg, km.End):
		move(transform.MoveBlock, transform.DirEnd, false)
	case key.Matches(msg, km.DocStart):
		move(transform.MoveDoc, transform.DirHome, false)
	case key.Matches(msg, km.DocEnd):
		move(transform.MoveDoc, transform.DirEnd, false)
	case key.Matches(msg, km.SelectAll):
		s.SelectAll()

	case key.Matches(msg, km.Backspace):
		if !m.cfg.ReadOnly {
			s.DeleteBackward()
		}
	case key.Matches(msg, km.Delete):
		if !m.cfg.ReadOnly {
			s.DeleteForward()
		}
	case key.Matches(msg, km.Enter):
		if !m.cfg.ReadOnly {
			s.InsertBreak()
		}

	case key.Matches(msg, km.Bold):
		m.runAction(actionBold)
	case key.Matches(msg, km.Italic):
		m.runAction(actionItalic)
	case key.Matches(msg, km.Heading):
		m.runAction(actionHeading)
	case key.Matches(msg, km.BulletList):
		m.runAction(actionBulletList)
	case key.Matches(msg, km.NumberList):
		m.runAction(actionNumberList)

	case key.Matches(msg, km.Undo):
		if !m.cfg.ReadOnly {
			s.Undo()
		}
	case key.Matches(msg, km.Redo):
		if !m.cfg.ReadOnly {
			s.Redo()
		}

	case key.Matches(msg, km.Copy):
		m.copySelection()
	case key.Matches(msg, km.Cut):
		if !m.cfg.ReadOnly {
			m.cutSelection()
		} else {
			m.copySelection()
		}
	case key.Matches(msg, km.Paste):
		if !m.cfg.ReadOnly {
			m.pasteClipboard()
		}

	default:
		if m.cfg.ReadOnly {
			return m, nil
		}
		switch {
		case msg.Type == tea.KeySpace:
			s.InsertText(" ")
		case msg.Type == tea.KeyTab:
			s.InsertText("\t")
		case msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt:
			s.InsertText(string(msg.Runes))
		}
	}

	return m, nil
}

func (m Model) copySelection() {
	if m.cfg.Clipboard == nil || m.sess == nil {
		return
	}
	if s := m.sess.SelectedText(); s != "" {
		_ = m.cfg.Clipboard.WriteText(s)
	}
}

func (m Model) cutSelection() {
	if m.cfg.Clipboard == nil || m.sess == nil {
		return
	}
	s := m.sess.SelectedText()
	if s == "" {
		return
	}
	_ = m.cfg.Clipboard.WriteText(s)
	m.sess.DeleteSelection()
}

func (m Model) pasteClipboard() {
	if m.cfg.Clipboard == nil || m.sess == nil {
		return
	}
	s, err := m.cfg.Clipboard.ReadText()
	if err != nil || s == "" {
		return
	}
	m.sess.InsertText(normalizeNewlines(s))
}

func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// selectionRange returns the active range, or false when nothing is selected.
func selectionRange(sel document.Selection) (document.Range, bool) {
	if !sel.Active {
		return document.Range{}, false
	}
	return sel.Range, true
}
