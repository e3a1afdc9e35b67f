package editor

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/leaflet/document"
)

// updateMouse expects coordinates relative to the model's top-left corner.
func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	top := m.toolbarHeight()

	var cmd tea.Cmd
	if isWheelMouse(msg) {
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	if !m.focused || m.sess == nil {
		return m, cmd
	}

	switch msg.Action { //nolint:exhaustive
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, cmd
		}
		if msg.Y < top {
			if msg.Y == 0 {
				if a, ok := m.buttonAt(msg.X); ok {
					m.runAction(a)
				}
			}
			return m, cmd
		}
		if !m.mouseInBounds(msg.X, msg.Y-top) {
			return m, cmd
		}

		p, ok := m.screenToPoint(msg.X, msg.Y-top)
		if !ok {
			return m, cmd
		}
		anchor := p
		if msg.Shift {
			if r, ok := selectionRange(m.sess.Selection()); ok {
				anchor = r.Anchor
			}
		}
		m.mouseAnchor = anchor
		m.sess.Select(document.Range{Anchor: anchor, Focus: p})
		m.mouseDragging = true

	case tea.MouseActionMotion:
		if !m.mouseDragging {
			return m, cmd
		}
		x, y := m.clampMouseToBounds(msg.X, msg.Y-top)
		if p, ok := m.screenToPoint(x, y); ok {
			m.sess.Select(document.Range{Anchor: m.mouseAnchor, Focus: p})
		}

	case tea.MouseActionRelease:
		m.mouseDragging = false
	}

	return m, cmd
}

func (m Model) screenToPoint(x, y int) (document.Point, bool) {
	return m.layout.pointAt(m.sess.Document(), x, y+m.viewport.YOffset)
}

func isWheelMouse(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionPress &&
		(msg.Button == tea.MouseButtonWheelUp ||
			msg.Button == tea.MouseButtonWheelDown ||
			msg.Button == tea.MouseButtonWheelLeft ||
			msg.Button == tea.MouseButtonWheelRight)
}

func (m Model) mouseInBounds(x, y int) bool {
	if m.viewport.Width <= 0 || m.viewport.Height <= 0 {
		return false
	}
	return x >= 0 && x < m.viewport.Width && y >= 0 && y < m.viewport.Height
}

func (m Model) clampMouseToBounds(x, y int) (int, int) {
	if m.viewport.Width > 0 {
		x = min(max(x, 0), m.viewport.Width-1)
	}
	if m.viewport.Height > 0 {
		y = min(max(y, 0), m.viewport.Height-1)
	}
	return x, y
}
