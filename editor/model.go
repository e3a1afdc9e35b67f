package editor

import (
	"reflect"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/leaflet/document"
)

// Model is a Bubble Tea component that renders a formatting toolbar above a
// scrollable view of one document and routes input into a Session.
type Model struct {
	cfg  Config
	sess *Session

	focused bool

	width, height int
	viewport      viewport.Model

	layout  docLayout
	buttons []buttonSpan

	lastVersion uint64

	mouseAnchor   document.Point
	mouseDragging bool
}

func New(cfg Config) Model {
	cfg.KeyMap = normalizeKeyMap(cfg.KeyMap)
	if reflect.DeepEqual(cfg.Style, Style{}) {
		cfg.Style = DefaultStyle()
	}

	sess := cfg.Session
	if sess == nil {
		sess = NewSession(cfg.Document, SessionOptions{History: cfg.History, Logger: cfg.Logger})
	}

	m := Model{
		cfg:      cfg,
		sess:     sess,
		focused:  true,
		viewport: viewport.New(0, 0),
	}
	// The editor handles its own arrow keys; the viewport only scrolls.
	m.viewport.KeyMap = viewport.KeyMap{}
	m.lastVersion = sess.Version()
	m.rebuildContent()
	return m
}

func (m Model) Session() *Session { return m.sess }

func (m Model) Init() tea.Cmd { return nil }

// SetSize sets the outer size. The toolbar takes its rows from height.
func (m Model) SetSize(width, height int) Model {
	m.width = max(width, 0)
	m.height = max(height, 0)
	m.viewport.Width = m.width
	m.viewport.Height = max(m.height-m.toolbarHeight(), 0)

	m.rebuildContent()
	m.followCursor()
	return m
}

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.rebuildContent()
		m.followCursor()
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.mouseDragging = false
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		m, cmd = m.updateKey(msg)
		if m.syncFromSession() {
			m.followCursor()
		}
	case tea.MouseMsg:
		m, cmd = m.updateMouse(msg)
		m.syncFromSession()
	default:
		// Hosts may edit the Session directly between messages.
		if m.syncFromSession() {
			m.followCursor()
		}
	}
	return m, cmd
}

func (m Model) View() string {
	if m.cfg.HideToolbar {
		return m.viewport.View()
	}
	return m.renderToolbar() + "\n" + m.viewport.View()
}

// syncFromSession re-renders after a version change and notifies OnChange.
func (m *Model) syncFromSession() bool {
	if m.sess == nil {
		return false
	}
	ver := m.sess.Version()
	if ver == m.lastVersion {
		return false
	}
	m.lastVersion = ver
	m.rebuildContent()
	if m.cfg.OnChange != nil {
		m.cfg.OnChange(buildChangeEvent(m.sess))
	}
	return true
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}

func (m *Model) followCursor() {
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h <= 0 {
		return
	}
	row := m.layout.cursorRow
	y := m.viewport.YOffset
	if row < y {
		m.viewport.SetYOffset(row)
		return
	}
	if row >= y+h {
		m.viewport.SetYOffset(row - h + 1)
	}
}
