package main

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/iw2rmb/leaflet/document"
	"github.com/iw2rmb/leaflet/editor"
	"github.com/iw2rmb/leaflet/internal/config"
	"github.com/iw2rmb/leaflet/pages"
	"github.com/iw2rmb/leaflet/render"
)

const sidebarWidth = 28

type focusArea uint8

const (
	focusEditor focusArea = iota
	focusSidebar
)

type appKeys struct {
	Quit          key.Binding
	SwitchFocus   key.Binding
	ToggleSidebar key.Binding
	CopyMarkdown  key.Binding
	Help          key.Binding
}

func defaultAppKeys() appKeys {
	return appKeys{
		Quit:          key.NewBinding(key.WithKeys("ctrl+q"), key.WithHelp("ctrl+q", "quit")),
		SwitchFocus:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "sidebar/editor")),
		ToggleSidebar: key.NewBinding(key.WithKeys("ctrl+\\"), key.WithHelp("ctrl+\\", "toggle sidebar")),
		CopyMarkdown:  key.NewBinding(key.WithKeys("alt+m"), key.WithHelp("alt+m", "copy as markdown")),
		Help:          key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("ctrl+g", "more keys")),
	}
}

// helpKeys shows the app bindings next to those of the focused pane.
type helpKeys struct {
	app  appKeys
	pane help.KeyMap
}

func (h helpKeys) ShortHelp() []key.Binding {
	out := []key.Binding{h.app.Quit, h.app.SwitchFocus, h.app.Help}
	return append(out, h.pane.ShortHelp()...)
}

func (h helpKeys) FullHelp() [][]key.Binding {
	out := [][]key.Binding{{h.app.Quit, h.app.SwitchFocus, h.app.ToggleSidebar, h.app.CopyMarkdown, h.app.Help}}
	return append(out, h.pane.FullHelp()...)
}

// memClipboard keeps clipboard text inside the process.
type memClipboard struct{ text string }

func (c *memClipboard) ReadText() (string, error) { return c.text, nil }
func (c *memClipboard) WriteText(s string) error  { c.text = s; return nil }

type app struct {
	cfg config.Config
	log *zap.Logger

	pages    *pages.List
	sidebar  pages.Sidebar
	sessions map[string]*editor.Session
	pageID   string
	editor   editor.Model

	clip *memClipboard
	keys appKeys
	help help.Model

	focus       focusArea
	sidebarOpen bool
	status      string

	width, height int
}

func newApp(cfg config.Config, log *zap.Logger) (app, error) {
	list, err := pages.NewList(cfg.Pages)
	if err != nil {
		return app{}, err
	}
	a := app{
		cfg:         cfg,
		log:         log,
		pages:       list,
		sidebar:     pages.NewSidebar(list, ""),
		sessions:    map[string]*editor.Session{},
		clip:        &memClipboard{},
		keys:        defaultAppKeys(),
		help:        help.New(),
		sidebarOpen: true,
	}
	if p, ok := a.sidebar.Selected(); ok {
		a.open(p)
	}
	return a, nil
}

// welcome is the first page's initial content.
func welcome() *document.Document {
	return document.NewDocument(
		document.NewBlock(document.HeadingOne, document.NewText("Welcome to Notion Clone")),
		document.NewBlock(document.Paragraph,
			document.NewText("Select a page from the sidebar or create a new one to get started."),
		),
	)
}

func (a *app) session(p pages.Page) *editor.Session {
	if s, ok := a.sessions[p.ID]; ok {
		return s
	}
	var doc *document.Document
	if len(a.sessions) == 0 {
		doc = welcome()
	}
	s := editor.NewSession(doc, editor.SessionOptions{
		History: a.cfg.Editor.History(),
		Logger:  a.log.With(zap.String("page", p.ID)),
	})
	a.sessions[p.ID] = s
	return s
}

// open points the editor at page p, keeping each page's session.
func (a *app) open(p pages.Page) {
	if a.pageID == p.ID {
		return
	}
	a.pageID = p.ID
	pageLog := a.log.With(zap.String("page", p.ID))
	a.editor = editor.New(editor.Config{
		Session:     a.session(p),
		Placeholder: a.cfg.Editor.Placeholder,
		ReadOnly:    a.cfg.Editor.ReadOnly,
		HideToolbar: a.cfg.Editor.HideToolbar,
		Clipboard:   a.clip,
		OnChange: func(ev editor.ChangeEvent) {
			pageLog.Debug("page changed",
				zap.Uint64("version", ev.Version),
				zap.String("op", ev.Change.Op),
				zap.Bool("document_changed", ev.Change.DocumentChanged),
			)
		},
	})
	if a.focus == focusSidebar {
		a.editor = a.editor.Blur()
	}
	a.resize()
	a.log.Debug("page opened", zap.String("page", p.ID), zap.String("title", p.Title))
}

func (a app) Init() tea.Cmd { return nil }

func (a app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.resize()
		return a, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, a.keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, a.keys.SwitchFocus):
			a.setFocus(1 - a.focus)
			return a, nil
		case key.Matches(msg, a.keys.ToggleSidebar):
			a.sidebarOpen = !a.sidebarOpen
			if !a.sidebarOpen {
				a.setFocus(focusEditor)
			}
			a.resize()
			return a, nil
		case key.Matches(msg, a.keys.CopyMarkdown):
			a.copyMarkdown()
			return a, nil
		case key.Matches(msg, a.keys.Help):
			a.help.ShowAll = !a.help.ShowAll
			a.resize()
			return a, nil
		}
		a.status = ""
		if a.focus == focusSidebar {
			var cmd tea.Cmd
			a.sidebar, cmd = a.sidebar.Update(msg)
			if p, ok := a.sidebar.Selected(); ok {
				a.open(p)
			}
			return a, cmd
		}

	case tea.MouseMsg:
		off := a.editorX()
		if msg.X < off {
			return a, nil
		}
		msg.X -= off
		msg.Y -= lipgloss.Height(a.header())
		var cmd tea.Cmd
		a.editor, cmd = a.editor.Update(msg)
		return a, cmd
	}

	var cmd tea.Cmd
	a.editor, cmd = a.editor.Update(msg)
	return a, cmd
}

func (a *app) setFocus(f focusArea) {
	if f == focusSidebar && !a.sidebarOpen {
		return
	}
	a.focus = f
	if f == focusSidebar {
		a.editor = a.editor.Blur()
	} else {
		a.editor = a.editor.Focus()
	}
}

func (a *app) copyMarkdown() {
	md, err := render.Markdown(a.editor.Session().Document())
	if err != nil {
		a.log.Warn("markdown export failed", zap.Error(err))
		a.status = "markdown export failed"
		return
	}
	_ = a.clip.WriteText(md)
	a.status = fmt.Sprintf("copied %d bytes of markdown", len(md))
}

func (a app) editorX() int {
	if !a.sidebarOpen {
		return 0
	}
	return sidebarWidth
}

func (a *app) resize() {
	a.help.Width = a.width
	body := max(a.height-lipgloss.Height(a.footer()), 0)
	a.sidebar = a.sidebar.SetSize(sidebarWidth, body)
	a.editor = a.editor.SetSize(max(a.width-a.editorX(), 0), max(body-lipgloss.Height(a.header()), 0))
}

func (a app) header() string {
	title := pages.DefaultTitle
	if i := a.pages.Index(a.pageID); i >= 0 {
		p, _ := a.pages.At(i)
		if p.Title != "" {
			title = p.Title
		}
	}
	return lipgloss.NewStyle().Bold(true).Padding(0, 1).Render(title)
}

func (a app) footer() string {
	var pane help.KeyMap = editor.DefaultKeyMap()
	if a.focus == focusSidebar {
		pane = a.sidebar.KeyMap()
	}
	line := a.help.View(helpKeys{app: a.keys, pane: pane})
	if a.status != "" {
		line = a.status + "  " + line
	}
	return line
}

func (a app) View() string {
	body := lipgloss.JoinVertical(lipgloss.Left, a.header(), a.editor.View())
	if a.sidebarOpen {
		body = lipgloss.JoinHorizontal(lipgloss.Top, a.sidebar.View(), body)
	}
	return lipgloss.JoinVertical(lipgloss.Left, body, a.footer())
}
