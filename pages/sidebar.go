package pages

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DefaultSidebarTitle is shown above the page list.
const DefaultSidebarTitle = "Notion Clone"

type item struct{ page Page }

func (i item) Title() string       { return i.page.Title }
func (i item) Description() string { return "" }
func (i item) FilterValue() string { return i.page.Title }

type KeyMap struct {
	MoveUp   key.Binding
	MoveDown key.Binding
	Add      key.Binding
}

// ShortHelp implements help.KeyMap.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.MoveUp, km.MoveDown, km.Add}
}

// FullHelp implements help.KeyMap.
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{km.ShortHelp()}
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		MoveUp:   key.NewBinding(key.WithKeys("alt+up", "K"), key.WithHelp("alt+↑", "move page up")),
		MoveDown: key.NewBinding(key.WithKeys("alt+down", "J"), key.WithHelp("alt+↓", "move page down")),
		Add:      key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "new page")),
	}
}

// Sidebar is a Bubble Tea model listing the pages of a List. It edits the
// List in place.
type Sidebar struct {
	pages *List
	list  list.Model
	keys  KeyMap
	style lipgloss.Style
}

func NewSidebar(pages *List, title string) Sidebar {
	if title == "" {
		title = DefaultSidebarTitle
	}
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	d.SetSpacing(0)

	l := list.New(toItems(pages), d, 0, 0)
	l.Title = title
	l.SetFilteringEnabled(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	// The host owns quitting.
	l.KeyMap.Quit.SetEnabled(false)
	l.KeyMap.ForceQuit.SetEnabled(false)

	return Sidebar{
		pages: pages,
		list:  l,
		keys:  DefaultKeyMap(),
		style: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderRight(true).
			BorderForeground(lipgloss.Color("236")),
	}
}

func toItems(pages *List) []list.Item {
	out := make([]list.Item, 0, pages.Len())
	for _, p := range pages.Pages() {
		out = append(out, item{page: p})
	}
	return out
}

func (s Sidebar) Init() tea.Cmd { return nil }

// SetSize sets the outer size including the right border.
func (s Sidebar) SetSize(width, height int) Sidebar {
	s.list.SetSize(max(width-s.style.GetHorizontalFrameSize(), 0), max(height, 0))
	return s
}

func (s Sidebar) KeyMap() KeyMap { return s.keys }

// Selected returns the highlighted page.
func (s Sidebar) Selected() (Page, bool) {
	it, ok := s.list.SelectedItem().(item)
	if !ok {
		return Page{}, false
	}
	return it.page, true
}

func (s Sidebar) Update(msg tea.Msg) (Sidebar, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, s.keys.MoveUp):
			return s.shift(-1)
		case key.Matches(msg, s.keys.MoveDown):
			return s.shift(1)
		case key.Matches(msg, s.keys.Add):
			p := s.pages.Add()
			cmd := s.list.InsertItem(s.pages.Len()-1, item{page: p})
			s.list.Select(s.pages.Len() - 1)
			return s, cmd
		}
	}
	var cmd tea.Cmd
	s.list, cmd = s.list.Update(msg)
	return s, cmd
}

// shift swaps the selected page with its neighbour at offset d.
func (s Sidebar) shift(d int) (Sidebar, tea.Cmd) {
	cur, ok := s.Selected()
	if !ok {
		return s, nil
	}
	over, ok := s.pages.At(s.list.Index() + d)
	if !ok || !s.pages.Reorder(cur.ID, over.ID) {
		return s, nil
	}
	cmd := s.list.SetItems(toItems(s.pages))
	s.list.Select(s.pages.Index(cur.ID))
	return s, cmd
}

func (s Sidebar) View() string {
	return s.style.Render(s.list.View())
}
