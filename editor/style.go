package editor

import "github.com/charmbracelet/lipgloss"

// Style controls the editor's rendering.
type Style struct {
	Paragraph lipgloss.Style
	Heading   lipgloss.Style
	ListItem  lipgloss.Style
	Bullet    lipgloss.Style

	Strong   lipgloss.Style
	Emphasis lipgloss.Style

	Placeholder lipgloss.Style
	Selection   lipgloss.Style
	Cursor      lipgloss.Style

	Toolbar         lipgloss.Style
	ToolbarButton   lipgloss.Style
	ToolbarActive   lipgloss.Style
	ToolbarInactive lipgloss.Style
}

func DefaultStyle() Style {
	muted := lipgloss.Color("245")
	return Style{
		Paragraph: lipgloss.NewStyle(),
		Heading:   lipgloss.NewStyle().Bold(true).Underline(true),
		ListItem:  lipgloss.NewStyle(),
		Bullet:    lipgloss.NewStyle().Foreground(muted),

		Strong:   lipgloss.NewStyle().Bold(true),
		Emphasis: lipgloss.NewStyle().Italic(true),

		Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Selection:   lipgloss.NewStyle().Background(lipgloss.Color("237")),
		Cursor:      lipgloss.NewStyle().Reverse(true),

		Toolbar:         lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderBottom(true).BorderForeground(lipgloss.Color("236")),
		ToolbarButton:   lipgloss.NewStyle().Padding(0, 1),
		ToolbarActive:   lipgloss.NewStyle().Background(lipgloss.Color("236")).Foreground(lipgloss.Color("252")),
		ToolbarInactive: lipgloss.NewStyle().Foreground(muted),
	}
}
