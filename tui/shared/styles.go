package shared

import (
	"github.com/charmbracelet/lipgloss/v2"

	"quire/tui/theme"
)

type Styles struct {
	Base,
	Title,
	Indent,
	Toggle,
	Selected lipgloss.Style

	ToggleWidth int
}

func DirTreeStyle() Styles {
	var s Styles
	s.ToggleWidth = 2

	s.Base = lipgloss.NewStyle().
		Foreground(lipgloss.NoColor{})

	s.Title = s.Base.
		Foreground(theme.ColourBorder).
		Bold(true)

	s.Indent = s.Base.Foreground(theme.ColourBorder)

	s.Toggle = lipgloss.NewStyle().
		Width(s.ToggleWidth).
		Foreground(theme.ColourBorder)

	s.Selected = s.Base.
		Background(theme.ColourBgSelected).
		Bold(true)
	return s
}

func EditorStyle() (lineNumber, cursor, selection lipgloss.Style) {
	lineNumber = lipgloss.NewStyle().
		Foreground(theme.ColourLineNumber).
		PaddingRight(1)

	cursor = lipgloss.NewStyle().Reverse(true)

	selection = lipgloss.NewStyle().
		Background(theme.ColourSelection)

	return lineNumber, cursor, selection
}
