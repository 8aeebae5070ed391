package theme

import (
	"os"

	"github.com/charmbracelet/lipgloss/v2"
	bl "github.com/winder/bubblelayout"
	"golang.org/x/term"
)

var (
	ColourBorder        = lipgloss.Color("#424B5D")
	ColourBorderFocused = lipgloss.Color("#69c8dc")
	ColourBgSelected    = lipgloss.Color("#3A3F4B")
	ColourLineNumber    = lipgloss.Color("#5C6370")
	ColourSelection     = lipgloss.Color("#4B5263")
	ColourError         = lipgloss.Color("#d75a7d")
	ColourFg            = lipgloss.NoColor{}
	BorderStyle         = lipgloss.RoundedBorder()
)

// BaseColumnLayout provides the basic layout style for a column
func BaseColumnLayout(size bl.Size, focused bool) lipgloss.Style {
	borderColour := ColourBorder
	if focused {
		borderColour = ColourBorderFocused
	}

	return lipgloss.NewStyle().
		Border(BorderStyle).
		BorderForeground(borderColour).
		Foreground(ColourFg).
		Width(max(size.Width-2, 0)).
		Height(max(size.Height-2, 0))
}

// TerminalSize determines the current terminal size, falling back to
// 80x24. One line is subtracted from the height because otherwise the
// upper part of the ui gets truncated.
func TerminalSize() (int, int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		width, height = 80, 24
	}
	return width, height - 1
}
