// Package entry is the start screen that picks where the notebook
// is stored.
package entry

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"quire/app"
	"quire/app/event"
	"quire/tui/theme"
)

type choice struct {
	storage     event.Storage
	label, hint string
}

var choices = []choice{
	{event.Instant, "Instant notebook", "kept in memory, gone on exit"},
	{event.File, "Notebook file", "stored in a SQLite database"},
}

type Entry struct {
	Width, Height int

	// Path of the database file used for file storage
	Path string

	selected int
}

// New preselects the storage of the config
func New(storage event.Storage, path string) *Entry {
	e := &Entry{Path: path}
	for i, c := range choices {
		if c.storage == storage {
			e.selected = i
		}
	}
	return e
}

func (e *Entry) Next() { e.selected = min(e.selected+1, len(choices)-1) }
func (e *Entry) Prev() { e.selected = max(e.selected-1, 0) }

// Open returns the event opening the selected notebook
func (e *Entry) Open() event.OpenNotebook {
	ev := event.OpenNotebook{Storage: choices[e.selected].storage}
	if ev.Storage == event.File {
		ev.Path = e.Path
	}
	return ev
}

func (e *Entry) Content() string {
	titleStyle := lipgloss.NewStyle().
		Foreground(theme.ColourBorderFocused).
		Bold(true)
	hintStyle := lipgloss.NewStyle().Foreground(theme.ColourLineNumber)
	selectedStyle := lipgloss.NewStyle().
		Background(theme.ColourBgSelected).
		Bold(true)

	lines := []string{
		titleStyle.Render(app.Name()) + hintStyle.Render(" "+app.FullVersion()),
		"",
	}

	for i, c := range choices {
		label := "  " + c.label
		if i == e.selected {
			label = selectedStyle.Render("> " + c.label)
		}
		lines = append(lines, label, hintStyle.Render("    "+c.hint))
	}

	lines = append(lines, "", hintStyle.Render("j/k select  enter open  ctrl+c quit"))

	box := lipgloss.NewStyle().
		Border(theme.BorderStyle).
		BorderForeground(theme.ColourBorder).
		Padding(1, 3).
		Render(strings.Join(lines, "\n"))

	if e.Width == 0 || e.Height == 0 {
		return box
	}

	return lipgloss.Place(e.Width, e.Height, lipgloss.Center, lipgloss.Center, box)
}

func (e *Entry) View() tea.View {
	var view tea.View
	view.SetContent(e.Content())
	return view
}
