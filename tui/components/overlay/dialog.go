package overlay

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"

	"quire/app/utils"
	"quire/tui/theme"
)

// Action is an entry of an actions dialog
type Action int

const (
	Rename Action = iota
	Remove
	AddNote
	AddDirectory
)

var actionKeys = map[Action]string{
	Rename:       "r",
	Remove:       "d",
	AddNote:      "n",
	AddDirectory: "a",
}

var actionLabels = map[Action]string{
	Rename:       "rename",
	Remove:       "delete",
	AddNote:      "new note",
	AddDirectory: "new directory",
}

func (a Action) Key() string    { return actionKeys[a] }
func (a Action) String() string { return actionLabels[a] }

const (
	dialogWidth = 32

	// screen row of the dialog's top border
	dialogTop = 2
)

// Dialog lists the actions available for the selected tree item
type Dialog struct {
	Title   string
	Actions []Action
}

func NoteDialog(name string) *Dialog {
	return &Dialog{
		Title:   name,
		Actions: []Action{Rename, Remove},
	}
}

func DirectoryDialog(name string) *Dialog {
	return &Dialog{
		Title:   name,
		Actions: []Action{AddNote, AddDirectory, Rename, Remove},
	}
}

// ActionFor returns the action bound to key
func (d *Dialog) ActionFor(key string) (Action, bool) {
	for _, a := range d.Actions {
		if a.Key() == key {
			return a, true
		}
	}
	return 0, false
}

func (d *Dialog) Width() int { return dialogWidth }

// Over draws the dialog horizontally centred near the top of screen
func (d *Dialog) Over(screen string, screenWidth int) string {
	x := screenWidth/2 - dialogWidth/2
	return Place(screen, d.String(), x, dialogTop)
}

func (d *Dialog) String() string {
	inner := dialogWidth - 4

	keyStyle := lipgloss.NewStyle().
		Foreground(theme.ColourBorderFocused).
		Bold(true)

	lines := []string{
		lipgloss.NewStyle().Bold(true).Render(utils.TruncateText(d.Title, inner)),
		"",
	}

	for _, a := range d.Actions {
		lines = append(lines, fmt.Sprintf("%s  %s", keyStyle.Render(a.Key()), a))
	}

	lines = append(lines, "", lipgloss.NewStyle().
		Foreground(theme.ColourLineNumber).
		Render("esc  close"))

	return lipgloss.NewStyle().
		Border(theme.BorderStyle).
		BorderForeground(theme.ColourBorderFocused).
		Padding(0, 1).
		Width(dialogWidth - 2).
		Render(strings.Join(lines, "\n"))
}
