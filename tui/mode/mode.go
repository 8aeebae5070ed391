package mode

import (
	"image/color"

	"github.com/charmbracelet/lipgloss/v2"

	"quire/app/state"
)

type Mode int

const (
	Entry Mode = iota
	Browse
	Dialog
	Normal
	Insert
	Visual
)

var modeName = map[Mode]string{
	Entry:  "e",
	Browse: "b",
	Dialog: "d",
	Normal: "n",
	Insert: "i",
	Visual: "v",
}

var fullName = map[Mode]string{
	Entry:  "",
	Browse: "-- BROWSE --",
	Dialog: "-- ACTIONS --",
	Normal: "-- NORMAL --",
	Insert: "-- INSERT --",
	Visual: "-- VISUAL --",
}

var colour = map[Mode]color.Color{
	Entry:  lipgloss.NoColor{},
	Browse: lipgloss.Color("#69c8dc"),
	Dialog: lipgloss.Color("#9e84b7"),
	Normal: lipgloss.NoColor{},
	Insert: lipgloss.Color("#7bb791"),
	Visual: lipgloss.Color("#b7b27b"),
}

func (m Mode) String() string {
	return modeName[m]
}

func (m Mode) FullString() string {
	return fullName[m]
}

func (m Mode) Colour() color.Color {
	return colour[m]
}

// FromState returns the mode shown for s
func FromState(s state.State) Mode {
	notebook, ok := s.(*state.NotebookState)
	if !ok {
		return Entry
	}

	switch notebook.Inner.(type) {
	case state.NoteMoreActions, state.DirectoryMoreActions:
		return Dialog
	case state.EditingNormalMode:
		return Normal
	case state.EditingInsertMode:
		return Insert
	case state.EditingVisualMode:
		return Visual
	default:
		return Browse
	}
}
