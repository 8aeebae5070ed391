package message

import (
	"image/color"

	"github.com/charmbracelet/lipgloss/v2"

	"quire/tui/theme"
)

type Type int

const (
	Success Type = iota
	Error
	Prompt
	PromptError
)

var msgColours = map[Type]color.Color{
	Success:     lipgloss.NoColor{},
	Error:       theme.ColourError,
	Prompt:      lipgloss.NoColor{},
	PromptError: theme.ColourError,
}

func (m Type) Colour() color.Color {
	return msgColours[m]
}

// StatusBarMsg is a message shown in the general column of the
// status bar
type StatusBarMsg struct {
	Content string
	Type    Type
}

var StatusBar = struct {
	RemovePromptDirContent, RemovePrompt, RenamePrompt,
	AddNotePrompt, AddDirPrompt, FileWritten, UnboundKey string
}{
	RemovePromptDirContent: "Delete `%s` and all of its content? [y(es),n(o)]",
	RemovePrompt:           "Delete `%s`? [y(es),n(o)]",
	RenamePrompt:           "Rename `%s` to: ",
	AddNotePrompt:          "New note: ",
	AddDirPrompt:           "New directory: ",
	FileWritten:            "\"%s\" %dL, %dB written",
	UnboundKey:             "Nothing bound to %s",
}

var Response = struct {
	Yes, No string
}{
	Yes: "y",
	No:  "n",
}
