// Package event defines the input the engine consumes. Every event is
// consumed by exactly one dispatch.
package event

import (
	"fmt"

	"quire/app/data"
)

// Event is one of the types in this package.
type Event interface {
	isEvent()
	String() string
}

// KeyEvent is a single key press
type KeyEvent struct {
	Key Key
}

// Storage selects where an opened notebook is kept
type Storage int

const (
	Instant Storage = iota
	File
)

// OpenNotebook opens the notebook from the entry screen.
// Path is only used by File storage.
type OpenNotebook struct {
	Storage Storage
	Path    string
}

type SelectNote struct{ Note data.Note }

type SelectDirectory struct{ Directory data.Directory }

// OpenNote opens the selected note in the editor
type OpenNote struct{}

// EditNote switches from viewing to editing the open note
type EditNote struct{}

type BrowseNoteTree struct{}

type UpdateNoteContent struct{ Content string }

type OpenDirectory struct{ ID string }

type CloseDirectory struct{ ID string }

type RenameNote struct{ Name string }

type RenameDirectory struct{ Name string }

type RemoveNote struct{}

type RemoveDirectory struct{}

type AddNote struct{ Name string }

type AddDirectory struct{ Name string }

type ShowActionsDialog struct{}

type CloseActionsDialog struct{}

func (KeyEvent) isEvent() {}
func (OpenNotebook) isEvent() {}
func (SelectNote) isEvent() {}
func (SelectDirectory) isEvent() {}
func (OpenNote) isEvent() {}
func (EditNote) isEvent() {}
func (BrowseNoteTree) isEvent() {}
func (UpdateNoteContent) isEvent() {}
func (OpenDirectory) isEvent() {}
func (CloseDirectory) isEvent() {}
func (RenameNote) isEvent() {}
func (RenameDirectory) isEvent() {}
func (RemoveNote) isEvent() {}
func (RemoveDirectory) isEvent() {}
func (AddNote) isEvent() {}
func (AddDirectory) isEvent() {}
func (ShowActionsDialog) isEvent() {}
func (CloseActionsDialog) isEvent() {}

func (e KeyEvent) String() string { return "key " + e.Key.String() }
func (e OpenNotebook) String() string { return "open notebook" }
func (e SelectNote) String() string { return "select note " + e.Note.ID }
func (e SelectDirectory) String() string { return "select directory " + e.Directory.ID }
func (OpenNote) String() string { return "open note" }
func (EditNote) String() string { return "edit note" }
func (BrowseNoteTree) String() string { return "browse note tree" }
func (UpdateNoteContent) String() string { return "update note content" }
func (e OpenDirectory) String() string { return "open directory " + e.ID }
func (e CloseDirectory) String() string { return "close directory " + e.ID }
func (e RenameNote) String() string { return fmt.Sprintf("rename note to %q", e.Name) }
func (e RenameDirectory) String() string { return fmt.Sprintf("rename directory to %q", e.Name) }
func (RemoveNote) String() string { return "remove note" }
func (RemoveDirectory) String() string { return "remove directory" }
func (e AddNote) String() string { return fmt.Sprintf("add note %q", e.Name) }
func (e AddDirectory) String() string { return fmt.Sprintf("add directory %q", e.Name) }
func (ShowActionsDialog) String() string { return "show actions dialog" }
func (CloseActionsDialog) String() string { return "close actions dialog" }

// Press is shorthand for a KeyEvent
func Press(k Key) KeyEvent { return KeyEvent{Key: k} }
