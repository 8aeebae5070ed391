// Package transition defines what the engine reports back for every
// dispatched event. The front end interprets transitions and never
// feeds them back.
package transition

import (
	"quire/app/data"
	"quire/app/event"
)

type Transition interface {
	isTransition()
}

// Entry

type OpenNotebook struct {
	Root data.Directory
}

// Inedible hands an event the current state doesn't consume back to
// the caller, e.g. text typed in insert mode.
type Inedible struct {
	Event event.Event
}

type None struct{}

// Alert is a message the user has to acknowledge
type Alert struct {
	Message string
}

type Log struct {
	Message string
}

// Error is an error of the storage layer shown to the user
type Error struct {
	Err error
}

// Note tree

type OpenDirectory struct {
	Directory data.Directory
}

type CloseDirectory struct {
	Directory data.Directory
}

type OpenNote struct {
	Note    data.Note
	Content string
}

// EditMode starts editing the open note in normal mode
type EditMode struct{}

// ViewMode ends editing; the front end saves the buffer
type ViewMode struct {
	Note data.Note
}

type BrowseNoteTree struct{}

type TreeNumberingMode struct {
	N int
}

type ShowNoteActionsDialog struct {
	Note data.Note
}

type ShowDirectoryActionsDialog struct {
	Directory data.Directory
}

type CloseActionsDialog struct{}

type AddNote struct {
	Note data.Note
}

type AddDirectory struct {
	Directory data.Directory
}

// RemoveNote carries the directory that is selected afterwards
type RemoveNote struct {
	Note              data.Note
	SelectedDirectory data.Directory
}

type RemoveDirectory struct {
	Directory         data.Directory
	SelectedDirectory data.Directory
}

type RenameNote struct {
	Note data.Note
}

type RenameDirectory struct {
	Directory data.Directory
}

type SelectNext struct {
	N int
}

type SelectPrev struct {
	N int
}

type ToggleBrowser struct{}

// Editor

// NormalMode is a vim normal mode action on the editor buffer
type NormalMode struct {
	Action Action
	N      int
}

// VisualMode is a vim visual mode action on the editor buffer
type VisualMode struct {
	Action Action
	N      int
}

func (OpenNotebook) isTransition() {}
func (Inedible) isTransition() {}
func (None) isTransition() {}
func (Alert) isTransition() {}
func (Log) isTransition() {}
func (Error) isTransition() {}
func (OpenDirectory) isTransition() {}
func (CloseDirectory) isTransition() {}
func (OpenNote) isTransition() {}
func (EditMode) isTransition() {}
func (ViewMode) isTransition() {}
func (BrowseNoteTree) isTransition() {}
func (TreeNumberingMode) isTransition() {}
func (ShowNoteActionsDialog) isTransition() {}
func (ShowDirectoryActionsDialog) isTransition() {}
func (CloseActionsDialog) isTransition() {}
func (AddNote) isTransition() {}
func (AddDirectory) isTransition() {}
func (RemoveNote) isTransition() {}
func (RemoveDirectory) isTransition() {}
func (RenameNote) isTransition() {}
func (RenameDirectory) isTransition() {}
func (SelectNext) isTransition() {}
func (SelectPrev) isTransition() {}
func (ToggleBrowser) isTransition() {}
func (NormalMode) isTransition() {}
func (VisualMode) isTransition() {}

func Normal(a Action) NormalMode { return NormalMode{Action: a, N: 1} }

func NormalN(a Action, n int) NormalMode { return NormalMode{Action: a, N: n} }

func Visual(a Action) VisualMode { return VisualMode{Action: a, N: 1} }

func VisualN(a Action, n int) VisualMode { return VisualMode{Action: a, N: n} }
