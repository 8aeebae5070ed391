// Package state holds the hierarchical state machine behind the
// notebook: the entry screen, browsing the note tree and the vim modes
// of the editor.
package state

import (
	"context"
	"fmt"

	"quire/app/apperr"
	"quire/app/data"
	"quire/app/event"
	"quire/app/transition"
)

// State is either *EntryState or *NotebookState.
type State interface {
	isState()
	String() string
}

// Store is the storage the notebook reads and writes through.
type Store interface {
	RootDirectory() data.Directory
	FetchDirectory(ctx context.Context, id string) (data.Directory, error)
	FetchDirectories(ctx context.Context, parentID string) ([]data.Directory, error)
	FetchNote(ctx context.Context, id string) (data.Note, error)
	FetchNotes(ctx context.Context, directoryID string) ([]data.Note, error)
	AddDirectory(ctx context.Context, parentID string, name string) (data.Directory, error)
	RemoveDirectory(ctx context.Context, id string) error
	RenameDirectory(ctx context.Context, id string, name string) error
	AddNote(ctx context.Context, directoryID string, name string) (data.Note, error)
	RemoveNote(ctx context.Context, id string) error
	RenameNote(ctx context.Context, id string, name string) error
	UpdateNoteContent(ctx context.Context, id string, content string) error
	Close() error
}

// Opener opens the store an OpenNotebook event asks for
type Opener func(ctx context.Context, ev event.OpenNotebook) (Store, error)

// EntryState is the initial state before a notebook is opened.
type EntryState struct {
	open Opener
}

func NewEntryState(open Opener) *EntryState {
	return &EntryState{open: open}
}

func (*EntryState) isState()       {}
func (*EntryState) String() string { return "Entry" }

// Consume handles ev. On a successful OpenNotebook the returned state
// is the new NotebookState, otherwise it is nil.
func (s *EntryState) Consume(
	ctx context.Context,
	ev event.Event,
) (transition.Transition, State, error) {
	switch ev := ev.(type) {
	case event.OpenNotebook:
		store, err := s.open(ctx, ev)
		if err != nil {
			return nil, nil, err
		}

		notebook, err := NewNotebookState(ctx, store)
		if err != nil {
			store.Close()
			return nil, nil, err
		}

		return transition.OpenNotebook{Root: notebook.Root.Directory}, notebook, nil

	case event.KeyEvent:
		return transition.Inedible{Event: ev}, nil, nil

	default:
		return nil, nil, unimplemented(s, ev)
	}
}

func unimplemented(s fmt.Stringer, ev event.Event) error {
	return &apperr.UnimplementedError{State: s.String(), Event: ev.String()}
}
