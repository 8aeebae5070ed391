package state

import (
	"context"
	"fmt"

	"quire/app/data"
	"quire/app/event"
	"quire/app/transition"
)

// Selected is either SelectedNote or SelectedDirectory
type Selected interface {
	isSelected()
	ID() string
}

type SelectedNote struct{ Note data.Note }

type SelectedDirectory struct{ Directory data.Directory }

func (SelectedNote) isSelected()      {}
func (SelectedDirectory) isSelected() {}

func (s SelectedNote) ID() string      { return s.Note.ID }
func (s SelectedDirectory) ID() string { return s.Directory.ID }

// InnerState is the sub state of an opened notebook. Exactly one is
// active at a time.
type InnerState interface {
	isInner()
	String() string
}

type NoteSelected struct{}

type DirectorySelected struct{}

// NoteTreeNumber is a count typed while browsing the tree
type NoteTreeNumber struct{ N int }

type NoteMoreActions struct{}

type DirectoryMoreActions struct{}

type EditingNormalMode struct{ Vim VimNormalState }

type EditingVisualMode struct{ Vim VimVisualState }

type EditingInsertMode struct{}

func (NoteSelected) isInner()         {}
func (DirectorySelected) isInner()    {}
func (NoteTreeNumber) isInner()       {}
func (NoteMoreActions) isInner()      {}
func (DirectoryMoreActions) isInner() {}
func (EditingNormalMode) isInner()    {}
func (EditingVisualMode) isInner()    {}
func (EditingInsertMode) isInner()    {}

func (NoteSelected) String() string         { return "NoteSelected" }
func (DirectorySelected) String() string    { return "DirectorySelected" }
func (s NoteTreeNumber) String() string     { return fmt.Sprintf("NoteTreeNumber(%d)", s.N) }
func (NoteMoreActions) String() string      { return "NoteMoreActions" }
func (DirectoryMoreActions) String() string { return "DirectoryMoreActions" }
func (s EditingNormalMode) String() string  { return "EditingNormalMode(" + s.Vim.String() + ")" }
func (s EditingVisualMode) String() string  { return "EditingVisualMode(" + s.Vim.String() + ")" }
func (EditingInsertMode) String() string    { return "EditingInsertMode" }

// NotebookState is the state of an opened notebook. It is changed in
// place by every successful Consume.
type NotebookState struct {
	Root        *DirectoryItem
	Selected    Selected
	EditingNote *data.Note
	Inner       InnerState

	store Store
}

// NewNotebookState loads the root directory of store and selects it.
func NewNotebookState(ctx context.Context, store Store) (*NotebookState, error) {
	root := &DirectoryItem{Directory: store.RootDirectory()}
	if err := root.load(ctx, store); err != nil {
		return nil, err
	}

	return &NotebookState{
		Root:     root,
		Selected: SelectedDirectory{Directory: root.Directory},
		Inner:    DirectorySelected{},
		store:    store,
	}, nil
}

func (*NotebookState) isState() {}

func (s *NotebookState) String() string { return "Notebook/" + s.Inner.String() }

func (s *NotebookState) Store() Store { return s.store }

// Close closes the underlying store
func (s *NotebookState) Close() error { return s.store.Close() }

// IsEditing reports whether the editor has the focus
func (s *NotebookState) IsEditing() bool {
	switch s.Inner.(type) {
	case EditingNormalMode, EditingVisualMode, EditingInsertMode:
		return true
	}
	return false
}

// Consume routes ev to the handler of the active inner state.
func (s *NotebookState) Consume(ctx context.Context, ev event.Event) (transition.Transition, error) {
	switch inner := s.Inner.(type) {
	case NoteSelected, DirectorySelected:
		return s.consumeBrowsing(ctx, ev)
	case NoteTreeNumber:
		return s.consumeTreeNumber(ctx, inner.N, ev)
	case NoteMoreActions:
		return s.consumeNoteActions(ctx, ev)
	case DirectoryMoreActions:
		return s.consumeDirectoryActions(ctx, ev)
	case EditingNormalMode:
		return s.consumeNormal(ctx, inner.Vim, ev)
	case EditingVisualMode:
		return s.consumeVisual(ctx, inner.Vim, ev)
	case EditingInsertMode:
		return s.consumeInsert(ctx, ev)
	default:
		panic(fmt.Sprintf("unknown inner state %T", s.Inner))
	}
}

// browse returns to the tree with the current selection
func (s *NotebookState) browse() {
	switch s.Selected.(type) {
	case SelectedNote:
		s.Inner = NoteSelected{}
	default:
		s.Inner = DirectorySelected{}
	}
}

func (s *NotebookState) selectNote(note data.Note) {
	s.Selected = SelectedNote{Note: note}
	s.Inner = NoteSelected{}
}

func (s *NotebookState) selectDirectory(dir data.Directory) {
	s.Selected = SelectedDirectory{Directory: dir}
	s.Inner = DirectorySelected{}
}

// reloadParent refreshes the directory id after a child of it was
// removed. A directory that cannot be reloaded is closed, so the
// removed child is not listed anymore.
func (s *NotebookState) reloadParent(ctx context.Context, id string) error {
	err := s.refresh(ctx, id)
	if err != nil {
		if item := s.Root.Find(id); item != nil {
			item.Children = nil
		}
	}
	return err
}

// refresh reloads the children of the directory id and opens it
func (s *NotebookState) refresh(ctx context.Context, id string) error {
	item := s.Root.Find(id)
	if item == nil {
		return nil
	}
	return item.load(ctx, s.store)
}
