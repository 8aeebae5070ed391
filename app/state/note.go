package state

import (
	"context"

	"quire/app/data"
	"quire/app/transition"
)

// openNote loads the content of note and starts viewing it in the
// editor.
func (s *NotebookState) openNote(ctx context.Context, note data.Note) (transition.Transition, error) {
	note, err := s.store.FetchNote(ctx, note.ID)
	if err != nil {
		return nil, err
	}

	s.Selected = SelectedNote{Note: note}
	s.EditingNote = &note
	s.Inner = EditingNormalMode{Vim: NormalIdle{}}

	return transition.OpenNote{Note: note, Content: note.Content}, nil
}

// updateContent saves the editor content of the open note. The inner
// state doesn't change.
func (s *NotebookState) updateContent(ctx context.Context, content string) (transition.Transition, error) {
	if s.EditingNote == nil {
		return transition.None{}, nil
	}

	if err := s.store.UpdateNoteContent(ctx, s.EditingNote.ID, content); err != nil {
		return nil, err
	}

	s.EditingNote.Content = content

	return transition.ViewMode{Note: *s.EditingNote}, nil
}

// editNote starts inserting text into the open note
func (s *NotebookState) editNote() (transition.Transition, error) {
	s.Inner = EditingInsertMode{}
	return transition.EditMode{}, nil
}

// browseNoteTree moves the focus from the editor to the tree with the
// open note selected.
func (s *NotebookState) browseNoteTree() (transition.Transition, error) {
	if s.EditingNote != nil {
		s.Selected = SelectedNote{Note: *s.EditingNote}
	}
	s.browse()

	return transition.BrowseNoteTree{}, nil
}

func (s *NotebookState) renameNote(ctx context.Context, note data.Note, name string) (transition.Transition, error) {
	if err := s.store.RenameNote(ctx, note.ID, name); err != nil {
		return nil, err
	}

	note.Name = name
	if err := s.refresh(ctx, note.DirectoryID); err != nil {
		return nil, err
	}

	if s.EditingNote != nil && s.EditingNote.ID == note.ID {
		s.EditingNote.Name = name
	}
	s.selectNote(note)

	return transition.RenameNote{Note: note}, nil
}

func (s *NotebookState) removeNote(ctx context.Context, note data.Note) (transition.Transition, error) {
	parent, err := s.store.FetchDirectory(ctx, note.DirectoryID)
	if err != nil {
		return nil, err
	}

	if err := s.store.RemoveNote(ctx, note.ID); err != nil {
		return nil, err
	}

	if s.EditingNote != nil && s.EditingNote.ID == note.ID {
		s.EditingNote = nil
	}
	s.selectDirectory(parent)

	if err := s.reloadParent(ctx, parent.ID); err != nil {
		return nil, err
	}

	return transition.RemoveNote{Note: note, SelectedDirectory: parent}, nil
}

func (s *NotebookState) addNote(ctx context.Context, dir data.Directory, name string) (transition.Transition, error) {
	note, err := s.store.AddNote(ctx, dir.ID, name)
	if err != nil {
		return nil, err
	}

	if err := s.refresh(ctx, dir.ID); err != nil {
		return nil, err
	}
	s.selectNote(note)

	return transition.AddNote{Note: note}, nil
}
