package state

import (
	"context"
	"errors"

	"quire/app/apperr"
	"quire/app/data"
	"quire/app/transition"
)

func (s *NotebookState) openDirectory(ctx context.Context, id string) (transition.Transition, error) {
	item := s.Root.Find(id)
	if item == nil {
		return nil, apperr.Storage("open directory", apperr.ErrNotFound)
	}

	if err := item.load(ctx, s.store); err != nil {
		return nil, err
	}

	return transition.OpenDirectory{Directory: item.Directory}, nil
}

// closeDirectory closes id and selects it, as the selection may have
// been inside.
func (s *NotebookState) closeDirectory(id string) (transition.Transition, error) {
	item := s.Root.Find(id)
	if item == nil {
		return nil, apperr.Storage("close directory", apperr.ErrNotFound)
	}

	item.close()
	s.selectDirectory(item.Directory)

	return transition.CloseDirectory{Directory: item.Directory}, nil
}

func (s *NotebookState) toggleDirectory(ctx context.Context, dir data.Directory) (transition.Transition, error) {
	item := s.Root.Find(dir.ID)
	if item != nil && item.IsOpen() {
		return s.closeDirectory(dir.ID)
	}
	return s.openDirectory(ctx, dir.ID)
}

func (s *NotebookState) renameDirectory(ctx context.Context, dir data.Directory, name string) (transition.Transition, error) {
	if dir.IsRoot() {
		s.browse()
		return transition.Alert{Message: "Cannot rename the root directory"}, nil
	}

	if err := s.store.RenameDirectory(ctx, dir.ID, name); err != nil {
		return nil, err
	}

	dir.Name = name
	if err := s.refresh(ctx, dir.ParentID); err != nil {
		return nil, err
	}
	s.selectDirectory(dir)

	return transition.RenameDirectory{Directory: dir}, nil
}

func (s *NotebookState) removeDirectory(ctx context.Context, dir data.Directory) (transition.Transition, error) {
	if dir.IsRoot() {
		s.browse()
		return transition.Alert{Message: "Cannot remove the root directory"}, nil
	}

	parent, err := s.store.FetchDirectory(ctx, dir.ParentID)
	if err != nil {
		return nil, err
	}

	if err := s.store.RemoveDirectory(ctx, dir.ID); err != nil {
		return nil, err
	}
	s.selectDirectory(parent)

	// the open note may have been inside
	if s.EditingNote != nil {
		_, err := s.store.FetchNote(ctx, s.EditingNote.ID)
		if errors.Is(err, apperr.ErrNotFound) {
			s.EditingNote = nil
		} else if err != nil {
			return nil, err
		}
	}

	if err := s.reloadParent(ctx, parent.ID); err != nil {
		return nil, err
	}

	return transition.RemoveDirectory{Directory: dir, SelectedDirectory: parent}, nil
}

func (s *NotebookState) addDirectory(ctx context.Context, parent data.Directory, name string) (transition.Transition, error) {
	dir, err := s.store.AddDirectory(ctx, parent.ID, name)
	if err != nil {
		return nil, err
	}

	if err := s.refresh(ctx, parent.ID); err != nil {
		return nil, err
	}
	s.selectDirectory(dir)

	return transition.AddDirectory{Directory: dir}, nil
}

// parentDirectory returns the directory holding the selected item.
// The root has none.
func (s *NotebookState) parentDirectory(ctx context.Context) (data.Directory, bool, error) {
	var parentID string

	switch sel := s.Selected.(type) {
	case SelectedNote:
		parentID = sel.Note.DirectoryID
	case SelectedDirectory:
		parentID = sel.Directory.ParentID
	}

	if parentID == "" {
		return data.Directory{}, false, nil
	}

	parent, err := s.store.FetchDirectory(ctx, parentID)
	if err != nil {
		return parent, false, err
	}

	return parent, true, nil
}
