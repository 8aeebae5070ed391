package state

import (
	"context"

	"quire/app/event"
	"quire/app/transition"
)

// consumeBrowsing handles NoteSelected and DirectorySelected
func (s *NotebookState) consumeBrowsing(ctx context.Context, ev event.Event) (transition.Transition, error) {
	switch ev := ev.(type) {
	case event.SelectNote:
		s.selectNote(ev.Note)
		return transition.None{}, nil
	case event.SelectDirectory:
		s.selectDirectory(ev.Directory)
		return transition.None{}, nil
	case event.OpenDirectory:
		return s.openDirectory(ctx, ev.ID)
	case event.CloseDirectory:
		return s.closeDirectory(ev.ID)
	case event.OpenNote:
		return s.openSelected(ctx)
	case event.UpdateNoteContent:
		return s.updateContent(ctx, ev.Content)
	case event.ShowActionsDialog:
		return s.showActions(), nil
	case event.EditNote:
		return s.backToEditor(), nil
	case event.KeyEvent:
		return s.browsingKey(ctx, ev)
	default:
		return nil, unimplemented(s, ev)
	}
}

func (s *NotebookState) browsingKey(ctx context.Context, ev event.KeyEvent) (transition.Transition, error) {
	if n, ok := ev.Key.NonZeroDigit(); ok {
		s.Inner = NoteTreeNumber{N: n}
		return transition.TreeNumberingMode{N: n}, nil
	}

	switch ev.Key {
	case event.KeyJ, event.Down:
		return transition.SelectNext{N: 1}, nil
	case event.KeyK, event.Up:
		return transition.SelectPrev{N: 1}, nil
	case event.KeyL, event.Right, event.Enter:
		return s.openSelected(ctx)
	case event.KeyH, event.Left:
		parent, ok, err := s.parentDirectory(ctx)
		if err != nil {
			return nil, err
		}
		if !ok {
			return transition.None{}, nil
		}
		return s.closeDirectory(parent.ID)
	case event.KeyM:
		return s.showActions(), nil
	case event.KeyE:
		return s.backToEditor(), nil
	case event.CtrlH:
		return transition.ToggleBrowser{}, nil
	case event.Esc:
		return transition.None{}, nil
	default:
		return transition.Inedible{Event: ev}, nil
	}
}

// openSelected opens the selected note, or toggles the selected
// directory.
func (s *NotebookState) openSelected(ctx context.Context) (transition.Transition, error) {
	switch sel := s.Selected.(type) {
	case SelectedNote:
		return s.openNote(ctx, sel.Note)
	case SelectedDirectory:
		return s.toggleDirectory(ctx, sel.Directory)
	default:
		return transition.None{}, nil
	}
}

func (s *NotebookState) showActions() transition.Transition {
	switch sel := s.Selected.(type) {
	case SelectedNote:
		s.Inner = NoteMoreActions{}
		return transition.ShowNoteActionsDialog{Note: sel.Note}
	case SelectedDirectory:
		s.Inner = DirectoryMoreActions{}
		return transition.ShowDirectoryActionsDialog{Directory: sel.Directory}
	default:
		return transition.None{}
	}
}

// backToEditor focuses the open note again without reloading it
func (s *NotebookState) backToEditor() transition.Transition {
	if s.EditingNote == nil {
		return transition.None{}
	}

	s.Selected = SelectedNote{Note: *s.EditingNote}
	s.Inner = EditingNormalMode{Vim: NormalIdle{}}

	return transition.NormalMode{Action: transition.IdleMode, N: 1}
}

func (s *NotebookState) consumeTreeNumber(ctx context.Context, n int, ev event.Event) (transition.Transition, error) {
	switch ev := ev.(type) {
	case event.SelectNote:
		s.selectNote(ev.Note)
		return transition.None{}, nil
	case event.SelectDirectory:
		s.selectDirectory(ev.Directory)
		return transition.None{}, nil
	case event.UpdateNoteContent:
		return s.updateContent(ctx, ev.Content)
	case event.KeyEvent:
		if d, ok := ev.Key.Digit(); ok {
			n = foldCount(n, d)
			s.Inner = NoteTreeNumber{N: n}
			return transition.TreeNumberingMode{N: n}, nil
		}

		s.browse()

		switch ev.Key {
		case event.KeyJ, event.Down:
			return transition.SelectNext{N: n}, nil
		case event.KeyK, event.Up:
			return transition.SelectPrev{N: n}, nil
		case event.Esc:
			return transition.None{}, nil
		default:
			return transition.Inedible{Event: ev}, nil
		}
	default:
		return nil, unimplemented(s, ev)
	}
}

func (s *NotebookState) consumeNoteActions(ctx context.Context, ev event.Event) (transition.Transition, error) {
	sel, ok := s.Selected.(SelectedNote)
	if !ok {
		panic("note actions without a selected note")
	}

	switch ev := ev.(type) {
	case event.RenameNote:
		return s.renameNote(ctx, sel.Note, ev.Name)
	case event.RemoveNote:
		return s.removeNote(ctx, sel.Note)
	case event.UpdateNoteContent:
		return s.updateContent(ctx, ev.Content)
	case event.CloseActionsDialog:
		s.browse()
		return transition.CloseActionsDialog{}, nil
	case event.KeyEvent:
		if ev.Key == event.Esc {
			s.browse()
			return transition.CloseActionsDialog{}, nil
		}
		return transition.Inedible{Event: ev}, nil
	default:
		return nil, unimplemented(s, ev)
	}
}

func (s *NotebookState) consumeDirectoryActions(ctx context.Context, ev event.Event) (transition.Transition, error) {
	sel, ok := s.Selected.(SelectedDirectory)
	if !ok {
		panic("directory actions without a selected directory")
	}

	switch ev := ev.(type) {
	case event.RenameDirectory:
		return s.renameDirectory(ctx, sel.Directory, ev.Name)
	case event.RemoveDirectory:
		return s.removeDirectory(ctx, sel.Directory)
	case event.AddNote:
		return s.addNote(ctx, sel.Directory, ev.Name)
	case event.AddDirectory:
		return s.addDirectory(ctx, sel.Directory, ev.Name)
	case event.UpdateNoteContent:
		return s.updateContent(ctx, ev.Content)
	case event.CloseActionsDialog:
		s.browse()
		return transition.CloseActionsDialog{}, nil
	case event.KeyEvent:
		if ev.Key == event.Esc {
			s.browse()
			return transition.CloseActionsDialog{}, nil
		}
		return transition.Inedible{Event: ev}, nil
	default:
		return nil, unimplemented(s, ev)
	}
}
