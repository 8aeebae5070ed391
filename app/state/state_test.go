package state_test

import (
	"context"
	"errors"
	"testing"

	"quire/app/apperr"
	"quire/app/data"
	"quire/app/db"
	"quire/app/event"
	"quire/app/state"
	"quire/app/transition"
)

func openInstant(ctx context.Context, ev event.OpenNotebook) (state.Store, error) {
	return db.Open(ctx, db.Instant, "")
}

// testNotebook opens an in-memory notebook through the entry state.
func testNotebook(t *testing.T) *state.NotebookState {
	t.Helper()

	entry := state.NewEntryState(openInstant)
	tr, next, err := entry.Consume(context.Background(), event.OpenNotebook{Storage: event.Instant})
	if err != nil {
		t.Fatalf("OpenNotebook failed: %v", err)
	}

	if _, ok := tr.(transition.OpenNotebook); !ok {
		t.Fatalf("Expected OpenNotebook, got %T", tr)
	}

	notebook, ok := next.(*state.NotebookState)
	if !ok {
		t.Fatalf("Expected a notebook state, got %T", next)
	}
	t.Cleanup(func() { notebook.Close() })

	return notebook
}

func consume(t *testing.T, s *state.NotebookState, ev event.Event) transition.Transition {
	t.Helper()

	tr, err := s.Consume(context.Background(), ev)
	if err != nil {
		t.Fatalf("Consume(%s) failed: %v", ev, err)
	}
	return tr
}

func press(t *testing.T, s *state.NotebookState, keys ...event.Key) transition.Transition {
	t.Helper()

	var tr transition.Transition
	for _, k := range keys {
		tr = consume(t, s, event.Press(k))
	}
	return tr
}

// editingNote adds a note to the root and opens it in the editor
func editingNote(t *testing.T, s *state.NotebookState) {
	t.Helper()

	consume(t, s, event.ShowActionsDialog{})
	consume(t, s, event.AddNote{Name: "Note"})
	if tr := consume(t, s, event.OpenNote{}); tr == nil {
		t.Fatal("Expected OpenNote transition")
	}
	if _, ok := s.Inner.(state.EditingNormalMode); !ok {
		t.Fatalf("Expected EditingNormalMode, got %s", s.Inner)
	}
}

func TestEntryIgnoresKeys(t *testing.T) {
	entry := state.NewEntryState(openInstant)

	tr, next, err := entry.Consume(context.Background(), event.Press(event.KeyJ))
	if err != nil {
		t.Fatalf("Consume failed: %v", err)
	}
	if next != nil {
		t.Errorf("Expected to stay in entry, got %s", next)
	}
	if tr != (transition.Inedible{Event: event.Press(event.KeyJ)}) {
		t.Errorf("Expected Inedible, got %#v", tr)
	}

	_, _, err = entry.Consume(context.Background(), event.OpenNote{})
	var unimpl *apperr.UnimplementedError
	if !errors.As(err, &unimpl) {
		t.Errorf("Expected UnimplementedError, got %v", err)
	}
}

func TestEntryOpenFails(t *testing.T) {
	failing := func(context.Context, event.OpenNotebook) (state.Store, error) {
		return nil, apperr.Storage("open", errors.New("disk full"))
	}

	entry := state.NewEntryState(failing)
	_, next, err := entry.Consume(context.Background(), event.OpenNotebook{Storage: event.File})
	if err == nil {
		t.Fatal("Expected an error")
	}
	if next != nil {
		t.Errorf("Expected no state change, got %s", next)
	}
}

func TestNotebookStartsAtRoot(t *testing.T) {
	s := testNotebook(t)

	if _, ok := s.Inner.(state.DirectorySelected); !ok {
		t.Errorf("Expected DirectorySelected, got %s", s.Inner)
	}
	if s.Selected.ID() != s.Root.Directory.ID {
		t.Errorf("Expected the root to be selected")
	}
	if !s.Root.IsOpen() {
		t.Errorf("Expected the root to be loaded")
	}
}

func TestAddAddRemove(t *testing.T) {
	s := testNotebook(t)
	root := s.Root.Directory

	consume(t, s, event.ShowActionsDialog{})
	tr := consume(t, s, event.AddDirectory{Name: "Work"})
	work, ok := tr.(transition.AddDirectory)
	if !ok {
		t.Fatalf("Expected AddDirectory, got %#v", tr)
	}

	consume(t, s, event.ShowActionsDialog{})
	tr = consume(t, s, event.AddNote{Name: "Todo"})
	todo, ok := tr.(transition.AddNote)
	if !ok {
		t.Fatalf("Expected AddNote, got %#v", tr)
	}
	if todo.Note.DirectoryID != work.Directory.ID {
		t.Errorf("Expected note inside %s, got %s", work.Directory.ID, todo.Note.DirectoryID)
	}
	if _, ok := s.Inner.(state.NoteSelected); !ok {
		t.Errorf("Expected NoteSelected, got %s", s.Inner)
	}

	if len(s.Root.Visible()) != 3 {
		t.Errorf("Expected 3 visible items, got %d", len(s.Root.Visible()))
	}

	// select the directory again and remove it with its note
	consume(t, s, event.SelectDirectory{Directory: work.Directory})
	consume(t, s, event.ShowActionsDialog{})
	tr = consume(t, s, event.RemoveDirectory{})

	removed, ok := tr.(transition.RemoveDirectory)
	if !ok {
		t.Fatalf("Expected RemoveDirectory, got %#v", tr)
	}
	if removed.SelectedDirectory.ID != root.ID {
		t.Errorf("Expected root to be selected, got %s", removed.SelectedDirectory.ID)
	}
	if s.Selected.ID() != root.ID {
		t.Errorf("Expected selection on root, got %s", s.Selected.ID())
	}
	if n := len(s.Root.Visible()); n != 1 {
		t.Errorf("Expected only the root to be visible, got %d items", n)
	}

	_, err := s.Store().FetchNote(context.Background(), todo.Note.ID)
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("Expected the note to be removed, got %v", err)
	}
}

func TestRootCannotBeRemoved(t *testing.T) {
	s := testNotebook(t)

	consume(t, s, event.ShowActionsDialog{})
	tr := consume(t, s, event.RemoveDirectory{})

	if _, ok := tr.(transition.Alert); !ok {
		t.Errorf("Expected Alert, got %#v", tr)
	}
	if _, ok := s.Inner.(state.DirectorySelected); !ok {
		t.Errorf("Expected DirectorySelected, got %s", s.Inner)
	}
}

func TestActionsDialogEscape(t *testing.T) {
	s := testNotebook(t)

	tr := consume(t, s, event.ShowActionsDialog{})
	if _, ok := tr.(transition.ShowDirectoryActionsDialog); !ok {
		t.Fatalf("Expected ShowDirectoryActionsDialog, got %#v", tr)
	}

	if tr := press(t, s, event.KeyJ); tr != (transition.Inedible{Event: event.Press(event.KeyJ)}) {
		t.Errorf("Expected Inedible, got %#v", tr)
	}

	if tr := press(t, s, event.Esc); tr != (transition.CloseActionsDialog{}) {
		t.Errorf("Expected CloseActionsDialog, got %#v", tr)
	}
	if _, ok := s.Inner.(state.DirectorySelected); !ok {
		t.Errorf("Expected DirectorySelected, got %s", s.Inner)
	}
}

func TestTreeNumbering(t *testing.T) {
	s := testNotebook(t)

	if tr := press(t, s, event.Num2); tr != (transition.TreeNumberingMode{N: 2}) {
		t.Errorf("Expected TreeNumberingMode(2), got %#v", tr)
	}
	if tr := press(t, s, event.Num0); tr != (transition.TreeNumberingMode{N: 20}) {
		t.Errorf("Expected TreeNumberingMode(20), got %#v", tr)
	}
	if tr := press(t, s, event.KeyJ); tr != (transition.SelectNext{N: 20}) {
		t.Errorf("Expected SelectNext(20), got %#v", tr)
	}
	if _, ok := s.Inner.(state.DirectorySelected); !ok {
		t.Errorf("Expected DirectorySelected, got %s", s.Inner)
	}
}

func TestCloseAndOpenDirectory(t *testing.T) {
	s := testNotebook(t)
	root := s.Root.Directory

	tr := press(t, s, event.Enter)
	if tr != (transition.CloseDirectory{Directory: root}) {
		t.Fatalf("Expected CloseDirectory, got %#v", tr)
	}
	if s.Root.IsOpen() {
		t.Errorf("Expected root to be closed")
	}

	tr = press(t, s, event.KeyL)
	if tr != (transition.OpenDirectory{Directory: root}) {
		t.Fatalf("Expected OpenDirectory, got %#v", tr)
	}
	if !s.Root.IsOpen() {
		t.Errorf("Expected root to be open")
	}
}

func TestNormalNumbering(t *testing.T) {
	s := testNotebook(t)
	editingNote(t, s)

	tests := []struct {
		keys []event.Key
		want transition.Transition
	}{
		{[]event.Key{event.Num3, event.KeyJ}, transition.NormalN(transition.MoveCursorDown, 3)},
		{[]event.Key{event.Num1, event.Num2, event.KeyW}, transition.NormalN(transition.MoveCursorWordForward, 12)},
		{[]event.Key{event.Num2, event.KeyCapG}, transition.NormalN(transition.MoveCursorToLine, 2)},
		{[]event.Key{event.Num2, event.KeyD, event.KeyD}, transition.NormalN(transition.DeleteLines, 2)},
		{[]event.Key{event.Num3, event.KeyY, event.KeyY}, transition.NormalN(transition.YankLines, 3)},
		{[]event.Key{event.Num4, event.KeyX}, transition.NormalN(transition.DeleteChars, 4)},
		{[]event.Key{event.Num2, event.Esc}, transition.Normal(transition.IdleMode)},
		{[]event.Key{event.KeyG, event.KeyG}, transition.Normal(transition.MoveCursorTop)},
		{[]event.Key{event.KeyD, event.KeyI, event.KeyW}, transition.Normal(transition.DeleteInsideWord)},
		{[]event.Key{event.KeyD, event.Dollar}, transition.Normal(transition.DeleteLineEnd)},
		{[]event.Key{event.KeyD, event.KeyB}, transition.Normal(transition.DeleteWordBack)},
		{[]event.Key{event.Num0}, transition.Normal(transition.MoveCursorLineStart)},
	}

	for _, tt := range tests {
		got := press(t, s, tt.keys...)
		if got != tt.want {
			t.Errorf("keys %v: expected %#v, got %#v", tt.keys, tt.want, got)
		}
		if _, ok := s.Inner.(state.EditingNormalMode); !ok {
			t.Fatalf("keys %v: expected EditingNormalMode, got %s", tt.keys, s.Inner)
		}
		if vim := s.Inner.(state.EditingNormalMode).Vim; vim != (state.NormalIdle{}) {
			t.Errorf("keys %v: expected Idle, got %s", tt.keys, vim)
		}
	}
}

func TestCountSaturates(t *testing.T) {
	nines := make([]event.Key, 20)
	for i := range nines {
		nines[i] = event.Num9
	}

	s := testNotebook(t)
	if tr := press(t, s, nines...); tr != (transition.TreeNumberingMode{N: 99999}) {
		t.Errorf("Expected tree count to stop at 99999, got %#v", tr)
	}
	press(t, s, event.Esc)

	editingNote(t, s)

	press(t, s, nines...)
	if vim := s.Inner.(state.EditingNormalMode).Vim; vim != (state.NormalNumbering{N: 99999}) {
		t.Fatalf("Expected Numbering(99999), got %s", vim)
	}
	if tr := press(t, s, event.KeyJ); tr != transition.NormalN(transition.MoveCursorDown, 99999) {
		t.Errorf("Expected saturated count on j, got %#v", tr)
	}

	press(t, s, event.KeyV)
	if tr := press(t, s, append(nines, event.KeyL)...); tr != transition.VisualN(transition.MoveCursorForward, 99999) {
		t.Errorf("Expected saturated visual count, got %#v", tr)
	}
}

func TestNumberingUnrelatedKey(t *testing.T) {
	s := testNotebook(t)
	editingNote(t, s)

	press(t, s, event.Num5)
	if vim := s.Inner.(state.EditingNormalMode).Vim; vim != (state.NormalNumbering{N: 5}) {
		t.Fatalf("Expected Numbering(5), got %s", vim)
	}

	tr := press(t, s, event.KeyM)
	if tr != (transition.Inedible{Event: event.Press(event.KeyM)}) {
		t.Errorf("Expected Inedible, got %#v", tr)
	}
	if vim := s.Inner.(state.EditingNormalMode).Vim; vim != (state.NormalIdle{}) {
		t.Errorf("Expected the count to be dropped, got %s", vim)
	}
}

func TestInsertModeRoundTrip(t *testing.T) {
	s := testNotebook(t)
	editingNote(t, s)

	tr := press(t, s, event.KeyCapA)
	if tr != transition.Normal(transition.InsertAtLineEnd) {
		t.Errorf("Expected InsertAtLineEnd, got %#v", tr)
	}
	if _, ok := s.Inner.(state.EditingInsertMode); !ok {
		t.Fatalf("Expected EditingInsertMode, got %s", s.Inner)
	}

	if tr := press(t, s, event.KeyQ); tr != (transition.Inedible{Event: event.Press(event.KeyQ)}) {
		t.Errorf("Expected Inedible, got %#v", tr)
	}

	tr = consume(t, s, event.UpdateNoteContent{Content: "hello"})
	if view, ok := tr.(transition.ViewMode); !ok || view.Note.Content != "hello" {
		t.Errorf("Expected ViewMode with the new content, got %#v", tr)
	}

	tr = press(t, s, event.Esc)
	if _, ok := tr.(transition.ViewMode); !ok {
		t.Errorf("Expected ViewMode, got %#v", tr)
	}
	if _, ok := s.Inner.(state.EditingNormalMode); !ok {
		t.Errorf("Expected EditingNormalMode, got %s", s.Inner)
	}

	note, err := s.Store().FetchNote(context.Background(), s.EditingNote.ID)
	if err != nil {
		t.Fatalf("FetchNote failed: %v", err)
	}
	if note.Content != "hello" {
		t.Errorf("Expected saved content, got %q", note.Content)
	}
}

func TestChangeEntersInsert(t *testing.T) {
	s := testNotebook(t)
	editingNote(t, s)

	tr := press(t, s, event.KeyC, event.KeyW)
	if tr != transition.Normal(transition.DeleteWordEnd) {
		t.Errorf("Expected DeleteWordEnd, got %#v", tr)
	}
	if _, ok := s.Inner.(state.EditingInsertMode); !ok {
		t.Errorf("Expected EditingInsertMode, got %s", s.Inner)
	}
}

func TestVisualMode(t *testing.T) {
	s := testNotebook(t)
	editingNote(t, s)

	if tr := press(t, s, event.KeyV); tr != transition.Visual(transition.IdleMode) {
		t.Fatalf("Expected visual IdleMode, got %#v", tr)
	}

	if tr := press(t, s, event.Num2, event.KeyL); tr != transition.VisualN(transition.MoveCursorForward, 2) {
		t.Errorf("Expected 2 forward, got %#v", tr)
	}

	if tr := press(t, s, event.KeyY); tr != transition.Visual(transition.YankSelection) {
		t.Errorf("Expected YankSelection, got %#v", tr)
	}
	if _, ok := s.Inner.(state.EditingNormalMode); !ok {
		t.Errorf("Expected EditingNormalMode, got %s", s.Inner)
	}

	press(t, s, event.KeyV)
	if tr := press(t, s, event.Esc); tr != transition.Normal(transition.IdleMode) {
		t.Errorf("Expected normal IdleMode, got %#v", tr)
	}

	press(t, s, event.KeyV)
	if tr := press(t, s, event.KeyC); tr != transition.Visual(transition.DeleteSelectionAndInsertMode) {
		t.Errorf("Expected DeleteSelectionAndInsertMode, got %#v", tr)
	}
	if _, ok := s.Inner.(state.EditingInsertMode); !ok {
		t.Errorf("Expected EditingInsertMode, got %s", s.Inner)
	}
}

func TestBrowseAndBack(t *testing.T) {
	s := testNotebook(t)
	editingNote(t, s)
	id := s.EditingNote.ID

	if tr := press(t, s, event.KeyB); tr != (transition.BrowseNoteTree{}) {
		t.Errorf("Expected BrowseNoteTree, got %#v", tr)
	}
	if _, ok := s.Inner.(state.NoteSelected); !ok {
		t.Errorf("Expected NoteSelected, got %s", s.Inner)
	}
	if s.Selected.ID() != id {
		t.Errorf("Expected the open note to be selected")
	}

	if tr := press(t, s, event.KeyE); tr != transition.Normal(transition.IdleMode) {
		t.Errorf("Expected normal IdleMode, got %#v", tr)
	}
	if !s.IsEditing() {
		t.Errorf("Expected to be editing, got %s", s.Inner)
	}
}

func TestRemoveEditingNote(t *testing.T) {
	s := testNotebook(t)
	editingNote(t, s)

	press(t, s, event.KeyB)
	consume(t, s, event.ShowActionsDialog{})
	tr := consume(t, s, event.RemoveNote{})

	if _, ok := tr.(transition.RemoveNote); !ok {
		t.Fatalf("Expected RemoveNote, got %#v", tr)
	}
	if s.EditingNote != nil {
		t.Errorf("Expected no open note")
	}
	if tr := press(t, s, event.KeyE); tr != (transition.None{}) {
		t.Errorf("Expected None without an open note, got %#v", tr)
	}
}

func TestEmptyNameIsPromptError(t *testing.T) {
	s := testNotebook(t)

	consume(t, s, event.ShowActionsDialog{})
	_, err := s.Consume(context.Background(), event.AddNote{Name: "  "})
	if !apperr.IsPromptError(err) {
		t.Errorf("Expected a prompt error, got %v", err)
	}
	if _, ok := s.Inner.(state.DirectoryMoreActions); !ok {
		t.Errorf("Expected the dialog to stay open, got %s", s.Inner)
	}
}

var errListNotes = errors.New("cannot list notes")

// brokenListing fails to list notes once armed
type brokenListing struct {
	state.Store
	armed bool
}

func (b *brokenListing) FetchNotes(ctx context.Context, directoryID string) ([]data.Note, error) {
	if b.armed {
		return nil, errListNotes
	}
	return b.Store.FetchNotes(ctx, directoryID)
}

func TestRemoveNoteWithFailedReload(t *testing.T) {
	ctx := context.Background()
	store := &brokenListing{}

	entry := state.NewEntryState(func(ctx context.Context, ev event.OpenNotebook) (state.Store, error) {
		inner, err := db.Open(ctx, db.Instant, "")
		if err != nil {
			return nil, err
		}
		store.Store = inner
		return store, nil
	})

	_, next, err := entry.Consume(ctx, event.OpenNotebook{Storage: event.Instant})
	if err != nil {
		t.Fatalf("OpenNotebook failed: %v", err)
	}
	s := next.(*state.NotebookState)
	t.Cleanup(func() { s.Close() })

	editingNote(t, s)
	note := *s.EditingNote
	root := s.Root.Directory

	press(t, s, event.KeyB)
	consume(t, s, event.ShowActionsDialog{})

	store.armed = true
	if _, err := s.Consume(ctx, event.RemoveNote{}); !errors.Is(err, errListNotes) {
		t.Fatalf("Expected the listing error, got %v", err)
	}

	if s.EditingNote != nil {
		t.Errorf("Expected the removed note to be closed")
	}
	if s.Selected.ID() != root.ID {
		t.Errorf("Expected selection on root, got %s", s.Selected.ID())
	}
	if _, ok := s.Inner.(state.DirectorySelected); !ok {
		t.Errorf("Expected DirectorySelected, got %s", s.Inner)
	}
	if s.Root.IsOpen() {
		t.Errorf("Expected root to be closed after the failed reload")
	}

	if _, err := s.Store().FetchNote(ctx, note.ID); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("Expected the note to be removed, got %v", err)
	}
}
