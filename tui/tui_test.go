package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea/v2"

	"quire/app/config"
	"quire/app/engine"
	"quire/app/state"
	"quire/tui/message"
	"quire/tui/mode"
)

func testModel(t *testing.T) *Model {
	t.Helper()

	eng := engine.New()
	t.Cleanup(func() { eng.Close() })

	m, err := New(context.Background(), eng, config.Settings{
		Storage:     "instant",
		UndoLimit:   100,
		TabWidth:    4,
		LineNumbers: true,
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	_, cmd := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m.Update(cmd())

	return m
}

func keyMsg(k string) tea.KeyPressMsg {
	switch k {
	case "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "ctrl+h":
		return tea.KeyPressMsg{Code: 'h', Mod: tea.ModCtrl}
	case "ctrl+c":
		return tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}
	}

	r := []rune(k)[0]
	return tea.KeyPressMsg{Code: r, Text: k}
}

func press(m *Model, keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = m.Update(keyMsg(k))
	}
	return cmd
}

func typeText(m *Model, text string) {
	for _, r := range text {
		press(m, string(r))
	}
}

// openNotebookWithNote opens an instant notebook, adds a note to the
// root directory and opens it in the editor.
func openNotebookWithNote(t *testing.T, m *Model, name string) {
	t.Helper()

	press(m, "enter")
	press(m, "m", "n")
	typeText(m, name)
	press(m, "enter", "enter")

	if m.mode != mode.Normal {
		t.Fatalf("Expected normal mode, got %s", m.mode.FullString())
	}
}

func noteContent(t *testing.T, m *Model) string {
	t.Helper()

	nb := m.engine.Notebook()
	note, err := nb.Store().FetchNote(context.Background(), nb.EditingNote.ID)
	if err != nil {
		t.Fatalf("FetchNote failed: %v", err)
	}
	return note.Content
}

func TestOpenNotebookFromEntry(t *testing.T) {
	m := testModel(t)

	if !strings.Contains(m.Content(), "Instant notebook") {
		t.Errorf("Expected the entry screen")
	}

	press(m, "enter")

	if m.mode != mode.Browse {
		t.Fatalf("Expected browse mode, got %s", m.mode.FullString())
	}
	if len(m.dirTree.Items()) != 1 {
		t.Errorf("Expected the root directory only, got %d rows", len(m.dirTree.Items()))
	}
	if !m.dirTree.Focused() {
		t.Errorf("Expected the tree to have the focus")
	}
}

func TestAddNoteAndEdit(t *testing.T) {
	m := testModel(t)
	openNotebookWithNote(t, m, "todo")

	if !m.editor.IsOpen() || m.editor.Note.Name != "todo" {
		t.Fatalf("Expected todo to be open")
	}

	press(m, "i")
	typeText(m, "hello")
	press(m, "esc")

	if m.mode != mode.Normal {
		t.Errorf("Expected normal mode after esc, got %s", m.mode.FullString())
	}
	if got := noteContent(t, m); got != "hello" {
		t.Errorf("Expected the note to be saved, got %q", got)
	}

	// the whole insert session is one undo step
	press(m, "u")
	if got := m.editor.Buffer.String(); got != "" {
		t.Errorf("Expected undo to remove the typed text, got %q", got)
	}
}

func TestChangeWordIsOneUndoStep(t *testing.T) {
	m := testModel(t)
	openNotebookWithNote(t, m, "todo")

	press(m, "i")
	typeText(m, "hello world")
	press(m, "esc", "0", "c", "w")
	typeText(m, "bye")
	press(m, "esc")

	if got := m.editor.Buffer.String(); got != "bye world" {
		t.Fatalf("Expected %q, got %q", "bye world", got)
	}

	press(m, "u")
	if got := m.editor.Buffer.String(); got != "hello world" {
		t.Errorf("Expected %q after undo, got %q", "hello world", got)
	}
}

func TestEmptyNameKeepsPrompt(t *testing.T) {
	m := testModel(t)
	press(m, "enter", "m", "n", "enter")

	if !m.statusBar.IsPrompting() {
		t.Fatalf("Expected the prompt to stay open")
	}
	if m.statusBar.Type != message.PromptError {
		t.Errorf("Expected a prompt error, got %v", m.statusBar.Type)
	}

	press(m, "esc")
	if m.statusBar.IsPrompting() || m.mode != mode.Browse {
		t.Errorf("Expected esc to close the prompt and the dialog")
	}
	if m.dialog != nil {
		t.Errorf("Expected the dialog to be closed")
	}
}

func TestRemoveNote(t *testing.T) {
	m := testModel(t)
	openNotebookWithNote(t, m, "todo")

	press(m, "b", "m", "d")
	if !m.statusBar.IsConfirming() {
		t.Fatalf("Expected a confirmation question")
	}

	press(m, "y")

	if len(m.dirTree.Items()) != 1 {
		t.Errorf("Expected the note to be gone, got %d rows", len(m.dirTree.Items()))
	}
	if m.editor.IsOpen() {
		t.Errorf("Expected the editor to be closed")
	}

	nb := m.engine.Notebook()
	if _, ok := nb.Selected.(state.SelectedDirectory); !ok {
		t.Errorf("Expected the parent directory to be selected, got %T", nb.Selected)
	}
}

func TestToggleBrowser(t *testing.T) {
	m := testModel(t)
	openNotebookWithNote(t, m, "todo")

	width := m.editor.Size.Width

	press(m, "ctrl+h")
	if !m.dirTree.Hidden() {
		t.Fatalf("Expected the tree to be hidden")
	}
	if m.editor.Size.Width != width+m.dirTree.Size.Width {
		t.Errorf("Expected the editor to take the tree width, got %d", m.editor.Size.Width)
	}

	press(m, "ctrl+h")
	if m.dirTree.Hidden() || m.editor.Size.Width != width {
		t.Errorf("Expected the tree to be shown again")
	}
}

func TestUnboundKeyMessage(t *testing.T) {
	m := testModel(t)
	press(m, "enter", "z")

	if m.statusBar.Type != message.Error || !strings.Contains(m.statusBar.Content, "z") {
		t.Errorf("Expected an unbound key message, got %q", m.statusBar.Content)
	}
}

func TestKeySequence(t *testing.T) {
	m := testModel(t)
	openNotebookWithNote(t, m, "todo")

	press(m, "2", "d")
	if m.statusBar.KeyInfo != "2d" {
		t.Errorf("Expected 2d, got %q", m.statusBar.KeyInfo)
	}

	press(m, "d")
	if m.statusBar.KeyInfo != "" {
		t.Errorf("Expected the sequence to be reset, got %q", m.statusBar.KeyInfo)
	}
}

func TestQuitSaves(t *testing.T) {
	m := testModel(t)
	openNotebookWithNote(t, m, "todo")

	press(m, "i")
	typeText(m, "draft")

	if cmd := press(m, "ctrl+c"); cmd == nil {
		t.Fatalf("Expected a quit command")
	}

	if got := noteContent(t, m); got != "draft" {
		t.Errorf("Expected the draft to be saved, got %q", got)
	}
}
