package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	bl "github.com/winder/bubblelayout"

	"quire/app/apperr"
	"quire/app/config"
	"quire/app/debug"
	"quire/app/engine"
	"quire/app/event"
	"quire/app/state"
	"quire/app/transition"
	directorytree "quire/tui/components/directory_tree"
	"quire/tui/components/editor"
	"quire/tui/components/entry"
	"quire/tui/components/overlay"
	"quire/tui/components/statusbar"
	"quire/tui/keyinput"
	"quire/tui/message"
	"quire/tui/mode"
	"quire/tui/theme"
)

// pending is the dialog action waiting for prompt input
type pending int

const (
	pendingNone pending = iota
	pendingRename
	pendingRemove
	pendingAddNote
	pendingAddDirectory
)

// Model is the Bubble Tea model for the TUI. It turns key presses into
// engine events and interprets the transitions the engine returns.
type Model struct {
	ctx    context.Context
	engine *engine.Engine

	layout     bl.BubbleLayout
	treeSize   bl.Size
	editorSize bl.Size

	width, height int

	keyInput *keyinput.Input
	mode     mode.Mode

	entry     *entry.Entry
	dirTree   *directorytree.DirectoryTree
	editor    *editor.Editor
	statusBar *statusbar.StatusBar

	// the actions dialog, nil while it is closed
	dialog  *overlay.Dialog
	pending pending
}

// New creates the model for eng, which must still be on the entry
// screen.
func New(ctx context.Context, eng *engine.Engine, settings config.Settings) (*Model, error) {
	keyInput := keyinput.New()
	if err := keyInput.LoadKeyMap(settings.KeymapFile); err != nil {
		return nil, err
	}

	storage := event.Instant
	if settings.Storage == "file" {
		storage = event.File
	}

	ed := editor.New()
	ed.TabWidth = settings.TabWidth
	ed.LineNumbers = settings.LineNumbers
	if settings.UndoLimit > 0 {
		ed.SetUndoLimit(settings.UndoLimit)
	}

	m := &Model{
		ctx:       ctx,
		engine:    eng,
		layout:    bl.New(),
		keyInput:  keyInput,
		mode:      mode.Entry,
		entry:     entry.New(storage, settings.DatabasePath),
		dirTree:   directorytree.New(),
		editor:    ed,
		statusBar: statusbar.New(),
	}

	m.componentsInit()

	return m, nil
}

// componentsInit registers the columns in the layout
func (m *Model) componentsInit() {
	m.dirTree.ID = m.layout.Add("width 30")
	m.editor.ID = m.layout.Add("grow")
}

func (m *Model) Init() tea.Cmd {
	return func() tea.Msg {
		return m.layout.Resize(theme.TerminalSize())
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.entry.Width, m.entry.Height = msg.Width, max(msg.Height-1, 0)
		m.statusBar.Update(msg)

		// Convert WindowSizeMsg to BubbleLayoutMsg.
		// The last line belongs to the status bar.
		return m, func() tea.Msg {
			return m.layout.Resize(msg.Width, max(msg.Height-1, 0))
		}

	case bl.BubbleLayoutMsg:
		m.treeSize, _ = msg.Size(m.dirTree.ID)
		m.editorSize, _ = msg.Size(m.editor.ID)
		m.applyLayout()
	}

	return m, nil
}

// applyLayout hands the column sizes to the components. The editor
// takes the width of the tree while it is hidden.
func (m *Model) applyLayout() {
	m.dirTree.Size = m.treeSize
	m.editor.Size = m.editorSize

	if m.dirTree.Hidden() {
		m.editor.Size.Width += m.treeSize.Width
	}
}

func (m *Model) View() tea.View {
	var view tea.View
	view.SetContent(m.Content())
	return view
}

// Content renders the whole screen
func (m *Model) Content() string {
	if m.mode == mode.Entry {
		return lipgloss.JoinVertical(lipgloss.Left,
			m.entry.Content(),
			m.statusBar.View(),
		)
	}

	var columns []string
	if !m.dirTree.Hidden() {
		columns = append(columns, m.dirTree.Content())
	}
	columns = append(columns, m.editor.Content())

	screen := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, columns...),
		m.statusBar.View(),
	)

	if m.dialog != nil && !m.statusBar.IsPrompting() {
		screen = m.dialog.Over(screen, m.width)
	}

	return screen
}

///
/// input
///

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return m.quit()
	}

	if m.statusBar.IsPrompting() {
		return m.handlePrompt(msg)
	}

	m.statusBar.Clear()
	m.keyInput.Mode = m.mode

	key, ok := m.keyInput.Resolve(msg.String())

	switch m.mode {
	case mode.Entry:
		return m.handleEntryKey(key, ok)

	case mode.Insert:
		if !ok || key != event.Esc {
			if m.editor.HandleInsert(msg) {
				m.sync()
				return nil
			}
		}

	case mode.Dialog:
		if m.dialog != nil {
			if action, found := m.dialog.ActionFor(msg.String()); found {
				return m.startAction(action)
			}
		}
	}

	if !ok {
		m.statusBar.SetMessage(message.StatusBarMsg{
			Content: fmt.Sprintf(message.StatusBar.UnboundKey, msg.String()),
			Type:    message.Error,
		})
		return nil
	}

	m.keyInput.Record(key)
	return m.dispatch(event.Press(key))
}

func (m *Model) handleEntryKey(key event.Key, ok bool) tea.Cmd {
	if !ok {
		return nil
	}

	switch key {
	case event.KeyJ, event.Down:
		m.entry.Next()
	case event.KeyK, event.Up:
		m.entry.Prev()
	case event.Enter, event.KeyL:
		return m.dispatch(m.entry.Open())
	case event.KeyQ, event.Esc:
		return m.quit()
	}

	return nil
}

// dispatch hands ev to the engine and interprets the transition
func (m *Model) dispatch(ev event.Event) tea.Cmd {
	before := m.mode

	t, err := m.engine.Dispatch(m.ctx, ev)
	if err != nil {
		t = transition.Error{Err: err}
	}

	after := mode.FromState(m.engine.State())

	// everything typed in one insert session is undone at once
	switch {
	case after == mode.Insert && before != mode.Insert:
		m.editor.Buffer.BeginBatch()
	case before == mode.Insert && after != mode.Insert:
		m.editor.Buffer.EndBatch()
	}

	cmd := m.interpret(t)
	m.sync()

	return cmd
}

///
/// transitions
///

// interpret performs what t asks of the presentation
func (m *Model) interpret(t transition.Transition) tea.Cmd {
	switch t := t.(type) {
	case transition.OpenNotebook:
		m.statusBar.SetMessage(message.StatusBarMsg{Content: "Opened " + t.Root.Name})

	case transition.Inedible:
		return m.inedible(t.Event)

	case transition.None, transition.TreeNumberingMode,
		transition.OpenDirectory, transition.CloseDirectory:

	case transition.Alert:
		m.statusBar.SetMessage(message.StatusBarMsg{Content: t.Message, Type: message.Error})

	case transition.Log:
		debug.LogInfo(t.Message)

	case transition.Error:
		m.showError(t.Err)

	case transition.OpenNote:
		m.editor.Open(t.Note, t.Content)

	case transition.EditMode:

	case transition.ViewMode:
		m.save()

	case transition.BrowseNoteTree:
		m.save()

	case transition.ShowNoteActionsDialog:
		m.dialog = overlay.NoteDialog(t.Note.Name)

	case transition.ShowDirectoryActionsDialog:
		m.dialog = overlay.DirectoryDialog(t.Directory.Name)

	case transition.CloseActionsDialog:
		m.dialog = nil

	case transition.AddNote:
		m.statusBar.SetMessage(message.StatusBarMsg{Content: "Added " + t.Note.Name})

	case transition.AddDirectory:
		m.statusBar.SetMessage(message.StatusBarMsg{Content: "Added " + t.Directory.Name})

	case transition.RemoveNote:
		m.statusBar.SetMessage(message.StatusBarMsg{Content: "Deleted " + t.Note.Name})

	case transition.RemoveDirectory:
		m.statusBar.SetMessage(message.StatusBarMsg{Content: "Deleted " + t.Directory.Name})

	case transition.RenameNote:
		m.editor.Rename(t.Note)

	case transition.RenameDirectory:

	case transition.SelectNext:
		return m.selectRow(t.N)

	case transition.SelectPrev:
		return m.selectRow(-t.N)

	case transition.ToggleBrowser:
		m.dirTree.Toggle()
		m.applyLayout()

	case transition.NormalMode, transition.VisualMode:
		m.editor.Apply(t)

	default:
		panic(fmt.Sprintf("unknown transition %T", t))
	}

	return nil
}

// inedible handles keys the engine has no use for
func (m *Model) inedible(ev event.Event) tea.Cmd {
	k, ok := ev.(event.KeyEvent)
	if !ok {
		return nil
	}

	if m.mode == mode.Browse && k.Key == event.KeyQ {
		return m.quit()
	}

	m.statusBar.SetMessage(message.StatusBarMsg{
		Content: fmt.Sprintf(message.StatusBar.UnboundKey, k.Key),
		Type:    message.Error,
	})
	return nil
}

// selectRow selects the row n rows away from the selection
func (m *Model) selectRow(n int) tea.Cmd {
	item, ok := m.dirTree.Step(n)
	if !ok {
		return nil
	}

	if item.IsNote() {
		return m.dispatch(event.SelectNote{Note: *item.Note})
	}
	return m.dispatch(event.SelectDirectory{Directory: *item.Directory})
}

// sync brings the components in line with the engine state
func (m *Model) sync() {
	s := m.engine.State()
	m.mode = mode.FromState(s)
	m.keyInput.Mode = m.mode

	m.statusBar.Mode = m.mode
	m.editor.Mode = m.mode

	if !isPending(s) {
		m.keyInput.ResetKeysDown()
	}
	m.statusBar.KeyInfo = m.keyInput.KeySequence

	nb, ok := s.(*state.NotebookState)
	if !ok {
		return
	}

	if m.mode != mode.Dialog {
		m.dialog = nil
	}

	if nb.EditingNote == nil && m.editor.IsOpen() {
		m.editor.Close()
	}

	if nb.IsEditing() {
		m.editor.Focus()
		m.dirTree.Blur()
	} else {
		m.dirTree.Focus()
		m.editor.Blur()
	}

	m.dirTree.SetTree(nb.Root, nb.Selected.ID())
	m.statusBar.NoteInfo = m.editor.Info()
}

// isPending reports whether s waits for more keys of a command
func isPending(s state.State) bool {
	nb, ok := s.(*state.NotebookState)
	if !ok {
		return false
	}

	switch inner := nb.Inner.(type) {
	case state.NoteTreeNumber:
		return true
	case state.EditingNormalMode:
		_, idle := inner.Vim.(state.NormalIdle)
		return !idle
	case state.EditingVisualMode:
		_, idle := inner.Vim.(state.VisualIdle)
		return !idle
	default:
		return false
	}
}

///
/// dialog actions
///

// selectedName returns the name of the selected note or directory
func (m *Model) selectedName() (string, bool) {
	nb := m.engine.Notebook()
	if nb == nil {
		return "", false
	}

	switch sel := nb.Selected.(type) {
	case state.SelectedNote:
		return sel.Note.Name, true
	case state.SelectedDirectory:
		return sel.Directory.Name, false
	default:
		return "", false
	}
}

// startAction opens the prompt of a dialog action
func (m *Model) startAction(a overlay.Action) tea.Cmd {
	name, isNote := m.selectedName()

	switch a {
	case overlay.Rename:
		m.pending = pendingRename
		return m.statusBar.AskInput(fmt.Sprintf(message.StatusBar.RenamePrompt, name), name)

	case overlay.Remove:
		m.pending = pendingRemove
		prompt := message.StatusBar.RemovePromptDirContent
		if isNote {
			prompt = message.StatusBar.RemovePrompt
		}
		m.statusBar.AskConfirm(fmt.Sprintf(prompt, name))
		return nil

	case overlay.AddNote:
		m.pending = pendingAddNote
		return m.statusBar.AskInput(message.StatusBar.AddNotePrompt, "")

	case overlay.AddDirectory:
		m.pending = pendingAddDirectory
		return m.statusBar.AskInput(message.StatusBar.AddDirPrompt, "")
	}

	return nil
}

func (m *Model) handlePrompt(msg tea.KeyMsg) tea.Cmd {
	if m.statusBar.IsConfirming() {
		switch msg.String() {
		case message.Response.Yes:
			m.statusBar.BlurPrompt()
			return m.confirmAction("")
		case message.Response.No, "esc":
			return m.cancelAction()
		}
		return nil
	}

	switch msg.String() {
	case "enter":
		return m.confirmAction(m.statusBar.Value())
	case "esc":
		return m.cancelAction()
	}

	return m.statusBar.Update(msg)
}

// actionEvent builds the event of the pending action
func (m *Model) actionEvent(value string) event.Event {
	_, isNote := m.selectedName()

	switch m.pending {
	case pendingRename:
		if isNote {
			return event.RenameNote{Name: value}
		}
		return event.RenameDirectory{Name: value}
	case pendingRemove:
		if isNote {
			return event.RemoveNote{}
		}
		return event.RemoveDirectory{}
	case pendingAddNote:
		return event.AddNote{Name: value}
	case pendingAddDirectory:
		return event.AddDirectory{Name: value}
	default:
		return nil
	}
}

// confirmAction runs the pending action. Invalid names keep the
// prompt open.
func (m *Model) confirmAction(value string) tea.Cmd {
	ev := m.actionEvent(value)
	if ev == nil {
		return m.cancelAction()
	}

	t, err := m.engine.Dispatch(m.ctx, ev)
	if apperr.IsPromptError(err) {
		m.statusBar.PromptError(err)
		return nil
	}

	m.statusBar.BlurPrompt()
	m.pending = pendingNone

	if err != nil {
		m.showError(err)
		return m.dispatch(event.CloseActionsDialog{})
	}

	cmd := m.interpret(t)
	m.sync()

	return cmd
}

func (m *Model) cancelAction() tea.Cmd {
	m.statusBar.BlurPrompt()
	m.pending = pendingNone
	return m.dispatch(event.CloseActionsDialog{})
}

///
/// saving
///

// save writes a dirty buffer through the engine. The ViewMode the
// engine answers with is not interpreted again.
func (m *Model) save() {
	if !m.editor.Dirty() {
		return
	}

	content := m.editor.Buffer.String()
	if _, err := m.engine.Dispatch(m.ctx, event.UpdateNoteContent{Content: content}); err != nil {
		m.showError(err)
		return
	}

	m.editor.MarkSaved()
	m.statusBar.SetMessage(message.StatusBarMsg{
		Content: m.editor.WrittenMessage(message.StatusBar.FileWritten),
	})
}

func (m *Model) showError(err error) {
	debug.LogErr(err)
	m.statusBar.SetMessage(message.StatusBarMsg{Content: err.Error(), Type: message.Error})
}

// quit saves the open note and ends the program
func (m *Model) quit() tea.Cmd {
	if m.mode == mode.Insert {
		m.editor.Buffer.EndBatch()
	}
	m.save()

	return tea.Quit
}
