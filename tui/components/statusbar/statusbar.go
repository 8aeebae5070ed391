package statusbar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	bl "github.com/winder/bubblelayout"

	"quire/app/utils"
	"quire/tui/message"
	"quire/tui/mode"
	"quire/tui/theme"
)

// StatusBar represents the bottom bar UI component that displays messages,
// input prompts, and application mode information.
type StatusBar struct {
	ID   bl.ID
	Size bl.Size

	Content string
	Type    message.Type
	Prompt  textinput.Model

	// The current mode
	Mode mode.Mode

	// Information about the open note
	NoteInfo string

	// The keys of a pending command
	KeyInfo string

	// Set while a yes/no question is shown
	confirming bool
}

// New creates and returns a new StatusBar with default settings.
func New() *StatusBar {
	ti := textinput.New()
	ti.Prompt = ":"
	ti.CharLimit = 100
	ti.VirtualCursor = true

	return &StatusBar{
		Prompt: ti,
		Mode:   mode.Entry,
	}
}

// Name returns the unique name of the StatusBar
func (sb *StatusBar) Name() string { return "StatusBar" }

// SetMessage shows msg in the general column unless a prompt is open
func (sb *StatusBar) SetMessage(msg message.StatusBarMsg) {
	if sb.IsPrompting() {
		return
	}

	sb.Content = msg.Content
	sb.Type = msg.Type
}

// Clear removes the message of the general column
func (sb *StatusBar) Clear() {
	sb.SetMessage(message.StatusBarMsg{})
}

// AskInput opens the text prompt with value already filled in
func (sb *StatusBar) AskInput(prompt string, value string) tea.Cmd {
	sb.confirming = false
	sb.Type = message.Prompt
	sb.Content = ""

	sb.Prompt.Prompt = prompt
	sb.Prompt.SetValue(value)
	sb.Prompt.CursorEnd()

	return sb.Prompt.Focus()
}

// AskConfirm shows a yes/no question
func (sb *StatusBar) AskConfirm(question string) {
	sb.Prompt.Blur()
	sb.confirming = true
	sb.Type = message.Prompt
	sb.Content = question
}

// PromptError keeps the prompt open and shows why its input was
// rejected.
func (sb *StatusBar) PromptError(err error) {
	sb.Type = message.PromptError
	sb.Content = err.Error()
}

// IsPrompting reports whether the status bar takes the key input
func (sb *StatusBar) IsPrompting() bool {
	return sb.confirming || sb.Prompt.Focused()
}

func (sb *StatusBar) IsConfirming() bool { return sb.confirming }

// Value returns the text typed into the prompt
func (sb *StatusBar) Value() string {
	return strings.TrimSpace(sb.Prompt.Value())
}

// BlurPrompt closes the prompt or question
func (sb *StatusBar) BlurPrompt() {
	sb.confirming = false
	sb.Prompt.SetValue("")
	sb.Prompt.Blur()
	sb.Type = message.Success
	sb.Content = ""
}

// Update forwards key input to the focused prompt and tracks the
// terminal width.
func (sb *StatusBar) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if sb.Prompt.Focused() {
			// typing again hides the last error
			if sb.Type == message.PromptError {
				sb.Type = message.Prompt
				sb.Content = ""
			}
			sb.Prompt, cmd = sb.Prompt.Update(msg)
		}

	case tea.WindowSizeMsg:
		sb.Size.Width = msg.Width
		sb.Size.Height = 1
	}

	return cmd
}

// View renders the StatusBar as a string
func (sb *StatusBar) View() string {
	style := style()

	colGeneral := sb.Content

	// Display current mode only if there's is no message or prompt
	if colGeneral == "" && !sb.IsPrompting() {
		colGeneral = sb.ModeView()
	}

	if sb.Prompt.Focused() {
		promptView := strings.TrimSpace(sb.Prompt.View())
		if sb.Type == message.PromptError {
			promptView = fmt.Sprint(promptView, "  ", sb.Content)
		}
		colGeneral = promptView
	}

	width := sb.Size.Width
	if width == 0 {
		width, _ = theme.TerminalSize()
	}

	// Set the widths of each column
	wColNoteInfo := min(50, width/2)
	wColKeyInfo := 10
	wColGeneral := max(width-(wColNoteInfo+wColKeyInfo), 1)

	colNoteInfo := utils.TruncateText(sb.NoteInfo, max(wColNoteInfo-2, 0))
	colKeyInfo := utils.TruncateText(sb.KeyInfo, max(wColKeyInfo-2, 0))

	return lipgloss.JoinHorizontal(lipgloss.Right,
		style.Width(wColGeneral).Foreground(sb.Type.Colour()).Render(colGeneral),
		style.Width(wColNoteInfo).Align(lipgloss.Right).Render(colNoteInfo),
		style.Width(wColKeyInfo).Align(lipgloss.Right).PaddingRight(1).Render(colKeyInfo),
	)
}

// ModeView returns the rendered mode string
func (sb *StatusBar) ModeView() string {
	style := lipgloss.NewStyle().
		Foreground(sb.Mode.Colour()).
		PaddingRight(1)

	return style.Render(sb.Mode.FullString())
}

func style() lipgloss.Style {
	return lipgloss.NewStyle().
		AlignVertical(lipgloss.Center).
		PaddingLeft(1).
		Height(1)
}
