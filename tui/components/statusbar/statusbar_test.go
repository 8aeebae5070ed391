package statusbar

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea/v2"

	"quire/tui/message"
	"quire/tui/mode"
)

func TestModeIsShownWithoutMessage(t *testing.T) {
	sb := New()
	sb.Size.Width = 100
	sb.Mode = mode.Insert

	if !strings.Contains(sb.View(), "-- INSERT --") {
		t.Errorf("Expected the insert mode in the status bar")
	}

	sb.SetMessage(message.StatusBarMsg{Content: "saved"})
	view := sb.View()
	if !strings.Contains(view, "saved") || strings.Contains(view, "-- INSERT --") {
		t.Errorf("Expected the message instead of the mode, got %q", view)
	}
}

func TestInputPrompt(t *testing.T) {
	sb := New()
	sb.AskInput("Rename: ", "old")

	if !sb.IsPrompting() || sb.IsConfirming() {
		t.Fatalf("Expected an input prompt")
	}

	// messages don't replace an open prompt
	sb.SetMessage(message.StatusBarMsg{Content: "ignored"})
	if sb.Content == "ignored" {
		t.Errorf("Expected the prompt to keep its content")
	}

	sb.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	if got := sb.Value(); got != "oldx" {
		t.Errorf("Expected %q, got %q", "oldx", got)
	}

	sb.BlurPrompt()
	if sb.IsPrompting() || sb.Value() != "" {
		t.Errorf("Expected the prompt to be closed and empty")
	}
}

func TestPromptError(t *testing.T) {
	sb := New()
	sb.AskInput("New note: ", "")
	sb.PromptError(errors.New("name must not be empty"))

	if sb.Type != message.PromptError {
		t.Errorf("Expected a prompt error, got %v", sb.Type)
	}

	sb.Update(tea.KeyPressMsg{Code: 'a', Text: "a"})
	if sb.Type != message.Prompt {
		t.Errorf("Expected typing to clear the error")
	}
}

func TestConfirm(t *testing.T) {
	sb := New()
	sb.Size.Width = 120
	sb.AskConfirm("Delete `todo`? [y(es),n(o)]")

	if !sb.IsConfirming() || !sb.IsPrompting() {
		t.Fatalf("Expected a question")
	}

	if !strings.Contains(sb.View(), "Delete `todo`?") {
		t.Errorf("Expected the question in the status bar")
	}

	sb.BlurPrompt()
	if sb.IsConfirming() {
		t.Errorf("Expected the question to be closed")
	}
}
