package editor

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/x/input"

	"quire/app/motion"
)

// HandleInsert types msg into the buffer. Keys that don't produce
// text or move the cursor are reported as not handled.
func (e *Editor) HandleInsert(msg tea.KeyMsg) bool {
	if !e.IsOpen() {
		return false
	}

	if msg.Key().Code == '\t' {
		msg = e.softTab(msg)
	}

	buf := e.Buffer
	cur := buf.Cursor()

	switch msg.String() {
	case "enter":
		buf.InsertNewline()
	case "backspace":
		buf.DeleteChar()
	case "left":
		buf.MoveCursor(motion.CharBack(buf, cur, 1))
	case "right":
		buf.MoveCursor(motion.CharForward(buf, cur, 1))
	case "up":
		buf.MoveCursor(motion.LineUp(buf, cur, 1))
	case "down":
		buf.MoveCursor(motion.LineDown(buf, cur, 1))
	default:
		text := msg.Key().Text
		if text == "" {
			return false
		}
		buf.InsertString(text)
	}

	return true
}

// softTab turns a tab into spaces
func (e *Editor) softTab(msg tea.KeyMsg) tea.KeyMsg {
	k := msg.Key()
	tabStr := strings.Repeat(string(input.KeySpace), max(e.TabWidth, 1))

	return tea.KeyPressMsg{
		Text:        tabStr,
		Mod:         k.Mod,
		Code:        k.Code,
		ShiftedCode: k.ShiftedCode,
		BaseCode:    k.BaseCode,
		IsRepeat:    k.IsRepeat,
	}
}
