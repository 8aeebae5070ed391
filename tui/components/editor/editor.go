package editor

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/mattn/go-runewidth"

	"quire/app/buffer"
	"quire/app/data"
	"quire/app/debug"
	bufedit "quire/app/editor"
	"quire/app/motion"
	"quire/app/transition"
	"quire/app/utils"
	"quire/app/utils/clipboard"
	"quire/tui/mode"
	"quire/tui/shared"
	"quire/tui/theme"
)

const (
	defaultTabWidth = 4

	// the header line of the note name
	reservedLines = 1

	emptyMessage = "No note open"
)

// Editor shows the buffer of the open note
type Editor struct {
	shared.Component

	Buffer *buffer.Buffer

	// Note is the open note, nil if there is none
	Note *data.Note

	TabWidth    int
	LineNumbers bool

	// content of the note as it was loaded or last saved
	saved string

	offsetRow int
	offsetCol int

	lineNumberStyle,
	cursorStyle,
	selectionStyle lipgloss.Style
}

func New() *Editor {
	e := &Editor{
		Buffer:      buffer.New(""),
		TabWidth:    defaultTabWidth,
		LineNumbers: true,
	}

	e.lineNumberStyle, e.cursorStyle, e.selectionStyle = shared.EditorStyle()
	e.Buffer.OnYank = yankToClipboard

	return e
}

// yankToClipboard mirrors the register to the system clipboard
func yankToClipboard(r buffer.Register) {
	if !clipboard.Available() {
		return
	}

	if err := clipboard.Write(r.Text); err != nil {
		debug.LogWarn("clipboard:", err)
	}
}

func (e *Editor) Name() string { return "Editor" }

// SetUndoLimit sets how many changes of a note can be undone
func (e *Editor) SetUndoLimit(n int) {
	e.Buffer.SetUndoLimit(n)
}

// Open loads note into the buffer
func (e *Editor) Open(note data.Note, content string) {
	e.Note = &note
	e.saved = content
	e.offsetRow, e.offsetCol = 0, 0
	e.Buffer.SetContent(content)
}

// Close empties the editor, e.g. after the open note was removed
func (e *Editor) Close() {
	e.Note = nil
	e.saved = ""
	e.Buffer.SetContent("")
}

func (e *Editor) IsOpen() bool { return e.Note != nil }

// Dirty reports whether the buffer has unsaved changes
func (e *Editor) Dirty() bool {
	return e.IsOpen() && e.Buffer.String() != e.saved
}

// MarkSaved records the current content as saved
func (e *Editor) MarkSaved() {
	e.saved = e.Buffer.String()
}

// Rename updates the name shown for the open note
func (e *Editor) Rename(note data.Note) {
	if e.Note != nil && e.Note.ID == note.ID {
		e.Note.Name = note.Name
	}
}

// Apply performs an editor transition on the buffer
func (e *Editor) Apply(t transition.Transition) bool {
	if !e.IsOpen() {
		return false
	}
	return bufedit.Apply(e.Buffer, t)
}

// Info is the note information of the status bar
func (e *Editor) Info() string {
	if !e.IsOpen() {
		return ""
	}

	cur := e.Buffer.Cursor()
	content := e.Buffer.String()

	return fmt.Sprintf(
		"%s  %dC  %d:%d",
		e.Note.Name, utils.CharCount(content), cur.Row+1, cur.Col+1,
	)
}

// WrittenMessage describes the saved buffer like vim does
func (e *Editor) WrittenMessage(format string) string {
	if !e.IsOpen() {
		return ""
	}
	content := e.Buffer.String()
	return fmt.Sprintf(format, e.Note.Name, e.Buffer.LineCount(), len(content))
}

///
/// rendering
///

// cellCol returns the screen column of the rune at col in line
func (e *Editor) cellCol(line []rune, col int) int {
	cells := 0
	for i := 0; i < col && i < len(line); i++ {
		cells += e.runeWidth(line[i])
	}
	return cells
}

func (e *Editor) runeWidth(r rune) int {
	if r == '\t' {
		return max(e.TabWidth, 1)
	}
	return max(runewidth.RuneWidth(r), 1)
}

func (e *Editor) gutterWidth() int {
	if !e.LineNumbers {
		return 0
	}
	// digits plus padding
	return len(strconv.Itoa(e.Buffer.LineCount())) + 1
}

// scroll keeps the cursor inside the visible area
func (e *Editor) scroll(height, width int) {
	cur := e.Buffer.Cursor()

	if cur.Row < e.offsetRow {
		e.offsetRow = cur.Row
	}
	if height > 0 && cur.Row >= e.offsetRow+height {
		e.offsetRow = cur.Row - height + 1
	}

	col := e.cellCol(e.Buffer.Line(cur.Row), cur.Col)
	if col < e.offsetCol {
		e.offsetCol = col
	}
	if width > 0 && col >= e.offsetCol+width {
		e.offsetCol = col - width + 1
	}
}

type cellKind int

const (
	cellPlain cellKind = iota
	cellSelected
	cellCursor
)

func (e *Editor) kindAt(p motion.Position, from, to motion.Position, selecting bool) cellKind {
	if e.Focused() && p == e.Buffer.Cursor() {
		return cellCursor
	}

	// the selection includes both of its ends
	if selecting && !before(p, from) && !before(to, p) {
		return cellSelected
	}

	return cellPlain
}

func before(a, b motion.Position) bool {
	return a.Row < b.Row || (a.Row == b.Row && a.Col < b.Col)
}

func (e *Editor) render(text string, kind cellKind) string {
	switch kind {
	case cellCursor:
		return e.cursorStyle.Render(text)
	case cellSelected:
		return e.selectionStyle.Render(text)
	default:
		return text
	}
}

// renderLine draws the visible part of row. Consecutive cells of the
// same kind are rendered together.
func (e *Editor) renderLine(row, width int) string {
	line := e.Buffer.Line(row)
	from, to, selecting := e.Buffer.SelectionRange()
	selecting = selecting && e.Mode == mode.Visual

	var (
		b    strings.Builder
		run  strings.Builder
		kind = cellPlain
		cell = 0
		used = 0
	)

	flush := func() {
		if run.Len() > 0 {
			b.WriteString(e.render(run.String(), kind))
			run.Reset()
		}
	}

	// one extra position for the cursor behind the last character
	for col := 0; col <= len(line); col++ {
		r := ' '
		if col < len(line) {
			r = line[col]
		}

		w := e.runeWidth(r)
		if cell+w <= e.offsetCol {
			cell += w
			continue
		}
		if used+w > width {
			break
		}

		k := e.kindAt(motion.Position{Row: row, Col: col}, from, to, selecting)
		if col == len(line) && k != cellCursor {
			break
		}

		if k != kind {
			flush()
			kind = k
		}

		if r == '\t' {
			run.WriteString(strings.Repeat(" ", w))
		} else {
			run.WriteRune(r)
		}

		cell += w
		used += w
	}

	flush()
	return b.String()
}

func (e *Editor) header(width int) string {
	name := e.Note.Name
	if e.Dirty() {
		name += " [+]"
	}

	return lipgloss.NewStyle().
		Foreground(theme.ColourLineNumber).
		Render(utils.TruncateText(name, width))
}

// Content renders the editor column
func (e *Editor) Content() string {
	width, height := e.InnerSize()
	style := theme.BaseColumnLayout(e.Size, e.Focused())

	if !e.IsOpen() {
		return style.
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(theme.ColourLineNumber).
			Render(emptyMessage)
	}

	gutter := e.gutterWidth()
	textWidth := max(width-gutter, 0)
	rowsHeight := max(height-reservedLines, 0)

	e.scroll(rowsHeight, textWidth)

	lines := []string{e.header(width)}

	end := min(e.offsetRow+rowsHeight, e.Buffer.LineCount())
	for row := e.offsetRow; row < end; row++ {
		line := e.renderLine(row, textWidth)

		if gutter > 0 {
			nbr := e.lineNumberStyle.
				Width(gutter).
				Align(lipgloss.Right).
				Render(strconv.Itoa(row + 1))
			line = nbr + line
		}

		lines = append(lines, line)
	}

	return style.Render(strings.Join(lines, "\n"))
}

func (e *Editor) View() tea.View {
	var view tea.View
	view.SetContent(e.Content())
	return view
}
