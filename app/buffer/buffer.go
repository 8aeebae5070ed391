// Package buffer implements the line oriented text buffer the editor
// works on: a cursor, an optional selection, a single yank register
// and a bounded undo history.
package buffer

import (
	"slices"
	"strings"

	"quire/app/motion"
)

// Register holds the last yanked text. Linewise text was yanked as
// whole lines and is pasted as new lines.
type Register struct {
	Text     string
	Linewise bool
}

func (r Register) Empty() bool { return r.Text == "" && !r.Linewise }

type Buffer struct {
	lines    [][]rune
	cursor   motion.Position
	anchor   *motion.Position
	register Register
	history  History

	// depth of nested batches and the state before the outermost
	batching    int
	batchStart  string
	batchCursor motion.Position

	// OnYank is called whenever the register changes
	OnYank func(Register)
}

// New returns a buffer holding content with the cursor at the start.
func New(content string) *Buffer {
	b := &Buffer{history: NewHistory(defaultUndoLimit)}
	b.lines = splitLines(content)
	return b
}

// SetUndoLimit sets the number of changes that can be undone.
// It resets the history.
func (b *Buffer) SetUndoLimit(n int) {
	b.history = NewHistory(n)
}

// SetContent replaces the whole buffer, e.g. when opening a note.
// Cursor, selection and history are reset, the register is kept.
func (b *Buffer) SetContent(content string) {
	b.lines = splitLines(content)
	b.cursor = motion.Position{}
	b.anchor = nil
	b.batching = 0
	b.history = NewHistory(b.history.maxItems)
}

func splitLines(content string) [][]rune {
	parts := strings.Split(content, "\n")
	lines := make([][]rune, len(parts))
	for i, part := range parts {
		lines[i] = []rune(part)
	}
	return lines
}

func (b *Buffer) LineCount() int { return len(b.lines) }

func (b *Buffer) Line(row int) []rune { return b.lines[row] }

// Lines returns a copy of all lines as strings
func (b *Buffer) Lines() []string {
	lines := make([]string, len(b.lines))
	for i, line := range b.lines {
		lines[i] = string(line)
	}
	return lines
}

func (b *Buffer) String() string {
	return strings.Join(b.Lines(), "\n")
}

func (b *Buffer) Cursor() motion.Position { return b.cursor }

func (b *Buffer) Register() Register { return b.register }

// SetRegister replaces the register without calling OnYank,
// e.g. with the content of the system clipboard.
func (b *Buffer) SetRegister(r Register) { b.register = r }

func (b *Buffer) History() *History { return &b.history }

// MoveCursor moves the cursor to p, clamped into the buffer.
// It extends the selection if there is one.
func (b *Buffer) MoveCursor(p motion.Position) {
	b.cursor = motion.Clamp(b, p)
}

///
/// history
///

// Batch runs fn and records everything it changes as a single
// history entry. Batches nest.
func (b *Buffer) Batch(fn func()) {
	b.edit(fn)
}

// BeginBatch starts a batch that stays open until EndBatch, e.g. for
// everything typed in one insert session.
func (b *Buffer) BeginBatch() {
	if b.batching == 0 {
		b.batchStart = b.String()
		b.batchCursor = b.cursor
	}
	b.batching++
}

// EndBatch closes the innermost batch. Closing the outermost one
// records the change, if there is any.
func (b *Buffer) EndBatch() {
	if b.batching == 0 {
		return
	}

	b.batching--
	if b.batching > 0 {
		return
	}

	if after := b.String(); after != b.batchStart {
		b.history.Record(b.batchStart, after, b.batchCursor, b.cursor)
	}
}

// InBatch reports whether a batch is open
func (b *Buffer) InBatch() bool { return b.batching > 0 }

// edit records the changes of fn unless it's part of a batch.
func (b *Buffer) edit(fn func()) {
	b.BeginBatch()
	fn()
	b.EndBatch()
}

// Undo reverts the last change. It returns false if there
// was nothing to undo.
func (b *Buffer) Undo() bool {
	content, cursor, ok := b.history.Undo(b.String())
	if !ok {
		return false
	}

	b.restore(content, cursor)
	return true
}

// Redo re-applies the last undone change.
func (b *Buffer) Redo() bool {
	content, cursor, ok := b.history.Redo(b.String())
	if !ok {
		return false
	}

	b.restore(content, cursor)
	return true
}

func (b *Buffer) restore(content string, cursor motion.Position) {
	b.lines = splitLines(content)
	b.anchor = nil
	b.MoveCursor(cursor)
}

///
/// insertion
///

func (b *Buffer) InsertRune(r rune) {
	if r == '\n' {
		b.InsertNewline()
		return
	}

	b.edit(func() {
		row, col := b.cursor.Row, b.cursor.Col
		b.lines[row] = slices.Insert(b.lines[row], col, r)
		b.cursor.Col++
	})
}

// InsertString inserts s at the cursor. Newlines split the line.
func (b *Buffer) InsertString(s string) {
	b.edit(func() {
		for _, r := range s {
			b.InsertRune(r)
		}
	})
}

// InsertNewline splits the current line at the cursor
func (b *Buffer) InsertNewline() {
	b.edit(func() {
		row, col := b.cursor.Row, b.cursor.Col
		line := b.lines[row]

		head := slices.Clone(line[:col])
		tail := slices.Clone(line[col:])

		b.lines[row] = head
		b.lines = slices.Insert(b.lines, row+1, tail)
		b.cursor = motion.Position{Row: row + 1, Col: 0}
	})
}

///
/// deletion
///

// DeleteChar deletes the character before the cursor and joins the
// line with the previous one at column 0.
func (b *Buffer) DeleteChar() {
	b.edit(func() {
		row, col := b.cursor.Row, b.cursor.Col

		if col > 0 {
			b.lines[row] = slices.Delete(b.lines[row], col-1, col)
			b.cursor.Col--
			return
		}

		if row == 0 {
			return
		}

		prevLen := len(b.lines[row-1])
		b.lines[row-1] = append(b.lines[row-1], b.lines[row]...)
		b.lines = slices.Delete(b.lines, row, row+1)
		b.cursor = motion.Position{Row: row - 1, Col: prevLen}
	})
}

// DeleteForward cuts up to n characters under and after the cursor
// into the register. It never crosses the end of the line.
func (b *Buffer) DeleteForward(n int) {
	from := b.cursor
	to := motion.Position{Row: from.Row, Col: min(from.Col+max(n, 1), len(b.lines[from.Row]))}
	if to.Col <= from.Col {
		return
	}

	b.edit(func() {
		b.yank(Register{Text: b.deleteRange(from, to)})
	})
}

// deleteRange removes the text between from and to (exclusive)
// and returns it. from must not be after to.
func (b *Buffer) deleteRange(from, to motion.Position) string {
	text := b.textRange(from, to)

	head := b.lines[from.Row][:from.Col]
	tail := b.lines[to.Row][to.Col:]

	joined := make([]rune, 0, len(head)+len(tail))
	joined = append(joined, head...)
	joined = append(joined, tail...)

	b.lines = slices.Replace(b.lines, from.Row, to.Row+1, joined)
	b.cursor = from

	return text
}

func (b *Buffer) textRange(from, to motion.Position) string {
	if from.Row == to.Row {
		return string(b.lines[from.Row][from.Col:to.Col])
	}

	var sb strings.Builder
	sb.WriteString(string(b.lines[from.Row][from.Col:]))
	for row := from.Row + 1; row < to.Row; row++ {
		sb.WriteByte('\n')
		sb.WriteString(string(b.lines[row]))
	}
	sb.WriteByte('\n')
	sb.WriteString(string(b.lines[to.Row][:to.Col]))

	return sb.String()
}

///
/// selection
///

// StartSelection anchors a selection at the cursor
func (b *Buffer) StartSelection() {
	anchor := b.cursor
	b.anchor = &anchor
}

func (b *Buffer) CancelSelection() {
	b.anchor = nil
}

func (b *Buffer) HasSelection() bool {
	return b.anchor != nil
}

// SelectionRange returns the selection ordered from start to end.
// The end is exclusive.
func (b *Buffer) SelectionRange() (motion.Position, motion.Position, bool) {
	if b.anchor == nil {
		return motion.Position{}, motion.Position{}, false
	}

	from := motion.Clamp(b, *b.anchor)
	to := b.cursor

	if before(to, from) {
		from, to = to, from
	}

	return from, to, true
}

func before(a, b motion.Position) bool {
	return a.Row < b.Row || (a.Row == b.Row && a.Col < b.Col)
}

// Copy yanks the selection and ends it. The cursor stays.
func (b *Buffer) Copy() {
	from, to, ok := b.SelectionRange()
	if !ok {
		return
	}

	b.anchor = nil
	b.yank(Register{Text: b.textRange(from, to)})
}

// Cut yanks and deletes the selection. Without a selection
// nothing happens.
func (b *Buffer) Cut() {
	from, to, ok := b.SelectionRange()
	if !ok {
		return
	}

	b.anchor = nil
	if from == to {
		return
	}

	b.edit(func() {
		b.yank(Register{Text: b.deleteRange(from, to)})
	})
}

func (b *Buffer) yank(r Register) {
	b.register = r
	if b.OnYank != nil {
		b.OnYank(r)
	}
}

///
/// line wise
///

// lineSpan returns the rows of n lines starting at the cursor row
func (b *Buffer) lineSpan(n int) (int, int) {
	first := b.cursor.Row
	last := min(first+max(n, 1), len(b.lines))
	return first, last
}

// CopyLines yanks n lines starting at the cursor row.
func (b *Buffer) CopyLines(n int) {
	first, last := b.lineSpan(n)
	b.yank(Register{
		Text:     strings.Join(b.Lines()[first:last], "\n"),
		Linewise: true,
	})
}

// CutLines yanks and deletes n lines starting at the cursor row.
// The cursor goes to the first non-blank of the line that takes
// their place.
func (b *Buffer) CutLines(n int) {
	b.CopyLines(n)

	b.edit(func() {
		first, last := b.lineSpan(n)
		b.lines = slices.Delete(b.lines, first, last)
		if len(b.lines) == 0 {
			b.lines = [][]rune{{}}
		}
		b.cursor = motion.FirstNonBlank(b, motion.Position{Row: first})
	})
}

// ReplaceLines yanks n lines starting at the cursor row and replaces
// them with a single empty line.
func (b *Buffer) ReplaceLines(n int) {
	b.CopyLines(n)

	b.edit(func() {
		first, last := b.lineSpan(n)
		b.lines = slices.Replace(b.lines, first, last, []rune{})
		b.cursor = motion.Position{Row: first}
	})
}

// Paste inserts the register. Linewise text goes below the cursor
// row, anything else at the cursor.
func (b *Buffer) Paste() {
	reg := b.register
	if reg.Empty() {
		return
	}

	b.edit(func() {
		if !reg.Linewise {
			b.InsertString(reg.Text)
			return
		}

		row := b.cursor.Row + 1
		for i, line := range strings.Split(reg.Text, "\n") {
			b.lines = slices.Insert(b.lines, row+i, []rune(line))
		}
		b.cursor = motion.FirstNonBlank(b, motion.Position{Row: row})
	})
}
