// Package editor applies the editor transitions of the engine to a
// text buffer.
package editor

import (
	"quire/app/buffer"
	"quire/app/motion"
	"quire/app/transition"
)

// Apply performs t on buf. Transitions that don't concern the editor
// are ignored and reported as not applied.
func Apply(buf *buffer.Buffer, t transition.Transition) bool {
	switch t := t.(type) {
	case transition.NormalMode:
		applyNormal(buf, t.Action, max(t.N, 1))
	case transition.VisualMode:
		applyVisual(buf, t.Action, max(t.N, 1))
	default:
		return false
	}
	return true
}

// move handles the cursor motions shared by normal and visual mode
func move(buf *buffer.Buffer, action transition.Action, n int) bool {
	cur := buf.Cursor()

	var to motion.Position
	switch action {
	case transition.MoveCursorDown:
		to = motion.LineDown(buf, cur, n)
	case transition.MoveCursorUp:
		to = motion.LineUp(buf, cur, n)
	case transition.MoveCursorBack:
		to = motion.CharBack(buf, cur, n)
	case transition.MoveCursorForward:
		to = motion.CharForward(buf, cur, n)
	case transition.MoveCursorWordForward:
		to = motion.WordForward(buf, cur, n)
	case transition.MoveCursorWordEnd:
		to = motion.WordEnd(buf, cur, n)
	case transition.MoveCursorWordBack:
		to = motion.WordBack(buf, cur, n)
	case transition.MoveCursorLineStart:
		to = motion.LineStart(buf, cur)
	case transition.MoveCursorLineEnd:
		to = motion.LineEnd(buf, cur)
	case transition.MoveCursorLineNonEmptyStart:
		to = motion.FirstNonBlank(buf, cur)
	case transition.MoveCursorTop:
		to = motion.Top(buf, cur)
	case transition.MoveCursorBottom:
		to = motion.Bottom(buf, cur)
	case transition.MoveCursorToLine:
		to = motion.ToLine(buf, cur, n)
	default:
		return false
	}

	buf.MoveCursor(to)
	return true
}

func applyNormal(buf *buffer.Buffer, action transition.Action, n int) {
	if move(buf, action, n) {
		return
	}

	cur := buf.Cursor()

	switch action {
	case transition.IdleMode:
		buf.CancelSelection()

	case transition.InsertNewLineBelow:
		buf.Batch(func() {
			buf.MoveCursor(motion.LineEnd(buf, cur))
			buf.InsertNewline()
		})
	case transition.InsertNewLineAbove:
		buf.Batch(func() {
			buf.MoveCursor(motion.LineStart(buf, cur))
			buf.InsertNewline()
			buf.MoveCursor(motion.Position{Row: cur.Row, Col: 0})
		})
	case transition.InsertAtCursor:
	case transition.InsertAtLineStart:
		buf.MoveCursor(motion.LineStart(buf, cur))
	case transition.InsertAfterCursor:
		buf.MoveCursor(motion.CharForward(buf, cur, 1))
	case transition.InsertAtLineEnd:
		buf.MoveCursor(motion.LineEnd(buf, cur))

	case transition.DeleteChars:
		buf.DeleteForward(n)
	case transition.DeleteLines:
		buf.CutLines(n)
	case transition.DeleteLinesAndInsert:
		buf.ReplaceLines(n)
	case transition.YankLines:
		buf.CopyLines(n)
	case transition.DeleteInsideWord:
		start := cur
		back := motion.WordBack(buf, cur, 1)
		if !before(motion.WordEnd(buf, back, 1), cur) {
			start = back
		}
		end := motion.CharForward(buf, motion.WordEnd(buf, start, n), 1)
		cutTo(buf, start, end)
	case transition.DeleteWordEnd:
		cutTo(buf, cur, motion.CharForward(buf, motion.WordEnd(buf, cur, n), 1))
	case transition.DeleteWordBack:
		cutTo(buf, cur, motion.WordBack(buf, cur, n))
	case transition.DeleteLineStart:
		cutTo(buf, cur, motion.LineStart(buf, cur))
	case transition.DeleteLineEnd:
		cutTo(buf, cur, motion.LineEnd(buf, motion.LineDown(buf, cur, n-1)))

	case transition.Paste:
		buf.Paste()
	case transition.Undo:
		buf.Undo()
	case transition.Redo:
		buf.Redo()
	}
}

func applyVisual(buf *buffer.Buffer, action transition.Action, n int) {
	if move(buf, action, n) {
		return
	}

	switch action {
	case transition.IdleMode:
		buf.StartSelection()

	case transition.YankSelection:
		if start, ok := reselectForYank(buf); ok {
			buf.Copy()
			buf.MoveCursor(start)
		}
	case transition.DeleteSelection, transition.DeleteSelectionAndInsertMode:
		if _, ok := reselectForYank(buf); ok {
			buf.Cut()
		}
	}
}

// cutTo deletes the text between from and to into the register.
// The order of from and to doesn't matter.
func cutTo(buf *buffer.Buffer, from, to motion.Position) {
	buf.Batch(func() {
		buf.CancelSelection()
		buf.MoveCursor(from)
		buf.StartSelection()
		buf.MoveCursor(to)
		buf.Cut()
	})
}

// reselectForYank makes the selection include the character under
// its end, which the cursor sits on in visual mode.
func reselectForYank(buf *buffer.Buffer) (motion.Position, bool) {
	from, to, ok := buf.SelectionRange()
	if !ok {
		return from, false
	}

	buf.CancelSelection()
	buf.MoveCursor(from)
	buf.StartSelection()
	buf.MoveCursor(motion.CharForward(buf, to, 1))

	return from, true
}

func before(a, b motion.Position) bool {
	return a.Row < b.Row || (a.Row == b.Row && a.Col < b.Col)
}
