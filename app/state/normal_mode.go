package state

import (
	"context"
	"fmt"

	"quire/app/event"
	"quire/app/transition"
)

// maxCount is the largest count a numeric prefix can reach.
// Further digits keep it there.
const maxCount = 99999

// foldCount appends the digit d to the count n
func foldCount(n, d int) int {
	return min(n*10+d, maxCount)
}

// VimNormalState is the pending input of vim normal mode.
type VimNormalState interface {
	isVimNormal()
	String() string
}

type NormalIdle struct{}

type NormalNumbering struct{ N int }

// NormalGateway waits for the second key of a g command
type NormalGateway struct{}

// The operator states carry the count typed before the operator.
type (
	NormalYank         struct{ N int }
	NormalDelete       struct{ N int }
	NormalDeleteInside struct{ N int }
	NormalChange       struct{ N int }
	NormalChangeInside struct{ N int }
)

func (NormalIdle) isVimNormal()         {}
func (NormalNumbering) isVimNormal()    {}
func (NormalGateway) isVimNormal()      {}
func (NormalYank) isVimNormal()         {}
func (NormalDelete) isVimNormal()       {}
func (NormalDeleteInside) isVimNormal() {}
func (NormalChange) isVimNormal()       {}
func (NormalChangeInside) isVimNormal() {}

func (NormalIdle) String() string           { return "Idle" }
func (s NormalNumbering) String() string    { return fmt.Sprintf("Numbering(%d)", s.N) }
func (NormalGateway) String() string        { return "Gateway" }
func (s NormalYank) String() string         { return fmt.Sprintf("Yank(%d)", s.N) }
func (s NormalDelete) String() string       { return fmt.Sprintf("Delete(%d)", s.N) }
func (s NormalDeleteInside) String() string { return fmt.Sprintf("DeleteInside(%d)", s.N) }
func (s NormalChange) String() string       { return fmt.Sprintf("Change(%d)", s.N) }
func (s NormalChangeInside) String() string { return fmt.Sprintf("ChangeInside(%d)", s.N) }

func (s *NotebookState) setNormal(vim VimNormalState) {
	s.Inner = EditingNormalMode{Vim: vim}
}

func (s *NotebookState) idle() {
	s.setNormal(NormalIdle{})
}

// insert enters insert mode with the editor action t
func (s *NotebookState) insert(t transition.Transition) (transition.Transition, error) {
	s.Inner = EditingInsertMode{}
	return t, nil
}

func normal(a transition.Action, n int) transition.Transition {
	return transition.NormalN(a, n)
}

func (s *NotebookState) consumeNormal(
	ctx context.Context,
	vim VimNormalState,
	ev event.Event,
) (transition.Transition, error) {
	if ev, ok := ev.(event.UpdateNoteContent); ok {
		return s.updateContent(ctx, ev.Content)
	}

	if _, ok := vim.(NormalIdle); ok {
		return s.consumeNormalIdle(ctx, ev)
	}

	key, ok := ev.(event.KeyEvent)
	if !ok {
		return nil, unimplemented(s, ev)
	}

	switch vim := vim.(type) {
	case NormalNumbering:
		return s.consumeNormalNumbering(vim.N, key)
	case NormalGateway:
		return s.consumeNormalGateway(key)
	case NormalYank:
		return s.consumeNormalYank(vim.N, key)
	case NormalDelete:
		return s.consumeNormalDelete(vim.N, key, false)
	case NormalChange:
		return s.consumeNormalDelete(vim.N, key, true)
	case NormalDeleteInside:
		return s.consumeNormalInside(vim.N, key, false)
	case NormalChangeInside:
		return s.consumeNormalInside(vim.N, key, true)
	default:
		panic(fmt.Sprintf("unknown normal mode state %T", vim))
	}
}

func (s *NotebookState) consumeNormalIdle(ctx context.Context, ev event.Event) (transition.Transition, error) {
	switch ev := ev.(type) {
	case event.SelectNote:
		s.selectNote(ev.Note)
		return transition.None{}, nil
	case event.SelectDirectory:
		s.selectDirectory(ev.Directory)
		return transition.None{}, nil
	case event.EditNote:
		return s.editNote()
	case event.BrowseNoteTree:
		return s.browseNoteTree()
	case event.KeyEvent:
		return s.normalIdleKey(ev)
	default:
		return nil, unimplemented(s, ev)
	}
}

func (s *NotebookState) normalIdleKey(ev event.KeyEvent) (transition.Transition, error) {
	if n, ok := ev.Key.NonZeroDigit(); ok {
		s.setNormal(NormalNumbering{N: n})
		return normal(transition.NumberingMode, 1), nil
	}

	if t, ok := countedMove(ev.Key, 1); ok {
		return t, nil
	}

	switch ev.Key {
	case event.KeyE:
		return s.editNote()
	case event.KeyB:
		return s.browseNoteTree()

	case event.Num0:
		return normal(transition.MoveCursorLineStart, 1), nil
	case event.Dollar:
		return normal(transition.MoveCursorLineEnd, 1), nil
	case event.Caret:
		return normal(transition.MoveCursorLineNonEmptyStart, 1), nil
	case event.KeyCapG:
		return normal(transition.MoveCursorBottom, 1), nil
	case event.KeyG:
		s.setNormal(NormalGateway{})
		return normal(transition.GatewayMode, 1), nil

	case event.KeyI:
		return s.insert(normal(transition.InsertAtCursor, 1))
	case event.KeyCapI:
		return s.insert(normal(transition.InsertAtLineStart, 1))
	case event.KeyA:
		return s.insert(normal(transition.InsertAfterCursor, 1))
	case event.KeyCapA:
		return s.insert(normal(transition.InsertAtLineEnd, 1))
	case event.KeyO:
		return s.insert(normal(transition.InsertNewLineBelow, 1))
	case event.KeyCapO:
		return s.insert(normal(transition.InsertNewLineAbove, 1))

	case event.KeyV:
		s.Inner = EditingVisualMode{Vim: VisualIdle{}}
		return transition.Visual(transition.IdleMode), nil

	case event.KeyY:
		s.setNormal(NormalYank{N: 1})
		return normal(transition.YankMode, 1), nil
	case event.KeyD:
		s.setNormal(NormalDelete{N: 1})
		return normal(transition.DeleteMode, 1), nil
	case event.KeyC:
		s.setNormal(NormalChange{N: 1})
		return normal(transition.ChangeMode, 1), nil

	case event.KeyP:
		return normal(transition.Paste, 1), nil
	case event.KeyU:
		return normal(transition.Undo, 1), nil
	case event.CtrlR:
		return normal(transition.Redo, 1), nil
	case event.CtrlH:
		return transition.ToggleBrowser{}, nil
	case event.Esc:
		return normal(transition.IdleMode, 1), nil
	}

	if t, ok := s.countedCommand(ev.Key, 1); ok {
		return t, nil
	}

	return transition.Inedible{Event: ev}, nil
}

// countedMove returns the cursor motion of key repeated n times
func countedMove(key event.Key, n int) (transition.Transition, bool) {
	var action transition.Action

	switch key {
	case event.KeyH, event.Left:
		action = transition.MoveCursorBack
	case event.KeyJ, event.Down:
		action = transition.MoveCursorDown
	case event.KeyK, event.Up:
		action = transition.MoveCursorUp
	case event.KeyL, event.Right:
		action = transition.MoveCursorForward
	case event.KeyW:
		action = transition.MoveCursorWordForward
	case event.KeyCapE:
		action = transition.MoveCursorWordEnd
	case event.KeyCapB:
		action = transition.MoveCursorWordBack
	default:
		return nil, false
	}

	return normal(action, n), true
}

// countedCommand handles the commands that take a count in both Idle
// and Numbering.
func (s *NotebookState) countedCommand(key event.Key, n int) (transition.Transition, bool) {
	n = max(n, 1)

	switch key {
	case event.KeyX:
		return normal(transition.DeleteChars, n), true
	case event.KeyS:
		t, _ := s.insert(normal(transition.DeleteChars, n))
		return t, true
	case event.KeyCapS:
		t, _ := s.insert(normal(transition.DeleteLinesAndInsert, n))
		return t, true
	case event.KeyCapD:
		return normal(transition.DeleteLineEnd, n), true
	case event.KeyCapC:
		t, _ := s.insert(normal(transition.DeleteLineEnd, n))
		return t, true
	}

	return nil, false
}

func (s *NotebookState) consumeNormalNumbering(n int, ev event.KeyEvent) (transition.Transition, error) {
	if d, ok := ev.Key.Digit(); ok {
		s.setNormal(NormalNumbering{N: foldCount(n, d)})
		return transition.None{}, nil
	}

	s.idle()

	if t, ok := countedMove(ev.Key, n); ok {
		return t, nil
	}

	switch ev.Key {
	case event.KeyCapG:
		return normal(transition.MoveCursorToLine, n), nil
	case event.KeyY:
		s.setNormal(NormalYank{N: n})
		return normal(transition.YankMode, n), nil
	case event.KeyD:
		s.setNormal(NormalDelete{N: n})
		return normal(transition.DeleteMode, n), nil
	case event.KeyC:
		s.setNormal(NormalChange{N: n})
		return normal(transition.ChangeMode, n), nil
	case event.Esc:
		return normal(transition.IdleMode, 1), nil
	}

	if t, ok := s.countedCommand(ev.Key, n); ok {
		return t, nil
	}

	// an unrelated key drops the count
	return transition.Inedible{Event: ev}, nil
}

func (s *NotebookState) consumeNormalGateway(ev event.KeyEvent) (transition.Transition, error) {
	s.idle()

	switch ev.Key {
	case event.KeyG:
		return normal(transition.MoveCursorTop, 1), nil
	case event.Esc:
		return normal(transition.IdleMode, 1), nil
	default:
		return transition.Inedible{Event: ev}, nil
	}
}

func (s *NotebookState) consumeNormalYank(n int, ev event.KeyEvent) (transition.Transition, error) {
	s.idle()

	switch ev.Key {
	case event.KeyY:
		return normal(transition.YankLines, n), nil
	case event.Esc:
		return normal(transition.IdleMode, 1), nil
	default:
		return transition.Inedible{Event: ev}, nil
	}
}

// consumeNormalDelete handles the motion after d, or after c when
// change is set. A change ends in insert mode.
func (s *NotebookState) consumeNormalDelete(n int, ev event.KeyEvent, change bool) (transition.Transition, error) {
	s.idle()

	var t transition.Transition

	switch ev.Key {
	case event.KeyD:
		if change {
			return normal(transition.IdleMode, 1), nil
		}
		t = normal(transition.DeleteLines, n)
	case event.KeyC:
		if !change {
			return normal(transition.IdleMode, 1), nil
		}
		t = normal(transition.DeleteLinesAndInsert, n)
	case event.KeyW, event.KeyE:
		t = normal(transition.DeleteWordEnd, n)
	case event.KeyB:
		t = normal(transition.DeleteWordBack, n)
	case event.Num0:
		t = normal(transition.DeleteLineStart, 1)
	case event.Dollar:
		t = normal(transition.DeleteLineEnd, n)
	case event.KeyI:
		if change {
			s.setNormal(NormalChangeInside{N: n})
			return normal(transition.ChangeInsideMode, n), nil
		}
		s.setNormal(NormalDeleteInside{N: n})
		return normal(transition.DeleteInsideMode, n), nil
	case event.Esc:
		return normal(transition.IdleMode, 1), nil
	default:
		return transition.Inedible{Event: ev}, nil
	}

	if change {
		return s.insert(t)
	}
	return t, nil
}

func (s *NotebookState) consumeNormalInside(n int, ev event.KeyEvent, change bool) (transition.Transition, error) {
	s.idle()

	switch ev.Key {
	case event.KeyW:
		t := normal(transition.DeleteInsideWord, n)
		if change {
			return s.insert(t)
		}
		return t, nil
	case event.Esc:
		return normal(transition.IdleMode, 1), nil
	default:
		return transition.Inedible{Event: ev}, nil
	}
}
