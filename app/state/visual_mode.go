package state

import (
	"context"
	"fmt"

	"quire/app/event"
	"quire/app/transition"
)

// VimVisualState is the pending input of vim visual mode
type VimVisualState interface {
	isVimVisual()
	String() string
}

type VisualIdle struct{}

type VisualNumbering struct{ N int }

type VisualGateway struct{}

func (VisualIdle) isVimVisual()      {}
func (VisualNumbering) isVimVisual() {}
func (VisualGateway) isVimVisual()   {}

func (VisualIdle) String() string        { return "Idle" }
func (s VisualNumbering) String() string { return fmt.Sprintf("Numbering(%d)", s.N) }
func (VisualGateway) String() string     { return "Gateway" }

func (s *NotebookState) setVisual(vim VimVisualState) {
	s.Inner = EditingVisualMode{Vim: vim}
}

func visual(a transition.Action, n int) transition.Transition {
	return transition.VisualN(a, n)
}

func (s *NotebookState) consumeVisual(
	ctx context.Context,
	vim VimVisualState,
	ev event.Event,
) (transition.Transition, error) {
	switch ev := ev.(type) {
	case event.UpdateNoteContent:
		return s.updateContent(ctx, ev.Content)
	case event.KeyEvent:
		switch vim := vim.(type) {
		case VisualIdle:
			return s.visualKey(1, ev, false)
		case VisualNumbering:
			return s.visualKey(vim.N, ev, true)
		case VisualGateway:
			return s.visualGateway(ev)
		default:
			panic(fmt.Sprintf("unknown visual mode state %T", vim))
		}
	default:
		return nil, unimplemented(s, ev)
	}
}

// visualKey handles a key in VisualIdle, or in VisualNumbering with
// the count n when counting is set.
func (s *NotebookState) visualKey(n int, ev event.KeyEvent, counting bool) (transition.Transition, error) {
	if counting {
		if d, ok := ev.Key.Digit(); ok {
			s.setVisual(VisualNumbering{N: foldCount(n, d)})
			return transition.None{}, nil
		}
	} else if d, ok := ev.Key.NonZeroDigit(); ok {
		s.setVisual(VisualNumbering{N: d})
		return visual(transition.NumberingMode, 1), nil
	}

	s.setVisual(VisualIdle{})

	var action transition.Action

	switch ev.Key {
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
	case event.KeyE, event.KeyCapE:
		action = transition.MoveCursorWordEnd
	case event.KeyB, event.KeyCapB:
		action = transition.MoveCursorWordBack
	case event.Num0:
		return visual(transition.MoveCursorLineStart, 1), nil
	case event.Dollar:
		return visual(transition.MoveCursorLineEnd, 1), nil
	case event.Caret:
		return visual(transition.MoveCursorLineNonEmptyStart, 1), nil
	case event.KeyCapG:
		if counting {
			return visual(transition.MoveCursorToLine, n), nil
		}
		return visual(transition.MoveCursorBottom, 1), nil
	case event.KeyG:
		s.setVisual(VisualGateway{})
		return visual(transition.GatewayMode, 1), nil

	case event.KeyY:
		s.idle()
		return visual(transition.YankSelection, 1), nil
	case event.KeyD, event.KeyX:
		s.idle()
		return visual(transition.DeleteSelection, 1), nil
	case event.KeyC, event.KeyS:
		s.Inner = EditingInsertMode{}
		return visual(transition.DeleteSelectionAndInsertMode, 1), nil

	case event.Esc:
		if counting {
			return transition.None{}, nil
		}
		s.idle()
		return normal(transition.IdleMode, 1), nil
	default:
		return transition.Inedible{Event: ev}, nil
	}

	return visual(action, n), nil
}

func (s *NotebookState) visualGateway(ev event.KeyEvent) (transition.Transition, error) {
	s.setVisual(VisualIdle{})

	switch ev.Key {
	case event.KeyG:
		return visual(transition.MoveCursorTop, 1), nil
	case event.Esc:
		return transition.None{}, nil
	default:
		return transition.Inedible{Event: ev}, nil
	}
}
