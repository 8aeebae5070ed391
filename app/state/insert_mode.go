package state

import (
	"context"

	"quire/app/event"
	"quire/app/transition"
)

// consumeInsert handles the editor while text is typed. Printable keys
// are inserted by the front end and never reach here.
func (s *NotebookState) consumeInsert(ctx context.Context, ev event.Event) (transition.Transition, error) {
	switch ev := ev.(type) {
	case event.UpdateNoteContent:
		return s.updateContent(ctx, ev.Content)
	case event.KeyEvent:
		if ev.Key != event.Esc {
			return transition.Inedible{Event: ev}, nil
		}

		s.idle()
		if s.EditingNote == nil {
			return normal(transition.IdleMode, 1), nil
		}
		return transition.ViewMode{Note: *s.EditingNote}, nil
	default:
		return nil, unimplemented(s, ev)
	}
}
