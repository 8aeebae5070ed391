// Package engine drives the notebook state machine. It owns the
// current state and swaps it when the entry screen opens a notebook.
package engine

import (
	"context"
	"fmt"
	"sync"

	"quire/app"
	"quire/app/db"
	"quire/app/debug"
	"quire/app/event"
	"quire/app/state"
	"quire/app/transition"
)

// Option configures an Engine during creation.
type Option func(*Engine)

// WithOpener replaces how OpenNotebook events open their store.
func WithOpener(open state.Opener) Option {
	return func(e *Engine) {
		if open != nil {
			e.open = open
		}
	}
}

// WithDatabasePath sets the file used by File storage when the event
// doesn't name one.
func WithDatabasePath(path string) Option {
	return func(e *Engine) {
		e.dbPath = path
	}
}

// Engine serializes dispatches. It is safe for concurrent use but
// every event is still handled one at a time.
type Engine struct {
	mu     sync.Mutex
	state  state.State
	open   state.Opener
	dbPath string
}

func New(opts ...Option) *Engine {
	e := &Engine{}
	e.open = e.openStore

	for _, opt := range opts {
		opt(e)
	}

	e.state = state.NewEntryState(e.open)

	return e
}

// openStore opens the sqlite notebook for ev
func (e *Engine) openStore(ctx context.Context, ev event.OpenNotebook) (state.Store, error) {
	backend := db.Instant
	path := ev.Path

	if ev.Storage == event.File {
		backend = db.File

		if path == "" {
			path = e.dbPath
		}
		if path == "" {
			var err error
			if path, err = app.DatabasePath(); err != nil {
				return nil, err
			}
		}
	}

	return db.Open(ctx, backend, path)
}

// Dispatch hands ev to the current state and returns its transition.
// A failed dispatch returns the storage error. Changes the store already
// made are kept: a removal whose tree reload fails still selects the
// parent directory and closes it in the tree.
func (e *Engine) Dispatch(ctx context.Context, ev event.Event) (transition.Transition, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	switch s := e.state.(type) {
	case *state.EntryState:
		t, next, err := s.Consume(ctx, ev)
		if err != nil {
			debug.LogErr("entry:", ev, err)
			return nil, err
		}
		if next != nil {
			debug.LogDebug("state", s, "->", next)
			e.state = next
		}
		return t, nil

	case *state.NotebookState:
		before := s.String()

		t, err := s.Consume(ctx, ev)
		if err != nil {
			debug.LogErr(before+":", ev, err)
			return nil, err
		}

		if after := s.String(); after != before {
			debug.LogDebug("state", before, "->", after)
		}
		return t, nil

	default:
		panic(fmt.Sprintf("unknown state %T", e.state))
	}
}

// State returns the current state
func (e *Engine) State() state.State {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.state
}

// Notebook returns the opened notebook, or nil on the entry screen
func (e *Engine) Notebook() *state.NotebookState {
	e.mu.Lock()
	defer e.mu.Unlock()

	notebook, _ := e.state.(*state.NotebookState)
	return notebook
}

// Close closes the store of an opened notebook
func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if notebook, ok := e.state.(*state.NotebookState); ok {
		return notebook.Close()
	}
	return nil
}
