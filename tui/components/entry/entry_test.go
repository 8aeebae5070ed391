package entry

import (
	"strings"
	"testing"

	"quire/app/event"
)

func TestPreselectsStorage(t *testing.T) {
	e := New(event.File, "/tmp/notes.db")

	ev := e.Open()
	if ev.Storage != event.File || ev.Path != "/tmp/notes.db" {
		t.Errorf("Expected the file notebook, got %+v", ev)
	}
}

func TestSelectInstant(t *testing.T) {
	e := New(event.File, "/tmp/notes.db")
	e.Prev()
	e.Prev()

	ev := e.Open()
	if ev.Storage != event.Instant || ev.Path != "" {
		t.Errorf("Expected the instant notebook without a path, got %+v", ev)
	}

	e.Next()
	e.Next()
	if e.Open().Storage != event.File {
		t.Errorf("Expected the selection to stop at the last choice")
	}
}

func TestContent(t *testing.T) {
	e := New(event.Instant, "")
	e.Width, e.Height = 80, 24

	content := e.Content()
	if !strings.Contains(content, "Instant notebook") || !strings.Contains(content, "Notebook file") {
		t.Errorf("Expected both choices on the entry screen")
	}
}
