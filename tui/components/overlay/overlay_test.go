package overlay

import (
	"strings"
	"testing"
)

func TestPlace(t *testing.T) {
	tests := []struct {
		name string
		bg   string
		fg   string
		x, y int
		want string
	}{
		{"inside", "aaaaa\naaaaa\naaaaa", "XX", 1, 1, "aaaaa\naXXaa\naaaaa"},
		{"moved back inside", "aaaa\naaaa", "XX", 10, 10, "aaaa\naaXX"},
		{"negative position", "aaaa\naaaa", "XX", -3, -1, "XXaa\naaaa"},
		{"short background line", "aaaaa\na", "XX", 3, 1, "aaaaa\na  XX"},
		{"larger than background", "a", "XX\nXX", 0, 0, "XX\nXX"},
	}

	for _, tt := range tests {
		if got := Place(tt.bg, tt.fg, tt.x, tt.y); got != tt.want {
			t.Errorf("%s: expected %q, got %q", tt.name, tt.want, got)
		}
	}
}

func TestDialogOver(t *testing.T) {
	screen := strings.Repeat(strings.Repeat(".", 80)+"\n", 20) + strings.Repeat(".", 80)

	d := NoteDialog("todo")
	got := strings.Split(d.Over(screen, 80), "\n")

	if len(got) != 21 {
		t.Fatalf("Expected 21 lines, got %d", len(got))
	}
	if got[0] != strings.Repeat(".", 80) || got[1] != strings.Repeat(".", 80) {
		t.Errorf("Expected the first two lines untouched")
	}
	if !strings.HasPrefix(got[dialogTop], strings.Repeat(".", 24)) {
		t.Errorf("Expected the dialog to start at column 24, got %q", got[dialogTop])
	}
	if !strings.Contains(strings.Join(got, "\n"), "todo") {
		t.Errorf("Expected the dialog title on screen")
	}
}

func TestDialogActions(t *testing.T) {
	d := NoteDialog("todo")

	if a, ok := d.ActionFor("r"); !ok || a != Rename {
		t.Errorf("Expected r to rename, got %v", a)
	}
	if _, ok := d.ActionFor("n"); ok {
		t.Errorf("Expected notes to have no new note action")
	}

	d = DirectoryDialog("work")
	if a, ok := d.ActionFor("a"); !ok || a != AddDirectory {
		t.Errorf("Expected a to add a directory, got %v", a)
	}

	view := d.String()
	for _, s := range []string{"work", "new note", "new directory", "rename", "delete"} {
		if !strings.Contains(view, s) {
			t.Errorf("Expected %q in the dialog", s)
		}
	}
}
