package event_test

import (
	"testing"

	"quire/app/event"
)

func TestParseKey(t *testing.T) {
	tests := map[string]event.Key{
		"j":      event.KeyJ,
		"G":      event.KeyCapG,
		"7":      event.Num7,
		"esc":    event.Esc,
		"$":      event.Dollar,
		"ctrl+r": event.CtrlR,
	}

	for name, want := range tests {
		got, ok := event.ParseKey(name)
		if !ok || got != want {
			t.Errorf("ParseKey(%q): expected %s, got %s", name, want, got)
		}
		if got.String() != name {
			t.Errorf("Expected %s to print as %q", got, name)
		}
	}

	if _, ok := event.ParseKey("F12"); ok {
		t.Error("Expected unknown key name to fail")
	}
}

func TestDigit(t *testing.T) {
	if n, ok := event.Num0.Digit(); !ok || n != 0 {
		t.Errorf("Expected 0 to be a digit, got %d %v", n, ok)
	}

	if _, ok := event.Num0.NonZeroDigit(); ok {
		t.Error("Expected 0 not to start a count")
	}

	if n, ok := event.Num9.NonZeroDigit(); !ok || n != 9 {
		t.Errorf("Expected 9, got %d", n)
	}

	if _, ok := event.KeyX.Digit(); ok {
		t.Error("Expected x not to be a digit")
	}
}
