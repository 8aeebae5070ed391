package keyinput

import (
	"quire/app/debug"
	"quire/app/event"
	"quire/tui/mode"
)

// Input turns terminal key strings into editor keys and keeps the
// keys of a pending command for the status bar.
type Input struct {
	// KeySequence holds the keys typed since the last completed command
	KeySequence string

	Mode mode.Mode

	keyMap KeyMap
}

func New() *Input {
	return &Input{
		Mode:   mode.Entry,
		keyMap: DefaultKeyMap(),
	}
}

// LoadKeyMap adds the bindings of the user key map at path on top of
// the defaults. An empty path does nothing.
func (ki *Input) LoadKeyMap(path string) error {
	if path == "" {
		return nil
	}

	km, err := LoadKeyMap(path)
	if err != nil {
		debug.LogErr("Failed to load key map:", err)
		return err
	}

	ki.keyMap = ki.keyMap.Merge(km)
	return nil
}

// Resolve maps key, as printed by tea.KeyMsg.String, to an editor key.
func (ki *Input) Resolve(key string) (event.Key, bool) {
	if to, ok := ki.keyMap.lookup(ki.Mode, key); ok {
		key = to
	}

	return event.ParseKey(key)
}

// Record appends k to the pending key sequence
func (ki *Input) Record(k event.Key) {
	ki.KeySequence += k.String()
}

// ResetKeysDown clears the pending key sequence.
func (ki *Input) ResetKeysDown() {
	ki.KeySequence = ""
}
