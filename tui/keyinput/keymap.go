package keyinput

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/tailscale/hujson"

	"quire/app/event"
	"quire/tui/mode"
)

//go:embed keymap.json
var defaultKeyMap []byte

// modeAll applies an entry in every mode
const modeAll = "all"

var modeNames = map[string]mode.Mode{
	"entry":  mode.Entry,
	"browse": mode.Browse,
	"dialog": mode.Dialog,
	"normal": mode.Normal,
	"insert": mode.Insert,
	"visual": mode.Visual,
}

// KeyMapEntry maps terminal keys to editor keys in one mode
type KeyMapEntry struct {
	Mode     string            `json:"mode"`
	Bindings map[string]string `json:"bindings"`
}

type KeyMap struct {
	path    string
	entries []KeyMapEntry
}

func (km *KeyMap) Path() string { return km.path }

// DefaultKeyMap returns the embedded key map
func DefaultKeyMap() KeyMap {
	km, err := parseKeyMap("", defaultKeyMap)
	if err != nil {
		panic(fmt.Sprintf("embedded keymap: %v", err))
	}
	return km
}

// LoadKeyMap reads a user key map. JSON with comments and trailing
// commas is accepted.
func LoadKeyMap(path string) (KeyMap, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return KeyMap{}, err
	}
	return parseKeyMap(path, content)
}

func parseKeyMap(path string, content []byte) (KeyMap, error) {
	standard, err := hujson.Standardize(content)
	if err != nil {
		return KeyMap{}, fmt.Errorf("%s: %w", path, err)
	}

	var entries []KeyMapEntry
	if err := json.Unmarshal(standard, &entries); err != nil {
		return KeyMap{}, fmt.Errorf("%s: %w", path, err)
	}

	km := KeyMap{path: path, entries: entries}
	if err := km.validate(); err != nil {
		return KeyMap{}, fmt.Errorf("%s: %w", path, err)
	}

	return km, nil
}

func (km *KeyMap) validate() error {
	var errs []error

	for _, e := range km.entries {
		if _, ok := modeNames[e.Mode]; !ok && e.Mode != modeAll {
			errs = append(errs, fmt.Errorf("unknown mode %q", e.Mode))
		}

		for from, to := range e.Bindings {
			if _, ok := event.ParseKey(to); !ok {
				errs = append(errs, fmt.Errorf("%q is bound to unknown key %q", from, to))
			}
		}
	}

	return errors.Join(errs...)
}

// Merge adds the entries of other after those of km, so they win
func (km KeyMap) Merge(other KeyMap) KeyMap {
	return KeyMap{
		path:    other.path,
		entries: append(append([]KeyMapEntry{}, km.entries...), other.entries...),
	}
}

// lookup returns the binding of key in m. Entries of the mode win over
// entries for all modes, later entries over earlier ones.
func (km *KeyMap) lookup(m mode.Mode, key string) (string, bool) {
	var (
		found string
		ok    bool
	)

	for _, e := range km.entries {
		if e.Mode != modeAll {
			continue
		}
		if to, exists := e.Bindings[key]; exists {
			found, ok = to, true
		}
	}

	for _, e := range km.entries {
		if modeNames[e.Mode] != m || e.Mode == modeAll {
			continue
		}
		if to, exists := e.Bindings[key]; exists {
			found, ok = to, true
		}
	}

	return found, ok
}
