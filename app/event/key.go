package event

// Key is a key symbol the engine understands. The set is closed: the
// front end maps terminal input onto it and passes anything else as
// text.
type Key int

const (
	KeyUnknown Key = iota
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	KeyCapA
	KeyCapB
	KeyCapC
	KeyCapD
	KeyCapE
	KeyCapG
	KeyCapI
	KeyCapO
	KeyCapS
	Num0
	Num1
	Num2
	Num3
	Num4
	Num5
	Num6
	Num7
	Num8
	Num9
	Esc
	Enter
	Tab
	Backspace
	Space
	Left
	Right
	Up
	Down
	Dollar
	Caret
	CtrlR
	CtrlH
)

var keyNames = map[Key]string{
	KeyA:      "a",
	KeyB:      "b",
	KeyC:      "c",
	KeyD:      "d",
	KeyE:      "e",
	KeyF:      "f",
	KeyG:      "g",
	KeyH:      "h",
	KeyI:      "i",
	KeyJ:      "j",
	KeyK:      "k",
	KeyL:      "l",
	KeyM:      "m",
	KeyN:      "n",
	KeyO:      "o",
	KeyP:      "p",
	KeyQ:      "q",
	KeyR:      "r",
	KeyS:      "s",
	KeyT:      "t",
	KeyU:      "u",
	KeyV:      "v",
	KeyW:      "w",
	KeyX:      "x",
	KeyY:      "y",
	KeyZ:      "z",
	KeyCapA:   "A",
	KeyCapB:   "B",
	KeyCapC:   "C",
	KeyCapD:   "D",
	KeyCapE:   "E",
	KeyCapG:   "G",
	KeyCapI:   "I",
	KeyCapO:   "O",
	KeyCapS:   "S",
	Num0:      "0",
	Num1:      "1",
	Num2:      "2",
	Num3:      "3",
	Num4:      "4",
	Num5:      "5",
	Num6:      "6",
	Num7:      "7",
	Num8:      "8",
	Num9:      "9",
	Esc:       "esc",
	Enter:     "enter",
	Tab:       "tab",
	Backspace: "backspace",
	Space:     "space",
	Left:      "left",
	Right:     "right",
	Up:        "up",
	Down:      "down",
	Dollar:    "$",
	Caret:     "^",
	CtrlR:     "ctrl+r",
	CtrlH:     "ctrl+h",
}

var keysByName = func() map[string]Key {
	m := make(map[string]Key, len(keyNames))
	for k, name := range keyNames {
		m[name] = k
	}
	return m
}()

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseKey maps a key name as printed by String back to its Key
func ParseKey(name string) (Key, bool) {
	k, ok := keysByName[name]
	return k, ok
}

// Digit reports the value of a digit key
func (k Key) Digit() (int, bool) {
	if k >= Num0 && k <= Num9 {
		return int(k - Num0), true
	}
	return 0, false
}

// NonZeroDigit reports the value of a digit key that can start a
// count. 0 is a motion on its own.
func (k Key) NonZeroDigit() (int, bool) {
	n, ok := k.Digit()
	return n, ok && n != 0
}
