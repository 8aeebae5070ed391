package transition

// Action is an editor action. Mode actions only tell the front end
// which sub mode the engine is in; the rest move the cursor or change
// the buffer.
type Action int

const (
	IdleMode Action = iota
	NumberingMode
	GatewayMode
	YankMode
	DeleteMode
	DeleteInsideMode
	ChangeMode
	ChangeInsideMode

	MoveCursorDown
	MoveCursorUp
	MoveCursorBack
	MoveCursorForward
	MoveCursorWordForward
	MoveCursorWordEnd
	MoveCursorWordBack
	MoveCursorLineStart
	MoveCursorLineEnd
	MoveCursorLineNonEmptyStart
	MoveCursorTop
	MoveCursorBottom
	MoveCursorToLine

	InsertNewLineBelow
	InsertNewLineAbove
	InsertAtCursor
	InsertAtLineStart
	InsertAfterCursor
	InsertAtLineEnd

	DeleteChars
	DeleteLines
	DeleteLinesAndInsert
	YankLines
	DeleteInsideWord
	DeleteWordEnd
	DeleteWordBack
	DeleteLineStart
	DeleteLineEnd
	Paste
	Undo
	Redo

	YankSelection
	DeleteSelection
	DeleteSelectionAndInsertMode
)

var actions = map[Action]string{
	IdleMode:                     "IdleMode",
	NumberingMode:                "NumberingMode",
	GatewayMode:                  "GatewayMode",
	YankMode:                     "YankMode",
	DeleteMode:                   "DeleteMode",
	DeleteInsideMode:             "DeleteInsideMode",
	ChangeMode:                   "ChangeMode",
	ChangeInsideMode:             "ChangeInsideMode",
	MoveCursorDown:               "MoveCursorDown",
	MoveCursorUp:                 "MoveCursorUp",
	MoveCursorBack:               "MoveCursorBack",
	MoveCursorForward:            "MoveCursorForward",
	MoveCursorWordForward:        "MoveCursorWordForward",
	MoveCursorWordEnd:            "MoveCursorWordEnd",
	MoveCursorWordBack:           "MoveCursorWordBack",
	MoveCursorLineStart:          "MoveCursorLineStart",
	MoveCursorLineEnd:            "MoveCursorLineEnd",
	MoveCursorLineNonEmptyStart:  "MoveCursorLineNonEmptyStart",
	MoveCursorTop:                "MoveCursorTop",
	MoveCursorBottom:             "MoveCursorBottom",
	MoveCursorToLine:             "MoveCursorToLine",
	InsertNewLineBelow:           "InsertNewLineBelow",
	InsertNewLineAbove:           "InsertNewLineAbove",
	InsertAtCursor:               "InsertAtCursor",
	InsertAtLineStart:            "InsertAtLineStart",
	InsertAfterCursor:            "InsertAfterCursor",
	InsertAtLineEnd:              "InsertAtLineEnd",
	DeleteChars:                  "DeleteChars",
	DeleteLines:                  "DeleteLines",
	DeleteLinesAndInsert:         "DeleteLinesAndInsert",
	YankLines:                    "YankLines",
	DeleteInsideWord:             "DeleteInsideWord",
	DeleteWordEnd:                "DeleteWordEnd",
	DeleteWordBack:               "DeleteWordBack",
	DeleteLineStart:              "DeleteLineStart",
	DeleteLineEnd:                "DeleteLineEnd",
	Paste:                        "Paste",
	Undo:                         "Undo",
	Redo:                         "Redo",
	YankSelection:                "YankSelection",
	DeleteSelection:              "DeleteSelection",
	DeleteSelectionAndInsertMode: "DeleteSelectionAndInsertMode",
}

func (a Action) String() string {
	return actions[a]
}

// IsMode reports whether a only announces a sub mode change
func (a Action) IsMode() bool {
	return a <= ChangeInsideMode
}
