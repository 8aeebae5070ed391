package buffer

import (
	"quire/app/debug"
	"quire/app/motion"

	dmp "github.com/sergi/go-diff/diffmatchpatch"
)

const defaultUndoLimit = 100

// History manages a linear list of text changes (undo/redo history)
type History struct {
	// EntryIndex is the index of the entry the next undo reverts.
	// -1 means there is nothing to undo.
	EntryIndex int

	// entries holds all recorded undo/redo history entries.
	entries []Entry

	// maxItems is the maximum number of entries allowed in history
	maxItems int

	Dmp *dmp.DiffMatchPatch
}

// Entry represents a single change in the undo/redo history.
type Entry struct {
	redoPatch     string
	undoPatch     string
	UndoCursorPos motion.Position
	RedoCursorPos motion.Position
}

// NewHistory returns a new initialized History.
func NewHistory(maxItems int) History {
	if maxItems <= 0 {
		maxItems = defaultUndoLimit
	}

	return History{
		entries:    []Entry{},
		maxItems:   maxItems,
		Dmp:        dmp.New(),
		EntryIndex: -1,
	}
}

// Record adds the change from oldStr to newStr as a new entry.
// Entries after the current index (undone changes) are discarded
// and the oldest entry is dropped once the limit is reached.
func (h *History) Record(
	oldStr string,
	newStr string,
	undoCursor motion.Position,
	redoCursor motion.Position,
) {
	h.entries = h.entries[:h.EntryIndex+1]

	h.entries = append(h.entries, Entry{
		redoPatch:     h.Dmp.PatchToText(h.Dmp.PatchMake(oldStr, newStr)),
		undoPatch:     h.Dmp.PatchToText(h.Dmp.PatchMake(newStr, oldStr)),
		UndoCursorPos: undoCursor,
		RedoCursorPos: redoCursor,
	})

	if over := len(h.entries) - h.maxItems; over > 0 {
		h.entries = h.entries[over:]
	}

	h.EntryIndex = len(h.entries) - 1
}

// Len returns the number of recorded entries
func (h *History) Len() int { return len(h.entries) }

func (h *History) CanUndo() bool { return h.EntryIndex >= 0 }

func (h *History) CanRedo() bool { return h.EntryIndex+1 < len(h.entries) }

// Undo applies the undo patch of the current entry to text and
// returns the result with the cursor position before the change.
func (h *History) Undo(text string) (string, motion.Position, bool) {
	if !h.CanUndo() {
		return text, motion.Position{}, false
	}

	entry := h.entries[h.EntryIndex]
	h.EntryIndex--

	return h.apply(entry.undoPatch, text), entry.UndoCursorPos, true
}

// Redo re-applies the change after the current entry.
func (h *History) Redo(text string) (string, motion.Position, bool) {
	if !h.CanRedo() {
		return text, motion.Position{}, false
	}

	h.EntryIndex++
	entry := h.entries[h.EntryIndex]

	return h.apply(entry.redoPatch, text), entry.RedoCursorPos, true
}

func (h *History) apply(patchText string, text string) string {
	patches, err := h.Dmp.PatchFromText(patchText)
	if err != nil {
		debug.LogErr("could not parse history patch:", err)
		return text
	}

	result, applied := h.Dmp.PatchApply(patches, text)
	for _, ok := range applied {
		if !ok {
			debug.LogWarn("history patch did not apply cleanly")
			break
		}
	}

	return result
}
