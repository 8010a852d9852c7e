package history

import (
	"github.com/ternedit/tern/internal/engine/buffer"
	"github.com/ternedit/tern/internal/engine/cursor"
)

// Entry is one undoable step: the commands that reverse it, in the
// order they must be applied, and the cursor set as it stood before
// the original edit ran.
type Entry struct {
	Commands []buffer.Command
	Cursors  []cursor.Cursor
}

// History holds the undo and redo stacks for one buffer. The stacks
// are unbounded; an editing session keeps its full trail.
type History struct {
	undo []Entry
	redo []Entry
}

// New creates an empty history.
func New() *History {
	return &History{}
}

// Record pushes a new entry onto the undo stack and discards the redo
// stack: once a fresh edit lands, the abandoned future is unreachable.
func (h *History) Record(e Entry) {
	h.undo = append(h.undo, e)
	h.redo = nil
}

// PopUndo removes and returns the most recent undo entry.
func (h *History) PopUndo() (Entry, bool) {
	if len(h.undo) == 0 {
		return Entry{}, false
	}
	e := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	return e, true
}

// PopRedo removes and returns the most recent redo entry.
func (h *History) PopRedo() (Entry, bool) {
	if len(h.redo) == 0 {
		return Entry{}, false
	}
	e := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	return e, true
}

// PushRedo stores the mirror entry produced while undoing.
func (h *History) PushRedo(e Entry) {
	h.redo = append(h.redo, e)
}

// PushUndo stores the mirror entry produced while redoing. Unlike
// Record it leaves the redo stack alone.
func (h *History) PushUndo(e Entry) {
	h.undo = append(h.undo, e)
}

// CanUndo reports whether an undo entry is available.
func (h *History) CanUndo() bool {
	return len(h.undo) > 0
}

// CanRedo reports whether a redo entry is available.
func (h *History) CanRedo() bool {
	return len(h.redo) > 0
}

// UndoDepth returns the number of undoable steps.
func (h *History) UndoDepth() int {
	return len(h.undo)
}

// RedoDepth returns the number of redoable steps.
func (h *History) RedoDepth() int {
	return len(h.redo)
}

// Clear discards both stacks, as after loading a new file.
func (h *History) Clear() {
	h.undo = nil
	h.redo = nil
}
