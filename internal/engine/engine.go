package engine

import (
	"sync"

	"github.com/ternedit/tern/internal/engine/buffer"
	"github.com/ternedit/tern/internal/engine/cursor"
	"github.com/ternedit/tern/internal/engine/history"
)

// Engine binds one buffer to its cursor set and undo trail. Every
// mutation goes through Apply so cursors are retargeted and the
// history records an exact inverse; callers never touch the buffer
// mutators directly.
type Engine struct {
	mu   sync.Mutex
	buf  *buffer.Buffer
	cur  *cursor.Set
	hist *history.History
}

// New wraps an existing buffer with a fresh cursor set and history.
func New(b *buffer.Buffer) *Engine {
	return &Engine{
		buf:  b,
		cur:  cursor.NewSet(buffer.Position{}),
		hist: history.New(),
	}
}

// Buffer returns the engine's buffer.
func (e *Engine) Buffer() *buffer.Buffer {
	return e.buf
}

// Cursors returns the engine's cursor set.
func (e *Engine) Cursors() *cursor.Set {
	return e.cur
}

// CanUndo reports whether an undo step is available.
func (e *Engine) CanUndo() bool {
	return e.hist.CanUndo()
}

// CanRedo reports whether a redo step is available.
func (e *Engine) CanRedo() bool {
	return e.hist.CanRedo()
}

// Apply runs a batch of commands as one undoable step. Commands touch
// positions in the buffer as it stands when each one runs, so batches
// built from several cursors must be ordered from the last document
// position to the first.
//
// The batch is atomic: if any command fails, the ones already applied
// are rolled back and the buffer, cursors and history are untouched.
func (e *Engine) Apply(cmds []buffer.Command) error {
	if len(cmds) == 0 {
		return nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	snapshot := e.cur.Snapshot()
	cp := e.buf.Checkpoint()

	inverses := make([]buffer.Command, 0, len(cmds))
	for _, cmd := range cmds {
		inv, ch, err := e.buf.Apply(cmd)
		if err != nil {
			e.rollback(inverses, cp)
			e.cur.Restore(snapshot)
			return err
		}
		inverses = append(inverses, inv)
		e.cur.ApplyChange(ch)
	}
	e.cur.Clamp(e.buf)

	// Undo must unwind in reverse application order.
	reverse(inverses)
	e.hist.Record(history.Entry{Commands: inverses, Cursors: snapshot})
	return nil
}

// Undo reverts the most recent step and restores the cursors that
// preceded it. It returns false when there is nothing to undo.
func (e *Engine) Undo() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	entry, ok := e.hist.PopUndo()
	if !ok {
		return false
	}

	mirror := e.replay(entry)
	e.hist.PushRedo(mirror)
	return true
}

// Redo re-applies the most recently undone step. It returns false
// when there is nothing to redo.
func (e *Engine) Redo() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	entry, ok := e.hist.PopRedo()
	if !ok {
		return false
	}

	mirror := e.replay(entry)
	e.hist.PushUndo(mirror)
	return true
}

// replay applies a history entry's commands, builds the mirror entry
// for the opposite stack, and restores the entry's cursor snapshot in
// place of the automatic translation.
func (e *Engine) replay(entry history.Entry) history.Entry {
	before := e.cur.Snapshot()

	inverses := make([]buffer.Command, 0, len(entry.Commands))
	for _, cmd := range entry.Commands {
		inv, ch, err := e.buf.Apply(cmd)
		if err != nil {
			// History entries are inverses of commands that already
			// ran against this exact buffer state; failure here means
			// the trail is corrupt. Stop replaying and keep what held.
			break
		}
		inverses = append(inverses, inv)
		e.cur.ApplyChange(ch)
	}
	reverse(inverses)

	e.cur.Restore(entry.Cursors)
	e.cur.Clamp(e.buf)

	return history.Entry{Commands: inverses, Cursors: before}
}

// rollback unwinds partially applied commands in reverse order, then
// restores the buffer metadata from before the batch.
func (e *Engine) rollback(inverses []buffer.Command, cp buffer.Checkpoint) {
	for i := len(inverses) - 1; i >= 0; i-- {
		// Inverses of commands that just ran cannot fail.
		_, _, _ = e.buf.Apply(inverses[i])
	}
	e.buf.Restore(cp)
}

// Move steps every cursor in the given direction.
func (e *Engine) Move(dir cursor.Direction, extend bool) {
	e.cur.Move(e.buf, dir, extend)
}

// MoveWord steps every cursor to the adjacent word boundary.
func (e *Engine) MoveWord(dir cursor.Direction, extend bool) {
	e.cur.MoveWord(e.buf, dir, extend)
}

// Home moves every cursor to its line start.
func (e *Engine) Home(extend bool) {
	e.cur.Home(extend)
}

// End moves every cursor to its line end.
func (e *Engine) End(extend bool) {
	e.cur.End(e.buf, extend)
}

// Top moves to the start of the buffer.
func (e *Engine) Top(extend bool) {
	e.cur.Top(extend)
}

// Bottom moves to the end of the buffer.
func (e *Engine) Bottom(extend bool) {
	e.cur.Bottom(e.buf, extend)
}

func reverse(cmds []buffer.Command) {
	for i, j := 0, len(cmds)-1; i < j; i, j = i+1, j-1 {
		cmds[i], cmds[j] = cmds[j], cmds[i]
	}
}
