package engine

import (
	"errors"
	"reflect"
	"testing"

	"github.com/ternedit/tern/internal/engine/buffer"
	"github.com/ternedit/tern/internal/engine/cursor"
)

func pos(line, col int) buffer.Position {
	return buffer.Position{Line: line, Column: col}
}

func newEngine(text string) *Engine {
	return New(buffer.NewFromString(text))
}

func TestApplyMovesCursorPastInsert(t *testing.T) {
	e := newEngine("hello")

	if err := e.Apply([]buffer.Command{
		buffer.InsertText{Pos: pos(0, 0), Text: "say "},
	}); err != nil {
		t.Fatal(err)
	}

	if got := e.Buffer().LineText(0); got != "say hello" {
		t.Errorf("text = %q", got)
	}
	if got := e.Cursors().Primary().Position(); got != pos(0, 4) {
		t.Errorf("cursor at %v, want %v", got, pos(0, 4))
	}
}

func TestApplyEmptyBatch(t *testing.T) {
	e := newEngine("text")

	if err := e.Apply(nil); err != nil {
		t.Fatal(err)
	}
	if e.CanUndo() {
		t.Error("empty batch should not create a history entry")
	}
}

func TestApplyAtomicRollback(t *testing.T) {
	e := newEngine("abc\ndef")
	revBefore := e.Buffer().Revision()

	err := e.Apply([]buffer.Command{
		buffer.InsertText{Pos: pos(0, 1), Text: "X"},
		buffer.DeleteRange{From: pos(5, 0), To: pos(5, 1)}, // invalid
	})
	if !errors.Is(err, buffer.ErrInvalidPosition) {
		t.Fatalf("expected ErrInvalidPosition, got %v", err)
	}

	if !reflect.DeepEqual(e.Buffer().Lines(), []string{"abc", "def"}) {
		t.Errorf("buffer not rolled back: %q", e.Buffer().Lines())
	}
	if e.CanUndo() {
		t.Error("failed batch should leave no history entry")
	}
	if got := e.Cursors().Primary().Position(); got != pos(0, 0) {
		t.Errorf("cursor moved to %v after rollback", got)
	}
	// None of the batch applied: metadata is rolled back along with
	// the content.
	if e.Buffer().Dirty() {
		t.Error("failed batch must not dirty the buffer")
	}
	if got := e.Buffer().Revision(); got != revBefore {
		t.Errorf("revision = %d after rollback, want %d", got, revBefore)
	}
}

func TestUndoRedoSingleEdit(t *testing.T) {
	e := newEngine("world")

	if err := e.Apply([]buffer.Command{
		buffer.InsertText{Pos: pos(0, 0), Text: "hello "},
	}); err != nil {
		t.Fatal(err)
	}

	if !e.Undo() {
		t.Fatal("undo failed")
	}
	if got := e.Buffer().LineText(0); got != "world" {
		t.Errorf("after undo: %q", got)
	}
	if got := e.Cursors().Primary().Position(); got != pos(0, 0) {
		t.Errorf("undo should restore the pre-edit cursor, got %v", got)
	}

	if !e.Redo() {
		t.Fatal("redo failed")
	}
	if got := e.Buffer().LineText(0); got != "hello world" {
		t.Errorf("after redo: %q", got)
	}
}

// TestUndoRedoSequence walks a chain of edits all the way back and
// forward again, checking the buffer at every step.
func TestUndoRedoSequence(t *testing.T) {
	e := newEngine("")

	steps := [][]buffer.Command{
		{buffer.InsertText{Pos: pos(0, 0), Text: "one"}},
		{buffer.SplitLine{Pos: pos(0, 3)}},
		{buffer.InsertText{Pos: pos(1, 0), Text: "two"}},
		{buffer.DeleteRange{From: pos(0, 0), To: pos(0, 1)}},
	}

	states := [][]string{e.Buffer().Lines()}
	for _, cmds := range steps {
		if err := e.Apply(cmds); err != nil {
			t.Fatal(err)
		}
		states = append(states, e.Buffer().Lines())
	}

	for i := len(steps); i > 0; i-- {
		if !e.Undo() {
			t.Fatalf("undo %d failed", i)
		}
		if !reflect.DeepEqual(e.Buffer().Lines(), states[i-1]) {
			t.Fatalf("undo to step %d: got %q, want %q", i-1, e.Buffer().Lines(), states[i-1])
		}
	}
	if e.Undo() {
		t.Error("undo past the beginning should fail")
	}

	for i := 1; i <= len(steps); i++ {
		if !e.Redo() {
			t.Fatalf("redo %d failed", i)
		}
		if !reflect.DeepEqual(e.Buffer().Lines(), states[i]) {
			t.Fatalf("redo to step %d: got %q, want %q", i, e.Buffer().Lines(), states[i])
		}
	}
	if e.Redo() {
		t.Error("redo past the end should fail")
	}
}

func TestNewEditInvalidatesRedo(t *testing.T) {
	e := newEngine("")

	if err := e.Apply([]buffer.Command{buffer.InsertText{Pos: pos(0, 0), Text: "a"}}); err != nil {
		t.Fatal(err)
	}
	if !e.Undo() {
		t.Fatal("undo failed")
	}
	if !e.CanRedo() {
		t.Fatal("redo should be available")
	}

	if err := e.Apply([]buffer.Command{buffer.InsertText{Pos: pos(0, 0), Text: "b"}}); err != nil {
		t.Fatal(err)
	}
	if e.CanRedo() {
		t.Error("a fresh edit should invalidate redo")
	}
}

// TestMultiCursorBatch runs one insert per cursor, ordered from the
// last position to the first, and checks that every cursor ends up
// after its own insertion.
func TestMultiCursorBatch(t *testing.T) {
	e := newEngine("ab")
	e.Cursors().Add(pos(0, 2))
	// Cursors at (0,0) and (0,2).

	err := e.Apply([]buffer.Command{
		buffer.InsertText{Pos: pos(0, 2), Text: "!"},
		buffer.InsertText{Pos: pos(0, 0), Text: "!"},
	})
	if err != nil {
		t.Fatal(err)
	}

	if got := e.Buffer().LineText(0); got != "!ab!" {
		t.Fatalf("text = %q", got)
	}
	got := e.Cursors().Positions()
	want := []buffer.Position{pos(0, 1), pos(0, 4)}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("cursors = %v, want %v", got, want)
	}

	if !e.Undo() {
		t.Fatal("undo failed")
	}
	if got := e.Buffer().LineText(0); got != "ab" {
		t.Errorf("after undo: %q", got)
	}
	if e.Cursors().Count() != 2 {
		t.Errorf("undo should restore both cursors, count = %d", e.Cursors().Count())
	}
}

func TestUndoRestoresMultiCursorSnapshot(t *testing.T) {
	e := newEngine("abc")
	e.Cursors().Add(pos(0, 3))

	err := e.Apply([]buffer.Command{
		buffer.DeleteRange{From: pos(0, 0), To: pos(0, 3)},
	})
	if err != nil {
		t.Fatal(err)
	}
	// Both cursors converged onto (0,0) and merged.
	if e.Cursors().Count() != 1 {
		t.Fatalf("cursors should merge after the delete, count = %d", e.Cursors().Count())
	}

	if !e.Undo() {
		t.Fatal("undo failed")
	}
	got := e.Cursors().Positions()
	want := []buffer.Position{pos(0, 0), pos(0, 3)}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("restored cursors = %v, want %v", got, want)
	}
}

func TestMovementPassthrough(t *testing.T) {
	e := newEngine("one\ntwo")

	e.Move(cursor.Right, false)
	e.Move(cursor.Down, false)
	if got := e.Cursors().Primary().Position(); got != pos(1, 1) {
		t.Errorf("position = %v, want %v", got, pos(1, 1))
	}

	e.End(false)
	if got := e.Cursors().Primary().Position(); got != pos(1, 3) {
		t.Errorf("end: %v", got)
	}
	e.Top(false)
	if got := e.Cursors().Primary().Position(); got != pos(0, 0) {
		t.Errorf("top: %v", got)
	}
	e.Bottom(false)
	if got := e.Cursors().Primary().Position(); got != pos(1, 3) {
		t.Errorf("bottom: %v", got)
	}
}
