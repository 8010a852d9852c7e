package command

import (
	"reflect"
	"testing"

	"github.com/ternedit/tern/internal/engine"
	"github.com/ternedit/tern/internal/engine/buffer"
	"github.com/ternedit/tern/internal/engine/cursor"
	"github.com/ternedit/tern/internal/input/key"
)

func pos(line, col int) buffer.Position {
	return buffer.Position{Line: line, Column: col}
}

func newEngine(text string) *engine.Engine {
	return engine.New(buffer.NewFromString(text))
}

func ctrl(r rune) key.Event {
	return key.NewRuneEvent(r, key.ModCtrl)
}

func named(k key.Key) key.Event {
	return key.NewNamedEvent(k, key.ModNone)
}

func TestBuildInsertText(t *testing.T) {
	b := NewBuilder()
	e := newEngine("hello")

	a := b.Build(key.NewRuneEvent('x', key.ModNone), e)
	if a.Kind != KindEdit {
		t.Fatalf("kind = %v", a.Kind)
	}
	want := []buffer.Command{buffer.InsertText{Pos: pos(0, 0), Text: "x"}}
	if !reflect.DeepEqual(a.Commands, want) {
		t.Errorf("commands = %v, want %v", a.Commands, want)
	}
}

func TestBuildEnterAndTab(t *testing.T) {
	b := NewBuilder()
	e := newEngine("ab")
	e.Move(cursor.Right, false)

	a := b.Build(named(key.KeyEnter), e)
	want := []buffer.Command{buffer.SplitLine{Pos: pos(0, 1)}}
	if !reflect.DeepEqual(a.Commands, want) {
		t.Errorf("enter commands = %v, want %v", a.Commands, want)
	}

	a = b.Build(named(key.KeyTab), e)
	want = []buffer.Command{buffer.InsertText{Pos: pos(0, 1), Text: "\t"}}
	if !reflect.DeepEqual(a.Commands, want) {
		t.Errorf("tab commands = %v, want %v", a.Commands, want)
	}
}

func TestBuildBackspace(t *testing.T) {
	b := NewBuilder()

	// Mid-line: delete the previous character.
	e := newEngine("ab")
	e.Move(cursor.Right, false)
	a := b.Build(named(key.KeyBackspace), e)
	want := []buffer.Command{buffer.DeleteRange{From: pos(0, 0), To: pos(0, 1)}}
	if !reflect.DeepEqual(a.Commands, want) {
		t.Errorf("commands = %v, want %v", a.Commands, want)
	}

	// Line start: join with the previous line.
	e = newEngine("ab\ncd")
	e.Move(cursor.Down, false)
	a = b.Build(named(key.KeyBackspace), e)
	want = []buffer.Command{buffer.JoinLines{Line: 0}}
	if !reflect.DeepEqual(a.Commands, want) {
		t.Errorf("commands = %v, want %v", a.Commands, want)
	}

	// Buffer start: nothing to do.
	e = newEngine("ab")
	a = b.Build(named(key.KeyBackspace), e)
	if a.Kind != KindNone {
		t.Errorf("backspace at buffer start should be a no-op, got %v", a)
	}
}

func TestBuildDelete(t *testing.T) {
	b := NewBuilder()

	e := newEngine("ab")
	a := b.Build(named(key.KeyDelete), e)
	want := []buffer.Command{buffer.DeleteRange{From: pos(0, 0), To: pos(0, 1)}}
	if !reflect.DeepEqual(a.Commands, want) {
		t.Errorf("commands = %v, want %v", a.Commands, want)
	}

	// Line end: join with the next line.
	e = newEngine("ab\ncd")
	e.End(false)
	a = b.Build(named(key.KeyDelete), e)
	want = []buffer.Command{buffer.JoinLines{Line: 0}}
	if !reflect.DeepEqual(a.Commands, want) {
		t.Errorf("commands = %v, want %v", a.Commands, want)
	}
}

func TestBuildReplacesSelection(t *testing.T) {
	b := NewBuilder()
	e := newEngine("abcd")
	e.Move(cursor.Right, true)
	e.Move(cursor.Right, true)

	a := b.Build(key.NewRuneEvent('x', key.ModNone), e)
	want := []buffer.Command{
		buffer.DeleteRange{From: pos(0, 0), To: pos(0, 2)},
		buffer.InsertText{Pos: pos(0, 0), Text: "x"},
	}
	if !reflect.DeepEqual(a.Commands, want) {
		t.Errorf("commands = %v, want %v", a.Commands, want)
	}
}

func TestBuildMultiCursorOrder(t *testing.T) {
	b := NewBuilder()
	e := newEngine("abcdef")
	e.Cursors().Add(pos(0, 3))

	a := b.Build(key.NewRuneEvent('x', key.ModNone), e)
	// Last cursor first, so earlier positions stay valid.
	want := []buffer.Command{
		buffer.InsertText{Pos: pos(0, 3), Text: "x"},
		buffer.InsertText{Pos: pos(0, 0), Text: "x"},
	}
	if !reflect.DeepEqual(a.Commands, want) {
		t.Errorf("commands = %v, want %v", a.Commands, want)
	}
}

func TestOverwriteMode(t *testing.T) {
	b := NewBuilder()
	e := newEngine("abc")

	if a := b.Build(named(key.KeyInsert), e); a.Kind != KindNone {
		t.Fatalf("insert toggle returned %v", a)
	}
	if !b.Overwrite() {
		t.Fatal("overwrite should be on")
	}

	a := b.Build(key.NewRuneEvent('x', key.ModNone), e)
	want := []buffer.Command{
		buffer.DeleteRange{From: pos(0, 0), To: pos(0, 1)},
		buffer.InsertText{Pos: pos(0, 0), Text: "x"},
	}
	if !reflect.DeepEqual(a.Commands, want) {
		t.Errorf("commands = %v, want %v", a.Commands, want)
	}

	// At the line end overwrite degrades to plain insertion.
	e.End(false)
	a = b.Build(key.NewRuneEvent('y', key.ModNone), e)
	want = []buffer.Command{buffer.InsertText{Pos: pos(0, 3), Text: "y"}}
	if !reflect.DeepEqual(a.Commands, want) {
		t.Errorf("commands = %v, want %v", a.Commands, want)
	}

	b.Build(named(key.KeyInsert), e)
	if b.Overwrite() {
		t.Error("overwrite should toggle back off")
	}
}

func TestChordCommands(t *testing.T) {
	tests := []struct {
		ev   key.Event
		want Kind
	}{
		{key.NewRuneEvent('q', key.ModNone), KindQuit},
		{key.NewRuneEvent('z', key.ModNone), KindUndo},
		{key.NewRuneEvent('y', key.ModNone), KindRedo},
		{key.NewRuneEvent('s', key.ModNone), KindSave},
		{key.NewRuneEvent('S', key.ModNone), KindSaveAs},
		{key.NewRuneEvent('w', key.ModNone), KindSaveClose},
		{key.NewRuneEvent('n', key.ModNone), KindNewBuffer},
		{key.NewRuneEvent('o', key.ModNone), KindOpenFile},
		{key.NewRuneEvent('.', key.ModNone), KindNextBuffer},
		{key.NewRuneEvent(',', key.ModNone), KindPrevBuffer},
		{key.NewRuneEvent('p', key.ModNone), KindSwitchBuffer},
	}

	for _, tt := range tests {
		b := NewBuilder()
		e := newEngine("")

		a := b.Build(ctrl('x'), e)
		if a.Kind != KindNotice || a.Message != chordHint {
			t.Fatalf("C-x returned %v", a)
		}
		if !b.ChordPending() {
			t.Fatal("chord should be pending")
		}

		a = b.Build(tt.ev, e)
		if a.Kind != tt.want {
			t.Errorf("C-x %q: kind = %v, want %v", tt.ev.Rune, a.Kind, tt.want)
		}
		if b.ChordPending() {
			t.Error("chord should be consumed")
		}
	}
}

func TestChordMotions(t *testing.T) {
	b := NewBuilder()
	e := newEngine("")

	b.Build(ctrl('x'), e)
	a := b.Build(named(key.KeyUp), e)
	if a.Kind != KindMotion || a.Motion != MotionTop {
		t.Errorf("C-x Up: %v", a)
	}

	b.Build(ctrl('x'), e)
	a = b.Build(named(key.KeyDown), e)
	if a.Kind != KindMotion || a.Motion != MotionBottom {
		t.Errorf("C-x Down: %v", a)
	}
}

func TestChordEscapeCancels(t *testing.T) {
	b := NewBuilder()
	e := newEngine("")

	b.Build(ctrl('x'), e)
	a := b.Build(named(key.KeyEscape), e)
	if a.Kind != KindCancel {
		t.Errorf("Esc in chord: %v", a)
	}
}

func TestUnknownChord(t *testing.T) {
	b := NewBuilder()
	e := newEngine("")

	b.Build(ctrl('x'), e)
	a := b.Build(key.NewRuneEvent('#', key.ModNone), e)
	if a.Kind != KindNotice || a.Message != "Unknown chord" || !a.Warning {
		t.Errorf("unknown chord: %+v", a)
	}
}

func TestAltArrowAddsCursor(t *testing.T) {
	b := NewBuilder()
	e := newEngine("a\nb")

	a := b.Build(key.NewNamedEvent(key.KeyDown, key.ModAlt), e)
	if a.Kind != KindAddCursor || a.Dir != cursor.Down {
		t.Errorf("Alt+Down: %+v", a)
	}

	a = b.Build(key.NewNamedEvent(key.KeyUp, key.ModAlt), e)
	if a.Kind != KindAddCursor || a.Dir != cursor.Up {
		t.Errorf("Alt+Up: %+v", a)
	}
}

func TestMotionMapping(t *testing.T) {
	b := NewBuilder()
	e := newEngine("")

	tests := []struct {
		ev     key.Event
		motion Motion
		dir    cursor.Direction
		extend bool
	}{
		{named(key.KeyLeft), MotionStep, cursor.Left, false},
		{named(key.KeyRight), MotionStep, cursor.Right, false},
		{named(key.KeyUp), MotionStep, cursor.Up, false},
		{named(key.KeyDown), MotionStep, cursor.Down, false},
		{named(key.KeyHome), MotionHome, cursor.Left, false},
		{named(key.KeyEnd), MotionEnd, cursor.Right, false},
		{named(key.KeyPageUp), MotionPageUp, cursor.Up, false},
		{named(key.KeyPageDown), MotionPageDown, cursor.Down, false},
		{key.NewNamedEvent(key.KeyLeft, key.ModCtrl), MotionWord, cursor.Left, false},
		{key.NewNamedEvent(key.KeyRight, key.ModCtrl), MotionWord, cursor.Right, false},
		{key.NewNamedEvent(key.KeyHome, key.ModCtrl), MotionTop, cursor.Up, false},
		{key.NewNamedEvent(key.KeyEnd, key.ModCtrl), MotionBottom, cursor.Down, false},
	}

	for _, tt := range tests {
		a := b.Build(tt.ev, e)
		if a.Kind != KindMotion || a.Motion != tt.motion || a.Dir != tt.dir || a.Extend != tt.extend {
			t.Errorf("%v: got %+v", tt.ev, a)
		}
	}
}

func TestShiftArrowExtends(t *testing.T) {
	b := NewBuilder()
	e := newEngine("")

	ev := key.NewNamedEvent(key.KeyRight, key.ModShift)
	ev.Extend = true
	a := b.Build(ev, e)
	if a.Kind != KindMotion || !a.Extend {
		t.Errorf("shift-right should extend, got %+v", a)
	}
}
