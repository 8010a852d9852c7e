package command

import (
	"github.com/ternedit/tern/internal/engine"
	"github.com/ternedit/tern/internal/engine/buffer"
	"github.com/ternedit/tern/internal/engine/cursor"
	"github.com/ternedit/tern/internal/input/key"
)

// chordHint is shown while the builder waits for the second key of a
// control chord.
const chordHint = "Waiting for C-x chord (Esc to cancel)"

// Builder turns decoded key events into editor actions. It carries
// the two pieces of modal state the keyboard protocol needs: whether
// a C-x chord is in flight and whether overwrite mode is on.
type Builder struct {
	chord     bool
	overwrite bool
}

// NewBuilder creates a builder in insert mode with no pending chord.
func NewBuilder() *Builder {
	return &Builder{}
}

// Overwrite reports whether overwrite mode is active.
func (b *Builder) Overwrite() bool {
	return b.overwrite
}

// ChordPending reports whether the builder is waiting for the second
// key of a C-x chord.
func (b *Builder) ChordPending() bool {
	return b.chord
}

// Build maps one key event to an action, consulting the engine for
// cursor positions and line contents when the event edits text.
func (b *Builder) Build(ev key.Event, e *engine.Engine) Action {
	if b.chord {
		b.chord = false
		return b.buildChord(ev)
	}

	switch {
	case ev.Key == key.KeyRune && ev.Modifiers.Has(key.ModCtrl):
		if ev.Rune == 'x' {
			b.chord = true
			return notice(chordHint)
		}
		return Action{Kind: KindNone}

	case ev.IsText():
		return edit(b.insertBatch(e, string(ev.Rune)))

	case ev.Key == key.KeyEnter:
		return edit(b.breakBatch(e))

	case ev.Key == key.KeyTab:
		return edit(b.insertBatch(e, "\t"))

	case ev.Key == key.KeyBackspace:
		return edit(backspaceBatch(e))

	case ev.Key == key.KeyDelete:
		return edit(deleteBatch(e))

	case ev.Key == key.KeyInsert:
		b.overwrite = !b.overwrite
		return Action{Kind: KindNone}

	case ev.Key == key.KeyEscape:
		return Action{Kind: KindCancel}

	case ev.Modifiers.Has(key.ModAlt) && (ev.Key == key.KeyUp || ev.Key == key.KeyDown):
		dir := cursor.Up
		if ev.Key == key.KeyDown {
			dir = cursor.Down
		}
		return Action{Kind: KindAddCursor, Dir: dir}

	case ev.IsMovement():
		return motionFor(ev)
	}

	return Action{Kind: KindNone}
}

// buildChord resolves the key following C-x.
func (b *Builder) buildChord(ev key.Event) Action {
	if ev.Key == key.KeyEscape {
		return Action{Kind: KindCancel}
	}

	switch ev.Key {
	case key.KeyUp:
		return motion(MotionTop, cursor.Up, false)
	case key.KeyDown:
		return motion(MotionBottom, cursor.Down, false)
	}

	if ev.Key == key.KeyRune && ev.Modifiers == key.ModNone {
		switch ev.Rune {
		case 'q':
			return Action{Kind: KindQuit}
		case 'z':
			return Action{Kind: KindUndo}
		case 'y':
			return Action{Kind: KindRedo}
		case 's':
			return Action{Kind: KindSave}
		case 'S':
			return Action{Kind: KindSaveAs}
		case 'w':
			return Action{Kind: KindSaveClose}
		case 'n':
			return Action{Kind: KindNewBuffer}
		case 'o':
			return Action{Kind: KindOpenFile}
		case '.':
			return Action{Kind: KindNextBuffer}
		case ',':
			return Action{Kind: KindPrevBuffer}
		case 'p':
			return Action{Kind: KindSwitchBuffer}
		}
	}

	return Action{Kind: KindNotice, Message: "Unknown chord", Warning: true}
}

// motionFor maps a movement key to the matching motion. The extend
// flag rides in from the decoder's shift detection; Ctrl upgrades
// horizontal steps to word motion and Home/End to buffer ends.
func motionFor(ev key.Event) Action {
	ctrl := ev.Modifiers.Has(key.ModCtrl)

	switch ev.Key {
	case key.KeyUp:
		return motion(MotionStep, cursor.Up, ev.Extend)
	case key.KeyDown:
		return motion(MotionStep, cursor.Down, ev.Extend)
	case key.KeyLeft:
		if ctrl {
			return motion(MotionWord, cursor.Left, ev.Extend)
		}
		return motion(MotionStep, cursor.Left, ev.Extend)
	case key.KeyRight:
		if ctrl {
			return motion(MotionWord, cursor.Right, ev.Extend)
		}
		return motion(MotionStep, cursor.Right, ev.Extend)
	case key.KeyHome:
		if ctrl {
			return motion(MotionTop, cursor.Up, ev.Extend)
		}
		return motion(MotionHome, cursor.Left, ev.Extend)
	case key.KeyEnd:
		if ctrl {
			return motion(MotionBottom, cursor.Down, ev.Extend)
		}
		return motion(MotionEnd, cursor.Right, ev.Extend)
	case key.KeyPageUp:
		return motion(MotionPageUp, cursor.Up, ev.Extend)
	case key.KeyPageDown:
		return motion(MotionPageDown, cursor.Down, ev.Extend)
	}

	return Action{Kind: KindNone}
}

// insertBatch builds one insert per cursor, replacing any selection.
// In overwrite mode a character on the line ahead of the cursor is
// consumed first. Batches are ordered from the last cursor to the
// first so earlier positions stay valid as the batch applies.
func (b *Builder) insertBatch(e *engine.Engine, text string) []buffer.Command {
	var cmds []buffer.Command
	for _, c := range reversed(e.Cursors().All()) {
		switch {
		case !c.IsEmpty():
			cmds = append(cmds,
				buffer.DeleteRange{From: c.Start(), To: c.End()},
				buffer.InsertText{Pos: c.Start(), Text: text},
			)
		case b.overwrite && c.Head.Column < e.Buffer().LineLen(c.Head.Line):
			next := buffer.Position{Line: c.Head.Line, Column: c.Head.Column + 1}
			cmds = append(cmds,
				buffer.DeleteRange{From: c.Head, To: next},
				buffer.InsertText{Pos: c.Head, Text: text},
			)
		default:
			cmds = append(cmds, buffer.InsertText{Pos: c.Head, Text: text})
		}
	}
	return cmds
}

// breakBatch builds one line break per cursor. Overwrite mode does
// not consume anything on Enter; the break always inserts.
func (b *Builder) breakBatch(e *engine.Engine) []buffer.Command {
	var cmds []buffer.Command
	for _, c := range reversed(e.Cursors().All()) {
		if !c.IsEmpty() {
			cmds = append(cmds,
				buffer.DeleteRange{From: c.Start(), To: c.End()},
				buffer.SplitLine{Pos: c.Start()},
			)
			continue
		}
		cmds = append(cmds, buffer.SplitLine{Pos: c.Head})
	}
	return cmds
}

// backspaceBatch deletes the selection, the previous character, or
// joins with the previous line at a line start.
func backspaceBatch(e *engine.Engine) []buffer.Command {
	var cmds []buffer.Command
	for _, c := range reversed(e.Cursors().All()) {
		switch {
		case !c.IsEmpty():
			cmds = append(cmds, buffer.DeleteRange{From: c.Start(), To: c.End()})
		case c.Head.Column > 0:
			prev := buffer.Position{Line: c.Head.Line, Column: c.Head.Column - 1}
			cmds = append(cmds, buffer.DeleteRange{From: prev, To: c.Head})
		case c.Head.Line > 0:
			cmds = append(cmds, buffer.JoinLines{Line: c.Head.Line - 1})
		}
	}
	return cmds
}

// deleteBatch deletes the selection, the character under the cursor,
// or joins with the next line at a line end.
func deleteBatch(e *engine.Engine) []buffer.Command {
	b := e.Buffer()

	var cmds []buffer.Command
	for _, c := range reversed(e.Cursors().All()) {
		switch {
		case !c.IsEmpty():
			cmds = append(cmds, buffer.DeleteRange{From: c.Start(), To: c.End()})
		case c.Head.Column < b.LineLen(c.Head.Line):
			next := buffer.Position{Line: c.Head.Line, Column: c.Head.Column + 1}
			cmds = append(cmds, buffer.DeleteRange{From: c.Head, To: next})
		case c.Head.Line < b.LineCount()-1:
			cmds = append(cmds, buffer.JoinLines{Line: c.Head.Line})
		}
	}
	return cmds
}

func reversed(cursors []cursor.Cursor) []cursor.Cursor {
	for i, j := 0, len(cursors)-1; i < j; i, j = i+1, j-1 {
		cursors[i], cursors[j] = cursors[j], cursors[i]
	}
	return cursors
}
